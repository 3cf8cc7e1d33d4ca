package qr

import (
	"bytes"
	"context"
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPNGRenderer_Render(t *testing.T) {
	cancelled, cancel := context.WithCancel(context.Background())
	cancel()

	var tests = []struct {
		name        string
		ctx         context.Context
		content     string
		expectedErr error
	}{
		{name: "empty content", ctx: context.Background(), content: "", expectedErr: ErrEmptyContent},
		{name: "cancelled context", ctx: cancelled, content: "https://pay.example.com/pay/biz_1", expectedErr: context.Canceled},
		{name: "renders png data url", ctx: context.Background(), content: "https://pay.example.com/pay/biz_1?v=1&exp=1700000000&sig=abc"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := NewPNGRenderer().Render(tt.ctx, tt.content)
			if tt.expectedErr != nil {
				require.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			require.True(t, strings.HasPrefix(got, dataURLImage))

			raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(got, dataURLImage))
			require.NoError(t, err)
			require.True(t, bytes.HasPrefix(raw, []byte("\x89PNG")))
		})
	}
}
