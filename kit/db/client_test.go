package db

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestOpen(t *testing.T) {
	ctx := context.Background()

	gdb, err := Open("")
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(gdb) })

	require.NoError(t, Ping(ctx, gdb))
}

func TestPing_Closed(t *testing.T) {
	gdb, err := Open(":memory:")
	require.NoError(t, err)
	require.NoError(t, Close(gdb))

	err = Ping(context.Background(), gdb)
	require.Error(t, err)
	require.True(t, IsInternal(err))
}

func TestTranslate(t *testing.T) {
	boom := errors.New("boom")

	var tests = []struct {
		name     string
		err      error
		expected error
	}{
		{name: "nil", err: nil, expected: nil},
		{name: "record not found", err: gorm.ErrRecordNotFound, expected: ErrNotFound},
		{name: "duplicated key", err: gorm.ErrDuplicatedKey, expected: ErrConflict},
		{name: "already translated", err: ErrInvalid, expected: ErrInvalid},
		{name: "unknown", err: boom, expected: ErrInternal},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Translate(tt.err)
			if tt.expected == nil {
				require.NoError(t, got)
				return
			}
			require.ErrorIs(t, got, tt.expected)
		})
	}
}
