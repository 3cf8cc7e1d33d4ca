package qr

import (
	"context"
	"encoding/base64"
	"errors"

	qrcode "github.com/skip2/go-qrcode"
)

const (
	DefaultSize  = 256
	dataURLImage = "data:image/png;base64,"
)

var ErrEmptyContent = errors.New("qr: empty content")

// PNGRenderer encodes content as a PNG QR code wrapped in a data URL.
type PNGRenderer struct {
	Size  int
	Level qrcode.RecoveryLevel
}

func NewPNGRenderer() *PNGRenderer {
	return &PNGRenderer{Size: DefaultSize, Level: qrcode.Medium}
}

func (r *PNGRenderer) Render(ctx context.Context, content string) (string, error) {
	if content == "" {
		return "", ErrEmptyContent
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	png, err := qrcode.Encode(content, r.Level, r.Size)
	if err != nil {
		return "", err
	}
	return dataURLImage + base64.StdEncoding.EncodeToString(png), nil
}
