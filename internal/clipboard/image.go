package clipboard

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
)

// MaxImageSize is the largest encoded image accepted, in bytes.
const MaxImageSize = 16 << 20

// MaxImageDimension is the largest accepted width or height in pixels.
const MaxImageDimension = 8000

// ImageData is an encoded image with its decoded header.
type ImageData struct {
	Data   []byte
	Format string // "png", "jpeg" or "gif"
	Width  int
	Height int
}

// DecodeImage reads the image header of data.
func DecodeImage(data []byte) (*ImageData, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty image")
	}
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return &ImageData{Data: data, Format: format, Width: cfg.Width, Height: cfg.Height}, nil
}

// Validate checks size limits.
func (img *ImageData) Validate() error {
	if len(img.Data) > MaxImageSize {
		return fmt.Errorf("image too large: %d bytes (max %d bytes)", len(img.Data), MaxImageSize)
	}
	if img.Width > MaxImageDimension || img.Height > MaxImageDimension {
		return fmt.Errorf("image dimensions too large: %dx%d (max %dx%d)",
			img.Width, img.Height, MaxImageDimension, MaxImageDimension)
	}
	return nil
}

// PNG returns the image encoded as PNG.
func (img *ImageData) PNG() ([]byte, error) {
	if img.Format == "png" {
		return img.Data, nil
	}
	decoded, _, err := image.Decode(bytes.NewReader(img.Data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, decoded); err != nil {
		return nil, fmt.Errorf("failed to encode image as PNG: %w", err)
	}
	return buf.Bytes(), nil
}

// SizeKB returns the encoded size in kilobytes.
func (img *ImageData) SizeKB() int {
	return len(img.Data) / 1024
}
