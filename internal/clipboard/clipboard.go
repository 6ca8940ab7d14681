// Package clipboard copies song paths and cover images to the system
// clipboard.
package clipboard

import (
	"fmt"
	"sync"

	"golang.design/x/clipboard"

	"github.com/zhubert/stave/internal/logger"
)

var (
	initOnce sync.Once
	initErr  error
)

// Init initializes the clipboard. It is safe to call multiple times; the
// first result is remembered.
func Init() error {
	initOnce.Do(func() {
		if err := clipboard.Init(); err != nil {
			logger.WithComponent("clipboard").Warn("failed to initialize", "error", err)
			initErr = fmt.Errorf("failed to initialize clipboard: %w", err)
			return
		}
		logger.WithComponent("clipboard").Debug("initialized")
	})
	return initErr
}

// WriteText writes text to the clipboard.
func WriteText(text string) error {
	if err := Init(); err != nil {
		return err
	}
	clipboard.Write(clipboard.FmtText, []byte(text))
	logger.WithComponent("clipboard").Debug("wrote text", "bytes", len(text))
	return nil
}

// WriteImage writes an encoded image to the clipboard, converting it to PNG
// first when needed.
func WriteImage(data []byte) error {
	img, err := DecodeImage(data)
	if err != nil {
		return err
	}
	if err := img.Validate(); err != nil {
		return err
	}
	png, err := img.PNG()
	if err != nil {
		return err
	}
	if err := Init(); err != nil {
		return err
	}
	clipboard.Write(clipboard.FmtImage, png)
	logger.WithComponent("clipboard").Debug("wrote image", "bytes", len(png), "width", img.Width, "height", img.Height)
	return nil
}
