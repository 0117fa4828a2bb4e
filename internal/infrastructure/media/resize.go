package media

import (
	"bytes"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"

	"collectionhub/internal/domain/upload"

	"github.com/nfnt/resize"
)

const jpegQuality = 85

// MaxPixels - предел площади холста; image.Decode выделяет его целиком
// до чтения пикселей, поэтому проверяем по заголовку.
const MaxPixels = 40_000_000

// Downscale уменьшает изображение до maxWidth по ширине с сохранением
// пропорций. Узкие изображения возвращаются без перекодирования.
func Downscale(data []byte, maxWidth uint) ([]byte, string, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("decode image config: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || int64(cfg.Width)*int64(cfg.Height) > MaxPixels {
		return nil, "", fmt.Errorf("image %dx%d: %w", cfg.Width, cfg.Height, upload.ErrDimensions)
	}

	if maxWidth == 0 || uint(cfg.Width) <= maxWidth {
		return data, format, nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("decode image: %w", err)
	}

	scaled := resize.Resize(maxWidth, 0, img, resize.Lanczos3)

	var buf bytes.Buffer
	switch format {
	case "jpeg":
		err = jpeg.Encode(&buf, scaled, &jpeg.Options{Quality: jpegQuality})
	case "png":
		err = png.Encode(&buf, scaled)
	case "gif":
		// анимация теряется, остается первый кадр
		err = gif.Encode(&buf, scaled, nil)
	default:
		return nil, "", fmt.Errorf("unsupported image format %q", format)
	}
	if err != nil {
		return nil, "", fmt.Errorf("encode %s: %w", format, err)
	}

	return buf.Bytes(), format, nil
}
