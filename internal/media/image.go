package media

import (
	"bytes"
	"context"
	"image"
	"image/jpeg"
	_ "image/png" // PNG decoder registration

	"golang.org/x/image/draw"
)

// Scaler produces bounded cover art thumbnails.
//
// Channel cover images come in arbitrary sizes; the pipeline stores them
// scaled down to a configured maximum and re-encoded as JPEG:
//
//	scaler := media.NewScaler()
//	data, _ := client.DownloadBytes(ctx, coverURL)
//	thumb, err := scaler.Thumbnail(ctx, data, 1000)
type Scaler struct{}

// NewScaler creates a new Scaler.
func NewScaler() *Scaler {
	return &Scaler{}
}

// Thumbnail scales an image to fit within maxSize pixels on its longer
// side, preserving aspect ratio, and re-encodes it as JPEG. Images
// already within bounds are re-encoded without scaling.
//
// The Catmull-Rom kernel is used for high-quality downscaling.
func (s *Scaler) Thumbnail(ctx context.Context, data []byte, maxSize int) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	if width > maxSize || height > maxSize {
		ratio := float64(width) / float64(height)
		if ratio >= 1 {
			width = maxSize
			height = int(float64(maxSize) / ratio)
		} else {
			height = maxSize
			width = int(float64(maxSize) * ratio)
		}
		if width < 1 {
			width = 1
		}
		if height < 1 {
			height = 1
		}

		dst := image.NewRGBA(image.Rect(0, 0, width, height))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
