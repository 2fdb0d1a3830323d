// file: internals/helpers/image.go
package helper

import (
	"fmt"
	"mime/multipart"
	"os"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

// Logos and photos never need to be wider than this; larger uploads are
// resized before encoding.
const maxImageWidth = 1600

// encodeWebp decodes a jpeg/png upload, clamps its width and writes a lossy
// webp to dst.
func encodeWebp(fh *multipart.FileHeader, dst string) error {
	src, err := fh.Open()
	if err != nil {
		return fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	img, err := imaging.Decode(src, imaging.AutoOrientation(true))
	if err != nil {
		return fmt.Errorf("decode image: %w", err)
	}

	if img.Bounds().Dx() > maxImageWidth {
		img = imaging.Resize(img, maxImageWidth, 0, imaging.Lanczos)
	}

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}
	defer out.Close()

	if err := webp.Encode(out, img, &webp.Options{Lossless: false, Quality: 85}); err != nil {
		return fmt.Errorf("encode webp: %w", err)
	}
	return nil
}
