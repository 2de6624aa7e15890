// Package imagefile checks for and decodes image files referenced by
// photo records.
package imagefile

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"photoview/domain/photo"
)

// Checker reports whether a path refers to an existing filesystem entry.
type Checker struct{}

// Exists returns true if something exists at path. Any stat error,
// including permission errors, counts as absent.
func (Checker) Exists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

// Decode reads and decodes the image at path. Decoding failures are
// wrapped in photo.ErrUnreadableImage; a missing file in photo.ErrMissingFile.
func Decode(path string) (image.Image, string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, "", fmt.Errorf("%w: %s", photo.ErrMissingFile, path)
		}
		return nil, "", fmt.Errorf("%w: %w", photo.ErrUnreadableImage, err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %s: %w", photo.ErrUnreadableImage, path, err)
	}
	return img, format, nil
}
