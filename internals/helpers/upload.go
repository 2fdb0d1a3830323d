// file: internals/helpers/upload.go
package helper

import (
	"errors"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"ainexus_backend/internals/configs"
	"ainexus_backend/internals/constants"
)

// ErrUnsupportedImage marks an upload with an extension outside the
// whitelist; handlers translate it to 415.
var ErrUnsupportedImage = errors.New("unsupported image format (allowed: png, jpg, jpeg, gif, webp)")

var filenameSafe = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

func sanitizeFilename(filename string) string {
	return filenameSafe.ReplaceAllString(filename, "_")
}

// GenerateUniqueFilename prefixes the sanitized original name with the date
// and a UUID so repeated uploads never collide on disk.
func GenerateUniqueFilename(original string) string {
	return fmt.Sprintf("%s-%s-%s",
		time.Now().Format("20060102"),
		uuid.New().String(),
		sanitizeFilename(original),
	)
}

// FileExt returns the lowercase extension without the dot.
func FileExt(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return strings.TrimPrefix(ext, ".")
}

// SaveImage stores an uploaded image under <UPLOAD_DIR>/<folder>/ and
// returns the path relative to the upload root. JPEG and PNG uploads are
// re-encoded to webp first; gif and webp are stored as-is.
//
// The file hits disk before the DB row commits, so a failed commit can leave
// an orphaned file behind.
func SaveImage(fh *multipart.FileHeader, folder string) (string, error) {
	ext := FileExt(fh.Filename)
	if _, ok := constants.AllowedImageExt[ext]; !ok {
		return "", ErrUnsupportedImage
	}

	dir := filepath.Join(configs.UploadDir(), folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	name := GenerateUniqueFilename(fh.Filename)

	switch ext {
	case "jpg", "jpeg", "png":
		name = strings.TrimSuffix(name, filepath.Ext(name)) + ".webp"
		if err := encodeWebp(fh, filepath.Join(dir, name)); err != nil {
			return "", err
		}
	default:
		if err := saveRaw(fh, filepath.Join(dir, name)); err != nil {
			return "", err
		}
	}

	return filepath.ToSlash(filepath.Join(folder, name)), nil
}

func saveRaw(fh *multipart.FileHeader, dst string) error {
	src, err := fh.Open()
	if err != nil {
		return fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}
	defer out.Close()

	if _, err := out.ReadFrom(src); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

// ImageURL turns a stored relative path into the fully-qualified URL
// returned to clients. Nil in, nil out.
func ImageURL(relPath *string) *string {
	if relPath == nil || *relPath == "" {
		return nil
	}
	u := strings.TrimRight(configs.BaseURL(), "/") + "/static/uploads/" + *relPath
	return &u
}
