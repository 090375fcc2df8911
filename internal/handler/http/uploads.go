package http

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// saveUploadedFile stores the named multipart file under the uploads
// directory and returns the public path ("/uploads/<name>") to persist with
// the record. A request without that file part is not an error; an empty
// path is returned instead.
func (h *Handler) saveUploadedFile(r *http.Request, field string) (string, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		if err == http.ErrMissingFile {
			return "", nil
		}
		return "", fmt.Errorf("error reading %q form file: %w", field, err)
	}
	defer file.Close()

	if h.uploadsDir == "" {
		return "", nil
	}

	if err := os.MkdirAll(h.uploadsDir, 0o755); err != nil {
		return "", fmt.Errorf("error creating uploads dir: %w", err)
	}

	// Random name keeps concurrent uploads with the same filename apart.
	name := uuid.NewString() + filepath.Ext(header.Filename)

	dst, err := os.Create(filepath.Join(h.uploadsDir, name))
	if err != nil {
		return "", fmt.Errorf("error creating upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", fmt.Errorf("error writing upload file: %w", err)
	}

	return "/uploads/" + name, nil
}
