package httpserver

import (
	"errors"
	"log"
	"mime"
	"net/http"
	"path/filepath"

	"shopadmin/internal/domain"
	"shopadmin/internal/objectstore"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// uploadsHandler accepts one or more files under the multipart field "file"
// and returns their public URLs in input order. A mid-batch failure surfaces
// immediately; files already uploaded are not removed.
func uploadsHandler(store objectstore.Store, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if store == nil {
			writeError(c, logger, &domain.UploadError{Err: errNoObjectStore})
			return
		}

		form, err := c.MultipartForm()
		if err != nil {
			writeError(c, logger, domain.NewValidationError("invalid multipart form: %v", err))
			return
		}
		files := form.File["file"]
		if len(files) == 0 {
			writeError(c, logger, domain.NewValidationError("no files provided under field %q", "file"))
			return
		}

		links := make([]string, 0, len(files))
		for _, fh := range files {
			src, err := fh.Open()
			if err != nil {
				writeError(c, logger, &domain.UploadError{Filename: fh.Filename, Err: err})
				return
			}

			ext := filepath.Ext(fh.Filename)
			contentType := fh.Header.Get("Content-Type")
			if contentType == "" {
				contentType = mime.TypeByExtension(ext)
			}
			if contentType == "" {
				contentType = "application/octet-stream"
			}

			link, err := store.Put(c.Request.Context(), uuid.NewString()+ext, contentType, src)
			src.Close()
			if err != nil {
				writeError(c, logger, &domain.UploadError{Filename: fh.Filename, Err: err})
				return
			}
			logger.Printf("uploads: stored %s as %s", fh.Filename, link)
			links = append(links, link)
		}

		c.JSON(http.StatusOK, gin.H{"links": links})
	}
}

var errNoObjectStore = errors.New("object store is not configured")
