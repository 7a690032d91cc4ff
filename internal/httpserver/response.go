package httpserver

import (
	"errors"
	"log"
	"net/http"

	"shopadmin/internal/domain"
	"github.com/gin-gonic/gin"
)

// writeError maps a domain error to an HTTP status and a structured body of
// the form {"error": kind, "message": ...}.
func writeError(c *gin.Context, logger *log.Logger, err error) {
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation_error", "message": validationErr.Message})
		return
	}

	var childrenErr *domain.HasChildrenError
	if errors.As(err, &childrenErr) {
		c.JSON(http.StatusConflict, gin.H{
			"error":    "has_children",
			"message":  childrenErr.Error() + "; retry with force=true to delete them as well",
			"children": childrenErr.Children,
		})
		return
	}

	if errors.Is(err, domain.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not_found", "message": "not found"})
		return
	}

	var uploadErr *domain.UploadError
	if errors.As(err, &uploadErr) {
		logger.Printf("upload error: %v", uploadErr)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "upload_error", "message": uploadErr.Error()})
		return
	}

	var storageErr *domain.StorageError
	if errors.As(err, &storageErr) {
		logger.Printf("storage error: %v", storageErr)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "storage_error", "message": storageErr.Error()})
		return
	}

	logger.Printf("internal error: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal", "message": "internal server error"})
}

func bindError(err error) error {
	return domain.NewValidationError("invalid request body: %v", err)
}
