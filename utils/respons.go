package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// RespondJSON menulis payload sukses apa adanya, tanpa envelope tambahan.
func RespondJSON(c *gin.Context, code int, data interface{}) {
	c.JSON(code, data)
}

// RespondError menulis envelope error {error} dengan status yang diberikan.
func RespondError(c *gin.Context, code int, err error) {
	c.JSON(code, gin.H{"error": err.Error()})
}

// RespondInternalError menyembunyikan error asli dari client: pesan generik
// plus details berisi err.Error(), error lengkap dicatat di server.
func RespondInternalError(c *gin.Context, err error) {
	if ErrorLogger != nil {
		ErrorLogger.Printf("%s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	c.JSON(http.StatusInternalServerError, gin.H{
		"error":   "Internal server error",
		"details": err.Error(),
	})
}

// RespondServiceError memetakan taksonomi error service ke status HTTP.
// Controller adalah satu-satunya catch boundary per request.
func RespondServiceError(c *gin.Context, err error) {
	var (
		validationErr *ValidationError
		notFoundErr   *NotFoundError
		conflictErr   *ConflictError
	)
	switch {
	case errors.As(err, &validationErr):
		RespondError(c, http.StatusBadRequest, err)
	case errors.As(err, &notFoundErr):
		RespondError(c, http.StatusNotFound, err)
	case errors.As(err, &conflictErr):
		RespondError(c, http.StatusConflict, err)
	default:
		RespondInternalError(c, err)
	}
}
