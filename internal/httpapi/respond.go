package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// detail writes the error body the legacy frontend expects: a bare
// {"detail": "..."} object with a client or server status code.
func detail(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"detail": msg})
}

// serverError reports an unexpected storage failure. The transaction has
// already been rolled back by the service layer; the underlying message is
// surfaced as-is.
func serverError(c *gin.Context, err error) {
	detail(c, http.StatusInternalServerError, err.Error())
}
