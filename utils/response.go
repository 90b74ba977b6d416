package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// JSONResult sends a message-contract reply: every dispatch answers
// with HTTP 200 and a success flag, mirroring the extension's
// sendResponse semantics. Transport-level failures use JSONBadRequest.
func JSONResult(c *gin.Context, body any) {
	c.JSON(http.StatusOK, body)
}

// JSONBadRequest rejects a request that never reached dispatch
// (unparseable payload, missing action).
func JSONBadRequest(c *gin.Context, err error, message string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"message": message,
		"error":   err.Error(),
	})
}
