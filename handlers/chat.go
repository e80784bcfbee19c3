package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-lifelink/session"
)

// SubmitChat appends the user's message and starts the assistant call. Empty
// input and a busy chat are both client errors; neither touches the log.
func SubmitChat(c *gin.Context, m *session.Manager) {
	o := lookupSession(c, m)
	if o == nil {
		return
	}

	var request struct {
		Message string `json:"message"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := o.SubmitChat(request.Message)
	switch {
	case errors.Is(err, session.ErrEmptyMessage):
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is empty"})
	case errors.Is(err, session.ErrChatBusy):
		c.JSON(http.StatusConflict, gin.H{"error": "a reply is still pending"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusAccepted, o.Snapshot())
	}
}
