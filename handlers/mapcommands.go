package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"go-lifelink/session"
)

// MapCommands serves the session's map command journal so the browser bridge
// can replay renderer operations against its tile library. The browser polls
// with ?cursor=N and applies whatever arrived since.
func MapCommands(c *gin.Context, m *session.Manager) {
	id := c.Param("sessionId")
	journal, ok := m.Journal(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown session"})
		return
	}

	cursor := 0
	if raw := c.Query("cursor"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cursor must be an integer"})
			return
		}
		cursor = parsed
	}

	commands, next := journal.CommandsSince(cursor)
	c.JSON(http.StatusOK, gin.H{"commands": commands, "cursor": next})
}
