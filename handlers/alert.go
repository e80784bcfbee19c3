package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-lifelink/session"
)

// RefreshAlert starts a shortage lookup for the given region. It runs
// alongside any in-flight search; neither waits on the other.
func RefreshAlert(c *gin.Context, m *session.Manager) {
	o := lookupSession(c, m)
	if o == nil {
		return
	}

	var request struct {
		Region string `json:"region"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if request.Region == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "region is required"})
		return
	}

	token := o.RefreshAlert(request.Region)
	c.JSON(http.StatusAccepted, gin.H{"requestToken": token, "state": o.Snapshot()})
}
