package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-lifelink/session"
	"go-lifelink/types"
)

// CreateSession opens a new dashboard session and returns its first snapshot.
func CreateSession(c *gin.Context, m *session.Manager) {
	o, err := m.Create()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, o.Snapshot())
}

// lookupSession resolves the :sessionId path param. Replies 404 and returns
// nil when the session is unknown or already reaped.
func lookupSession(c *gin.Context, m *session.Manager) *session.Orchestrator {
	id := c.Param("sessionId")
	o, ok := m.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown session"})
		return nil
	}
	return o
}

// GetSnapshot returns the read-only state the presentational tree renders.
func GetSnapshot(c *gin.Context, m *session.Manager) {
	o := lookupSession(c, m)
	if o == nil {
		return
	}
	c.JSON(http.StatusOK, o.Snapshot())
}

// SelectBloodType updates the blood-type filter for the next search.
func SelectBloodType(c *gin.Context, m *session.Manager) {
	o := lookupSession(c, m)
	if o == nil {
		return
	}

	var request struct {
		BloodType string `json:"bloodType"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	bt, err := types.ParseBloodType(request.BloodType)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	o.SelectBloodType(bt)
	c.JSON(http.StatusOK, o.Snapshot())
}

// SelectSortKey switches result ordering between distance and eta.
func SelectSortKey(c *gin.Context, m *session.Manager) {
	o := lookupSession(c, m)
	if o == nil {
		return
	}

	var request struct {
		SortKey string `json:"sortKey"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	switch types.SortKey(request.SortKey) {
	case types.SortByDistance, types.SortByETA:
		o.SelectSortKey(types.SortKey(request.SortKey))
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "sortKey must be distance or eta"})
		return
	}
	c.JSON(http.StatusOK, o.Snapshot())
}

// ToggleChat flips the chat panel's visibility flag.
func ToggleChat(c *gin.Context, m *session.Manager) {
	o := lookupSession(c, m)
	if o == nil {
		return
	}
	c.JSON(http.StatusOK, gin.H{"chatVisible": o.ToggleChat()})
}

// SelectRole records which dashboard role the user picked. The role only
// drives the out-of-scope presentational tree.
func SelectRole(c *gin.Context, m *session.Manager) {
	o := lookupSession(c, m)
	if o == nil {
		return
	}

	var request struct {
		Role string `json:"role"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	o.SelectRole(request.Role)
	c.JSON(http.StatusOK, o.Snapshot())
}

// CloseSession tears a session down explicitly.
func CloseSession(c *gin.Context, m *session.Manager) {
	m.Close(c.Param("sessionId"))
	c.JSON(http.StatusOK, gin.H{"closed": true})
}
