package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-lifelink/geocode"
	"go-lifelink/session"
)

// TriggerSearch issues a search for the session's current filters. When the
// browser supplies a region and the session has no device fix, the region is
// geocoded and used as the search origin. Geocoding failure is non-fatal:
// the search still runs from the default origin.
func TriggerSearch(c *gin.Context, m *session.Manager) {
	o := lookupSession(c, m)
	if o == nil {
		return
	}

	var request struct {
		Region string `json:"region"`
	}
	// Body is optional; an empty body triggers a plain search.
	if err := c.ShouldBindJSON(&request); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if request.Region != "" && o.Snapshot().UserLocation == nil {
		coord, err := geocode.RegionCoordinate(c.Request.Context(), request.Region)
		if err != nil {
			log.Printf("Failed to geocode region %q: %v", request.Region, err)
		} else {
			o.SetFallbackOrigin(coord)
		}
	}

	token := o.TriggerSearch()
	c.JSON(http.StatusAccepted, gin.H{"requestToken": token, "state": o.Snapshot()})
}
