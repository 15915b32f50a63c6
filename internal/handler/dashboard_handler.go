package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetDashboard returns the per-entity row counts. The counts are fetched
// concurrently and the response is all-or-nothing; the client shows an error
// state rather than partial numbers.
func (a *API) GetDashboard(c *gin.Context) {
	counts, err := a.dashboard.Counts()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Gagal memuat ringkasan")
		return
	}
	c.JSON(http.StatusOK, gin.H{"counts": counts})
}
