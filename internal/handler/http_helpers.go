package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

func bindJSON(c *gin.Context, dst interface{}, message string) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, http.StatusBadRequest, message)
		return false
	}
	return true
}

func parseUintParam(c *gin.Context, key string) (uint, error) {
	raw := c.Param(key)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return uint(id), nil
}

// confirmDelete enforces the explicit confirmation step before destructive
// actions. The client sends confirm=true only after the user confirmed.
func confirmDelete(c *gin.Context) bool {
	if c.Query("confirm") != "true" {
		respondError(c, http.StatusBadRequest, "Penghapusan memerlukan konfirmasi")
		return false
	}
	return true
}
