package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/FernandosLando/pokemonSim/internal/constants"
	"github.com/FernandosLando/pokemonSim/internal/server"
	"github.com/gin-gonic/gin"
)

// ListSpecies returns the species catalog in load order.
func (h *Handler) ListSpecies(c *gin.Context) {
	c.JSON(http.StatusOK, h.dex.Species())
}

// ListMoves returns the move catalog in load order.
func (h *Handler) ListMoves(c *gin.Context) {
	c.JSON(http.StatusOK, h.dex.Moves())
}

// ListBattles returns a snapshot of the battle registry.
func (h *Handler) ListBattles(c *gin.Context) {
	infos := []server.BattleInfo{}
	if h.lister != nil {
		infos = h.lister.Battles()
	}
	c.JSON(http.StatusOK, infos)
}

// ListLeaderboard returns the top players by wins (desc), limited to
// top 10 by default. An explicit ?limit=N must be 1-100.
func (h *Handler) ListLeaderboard(c *gin.Context) {
	limit := 10
	if s := c.Query("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 || n > 100 {
			c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidLimit})
			return
		}
		limit = n
	}
	records, err := h.repo.GetTopPlayers(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchLeaderboard})
		return
	}
	out, err := MarshalIntoSnakeTimestamps(records)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchLeaderboard})
		return
	}
	c.JSON(http.StatusOK, out)
}

// GetPlayerByName returns one player's aggregate record. Unknown names
// come back as an all-zero record rather than a 404.
func (h *Handler) GetPlayerByName(c *gin.Context) {
	name := strings.TrimSpace(c.Param("name"))
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrNameRequired})
		return
	}
	rec, err := h.repo.GetPlayerByName(name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchPlayer})
		return
	}
	out, err := MarshalIntoSnakeTimestamps(rec)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchPlayer})
		return
	}
	c.JSON(http.StatusOK, out)
}
