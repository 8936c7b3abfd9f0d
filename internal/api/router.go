package api

import (
	"github.com/FernandosLando/pokemonSim/internal/constants"
	"github.com/gin-gonic/gin"
)

// NewRouter wires the ops endpoints onto a gin engine.
func NewRouter(h *Handler) *gin.Engine {
	router := gin.Default()

	apiRoutes := router.Group(constants.RouteAPIPrefix)
	{
		apiRoutes.GET(constants.RouteVersion, Version)
		apiRoutes.GET(constants.RouteSpecies, h.ListSpecies)
		apiRoutes.GET(constants.RouteMoves, h.ListMoves)
		apiRoutes.GET(constants.RouteBattles, h.ListBattles)
		apiRoutes.GET(constants.RouteLeaderboard, h.ListLeaderboard)
		apiRoutes.GET(constants.RoutePlayerByName, h.GetPlayerByName)
	}

	return router
}
