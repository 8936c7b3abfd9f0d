package api

import (
	"github.com/FernandosLando/pokemonSim/internal/game"
	"github.com/FernandosLando/pokemonSim/internal/server"
	"github.com/FernandosLando/pokemonSim/internal/storage"
)

// BattleLister exposes the battle server's live registry snapshot.
type BattleLister interface {
	Battles() []server.BattleInfo
}

// Handler groups the read-only ops endpoints: catalog data, the battle
// registry and player aggregates.
type Handler struct {
	dex    *game.Dex
	repo   storage.Repository
	lister BattleLister
}

func NewHandler(dex *game.Dex, repo storage.Repository, lister BattleLister) *Handler {
	return &Handler{dex: dex, repo: repo, lister: lister}
}
