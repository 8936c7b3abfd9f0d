package main

import (
	"github.com/FernandosLando/pokemonSim/internal/api"
	"github.com/FernandosLando/pokemonSim/internal/config"
	"github.com/FernandosLando/pokemonSim/internal/constants"
	"github.com/FernandosLando/pokemonSim/internal/logging"
	"github.com/FernandosLando/pokemonSim/internal/server"
	"github.com/FernandosLando/pokemonSim/internal/storage"

	"github.com/caarlos0/env/v11"
)

// appEnv collects the process environment. Addresses left empty fall
// back to whatever the configuration file (or its defaults) provide.
type appEnv struct {
	ConfigPath    string `env:"POKEMONSIM_CONFIG" envDefault:"./pokemon_config.json"`
	DatabasePath  string `env:"POKEMONSIM_DB" envDefault:"./data/pokemon-sim.db"`
	BattleAddress string `env:"POKEMONSIM_BATTLE_ADDR"`
	OpsAddress    string `env:"POKEMONSIM_OPS_ADDR"`
}

func main() {
	var envCfg appEnv
	if err := env.Parse(&envCfg); err != nil {
		logging.Fatal("Failed to read environment", err, nil)
	}

	cfg, err := config.LoadConfig(envCfg.ConfigPath)
	if err != nil {
		logging.Fatal("Missing or invalid battle configuration", err, logging.Fields{"config_path": envCfg.ConfigPath, "hint": "create a pokemon_config.json with 'species', 'moves' and 'type_chart' sections and optional server.battle_address / server.ops_address"})
	}

	battleAddr := cfg.BattleAddress
	if envCfg.BattleAddress != "" {
		battleAddr = envCfg.BattleAddress
	}
	opsAddr := cfg.OpsAddress
	if envCfg.OpsAddress != "" {
		opsAddr = envCfg.OpsAddress
	}

	db, err := storage.OpenAndMigrate(envCfg.DatabasePath)
	if err != nil {
		logging.Fatal("Failed to initialize database", err, logging.Fields{"db_path": envCfg.DatabasePath})
	}
	repo := storage.NewSQLiteRepository(db)

	srv := server.NewServer(cfg.Dex, repo)

	// Ops API runs beside the battle listener: version, catalog, open
	// battles and the leaderboard.
	router := api.NewRouter(api.NewHandler(cfg.Dex, repo, srv))
	go func() {
		logging.Info("Ops API started", logging.Fields{constants.LogFieldAddr: opsAddr})
		if err := router.Run(opsAddr); err != nil {
			logging.Fatal("Failed to start ops API", err, nil)
		}
	}()

	logging.Info("Battle server started", logging.Fields{constants.LogFieldAddr: battleAddr})
	if err := srv.Run(battleAddr); err != nil {
		logging.Fatal("Failed to start battle server", err, nil)
	}
}
