package main

import (
	"net/http"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
)

type healthEnv struct {
	URL string `env:"POKEMONSIM_HEALTH_URL" envDefault:"http://127.0.0.1:8080/api/version"`
}

func main() {
	var cfg healthEnv
	if err := env.Parse(&cfg); err != nil {
		os.Exit(1)
	}
	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get(cfg.URL)
	if err != nil {
		os.Exit(1)
	}
	defer resp.Body.Close()
	// Consider any status < 500 as healthy
	if resp.StatusCode >= 500 {
		os.Exit(1)
	}
	os.Exit(0)
}
