package ui

import (
	"github.com/avelys/disktop/config"
	"github.com/avelys/disktop/model"
)

// saveDefaultMode persists the current detail view as the startup default.
func saveDefaultMode(mode model.DisplayMode) error {
	cfg := config.Load()
	cfg.DefaultMode = mode.String()
	return config.Save(cfg)
}
