// Package config loads and saves this module's on-disk settings: where
// backup-memory files and savestates live, and whether the Rumble Pak's
// haptic output is enabled.
package config

import (
	"os"
	"path/filepath"
	"sync"

	log "slot2cart/internal/log"

	"github.com/BurntSushi/toml"
	"github.com/kirsle/configdir"
)

type Config struct {
	Save  SaveConfig  `toml:"save"`
	Addon AddonConfig `toml:"addon"`
}

type SaveConfig struct {
	// Dir is where backup-memory files are created when a ROM is loaded
	// without an explicit sram_path.
	Dir string `toml:"dir"`
}

type AddonConfig struct {
	RumbleEnabled bool `toml:"rumble_enabled"`
}

func defaultConfig() Config {
	return Config{
		Addon: AddonConfig{RumbleEnabled: true},
	}
}

var ConfigDir = sync.OnceValue(func() string {
	dir := configdir.LocalConfig("slot2cart")
	if err := configdir.MakePath(dir); err != nil {
		log.ModCart.Fatalf("failed to create config directory %s: %v", dir, err)
	}
	return dir
})

const cfgFilename = "config.toml"

// LoadOrDefault loads the configuration from the module's config directory,
// or returns defaultConfig if none exists or it fails to parse.
func LoadOrDefault() Config {
	var cfg Config
	_, err := toml.DecodeFile(filepath.Join(ConfigDir(), cfgFilename), &cfg)
	if err != nil {
		return defaultConfig()
	}
	return cfg
}

// Save writes cfg into the module's config directory.
func Save(cfg Config) error {
	f, err := os.Create(filepath.Join(ConfigDir(), cfgFilename))
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}
