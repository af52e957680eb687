// file: internal/config/config.go
// version: 1.0.0
// guid: 2f8b4c1d-9a3e-4b7f-8c2d-5e6f7a8b9c0d

package config

import (
	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	MusicDir string
	Verbose  bool
}

var AppConfig Config

// InitConfig initializes the application configuration
func InitConfig() {
	AppConfig = Config{
		MusicDir: viper.GetString("music_dir"),
		Verbose:  viper.GetBool("verbose"),
	}
}
