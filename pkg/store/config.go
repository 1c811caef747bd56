package store

import (
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config resolves where the itinerary database lives on disk.
type Config interface {
	BasePath() string
}

// LoadConfig reads the .trip config file (current directory, or the
// directory named by TRIP_CONFIG_PATH) and the TRIP_* environment.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.trip.db")
	viper.SetConfigName(".trip") // .yaml is implicit
	viper.SetEnvPrefix("TRIP")
	viper.AutomaticEnv()

	if override := os.Getenv("TRIP_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, err
	}

	return &fileConfig{Path: path}, nil
}

type fileConfig struct {
	Path string `json:"path"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}
