package config

import "github.com/spf13/viper"

type Config struct {
	Server ServerConfig
	Log    LogConfig
	Store  StoreConfig
}

type ServerConfig struct {
	Port int
}

type LogConfig struct {
	Level string
}

type StoreConfig struct {
	// Seed controls loading of the sample dishes and orders at startup.
	Seed bool
}

func Load() (*Config, error) {
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", 8080)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("STORE_SEED", true)

	cfg := &Config{
		Server: ServerConfig{
			Port: viper.GetInt("SERVER_PORT"),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		Store: StoreConfig{
			Seed: viper.GetBool("STORE_SEED"),
		},
	}

	return cfg, nil
}
