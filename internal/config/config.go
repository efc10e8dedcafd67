package config

import "github.com/spf13/viper"

func Load() error {
	// API Configuration
	viper.SetDefault("API_ADDR", ":8080")
	viper.SetDefault("ALLOWED_ORIGINS",
		"http://localhost:3000,http://localhost:3001,http://localhost:3002,"+
			"http://127.0.0.1:3000,http://127.0.0.1:3001,http://127.0.0.1:3002")

	// Upstream data provider
	viper.SetDefault("POWER_BASE_URL", "https://power.larc.nasa.gov")

	// Externally reachable URL used by the keep-alive self-ping.
	// Empty disables the ping.
	viper.SetDefault("SELF_URL", "")

	viper.AutomaticEnv()
	return nil
}

func APIAddr() string        { return viper.GetString("API_ADDR") }
func AllowedOrigins() string { return viper.GetString("ALLOWED_ORIGINS") }
func PowerBaseURL() string   { return viper.GetString("POWER_BASE_URL") }
func SelfURL() string        { return viper.GetString("SELF_URL") }
