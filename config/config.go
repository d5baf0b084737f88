package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds server configuration.
type Config struct {
	Server    ServerConfig
	Log       LogConfig
	Telemetry TelemetryConfig
	Assets    AssetsConfig
}

type ServerConfig struct {
	Addr        string
	Name        string
	Description string
	Version     string
}

type LogConfig struct {
	Level string
}

// TelemetryConfig enables OTLP tracing when OTLPEndpoint is set.
type TelemetryConfig struct {
	OTLPEndpoint string `mapstructure:"otlp_endpoint"`
	ServiceName  string `mapstructure:"service_name"`
}

type AssetsConfig struct {
	LottieScript string `mapstructure:"lottie_script"`
}

// Load reads configuration from file and env. Env var overrides use prefix FRONTEND_.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("server.addr", ":8000")
	v.SetDefault("server.name", "Loader")
	v.SetDefault("server.description", "Loading indicator demo")
	v.SetDefault("server.version", "v1")
	v.SetDefault("log.level", "info")
	v.SetDefault("telemetry.otlp_endpoint", "")
	v.SetDefault("telemetry.service_name", "frontend")
	v.SetDefault("assets.lottie_script", "https://cdnjs.cloudflare.com/ajax/libs/lottie-web/5.12.2/lottie.min.js")

	v.SetConfigType("toml")
	if cfgPath := os.Getenv("FRONTEND_CONFIG"); cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("frontend")
	}

	v.SetEnvPrefix("FRONTEND")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing default file is fine, an explicit one is not.
		var notFound viper.ConfigFileNotFoundError
		if os.Getenv("FRONTEND_CONFIG") != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}
