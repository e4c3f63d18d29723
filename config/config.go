package config

import (
	"strconv"
	"strings"

	"github.com/rohanthewiz/serr"
	"github.com/spf13/viper"
)

const (
	defaultPort        = 8080
	defaultContentDir  = "public"
	defaultServiceName = "leapsychology-legal"
)

// Config holds application configuration
type Config struct {
	Port        int
	ContentDir  string
	ServiceName string
	Verbose     bool
}

// Address is the listen address, all interfaces on the configured port
func (c *Config) Address() string {
	return ":" + strconv.Itoa(c.Port)
}

// globalConfig holds the application configuration instance
var globalConfig *Config

// Initialize sets up the configuration from environment variables
func Initialize() error {
	cfg, err := Load()
	if err != nil {
		return err
	}
	globalConfig = cfg
	return nil
}

// Get returns the global configuration instance.
// Falls back to defaults if Initialize was never called or failed.
func Get() *Config {
	if globalConfig == nil {
		if err := Initialize(); err != nil {
			globalConfig = defaults()
		}
	}
	return globalConfig
}

// Load reads the configuration from the environment (PORT, CONTENT_DIR, SERVICE_NAME, VERBOSE)
func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault("port", strconv.Itoa(defaultPort))
	v.SetDefault("content_dir", defaultContentDir)
	v.SetDefault("service_name", defaultServiceName)
	v.SetDefault("verbose", false)
	v.AutomaticEnv()

	port, err := parsePort(v.GetString("port"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Port:        port,
		ContentDir:  v.GetString("content_dir"),
		ServiceName: v.GetString("service_name"),
		Verbose:     v.GetBool("verbose"),
	}
	if cfg.ContentDir == "" {
		cfg.ContentDir = defaultContentDir
	}
	if cfg.ServiceName == "" {
		cfg.ServiceName = defaultServiceName
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Port:        defaultPort,
		ContentDir:  defaultContentDir,
		ServiceName: defaultServiceName,
	}
}

// parsePort validates a port value; empty means the default
func parsePort(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return defaultPort, nil
	}
	port, err := strconv.Atoi(raw)
	if err != nil {
		return 0, serr.Wrap(err, "PORT must be numeric, got "+strconv.Quote(raw))
	}
	if port < 1 || port > 65535 {
		return 0, serr.New("PORT out of range: " + raw)
	}
	return port, nil
}
