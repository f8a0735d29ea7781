// Package config loads the YAML configuration for the service: the HTTP
// listener, the run store, and the engine constants that are fixed per
// deployment rather than per request.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Alper-bit/QTunelling-API/internal/qsim"
)

type Config struct {
	Server ServerConfig `yaml:"server"`
	Engine EngineConfig `yaml:"engine"`
}

type ServerConfig struct {
	Addr            string `yaml:"addr"`
	DataDir         string `yaml:"data_dir"`
	ShutdownSeconds int    `yaml:"shutdown_seconds"`
}

type EngineConfig struct {
	// BarrierHeight is fixed per deployment and reported in every payload.
	BarrierHeight float64 `yaml:"barrier_height"`
	// Defaults fill omitted request fields.
	Defaults qsim.SimulationParameters `yaml:"defaults"`
}

func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            ":8000",
			DataDir:         ".qtunnel",
			ShutdownSeconds: 10,
		},
		Engine: EngineConfig{
			BarrierHeight: qsim.DefaultBarrierHeight,
			Defaults:      qsim.DefaultParameters(),
		},
	}
}

// Load reads path over the defaults; fields absent from the file keep their
// default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
