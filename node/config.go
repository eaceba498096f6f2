package node

import (
	"os"

	"github.com/sgostarter/libsigmacurve/curve"
	"gopkg.in/yaml.v3"
)

const (
	defaultMinSteps     = 2
	defaultMaxSteps     = 4096
	defaultDefaultSteps = 20
)

type Config struct {
	MinSteps     int `yaml:"minSteps" json:"minSteps"`
	MaxSteps     int `yaml:"maxSteps" json:"maxSteps"`
	DefaultSteps int `yaml:"defaultSteps" json:"defaultSteps"`

	DefaultControlPoints []curve.ControlPoint `yaml:"defaultControlPoints" json:"defaultControlPoints"`
}

func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.fix()

	return cfg
}

func LoadConfig(file string) (cfg *Config, err error) {
	d, err := os.ReadFile(file)
	if err != nil {
		return
	}

	cfg = &Config{}

	err = yaml.Unmarshal(d, cfg)
	if err != nil {
		cfg = nil

		return
	}

	cfg.fix()

	return
}

func (cfg *Config) fix() {
	if cfg.MinSteps < defaultMinSteps {
		cfg.MinSteps = defaultMinSteps
	}

	if cfg.MaxSteps <= 0 || cfg.MaxSteps > defaultMaxSteps {
		cfg.MaxSteps = defaultMaxSteps
	}

	if cfg.MinSteps > cfg.MaxSteps {
		cfg.MinSteps = defaultMinSteps
	}

	if cfg.DefaultSteps <= 0 {
		cfg.DefaultSteps = defaultDefaultSteps
	}

	if cfg.DefaultSteps < cfg.MinSteps {
		cfg.DefaultSteps = cfg.MinSteps
	}

	if cfg.DefaultSteps > cfg.MaxSteps {
		cfg.DefaultSteps = cfg.MaxSteps
	}

	if len(cfg.DefaultControlPoints) == 0 {
		cfg.DefaultControlPoints = curve.DefaultControlPoints()
	}
}
