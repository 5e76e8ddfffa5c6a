package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"scheduler-simulator/internal/analytics"
)

type SchedulerConfig struct {
	Port                  int
	RoundRobinTimeQuantum int
	MaxProcesses          int
	WaitingWeight         float64
	TurnaroundWeight      float64
	AllowOrigins          string
	BodyLimit             int
}

func (c *SchedulerConfig) Policy() analytics.Policy {
	return analytics.Policy{
		WaitingWeight:    c.WaitingWeight,
		TurnaroundWeight: c.TurnaroundWeight,
	}
}

var once sync.Once
var config *SchedulerConfig
var configErr error

// GetSchedulerConfig loads ./config.yaml once and hands every caller the
// same config.
func GetSchedulerConfig() (*SchedulerConfig, error) {
	once.Do(func() {
		config, configErr = Load("")
	})

	return config, configErr
}

// Load reads config.yaml from the working directory, or path when given.
// A missing default file is not an error; every key has a default and can
// be overridden by a SCHEDULER_ prefixed environment variable, including
// ones set in a local .env file.
func Load(path string) (*SchedulerConfig, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("port", 9095)
	v.SetDefault("scheduler.round_robin.time_quantum", 2)
	v.SetDefault("scheduler.max_processes", 50)
	v.SetDefault("recommendation.waiting_weight", 1.0)
	v.SetDefault("recommendation.turnaround_weight", 1.0)
	v.SetDefault("server.allow_origins", "*")
	v.SetDefault("server.body_limit", 1<<20)

	v.SetEnvPrefix("scheduler")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	c := &SchedulerConfig{
		Port:                  v.GetInt("port"),
		RoundRobinTimeQuantum: v.GetInt("scheduler.round_robin.time_quantum"),
		MaxProcesses:          v.GetInt("scheduler.max_processes"),
		WaitingWeight:         v.GetFloat64("recommendation.waiting_weight"),
		TurnaroundWeight:      v.GetFloat64("recommendation.turnaround_weight"),
		AllowOrigins:          v.GetString("server.allow_origins"),
		BodyLimit:             v.GetInt("server.body_limit"),
	}
	if c.RoundRobinTimeQuantum <= 0 {
		return nil, fmt.Errorf("scheduler.round_robin.time_quantum must be positive, got %d", c.RoundRobinTimeQuantum)
	}
	if c.WaitingWeight < 0 || c.TurnaroundWeight < 0 {
		return nil, fmt.Errorf("recommendation weights must not be negative")
	}
	return c, nil
}
