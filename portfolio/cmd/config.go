package main

import (
	"time"

	"github.com/abhishek622/portfolioapp/internal/grpcutil"
	"github.com/abhishek622/portfolioapp/pkg/metrics"
	"github.com/abhishek622/portfolioapp/pkg/tracing"
)

type config struct {
	API              apiConfig              `yaml:"api"`
	Logging          loggingConfig          `yaml:"logging"`
	Feedback         feedbackConfig         `yaml:"feedback"`
	TLS              grpcutil.TLSConfig     `yaml:"tls"`
	ServiceDiscovery serviceDiscoveryConfig `yaml:"serviceDiscovery"`
	Jaeger           tracing.Config         `yaml:"jaeger"`
	Metrics          metrics.Config         `yaml:"metrics"`
}

type apiConfig struct {
	Port           int      `yaml:"port"`
	Prefix         string   `yaml:"prefix"`
	RateLimit      float64  `yaml:"rateLimit"`
	Burst          int      `yaml:"burst"`
	AllowedOrigins []string `yaml:"allowedOrigins"`
}

type loggingConfig struct {
	Development bool `yaml:"development"`
}

type feedbackConfig struct {
	// remote | local
	Mode    string        `yaml:"mode"`
	BaseURL string        `yaml:"baseUrl"`
	Timeout time.Duration `yaml:"timeout"`
	// SQLite DSN of the fallback store.
	LocalDSN string `yaml:"localDsn"`
}

type serviceDiscoveryConfig struct {
	Consul consulConfig `yaml:"consul"`
}

type consulConfig struct {
	Address string `yaml:"address"`
}
