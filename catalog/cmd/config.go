package main

import (
	"github.com/abhishek622/portfolioapp/internal/grpcutil"
	"github.com/abhishek622/portfolioapp/pkg/tracing"
)

type config struct {
	API              apiConfig              `yaml:"api"`
	Logging          loggingConfig          `yaml:"logging"`
	Storage          storageConfig          `yaml:"storage"`
	Seed             string                 `yaml:"seed"`
	TLS              grpcutil.TLSConfig     `yaml:"tls"`
	ServiceDiscovery serviceDiscoveryConfig `yaml:"serviceDiscovery"`
	Jaeger           tracing.Config         `yaml:"jaeger"`
}

type apiConfig struct {
	Port           int      `yaml:"port"`
	HTTPPort       int      `yaml:"httpPort"`
	Prefix         string   `yaml:"prefix"`
	RateLimit      int      `yaml:"rateLimit"`
	Burst          int      `yaml:"burst"`
	AllowedOrigins []string `yaml:"allowedOrigins"`
}

type loggingConfig struct {
	Development bool `yaml:"development"`
}

type storageConfig struct {
	// memory | mysql
	Backend string `yaml:"backend"`
	MySQL   struct {
		DSN string `yaml:"dsn"`
	} `yaml:"mysql"`
}

type serviceDiscoveryConfig struct {
	Consul consulConfig `yaml:"consul"`
}

type consulConfig struct {
	Address string `yaml:"address"`
}
