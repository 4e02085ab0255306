package main

import (
	"github.com/abhishek622/portfolioapp/pkg/kv/s3kv"
	"github.com/abhishek622/portfolioapp/pkg/metrics"
	"github.com/abhishek622/portfolioapp/pkg/tracing"
)

type config struct {
	API              apiConfig              `yaml:"api"`
	Logging          loggingConfig          `yaml:"logging"`
	Storage          storageConfig          `yaml:"storage"`
	Kafka            kafkaConfig            `yaml:"kafka"`
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

type storageConfig struct {
	Backend  string      `yaml:"backend"`
	SQLite   sqlConfig   `yaml:"sqlite"`
	MySQL    sqlConfig   `yaml:"mysql"`
	Postgres sqlConfig   `yaml:"postgres"`
	Mongo    mongoConfig `yaml:"mongo"`
	S3       s3kv.Config `yaml:"s3"`
}

type sqlConfig struct {
	DSN string `yaml:"dsn"`
}

type mongoConfig struct {
	URI        string `yaml:"uri"`
	Database   string `yaml:"database"`
	Collection string `yaml:"collection"`
}

type kafkaConfig struct {
	Enabled bool   `yaml:"enabled"`
	Brokers string `yaml:"brokers"`
	Topic   string `yaml:"topic"`
	GroupID string `yaml:"groupId"`
	Publish bool   `yaml:"publish"`
}

type serviceDiscoveryConfig struct {
	Consul consulConfig `yaml:"consul"`
}

type consulConfig struct {
	Address string `yaml:"address"`
}
