package core

import (
	"time"
)

// Config is the engine configuration shared by every service
type Config struct {
	DirectoryEndpoint   string            `yaml:"directoryEndpoint"`
	DirectoryTimeout    time.Duration     `yaml:"directoryTimeout"`
	DirectoryCacheTTL   time.Duration     `yaml:"directoryCacheTTL"`
	PermissionCacheTTL  time.Duration     `yaml:"permissionCacheTTL"`
	EvaluationTimeout   time.Duration     `yaml:"evaluationTimeout"`
	DefaultMaxDepth     int               `yaml:"defaultMaxDepth"`
	Scripts             map[string]string `yaml:"scripts"`
	EnableEndpointHooks bool              `yaml:"enableEndpointHooks"`
	EndpointTimeout     time.Duration     `yaml:"endpointTimeout"`
	ValidateRoots       []string          `yaml:"validateRoots"`
	ValidateInterval    time.Duration     `yaml:"validateInterval"`
	JobInterval         time.Duration     `yaml:"jobInterval"`
}

// WithDefaults fills unset values.
func (c Config) WithDefaults() Config {
	if c.DirectoryTimeout == 0 {
		c.DirectoryTimeout = 3 * time.Second
	}
	if c.DirectoryCacheTTL == 0 {
		c.DirectoryCacheTTL = 5 * time.Minute
	}
	if c.PermissionCacheTTL == 0 {
		c.PermissionCacheTTL = 10 * time.Minute
	}
	if c.EvaluationTimeout == 0 {
		c.EvaluationTimeout = 2 * time.Second
	}
	if c.DefaultMaxDepth == 0 {
		c.DefaultMaxDepth = DefaultMaxDepth
	}
	if c.EndpointTimeout == 0 {
		c.EndpointTimeout = 3 * time.Second
	}
	if c.ValidateInterval == 0 {
		c.ValidateInterval = 10 * time.Minute
	}
	if c.JobInterval == 0 {
		c.JobInterval = 60 * time.Second
	}
	return c
}
