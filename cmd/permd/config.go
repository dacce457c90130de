package main

import (
	"log"
	"os"

	"github.com/go-yaml/yaml"

	"github.com/totegamma/permgraph/core"
)

type Config struct {
	Server    Server      `yaml:"server"`
	Permgraph core.Config `yaml:"permgraph"`
}

type Server struct {
	Dsn           string `yaml:"dsn"`
	RedisAddr     string `yaml:"redisAddr"`
	RedisDB       int    `yaml:"redisDB"`
	MemcachedAddr string `yaml:"memcachedAddr"`
	EnableTrace   bool   `yaml:"enableTrace"`
	TraceEndpoint string `yaml:"traceEndpoint"`
	Listen        string `yaml:"listen"`
}

// Load loads config from given path
func (c *Config) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		log.Fatal("failed to open configuration file:", err)
		return err
	}
	defer f.Close()

	err = yaml.NewDecoder(f).Decode(&c)
	if err != nil {
		log.Fatal("failed to load configuration file:", err)
		return err
	}

	if c.Server.Listen == "" {
		c.Server.Listen = ":8000"
	}
	c.Permgraph = c.Permgraph.WithDefaults()

	return nil
}
