//go:build wireinject

package main

import (
	"github.com/google/wire"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/totegamma/permgraph/core"
	"github.com/totegamma/permgraph/x/agent"
	"github.com/totegamma/permgraph/x/inheritance"
	"github.com/totegamma/permgraph/x/job"
)

var inheritanceServiceProvider = wire.NewSet(inheritance.NewService, inheritance.NewRepository)
var jobServiceProvider = wire.NewSet(job.NewService, job.NewRepository)

func SetupAgent(db *gorm.DB, rdb *redis.Client, config core.Config) core.AgentService {
	wire.Build(agent.NewAgent, job.NewReactor, inheritanceServiceProvider, jobServiceProvider)
	return nil
}
