// Package agent runs some scheduled tasks
package agent

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"

	"github.com/totegamma/permgraph/core"
	"github.com/totegamma/permgraph/x/job"
)

var tracer = otel.Tracer("agent")

const jobRetention = 7 * 24 * time.Hour

var (
	registerOnce     sync.Once
	chainValidations *prometheus.CounterVec
)

func registerMetrics() {
	registerOnce.Do(func() {
		chainValidations = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "permgraph_chain_validations_total",
			Help: "Total number of scheduled inheritance chain validations",
		}, []string{"result"})
		prometheus.MustRegister(chainValidations)
	})
}

type agent struct {
	inheritance core.InheritanceService
	job         core.JobService
	reactor     job.Reactor
	config      core.Config
}

// NewAgent creates a new agent
func NewAgent(
	inheritance core.InheritanceService,
	jobService core.JobService,
	reactor job.Reactor,
	config core.Config,
) core.AgentService {
	registerMetrics()
	return &agent{
		inheritance,
		jobService,
		reactor,
		config.WithDefaults(),
	}
}

// Boot starts agent
func (a *agent) Boot() {
	slog.Info("agent start!", slog.String("module", "agent"))

	a.reactor.Start(context.Background())

	validateTicker := time.NewTicker(a.config.ValidateInterval)
	go func() {
		for range validateTicker.C {
			ctx, span := tracer.Start(context.Background(), "Agent.Boot.ValidateRoots")
			a.validateRoots(ctx)
			span.End()
		}
	}()

	cleanTicker := time.NewTicker(time.Hour)
	go func() {
		for range cleanTicker.C {
			ctx, span := tracer.Start(context.Background(), "Agent.Boot.CleanJobs")
			a.cleanJobs(ctx)
			span.End()
		}
	}()
}

// validateRoots checks every configured root and reports the ones that went bad.
func (a *agent) validateRoots(ctx context.Context) int {
	ctx, span := tracer.Start(ctx, "Agent.ValidateRoots")
	defer span.End()

	invalid := 0
	for _, root := range a.config.ValidateRoots {
		chain, err := a.inheritance.ValidateChain(ctx, root)
		if err != nil {
			span.RecordError(err)
			chainValidations.WithLabelValues("error").Inc()
			slog.ErrorContext(
				ctx, "failed to validate chain",
				slog.String("root", root),
				slog.String("error", err.Error()),
				slog.String("module", "agent"),
			)
			continue
		}

		if chain.IsValid {
			chainValidations.WithLabelValues("valid").Inc()
			continue
		}

		invalid++
		chainValidations.WithLabelValues("invalid").Inc()
		for _, issue := range chain.Issues {
			slog.WarnContext(
				ctx, "inheritance chain issue",
				slog.String("root", root),
				slog.String("code", issue.Code),
				slog.String("message", issue.Message),
				slog.String("module", "agent"),
			)
		}
	}

	return invalid
}

func (a *agent) cleanJobs(ctx context.Context) {
	ctx, span := tracer.Start(ctx, "Agent.CleanJobs")
	defer span.End()

	jobs, err := a.job.Clean(ctx, time.Now().Add(-jobRetention))
	if err != nil {
		span.RecordError(err)
		slog.ErrorContext(ctx, "failed to clean jobs", slog.String("error", err.Error()), slog.String("module", "agent"))
		return
	}

	if len(jobs) > 0 {
		slog.InfoContext(ctx, "cleaned jobs", slog.Int("count", len(jobs)), slog.String("module", "agent"))
	}
}
