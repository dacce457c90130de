package job

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/totegamma/permgraph/core"
)

var (
	registerOnce sync.Once
	jobsTotal    *prometheus.CounterVec
)

func registerMetrics() {
	registerOnce.Do(func() {
		jobsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "permgraph_jobs_total",
			Help: "Total number of processed jobs",
		}, []string{"type", "status"})
		prometheus.MustRegister(jobsTotal)
	})
}

type reactor struct {
	inheritance core.InheritanceService
	job         core.JobService
	config      core.Config
}

type Reactor interface {
	Start(ctx context.Context)
	DispatchJobs(ctx context.Context) int
}

// NewReactor creates a new reactor
func NewReactor(
	inheritance core.InheritanceService,
	job core.JobService,
	config core.Config,
) Reactor {
	registerMetrics()
	return &reactor{
		inheritance,
		job,
		config.WithDefaults(),
	}
}

// Start polls the queue every JobInterval until ctx is done
func (r *reactor) Start(ctx context.Context) {
	slog.Info("reactor start!", slog.String("module", "job"))

	ticker := time.NewTicker(r.config.JobInterval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				ctx, span := tracer.Start(ctx, "Job.Reactor.Tick")
				r.DispatchJobs(ctx)
				span.End()
			}
		}
	}()
}

// DispatchJobs drains every due job and returns how many were processed.
func (r *reactor) DispatchJobs(ctx context.Context) int {
	ctx, span := tracer.Start(ctx, "Job.Reactor.DispatchJobs")
	defer span.End()

	count := 0
	for ctx.Err() == nil {
		job, err := r.job.Dequeue(ctx)
		if err != nil {
			if !core.IsNotFound(err) {
				span.RecordError(err)
				slog.ErrorContext(ctx, "failed to dequeue job", slog.String("error", err.Error()), slog.String("module", "job"))
			}
			break
		}

		switch job.Type {
		case core.JobTypeBulkApply:
			r.dispatchJob(ctx, job, r.jobBulkApply)
		case core.JobTypeValidateChain:
			r.dispatchJob(ctx, job, r.jobValidateChain)
		default:
			slog.ErrorContext(ctx, "unknown job type",
				slog.String("type", job.Type),
				slog.String("module", "job"),
			)
			r.finish(ctx, job, StatusFailed, "unknown job type")
		}
		count++
	}

	return count
}

func (r *reactor) dispatchJob(ctx context.Context, job *core.Job, fn func(context.Context, *core.Job) (string, error)) {
	ctx, span := tracer.Start(ctx, "Job.Reactor.DispatchJob")
	defer span.End()

	result, err := fn(ctx, job)
	if err != nil {
		span.RecordError(err)
		slog.ErrorContext(ctx, "failed to process job",
			slog.String("id", job.ID),
			slog.String("error", err.Error()),
			slog.String("module", "job"),
		)
		if result != "" {
			result += ": "
		}
		r.finish(ctx, job, StatusFailed, result+err.Error())
		return
	}

	r.finish(ctx, job, StatusCompleted, result)
}

func (r *reactor) finish(ctx context.Context, job *core.Job, status, result string) {
	jobsTotal.WithLabelValues(job.Type, status).Inc()

	_, err := r.job.Complete(ctx, job.ID, status, result)
	if err != nil {
		slog.ErrorContext(ctx, "failed to complete job",
			slog.String("id", job.ID),
			slog.String("error", err.Error()),
			slog.String("module", "job"),
		)
	}
}

func (r *reactor) jobBulkApply(ctx context.Context, job *core.Job) (string, error) {
	ctx, span := tracer.Start(ctx, "Job.Reactor.JobBulkApply")
	defer span.End()

	var payload BulkApplyPayload
	err := json.Unmarshal([]byte(job.Payload), &payload)
	if err != nil {
		return "", err
	}

	applied, err := r.inheritance.BulkApply(ctx, payload.IDs)
	result := fmt.Sprintf("applied %d/%d", len(applied), len(payload.IDs))
	if err != nil {
		return result, err
	}

	return result, nil
}

func (r *reactor) jobValidateChain(ctx context.Context, job *core.Job) (string, error) {
	ctx, span := tracer.Start(ctx, "Job.Reactor.JobValidateChain")
	defer span.End()

	var payload ValidateChainPayload
	err := json.Unmarshal([]byte(job.Payload), &payload)
	if err != nil {
		return "", err
	}

	chain, err := r.inheritance.ValidateChain(ctx, payload.RootID)
	if err != nil {
		return "", err
	}

	if chain.IsValid {
		return fmt.Sprintf("valid, length %d", chain.ChainLength), nil
	}

	codes := make([]string, 0, len(chain.Issues))
	for _, issue := range chain.Issues {
		codes = append(codes, issue.Code)
	}
	return fmt.Sprintf("invalid, length %d: %s", chain.ChainLength, strings.Join(codes, ", ")), nil
}
