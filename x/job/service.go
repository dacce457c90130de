package job

import (
	"context"
	"encoding/json"
	"time"

	"github.com/totegamma/permgraph/core"
)

type service struct {
	repo Repository
}

func NewService(repo Repository) core.JobService {
	return &service{
		repo,
	}
}

func (s *service) List(ctx context.Context, requester string) ([]core.Job, error) {
	ctx, span := tracer.Start(ctx, "Job.Service.List")
	defer span.End()

	jobs, err := s.repo.List(ctx, requester)
	if err != nil {
		return nil, err
	}

	return jobs, nil
}

// Create enqueues a job after checking that its payload fits the job type.
func (s *service) Create(ctx context.Context, requester, typ, payload string, scheduled time.Time) (core.Job, error) {
	ctx, span := tracer.Start(ctx, "Job.Service.Create")
	defer span.End()

	switch typ {
	case core.JobTypeBulkApply:
		var p BulkApplyPayload
		if err := json.Unmarshal([]byte(payload), &p); err != nil || len(p.IDs) == 0 {
			return core.Job{}, core.NewErrorInvalidArgument("bulk apply needs a non empty ids list")
		}
	case core.JobTypeValidateChain:
		var p ValidateChainPayload
		if err := json.Unmarshal([]byte(payload), &p); err != nil || p.RootID == "" {
			return core.Job{}, core.NewErrorInvalidArgument("chain validation needs a rootID")
		}
	default:
		return core.Job{}, core.NewErrorInvalidArgument("unknown job type " + typ)
	}

	if scheduled.IsZero() {
		scheduled = time.Now()
	}

	job, err := s.repo.Enqueue(ctx, requester, typ, payload, scheduled)
	if err != nil {
		span.RecordError(err)
		return core.Job{}, err
	}

	return job, nil
}

func (s *service) Dequeue(ctx context.Context) (*core.Job, error) {
	ctx, span := tracer.Start(ctx, "Job.Service.Dequeue")
	defer span.End()

	job, err := s.repo.Dequeue(ctx)
	if err != nil {
		return nil, err
	}

	return job, nil
}

func (s *service) Complete(ctx context.Context, id, status, result string) (core.Job, error) {
	ctx, span := tracer.Start(ctx, "Job.Service.Complete")
	defer span.End()

	job, err := s.repo.Complete(ctx, id, status, result)
	if err != nil {
		span.RecordError(err)
		return core.Job{}, err
	}

	return job, nil
}

func (s *service) Cancel(ctx context.Context, id string) (core.Job, error) {
	ctx, span := tracer.Start(ctx, "Job.Service.Cancel")
	defer span.End()

	job, err := s.repo.Cancel(ctx, id)
	if err != nil {
		return core.Job{}, err
	}

	return job, nil
}

func (s *service) Clean(ctx context.Context, olderThan time.Time) ([]core.Job, error) {
	ctx, span := tracer.Start(ctx, "Job.Service.Clean")
	defer span.End()

	jobs, err := s.repo.Clean(ctx, olderThan)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	return jobs, nil
}
