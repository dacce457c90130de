//go:generate go run go.uber.org/mock/mockgen -source=repository.go -destination=mock/repository.go
package job

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/totegamma/permgraph/core"
)

var tracer = otel.Tracer("job")

const (
	StatusPending   = "pending"
	StatusRunning   = "running"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
	StatusCanceled  = "canceled"
)

type Repository interface {
	List(ctx context.Context, authorID string) ([]core.Job, error)
	Enqueue(ctx context.Context, author, typ, payload string, scheduled time.Time) (core.Job, error)
	Dequeue(ctx context.Context) (*core.Job, error)
	Complete(ctx context.Context, id, status, result string) (core.Job, error)
	Cancel(ctx context.Context, id string) (core.Job, error)
	Clean(ctx context.Context, olderThan time.Time) ([]core.Job, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db}
}

func (r *repository) List(ctx context.Context, authorID string) ([]core.Job, error) {
	ctx, span := tracer.Start(ctx, "Job.Repository.List")
	defer span.End()

	var jobs []core.Job
	err := r.db.WithContext(ctx).Where("author = ?", authorID).Order("scheduled ASC").Find(&jobs).Error
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	return jobs, nil
}

func (r *repository) Enqueue(ctx context.Context, author, typ, payload string, scheduled time.Time) (core.Job, error) {
	ctx, span := tracer.Start(ctx, "Job.Repository.Enqueue")
	defer span.End()

	job := core.Job{
		Author:    author,
		Type:      typ,
		Payload:   payload,
		Scheduled: scheduled,
		Status:    StatusPending,
	}

	if err := r.db.WithContext(ctx).Create(&job).Error; err != nil {
		span.RecordError(err)
		return core.Job{}, err
	}

	return job, nil
}

// Dequeue claims the oldest due pending job. It returns ErrorNotFound when nothing is due.
func (r *repository) Dequeue(ctx context.Context) (*core.Job, error) {
	ctx, span := tracer.Start(ctx, "Job.Repository.Dequeue")
	defer span.End()

	var job core.Job
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.
			Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
			Where("status = ? AND scheduled <= ?", StatusPending, time.Now()).
			Order("scheduled ASC").
			First(&job).Error
		if err != nil {
			return err
		}

		job.Status = StatusRunning
		job.TraceID = span.SpanContext().TraceID().String()
		return tx.Save(&job).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, core.NewErrorNotFound()
		}
		span.RecordError(err)
		return nil, err
	}

	return &job, nil
}

func (r *repository) Complete(ctx context.Context, id, status, result string) (core.Job, error) {
	ctx, span := tracer.Start(ctx, "Job.Repository.Complete")
	defer span.End()

	var job core.Job
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&job).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return core.Job{}, core.NewErrorNotFound()
		}
		return core.Job{}, err
	}

	job.Status = status
	job.Result = result

	if err := r.db.WithContext(ctx).Save(&job).Error; err != nil {
		span.RecordError(err)
		return core.Job{}, err
	}

	return job, nil
}

// Cancel stops a job that has not started yet.
func (r *repository) Cancel(ctx context.Context, id string) (core.Job, error) {
	ctx, span := tracer.Start(ctx, "Job.Repository.Cancel")
	defer span.End()

	var job core.Job
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&job).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return core.Job{}, core.NewErrorNotFound()
		}
		return core.Job{}, err
	}

	if job.Status != StatusPending {
		return core.Job{}, core.NewErrorInvalidArgument("job is already " + job.Status)
	}

	job.Status = StatusCanceled

	if err := r.db.WithContext(ctx).Save(&job).Error; err != nil {
		span.RecordError(err)
		return core.Job{}, err
	}

	return job, nil
}

// Clean deletes finished jobs scheduled before olderThan and returns them.
func (r *repository) Clean(ctx context.Context, olderThan time.Time) ([]core.Job, error) {
	ctx, span := tracer.Start(ctx, "Job.Repository.Clean")
	defer span.End()

	var jobs []core.Job
	err := r.db.WithContext(ctx).
		Clauses(clause.Returning{}).
		Where("scheduled < ? AND status IN ?", olderThan, []string{StatusCompleted, StatusFailed, StatusCanceled}).
		Delete(&jobs).Error
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	return jobs, nil
}
