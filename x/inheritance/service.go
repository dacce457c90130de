package inheritance

import (
	"context"
	"log/slog"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/xid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/totegamma/permgraph/core"
)

var tracer = otel.Tracer("inheritance")

type service struct {
	repository Repository
	config     core.Config
}

func NewService(repository Repository, config core.Config) core.InheritanceService {
	return &service{repository, config.WithDefaults()}
}

// Create validates and stores a new edge, optionally applying it, in one transaction.
// When validation fails the returned error is a core.ValidationError and nothing is written.
func (s *service) Create(ctx context.Context, edge core.PermissionInheritance, autoApply bool) (core.PermissionInheritance, core.ValidationResult, error) {
	ctx, span := tracer.Start(ctx, "Inheritance.Service.Create")
	defer span.End()

	edge.ID = xid.New().String()
	edge.Active = true
	if edge.EffectiveFrom.IsZero() {
		edge.EffectiveFrom = time.Now()
	}
	if edge.Weight == nil {
		weight := core.DefaultInheritanceWeight
		edge.Weight = &weight
	}
	edge.MaxDepth = s.maxDepth(edge)
	if edge.UpdatedBy == "" {
		edge.UpdatedBy = edge.CreatedBy
	}

	span.SetAttributes(
		attribute.String("parent", edge.ParentID),
		attribute.String("child", edge.ChildID),
		attribute.String("type", string(edge.Type)),
	)

	var created core.PermissionInheritance
	var validation core.ValidationResult

	err := s.repository.Transaction(ctx, func(repo Repository) error {
		var err error
		validation, err = s.validate(ctx, repo, edge)
		if err != nil {
			return err
		}
		if !validation.IsValid {
			return core.NewValidationError(validation.Issues)
		}

		_, err = repo.FindActive(ctx, edge.ParentID, edge.ChildID)
		if err == nil {
			return core.NewErrorAlreadyExists()
		}
		if !core.IsNotFound(err) {
			return err
		}

		created, err = repo.Create(ctx, edge)
		if err != nil {
			return err
		}

		if autoApply {
			_, err = s.apply(ctx, repo, created)
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return core.PermissionInheritance{}, validation, err
	}

	slog.InfoContext(
		ctx, "inheritance created",
		slog.String("id", created.ID),
		slog.String("parent", created.ParentID),
		slog.String("child", created.ChildID),
		slog.Bool("applied", autoApply),
		slog.String("module", "inheritance"),
	)

	return created, validation, nil
}

// Remove deactivates an edge. Edges are never physically deleted.
func (s *service) Remove(ctx context.Context, id, updatedBy string) (core.PermissionInheritance, error) {
	ctx, span := tracer.Start(ctx, "Inheritance.Service.Remove")
	defer span.End()

	edge, err := s.repository.Deactivate(ctx, id, updatedBy, time.Now())
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return edge, err
	}

	slog.InfoContext(
		ctx, "inheritance removed",
		slog.String("id", id),
		slog.String("module", "inheritance"),
	)

	return edge, nil
}

func (s *service) Validate(ctx context.Context, edge core.PermissionInheritance) (core.ValidationResult, error) {
	ctx, span := tracer.Start(ctx, "Inheritance.Service.Validate")
	defer span.End()

	result, err := s.validate(ctx, s.repository, edge)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return result, err
	}

	span.SetAttributes(attribute.Bool("valid", result.IsValid))
	return result, nil
}

func (s *service) ValidateChain(ctx context.Context, rootID string) (core.ChainValidationResult, error) {
	ctx, span := tracer.Start(ctx, "Inheritance.Service.ValidateChain")
	defer span.End()

	result, err := s.validateChain(ctx, s.repository, rootID)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return result, err
	}

	span.SetAttributes(
		attribute.Bool("valid", result.IsValid),
		attribute.Int("length", result.ChainLength),
	)
	return result, nil
}

// Apply re-applies an active edge to its child.
func (s *service) Apply(ctx context.Context, id string) (core.Permission, error) {
	ctx, span := tracer.Start(ctx, "Inheritance.Service.Apply")
	defer span.End()

	var applied core.Permission
	err := s.repository.Transaction(ctx, func(repo Repository) error {
		edge, err := repo.Get(ctx, id)
		if err != nil {
			return err
		}
		if !edge.Active {
			return core.NewErrorAlreadyDeleted()
		}
		applied, err = s.apply(ctx, repo, edge)
		return err
	})
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return core.Permission{}, err
	}

	return applied, nil
}

// BulkApply applies edges in order, each in its own transaction, and stops at the first failure.
// The ids applied before the failure are returned alongside the error.
func (s *service) BulkApply(ctx context.Context, ids []string) ([]string, error) {
	ctx, span := tracer.Start(ctx, "Inheritance.Service.BulkApply")
	defer span.End()

	applied := []string{}
	for _, id := range ids {
		_, err := s.Apply(ctx, id)
		if err != nil {
			span.SetStatus(codes.Error, err.Error())
			return applied, errors.Wrapf(err, "failed to apply inheritance %s", id)
		}
		applied = append(applied, id)
	}

	span.SetAttributes(attribute.Int("applied", len(applied)))
	return applied, nil
}

func (s *service) Get(ctx context.Context, id string) (core.PermissionInheritance, error) {
	ctx, span := tracer.Start(ctx, "Inheritance.Service.Get")
	defer span.End()

	return s.repository.Get(ctx, id)
}

func (s *service) ListParents(ctx context.Context, permissionID string) ([]core.PermissionInheritance, error) {
	ctx, span := tracer.Start(ctx, "Inheritance.Service.ListParents")
	defer span.End()

	return s.repository.ListActiveByChild(ctx, permissionID)
}

func (s *service) ListChildren(ctx context.Context, permissionID string) ([]core.PermissionInheritance, error) {
	ctx, span := tracer.Start(ctx, "Inheritance.Service.ListChildren")
	defer span.End()

	return s.repository.ListActiveByParent(ctx, permissionID)
}

func (s *service) Ancestors(ctx context.Context, permissionID string) ([]string, error) {
	ctx, span := tracer.Start(ctx, "Inheritance.Service.Ancestors")
	defer span.End()

	return ancestors(ctx, s.repository, permissionID)
}
