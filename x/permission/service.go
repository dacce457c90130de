package permission

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/xid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/totegamma/permgraph/core"
)

var tracer = otel.Tracer("permission")

type service struct {
	repository Repository
}

func NewService(repository Repository) core.PermissionService {
	return &service{repository}
}

func validate(permission core.Permission) error {
	if permission.OrganizationID == "" {
		return core.NewErrorInvalidArgument("organization is required")
	}
	if !permission.Effect.IsValid() {
		return core.NewErrorInvalidArgument("effect must be allow or deny")
	}
	if permission.Priority < core.MinPriority || permission.Priority > core.MaxPriority {
		return core.NewErrorInvalidArgument("priority out of range")
	}
	if permission.ResourceType == "" || permission.Action == "" {
		return core.NewErrorInvalidArgument("resource type and action are required")
	}
	if permission.ResourceType == core.Wildcard && !permission.Template {
		return core.NewErrorInvalidArgument("wildcard resource type is reserved for templates")
	}
	if permission.EffectiveTo != nil && permission.EffectiveTo.Before(permission.EffectiveFrom) {
		return core.NewErrorInvalidArgument("effectiveTo is before effectiveFrom")
	}
	return nil
}

// Create validates and stores a new active permission.
func (s *service) Create(ctx context.Context, permission core.Permission) (core.Permission, error) {
	ctx, span := tracer.Start(ctx, "Permission.Service.Create")
	defer span.End()

	permission.ID = xid.New().String()
	permission.Active = true
	if permission.EffectiveFrom.IsZero() {
		permission.EffectiveFrom = time.Now()
	}
	if permission.UpdatedBy == "" {
		permission.UpdatedBy = permission.CreatedBy
	}

	err := validate(permission)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return core.Permission{}, err
	}

	created, err := s.repository.Create(ctx, permission)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return core.Permission{}, errors.Wrap(err, "failed to create permission")
	}

	span.SetAttributes(attribute.String("id", created.ID))
	return created, nil
}

func (s *service) Get(ctx context.Context, id string) (core.Permission, error) {
	ctx, span := tracer.Start(ctx, "Permission.Service.Get")
	defer span.End()

	return s.repository.Get(ctx, id)
}

// Update replaces the mutable fields of an existing permission. Activation state
// is owned by Deactivate, so Active is always taken from the stored row. Metadata
// and EffectiveTo are kept unless the caller supplies new values.
func (s *service) Update(ctx context.Context, permission core.Permission) (core.Permission, error) {
	ctx, span := tracer.Start(ctx, "Permission.Service.Update")
	defer span.End()

	existing, err := s.repository.Get(ctx, permission.ID)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return core.Permission{}, err
	}

	permission.CreatedBy = existing.CreatedBy
	permission.Active = existing.Active
	if permission.Metadata == nil {
		permission.Metadata = existing.Metadata
	}
	if permission.EffectiveTo == nil {
		permission.EffectiveTo = existing.EffectiveTo
	}
	if permission.EffectiveFrom.IsZero() {
		permission.EffectiveFrom = existing.EffectiveFrom
	}

	err = validate(permission)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return core.Permission{}, err
	}

	updated, err := s.repository.Update(ctx, permission)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return core.Permission{}, errors.Wrap(err, "failed to update permission")
	}

	return updated, nil
}

// Deactivate soft-deletes the permission by closing its effective window now.
func (s *service) Deactivate(ctx context.Context, id, updatedBy string) (core.Permission, error) {
	ctx, span := tracer.Start(ctx, "Permission.Service.Deactivate")
	defer span.End()

	return s.repository.Deactivate(ctx, id, updatedBy, time.Now())
}

func (s *service) ListEffectiveByUser(ctx context.Context, userID string, at time.Time) ([]core.Permission, error) {
	ctx, span := tracer.Start(ctx, "Permission.Service.ListEffectiveByUser")
	defer span.End()

	return s.repository.ListEffectiveByUser(ctx, userID, at)
}

func (s *service) ListEffectiveByRoles(ctx context.Context, roleIDs []string, at time.Time) ([]core.Permission, error) {
	ctx, span := tracer.Start(ctx, "Permission.Service.ListEffectiveByRoles")
	defer span.End()

	return s.repository.ListEffectiveByRoles(ctx, roleIDs, at)
}

func (s *service) ListEffectiveByNodes(ctx context.Context, nodeIDs []string, at time.Time) ([]core.Permission, error) {
	ctx, span := tracer.Start(ctx, "Permission.Service.ListEffectiveByNodes")
	defer span.End()

	return s.repository.ListEffectiveByNodes(ctx, nodeIDs, at)
}

func (s *service) ListEffectiveByResourceAction(ctx context.Context, organizationID, resourceType, action string, at time.Time) ([]core.Permission, error) {
	ctx, span := tracer.Start(ctx, "Permission.Service.ListEffectiveByResourceAction")
	defer span.End()

	return s.repository.ListEffectiveByResourceAction(ctx, organizationID, resourceType, action, at)
}
