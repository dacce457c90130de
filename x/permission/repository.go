//go:generate go run go.uber.org/mock/mockgen -source=repository.go -destination=mock/repository.go
package permission

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel/codes"
	"gorm.io/gorm"

	"github.com/totegamma/permgraph/core"
)

type Repository interface {
	Create(ctx context.Context, permission core.Permission) (core.Permission, error)
	Get(ctx context.Context, id string) (core.Permission, error)
	Update(ctx context.Context, permission core.Permission) (core.Permission, error)
	Deactivate(ctx context.Context, id, updatedBy string, at time.Time) (core.Permission, error)

	ListEffectiveByUser(ctx context.Context, userID string, at time.Time) ([]core.Permission, error)
	ListEffectiveByRoles(ctx context.Context, roleIDs []string, at time.Time) ([]core.Permission, error)
	ListEffectiveByNodes(ctx context.Context, nodeIDs []string, at time.Time) ([]core.Permission, error)
	ListEffectiveByResourceAction(ctx context.Context, organizationID, resourceType, action string, at time.Time) ([]core.Permission, error)
	ListActiveByRule(ctx context.Context, organizationID, resourceType, action string, effect core.Effect) ([]core.Permission, error)
}

type repository struct {
	db  *gorm.DB
	rdb *redis.Client
	ttl time.Duration
}

func NewRepository(db *gorm.DB, rdb *redis.Client, config core.Config) Repository {
	return &repository{db, rdb, config.WithDefaults().PermissionCacheTTL}
}

const effectiveClause = "active = true AND effective_from <= ? AND (effective_to IS NULL OR effective_to >= ?)"

func cacheKey(id string) string {
	return core.PermissionCachePrefix + id
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return core.NewErrorNotFound()
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return core.NewErrorAlreadyExists()
	}
	return err
}

func (r *repository) cache(ctx context.Context, permission core.Permission) {
	if r.rdb == nil {
		return
	}
	val, err := json.Marshal(permission)
	if err != nil {
		return
	}
	r.rdb.Set(ctx, cacheKey(permission.ID), val, r.ttl)
}

func (r *repository) invalidate(ctx context.Context, id string) {
	if r.rdb == nil {
		return
	}
	r.rdb.Del(ctx, cacheKey(id))
}

func (r *repository) Create(ctx context.Context, permission core.Permission) (core.Permission, error) {
	ctx, span := tracer.Start(ctx, "Permission.Repository.Create")
	defer span.End()

	err := r.db.WithContext(ctx).Create(&permission).Error
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return core.Permission{}, translate(err)
	}

	return permission, nil
}

func (r *repository) Get(ctx context.Context, id string) (core.Permission, error) {
	ctx, span := tracer.Start(ctx, "Permission.Repository.Get")
	defer span.End()

	if r.rdb != nil {
		val, err := r.rdb.Get(ctx, cacheKey(id)).Result()
		if err == nil {
			var permission core.Permission
			err = json.Unmarshal([]byte(val), &permission)
			if err == nil {
				return permission, nil
			}
			span.RecordError(err)
		}
	}

	var permission core.Permission
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&permission).Error
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return core.Permission{}, translate(err)
	}

	r.cache(ctx, permission)

	return permission, nil
}

func (r *repository) Update(ctx context.Context, permission core.Permission) (core.Permission, error) {
	ctx, span := tracer.Start(ctx, "Permission.Repository.Update")
	defer span.End()

	var existing core.Permission
	err := r.db.WithContext(ctx).Where("id = ?", permission.ID).First(&existing).Error
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return core.Permission{}, translate(err)
	}

	permission.CDate = existing.CDate
	err = r.db.WithContext(ctx).Save(&permission).Error
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return core.Permission{}, translate(err)
	}

	r.invalidate(ctx, permission.ID)

	return permission, nil
}

func (r *repository) Deactivate(ctx context.Context, id, updatedBy string, at time.Time) (core.Permission, error) {
	ctx, span := tracer.Start(ctx, "Permission.Repository.Deactivate")
	defer span.End()

	var permission core.Permission
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("id = ?", id).First(&permission).Error
		if err != nil {
			return err
		}
		if !permission.Active {
			return core.NewErrorAlreadyDeleted()
		}

		permission.Active = false
		permission.EffectiveTo = &at
		permission.UpdatedBy = updatedBy

		return tx.Model(&permission).Updates(map[string]any{
			"active":       false,
			"effective_to": at,
			"updated_by":   updatedBy,
		}).Error
	})
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return core.Permission{}, translate(err)
	}

	r.invalidate(ctx, id)

	return permission, nil
}

func (r *repository) ListEffectiveByUser(ctx context.Context, userID string, at time.Time) ([]core.Permission, error) {
	ctx, span := tracer.Start(ctx, "Permission.Repository.ListEffectiveByUser")
	defer span.End()

	var permissions []core.Permission
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where(effectiveClause, at, at).
		Order("cdate ASC").
		Find(&permissions).Error
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	return permissions, nil
}

func (r *repository) ListEffectiveByRoles(ctx context.Context, roleIDs []string, at time.Time) ([]core.Permission, error) {
	ctx, span := tracer.Start(ctx, "Permission.Repository.ListEffectiveByRoles")
	defer span.End()

	if len(roleIDs) == 0 {
		return []core.Permission{}, nil
	}

	var permissions []core.Permission
	err := r.db.WithContext(ctx).
		Where("role_id = ANY(?)", pq.Array(roleIDs)).
		Where(effectiveClause, at, at).
		Order("cdate ASC").
		Find(&permissions).Error
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	return permissions, nil
}

func (r *repository) ListEffectiveByNodes(ctx context.Context, nodeIDs []string, at time.Time) ([]core.Permission, error) {
	ctx, span := tracer.Start(ctx, "Permission.Repository.ListEffectiveByNodes")
	defer span.End()

	if len(nodeIDs) == 0 {
		return []core.Permission{}, nil
	}

	var permissions []core.Permission
	err := r.db.WithContext(ctx).
		Where("node_id = ANY(?)", pq.Array(nodeIDs)).
		Where(effectiveClause, at, at).
		Order("cdate ASC").
		Find(&permissions).Error
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	return permissions, nil
}

func (r *repository) ListEffectiveByResourceAction(ctx context.Context, organizationID, resourceType, action string, at time.Time) ([]core.Permission, error) {
	ctx, span := tracer.Start(ctx, "Permission.Repository.ListEffectiveByResourceAction")
	defer span.End()

	var permissions []core.Permission
	err := r.db.WithContext(ctx).
		Where("organization_id = ? AND resource_type = ? AND (action = ? OR action = ?)", organizationID, resourceType, action, core.Wildcard).
		Where(effectiveClause, at, at).
		Order("priority DESC").
		Find(&permissions).Error
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	return permissions, nil
}

func (r *repository) ListActiveByRule(ctx context.Context, organizationID, resourceType, action string, effect core.Effect) ([]core.Permission, error) {
	ctx, span := tracer.Start(ctx, "Permission.Repository.ListActiveByRule")
	defer span.End()

	var permissions []core.Permission
	err := r.db.WithContext(ctx).
		Where("organization_id = ? AND resource_type = ? AND action = ? AND effect = ? AND active = true", organizationID, resourceType, action, effect).
		Find(&permissions).Error
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	return permissions, nil
}
