//go:generate go run go.uber.org/mock/mockgen -source=repository.go -destination=mock/repository.go
package inheritance

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel/codes"
	"gorm.io/gorm"

	"github.com/totegamma/permgraph/core"
)

type Repository interface {
	// Transaction runs fn against a repository bound to a single database transaction.
	Transaction(ctx context.Context, fn func(repo Repository) error) error

	GetPermission(ctx context.Context, id string) (core.Permission, error)
	UpdatePermission(ctx context.Context, permission core.Permission) (core.Permission, error)

	Create(ctx context.Context, edge core.PermissionInheritance) (core.PermissionInheritance, error)
	Get(ctx context.Context, id string) (core.PermissionInheritance, error)
	Deactivate(ctx context.Context, id, updatedBy string, at time.Time) (core.PermissionInheritance, error)
	FindActive(ctx context.Context, parentID, childID string) (core.PermissionInheritance, error)
	ListActiveByChild(ctx context.Context, childID string) ([]core.PermissionInheritance, error)
	ListActiveByParent(ctx context.Context, parentID string) ([]core.PermissionInheritance, error)
}

type repository struct {
	db  *gorm.DB
	rdb *redis.Client
}

func NewRepository(db *gorm.DB, rdb *redis.Client) Repository {
	return &repository{db, rdb}
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

func (r *repository) Transaction(ctx context.Context, fn func(repo Repository) error) error {
	ctx, span := tracer.Start(ctx, "Inheritance.Repository.Transaction")
	defer span.End()

	var touched []string
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		inner := &txRepository{repository{tx, nil}, &touched}
		return fn(inner)
	})
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	for _, id := range touched {
		r.invalidate(ctx, id)
	}

	return nil
}

// txRepository defers permission cache invalidation until commit.
type txRepository struct {
	repository
	touched *[]string
}

func (r *txRepository) Transaction(ctx context.Context, fn func(repo Repository) error) error {
	return fn(r)
}

func (r *txRepository) UpdatePermission(ctx context.Context, permission core.Permission) (core.Permission, error) {
	updated, err := r.repository.UpdatePermission(ctx, permission)
	if err != nil {
		return updated, err
	}
	*r.touched = append(*r.touched, permission.ID)
	return updated, nil
}

func (r *repository) invalidate(ctx context.Context, permissionID string) {
	if r.rdb == nil {
		return
	}
	r.rdb.Del(ctx, core.PermissionCachePrefix+permissionID)
}

func (r *repository) GetPermission(ctx context.Context, id string) (core.Permission, error) {
	ctx, span := tracer.Start(ctx, "Inheritance.Repository.GetPermission")
	defer span.End()

	var permission core.Permission
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&permission).Error
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return core.Permission{}, translate(err)
	}

	return permission, nil
}

func (r *repository) UpdatePermission(ctx context.Context, permission core.Permission) (core.Permission, error) {
	ctx, span := tracer.Start(ctx, "Inheritance.Repository.UpdatePermission")
	defer span.End()

	err := r.db.WithContext(ctx).
		Model(&core.Permission{ID: permission.ID}).
		Select("effect", "priority", "conditions", "metadata", "updated_by").
		Updates(&permission).Error
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return core.Permission{}, translate(err)
	}

	r.invalidate(ctx, permission.ID)

	return permission, nil
}

func (r *repository) Create(ctx context.Context, edge core.PermissionInheritance) (core.PermissionInheritance, error) {
	ctx, span := tracer.Start(ctx, "Inheritance.Repository.Create")
	defer span.End()

	err := r.db.WithContext(ctx).Create(&edge).Error
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return core.PermissionInheritance{}, translate(err)
	}

	return edge, nil
}

func (r *repository) Get(ctx context.Context, id string) (core.PermissionInheritance, error) {
	ctx, span := tracer.Start(ctx, "Inheritance.Repository.Get")
	defer span.End()

	var edge core.PermissionInheritance
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&edge).Error
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return core.PermissionInheritance{}, translate(err)
	}

	return edge, nil
}

func (r *repository) Deactivate(ctx context.Context, id, updatedBy string, at time.Time) (core.PermissionInheritance, error) {
	ctx, span := tracer.Start(ctx, "Inheritance.Repository.Deactivate")
	defer span.End()

	result := r.db.WithContext(ctx).
		Model(&core.PermissionInheritance{}).
		Where("id = ? AND active = true", id).
		Updates(map[string]any{
			"active":       false,
			"effective_to": at,
			"updated_by":   updatedBy,
		})
	if result.Error != nil {
		span.SetStatus(codes.Error, result.Error.Error())
		return core.PermissionInheritance{}, result.Error
	}

	var edge core.PermissionInheritance
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&edge).Error
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return core.PermissionInheritance{}, translate(err)
	}

	if result.RowsAffected == 0 {
		return edge, core.NewErrorAlreadyDeleted()
	}

	return edge, nil
}

func (r *repository) FindActive(ctx context.Context, parentID, childID string) (core.PermissionInheritance, error) {
	ctx, span := tracer.Start(ctx, "Inheritance.Repository.FindActive")
	defer span.End()

	var edge core.PermissionInheritance
	err := r.db.WithContext(ctx).
		Where("parent_id = ? AND child_id = ? AND active = true", parentID, childID).
		First(&edge).Error
	if err != nil {
		return core.PermissionInheritance{}, translate(err)
	}

	return edge, nil
}

func (r *repository) ListActiveByChild(ctx context.Context, childID string) ([]core.PermissionInheritance, error) {
	ctx, span := tracer.Start(ctx, "Inheritance.Repository.ListActiveByChild")
	defer span.End()

	var edges []core.PermissionInheritance
	err := r.db.WithContext(ctx).
		Where("child_id = ? AND active = true", childID).
		Order("cdate ASC").
		Find(&edges).Error
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	return edges, nil
}

func (r *repository) ListActiveByParent(ctx context.Context, parentID string) ([]core.PermissionInheritance, error) {
	ctx, span := tracer.Start(ctx, "Inheritance.Repository.ListActiveByParent")
	defer span.End()

	var edges []core.PermissionInheritance
	err := r.db.WithContext(ctx).
		Where("parent_id = ? AND active = true", parentID).
		Order("cdate ASC").
		Find(&edges).Error
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	return edges, nil
}
