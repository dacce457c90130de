package inheritance

import (
	"context"
	"time"

	"github.com/totegamma/permgraph/core"
)

// memoryRepository is an in-memory Repository for service tests.
// Transaction snapshots the state and restores it when fn fails.
type memoryRepository struct {
	permissions map[string]core.Permission
	edges       map[string]core.PermissionInheritance
	order       []string
}

func newMemoryRepository(permissions ...core.Permission) *memoryRepository {
	repo := &memoryRepository{
		permissions: map[string]core.Permission{},
		edges:       map[string]core.PermissionInheritance{},
	}
	for _, p := range permissions {
		repo.permissions[p.ID] = p
	}
	return repo
}

func (r *memoryRepository) Transaction(ctx context.Context, fn func(repo Repository) error) error {
	permissions := map[string]core.Permission{}
	for k, v := range r.permissions {
		permissions[k] = v
	}
	edges := map[string]core.PermissionInheritance{}
	for k, v := range r.edges {
		edges[k] = v
	}
	order := append([]string{}, r.order...)

	err := fn(r)
	if err != nil {
		r.permissions = permissions
		r.edges = edges
		r.order = order
	}
	return err
}

func (r *memoryRepository) GetPermission(ctx context.Context, id string) (core.Permission, error) {
	p, ok := r.permissions[id]
	if !ok {
		return core.Permission{}, core.NewErrorNotFound()
	}
	return p, nil
}

func (r *memoryRepository) UpdatePermission(ctx context.Context, permission core.Permission) (core.Permission, error) {
	if _, ok := r.permissions[permission.ID]; !ok {
		return core.Permission{}, core.NewErrorNotFound()
	}
	r.permissions[permission.ID] = permission
	return permission, nil
}

func (r *memoryRepository) Create(ctx context.Context, edge core.PermissionInheritance) (core.PermissionInheritance, error) {
	r.edges[edge.ID] = edge
	r.order = append(r.order, edge.ID)
	return edge, nil
}

func (r *memoryRepository) Get(ctx context.Context, id string) (core.PermissionInheritance, error) {
	edge, ok := r.edges[id]
	if !ok {
		return core.PermissionInheritance{}, core.NewErrorNotFound()
	}
	return edge, nil
}

func (r *memoryRepository) Deactivate(ctx context.Context, id, updatedBy string, at time.Time) (core.PermissionInheritance, error) {
	edge, ok := r.edges[id]
	if !ok {
		return core.PermissionInheritance{}, core.NewErrorNotFound()
	}
	if !edge.Active {
		return edge, core.NewErrorAlreadyDeleted()
	}
	edge.Active = false
	edge.EffectiveTo = &at
	edge.UpdatedBy = updatedBy
	r.edges[id] = edge
	return edge, nil
}

func (r *memoryRepository) FindActive(ctx context.Context, parentID, childID string) (core.PermissionInheritance, error) {
	for _, id := range r.order {
		edge := r.edges[id]
		if edge.Active && edge.ParentID == parentID && edge.ChildID == childID {
			return edge, nil
		}
	}
	return core.PermissionInheritance{}, core.NewErrorNotFound()
}

func (r *memoryRepository) ListActiveByChild(ctx context.Context, childID string) ([]core.PermissionInheritance, error) {
	var result []core.PermissionInheritance
	for _, id := range r.order {
		edge := r.edges[id]
		if edge.Active && edge.ChildID == childID {
			result = append(result, edge)
		}
	}
	return result, nil
}

func (r *memoryRepository) ListActiveByParent(ctx context.Context, parentID string) ([]core.PermissionInheritance, error) {
	var result []core.PermissionInheritance
	for _, id := range r.order {
		edge := r.edges[id]
		if edge.Active && edge.ParentID == parentID {
			result = append(result, edge)
		}
	}
	return result, nil
}

// link stores an edge directly, bypassing validation.
func (r *memoryRepository) link(id, parentID, childID string) {
	r.edges[id] = core.PermissionInheritance{
		ID:       id,
		ParentID: parentID,
		ChildID:  childID,
		Type:     core.InheritanceFull,
		MaxDepth: core.DefaultMaxDepth,
		Active:   true,
	}
	r.order = append(r.order, id)
}
