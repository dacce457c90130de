package inheritance

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/totegamma/permgraph/core"
)

func permission(id string, effect core.Effect, priority int) core.Permission {
	return core.Permission{
		ID:             id,
		OrganizationID: "org",
		ResourceType:   "document",
		Action:         "read",
		Effect:         effect,
		Priority:       priority,
		Active:         true,
		EffectiveFrom:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func edge(parent, child string, typ core.InheritanceType) core.PermissionInheritance {
	return core.PermissionInheritance{
		ParentID:  parent,
		ChildID:   child,
		Type:      typ,
		CreatedBy: "admin",
	}
}

func TestCycleRejected(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryRepository(
		permission("A", core.EffectAllow, 10),
		permission("B", core.EffectAllow, 10),
		permission("C", core.EffectAllow, 10),
	)
	s := NewService(repo, core.Config{})

	_, _, err := s.Create(ctx, edge("A", "B", core.InheritanceFull), false)
	assert.NoError(t, err)
	_, _, err = s.Create(ctx, edge("B", "C", core.InheritanceFull), false)
	assert.NoError(t, err)

	_, result, err := s.Create(ctx, edge("C", "A", core.InheritanceFull), false)
	var validationErr core.ValidationError
	if assert.ErrorAs(t, err, &validationErr) {
		assert.Equal(t, core.IssueCircularInheritance, validationErr.Issues[0].Code)
	}
	assert.False(t, result.IsValid)
	assert.True(t, result.HasCode(core.IssueCircularInheritance))
	assert.Len(t, repo.edges, 2)

	// self loop
	result, err = s.Validate(ctx, edge("A", "A", core.InheritanceFull))
	assert.NoError(t, err)
	assert.True(t, result.HasCode(core.IssueCircularInheritance))
}

func TestDepthLimit(t *testing.T) {
	ctx := context.Background()

	var permissions []core.Permission
	for i := 0; i <= 11; i++ {
		permissions = append(permissions, permission(fmt.Sprintf("P%02d", i), core.EffectAllow, 10))
	}
	repo := newMemoryRepository(permissions...)
	s := NewService(repo, core.Config{})

	for i := 1; i <= 10; i++ {
		_, result, err := s.Create(ctx, edge(fmt.Sprintf("P%02d", i-1), fmt.Sprintf("P%02d", i), core.InheritanceFull), false)
		assert.NoError(t, err, i)
		assert.True(t, result.IsValid, i)
	}

	_, result, err := s.Create(ctx, edge("P10", "P11", core.InheritanceFull), false)
	assert.Error(t, err)
	if assert.True(t, result.HasCode(core.IssueDepthExceeded)) {
		for _, issue := range result.Issues {
			if issue.Code == core.IssueDepthExceeded {
				assert.Equal(t, 11, issue.Details["actual"])
				assert.Equal(t, 10, issue.Details["limit"])
			}
		}
	}
	assert.Len(t, repo.edges, 10)

	chain, err := s.ValidateChain(ctx, "P00")
	if assert.NoError(t, err) {
		assert.True(t, chain.IsValid)
		assert.Equal(t, 10, chain.ChainLength)
	}

	closure, err := s.Ancestors(ctx, "P10")
	if assert.NoError(t, err) {
		assert.Len(t, closure, 10)
		assert.Equal(t, "P09", closure[0])
	}
}

func TestValidateFindings(t *testing.T) {
	ctx := context.Background()

	inactive := permission("inactive", core.EffectAllow, 10)
	inactive.Active = false

	parent := permission("parent", core.EffectDeny, 10)
	parent.ResourceType = "report"
	parent.Conditions.Time = &core.TimeClause{StartTime: "09:00", EndTime: "17:00"}
	child := permission("child", core.EffectAllow, 10)
	child.Conditions.Time = &core.TimeClause{StartTime: "10:00", EndTime: "12:00"}

	repo := newMemoryRepository(inactive, parent, child)
	s := NewService(repo, core.Config{})

	result, err := s.Validate(ctx, edge("missing", "inactive", core.InheritanceFull))
	assert.NoError(t, err)
	assert.False(t, result.IsValid)
	assert.True(t, result.HasCode(core.IssueInvalidParent))
	assert.True(t, result.HasCode(core.IssueInactiveChild))

	result, err = s.Validate(ctx, edge("parent", "child", core.InheritanceFull))
	assert.NoError(t, err)
	assert.True(t, result.IsValid)
	assert.True(t, result.HasCode(core.IssueEffectMismatch))
	assert.True(t, result.HasCode(core.IssueResourceTypeMismatch))
	assert.True(t, result.HasCode(core.IssueOverlappingConditions))

	weight := 1.5
	bad := edge("parent", "child", "copy")
	bad.Weight = &weight
	bad.Conditions = map[string]core.MergeStrategy{"time": "xor"}
	result, err = s.Validate(ctx, bad)
	assert.NoError(t, err)
	assert.True(t, result.HasCode(core.IssueInvalidType))
	assert.True(t, result.HasCode(core.IssueInvalidWeight))
	assert.True(t, result.HasCode(core.IssueInvalidMergeStrategy))
}

func TestDuplicateActivePair(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryRepository(
		permission("A", core.EffectAllow, 10),
		permission("B", core.EffectAllow, 10),
	)
	s := NewService(repo, core.Config{})

	first, _, err := s.Create(ctx, edge("A", "B", core.InheritancePriority), false)
	assert.NoError(t, err)

	_, _, err = s.Create(ctx, edge("A", "B", core.InheritancePriority), false)
	assert.ErrorAs(t, err, &core.ErrorAlreadyExists{})

	removed, err := s.Remove(ctx, first.ID, "admin")
	if assert.NoError(t, err) {
		assert.False(t, removed.Active)
		assert.NotNil(t, removed.EffectiveTo)
	}

	_, err = s.Remove(ctx, first.ID, "admin")
	assert.ErrorAs(t, err, &core.ErrorAlreadyDeleted{})

	_, err = s.Remove(ctx, "unknown", "admin")
	assert.True(t, core.IsNotFound(err))

	// the pair can be linked again once the old edge is inactive
	_, _, err = s.Create(ctx, edge("A", "B", core.InheritancePriority), false)
	assert.NoError(t, err)
}

func TestCreateWithAutoApply(t *testing.T) {
	ctx := context.Background()
	parent := permission("parent", core.EffectDeny, 700)
	parent.Conditions.Location = &core.LocationClause{AllowedCountries: []string{"JP"}}
	child := permission("child", core.EffectAllow, 100)
	child.Conditions.Time = &core.TimeClause{StartTime: "09:00", EndTime: "17:00"}

	repo := newMemoryRepository(parent, child)
	s := NewService(repo, core.Config{})

	created, _, err := s.Create(ctx, edge("parent", "child", core.InheritanceFull), true)
	assert.NoError(t, err)

	updated := repo.permissions["child"]
	assert.Equal(t, core.EffectDeny, updated.Effect)
	assert.Equal(t, 700, updated.Priority)
	assert.NotNil(t, updated.Conditions.Location)
	assert.NotNil(t, updated.Conditions.Time)
	assert.Equal(t, "parent", updated.Metadata[core.MetadataInheritedFrom])
	assert.Equal(t, created.ID, updated.Metadata[core.MetadataInheritanceID])
	assert.Equal(t, "full", updated.Metadata[core.MetadataInheritanceType])

	// applying again changes nothing
	again, err := s.Apply(ctx, created.ID)
	assert.NoError(t, err)
	assert.Equal(t, updated, again)
}

func TestAutoApplyFailureRollsBack(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryRepository(
		permission("parent", core.EffectAllow, 10),
		permission("child", core.EffectAllow, 10),
	)

	// the child cannot be written after the edge is stored
	broken := &vanishingRepository{memoryRepository: repo, vanish: "child"}
	s := NewService(broken, core.Config{})

	_, _, err := s.Create(ctx, edge("parent", "child", core.InheritanceFull), true)
	assert.Error(t, err)
	assert.Len(t, repo.edges, 0)
}

// vanishingRepository fails permission writes for one id.
type vanishingRepository struct {
	*memoryRepository
	vanish string
}

func (r *vanishingRepository) Transaction(ctx context.Context, fn func(repo Repository) error) error {
	return r.memoryRepository.Transaction(ctx, func(_ Repository) error {
		return fn(r)
	})
}

func (r *vanishingRepository) UpdatePermission(ctx context.Context, permission core.Permission) (core.Permission, error) {
	if permission.ID == r.vanish {
		return core.Permission{}, core.NewErrorNotFound()
	}
	return r.memoryRepository.UpdatePermission(ctx, permission)
}

func TestBulkApplyStopsAtFirstFailure(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryRepository(
		permission("A", core.EffectAllow, 100),
		permission("B", core.EffectAllow, 10),
		permission("C", core.EffectAllow, 10),
	)
	s := NewService(repo, core.Config{})

	ab, _, err := s.Create(ctx, edge("A", "B", core.InheritancePriority), false)
	assert.NoError(t, err)
	ac, _, err := s.Create(ctx, edge("A", "C", core.InheritancePriority), false)
	assert.NoError(t, err)

	applied, err := s.BulkApply(ctx, []string{ab.ID, "missing", ac.ID})
	assert.Error(t, err)
	assert.Equal(t, []string{ab.ID}, applied)

	assert.Equal(t, 110, repo.permissions["B"].Priority)
	assert.Equal(t, 10, repo.permissions["C"].Priority)
}

func TestValidateChainFindsStoredCycle(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryRepository(
		permission("A", core.EffectAllow, 10),
		permission("B", core.EffectAllow, 10),
		permission("C", core.EffectAllow, 10),
	)
	repo.link("e1", "A", "B")
	repo.link("e2", "B", "C")
	repo.link("e3", "C", "A")
	repo.link("e4", "C", "ghost")

	s := NewService(repo, core.Config{})

	chain, err := s.ValidateChain(ctx, "A")
	if assert.NoError(t, err) {
		assert.False(t, chain.IsValid)
		assert.Equal(t, 3, chain.ChainLength)
		assert.True(t, core.ValidationResult{Issues: chain.Issues}.HasCode(core.IssueCircularInheritance))
		assert.True(t, core.ValidationResult{Issues: chain.Issues}.HasCode(core.IssueInvalidChild))
	}

	// traversal terminates on the corrupted graph
	closure, err := s.Ancestors(ctx, "A")
	if assert.NoError(t, err) {
		assert.ElementsMatch(t, []string{"B", "C"}, closure)
	}
}

// countingRepository counts child edge lookups.
type countingRepository struct {
	*memoryRepository
	byParent map[string]int
}

func (r *countingRepository) ListActiveByParent(ctx context.Context, parentID string) ([]core.PermissionInheritance, error) {
	r.byParent[parentID]++
	return r.memoryRepository.ListActiveByParent(ctx, parentID)
}

func TestValidateChainVisitsLatticeOnce(t *testing.T) {
	ctx := context.Background()

	repo := newMemoryRepository(permission("L00", core.EffectAllow, 10))
	previous := []string{"L00"}
	for layer := 1; layer <= 10; layer++ {
		current := []string{fmt.Sprintf("L%02d-a", layer), fmt.Sprintf("L%02d-b", layer)}
		for _, child := range current {
			repo.permissions[child] = permission(child, core.EffectAllow, 10)
			for _, parent := range previous {
				repo.link(parent+">"+child, parent, child)
			}
		}
		previous = current
	}

	counting := &countingRepository{memoryRepository: repo, byParent: map[string]int{}}
	s := NewService(counting, core.Config{})

	chain, err := s.ValidateChain(ctx, "L00")
	if assert.NoError(t, err) {
		assert.True(t, chain.IsValid)
		assert.Equal(t, 10, chain.ChainLength)
	}

	assert.Len(t, counting.byParent, 21)
	for id, calls := range counting.byParent {
		assert.Equal(t, 1, calls, id)
	}
}

func TestValidateChainRevisitsDeeperPath(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryRepository(
		permission("A", core.EffectAllow, 10),
		permission("B", core.EffectAllow, 10),
		permission("C", core.EffectAllow, 10),
		permission("D", core.EffectAllow, 10),
		permission("E", core.EffectAllow, 10),
	)
	repo.link("shortcut", "A", "D")
	repo.link("ab", "A", "B")
	repo.link("bc", "B", "C")
	repo.link("cd", "C", "D")
	repo.link("de", "D", "E")

	tail := repo.edges["de"]
	tail.MaxDepth = 3
	repo.edges["de"] = tail

	s := NewService(repo, core.Config{})

	chain, err := s.ValidateChain(ctx, "A")
	if assert.NoError(t, err) {
		assert.False(t, chain.IsValid)
		assert.Equal(t, 4, chain.ChainLength)

		var exceeded []core.Issue
		for _, issue := range chain.Issues {
			if issue.Code == core.IssueDepthExceeded {
				exceeded = append(exceeded, issue)
			}
		}
		if assert.Len(t, exceeded, 1) {
			assert.Equal(t, 4, exceeded[0].Details["actual"])
			assert.Equal(t, 3, exceeded[0].Details["limit"])
		}
	}
}

func TestCreateStoresClampedMaxDepth(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryRepository(
		permission("A", core.EffectAllow, 10),
		permission("B", core.EffectAllow, 10),
		permission("C", core.EffectAllow, 10),
		permission("D", core.EffectAllow, 10),
	)
	s := NewService(repo, core.Config{})

	wide := edge("A", "B", core.InheritanceFull)
	wide.MaxDepth = 999
	created, _, err := s.Create(ctx, wide, false)
	if assert.NoError(t, err) {
		assert.Equal(t, 50, created.MaxDepth)
		assert.Equal(t, 50, repo.edges[created.ID].MaxDepth)
	}

	negative := edge("A", "C", core.InheritanceFull)
	negative.MaxDepth = -3
	created, _, err = s.Create(ctx, negative, false)
	if assert.NoError(t, err) {
		assert.Equal(t, core.DefaultMaxDepth, repo.edges[created.ID].MaxDepth)
	}

	created, _, err = s.Create(ctx, edge("A", "D", core.InheritanceFull), false)
	if assert.NoError(t, err) {
		assert.Equal(t, core.DefaultMaxDepth, repo.edges[created.ID].MaxDepth)
	}
}
