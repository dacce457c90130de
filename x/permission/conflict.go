package permission

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/totegamma/permgraph/core"
)

// CheckConflicts lists active permissions with the same rule and the opposite effect
// whose scope overlaps the given permission.
func (s *service) CheckConflicts(ctx context.Context, permission core.Permission) ([]core.Conflict, error) {
	ctx, span := tracer.Start(ctx, "Permission.Service.CheckConflicts")
	defer span.End()

	others, err := s.repository.ListActiveByRule(
		ctx,
		permission.OrganizationID,
		permission.ResourceType,
		permission.Action,
		permission.Effect.Opposite(),
	)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	conflicts := []core.Conflict{}
	for _, other := range others {
		if other.ID == permission.ID {
			continue
		}
		if !scopesOverlap(permission, other) {
			continue
		}
		conflicts = append(conflicts, core.Conflict{
			Code:          core.IssueEffectConflict,
			PermissionID:  permission.ID,
			ConflictingID: other.ID,
			Message: fmt.Sprintf(
				"%s %s:%s conflicts with %s %s",
				permission.Effect, permission.ResourceType, permission.Action, other.Effect, other.ID,
			),
		})
	}

	span.SetAttributes(attribute.Int("conflicts", len(conflicts)))
	return conflicts, nil
}

func scopesOverlap(a, b core.Permission) bool {
	if a.IsGlobal() || b.IsGlobal() {
		return true
	}
	return sameScope(a.RoleID, b.RoleID) || sameScope(a.UserID, b.UserID) || sameScope(a.NodeID, b.NodeID)
}

func sameScope(a, b *string) bool {
	return a != nil && b != nil && *a == *b
}
