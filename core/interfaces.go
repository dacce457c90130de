//go:generate go run go.uber.org/mock/mockgen -source=interfaces.go -destination=mock/services.go
package core

import (
	"context"
	"time"
)

type AgentService interface {
	Boot()
}

type ConditionService interface {
	Evaluate(ctx context.Context, conditions *Conditions, rc RequestContext) (bool, error)
}

// CustomConditionEvaluator is the extension point for script and endpoint conditions
type CustomConditionEvaluator interface {
	EvaluateCustom(ctx context.Context, clause CustomClause, rc RequestContext) (bool, error)
}

type DirectoryService interface {
	GetUserRoles(ctx context.Context, userID string) ([]string, error)
	GetUserNode(ctx context.Context, userID string) (string, error)
	GetNode(ctx context.Context, nodeID string) (Node, error)
	GetAncestors(ctx context.Context, nodeID string) ([]Node, error)
}

type EvaluationService interface {
	Evaluate(ctx context.Context, userID, action, resourceType string, rc RequestContext) (Decision, error)
}

type InheritanceService interface {
	Create(ctx context.Context, edge PermissionInheritance, autoApply bool) (PermissionInheritance, ValidationResult, error)
	Remove(ctx context.Context, id, updatedBy string) (PermissionInheritance, error)
	Validate(ctx context.Context, edge PermissionInheritance) (ValidationResult, error)
	ValidateChain(ctx context.Context, rootID string) (ChainValidationResult, error)
	Apply(ctx context.Context, id string) (Permission, error)
	BulkApply(ctx context.Context, ids []string) ([]string, error)

	Get(ctx context.Context, id string) (PermissionInheritance, error)
	ListParents(ctx context.Context, permissionID string) ([]PermissionInheritance, error)
	ListChildren(ctx context.Context, permissionID string) ([]PermissionInheritance, error)
	Ancestors(ctx context.Context, permissionID string) ([]string, error)
}

type JobService interface {
	List(ctx context.Context, requester string) ([]Job, error)
	Create(ctx context.Context, requester, typ, payload string, scheduled time.Time) (Job, error)
	Dequeue(ctx context.Context) (*Job, error)
	Complete(ctx context.Context, id, status, result string) (Job, error)
	Cancel(ctx context.Context, id string) (Job, error)
	Clean(ctx context.Context, olderThan time.Time) ([]Job, error)
}

type PermissionService interface {
	Create(ctx context.Context, permission Permission) (Permission, error)
	Get(ctx context.Context, id string) (Permission, error)
	Update(ctx context.Context, permission Permission) (Permission, error)
	Deactivate(ctx context.Context, id, updatedBy string) (Permission, error)

	ListEffectiveByUser(ctx context.Context, userID string, at time.Time) ([]Permission, error)
	ListEffectiveByRoles(ctx context.Context, roleIDs []string, at time.Time) ([]Permission, error)
	ListEffectiveByNodes(ctx context.Context, nodeIDs []string, at time.Time) ([]Permission, error)
	ListEffectiveByResourceAction(ctx context.Context, organizationID, resourceType, action string, at time.Time) ([]Permission, error)

	CheckConflicts(ctx context.Context, permission Permission) ([]Conflict, error)
}
