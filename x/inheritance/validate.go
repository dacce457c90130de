package inheritance

import (
	"context"

	"github.com/totegamma/permgraph/core"
)

func (s *service) maxDepth(edge core.PermissionInheritance) int {
	if edge.MaxDepth > 0 {
		return clampDepth(edge.MaxDepth)
	}
	return clampDepth(s.config.DefaultMaxDepth)
}

// validate collects every finding for a prospective edge against the graph visible through repo.
func (s *service) validate(ctx context.Context, repo Repository, edge core.PermissionInheritance) (core.ValidationResult, error) {
	result := core.NewValidationResult()

	if !edge.Type.IsValid() {
		result.Add(core.NewIssue(core.IssueInvalidType, core.SeverityError, "unknown inheritance type %q", edge.Type))
	}
	if weight := edge.EffectiveWeight(); weight < 0 || weight > 1 {
		result.Add(core.NewIssue(core.IssueInvalidWeight, core.SeverityError, "weight %v is outside [0, 1]", weight))
	}
	for field, strategy := range edge.Conditions {
		if !strategy.IsValid() {
			result.Add(core.NewIssue(core.IssueInvalidMergeStrategy, core.SeverityError, "unknown merge strategy %q for %s", strategy, field))
		}
	}

	parent, parentOK, err := s.endpoint(ctx, repo, edge.ParentID, &result, core.IssueInvalidParent, core.IssueInactiveParent, "parent")
	if err != nil {
		return result, err
	}
	child, childOK, err := s.endpoint(ctx, repo, edge.ChildID, &result, core.IssueInvalidChild, core.IssueInactiveChild, "child")
	if err != nil {
		return result, err
	}

	cycle, err := wouldCycle(ctx, repo, edge.ParentID, edge.ChildID)
	if err != nil {
		return result, err
	}
	if cycle {
		result.Add(core.NewIssue(core.IssueCircularInheritance, core.SeverityError,
			"%s -> %s would create a cycle", edge.ParentID, edge.ChildID))
	}

	depth, err := prospectiveDepth(ctx, repo, edge.ParentID, edge.ChildID)
	if err != nil {
		return result, err
	}
	if limit := s.maxDepth(edge); depth > limit {
		issue := core.NewIssue(core.IssueDepthExceeded, core.SeverityError,
			"inheritance depth %d exceeds the limit of %d", depth, limit)
		issue.Details = map[string]any{"actual": depth, "limit": limit}
		result.Add(issue)
	}

	if parentOK && childOK {
		for _, issue := range compare(parent, child) {
			result.Add(issue)
		}
	}

	return result, nil
}

// endpoint loads one side of the edge and records missing or inactive findings.
// The returned bool is false when the permission could not be loaded.
func (s *service) endpoint(
	ctx context.Context,
	repo Repository,
	id string,
	result *core.ValidationResult,
	missingCode, inactiveCode, side string,
) (core.Permission, bool, error) {
	permission, err := repo.GetPermission(ctx, id)
	if err != nil {
		if core.IsNotFound(err) {
			result.Add(core.NewIssue(missingCode, core.SeverityError, "%s permission %s does not exist", side, id))
			return core.Permission{}, false, nil
		}
		return core.Permission{}, false, err
	}
	if !permission.Active {
		result.Add(core.NewIssue(inactiveCode, core.SeverityError, "%s permission %s is inactive", side, id))
	}
	return permission, true, nil
}

func compare(parent, child core.Permission) []core.Issue {
	var issues []core.Issue

	if parent.Effect != child.Effect {
		issues = append(issues, core.NewIssue(core.IssueEffectMismatch, core.SeverityWarning,
			"parent effect %s differs from child effect %s", parent.Effect, child.Effect))
	}

	if parent.ResourceType != child.ResourceType &&
		parent.ResourceType != core.Wildcard &&
		child.ResourceType != core.Wildcard {
		issues = append(issues, core.NewIssue(core.IssueResourceTypeMismatch, core.SeverityWarning,
			"parent resource %s differs from child resource %s", parent.ResourceType, child.ResourceType))
	}

	if (parent.Conditions.Time != nil && child.Conditions.Time != nil) ||
		(parent.Conditions.Location != nil && child.Conditions.Location != nil) {
		issues = append(issues, core.NewIssue(core.IssueOverlappingConditions, core.SeverityInfo,
			"parent and child both constrain time or location"))
	}

	return issues
}

// validateChain walks active child edges from root depth-first. A node is
// expanded again only when reached at a greater depth than before.
func (s *service) validateChain(ctx context.Context, repo Repository, rootID string) (core.ChainValidationResult, error) {
	result := core.NewValidationResult()

	onStack := map[string]bool{}
	deepest := map[string]int{}
	children := map[string][]core.PermissionInheritance{}
	reported := map[string]bool{}
	longest := 0

	report := func(key string, issue core.Issue) {
		if reported[key] {
			return
		}
		reported[key] = true
		result.Add(issue)
	}

	var visit func(id string, depth int) error
	visit = func(id string, depth int) error {
		if depth > longest {
			longest = depth
		}

		seen, visited := deepest[id]
		if visited && depth <= seen {
			return nil
		}
		deepest[id] = depth

		if !visited {
			permission, err := repo.GetPermission(ctx, id)
			if err != nil {
				if !core.IsNotFound(err) {
					return err
				}
				result.Add(core.NewIssue(core.IssueInvalidChild, core.SeverityError, "permission %s in the chain does not exist", id))
			} else if !permission.Active {
				result.Add(core.NewIssue(core.IssueInactiveChild, core.SeverityError, "permission %s in the chain is inactive", id))
			}

			edges, err := repo.ListActiveByParent(ctx, id)
			if err != nil {
				return err
			}
			children[id] = edges
		}

		onStack[id] = true
		defer delete(onStack, id)

		for _, edge := range children[id] {
			if onStack[edge.ChildID] {
				report("cycle:"+edge.ID, core.NewIssue(core.IssueCircularInheritance, core.SeverityError,
					"edge %s (%s -> %s) closes a cycle", edge.ID, edge.ParentID, edge.ChildID))
				continue
			}
			if limit := s.maxDepth(edge); depth+1 > limit {
				issue := core.NewIssue(core.IssueDepthExceeded, core.SeverityError,
					"edge %s sits at depth %d, beyond its limit of %d", edge.ID, depth+1, limit)
				issue.Details = map[string]any{"actual": depth + 1, "limit": limit}
				report("depth:"+edge.ID, issue)
			}
			err := visit(edge.ChildID, depth+1)
			if err != nil {
				return err
			}
		}
		return nil
	}

	err := visit(rootID, 0)
	if err != nil {
		return core.ChainValidationResult{}, err
	}

	return core.ChainValidationResult{
		IsValid:     result.IsValid,
		Issues:      result.Issues,
		ChainLength: longest,
	}, nil
}
