package inheritance

import (
	"context"
	"math"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"gorm.io/datatypes"

	"github.com/totegamma/permgraph/core"
)

const defaultOverrideReason = "explicit override by inheritance"

// ApplyInheritance computes the child permission after inheriting from parent through edge.
// It does not touch storage.
func ApplyInheritance(parent, child core.Permission, edge core.PermissionInheritance) (core.Permission, error) {
	result := child

	switch edge.Type {
	case core.InheritanceFull:
		result.Effect = parent.Effect
		result.Priority = parent.Priority
		conditions, err := mergeDocuments(parent.Conditions, child.Conditions, nil)
		if err != nil {
			return core.Permission{}, err
		}
		result.Conditions = conditions

	case core.InheritanceConditional:
		conditions, err := mergeDocuments(parent.Conditions, child.Conditions, edge.Conditions)
		if err != nil {
			return core.Permission{}, err
		}
		result.Conditions = conditions

	case core.InheritancePriority:
		bonus := int(math.Round(edge.EffectiveWeight() * 100))
		result.Priority = clampPriority(parent.Priority + bonus)

	case core.InheritanceOverride:
		reason := edge.Reason
		if reason == "" {
			reason = defaultOverrideReason
		}
		result.Conditions.Overrides = &core.OverrideRecord{
			ParentID:       parent.ID,
			OriginalEffect: parent.Effect,
			Reason:         reason,
		}

	default:
		return core.Permission{}, core.NewErrorInvalidArgument("unknown inheritance type " + string(edge.Type))
	}

	metadata := datatypes.JSONMap{}
	for k, v := range child.Metadata {
		metadata[k] = v
	}
	metadata[core.MetadataInheritedFrom] = parent.ID
	metadata[core.MetadataInheritanceID] = edge.ID
	metadata[core.MetadataInheritanceType] = string(edge.Type)
	result.Metadata = metadata

	return result, nil
}

func mergeDocuments(parent, child core.Conditions, strategies map[string]core.MergeStrategy) (core.Conditions, error) {
	pm, err := parent.ToMap()
	if err != nil {
		return core.Conditions{}, err
	}
	cm, err := child.ToMap()
	if err != nil {
		return core.Conditions{}, err
	}
	return core.ConditionsFromMap(MergeConditions(pm, cm, strategies))
}

func clampPriority(p int) int {
	if p < core.MinPriority {
		return core.MinPriority
	}
	if p > core.MaxPriority {
		return core.MaxPriority
	}
	return p
}

// apply loads the edge and both endpoints through repo and writes the merged child.
func (s *service) apply(ctx context.Context, repo Repository, edge core.PermissionInheritance) (core.Permission, error) {
	ctx, span := tracer.Start(ctx, "Inheritance.Service.apply")
	defer span.End()

	span.SetAttributes(
		attribute.String("edge", edge.ID),
		attribute.String("type", string(edge.Type)),
	)

	parent, err := repo.GetPermission(ctx, edge.ParentID)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return core.Permission{}, errors.Wrap(err, "failed to load parent permission")
	}
	child, err := repo.GetPermission(ctx, edge.ChildID)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return core.Permission{}, errors.Wrap(err, "failed to load child permission")
	}

	merged, err := ApplyInheritance(parent, child, edge)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return core.Permission{}, err
	}
	if edge.UpdatedBy != "" {
		merged.UpdatedBy = edge.UpdatedBy
	} else if edge.CreatedBy != "" {
		merged.UpdatedBy = edge.CreatedBy
	}

	updated, err := repo.UpdatePermission(ctx, merged)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return core.Permission{}, errors.Wrap(err, "failed to write child permission")
	}

	return updated, nil
}
