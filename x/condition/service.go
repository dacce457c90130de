package condition

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/totegamma/permgraph/core"
)

var tracer = otel.Tracer("condition")

type service struct {
	directory core.DirectoryService
	custom    core.CustomConditionEvaluator
}

// NewService creates the condition evaluator.
// A nil custom evaluator falls back to NopHook.
func NewService(directory core.DirectoryService, custom core.CustomConditionEvaluator) core.ConditionService {
	if custom == nil {
		custom = NopHook{}
	}
	return &service{directory, custom}
}

type clauseEval func(ctx context.Context) (bool, error)

// Evaluate tests every present clause against the request context and combines
// the results with the document operator (AND unless OR is given).
func (s *service) Evaluate(ctx context.Context, conditions *core.Conditions, rc core.RequestContext) (bool, error) {
	ctx, span := tracer.Start(ctx, "Condition.Service.Evaluate")
	defer span.End()

	if conditions.IsEmpty() {
		return true, nil
	}

	now := rc.Now()
	var clauses []clauseEval

	if c := conditions.Time; c != nil {
		clauses = append(clauses, func(_ context.Context) (bool, error) {
			return evalTime(c, now)
		})
	}
	if c := conditions.Location; c != nil {
		clauses = append(clauses, func(_ context.Context) (bool, error) {
			return evalLocation(c, rc.Location), nil
		})
	}
	if c := conditions.Resource; c != nil {
		clauses = append(clauses, func(_ context.Context) (bool, error) {
			return evalResource(c, rc), nil
		})
	}
	if c := conditions.Hierarchy; c != nil {
		clauses = append(clauses, func(ctx context.Context) (bool, error) {
			return s.evalHierarchy(ctx, c, rc)
		})
	}
	if c := conditions.Custom; c != nil {
		clauses = append(clauses, func(ctx context.Context) (bool, error) {
			return s.custom.EvaluateCustom(ctx, *c, rc)
		})
	}

	or := conditions.Operator == core.OperatorOr
	span.SetAttributes(
		attribute.Int("clauses", len(clauses)),
		attribute.Bool("or", or),
	)

	for _, clause := range clauses {
		ok, err := clause(ctx)
		if err != nil {
			span.SetStatus(codes.Error, err.Error())
			return false, err
		}
		if or && ok {
			return true, nil
		}
		if !or && !ok {
			return false, nil
		}
	}

	return !or, nil
}

// evalTime ANDs the time-of-day, weekday and date range rules. A clause
// without any of them does not restrict.
func evalTime(c *core.TimeClause, now time.Time) (bool, error) {
	if c.Timezone != "" {
		loc, err := time.LoadLocation(c.Timezone)
		if err != nil {
			return false, errors.Wrapf(err, "invalid timezone %q", c.Timezone)
		}
		now = now.In(loc)
	}

	if c.StartTime != "" || c.EndTime != "" {
		ok, err := withinTimeOfDay(c.StartTime, c.EndTime, now)
		if err != nil || !ok {
			return false, err
		}
	}

	if len(c.DaysOfWeek) > 0 && !onWeekday(c.DaysOfWeek, now) {
		return false, nil
	}

	if c.DateRange != nil && !withinDateRange(c.DateRange, now) {
		return false, nil
	}

	return true, nil
}

func (s *service) evalHierarchy(ctx context.Context, c *core.HierarchyClause, rc core.RequestContext) (bool, error) {
	ctx, span := tracer.Start(ctx, "Condition.Service.evalHierarchy")
	defer span.End()

	if rc.UserNodeID == "" {
		return false, nil
	}

	node, err := s.directory.GetNode(ctx, rc.UserNodeID)
	if err != nil {
		if core.IsNotFound(err) {
			return false, nil
		}
		span.RecordError(err)
		return false, errors.Wrap(err, "failed to resolve user node")
	}

	if c.MinLevel != nil && node.Level < *c.MinLevel {
		return false, nil
	}
	if c.MaxLevel != nil && node.Level > *c.MaxLevel {
		return false, nil
	}
	if len(c.BlockedNodes) > 0 && contains(c.BlockedNodes, node.ID) {
		return false, nil
	}
	if len(c.AllowedNodes) > 0 && !contains(c.AllowedNodes, node.ID) {
		return false, nil
	}

	if len(c.AllowedDepartments) > 0 {
		ancestors, err := s.directory.GetAncestors(ctx, node.ID)
		if err != nil && !core.IsNotFound(err) {
			span.RecordError(err)
			return false, errors.Wrap(err, "failed to resolve node ancestors")
		}
		chain := append([]core.Node{node}, ancestors...)
		if !inDepartment(chain, c.AllowedDepartments) {
			return false, nil
		}
	}

	return true, nil
}
