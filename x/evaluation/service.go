package evaluation

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/totegamma/permgraph/core"
)

var tracer = otel.Tracer("evaluation")

var (
	registerOnce        sync.Once
	evaluationsTotal    *prometheus.CounterVec
	evaluationCandidate prometheus.Histogram
)

func registerMetrics() {
	registerOnce.Do(func() {
		evaluationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "permgraph_evaluations_total",
			Help: "Total number of permission evaluations",
		}, []string{"result"})
		prometheus.MustRegister(evaluationsTotal)

		evaluationCandidate = prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "permgraph_evaluation_candidates",
			Help:    "Number of candidate permissions gathered per evaluation",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		})
		prometheus.MustRegister(evaluationCandidate)
	})
}

type service struct {
	permission core.PermissionService
	condition  core.ConditionService
	directory  core.DirectoryService
	config     core.Config
	clock      func() time.Time
}

func NewService(
	permission core.PermissionService,
	condition core.ConditionService,
	directory core.DirectoryService,
	config core.Config,
) core.EvaluationService {
	registerMetrics()
	return &service{permission, condition, directory, config.WithDefaults(), time.Now}
}

// Evaluate decides whether userID may perform action on resourceType.
// Deny wins over allow regardless of priority; any failure denies.
func (s *service) Evaluate(ctx context.Context, userID, action, resourceType string, rc core.RequestContext) (core.Decision, error) {
	ctx, span := tracer.Start(ctx, "Evaluation.Service.Evaluate")
	defer span.End()

	span.SetAttributes(
		attribute.String("user", userID),
		attribute.String("action", action),
		attribute.String("resourceType", resourceType),
	)

	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.EvaluationTimeout)
		defer cancel()
	}

	decision, err := s.evaluate(ctx, userID, action, resourceType, rc)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		evaluationsTotal.WithLabelValues("error").Inc()
		slog.ErrorContext(
			ctx, "evaluation failed",
			slog.String("error", err.Error()),
			slog.String("user", userID),
			slog.String("module", "evaluation"),
		)
		return core.Decision{Allowed: false, Reason: "Evaluation failed"}, err
	}

	if decision.Allowed {
		evaluationsTotal.WithLabelValues("allow").Inc()
	} else {
		evaluationsTotal.WithLabelValues("deny").Inc()
	}
	span.SetAttributes(attribute.Bool("allowed", decision.Allowed))

	return decision, nil
}

func (s *service) evaluate(ctx context.Context, userID, action, resourceType string, rc core.RequestContext) (core.Decision, error) {
	if rc.UserID == "" {
		rc.UserID = userID
	}

	rc, err := s.resolveIdentity(ctx, userID, rc)
	if err != nil {
		return core.Decision{}, err
	}

	candidates, err := s.candidates(ctx, userID, rc)
	if err != nil {
		return core.Decision{}, err
	}
	evaluationCandidate.Observe(float64(len(candidates)))

	// lifecycle is judged on the wall clock; rc.Timestamp only feeds conditions
	now := s.clock()
	matched := make([]core.Permission, 0, len(candidates))
	for _, candidate := range candidates {
		if !candidate.IsEffectiveAt(now) {
			continue
		}
		if rc.OrganizationID != "" && candidate.OrganizationID != rc.OrganizationID {
			continue
		}
		if candidate.ResourceType != resourceType {
			continue
		}
		if candidate.Action != action && candidate.Action != core.Wildcard {
			continue
		}

		ok, err := s.condition.Evaluate(ctx, &candidate.Conditions, rc)
		if err != nil {
			return core.Decision{}, errors.Wrapf(err, "failed to evaluate conditions of %s", candidate.ID)
		}
		if ok {
			matched = append(matched, candidate)
		}
	}

	return decide(matched), nil
}

// decide picks the outcome from the permissions whose conditions hold.
func decide(matched []core.Permission) core.Decision {
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Priority > matched[j].Priority
	})

	for _, p := range matched {
		if p.Effect == core.EffectDeny {
			id := p.ID
			return core.Decision{
				Allowed:           false,
				MatchedPermission: &id,
				Reason:            fmt.Sprintf("Denied by permission %s", id),
			}
		}
	}

	for _, p := range matched {
		if p.Effect == core.EffectAllow {
			id := p.ID
			return core.Decision{
				Allowed:           true,
				MatchedPermission: &id,
				Reason:            fmt.Sprintf("Allowed by permission %s", id),
			}
		}
	}

	return core.Decision{Allowed: false, Reason: core.ReasonNoApplicablePermission}
}

func (s *service) resolveIdentity(ctx context.Context, userID string, rc core.RequestContext) (core.RequestContext, error) {
	ctx, span := tracer.Start(ctx, "Evaluation.Service.resolveIdentity")
	defer span.End()

	if rc.UserRoles == nil {
		roles, err := s.directory.GetUserRoles(ctx, userID)
		if err != nil && !core.IsNotFound(err) {
			span.RecordError(err)
			return rc, errors.Wrap(err, "failed to resolve user roles")
		}
		if roles == nil {
			roles = []string{}
		}
		rc.UserRoles = roles
	}

	if rc.UserNodeID == "" {
		nodeID, err := s.directory.GetUserNode(ctx, userID)
		if err != nil && !core.IsNotFound(err) {
			span.RecordError(err)
			return rc, errors.Wrap(err, "failed to resolve user node")
		}
		rc.UserNodeID = nodeID
	}

	return rc, nil
}

// candidates gathers permissions in order: user, roles, node, then ancestors nearest first.
func (s *service) candidates(ctx context.Context, userID string, rc core.RequestContext) ([]core.Permission, error) {
	ctx, span := tracer.Start(ctx, "Evaluation.Service.candidates")
	defer span.End()

	at := s.clock()
	seen := map[string]bool{}
	var result []core.Permission
	add := func(permissions []core.Permission) {
		for _, p := range permissions {
			if seen[p.ID] {
				continue
			}
			seen[p.ID] = true
			result = append(result, p)
		}
	}

	byUser, err := s.permission.ListEffectiveByUser(ctx, userID, at)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user permissions")
	}
	add(byUser)

	if len(rc.UserRoles) > 0 {
		byRole, err := s.permission.ListEffectiveByRoles(ctx, rc.UserRoles, at)
		if err != nil {
			return nil, errors.Wrap(err, "failed to list role permissions")
		}
		add(byRole)
	}

	if rc.UserNodeID != "" {
		ancestors, err := s.directory.GetAncestors(ctx, rc.UserNodeID)
		if err != nil && !core.IsNotFound(err) {
			return nil, errors.Wrap(err, "failed to resolve node ancestors")
		}
		sort.SliceStable(ancestors, func(i, j int) bool {
			return ancestors[i].Level > ancestors[j].Level
		})

		nodeIDs := []string{rc.UserNodeID}
		for _, ancestor := range ancestors {
			if ancestor.ID != rc.UserNodeID {
				nodeIDs = append(nodeIDs, ancestor.ID)
			}
		}

		byNode, err := s.permission.ListEffectiveByNodes(ctx, nodeIDs, at)
		if err != nil {
			return nil, errors.Wrap(err, "failed to list node permissions")
		}

		grouped := map[string][]core.Permission{}
		for _, p := range byNode {
			if p.NodeID == nil {
				continue
			}
			grouped[*p.NodeID] = append(grouped[*p.NodeID], p)
		}
		for _, nodeID := range nodeIDs {
			add(grouped[nodeID])
		}
	}

	span.SetAttributes(attribute.Int("candidates", len(result)))
	return result, nil
}
