package condition

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/pkg/errors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"

	"github.com/totegamma/permgraph/core"
)

// NopHook accepts every custom clause.
type NopHook struct{}

func (NopHook) EvaluateCustom(ctx context.Context, clause core.CustomClause, rc core.RequestContext) (bool, error) {
	return true, nil
}

// ScriptHook evaluates named expr-lang scripts.
// Scripts see: user, roles, node, organization, resource, location, attributes, params, now.
type ScriptHook struct {
	programs map[string]*vm.Program
}

func NewScriptHook(scripts map[string]string) (*ScriptHook, error) {
	programs := make(map[string]*vm.Program, len(scripts))
	for name, source := range scripts {
		program, err := expr.Compile(source, expr.AsBool())
		if err != nil {
			return nil, errors.Wrapf(err, "failed to compile script %s", name)
		}
		programs[name] = program
	}
	return &ScriptHook{programs}, nil
}

func (h *ScriptHook) EvaluateCustom(ctx context.Context, clause core.CustomClause, rc core.RequestContext) (bool, error) {
	_, span := tracer.Start(ctx, "Condition.ScriptHook.EvaluateCustom")
	defer span.End()

	span.SetAttributes(attribute.String("script", clause.Script))

	program, ok := h.programs[clause.Script]
	if !ok {
		return false, fmt.Errorf("unknown script: %s", clause.Script)
	}

	result, err := expr.Run(program, scriptEnv(clause, rc))
	if err != nil {
		span.RecordError(err)
		return false, errors.Wrapf(err, "script %s failed", clause.Script)
	}

	allowed, ok := result.(bool)
	if !ok {
		return false, fmt.Errorf("script %s returned %T, expected bool", clause.Script, result)
	}
	return allowed, nil
}

func scriptEnv(clause core.CustomClause, rc core.RequestContext) map[string]any {
	env := map[string]any{
		"user":         rc.UserID,
		"roles":        rc.UserRoles,
		"node":         rc.UserNodeID,
		"organization": rc.OrganizationID,
		"attributes":   rc.Attributes,
		"params":       clause.Params,
		"now":          rc.Now(),
		"resource":     map[string]any{},
		"location":     map[string]any{},
	}
	if rc.Resource != nil {
		env["resource"] = map[string]any{
			"id":         rc.Resource.ID,
			"type":       rc.Resource.Type,
			"owner":      rc.Resource.OwnerID,
			"state":      rc.Resource.State,
			"attributes": rc.Resource.Attributes,
		}
	}
	if rc.Location != nil {
		env["location"] = map[string]any{
			"ip":      rc.Location.IP,
			"country": rc.Location.Country,
			"region":  rc.Location.Region,
		}
	}
	return env
}

// EndpointHook delegates the decision to an external HTTP endpoint.
type EndpointHook struct {
	client *http.Client
}

type endpointRequest struct {
	Context core.RequestContext `json:"context"`
	Params  map[string]any      `json:"params,omitempty"`
}

type endpointResponse struct {
	Allowed bool `json:"allowed"`
}

func NewEndpointHook(timeout time.Duration) *EndpointHook {
	return &EndpointHook{
		client: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			Timeout:   timeout,
		},
	}
}

func (h *EndpointHook) EvaluateCustom(ctx context.Context, clause core.CustomClause, rc core.RequestContext) (bool, error) {
	ctx, span := tracer.Start(ctx, "Condition.EndpointHook.EvaluateCustom")
	defer span.End()

	body, err := json.Marshal(endpointRequest{Context: rc, Params: clause.Params})
	if err != nil {
		return false, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, clause.Endpoint, bytes.NewReader(body))
	if err != nil {
		span.RecordError(err)
		return false, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.client.Do(req)
	if err != nil {
		span.RecordError(err)
		return false, errors.Wrap(err, "custom endpoint unreachable")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("custom endpoint returned status %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		span.RecordError(err)
		return false, err
	}

	var decoded core.ResponseBase[endpointResponse]
	err = json.Unmarshal(raw, &decoded)
	if err != nil {
		span.RecordError(err)
		return false, err
	}
	if decoded.Status != "ok" {
		return false, fmt.Errorf("custom endpoint error: %s", decoded.Error)
	}

	return decoded.Content.Allowed, nil
}

// HookRouter picks the script or endpoint hook according to the clause.
// Clauses without a matching configured hook pass.
type HookRouter struct {
	Script   core.CustomConditionEvaluator
	Endpoint core.CustomConditionEvaluator
}

func (r HookRouter) EvaluateCustom(ctx context.Context, clause core.CustomClause, rc core.RequestContext) (bool, error) {
	if clause.Script != "" && r.Script != nil {
		return r.Script.EvaluateCustom(ctx, clause, rc)
	}
	if clause.Endpoint != "" && r.Endpoint != nil {
		return r.Endpoint.EvaluateCustom(ctx, clause, rc)
	}
	return NopHook{}.EvaluateCustom(ctx, clause, rc)
}

// NewHook builds the custom condition evaluator described by the config.
func NewHook(config core.Config) (core.CustomConditionEvaluator, error) {
	config = config.WithDefaults()

	router := HookRouter{}
	if len(config.Scripts) > 0 {
		scripts, err := NewScriptHook(config.Scripts)
		if err != nil {
			return nil, err
		}
		router.Script = scripts
	}
	if config.EnableEndpointHooks {
		router.Endpoint = NewEndpointHook(config.EndpointTimeout)
	}
	return router, nil
}
