package evaluation

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/mock/gomock"

	"github.com/totegamma/permgraph/core"
	"github.com/totegamma/permgraph/core/mock"
	"github.com/totegamma/permgraph/internal/testutil"
	"github.com/totegamma/permgraph/x/condition"
)

var (
	lastYear = time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	noon     = time.Date(2024, 5, 6, 12, 0, 0, 0, time.UTC)
	evening  = time.Date(2024, 5, 6, 20, 0, 0, 0, time.UTC)
)

func ptr(s string) *string {
	return &s
}

func allow(id string, priority int) core.Permission {
	return core.Permission{
		ID:             id,
		OrganizationID: "org",
		ResourceType:   "document",
		Action:         "read",
		Effect:         core.EffectAllow,
		Priority:       priority,
		Active:         true,
		EffectiveFrom:  lastYear,
	}
}

func deny(id string, priority int) core.Permission {
	p := allow(id, priority)
	p.Effect = core.EffectDeny
	return p
}

type fixture struct {
	permission *mock_core.MockPermissionService
	directory  *mock_core.MockDirectoryService
	service    core.EvaluationService
}

func setup(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	permission := mock_core.NewMockPermissionService(ctrl)
	directory := mock_core.NewMockDirectoryService(ctrl)
	conditions := condition.NewService(directory, nil)

	svc := NewService(permission, conditions, directory, core.Config{}).(*service)
	svc.clock = func() time.Time { return noon }

	return fixture{
		permission: permission,
		directory:  directory,
		service:    svc,
	}
}

func TestDenyWinsOverHigherPriorityAllow(t *testing.T) {
	f := setup(t)

	f.directory.EXPECT().GetUserNode(gomock.Any(), "alice").Return("", core.NewErrorNotFound())
	f.permission.EXPECT().ListEffectiveByUser(gomock.Any(), "alice", noon).Return([]core.Permission{allow("user-allow", 900)}, nil)
	f.permission.EXPECT().ListEffectiveByRoles(gomock.Any(), []string{"editor"}, noon).Return([]core.Permission{deny("role-deny", 10)}, nil)

	decision, err := f.service.Evaluate(context.Background(), "alice", "read", "document", core.RequestContext{
		UserRoles: []string{"editor"},
		Timestamp: &noon,
	})
	assert.NoError(t, err)
	assert.False(t, decision.Allowed)
	if assert.NotNil(t, decision.MatchedPermission) {
		assert.Equal(t, "role-deny", *decision.MatchedPermission)
	}
}

func TestEffectiveWindow(t *testing.T) {
	f := setup(t)

	expired := allow("expired", 100)
	ended := noon.Add(-time.Hour)
	expired.EffectiveTo = &ended

	future := allow("future", 100)
	future.EffectiveFrom = noon.Add(time.Hour)

	inactive := allow("inactive", 100)
	inactive.Active = false

	f.directory.EXPECT().GetUserRoles(gomock.Any(), "alice").Return([]string{}, nil)
	f.directory.EXPECT().GetUserNode(gomock.Any(), "alice").Return("", nil)
	f.permission.EXPECT().ListEffectiveByUser(gomock.Any(), "alice", noon).Return([]core.Permission{expired, future, inactive}, nil)

	decision, err := f.service.Evaluate(context.Background(), "alice", "read", "document", core.RequestContext{Timestamp: &noon})
	assert.NoError(t, err)
	assert.False(t, decision.Allowed)
	assert.Nil(t, decision.MatchedPermission)
	assert.Equal(t, core.ReasonNoApplicablePermission, decision.Reason)
}

func TestBackdatedTimestampDoesNotReviveExpired(t *testing.T) {
	f := setup(t)

	expired := allow("expired", 100)
	ended := noon.Add(-24 * time.Hour)
	expired.EffectiveTo = &ended
	backdated := ended.Add(-time.Hour)

	f.directory.EXPECT().GetUserNode(gomock.Any(), "alice").Return("", nil)
	f.permission.EXPECT().ListEffectiveByUser(gomock.Any(), "alice", noon).Return([]core.Permission{expired}, nil)

	decision, err := f.service.Evaluate(context.Background(), "alice", "read", "document", core.RequestContext{
		UserRoles: []string{},
		Timestamp: &backdated,
	})
	assert.NoError(t, err)
	assert.False(t, decision.Allowed)
	assert.Nil(t, decision.MatchedPermission)
}

func TestWildcardAction(t *testing.T) {
	f := setup(t)

	anyAction := allow("any-action", 100)
	anyAction.Action = core.Wildcard
	other := allow("other-resource", 100)
	other.ResourceType = "report"
	other.Action = core.Wildcard

	f.directory.EXPECT().GetUserNode(gomock.Any(), "alice").Return("", nil)
	f.permission.EXPECT().ListEffectiveByUser(gomock.Any(), "alice", noon).Return([]core.Permission{}, nil)
	f.permission.EXPECT().ListEffectiveByRoles(gomock.Any(), []string{"admin"}, noon).Return([]core.Permission{other, anyAction}, nil)

	decision, err := f.service.Evaluate(context.Background(), "alice", "delete", "document", core.RequestContext{
		UserRoles: []string{"admin"},
		Timestamp: &noon,
	})
	assert.NoError(t, err)
	assert.True(t, decision.Allowed)
	assert.Equal(t, "any-action", *decision.MatchedPermission)
}

func TestNodeAncestorInheritance(t *testing.T) {
	f := setup(t)

	department := allow("department-read", 50)
	department.NodeID = ptr("eng")
	department.Conditions.Hierarchy = &core.HierarchyClause{AllowedDepartments: []string{"eng"}}

	f.directory.EXPECT().GetUserRoles(gomock.Any(), "alice").Return(nil, core.NewErrorNotFound())
	f.directory.EXPECT().GetUserNode(gomock.Any(), "alice").Return("team-a", nil)
	f.directory.EXPECT().GetNode(gomock.Any(), "team-a").Return(core.Node{ID: "team-a", ParentID: "eng", Level: 3, Type: "team"}, nil).AnyTimes()
	f.directory.EXPECT().GetAncestors(gomock.Any(), "team-a").Return([]core.Node{
		{ID: "root", Level: 1, Type: "organization"},
		{ID: "eng", ParentID: "root", Level: 2, Type: core.NodeTypeDepartment},
	}, nil).AnyTimes()
	f.permission.EXPECT().ListEffectiveByUser(gomock.Any(), "alice", noon).Return(nil, nil)
	f.permission.EXPECT().ListEffectiveByNodes(gomock.Any(), []string{"team-a", "eng", "root"}, noon).Return([]core.Permission{department}, nil)

	decision, err := f.service.Evaluate(context.Background(), "alice", "read", "document", core.RequestContext{Timestamp: &noon})
	assert.NoError(t, err)
	assert.True(t, decision.Allowed)
	assert.Equal(t, "department-read", *decision.MatchedPermission)
}

func TestConditionsFilterCandidates(t *testing.T) {
	f := setup(t)

	businessHours := allow("business-hours", 100)
	businessHours.Conditions.Time = &core.TimeClause{StartTime: "09:00", EndTime: "17:00"}

	f.directory.EXPECT().GetUserNode(gomock.Any(), "alice").Return("", nil).Times(2)
	f.permission.EXPECT().ListEffectiveByUser(gomock.Any(), "alice", gomock.Any()).Return([]core.Permission{businessHours}, nil).Times(2)

	decision, err := f.service.Evaluate(context.Background(), "alice", "read", "document", core.RequestContext{UserRoles: []string{}, Timestamp: &noon})
	assert.NoError(t, err)
	assert.True(t, decision.Allowed)

	decision, err = f.service.Evaluate(context.Background(), "alice", "read", "document", core.RequestContext{UserRoles: []string{}, Timestamp: &evening})
	assert.NoError(t, err)
	assert.False(t, decision.Allowed)
	assert.Equal(t, core.ReasonNoApplicablePermission, decision.Reason)
}

func TestPriorityTieKeepsGatheringOrder(t *testing.T) {
	f := setup(t)

	other := allow("other-org", 900)
	other.OrganizationID = "elsewhere"

	f.directory.EXPECT().GetUserNode(gomock.Any(), "alice").Return("", nil)
	f.permission.EXPECT().ListEffectiveByUser(gomock.Any(), "alice", noon).Return([]core.Permission{other, allow("user", 100)}, nil)
	f.permission.EXPECT().ListEffectiveByRoles(gomock.Any(), []string{"editor"}, noon).Return([]core.Permission{allow("role", 100), allow("user", 100)}, nil)

	decision, err := f.service.Evaluate(context.Background(), "alice", "read", "document", core.RequestContext{
		OrganizationID: "org",
		UserRoles:      []string{"editor"},
		Timestamp:      &noon,
	})
	assert.NoError(t, err)
	assert.True(t, decision.Allowed)
	assert.Equal(t, "user", *decision.MatchedPermission)
}

func TestFailClosedOnDirectoryError(t *testing.T) {
	f := setup(t)

	f.directory.EXPECT().GetUserRoles(gomock.Any(), "alice").Return(nil, errors.New("directory unavailable"))

	decision, err := f.service.Evaluate(context.Background(), "alice", "read", "document", core.RequestContext{Timestamp: &noon})
	assert.Error(t, err)
	assert.False(t, decision.Allowed)
	assert.Nil(t, decision.MatchedPermission)
}

func TestFailClosedOnConditionError(t *testing.T) {
	f := setup(t)

	broken := allow("broken", 100)
	broken.Conditions.Time = &core.TimeClause{StartTime: "9am", EndTime: "5pm"}

	f.directory.EXPECT().GetUserNode(gomock.Any(), "alice").Return("", nil)
	f.permission.EXPECT().ListEffectiveByUser(gomock.Any(), "alice", noon).Return([]core.Permission{broken}, nil)

	decision, err := f.service.Evaluate(context.Background(), "alice", "read", "document", core.RequestContext{UserRoles: []string{}, Timestamp: &noon})
	assert.Error(t, err)
	assert.False(t, decision.Allowed)
}

func TestDeadlineApplied(t *testing.T) {
	f := setup(t)

	f.directory.EXPECT().GetUserNode(gomock.Any(), "alice").DoAndReturn(func(ctx context.Context, userID string) (string, error) {
		_, ok := ctx.Deadline()
		assert.True(t, ok)
		return "", nil
	})
	f.permission.EXPECT().ListEffectiveByUser(gomock.Any(), "alice", noon).Return(nil, nil)

	decision, err := f.service.Evaluate(context.Background(), "alice", "read", "document", core.RequestContext{UserRoles: []string{}, Timestamp: &noon})
	assert.NoError(t, err)
	assert.False(t, decision.Allowed)
}

func TestEvaluationSpans(t *testing.T) {
	checker := testutil.SetupMockTraceProvider()
	f := setup(t)

	f.directory.EXPECT().GetUserNode(gomock.Any(), "alice").Return("", nil)
	f.permission.EXPECT().ListEffectiveByUser(gomock.Any(), "alice", noon).Return([]core.Permission{allow("user", 100)}, nil)

	_, err := f.service.Evaluate(context.Background(), "alice", "read", "document", core.RequestContext{UserRoles: []string{}, Timestamp: &noon})
	assert.NoError(t, err)

	names := map[string]bool{}
	for _, span := range checker.GetSpans() {
		names[span.Name] = true
		if span.Name == "Evaluation.Service.Evaluate" {
			assert.Contains(t, span.Attributes, attribute.Bool("allowed", true))
		}
	}
	assert.True(t, names["Evaluation.Service.Evaluate"])
	assert.True(t, names["Evaluation.Service.candidates"])
	assert.True(t, names["Condition.Service.Evaluate"])
}
