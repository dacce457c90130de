package inheritance_test

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/totegamma/permgraph/core"
	"github.com/totegamma/permgraph/x/inheritance"
	"github.com/totegamma/permgraph/x/inheritance/mock"
)

func TestStoreFailureSurfaces(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storeErr := errors.New("connection reset")

	mockRepo := mock_inheritance.NewMockRepository(ctrl)
	mockRepo.EXPECT().
		Transaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(repo inheritance.Repository) error) error {
			return fn(mockRepo)
		})
	mockRepo.EXPECT().GetPermission(gomock.Any(), "parent").Return(core.Permission{}, storeErr)

	s := inheritance.NewService(mockRepo, core.Config{})

	_, _, err := s.Create(context.Background(), core.PermissionInheritance{
		ParentID: "parent",
		ChildID:  "child",
		Type:     core.InheritanceFull,
	}, false)
	assert.ErrorIs(t, err, storeErr)
}

func TestListQueriesDelegate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock_inheritance.NewMockRepository(ctrl)
	mockRepo.EXPECT().ListActiveByChild(gomock.Any(), "child").Return([]core.PermissionInheritance{{ID: "e1", ParentID: "parent", ChildID: "child"}}, nil)
	mockRepo.EXPECT().ListActiveByParent(gomock.Any(), "parent").Return([]core.PermissionInheritance{{ID: "e1", ParentID: "parent", ChildID: "child"}}, nil)
	mockRepo.EXPECT().Get(gomock.Any(), "e1").Return(core.PermissionInheritance{ID: "e1"}, nil)

	s := inheritance.NewService(mockRepo, core.Config{})

	parents, err := s.ListParents(context.Background(), "child")
	assert.NoError(t, err)
	assert.Len(t, parents, 1)

	children, err := s.ListChildren(context.Background(), "parent")
	assert.NoError(t, err)
	assert.Len(t, children, 1)

	got, err := s.Get(context.Background(), "e1")
	assert.NoError(t, err)
	assert.Equal(t, "e1", got.ID)
}
