package job

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/totegamma/permgraph/core"
	"github.com/totegamma/permgraph/x/job/mock"
)

func TestCreateChecksPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock_job.NewMockRepository(ctrl)
	mockRepo.EXPECT().
		Enqueue(gomock.Any(), "admin", core.JobTypeValidateChain, `{"rootID":"A"}`, gomock.Any()).
		DoAndReturn(func(ctx context.Context, author, typ, payload string, scheduled time.Time) (core.Job, error) {
			assert.False(t, scheduled.IsZero())
			return core.Job{ID: "j1", Type: typ, Payload: payload, Status: StatusPending}, nil
		})

	s := NewService(mockRepo)
	ctx := context.Background()

	job, err := s.Create(ctx, "admin", core.JobTypeValidateChain, `{"rootID":"A"}`, time.Time{})
	assert.NoError(t, err)
	assert.Equal(t, "j1", job.ID)

	_, err = s.Create(ctx, "admin", core.JobTypeBulkApply, `{"ids":[]}`, time.Time{})
	assert.ErrorAs(t, err, &core.ErrorInvalidArgument{})

	_, err = s.Create(ctx, "admin", core.JobTypeValidateChain, `not json`, time.Time{})
	assert.ErrorAs(t, err, &core.ErrorInvalidArgument{})

	_, err = s.Create(ctx, "admin", "hello", `{}`, time.Time{})
	assert.ErrorAs(t, err, &core.ErrorInvalidArgument{})
}
