package job

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/totegamma/permgraph/core"
	"github.com/totegamma/permgraph/internal/testutil"
)

func TestRepository(t *testing.T) {
	ctx := context.Background()

	db, cleanup_db := testutil.CreateDB()
	defer cleanup_db()

	repo := NewRepository(db)

	past := time.Now().Add(-time.Hour)
	first, err := repo.Enqueue(ctx, "admin", core.JobTypeValidateChain, `{"rootID":"A"}`, past)
	if assert.NoError(t, err) {
		assert.NotEmpty(t, first.ID)
		assert.Equal(t, StatusPending, first.Status)
	}

	_, err = repo.Enqueue(ctx, "admin", core.JobTypeBulkApply, `{"ids":["e1"]}`, time.Now().Add(time.Hour))
	assert.NoError(t, err)

	jobs, err := repo.List(ctx, "admin")
	assert.NoError(t, err)
	assert.Len(t, jobs, 2)

	// only the due job is claimed
	claimed, err := repo.Dequeue(ctx)
	if assert.NoError(t, err) {
		assert.Equal(t, first.ID, claimed.ID)
		assert.Equal(t, StatusRunning, claimed.Status)
	}

	_, err = repo.Dequeue(ctx)
	assert.True(t, core.IsNotFound(err))

	_, err = repo.Cancel(ctx, first.ID)
	assert.ErrorAs(t, err, &core.ErrorInvalidArgument{})

	done, err := repo.Complete(ctx, first.ID, StatusCompleted, "valid, length 1")
	if assert.NoError(t, err) {
		assert.Equal(t, StatusCompleted, done.Status)
	}

	cleaned, err := repo.Clean(ctx, time.Now())
	assert.NoError(t, err)
	assert.Len(t, cleaned, 1)

	jobs, err = repo.List(ctx, "admin")
	assert.NoError(t, err)
	assert.Len(t, jobs, 1)
}
