package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/beldeveloper/train-dispatch/internal/app"
	"github.com/beldeveloper/train-dispatch/internal/app/errtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) app.ExperimentRepo {
	t.Helper()
	db, err := Connect(filepath.Join(t.TempDir(), "data", "train_dispatch.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewExperiment(db)
}

func testExperiment() app.Experiment {
	return app.Experiment{
		Kind:           app.ExperimentKindPolicy,
		Name:           "20220825/sac_pick",
		Env:            "pick",
		TrainerConfig:  "configs/pybullet/trainers/agent.yaml",
		AgentConfig:    "configs/pybullet/agents/sac.yaml",
		EnvConfig:      "configs/pybullet/envs/pick.yaml",
		CheckpointFile: "final_model.pt",
		Args:           []string{"--gui", "0"},
		AutoScod:       true,
		Status:         app.ExperimentStatusPending,
		CreatedAt:      time.Date(2022, time.August, 25, 10, 0, 0, 0, time.UTC),
		UpdatedAt:      time.Date(2022, time.August, 25, 10, 0, 0, 0, time.UTC),
	}
}

func TestExperiment_AddFindByID(t *testing.T) {
	t.Parallel()
	repo := newTestRepo(t)
	ctx := context.Background()

	want := testExperiment()
	added, err := repo.Add(ctx, want)
	require.NoError(t, err)
	require.Equal(t, uint64(1), added.ID)

	want.ID = added.ID
	got, err := repo.FindByID(ctx, added.ID)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestExperiment_FindByIDNotFound(t *testing.T) {
	t.Parallel()
	repo := newTestRepo(t)
	_, err := repo.FindByID(context.Background(), 42)
	require.Error(t, err)
	assert.ErrorIs(t, err, errtype.ErrNotFound)
}

func TestExperiment_AddNoArgs(t *testing.T) {
	t.Parallel()
	repo := newTestRepo(t)
	ctx := context.Background()

	e := testExperiment()
	e.Args = nil
	added, err := repo.Add(ctx, e)
	require.NoError(t, err)

	got, err := repo.FindByID(ctx, added.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Args)
	assert.Nil(t, got.ErrorMsg)
}

func TestExperiment_FindAll(t *testing.T) {
	t.Parallel()
	repo := newTestRepo(t)
	ctx := context.Background()

	policy := testExperiment()
	_, err := repo.Add(ctx, policy)
	require.NoError(t, err)

	scod := testExperiment()
	scod.Kind = app.ExperimentKindScod
	_, err = repo.Add(ctx, scod)
	require.NoError(t, err)

	failed, err := repo.Add(ctx, policy)
	require.NoError(t, err)
	errMsg := "NODE_FAIL"
	failed.Status = app.ExperimentStatusFailed
	failed.ErrorMsg = &errMsg
	failed.UpdatedAt = failed.UpdatedAt.Add(time.Minute)
	require.NoError(t, repo.UpdateStatus(ctx, failed))

	all, err := repo.FindAll(ctx, app.FilterExperiments{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	// newest first
	assert.Equal(t, uint64(3), all[0].ID)
	assert.Equal(t, uint64(1), all[2].ID)
	require.NotNil(t, all[0].ErrorMsg)
	assert.Equal(t, "NODE_FAIL", *all[0].ErrorMsg)

	pending, err := repo.FindAll(ctx, app.FilterExperiments{Status: app.ExperimentStatusPending})
	require.NoError(t, err)
	assert.Len(t, pending, 2)

	scods, err := repo.FindAll(ctx, app.FilterExperiments{Kind: app.ExperimentKindScod})
	require.NoError(t, err)
	require.Len(t, scods, 1)
	assert.Equal(t, uint64(2), scods[0].ID)

	failedScods, err := repo.FindAll(ctx, app.FilterExperiments{
		Status: app.ExperimentStatusFailed,
		Kind:   app.ExperimentKindScod,
	})
	require.NoError(t, err)
	assert.Len(t, failedScods, 0)
}

func TestExperiment_FindPending(t *testing.T) {
	t.Parallel()
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.FindPending(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, errtype.ErrNotFound)

	first, err := repo.Add(ctx, testExperiment())
	require.NoError(t, err)
	_, err = repo.Add(ctx, testExperiment())
	require.NoError(t, err)

	// the oldest pending experiment goes first
	got, err := repo.FindPending(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)

	first.Status = app.ExperimentStatusSubmitted
	require.NoError(t, repo.UpdateStatus(ctx, first))

	got, err = repo.FindPending(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), got.ID)
}

func TestExperiment_FindActive(t *testing.T) {
	t.Parallel()
	repo := newTestRepo(t)
	ctx := context.Background()

	active, err := repo.FindActive(ctx)
	require.NoError(t, err)
	assert.Empty(t, active)

	submitted, err := repo.Add(ctx, testExperiment())
	require.NoError(t, err)
	running, err := repo.Add(ctx, testExperiment())
	require.NoError(t, err)
	_, err = repo.Add(ctx, testExperiment())
	require.NoError(t, err)

	submitted.Status = app.ExperimentStatusSubmitted
	require.NoError(t, repo.UpdateStatus(ctx, submitted))
	running.Status = app.ExperimentStatusRunning
	require.NoError(t, repo.UpdateStatus(ctx, running))

	active, err = repo.FindActive(ctx)
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, submitted.ID, active[0].ID)
	assert.Equal(t, running.ID, active[1].ID)
}

func TestExperiment_Update(t *testing.T) {
	t.Parallel()
	repo := newTestRepo(t)
	ctx := context.Background()

	e, err := repo.Add(ctx, testExperiment())
	require.NoError(t, err)

	e.Status = app.ExperimentStatusSubmitted
	e.Mode = app.DispatchModeSbatch
	e.JobID = "2723147"
	e.Host = "sc.stanford.edu"
	e.Commit = "abc123"
	e.GitBranch = "main"
	e.OutputPath = "models/20220825/sac_pick/pick"
	e.Command = "python scripts/train/train_policy.py --seed 0"
	e.UpdatedAt = e.UpdatedAt.Add(time.Minute)
	_, err = repo.Update(ctx, e)
	require.NoError(t, err)

	got, err := repo.FindByID(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, e, got)
}

func TestExperiment_UpdateStatusClearsError(t *testing.T) {
	t.Parallel()
	repo := newTestRepo(t)
	ctx := context.Background()

	e, err := repo.Add(ctx, testExperiment())
	require.NoError(t, err)

	errMsg := "the job is lost"
	e.Status = app.ExperimentStatusFailed
	e.ErrorMsg = &errMsg
	require.NoError(t, repo.UpdateStatus(ctx, e))

	got, err := repo.FindByID(ctx, e.ID)
	require.NoError(t, err)
	require.NotNil(t, got.ErrorMsg)
	assert.Equal(t, "the job is lost", *got.ErrorMsg)

	e.Status = app.ExperimentStatusPending
	e.ErrorMsg = nil
	require.NoError(t, repo.UpdateStatus(ctx, e))

	got, err = repo.FindByID(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, app.ExperimentStatusPending, got.Status)
	assert.Nil(t, got.ErrorMsg)
}
