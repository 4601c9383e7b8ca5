package svc

import (
	"context"
	"fmt"
	"testing"

	"github.com/beldeveloper/train-dispatch/internal/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeOS replaces the real command execution in the tests and records every command.
type fakeOS struct {
	exec func(ctx context.Context, cmd app.Cmd) (string, error)
	cmds []app.Cmd
}

func (f *fakeOS) Exec(ctx context.Context, cmd app.Cmd) (string, error) {
	f.cmds = append(f.cmds, cmd)
	if f.exec == nil {
		return "", nil
	}
	return f.exec(ctx, cmd)
}

func TestSlurm_Submit(t *testing.T) {
	t.Parallel()
	osSvc := &fakeOS{
		exec: func(ctx context.Context, cmd app.Cmd) (string, error) {
			return "Submitted batch job 2723147\n", nil
		},
	}
	s := NewSlurm(osSvc)
	c := app.TrainingCmd{
		Program: "python",
		Script:  PolicyScript,
		Args:    []string{"--seed", "0"},
		Dir:     "/opt/stap",
	}
	jobID, err := s.Submit(context.Background(), "scripts/train/train_juno.sh", c)
	require.NoError(t, err)
	assert.Equal(t, "2723147", jobID)
	require.Len(t, osSvc.cmds, 1)
	assert.Equal(t, "sbatch", osSvc.cmds[0].Name)
	assert.Equal(t, []string{"scripts/train/train_juno.sh", c.Line()}, osSvc.cmds[0].Args)
	assert.Equal(t, "/opt/stap", osSvc.cmds[0].Dir)
}

func TestSlurm_SubmitBadOutput(t *testing.T) {
	t.Parallel()
	osSvc := &fakeOS{
		exec: func(ctx context.Context, cmd app.Cmd) (string, error) {
			return "sbatch: error: invalid partition\n", nil
		},
	}
	s := NewSlurm(osSvc)
	_, err := s.Submit(context.Background(), "scripts/train/train_juno.sh", app.TrainingCmd{})
	require.Error(t, err)
}

func TestSlurm_StatusFromQueue(t *testing.T) {
	t.Parallel()
	cases := []struct {
		slurmState string
		state      string
	}{
		{slurmState: "PENDING", state: app.JobStateQueued},
		{slurmState: "CONFIGURING", state: app.JobStateQueued},
		{slurmState: "RUNNING", state: app.JobStateRunning},
		{slurmState: "COMPLETING", state: app.JobStateRunning},
		{slurmState: "COMPLETED", state: app.JobStateSucceeded},
		{slurmState: "CANCELLED", state: app.JobStateCanceled},
		{slurmState: "FAILED", state: app.JobStateFailed},
		{slurmState: "TIMEOUT", state: app.JobStateFailed},
		{slurmState: "NODE_FAIL", state: app.JobStateFailed},
	}
	for _, c := range cases {
		c := c
		t.Run(c.slurmState, func(t *testing.T) {
			t.Parallel()
			osSvc := &fakeOS{
				exec: func(ctx context.Context, cmd app.Cmd) (string, error) {
					require.Equal(t, "squeue", cmd.Name)
					return c.slurmState + "\n", nil
				},
			}
			s := NewSlurm(osSvc)
			res, err := s.Status(context.Background(), "123")
			require.NoError(t, err)
			assert.Equal(t, c.state, res.State)
			assert.Equal(t, c.slurmState, res.Detail)
		})
	}
}

func TestSlurm_StatusFromAccounting(t *testing.T) {
	t.Parallel()
	// squeue responds with nothing once the job leaves the queue
	osSvc := &fakeOS{
		exec: func(ctx context.Context, cmd app.Cmd) (string, error) {
			switch cmd.Name {
			case "squeue":
				return "", nil
			case "sacct":
				return " COMPLETED \n", nil
			}
			return "", fmt.Errorf("unexpected command: %s", cmd.Name)
		},
	}
	s := NewSlurm(osSvc)
	res, err := s.Status(context.Background(), "123")
	require.NoError(t, err)
	assert.Equal(t, app.JobStateSucceeded, res.State)
	require.Len(t, osSvc.cmds, 2)
	assert.Equal(t, []string{"-n", "-X", "-j", "123", "-o", "State"}, osSvc.cmds[1].Args)
}

func TestSlurm_StatusQueueError(t *testing.T) {
	t.Parallel()
	// squeue fails for the unknown job IDs, the accounting database still knows them
	osSvc := &fakeOS{
		exec: func(ctx context.Context, cmd app.Cmd) (string, error) {
			switch cmd.Name {
			case "squeue":
				return "", fmt.Errorf("slurm_load_jobs error: Invalid job id specified")
			case "sacct":
				return "CANCELLED by 1000\n", nil
			}
			return "", fmt.Errorf("unexpected command: %s", cmd.Name)
		},
	}
	s := NewSlurm(osSvc)
	res, err := s.Status(context.Background(), "456")
	require.NoError(t, err)
	assert.Equal(t, app.JobStateCanceled, res.State)
	assert.Equal(t, "CANCELLED", res.Detail)
}

func TestSlurm_StatusLost(t *testing.T) {
	t.Parallel()
	osSvc := &fakeOS{
		exec: func(ctx context.Context, cmd app.Cmd) (string, error) {
			return "", nil
		},
	}
	s := NewSlurm(osSvc)
	res, err := s.Status(context.Background(), "789")
	require.NoError(t, err)
	assert.Equal(t, app.JobStateLost, res.State)
}

func TestSlurm_Cancel(t *testing.T) {
	t.Parallel()
	osSvc := &fakeOS{}
	s := NewSlurm(osSvc)
	err := s.Cancel(context.Background(), "123")
	require.NoError(t, err)
	require.Len(t, osSvc.cmds, 1)
	assert.Equal(t, "scancel", osSvc.cmds[0].Name)
	assert.Equal(t, []string{"123"}, osSvc.cmds[0].Args)
}
