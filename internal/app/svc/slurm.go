package svc

import (
	"context"
	"fmt"
	"github.com/beldeveloper/go-errors-context"
	"github.com/beldeveloper/train-dispatch/internal/app"
	"strings"
)

// NewSlurm creates a new instance of the Slurm service.
func NewSlurm(osSvc app.OSSvc) app.SlurmSvc {
	return Slurm{osSvc: osSvc}
}

// Slurm is a service that submits and tracks the jobs via the Slurm scheduler.
type Slurm struct {
	osSvc app.OSSvc
}

// Submit passes the full command line to sbatch as the single argument of the wrapper script.
func (s Slurm) Submit(ctx context.Context, script string, c app.TrainingCmd) (string, error) {
	out, err := s.osSvc.Exec(ctx, app.Cmd{
		Name: "sbatch",
		Args: []string{script, c.Line()},
		Dir:  c.Dir,
		Log:  true,
	})
	if err != nil {
		return "", errors.WrapContext(err, errors.Context{
			Path:   "svc.Slurm.Submit.Exec",
			Params: errors.Params{"script": script},
		})
	}
	jobID, err := parseSbatchOutput(out)
	return jobID, errors.WrapContext(err, errors.Context{
		Path:   "svc.Slurm.Submit.parse",
		Params: errors.Params{"script": script},
	})
}

// Status asks squeue about the job state and falls back to the accounting
// database once the job leaves the queue.
func (s Slurm) Status(ctx context.Context, jobID string) (app.JobStatus, error) {
	state, err := s.queueState(ctx, jobID)
	if err != nil {
		// squeue rejects the IDs of the jobs that already left the queue
		state, err = s.accountingState(ctx, jobID)
		if err != nil {
			return app.JobStatus{}, errors.WrapContext(err, errors.Context{
				Path:   "svc.Slurm.Status",
				Params: errors.Params{"job": jobID},
			})
		}
	}
	if state == "" {
		state, err = s.accountingState(ctx, jobID)
		if err != nil {
			return app.JobStatus{}, errors.WrapContext(err, errors.Context{
				Path:   "svc.Slurm.Status.accounting",
				Params: errors.Params{"job": jobID},
			})
		}
	}
	return app.JobStatus{State: mapSlurmState(state), Detail: state}, nil
}

// Cancel stops the Slurm job.
func (s Slurm) Cancel(ctx context.Context, jobID string) error {
	_, err := s.osSvc.Exec(ctx, app.Cmd{
		Name: "scancel",
		Args: []string{jobID},
		Log:  true,
	})
	return errors.WrapContext(err, errors.Context{
		Path:   "svc.Slurm.Cancel",
		Params: errors.Params{"job": jobID},
	})
}

func (s Slurm) queueState(ctx context.Context, jobID string) (string, error) {
	out, err := s.osSvc.Exec(ctx, app.Cmd{
		Name: "squeue",
		Args: []string{"-h", "-j", jobID, "-o", "%T"},
	})
	if err != nil {
		return "", err
	}
	out = strings.TrimSpace(out)
	if out == "" {
		return "", nil
	}
	return strings.TrimSpace(strings.Split(out, "\n")[0]), nil
}

func (s Slurm) accountingState(ctx context.Context, jobID string) (string, error) {
	out, err := s.osSvc.Exec(ctx, app.Cmd{
		Name: "sacct",
		Args: []string{"-n", "-X", "-j", jobID, "-o", "State"},
	})
	if err != nil {
		return "", err
	}
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		state := line
		if idx := strings.Index(state, " "); idx >= 0 {
			state = state[:idx]
		}
		return strings.Trim(state, "+"), nil
	}
	return "", nil
}

// parseSbatchOutput extracts the job ID from the sbatch response,
// e.g. "Submitted batch job 2723147".
func parseSbatchOutput(out string) (string, error) {
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "Submitted batch job") {
			continue
		}
		fields := strings.Fields(line)
		return fields[len(fields)-1], nil
	}
	return "", fmt.Errorf("unable to parse sbatch output: %q", strings.TrimSpace(out))
}

// mapSlurmState converts the Slurm job state to the generic job state.
func mapSlurmState(state string) string {
	state = strings.ToUpper(strings.TrimSuffix(state, "+"))
	switch state {
	case "":
		return app.JobStateLost
	case "PENDING", "CONFIGURING", "SUSPENDED", "REQUEUED", "REQUEUE_HOLD", "RESV_DEL_HOLD", "SPECIAL_EXIT":
		return app.JobStateQueued
	case "RUNNING", "COMPLETING":
		return app.JobStateRunning
	case "COMPLETED":
		return app.JobStateSucceeded
	case "CANCELLED":
		return app.JobStateCanceled
	}
	return app.JobStateFailed
}
