package app

import "context"

const (
	// DispatchModeSbatch defines the mode that submits the command to Slurm via a wrapper script.
	DispatchModeSbatch = "sbatch"
	// DispatchModeLocal defines the mode that executes the command directly on the current host.
	DispatchModeLocal = "local"
)

const (
	// JobStateQueued means the job waits for the resources.
	JobStateQueued = "queued"
	// JobStateRunning means the job is running.
	JobStateRunning = "running"
	// JobStateSucceeded means the job finished successfully.
	JobStateSucceeded = "succeeded"
	// JobStateFailed means the job finished with an error.
	JobStateFailed = "failed"
	// JobStateCanceled means the job was canceled before it finished.
	JobStateCanceled = "canceled"
	// JobStateLost means the runner doesn't know anything about the job.
	JobStateLost = "lost"
)

// Hostname is a data type for storing the current host name, used for DI.
type Hostname string

// LogsDir is a data type for storing the local jobs' logs directory, used for DI.
type LogsDir string

// DispatchRule maps a hostname pattern to the dispatch mode.
type DispatchRule struct {
	HostPattern string `json:"hostPattern" yaml:"host_pattern"`
	Mode        string `json:"mode" yaml:"mode"`
	Script      string `json:"script" yaml:"script"`
}

// DispatchResult contains the outcome of a dispatch attempt.
type DispatchResult struct {
	Mode  string
	JobID string
}

// JobStatus is a model that represents the state of a dispatched job.
type JobStatus struct {
	State  string
	Detail string
}

// DispatcherSvc describes the service that routes the training commands to the runners.
type DispatcherSvc interface {
	Mode() string
	Dispatch(ctx context.Context, c TrainingCmd) (DispatchResult, error)
	Status(ctx context.Context, mode, jobID string) (JobStatus, error)
	Cancel(ctx context.Context, mode, jobID string) error
}

// SlurmSvc describes the interactions with the Slurm scheduler.
type SlurmSvc interface {
	Submit(ctx context.Context, script string, c TrainingCmd) (string, error)
	Status(ctx context.Context, jobID string) (JobStatus, error)
	Cancel(ctx context.Context, jobID string) error
}

// LocalRunnerSvc describes the runner that executes the training processes on the current host.
type LocalRunnerSvc interface {
	Submit(ctx context.Context, c TrainingCmd) (string, error)
	Status(ctx context.Context, jobID string) (JobStatus, error)
	Cancel(ctx context.Context, jobID string) error
}
