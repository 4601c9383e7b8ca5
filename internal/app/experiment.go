package app

import (
	"context"
	"time"
)

const (
	// ExperimentKindPolicy defines the kind for the policy training runs.
	ExperimentKindPolicy = "policy"
	// ExperimentKindScod defines the kind for the SCOD training runs.
	ExperimentKindScod = "scod"

	// ExperimentStatusPending defines the status that means the experiment is awaiting dispatch.
	ExperimentStatusPending = "pending"
	// ExperimentStatusSubmitted defines the status that means the experiment is handed to a runner and waits for the resources.
	ExperimentStatusSubmitted = "submitted"
	// ExperimentStatusRunning defines the status that means the training process is running.
	ExperimentStatusRunning = "running"
	// ExperimentStatusSucceeded defines the status that means the training process finished successfully.
	ExperimentStatusSucceeded = "succeeded"
	// ExperimentStatusFailed defines the status that means the dispatch attempt or the training process failed.
	ExperimentStatusFailed = "failed"
	// ExperimentStatusCanceled defines the status that means the experiment was canceled.
	ExperimentStatusCanceled = "canceled"
)

// DefaultCheckpointFile is the checkpoint file name the trainer writes at the end of the policy training.
const DefaultCheckpointFile = "final_model.pt"

// ApiAccessKey is a data type for storing the API access key, used for DI.
type ApiAccessKey string

// Experiment is a model that represents a single training run.
type Experiment struct {
	ID                uint64    `json:"id"`
	Kind              string    `json:"kind"`
	Name              string    `json:"name"`
	Env               string    `json:"env"`
	TrainerConfig     string    `json:"trainerConfig"`
	AgentConfig       string    `json:"agentConfig"`
	EnvConfig         string    `json:"envConfig"`
	EncoderCheckpoint string    `json:"encoderCheckpoint"`
	ScodConfig        string    `json:"scodConfig"`
	PolicyCheckpoint  string    `json:"policyCheckpoint"`
	CheckpointFile    string    `json:"checkpointFile"`
	Seed              int       `json:"seed"`
	Args              []string  `json:"args"`
	AutoScod          bool      `json:"autoScod"`
	Status            string    `json:"status"`
	Mode              string    `json:"mode"`
	JobID             string    `json:"jobId"`
	Host              string    `json:"host"`
	Commit            string    `json:"commit"`
	GitBranch         string    `json:"gitBranch"`
	OutputPath        string    `json:"outputPath"`
	Command           string    `json:"command"`
	ErrorMsg          *string   `json:"errorMsg"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// FormAddExperiment represents a form of a new experiment.
type FormAddExperiment struct {
	Kind              string   `json:"kind"`
	Name              string   `json:"name"`
	Env               string   `json:"env"`
	TrainerConfig     string   `json:"trainerConfig"`
	AgentConfig       string   `json:"agentConfig"`
	EnvConfig         string   `json:"envConfig"`
	EncoderCheckpoint string   `json:"encoderCheckpoint"`
	ScodConfig        string   `json:"scodConfig"`
	PolicyCheckpoint  string   `json:"policyCheckpoint"`
	CheckpointFile    string   `json:"checkpointFile"`
	Seed              int      `json:"seed"`
	Args              []string `json:"args"`
	AutoScod          bool     `json:"autoScod"`
}

// FilterExperiments narrows down the experiments list.
type FilterExperiments struct {
	Status string
	Kind   string
}

// ExperimentSvc describes the experiments service.
type ExperimentSvc interface {
	List(ctx context.Context, f FilterExperiments) ([]Experiment, error)
	Get(ctx context.Context, id uint64) (Experiment, error)
	Add(ctx context.Context, f FormAddExperiment) (Experiment, error)
	AddManifest(ctx context.Context, m Manifest) ([]Experiment, error)
	Command(ctx context.Context, id uint64) (string, error)
	Requeue(ctx context.Context, id uint64) (Experiment, error)
	Cancel(ctx context.Context, id uint64) error
	DispatchJob(ctx context.Context) error
	SyncJob(ctx context.Context) error
}

// ExperimentRepo describes interactions with the experiments DB.
type ExperimentRepo interface {
	FindAll(ctx context.Context, f FilterExperiments) ([]Experiment, error)
	FindByID(ctx context.Context, id uint64) (Experiment, error)
	FindPending(ctx context.Context) (Experiment, error)
	FindActive(ctx context.Context) ([]Experiment, error)
	Add(ctx context.Context, e Experiment) (Experiment, error)
	Update(ctx context.Context, e Experiment) (Experiment, error)
	UpdateStatus(ctx context.Context, e Experiment) error
}
