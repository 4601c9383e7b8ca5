package pkg

import "context"

// TrackerExperiment contains experiment data for passing into the tracker handler.
type TrackerExperiment struct {
	ID         uint64
	Kind       string
	Name       string
	Env        string
	Mode       string
	JobID      string
	Host       string
	OutputPath string
	Seed       int
}

// TrackerStartedReq contains request data for the experiment started notification.
type TrackerStartedReq struct {
	Experiment TrackerExperiment
	Command    string
}

// TrackerFinishedReq contains request data for the experiment finished notification.
type TrackerFinishedReq struct {
	Experiment TrackerExperiment
	Status     string
	ErrorMsg   *string
}

// TrackerSvc describes the interactions with the experiment tracker handler.
type TrackerSvc interface {
	ExperimentStarted(ctx context.Context, req TrackerStartedReq) error
	ExperimentFinished(ctx context.Context, req TrackerFinishedReq) error
}
