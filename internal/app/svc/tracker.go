package svc

import (
	"context"
	"github.com/beldeveloper/go-errors-context"
	"github.com/beldeveloper/train-dispatch/pkg"
	"github.com/beldeveloper/train-dispatch/rpc/tracker"
)

// NewTracker creates a new instance of the tracker client.
func NewTracker(client tracker.TrackerClient) pkg.TrackerSvc {
	return Tracker{client: client}
}

// Tracker implements a tracker client.
type Tracker struct {
	client tracker.TrackerClient
}

// ExperimentStarted notifies the tracker handler that the experiment job is submitted.
func (s Tracker) ExperimentStarted(ctx context.Context, req pkg.TrackerStartedReq) error {
	_, err := s.client.ExperimentStarted(ctx, &tracker.ExperimentStartedReq{
		Experiment: &tracker.Experiment{
			Id:         req.Experiment.ID,
			Kind:       req.Experiment.Kind,
			Name:       req.Experiment.Name,
			Env:        req.Experiment.Env,
			Mode:       req.Experiment.Mode,
			JobId:      req.Experiment.JobID,
			Host:       req.Experiment.Host,
			OutputPath: req.Experiment.OutputPath,
			Seed:       int64(req.Experiment.Seed),
		},
		Command: req.Command,
	})
	return errors.WrapContext(err, errors.Context{Path: "svc.Tracker.ExperimentStarted"})
}

// ExperimentFinished notifies the tracker handler that the experiment job reached a terminal status.
func (s Tracker) ExperimentFinished(ctx context.Context, req pkg.TrackerFinishedReq) error {
	rpcReq := &tracker.ExperimentFinishedReq{
		Experiment: &tracker.Experiment{
			Id:         req.Experiment.ID,
			Kind:       req.Experiment.Kind,
			Name:       req.Experiment.Name,
			Env:        req.Experiment.Env,
			Mode:       req.Experiment.Mode,
			JobId:      req.Experiment.JobID,
			Host:       req.Experiment.Host,
			OutputPath: req.Experiment.OutputPath,
			Seed:       int64(req.Experiment.Seed),
		},
		Status: req.Status,
	}
	if req.ErrorMsg != nil {
		rpcReq.ErrorMsg = *req.ErrorMsg
	}
	_, err := s.client.ExperimentFinished(ctx, rpcReq)
	return errors.WrapContext(err, errors.Context{Path: "svc.Tracker.ExperimentFinished"})
}

// NewNopTracker creates a tracker client that does nothing. It is used when
// the tracker handler address is not configured.
func NewNopTracker() pkg.TrackerSvc {
	return NopTracker{}
}

// NopTracker is a tracker client that ignores all notifications.
type NopTracker struct {
}

// ExperimentStarted does nothing.
func (s NopTracker) ExperimentStarted(ctx context.Context, req pkg.TrackerStartedReq) error {
	return nil
}

// ExperimentFinished does nothing.
func (s NopTracker) ExperimentFinished(ctx context.Context, req pkg.TrackerFinishedReq) error {
	return nil
}
