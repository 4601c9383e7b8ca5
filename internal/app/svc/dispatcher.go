package svc

import (
	"context"
	"fmt"
	"github.com/beldeveloper/go-errors-context"
	"github.com/beldeveloper/train-dispatch/internal/app"
	"github.com/beldeveloper/train-dispatch/internal/app/errtype"
	"log"
	"regexp"
)

// NewDispatcher creates a new instance of the dispatcher service.
// The dispatch mode for the current host is resolved once at the start:
// the first rule whose pattern matches the hostname wins, and the hosts
// without a matching rule run the commands locally.
func NewDispatcher(
	hostname app.Hostname,
	rules []app.DispatchRule,
	slurmSvc app.SlurmSvc,
	localSvc app.LocalRunnerSvc,
) (app.DispatcherSvc, error) {
	d := Dispatcher{
		slurmSvc: slurmSvc,
		localSvc: localSvc,
		rule:     app.DispatchRule{Mode: app.DispatchModeLocal},
	}
	for _, r := range rules {
		rx, err := regexp.Compile("^(?:" + r.HostPattern + ")$")
		if err != nil {
			return d, errors.WrapContext(err, errors.Context{
				Path:   "svc.NewDispatcher.Compile",
				Params: errors.Params{"pattern": r.HostPattern},
			})
		}
		if rx.MatchString(string(hostname)) {
			d.rule = r
			break
		}
	}
	log.Printf("The dispatch mode for the host %q is %s\n", string(hostname), d.rule.Mode)
	return d, nil
}

// Dispatcher is a service that routes the training commands to the runners.
type Dispatcher struct {
	slurmSvc app.SlurmSvc
	localSvc app.LocalRunnerSvc
	rule     app.DispatchRule
}

// Mode returns the dispatch mode resolved for the current host.
func (s Dispatcher) Mode() string {
	return s.rule.Mode
}

// Dispatch submits the command using the runner resolved for the current host.
func (s Dispatcher) Dispatch(ctx context.Context, c app.TrainingCmd) (app.DispatchResult, error) {
	res := app.DispatchResult{Mode: s.rule.Mode}
	var err error
	switch s.rule.Mode {
	case app.DispatchModeSbatch:
		res.JobID, err = s.slurmSvc.Submit(ctx, s.rule.Script, c)
	case app.DispatchModeLocal:
		res.JobID, err = s.localSvc.Submit(ctx, c)
	default:
		err = fmt.Errorf("%w: unknown dispatch mode: %s", errtype.ErrBadInput, s.rule.Mode)
	}
	return res, errors.WrapContext(err, errors.Context{
		Path:   "svc.Dispatcher.Dispatch",
		Params: errors.Params{"mode": s.rule.Mode},
	})
}

// Status returns the state of the job that was previously dispatched in the specific mode.
func (s Dispatcher) Status(ctx context.Context, mode, jobID string) (app.JobStatus, error) {
	var res app.JobStatus
	var err error
	switch mode {
	case app.DispatchModeSbatch:
		res, err = s.slurmSvc.Status(ctx, jobID)
	case app.DispatchModeLocal:
		res, err = s.localSvc.Status(ctx, jobID)
	default:
		err = fmt.Errorf("%w: unknown dispatch mode: %s", errtype.ErrBadInput, mode)
	}
	return res, errors.WrapContext(err, errors.Context{
		Path:   "svc.Dispatcher.Status",
		Params: errors.Params{"mode": mode, "job": jobID},
	})
}

// Cancel stops the job that was previously dispatched in the specific mode.
func (s Dispatcher) Cancel(ctx context.Context, mode, jobID string) error {
	var err error
	switch mode {
	case app.DispatchModeSbatch:
		err = s.slurmSvc.Cancel(ctx, jobID)
	case app.DispatchModeLocal:
		err = s.localSvc.Cancel(ctx, jobID)
	default:
		err = fmt.Errorf("%w: unknown dispatch mode: %s", errtype.ErrBadInput, mode)
	}
	return errors.WrapContext(err, errors.Context{
		Path:   "svc.Dispatcher.Cancel",
		Params: errors.Params{"mode": mode, "job": jobID},
	})
}
