package svc

import (
	"context"
	"fmt"
	"github.com/beldeveloper/go-errors-context"
	"github.com/beldeveloper/train-dispatch/internal/app"
	"github.com/beldeveloper/train-dispatch/internal/app/errtype"
	"github.com/google/uuid"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// NewLocal creates a new instance of the Local runner service.
func NewLocal(osSvc app.OSSvc, logsDir app.LogsDir) app.LocalRunnerSvc {
	return Local{
		osSvc:   osSvc,
		logsDir: string(logsDir),
		mux:     &sync.RWMutex{},
		runs:    make(map[string]*localRun),
	}
}

// Local is a service that runs the training jobs directly on the host.
type Local struct {
	osSvc   app.OSSvc
	logsDir string
	mux     *sync.RWMutex
	runs    map[string]*localRun
}

type localRun struct {
	cancel context.CancelFunc
	state  string
	errMsg string
}

// Submit starts the training process in the background and streams its output to a log file.
func (s Local) Submit(ctx context.Context, c app.TrainingCmd) (string, error) {
	jobID := "local-" + uuid.New().String()[:8]
	logFile, err := os.Create(filepath.Join(s.logsDir, jobID+".log"))
	if err != nil {
		return "", errors.WrapContext(err, errors.Context{
			Path:   "svc.Local.Submit.createLog",
			Params: errors.Params{"job": jobID},
		})
	}
	runCtx, cancel := context.WithCancel(context.Background())
	s.mux.Lock()
	s.runs[jobID] = &localRun{cancel: cancel, state: app.JobStateRunning}
	s.mux.Unlock()
	go s.wait(runCtx, jobID, c, logFile)
	log.Printf("The local job %s is started\n", jobID)
	return jobID, nil
}

// Status reports the state of the local job. The jobs started before the service
// restart are not recoverable and are reported as lost.
func (s Local) Status(ctx context.Context, jobID string) (app.JobStatus, error) {
	s.mux.RLock()
	defer s.mux.RUnlock()
	run, ok := s.runs[jobID]
	if !ok {
		return app.JobStatus{State: app.JobStateLost}, nil
	}
	return app.JobStatus{State: run.state, Detail: run.errMsg}, nil
}

// Cancel interrupts the local job.
func (s Local) Cancel(ctx context.Context, jobID string) error {
	s.mux.RLock()
	run, ok := s.runs[jobID]
	s.mux.RUnlock()
	if !ok {
		return errors.WrapContext(fmt.Errorf("%w: local job is unknown", errtype.ErrNotFound), errors.Context{
			Path:   "svc.Local.Cancel",
			Params: errors.Params{"job": jobID},
		})
	}
	run.cancel()
	return nil
}

func (s Local) wait(ctx context.Context, jobID string, c app.TrainingCmd, logFile *os.File) {
	_, err := s.osSvc.Exec(ctx, app.Cmd{
		Name:   c.Program,
		Args:   append([]string{c.Script}, c.Args...),
		Dir:    c.Dir,
		Stdout: logFile,
		Stderr: logFile,
		Log:    true,
	})
	closeErr := logFile.Close()
	if closeErr != nil {
		log.Printf("Unable to close the log file of the local job %s: %v\n", jobID, closeErr)
	}
	s.mux.Lock()
	defer s.mux.Unlock()
	run := s.runs[jobID]
	switch {
	case err != nil && ctx.Err() != nil:
		run.state = app.JobStateCanceled
		run.errMsg = errtype.ErrJobCanceled.Error()
	case err != nil:
		run.state = app.JobStateFailed
		run.errMsg = err.Error()
	default:
		run.state = app.JobStateSucceeded
	}
	log.Printf("The local job %s is finished; state=%s\n", jobID, run.state)
}
