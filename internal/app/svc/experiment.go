package svc

import (
	"context"
	"fmt"
	"github.com/beldeveloper/go-errors-context"
	"github.com/beldeveloper/train-dispatch/internal/app"
	"github.com/beldeveloper/train-dispatch/internal/app/errtype"
	"github.com/beldeveloper/train-dispatch/pkg"
	"log"
	"strings"
	"time"
)

// NewExperiment creates a new instance of the experiments service.
func NewExperiment(
	cmdSvc app.CommandSvc,
	dispatchSvc app.DispatcherSvc,
	manifestSvc app.ManifestSvc,
	gitSvc app.GitSvc,
	trackerSvc pkg.TrackerSvc,
	expRepo app.ExperimentRepo,
	hostname app.Hostname,
) app.ExperimentSvc {
	return Experiment{
		cmdSvc:      cmdSvc,
		dispatchSvc: dispatchSvc,
		manifestSvc: manifestSvc,
		gitSvc:      gitSvc,
		trackerSvc:  trackerSvc,
		expRepo:     expRepo,
		hostname:    hostname,
	}
}

// Experiment is a service that manages the experiments.
type Experiment struct {
	cmdSvc      app.CommandSvc
	dispatchSvc app.DispatcherSvc
	manifestSvc app.ManifestSvc
	gitSvc      app.GitSvc
	trackerSvc  pkg.TrackerSvc
	expRepo     app.ExperimentRepo
	hostname    app.Hostname
}

// List returns the experiments that match the filter.
func (s Experiment) List(ctx context.Context, f app.FilterExperiments) ([]app.Experiment, error) {
	res, err := s.expRepo.FindAll(ctx, f)
	return res, errors.WrapContext(err, errors.Context{Path: "svc.Experiment.List.FindAll"})
}

// Get returns the experiment by ID.
func (s Experiment) Get(ctx context.Context, id uint64) (app.Experiment, error) {
	e, err := s.expRepo.FindByID(ctx, id)
	return e, errors.WrapContext(err, errors.Context{
		Path:   "svc.Experiment.Get.FindByID",
		Params: errors.Params{"experiment": id},
	})
}

// Add new experiment.
func (s Experiment) Add(ctx context.Context, f app.FormAddExperiment) (app.Experiment, error) {
	f, err := s.validateAddForm(f)
	if err != nil {
		return app.Experiment{}, errors.WrapContext(err, errors.Context{Path: "svc.Experiment.Add.validate"})
	}
	now := time.Now()
	e := app.Experiment{
		Kind:              f.Kind,
		Name:              f.Name,
		Env:               f.Env,
		TrainerConfig:     f.TrainerConfig,
		AgentConfig:       f.AgentConfig,
		EnvConfig:         f.EnvConfig,
		EncoderCheckpoint: f.EncoderCheckpoint,
		ScodConfig:        f.ScodConfig,
		PolicyCheckpoint:  f.PolicyCheckpoint,
		CheckpointFile:    f.CheckpointFile,
		Seed:              f.Seed,
		Args:              f.Args,
		AutoScod:          f.AutoScod,
		Status:            app.ExperimentStatusPending,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	e, err = s.expRepo.Add(ctx, e)
	if err != nil {
		return e, errors.WrapContext(err, errors.Context{Path: "svc.Experiment.Add.Add"})
	}
	log.Printf("The experiment #%d is added\n", e.ID)
	return e, nil
}

// AddManifest expands the manifest and enqueues every experiment it defines.
func (s Experiment) AddManifest(ctx context.Context, m app.Manifest) ([]app.Experiment, error) {
	forms, err := s.manifestSvc.Expand(m)
	if err != nil {
		return nil, errors.WrapContext(err, errors.Context{Path: "svc.Experiment.AddManifest.Expand"})
	}
	experiments := make([]app.Experiment, 0, len(forms))
	for _, f := range forms {
		e, err := s.Add(ctx, f)
		if err != nil {
			return experiments, errors.WrapContext(err, errors.Context{
				Path:   "svc.Experiment.AddManifest.Add",
				Params: errors.Params{"name": f.Name, "kind": f.Kind, "env": f.Env},
			})
		}
		experiments = append(experiments, e)
	}
	return experiments, nil
}

// Command returns the command line of the experiment. If the experiment is not
// dispatched yet, the command is built for the current host's dispatch mode.
func (s Experiment) Command(ctx context.Context, id uint64) (string, error) {
	e, err := s.expRepo.FindByID(ctx, id)
	if err != nil {
		return "", errors.WrapContext(err, errors.Context{
			Path:   "svc.Experiment.Command.FindByID",
			Params: errors.Params{"experiment": id},
		})
	}
	if e.Command != "" {
		return e.Command, nil
	}
	c, err := s.cmdSvc.Build(e, s.dispatchSvc.Mode())
	if err != nil {
		return "", errors.WrapContext(err, errors.Context{
			Path:   "svc.Experiment.Command.Build",
			Params: errors.Params{"experiment": e.ID},
		})
	}
	return c.Line(), nil
}

// Requeue returns the failed or canceled experiment back to the queue.
func (s Experiment) Requeue(ctx context.Context, id uint64) (app.Experiment, error) {
	e, err := s.expRepo.FindByID(ctx, id)
	if err != nil {
		return e, errors.WrapContext(err, errors.Context{
			Path:   "svc.Experiment.Requeue.FindByID",
			Params: errors.Params{"experiment": id},
		})
	}
	if e.Status != app.ExperimentStatusFailed && e.Status != app.ExperimentStatusCanceled {
		return e, errors.WrapContext(
			fmt.Errorf("%w: only failed or canceled experiments can be requeued; status=%s", errtype.ErrBadInput, e.Status),
			errors.Context{Path: "svc.Experiment.Requeue", Params: errors.Params{"experiment": e.ID}},
		)
	}
	e.Status = app.ExperimentStatusPending
	e.Mode = ""
	e.JobID = ""
	e.Host = ""
	e.Commit = ""
	e.GitBranch = ""
	e.OutputPath = ""
	e.Command = ""
	e.ErrorMsg = nil
	e.UpdatedAt = time.Now()
	e, err = s.expRepo.Update(ctx, e)
	if err != nil {
		return e, errors.WrapContext(err, errors.Context{
			Path:   "svc.Experiment.Requeue.Update",
			Params: errors.Params{"experiment": e.ID},
		})
	}
	log.Printf("The experiment #%d is requeued\n", e.ID)
	return e, nil
}

// Cancel stops the experiment job and marks the experiment as canceled.
func (s Experiment) Cancel(ctx context.Context, id uint64) error {
	e, err := s.expRepo.FindByID(ctx, id)
	if err != nil {
		return errors.WrapContext(err, errors.Context{
			Path:   "svc.Experiment.Cancel.FindByID",
			Params: errors.Params{"experiment": id},
		})
	}
	switch e.Status {
	case app.ExperimentStatusPending:
	case app.ExperimentStatusSubmitted, app.ExperimentStatusRunning:
		err = s.dispatchSvc.Cancel(ctx, e.Mode, e.JobID)
		if err != nil {
			return errors.WrapContext(err, errors.Context{
				Path:   "svc.Experiment.Cancel.Cancel",
				Params: errors.Params{"experiment": e.ID, "mode": e.Mode, "job": e.JobID},
			})
		}
	default:
		return errors.WrapContext(
			fmt.Errorf("%w: the experiment is already finished; status=%s", errtype.ErrBadInput, e.Status),
			errors.Context{Path: "svc.Experiment.Cancel", Params: errors.Params{"experiment": e.ID}},
		)
	}
	e.Status = app.ExperimentStatusCanceled
	e.ErrorMsg = nil
	e.UpdatedAt = time.Now()
	err = s.expRepo.UpdateStatus(ctx, e)
	if err != nil {
		return errors.WrapContext(err, errors.Context{
			Path:   "svc.Experiment.Cancel.UpdateStatus",
			Params: errors.Params{"experiment": e.ID},
		})
	}
	log.Printf("The experiment #%d is canceled\n", e.ID)
	s.notifyFinished(ctx, e)
	return nil
}

// DispatchJob fetches a pending experiment and hands it to the matched runner.
func (s Experiment) DispatchJob(ctx context.Context) error {
	e, err := s.expRepo.FindPending(ctx)
	if err != nil {
		if !errors.Is(err, errtype.ErrNotFound) {
			return errors.WrapContext(err, errors.Context{Path: "svc.Experiment.DispatchJob.FindPending"})
		}
		return nil
	}
	c, err := s.cmdSvc.Build(e, s.dispatchSvc.Mode())
	if err != nil {
		s.fail(ctx, e, fmt.Sprintf("Can't build the command; err=%v", err))
		return errors.WrapContext(err, errors.Context{
			Path:   "svc.Experiment.DispatchJob.Build",
			Params: errors.Params{"experiment": e.ID},
		})
	}
	info, err := s.gitSvc.Info(ctx)
	if err != nil {
		log.Println(errors.WrapContext(err, errors.Context{
			Path:   "svc.Experiment.DispatchJob.gitInfo",
			Params: errors.Params{"experiment": e.ID},
		}))
	} else {
		e.Commit = info.Commit
		e.GitBranch = info.Branch
	}
	log.Printf("Dispatching the experiment #%d: %s\n", e.ID, c.Line())
	res, err := s.dispatchSvc.Dispatch(ctx, c)
	if err != nil {
		s.fail(ctx, e, err.Error())
		return errors.WrapContext(err, errors.Context{
			Path:   "svc.Experiment.DispatchJob.Dispatch",
			Params: errors.Params{"experiment": e.ID},
		})
	}
	e.Status = app.ExperimentStatusSubmitted
	e.Mode = res.Mode
	e.JobID = res.JobID
	e.Host = string(s.hostname)
	e.OutputPath = s.cmdSvc.OutputPath(e, res.Mode)
	e.Command = c.Line()
	e.UpdatedAt = time.Now()
	e, err = s.expRepo.Update(ctx, e)
	if err != nil {
		return errors.WrapContext(err, errors.Context{
			Path:   "svc.Experiment.DispatchJob.Update",
			Params: errors.Params{"experiment": e.ID},
		})
	}
	log.Printf("The experiment #%d is submitted; mode=%s; job=%s\n", e.ID, e.Mode, e.JobID)
	s.notifyStarted(ctx, e)
	return nil
}

// SyncJob updates the statuses of the submitted and running experiments.
func (s Experiment) SyncJob(ctx context.Context) error {
	experiments, err := s.expRepo.FindActive(ctx)
	if err != nil {
		return errors.WrapContext(err, errors.Context{Path: "svc.Experiment.SyncJob.FindActive"})
	}
	for _, e := range experiments {
		err = s.syncOne(ctx, e)
		if err != nil {
			log.Println(errors.WrapContext(err, errors.Context{
				Path:   "svc.Experiment.SyncJob.syncOne",
				Params: errors.Params{"experiment": e.ID},
			}))
		}
	}
	return nil
}

func (s Experiment) syncOne(ctx context.Context, e app.Experiment) error {
	js, err := s.dispatchSvc.Status(ctx, e.Mode, e.JobID)
	if err != nil {
		return err
	}
	status := e.Status
	var errorMsg *string
	switch js.State {
	case app.JobStateQueued:
		status = app.ExperimentStatusSubmitted
	case app.JobStateRunning:
		status = app.ExperimentStatusRunning
	case app.JobStateSucceeded:
		status = app.ExperimentStatusSucceeded
	case app.JobStateCanceled:
		status = app.ExperimentStatusCanceled
	case app.JobStateFailed:
		status = app.ExperimentStatusFailed
		errMsg := js.Detail
		if errMsg == "" {
			errMsg = "the job failed"
		}
		errorMsg = &errMsg
	case app.JobStateLost:
		status = app.ExperimentStatusFailed
		errMsg := "the job is lost"
		errorMsg = &errMsg
	}
	if status == e.Status {
		return nil
	}
	e.Status = status
	e.ErrorMsg = errorMsg
	e.UpdatedAt = time.Now()
	if !s.updateStatus(ctx, e) {
		return nil
	}
	log.Printf("The experiment #%d is %s\n", e.ID, e.Status)
	switch e.Status {
	case app.ExperimentStatusSucceeded:
		s.notifyFinished(ctx, e)
		s.chainScod(ctx, e)
	case app.ExperimentStatusFailed, app.ExperimentStatusCanceled:
		s.notifyFinished(ctx, e)
	}
	return nil
}

func (s Experiment) chainScod(ctx context.Context, e app.Experiment) {
	if !e.AutoScod || e.Kind != app.ExperimentKindPolicy {
		return
	}
	checkpoint := e.CheckpointFile
	if checkpoint == "" {
		checkpoint = app.DefaultCheckpointFile
	}
	scod, err := s.Add(ctx, app.FormAddExperiment{
		Kind:             app.ExperimentKindScod,
		Name:             e.Name,
		ScodConfig:       e.ScodConfig,
		PolicyCheckpoint: e.OutputPath + "/" + checkpoint,
		CheckpointFile:   e.CheckpointFile,
		Seed:             e.Seed,
	})
	if err != nil {
		log.Println(errors.WrapContext(err, errors.Context{
			Path:   "svc.Experiment.chainScod",
			Params: errors.Params{"experiment": e.ID},
		}))
		return
	}
	log.Printf("The experiment #%d is enqueued for the SCOD training after #%d\n", scod.ID, e.ID)
}

func (s Experiment) fail(ctx context.Context, e app.Experiment, errorMsg string) {
	e.Status = app.ExperimentStatusFailed
	e.ErrorMsg = &errorMsg
	e.UpdatedAt = time.Now()
	if !s.updateStatus(ctx, e) {
		return
	}
	s.notifyFinished(ctx, e)
}

func (s Experiment) updateStatus(ctx context.Context, e app.Experiment) bool {
	err := s.expRepo.UpdateStatus(ctx, e)
	if err != nil {
		log.Println(errors.WrapContext(err, errors.Context{
			Path:   "svc.Experiment.updateStatus",
			Params: errors.Params{"experiment": e.ID, "status": e.Status},
		}))
		return false
	}
	return true
}

func (s Experiment) notifyStarted(ctx context.Context, e app.Experiment) {
	err := s.trackerSvc.ExperimentStarted(ctx, pkg.TrackerStartedReq{
		Experiment: s.trackerExperiment(e),
		Command:    e.Command,
	})
	if err != nil {
		log.Println(errors.WrapContext(err, errors.Context{
			Path:   "svc.Experiment.notifyStarted",
			Params: errors.Params{"experiment": e.ID},
		}))
	}
}

func (s Experiment) notifyFinished(ctx context.Context, e app.Experiment) {
	err := s.trackerSvc.ExperimentFinished(ctx, pkg.TrackerFinishedReq{
		Experiment: s.trackerExperiment(e),
		Status:     e.Status,
		ErrorMsg:   e.ErrorMsg,
	})
	if err != nil {
		log.Println(errors.WrapContext(err, errors.Context{
			Path:   "svc.Experiment.notifyFinished",
			Params: errors.Params{"experiment": e.ID},
		}))
	}
}

func (s Experiment) trackerExperiment(e app.Experiment) pkg.TrackerExperiment {
	return pkg.TrackerExperiment{
		ID:         e.ID,
		Kind:       e.Kind,
		Name:       e.Name,
		Env:        e.Env,
		Mode:       e.Mode,
		JobID:      e.JobID,
		Host:       e.Host,
		OutputPath: e.OutputPath,
		Seed:       e.Seed,
	}
}

func (s Experiment) validateAddForm(f app.FormAddExperiment) (app.FormAddExperiment, error) {
	f.Name = strings.TrimSpace(f.Name)
	f.Env = strings.TrimSpace(f.Env)
	if f.Name == "" {
		return f, fmt.Errorf("%w: experiment name is empty", errtype.ErrBadInput)
	}
	if f.Seed < 0 {
		return f, fmt.Errorf("%w: experiment seed is negative", errtype.ErrBadInput)
	}
	switch f.Kind {
	case app.ExperimentKindPolicy:
		if f.TrainerConfig == "" {
			return f, fmt.Errorf("%w: trainer config is empty", errtype.ErrBadInput)
		}
		if f.AgentConfig == "" {
			return f, fmt.Errorf("%w: agent config is empty", errtype.ErrBadInput)
		}
		if f.Env == "" {
			return f, fmt.Errorf("%w: experiment env is empty", errtype.ErrBadInput)
		}
		if f.EnvConfig == "" {
			return f, fmt.Errorf("%w: env config is empty", errtype.ErrBadInput)
		}
		if f.AutoScod && f.ScodConfig == "" {
			return f, fmt.Errorf("%w: auto SCOD requires the SCOD config", errtype.ErrBadInput)
		}
	case app.ExperimentKindScod:
		if f.ScodConfig == "" {
			return f, fmt.Errorf("%w: SCOD config is empty", errtype.ErrBadInput)
		}
		if f.PolicyCheckpoint == "" {
			return f, fmt.Errorf("%w: policy checkpoint is empty", errtype.ErrBadInput)
		}
	default:
		return f, fmt.Errorf(
			"%w: experiment kind is invalid; allowed values: %s, %s",
			errtype.ErrBadInput, app.ExperimentKindPolicy, app.ExperimentKindScod,
		)
	}
	if f.CheckpointFile == "" {
		f.CheckpointFile = app.DefaultCheckpointFile
	}
	return f, nil
}
