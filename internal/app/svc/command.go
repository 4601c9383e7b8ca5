package svc

import (
	"fmt"
	"github.com/beldeveloper/go-errors-context"
	"github.com/beldeveloper/train-dispatch/internal/app"
	"github.com/beldeveloper/train-dispatch/internal/app/errtype"
	"strconv"
)

const (
	// PolicyScript is the trainer entrypoint for the policy experiments.
	PolicyScript = "scripts/train/train_policy.py"
	// ScodScript is the trainer entrypoint for the SCOD experiments.
	ScodScript = "scripts/train/train_scod.py"

	// ClusterOutputDir is the base of the output path for the sbatch runs.
	ClusterOutputDir = "models"
	// LocalOutputDir is the base of the output path for the local debug runs.
	LocalOutputDir = "plots"
)

// NewCommand creates a new instance of the command builder service.
func NewCommand(workDir app.WorkDir, python app.PythonBin, debug app.DebugSteps) app.CommandSvc {
	return Command{
		workDir: string(workDir),
		python:  string(python),
		debug:   debug,
	}
}

// Command is a service that assembles the training program invocations.
type Command struct {
	workDir string
	python  string
	debug   app.DebugSteps
}

// Build assembles the full command for the experiment with respect to the dispatch mode.
func (s Command) Build(e app.Experiment, mode string) (app.TrainingCmd, error) {
	switch e.Kind {
	case app.ExperimentKindPolicy:
		return s.buildPolicy(e, mode), nil
	case app.ExperimentKindScod:
		return s.buildScod(e), nil
	}
	err := fmt.Errorf("%w: unknown experiment kind: %s", errtype.ErrBadInput, e.Kind)
	return app.TrainingCmd{}, errors.WrapContext(err, errors.Context{
		Path:   "svc.Command.Build",
		Params: errors.Params{"experiment": e.ID},
	})
}

func (s Command) buildPolicy(e app.Experiment, mode string) app.TrainingCmd {
	args := []string{
		"--trainer-config", e.TrainerConfig,
		"--agent-config", e.AgentConfig,
		"--env-config", e.EnvConfig,
	}
	if e.EncoderCheckpoint != "" {
		args = append(args, "--encoder-checkpoint", e.EncoderCheckpoint)
	}
	args = append(args, "--seed", strconv.Itoa(e.Seed))
	args = append(args, e.Args...)
	if mode == app.DispatchModeSbatch {
		args = append(args, "--path", ClusterOutputDir+"/"+e.Name, "--overwrite")
	} else {
		args = append(args,
			"--path", LocalOutputDir+"/"+e.Name,
			"--num-pretrain-steps", strconv.Itoa(s.debug.Pretrain),
			"--num-train-steps", strconv.Itoa(s.debug.Train),
			"--num-eval-episodes", strconv.Itoa(s.debug.EvalEpisodes),
		)
	}
	return app.TrainingCmd{
		Program: s.python,
		Script:  PolicyScript,
		Args:    args,
		Dir:     s.workDir,
	}
}

func (s Command) buildScod(e app.Experiment) app.TrainingCmd {
	args := []string{
		"--scod-config", e.ScodConfig,
		"--policy-checkpoint", e.PolicyCheckpoint,
		"--seed", strconv.Itoa(e.Seed),
	}
	args = append(args, e.Args...)
	return app.TrainingCmd{
		Program: s.python,
		Script:  ScodScript,
		Args:    args,
		Dir:     s.workDir,
	}
}

// OutputPath returns the directory where the trainer is expected to store the artifacts.
// The policy trainer appends the env name to the configured base path on its own;
// the SCOD trainer stores the artifacts next to the policy checkpoint.
func (s Command) OutputPath(e app.Experiment, mode string) string {
	if e.Kind != app.ExperimentKindPolicy {
		return ""
	}
	base := LocalOutputDir
	if mode == app.DispatchModeSbatch {
		base = ClusterOutputDir
	}
	return base + "/" + e.Name + "/" + e.Env
}
