package app

import "strings"

// PythonBin is a data type for storing the python interpreter name, used for DI.
type PythonBin string

// DebugSteps contains the reduced step counts that are applied to the local debug runs.
type DebugSteps struct {
	Pretrain     int
	Train        int
	EvalEpisodes int
}

// TrainingCmd is a model of a training program invocation.
type TrainingCmd struct {
	Program string
	Script  string
	Args    []string
	Dir     string
}

// Line renders the full command line the way it is passed to the sbatch wrapper scripts.
func (c TrainingCmd) Line() string {
	return strings.Join(append([]string{c.Program, c.Script}, c.Args...), " ")
}

// CommandSvc describes the service that assembles the training commands.
type CommandSvc interface {
	Build(e Experiment, mode string) (TrainingCmd, error)
	OutputPath(e Experiment, mode string) string
}
