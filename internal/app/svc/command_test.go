package svc

import (
	"testing"

	"github.com/beldeveloper/train-dispatch/internal/app"
	"github.com/beldeveloper/train-dispatch/internal/app/errtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCommand() app.CommandSvc {
	return NewCommand("/opt/stap", "python", app.DebugSteps{Pretrain: 10, Train: 10, EvalEpisodes: 10})
}

func TestCommand_PolicySbatch(t *testing.T) {
	t.Parallel()
	s := newTestCommand()
	e := app.Experiment{
		ID:            1,
		Kind:          app.ExperimentKindPolicy,
		Name:          "20220825/sac_pick",
		Env:           "pick",
		TrainerConfig: "configs/pybullet/trainers/agent.yaml",
		AgentConfig:   "configs/pybullet/agents/sac.yaml",
		EnvConfig:     "configs/pybullet/envs/pick.yaml",
		Seed:          0,
	}
	c, err := s.Build(e, app.DispatchModeSbatch)
	require.NoError(t, err)
	assert.Equal(t, "python", c.Program)
	assert.Equal(t, PolicyScript, c.Script)
	assert.Equal(t, "/opt/stap", c.Dir)
	assert.Equal(t, []string{
		"--trainer-config", "configs/pybullet/trainers/agent.yaml",
		"--agent-config", "configs/pybullet/agents/sac.yaml",
		"--env-config", "configs/pybullet/envs/pick.yaml",
		"--seed", "0",
		"--path", "models/20220825/sac_pick",
		"--overwrite",
	}, c.Args)
	assert.Equal(
		t,
		"python scripts/train/train_policy.py"+
			" --trainer-config configs/pybullet/trainers/agent.yaml"+
			" --agent-config configs/pybullet/agents/sac.yaml"+
			" --env-config configs/pybullet/envs/pick.yaml"+
			" --seed 0 --path models/20220825/sac_pick --overwrite",
		c.Line(),
	)
}

func TestCommand_PolicyLocal(t *testing.T) {
	t.Parallel()
	s := newTestCommand()
	e := app.Experiment{
		ID:                2,
		Kind:              app.ExperimentKindPolicy,
		Name:              "20220825/sac_pick",
		Env:               "pick",
		TrainerConfig:     "configs/pybullet/trainers/agent.yaml",
		AgentConfig:       "configs/pybullet/agents/sac.yaml",
		EnvConfig:         "configs/pybullet/envs/pick.yaml",
		EncoderCheckpoint: "models/encoder/ckpt.pt",
		Seed:              42,
		Args:              []string{"--gui", "0"},
	}
	c, err := s.Build(e, app.DispatchModeLocal)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"--trainer-config", "configs/pybullet/trainers/agent.yaml",
		"--agent-config", "configs/pybullet/agents/sac.yaml",
		"--env-config", "configs/pybullet/envs/pick.yaml",
		"--encoder-checkpoint", "models/encoder/ckpt.pt",
		"--seed", "42",
		"--gui", "0",
		"--path", "plots/20220825/sac_pick",
		"--num-pretrain-steps", "10",
		"--num-train-steps", "10",
		"--num-eval-episodes", "10",
	}, c.Args)
}

func TestCommand_Scod(t *testing.T) {
	t.Parallel()
	s := newTestCommand()
	e := app.Experiment{
		ID:               3,
		Kind:             app.ExperimentKindScod,
		Name:             "20220825/sac_pick",
		ScodConfig:       "configs/pybullet/scod/scod.yaml",
		PolicyCheckpoint: "models/20220825/sac_pick/pick/final_model.pt",
		Seed:             0,
		Args:             []string{"--num-samples", "1000"},
	}
	c, err := s.Build(e, app.DispatchModeSbatch)
	require.NoError(t, err)
	assert.Equal(t, ScodScript, c.Script)
	assert.Equal(t, []string{
		"--scod-config", "configs/pybullet/scod/scod.yaml",
		"--policy-checkpoint", "models/20220825/sac_pick/pick/final_model.pt",
		"--seed", "0",
		"--num-samples", "1000",
	}, c.Args)
}

func TestCommand_UnknownKind(t *testing.T) {
	t.Parallel()
	s := newTestCommand()
	_, err := s.Build(app.Experiment{ID: 4, Kind: "unknown"}, app.DispatchModeLocal)
	require.Error(t, err)
	assert.ErrorIs(t, err, errtype.ErrBadInput)
}

func TestCommand_OutputPath(t *testing.T) {
	t.Parallel()
	s := newTestCommand()
	policy := app.Experiment{Kind: app.ExperimentKindPolicy, Name: "20220825/sac_pick", Env: "pick"}
	assert.Equal(t, "models/20220825/sac_pick/pick", s.OutputPath(policy, app.DispatchModeSbatch))
	assert.Equal(t, "plots/20220825/sac_pick/pick", s.OutputPath(policy, app.DispatchModeLocal))
	scod := app.Experiment{Kind: app.ExperimentKindScod, Name: "20220825/sac_pick"}
	assert.Equal(t, "", s.OutputPath(scod, app.DispatchModeSbatch))
}
