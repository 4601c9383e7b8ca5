package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadManifest(t *testing.T) {
	t.Parallel()
	src := `name: 20220825/sac
trainer_config: configs/pybullet/trainers/agent.yaml
agent_config: configs/pybullet/agents/sac.yaml
scod_config: configs/pybullet/scod/scod.yaml
seed: 3
auto_scod: true
policies:
  - env: pick
    env_config: configs/pybullet/envs/pick.yaml
  - env: place
    env_config: configs/pybullet/envs/place.yaml
    seed: 7
    args: ["--gui", "0"]
scod:
  - policy_checkpoint: models/20220825/sac/pick/final_model.pt
`
	path := filepath.Join(t.TempDir(), "manifest.yaml")
	require.NoError(t, os.WriteFile(path, []byte(src), 0644))

	m, err := loadManifest(path)
	require.NoError(t, err)
	assert.Equal(t, "20220825/sac", m.Name)
	assert.Equal(t, "configs/pybullet/trainers/agent.yaml", m.TrainerConfig)
	assert.Equal(t, "configs/pybullet/agents/sac.yaml", m.AgentConfig)
	assert.Equal(t, "configs/pybullet/scod/scod.yaml", m.ScodConfig)
	require.NotNil(t, m.Seed)
	assert.Equal(t, 3, *m.Seed)
	assert.True(t, m.AutoScod)

	require.Len(t, m.Policies, 2)
	assert.Equal(t, "pick", m.Policies[0].Env)
	assert.Nil(t, m.Policies[0].Seed)
	assert.Equal(t, "place", m.Policies[1].Env)
	require.NotNil(t, m.Policies[1].Seed)
	assert.Equal(t, 7, *m.Policies[1].Seed)
	assert.Equal(t, []string{"--gui", "0"}, m.Policies[1].Args)

	require.Len(t, m.Scod, 1)
	assert.Equal(t, "models/20220825/sac/pick/final_model.pt", m.Scod[0].PolicyCheckpoint)
}

func TestLoadManifestMissingFile(t *testing.T) {
	t.Parallel()
	_, err := loadManifest(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read the manifest")
}

func TestLoadManifestBadYaml(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "manifest.yaml")
	require.NoError(t, os.WriteFile(path, []byte("policies: {"), 0644))
	_, err := loadManifest(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse the manifest")
}
