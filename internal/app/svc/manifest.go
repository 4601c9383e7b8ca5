package svc

import (
	"fmt"
	"github.com/beldeveloper/train-dispatch/internal/app"
	"github.com/beldeveloper/train-dispatch/internal/app/errtype"
	"strings"
)

// NewManifest creates a new instance of the Manifest service.
func NewManifest() app.ManifestSvc {
	return Manifest{}
}

// Manifest is a service that expands the experiment manifests into the experiment forms.
type Manifest struct {
}

// Expand converts the manifest into the list of the experiment forms.
func (s Manifest) Expand(m app.Manifest) ([]app.FormAddExperiment, error) {
	m.Name = strings.TrimSpace(m.Name)
	if m.Name == "" {
		return nil, fmt.Errorf("%w: manifest name is empty", errtype.ErrBadInput)
	}
	if len(m.Policies) == 0 && len(m.Scod) == 0 {
		return nil, fmt.Errorf("%w: manifest defines no experiments", errtype.ErrBadInput)
	}
	if m.AutoScod && m.ScodConfig == "" {
		return nil, fmt.Errorf("%w: auto SCOD requires the SCOD config", errtype.ErrBadInput)
	}
	if m.CheckpointFile == "" {
		m.CheckpointFile = app.DefaultCheckpointFile
	}
	forms := make([]app.FormAddExperiment, 0, len(m.Policies)+len(m.Scod))
	for _, p := range m.Policies {
		forms = append(forms, app.FormAddExperiment{
			Kind:              app.ExperimentKindPolicy,
			Name:              m.Name,
			Env:               strings.TrimSpace(p.Env),
			TrainerConfig:     m.TrainerConfig,
			AgentConfig:       m.AgentConfig,
			EnvConfig:         p.EnvConfig,
			EncoderCheckpoint: m.EncoderCheckpoint,
			ScodConfig:        m.ScodConfig,
			CheckpointFile:    m.CheckpointFile,
			Seed:              seedOrDefault(p.Seed, m.Seed),
			Args:              mergeArgs(m.Args, p.Args),
			AutoScod:          m.AutoScod,
		})
	}
	for _, sc := range m.Scod {
		forms = append(forms, app.FormAddExperiment{
			Kind:             app.ExperimentKindScod,
			Name:             m.Name,
			ScodConfig:       m.ScodConfig,
			PolicyCheckpoint: sc.PolicyCheckpoint,
			CheckpointFile:   m.CheckpointFile,
			Seed:             seedOrDefault(sc.Seed, m.Seed),
			Args:             mergeArgs(m.Args, sc.Args),
		})
	}
	return forms, nil
}

func seedOrDefault(seed, def *int) int {
	if seed != nil {
		return *seed
	}
	if def != nil {
		return *def
	}
	return 0
}

func mergeArgs(base, extra []string) []string {
	if len(base) == 0 && len(extra) == 0 {
		return nil
	}
	args := make([]string, 0, len(base)+len(extra))
	args = append(args, base...)
	args = append(args, extra...)
	return args
}
