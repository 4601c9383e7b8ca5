package app

// Manifest is a model that represents a batch of experiments submitted together.
// The manifest-level values act as defaults for the entries.
type Manifest struct {
	Name              string           `json:"name" yaml:"name"`
	TrainerConfig     string           `json:"trainerConfig" yaml:"trainer_config"`
	AgentConfig       string           `json:"agentConfig" yaml:"agent_config"`
	EncoderCheckpoint string           `json:"encoderCheckpoint" yaml:"encoder_checkpoint"`
	ScodConfig        string           `json:"scodConfig" yaml:"scod_config"`
	CheckpointFile    string           `json:"checkpointFile" yaml:"checkpoint_file"`
	Seed              *int             `json:"seed" yaml:"seed"`
	Args              []string         `json:"args" yaml:"args"`
	AutoScod          bool             `json:"autoScod" yaml:"auto_scod"`
	Policies          []ManifestPolicy `json:"policies" yaml:"policies"`
	Scod              []ManifestScod   `json:"scod" yaml:"scod"`
}

// ManifestPolicy is a model that represents a single policy training entry in the manifest.
type ManifestPolicy struct {
	Env       string   `json:"env" yaml:"env"`
	EnvConfig string   `json:"envConfig" yaml:"env_config"`
	Seed      *int     `json:"seed" yaml:"seed"`
	Args      []string `json:"args" yaml:"args"`
}

// ManifestScod is a model that represents a single SCOD training entry in the manifest.
type ManifestScod struct {
	PolicyCheckpoint string   `json:"policyCheckpoint" yaml:"policy_checkpoint"`
	Seed             *int     `json:"seed" yaml:"seed"`
	Args             []string `json:"args" yaml:"args"`
}

// ManifestSvc describes the service that expands the manifests into the experiment forms.
type ManifestSvc interface {
	Expand(m Manifest) ([]FormAddExperiment, error)
}
