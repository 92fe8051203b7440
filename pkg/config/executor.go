package config

// ExecutorConfig selects and configures the job execution backend.
type ExecutorConfig struct {
	// Mode is "docker" or "kubernetes".
	Mode ExecutorMode `yaml:"mode"`

	// DockerNetwork is the network agent containers join (docker mode).
	DockerNetwork string `yaml:"docker_network"`

	// Namespace is the cluster namespace jobs are submitted to
	// (kubernetes mode).
	Namespace string `yaml:"namespace"`

	// TemplateDir holds the job manifest templates (kubernetes mode).
	TemplateDir string `yaml:"template_dir"`

	// APIEndpoint is the platform API base URL injected into every job.
	APIEndpoint string `yaml:"api_endpoint"`

	// AgentImageName and AgentImageTag select the agent QA job image.
	AgentImageName string `yaml:"agent_image_name"`
	AgentImageTag  string `yaml:"agent_image_tag"`
}

// DefaultExecutorConfig returns the built-in executor defaults.
func DefaultExecutorConfig() *ExecutorConfig {
	return &ExecutorConfig{
		Mode:           ExecutorDocker,
		DockerNetwork:  "docmatrix",
		Namespace:      "docmatrix-jobs",
		TemplateDir:    "./deploy/templates",
		APIEndpoint:    "http://localhost:8080",
		AgentImageName: "docmatrix/agent-qa",
		AgentImageTag:  "latest",
	}
}
