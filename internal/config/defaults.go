package config

// Default configuration values.
const (
	// RootModuleName names the synthetic module holding the configured checks.
	RootModuleName = "Checker"

	// DefaultConcurrency lets the import pass pick its own limit.
	DefaultConcurrency = 0
)

// ApplyDefaults applies default values to a ProjectConfig.
func (p *ProjectConfig) ApplyDefaults() {
	if p == nil {
		return
	}
	if p.Concurrency < 0 {
		p.Concurrency = DefaultConcurrency
	}
}
