package domain

// OutputSettings selects how results are reported
type OutputSettings struct {
	Format   string `yaml:"format" json:"format"`
	Path     string `yaml:"path,omitempty" json:"path,omitempty"`
	PlotPath string `yaml:"plot_path" json:"plot_path"`
}

// Configuration is the top-level configuration file structure
type Configuration struct {
	Simulation SimulationParameters `yaml:"simulation" json:"simulation"`
	Option     OptionParameters     `yaml:"option" json:"option"`
	Output     OutputSettings       `yaml:"output" json:"output"`
}
