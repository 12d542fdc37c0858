package config

type YAMLConfig struct {
	Network   YAMLNetwork       `yaml:"network"`
	Update    YAMLUpdate        `yaml:"update"`
	Paths     YAMLPaths         `yaml:"paths"`
	Headers   map[string]string `yaml:"headers"`
	Tools     []YAMLTool        `yaml:"tools"`
	Shortcuts map[string]string `yaml:"shortcuts"`
}

type YAMLNetwork struct {
	TimeoutMS    *int   `yaml:"timeout_ms"`
	UserAgent    string `yaml:"user_agent"`
	ThrottleBPS  int    `yaml:"throttle_bps"`
	MaxRedirects *int   `yaml:"max_redirects"`
}

type YAMLUpdate struct {
	FeedURL string `yaml:"feed_url"`
}

type YAMLPaths struct {
	HistoryDir string `yaml:"history_dir"`
}

type YAMLTool struct {
	Name        string   `yaml:"name"`
	Command     string   `yaml:"command"`
	Args        []string `yaml:"args"`
	Interpreter string   `yaml:"interpreter"`
	Script      string   `yaml:"script"`
	WorkDir     string   `yaml:"workdir"`
	Input       string   `yaml:"input"`
	TimeoutMS   int      `yaml:"timeout_ms"`
}
