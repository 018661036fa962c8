package mcpserver

type ToolInput struct {
	Port           string `json:"port,omitempty"`
	MaxLines       int    `json:"max_lines,omitempty"`
	TimeoutSeconds int    `json:"timeout_seconds,omitempty"`
}

type ToolOutput struct {
	Port    string   `json:"port,omitempty"`
	Lines   []string `json:"lines,omitempty"`
	Summary string   `json:"summary"`
	Report  string   `json:"report"`
}
