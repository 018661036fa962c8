package mcpserver

import (
	"strings"
	"testing"
)

func TestToolRegistry_Register(t *testing.T) {
	registry := NewToolRegistry()

	called := false
	registry.Register("find_pico", func(input *ToolInput) (*ToolOutput, error) {
		called = true
		return &ToolOutput{Summary: "ok"}, nil
	})

	fn, ok := registry.tools["find_pico"]
	if !ok {
		t.Fatal("Register() should store the tool function")
	}

	out, err := fn(&ToolInput{})
	if err != nil {
		t.Fatalf("Tool function returned error: %v", err)
	}
	if !called {
		t.Error("Tool function should have been invoked")
	}
	if out.Summary != "ok" {
		t.Errorf("Summary = %q, want %q", out.Summary, "ok")
	}
}

func TestGetDescription(t *testing.T) {
	tests := []struct {
		name string
		tool string
		want string
	}{
		{name: "list_ports", tool: "list_ports", want: "serial ports"},
		{name: "find_pico", tool: "find_pico", want: "console device"},
		{name: "read_console", tool: "read_console", want: "text lines"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := getDescription(tt.tool)
			if !strings.Contains(got, tt.want) {
				t.Errorf("getDescription(%q) = %q, should contain %q", tt.tool, got, tt.want)
			}
		})
	}
}

func TestGetDescription_Unknown(t *testing.T) {
	if got := getDescription("mystery_tool"); got != "mystery_tool" {
		t.Errorf("getDescription() for unknown tool = %q, want the tool name back", got)
	}
}
