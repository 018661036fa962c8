package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/picolabs/picomon/internal/discover"
	"github.com/picolabs/picomon/internal/mcpserver"
	"github.com/picolabs/picomon/internal/monitor"
	"github.com/picolabs/picomon/internal/output"
	"github.com/picolabs/picomon/internal/security"
)

const (
	defaultCaptureLines   = 50
	defaultCaptureSeconds = 5
)

func adaptListPorts(input *mcpserver.ToolInput) (*mcpserver.ToolOutput, error) {
	ports, err := discover.ListPorts()
	if err != nil {
		return nil, err
	}

	out := output.NewBufferedOutput()
	discover.Report(ports, out)

	picos := 0
	for _, p := range ports {
		if p.IsPico() {
			picos++
		}
	}

	return &mcpserver.ToolOutput{
		Summary: fmt.Sprintf("Found %d serial ports, %d Raspberry Pi devices", len(ports), picos),
		Report:  out.String(),
	}, nil
}

func adaptFindPico(input *mcpserver.ToolInput) (*mcpserver.ToolOutput, error) {
	port, err := discover.FindPort()
	if errors.Is(err, discover.ErrNoDevice) {
		return &mcpserver.ToolOutput{
			Summary: "No Pico serial device found",
			Report:  "No device node matched the known USB CDC patterns. Is the board plugged in?",
		}, nil
	}
	if err != nil {
		return nil, err
	}

	return &mcpserver.ToolOutput{
		Port:    port,
		Summary: fmt.Sprintf("Pico console at %s", port),
		Report:  fmt.Sprintf("Pico console device: %s (115200 baud)", port),
	}, nil
}

func adaptReadConsole(input *mcpserver.ToolInput) (*mcpserver.ToolOutput, error) {
	port, err := resolveToolPort(input.Port)
	if err != nil {
		return nil, err
	}

	maxLines := input.MaxLines
	if maxLines <= 0 {
		maxLines = defaultCaptureLines
	}
	seconds := input.TimeoutSeconds
	if seconds <= 0 {
		seconds = defaultCaptureSeconds
	}

	session, err := monitor.Open(port)
	if err != nil {
		return nil, err
	}
	defer session.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(seconds)*time.Second)
	defer cancel()

	lines, err := session.Capture(ctx, maxLines)
	if err != nil && len(lines) == 0 {
		return nil, err
	}

	summary := fmt.Sprintf("Captured %d lines from %s", len(lines), port)
	if err != nil {
		summary += fmt.Sprintf(" (stopped early: %v)", err)
	}

	return &mcpserver.ToolOutput{
		Port:    port,
		Lines:   lines,
		Summary: summary,
		Report:  strings.Join(lines, "\n"),
	}, nil
}

func resolveToolPort(requested string) (string, error) {
	if requested != "" {
		if err := security.ValidateDevicePath(requested); err != nil {
			return "", err
		}
		return requested, nil
	}
	return discover.FindPort()
}
