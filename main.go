package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/picolabs/picomon/internal/cli"
	"github.com/picolabs/picomon/internal/discover"
	"github.com/picolabs/picomon/internal/mcpserver"
	"github.com/picolabs/picomon/internal/monitor"
	"github.com/picolabs/picomon/internal/output"
	"github.com/picolabs/picomon/internal/security"
)

func main() {
	cfg := cli.ParseFlags()

	switch {
	case cfg.MCP:
		if err := runMCP(); err != nil {
			os.Exit(1)
		}
	case cfg.List:
		if err := runList(); err != nil {
			fmt.Printf("❌ %v\n", err)
			os.Exit(1)
		}
	default:
		os.Exit(runConsole(cfg.Port))
	}
}

func runList() error {
	ports, err := discover.ListPorts()
	if err != nil {
		return err
	}
	discover.Report(ports, output.NewStreamingOutput(os.Stdout))
	return nil
}

func runMCP() error {
	registry := mcpserver.NewToolRegistry()
	registry.Register("list_ports", adaptListPorts)
	registry.Register("find_pico", adaptFindPico)
	registry.Register("read_console", adaptReadConsole)
	return mcpserver.RunServer(registry)
}

// runConsole streams the board's console to stdout. Not finding a device
// is the only failure exit; a console I/O error is reported and the
// process still exits 0.
func runConsole(override string) int {
	port, err := resolvePort(override)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return 1
	}

	fmt.Printf("Reading from %s @ %d baud\n", port, monitor.BaudRate)
	fmt.Println("Press Ctrl+C to exit")
	fmt.Println()
	fmt.Println(strings.Repeat("-", 50))

	session, err := monitor.Open(port)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return 0
	}
	defer session.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := session.Stream(ctx, output.NewStreamingOutput(os.Stdout)); err != nil {
		fmt.Printf("Error: %v\n", err)
		return 0
	}

	fmt.Println("\n\nExiting...")
	return 0
}

// resolvePort picks the device node: an explicit override is validated,
// otherwise discovery scans the known patterns.
func resolvePort(override string) (string, error) {
	if override != "" {
		if err := security.ValidateDevicePath(override); err != nil {
			return "", err
		}
		return override, nil
	}
	return discover.FindPort()
}
