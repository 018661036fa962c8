package cli

import (
	"flag"
	"fmt"
	"os"
)

type Config struct {
	Port string
	List bool
	MCP  bool
}

func ParseFlags() *Config {
	cfg := &Config{}

	flag.StringVar(&cfg.Port, "port", "", "Serial device path (default: auto-discover the Pico)")
	flag.BoolVar(&cfg.List, "list", false, "List serial ports with USB details and exit")
	flag.BoolVar(&cfg.MCP, "mcp", false, "Run as an MCP server over stdio")
	flag.Usage = ShowUsage
	flag.Parse()

	return cfg
}

func ShowUsage() {
	fmt.Fprintf(os.Stderr, "Usage: picomon [options]\n\n")
	fmt.Fprintf(os.Stderr, "Streams the Pico's USB-serial console at 115200 baud until interrupted.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}
