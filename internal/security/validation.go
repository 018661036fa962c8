package security

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
)

// ValidateDevicePath validates that a path is suitable for use as a serial
// device override. It ensures the path is:
// 1. Absolute and already clean (no "..", no doubled separators)
// 2. Under /dev on Unix-like systems (or a COM name on Windows)
// 3. Built only from characters that appear in real device node names
//
// The override is accepted from the command line and from MCP tool input,
// so this keeps the tool from being pointed at arbitrary files on disk.
func ValidateDevicePath(path string) error {
	if path == "" {
		return fmt.Errorf("device path cannot be empty")
	}

	if len(path) > 128 {
		return fmt.Errorf("device path too long: %d characters (max 128)", len(path))
	}

	for _, char := range path {
		if !((char >= 'a' && char <= 'z') ||
			(char >= 'A' && char <= 'Z') ||
			(char >= '0' && char <= '9') ||
			char == '.' || char == '-' || char == '_' || char == '/' || char == '\\') {
			return fmt.Errorf("invalid character in device path: %c", char)
		}
	}

	if runtime.GOOS == "windows" {
		if !strings.HasPrefix(strings.ToUpper(path), "COM") {
			return fmt.Errorf("expected a COM port name, got: %s", path)
		}
		return nil
	}

	if !filepath.IsAbs(path) {
		return fmt.Errorf("device path must be absolute: %s", path)
	}

	if filepath.Clean(path) != path {
		return fmt.Errorf("device path must be clean (no '..' or doubled separators): %s", path)
	}

	if !strings.HasPrefix(path, "/dev/") {
		return fmt.Errorf("device path must be under /dev: %s", path)
	}

	return nil
}
