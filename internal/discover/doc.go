// Package discover locates the Pico's USB-serial device node.
//
// Discovery scans fixed glob patterns in priority order and takes the
// first match. The enumerator-backed ListPorts supports the --list flag
// and the MCP tools with full USB details (VID:PID, serial number).
package discover
