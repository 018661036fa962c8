// Package monitor owns the serial console session: open the device at
// the fixed 115200 baud, loop reading lines with a short timeout, decode
// permissively, and release the handle on every exit path.
//
// Two consumers sit on the same read loop: Stream feeds the interactive
// console until interrupted, and Capture collects a bounded number of
// lines for the MCP read_console tool.
package monitor
