// Package output provides the console output layer, with both streaming
// and buffered implementations behind a single interface.
//
//   - StreamingOutput: writes directly to an io.Writer; used by the
//     interactive console and listing modes
//   - BufferedOutput: collects lines in memory; used by the MCP server
//     mode to turn the same reporting code into tool results
//   - NoOpOutput: discards everything; used in tests
//
// Usage Example (Streaming):
//
//	out := output.NewStreamingOutput(os.Stdout)
//	out.Section("🔌", "Serial ports")
//	out.Success("Found Pico on /dev/ttyACM0")
//
// Usage Example (Buffered):
//
//	out := output.NewBufferedOutput()
//	listing.Report(out)
//	report := out.String()
//
// Debug lines are emitted only when the PICOMON_DEBUG environment
// variable is set. All implementations are thread-safe with mutex
// protection.
package output
