package cli

import (
	"encoding/json"
	"os"
	"text/tabwriter"
)

// printJSON writes indented JSON to stdout.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// table creates an aligned table writer for stdout. Call Flush when done.
func table() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
}

// printResult outputs an operation result.
//
// Contract: when --json is active, ONLY the JSON encoding of data is written
// to stdout; human-readable prose goes to stderr or is omitted. textFn is
// called only in text mode.
func printResult(data any, textFn func()) error {
	if jsonOutput {
		return printJSON(data)
	}
	textFn()
	return nil
}
