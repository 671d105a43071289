// Command wearctl runs maintenance tasks against the wear service storage:
// migrations, catalog imports, development tokens and garage reports.
package main

import (
	"fmt"
	"os"
)

const (
	exitSuccess   = 0
	exitUserError = 1
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitUserError)
	}
	os.Exit(exitSuccess)
}
