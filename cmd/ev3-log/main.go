// Command ev3-log views and analyzes EV3 protocol capture files.
//
// Capture files are written by ev3ctl when run with -capture.
//
// Usage:
//
//	ev3-log <command> [flags] <file.ev3log>
//
// Commands:
//
//	view     View capture in human-readable format
//	export   Export capture to JSON lines or CSV
//	stats    Show statistics about the capture
//
// Examples:
//
//	# View only outgoing commands
//	ev3-log view -direction out session.ev3log
//
//	# View lifecycle transitions
//	ev3-log view -layer lifecycle session.ev3log
//
//	# Export to CSV
//	ev3-log export -format csv -o session.csv session.ev3log
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/ev3-protocol/ev3-go/cmd/ev3-log/commands"
	"github.com/ev3-protocol/ev3-go/pkg/log"
)

const usage = `ev3-log - EV3 Protocol Capture Viewer

Usage:
  ev3-log <command> [flags] <file.ev3log>

Commands:
  view     View capture in human-readable format
  export   Export capture to JSON lines or CSV
  stats    Show statistics about the capture

Use "ev3-log <command> -help" for more information about a command.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "view":
		runView(args)
	case "export":
		runExport(args)
	case "stats":
		runStats(args)
	case "-h", "-help", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func runView(args []string) {
	fs := flag.NewFlagSet("view", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `ev3-log view - View capture in human-readable format

Usage:
  ev3-log view [flags] <file.ev3log>

Flags:
`)
		fs.PrintDefaults()
	}

	layer := fs.String("layer", "", "Filter by layer (transport, wire, lifecycle)")
	direction := fs.String("direction", "", "Filter by direction (in, out)")
	category := fs.String("category", "", "Filter by category (frame, state, error)")
	connID := fs.String("conn-id", "", "Filter by connection ID")
	device := fs.String("device", "", "Filter by device path")
	since := fs.String("since", "", "Only events at or after this time (RFC3339)")
	until := fs.String("until", "", "Only events before this time (RFC3339)")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: log file path required")
		fs.Usage()
		os.Exit(1)
	}

	filter := log.Filter{ConnectionID: *connID, Device: *device}

	if *layer != "" {
		l, err := commands.ParseLayerFlag(*layer)
		if err != nil {
			fail(err)
		}
		filter.Layer = &l
	}
	if *direction != "" {
		d, err := commands.ParseDirectionFlag(*direction)
		if err != nil {
			fail(err)
		}
		filter.Direction = &d
	}
	if *category != "" {
		c, err := commands.ParseCategoryFlag(*category)
		if err != nil {
			fail(err)
		}
		filter.Category = &c
	}
	if *since != "" {
		t, err := time.Parse(time.RFC3339, *since)
		if err != nil {
			fail(fmt.Errorf("invalid -since: %w", err))
		}
		filter.TimeStart = &t
	}
	if *until != "" {
		t, err := time.Parse(time.RFC3339, *until)
		if err != nil {
			fail(fmt.Errorf("invalid -until: %w", err))
		}
		filter.TimeEnd = &t
	}

	if err := commands.RunView(fs.Arg(0), filter, os.Stdout); err != nil {
		fail(err)
	}
}

func runExport(args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `ev3-log export - Export capture to JSON lines or CSV

Usage:
  ev3-log export [flags] <file.ev3log>

Flags:
`)
		fs.PrintDefaults()
	}

	format := fs.String("format", "jsonl", "Output format (jsonl, csv)")
	output := fs.String("o", "", "Output file (default: stdout)")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: log file path required")
		fs.Usage()
		os.Exit(1)
	}

	if err := commands.RunExport(fs.Arg(0), *format, *output); err != nil {
		fail(err)
	}
}

func runStats(args []string) {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `ev3-log stats - Show statistics about the capture

Usage:
  ev3-log stats <file.ev3log>

`)
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: log file path required")
		fs.Usage()
		os.Exit(1)
	}

	if err := commands.RunStats(fs.Arg(0), os.Stdout); err != nil {
		fail(err)
	}
}
