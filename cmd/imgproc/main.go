// Command imgproc applies the imgproc operators to image files.
//
// Usage:
//
//	imgproc [-v] [-j workers] <command> [flags] args...
//
// Run "imgproc help" for the list of commands.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gogpu/imgproc"
)

var errUsage = errors.New("usage")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one invocation and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("imgproc", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		verbose = fs.Bool("v", false, "log debug records")
		workers = fs.Int("j", -1, "row workers (0 or 1 sequential, negative GOMAXPROCS)")
	)
	fs.Usage = func() { usage(fs.Output()) }
	if err := fs.Parse(args); err != nil {
		return 2
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	imgproc.SetLogger(logger)
	defer imgproc.SetLogger(nil)

	imgproc.SetParallelism(*workers)
	defer imgproc.SetParallelism(0)

	if fs.NArg() == 0 || fs.Arg(0) == "help" {
		usage(stdout)
		return 0
	}

	name, rest := fs.Arg(0), fs.Args()[1:]
	var err error
	switch name {
	case "histogram":
		err = runHistogram(rest, stderr)
	case "pdf":
		err = runPDF(rest, stderr)
	case "stats":
		err = runStats(rest, stdout, stderr)
	case "batch":
		err = runBatch(rest, stderr)
	default:
		err = runFilter(name, rest, stderr)
	}

	switch {
	case err == nil:
		return 0
	case errors.Is(err, flag.ErrHelp), errors.Is(err, errUsage):
		return 2
	default:
		logger.Error("command failed", "command", name, "err", err)
		return 1
	}
}

// parseFlags parses args into fs. Malformed flags are usage errors.
func parseFlags(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}
	return nil
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "Usage: imgproc [-v] [-j workers] <command> [flags] args...")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Filters (imgproc <filter> [flags] in out):")
	for _, c := range commands {
		fmt.Fprintf(w, "  %-11s %s\n", c.name, c.summary)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Other commands:")
	fmt.Fprintln(w, "  histogram   imgproc histogram in chart.png")
	fmt.Fprintln(w, "  pdf         imgproc pdf [-page WxH] out.pdf in...")
	fmt.Fprintln(w, "  stats       imgproc stats in...")
	fmt.Fprintln(w, "  batch       imgproc batch [-jobs n] -out dir <filter> [flags] in...")
}
