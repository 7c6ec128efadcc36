package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/gogpu/imgproc"
)

// runBatch applies one filter to many files, writing each result under the
// output directory with the input's base name.
func runBatch(args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("batch", flag.ContinueOnError)
	fs.SetOutput(stderr)
	jobs := fs.Int("jobs", runtime.NumCPU(), "files processed at once")
	dir := fs.String("out", "", "output directory")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Usage: imgproc batch [-jobs n] -out dir <filter> [flags] in...")
		fs.PrintDefaults()
	}
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if *dir == "" || fs.NArg() == 0 {
		fs.Usage()
		return errUsage
	}

	name := fs.Arg(0)
	op, files, err := parseCommand(name, fs.Args()[1:], stderr, "in...")
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Fprintf(stderr, "Usage: imgproc batch -out dir %s [flags] in...\n", name)
		return errUsage
	}
	if err := os.MkdirAll(*dir, 0o750); err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(max(*jobs, 1))
	for _, in := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return processFile(name, op, in, filepath.Join(*dir, filepath.Base(in)))
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	imgproc.Logger().Info("batch done", "command", name, "files", len(files))
	return nil
}
