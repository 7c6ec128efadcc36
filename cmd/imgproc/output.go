package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/imgproc"
	"github.com/gogpu/imgproc/image"
	"github.com/gogpu/imgproc/imageio"
	"github.com/gogpu/imgproc/tone"
)

func runHistogram(args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("histogram", flag.ContinueOnError)
	fs.SetOutput(stderr)
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		fmt.Fprintln(stderr, "Usage: imgproc histogram in chart.png")
		return errUsage
	}

	img, err := imageio.Load(fs.Arg(0))
	if err != nil {
		return err
	}
	f, err := os.Create(filepath.Clean(fs.Arg(1)))
	if err != nil {
		return err
	}
	if err := imageio.WriteHistogramChart(f, img); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	imgproc.Logger().Info("histogram written", "in", fs.Arg(0), "out", fs.Arg(1))
	return nil
}

func runPDF(args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("pdf", flag.ContinueOnError)
	fs.SetOutput(stderr)
	page := fs.String("page", "", "fixed page size in points, for example 595x842 (default: image size)")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if fs.NArg() < 2 {
		fmt.Fprintln(stderr, "Usage: imgproc pdf [-page WxH] out.pdf in...")
		return errUsage
	}

	var opts []imageio.Option
	if *page != "" {
		w, h, err := parsePageSize(*page)
		if err != nil {
			return err
		}
		opts = append(opts, imageio.WithPDFPageSize(w, h))
	}

	imgs := make([]*image.Image[uint8], 0, fs.NArg()-1)
	for _, path := range fs.Args()[1:] {
		img, err := imageio.Load(path, imageio.WithAutoOrient(true))
		if err != nil {
			return err
		}
		imgs = append(imgs, img)
	}
	if err := imageio.WritePDF(fs.Arg(0), imgs, opts...); err != nil {
		return err
	}
	imgproc.Logger().Info("pdf written", "out", fs.Arg(0), "pages", len(imgs))
	return nil
}

// parsePageSize parses "WxH" in points.
func parsePageSize(s string) (w, h float64, err error) {
	ws, hs, ok := strings.Cut(s, "x")
	if ok {
		w, err = strconv.ParseFloat(ws, 64)
		if err == nil {
			h, err = strconv.ParseFloat(hs, 64)
		}
	}
	if !ok || err != nil || w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("%w: page size %q, want WxH in points", imgproc.ErrInvalidArg, s)
	}
	return w, h, nil
}

func runStats(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("stats", flag.ContinueOnError)
	fs.SetOutput(stderr)
	lang := fs.String("lang", "en", "language tag for number formatting")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		fmt.Fprintln(stderr, "Usage: imgproc stats [-lang tag] in...")
		return errUsage
	}
	tag, err := language.Parse(*lang)
	if err != nil {
		return fmt.Errorf("%w: language %q: %w", imgproc.ErrInvalidArg, *lang, err)
	}

	p := message.NewPrinter(tag)
	for _, path := range fs.Args() {
		img, err := imageio.Load(path)
		if err != nil {
			return err
		}
		writeStats(p, stdout, path, img)
	}
	return nil
}

// writeStats prints the size of img and the range and mean of every color
// channel.
func writeStats(p *message.Printer, w io.Writer, name string, img *image.Image[uint8]) {
	p.Fprintf(w, "%s: %d x %d, %d channels, alpha %t, %d pixels\n",
		name, img.Width(), img.Height(), img.Channels(), img.Info().Alpha, img.Size())
	for c, hist := range tone.Histogram(img) {
		lo, hi, sum := -1, 0, 0
		for v, n := range hist {
			if n == 0 {
				continue
			}
			if lo < 0 {
				lo = v
			}
			hi = v
			sum += v * n
		}
		p.Fprintf(w, "  channel %d: min %d, max %d, mean %.2f\n",
			c, lo, hi, float64(sum)/float64(img.Size()))
	}
}
