// seehuhn.de/go/autokern - automatic kerning from glyph outlines
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command autokern computes kerning values from glyph outlines.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"

	"golang.org/x/term"

	"seehuhn.de/go/autokern"
	"seehuhn.de/go/autokern/gofont"
	"seehuhn.de/go/autokern/gotextsource"
	"seehuhn.de/go/autokern/internal/buildinfo"
	"seehuhn.de/go/autokern/internal/profile"
	"seehuhn.de/go/autokern/kern"
	"seehuhn.de/go/autokern/sfntsource"
)

var (
	masterFiles listFlag
	instances   listFlag

	varFont    = flag.String("varfont", "", "read masters from the variable font `file`")
	useGoFont  = flag.Bool("gofont", false, "use the Go fonts as masters")
	masterArg  = flag.String("m", "", "kern the `master` (default: first master)")
	target     = flag.Float64("target", 100, "target `distance` between the glyphs, in font units")
	height     = flag.Int("height", 0, "vertical measuring offset, relative to the exit anchor if positive")
	tuck       = flag.Float64("tuck", 0, "maximum tuck as a `fraction` of the left advance width (0 = unlimited)")
	anchorFile = flag.String("anchors", "", "read glyph anchors from `file`")
	secant     = flag.Bool("secant", false, "use secant steps instead of linear steps")
	workers    = flag.Int("j", 0, "number of pairs to kern in parallel (default: number of CPUs)")
	verbose    = flag.Bool("v", false, "log solver progress to stderr")
	pairsFile  = flag.String("pairs", "", "read glyph pairs from `file`, one pair per line")
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to `file`")
	memprofile = flag.String("memprofile", "", "write memory profile to `file`")
)

func init() {
	flag.Var(&masterFiles, "master", "add a master as `name=file` (repeatable)")
	flag.Var(&instances, "instance", "add a variable font instance as `name=tag=value,...` (repeatable)")
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "autokern - compute kerning values from glyph outlines\n")
		fmt.Fprintf(os.Stderr, "%s\n\n", buildinfo.Short("autokern"))
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  autokern [options] left right\n")
		fmt.Fprintf(os.Stderr, "  autokern [options] -pairs file\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  autokern -gofont -m Bold -target 150 A V\n")
		fmt.Fprintf(os.Stderr, "  autokern -master Regular=Foo-Regular.otf -tuck 0.3 -pairs pairs.txt\n")
		fmt.Fprintf(os.Stderr, "  autokern -varfont Foo.ttf -instance Light=wght=300 -m Light T o\n")
	}
	flag.Parse()

	if (*pairsFile == "") != (flag.NArg() == 2) || (*pairsFile != "" && flag.NArg() != 0) {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "autokern:", err)
		os.Exit(1)
	}
}

func run() (err error) {
	prof, err := profile.Start(*cpuprofile, *memprofile)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, prof.Stop())
	}()

	if *verbose {
		h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		autokern.SetLogger(slog.New(h))
	}

	src, masters, err := openSource()
	if err != nil {
		return err
	}
	master := *masterArg
	if master == "" {
		master = masters[0]
	}

	var pairs [][2]string
	if *pairsFile != "" {
		fd, err := os.Open(*pairsFile)
		if err != nil {
			return err
		}
		pairs, err = readPairs(fd)
		fd.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", *pairsFile, err)
		}
	} else {
		pairs = [][2]string{{flag.Arg(0), flag.Arg(1)}}
	}

	params := kern.Params{Target: *target, Height: *height, MaxTuck: *tuck}
	if *secant {
		params.Method = kern.Secant
	}
	qq := make([]autokern.Query, len(pairs))
	for i, p := range pairs {
		qq[i] = autokern.Query{Left: p[0], Right: p[1], Master: master, Params: params}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	d := autokern.New(src, &autokern.Options{Workers: *workers})
	res, err := d.Run(ctx, qq)
	if err != nil {
		return err
	}
	return writeResults(os.Stdout, res, term.IsTerminal(int(os.Stdout.Fd())))
}

var errSourceCount = errors.New("exactly one of -master, -varfont and -gofont must be given")

// openSource sets up the glyph source selected on the command line and
// returns it together with its master names.
func openSource() (autokern.Source, []string, error) {
	n := 0
	if len(masterFiles) > 0 {
		n++
	}
	if *varFont != "" {
		n++
	}
	if *useGoFont {
		n++
	}
	if n != 1 {
		return nil, nil, errSourceCount
	}

	if *varFont != "" {
		return openVarFont()
	}

	var fam *sfntsource.Family
	if *useGoFont {
		var err error
		fam, err = gofont.Family()
		if err != nil {
			return nil, nil, err
		}
	} else {
		fam = sfntsource.New()
		for _, arg := range masterFiles {
			name, fname, ok := strings.Cut(arg, "=")
			if !ok || name == "" || fname == "" {
				return nil, nil, fmt.Errorf("invalid master %q, want name=file", arg)
			}
			if err := fam.AddMasterFile(name, fname); err != nil {
				return nil, nil, err
			}
		}
	}

	if *anchorFile != "" {
		fd, err := os.Open(*anchorFile)
		if err != nil {
			return nil, nil, err
		}
		err = fam.ReadAnchors(fd)
		fd.Close()
		if err != nil {
			return nil, nil, err
		}
	}

	// Masters are listed in the order given on the command line, so that
	// the first one becomes the default.
	var masters []string
	if *useGoFont {
		for _, m := range gofont.Upright {
			masters = append(masters, m.String())
		}
	} else {
		for _, arg := range masterFiles {
			name, _, _ := strings.Cut(arg, "=")
			masters = append(masters, name)
		}
	}
	return fam, masters, nil
}

func openVarFont() (autokern.Source, []string, error) {
	if *anchorFile != "" {
		return nil, nil, errors.New("-anchors cannot be used with -varfont")
	}

	fd, err := os.Open(*varFont)
	if err != nil {
		return nil, nil, err
	}
	defer fd.Close()
	f, err := gotextsource.Load(fd)
	if err != nil {
		return nil, nil, err
	}

	var masters []string
	for _, arg := range instances {
		name, loc, ok := strings.Cut(arg, "=")
		if !ok || name == "" {
			return nil, nil, fmt.Errorf("invalid instance %q, want name=tag=value,...", arg)
		}
		vv, err := gotextsource.ParseLocation(loc)
		if err != nil {
			return nil, nil, err
		}
		f.AddMaster(name, vv)
		masters = append(masters, name)
	}
	masters = append(masters, gotextsource.DefaultMaster)
	return f, masters, nil
}

// writeResults prints one line per pair.  Failed pairs are reported on
// stderr, and cause a non-nil error after all pairs have been printed.
func writeResults(w io.Writer, res []autokern.Outcome, aligned bool) error {
	out := w
	var tw *tabwriter.Writer
	if aligned {
		tw = tabwriter.NewWriter(w, 0, 8, 2, ' ', tabwriter.AlignRight)
		out = tw
	}

	failed := 0
	for _, r := range res {
		q := r.Query
		if r.Err != nil {
			fmt.Fprintf(os.Stderr, "%s %s: %v\n", q.Left, q.Right, r.Err)
			failed++
			continue
		}
		k := math.Round(r.Result.Kern)
		if k == 0 {
			k = 0 // avoid printing "-0"
		}
		if aligned {
			fmt.Fprintf(out, "%s\t%s\t%.0f\t\n", q.Left, q.Right, k)
		} else {
			fmt.Fprintf(out, "%s %s %.0f\n", q.Left, q.Right, k)
		}
	}
	if tw != nil {
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d pairs failed", failed, len(res))
	}
	return nil
}

// listFlag collects the values of a repeatable flag.
type listFlag []string

func (l *listFlag) String() string {
	return strings.Join(*l, " ")
}

func (l *listFlag) Set(s string) error {
	*l = append(*l, s)
	return nil
}
