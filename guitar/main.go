// Command guitar renders a score of plucked strings.
//
//	guitar [flags] <score> [<output>]
//
// The score is a text file of "<time> <pitch>" lines, a Standard MIDI File
// (.mid, .midi) or a Lua script (.lua).  Output goes to a WAV file (.wav) or
// otherwise to a text sample dump; with -play it is also played as it is
// rendered.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"

	"github.com/gordonklaus/pluck"
	"github.com/gordonklaus/pluck/play"
)

// logger is the command's structured logger; initLogger replaces it.
var logger = slog.Default()

func initLogger(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level:     level,
		AddSource: debug,
	})
	logger = slog.New(h)
	slog.SetDefault(logger)
}

type config struct {
	score, output string
	backend       string
	bits          int
	seed          int64
	limit         float64
	dcBlock       bool
	analyze       bool
	progress      io.Writer // nil unless plucks are shown as dots
}

var errUsage = errors.New("usage")

func main() {
	debug := flag.Bool("debug", false, "enable debug logging (adds source location)")
	var c config
	flag.StringVar(&c.backend, "play", "", "play while rendering: portaudio or oto")
	flag.IntVar(&c.bits, "bits", 16, "WAV bit depth: 16 or 24")
	flag.Int64Var(&c.seed, "seed", 0, "excitation noise seed; 0 seeds from the clock")
	flag.Float64Var(&c.limit, "limit", 0, "soft-limit the output RMS level to this; 0 disables")
	flag.BoolVar(&c.dcBlock, "dcblock", false, "remove the DC offset left by the excitation noise")
	flag.BoolVar(&c.analyze, "analyze", false, "log the output's levels and dominant frequency")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] <score> [<output>]\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()
	initLogger(*debug)

	switch flag.NArg() {
	case 2:
		c.output = flag.Arg(1)
		fallthrough
	case 1:
		c.score = flag.Arg(0)
	}
	if c.score == "" || c.output == "" && c.backend == "" || flag.NArg() > 2 {
		flag.Usage()
		os.Exit(2)
	}
	if term.IsTerminal(int(os.Stderr.Fd())) {
		c.progress = os.Stderr
	}

	if err := run(c); err != nil {
		logger.Error("render failed", "err", err)
		os.Exit(1)
	}
}

// rig holds the components that need the sample rate.  Samples flow from
// the engine through the DC filter and limiter, when enabled, to the outputs.
type rig struct {
	Engine   *pluck.Engine
	DCFilter *pluck.DCFilter
	Limiter  *pluck.Limiter
	Meter    *pluck.Meter
	Spectrum *pluck.Spectrum
}

func run(c config) (err error) {
	if c.score == "" || c.output == "" && c.backend == "" {
		return errUsage
	}
	p := pluck.DefaultParams()

	score, closeScore, err := openScore(c.score)
	if err != nil {
		return err
	}
	defer closeScore()

	var ex pluck.Exciter = pluck.NewRandExciter()
	if c.seed != 0 {
		ex = pluck.NewSeededExciter(c.seed)
	}
	r := rig{Engine: pluck.NewEngine(ex)}

	var (
		tee     pluck.Tee
		closers []func() error
	)
	defer func() {
		for i := len(closers) - 1; i >= 0; i-- {
			if cerr := closers[i](); err == nil {
				err = cerr
			}
		}
	}()

	if c.output != "" {
		out, closeOut, err := createOutput(c.output, p, c.bits)
		if err != nil {
			return err
		}
		tee = append(tee, out)
		closers = append(closers, closeOut)
	}
	if c.backend != "" {
		d, err := play.Open(c.backend, p)
		if err != nil {
			return err
		}
		tee = append(tee, d)
		closers = append(closers, d.Close)
	}
	if c.analyze {
		r.Meter = pluck.NewMeter(.1)
		r.Spectrum = pluck.NewSpectrum(1 << 16)
		tee = append(tee, r.Meter, r.Spectrum)
	}

	var sink pluck.Sink = tee
	if c.limit > 0 {
		r.Limiter = pluck.NewLimiter(sink, c.limit, .01, .5)
		sink = r.Limiter
	}
	if c.dcBlock {
		r.DCFilter = pluck.NewDCFilter(sink)
		sink = r.DCFilter
	}
	pluck.Init(&r, p)

	plucks := 0
	r.Engine.OnPluck = func(ev pluck.Event) {
		plucks++
		if c.progress != nil {
			fmt.Fprint(c.progress, ".")
			return
		}
		logger.Debug("pluck", "string", pluck.PitchName(ev.Pitch), "time", ev.Time)
	}

	logger.Info("processing", "score", c.score, "output", c.output, "play", c.backend)
	err = r.Engine.Run(score, sink)
	if c.progress != nil && plucks > 0 {
		fmt.Fprintln(c.progress)
	}
	if err != nil {
		return err
	}

	n := r.Engine.Samples()
	logger.Info("done", "samples", n, "seconds", float64(n)*p.Step(), "plucks", plucks)
	if c.analyze {
		logger.Info("levels", "peak", r.Meter.Peak(), "rms", r.Meter.RMS(), "max_rms", r.Meter.MaxRMS())
		if n > 0 {
			logger.Info("spectrum", "peak_hz", r.Spectrum.Peak(), "window_full", r.Spectrum.Full())
		}
	}
	return nil
}

func openScore(path string) (pluck.Score, func(), error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, &pluck.ResourceError{Op: "open score", Path: path, Err: err}
	}
	closeScore := func() { f.Close() }

	var s pluck.Score
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mid", ".midi":
		s, err = pluck.ReadMIDIScore(f)
	case ".lua":
		s, err = pluck.ReadLuaScore(path, f)
	default:
		s = pathScore{pluck.NewTextScore(f), path}
	}
	if err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, closeScore, nil
}

// pathScore names its file in parse errors.
type pathScore struct {
	pluck.Score
	path string
}

func (s pathScore) Next() (pluck.Event, error) {
	ev, err := s.Score.Next()
	if err != nil && err != io.EOF {
		err = fmt.Errorf("%s: %w", s.path, err)
	}
	return ev, err
}

func createOutput(path string, p pluck.Params, bits int) (pluck.Sink, func() error, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, &pluck.ResourceError{Op: "create output", Path: path, Err: err}
	}
	finish := func(err error) error {
		if err != nil {
			err = &pluck.ResourceError{Op: "write output", Path: path, Err: err}
		}
		if cerr := f.Close(); err == nil && cerr != nil {
			err = &pluck.ResourceError{Op: "close output", Path: path, Err: cerr}
		}
		return err
	}

	if strings.ToLower(filepath.Ext(path)) == ".wav" {
		s, err := pluck.NewWAVSink(f, p, bits)
		if err != nil {
			f.Close()
			return nil, nil, err
		}
		return s, func() error { return finish(s.Close()) }, nil
	}
	s := pluck.NewTextSink(f, p)
	return s, func() error { return finish(s.Close()) }, nil
}
