package main

import (
	"bufio"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gordonklaus/pluck"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func countLines(t *testing.T, path string) (header []string, samples int) {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	s := bufio.NewScanner(f)
	for s.Scan() {
		if line := s.Text(); line == "" || strings.HasPrefix(line, ";") {
			header = append(header, line)
		} else {
			samples++
		}
	}
	return header, samples
}

func TestRunText(t *testing.T) {
	score := writeFile(t, "song.txt", "0.0 0\n0.0 24\n0.001 -1\n")
	out := filepath.Join(t.TempDir(), "song.dat")
	var progress strings.Builder
	if err := run(config{score: score, output: out, seed: 1, progress: &progress, analyze: true}); err != nil {
		t.Fatal(err)
	}
	header, n := countLines(t, out)
	if len(header) != 3 || header[0] != "; Sample Rate 44100" || header[1] != "; Channels 1" {
		t.Errorf("header %q", header)
	}
	if n != 45 {
		t.Errorf("%d samples, want 45", n)
	}
	if got := progress.String(); got != "..\n" {
		t.Errorf("progress %q, want two dots", got)
	}
}

func TestRunEndAtStart(t *testing.T) {
	score := writeFile(t, "song.txt", "0.0 0\n0.0 -1\n")
	out := filepath.Join(t.TempDir(), "song.dat")
	if err := run(config{score: score, output: out}); err != nil {
		t.Fatal(err)
	}
	if header, n := countLines(t, out); n != 0 || len(header) != 3 {
		t.Errorf("%d header lines, %d samples", len(header), n)
	}
}

func TestRunWAV(t *testing.T) {
	score := writeFile(t, "song.lua", "pluck(0, a4)\nstop(0.01)\n")
	out := filepath.Join(t.TempDir(), "song.wav")
	if err := run(config{score: score, output: out, bits: 16, limit: .3, dcBlock: true}); err != nil {
		t.Fatal(err)
	}
	fi, err := os.Stat(out)
	if err != nil {
		t.Fatal(err)
	}
	// 441 two-byte samples after the 44-byte header
	if fi.Size() != 44+2*441 {
		t.Errorf("WAV file is %d bytes", fi.Size())
	}
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.dat")
	for _, c := range []struct {
		name  string
		score string
		check func(error) bool
	}{
		{"order", "0 5\n-0.1 3\n", func(err error) bool {
			var e *pluck.ScoreOrderingError
			return errors.As(err, &e)
		}},
		{"range", "0 5\n1 37\n", func(err error) bool {
			var e *pluck.PitchRangeError
			return errors.As(err, &e)
		}},
		{"format", "0 5\n1\n", func(err error) bool {
			var e *pluck.ScoreFormatError
			return errors.As(err, &e)
		}},
	} {
		err := run(config{score: writeFile(t, c.name+".txt", c.score), output: out})
		if !c.check(err) {
			t.Errorf("%s: got %v", c.name, err)
		}
	}

	var rerr *pluck.ResourceError
	if err := run(config{score: filepath.Join(dir, "missing.txt"), output: out}); !errors.As(err, &rerr) {
		t.Errorf("missing score: got %v", err)
	}
	score := writeFile(t, "ok.txt", "0 1\n")
	if err := run(config{score: score, output: filepath.Join(dir, "no", "such", "dir.dat")}); !errors.As(err, &rerr) {
		t.Errorf("bad output: got %v", err)
	}
	if err := run(config{score: score}); !errors.Is(err, errUsage) {
		t.Errorf("no output: got %v", err)
	}
	if err := run(config{score: score, output: filepath.Join(dir, "x.wav"), bits: 12}); err == nil {
		t.Error("12-bit WAV accepted")
	}
}
