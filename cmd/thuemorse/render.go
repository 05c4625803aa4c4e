package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"

	"github.com/justyntemme/thuemorse/pkg/framework/debug"
	"github.com/justyntemme/thuemorse/pkg/session"
)

var errTerminal = errors.New("refusing to write raw audio to a terminal")

func runRender(args []string, stdout, stderr io.Writer) error {
	var (
		sf  sessionFlags
		out string
	)
	fs := newFlagSet("render", "[flags] -o out.wav|out.raw|-", stderr)
	sf.register(fs)
	fs.StringVar(&out, "o", "", "output: .wav file, .raw file of little-endian Q31, or - for raw on stdout")
	if err := fs.Parse(args); err != nil {
		return err
	}
	defer sf.close()

	if out == "" {
		fs.Usage()
		return errors.New("missing -o")
	}

	s, err := sf.newSession(fs, stderr)
	if err != nil {
		return err
	}

	if out == "-" {
		if isTerminal(stdout) {
			return errTerminal
		}
		return session.WriteRaw(stdout, s)
	}

	raw := strings.EqualFold(filepath.Ext(out), ".raw")
	err = writeFile(out, func(f *os.File) error {
		if raw {
			return session.WriteRaw(f, s)
		}
		return session.WriteWAV(f, s)
	})
	if err != nil {
		return err
	}

	debug.Info("wrote %s (%d frames, %s)", out, s.Total(), s.Load().Report())
	return nil
}

// writeFile creates path and fills it with write. On failure the partial
// file is removed.
func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	err = write(f)
	if cerr := f.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("close output: %w", cerr)
	}
	if err != nil {
		if fi, serr := os.Stat(path); serr == nil && fi.Mode().IsRegular() {
			os.Remove(path)
		}
		return err
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
