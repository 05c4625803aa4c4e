package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/justyntemme/thuemorse/pkg/framework/debug"
	"github.com/justyntemme/thuemorse/pkg/midi"
	"github.com/justyntemme/thuemorse/pkg/session"
)

// sessionFlags are shared by every command that renders. Flags given on
// the command line override the config file.
type sessionFlags struct {
	config   string
	note     string
	fine     uint
	duration float64
	voice    string
	rate     float64
	block    int
	verbose  bool
	logLevel string
	logFile  string

	logCloser io.Closer
}

func newFlagSet(name, usage string, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: thuemorse %s %s\n", name, usage)
		fs.PrintDefaults()
	}
	return fs
}

func (f *sessionFlags) register(fs *flag.FlagSet) {
	d := session.DefaultConfig()
	fs.StringVar(&f.config, "config", "", "YAML session config")
	fs.StringVar(&f.note, "note", fmt.Sprint(d.Note), "note number or name (e.g. 60, C4, F#2)")
	fs.UintVar(&f.fine, "fine", uint(d.Fine), "fine tune in 1/256 semitone steps (0-255)")
	fs.Float64Var(&f.duration, "duration", d.Duration, "length in seconds")
	fs.StringVar(&f.voice, "voice", d.Voice, "voice: thuemorse or triangle")
	fs.Float64Var(&f.rate, "rate", d.SampleRate, "sample rate in Hz")
	fs.IntVar(&f.block, "block", d.BlockSize, "frames per render call")
	fs.BoolVar(&f.verbose, "v", false, "debug logging, same as -log-level debug")
	fs.StringVar(&f.logLevel, "log-level", debug.LogLevelInfo.String(), "log level: debug, info, warn, error or off")
	fs.StringVar(&f.logFile, "log", "", "also write the log to this file")
}

// setupLogging points the default logger at stderr at the level -log-level
// or -v asks for. With -log the returned logger also appends to that file.
func (f *sessionFlags) setupLogging(stderr io.Writer) (*debug.Logger, error) {
	level, err := debug.ParseLevel(f.logLevel)
	if err != nil {
		return nil, err
	}
	if f.verbose {
		level = debug.LogLevelDebug
	}
	debug.SetOutput(stderr)
	debug.SetLevel(level)
	if f.logFile == "" {
		return debug.Default(), nil
	}

	log, file, err := debug.NewFileLogger(f.logFile, "thuemorse", debug.DefaultFlags)
	if err != nil {
		return nil, err
	}
	f.logCloser = file
	log.SetOutput(io.MultiWriter(stderr, file))
	log.SetLevel(debug.Default().Level())
	return log, nil
}

func (f *sessionFlags) close() {
	if f.logCloser != nil {
		f.logCloser.Close()
	}
}

// sessionConfig loads -config, if any, and applies the flags that were
// set explicitly.
func (f *sessionFlags) sessionConfig(fs *flag.FlagSet) (session.Config, error) {
	cfg := session.DefaultConfig()
	if f.config != "" {
		var err error
		if cfg, err = session.LoadConfig(f.config); err != nil {
			return cfg, err
		}
		debug.Debug("loaded config %s", f.config)
	}

	var err error
	fs.Visit(func(fl *flag.Flag) {
		if err != nil {
			return
		}
		switch fl.Name {
		case "note":
			var n uint8
			if n, err = midi.ParseNote(f.note); err == nil {
				cfg.Note = session.Note(n)
			}
		case "fine":
			if f.fine > 255 {
				err = fmt.Errorf("fine %d outside 0-255", f.fine)
			}
			cfg.Fine = uint8(f.fine)
		case "duration":
			cfg.Duration = f.duration
		case "voice":
			cfg.Voice = f.voice
		case "rate":
			cfg.SampleRate = f.rate
		case "block":
			cfg.BlockSize = f.block
		}
	})
	if err != nil {
		return cfg, fmt.Errorf("%w: %v", session.ErrInvalidConfig, err)
	}
	return cfg, cfg.Validate()
}

func (f *sessionFlags) newSession(fs *flag.FlagSet, stderr io.Writer) (*session.Session, error) {
	log, err := f.setupLogging(stderr)
	if err != nil {
		return nil, err
	}
	cfg, err := f.sessionConfig(fs)
	if err != nil {
		return nil, err
	}
	return session.New(cfg, log)
}
