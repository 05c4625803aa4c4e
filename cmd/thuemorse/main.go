// Command thuemorse renders, plays and inspects the Thue–Morse glide
// oscillator.
//
//	thuemorse render -note A3 -duration 4 -o glide.wav
//	thuemorse play -config session.yaml
//	thuemorse analyze -voice triangle -fft 8192
//	thuemorse seq -n 64
//	thuemorse config -note C5 > session.yaml
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/justyntemme/thuemorse/pkg/framework/debug"
)

type command struct {
	summary string
	run     func(args []string, stdout, stderr io.Writer) error
}

var commands = map[string]command{
	"render":  {"render to a WAV file or raw Q31 on stdout", runRender},
	"play":    {"play through the default audio device", runPlay},
	"analyze": {"render and print levels and spectral peaks", runAnalyze},
	"seq":     {"print the Thue–Morse sequence and the levels it selects", runSeq},
	"config":  {"print the effective session config as YAML", runConfig},
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	debug.SetOutput(stderr)
	debug.SetLevel(debug.LogLevelInfo)

	if len(args) == 0 {
		usage(stderr)
		return 1
	}
	name := args[0]
	if name == "-h" || name == "-help" || name == "--help" || name == "help" {
		usage(stdout)
		return 0
	}

	cmd, ok := commands[name]
	if !ok {
		fmt.Fprintf(stderr, "Error: unknown command %q\n", name)
		usage(stderr)
		return 1
	}

	if err := cmd.run(args[1:], stdout, stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		debug.Error("%s: %v", name, err)
		return 1
	}
	return 0
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "Usage: thuemorse <command> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "  %-8s %s\n", name, commands[name].summary)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'thuemorse <command> -h' for the flags of a command.")
}
