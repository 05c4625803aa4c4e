package main

import "io"

// runConfig prints the effective session config, after -config and flag
// overrides, as YAML that -config accepts back.
func runConfig(args []string, stdout, stderr io.Writer) error {
	var sf sessionFlags
	fs := newFlagSet("config", "[flags]", stderr)
	sf.register(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	defer sf.close()

	if _, err := sf.setupLogging(stderr); err != nil {
		return err
	}
	cfg, err := sf.sessionConfig(fs)
	if err != nil {
		return err
	}
	data, err := cfg.Marshal()
	if err != nil {
		return err
	}
	_, err = stdout.Write(data)
	return err
}
