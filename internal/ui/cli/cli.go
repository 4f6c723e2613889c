package cli

import (
	"errors"
	"flag"
	"io"
)

const versionString = "0.3.0"
const defaultConfigPath = "./incstate.toml"

type cliOptions struct {
	configPath string
	apis       bool
	names      string
	defines    string
	indexed    bool
	watch      bool
	verbose    bool
	version    bool
	files      []string
}

func parseOptions(args []string, stderr io.Writer) (cliOptions, error) {
	var opts cliOptions
	fs := flag.NewFlagSet("incstate", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&opts.configPath, "config", defaultConfigPath, "Path to config file")
	fs.BoolVar(&opts.apis, "apis", false, "Treat the files as APIs records instead of analysis records")
	fs.StringVar(&opts.names, "names", "", "Print the definition names of this class (requires --apis)")
	fs.StringVar(&opts.defines, "defines", "", "List the indexed APIs files that declare this class (requires [store] enabled)")
	fs.BoolVar(&opts.indexed, "indexed", false, "Print the stored summaries of the analysis files instead of decoding them")
	fs.BoolVar(&opts.watch, "watch", false, "Decode again whenever a file changes")
	fs.BoolVar(&opts.verbose, "verbose", false, "Enable verbose logging")
	fs.BoolVar(&opts.version, "version", false, "Print version and exit")

	if err := fs.Parse(args); err != nil {
		return cliOptions{}, err
	}
	opts.files = fs.Args()

	if opts.version {
		return opts, nil
	}
	if opts.defines != "" {
		if len(opts.files) > 0 || opts.apis || opts.names != "" || opts.indexed || opts.watch {
			return cliOptions{}, errors.New("--defines takes no files and no other mode flags")
		}
		return opts, nil
	}
	if len(opts.files) == 0 {
		return cliOptions{}, errors.New("at least one file is required")
	}
	if opts.names != "" && !opts.apis {
		return cliOptions{}, errors.New("--names requires --apis")
	}
	if opts.names != "" && opts.watch {
		return cliOptions{}, errors.New("--names and --watch cannot be used together")
	}
	if opts.indexed && (opts.apis || opts.watch) {
		return cliOptions{}, errors.New("--indexed cannot be combined with --apis or --watch")
	}
	return opts, nil
}
