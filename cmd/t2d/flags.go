// ABOUTME: CLI flag parsing using stdlib flag package
// ABOUTME: Supports --lang, --print, --json, --yes, --voice, --export, --version

package main

import "flag"

type cliArgs struct {
	lang          string
	command       string
	print         bool
	jsonOut       bool
	yes           bool
	noSuggestions bool
	voice         bool
	export        string
	verbose       bool
	quiet         bool
	version       bool
}

func parseFlags() cliArgs {
	var args cliArgs

	flag.StringVar(&args.lang, "lang", "", "Session language (pl, de, en, or a regional tag like de-AT)")
	flag.StringVar(&args.command, "c", "", "Run one phrase and exit")
	flag.BoolVar(&args.print, "print", false, "Non-interactive print mode (reads stdin without -c)")
	flag.BoolVar(&args.jsonOut, "json", false, "JSON output in print mode")
	flag.BoolVar(&args.yes, "yes", false, "Auto-confirm destructive commands")
	flag.BoolVar(&args.noSuggestions, "no-suggestions", false, "Disable the suggestion panel")
	flag.BoolVar(&args.voice, "voice", false, "Voice loop with the demo transducer")
	flag.StringVar(&args.export, "export", "", "Export a previous session transcript (session ID)")
	flag.BoolVar(&args.verbose, "verbose", false, "Debug logging to stderr")
	flag.BoolVar(&args.quiet, "quiet", false, "Suppress suggestions and non-error logging")
	flag.BoolVar(&args.version, "version", false, "Show version and exit")

	flag.Parse()
	return args
}

// remaining returns the non-flag command-line arguments.
func (a cliArgs) remaining() []string {
	return flag.Args()
}
