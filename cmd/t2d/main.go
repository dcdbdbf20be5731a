// ABOUTME: CLI entry point for t2d
// ABOUTME: Parses flags, loads config, builds the session, dispatches to mode

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/term"

	"github.com/mauromedda/text2dsl-go/internal/catalog"
	"github.com/mauromedda/text2dsl-go/internal/config"
	"github.com/mauromedda/text2dsl-go/internal/export"
	"github.com/mauromedda/text2dsl-go/internal/layers"
	t2dlog "github.com/mauromedda/text2dsl-go/internal/log"
	"github.com/mauromedda/text2dsl-go/internal/mode/interactive"
	"github.com/mauromedda/text2dsl-go/internal/mode/print"
	"github.com/mauromedda/text2dsl-go/internal/orchestrator"
	"github.com/mauromedda/text2dsl-go/internal/transcript"
	"github.com/mauromedda/text2dsl-go/internal/voice"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	args := parseFlags()

	if args.version {
		fmt.Printf("t2d %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	code, err := run(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	os.Exit(code)
}

// run performs the full initialization sequence and dispatches to the
// selected mode.
func run(args cliArgs) (int, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return 1, fmt.Errorf("getting working directory: %w", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return 1, fmt.Errorf("loading config: %w", err)
	}
	applyFlagOverrides(cfg, args)

	switch {
	case cfg.Verbose:
		t2dlog.SetLevel(t2dlog.LevelDebug)
	case cfg.Quiet:
		t2dlog.SetLevel(t2dlog.LevelError)
	}
	if cfg.Quiet {
		cfg.NoSuggestions = true
	}

	cat, err := catalog.LoadWithUserPacks(config.PacksDir())
	if err != nil {
		return 1, fmt.Errorf("loading phrase packs: %w", err)
	}

	lang := cfg.Lang
	if lang == "" {
		lang = "en"
	}

	// Export of a past session needs no live session.
	if args.export != "" {
		dest := ""
		if rest := args.remaining(); len(rest) > 0 {
			dest = rest[0]
		}
		path, err := export.NewSessionExporter(args.export).Export(dest)
		if err != nil {
			return 1, err
		}
		fmt.Println(path)
		return 0, nil
	}

	sessionID := time.Now().Format("20060102-150405")
	writer, err := transcript.NewWriter(sessionID)
	if err != nil {
		return 1, err
	}
	defer writer.Close()

	router := layers.NewRouter(cwd)

	opts := []orchestrator.Option{
		orchestrator.WithProjectInfo(router),
		orchestrator.WithRecorder(writer),
		orchestrator.WithExporter(export.NewSessionExporter(sessionID)),
	}
	if cfg.AutoConfirm {
		opts = append(opts, orchestrator.WithAutoConfirm())
	}
	if cfg.NoSuggestions {
		opts = append(opts, orchestrator.WithoutSuggestions())
	}
	if cfg.SuggestionsMax > 0 {
		opts = append(opts, orchestrator.WithSuggestionsMax(cfg.SuggestionsMax))
	}
	if cfg.HistoryBound > 0 {
		opts = append(opts, orchestrator.WithHistoryBound(cfg.HistoryBound))
	}

	session, err := orchestrator.New(cat, lang, router, opts...)
	if err != nil {
		return 1, err
	}
	if err := writer.Start(sessionID, session.Lang(), cwd); err != nil {
		return 1, err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch {
	case cfg.Voice:
		return 0, runVoice(ctx, session)

	case args.command != "" || args.print || !term.IsTerminal(int(os.Stdin.Fd())):
		format := "text"
		if args.jsonOut {
			format = "json"
		}
		pcfg := print.Config{OutputFormat: format, NoSuggestions: cfg.NoSuggestions}
		return print.Run(ctx, pcfg, session, args.command)

	default:
		return 0, interactive.Run(interactive.Deps{Session: session, Version: version})
	}
}

// applyFlagOverrides layers CLI flags over the merged settings.
// Precedence: flags > env > project file > global file.
func applyFlagOverrides(cfg *config.Settings, args cliArgs) {
	if args.lang != "" {
		cfg.Lang = args.lang
	}
	if args.yes {
		cfg.AutoConfirm = true
	}
	if args.noSuggestions {
		cfg.NoSuggestions = true
	}
	if args.voice {
		cfg.Voice = true
	}
	if args.verbose {
		cfg.Verbose = true
	}
	if args.quiet {
		cfg.Quiet = true
	}
}

// runVoice pumps stdin lines through the session as spoken utterances and
// prints the replies. Stands in for a real speech transducer.
func runVoice(ctx context.Context, session *orchestrator.Session) error {
	t := newStdioTransducer()
	voiceID := session.Locale().Voice
	if voiceID == "" {
		voiceID = session.Lang()
	}
	return voice.Loop(ctx, t, voiceID, func(ctx context.Context, utterance string) (string, error) {
		resp, err := session.Turn(ctx, utterance)
		if err != nil {
			return "", err
		}
		return resp.Message, nil
	})
}
