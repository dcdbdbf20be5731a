// ABOUTME: Speech transducer abstraction: recognized utterances in, spoken
// ABOUTME: responses out, pumped through a single serialized loop

package voice

import (
	"context"
	"errors"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/mauromedda/text2dsl-go/internal/log"
)

// Transducer converts between speech and text. Listen blocks until one
// utterance is recognized; io.EOF ends the loop cleanly. voice is the
// locale voice identifier (e.g. "pl-PL") to speak with.
type Transducer interface {
	Listen(ctx context.Context) (string, error)
	Speak(ctx context.Context, text, voice string) error
}

// Handler processes one recognized utterance and returns the reply to
// speak. Empty replies are not spoken.
type Handler func(ctx context.Context, utterance string) (string, error)

// Loop pumps utterances from the transducer through the handler one at a
// time. Listening and speaking run on separate goroutines but turns are
// serialized through a single channel, so the handler never sees two
// utterances at once.
func Loop(ctx context.Context, t Transducer, voice string, handle Handler) error {
	utterances := make(chan string)
	replies := make(chan string)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(utterances)
		for {
			text, err := t.Listen(ctx)
			if errors.Is(err, io.EOF) {
				return nil
			}
			if err != nil {
				return err
			}
			select {
			case utterances <- text:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	})

	g.Go(func() error {
		defer close(replies)
		for {
			select {
			case text, ok := <-utterances:
				if !ok {
					return nil
				}
				log.Debug("voice utterance=%q", text)
				reply, err := handle(ctx, text)
				if err != nil {
					return err
				}
				if reply == "" {
					continue
				}
				select {
				case replies <- reply:
				case <-ctx.Done():
					return ctx.Err()
				}
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	})

	g.Go(func() error {
		for {
			select {
			case reply, ok := <-replies:
				if !ok {
					return nil
				}
				if err := t.Speak(ctx, reply, voice); err != nil {
					return err
				}
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
