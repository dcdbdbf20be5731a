// ABOUTME: Stdio stand-in for a speech transducer
// ABOUTME: Reads utterances as stdin lines, speaks by printing to stdout

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
)

// stdioTransducer adapts stdin/stdout to the voice.Transducer interface.
type stdioTransducer struct {
	scanner *bufio.Scanner
}

func newStdioTransducer() *stdioTransducer {
	return &stdioTransducer{scanner: bufio.NewScanner(os.Stdin)}
}

func (t *stdioTransducer) Listen(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if !t.scanner.Scan() {
		if err := t.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return t.scanner.Text(), nil
}

func (t *stdioTransducer) Speak(ctx context.Context, text, voice string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := fmt.Printf("[%s] %s\n", voice, text)
	return err
}
