// ABOUTME: Line input collaborator for the console driver
// ABOUTME: Reads through a goroutine so a cancelled context interrupts a pending read
package automaton

import (
	"bufio"
	"context"
	"io"
	"strings"
	"sync"
)

// LineReader supplies one trimmed line of text per call.
// It returns io.EOF at end of input and the context's error when interrupted.
type LineReader interface {
	ReadLine(ctx context.Context) (string, error)
}

type lineResult struct {
	line string
	err  error
}

// ScannerInput is a LineReader over an io.Reader such as os.Stdin
type ScannerInput struct {
	r     io.Reader
	lines chan lineResult
	once  sync.Once
}

// NewScannerInput creates a LineReader over r
func NewScannerInput(r io.Reader) *ScannerInput {
	return &ScannerInput{r: r, lines: make(chan lineResult)}
}

func (in *ScannerInput) start() {
	go func() {
		defer close(in.lines)
		sc := bufio.NewScanner(in.r)
		for sc.Scan() {
			in.lines <- lineResult{line: strings.TrimSpace(sc.Text())}
		}
		if err := sc.Err(); err != nil {
			in.lines <- lineResult{err: err}
		}
	}()
}

// ReadLine blocks until a line is available, input ends or ctx is done
func (in *ScannerInput) ReadLine(ctx context.Context) (string, error) {
	in.once.Do(in.start)

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res, ok := <-in.lines:
		if !ok {
			return "", io.EOF
		}
		return res.line, res.err
	}
}
