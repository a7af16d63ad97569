package game

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"
)

const stepPrompt = "Press enter for next step"

// Pacer waits between generations
type Pacer interface {
	Wait(ctx context.Context) error
}

// DelayPacer waits a fixed delay
type DelayPacer struct {
	Delay time.Duration
}

func (p DelayPacer) Wait(ctx context.Context) error {
	if p.Delay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(p.Delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// StepPacer waits for a line on its input before every generation.
// It returns io.EOF once the input is exhausted.
type StepPacer struct {
	in  *bufio.Reader
	out io.Writer
}

// NewStepPacer reads from in and writes its prompt to out, which may be nil
func NewStepPacer(in io.Reader, out io.Writer) *StepPacer {
	return &StepPacer{in: bufio.NewReader(in), out: out}
}

func (p *StepPacer) Wait(ctx context.Context) error {
	if p.out != nil {
		fmt.Fprintln(p.out, stepPrompt)
	}

	done := make(chan error, 1)
	go func() {
		line, err := p.in.ReadString('\n')
		if err == io.EOF && line != "" {
			err = nil
		}
		done <- err
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-done:
		return err
	}
}
