package workflow

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/chinmay1088/nenrin/api"
	"github.com/fatih/color"
	"github.com/gagliardetto/solana-go"
	"github.com/schollz/progressbar/v3"
)

const spinnerInterval = 100 * time.Millisecond

// confirm waits for sig, animating a spinner when enabled.
func (r *Runner) confirm(ctx context.Context, sig solana.Signature, label string) error {
	if !r.spinner {
		return r.client.ConfirmTransaction(ctx, sig)
	}

	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(r.out),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionSetDescription("[cyan]"+label+"[reset]"),
		progressbar.OptionClearOnFinish(),
	)

	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		ticker := time.NewTicker(spinnerInterval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				bar.Add(1)
			}
		}
	}()

	err := r.client.ConfirmTransaction(ctx, sig)
	close(done)
	wg.Wait()
	bar.Finish()

	return err
}

// PrintHistory writes one numbered line per signature, newest first.
func PrintHistory(w io.Writer, history []api.Signature) {
	if len(history) == 0 {
		fmt.Fprintln(w, "   No transactions found")
		return
	}

	for i, s := range history {
		status := s.ConfirmationStatus
		if s.Failed() {
			status = color.RedString("failed: %s", s.Err)
		}

		when := "unknown time"
		if !s.BlockTime.IsZero() {
			when = s.BlockTime.UTC().Format("2006-01-02 15:04:05")
		}

		fmt.Fprintf(w, "   %d. %s\n", i+1, s.Signature)
		fmt.Fprintf(w, "      Slot: %d | %s | %s\n", s.Slot, when, status)
		if s.Memo != "" {
			fmt.Fprintf(w, "      Memo: %s\n", s.Memo)
		}
	}
}
