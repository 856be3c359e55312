package cmd

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/pterm/pterm"

	apperrors "washclub/cli/internal/errors"
	"washclub/cli/internal/httperrors"
	"washclub/cli/internal/navigator"
	"washclub/cli/internal/session"
)

// startInlineSpinner draws frames followed by text on a single line until
// the returned stop function is called, then clears the line.
func startInlineSpinner(w io.Writer, text string, frames []string, interval time.Duration) func() {
	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		i := 0
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				line := fmt.Sprintf("%s %s", frames[i%len(frames)], text)
				// Clear the spinner line completely, then return
				fmt.Fprintf(w, "\r%*s\r", len(line), "")
				return
			case <-ticker.C:
				fmt.Fprintf(w, "\r%s %s", frames[i%len(frames)], text)
				i++
			}
		}
	}()
	return func() {
		close(stop)
		wg.Wait()
	}
}

// requireSignedIn restores the session and reports whether the member
// screens may open. It prints the sign-in hint when they may not.
func requireSignedIn(ctx context.Context, a *app) (bool, error) {
	st, err := a.restore(ctx, false)
	if err != nil {
		return false, err
	}
	if navigator.Route(st) != navigator.Main {
		printNotSignedIn()
		return false, nil
	}
	return true, nil
}

func printNotSignedIn() {
	pterm.Println("🔒 You're not signed in yet!")
	pterm.Println("   Run 'washclub signin' or 'washclub signup' to get started.")
}

// reportAuthError explains a failed sign-in or sign-up.
func reportAuthError(a *app, action string, err error) {
	switch {
	case apperrors.KindOf(err) == apperrors.BackendFailed && a.cfg.Backend.Kind == "http":
		httperrors.Show(err, action, httperrors.ExtractHostFromURL(a.cfg.Backend.URL))
	case apperrors.KindOf(err) == apperrors.StoreWriteFailed:
		pterm.Printf("❌ Your session could not be saved while %s\n", action)
		pterm.Println("   Check that the session store is reachable and writable.")
	}
}

// printState shows what the session looks like now.
func printState(st session.State) {
	switch navigator.Route(st) {
	case navigator.Main:
		pterm.Println("✅ Signed in")
	case navigator.Auth:
		pterm.Println("🔒 Signed out")
	default:
		pterm.Println("⏳ " + st.Phase.String())
	}
}
