// Copyright (c) 2025 Elite Express
// Licensed under the MIT License. See LICENSE file in the project root for details.

package navigator

import (
	"fmt"
	"sync"
	"time"

	"atomicgo.dev/cursor"
	"github.com/pterm/pterm"
)

// Braille spinner frames similar to docker CLI.
var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// TerminalRenderer shows a spinner while Loading and, when ShowMenus is set,
// the stack's menu once the session settles.
type TerminalRenderer struct {
	LoadingText string
	ShowMenus   bool

	mu   sync.Mutex
	area *pterm.AreaPrinter
	stop chan struct{}
	wg   sync.WaitGroup
}

// NewTerminalRenderer returns a renderer with the default loading text.
func NewTerminalRenderer(showMenus bool) *TerminalRenderer {
	return &TerminalRenderer{LoadingText: "Loading", ShowMenus: showMenus}
}

// Render implements Renderer.
func (t *TerminalRenderer) Render(s Stack) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if s == Loading {
		t.startSpinner()
		return
	}
	t.stopSpinner()
	if t.ShowMenus {
		printMenu(s)
	}
}

// Close removes a running spinner and restores the cursor.
func (t *TerminalRenderer) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopSpinner()
}

func (t *TerminalRenderer) startSpinner() {
	if t.area != nil {
		return
	}
	cursor.Hide()
	area, err := pterm.DefaultArea.WithRemoveWhenDone(true).Start()
	if err != nil {
		cursor.Show()
		return
	}
	t.area = area
	t.stop = make(chan struct{})
	t.wg.Add(1)
	go func(stop <-chan struct{}) {
		defer t.wg.Done()
		tick := time.NewTicker(120 * time.Millisecond)
		defer tick.Stop()
		i := 0
		area.Update(fmt.Sprintf("%s %s", spinnerFrames[0], t.LoadingText))
		for {
			select {
			case <-tick.C:
				i++
				area.Update(fmt.Sprintf("%s %s", spinnerFrames[i%len(spinnerFrames)], t.LoadingText))
			case <-stop:
				return
			}
		}
	}(t.stop)
}

func (t *TerminalRenderer) stopSpinner() {
	if t.area == nil {
		return
	}
	close(t.stop)
	t.wg.Wait()
	_ = t.area.Stop()
	t.area = nil
	cursor.Show()
}

func printMenu(s Stack) {
	title := "Welcome to Elite Express"
	if s == Main {
		title = "Home"
	}
	pterm.Println(pterm.NewStyle(pterm.FgLightCyan, pterm.Bold).Sprint(title))
	for _, line := range MenuLines(MenuFor(s)) {
		pterm.Println(line)
	}
}

// MenuLines formats menu entries one per line, showing the command that
// opens each.
func MenuLines(items []MenuItem) []string {
	lines := make([]string, 0, len(items))
	for _, it := range items {
		cmd := pterm.NewStyle(pterm.FgGray).Sprint("coming soon")
		if it.Command != "" {
			cmd = pterm.NewStyle(pterm.FgGreen).Sprint("washclub " + it.Command)
		}
		lines = append(lines, fmt.Sprintf("  • %-32s %s", it.Label, cmd))
	}
	return lines
}
