// Copyright (c) 2025 Restaurant AI
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"bufio"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"sync"
	"time"

	"restaurantai/cli/internal/api"
	apperrors "restaurantai/cli/internal/errors"
	"restaurantai/cli/internal/httperrors"
	"restaurantai/cli/internal/terminal"

	"github.com/mattn/go-runewidth"
	"github.com/pterm/pterm"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// check turns an unsuccessful call into a printed, user-facing error.
// action describes the call for network hints ("loading the dashboard"), and
// notFound is shown on 404. A 401 clears the stored token.
func check[T any](res api.Result[T], err error, action, notFound string) (*T, error) {
	if err == nil && res.OK() {
		return res.Data, nil
	}
	if err == nil {
		err = res.Err()
	}
	if apperrors.StatusOf(err) == http.StatusUnauthorized {
		if cerr := rt.client.Tokens().ClearAccessToken(); cerr != nil {
			rt.log.Debug("clear token failed", rt.log.Args("error", cerr.Error()))
		}
	}
	if apperrors.KindOf(err) == apperrors.Validation {
		return nil, err
	}
	return nil, shownError{httperrors.Present(err, action, rt.endpoint, notFound)}
}

// requireLogin fails early when no access token is stored.
func requireLogin() error {
	tok, err := rt.client.Tokens().AccessToken()
	if err != nil {
		return err
	}
	if tok == "" {
		fmt.Println("🔒 You need to be logged in for this.")
		fmt.Println("   Please run: restaurantai login")
		return shownError{apperrors.WithStatus(apperrors.HTTP, http.StatusUnauthorized, "not logged in")}
	}
	return nil
}

var stdin = bufio.NewReader(os.Stdin)

// readLine prints prompt and returns one trimmed line of input.
// With clear set, the prompt and the answer are removed from the terminal afterwards.
func readLine(prompt string, clear bool) (string, error) {
	fmt.Print(prompt)
	line, err := stdin.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	line = strings.TrimSpace(line)
	if clear && terminal.Interactive() {
		terminal.ClearPreviousLines(promptCells(prompt, line))
	}
	return line, nil
}

// promptCells is the terminal width taken by a prompt and its echoed answer.
func promptCells(prompt, answer string) int {
	return runewidth.StringWidth(pterm.RemoveColorFromString(prompt)) + runewidth.StringWidth(answer)
}

// openBrowser starts the platform's URL handler without waiting for it.
func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	if err := cmd.Start(); err != nil {
		rt.log.Debug("open browser failed", rt.log.Args("error", err.Error()))
	}
}

// startInlineSpinner animates frames before text on the current line until the
// returned stop function is called, which also clears the line.
func startInlineSpinner(w io.Writer, text string, frames []string, interval time.Duration) func() {
	if !terminal.Interactive() {
		return func() {}
	}
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
				fmt.Fprintf(w, "\r%*s\r", len(line), "")
				return
			case <-ticker.C:
				fmt.Fprintf(w, "\r%s %s", frames[i%len(frames)], text)
				i++
			}
		}
	}()
	var once sync.Once
	return func() {
		once.Do(func() {
			close(stop)
			wg.Wait()
		})
	}
}

// withSpinner runs fn while an inline spinner shows text.
func withSpinner[T any](text string, fn func() (T, error)) (T, error) {
	stop := startInlineSpinner(os.Stdout, text, spinnerFrames, 100*time.Millisecond)
	defer stop()
	return fn()
}
