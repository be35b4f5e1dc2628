package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/term"

	"thinkboard/internal/pages"
)

// terminalNotifier prints controller notifications as single lines.
type terminalNotifier struct {
	w io.Writer
}

func (n terminalNotifier) Notify(msg pages.Notification) {
	fmt.Fprintln(n.w, formatNotification(msg))
}

func formatNotification(msg pages.Notification) string {
	mark := "ok"
	if msg.Kind == pages.KindError {
		mark = "error"
	}
	if msg.Icon != "" {
		return fmt.Sprintf("[%s] %s %s", mark, msg.Icon, msg.Message)
	}
	return fmt.Sprintf("[%s] %s", mark, msg.Message)
}

// loggingNavigator ignores page changes; a command ends where the web
// page would navigate away.
type loggingNavigator struct{}

func (loggingNavigator) Navigate(path string) {
	slog.Debug("navigate", "path", path)
}

// promptConfirmer asks on the terminal unless the answer was given up
// front with --yes.
type promptConfirmer struct {
	assumeYes bool
	in        io.Reader
	out       io.Writer
	isTTY     func() bool
}

func newPromptConfirmer(assumeYes bool) promptConfirmer {
	return promptConfirmer{
		assumeYes: assumeYes,
		in:        os.Stdin,
		out:       os.Stderr,
		isTTY:     func() bool { return term.IsTerminal(int(os.Stdin.Fd())) },
	}
}

func (c promptConfirmer) Confirm(_ context.Context, prompt string) bool {
	if c.assumeYes {
		return true
	}
	ok, err := c.promptYesNo(prompt + " [y/N]: ")
	if err != nil {
		fmt.Fprintf(c.out, "%v; pass --yes to delete without a prompt\n", err)
		return false
	}
	return ok
}

func (c promptConfirmer) promptYesNo(prompt string) (bool, error) {
	if !c.isTTY() {
		return false, errors.New("stdin is not a terminal")
	}
	fmt.Fprint(c.out, prompt)
	reader := bufio.NewReader(c.in)
	answer, err := reader.ReadString('\n')
	if err != nil && answer == "" {
		return false, fmt.Errorf("read response: %w", err)
	}
	answer = strings.TrimSpace(strings.ToLower(answer))
	return answer == "y" || answer == "yes", nil
}
