package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/carlog/internal/client/models"
	"golang.org/x/term"
)

// readPassword and isTerminal are test seams for golang.org/x/term.
var (
	readPassword = term.ReadPassword
	isTerminal   = term.IsTerminal
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
)

// GetSimpleText prints a prompt to w and reads a single line of input from reader.
// The trailing newline is trimmed. If EOF occurs after some input was read,
// the partial line is returned.
//
// Example prompt format:
//
//	Prompt text
//	> _
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetPassword reads a password without echo when stdin is a terminal, and
// as a plain line from reader otherwise (scripts, tests).
//
// The returned byte slice should be wiped by the caller when no longer needed.
func GetPassword(reader *bufio.Reader, w io.Writer) ([]byte, error) {
	fd := int(os.Stdin.Fd())
	if !isTerminal(fd) {
		line, err := GetSimpleText(reader, "Enter password", w)
		if err != nil {
			return nil, err
		}
		return []byte(line), nil
	}

	if _, err := fmt.Fprint(w, "Enter password: "); err != nil {
		return nil, err
	}
	pw, err := readPassword(fd)
	fmt.Fprintln(w)
	if err != nil {
		return nil, err
	}
	return pw, nil
}

func (a *App) ask(prompt string) (string, error) {
	return getSimpleText(a.reader, prompt, a.out)
}

// askRequired rejects an empty answer.
func (a *App) askRequired(prompt, field string) (string, error) {
	s, err := a.ask(prompt)
	if err != nil {
		return "", err
	}
	if s == "" {
		return "", fmt.Errorf("%w: %s is required", models.ErrValidation, field)
	}
	return s, nil
}

// askFloat parses a number; an empty answer yields def.
func (a *App) askFloat(prompt, field string, def float64) (float64, error) {
	s, err := a.ask(prompt)
	if err != nil || s == "" {
		return def, err
	}
	f, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be a number", models.ErrValidation, field)
	}
	return f, nil
}

func (a *App) askInt(prompt, field string, def int) (int, error) {
	s, err := a.ask(prompt)
	if err != nil || s == "" {
		return def, err
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be a whole number", models.ErrValidation, field)
	}
	return n, nil
}

// askDate accepts YYYY-MM-DD; an empty answer means today.
func (a *App) askDate(prompt, field string) (models.Date, error) {
	s, err := a.ask(prompt + " (YYYY-MM-DD, empty for today)")
	if err != nil {
		return models.Date{}, err
	}
	if s == "" {
		y, m, d := a.now().Date()
		return models.NewDate(time.Date(y, m, d, 0, 0, 0, 0, time.UTC)), nil
	}
	dt, err := models.ParseDate(s)
	if err != nil {
		return models.Date{}, fmt.Errorf("%w: %s: %v", models.ErrValidation, field, err)
	}
	return dt, nil
}

func (a *App) confirm(prompt string) (bool, error) {
	s, err := a.ask(prompt + " [y/N]")
	if err != nil {
		return false, err
	}
	s = strings.ToLower(s)
	return s == "y" || s == "yes", nil
}

// argOrAsk returns args[0] when present, else prompts for it.
func (a *App) argOrAsk(args []string, prompt, field string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	return a.askRequired(prompt, field)
}
