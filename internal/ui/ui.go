package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/AlecAivazis/survey/v2"
)

var (
	// ANSI Colors
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorCyan   = "\033[36m"
	ColorBold   = "\033[1m"
)

// Out receives everything printed by this package.
var Out io.Writer = os.Stdout

// DisableColor clears the ANSI color codes.
func DisableColor() {
	ColorReset, ColorRed, ColorGreen, ColorYellow, ColorCyan, ColorBold = "", "", "", "", "", ""
}

func PrintHeader(msg string) {
	fmt.Fprintf(Out, "\n%s%s%s\n", ColorBold, msg, ColorReset)
}

func PrintSuccess(label, detail string) {
	fmt.Fprintf(Out, "  %s✔%s %-15s %s%s\n", ColorGreen, ColorReset, label, ColorGreen, detail+ColorReset)
}

func PrintError(label, detail string) {
	fmt.Fprintf(Out, "  %s✘%s %-15s %s%s\n", ColorRed, ColorReset, label, ColorRed, detail+ColorReset)
}

func PrintWarning(label, detail string) {
	fmt.Fprintf(Out, "  %s!%s %-15s %s%s\n", ColorYellow, ColorReset, label, ColorYellow, detail+ColorReset)
}

// PrintDiff prints a unified diff with added lines in green and removed
// lines in red.
func PrintDiff(diff string) {
	for _, line := range strings.SplitAfter(diff, "\n") {
		if line == "" {
			continue
		}
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			fmt.Fprint(Out, ColorBold+strings.TrimSuffix(line, "\n")+ColorReset+"\n")
		case strings.HasPrefix(line, "+"):
			fmt.Fprint(Out, ColorGreen+strings.TrimSuffix(line, "\n")+ColorReset+"\n")
		case strings.HasPrefix(line, "-"):
			fmt.Fprint(Out, ColorRed+strings.TrimSuffix(line, "\n")+ColorReset+"\n")
		case strings.HasPrefix(line, "@@"):
			fmt.Fprint(Out, ColorCyan+strings.TrimSuffix(line, "\n")+ColorReset+"\n")
		default:
			fmt.Fprint(Out, line)
		}
	}
}

// Spinner represents a loading indicator
type Spinner struct {
	msg      string
	stopChan chan struct{}
	doneChan chan struct{}
	stopOnce sync.Once
}

// StartSpinner starts a new spinner with the given message
func StartSpinner(msg string) *Spinner {
	s := &Spinner{
		msg:      msg,
		stopChan: make(chan struct{}),
		doneChan: make(chan struct{}),
	}
	go s.run()
	return s
}

func (s *Spinner) run() {
	defer close(s.doneChan)
	chars := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
	i := 0
	for {
		select {
		case <-s.stopChan:
			return
		default:
			fmt.Fprintf(Out, "\r%s%s%s %s", ColorCyan, chars[i], ColorReset, s.msg)
			time.Sleep(100 * time.Millisecond)
			i = (i + 1) % len(chars)
		}
	}
}

// Stop stops the spinner and clears the line. Safe to call multiple times.
func (s *Spinner) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopChan)
	})
	<-s.doneChan // Wait for goroutine to finish
	// Clear line
	fmt.Fprintf(Out, "\r%s\r", strings.Repeat(" ", len(s.msg)+10))
}

// RunSpinner executes the given action while showing a spinner.
func RunSpinner(msg string, action func() error) error {
	s := StartSpinner(msg)
	defer s.Stop()
	return action()
}

// Prompt asks the user for input with a label and returns defaultValue when
// the answer is empty.
func Prompt(label string, defaultValue string, opts ...survey.AskOpt) (string, error) {
	answer := ""
	q := &survey.Input{Message: label, Default: defaultValue}
	if err := survey.AskOne(q, &answer, opts...); err != nil {
		return "", err
	}
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return defaultValue, nil
	}
	return answer, nil
}

// Select asks the user to pick one of options.
func Select(label string, options []string, defaultValue string, opts ...survey.AskOpt) (string, error) {
	answer := ""
	q := &survey.Select{Message: label, Options: options, Default: defaultValue}
	if err := survey.AskOne(q, &answer, opts...); err != nil {
		return "", err
	}
	return answer, nil
}

// Confirm asks a yes/no question.
func Confirm(label string, defaultValue bool, opts ...survey.AskOpt) (bool, error) {
	answer := defaultValue
	q := &survey.Confirm{Message: label, Default: defaultValue}
	if err := survey.AskOne(q, &answer, opts...); err != nil {
		return false, err
	}
	return answer, nil
}
