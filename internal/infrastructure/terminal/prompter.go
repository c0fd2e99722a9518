// Package terminal implements the interactive prompts: credentials, target
// directory, and the numbered selection menu.
package terminal

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/rios0rios0/orgexport/internal/domain/entities"
)

// Prompter implements repositories.Prompter over a reader/writer pair,
// stdin/stdout in production.
type Prompter struct {
	in          *bufio.Reader
	out         io.Writer
	interactive bool
}

// NewPrompter creates a prompter bound to stdin/stdout.
func NewPrompter() *Prompter {
	return &Prompter{
		in:          bufio.NewReader(os.Stdin),
		out:         os.Stdout,
		interactive: term.IsTerminal(int(os.Stdin.Fd())),
	}
}

// newPrompterWithIO builds a prompter over arbitrary streams, for tests.
func newPrompterWithIO(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Credentials asks for the GitHub username and personal access token. The
// token is read without echo when stdin is a terminal.
func (it *Prompter) Credentials() (entities.Credential, error) {
	fmt.Fprintln(it.out, "Generate a personal access token at https://github.com/settings/tokens")

	username, err := it.readLine("GitHub username: ")
	if err != nil {
		return entities.Credential{}, fmt.Errorf("failed to read username: %w", err)
	}

	token, err := it.readSecret("Personal access token: ")
	if err != nil {
		return entities.Credential{}, fmt.Errorf("failed to read token: %w", err)
	}

	return entities.Credential{Username: username, Token: token}, nil
}

// TargetDirectory asks for the export directory, re-prompting while the
// given path exists and is not empty, and creating it when absent.
func (it *Prompter) TargetDirectory() (string, error) {
	for {
		dir, err := it.readLine("Directory to export to: ")
		if err != nil {
			return "", fmt.Errorf("failed to read directory: %w", err)
		}
		if dir == "" {
			continue
		}

		nonEmpty, checkErr := isNonEmptyDir(dir)
		if checkErr != nil {
			return "", checkErr
		}
		if nonEmpty {
			fmt.Fprintln(it.out, "Directory already exists and is not empty.")
			continue
		}

		if mkdirErr := os.MkdirAll(dir, 0o755); mkdirErr != nil {
			return "", fmt.Errorf("failed to create directory %q: %w", dir, mkdirErr)
		}

		return dir, nil
	}
}

// Choose presents a 1-based numbered menu and keeps prompting until a valid
// choice is entered. End-of-input means the operator cancelled.
func (it *Prompter) Choose(title string, items []entities.MenuItem) (int, bool) {
	fmt.Fprintln(it.out, title)
	for i, item := range items {
		fmt.Fprintf(it.out, "%d. %s\n", i+1, item.Label())
	}

	for {
		line, err := it.readLine("Choice -> ")
		if err != nil {
			return 0, false
		}

		number, convErr := strconv.Atoi(line)
		if convErr != nil {
			fmt.Fprintln(it.out, "Please enter a number")
			continue
		}
		if number < 1 || number > len(items) {
			fmt.Fprintf(it.out, "Enter a number between 1 and %d\n", len(items))
			continue
		}

		return number - 1, true
	}
}

// readLine prints the prompt and reads one trimmed line. A final line
// without a trailing newline still counts.
func (it *Prompter) readLine(prompt string) (string, error) {
	fmt.Fprint(it.out, prompt)

	line, err := it.in.ReadString('\n')
	if err != nil {
		if err == io.EOF && strings.TrimSpace(line) != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}

	return strings.TrimSpace(line), nil
}

// readSecret reads without echo on a real terminal and falls back to a plain
// line read otherwise.
func (it *Prompter) readSecret(prompt string) (string, error) {
	if !it.interactive {
		return it.readLine(prompt)
	}

	fmt.Fprint(it.out, prompt)
	secret, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(it.out)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(string(secret)), nil
}

func isNonEmptyDir(path string) (bool, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to inspect directory %q: %w", path, err)
	}
	return len(entries) > 0, nil
}
