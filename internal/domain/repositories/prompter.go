package repositories

import (
	"github.com/rios0rios0/orgexport/internal/domain/entities"
)

// Prompter gathers interactive input from the operator. Invalid input is
// handled by re-prompting inside the implementation and never surfaces as an
// error; end-of-input on the selection menu means the operator cancelled.
type Prompter interface {
	// Credentials asks for the GitHub username and personal access token.
	Credentials() (entities.Credential, error)

	// TargetDirectory asks for the export directory, re-prompting while the
	// given path exists and is not empty, and creating it when absent.
	TargetDirectory() (string, error)

	// Choose presents a numbered menu and returns the zero-based index of
	// the picked item. The second result is false when the operator
	// cancelled with end-of-input.
	Choose(title string, items []entities.MenuItem) (int, bool)
}
