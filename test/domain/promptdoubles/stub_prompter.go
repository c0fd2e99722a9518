//go:build integration || unit || test

// Package promptdoubles provides a scripted stand-in for the interactive
// prompter.
package promptdoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/orgexport/internal/domain/entities"
	"github.com/rios0rios0/orgexport/internal/domain/repositories"
)

// StubPrompter implements repositories.Prompter with canned answers.
type StubPrompter struct {
	Cred      entities.Credential
	CredErr   error
	CredCalls int

	Dir      string
	DirErr   error
	DirCalls int

	ChooseIndex  int
	ChooseOK     bool
	ChooseCalls  int
	OfferedItems [][]entities.MenuItem
}

var _ repositories.Prompter = (*StubPrompter)(nil)

func (s *StubPrompter) Credentials() (entities.Credential, error) {
	s.CredCalls++
	return s.Cred, s.CredErr
}

func (s *StubPrompter) TargetDirectory() (string, error) {
	s.DirCalls++
	return s.Dir, s.DirErr
}

func (s *StubPrompter) Choose(_ string, items []entities.MenuItem) (int, bool) {
	s.ChooseCalls++
	s.OfferedItems = append(s.OfferedItems, items)
	return s.ChooseIndex, s.ChooseOK
}
