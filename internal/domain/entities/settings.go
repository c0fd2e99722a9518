package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// CloneStrategyGit shells out to the git binary on PATH.
	CloneStrategyGit = "git"
	// CloneStrategyBuiltin clones with the embedded go-git implementation.
	CloneStrategyBuiltin = "builtin"

	CloneProtocolSSH   = "ssh"
	CloneProtocolHTTPS = "https"

	defaultBaseURL = "https://api.github.com"
	defaultPerPage = 100
)

// Settings is the optional configuration for orgexport. Every field has a
// working default, so the tool runs with no config file present.
type Settings struct {
	API   APISettings   `yaml:"api"`
	Clone CloneSettings `yaml:"clone"`
}

// APISettings configures the GitHub API client.
type APISettings struct {
	BaseURL string `yaml:"base_url"`
	PerPage int    `yaml:"per_page"`
}

// CloneSettings configures how repositories are cloned.
type CloneSettings struct {
	Strategy string `yaml:"strategy"` // "git" or "builtin"
	Protocol string `yaml:"protocol"` // "ssh" or "https"
}

// DefaultSettings returns the settings used when no config file exists.
func DefaultSettings() *Settings {
	return &Settings{
		API: APISettings{
			BaseURL: defaultBaseURL,
			PerPage: defaultPerPage,
		},
		Clone: CloneSettings{
			Strategy: CloneStrategyGit,
			Protocol: CloneProtocolSSH,
		},
	}
}

// NewSettings reads and validates a settings file. Fields omitted from the
// file keep their defaults.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	settings := DefaultSettings()
	if unmarshalErr := yaml.Unmarshal(data, settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file %q: %w", path, unmarshalErr)
	}

	if validateErr := settings.validate(); validateErr != nil {
		return nil, validateErr
	}

	return settings, nil
}

func (s *Settings) validate() error {
	if s.API.BaseURL == "" {
		return errors.New("api.base_url must not be empty")
	}
	if s.API.PerPage < 1 {
		return fmt.Errorf("api.per_page must be positive, got %d", s.API.PerPage)
	}
	if s.Clone.Strategy != CloneStrategyGit && s.Clone.Strategy != CloneStrategyBuiltin {
		return fmt.Errorf(
			"invalid clone.strategy %q (expected %q or %q)",
			s.Clone.Strategy, CloneStrategyGit, CloneStrategyBuiltin,
		)
	}
	if s.Clone.Protocol != CloneProtocolSSH && s.Clone.Protocol != CloneProtocolHTTPS {
		return fmt.Errorf(
			"invalid clone.protocol %q (expected %q or %q)",
			s.Clone.Protocol, CloneProtocolSSH, CloneProtocolHTTPS,
		)
	}
	return nil
}

// FindConfigFile searches for a settings file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{"."}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".orgexport.yaml",
		".orgexport.yml",
		"orgexport.yaml",
		"orgexport.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// LoadDefaultSettings loads settings from the first file found in the
// standard locations, or returns the defaults when there is none.
func LoadDefaultSettings() (*Settings, error) {
	path, err := FindConfigFile()
	if err != nil {
		return DefaultSettings(), nil
	}
	return NewSettings(path)
}
