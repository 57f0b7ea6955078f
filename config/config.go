/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package config

import (
	stderrors "errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/suparena/contactstore/contactmodels"
	"github.com/suparena/contactstore/errors"
)

// Backend names accepted in AddressBook.Backend.
const (
	BackendMemory   = "memory"
	BackendVCF      = "vcf"
	BackendSQLite   = "sqlite"
	BackendDynamoDB = "dynamodb"
)

// Logging formats accepted in Logging.Format.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config is the root of the configuration file.
type Config struct {
	Logging      Logging       `yaml:"logging"`
	AddressBooks []AddressBook `yaml:"addressbooks"`
}

// Logging selects the log level and output format.
type Logging struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// AddressBook declares one registered address book and the backend that
// stores its contacts. Which of the location fields apply depends on Backend.
type AddressBook struct {
	Key         string   `yaml:"key"`
	Name        string   `yaml:"name"`
	Backend     string   `yaml:"backend"`
	Permissions []string `yaml:"permissions"`

	// vcf
	Path string `yaml:"path,omitempty"`
	// sqlite, e.g. "sqlite:./contacts.db"
	DSN string `yaml:"dsn,omitempty"`
	// dynamodb
	Table    string `yaml:"table,omitempty"`
	Region   string `yaml:"region,omitempty"`
	Endpoint string `yaml:"endpoint,omitempty"`
}

// Load reads the configuration at path. Before the file is expanded the
// given env files are loaded; with none given, a .env next to the
// configuration file is loaded when present. Variables already set in the
// process environment win over env files.
func Load(path string, envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{filepath.Join(filepath.Dir(path), ".env")}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !stderrors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env file %s: %w", f, err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse expands ${VAR} references in data, decodes it, fills defaults and
// validates the result.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal([]byte(expandEnv(string(data))), &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal YAML: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

var envRef = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// expandEnv replaces ${VAR} references only; a bare $ is left alone.
func expandEnv(s string) string {
	return envRef.ReplaceAllStringFunc(s, func(ref string) string {
		return os.Getenv(ref[2 : len(ref)-1])
	})
}

func (c *Config) applyDefaults() {
	if c.Logging.Level == "" {
		c.Logging.Level = zerolog.LevelInfoValue
	}
	if c.Logging.Format == "" {
		c.Logging.Format = FormatConsole
	}
	for i := range c.AddressBooks {
		ab := &c.AddressBooks[i]
		if ab.Name == "" {
			ab.Name = ab.Key
		}
		if ab.Backend == "" {
			ab.Backend = BackendMemory
		}
		if len(ab.Permissions) == 0 {
			ab.Permissions = []string{"all"}
		}
	}
}

// Validate reports the first problem found in c as a *errors.ValidationError.
func (c *Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.Logging.Level); err != nil {
		return errors.NewValidationError("logging.level", err.Error())
	}
	switch c.Logging.Format {
	case FormatConsole, FormatJSON:
	default:
		return errors.NewValidationError("logging.format", fmt.Sprintf("unknown format %q", c.Logging.Format))
	}

	seen := make(map[string]bool, len(c.AddressBooks))
	for i, ab := range c.AddressBooks {
		field := fmt.Sprintf("addressbooks[%d]", i)
		if strings.TrimSpace(ab.Key) == "" {
			return errors.NewValidationError(field+".key", "key is required")
		}
		if seen[ab.Key] {
			return errors.NewValidationError(field+".key", fmt.Sprintf("duplicate key %q", ab.Key))
		}
		seen[ab.Key] = true

		if _, err := ab.PermissionMask(); err != nil {
			return errors.NewValidationError(field+".permissions", err.Error())
		}

		switch ab.Backend {
		case BackendMemory:
		case BackendVCF:
			if ab.Path == "" {
				return errors.NewValidationError(field+".path", "path is required for the vcf backend")
			}
		case BackendSQLite:
			if ab.DSN == "" {
				return errors.NewValidationError(field+".dsn", "dsn is required for the sqlite backend")
			}
		case BackendDynamoDB:
			if ab.Table == "" {
				return errors.NewValidationError(field+".table", "table is required for the dynamodb backend")
			}
		default:
			return errors.NewValidationError(field+".backend", fmt.Sprintf("unknown backend %q", ab.Backend))
		}
	}
	return nil
}

// PermissionMask folds the configured permission names into a bitmask.
func (ab AddressBook) PermissionMask() (contactmodels.Permission, error) {
	return contactmodels.ParsePermissions(ab.Permissions)
}

// NewLogger builds a zerolog logger writing to w at the configured level.
func (l Logging) NewLogger(w io.Writer) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(l.Level)
	if err != nil {
		return zerolog.Nop(), errors.NewValidationError("logging.level", err.Error())
	}
	switch l.Format {
	case FormatJSON:
	case FormatConsole, "":
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	default:
		return zerolog.Nop(), errors.NewValidationError("logging.format", fmt.Sprintf("unknown format %q", l.Format))
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
}
