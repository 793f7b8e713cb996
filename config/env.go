package config

import (
	"os"
	"strings"
)

// Environment selects where configuration is read from
type Environment string

const (
	Development Environment = "development"
	Test        Environment = "test"
	CI          Environment = "ci"
	Production  Environment = "production"
)

// ParseEnvironment maps an ENV value onto an Environment. Unknown and empty
// values select Development.
func ParseEnvironment(value string) Environment {
	switch env := Environment(strings.ToLower(strings.TrimSpace(value))); env {
	case Production, Test, CI:
		return env
	case "prod":
		return Production
	default:
		return Development
	}
}

// GetEnvironment reports the current environment. CI=true wins over ENV.
func GetEnvironment() Environment {
	if os.Getenv("CI") == "true" {
		return CI
	}
	return ParseEnvironment(os.Getenv("ENV"))
}

// UsesSecrets reports whether configuration comes from secret files
func (e Environment) UsesSecrets() bool {
	return e != CI
}
