package release

import (
	"fmt"
	"strings"
)

type Environment string

const (
	Production  Environment = "production"
	Development Environment = "development"
	Test        Environment = "test"
)

// EnvironmentChoices are the short names offered at the prompt.
var EnvironmentChoices = []string{"prod", "dev", "test"}

// ParseEnvironment accepts prod|production, dev|development and test.
func ParseEnvironment(s string) (Environment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "prod", "production":
		return Production, nil
	case "dev", "development":
		return Development, nil
	case "test":
		return Test, nil
	case "":
		return "", ErrMissingEnvironment
	default:
		return "", fmt.Errorf("%w %q: must be one of prod, dev, test", ErrUnknownEnvironment, s)
	}
}

func (e Environment) String() string { return string(e) }

// BuildValue is what the client bundle sees as its runtime environment.
func (e Environment) BuildValue() string {
	if e == Production {
		return "production"
	}
	return "development"
}
