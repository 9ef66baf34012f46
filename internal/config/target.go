package config

import (
	"fmt"
	"strings"
)

// Target names a deployment target.
type Target string

const (
	Development Target = "development"
	Production  Target = "production"
)

// ParseTarget converts s to a [Target]. It accepts the full names and the
// "dev" / "prod" short forms, case-insensitively.
func ParseTarget(s string) (Target, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "development", "dev":
		return Development, nil
	case "production", "prod":
		return Production, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownTarget, s)
	}
}

func (t Target) String() string {
	return string(t)
}
