package models

import (
	"fmt"
	"net/url"
	"strings"
)

const (
	minNameLength = 1
	maxNameLength = 100
)

// ValidateName enforces the structural constraints on an item or section
// name: 1–100 characters.
func ValidateName(s string) error {
	if len(s) < minNameLength {
		return fmt.Errorf("name must not be empty")
	}
	if len(s) > maxNameLength {
		return fmt.Errorf("name must not exceed %d characters", maxNameLength)
	}
	return nil
}

// ValidateTarget enforces what counts as a navigation destination: an
// absolute URL with a host, a path starting with "/", or an in-page
// fragment like "#contact".
func ValidateTarget(s string) error {
	if s == "" {
		return fmt.Errorf("target must not be empty")
	}
	if strings.HasPrefix(s, "/") || strings.HasPrefix(s, "#") {
		return nil
	}
	u, err := url.Parse(s)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return fmt.Errorf("target %q is neither an absolute URL nor a path", s)
	}
	return nil
}
