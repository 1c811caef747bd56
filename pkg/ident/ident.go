// Package ident generates item identifiers.
package ident

import (
	"strings"

	"github.com/google/uuid"
)

const prefix = "it_"

// New returns a fresh item id. Uniqueness is probabilistic; no collision
// check is performed against live ids.
func New() string {
	u := uuid.New()
	return prefix + strings.ReplaceAll(u.String(), "-", "")[:8]
}
