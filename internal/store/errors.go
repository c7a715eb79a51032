package store

import (
	"errors"

	"github.com/roach88/pns/internal/names"
)

// ErrEmptyName is returned when a subject has no member left after
// canonicalization.
var ErrEmptyName = names.ErrEmptyName

// ErrUnknownLanguage is returned by ArticulateHTML for a language without a
// rule table.
var ErrUnknownLanguage = errors.New("store: unknown language")
