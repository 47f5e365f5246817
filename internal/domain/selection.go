package domain

import (
	"errors"
	"strings"
)

type SelectionKind string

const (
	SelectionLocation SelectionKind = "location"
	SelectionFavorite SelectionKind = "favorite"
)

// ErrUnparseableSelection is the distinguished "not a selection" case; callers
// that get it fall back to a neutral scope rather than failing the request.
var ErrUnparseableSelection = errors.New("unparseable selection token")

// Selection is what the picker state resolves to: a single location or a saved
// favorite. The wire form is "location:<id>" / "favorite:<id>".
type Selection struct {
	Kind SelectionKind
	ID   string
}

func ParseSelection(token string) (Selection, error) {
	kind, id, found := strings.Cut(token, ":")
	if !found || id == "" {
		return Selection{}, ErrUnparseableSelection
	}
	switch SelectionKind(kind) {
	case SelectionLocation, SelectionFavorite:
		return Selection{Kind: SelectionKind(kind), ID: id}, nil
	}
	return Selection{}, ErrUnparseableSelection
}

func (s Selection) Token() string {
	return string(s.Kind) + ":" + s.ID
}
