package page

import "strings"

// Location is the page address whose fragment the buttons set.
type Location interface {
	SetHash(fragment string)
	// Hash returns the fragment with its leading '#', or "" when unset.
	Hash() string
}

// MemoryLocation keeps the fragment in process, for hosts without an address bar.
type MemoryLocation struct {
	hash string
}

func (l *MemoryLocation) SetHash(fragment string) {
	fragment = strings.TrimPrefix(fragment, "#")
	if fragment == "" {
		l.hash = ""
		return
	}
	l.hash = "#" + fragment
}

func (l *MemoryLocation) Hash() string {
	return l.hash
}
