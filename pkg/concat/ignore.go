package concat

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// IgnoreSet filters root-relative paths. A plain entry matches when it
// equals any path component; an entry containing glob metacharacters
// matches against the whole slash-separated path.
type IgnoreSet struct {
	names map[string]bool
	globs []string
}

// NewIgnoreSet builds an IgnoreSet from raw flag entries. Entries with
// invalid glob syntax are rejected.
func NewIgnoreSet(entries []string) (*IgnoreSet, error) {
	set := &IgnoreSet{names: make(map[string]bool)}
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		if strings.ContainsAny(entry, "*?[") {
			if !doublestar.ValidatePattern(entry) {
				return nil, fmt.Errorf("invalid ignore pattern %q", entry)
			}
			set.globs = append(set.globs, entry)
			continue
		}
		set.names[entry] = true
	}
	return set, nil
}

// MatchesPath reports whether the given root-relative path is ignored.
func (s *IgnoreSet) MatchesPath(relPath string) bool {
	relPath = filepath.ToSlash(relPath)

	for _, part := range strings.Split(relPath, "/") {
		if s.names[part] {
			return true
		}
	}

	for _, glob := range s.globs {
		// Pattern validity was checked at construction.
		if ok, _ := doublestar.Match(glob, relPath); ok {
			return true
		}
	}
	return false
}
