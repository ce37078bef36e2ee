// Package stopwords provides named stopword lexicons and ad-hoc sets.
// The embedded lists are parsed once at first use and cached; lookups
// afterwards are read-only.
package stopwords

import (
	"bufio"
	"bytes"
	"embed"
	"errors"
	"fmt"
	"strings"
	"sync"
)

//go:embed lists/snowball.txt lists/smart.txt
var lists embed.FS

// ErrUnknownSource is returned for stopword source identifiers that do
// not name an embedded lexicon.
var ErrUnknownSource = errors.New("stopwords: unknown source")

// Sources returns the available lexicon identifiers.
func Sources() []string { return []string{"smart", "snowball"} }

var (
	cacheMu sync.Mutex
	cache   = map[string]map[string]struct{}{}
)

// Load returns the named lexicon as a set. The identifier is matched
// case-insensitively; an unrecognized identifier is a configuration
// error for the caller.
func Load(source string) (map[string]struct{}, error) {
	name := strings.ToLower(strings.TrimSpace(source))
	switch name {
	case "smart", "snowball":
	default:
		return nil, fmt.Errorf("%w: %q (have %s)", ErrUnknownSource, source, strings.Join(Sources(), ", "))
	}

	cacheMu.Lock()
	defer cacheMu.Unlock()
	if set, ok := cache[name]; ok {
		return set, nil
	}

	data, err := lists.ReadFile("lists/" + name + ".txt")
	if err != nil {
		return nil, fmt.Errorf("stopwords: read embedded list %q: %w", name, err)
	}
	set := make(map[string]struct{})
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		w := strings.TrimSpace(sc.Text())
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		set[w] = struct{}{}
	}
	cache[name] = set
	return set, nil
}

// Set builds a stopword set from an explicit word list.
func Set(words []string) map[string]struct{} {
	if len(words) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// Merge combines sets without modifying its inputs.
func Merge(sets ...map[string]struct{}) map[string]struct{} {
	var out map[string]struct{}
	for _, s := range sets {
		if len(s) == 0 {
			continue
		}
		if out == nil {
			out = make(map[string]struct{}, len(s))
		}
		for w := range s {
			out[w] = struct{}{}
		}
	}
	return out
}
