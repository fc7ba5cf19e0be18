package transition

import (
	"fmt"
	"sort"
	"strings"
)

var strategies = map[string]Strategy{
	"none":       Base{},
	"fade":       Fade{},
	"slide":      Slide{},
	"slide-down": SlideDown{},
}

// Lookup returns the strategy registered under name. An empty name selects Fade.
func Lookup(name string) (Strategy, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return Fade{}, nil
	}
	s, ok := strategies[key]
	if !ok {
		return nil, fmt.Errorf("unknown transition %q (expected one of %s)", name, strings.Join(Names(), ", "))
	}
	return s, nil
}

// Names lists the registered strategy names in sorted order.
func Names() []string {
	names := make([]string, 0, len(strategies))
	for name := range strategies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NameOf returns the registered name of s, or "custom" for unregistered strategies.
func NameOf(s Strategy) string {
	for name, candidate := range strategies {
		if candidate == s {
			return name
		}
	}
	return "custom"
}
