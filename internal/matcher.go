package internal

import (
	"strings"
)

// Pattern - fast interface for line match.
type Pattern interface {
	Match(string) bool
	Desc() string // for logs
}

// PlainPattern is a substring containment check.
// For insensitive patterns s is stored lowercased.
type PlainPattern struct {
	s           string
	insensitive bool
}

func NewPlainPattern(s string, insensitive bool) *PlainPattern {
	if insensitive {
		s = strings.ToLower(s)
	}
	return &PlainPattern{s: s, insensitive: insensitive}
}

func (p *PlainPattern) Match(s string) bool {
	if p.insensitive {
		return strings.Contains(strings.ToLower(s), p.s)
	}
	return strings.Contains(s, p.s)
}

func (p *PlainPattern) Desc() string {
	if p.insensitive {
		return "plain:i:" + p.s
	}
	return p.s
}

// invertedPattern selects the lines its inner pattern rejects (-v).
type invertedPattern struct{ inner Pattern }

func (p invertedPattern) Match(s string) bool { return !p.inner.Match(s) }
func (p invertedPattern) Desc() string        { return "not:" + p.inner.Desc() }

// PatternFor builds the line predicate described by cfg.
func PatternFor(cfg Config) Pattern {
	var p Pattern = NewPlainPattern(cfg.Pattern, cfg.IgnoreCase)
	if cfg.Reversed {
		p = invertedPattern{inner: p}
	}
	return p
}
