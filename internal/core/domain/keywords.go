package domain

import (
	"slices"
	"strings"
)

// CommandEffect is the set of effects requested by keywords found in revision logs.
type CommandEffect uint8

const (
	// EffectNone requests no change in behavior.
	EffectNone CommandEffect = 0
	// EffectSwitchToDevBuild forces the development build type for one iteration.
	EffectSwitchToDevBuild CommandEffect = 1 << iota
	// EffectSkipBuild settles the revision without building.
	EffectSkipBuild
)

// Has reports whether all bits of other are set in e.
func (e CommandEffect) Has(other CommandEffect) bool {
	return other != EffectNone && e&other == other
}

func (e CommandEffect) String() string {
	if e == EffectNone {
		return "none"
	}
	var parts []string
	if e.Has(EffectSwitchToDevBuild) {
		parts = append(parts, "dev-build")
	}
	if e.Has(EffectSkipBuild) {
		parts = append(parts, "skip-build")
	}
	return strings.Join(parts, "+")
}

// ScanLog returns every keyword literally contained in text, in keyword order.
// Matching is case-sensitive with no word boundaries; empty keywords never match.
func ScanLog(text string, keywords []string) []string {
	var found []string
	for _, kw := range keywords {
		if kw != "" && strings.Contains(text, kw) {
			found = append(found, kw)
		}
	}
	return found
}

// Keywords returns the configured keyword literals, or nil when keyword commands are disabled.
func (k KeywordConfig) Keywords() []string {
	if !k.Enabled {
		return nil
	}
	return slices.DeleteFunc([]string{k.MakeDevBuild, k.IgnoreBuild}, func(s string) bool { return s == "" })
}

// Effect maps matched keyword literals to the accumulated command effect.
func (k KeywordConfig) Effect(matches []string) CommandEffect {
	effect := EffectNone
	for _, m := range matches {
		switch m {
		case k.MakeDevBuild:
			effect |= EffectSwitchToDevBuild
		case k.IgnoreBuild:
			effect |= EffectSkipBuild
		}
	}
	return effect
}
