package domain_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/revwatch/internal/core/domain"
)

var keywordConfig = domain.KeywordConfig{
	Enabled:      true,
	MakeDevBuild: "#devbuild",
	IgnoreBuild:  "#ignorebuild",
}

func TestScanLog(t *testing.T) {
	keywords := []string{"#devbuild", "#ignorebuild"}

	tests := []struct {
		name string
		text string
		want []string
	}{
		{name: "no keyword", text: "Fix collision on stairs", want: nil},
		{name: "single keyword", text: "Profile GPU #devbuild", want: []string{"#devbuild"}},
		{name: "both keywords", text: "#ignorebuild WIP\n#devbuild", want: []string{"#devbuild", "#ignorebuild"}},
		{name: "inside a word", text: "see issue#devbuilds", want: []string{"#devbuild"}},
		{name: "case sensitive", text: "#DevBuild", want: nil},
		{name: "empty text", text: "", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.ScanLog(tt.text, keywords))
		})
	}
}

func TestScanLog_EmptyKeywordNeverMatches(t *testing.T) {
	assert.Empty(t, domain.ScanLog("anything at all", []string{""}))
}

func TestScanLog_ConcatenationIsUnionOfScans(t *testing.T) {
	keywords := keywordConfig.Keywords()
	logs := []string{"first #devbuild", "second", "third #ignorebuild"}

	effect := domain.EffectNone
	for _, l := range logs {
		effect |= keywordConfig.Effect(domain.ScanLog(l, keywords))
	}
	joined := keywordConfig.Effect(domain.ScanLog(strings.Join(logs, "\n"), keywords))

	assert.Equal(t, effect, joined)
}

func TestKeywordConfig_Keywords(t *testing.T) {
	assert.Equal(t, []string{"#devbuild", "#ignorebuild"}, keywordConfig.Keywords())

	disabled := keywordConfig
	disabled.Enabled = false
	assert.Nil(t, disabled.Keywords())

	partial := domain.KeywordConfig{Enabled: true, IgnoreBuild: "#skip"}
	assert.Equal(t, []string{"#skip"}, partial.Keywords())
}

func TestKeywordConfig_Effect(t *testing.T) {
	tests := []struct {
		name    string
		matches []string
		want    domain.CommandEffect
	}{
		{name: "none", matches: nil, want: domain.EffectNone},
		{name: "dev build", matches: []string{"#devbuild"}, want: domain.EffectSwitchToDevBuild},
		{name: "skip", matches: []string{"#ignorebuild"}, want: domain.EffectSkipBuild},
		{
			name:    "both",
			matches: []string{"#devbuild", "#ignorebuild"},
			want:    domain.EffectSwitchToDevBuild | domain.EffectSkipBuild,
		},
		{name: "repeated", matches: []string{"#devbuild", "#devbuild"}, want: domain.EffectSwitchToDevBuild},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, keywordConfig.Effect(tt.matches))
		})
	}
}

func TestCommandEffect(t *testing.T) {
	both := domain.EffectSwitchToDevBuild | domain.EffectSkipBuild

	assert.True(t, both.Has(domain.EffectSkipBuild))
	assert.True(t, both.Has(domain.EffectSwitchToDevBuild))
	assert.False(t, domain.EffectSkipBuild.Has(domain.EffectSwitchToDevBuild))
	assert.False(t, both.Has(domain.EffectNone))

	assert.Equal(t, "none", domain.EffectNone.String())
	assert.Equal(t, "skip-build", domain.EffectSkipBuild.String())
	assert.Equal(t, "dev-build+skip-build", both.String())
}
