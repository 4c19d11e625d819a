package domain_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/revwatch/internal/core/domain"
)

func TestNewRevisionRange(t *testing.T) {
	tests := []struct {
		name      string
		watermark int
		current   int
		maxLogs   int
		want      []int
	}{
		{name: "within cap", watermark: 100, current: 103, maxLogs: 10, want: []int{101, 102, 103}},
		{name: "capped", watermark: 100, current: 120, maxLogs: 3, want: []int{118, 119, 120}},
		{name: "single revision", watermark: 41, current: 42, maxLogs: 10, want: []int{42}},
		{name: "cap of one", watermark: 1, current: 9, maxLogs: 1, want: []int{9}},
		{name: "zero cap", watermark: 100, current: 103, maxLogs: 0, want: nil},
		{name: "not ahead", watermark: 103, current: 103, maxLogs: 10, want: nil},
		{name: "behind", watermark: 105, current: 103, maxLogs: 10, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := domain.NewRevisionRange(tt.watermark, tt.current, tt.maxLogs)

			assert.Equal(t, tt.want, slices.Collect(r.Revisions()))
			assert.Equal(t, len(tt.want), r.Len())
			assert.Equal(t, len(tt.want) == 0, r.Empty())
			if !r.Empty() {
				assert.LessOrEqual(t, r.Start, r.End)
				assert.LessOrEqual(t, r.Len(), tt.maxLogs)
				assert.Equal(t, tt.current, r.End)
				assert.Greater(t, r.Start, tt.watermark)
			}
		})
	}
}

func TestRevisionRange_String(t *testing.T) {
	assert.Equal(t, "(none)", domain.RevisionRange{}.String())
	assert.Equal(t, "r101..r103", domain.NewRevisionRange(100, 103, 10).String())
}

func TestRevisionRange_RevisionsStopsEarly(t *testing.T) {
	var seen []int
	for rev := range domain.NewRevisionRange(0, 10, 10).Revisions() {
		seen = append(seen, rev)
		if rev == 3 {
			break
		}
	}
	assert.Equal(t, []int{1, 2, 3}, seen)
}

func TestBuildName(t *testing.T) {
	assert.Equal(t, "[103] MyGame (Shipping)", domain.BuildName(103, "MyGame", "Shipping"))
}
