package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderProgress_FillClamped(t *testing.T) {
	tests := []struct {
		name       string
		pct        float64
		width      int
		wantFilled int
		wantPct    string
	}{
		{"zero", 0.0, 10, 0, "0%"},
		{"half", 0.5, 10, 5, "50%"},
		{"full", 1.0, 10, 10, "100%"},
		{"overtime shows real percent but full bar", 1.5, 10, 10, "150%"},
		{"negative clamps to zero", -0.5, 10, 0, "0%"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RenderProgress(tt.pct, tt.width)
			assert.Equal(t, tt.wantFilled, strings.Count(got, filledBlock))
			assert.Equal(t, tt.width-tt.wantFilled, strings.Count(got, emptyBlock))
			assert.Contains(t, got, tt.wantPct)
		})
	}
}

func TestRenderProgress_MinWidth(t *testing.T) {
	got := RenderProgress(0.5, 1)
	// Width below 2 is bumped to 2.
	assert.Equal(t, 2, strings.Count(got, filledBlock)+strings.Count(got, emptyBlock))
}
