package analysis

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"hotelops-backend/internal/domain"
)

type stubGenerator struct {
	text string
	err  error
}

func (g *stubGenerator) GenerateContent(_ context.Context, _ string) (string, error) {
	return g.text, g.err
}

func testSnapshot() domain.ComprehensiveSnapshot {
	return domain.ComprehensiveSnapshot{
		Financial: domain.FinancialSnapshot{Revenue: 150000, Expense: 90000, OccupancyRate: 72},
	}
}

func TestRemoteAnalyzer_ValidResponse(t *testing.T) {
	gen := &stubGenerator{text: `{"score": 78, "forecast": "Looking solid.", "recommendations": ["Keep it up"]}`}
	analyzer := NewRemoteAnalyzer(gen, NewFallbackAnalyzer())

	r, err := analyzer.Analyze(context.Background(), testSnapshot())
	assert.NoError(t, err)
	assert.Equal(t, 78, r.Score)
	assert.Equal(t, "Looking solid.", r.Forecast)
	assert.Equal(t, []string{"Keep it up"}, r.Recommendations)
}

func TestRemoteAnalyzer_FencedResponse(t *testing.T) {
	gen := &stubGenerator{text: "```json\n{\"score\": 64, \"forecast\": \"ok\", \"recommendations\": [\"a\"]}\n```"}
	analyzer := NewRemoteAnalyzer(gen, NewFallbackAnalyzer())

	r, err := analyzer.Analyze(context.Background(), testSnapshot())
	assert.NoError(t, err)
	assert.Equal(t, 64, r.Score)
}

func TestRemoteAnalyzer_CaseInsensitiveFields(t *testing.T) {
	gen := &stubGenerator{text: `{"Score": 55, "Forecast": "fine", "Recommendations": ["b"]}`}
	analyzer := NewRemoteAnalyzer(gen, NewFallbackAnalyzer())

	r, err := analyzer.Analyze(context.Background(), testSnapshot())
	assert.NoError(t, err)
	assert.Equal(t, 55, r.Score)
}

func TestRemoteAnalyzer_FallsBack(t *testing.T) {
	snap := testSnapshot()
	fallback := NewFallbackAnalyzer()
	want, _ := fallback.Analyze(context.Background(), snap)

	tests := []struct {
		name string
		gen  *stubGenerator
	}{
		{"Generator error", &stubGenerator{err: errors.New("timeout")}},
		{"Malformed JSON", &stubGenerator{text: "not json at all"}},
		{"Empty response", &stubGenerator{text: "   "}},
		{"Score out of range", &stubGenerator{text: `{"score": 150, "forecast": "x", "recommendations": ["y"]}`}},
		{"Truncated weekly forecast", &stubGenerator{text: `{"score": 70, "forecast": "x", "recommendations": ["y"], "weeklyForecast": [{"day": "Mon", "revenue": 1, "occupancy": 50}]}`}},
		{"Empty payload", &stubGenerator{text: `{"score": 50}`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analyzer := NewRemoteAnalyzer(tt.gen, fallback)
			r, err := analyzer.Analyze(context.Background(), snap)
			assert.NoError(t, err)
			assert.Equal(t, want, r)
			assert.NoError(t, r.Validate())
		})
	}
}

func TestStripCodeFence(t *testing.T) {
	assert.Equal(t, `{"a":1}`, stripCodeFence("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripCodeFence("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripCodeFence(`{"a":1}`))
	assert.Equal(t, "", stripCodeFence("``````"))
}
