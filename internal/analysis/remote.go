package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"hotelops-backend/internal/domain"
	"hotelops-backend/internal/logger"
)

// TextGenerator is the narrow surface the remote analyzer needs from the
// generative service client.
type TextGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// RemoteAnalyzer augments the analysis with a remote generative service. Any
// failure of the remote call or of response validation falls back to the
// injected deterministic analyzer; Analyze never returns an error, so the
// surrounding pipeline cannot be failed by the network.
type RemoteAnalyzer struct {
	gen      TextGenerator
	fallback Analyzer
}

// NewRemoteAnalyzer wires a generator with its fallback. The fallback must be
// deterministic and infallible (FallbackAnalyzer in production).
func NewRemoteAnalyzer(gen TextGenerator, fallback Analyzer) *RemoteAnalyzer {
	return &RemoteAnalyzer{gen: gen, fallback: fallback}
}

func (a *RemoteAnalyzer) Analyze(ctx context.Context, snapshot domain.ComprehensiveSnapshot) (domain.AnalysisResult, error) {
	prompt := BuildPrompt(snapshot)

	text, err := a.gen.GenerateContent(ctx, prompt)
	if err != nil {
		logger.Warn("remote analysis failed, using fallback", "error", err)
		return a.fallback.Analyze(ctx, snapshot)
	}

	result, err := parseAnalysisText(text)
	if err != nil {
		logger.Warn("remote analysis response rejected, using fallback", "error", err)
		return a.fallback.Analyze(ctx, snapshot)
	}
	return result, nil
}

// parseAnalysisText decodes the model's reply into an AnalysisResult. The
// reply may be wrapped in a markdown code fence. Field matching is
// case-insensitive (encoding/json semantics). A reply that decodes but
// violates the result invariants is rejected so the caller falls back.
func parseAnalysisText(text string) (domain.AnalysisResult, error) {
	var result domain.AnalysisResult

	cleaned := stripCodeFence(text)
	if cleaned == "" {
		return result, fmt.Errorf("empty response text")
	}
	if err := json.Unmarshal([]byte(cleaned), &result); err != nil {
		return result, fmt.Errorf("decoding analysis JSON: %w", err)
	}
	if err := result.Validate(); err != nil {
		return result, fmt.Errorf("invalid analysis result: %w", err)
	}
	if result.Forecast == "" && len(result.Recommendations) == 0 {
		return result, fmt.Errorf("analysis result is empty")
	}
	return result, nil
}

func stripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```json") {
		text = text[len("```json"):]
	} else if strings.HasPrefix(text, "```") {
		text = text[len("```"):]
	}
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}
