package analysis

import (
	"context"
	"time"

	"hotelops-backend/internal/domain"
)

// Analyzer produces a financial health analysis from a comprehensive snapshot.
// Implementations: LocalRuleAnalyzer (rule engine), RemoteAnalyzer (generative
// service with deterministic fallback) and FallbackAnalyzer (the safety net).
type Analyzer interface {
	Analyze(ctx context.Context, snapshot domain.ComprehensiveSnapshot) (domain.AnalysisResult, error)
}

// LocalRuleAnalyzer adapts the rule engine to the Analyzer strategy. It never
// fails: evaluation is a pure in-memory computation.
type LocalRuleAnalyzer struct {
	engine *Engine

	// Now supplies the clock for the seasonal rule. Overridable in tests.
	Now func() time.Time
}

func NewLocalRuleAnalyzer(engine *Engine) *LocalRuleAnalyzer {
	return &LocalRuleAnalyzer{engine: engine, Now: time.Now}
}

func (a *LocalRuleAnalyzer) Analyze(_ context.Context, snapshot domain.ComprehensiveSnapshot) (domain.AnalysisResult, error) {
	return a.engine.Evaluate(snapshot.Financial, a.Now().Month()), nil
}
