package scheduler

import (
	"fmt"

	"github.com/rs/zerolog"

	"liquidity-engine/internal/analyzer"
	"liquidity-engine/internal/storage"
)

// AnalysisJob re-analyzes the tracked universe and refreshes the snapshot
// cache. Scheduled nightly; also run once at startup when the cache is
// empty.
type AnalysisJob struct {
	analyzer *analyzer.Analyzer
	store    *storage.SnapshotStore
	symbols  []string
	workers  int
	log      zerolog.Logger
}

func NewAnalysisJob(a *analyzer.Analyzer, store *storage.SnapshotStore, symbols []string, log zerolog.Logger) *AnalysisJob {
	return &AnalysisJob{
		analyzer: a,
		store:    store,
		symbols:  symbols,
		workers:  5,
		log:      log.With().Str("job", "analysis").Logger(),
	}
}

func (j *AnalysisJob) Name() string { return "universe-analysis" }

func (j *AnalysisJob) Run() error {
	j.log.Info().Int("symbols", len(j.symbols)).Msg("Starting universe analysis")

	results := j.analyzer.AnalyzeAll(j.symbols, j.workers)
	if len(results) == 0 {
		return fmt.Errorf("universe analysis produced no results")
	}

	if err := j.store.ReplaceAll(results); err != nil {
		return fmt.Errorf("failed to cache analysis results: %w", err)
	}

	j.log.Info().
		Int("analyzed", len(results)).
		Int("failed", len(j.symbols)-len(results)).
		Msg("Universe analysis complete")
	return nil
}
