package service

import (
	"context"
	"time"

	"github.com/jplancaster/roadmapper/internal/summarize"
)

type summaryService struct {
	summarizer *summarize.Summarizer
	observer   UseCaseObserver
}

// NewSummaryService wraps the summarizer with use-case telemetry.
func NewSummaryService(summarizer *summarize.Summarizer, observers ...UseCaseObserver) SummaryService {
	return &summaryService{
		summarizer: summarizer,
		observer:   useCaseObserverOrNoop(observers),
	}
}

func (s *summaryService) Summarize(ctx context.Context, text string) string {
	started := time.Now()
	out := s.summarizer.Summarize(text)
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "document.summarize",
		Duration:  time.Since(started),
		Success:   true,
		StartedAt: started,
		Fields: map[string]any{
			"input_chars":  len(text),
			"output_chars": len(out),
			"cache_size":   s.summarizer.CacheStats().Size,
		},
	})
	return out
}

func (s *summaryService) CacheStats() summarize.CacheStats {
	return s.summarizer.CacheStats()
}

func (s *summaryService) ClearCache() {
	s.summarizer.ClearCache()
}
