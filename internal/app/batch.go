package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/example/ivrprompts/internal/core/flow"
	"github.com/example/ivrprompts/internal/ports/secondary"
)

// DefaultWorkers is the batch parallelism used when none is configured.
const DefaultWorkers = 4

// FlowResult is the outcome of extracting one flow document.
type FlowResult struct {
	FlowFile   string
	Extraction *flow.Extraction
	Err        error
}

// BatchExtractor runs the extraction engine over flow documents, one worker per
// document. Documents share nothing, so a failure in one never affects another.
type BatchExtractor struct {
	source  secondary.FlowSource
	workers int
	logger  *zap.Logger
}

// NewBatchExtractor creates a new BatchExtractor with injected dependencies.
func NewBatchExtractor(source secondary.FlowSource, workers int, logger *zap.Logger) *BatchExtractor {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	return &BatchExtractor{
		source:  source,
		workers: workers,
		logger:  logger,
	}
}

// Extract reads and extracts a single flow document.
func (b *BatchExtractor) Extract(ctx context.Context, flowFile string) FlowResult {
	result := FlowResult{FlowFile: flowFile}

	data, err := b.source.ReadFlow(ctx, flowFile)
	if err != nil {
		result.Err = fmt.Errorf("failed to load flow: %w", err)
		b.logger.Warn("flow read failed", zap.String("flow", flowFile), zap.Error(err))
		return result
	}

	extraction, err := flow.Extract(data)
	if err != nil {
		result.Err = err
		b.logger.Warn("flow parse failed", zap.String("flow", flowFile), zap.Error(err))
		return result
	}

	b.logger.Debug("flow extracted",
		zap.String("flow", flowFile),
		zap.Int("prompts", len(extraction.Prompts)),
		zap.Int("citations", len(extraction.All)))
	result.Extraction = extraction
	return result
}

// ExtractAll extracts every flow file, keeping input order in the results.
// Once ctx is done no further documents are started; those get ctx's error.
func (b *BatchExtractor) ExtractAll(ctx context.Context, flowFiles []string) ([]FlowResult, error) {
	results := make([]FlowResult, len(flowFiles))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.workers)

	for i, name := range flowFiles {
		if err := gctx.Err(); err != nil {
			for j := i; j < len(flowFiles); j++ {
				results[j] = FlowResult{FlowFile: flowFiles[j], Err: err}
			}
			break
		}
		i, name := i, name
		g.Go(func() error {
			results[i] = b.Extract(gctx, name)
			return nil
		})
	}

	// Workers never return errors; failures are recorded per document.
	_ = g.Wait()

	return results, ctx.Err()
}
