package app

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/example/ivrprompts/internal/core/flow"
	"github.com/example/ivrprompts/internal/ports/primary"
	"github.com/example/ivrprompts/internal/ports/secondary"
)

// PromptServiceImpl implements the PromptService interface.
type PromptServiceImpl struct {
	source       secondary.FlowSource
	campaignRepo secondary.CampaignRepository
	indexRepo    secondary.PromptIndexRepository
	batch        *BatchExtractor
	logger       *zap.Logger
	newRunID     func() string
}

// NewPromptService creates a new PromptService with injected dependencies.
func NewPromptService(
	source secondary.FlowSource,
	campaignRepo secondary.CampaignRepository,
	indexRepo secondary.PromptIndexRepository,
	batch *BatchExtractor,
	logger *zap.Logger,
) *PromptServiceImpl {
	return &PromptServiceImpl{
		source:       source,
		campaignRepo: campaignRepo,
		indexRepo:    indexRepo,
		batch:        batch,
		logger:       logger,
		newRunID:     uuid.NewString,
	}
}

// ExtractFlow extracts and classifies the prompts of one flow file.
func (s *PromptServiceImpl) ExtractFlow(ctx context.Context, req primary.ExtractFlowRequest) (*primary.FlowPrompts, error) {
	result := s.batch.Extract(ctx, req.FlowFile)
	if result.Err != nil {
		return nil, result.Err
	}

	audio := s.audioSet(ctx)
	return s.toFlowPrompts(result, audio), nil
}

// ExtractCampaign extracts the prompts of every available flow of a campaign.
// Missing associations are reported alongside the results.
func (s *PromptServiceImpl) ExtractCampaign(ctx context.Context, name string) (*primary.CampaignPrompts, error) {
	resolution, err := resolveCampaigns(ctx, s.campaignRepo, s.source)
	if err != nil {
		return nil, err
	}

	flows := resolution.FlowsFor(name)
	missing := resolution.MissingFor(name)
	if len(flows) == 0 && len(missing) == 0 {
		return nil, fmt.Errorf("campaign %q not found", name)
	}

	results, err := s.batch.ExtractAll(ctx, flows)
	if err != nil {
		return nil, fmt.Errorf("campaign extraction interrupted: %w", err)
	}

	audio := s.audioSet(ctx)
	resp := &primary.CampaignPrompts{
		Campaign: name,
		Missing:  toMissingAssociations(missing),
	}
	for _, r := range results {
		resp.Flows = append(resp.Flows, s.toFlowPrompts(r, audio))
	}
	return resp, nil
}

// IndexFlows extracts every available flow and stores its raw prompt stream.
func (s *PromptServiceImpl) IndexFlows(ctx context.Context) (*primary.IndexResult, error) {
	flows, err := s.source.ListFlows(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list flows: %w", err)
	}

	run := &secondary.IndexRunRecord{ID: s.newRunID()}
	if err := s.indexRepo.CreateRun(ctx, run); err != nil {
		return nil, fmt.Errorf("failed to start index run: %w", err)
	}

	results, extractErr := s.batch.ExtractAll(ctx, flows)

	resp := &primary.IndexResult{RunID: run.ID}
	for _, r := range results {
		if r.Err != nil {
			resp.Failed = append(resp.Failed, &primary.FlowFailure{FlowFile: r.FlowFile, Error: r.Err.Error()})
			continue
		}
		if err := s.indexRepo.ReplaceFlow(ctx, run.ID, r.FlowFile, toOccurrences(r.Extraction.All)); err != nil {
			s.logger.Warn("flow index write failed", zap.String("flow", r.FlowFile), zap.Error(err))
			resp.Failed = append(resp.Failed, &primary.FlowFailure{FlowFile: r.FlowFile, Error: err.Error()})
			continue
		}
		resp.Indexed = append(resp.Indexed, r.FlowFile)
		resp.Prompts += len(r.Extraction.Prompts)
	}

	run.FlowsIndexed = len(resp.Indexed)
	run.FlowsFailed = len(resp.Failed)
	if err := s.indexRepo.FinishRun(ctx, run); err != nil {
		return nil, fmt.Errorf("failed to finish index run: %w", err)
	}
	if extractErr != nil {
		return resp, fmt.Errorf("index run interrupted: %w", extractErr)
	}

	s.logger.Info("index run complete",
		zap.String("run", run.ID),
		zap.Int("indexed", run.FlowsIndexed),
		zap.Int("failed", run.FlowsFailed))
	return resp, nil
}

// ListDuplicates returns prompts cited from more than one flow/module location,
// ordered by prompt name then prompt ID.
func (s *PromptServiceImpl) ListDuplicates(ctx context.Context) ([]*primary.DuplicatePrompt, error) {
	records, err := s.indexRepo.ListDuplicates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list duplicates: %w", err)
	}

	byID := make(map[string]*primary.DuplicatePrompt)
	var dups []*primary.DuplicatePrompt
	for _, r := range records {
		dup, ok := byID[r.PromptID]
		if !ok {
			dup = &primary.DuplicatePrompt{PromptID: r.PromptID, PromptName: r.PromptName}
			byID[r.PromptID] = dup
			dups = append(dups, dup)
		}
		dup.Locations = append(dup.Locations, &primary.PromptLocation{FlowFile: r.FlowFile, Module: r.Module})
	}

	sort.SliceStable(dups, func(i, j int) bool {
		if dups[i].PromptName != dups[j].PromptName {
			return dups[i].PromptName < dups[j].PromptName
		}
		return dups[i].PromptID < dups[j].PromptID
	})
	return dups, nil
}

// Helper methods

// audioSet returns the available audio file names. A failed listing only
// disables presence annotation.
func (s *PromptServiceImpl) audioSet(ctx context.Context) map[string]struct{} {
	names, err := s.source.ListAudio(ctx)
	if err != nil {
		s.logger.Warn("audio listing failed", zap.Error(err))
		return map[string]struct{}{}
	}
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}

func (s *PromptServiceImpl) toFlowPrompts(r FlowResult, audio map[string]struct{}) *primary.FlowPrompts {
	fp := &primary.FlowPrompts{FlowFile: r.FlowFile}
	if r.Err != nil {
		fp.Error = r.Err.Error()
		return fp
	}
	fp.Prompts = toPrompts(r.Extraction.Prompts, audio)
	fp.All = toPrompts(r.Extraction.All, audio)
	return fp
}

func toPrompts(records []flow.ClassifiedPrompt, audio map[string]struct{}) []*primary.Prompt {
	prompts := make([]*primary.Prompt, len(records))
	for i, r := range records {
		_, available := audio[r.AudioFile]
		prompts[i] = &primary.Prompt{
			ID:             r.ID,
			Name:           r.Name,
			Module:         r.Module,
			Type:           string(r.Type),
			Status:         string(r.Status),
			Active:         r.Status.Active(),
			AudioFile:      r.AudioFile,
			AudioAvailable: available,
		}
	}
	return prompts
}

func toOccurrences(records []flow.ClassifiedPrompt) []*secondary.PromptOccurrenceRecord {
	occurrences := make([]*secondary.PromptOccurrenceRecord, len(records))
	for i, r := range records {
		occurrences[i] = &secondary.PromptOccurrenceRecord{
			PromptID:   r.ID,
			PromptName: r.Name,
			Module:     r.Module,
			PromptType: string(r.Type),
			Status:     string(r.Status),
			AudioFile:  r.AudioFile,
		}
	}
	return occurrences
}

// Ensure PromptServiceImpl implements the interface.
var _ primary.PromptService = (*PromptServiceImpl)(nil)
