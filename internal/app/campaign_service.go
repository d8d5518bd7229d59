package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/example/ivrprompts/internal/core/campaign"
	"github.com/example/ivrprompts/internal/ports/primary"
	"github.com/example/ivrprompts/internal/ports/secondary"
)

// CampaignServiceImpl implements the CampaignService interface.
type CampaignServiceImpl struct {
	reader       secondary.CampaignReader
	campaignRepo secondary.CampaignRepository
	source       secondary.FlowSource
	logger       *zap.Logger
}

// NewCampaignService creates a new CampaignService with injected dependencies.
func NewCampaignService(
	reader secondary.CampaignReader,
	campaignRepo secondary.CampaignRepository,
	source secondary.FlowSource,
	logger *zap.Logger,
) *CampaignServiceImpl {
	return &CampaignServiceImpl{
		reader:       reader,
		campaignRepo: campaignRepo,
		source:       source,
		logger:       logger,
	}
}

// ImportCampaigns replaces the stored associations with the rows of a CSV file.
func (s *CampaignServiceImpl) ImportCampaigns(ctx context.Context, req primary.ImportCampaignsRequest) (*primary.ImportCampaignsResponse, error) {
	records, err := s.reader.ReadCampaigns(ctx, req.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read campaigns: %w", err)
	}

	if err := s.campaignRepo.ReplaceAll(ctx, records); err != nil {
		return nil, fmt.Errorf("failed to store campaigns: %w", err)
	}

	s.logger.Info("campaign associations imported", zap.String("path", req.Path), zap.Int("rows", len(records)))
	return &primary.ImportCampaignsResponse{Rows: len(records)}, nil
}

// ListCampaigns returns the selectable campaigns and the unavailable associations.
func (s *CampaignServiceImpl) ListCampaigns(ctx context.Context) (*primary.CampaignList, error) {
	resolution, err := resolveCampaigns(ctx, s.campaignRepo, s.source)
	if err != nil {
		return nil, err
	}

	return &primary.CampaignList{
		Campaigns:   resolution.Campaigns(),
		Unavailable: toMissingAssociations(resolution.Unavailable),
	}, nil
}

// GetCampaign resolves a single campaign to its flow files.
func (s *CampaignServiceImpl) GetCampaign(ctx context.Context, name string) (*primary.Campaign, error) {
	resolution, err := resolveCampaigns(ctx, s.campaignRepo, s.source)
	if err != nil {
		return nil, err
	}

	flows := resolution.FlowsFor(name)
	missing := resolution.MissingFor(name)
	if len(flows) == 0 && len(missing) == 0 {
		return nil, fmt.Errorf("campaign %q not found", name)
	}

	return &primary.Campaign{
		Name:    name,
		Flows:   flows,
		Missing: toMissingAssociations(missing),
	}, nil
}

// resolveCampaigns resolves the stored associations against the available flows.
func resolveCampaigns(ctx context.Context, repo secondary.CampaignRepository, source secondary.FlowSource) (campaign.Resolution, error) {
	records, err := repo.List(ctx)
	if err != nil {
		return campaign.Resolution{}, fmt.Errorf("failed to load campaigns: %w", err)
	}

	flows, err := source.ListFlows(ctx)
	if err != nil {
		return campaign.Resolution{}, fmt.Errorf("failed to list flows: %w", err)
	}

	available := make(map[string]struct{}, len(flows))
	for _, f := range flows {
		available[f] = struct{}{}
	}

	rows := make([]campaign.Row, len(records))
	for i, r := range records {
		rows[i] = campaign.Row{Campaign: r.Campaign, FlowFile: r.FlowFile}
	}

	return campaign.Resolve(rows, available), nil
}

func toMissingAssociations(missing []campaign.MissingAssociationError) []*primary.MissingAssociation {
	out := make([]*primary.MissingAssociation, len(missing))
	for i, m := range missing {
		out[i] = &primary.MissingAssociation{Campaign: m.Campaign, FlowFile: m.FlowFile}
	}
	return out
}

// Ensure CampaignServiceImpl implements the interface.
var _ primary.CampaignService = (*CampaignServiceImpl)(nil)
