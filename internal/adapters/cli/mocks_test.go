package cli

import (
	"context"

	"github.com/example/ivrprompts/internal/ports/primary"
)

// ============================================================================
// Mock Implementations
// ============================================================================

// mockPromptService implements primary.PromptService for testing
type mockPromptService struct {
	extractFlowFn     func(ctx context.Context, req primary.ExtractFlowRequest) (*primary.FlowPrompts, error)
	extractCampaignFn func(ctx context.Context, campaign string) (*primary.CampaignPrompts, error)
	indexFlowsFn      func(ctx context.Context) (*primary.IndexResult, error)
	listDuplicatesFn  func(ctx context.Context) ([]*primary.DuplicatePrompt, error)

	// Track calls for verification
	lastExtractReq primary.ExtractFlowRequest
}

func (m *mockPromptService) ExtractFlow(ctx context.Context, req primary.ExtractFlowRequest) (*primary.FlowPrompts, error) {
	m.lastExtractReq = req
	if m.extractFlowFn != nil {
		return m.extractFlowFn(ctx, req)
	}
	return &primary.FlowPrompts{FlowFile: req.FlowFile}, nil
}

func (m *mockPromptService) ExtractCampaign(ctx context.Context, campaign string) (*primary.CampaignPrompts, error) {
	if m.extractCampaignFn != nil {
		return m.extractCampaignFn(ctx, campaign)
	}
	return &primary.CampaignPrompts{Campaign: campaign}, nil
}

func (m *mockPromptService) IndexFlows(ctx context.Context) (*primary.IndexResult, error) {
	if m.indexFlowsFn != nil {
		return m.indexFlowsFn(ctx)
	}
	return &primary.IndexResult{RunID: "run-001"}, nil
}

func (m *mockPromptService) ListDuplicates(ctx context.Context) ([]*primary.DuplicatePrompt, error) {
	if m.listDuplicatesFn != nil {
		return m.listDuplicatesFn(ctx)
	}
	return []*primary.DuplicatePrompt{}, nil
}

// mockCampaignService implements primary.CampaignService for testing
type mockCampaignService struct {
	importCampaignsFn func(ctx context.Context, req primary.ImportCampaignsRequest) (*primary.ImportCampaignsResponse, error)
	listCampaignsFn   func(ctx context.Context) (*primary.CampaignList, error)
	getCampaignFn     func(ctx context.Context, name string) (*primary.Campaign, error)

	lastImportReq primary.ImportCampaignsRequest
}

func (m *mockCampaignService) ImportCampaigns(ctx context.Context, req primary.ImportCampaignsRequest) (*primary.ImportCampaignsResponse, error) {
	m.lastImportReq = req
	if m.importCampaignsFn != nil {
		return m.importCampaignsFn(ctx, req)
	}
	return &primary.ImportCampaignsResponse{}, nil
}

func (m *mockCampaignService) ListCampaigns(ctx context.Context) (*primary.CampaignList, error) {
	if m.listCampaignsFn != nil {
		return m.listCampaignsFn(ctx)
	}
	return &primary.CampaignList{}, nil
}

func (m *mockCampaignService) GetCampaign(ctx context.Context, name string) (*primary.Campaign, error) {
	if m.getCampaignFn != nil {
		return m.getCampaignFn(ctx, name)
	}
	return &primary.Campaign{Name: name}, nil
}
