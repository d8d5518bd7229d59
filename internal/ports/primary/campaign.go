package primary

import "context"

// CampaignService defines the primary port for campaign association operations.
type CampaignService interface {
	// ImportCampaigns replaces the stored campaign associations with the rows of a CSV file.
	ImportCampaigns(ctx context.Context, req ImportCampaignsRequest) (*ImportCampaignsResponse, error)

	// ListCampaigns returns the selectable campaigns and the unavailable associations.
	ListCampaigns(ctx context.Context) (*CampaignList, error)

	// GetCampaign resolves a single campaign to its flow files.
	GetCampaign(ctx context.Context, campaign string) (*Campaign, error)
}

// ImportCampaignsRequest contains parameters for importing campaign associations.
type ImportCampaignsRequest struct {
	Path string
}

// ImportCampaignsResponse contains the result of an import.
type ImportCampaignsResponse struct {
	Rows int
}

// CampaignList contains every resolved campaign.
type CampaignList struct {
	Campaigns   []string
	Unavailable []*MissingAssociation
}

// Campaign represents a campaign and its flow files at the port boundary.
type Campaign struct {
	Name    string
	Flows   []string
	Missing []*MissingAssociation
}

// MissingAssociation is a campaign association whose flow file is not available.
type MissingAssociation struct {
	Campaign string
	FlowFile string
}
