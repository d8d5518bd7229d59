// Package primary defines the primary ports (driving adapters) for the application.
// These are the interfaces through which the CLI drives the application.
package primary

import "context"

// PromptService defines the primary port for prompt extraction operations.
type PromptService interface {
	// ExtractFlow extracts and classifies the prompts of one flow file.
	ExtractFlow(ctx context.Context, req ExtractFlowRequest) (*FlowPrompts, error)

	// ExtractCampaign extracts the prompts of every available flow of a campaign.
	ExtractCampaign(ctx context.Context, campaign string) (*CampaignPrompts, error)

	// IndexFlows extracts every flow and stores the raw prompt stream for
	// cross-document analysis.
	IndexFlows(ctx context.Context) (*IndexResult, error)

	// ListDuplicates returns prompts cited from more than one flow/module location.
	ListDuplicates(ctx context.Context) ([]*DuplicatePrompt, error)
}

// ExtractFlowRequest contains parameters for extracting a single flow.
type ExtractFlowRequest struct {
	FlowFile string
}

// Prompt represents a classified prompt at the port boundary.
type Prompt struct {
	ID             string
	Name           string
	Module         string
	Type           string
	Status         string
	Active         bool
	AudioFile      string
	AudioAvailable bool
}

// FlowPrompts contains the extraction result of one flow file.
type FlowPrompts struct {
	FlowFile string
	Prompts  []*Prompt // one per prompt ID, ordered by name
	All      []*Prompt // every citation in scan order
	Error    string    // set when the flow could not be read or parsed
}

// CampaignPrompts contains the extraction results of a campaign's flows.
type CampaignPrompts struct {
	Campaign string
	Flows    []*FlowPrompts
	Missing  []*MissingAssociation
}

// IndexResult summarizes an index run.
type IndexResult struct {
	RunID   string
	Indexed []string
	Failed  []*FlowFailure
	Prompts int
}

// FlowFailure records a flow that could not be indexed.
type FlowFailure struct {
	FlowFile string
	Error    string
}

// DuplicatePrompt is a prompt cited from several locations.
type DuplicatePrompt struct {
	PromptID   string
	PromptName string
	Locations  []*PromptLocation
}

// PromptLocation is one flow/module pair citing a prompt.
type PromptLocation struct {
	FlowFile string
	Module   string
}
