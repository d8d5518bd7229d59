// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives external systems.
package secondary

import "context"

// FlowSource defines the secondary port for reading flow documents and audio listings.
type FlowSource interface {
	// ListFlows returns the names of all available flow files.
	ListFlows(ctx context.Context) ([]string, error)

	// ReadFlow returns the raw content of a flow file.
	ReadFlow(ctx context.Context, name string) ([]byte, error)

	// ListAudio returns the names of all available audio files.
	ListAudio(ctx context.Context) ([]string, error)
}

// CampaignReader defines the secondary port for reading campaign association tables.
type CampaignReader interface {
	// ReadCampaigns returns the association rows stored at path.
	ReadCampaigns(ctx context.Context, path string) ([]*CampaignRecord, error)
}
