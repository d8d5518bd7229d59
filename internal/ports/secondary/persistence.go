package secondary

import "context"

// CampaignRepository defines the secondary port for campaign association persistence.
type CampaignRepository interface {
	// ReplaceAll replaces every stored association with records.
	ReplaceAll(ctx context.Context, records []*CampaignRecord) error

	// List retrieves all stored associations in import order.
	List(ctx context.Context) ([]*CampaignRecord, error)
}

// CampaignRecord represents one raw association row as stored in persistence.
// Both columns may hold comma-separated values.
type CampaignRecord struct {
	Campaign   string
	FlowFile   string
	ImportedAt string
}

// PromptIndexRepository defines the secondary port for the cross-document prompt index.
type PromptIndexRepository interface {
	// CreateRun persists a new index run.
	CreateRun(ctx context.Context, run *IndexRunRecord) error

	// FinishRun stores the final counters of a run.
	FinishRun(ctx context.Context, run *IndexRunRecord) error

	// ReplaceFlow replaces the indexed occurrences of one flow file.
	ReplaceFlow(ctx context.Context, runID, flowFile string, records []*PromptOccurrenceRecord) error

	// ListDuplicates returns the distinct locations of every prompt ID cited from
	// more than one flow/module location, ordered by prompt ID.
	ListDuplicates(ctx context.Context) ([]*PromptOccurrenceRecord, error)
}

// IndexRunRecord represents an index run as stored in persistence.
type IndexRunRecord struct {
	ID           string
	FlowsIndexed int
	FlowsFailed  int
	CreatedAt    string
}

// PromptOccurrenceRecord represents one prompt citation as stored in persistence.
type PromptOccurrenceRecord struct {
	RunID      string
	FlowFile   string
	PromptID   string
	PromptName string
	Module     string
	PromptType string
	Status     string
	AudioFile  string
}
