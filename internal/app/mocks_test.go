package app

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"

	"go.uber.org/goleak"

	"github.com/example/ivrprompts/internal/ports/secondary"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// ============================================================================
// Mock Implementations
// ============================================================================

// mockFlowSource implements secondary.FlowSource for testing.
type mockFlowSource struct {
	mu       sync.Mutex
	flows    map[string]string
	audio    []string
	listErr  error
	audioErr error
	reads    []string
}

func newMockFlowSource() *mockFlowSource {
	return &mockFlowSource{flows: make(map[string]string)}
}

func (m *mockFlowSource) ListFlows(ctx context.Context) ([]string, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	names := make([]string, 0, len(m.flows))
	for name := range m.flows {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (m *mockFlowSource) ReadFlow(ctx context.Context, name string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reads = append(m.reads, name)
	content, ok := m.flows[name]
	if !ok {
		return nil, errors.New("flow not found")
	}
	return []byte(content), nil
}

func (m *mockFlowSource) ListAudio(ctx context.Context) ([]string, error) {
	if m.audioErr != nil {
		return nil, m.audioErr
	}
	return m.audio, nil
}

// mockCampaignRepository implements secondary.CampaignRepository for testing.
type mockCampaignRepository struct {
	records    []*secondary.CampaignRecord
	replaceErr error
	listErr    error
}

func (m *mockCampaignRepository) ReplaceAll(ctx context.Context, records []*secondary.CampaignRecord) error {
	if m.replaceErr != nil {
		return m.replaceErr
	}
	m.records = records
	return nil
}

func (m *mockCampaignRepository) List(ctx context.Context) ([]*secondary.CampaignRecord, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.records, nil
}

// mockCampaignReader implements secondary.CampaignReader for testing.
type mockCampaignReader struct {
	records  []*secondary.CampaignRecord
	readErr  error
	lastPath string
}

func (m *mockCampaignReader) ReadCampaigns(ctx context.Context, path string) ([]*secondary.CampaignRecord, error) {
	m.lastPath = path
	if m.readErr != nil {
		return nil, m.readErr
	}
	return m.records, nil
}

// mockPromptIndexRepository implements secondary.PromptIndexRepository for testing.
type mockPromptIndexRepository struct {
	runs        map[string]*secondary.IndexRunRecord
	flows       map[string][]*secondary.PromptOccurrenceRecord
	duplicates  []*secondary.PromptOccurrenceRecord
	createErr   error
	replaceErrs map[string]error
}

func newMockPromptIndexRepository() *mockPromptIndexRepository {
	return &mockPromptIndexRepository{
		runs:        make(map[string]*secondary.IndexRunRecord),
		flows:       make(map[string][]*secondary.PromptOccurrenceRecord),
		replaceErrs: make(map[string]error),
	}
}

func (m *mockPromptIndexRepository) CreateRun(ctx context.Context, run *secondary.IndexRunRecord) error {
	if m.createErr != nil {
		return m.createErr
	}
	copied := *run
	m.runs[run.ID] = &copied
	return nil
}

func (m *mockPromptIndexRepository) FinishRun(ctx context.Context, run *secondary.IndexRunRecord) error {
	if _, ok := m.runs[run.ID]; !ok {
		return errors.New("run not found")
	}
	copied := *run
	m.runs[run.ID] = &copied
	return nil
}

func (m *mockPromptIndexRepository) ReplaceFlow(ctx context.Context, runID, flowFile string, records []*secondary.PromptOccurrenceRecord) error {
	if err := m.replaceErrs[flowFile]; err != nil {
		return err
	}
	m.flows[flowFile] = records
	return nil
}

func (m *mockPromptIndexRepository) ListDuplicates(ctx context.Context) ([]*secondary.PromptOccurrenceRecord, error) {
	return m.duplicates, nil
}
