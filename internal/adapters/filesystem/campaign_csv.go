package filesystem

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/example/ivrprompts/internal/ports/secondary"
)

// Column headers of the campaign association table.
const (
	CampaignColumn = "Campaign(s)"
	FlowColumn     = "IVR Associated with Campaign(s)"
)

// CampaignCSVReader implements secondary.CampaignReader for CSV files.
type CampaignCSVReader struct{}

// NewCampaignCSVReader creates a new CSV campaign reader.
func NewCampaignCSVReader() *CampaignCSVReader {
	return &CampaignCSVReader{}
}

// ReadCampaigns reads association rows from the CSV file at path.
func (r *CampaignCSVReader) ReadCampaigns(ctx context.Context, path string) ([]*secondary.CampaignRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open campaign file: %w", err)
	}
	defer f.Close()

	return ParseCampaignCSV(f)
}

// ParseCampaignCSV parses an association table. Column order is free; rows with a
// blank campaign or flow cell are skipped.
func ParseCampaignCSV(in io.Reader) ([]*secondary.CampaignRecord, error) {
	reader := csv.NewReader(in)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("campaign file is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read campaign header: %w", err)
	}

	campaignIdx, flowIdx := -1, -1
	for i, col := range header {
		switch strings.TrimSpace(strings.TrimPrefix(col, "\ufeff")) {
		case CampaignColumn:
			campaignIdx = i
		case FlowColumn:
			flowIdx = i
		}
	}
	if campaignIdx < 0 || flowIdx < 0 {
		return nil, fmt.Errorf("campaign file must have %q and %q columns", CampaignColumn, FlowColumn)
	}

	var records []*secondary.CampaignRecord
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read campaign row: %w", err)
		}

		campaign := cell(row, campaignIdx)
		flowFile := cell(row, flowIdx)
		if campaign == "" || flowFile == "" {
			continue
		}
		records = append(records, &secondary.CampaignRecord{
			Campaign: campaign,
			FlowFile: flowFile,
		})
	}

	return records, nil
}

func cell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// Ensure CampaignCSVReader implements the interface.
var _ secondary.CampaignReader = (*CampaignCSVReader)(nil)
