package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/example/ivrprompts/internal/ports/primary"
	"github.com/example/ivrprompts/internal/ports/secondary"
)

func newTestCampaignService() (*CampaignServiceImpl, *mockCampaignReader, *mockCampaignRepository, *mockFlowSource) {
	reader := &mockCampaignReader{}
	repo := &mockCampaignRepository{}
	source := newMockFlowSource()
	return NewCampaignService(reader, repo, source, zap.NewNop()), reader, repo, source
}

func TestImportCampaigns_Success(t *testing.T) {
	service, reader, repo, _ := newTestCampaignService()
	reader.records = []*secondary.CampaignRecord{
		{Campaign: "Sales", FlowFile: "sales.xml"},
		{Campaign: "Support", FlowFile: "support.xml"},
	}

	resp, err := service.ImportCampaigns(context.Background(), primary.ImportCampaignsRequest{Path: "assoc.csv"})
	require.NoError(t, err)

	assert.Equal(t, 2, resp.Rows)
	assert.Equal(t, "assoc.csv", reader.lastPath)
	assert.Len(t, repo.records, 2)
}

func TestImportCampaigns_ReadError(t *testing.T) {
	service, reader, _, _ := newTestCampaignService()
	reader.readErr = errors.New("bad header")

	_, err := service.ImportCampaigns(context.Background(), primary.ImportCampaignsRequest{Path: "assoc.csv"})
	assert.EqualError(t, err, "failed to read campaigns: bad header")
}

func TestImportCampaigns_StoreError(t *testing.T) {
	service, _, repo, _ := newTestCampaignService()
	repo.replaceErr = errors.New("locked")

	_, err := service.ImportCampaigns(context.Background(), primary.ImportCampaignsRequest{Path: "assoc.csv"})
	assert.EqualError(t, err, "failed to store campaigns: locked")
}

func TestListCampaigns(t *testing.T) {
	service, _, repo, source := newTestCampaignService()
	source.flows["sales.xml"] = ""
	source.flows["support.xml"] = ""
	repo.records = []*secondary.CampaignRecord{
		{Campaign: "Support", FlowFile: "support.xml"},
		{Campaign: "Sales, Retention", FlowFile: "sales.xml"},
		{Campaign: "Ghost", FlowFile: "ghost.xml"},
	}

	list, err := service.ListCampaigns(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"Retention", "Sales", "Support"}, list.Campaigns)
	require.Len(t, list.Unavailable, 1)
	assert.Equal(t, "Ghost", list.Unavailable[0].Campaign)
	assert.Equal(t, "ghost.xml", list.Unavailable[0].FlowFile)
}

func TestListCampaigns_RepositoryError(t *testing.T) {
	service, _, repo, _ := newTestCampaignService()
	repo.listErr = errors.New("db closed")

	_, err := service.ListCampaigns(context.Background())
	assert.EqualError(t, err, "failed to load campaigns: db closed")
}

func TestGetCampaign(t *testing.T) {
	service, _, repo, source := newTestCampaignService()
	source.flows["a.xml"] = ""
	repo.records = []*secondary.CampaignRecord{
		{Campaign: "Sales", FlowFile: "a.xml,b.xml"},
	}

	c, err := service.GetCampaign(context.Background(), "Sales")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.xml"}, c.Flows)
	require.Len(t, c.Missing, 1)
	assert.Equal(t, "b.xml", c.Missing[0].FlowFile)

	_, err = service.GetCampaign(context.Background(), "Unknown")
	assert.EqualError(t, err, `campaign "Unknown" not found`)
}
