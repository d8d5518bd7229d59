package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/example/ivrprompts/internal/ports/primary"
)

// CampaignAdapter is a thin adapter that translates CLI operations to CampaignService calls.
type CampaignAdapter struct {
	service primary.CampaignService
	out     io.Writer
}

// NewCampaignAdapter creates a new CampaignAdapter with the given service.
func NewCampaignAdapter(service primary.CampaignService, out io.Writer) *CampaignAdapter {
	return &CampaignAdapter{
		service: service,
		out:     out,
	}
}

// Import loads a campaign association CSV into the catalog.
func (a *CampaignAdapter) Import(ctx context.Context, path string) (*primary.ImportCampaignsResponse, error) {
	resp, err := a.service.ImportCampaigns(ctx, primary.ImportCampaignsRequest{Path: path})
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(a.out, "✓ Imported %d campaign association(s) from %s\n", resp.Rows, path)
	return resp, nil
}

// List prints the selectable campaigns and any unavailable associations.
func (a *CampaignAdapter) List(ctx context.Context) (*primary.CampaignList, error) {
	list, err := a.service.ListCampaigns(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}

	if len(list.Campaigns) == 0 {
		fmt.Fprintln(a.out, "No campaigns found.")
		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, "Import campaign associations:")
		fmt.Fprintln(a.out, "  ivrprompts campaign import ivrcampaignassociation.csv")
	} else {
		fmt.Fprintf(a.out, "Found %d campaign(s):\n\n", len(list.Campaigns))
		for _, c := range list.Campaigns {
			fmt.Fprintf(a.out, "  %s\n", c)
		}
	}

	if len(list.Unavailable) > 0 {
		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, color.New(color.FgYellow).Sprint("Unavailable associations:"))
		if err := a.renderMissing(list.Unavailable); err != nil {
			return nil, err
		}
	}
	return list, nil
}

// Show prints the flows of one campaign.
func (a *CampaignAdapter) Show(ctx context.Context, name string) (*primary.Campaign, error) {
	c, err := a.service.GetCampaign(ctx, name)
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(a.out, "\nCampaign: %s\n", c.Name)
	fmt.Fprintln(a.out, "Flows:")
	if len(c.Flows) == 0 {
		fmt.Fprintln(a.out, "  (none available)")
	}
	for _, f := range c.Flows {
		fmt.Fprintf(a.out, "  %s\n", f)
	}
	if len(c.Missing) > 0 {
		fmt.Fprintln(a.out, color.New(color.FgYellow).Sprint("Unavailable:"))
		for _, m := range c.Missing {
			fmt.Fprintf(a.out, "  %s\n", m.FlowFile)
		}
	}
	fmt.Fprintln(a.out)
	return c, nil
}

func (a *CampaignAdapter) renderMissing(missing []*primary.MissingAssociation) error {
	table := tablewriter.NewWriter(a.out)
	table.Header("Campaign", "Flow")
	for _, m := range missing {
		if err := table.Append([]string{m.Campaign, m.FlowFile}); err != nil {
			return fmt.Errorf("failed to render associations: %w", err)
		}
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render associations: %w", err)
	}
	return nil
}
