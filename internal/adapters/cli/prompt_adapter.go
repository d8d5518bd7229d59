package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/example/ivrprompts/internal/ports/primary"
)

// PromptAdapter is a thin adapter that translates CLI operations to PromptService calls.
// It depends only on the PromptService interface, enabling easy testing with mocks.
type PromptAdapter struct {
	service primary.PromptService
	out     io.Writer
}

// NewPromptAdapter creates a new PromptAdapter with the given service.
func NewPromptAdapter(service primary.PromptService, out io.Writer) *PromptAdapter {
	return &PromptAdapter{
		service: service,
		out:     out,
	}
}

// ExtractOptions controls which records are printed.
type ExtractOptions struct {
	All         bool // print every citation instead of one row per prompt
	MissingOnly bool // print only prompts whose audio file is not available
}

// Extract prints the prompts of a single flow file.
func (a *PromptAdapter) Extract(ctx context.Context, flowFile string, opts ExtractOptions) (*primary.FlowPrompts, error) {
	result, err := a.service.ExtractFlow(ctx, primary.ExtractFlowRequest{FlowFile: flowFile})
	if err != nil {
		return nil, fmt.Errorf("failed to extract %s: %w", flowFile, err)
	}

	if err := a.renderFlow(result, opts); err != nil {
		return nil, err
	}
	return result, nil
}

// ExtractCampaign prints the prompts of every flow of a campaign.
func (a *PromptAdapter) ExtractCampaign(ctx context.Context, campaign string, opts ExtractOptions) (*primary.CampaignPrompts, error) {
	result, err := a.service.ExtractCampaign(ctx, campaign)
	if err != nil {
		return nil, fmt.Errorf("failed to extract campaign %s: %w", campaign, err)
	}

	for _, m := range result.Missing {
		fmt.Fprintf(a.out, "%s %s is not available\n", color.New(color.FgRed).Sprint("✗"), m.FlowFile)
	}

	for _, fp := range result.Flows {
		fmt.Fprintln(a.out)
		fmt.Fprintf(a.out, "Prompts for %s\n", fp.FlowFile)
		if fp.Error != "" {
			fmt.Fprintf(a.out, "%s Could not load IVR file %s: %s\n", color.New(color.FgRed).Sprint("✗"), fp.FlowFile, fp.Error)
			continue
		}
		if err := a.renderFlow(fp, opts); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// Index runs an index pass and prints its summary.
func (a *PromptAdapter) Index(ctx context.Context) (*primary.IndexResult, error) {
	result, err := a.service.IndexFlows(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to index flows: %w", err)
	}

	fmt.Fprintf(a.out, "✓ Indexed %d flow(s), %d unique prompt(s) (run %s)\n", len(result.Indexed), result.Prompts, result.RunID)
	for _, f := range result.Failed {
		fmt.Fprintf(a.out, "  %s %s: %s\n", color.New(color.FgRed).Sprint("✗"), f.FlowFile, f.Error)
	}
	return result, nil
}

// Duplicates prints prompts cited from more than one location.
func (a *PromptAdapter) Duplicates(ctx context.Context) ([]*primary.DuplicatePrompt, error) {
	dups, err := a.service.ListDuplicates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list duplicates: %w", err)
	}

	if len(dups) == 0 {
		fmt.Fprintln(a.out, "No duplicate prompts found.")
		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, "Duplicates are computed from the index. Refresh it with:")
		fmt.Fprintln(a.out, "  ivrprompts index")
		return dups, nil
	}

	table := tablewriter.NewWriter(a.out)
	table.Header("ID", "Name", "Flow", "Module")
	for _, d := range dups {
		for _, loc := range d.Locations {
			if err := table.Append([]string{d.PromptID, d.PromptName, loc.FlowFile, loc.Module}); err != nil {
				return nil, fmt.Errorf("failed to render duplicates: %w", err)
			}
		}
	}
	if err := table.Render(); err != nil {
		return nil, fmt.Errorf("failed to render duplicates: %w", err)
	}

	fmt.Fprintf(a.out, "Found %d prompt(s) cited from more than one location\n", len(dups))
	return dups, nil
}

func (a *PromptAdapter) renderFlow(fp *primary.FlowPrompts, opts ExtractOptions) error {
	prompts := fp.Prompts
	if opts.All {
		prompts = fp.All
	}

	if len(fp.Prompts) == 0 {
		fmt.Fprintf(a.out, "No prompts found in %s\n", fp.FlowFile)
		return nil
	}

	if opts.MissingOnly {
		prompts = missingAudio(prompts)
		if len(prompts) == 0 {
			fmt.Fprintf(a.out, "No missing audio in %s (%d unique prompts)\n", fp.FlowFile, len(fp.Prompts))
			return nil
		}
	}

	table := tablewriter.NewWriter(a.out)
	table.Header("ID", "Name", "Module", "Type", "Status", "Audio")
	for _, p := range prompts {
		row := []string{p.ID, p.Name, p.Module, p.Type, statusLabel(p), audioLabel(p)}
		if err := table.Append(row); err != nil {
			return fmt.Errorf("failed to render prompts: %w", err)
		}
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render prompts: %w", err)
	}

	fmt.Fprintf(a.out, "Found %d unique prompts in %s\n", len(fp.Prompts), fp.FlowFile)
	return nil
}

func missingAudio(prompts []*primary.Prompt) []*primary.Prompt {
	var missing []*primary.Prompt
	for _, p := range prompts {
		if !p.AudioAvailable {
			missing = append(missing, p)
		}
	}
	return missing
}

func statusLabel(p *primary.Prompt) string {
	if p.Active {
		return color.New(color.FgGreen).Sprint(p.Status)
	}
	return color.New(color.FgHiBlack).Sprint(p.Status)
}

func audioLabel(p *primary.Prompt) string {
	if p.AudioAvailable {
		return p.AudioFile
	}
	return color.New(color.FgYellow).Sprintf("%s (missing)", p.AudioFile)
}
