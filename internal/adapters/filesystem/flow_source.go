// Package filesystem contains filesystem-based adapter implementations.
package filesystem

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/example/ivrprompts/internal/core/flow"
	"github.com/example/ivrprompts/internal/ports/secondary"
)

// FlowSource implements secondary.FlowSource over local directories.
type FlowSource struct {
	flowsDir string
	audioDir string
}

// NewFlowSource creates a new filesystem flow source.
// If audioDir is empty, audio files are looked up in flowsDir.
func NewFlowSource(flowsDir, audioDir string) *FlowSource {
	if audioDir == "" {
		audioDir = flowsDir
	}
	return &FlowSource{
		flowsDir: flowsDir,
		audioDir: audioDir,
	}
}

// ListFlows returns the names of the *.xml files in the flows directory.
func (s *FlowSource) ListFlows(ctx context.Context) ([]string, error) {
	return listFiles(s.flowsDir, func(name string) bool {
		return strings.EqualFold(filepath.Ext(name), ".xml")
	})
}

// ReadFlow returns the raw content of a flow file. Names must be plain file names.
func (s *FlowSource) ReadFlow(ctx context.Context, name string) ([]byte, error) {
	if name == "" || name != filepath.Base(name) || name == "." || name == ".." {
		return nil, fmt.Errorf("invalid flow file name %q", name)
	}

	data, err := os.ReadFile(filepath.Join(s.flowsDir, name))
	if err != nil {
		return nil, fmt.Errorf("failed to read flow file %s: %w", name, err)
	}
	return data, nil
}

// ListAudio returns the names of the audio files in the audio directory. The
// suffix match is exact and case-sensitive.
func (s *FlowSource) ListAudio(ctx context.Context) ([]string, error) {
	return listFiles(s.audioDir, func(name string) bool {
		return strings.HasSuffix(name, flow.AudioFileName(""))
	})
}

// listFiles returns the sorted names of regular files in dir accepted by keep.
func listFiles(dir string, keep func(string) bool) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !keep(entry.Name()) {
			continue
		}
		names = append(names, entry.Name())
	}
	return names, nil
}

// Ensure FlowSource implements the interface.
var _ secondary.FlowSource = (*FlowSource)(nil)
