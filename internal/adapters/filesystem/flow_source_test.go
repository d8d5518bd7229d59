package filesystem_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/ivrprompts/internal/adapters/filesystem"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
}

func TestFlowSource_ListFlows(t *testing.T) {
	flowsDir := t.TempDir()
	writeFile(t, flowsDir, "sales.xml", "<ivrScript/>")
	writeFile(t, flowsDir, "Support.XML", "<ivrScript/>")
	writeFile(t, flowsDir, "notes.txt", "ignore me")
	require.NoError(t, os.Mkdir(filepath.Join(flowsDir, "archive.xml"), 0755))

	source := filesystem.NewFlowSource(flowsDir, "")

	flows, err := source.ListFlows(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Support.XML", "sales.xml"}, flows)
}

func TestFlowSource_ReadFlow(t *testing.T) {
	flowsDir := t.TempDir()
	writeFile(t, flowsDir, "sales.xml", "<ivrScript/>")
	source := filesystem.NewFlowSource(flowsDir, "")
	ctx := context.Background()

	data, err := source.ReadFlow(ctx, "sales.xml")
	require.NoError(t, err)
	assert.Equal(t, "<ivrScript/>", string(data))

	_, err = source.ReadFlow(ctx, "missing.xml")
	assert.Error(t, err)
}

func TestFlowSource_ReadFlowRejectsPaths(t *testing.T) {
	source := filesystem.NewFlowSource(t.TempDir(), "")

	for _, name := range []string{"", ".", "..", "../secret.xml", "sub/flow.xml"} {
		_, err := source.ReadFlow(context.Background(), name)
		assert.Error(t, err, "name %q", name)
	}
}

func TestFlowSource_ListAudio(t *testing.T) {
	flowsDir := t.TempDir()
	audioDir := t.TempDir()
	writeFile(t, audioDir, "Greeting.wav", "RIFF")
	writeFile(t, audioDir, "Hours.WAV", "RIFF")
	writeFile(t, audioDir, "Menu.mp3", "ID3")

	source := filesystem.NewFlowSource(flowsDir, audioDir)

	audio, err := source.ListAudio(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Greeting.wav"}, audio)
}

func TestFlowSource_MissingDirectory(t *testing.T) {
	source := filesystem.NewFlowSource(filepath.Join(t.TempDir(), "nope"), "")

	_, err := source.ListFlows(context.Background())
	assert.Error(t, err)
}
