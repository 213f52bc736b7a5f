package scenario

import (
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const descriptorTemplate = `id: %ID%
logical_id: %LOGICAL_ID%
name: %NAME%
description: Streaming dashboards over eventhouse data with alerting built in.
date_added: "2025-03-01"
include_in_listing: true
workload_tags:
  - Real-Time Intelligence
scenario_tags:
  - streaming
type: Demo
difficulty: Beginner
source:
  workspace_path: workspaces/realtime-dashboards
  preview_image_path: images/realtime-dashboards.png
items_in_scope:
  - Eventhouse
entry_point: notebooks/setup.ipynb
owner_email: jumpstart@example.com
minutes_to_deploy: 15
minutes_to_complete_jumpstart: 45
`

func writeDescriptor(t *testing.T, dir, logicalID, id, name string) {
	t.Helper()
	content := strings.NewReplacer(
		"%ID%", id,
		"%LOGICAL_ID%", logicalID,
		"%NAME%", name,
	).Replace(descriptorTemplate)
	err := ioutil.WriteFile(filepath.Join(dir, logicalID+".yml"), []byte(content), 0644)
	require.NoError(t, err)
}

func TestLoadDirSortsByID(t *testing.T) {
	dir := t.TempDir()
	writeDescriptor(t, dir, "zeta-scenario", "1", "Zeta")
	writeDescriptor(t, dir, "alpha-scenario", "7", "Alpha")
	writeDescriptor(t, dir, "mid-scenario", "3", "Mid")

	files, err := LoadDir(dir)
	require.NoError(t, err)
	require.Len(t, files, 3)

	require.Equal(t, "zeta-scenario", files[0].Scenario.LogicalID)
	require.Equal(t, "mid-scenario", files[1].Scenario.LogicalID)
	require.Equal(t, "alpha-scenario", files[2].Scenario.LogicalID)
}

func TestLoadDirKeepsFilenameOrderForEqualIDs(t *testing.T) {
	dir := t.TempDir()
	writeDescriptor(t, dir, "bravo", "2", "Bravo")
	writeDescriptor(t, dir, "alpha", "2", "Alpha")

	files, err := LoadDir(dir)
	require.NoError(t, err)
	require.Equal(t, "alpha", files[0].Name[:5])
	require.Equal(t, "bravo", files[1].Name[:5])
}

func TestLoadDirParsesFields(t *testing.T) {
	dir := t.TempDir()
	writeDescriptor(t, dir, "realtime-dashboards", "4", "Real-Time Dashboards")

	files, err := LoadDir(dir)
	require.NoError(t, err)
	require.Len(t, files, 1)

	sc := files[0].Scenario
	require.Equal(t, 4, sc.ID)
	require.Equal(t, "Real-Time Dashboards", sc.Name)
	require.True(t, sc.IncludeInListing)
	require.Equal(t, []string{"Real-Time Intelligence"}, sc.WorkloadTags)
	require.Equal(t, "workspaces/realtime-dashboards", sc.Source.WorkspacePath)
	require.Equal(t, float64(15), sc.MinutesToDeploy)
	require.Equal(t, "realtime-dashboards", files[0].LogicalID())
}

func TestLoadDirKeepsMistypedFieldsForValidation(t *testing.T) {
	dir := t.TempDir()
	writeDescriptor(t, dir, "good", "1", "Good")
	writeDescriptor(t, dir, "mistyped", "seven", "Mistyped")

	files, err := LoadDir(dir)
	require.NoError(t, err)
	require.Len(t, files, 2)

	violations := Validate(files)
	messages := make([]string, 0, len(violations))
	for _, v := range violations {
		if v.File == "mistyped.yml" {
			messages = append(messages, v.Message)
		}
	}
	require.Contains(t, messages, "field `id` must be an integer")

	for _, v := range violations {
		require.NotEqual(t, "good.yml", v.File)
	}
}

func TestLoadDirFailsFastOnMalformedYaml(t *testing.T) {
	dir := t.TempDir()
	writeDescriptor(t, dir, "good", "1", "Good")
	err := ioutil.WriteFile(filepath.Join(dir, "broken.yml"), []byte("id: [unterminated"), 0644)
	require.NoError(t, err)

	_, err = LoadDir(dir)
	require.Error(t, err)
	require.Contains(t, err.Error(), "broken.yml")
}

func TestLoadDirMissingDirectory(t *testing.T) {
	_, err := LoadDir(filepath.Join(t.TempDir(), "nope"))
	require.ErrorIs(t, err, ErrScenarioDirNotFound)
}

func TestDuplicateIDs(t *testing.T) {
	dir := t.TempDir()
	writeDescriptor(t, dir, "one", "5", "One")
	writeDescriptor(t, dir, "two", "5", "Two")
	writeDescriptor(t, dir, "three", "6", "Three")

	files, err := LoadDir(dir)
	require.NoError(t, err)
	require.Equal(t, []int{5}, DuplicateIDs(files))
}
