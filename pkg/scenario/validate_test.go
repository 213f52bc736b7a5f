package scenario

import (
	"testing"

	"github.com/fabric-jumpstart/jumpgen/pkg/data"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"
)

const validDescriptor = `id: 1
logical_id: realtime-dashboards
name: Real-Time Dashboards
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

func loadFile(t *testing.T, name, content string) File {
	t.Helper()
	var sc data.Scenario
	require.NoError(t, yaml.Unmarshal([]byte(content), &sc))
	raw := map[interface{}]interface{}{}
	require.NoError(t, yaml.Unmarshal([]byte(content), &raw))
	return File{Name: name, Scenario: sc, Raw: raw}
}

func TestValidateAcceptsValidDescriptor(t *testing.T) {
	f := loadFile(t, "realtime-dashboards.yml", validDescriptor)
	require.Empty(t, Validate([]File{f}))
}

func TestValidateReportsMissingRequiredField(t *testing.T) {
	f := loadFile(t, "realtime-dashboards.yml", validDescriptor)
	delete(f.Raw, "owner_email")

	violations := Validate([]File{f})
	require.Len(t, violations, 1)
	require.Contains(t, violations[0].Message, "owner_email")
	require.Equal(t, "realtime-dashboards.yml", violations[0].File)
}

func TestValidateReportsTypeMismatches(t *testing.T) {
	cases := []struct {
		field string
		value interface{}
		want  string
	}{
		{"id", "seven", "integer"},
		{"name", 42, "string"},
		{"include_in_listing", "yes please", "boolean"},
		{"workload_tags", "Real-Time Intelligence", "list of strings"},
		{"minutes_to_deploy", "soon", "number"},
	}

	for _, tc := range cases {
		t.Run(tc.field, func(t *testing.T) {
			f := loadFile(t, "realtime-dashboards.yml", validDescriptor)
			f.Raw[tc.field] = tc.value

			violations := Validate([]File{f})
			require.NotEmpty(t, violations)
			require.Contains(t, violations[0].Message, tc.field)
			require.Contains(t, violations[0].Message, tc.want)
		})
	}
}

func TestValidateRejectsNegativeMinutes(t *testing.T) {
	f := loadFile(t, "realtime-dashboards.yml", validDescriptor)
	f.Raw["minutes_to_complete_jumpstart"] = -5

	violations := Validate([]File{f})
	require.Len(t, violations, 1)
	require.Contains(t, violations[0].Message, "must not be negative")
}

func TestValidateEnums(t *testing.T) {
	f := loadFile(t, "realtime-dashboards.yml", validDescriptor)
	f.Raw["type"] = "Workshop"

	violations := Validate([]File{f})
	require.Len(t, violations, 1)
	require.Contains(t, violations[0].Message, "Workshop")
	require.Contains(t, violations[0].Message, "Demo, Tutorial, Accelerator")
}

func TestValidateRequiresDifficulty(t *testing.T) {
	f := loadFile(t, "realtime-dashboards.yml", validDescriptor)
	delete(f.Raw, "difficulty")

	violations := Validate([]File{f})
	require.Len(t, violations, 1)
	require.Contains(t, violations[0].Message, "difficulty")
	require.Contains(t, violations[0].Message, "Beginner, Intermediate, Advanced")
}

func TestValidateLogicalIDMatchesFilename(t *testing.T) {
	f := loadFile(t, "renamed-scenario.yml", validDescriptor)

	violations := Validate([]File{f})
	require.Len(t, violations, 1)
	require.Contains(t, violations[0].Message, "logical_id")
	require.Contains(t, violations[0].Message, "renamed-scenario")
}

func TestValidateListedDescriptionLength(t *testing.T) {
	f := loadFile(t, "realtime-dashboards.yml", validDescriptor)
	f.Raw["description"] = "too short"
	f.Scenario.Description = "too short"

	violations := Validate([]File{f})
	require.Len(t, violations, 1)
	require.Contains(t, violations[0].Message, "10 characters")

	// Unlisted scenarios may keep a short description.
	f.Scenario.IncludeInListing = false
	f.Raw["include_in_listing"] = false
	require.Empty(t, Validate([]File{f}))
}

func TestValidateSourceBlock(t *testing.T) {
	f := loadFile(t, "realtime-dashboards.yml", validDescriptor)
	source := f.Raw["source"].(map[interface{}]interface{})
	delete(source, "preview_image_path")

	violations := Validate([]File{f})
	require.Len(t, violations, 1)
	require.Contains(t, violations[0].Message, "preview_image_path")
}

func TestValidateRejectsUnknownTopLevelFields(t *testing.T) {
	f := loadFile(t, "realtime-dashboards.yml", validDescriptor)
	f.Raw["surprise_field"] = true
	f.Raw["another_one"] = "hi"

	violations := Validate([]File{f})
	require.Len(t, violations, 1)
	require.Equal(t, "realtime-dashboards.yml", violations[0].File)
	require.Contains(t, violations[0].Message, "another_one, surprise_field")
	require.Contains(t, violations[0].Message, "pkg/data/scenario.go")
	require.Contains(t, violations[0].Message, "Pydantic")
}

func TestValidateRejectsUnknownSourceFields(t *testing.T) {
	f := loadFile(t, "realtime-dashboards.yml", validDescriptor)
	source := f.Raw["source"].(map[interface{}]interface{})
	source["branch"] = "main"

	violations := Validate([]File{f})
	require.Len(t, violations, 1)
	require.Contains(t, violations[0].Message, "branch")
	require.Contains(t, violations[0].Message, "ScenarioSource")
}

func TestValidateCollectsAcrossFiles(t *testing.T) {
	good := loadFile(t, "realtime-dashboards.yml", validDescriptor)
	bad := loadFile(t, "other-scenario.yml", validDescriptor)
	delete(bad.Raw, "entry_point")

	violations := Validate([]File{bad, good})
	require.Len(t, violations, 2)
	for _, v := range violations {
		require.Equal(t, "other-scenario.yml", v.File)
	}
}

func TestAllowedFieldsDeriveFromTags(t *testing.T) {
	fields := data.AllowedScenarioFields()
	require.True(t, fields["minutes_to_complete_jumpstart"])
	require.True(t, fields["feature_flags"])
	require.False(t, fields["source_path"])

	sourceFields := data.AllowedSourceFields()
	require.True(t, sourceFields["workspace_path"])
	require.True(t, sourceFields["repo_ref"])
	require.False(t, sourceFields["branch"])
}
