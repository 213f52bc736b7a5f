package data

import (
	"reflect"
	"strings"
)

// Scenario is the canonical shape of one descriptor file in the jumpstarts
// directory. The yaml tags double as the authoritative allowlist of field
// names: AllowedScenarioFields derives the set from them, so adding a field
// here is the only Go-side change needed. The companion Pydantic model in
// the jumpstart registry must be updated in lockstep.
type Scenario struct {
	ID                int            `yaml:"id"`
	LogicalID         string         `yaml:"logical_id"`
	Name              string         `yaml:"name"`
	Description       string         `yaml:"description"`
	DateAdded         string         `yaml:"date_added"`
	IncludeInListing  bool           `yaml:"include_in_listing"`
	WorkloadTags      []string       `yaml:"workload_tags"`
	ScenarioTags      []string       `yaml:"scenario_tags"`
	Type              string         `yaml:"type"`
	Source            ScenarioSource `yaml:"source"`
	ItemsInScope      []string       `yaml:"items_in_scope"`
	JumpstartDocsURI  string         `yaml:"jumpstart_docs_uri"`
	EntryPoint        string         `yaml:"entry_point"`
	OwnerEmail        string         `yaml:"owner_email"`
	MinutesToDeploy   float64        `yaml:"minutes_to_deploy"`
	MinutesToComplete float64        `yaml:"minutes_to_complete_jumpstart"`
	VideoURL          string         `yaml:"video_url"`
	Difficulty        string         `yaml:"difficulty"`
	LastUpdated       string         `yaml:"last_updated"`

	// Only read by the Python installer, accepted here so descriptors
	// authored against the registry schema pass the drift check.
	FeatureFlags []string `yaml:"feature_flags"`
	TestSuite    string   `yaml:"test_suite"`
}

// ScenarioSource is the nested source block pointing at the workspace
// template behind a scenario.
type ScenarioSource struct {
	WorkspacePath    string `yaml:"workspace_path"`
	PreviewImagePath string `yaml:"preview_image_path"`
	RepoURL          string `yaml:"repo_url"`
	RepoRef          string `yaml:"repo_ref"`
}

var (
	ScenarioTypes = []string{"Demo", "Tutorial", "Accelerator"}
	Difficulties  = []string{"Beginner", "Intermediate", "Advanced"}
)

// AllowedScenarioFields returns the top-level field names a descriptor may
// carry.
func AllowedScenarioFields() map[string]bool {
	return yamlFields(reflect.TypeOf(Scenario{}))
}

// AllowedSourceFields returns the field names allowed inside the source
// block.
func AllowedSourceFields() map[string]bool {
	return yamlFields(reflect.TypeOf(ScenarioSource{}))
}

func yamlFields(t reflect.Type) map[string]bool {
	fields := make(map[string]bool, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("yaml")
		if idx := strings.Index(tag, ","); idx != -1 {
			tag = tag[:idx]
		}
		if tag != "" && tag != "-" {
			fields[tag] = true
		}
	}
	return fields
}
