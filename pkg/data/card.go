package data

// ScenarioCard is the flattened projection of a listed scenario written to
// scenarios.json and consumed read-only by the catalog UI and the search
// engine.
type ScenarioCard struct {
	ID                string   `json:"id"`
	Title             string   `json:"title"`
	Description       string   `json:"description"`
	Type              string   `json:"type"`
	Difficulty        string   `json:"difficulty"`
	Tags              []string `json:"tags"`
	WorkloadTags      []string `json:"workloadTags"`
	PreviewImage      string   `json:"previewImage"`
	VideoURL          string   `json:"videoUrl"`
	MinutesToDeploy   float64  `json:"minutesToDeploy"`
	MinutesToComplete float64  `json:"minutesToComplete"`
	ItemsInScope      []string `json:"itemsInScope"`
	DocsURI           string   `json:"docsUri"`
	Slug              string   `json:"slug"`
	LastUpdated       string   `json:"lastUpdated"`
	Body              string   `json:"body"`
}
