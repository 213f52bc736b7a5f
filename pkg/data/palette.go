package data

// WorkloadColor is one entry of workload-colors.json, keyed by workload
// tag. Icon is the public URL of the tag icon, empty when none was found.
type WorkloadColor struct {
	Light  string `json:"light"`
	Accent string `json:"accent"`
	Mid    string `json:"mid"`
	Icon   string `json:"icon"`
}
