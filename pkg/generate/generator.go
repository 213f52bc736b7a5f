package generate

import (
	"encoding/json"
	"io/ioutil"
	"net/url"
	"os"
	"path/filepath"
	"sort"

	"github.com/fabric-jumpstart/jumpgen/pkg/data"
	"github.com/fabric-jumpstart/jumpgen/pkg/logging"
	"github.com/fabric-jumpstart/jumpgen/pkg/navtree"
	"github.com/fabric-jumpstart/jumpgen/pkg/palette"
	"github.com/fabric-jumpstart/jumpgen/pkg/probe"
	"github.com/fabric-jumpstart/jumpgen/pkg/scenario"
	"github.com/fabric-jumpstart/jumpgen/pkg/uhf"
	"github.com/flosch/pongo2/v4"
)

const (
	DefaultDifficulty = "Intermediate"

	iconPublicPrefix = "/images/tags/workload/"
)

// Generator runs the whole content pipeline for one build: docs tree,
// side-menu.json, scenarios.json, workload-colors.json, icon copies and
// the best-effort uhf.json. Output is rebuilt wholesale on every run.
type Generator struct {
	ScenariosDir string
	OutputDir    string
	IconsDir     string
	IconBaseURL  string
	SampleImage  string
	UHFURL       string
	SkipUHF      bool

	prober *probe.Prober
}

func New(scenariosDir, outputDir string) *Generator {
	return &Generator{
		ScenariosDir: scenariosDir,
		OutputDir:    outputDir,
		UHFURL:       uhf.DefaultURL,
		prober:       probe.New(),
	}
}

func (g *Generator) docsDir() string   { return filepath.Join(g.OutputDir, "docs") }
func (g *Generator) dataDir() string   { return filepath.Join(g.OutputDir, "data") }
func (g *Generator) publicDir() string { return filepath.Join(g.OutputDir, "public") }

// Run executes the pipeline. Malformed descriptors abort the run; missing
// optional assets and a failed footer fetch do not.
func (g *Generator) Run() error {
	files, err := scenario.LoadDir(g.ScenariosDir)
	if err != nil {
		return err
	}
	scenarios := scenario.Scenarios(files)
	logging.Log.Debugf("found %d scenarios", len(scenarios))

	if err := g.generateDocs(scenarios); err != nil {
		return err
	}

	if err := os.MkdirAll(g.dataDir(), 0755); err != nil {
		return err
	}

	tree := navtree.SortTree(navtree.Build(scenarios))
	if err := g.writeJSON("side-menu.json", tree); err != nil {
		return err
	}
	logging.Log.Debug("✔ generated side-menu.json")

	cards := g.Cards(scenarios)
	if err := g.writeJSON("scenarios.json", cards); err != nil {
		return err
	}
	logging.Log.Debug("✔ generated scenarios.json")

	colors := g.WorkloadColors(scenarios)
	if err := g.writeJSON("workload-colors.json", colors); err != nil {
		return err
	}
	logging.Log.Debug("✔ generated workload-colors.json")

	g.copyIcons()

	if !g.SkipUHF {
		fragment, err := uhf.Fetch(g.UHFURL)
		if err != nil {
			logging.Log.Warnf("✗ could not fetch the footer fragment, writing empty fallback: %s", err)
			fragment = uhf.Empty()
		}
		if err := g.writeJSON("uhf.json", fragment); err != nil {
			return err
		}
		logging.Log.Debug("✔ generated uhf.json")
	}

	return nil
}

// generateDocs rebuilds the docs tree from scratch: root and catalog
// _index.md files plus one directory per listed scenario holding the
// frontmatter document and the content markdown.
func (g *Generator) generateDocs(scenarios []data.Scenario) error {
	if err := os.RemoveAll(g.docsDir()); err != nil {
		return err
	}

	catalogDir := filepath.Join(g.docsDir(), navtree.CatalogBranch)
	if err := os.MkdirAll(catalogDir, 0755); err != nil {
		return err
	}
	if err := ioutil.WriteFile(filepath.Join(g.docsDir(), "_index.md"), []byte(rootIndexMarkdown), 0644); err != nil {
		return err
	}
	if err := ioutil.WriteFile(filepath.Join(catalogDir, "_index.md"), []byte(catalogIndexMarkdown), 0644); err != nil {
		return err
	}

	listed := 0
	for _, sc := range scenarios {
		if !sc.IncludeInListing {
			continue
		}

		scenarioDir := filepath.Join(catalogDir, sc.LogicalID)
		imgDir := filepath.Join(scenarioDir, "img")
		if err := os.MkdirAll(imgDir, 0755); err != nil {
			return err
		}

		frontmatter, err := frontmatterTemplate.Execute(pongo2.Context{
			"title":       sc.Name,
			"weight":      sc.ID,
			"description": sc.Description,
		})
		if err != nil {
			return err
		}
		if err := ioutil.WriteFile(filepath.Join(scenarioDir, "_index.md"), []byte(frontmatter), 0644); err != nil {
			return err
		}

		content, err := ContentMarkdown(sc)
		if err != nil {
			return err
		}
		if err := ioutil.WriteFile(filepath.Join(scenarioDir, "content.md"), []byte(content), 0644); err != nil {
			return err
		}

		// Missing sample image is fine, relative image support just
		// goes unproven for this scenario.
		g.copySampleImage(filepath.Join(imgDir, "sample.png"))
		listed++
	}

	logging.Log.Debugf("✔ generated docs for %d listed scenarios", listed)
	return nil
}

// ContentMarkdown renders the generated markdown body for one scenario.
func ContentMarkdown(sc data.Scenario) (string, error) {
	return contentTemplate.Execute(pongo2.Context{
		"title":       sc.Name,
		"description": sc.Description,
		"workloads":   sc.WorkloadTags,
	})
}

// Cards projects the listed scenarios into the flattened card records.
// Body text comes from the generated content markdown, stripped to plain
// text.
func (g *Generator) Cards(scenarios []data.Scenario) []data.ScenarioCard {
	cards := []data.ScenarioCard{}
	for _, sc := range scenarios {
		if !sc.IncludeInListing {
			continue
		}

		body := ""
		contentPath := filepath.Join(g.docsDir(), navtree.CatalogBranch, sc.LogicalID, "content.md")
		if content, err := ioutil.ReadFile(contentPath); err == nil {
			body = StripMarkdown(string(content))
		}

		cards = append(cards, Card(sc, body))
	}
	return cards
}

// Card builds the UI-facing projection of one scenario, applying the
// catalog defaults for difficulty, preview image and last-updated date.
func Card(sc data.Scenario, body string) data.ScenarioCard {
	difficulty := sc.Difficulty
	if difficulty == "" {
		difficulty = DefaultDifficulty
	}

	lastUpdated := sc.LastUpdated
	if lastUpdated == "" {
		lastUpdated = sc.DateAdded
	}

	tags := append([]string{}, sc.WorkloadTags...)
	tags = append(tags, sc.ScenarioTags...)

	return data.ScenarioCard{
		ID:                sc.LogicalID,
		Title:             sc.Name,
		Description:       sc.Description,
		Type:              sc.Type,
		Difficulty:        difficulty,
		Tags:              tags,
		WorkloadTags:      sc.WorkloadTags,
		PreviewImage:      "https://placehold.co/600x400?text=" + url.QueryEscape(sc.Name),
		VideoURL:          sc.VideoURL,
		MinutesToDeploy:   sc.MinutesToDeploy,
		MinutesToComplete: sc.MinutesToComplete,
		ItemsInScope:      sc.ItemsInScope,
		DocsURI:           sc.JumpstartDocsURI,
		Slug:              sc.LogicalID,
		LastUpdated:       lastUpdated,
		Body:              body,
	}
}

// WorkloadColors derives the palette entry for every distinct workload
// tag, in sorted order. Icons resolve against the icons directory, or via
// parallel URL probes when an icon base URL is configured. Colors come
// from the slug's SVG when one exists, the fixed default palette
// otherwise.
func (g *Generator) WorkloadColors(scenarios []data.Scenario) map[string]data.WorkloadColor {
	tagSet := map[string]bool{}
	for _, sc := range scenarios {
		for _, tag := range sc.WorkloadTags {
			tagSet[tag] = true
		}
	}
	tags := make([]string, 0, len(tagSet))
	for tag := range tagSet {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	colors := map[string]data.WorkloadColor{}
	for _, tag := range tags {
		slug := palette.Slug(tag)

		entry := palette.PickColors(g.extractIconColors(slug))
		entry.Icon = g.resolveIcon(slug)
		colors[tag] = entry
	}
	return colors
}

func (g *Generator) extractIconColors(slug string) []string {
	svg, err := ioutil.ReadFile(filepath.Join(g.IconsDir, slug+".svg"))
	if err != nil {
		return nil
	}
	return palette.ExtractColors(string(svg))
}

func (g *Generator) resolveIcon(slug string) string {
	if g.IconBaseURL != "" {
		candidates := make([]string, 0, len(palette.IconExtensions))
		for _, ext := range palette.IconExtensions {
			candidates = append(candidates, g.IconBaseURL+"/"+slug+ext)
		}
		return g.prober.FirstAvailable(candidates)
	}

	for _, ext := range palette.IconExtensions {
		if _, err := os.Stat(filepath.Join(g.IconsDir, slug+ext)); err == nil {
			return iconPublicPrefix + slug + ext
		}
	}
	return ""
}

// copyIcons mirrors the shared workload icons into the public output so
// the site can serve them. Best-effort, a missing icons directory is not
// an error.
func (g *Generator) copyIcons() {
	if g.IconsDir == "" {
		return
	}
	entries, err := ioutil.ReadDir(g.IconsDir)
	if err != nil {
		return
	}

	targetDir := filepath.Join(g.publicDir(), "images", "tags", "workload")
	if err := os.MkdirAll(targetDir, 0755); err != nil {
		logging.Log.Warnf("✗ could not create %s", targetDir)
		return
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		iconData, err := ioutil.ReadFile(filepath.Join(g.IconsDir, entry.Name()))
		if err != nil {
			logging.Log.Warnf("✗ could not read icon `%s`", entry.Name())
			continue
		}
		if err := ioutil.WriteFile(filepath.Join(targetDir, entry.Name()), iconData, 0644); err != nil {
			logging.Log.Warnf("✗ could not copy icon `%s`", entry.Name())
		}
	}
	logging.Log.Debug("✔ copied workload icons")
}

func (g *Generator) copySampleImage(target string) {
	if g.SampleImage == "" {
		return
	}
	imageData, err := ioutil.ReadFile(g.SampleImage)
	if err != nil {
		return
	}
	_ = ioutil.WriteFile(target, imageData, 0644)
}

func (g *Generator) writeJSON(name string, v interface{}) error {
	jsonData, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return ioutil.WriteFile(filepath.Join(g.dataDir(), name), jsonData, 0644)
}
