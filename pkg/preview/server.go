package preview

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io/ioutil"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/fabric-jumpstart/jumpgen/pkg/data"
	"github.com/fabric-jumpstart/jumpgen/pkg/logging"
	"github.com/fabric-jumpstart/jumpgen/pkg/navtree"
	"github.com/fabric-jumpstart/jumpgen/pkg/search"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/patrickmn/go-cache"
)

var (
	ErrorArtifactsNotFound = errors.New("could not find generated artifacts, run `jumpgen generate` first")
)

const (
	cardsCacheKey = "cards"
	treeCacheKey  = "tree"
)

type previewServer struct {
	hostname  string
	port      int
	buildKey  string
	outputDir string
	server    *http.Server
	c         *cache.Cache
}

// GetPreviewServer serves the generated artifacts locally: an HTML index
// of the catalog, the raw data and doc files, and search/filter endpoints
// over the card collection. Artifacts are re-read with a short TTL so a
// fresh generate run shows up without a restart.
func GetPreviewServer(hostname string, port int, outputDir string) (*previewServer, error) {
	if _, err := os.Stat(filepath.Join(outputDir, "data", "scenarios.json")); os.IsNotExist(err) {
		return nil, ErrorArtifactsNotFound
	}

	return &previewServer{
		hostname:  hostname,
		port:      port,
		buildKey:  uuid.NewString(),
		outputDir: outputDir,
		c:         cache.New(time.Second*5, time.Minute),
	}, nil
}

func (ps *previewServer) router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/index", ps.index).Methods("GET")
	r.HandleFunc("/data/{file}", ps.serveData).Methods("GET")
	r.HandleFunc("/docs/{slug}/{file}", ps.serveDoc).Methods("GET")
	r.HandleFunc("/api/search", ps.search).Methods("GET")
	r.HandleFunc("/api/options", ps.options).Methods("GET")
	r.HandleFunc("/api/filter", ps.filter).Methods("POST")
	return r
}

func (ps *previewServer) Start() {
	server := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", ps.hostname, ps.port),
		Handler: ps.router(),
	}
	ps.server = server
	err := ps.server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		logging.Log.Fatal(err)
	}
}

func (ps *previewServer) Stop() {
	if ps.server == nil {
		return
	}
	_ = ps.server.Shutdown(context.Background())
}

func (ps *previewServer) engine() (*search.Engine, error) {
	if cached, ok := ps.c.Get(cardsCacheKey); ok {
		return cached.(*search.Engine), nil
	}

	cardData, err := ioutil.ReadFile(filepath.Join(ps.outputDir, "data", "scenarios.json"))
	if err != nil {
		return nil, err
	}
	var cards []data.ScenarioCard
	if err := json.Unmarshal(cardData, &cards); err != nil {
		return nil, err
	}

	engine := search.NewEngine(cards)
	ps.c.Set(cardsCacheKey, engine, cache.DefaultExpiration)
	return engine, nil
}

func (ps *previewServer) tree() (*data.NavNode, error) {
	if cached, ok := ps.c.Get(treeCacheKey); ok {
		return cached.(*data.NavNode), nil
	}

	treeData, err := ioutil.ReadFile(filepath.Join(ps.outputDir, "data", "side-menu.json"))
	if err != nil {
		return nil, err
	}
	node := &data.NavNode{}
	if err := json.Unmarshal(treeData, node); err != nil {
		return nil, err
	}

	navtree.SortTree(node)
	ps.c.Set(treeCacheKey, node, cache.DefaultExpiration)
	return node, nil
}

func (ps *previewServer) index(w http.ResponseWriter, req *http.Request) {
	engine, err := ps.engine()
	if err != nil {
		logging.Log.Error(err)
		w.WriteHeader(500)
		return
	}

	index, err := template.New("cards").Parse("<html>\n<body>\n<!-- build {{ .BuildKey }} -->\n{{ range .Cards }}\n<li><a href=\"/docs/{{ .Slug }}/content.md\">{{ .Title }}</a> ({{ .Type }}, {{ .Difficulty }})</li>\n{{ end }}\n</body>\n</html>")
	if err != nil {
		logging.Log.Error(err)
		return
	}

	if err := index.Execute(w, map[string]interface{}{
		"BuildKey": ps.buildKey,
		"Cards":    engine.Cards(),
	}); err != nil {
		logging.Log.Error(err)
		return
	}
}

func (ps *previewServer) serveData(w http.ResponseWriter, req *http.Request) {
	file, _ := mux.Vars(req)["file"]
	ps.serveFile(w, filepath.Join(ps.outputDir, "data", filepath.Base(file)), "application/json")
}

func (ps *previewServer) serveDoc(w http.ResponseWriter, req *http.Request) {
	slug, _ := mux.Vars(req)["slug"]
	file, _ := mux.Vars(req)["file"]
	path := filepath.Join(ps.outputDir, "docs", navtree.CatalogBranch, filepath.Base(slug), filepath.Base(file))
	ps.serveFile(w, path, "text/markdown")
}

func (ps *previewServer) serveFile(w http.ResponseWriter, path string, contentType string) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		w.WriteHeader(404)
		return
	}
	fileData, err := ioutil.ReadFile(path)
	if err != nil {
		logging.Log.Error(err)
		w.WriteHeader(500)
		return
	}
	w.Header().Set("content-type", contentType)
	_, _ = w.Write(fileData)
}

type searchResult struct {
	Slug       string `json:"slug"`
	Title      string `json:"title"`
	MatchField string `json:"matchField"`
	Excerpt    string `json:"excerpt,omitempty"`
}

func (ps *previewServer) search(w http.ResponseWriter, req *http.Request) {
	engine, err := ps.engine()
	if err != nil {
		logging.Log.Error(err)
		w.WriteHeader(500)
		return
	}

	query := req.URL.Query().Get("q")
	results := []searchResult{}
	for _, match := range engine.Search(query) {
		results = append(results, searchResult{
			Slug:       match.Card.Slug,
			Title:      match.Card.Title,
			MatchField: match.Field,
			Excerpt:    match.Excerpt,
		})
	}

	ps.writeJSON(w, results)
}

func (ps *previewServer) options(w http.ResponseWriter, req *http.Request) {
	engine, err := ps.engine()
	if err != nil {
		logging.Log.Error(err)
		w.WriteHeader(500)
		return
	}
	ps.writeJSON(w, engine.Options())
}

type filterResponse struct {
	Slugs []string      `json:"slugs"`
	Tree  *data.NavNode `json:"tree"`
}

func (ps *previewServer) filter(w http.ResponseWriter, req *http.Request) {
	engine, err := ps.engine()
	if err != nil {
		logging.Log.Error(err)
		w.WriteHeader(500)
		return
	}
	tree, err := ps.tree()
	if err != nil {
		logging.Log.Error(err)
		w.WriteHeader(500)
		return
	}

	filters := search.Filters{}
	if err := json.NewDecoder(req.Body).Decode(&filters); err != nil {
		w.WriteHeader(400)
		return
	}

	matching := engine.MatchingSlugs(filters)

	// nil slugs means nothing is filtered and the full tree goes back.
	response := filterResponse{Tree: navtree.Filter(tree, matching)}
	if matching != nil {
		response.Slugs = []string{}
		for slug := range matching {
			response.Slugs = append(response.Slugs, slug)
		}
		sort.Strings(response.Slugs)
	}

	ps.writeJSON(w, response)
}

func (ps *previewServer) writeJSON(w http.ResponseWriter, v interface{}) {
	jsonData, err := json.Marshal(v)
	if err != nil {
		logging.Log.Error(err)
		w.WriteHeader(500)
		return
	}
	w.Header().Set("content-type", "application/json")
	_, _ = w.Write(jsonData)
}
