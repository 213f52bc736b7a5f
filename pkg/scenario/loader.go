package scenario

import (
	"errors"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"sort"

	"github.com/fabric-jumpstart/jumpgen/pkg/data"
	"gopkg.in/yaml.v2"
)

const (
	DescriptorExtension = ".yml"
)

var (
	ErrScenarioDirNotFound = errors.New("could not find scenarios directory")
)

// File pairs one parsed descriptor with its source filename and the raw
// key mapping the contract checks run against.
type File struct {
	Name     string
	Scenario data.Scenario
	Raw      map[interface{}]interface{}
}

// LogicalID returns the filename without the descriptor extension, the
// value the logical_id field must carry.
func (f File) LogicalID() string {
	return f.Name[:len(f.Name)-len(filepath.Ext(f.Name))]
}

// LoadDir reads every descriptor under dir. Unparseable YAML aborts the
// whole load since downstream artifacts assume a fully parsed collection;
// well-formed documents with mistyped fields load with those fields
// zero-valued so the contract checks can report them against the raw
// mapping. The returned files are sorted ascending by scenario id; ties
// keep filename order.
func LoadDir(dir string) ([]File, error) {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return nil, ErrScenarioDirNotFound
	}

	paths, err := filepath.Glob(filepath.Join(dir, "*"+DescriptorExtension))
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)

	files := make([]File, 0, len(paths))
	for _, path := range paths {
		descriptorData, err := ioutil.ReadFile(path)
		if err != nil {
			return nil, err
		}

		var sc data.Scenario
		if err := yaml.Unmarshal(descriptorData, &sc); err != nil {
			// A TypeError means the document itself is fine but some
			// fields have the wrong type; those stay zero-valued here
			// and surface as violations during validation.
			if _, mistyped := err.(*yaml.TypeError); !mistyped {
				return nil, fmt.Errorf("could not parse %s: %w", filepath.Base(path), err)
			}
		}

		raw := map[interface{}]interface{}{}
		if err := yaml.Unmarshal(descriptorData, &raw); err != nil {
			return nil, fmt.Errorf("could not parse %s: %w", filepath.Base(path), err)
		}

		files = append(files, File{
			Name:     filepath.Base(path),
			Scenario: sc,
			Raw:      raw,
		})
	}

	sort.SliceStable(files, func(i, j int) bool {
		return files[i].Scenario.ID < files[j].Scenario.ID
	})

	return files, nil
}

// Scenarios extracts the ordered scenario records from loaded files.
func Scenarios(files []File) []data.Scenario {
	scenarios := make([]data.Scenario, 0, len(files))
	for _, f := range files {
		scenarios = append(scenarios, f.Scenario)
	}
	return scenarios
}

// DuplicateIDs returns ids claimed by more than one descriptor. Duplicates
// are not rejected, they only get surfaced as a warning by the validate
// command.
func DuplicateIDs(files []File) []int {
	seen := map[int]int{}
	for _, f := range files {
		seen[f.Scenario.ID]++
	}
	var duplicates []int
	for id, count := range seen {
		if count > 1 {
			duplicates = append(duplicates, id)
		}
	}
	sort.Ints(duplicates)
	return duplicates
}
