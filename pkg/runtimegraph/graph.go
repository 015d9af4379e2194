// Package runtimegraph implements the runtime identifier compatibility
// graph. A graph is a set of runtime descriptions, each importing the more
// general runtimes it is compatible with:
//
//	{
//	  "runtimes": {
//	    "win-x64": { "#import": [ "win" ] },
//	    "win":     { "#import": [ "any" ] }
//	  }
//	}
//
// Assets for a runtime R are usable by a runtime C when R is C itself or is
// reachable from C through imports. The relation is directed: win-x64 can
// use win assets, win cannot use win-x64 assets.
package runtimegraph

import (
	_ "embed"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/arthur-debert/assetsel/pkg/cache"
	"github.com/arthur-debert/assetsel/pkg/errors"
	"github.com/arthur-debert/assetsel/pkg/logging"
	"gopkg.in/yaml.v3"
)

//go:embed embedded/runtime.json
var defaultGraph []byte

// Description is one runtime and the runtimes it imports
type Description struct {
	RID     string
	Imports []string
}

// Graph is an immutable runtime compatibility graph. It is safe for
// concurrent use.
type Graph struct {
	runtimes map[string]Description
	closures cache.Cache[[]string]
}

// document mirrors runtime.json. YAML is a superset of JSON, so the same
// decoder reads both runtime.json files and hand-written YAML graphs.
type document struct {
	Runtimes map[string]struct {
		Imports []string `yaml:"#import"`
	} `yaml:"runtimes"`
}

// New builds a graph from runtime descriptions
func New(descriptions ...Description) *Graph {
	g := &Graph{
		runtimes: make(map[string]Description, len(descriptions)),
		closures: cache.NewConcurrent[[]string](),
	}
	for _, d := range descriptions {
		g.runtimes[d.RID] = Description{RID: d.RID, Imports: append([]string(nil), d.Imports...)}
	}
	return g
}

// Load decodes a runtime.json (or equivalent YAML) document
func Load(r io.Reader) (*Graph, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrRuntimeGraph, "failed to read runtime graph")
	}
	return parse(data)
}

// LoadFile decodes the runtime graph stored at path
func LoadFile(path string) (*Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrRuntimeGraph, "failed to read runtime graph %s", path).
			WithDetail("path", path)
	}
	g, err := parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrRuntimeGraph, "invalid runtime graph %s", path).
			WithDetail("path", path)
	}
	return g, nil
}

// Default returns the built-in graph covering the common Windows, Linux,
// macOS and FreeBSD runtime identifiers.
func Default() *Graph {
	g, err := parse(defaultGraph)
	if err != nil {
		panic("embedded runtime graph is invalid: " + err.Error())
	}
	return g
}

func parse(data []byte) (*Graph, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, errors.ErrRuntimeGraph, "failed to decode runtime graph")
	}
	if len(doc.Runtimes) == 0 {
		return nil, errors.New(errors.ErrRuntimeGraph, "runtime graph defines no runtimes")
	}

	descriptions := make([]Description, 0, len(doc.Runtimes))
	for rid, entry := range doc.Runtimes {
		if strings.TrimSpace(rid) == "" {
			return nil, errors.New(errors.ErrRuntimeGraph, "runtime graph contains an empty runtime identifier")
		}
		descriptions = append(descriptions, Description{RID: rid, Imports: entry.Imports})
	}

	logger := logging.GetLogger("runtimegraph")
	logger.Debug().
		Int("runtimes", len(descriptions)).
		Msg("Loaded runtime graph")

	return New(descriptions...), nil
}

// Has reports whether rid is described by the graph
func (g *Graph) Has(rid string) bool {
	_, ok := g.runtimes[rid]
	return ok
}

// Runtimes returns every described runtime identifier, sorted
func (g *Graph) Runtimes() []string {
	rids := make([]string, 0, len(g.runtimes))
	for rid := range g.runtimes {
		rids = append(rids, rid)
	}
	sort.Strings(rids)
	return rids
}

// Expand returns rid followed by every runtime it imports, nearest first.
// Cycles are tolerated; each runtime appears once.
func (g *Graph) Expand(rid string) []string {
	closure := g.closures.GetOrCompute(rid, func() []string {
		return g.expand(rid)
	})
	return append([]string(nil), closure...)
}

func (g *Graph) expand(rid string) []string {
	seen := map[string]bool{rid: true}
	order := []string{rid}
	for i := 0; i < len(order); i++ {
		for _, imported := range g.runtimes[order[i]].Imports {
			if seen[imported] {
				continue
			}
			seen[imported] = true
			order = append(order, imported)
		}
	}
	return order
}

// AreCompatible reports whether assets for available can be used by a
// project running on criteria.
func (g *Graph) AreCompatible(criteria, available string) bool {
	if criteria == available {
		return true
	}
	for _, rid := range g.closures.GetOrCompute(criteria, func() []string {
		return g.expand(criteria)
	}) {
		if rid == available {
			return true
		}
	}
	return false
}
