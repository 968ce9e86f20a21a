package graphjson

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/citygrid/taskgraph/core"
)

// Save writes g to path as an indented JSON document.
func Save(g *core.Graph, path string) error {
	data, err := Marshal(g)
	if err != nil {
		return err
	}
	if err = os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("graphjson: write %s: %w", path, err)
	}

	return nil
}

// Load reads one graph document from path.
func Load(path string) (*core.Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("graphjson: read %s: %w", path, err)
	}

	g, err := Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w (%s)", err, path)
	}

	return g, nil
}

// LoadDir reads every *.json file in dir, in lexical file-name order.
func LoadDir(dir string) ([]*core.Graph, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("graphjson: read dir %s: %w", dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".json") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	graphs := make([]*core.Graph, 0, len(names))
	for _, name := range names {
		g, err := Load(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		graphs = append(graphs, g)
	}

	return graphs, nil
}
