package main

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/gcbaptista/go-label-matcher/model"
	"github.com/gcbaptista/go-label-matcher/store"
)

// labelEntry is one item of a candidate or seed file.
type labelEntry struct {
	ID          string `yaml:"id"`
	DisplayName string `yaml:"display_name"`
	Color       string `yaml:"color"`
}

// readLabelFile decodes a YAML (or JSON) list whose items are either plain
// names or mappings with id, display_name and color.
func readLabelFile(path string) ([]labelEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var nodes []yaml.Node
	if err := yaml.Unmarshal(data, &nodes); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	entries := make([]labelEntry, 0, len(nodes))
	for i, node := range nodes {
		var entry labelEntry
		switch node.Kind {
		case yaml.ScalarNode:
			entry.DisplayName = node.Value
		case yaml.MappingNode:
			if err := node.Decode(&entry); err != nil {
				return nil, fmt.Errorf("parse %s item %d: %w", path, i, err)
			}
		default:
			return nil, fmt.Errorf("parse %s item %d: expected a name or a mapping", path, i)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// loadCandidates reads candidates from path. Items without an id get their
// zero-based position as id.
func loadCandidates(path string) ([]model.Candidate, error) {
	entries, err := readLabelFile(path)
	if err != nil {
		return nil, err
	}

	candidates := make([]model.Candidate, 0, len(entries))
	for i, e := range entries {
		id := e.ID
		if id == "" {
			id = strconv.Itoa(i)
		}
		candidates = append(candidates, model.Candidate{ID: id, DisplayName: e.DisplayName})
	}
	return candidates, nil
}

// seedLabels adds every entry of path to labels and returns how many were added.
func seedLabels(labels *store.LabelStore, path string) (int, error) {
	entries, err := readLabelFile(path)
	if err != nil {
		return 0, err
	}

	for _, e := range entries {
		if _, err := labels.Add(e.DisplayName, e.Color); err != nil {
			return 0, fmt.Errorf("seed label %q: %w", e.DisplayName, err)
		}
	}
	return len(entries), nil
}
