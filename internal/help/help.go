// Package help turns the compiler's help log into key reference documentation.
package help

import (
	"cmp"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/fehkeys/fehkeys/internal/compiler"
)

// Topic documents one action and every key bound to it.
type Topic struct {
	Action      string   `json:"action"`
	Keys        []string `json:"keys"`
	Description string   `json:"description,omitempty"`
}

// Sort returns entries ordered by action name. Keys of one action keep their
// acceptance order.
func Sort(entries []compiler.HelpEntry) []compiler.HelpEntry {
	out := slices.Clone(entries)
	slices.SortStableFunc(out, func(a, b compiler.HelpEntry) int {
		return cmp.Compare(a.Action, b.Action)
	})
	return out
}

// Topics groups entries by action, sorted by action name, and attaches the
// description of each action from descriptions.
func Topics(entries []compiler.HelpEntry, descriptions map[string]string) []Topic {
	var topics []Topic
	for _, e := range Sort(entries) {
		if n := len(topics); n > 0 && topics[n-1].Action == e.Action {
			topics[n-1].Keys = append(topics[n-1].Keys, e.Key)
			continue
		}
		topics = append(topics, Topic{
			Action:      e.Action,
			Keys:        []string{e.Key},
			Description: descriptions[e.Action],
		})
	}
	return topics
}

// Descriptions returns the built-in descriptions overlaid with extra.
func Descriptions(extra map[string]string) map[string]string {
	out := make(map[string]string, len(builtinDescriptions)+len(extra))
	for k, v := range builtinDescriptions {
		out[k] = v
	}
	for k, v := range extra {
		out[k] = v
	}
	return out
}

// LoadDescriptions reads an `action: description` YAML mapping.
func LoadDescriptions(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var m map[string]string
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decoding descriptions %s: %w", path, err)
	}
	return m, nil
}
