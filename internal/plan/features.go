// SPDX-License-Identifier: MPL-2.0

package plan

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// ParseFeatures derives tasks from a PROGRAM_FEATURES.json document.
// Three shapes are accepted: a "features" object keyed by feature name, a
// "features" list of feature objects, or (absent both) top-level boolean
// toggles. Output order is deterministic.
func ParseFeatures(raw []byte, now time.Time) ([]Task, error) {
	doc := map[string]any{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parsing features: %w", err)
	}

	createdAt := now.UTC().Format(time.RFC3339)

	switch features := doc["features"].(type) {
	case map[string]any:
		keys := maps.Keys(features)
		slices.Sort(keys)
		tasks := make([]Task, 0, len(keys))
		for _, k := range keys {
			tasks = append(tasks, Task{
				ID:          k,
				Title:       k,
				Description: describe(features[k]),
				Status:      StatusPending,
				CreatedAt:   createdAt,
			})
		}
		return tasks, nil

	case []any:
		tasks := make([]Task, 0, len(features))
		for i, item := range features {
			obj, ok := item.(map[string]any)
			if !ok {
				tasks = append(tasks, Task{
					ID:          strconv.Itoa(i + 1),
					Title:       describe(item),
					Description: describe(item),
					Status:      StatusPending,
					CreatedAt:   createdAt,
				})
				continue
			}
			id := stringField(obj, "id")
			if id == "" {
				id = stringField(obj, "title")
			}
			if id == "" {
				id = strconv.Itoa(i + 1)
			}
			title := stringField(obj, "title")
			if title == "" {
				title = stringField(obj, "name")
			}
			if title == "" {
				title = id
			}
			tasks = append(tasks, Task{
				ID:          id,
				Title:       title,
				Description: describe(obj),
				Status:      StatusPending,
				CreatedAt:   createdAt,
			})
		}
		return tasks, nil

	default:
		// Fall back to top-level boolean toggles.
		keys := maps.Keys(doc)
		slices.Sort(keys)
		var tasks []Task
		for _, k := range keys {
			if enabled, ok := doc[k].(bool); ok {
				tasks = append(tasks, Task{
					ID:          k,
					Title:       k,
					Description: "enabled: " + strconv.FormatBool(enabled),
					Status:      StatusPending,
					CreatedAt:   createdAt,
				})
			}
		}
		return tasks, nil
	}
}

func stringField(obj map[string]any, key string) string {
	s, _ := obj[key].(string)
	return s
}

// describe renders a feature value as a one-line task description.
func describe(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case nil:
		return ""
	default:
		data, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprint(t)
		}
		return string(data)
	}
}
