// SPDX-License-Identifier: MPL-2.0

package plan

import (
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/anyproject/anyproj/internal/issue"
	"github.com/anyproject/anyproj/internal/workspace"
)

// Generate reads PROGRAM_FEATURES.json, writes memory/plan.json, and
// merges any new tasks into memory/todo.json (by id, never duplicating).
// Returns the plan and the number of tasks newly added to the todo list.
func Generate(ws workspace.Workspace, now time.Time, logger *log.Logger) (*Plan, int, error) {
	raw, err := os.ReadFile(ws.FeaturesFile())
	if err != nil {
		return nil, 0, issue.NewErrorContext().
			WithOperation("read features").
			WithResource(ws.FeaturesFile()).
			WithSuggestion("Run 'anyproj init' first").
			Wrap(err).
			BuildError()
	}

	tasks, err := ParseFeatures(raw, now)
	if err != nil {
		return nil, 0, issue.WrapWithContext(err, "parse features", ws.FeaturesFile())
	}

	p := &Plan{
		GeneratedAt: now.UTC().Format(time.RFC3339),
		Tasks:       tasks,
	}

	if err := workspace.WriteJSONFile(ws.PlanFile(), p); err != nil {
		return nil, 0, err
	}

	todo := LoadTodo(ws)
	added := MergeTodo(todo, tasks)
	if err := workspace.WriteJSONFile(ws.TodoFile(), todo); err != nil {
		return nil, 0, err
	}

	logger.Info("plan generated", "tasks", len(tasks), "new", added)
	return p, added, nil
}

// LoadTodo reads memory/todo.json, returning an empty list when the file
// is missing or unparseable.
func LoadTodo(ws workspace.Workspace) *Todo {
	todo := &Todo{}
	if err := workspace.ReadJSONFile(ws.TodoFile(), todo); err != nil {
		return &Todo{}
	}
	return todo
}

// MergeTodo appends tasks whose id is not yet present and returns how
// many were added.
func MergeTodo(todo *Todo, tasks []Task) int {
	existing := map[string]bool{}
	for _, t := range todo.Tasks {
		existing[t.ID] = true
	}

	added := 0
	for _, t := range tasks {
		if !existing[t.ID] {
			todo.Tasks = append(todo.Tasks, t)
			existing[t.ID] = true
			added++
		}
	}
	return added
}
