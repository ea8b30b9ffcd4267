// SPDX-License-Identifier: MPL-2.0

package plan

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/anyproject/anyproj/internal/workspace"
)

// DefaultBatchSize is the number of tasks per batch file.
const DefaultBatchSize = 5

// BatchOptions controls BatchPending.
type BatchOptions struct {
	// Size is the number of tasks per batch (DefaultBatchSize when <= 0).
	Size int
	// Delay inserted between batch writes to throttle downstream consumers.
	Delay time.Duration
}

// BatchPending slices the todo list's pending tasks into batch files
// under memory/batches/, marks them batched, and writes the todo list
// back. Returns the batch file paths created.
func BatchPending(ws workspace.Workspace, opts BatchOptions, now time.Time, logger *log.Logger) ([]string, error) {
	size := opts.Size
	if size <= 0 {
		size = DefaultBatchSize
	}

	todo := LoadTodo(ws)
	pending := todo.Pending()
	if len(pending) == 0 {
		logger.Info("no pending tasks to batch")
		return nil, nil
	}

	if err := os.MkdirAll(ws.BatchesDir(), 0o755); err != nil {
		return nil, fmt.Errorf("creating batches dir: %w", err)
	}

	ts := now.UTC().Format("20060102T150405Z")
	batched := map[string]bool{}
	var paths []string

	for i := 0; i*size < len(pending); i++ {
		tasks := pending[i*size : min((i+1)*size, len(pending))]
		path := filepath.Join(ws.BatchesDir(), fmt.Sprintf("batch_%d_%s.json", i+1, ts))
		if err := workspace.WriteJSONFile(path, Batch{CreatedAt: ts, Tasks: tasks}); err != nil {
			return paths, err
		}
		logger.Info("created batch", "path", path, "tasks", len(tasks))
		paths = append(paths, path)
		for _, t := range tasks {
			batched[t.ID] = true
		}
		if opts.Delay > 0 {
			time.Sleep(opts.Delay)
		}
	}

	for i := range todo.Tasks {
		if batched[todo.Tasks[i].ID] {
			todo.Tasks[i].Status = StatusBatched
			todo.Tasks[i].BatchedAt = ts
		}
	}
	if err := workspace.WriteJSONFile(ws.TodoFile(), todo); err != nil {
		return paths, err
	}

	return paths, nil
}
