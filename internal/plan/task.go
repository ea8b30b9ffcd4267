// SPDX-License-Identifier: MPL-2.0

// Package plan turns the workspace's feature declarations into planning
// data: a generated plan, a deduplicated todo list, and rate-limit-sized
// task batches.
package plan

// Task statuses.
const (
	StatusPending = "pending"
	StatusBatched = "batched"
)

type (
	// Task is one unit of planned work derived from a feature.
	Task struct {
		ID          string `json:"id"`
		Title       string `json:"title"`
		Description string `json:"description"`
		Status      string `json:"status"`
		CreatedAt   string `json:"created_at"`
		BatchedAt   string `json:"batched_at,omitempty"`
	}

	// Plan is the generated plan document (memory/plan.json).
	Plan struct {
		GeneratedAt string `json:"generated_at"`
		Tasks       []Task `json:"tasks"`
	}

	// Todo is the accumulated task list (memory/todo.json).
	Todo struct {
		Tasks []Task `json:"tasks"`
	}

	// Batch is one batch file's content (memory/batches/batch_<n>_<ts>.json).
	Batch struct {
		CreatedAt string `json:"created_at"`
		Tasks     []Task `json:"tasks"`
	}
)

// Pending returns the tasks still waiting to be batched.
func (t *Todo) Pending() []Task {
	var pending []Task
	for _, task := range t.Tasks {
		if task.Status == StatusPending {
			pending = append(pending, task)
		}
	}
	return pending
}

// CountByStatus returns the number of tasks with the given status.
func (t *Todo) CountByStatus(status string) int {
	n := 0
	for _, task := range t.Tasks {
		if task.Status == status {
			n++
		}
	}
	return n
}
