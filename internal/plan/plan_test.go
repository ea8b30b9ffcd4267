// SPDX-License-Identifier: MPL-2.0

package plan

import (
	"io"
	"os"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/anyproject/anyproj/internal/workspace"
)

var testNow = time.Date(2025, 9, 25, 7, 23, 18, 0, time.UTC)

func testWorkspace(t *testing.T) workspace.Workspace {
	t.Helper()
	ws, err := workspace.At(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(ws.MemoryDir(), 0o755); err != nil {
		t.Fatal(err)
	}
	return ws
}

func testLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestParseFeaturesObjectForm(t *testing.T) {
	t.Parallel()

	raw := []byte(`{"features": {"login": {"priority": 1}, "export": "csv export"}}`)
	tasks, err := ParseFeatures(raw, testNow)
	if err != nil {
		t.Fatalf("ParseFeatures() error = %v", err)
	}

	if len(tasks) != 2 {
		t.Fatalf("got %d tasks, want 2", len(tasks))
	}
	// Keys are emitted sorted for deterministic output.
	if tasks[0].ID != "export" || tasks[1].ID != "login" {
		t.Errorf("task ids = %q, %q; want export, login", tasks[0].ID, tasks[1].ID)
	}
	if tasks[0].Description != "csv export" {
		t.Errorf("export description = %q", tasks[0].Description)
	}
	if tasks[1].Status != StatusPending {
		t.Errorf("status = %q, want %q", tasks[1].Status, StatusPending)
	}
}

func TestParseFeaturesListForm(t *testing.T) {
	t.Parallel()

	raw := []byte(`{"features": [
		{"id": "f1", "title": "Login"},
		{"name": "Sync"},
		"bare string feature"
	]}`)
	tasks, err := ParseFeatures(raw, testNow)
	if err != nil {
		t.Fatalf("ParseFeatures() error = %v", err)
	}

	if len(tasks) != 3 {
		t.Fatalf("got %d tasks, want 3", len(tasks))
	}
	if tasks[0].ID != "f1" || tasks[0].Title != "Login" {
		t.Errorf("task[0] = %+v, want id f1 title Login", tasks[0])
	}
	if tasks[1].ID != "2" || tasks[1].Title != "Sync" {
		t.Errorf("task[1] = %+v, want positional id 2 title Sync", tasks[1])
	}
	if tasks[2].ID != "3" || tasks[2].Title != "bare string feature" {
		t.Errorf("task[2] = %+v", tasks[2])
	}
}

func TestParseFeaturesToggleFallback(t *testing.T) {
	t.Parallel()

	raw := []byte(`{"dark_mode": true, "telemetry": false, "name": "App"}`)
	tasks, err := ParseFeatures(raw, testNow)
	if err != nil {
		t.Fatalf("ParseFeatures() error = %v", err)
	}

	if len(tasks) != 2 {
		t.Fatalf("got %d tasks, want 2 (only booleans)", len(tasks))
	}
	if tasks[0].ID != "dark_mode" || tasks[0].Description != "enabled: true" {
		t.Errorf("task[0] = %+v", tasks[0])
	}
	if tasks[1].ID != "telemetry" || tasks[1].Description != "enabled: false" {
		t.Errorf("task[1] = %+v", tasks[1])
	}
}

func TestParseFeaturesRejectsInvalidJSON(t *testing.T) {
	t.Parallel()

	if _, err := ParseFeatures([]byte("{nope"), testNow); err == nil {
		t.Fatal("ParseFeatures() error = nil for invalid JSON")
	}
}

func TestMergeTodoDeduplicatesById(t *testing.T) {
	t.Parallel()

	todo := &Todo{Tasks: []Task{{ID: "f1", Status: StatusBatched}}}
	added := MergeTodo(todo, []Task{
		{ID: "f1", Status: StatusPending},
		{ID: "f2", Status: StatusPending},
		{ID: "f2", Status: StatusPending},
	})

	if added != 1 {
		t.Errorf("MergeTodo() added = %d, want 1", added)
	}
	if len(todo.Tasks) != 2 {
		t.Fatalf("todo has %d tasks, want 2", len(todo.Tasks))
	}
	// The existing task keeps its state.
	if todo.Tasks[0].Status != StatusBatched {
		t.Errorf("existing task status = %q, want untouched", todo.Tasks[0].Status)
	}
}

func TestGenerateWritesPlanAndTodo(t *testing.T) {
	t.Parallel()

	ws := testWorkspace(t)
	features := `{"features": [{"id": "f1", "title": "Login"}, {"id": "f2", "title": "Sync"}]}`
	if err := os.WriteFile(ws.FeaturesFile(), []byte(features), 0o644); err != nil {
		t.Fatal(err)
	}

	p, added, err := Generate(ws, testNow, testLogger())
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if len(p.Tasks) != 2 || added != 2 {
		t.Errorf("Generate() = %d tasks, %d added; want 2, 2", len(p.Tasks), added)
	}

	// Re-generating adds nothing new.
	_, added, err = Generate(ws, testNow, testLogger())
	if err != nil {
		t.Fatalf("second Generate() error = %v", err)
	}
	if added != 0 {
		t.Errorf("second Generate() added = %d, want 0", added)
	}

	var onDisk Plan
	if err := workspace.ReadJSONFile(ws.PlanFile(), &onDisk); err != nil {
		t.Fatalf("plan.json unreadable: %v", err)
	}
	if onDisk.GeneratedAt != testNow.Format(time.RFC3339) {
		t.Errorf("generated_at = %q", onDisk.GeneratedAt)
	}
}

func TestGenerateMissingFeaturesFile(t *testing.T) {
	t.Parallel()

	ws := testWorkspace(t)
	if _, _, err := Generate(ws, testNow, testLogger()); err == nil {
		t.Fatal("Generate() error = nil without features file")
	}
}
