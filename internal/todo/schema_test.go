package todo

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestValidateSnapshot(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		wantErr  bool
		wantPath string
	}{
		{
			name: "valid",
			data: `{"tasks":[{"id":"1","title":"X","is_checked":false,"is_running":false,"spent":0,"created_at":"2026-03-01T09:00:00Z"}],"timer":{}}`,
		},
		{
			name: "null tasks",
			data: `{"tasks":null}`,
		},
		{
			name: "empty object",
			data: `{}`,
		},
		{
			name:     "missing id",
			data:     `{"tasks":[{"title":"X"}]}`,
			wantErr:  true,
			wantPath: "tasks.0",
		},
		{
			name:     "empty id",
			data:     `{"tasks":[{"id":"","title":"X"}]}`,
			wantErr:  true,
			wantPath: "tasks.0.id",
		},
		{
			name:     "checked is a string",
			data:     `{"tasks":[{"id":"1","title":"X"},{"id":"2","title":"Y","is_checked":"yes"}]}`,
			wantErr:  true,
			wantPath: "tasks.1.is_checked",
		},
		{
			name:     "negative spent",
			data:     `{"tasks":[{"id":"1","title":"X","spent":-5}]}`,
			wantErr:  true,
			wantPath: "tasks.0.spent",
		},
		{
			name:    "tasks not an array",
			data:    `{"tasks":"nope"}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateSnapshot([]byte(tt.data))
			if (err != nil) != tt.wantErr {
				t.Fatalf("validateSnapshot() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr || tt.wantPath == "" {
				return
			}
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("error = %T, want *ValidationError", err)
			}
			if ve.Path != tt.wantPath {
				t.Errorf("Path = %q, want %q", ve.Path, tt.wantPath)
			}
		})
	}
}

func TestPointerToPath(t *testing.T) {
	tests := map[string]string{
		"":                "",
		"/tasks":          "tasks",
		"/tasks/0/id":     "tasks.0.id",
		"#/timer/task_id": "timer.task_id",
	}
	for in, want := range tests {
		if got := pointerToPath(in); got != want {
			t.Errorf("pointerToPath(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFileBackend_LoadRejectsInvalidSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todos.json")
	if err := os.WriteFile(path, []byte(`{"tasks":[{"id":1,"title":"X"}]}`), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := NewFileBackend(path).Load()
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("Load() error = %v, want *ValidationError", err)
	}
	if ve.Path != "tasks.0.id" {
		t.Errorf("Path = %q, want tasks.0.id", ve.Path)
	}
}
