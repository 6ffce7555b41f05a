package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/verte-zerg/barviz/internal/selection"
)

func openTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "barviz.db")
	st, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() {
		if err := st.Close(); err != nil {
			t.Errorf("Close failed: %v", err)
		}
	})
	return st, path
}

func TestToggleAndSelected(t *testing.T) {
	st, _ := openTestStore(t)
	ctx := context.Background()
	f := selection.NewFactory("country")

	selected, err := st.Toggle(ctx, f.ForRow(1))
	if err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}
	if len(selected) != 1 || selected[0] != f.ForRow(1) {
		t.Fatalf("expected one selected identity, got %v", selected)
	}

	selected, err = st.Toggle(ctx, f.ForRow(1))
	if err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}
	if len(selected) != 0 {
		t.Fatalf("expected toggle to deselect, got %v", selected)
	}
}

func TestSelectionSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "barviz.db")
	ctx := context.Background()
	f := selection.NewFactory("country")

	st, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if _, err := st.Toggle(ctx, f.ForRow(2)); err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}
	if err := st.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	st, err = Open(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer func() {
		if err := st.Close(); err != nil {
			t.Errorf("Close failed: %v", err)
		}
	}()
	selected, err := st.Selected(ctx)
	if err != nil {
		t.Fatalf("Selected failed: %v", err)
	}
	if len(selected) != 1 || selected[0] != f.ForRow(2) {
		t.Fatalf("expected persisted selection, got %v", selected)
	}
}

func TestClear(t *testing.T) {
	st, _ := openTestStore(t)
	ctx := context.Background()
	f := selection.NewFactory("country")

	if _, err := st.Toggle(ctx, f.ForRow(0)); err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}
	if err := st.Clear(ctx); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	selected, err := st.Selected(ctx)
	if err != nil {
		t.Fatalf("Selected failed: %v", err)
	}
	if len(selected) != 0 {
		t.Fatalf("expected empty selection after clear, got %v", selected)
	}
}

func TestSelectionManagerCompletes(t *testing.T) {
	st, _ := openTestStore(t)
	m := NewSelectionManager(st)
	id := selection.NewFactory("country").ForRow(4)

	var got []selection.ID
	m.Select(id, func(selected []selection.ID) { got = selected })
	if len(got) != 1 || got[0] != id {
		t.Fatalf("expected completion with one identity, got %v", got)
	}
}
