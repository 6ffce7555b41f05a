package ingest

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}
	return path
}

func TestLoadCSVWithHeader(t *testing.T) {
	path := writeFile(t, "data.csv", "Country,Sales\nChina,10\nUSA,8\nIndia,11\nGermany,5\n")
	table, err := LoadCSV(path)
	if err != nil {
		t.Fatalf("LoadCSV failed: %v", err)
	}

	view := table.Primary()
	if view == nil || view.Categorical == nil {
		t.Fatalf("expected categorical primary view")
	}
	cat := view.Categorical.Categories[0]
	if cat.Source.QueryName != "country" || cat.Source.DisplayName != "Country" {
		t.Fatalf("unexpected descriptor: %+v", cat.Source)
	}
	if len(cat.Values) != 4 || cat.Values[2] != "India" {
		t.Fatalf("unexpected categories: %v", cat.Values)
	}
	val := view.Categorical.Values[0]
	if len(val.Values) != 4 || val.Values[2] != 11 {
		t.Fatalf("unexpected values: %v", val.Values)
	}
	if val.MaxLocal != 11 {
		t.Fatalf("expected reported max 11, got %v", val.MaxLocal)
	}
}

func TestLoadCSVWithoutHeader(t *testing.T) {
	path := writeFile(t, "data.csv", "A,1\nB,2\n")
	table, err := LoadCSV(path)
	if err != nil {
		t.Fatalf("LoadCSV failed: %v", err)
	}
	cat := table.Primary().Categorical.Categories[0]
	if cat.Source.QueryName != "category" {
		t.Fatalf("expected default query name, got %q", cat.Source.QueryName)
	}
	if len(cat.Values) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(cat.Values))
	}
}

func TestLoadCSVInvalidValue(t *testing.T) {
	path := writeFile(t, "data.csv", "Country,Sales\nChina,ten\n")
	if _, err := LoadCSV(path); err == nil {
		t.Fatalf("expected error for non-numeric value")
	}
}

func TestLoadCSVEmpty(t *testing.T) {
	path := writeFile(t, "data.csv", "")
	table, err := LoadCSV(path)
	if err != nil {
		t.Fatalf("LoadCSV failed: %v", err)
	}
	val := table.Primary().Categorical.Values[0]
	if len(val.Values) != 0 || val.MaxLocal != 0 {
		t.Fatalf("expected empty value column with zero max, got %+v", val)
	}
}

func TestLoadUnsupportedExtension(t *testing.T) {
	if _, err := Load("data.json"); err == nil {
		t.Fatalf("expected error for unsupported extension")
	}
}
