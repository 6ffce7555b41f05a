package dataview

import "testing"

func TestOption(t *testing.T) {
	md := Metadata{Objects: map[string]map[string]any{
		"enableAxis": {
			"show":  true,
			"wrong": "yes",
			"empty": nil,
		},
	}}

	if got := Option(md, "enableAxis", "show", false); got != true {
		t.Fatalf("expected stored value true, got %v", got)
	}
	if got := Option(md, "enableAxis", "missing", true); got != true {
		t.Fatalf("expected default for missing property, got %v", got)
	}
	if got := Option(md, "missing", "show", true); got != true {
		t.Fatalf("expected default for missing object, got %v", got)
	}
	if got := Option(md, "enableAxis", "wrong", false); got != false {
		t.Fatalf("expected default for mismatched type, got %v", got)
	}
	if got := Option(md, "enableAxis", "empty", true); got != true {
		t.Fatalf("expected default for nil value, got %v", got)
	}
	if got := Option(Metadata{}, "enableAxis", "show", true); got != true {
		t.Fatalf("expected default for nil objects map, got %v", got)
	}
}

func TestOptionOtherTypes(t *testing.T) {
	md := Metadata{Objects: map[string]map[string]any{
		"labels": {
			"fontSize": 12.0,
			"color":    "#FF0000",
		},
	}}

	if got := Option(md, "labels", "fontSize", 8.0); got != 12.0 {
		t.Fatalf("expected 12.0, got %v", got)
	}
	if got := Option(md, "labels", "color", "#000000"); got != "#FF0000" {
		t.Fatalf("expected #FF0000, got %v", got)
	}
	// Numeric lookup against a string value falls back.
	if got := Option(md, "labels", "color", 4.0); got != 4.0 {
		t.Fatalf("expected default 4.0, got %v", got)
	}
}

func TestPrimary(t *testing.T) {
	var nilTable *DataTable
	if nilTable.Primary() != nil {
		t.Fatalf("expected nil primary for nil table")
	}
	if (&DataTable{}).Primary() != nil {
		t.Fatalf("expected nil primary for empty views")
	}
	table := &DataTable{Views: []DataView{{}, {}}}
	if table.Primary() != &table.Views[0] {
		t.Fatalf("expected first view as primary")
	}
}
