package viewmodel

import (
	"math"
	"testing"

	"github.com/verte-zerg/barviz/internal/dataview"
	"github.com/verte-zerg/barviz/internal/palette"
	"github.com/verte-zerg/barviz/internal/selection"
)

func makeTable(categories []string, values []float64, maxLocal float64) *dataview.DataTable {
	return &dataview.DataTable{
		Views: []dataview.DataView{{
			Categorical: &dataview.Categorical{
				Categories: []dataview.CategoryColumn{{
					Source: &dataview.ColumnDescriptor{QueryName: "country", DisplayName: "Country"},
					Values: categories,
				}},
				Values: []dataview.ValueColumn{{
					Values:   values,
					MaxLocal: maxLocal,
				}},
			},
		}},
	}
}

func buildDeps() (Palette, IdentityFactory) {
	return palette.New(), selection.NewFactory("country")
}

func assertEmpty(t *testing.T, table *dataview.DataTable) {
	t.Helper()
	colors, ids := buildDeps()
	vm := Build(table, colors, ids)
	if len(vm.DataPoints) != 0 {
		t.Fatalf("expected no data points, got %d", len(vm.DataPoints))
	}
	if vm.DataMax != 0 {
		t.Fatalf("expected zero data max, got %v", vm.DataMax)
	}
	if vm.Settings.EnableAxis.Show {
		t.Fatalf("expected default axis setting")
	}
}

func TestBuildMissingStructure(t *testing.T) {
	noSource := makeTable([]string{"China"}, []float64{10}, 10)
	noSource.Views[0].Categorical.Categories[0].Source = nil

	noValues := makeTable([]string{"China"}, []float64{10}, 10)
	noValues.Views[0].Categorical.Values = nil

	noCategories := makeTable([]string{"China"}, []float64{10}, 10)
	noCategories.Views[0].Categorical.Categories = nil

	cases := []struct {
		name  string
		table *dataview.DataTable
	}{
		{"nil table", nil},
		{"no views", &dataview.DataTable{}},
		{"no categorical", &dataview.DataTable{Views: []dataview.DataView{{}}}},
		{"no category column", noCategories},
		{"no category source", noSource},
		{"no value column", noValues},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assertEmpty(t, tc.table)
		})
	}
}

func TestBuildWellFormed(t *testing.T) {
	table := makeTable([]string{"China", "USA", "India", "Germany"}, []float64{10, 8, 11, 5}, 11)
	colors, ids := buildDeps()
	vm := Build(table, colors, ids)

	if len(vm.DataPoints) != 4 {
		t.Fatalf("expected 4 data points, got %d", len(vm.DataPoints))
	}
	if vm.DataMax != 11 {
		t.Fatalf("expected data max 11, got %v", vm.DataMax)
	}
	for i, p := range vm.DataPoints {
		if p.SelectionID != selection.NewFactory("country").ForRow(i) {
			t.Fatalf("point %d: unexpected selection identity", i)
		}
		if p.Color == "" {
			t.Fatalf("point %d: missing color", i)
		}
	}
	if vm.DataPoints[2].Category != "India" || vm.DataPoints[2].Value != 11 {
		t.Fatalf("unexpected point: %+v", vm.DataPoints[2])
	}
}

func TestBuildDataMaxVerbatim(t *testing.T) {
	// The reported maximum wins even when stale.
	table := makeTable([]string{"A", "B"}, []float64{1, 2}, 99)
	colors, ids := buildDeps()
	vm := Build(table, colors, ids)
	if vm.DataMax != 99 {
		t.Fatalf("expected reported max 99, got %v", vm.DataMax)
	}
}

func TestBuildAsymmetricColumns(t *testing.T) {
	t.Run("values longer", func(t *testing.T) {
		table := makeTable([]string{"A", "B", "C"}, []float64{1, 2, 3, 4, 5}, 5)
		colors, ids := buildDeps()
		vm := Build(table, colors, ids)
		if len(vm.DataPoints) != 5 {
			t.Fatalf("expected 5 data points, got %d", len(vm.DataPoints))
		}
		for i := 3; i < 5; i++ {
			if vm.DataPoints[i].Category != "" {
				t.Fatalf("point %d: expected empty category, got %q", i, vm.DataPoints[i].Category)
			}
		}
	})
	t.Run("categories longer", func(t *testing.T) {
		table := makeTable([]string{"A", "B", "C", "D", "E"}, []float64{1, 2, 3}, 3)
		colors, ids := buildDeps()
		vm := Build(table, colors, ids)
		if len(vm.DataPoints) != 5 {
			t.Fatalf("expected 5 data points, got %d", len(vm.DataPoints))
		}
		for i := 3; i < 5; i++ {
			if !math.IsNaN(vm.DataPoints[i].Value) {
				t.Fatalf("point %d: expected NaN value, got %v", i, vm.DataPoints[i].Value)
			}
		}
	})
}

func TestBuildSettingsExtraction(t *testing.T) {
	table := makeTable([]string{"A"}, []float64{1}, 1)
	table.Metadata = dataview.Metadata{Objects: map[string]map[string]any{
		"enableAxis": {"show": true},
	}}
	colors, ids := buildDeps()
	vm := Build(table, colors, ids)
	if !vm.Settings.EnableAxis.Show {
		t.Fatalf("expected axis setting extracted from metadata")
	}

	table.Metadata.Objects["enableAxis"]["show"] = "yes"
	vm = Build(table, colors, ids)
	if vm.Settings.EnableAxis.Show {
		t.Fatalf("expected default for mistyped property")
	}
}

func TestBuildColorsDeterministic(t *testing.T) {
	table := makeTable([]string{"A", "B", "A"}, []float64{1, 2, 3}, 3)
	colors, ids := buildDeps()
	vm := Build(table, colors, ids)
	if vm.DataPoints[0].Color != vm.DataPoints[2].Color {
		t.Fatalf("expected same color for repeated category")
	}
	if vm.DataPoints[0].Color == vm.DataPoints[1].Color {
		t.Fatalf("expected distinct colors for distinct categories")
	}
}
