// Package main provides the CLI entrypoint for barviz.
package main

import (
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/barviz/internal/config"
	"github.com/verte-zerg/barviz/internal/dataview"
	"github.com/verte-zerg/barviz/internal/export"
	"github.com/verte-zerg/barviz/internal/ingest"
	"github.com/verte-zerg/barviz/internal/model"
	"github.com/verte-zerg/barviz/internal/palette"
	"github.com/verte-zerg/barviz/internal/render"
	"github.com/verte-zerg/barviz/internal/selection"
	"github.com/verte-zerg/barviz/internal/store"
	"github.com/verte-zerg/barviz/internal/tui"
	"github.com/verte-zerg/barviz/internal/viewmodel"
)

const (
	defaultWidth  = 400.0
	defaultHeight = 300.0
	defaultAddr   = ":8080"
)

var (
	renderInput  string
	renderOut    string
	renderWidth  float64
	renderHeight float64
	renderAxis   bool
	renderTitle  string

	serveInput string
	serveAddr  string

	viewInput string
	viewAxis  bool
	viewDB    string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "barviz",
		Short:         "Categorical bar chart renderer",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.AddCommand(newRenderCmd())
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newViewCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a data file to SVG, PNG, or PDF",
		Args:  cobra.NoArgs,
		RunE:  runRenderCmd,
	}
	cmd.Flags().StringVar(&renderInput, "input", "", "data file (.csv or .xlsx)")
	cmd.Flags().StringVar(&renderOut, "out", "chart.svg", "output file (.svg, .png, or .pdf)")
	cmd.Flags().Float64Var(&renderWidth, "width", defaultWidth, "viewport width in pixels")
	cmd.Flags().Float64Var(&renderHeight, "height", defaultHeight, "viewport height in pixels")
	cmd.Flags().BoolVar(&renderAxis, "axis", false, "show the category axis")
	cmd.Flags().StringVar(&renderTitle, "title", "", "chart title (PNG export only)")
	if err := cmd.MarkFlagRequired("input"); err != nil {
		panic(err)
	}
	return cmd
}

func runRenderCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyFloatConfig(cmd, "width", &renderWidth, fileCfg.Chart.Width)
	applyFloatConfig(cmd, "height", &renderHeight, fileCfg.Chart.Height)
	applyBoolConfig(cmd, "axis", &renderAxis, fileCfg.Chart.ShowAxis)

	table, err := ingest.Load(renderInput)
	if err != nil {
		return err
	}
	setAxisProperty(table, renderAxis)

	vm := buildViewModel(table, fileCfg)
	renderer := render.New(nil)
	renderer.Resize(renderWidth, renderHeight)
	renderer.Render(vm)

	f, err := os.Create(renderOut)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			logErrf("failed to close output file: %v\n", cerr)
		}
	}()

	switch strings.ToLower(filepath.Ext(renderOut)) {
	case ".svg":
		return renderer.Surface().WriteSVG(f)
	case ".png":
		viewport := model.Viewport{Width: renderWidth, Height: renderHeight}
		return export.WritePNG(f, vm, viewport, renderTitle)
	case ".pdf":
		return export.WritePDF(f, renderer.Surface())
	}
	return fmt.Errorf("unsupported output extension: %s", filepath.Ext(renderOut))
}

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the chart as SVG over HTTP",
		Args:  cobra.NoArgs,
		RunE:  runServeCmd,
	}
	cmd.Flags().StringVar(&serveInput, "input", "", "data file (.csv or .xlsx)")
	cmd.Flags().StringVar(&serveAddr, "addr", defaultAddr, "listen address")
	if err := cmd.MarkFlagRequired("input"); err != nil {
		panic(err)
	}
	return cmd
}

func runServeCmd(_ *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	table, err := ingest.Load(serveInput)
	if err != nil {
		return err
	}

	http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		width := queryFloat(r, "width", defaultWidth)
		height := queryFloat(r, "height", defaultHeight)
		axis := queryBool(r, "axis", false)

		// Requests are concurrent; give each its own metadata.
		reqTable := *table
		reqTable.Metadata = dataview.Metadata{}
		setAxisProperty(&reqTable, axis)

		vm := buildViewModel(&reqTable, fileCfg)
		renderer := render.New(nil)
		renderer.Resize(width, height)
		renderer.Render(vm)

		w.Header().Set("Content-Type", "image/svg+xml")
		if err := renderer.Surface().WriteSVG(w); err != nil {
			logErrf("failed to write svg response: %v\n", err)
		}
	})

	logErrf("Serving %s on %s\n", serveInput, serveAddr)
	if err := http.ListenAndServe(serveAddr, nil); err != nil {
		return fmt.Errorf("failed to serve: %w", err)
	}
	return nil
}

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "Preview the chart interactively in the terminal",
		Args:  cobra.NoArgs,
		RunE:  runViewCmd,
	}
	cmd.Flags().StringVar(&viewInput, "input", "", "data file (.csv or .xlsx)")
	cmd.Flags().BoolVar(&viewAxis, "axis", false, "show the category axis")
	cmd.Flags().StringVar(&viewDB, "selection-db", "", "path to the selections database")
	if err := cmd.MarkFlagRequired("input"); err != nil {
		panic(err)
	}
	return cmd
}

func runViewCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyBoolConfig(cmd, "axis", &viewAxis, fileCfg.Chart.ShowAxis)

	table, err := ingest.Load(viewInput)
	if err != nil {
		return err
	}
	setAxisProperty(table, viewAxis)

	dbPath := viewDB
	if dbPath == "" {
		dbPath = config.DefaultDBPath()
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	vm := buildViewModel(table, fileCfg)
	renderer := render.New(store.NewSelectionManager(st))
	previewModel := tui.NewModel(renderer, vm, filepath.Base(viewInput))

	selected, err := st.Selected(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to load selections: %w", err)
	}
	renderer.ApplySelection(selected)

	program := tea.NewProgram(previewModel, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

// buildViewModel wires the palette and identity factory the way the host
// would and runs the view model builder.
func buildViewModel(table *dataview.DataTable, fileCfg config.FileConfig) model.ChartViewModel {
	colors := palette.New(fileCfg.Palette.Colors...)
	factory := selection.NewFactory(categoryQueryName(table))
	return viewmodel.Build(table, colors, factory)
}

// setAxisProperty injects the user-set axis property into the table
// metadata, so the builder's settings extraction path resolves it.
func setAxisProperty(table *dataview.DataTable, show bool) {
	if table == nil {
		return
	}
	if table.Metadata.Objects == nil {
		table.Metadata.Objects = map[string]map[string]any{}
	}
	table.Metadata.Objects["enableAxis"] = map[string]any{"show": show}
}

func categoryQueryName(table *dataview.DataTable) string {
	view := table.Primary()
	if view == nil || view.Categorical == nil {
		return "category"
	}
	cats := view.Categorical.Categories
	if len(cats) == 0 || cats[0].Source == nil || cats[0].Source.QueryName == "" {
		return "category"
	}
	return cats[0].Source.QueryName
}

func queryFloat(r *http.Request, name string, def float64) float64 {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v <= 0 {
		return def
	}
	return v
}

func queryBool(r *http.Request, name string, def bool) bool {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return def
	}
	return v
}

func applyFloatConfig(cmd *cobra.Command, name string, target, value *float64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# barviz configuration
# Uncomment a value to enable it. CLI flags override config values.

[chart]
# width = %.0f           # Viewport width in pixels
# height = %.0f          # Viewport height in pixels
# show-axis = false      # Show the category axis

[palette]
# colors = ["#C89A3A", "#4D9DE0", "#E15554", "#3BB273"]
`, defaultWidth, defaultHeight)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Stderr write failures are not actionable.
		_ = err
	}
}
