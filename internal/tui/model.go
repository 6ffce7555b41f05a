// Package tui provides the Bubble Tea chart preview.
package tui

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/verte-zerg/barviz/internal/model"
	"github.com/verte-zerg/barviz/internal/render"
)

// One terminal row stands for this many surface units, so the renderer's
// 25-unit axis reservation maps to exactly two rows: baseline and labels.
const unitsPerRow = 12.5

const (
	chromeRows      = 4 // title, info, cursor marker, help footer
	fallbackColumns = 80
	fallbackRows    = 24
)

var (
	titleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	infoStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#B0B0B0"))
	markerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	axisStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	helpHintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

type keyMap struct {
	Left   key.Binding
	Right  key.Binding
	Select key.Binding
	Axis   key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Left:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous bar")),
		Right:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next bar")),
		Select: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "toggle selection")),
		Axis:   key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "toggle axis")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Select, k.Axis, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Left, k.Right}, {k.Select, k.Axis, k.Quit}}
}

// Model implements the Bubble Tea chart preview. It acts as the host:
// terminal resizes drive Resize+Render, Enter drives click selection.
type Model struct {
	renderer *render.Renderer
	vm       model.ChartViewModel
	title    string

	cursor int
	width  int
	height int

	keys keyMap
	help help.Model
}

// NewModel constructs a preview model around the given renderer and view
// model. The initial size comes from the terminal and is replaced by the
// first WindowSizeMsg.
func NewModel(renderer *render.Renderer, vm model.ChartViewModel, title string) *Model {
	m := &Model{
		renderer: renderer,
		vm:       vm,
		title:    title,
		keys:     defaultKeyMap(),
		help:     help.New(),
	}
	m.width, m.height = initialSize()
	m.resizeSurface()
	return m
}

func initialSize() (int, int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return fallbackColumns, fallbackRows
	}
	return width, height
}

func (m *Model) plotRows() int {
	rows := m.height - chromeRows
	if rows < 3 {
		rows = 3
	}
	return rows
}

func (m *Model) resizeSurface() {
	m.renderer.Resize(float64(m.width), float64(m.plotRows())*unitsPerRow)
	m.renderer.Render(m.vm)
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resizeSurface()
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Left):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case key.Matches(msg, m.keys.Right):
			if m.cursor < len(m.vm.DataPoints)-1 {
				m.cursor++
			}
			return m, nil
		case key.Matches(msg, m.keys.Axis):
			m.vm.Settings.EnableAxis.Show = !m.vm.Settings.EnableAxis.Show
			m.renderer.Render(m.vm)
			return m, nil
		case key.Matches(msg, m.keys.Select):
			// The selection managers complete synchronously, so the
			// opacity update lands before the next View.
			m.renderer.HandleClick(m.cursor)
			return m, nil
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	surface := m.renderer.Surface()
	rows := m.plotRows()

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteByte('\n')
	b.WriteString(infoStyle.Render(m.cursorInfo()))
	b.WriteByte('\n')

	baselineRow := rows
	labelRow := -1
	if surface.Axis != nil {
		baselineRow = int(math.Round(surface.Axis.Y / unitsPerRow))
		labelRow = baselineRow + 1
	}

	for row := 0; row < rows; row++ {
		switch {
		case surface.Axis != nil && row == baselineRow:
			b.WriteString(axisStyle.Render(strings.Repeat("─", m.width)))
		case surface.Axis != nil && row == labelRow:
			b.WriteString(axisStyle.Render(m.axisLabels(surface)))
		case surface.Axis != nil && row > labelRow:
			// Leftover axis strip rows stay blank.
		default:
			b.WriteString(m.plotRow(surface, row, baselineRow))
		}
		b.WriteByte('\n')
	}

	b.WriteString(markerStyle.Render(m.cursorMarker(surface)))
	b.WriteByte('\n')
	b.WriteString(helpHintStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// plotRow paints one terminal row of the bar area, colored per bar and
// faint where selection highlighting dimmed the bar.
func (m *Model) plotRow(surface *render.Surface, row, baselineRow int) string {
	var line strings.Builder
	col := 0
	for _, bar := range surface.Bars {
		x0, w := barSpan(bar, m.width)
		if x0 >= m.width {
			break
		}
		if x0+w > m.width {
			w = m.width - x0
		}
		topRow := int(math.Round(bar.Y / unitsPerRow))
		if row < topRow || row >= baselineRow {
			continue
		}
		if x0 > col {
			line.WriteString(strings.Repeat(" ", x0-col))
			col = x0
		}
		if w <= 0 {
			continue
		}
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(bar.Fill))
		if bar.Opacity < 1 {
			style = style.Faint(true)
		}
		line.WriteString(style.Render(strings.Repeat("█", w)))
		col += w
	}
	return line.String()
}

// cursorMarker draws a caret under the bar the cursor points at.
func (m *Model) cursorMarker(surface *render.Surface) string {
	if m.cursor < 0 || m.cursor >= len(surface.Bars) {
		return ""
	}
	bar := surface.Bars[m.cursor]
	x0, w := barSpan(bar, m.width)
	center := x0 + w/2
	if center < 0 {
		center = 0
	}
	if center >= m.width {
		center = m.width - 1
	}
	return strings.Repeat(" ", center) + "▲"
}

// axisLabels centers each tick label within its band, truncated to fit.
func (m *Model) axisLabels(surface *render.Surface) string {
	bandwidth := m.width
	if len(surface.Bars) > 0 {
		bandwidth = int(math.Round(surface.Bars[0].Width))
	}
	if bandwidth < 1 {
		bandwidth = 1
	}
	var line strings.Builder
	col := 0
	for _, tick := range surface.Axis.Ticks {
		label := runewidth.Truncate(tick.Label, bandwidth, "…")
		start := int(math.Round(tick.X)) - runewidth.StringWidth(label)/2
		if start < col {
			start = col
		}
		if start >= m.width {
			break
		}
		line.WriteString(strings.Repeat(" ", start-col))
		line.WriteString(label)
		col = start + runewidth.StringWidth(label)
	}
	return line.String()
}

func (m *Model) cursorInfo() string {
	if m.cursor < 0 || m.cursor >= len(m.vm.DataPoints) {
		return "no data"
	}
	p := m.vm.DataPoints[m.cursor]
	if math.IsNaN(p.Value) {
		return fmt.Sprintf("%s: no value", p.Category)
	}
	return fmt.Sprintf("%s: %.2f", p.Category, p.Value)
}

func barSpan(bar *render.Bar, width int) (int, int) {
	x0 := int(math.Round(bar.X))
	w := int(math.Round(bar.Width))
	if w < 1 {
		w = 1
	}
	if x0 < 0 {
		x0 = 0
	}
	return x0, w
}
