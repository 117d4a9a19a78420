package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"lunar/internal/pipeline"
)

// maxRows caps the file list; large trees only show the files touched last.
const maxRows = 12

// stageInfo is the working label of a stage and how far through a file's
// pipeline it sits.
var stageInfo = map[pipeline.Stage]struct {
	label  string
	weight float64
}{
	pipeline.StageDiscover: {"discovering", 0},
	pipeline.StageLoad:     {"loading", 0.1},
	pipeline.StageTokenize: {"lexing", 0.3},
	pipeline.StageParse:    {"parsing", 0.5},
	pipeline.StageDetect:   {"detecting", 0.8},
	pipeline.StageCheck:    {"checking", 0.9},
}

var (
	styleTitle   = lipgloss.NewStyle().Bold(true)
	styleOK      = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	styleFailed  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	styleWorking = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	styleMuted   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

type fileState struct {
	path   string
	stage  pipeline.Stage
	status pipeline.Status
	touch  int // order of the last update, 0 while queued
}

func (f *fileState) finished() bool {
	switch f.status {
	case pipeline.StatusDone, pipeline.StatusCached, pipeline.StatusError:
		return true
	}
	return false
}

func (f *fileState) label() string {
	switch f.status {
	case pipeline.StatusWorking:
		return stageInfo[f.stage].label
	case pipeline.StatusQueued:
		return "queued"
	}
	return string(f.status)
}

type progressModel struct {
	title   string
	events  <-chan pipeline.Event
	spinner spinner.Model
	bar     progress.Model
	files   []fileState
	byPath  map[string]int
	clock   int
	phase   string // run-wide stage, from events without a file
	width   int
	done    bool
}

type eventMsg pipeline.Event
type doneMsg struct{}

// NewProgressModel renders per-file progress for a check run and quits
// once events is closed.
func NewProgressModel(title string, files []string, events <-chan pipeline.Event) tea.Model {
	sp := spinner.New(spinner.WithSpinner(spinner.MiniDot), spinner.WithStyle(styleWorking))
	m := &progressModel{
		title:   title,
		events:  events,
		spinner: sp,
		bar:     progress.New(progress.WithDefaultGradient(), progress.WithWidth(76)),
		files:   make([]fileState, len(files)),
		byPath:  make(map[string]int, len(files)),
		width:   80,
	}
	for i, f := range files {
		m.files[i] = fileState{path: f, status: pipeline.StatusQueued}
		m.byPath[f] = i
	}
	return m
}

func (m *progressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.next())
}

func (m *progressModel) next() tea.Cmd {
	return func() tea.Msg {
		if ev, ok := <-m.events; ok {
			return eventMsg(ev)
		}
		return doneMsg{}
	}
}

func (m *progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		return m, tea.Batch(m.apply(pipeline.Event(msg)), m.next())
	case doneMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		if msg.Width > 8 {
			m.width = msg.Width
			m.bar.Width = msg.Width - 4
		}
	case progress.FrameMsg:
		bar, cmd := m.bar.Update(msg)
		m.bar = bar.(progress.Model)
		return m, cmd
	}
	return m, nil
}

func (m *progressModel) apply(ev pipeline.Event) tea.Cmd {
	if ev.File == "" {
		if info, ok := stageInfo[ev.Stage]; ok && ev.Status == pipeline.StatusWorking {
			m.phase = info.label
		}
		return nil
	}
	i, ok := m.byPath[ev.File]
	if !ok {
		return nil
	}
	m.clock++
	f := &m.files[i]
	f.stage, f.status, f.touch = ev.Stage, ev.Status, m.clock
	return m.bar.SetPercent(m.fraction())
}

// fraction averages per-file completion; finished files count in full.
func (m *progressModel) fraction() float64 {
	if len(m.files) == 0 {
		return 0
	}
	var sum float64
	for i := range m.files {
		f := &m.files[i]
		if f.finished() {
			sum++
		} else if f.status == pipeline.StatusWorking {
			sum += stageInfo[f.stage].weight
		}
	}
	return sum / float64(len(m.files))
}

func (m *progressModel) counts() (finished, failed, cached int) {
	for i := range m.files {
		f := &m.files[i]
		if f.finished() {
			finished++
		}
		switch f.status {
		case pipeline.StatusError:
			failed++
		case pipeline.StatusCached:
			cached++
		}
	}
	return finished, failed, cached
}

// recent returns the touched files, most recent first.
func (m *progressModel) recent() []*fileState {
	var out []*fileState
	for i := range m.files {
		if m.files[i].touch > 0 {
			out = append(out, &m.files[i])
		}
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].touch > out[j-1].touch; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

func (m *progressModel) View() string {
	if len(m.files) == 0 {
		return ""
	}
	header := m.title
	if m.phase != "" {
		header += " (" + m.phase + ")"
	}
	if m.done {
		header = "done: " + header
	} else {
		header = m.spinner.View() + " " + header
	}

	var b strings.Builder
	b.WriteString(styleTitle.Render(header))
	b.WriteString("\n")

	finished, failed, cached := m.counts()
	summary := fmt.Sprintf("%d/%d files", finished, len(m.files))
	if failed > 0 {
		summary += ", " + styleFailed.Render(fmt.Sprintf("%d failed", failed))
	}
	if cached > 0 {
		summary += fmt.Sprintf(", %d cached", cached)
	}
	b.WriteString(summary)
	b.WriteString("\n\n")

	nameWidth := max(m.width-16, 20)
	rows := m.recent()
	for _, f := range rows[:min(len(rows), maxRows)] {
		fmt.Fprintf(&b, "  %s %s\n", statusStyle(f).Render(fmt.Sprintf("%12s", f.label())), truncate(f.path, nameWidth))
	}
	if hidden := len(rows) - maxRows; hidden > 0 {
		b.WriteString(styleMuted.Render(fmt.Sprintf("  ... %d more", hidden)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.done {
		b.WriteString(m.bar.ViewAs(1))
	} else {
		b.WriteString(m.bar.View())
	}
	b.WriteString("\n")
	return b.String()
}

func statusStyle(f *fileState) lipgloss.Style {
	switch f.status {
	case pipeline.StatusDone, pipeline.StatusCached:
		return styleOK
	case pipeline.StatusError:
		return styleFailed
	case pipeline.StatusWorking:
		return styleWorking
	}
	return styleMuted
}

// truncate shortens value to width display cells, marking the cut with
// "..." when there is room for it.
func truncate(value string, width int) string {
	switch {
	case width <= 0 || runewidth.StringWidth(value) <= width:
		return value
	case width <= 3:
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width-3, "...")
}
