package tui

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"

	"gridshelf/config"
	"gridshelf/pkg/layout"
	"gridshelf/pkg/shelf"
)

// chromeRows is the screen space around the shelf: title, status, help.
const chromeRows = 3

// itemSizes is the cycle of demo item footprints, in cells.
var itemSizes = [][2]int{{9, 3}, {7, 3}, {11, 4}, {5, 2}, {8, 4}}

// bigItemSize widens the parcel when added, which reflows everything.
var bigItemSize = [2]int{15, 6}

type (
	// relayoutMsg asks the model to drain the container's pending run.
	relayoutMsg struct{}
	// presetChangedMsg reports that the watched preset file was rewritten.
	presetChangedMsg struct{}
	// watchErrMsg reports a dead preset watcher.
	watchErrMsg struct{ err error }
)

// Model is the demo program: one container wired to one shelf view.
type Model struct {
	theme Theme
	keys  keyMap

	mgr  *shelf.Manager
	ctr  *shelf.Container
	view *ShelfView

	width, height int
	counter       int
	status        string

	presetName string
	presetPath string
	watcher    *fsnotify.Watcher
}

// NewModel assembles the demo around the named preset.
func NewModel(presetName, presetPath string) (*Model, error) {
	presets, err := config.LoadPresetsFrom(presetPath)
	if err != nil {
		return nil, err
	}
	preset, ok := presets.Find(presetName)
	if !ok {
		return nil, fmt.Errorf("preset %q not found", presetName)
	}

	theme := NewTheme()
	view := NewShelfView(theme)
	mgr := shelf.NewManager()
	ctr := mgr.Create(shelf.Config{
		Name:      "shelf",
		Requested: defaultViewport(),
		Applier:   view,
		Publisher: view,
		Owns:      view.HasItem,
	})
	if err := ctr.Configure(preset.Options); err != nil {
		return nil, fmt.Errorf("preset %q: %w", presetName, err)
	}

	m := &Model{
		theme:      theme,
		keys:       defaultKeyMap(),
		mgr:        mgr,
		ctr:        ctr,
		view:       view,
		presetName: presetName,
		presetPath: presetPath,
		status:     fmt.Sprintf("preset %q", presetName),
	}
	for i := 0; i < 9; i++ {
		m.addItem(false)
	}
	return m, nil
}

// Start runs the demo program until quit.
func Start(presetName, presetPath string) error {
	m, err := NewModel(presetName, presetPath)
	if err != nil {
		return err
	}

	if presetPath != "" {
		w, err := fsnotify.NewWatcher()
		if err == nil && w.Add(filepath.Dir(presetPath)) == nil {
			m.watcher = w
			defer w.Close()
		}
	}

	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.flushCmd(), m.watchCmd())
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		shelfH := msg.Height - chromeRows
		if shelfH < 1 {
			shelfH = 1
		}
		m.view.SetViewport(msg.Width, shelfH)
		m.ctr.Resize(msg.Width, shelfH)
		return m, m.flushCmd()

	case relayoutMsg:
		m.ctr.Flush()
		return m, nil

	case presetChangedMsg:
		m.applyPreset()
		return m, tea.Batch(m.flushCmd(), m.watchCmd())

	case watchErrMsg:
		m.status = fmt.Sprintf("preset watch stopped: %v", msg.err)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.Add):
		m.addItem(false)
	case key.Matches(msg, keys.AddBig):
		m.addItem(true)
	case key.Matches(msg, keys.Remove):
		m.removeLast()
	case key.Matches(msg, keys.Clear):
		for _, h := range m.ctr.Children() {
			m.view.DropItem(h)
		}
		m.ctr.Clear()
		m.status = "cleared"
	case key.Matches(msg, keys.Orientation):
		m.flipOption("orientation", "vertical", "horizontal")
	case key.Matches(msg, keys.Start):
		m.cycleStart()
	case key.Matches(msg, keys.Center):
		m.flipOption("center", "0", "1")
	case key.Matches(msg, keys.MoreSpace):
		m.nudgeLength("spacing", 1)
	case key.Matches(msg, keys.LessSpace):
		m.nudgeLength("spacing", -1)
	case key.Matches(msg, keys.MorePad):
		m.nudgeLength("minpad", 1)
	case key.Matches(msg, keys.LessPad):
		m.nudgeLength("minpad", -1)
	case key.Matches(msg, keys.Up):
		m.view.ScrollBy(-2)
	case key.Matches(msg, keys.Down):
		m.view.ScrollBy(2)
	}
	return m, m.flushCmd()
}

// flushCmd schedules one drain of the container's slot. Extra messages
// are harmless: a drained slot flushes to nothing.
func (m *Model) flushCmd() tea.Cmd {
	if !m.ctr.Pending() {
		return nil
	}
	return func() tea.Msg { return relayoutMsg{} }
}

func (m *Model) watchCmd() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	w, path := m.watcher, m.presetPath
	return func() tea.Msg {
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return nil
				}
				if ev.Name == path && ev.Op&(fsnotify.Write|fsnotify.Create) != 0 {
					return presetChangedMsg{}
				}
			case err, ok := <-w.Errors:
				if !ok {
					return nil
				}
				return watchErrMsg{err: err}
			}
		}
	}
}

func (m *Model) applyPreset() {
	presets, err := config.LoadPresetsFrom(m.presetPath)
	if err != nil {
		m.status = fmt.Sprintf("preset reload failed: %v", err)
		return
	}
	preset, ok := presets.Find(m.presetName)
	if !ok {
		m.status = fmt.Sprintf("preset %q vanished", m.presetName)
		return
	}
	if err := m.ctr.Configure(preset.Options); err != nil {
		m.status = fmt.Sprintf("preset rejected: %v", err)
		return
	}
	m.status = fmt.Sprintf("preset %q reloaded", m.presetName)
}

func (m *Model) addItem(big bool) {
	size := itemSizes[m.counter%len(itemSizes)]
	if big {
		size = bigItemSize
	}
	m.counter++

	it := &Item{
		Handle: uuid.NewString(),
		Label:  fmt.Sprintf("box %d", m.counter),
		W:      size[0],
		H:      size[1],
		Color:  itemColor(m.counter),
	}
	m.view.AddItem(it)
	if err := m.ctr.Add(it.Handle, it.W, it.H, shelf.End); err != nil {
		m.view.DropItem(it.Handle)
		m.status = fmt.Sprintf("add failed: %v", err)
		return
	}
	m.status = fmt.Sprintf("added %s (%dx%d)", it.Label, it.W, it.H)
}

func (m *Model) removeLast() {
	kids := m.ctr.Children()
	if len(kids) == 0 {
		m.status = "shelf is empty"
		return
	}
	last := kids[len(kids)-1]
	if err := m.ctr.Remove(last); err != nil {
		m.status = fmt.Sprintf("remove failed: %v", err)
		return
	}
	m.view.DropItem(last)
	m.status = "removed last item"
}

func (m *Model) flipOption(name, a, b string) {
	cur, err := m.ctr.CGet(name)
	if err != nil {
		return
	}
	next := a
	if cur == a {
		next = b
	}
	if err := m.ctr.Configure(map[string]string{name: next}); err != nil {
		m.status = err.Error()
		return
	}
	m.status = fmt.Sprintf("%s %s", name, next)
}

func (m *Model) cycleStart() {
	order := []string{"nw", "ne", "se", "sw"}
	cur, _ := m.ctr.CGet("start")
	next := order[0]
	for i, s := range order {
		if s == cur {
			next = order[(i+1)%len(order)]
			break
		}
	}
	m.ctr.Configure(map[string]string{"start": next})
	m.status = "start " + next
}

func (m *Model) nudgeLength(name string, delta int) {
	cur, err := m.ctr.CGet(name)
	if err != nil {
		return
	}
	n, _ := strconv.Atoi(cur)
	n += delta
	if n < 0 {
		n = 0
	}
	if err := m.ctr.Configure(map[string]string{name: strconv.Itoa(n)}); err != nil {
		m.status = err.Error()
		return
	}
	m.status = fmt.Sprintf("%s %d", name, n)
}

func (m *Model) View() string {
	if m.width == 0 {
		return "loading..."
	}

	title := m.theme.Title.Render("gridshelf")
	info := ""
	if res, ok := m.ctr.Last(); ok {
		scroll := ""
		if res.NeedScroll {
			scroll = " scrolling"
		}
		info = m.theme.Status.Render(fmt.Sprintf(
			"  %d items  grid %dx%d  parcel %d  content %dx%d%s",
			m.view.ItemCount(), res.Cols, res.Rows, res.Parcel,
			res.ContentW, res.ContentH, scroll))
	}

	help := m.theme.Help.Render(m.helpLine())
	status := m.theme.Status.Render(m.status)

	return strings.Join([]string{
		title + info,
		m.view.Render(),
		status,
		help,
	}, "\n")
}

func (m *Model) helpLine() string {
	bindings := []key.Binding{
		m.keys.Add, m.keys.AddBig, m.keys.Remove, m.keys.Clear,
		m.keys.Orientation, m.keys.Start, m.keys.Center,
		m.keys.MoreSpace, m.keys.LessSpace, m.keys.Quit,
	}
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " · ")
}

func defaultViewport() layout.Size {
	return layout.Size{W: 80, H: 24 - chromeRows}
}
