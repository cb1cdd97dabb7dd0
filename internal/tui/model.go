package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"

	"github.com/hay-kot/efie/internal/efie"
)

// UIState represents the current state of the TUI.
type UIState int

const (
	stateList UIState = iota
	statePreview
)

// Source provides the posts shown in the browser.
type Source interface {
	ListSaved(ctx context.Context, saveLocation string) ([]efie.SavedItem, error)
	Content(ctx context.Context, path string) (string, error)
}

// Options configures the TUI behavior.
type Options struct {
	SaveLocation string // vault directory listed
	WatchDir     string // absolute directory to watch for changes, empty disables
	Style        string // glamour style for previews
}

// Model is the main Bubble Tea model for the post browser.
type Model struct {
	source   Source
	opts     Options
	keys     keyMap
	list     list.Model
	viewport viewport.Model
	state    UIState
	width    int
	height   int
	err      error
	watcher  *dirWatcher

	previewing efie.SavedItem
	selected   string
}

// itemsLoadedMsg is sent when the save location has been scanned.
type itemsLoadedMsg struct {
	items []efie.SavedItem
	err   error
}

// previewLoadedMsg is sent when a post's content has been read.
type previewLoadedMsg struct {
	item    efie.SavedItem
	content string
	err     error
}

// New creates a new TUI model.
func New(source Source, opts Options) Model {
	keys := defaultKeyMap()

	l := list.New([]list.Item{}, NewPostDelegate(), 0, 0)
	l.Title = "efie " + iconDot + " " + opts.SaveLocation
	l.Styles.Title = titleStyle
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetStatusBarItemName("post", "posts")
	l.DisableQuitKeybindings()
	l.AdditionalShortHelpKeys = keys.listHelp

	m := Model{
		source:   source,
		opts:     opts,
		keys:     keys,
		list:     l,
		viewport: viewport.New(0, 0),
		state:    stateList,
	}

	if opts.WatchDir != "" {
		w, err := newDirWatcher(opts.WatchDir)
		if err != nil {
			log.Debug().Err(err).Str("dir", opts.WatchDir).Msg("watch disabled")
		} else {
			m.watcher = w
		}
	}

	return m
}

// Selected returns the vault path chosen with the open key, or "".
func (m Model) Selected() string {
	return m.selected
}

// Close releases the directory watcher.
func (m Model) Close() error {
	if m.watcher == nil {
		return nil
	}
	return m.watcher.close()
}

// Init loads the posts and starts watching for changes.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.loadItems()}
	if m.watcher != nil {
		cmds = append(cmds, m.watcher.next())
	}
	return tea.Batch(cmds...)
}

func (m Model) loadItems() tea.Cmd {
	return func() tea.Msg {
		items, err := m.source.ListSaved(context.Background(), m.opts.SaveLocation)
		return itemsLoadedMsg{items: items, err: err}
	}
}

func (m Model) loadPreview(item efie.SavedItem) tea.Cmd {
	return func() tea.Msg {
		content, err := m.source.Content(context.Background(), item.Path)
		return previewLoadedMsg{item: item, content: content, err: err}
	}
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, msg.Height-m.chromeHeight())
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - lipgloss.Height(m.previewHeader()) - 1
		return m, nil

	case itemsLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		items := make([]list.Item, len(msg.items))
		for i, it := range msg.items {
			items[i] = PostItem{Post: it}
		}
		return m, m.list.SetItems(items)

	case previewLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.previewing = msg.item
		m.viewport.SetContent(m.render(msg.content))
		m.viewport.GotoTop()
		m.state = statePreview
		return m, nil

	case dirChangedMsg:
		return m, tea.Batch(m.loadItems(), m.watcher.next())

	case watchErrMsg:
		log.Warn().Err(msg.err).Msg("watch error")
		return m, m.watcher.next()

	case tea.KeyMsg:
		if m.state == statePreview {
			return m.updatePreview(msg)
		}
		return m.updateList(msg)
	}

	return m.forward(msg)
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// While typing a filter every key belongs to the list.
	if m.list.SettingFilter() {
		return m.forward(msg)
	}

	switch {
	case msg.String() == "ctrl+c":
		return m, tea.Quit
	case key.Matches(msg, m.keys.Quit) && !m.list.IsFiltered():
		return m, tea.Quit
	case key.Matches(msg, m.keys.Preview):
		if item, ok := m.list.SelectedItem().(PostItem); ok {
			return m, m.loadPreview(item.Post)
		}
		return m, nil
	case key.Matches(msg, m.keys.Open):
		if item, ok := m.list.SelectedItem().(PostItem); ok {
			m.selected = item.Post.Path
			return m, tea.Quit
		}
		return m, nil
	case key.Matches(msg, m.keys.Reload):
		return m, m.loadItems()
	}

	return m.forward(msg)
}

func (m Model) updatePreview(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+c":
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back):
		m.state = stateList
		return m, nil
	case key.Matches(msg, m.keys.Open):
		m.selected = m.previewing.Path
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.state == statePreview {
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) render(markdown string) string {
	width := m.width
	if width <= 0 {
		width = 80
	}
	out, err := efie.RenderMarkdown(markdown, m.opts.Style, width)
	if err != nil {
		log.Debug().Err(err).Msg("preview render failed")
		return markdown
	}
	return out
}

func (m Model) chromeHeight() int {
	return lipgloss.Height(bannerStyle.Render(banner)) + 1
}

func (m Model) previewHeader() string {
	title := m.previewing.Title
	if title == "" {
		title = m.previewing.Name
	}
	return previewHeaderStyle.Width(max(m.width, 1)).Render(title)
}

// View renders the current state.
func (m Model) View() string {
	var b strings.Builder

	if m.state == statePreview {
		b.WriteString(m.previewHeader())
		b.WriteString("\n")
		b.WriteString(m.viewport.View())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("esc back " + iconDot + " o open " + iconDot + " ↑/↓ scroll"))
		return b.String()
	}

	b.WriteString(bannerStyle.Render(banner))
	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(errorStyle.Render(efie.Notice(m.err)))
	}
	b.WriteString("\n")
	b.WriteString(m.list.View())
	return b.String()
}
