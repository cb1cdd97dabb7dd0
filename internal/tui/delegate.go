package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/hay-kot/efie/internal/efie"
)

// PostItem wraps a saved post for the list component.
type PostItem struct {
	Post efie.SavedItem
}

// FilterValue returns the value used for filtering.
func (i PostItem) FilterValue() string {
	return i.Post.Title + " " + i.Post.Name
}

// PostDelegate handles rendering of post items in the list.
type PostDelegate struct {
	Styles PostDelegateStyles
}

// PostDelegateStyles defines the styles for the delegate.
type PostDelegateStyles struct {
	Normal   lipgloss.Style
	Selected lipgloss.Style
	Meta     lipgloss.Style
}

// NewPostDelegate creates a new post delegate with default styles.
func NewPostDelegate() PostDelegate {
	return PostDelegate{
		Styles: PostDelegateStyles{
			Normal:   normalStyle,
			Selected: selectedStyle,
			Meta:     metaStyle,
		},
	}
}

// Height returns the height of each item.
func (d PostDelegate) Height() int {
	return 2
}

// Spacing returns the spacing between items.
func (d PostDelegate) Spacing() int {
	return 1
}

// Update handles item updates.
func (d PostDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

// Render renders a single item.
func (d PostDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	postItem, ok := item.(PostItem)
	if !ok {
		return
	}

	p := postItem.Post
	title := "  " + p.Title
	style := d.Styles.Normal
	if index == m.Index() {
		title = "> " + p.Title
		style = d.Styles.Selected
	}

	meta := fmt.Sprintf("%s %s %s %s %s",
		p.Name, iconDot,
		humanize.Comma(int64(p.Words))+" words", iconDot,
		humanize.Time(p.ModTime),
	)

	_, _ = fmt.Fprintf(w, "%s\n", style.Render(title))
	_, _ = fmt.Fprintf(w, "  %s", d.Styles.Meta.Render(meta))
}
