package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"switchboard/internal/control"
)

// TabItem is one trigger/panel pair in a tab bar.
type TabItem struct {
	Title    string
	Body     string // markdown, rendered into the panel viewport
	Disabled bool
}

// TabBar is the tab widget: a row of triggers over a single visible panel.
// Selection state lives in the embedded controller; this type adds
// rendering, viewport scrolling for panel content, and Bubble Tea wiring.
type TabBar struct {
	Items []TabItem

	width  int
	height int

	keys       KeyMap
	ctrl       *control.TabGroup
	triggers   []*control.BasicNode
	panels     []*control.BasicNode
	viewport   viewport.Model
	renderBody func(string) string
	mdFormat   string
	focused    bool
	ready      bool
}

// NewTabBar creates a tab bar over the given items. The first enabled tab
// starts selected.
func NewTabBar(items []TabItem) TabBar {
	t := TabBar{
		Items: items,
		keys:  DefaultKeyMap(),
		ctrl:  control.NewTabGroup(),
	}
	t.rebuild()
	return t
}

func (t *TabBar) rebuild() {
	t.triggers = make([]*control.BasicNode, len(t.Items))
	t.panels = make([]*control.BasicNode, len(t.Items))
	triggers := make([]control.Node, len(t.Items))
	panels := make([]control.Node, len(t.Items))
	for i, item := range t.Items {
		t.triggers[i] = control.NewBasicNode()
		t.panels[i] = control.NewBasicNode()
		if item.Disabled {
			t.triggers[i].SetAttr(control.AttrDisabled, "true")
		}
		triggers[i] = t.triggers[i]
		panels[i] = t.panels[i]
	}
	// A mismatch cannot happen here; both slices come from the same items.
	_ = t.ctrl.Rebuild(triggers, panels)
}

// SetItems replaces the tabs, preserving the selected index when it still
// points at a live tab.
func (t *TabBar) SetItems(items []TabItem) {
	t.Items = items
	t.rebuild()
	t.refreshPanel()
}

// SetMarkdownFormat switches the glamour style used for panel bodies and
// re-renders the visible panel.
func (t *TabBar) SetMarkdownFormat(format string) {
	t.mdFormat = format
	if t.ready {
		t.SetSize(t.width, t.height)
	}
}

// SetSize resizes the widget. The panel viewport gets whatever height is
// left under the trigger row and panel border.
func (t *TabBar) SetSize(width, height int) {
	t.width = width
	t.height = height

	contentWidth := width - 4 // panel border and padding
	if contentWidth < 10 {
		contentWidth = 10
	}
	contentHeight := height - 3 // trigger row plus border rows
	if contentHeight < 1 {
		contentHeight = 1
	}
	format := t.mdFormat
	if format == "" {
		format = "dark"
	}
	t.renderBody = buildMarkdownRenderer(format, contentWidth)
	if !t.ready {
		t.viewport = viewport.New(contentWidth, contentHeight)
		t.ready = true
	} else {
		t.viewport.Width = contentWidth
		t.viewport.Height = contentHeight
	}
	t.refreshPanel()
}

func (t *TabBar) refreshPanel() {
	if !t.ready {
		return
	}
	i := t.ctrl.Selected()
	if i < 0 || i >= len(t.Items) {
		t.viewport.SetContent("")
		return
	}
	body := t.Items[i].Body
	if t.renderBody != nil {
		body = t.renderBody(body)
	}
	t.viewport.SetContent(body)
	t.viewport.GotoTop()
}

// Focus marks the widget focused so it renders with the focused border and
// accepts navigation keys.
func (t *TabBar) Focus() {
	t.focused = true
}

// Blur removes focus.
func (t *TabBar) Blur() {
	t.focused = false
}

// Focused reports whether the widget has focus.
func (t TabBar) Focused() bool {
	return t.focused
}

// Selected returns the selected tab index.
func (t TabBar) Selected() int {
	return t.ctrl.Selected()
}

// Select programmatically selects tab i.
func (t *TabBar) Select(i int) bool {
	if !t.ctrl.SetSelected(i) {
		return false
	}
	t.refreshPanel()
	return true
}

// ClickTab handles a pointer press on trigger i.
func (t *TabBar) ClickTab(i int) bool {
	if !t.ctrl.ClickTrigger(i) {
		return false
	}
	t.refreshPanel()
	return true
}

// Init implements tea.Model.
func (t TabBar) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model. Left/Right/Home/End drive tab selection;
// Up/Down and page keys scroll the visible panel.
func (t TabBar) Update(msg tea.Msg) (TabBar, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !t.focused {
		return t, nil
	}

	if key.Matches(keyMsg, t.keys.Up) || key.Matches(keyMsg, t.keys.Down) {
		var cmd tea.Cmd
		t.viewport, cmd = t.viewport.Update(msg)
		return t, cmd
	}

	k, ok := t.keys.ControlKey(keyMsg)
	if !ok {
		return t, nil
	}
	before := t.ctrl.Selected()
	if !t.ctrl.HandleKey(k) {
		return t, nil
	}
	if after := t.ctrl.Selected(); after != before {
		t.refreshPanel()
		title := ""
		if after >= 0 && after < len(t.Items) {
			title = t.Items[after].Title
		}
		return t, func() tea.Msg {
			return TabChangedMsg{Index: after, Title: title}
		}
	}
	return t, nil
}

// View renders the trigger row and the selected panel.
func (t TabBar) View() string {
	var b strings.Builder

	selected := t.ctrl.Selected()
	row := make([]string, 0, len(t.Items))
	for i, item := range t.Items {
		title := truncateLabel(item.Title, 24)
		switch {
		case i == selected:
			row = append(row, styleTabActive().Render(title))
		case item.Disabled:
			row = append(row, styleTabDisabled().Render(title))
		default:
			row = append(row, styleTabInactive().Render(title))
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Bottom, row...))
	b.WriteString("\n")

	panelStyle := styleTabPanel()
	if t.focused {
		panelStyle = styleTabPanelFocused()
	}
	panel := ""
	if t.ready {
		panel = t.viewport.View()
	}
	b.WriteString(panelStyle.Width(t.width - 2).Render(panel))

	return b.String()
}
