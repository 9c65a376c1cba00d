package tui

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/lunit-heesungyang/palette-manager/internal/colorutil"
	"github.com/lunit-heesungyang/palette-manager/internal/config"
	"github.com/lunit-heesungyang/palette-manager/internal/logging"
	"github.com/lunit-heesungyang/palette-manager/internal/model"
	"github.com/lunit-heesungyang/palette-manager/internal/share"
	"github.com/lunit-heesungyang/palette-manager/internal/storage"
	"github.com/lunit-heesungyang/palette-manager/internal/ui"
)

const subsystem = "tui"

// FilterMode represents the current filter setting
type FilterMode int

const (
	FilterAll FilterMode = iota
	FilterFavorites
	FilterWarm
	FilterCool
	FilterNeutral
)

const filterModeCount = 5

func (f FilterMode) String() string {
	switch f {
	case FilterAll:
		return "All"
	case FilterFavorites:
		return "Favorites"
	case FilterWarm:
		return "Warm"
	case FilterCool:
		return "Cool"
	case FilterNeutral:
		return "Neutral"
	}
	return ""
}

func (f FilterMode) apply(cf *model.ColorFilter) {
	switch f {
	case FilterFavorites:
		cf.FavoritesOnly = true
	case FilterWarm:
		cf.Temperatures = []colorutil.Temperature{colorutil.Warm}
	case FilterCool:
		cf.Temperatures = []colorutil.Temperature{colorutil.Cool}
	case FilterNeutral:
		cf.Temperatures = []colorutil.Temperature{colorutil.Neutral}
	}
}

// AppState represents the current UI state
type AppState int

const (
	StateNormal AppState = iota
	StateInput
	StateConfirm
	StateFolderSelect
	StateConverter
	StateSimilar
)

// InputMode represents what input is being collected
type InputMode int

const (
	InputNone InputMode = iota
	InputSearch
	InputNewName
	InputNewHex
	InputNewFolder
)

// Model is the main Bubble Tea model
type Model struct {
	// Core dependencies
	storage *storage.Storage
	cfg     config.Config
	version string
	keys    KeyMap
	styles  Styles

	// Window dimensions
	width  int
	height int

	// Palette state
	palette     *model.Palette
	folders     *model.FolderIndex
	colors      []*model.Color // visible after filtering
	selected    int
	filterMode  FilterMode
	folderScope string // folder ID, empty for all colors
	search      string
	format      colorutil.Format

	// UI state
	state     AppState
	statusMsg string
	statusErr bool

	// Sub-components
	textInput textinput.Model
	viewport  viewport.Model

	// Confirm state
	confirmMsg    string
	confirmAction func() error

	// Input state
	inputPrompt string
	inputMode   InputMode
	pendingName string

	// Folder select state
	folderCursor int

	clipboardWrite func(string) error
}

// New creates a new TUI model
func New(projectPath string, cfg config.Config, version string) Model {
	s := storage.New(projectPath)
	s.AutoStage = cfg.AutoStage

	ti := textinput.New()
	ti.CharLimit = 200
	ti.Width = 50

	vp := viewport.New(40, 20)

	return Model{
		storage:        s,
		cfg:            cfg,
		version:        version,
		keys:           DefaultKeyMap(),
		styles:         DefaultStyles(),
		textInput:      ti,
		viewport:       vp,
		filterMode:     FilterAll,
		format:         cfg.DefaultFormat,
		clipboardWrite: clipboard.WriteAll,
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return m.loadData()
}

// Palette and folders read from storage
type dataLoadedMsg struct {
	palette *model.Palette
	folders *model.FolderIndex
	err     error
}

// Request to reload from disk
type refreshRequestMsg struct{}

// The external editor exited
type editorFinishedMsg struct{ err error }

func (m Model) loadData() tea.Cmd {
	s := m.storage
	return func() tea.Msg {
		p, err := s.LoadPalette()
		if err != nil {
			return dataLoadedMsg{err: err}
		}
		fi, err := s.LoadFolders()
		if err != nil {
			return dataLoadedMsg{err: err}
		}
		return dataLoadedMsg{palette: p, folders: fi}
	}
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = min(max(msg.Width-14, 30), 80)
		m.viewport.Height = max(msg.Height-12, 5)
		return m, nil

	case dataLoadedMsg:
		if msg.err != nil {
			m.setError(msg.err)
			return m, nil
		}
		m.palette = msg.palette
		m.folders = msg.folders
		if m.folderScope != "" && m.folders.Get(m.folderScope) == nil {
			m.folderScope = ""
		}
		m.applyFilter()
		return m, nil

	case editorFinishedMsg:
		if msg.err != nil {
			m.setError(fmt.Errorf("editor: %w", msg.err))
		}
		return m, m.loadData()

	case refreshRequestMsg:
		return m, m.loadData()
	}

	return m, nil
}

func (m *Model) applyFilter() {
	if m.palette == nil {
		return
	}
	f := model.ColorFilter{Keyword: m.search}
	m.filterMode.apply(&f)
	if m.folderScope != "" && m.folders != nil {
		f.IDs = m.folders.ColorIDs(m.folderScope)
	}
	m.colors = m.palette.Filter(f, model.ColorSort{By: model.SortByName})
	if m.selected >= len(m.colors) {
		m.selected = max(0, len(m.colors)-1)
	}
}

func (m *Model) setStatus(format string, args ...interface{}) {
	m.statusMsg = fmt.Sprintf(format, args...)
	m.statusErr = false
}

func (m *Model) setError(err error) {
	logging.Error(subsystem, err, "action failed")
	m.statusMsg = fmt.Sprintf("Error: %v", err)
	m.statusErr = true
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case StateInput:
		return m.handleInputKey(msg)
	case StateConfirm:
		return m.handleConfirmKey(msg)
	case StateFolderSelect:
		return m.handleFolderSelectKey(msg)
	case StateConverter:
		return m.handleConverterKey(msg)
	case StateSimilar:
		return m.handleSimilarKey(msg)
	default:
		return m.handleNormalKey(msg)
	}
}

func (m Model) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.selected < len(m.colors)-1 {
			m.selected++
		}
		return m, nil

	case key.Matches(msg, m.keys.Search):
		return m.startInput(InputSearch, "Search: ", m.search)

	case key.Matches(msg, m.keys.Filter):
		m.filterMode = (m.filterMode + 1) % filterModeCount
		m.applyFilter()
		m.setStatus("Filter: %s", m.filterMode)
		return m, nil

	case key.Matches(msg, m.keys.Folder):
		m.cycleFolderScope()
		m.applyFilter()
		m.setStatus("Folder: %s", m.folderLabel())
		return m, nil

	case key.Matches(msg, m.keys.Format):
		m.format = m.format.Next()
		m.cfg.RememberFormat(m.format)
		m.setStatus("Format: %s", m.format)
		return m, nil

	case key.Matches(msg, m.keys.Copy):
		return m.copySelected()

	case key.Matches(msg, m.keys.Favorite):
		return m.toggleFavorite()

	case key.Matches(msg, m.keys.New):
		return m.startInput(InputNewName, "Name: ", "")

	case key.Matches(msg, m.keys.Delete):
		return m.confirmDelete()

	case key.Matches(msg, m.keys.AddToFolder):
		return m.startFolderSelect()

	case key.Matches(msg, m.keys.Converter):
		return m.openConverter()

	case key.Matches(msg, m.keys.Similar):
		return m.openSimilar()

	case key.Matches(msg, m.keys.Share):
		return m.shareFolder()

	case key.Matches(msg, m.keys.Edit):
		return m.editFolderNotes()

	case key.Matches(msg, m.keys.Refresh):
		m.setStatus("Refreshed")
		return m, m.loadData()
	}

	return m, nil
}

func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		value := strings.TrimSpace(m.textInput.Value())
		m.textInput.Reset()

		switch m.inputMode {
		case InputSearch:
			m.search = value
			m.applyFilter()
			m.endInput()
			if value == "" {
				m.setStatus("Search cleared")
			} else {
				m.setStatus("%d matches for %q", len(m.colors), value)
			}
			return m, nil
		case InputNewName:
			if value == "" {
				m.endInput()
				m.setStatus("Cancelled")
				return m, nil
			}
			m.pendingName = value
			return m.startInput(InputNewHex, "Hex (#RRGGBB): ", "")
		case InputNewHex:
			m.endInput()
			return m.createColor(m.pendingName, value)
		case InputNewFolder:
			m.endInput()
			return m.createFolderWithSelected(value)
		default:
			m.endInput()
			return m, nil
		}

	case tea.KeyEsc:
		if m.inputMode == InputSearch {
			m.search = ""
			m.applyFilter()
		}
		m.textInput.Reset()
		m.endInput()
		m.setStatus("Cancelled")
		return m, nil
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	if m.inputMode == InputSearch {
		m.search = strings.TrimSpace(m.textInput.Value())
		m.applyFilter()
	}
	return m, cmd
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Yes):
		m.state = StateNormal
		if m.confirmAction != nil {
			if err := m.confirmAction(); err != nil {
				m.setError(err)
				return m, nil
			}
		}
		m.setStatus("%s Done", ui.IconSuccess)
		return m, m.loadData()

	case key.Matches(msg, m.keys.No), key.Matches(msg, m.keys.Escape):
		m.state = StateNormal
		m.setStatus("Cancelled")
		return m, nil
	}

	return m, nil
}

func (m Model) handleFolderSelectKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	folders := m.folders.Sorted(false)

	switch {
	case key.Matches(msg, m.keys.Escape), msg.String() == "q":
		m.state = StateNormal
		m.setStatus("Cancelled")
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.folderCursor > 0 {
			m.folderCursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.folderCursor < len(folders)-1 {
			m.folderCursor++
		}
		return m, nil

	case msg.String() == "n":
		return m.startInput(InputNewFolder, "Folder name: ", "")

	case key.Matches(msg, m.keys.Enter):
		m.state = StateNormal
		c := m.selectedColor()
		if c == nil || m.folderCursor >= len(folders) {
			return m, nil
		}
		f := folders[m.folderCursor]
		if err := m.storage.AddToFolder(c.ID, f.ID); err != nil {
			m.setError(err)
			return m, nil
		}
		m.setStatus("%s Added %s to %s", ui.IconFolder, c.Name, f.Name)
		return m, m.loadData()
	}

	return m, nil
}

func (m Model) handleConverterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.textInput.Reset()
		m.state = StateNormal
		return m, nil

	case tea.KeyEnter:
		value := strings.TrimSpace(m.textInput.Value())
		from, ok := colorutil.DetectFormat(value)
		if !ok {
			m.setStatus("Unrecognized color %q", value)
			return m, nil
		}
		hex, _ := colorutil.ConvertToHex(value, from)
		out := colorutil.FormatColor(hex, m.format)
		if err := m.clipboardWrite(out); err != nil {
			m.setError(err)
			return m, nil
		}
		m.setStatus("%s Copied %s", ui.IconCopy, out)
		return m, nil
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m Model) handleSimilarKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Quit), msg.String() == "m":
		m.state = StateNormal
		return m, nil
	case key.Matches(msg, m.keys.Up):
		m.viewport.LineUp(1)
	case key.Matches(msg, m.keys.Down):
		m.viewport.LineDown(1)
	case msg.String() == "g":
		m.viewport.GotoTop()
	case msg.String() == "G":
		m.viewport.GotoBottom()
	}
	return m, nil
}

// View implements tea.Model
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	// Calculate layout - reserve 3 lines for header(1) + footer(1) + status(1)
	listWidth := m.width / 2
	previewWidth := m.width - listWidth
	contentHeight := max(m.height-3, 1)

	headerText := fmt.Sprintf("Palette [%s] [%s] [%s]", m.filterMode, m.folderLabel(), m.format)
	if m.search != "" {
		headerText += fmt.Sprintf("  /%s", m.search)
	}
	header := m.styles.Header.Render(headerText)

	listPanel := m.styles.ListPanel.
		Width(listWidth).
		Render(m.renderList(listWidth-2, contentHeight))

	previewPanel := m.styles.PreviewPanel.
		Width(previewWidth).
		Render(m.renderPreview(previewWidth-4, contentHeight))

	content := lipgloss.JoinHorizontal(lipgloss.Top, listPanel, previewPanel)

	footer := m.styles.Footer.Render(helpLine(m.keys.ShortHelp()))
	statusStyle := m.styles.StatusBar
	if m.statusErr {
		statusStyle = m.styles.ErrorBar
	}
	status := statusStyle.Render(m.statusMsg)

	var overlay string
	switch m.state {
	case StateInput:
		overlay = m.renderInputOverlay()
	case StateConfirm:
		overlay = m.renderConfirmOverlay()
	case StateFolderSelect:
		overlay = m.renderFolderSelectOverlay()
	case StateConverter:
		overlay = m.renderConverterOverlay()
	case StateSimilar:
		overlay = m.renderSimilarOverlay()
	}

	view := lipgloss.JoinVertical(lipgloss.Left,
		header,
		content,
		footer,
		status,
	)

	if overlay != "" {
		return lipgloss.NewStyle().
			Width(m.width).
			Height(m.height).
			Align(lipgloss.Center, lipgloss.Center).
			Render(overlay)
	}

	// Force exact terminal height to prevent scrolling issues
	lines := strings.Split(view, "\n")
	if len(lines) > m.height {
		lines = lines[:m.height]
	}
	for len(lines) < m.height {
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}

func (m Model) renderList(width, height int) string {
	var lines []string

	if len(m.colors) == 0 {
		lines = append(lines, fmt.Sprintf("No %s colors", strings.ToLower(m.filterMode.String())))
	} else {
		start := 0
		if m.selected >= height {
			start = m.selected - height + 1
		}
		for i := start; i < len(m.colors) && i < start+height; i++ {
			c := m.colors[i]
			star := " "
			if c.Favorite {
				star = ui.IconFavorite
			}
			text := fmt.Sprintf("%s %s %s  %s", star, ui.TemperatureIcon(c.Temperature), c.DisplayName(m.cfg.Language), c.Hex)

			// Truncate using display width (handles CJK names)
			textWidth := width - 3
			if runewidth.StringWidth(text) > textWidth {
				text = runewidth.Truncate(text, textWidth, "...")
			}

			if i == m.selected {
				text = m.styles.SelectedItem.Render(text)
			} else if c.Favorite {
				text = m.styles.Favorite.Render(text)
			}

			lines = append(lines, ui.Chip(c.Hex)+" "+text)
		}
	}

	for len(lines) < height {
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}

func (m Model) renderPreview(width, height int) string {
	var lines []string

	c := m.selectedColor()
	if c == nil {
		lines = append(lines, "No color selected")
	} else {
		lines = append(lines, m.styles.PreviewTitle.Render(c.DisplayName(m.cfg.Language)))
		lines = append(lines, strings.Repeat("─", min(width, 40)))

		swatchWidth := min(width, 40)
		blank := strings.Repeat(" ", swatchWidth)
		lines = append(lines,
			ui.Swatch(c.Hex, blank, swatchWidth),
			ui.Swatch(c.Hex, c.Format(m.format), swatchWidth),
			ui.Swatch(c.Hex, blank, swatchWidth),
			"",
		)

		field := func(label, value string) {
			if value == "" {
				return
			}
			lines = append(lines, m.styles.PreviewLabel.Render(label)+m.styles.PreviewValue.Render(value))
		}

		if m.cfg.ShowColorCodes {
			for _, f := range colorutil.Formats() {
				field(strings.ToUpper(string(f)), c.Format(f))
			}
		}
		field("Temperature", fmt.Sprintf("%s %s", ui.TemperatureIcon(c.Temperature), c.Temperature))
		if c.Category != "" {
			label := c.Category
			icon := ""
			if cat := m.palette.GetCategory(c.Category); cat != nil {
				label = cat.Name
				icon = cat.Icon
			}
			field("Category", ui.CategoryIcon(c.Category, icon)+" "+label)
		}
		field("Tags", strings.Join(c.Tags, ", "))
		if m.folders != nil {
			var names []string
			for _, f := range m.folders.FoldersFor(c.ID) {
				names = append(names, f.Name)
			}
			field("Folders", strings.Join(names, ", "))
		}
		field("Used", fmt.Sprintf("%d×", c.UsageCount))

		if desc := c.DisplayDescription(m.cfg.Language); desc != "" {
			lines = append(lines, "")
			lines = append(lines, strings.Split(wrapText(desc, width), "\n")...)
		}
	}

	for len(lines) < height {
		lines = append(lines, "")
	}
	if len(lines) > height {
		lines = lines[:height]
	}

	return strings.Join(lines, "\n")
}

func (m Model) renderInputOverlay() string {
	title := ""
	switch m.inputMode {
	case InputNewName, InputNewHex:
		title = "New color"
		if m.pendingName != "" && m.inputMode == InputNewHex {
			title = fmt.Sprintf("New color: %s", m.pendingName)
		}
	case InputNewFolder:
		title = "New folder"
	case InputSearch:
		title = "Search colors"
	}

	return m.styles.PopupBorder.Render(
		fmt.Sprintf("%s\n\n%s\n%s",
			m.styles.PopupTitle.Render(ui.IconInput+" "+title),
			m.styles.InputPrompt.Render(m.inputPrompt),
			m.textInput.View(),
		),
	)
}

func (m Model) renderConfirmOverlay() string {
	return m.styles.PopupBorder.Render(
		fmt.Sprintf("%s\n\n[y]es / [n]o",
			m.styles.PopupTitle.Render(ui.IconConfirm+m.confirmMsg),
		),
	)
}

func (m Model) renderFolderSelectOverlay() string {
	var sb strings.Builder
	sb.WriteString(m.styles.PopupTitle.Render(ui.IconFolder + " Add to folder"))
	sb.WriteString("\n\n")

	folders := m.folders.Sorted(false)
	if len(folders) == 0 {
		sb.WriteString(m.styles.PopupHint.Render("No folders yet"))
		sb.WriteString("\n")
	}
	c := m.selectedColor()
	for i, f := range folders {
		check := ui.IconCheckboxUnchecked
		if c != nil && m.folders.Contains(f.ID, c.ID) {
			check = ui.IconCheckboxChecked
		}
		line := fmt.Sprintf("%s %s (%d)", check, f.Name, len(m.folders.ColorIDs(f.ID)))
		if i == m.folderCursor {
			sb.WriteString(m.styles.PopupActive.Render("> " + line))
		} else {
			sb.WriteString(m.styles.PopupOption.Render("  " + line))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(m.styles.PopupHint.Render("[↵] add  [n] new folder  [esc] cancel"))
	return m.styles.PopupBorder.Render(sb.String())
}

func (m Model) renderConverterOverlay() string {
	var sb strings.Builder
	sb.WriteString(m.styles.PopupTitle.Render("Color converter"))
	sb.WriteString("\n\n")
	sb.WriteString(m.styles.InputPrompt.Render(m.inputPrompt))
	sb.WriteString(m.textInput.View())
	sb.WriteString("\n\n")

	value := strings.TrimSpace(m.textInput.Value())
	from, ok := colorutil.DetectFormat(value)
	if !ok {
		sb.WriteString(m.styles.PopupHint.Render("Enter hex, rgb(), rgba(), hsl(), hsla() or hsv()"))
	} else {
		hex, _ := colorutil.ConvertToHex(value, from)
		sb.WriteString(ui.Swatch(hex, hex, 30))
		sb.WriteString("\n")
		sb.WriteString(m.styles.PopupHint.Render(fmt.Sprintf("detected %s", from)))
		sb.WriteString("\n\n")
		for _, f := range m.converterOrder() {
			line := m.styles.PreviewLabel.Render(strings.ToUpper(string(f))) + colorutil.FormatColor(hex, f)
			if f == m.format {
				line = m.styles.PopupActive.Render(line)
			}
			sb.WriteString(line)
			sb.WriteString("\n")
		}
	}

	sb.WriteString("\n")
	sb.WriteString(m.styles.PopupHint.Render(fmt.Sprintf("[↵] copy as %s  [esc] close", m.format)))
	return m.styles.PopupBorder.Render(sb.String())
}

// converterOrder lists recently used formats first
func (m Model) converterOrder() []colorutil.Format {
	seen := make(map[colorutil.Format]bool)
	var order []colorutil.Format
	for _, f := range append(append([]colorutil.Format{}, m.cfg.RecentFormats...), colorutil.Formats()...) {
		if !seen[f] {
			seen[f] = true
			order = append(order, f)
		}
	}
	return order
}

func (m Model) renderSimilarOverlay() string {
	scrollInfo := fmt.Sprintf(" %3.0f%% ", m.viewport.ScrollPercent()*100)
	return m.styles.PopupBorder.Render(
		fmt.Sprintf("%s\n%s\n%s%s\n%s",
			m.styles.PopupTitle.Render("Similar colors"),
			m.viewport.View(),
			strings.Repeat("─", max(m.viewport.Width-6, 1)),
			scrollInfo,
			m.styles.PopupHint.Render("[j/k] scroll  [esc] close"),
		),
	)
}

// Actions

func (m Model) startInput(mode InputMode, prompt, value string) (Model, tea.Cmd) {
	m.state = StateInput
	m.inputMode = mode
	m.inputPrompt = prompt
	m.textInput.SetValue(value)
	m.textInput.CursorEnd()
	m.textInput.Focus()
	return m, textinput.Blink
}

func (m *Model) endInput() {
	m.state = StateNormal
	m.inputMode = InputNone
	m.textInput.Blur()
}

func (m Model) copySelected() (Model, tea.Cmd) {
	c := m.selectedColor()
	if c == nil {
		m.setStatus("No color selected")
		return m, nil
	}

	value := c.Format(m.format)
	if err := m.clipboardWrite(value); err != nil {
		m.setError(fmt.Errorf("copying to clipboard: %w", err))
		return m, nil
	}
	if err := m.storage.IncrementUsage(c.ID); err != nil {
		logging.Warn(subsystem, "usage not recorded for %s: %v", c.ID, err)
	}
	m.setStatus("%s Copied %s", ui.IconCopy, value)
	return m, m.loadData()
}

func (m Model) toggleFavorite() (Model, tea.Cmd) {
	c := m.selectedColor()
	if c == nil {
		m.setStatus("No color selected")
		return m, nil
	}
	fav, err := m.storage.ToggleFavorite(c.ID)
	if err != nil {
		m.setError(err)
		return m, nil
	}
	if fav {
		m.setStatus("%s Starred %s", ui.IconFavorite, c.Name)
	} else {
		m.setStatus("%s Unstarred %s", ui.IconNotFavorite, c.Name)
	}
	return m, m.loadData()
}

func (m Model) createColor(name, hex string) (Model, tea.Cmd) {
	c, err := m.storage.AddColor(model.NewColor(name, hex))
	if err != nil {
		if errors.Is(err, storage.ErrInvalidHex) {
			m.setStatus("Invalid hex %q, expected #RGB or #RRGGBB", hex)
			m.statusErr = true
			return m, nil
		}
		m.setError(err)
		return m, nil
	}
	m.pendingName = ""
	m.setStatus("%s Added %s (%s)", ui.IconSuccess, c.Name, c.Hex)
	return m, m.loadData()
}

func (m Model) confirmDelete() (Model, tea.Cmd) {
	c := m.selectedColor()
	if c == nil {
		m.setStatus("No color selected")
		return m, nil
	}
	id := c.ID
	s := m.storage
	m.state = StateConfirm
	m.confirmMsg = fmt.Sprintf("Delete %s (%s)?", c.Name, c.Hex)
	m.confirmAction = func() error {
		return s.DeleteColor(id)
	}
	return m, nil
}

func (m Model) startFolderSelect() (Model, tea.Cmd) {
	if m.selectedColor() == nil {
		m.setStatus("No color selected")
		return m, nil
	}
	m.state = StateFolderSelect
	m.folderCursor = 0
	return m, nil
}

func (m Model) createFolderWithSelected(name string) (Model, tea.Cmd) {
	if name == "" {
		m.setStatus("Cancelled")
		return m, nil
	}
	f, err := m.storage.CreateFolder(name, "", ui.IconFolder)
	if err != nil {
		m.setError(err)
		return m, nil
	}
	if c := m.selectedColor(); c != nil {
		if err := m.storage.AddToFolder(c.ID, f.ID); err != nil {
			m.setError(err)
			return m, m.loadData()
		}
	}
	m.setStatus("%s Created folder %s", ui.IconFolder, f.Name)
	return m, m.loadData()
}

func (m Model) openConverter() (Model, tea.Cmd) {
	initial := ""
	if c := m.selectedColor(); c != nil {
		initial = c.Format(colorutil.FormatRGB)
	}
	m.state = StateConverter
	m.inputPrompt = "Color: "
	m.textInput.SetValue(initial)
	m.textInput.CursorEnd()
	m.textInput.Focus()
	return m, textinput.Blink
}

func (m Model) openSimilar() (Model, tea.Cmd) {
	c := m.selectedColor()
	if c == nil {
		m.setStatus("No color selected")
		return m, nil
	}

	similar := colorutil.SimilarColors(c.Hex, m.cfg.SimilarCount)
	width := max(m.viewport.Width-4, 20)

	var sb strings.Builder
	sb.WriteString(ui.Gradient(append([]string{c.Hex}, similar...), width))
	sb.WriteString("\n\n")
	sb.WriteString(ui.Swatch(c.Hex, c.Hex, 10))
	sb.WriteString("  " + c.DisplayName(m.cfg.Language) + "\n\n")
	for _, h := range similar {
		existing := ""
		if match := m.palette.FindByHex(h); match != nil {
			existing = "  = " + match.Name
		}
		fmt.Fprintf(&sb, "%s  %s %s%s\n",
			ui.Swatch(h, h, 10),
			ui.TemperatureIcon(colorutil.ColorTemperature(h)),
			colorutil.FormatColor(h, m.format),
			existing,
		)
	}
	if len(similar) == 0 {
		sb.WriteString("No similar colors\n")
	}

	m.viewport.SetContent(sb.String())
	m.viewport.GotoTop()
	m.state = StateSimilar
	return m, nil
}

func (m Model) shareFolder() (Model, tea.Cmd) {
	f := m.currentFolder()
	if f == nil {
		m.setStatus("Select a folder with F to share it")
		return m, nil
	}

	colors := m.folders.ColorsIn(f.ID, m.palette)
	sf := share.NewSharedFolder(f, colors, share.DefaultOptions(), m.version)
	link, err := share.NewCodec(m.cfg.ShareBaseURL, m.cfg.ShareMaxURLLength).URL(sf)
	if err != nil {
		m.setError(err)
		return m, nil
	}
	if err := m.clipboardWrite(link); err != nil {
		m.setError(fmt.Errorf("copying to clipboard: %w", err))
		return m, nil
	}
	m.setStatus("%s Share link for %s copied (%d colors, %d chars)", ui.IconShare, f.Name, len(colors), len(link))
	return m, nil
}

func (m Model) editFolderNotes() (Model, tea.Cmd) {
	f := m.currentFolder()
	if f == nil {
		m.setStatus("Select a folder with F to edit its notes")
		return m, nil
	}

	path := m.storage.FolderPath(f.ID)
	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = "vim"
	}

	cmd := exec.Command(editor, path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return m, tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{err: err}
	})
}

func (m *Model) cycleFolderScope() {
	if m.folders == nil {
		return
	}
	scopes := []string{""}
	for _, f := range m.folders.Sorted(false) {
		scopes = append(scopes, f.ID)
	}
	for i, id := range scopes {
		if id == m.folderScope {
			m.folderScope = scopes[(i+1)%len(scopes)]
			return
		}
	}
	m.folderScope = ""
}

func (m Model) currentFolder() *model.Folder {
	if m.folderScope == "" || m.folders == nil {
		return nil
	}
	return m.folders.Get(m.folderScope)
}

func (m Model) folderLabel() string {
	if f := m.currentFolder(); f != nil {
		return f.Name
	}
	return "All colors"
}

func (m Model) selectedColor() *model.Color {
	if m.selected >= 0 && m.selected < len(m.colors) {
		return m.colors[m.selected]
	}
	return nil
}

// Helper functions

func helpLine(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, fmt.Sprintf("[%s]%s", h.Key, h.Desc))
	}
	return strings.Join(parts, " ")
}

func wrapText(text string, width int) string {
	if width <= 0 {
		return text
	}

	var result strings.Builder
	lines := strings.Split(text, "\n")

	for i, line := range lines {
		if i > 0 {
			result.WriteString("\n")
		}

		// Wrap using display width (handles wide chars like CJK)
		for runewidth.StringWidth(line) > width {
			wrapped := runewidth.Truncate(line, width, "")
			if wrapped == "" {
				break
			}
			result.WriteString(wrapped)
			result.WriteString("\n")
			line = line[len(wrapped):]
		}
		result.WriteString(line)
	}

	return result.String()
}
