package app

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"codeberg.org/snonux/dorphin/internal/catalog"
	"codeberg.org/snonux/dorphin/internal/logging"
	"codeberg.org/snonux/dorphin/internal/nav"
)

const (
	defaultUploadDelay = 1500 * time.Millisecond
	defaultTableHeight = 12
	seekStep           = 10
)

// feedEntry is one row of the home table. Shorts rows remember where they
// sit in their category so enter opens the feed at that short.
type feedEntry struct {
	section        string
	video          catalog.Video
	shortsCategory string
	shortIndex     int
}

type model struct {
	ctrl   *nav.Controller
	log    *slog.Logger
	styles styles
	dark   bool

	home          table.Model
	feed          []feedEntry
	search        searchState
	related       table.Model
	relatedVideos []catalog.Video
	uploads       table.Model
	creator       table.Model
	creatorVideos []catalog.Video

	upload        uploadForm
	uploadDelay   time.Duration
	pendingDelete string
	avatarIndex   int

	settingsVisible bool

	statusMessage string
	width         int
	height        int
}

func newModel(opts Options, logger *slog.Logger) model {
	if logger == nil {
		logger = logging.Discard()
	}
	ctrl := nav.New(catalog.Default(), nav.Options{
		Debounce:           opts.Debounce,
		TickInterval:       opts.TickInterval,
		VoiceSearchTimeout: opts.VoiceTimeout,
		LightMode:          opts.LightMode,
		Avatar:             opts.Avatar,
		Logger:             logger,
	})
	delay := opts.UploadDelay
	if delay <= 0 {
		delay = defaultUploadDelay
	}
	m := model{
		ctrl: ctrl,
		log:  logger,
		home: buildTable([]table.Column{
			{Title: "Section", Width: 20},
			{Title: "Title", Width: 34},
			{Title: "Creator", Width: 20},
			{Title: "Length", Width: 8},
			{Title: "Views", Width: 7},
			{Title: "Watched", Width: 10},
		}, true),
		feed:   buildFeed(ctrl.Catalog()),
		search: newSearchState(),
		related: buildTable([]table.Column{
			{Title: "Up next", Width: 34},
			{Title: "Creator", Width: 20},
			{Title: "Length", Width: 8},
			{Title: "Views", Width: 7},
		}, true),
		uploads: buildTable([]table.Column{
			{Title: "Title", Width: 34},
			{Title: "Kind", Width: 6},
			{Title: "Length", Width: 8},
			{Title: "Uploaded", Width: 12},
		}, true),
		creator: buildTable([]table.Column{
			{Title: "Title", Width: 34},
			{Title: "Length", Width: 8},
			{Title: "Views", Width: 7},
			{Title: "Uploaded", Width: 12},
		}, true),
		upload:        newUploadForm(),
		uploadDelay:   delay,
		avatarIndex:   -1,
		statusMessage: "Welcome to Dorphin",
	}
	m.applyTheme()
	m.refresh()
	return m
}

func buildTable(columns []table.Column, focused bool) table.Model {
	return table.New(
		table.WithColumns(columns),
		table.WithFocused(focused),
		table.WithHeight(defaultTableHeight),
	)
}

func buildFeed(cat *catalog.Catalog) []feedEntry {
	var feed []feedEntry
	for _, category := range cat.Categories() {
		for _, v := range category.Videos {
			feed = append(feed, feedEntry{section: category.Name, video: v})
		}
	}
	for _, category := range cat.ShortsCategories() {
		for i, v := range category.Shorts {
			feed = append(feed, feedEntry{section: category.Name, video: v, shortsCategory: category.ID, shortIndex: i})
		}
	}
	return feed
}

func (m model) Init() tea.Cmd {
	return tea.SetWindowTitle("Dorphin")
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if cmd, handled := m.ctrl.Update(msg); handled {
		m.refresh()
		return m, cmd
	}
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(typed.Width, typed.Height)
		return m, nil
	case tea.KeyMsg:
		next, cmd := m.handleKeyMsg(typed)
		next.refresh()
		return next, cmd
	case uploadFinishedMsg:
		next := m.handleUploadFinished(typed)
		next.refresh()
		return next, nil
	default:
		return m.updateInputs(msg)
	}
}

// updateInputs forwards cursor blink and other component messages to the
// text inputs.
func (m model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var searchCmd, uploadCmd tea.Cmd
	m.search.input, searchCmd = m.search.input.Update(msg)
	m.upload.title, uploadCmd = m.upload.title.Update(msg)
	return m, tea.Batch(searchCmd, uploadCmd)
}

func (m *model) resize(width, height int) {
	m.width = width
	m.height = height
	h := height - 14
	if h < 3 {
		h = 3
	}
	for _, tbl := range []*table.Model{&m.home, &m.search.table, &m.related, &m.uploads, &m.creator} {
		tbl.SetHeight(h)
	}
}

func (m *model) applyTheme() {
	m.dark = m.ctrl.DarkMode()
	m.styles = newStyles(m.dark)
	ts := tableStyles(m.dark)
	for _, tbl := range []*table.Model{&m.home, &m.search.table, &m.related, &m.uploads, &m.creator} {
		tbl.SetStyles(ts)
	}
}

// refresh rebuilds every table from controller state.
func (m *model) refresh() {
	if m.dark != m.ctrl.DarkMode() {
		m.applyTheme()
	}
	cat := m.ctrl.Catalog()

	homeRows := make([]table.Row, 0, len(m.feed))
	for _, entry := range m.feed {
		v := entry.video
		homeRows = append(homeRows, table.Row{entry.section, v.Title, v.Creator, formatDuration(v.Duration), formatCount(v.Views), m.watchedLabel(v)})
	}
	setRows(&m.home, homeRows)

	m.search.results = cat.Search(m.search.input.Value())
	setRows(&m.search.table, rowsOf(m.search.results, searchRow))

	m.relatedVideos = nil
	if full, ok := m.ctrl.FullScreenPlayer(); ok {
		m.relatedVideos = cat.Related(full.Video.ID)
	}
	setRows(&m.related, rowsOf(m.relatedVideos, relatedRow))

	setRows(&m.uploads, rowsOf(m.ctrl.Uploads(), uploadRow))

	m.creatorVideos = nil
	if id, ok := m.ctrl.SelectedCreator(); ok {
		m.creatorVideos = cat.CreatorVideos(id)
	}
	setRows(&m.creator, rowsOf(m.creatorVideos, creatorVideoRow))
}

// watchedLabel shows how far into a video the user got, preferring the
// session's own progress over the catalog's seed fraction.
func (m model) watchedLabel(v catalog.Video) string {
	pos, ok := m.ctrl.Progress(v.ID)
	if !ok {
		pos, ok = v.ProgressSeconds()
	}
	if !ok || pos <= 0 {
		return ""
	}
	return renderProgressBar(pos, v.Duration, 8)
}

func rowsOf(videos []catalog.Video, row func(catalog.Video) table.Row) []table.Row {
	rows := make([]table.Row, 0, len(videos))
	for _, v := range videos {
		rows = append(rows, row(v))
	}
	return rows
}

func setRows(tbl *table.Model, rows []table.Row) {
	tbl.SetRows(rows)
	if len(rows) == 0 {
		return
	}
	switch c := tbl.Cursor(); {
	case c < 0:
		tbl.SetCursor(0)
	case c >= len(rows):
		tbl.SetCursor(len(rows) - 1)
	}
}

// selectedIndex returns the table cursor when it points at a row.
func selectedIndex(tbl table.Model, n int) (int, bool) {
	idx := tbl.Cursor()
	if idx < 0 || idx >= n {
		return 0, false
	}
	return idx, true
}

func (m model) handleUploadFinished(msg uploadFinishedMsg) model {
	m.ctrl.UploadVideo(msg.video)
	m.upload.close()
	m.statusMessage = "Uploaded \"" + msg.video.Title + "\""
	m.log.Info("video uploaded", "video_id", msg.video.ID, "kind", msg.video.Kind)
	return m
}
