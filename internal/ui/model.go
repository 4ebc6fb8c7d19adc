package ui

import (
	"errors"
	"reflect"
	"time"

	"github.com/atomicstack/totem/internal/logging/events"
	"github.com/atomicstack/totem/internal/theme"
	uistate "github.com/atomicstack/totem/internal/ui/state"
	"github.com/atomicstack/totem/internal/vault"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

// Page selects which screen the dispatcher renders.
type Page int

const (
	PageMain Page = iota
	PageQRCode
	PageInfo
)

func (p Page) String() string {
	switch p {
	case PageQRCode:
		return "qrcode"
	case PageInfo:
		return "info"
	default:
		return "main"
	}
}

// Focus selects which surface consumes key input.
type Focus int

const (
	FocusMain Focus = iota
	FocusSearchBar
	FocusPopup
)

func (f Focus) String() string {
	switch f {
	case FocusSearchBar:
		return "search"
	case FocusPopup:
		return "popup"
	default:
		return "main"
	}
}

var styles = theme.Default()

var errNoPendingAction = errors.New("popup requires a pending action")

// pendingAction is the tagged union of operations a confirmation popup can
// apply. Every variant mutates the store through its public API.
type pendingAction interface {
	describe() string
	apply(s *vault.Store) error
}

type deleteAction struct {
	index int
}

func (a deleteAction) describe() string           { return "delete" }
func (a deleteAction) apply(s *vault.Store) error { return s.Delete(a.index) }

type editAction struct {
	index  int
	record vault.Record
}

func (a editAction) describe() string           { return "edit" }
func (a editAction) apply(s *vault.Store) error { return s.Edit(a.index, a.record) }

type addAction struct {
	record vault.Record
}

func (a addAction) describe() string           { return "add" }
func (a addAction) apply(s *vault.Store) error { return s.Add(a.record) }

// popup pairs a confirmation prompt with its pending action. The only way to
// build one is newPopup, which rejects a missing action, so focus can never
// reach FocusPopup without something to confirm.
type popup struct {
	action pendingAction
	text   string
}

func newPopup(action pendingAction, text string) (*popup, error) {
	if action == nil {
		return nil, errNoPendingAction
	}
	return &popup{action: action, text: text}, nil
}

// tickMsg drives the refresh clock once per second.
type tickMsg time.Time

func scheduleTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

type msgHandler func(tea.Msg) tea.Cmd

// Model implements the Bubble Tea model for the OTP viewer session.
type Model struct {
	title   string
	running bool

	store *vault.Store
	view  *uistate.View
	clock *uistate.Clock

	page  Page
	focus Focus
	popup *popup
	// popupText survives popup dismissal, mirroring the prompt or the last
	// mutation failure.
	popupText string

	labelText       string
	printPercentage bool

	errMsg     string
	infoMsg    string
	infoExpire time.Time

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	verbose     bool

	form *credentialForm

	searchCursor      cursor.Model
	searchCursorDirty bool
	gauge             progress.Model

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the session state over an opened vault.
func NewModel(store *vault.Store, title string, width, height int, showFooter, verbose bool) *Model {
	m := &Model{
		title:           title,
		running:         true,
		store:           store,
		view:            uistate.NewView(),
		clock:           uistate.NewClock(),
		page:            PageMain,
		focus:           FocusMain,
		printPercentage: true,
		showFooter:      showFooter,
		verbose:         verbose,
	}
	m.view.Rebuild(store)
	if width > 0 {
		m.width = width
		m.fixedWidth = true
	}
	if height > 0 {
		m.height = height
		m.fixedHeight = true
	}
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = *styles.Cursor
	}
	if styles.SearchText != nil {
		c.TextStyle = *styles.SearchText
	}
	c.SetChar(" ")
	m.searchCursor = c
	m.gauge = progress.New(progress.WithSolidFill("255"), progress.WithoutPercentage())
	m.registerHandlers()
	return m
}

// Running reports whether the session is still active; the host polls it
// after the program exits to decide on persistence.
func (m *Model) Running() bool { return m.running }

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{scheduleTick()}
	if cmd := m.searchCursor.Focus(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateSearchCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handled, cmd := m.handleActiveForm(msg); handled {
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		return m, m.finishUpdate(cmds)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
		return m, m.finishUpdate(cmds)
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(tickMsg{}):           m.handleTickMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.searchCursorDirty {
		m.searchCursorDirty = false
		m.searchCursor.Blink = false
		if cmd := m.searchCursor.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m *Model) handleTickMsg(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(tickMsg); !ok {
		return nil
	}
	m.tick(false)
	return scheduleTick()
}

// tick advances the refresh clock; a window wrap (or forced refresh) rebuilds
// the derived rows so stale codes never survive a rotation boundary.
func (m *Model) tick(force bool) {
	if m.clock.Tick(force) {
		m.view.Rebuild(m.store)
		m.printPercentage = true
		m.labelText = ""
	}
}

// presentPopup moves focus to the confirmation overlay. Focus only changes
// when the popup carries an action, preserving the popup invariant.
func (m *Model) presentPopup(action pendingAction, text string) {
	p, err := newPopup(action, text)
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	m.popup = p
	m.popupText = text
	m.focus = FocusPopup
	events.UI.PopupOpen(action.describe(), text)
	events.UI.Focus(m.focus.String())
}

func (m *Model) confirmPopup() {
	p := m.popup
	m.popup = nil
	m.focus = FocusMain
	if p == nil {
		return
	}
	events.UI.PopupConfirm(p.action.describe())
	if err := p.action.apply(m.store); err != nil {
		m.popupText = err.Error()
		m.errMsg = err.Error()
		events.UI.Focus(m.focus.String())
		return
	}
	m.errMsg = ""
	m.view.Rebuild(m.store)
	events.UI.Focus(m.focus.String())
}

func (m *Model) cancelPopup() {
	if m.popup != nil {
		events.UI.PopupCancel(m.popup.action.describe())
	}
	m.popup = nil
	m.focus = FocusMain
	events.UI.Focus(m.focus.String())
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.syncViewport()
	return nil
}

func (m *Model) syncViewport() {
	m.view.EnsureCursorVisible(m.maxVisibleRows())
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(5 * time.Second)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}

func (m *Model) quit() tea.Cmd {
	m.running = false
	return tea.Quit
}
