package controller

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dshills/xxcmd/internal/engine/lineedit"
	"github.com/dshills/xxcmd/internal/input/key"
	"github.com/dshills/xxcmd/internal/input/mode"
	"github.com/dshills/xxcmd/internal/record"
	"github.com/dshills/xxcmd/internal/store"
)

// Notice texts shown through the Notifier.
const (
	NoticeReadOnly  = "Global commands cannot be changed"
	NoticeDuplicate = "That command already exists"
	NoticeSaveError = "Could not save the command database"
)

// RecordStore is the record collection the controller searches and edits.
// *store.Store implements it.
type RecordStore interface {
	Records() []*record.Record
	Add(r *record.Record) error
	Remove(r *record.Record) error
	SetLabel(r *record.Record, label string) error
	SetCommand(r *record.Record, command string) error
	Save() error
}

// Notifier shows a transient message to the user.
type Notifier interface {
	Flash(msg string)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(msg string)

// Flash calls f(msg).
func (f NotifierFunc) Flash(msg string) { f(msg) }

// Options configures searching and sorting.
type Options struct {
	Search        SearchPolicy
	Sort          SortPolicy
	CaseSensitive bool
}

// Outcome tells the caller what a keystroke asks of the session.
type Outcome struct {
	// Quit ends the session.
	Quit bool

	// Run is the record to execute, if any.
	Run *record.Record
}

// Done reports whether the session should end.
func (o Outcome) Done() bool {
	return o.Quit || o.Run != nil
}

// Controller is the search/select/edit state machine.
// It is not safe for concurrent use.
type Controller struct {
	store    RecordStore
	opts     Options
	notifier Notifier

	buf   *lineedit.Buffer
	modes *mode.Manager

	results  []*record.Record
	selected int

	// target is the record being edited in EditLabel/EditCommand.
	target *record.Record

	autorun bool
}

// New creates a controller in Search mode with an empty query.
// A nil notifier discards notices.
func New(s RecordStore, opts Options, notifier Notifier) *Controller {
	if notifier == nil {
		notifier = NotifierFunc(func(string) {})
	}
	c := &Controller{
		store:    s,
		opts:     opts,
		notifier: notifier,
		buf:      lineedit.New(),
		modes:    mode.NewManager(),
	}
	c.UpdateSearch()
	return c
}

// Start presets the query. A non-empty query arms autorun.
func (c *Controller) Start(query string) {
	c.buf = lineedit.NewFromString(query)
	c.autorun = query != ""
	c.selected = 0
	c.UpdateSearch()
}

// Autorun returns the sole result of a preset query. It reports false
// after its first call.
func (c *Controller) Autorun() (*record.Record, bool) {
	if !c.autorun {
		return nil, false
	}
	c.autorun = false
	if len(c.results) != 1 || c.results[0].Command == "" {
		return nil, false
	}
	return c.results[0], true
}

// Mode returns the active mode.
func (c *Controller) Mode() mode.Mode {
	return c.modes.Current()
}

// Modes returns the mode manager, for registering change callbacks.
func (c *Controller) Modes() *mode.Manager {
	return c.modes
}

// Prefix returns the input line prefix of the active mode.
func (c *Controller) Prefix() string {
	return c.modes.Current().Prefix()
}

// Buffer returns the input line.
func (c *Controller) Buffer() *lineedit.Buffer {
	return c.buf
}

// Results returns the current result view. The slice must not be modified.
func (c *Controller) Results() []*record.Record {
	return c.results
}

// SelectedIndex returns the selection index, or -1 when there are no
// results.
func (c *Controller) SelectedIndex() int {
	if len(c.results) == 0 {
		return -1
	}
	return c.selected
}

// Selected returns the selected record.
func (c *Controller) Selected() (*record.Record, bool) {
	if len(c.results) == 0 {
		return nil, false
	}
	return c.results[c.selected], true
}

// Select moves the selection to i, clamped to the result view.
func (c *Controller) Select(i int) {
	switch {
	case len(c.results) == 0 || i < 0:
		c.selected = 0
	case i >= len(c.results):
		c.selected = len(c.results) - 1
	default:
		c.selected = i
	}
}

// MoveSelection moves the selection by delta rows.
func (c *Controller) MoveSelection(delta int) {
	c.Select(c.selected + delta)
}

// UpdateSearch recomputes the result view from the store and the query.
// An empty query lists every record in store order.
func (c *Controller) UpdateSearch() {
	query := c.buf.Value()
	c.results = Filter(c.store.Records(), query, c.opts.Search)
	if query != "" {
		Sort(c.results, c.opts.Sort, c.opts.CaseSensitive)
	}
	c.Select(c.selected)
}

// HandleKey processes one keystroke. Bound keys dispatch their action;
// other keys edit the input line. When the keystroke leaves the mode
// unchanged, the mode's Always action runs afterwards.
func (c *Controller) HandleKey(ev key.Event) (Outcome, error) {
	current := c.modes.Current()

	var (
		out Outcome
		err error
	)
	if a, ok := current.Lookup(ev); ok {
		out, err = c.Dispatch(a)
	} else {
		c.edit(ev)
	}
	if out.Done() {
		return out, err
	}

	if c.modes.IsMode(current) {
		if a := current.Always(); a != mode.ActionNone {
			if _, aerr := c.Dispatch(a); err == nil {
				err = aerr
			}
		}
	}
	return out, err
}

// edit applies an unbound key to the input line.
func (c *Controller) edit(ev key.Event) {
	word := ev.Modifiers.Has(key.ModCtrl | key.ModAlt)
	switch ev.Key {
	case key.KeyBackspace:
		c.buf.DeleteChar()
	case key.KeyLeft:
		if word {
			c.buf.MoveLeft(lineedit.Word)
		} else {
			c.buf.MoveLeft(lineedit.Character)
		}
	case key.KeyRight:
		if word {
			c.buf.MoveRight(lineedit.Word)
		} else {
			c.buf.MoveRight(lineedit.Character)
		}
	case key.KeyHome:
		c.buf.MoveLeft(lineedit.Line)
	case key.KeyEnd:
		c.buf.MoveRight(lineedit.Line)
	default:
		if ev.IsChar() {
			c.buf.InsertRune(ev.Rune)
		}
	}
}

// Dispatch executes a single action.
func (c *Controller) Dispatch(a mode.Action) (Outcome, error) {
	switch a {
	case mode.ActionNone:
	case mode.ActionUpdateSearch:
		c.UpdateSearch()
	case mode.ActionQuit:
		return Outcome{Quit: true}, nil
	case mode.ActionExecute:
		if r, ok := c.Selected(); ok && r.Command != "" {
			return Outcome{Run: r}, nil
		}
	case mode.ActionDelete:
		return Outcome{}, c.deleteSelected()
	case mode.ActionSelectPrev:
		c.MoveSelection(-1)
	case mode.ActionSelectNext:
		c.MoveSelection(1)
	case mode.ActionEditLabel:
		if r, ok := c.Selected(); ok {
			c.target = r
			c.enter(mode.EditLabel, r.Label)
		}
	case mode.ActionEditCommand:
		if r, ok := c.Selected(); ok {
			c.target = r
			c.enter(mode.EditCommand, r.Command)
		}
	case mode.ActionNewCommand:
		c.target = nil
		c.enter(mode.EditNewCommand, "")
	case mode.ActionCommit:
		return Outcome{}, c.commit()
	case mode.ActionCancel:
		c.leave()
	default:
		return Outcome{}, fmt.Errorf("dispatch: unknown action %s", a)
	}
	return Outcome{}, nil
}

// enter switches to an edit mode with the input line seeded. The query
// is kept in the line's history so leave can restore it.
func (c *Controller) enter(m mode.Mode, seed string) {
	c.buf.SetValue(seed)
	c.modes.Switch(m)
}

// leave returns to Search, restoring the query. Outside an edit mode
// there is nothing to restore.
func (c *Controller) leave() {
	if !c.modes.Current().IsEdit() {
		return
	}
	c.target = nil
	c.modes.Switch(mode.Search)
	c.buf.PopValue()
	c.UpdateSearch()
}

func (c *Controller) deleteSelected() error {
	r, ok := c.Selected()
	if !ok {
		return nil
	}
	if err := c.store.Remove(r); err != nil {
		return c.reject(err)
	}
	c.UpdateSearch()
	return c.persist()
}

func (c *Controller) commit() error {
	m := c.modes.Current()
	value := strings.TrimSpace(c.buf.Value())
	target := c.target
	c.leave()

	var err error
	switch m {
	case mode.EditLabel:
		err = c.store.SetLabel(target, value)
	case mode.EditCommand:
		err = c.store.SetCommand(target, value)
	case mode.EditNewCommand:
		if value == "" {
			return nil
		}
		err = c.store.Add(record.Parse(value))
	default:
		return nil
	}
	if err != nil {
		return c.reject(err)
	}
	c.UpdateSearch()
	return c.persist()
}

// reject turns store refusals into notices. Other errors are returned.
func (c *Controller) reject(err error) error {
	switch {
	case errors.Is(err, store.ErrReadOnly):
		c.notifier.Flash(NoticeReadOnly)
	case errors.Is(err, store.ErrDuplicate):
		c.notifier.Flash(NoticeDuplicate)
	case errors.Is(err, store.ErrNotFound):
	default:
		return err
	}
	return nil
}

func (c *Controller) persist() error {
	if err := c.store.Save(); err != nil {
		c.notifier.Flash(NoticeSaveError)
		return fmt.Errorf("save: %w", err)
	}
	return nil
}
