package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/totem/internal/vault"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	fieldIssuer = iota
	fieldLabel
	fieldSecret
	fieldCount
)

// credentialForm collects issuer/label/secret for an add or edit. Submitting
// never mutates the store directly: the result is routed through the
// confirmation popup as a pending action.
type credentialForm struct {
	inputs  []textinput.Model
	focused int
	target  int // store index for edits, -1 for adds
	base    vault.Record
	errText string
}

func newCredentialForm(target int, base vault.Record) *credentialForm {
	f := &credentialForm{
		inputs: make([]textinput.Model, fieldCount),
		target: target,
		base:   base,
	}
	placeholders := [fieldCount]string{"issuer", "label", "secret (base32)"}
	values := [fieldCount]string{base.Issuer, base.Label, base.Secret}
	for i := range f.inputs {
		in := textinput.New()
		in.Placeholder = placeholders[i]
		in.SetValue(values[i])
		in.CharLimit = 128
		f.inputs[i] = in
	}
	f.inputs[fieldSecret].EchoMode = textinput.EchoPassword
	f.inputs[f.focused].Focus()
	return f
}

func (f *credentialForm) editing() bool { return f.target >= 0 }

func (f *credentialForm) title() string {
	if f.editing() {
		return fmt.Sprintf("Edit %s", f.base.Label)
	}
	return "Add a new credential"
}

// update advances the form; done reports a completed submission and cancel an
// abandoned one.
func (f *credentialForm) update(msg tea.Msg) (cmd tea.Cmd, done, cancel bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		f.inputs[f.focused], cmd = f.inputs[f.focused].Update(msg)
		return cmd, false, false
	}
	switch keyMsg.String() {
	case "esc":
		return nil, false, true
	case "tab", "down":
		f.cycle(1)
		return nil, false, false
	case "shift+tab", "up":
		f.cycle(-1)
		return nil, false, false
	case "enter":
		if f.focused < fieldCount-1 {
			f.cycle(1)
			return nil, false, false
		}
		r := f.record()
		if r.Label == "" {
			f.errText = "label must not be empty"
			return nil, false, false
		}
		if r.Secret == "" {
			f.errText = "secret must not be empty"
			return nil, false, false
		}
		return nil, true, false
	}
	f.errText = ""
	f.inputs[f.focused], cmd = f.inputs[f.focused].Update(msg)
	return cmd, false, false
}

func (f *credentialForm) cycle(delta int) {
	f.inputs[f.focused].Blur()
	f.focused = (f.focused + delta + fieldCount) % fieldCount
	f.inputs[f.focused].Focus()
}

// record assembles the resulting credential, inheriting type and code
// parameters from the record being edited.
func (f *credentialForm) record() vault.Record {
	r := f.base
	r.Issuer = strings.TrimSpace(f.inputs[fieldIssuer].Value())
	r.Label = strings.TrimSpace(f.inputs[fieldLabel].Value())
	r.Secret = strings.TrimSpace(f.inputs[fieldSecret].Value())
	return r
}

func (m *Model) handleActiveForm(msg tea.Msg) (bool, tea.Cmd) {
	if m.form == nil {
		return false, nil
	}
	if keyMsg, isKey := msg.(tea.KeyMsg); isKey {
		switch keyMsg.String() {
		case "ctrl+c", "ctrl+d":
			return true, m.quit()
		}
	} else if _, isTick := msg.(tickMsg); isTick {
		// Keep the clock running behind the form.
		return false, nil
	}
	cmd, done, cancel := m.form.update(msg)
	if cancel {
		m.form = nil
		return true, cmd
	}
	if done {
		record := m.form.record()
		target := m.form.target
		m.form = nil
		if target >= 0 {
			m.presentPopup(editAction{index: target, record: record},
				fmt.Sprintf("Apply changes to %s? [y/n]", record.Label))
		} else {
			m.presentPopup(addAction{record: record},
				fmt.Sprintf("Add %s? [y/n]", record.Label))
		}
		return true, cmd
	}
	return true, cmd
}

func (m *Model) startAddForm() {
	m.form = newCredentialForm(-1, vault.Record{})
}

func (m *Model) startEditForm() {
	index := m.view.SelectedStoreIndex()
	if index < 0 {
		return
	}
	records := m.store.Elements()
	if index >= len(records) {
		return
	}
	m.form = newCredentialForm(index, records[index])
}

func (m *Model) viewForm() string {
	f := m.form
	lines := []string{
		styles.Title.Render(f.title()),
		"",
	}
	names := [fieldCount]string{"Issuer", "Label", "Secret"}
	for i, in := range f.inputs {
		lines = append(lines, names[i]+": "+in.View())
	}
	if f.errText != "" {
		lines = append(lines, "", styles.Error.Render(f.errText))
	}
	lines = append(lines, "", styles.Footer.Render("tab next field  enter submit  esc cancel"))
	return strings.Join(lines, "\n")
}
