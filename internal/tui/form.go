package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type field struct {
	key   string
	label string
	input textinput.Model
}

// form es una lista de textinputs con foco; tab/shift+tab navegan.
type form struct {
	fields []field
	focus  int
	err    string
}

type fieldSpec struct {
	key, label, value, placeholder string
	limit                          int
}

func newForm(specs ...fieldSpec) form {
	f := form{fields: make([]field, 0, len(specs))}
	for _, s := range specs {
		in := textinput.New()
		in.Prompt = ""
		in.Placeholder = s.placeholder
		if s.limit > 0 {
			in.CharLimit = s.limit
		}
		in.SetValue(s.value)
		f.fields = append(f.fields, field{key: s.key, label: s.label, input: in})
	}
	if len(f.fields) > 0 {
		f.fields[0].input.Focus()
	}
	return f
}

func (f form) value(key string) string {
	for _, fl := range f.fields {
		if fl.key == key {
			return strings.TrimSpace(fl.input.Value())
		}
	}
	return ""
}

func (f *form) set(key, v string) {
	for i := range f.fields {
		if f.fields[i].key == key {
			f.fields[i].input.SetValue(v)
		}
	}
}

func (f *form) move(delta int) tea.Cmd {
	if len(f.fields) == 0 {
		return nil
	}
	f.fields[f.focus].input.Blur()
	f.focus = (f.focus + delta + len(f.fields)) % len(f.fields)
	return f.fields[f.focus].input.Focus()
}

func (f form) lastFocused() bool {
	return f.focus == len(f.fields)-1
}

func (f form) update(msg tea.Msg) (form, tea.Cmd) {
	if len(f.fields) == 0 {
		return f, nil
	}
	var cmd tea.Cmd
	f.fields[f.focus].input, cmd = f.fields[f.focus].input.Update(msg)
	return f, cmd
}

func (f form) view() string {
	var b strings.Builder
	for i, fl := range f.fields {
		label := mutedStyle.Render(fl.label + ":")
		if i == f.focus {
			label = selectedItemStyle.Render(fl.label + ":")
		}
		b.WriteString(label + " " + fl.input.View() + "\n")
	}
	if f.err != "" {
		b.WriteString("\n" + errorStyle.Render(f.err) + "\n")
	}
	return b.String()
}
