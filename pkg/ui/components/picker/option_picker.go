// Package picker renders the lead status selector.
package picker

import (
	"strings"

	"lead_review/pkg/leads"
	"lead_review/pkg/ui/components/utils"
	"lead_review/pkg/ui/styles"

	tea "charm.land/bubbletea/v2"
)

// Placeholder is shown while no status is chosen.
const Placeholder = "Select Status"

// StatusSelectMsg is emitted when a status is confirmed in the open list.
type StatusSelectMsg struct {
	Status leads.Status
}

// StatusPicker is a closed selector with an optional popup list.
type StatusPicker struct {
	options  []leads.Status
	value    leads.Status
	selected int
	open     bool
	width    int
}

// NewStatusPicker creates a picker with no status selected. The empty
// entry leads the option list so a choice can be taken back.
func NewStatusPicker() *StatusPicker {
	return &StatusPicker{options: append([]leads.Status{leads.StatusUnset}, leads.Statuses()...)}
}

// Value returns the chosen status, StatusUnset when none.
func (p *StatusPicker) Value() leads.Status {
	return p.value
}

// SetValue selects a status. Unknown values clear the selection.
func (p *StatusPicker) SetValue(status leads.Status) {
	p.value = leads.StatusUnset
	for _, option := range p.options {
		if option == status {
			p.value = status
			return
		}
	}
}

// Cycle moves through the options by delta steps, wrapping at both ends.
func (p *StatusPicker) Cycle(delta int) {
	n := len(p.options)
	idx := (p.indexOf(p.value) + delta) % n
	if idx < 0 {
		idx += n
	}
	p.value = p.options[idx]
}

// Open shows the option list with the current value highlighted.
func (p *StatusPicker) Open() {
	p.open = true
	p.selected = p.indexOf(p.value)
	if p.selected < 0 {
		p.selected = 0
	}
}

// Close hides the option list without changing the value.
func (p *StatusPicker) Close() {
	p.open = false
}

// IsOpen reports whether the option list is showing.
func (p *StatusPicker) IsOpen() bool {
	return p.open
}

// SetWidth sets the width of the popup list.
func (p *StatusPicker) SetWidth(width int) {
	p.width = width
}

// Update handles keys while the list is open.
func (p *StatusPicker) Update(msg tea.KeyPressMsg) tea.Cmd {
	if !p.open {
		return nil
	}

	switch msg.String() {
	case "up", "k":
		if p.selected > 0 {
			p.selected--
		}
	case "down", "j":
		if p.selected < len(p.options)-1 {
			p.selected++
		}
	case "home":
		p.selected = 0
	case "end":
		p.selected = len(p.options) - 1
	case "enter", "space":
		if p.selected >= 0 && p.selected < len(p.options) {
			status := p.options[p.selected]
			p.value = status
			p.Close()
			return func() tea.Msg {
				return StatusSelectMsg{Status: status}
			}
		}
	case "esc":
		p.Close()
	}
	return nil
}

// Label returns the closed-state text.
func (p *StatusPicker) Label() string {
	return optionText(p.value)
}

func optionText(status leads.Status) string {
	if status == leads.StatusUnset {
		return Placeholder
	}
	return string(status)
}

// ViewField renders the closed selector.
func (p *StatusPicker) ViewField(focused bool) string {
	text := "‹ " + p.Label() + " ›"
	switch {
	case p.value == leads.StatusUnset:
		return styles.PlaceholderStyle.Render(text)
	case focused:
		return styles.TextBoldStyle.Render(text)
	default:
		return styles.ValueStyle.Render(text)
	}
}

// View renders the open option list, or "" when closed.
func (p *StatusPicker) View() string {
	if !p.open {
		return ""
	}

	boxWidth := p.width
	if boxWidth > 40 {
		boxWidth = 40
	}
	if boxWidth < 24 {
		boxWidth = 24
	}
	contentWidth := boxWidth - 6

	var content strings.Builder
	content.WriteString(styles.TitleStyle.Render("Lead Status"))
	content.WriteString("\n\n")
	for i, option := range p.options {
		line := "  " + optionText(option)
		if i == p.selected {
			content.WriteString(styles.SelectedStyle.Render(utils.PadPlain(line, contentWidth)))
		} else {
			content.WriteString(styles.TextStyle.Render(line))
		}
		content.WriteString("\n")
	}
	content.WriteString("\n")
	content.WriteString(styles.FooterStyle.Render("↑/↓ move  enter pick  esc cancel"))

	return styles.BoxStyle.Width(boxWidth).Render(content.String())
}

func (p *StatusPicker) indexOf(status leads.Status) int {
	for i, option := range p.options {
		if option == status {
			return i
		}
	}
	return -1
}
