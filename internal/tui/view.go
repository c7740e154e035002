package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	buttonStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("160")).
			Padding(1, 6).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("160"))

	buttonDoneStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("240")).
			Padding(1, 6).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))

	counterStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	flashStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("220"))

	statusStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("42"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	modalStyle = lipgloss.NewStyle().
			Padding(1, 3).
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("220"))

	modalChoiceStyle = lipgloss.NewStyle().
				Bold(true).
				Padding(0, 2).
				Border(lipgloss.NormalBorder())
)

// View renders the TUI.
func (m *Model) View() string {
	width := m.width
	height := m.height
	if width == 0 {
		width = defaultWidth
	}
	if height == 0 {
		height = defaultHeight
	}

	var body string
	if m.modalOpen {
		body = m.renderModal()
	} else {
		body = m.renderButton()
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		headerStyle.Render(m.doc.UIText.Header),
		"",
		body,
		"",
		m.renderMessages(),
	)

	screen := lipgloss.Place(width, height-1, lipgloss.Center, lipgloss.Center, content)
	return screen + "\n" + m.renderFooter()
}

// renderButton renders the button with the click counter underneath.
func (m *Model) renderButton() string {
	style := buttonStyle
	if m.gate.State().PaymentCompleted {
		style = buttonDoneStyle
	}
	counter := counterStyle.Render(fmt.Sprintf("× %d", m.gate.State().ClickCount))
	return lipgloss.JoinVertical(lipgloss.Center,
		style.Render(m.doc.UIText.Button),
		"",
		counter,
	)
}

// renderModal renders the payment confirmation dialog.
func (m *Model) renderModal() string {
	yes := modalChoiceStyle.Render(fmt.Sprintf("[y] %s", m.doc.UIText.ConfirmYes))
	no := modalChoiceStyle.Render(fmt.Sprintf("[n] %s", m.doc.UIText.ConfirmNo))
	choices := lipgloss.JoinHorizontal(lipgloss.Center, yes, "  ", no)
	return modalStyle.Render(lipgloss.JoinVertical(lipgloss.Center,
		m.doc.UIText.ConfirmPaymentTitle,
		"",
		choices,
	))
}

// renderMessages renders the transient warning and the sticky status line.
func (m *Model) renderMessages() string {
	var lines []string
	if m.flash != "" {
		lines = append(lines, flashStyle.Render(m.flash))
	} else {
		lines = append(lines, "")
	}
	if m.statusMessage != "" {
		lines = append(lines, statusStyle.Render(m.statusMessage))
	} else {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

// renderFooter renders the footer with help text.
func (m *Model) renderFooter() string {
	var help []string
	if m.modalOpen {
		help = append(help, fmt.Sprintf("y: %s", m.doc.UIText.ConfirmYes))
		help = append(help, fmt.Sprintf("n: %s", m.doc.UIText.ConfirmNo))
		if m.doc.A11y.CloseOnEsc {
			help = append(help, fmt.Sprintf("esc: %s", m.doc.UIText.ConfirmNo))
		}
	} else {
		help = append(help, "space/enter: press")
		help = append(help, "q: quit")
	}
	return helpStyle.Render(strings.Join(help, "  |  "))
}
