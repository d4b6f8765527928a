package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	subtitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#B0B0B0"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	healthyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#22C55E")).Bold(true)
	warnStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	accentStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#22C55E"))
	footerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	sectionStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C")).Bold(true)
	cardStyle     = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A")).
			Padding(1, 2)
	selectedRowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
)
