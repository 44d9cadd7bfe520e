package ui

import "github.com/charmbracelet/lipgloss"

// Colors used in the application.
var (
	colorPrimary   = lipgloss.Color("62")  // Purple
	colorSecondary = lipgloss.Color("241") // Gray
	colorMuted     = lipgloss.Color("240") // Darker gray
	colorHighlight = lipgloss.Color("212") // Pink
	colorDanger    = lipgloss.Color("160") // Red
	colorWarn      = lipgloss.Color("214") // Amber
)

// TitleStyle for screen titles.
var TitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("255")).
	Background(colorPrimary).
	Padding(0, 1)

// PanelStyle frames one dashboard panel.
var PanelStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(colorSecondary).
	Padding(0, 1)

// PanelTitleStyle for panel headings.
var PanelTitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(colorHighlight)

// RiskPanelStyle frames the high-risk panel.
var RiskPanelStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(colorDanger).
	Padding(0, 1)

// RiskCountStyle for the high-risk count badge.
var RiskCountStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("231")).
	Background(colorDanger).
	Padding(0, 1)

// NoticeStyle for the single user-visible notification bar.
var NoticeStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("231")).
	Background(colorDanger).
	Padding(0, 1)

// StatusBarStyle for the bottom key-hint bar.
var StatusBarStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("255")).
	Background(lipgloss.Color("236")).
	Padding(0, 1)

// StatusKeyStyle for key hints in the status bar.
var StatusKeyStyle = lipgloss.NewStyle().
	Foreground(colorHighlight).
	Bold(true)

// StatusTextStyle for descriptive text in the status bar.
var StatusTextStyle = lipgloss.NewStyle().
	Foreground(colorSecondary)

// MutedStyle for secondary lines (history entries, hints).
var MutedStyle = lipgloss.NewStyle().
	Foreground(colorMuted)

// ChatQuestionStyle for questions in the Q&A log.
var ChatQuestionStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(colorHighlight)
