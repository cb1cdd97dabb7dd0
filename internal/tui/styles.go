// Package tui implements the Bubble Tea browser for saved posts.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/hay-kot/efie/internal/styles"
)

// Styles used for rendering the TUI.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(styles.ColorBlue).
			PaddingLeft(1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(styles.ColorBlue).
			Bold(true)

	normalStyle = lipgloss.NewStyle()

	metaStyle = lipgloss.NewStyle().
			Foreground(styles.ColorGray)

	errorStyle = lipgloss.NewStyle().
			Foreground(styles.ColorRed).
			PaddingLeft(1)

	helpStyle = lipgloss.NewStyle().
			Foreground(styles.ColorGray).
			PaddingLeft(1)

	previewHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(styles.ColorWhite).
				BorderStyle(lipgloss.NormalBorder()).
				BorderBottom(true).
				BorderForeground(styles.ColorGray).
				PaddingLeft(1)
)

const iconDot = "•"

// banner is the ASCII art shown above the list.
const banner = styles.Banner

// bannerStyle styles the ASCII art banner.
var bannerStyle = styles.BannerStyle.
	PaddingLeft(1).
	PaddingBottom(1)
