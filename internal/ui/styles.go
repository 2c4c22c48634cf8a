package ui

import "github.com/charmbracelet/lipgloss"

// ColorReset returns the escape code that clears formatting.
func ColorReset() string { return GetCurrentTheme().Reset }

// ColorBold returns the bold escape code.
func ColorBold() string { return GetCurrentTheme().Bold }

// Heading renders text as a bold, accent-colored heading. With colors
// disabled the text is returned unchanged.
func Heading(text string) string {
	if !colorsEnabled() {
		return text
	}
	return lipgloss.NewStyle().Bold(true).Foreground(GetCurrentPalette().Accent).Render(text)
}

// WarningLabel renders text in the warning color.
func WarningLabel(text string) string {
	if !colorsEnabled() {
		return text
	}
	return lipgloss.NewStyle().Bold(true).Foreground(GetCurrentPalette().Warning).Render(text)
}

// ErrorLabel renders text in the error color.
func ErrorLabel(text string) string {
	if !colorsEnabled() {
		return text
	}
	return lipgloss.NewStyle().Bold(true).Foreground(GetCurrentPalette().Error).Render(text)
}

func colorsEnabled() bool {
	return GetCurrentTheme().Name != NoColorTheme.Name
}
