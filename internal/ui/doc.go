// Package ui provides theme and color support for the report output.
// It defines ANSI color schemes and lipgloss styles so presentation code can
// highlight headings and warnings without knowing whether colors are enabled.
package ui
