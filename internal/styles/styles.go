// Package styles holds the lipgloss styles used for terminal output.
package styles

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
)

var (
	ColorGreen = lipgloss.Color("#22c55e")
	ColorRed   = lipgloss.Color("#ef4444")
	ColorGray  = lipgloss.Color("#6b7280")
)

// Theme renders report output through its own lipgloss renderer, so color
// settings never touch the process-wide default.
type Theme struct {
	renderer *lipgloss.Renderer

	Pass   lipgloss.Style
	Fail   lipgloss.Style
	Dim    lipgloss.Style
	Header lipgloss.Style
}

// New returns a theme whose color profile is detected from w.
func New(w io.Writer) *Theme {
	return newTheme(lipgloss.NewRenderer(w))
}

// Plain returns a theme that renders text without colors or attributes.
func Plain(w io.Writer) *Theme {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(termenv.Ascii)
	return newTheme(r)
}

func newTheme(r *lipgloss.Renderer) *Theme {
	return &Theme{
		renderer: r,
		Pass:     r.NewStyle().Foreground(ColorGreen).Bold(true),
		Fail:     r.NewStyle().Foreground(ColorRed).Bold(true),
		Dim:      r.NewStyle().Foreground(ColorGray),
		Header:   r.NewStyle().Bold(true),
	}
}

// ColorProfile returns the profile the theme renders with.
func (t *Theme) ColorProfile() termenv.Profile {
	return t.renderer.ColorProfile()
}

// RenderStatus renders a PASS or FAIL badge.
func (t *Theme) RenderStatus(passed bool) string {
	if passed {
		return t.Pass.Render("PASS")
	}
	return t.Fail.Render("FAIL")
}

// RenderDim renders secondary text.
func (t *Theme) RenderDim(s string) string {
	return t.Dim.Render(s)
}

// RenderHeader renders a banner line.
func (t *Theme) RenderHeader(s string) string {
	return t.Header.Render(s)
}

// RenderSummary renders the final "N passed, M failed" line.
func (t *Theme) RenderSummary(passed, failed int) string {
	p := t.Pass.Render(fmt.Sprintf("%d passed", passed))
	if failed == 0 {
		return p
	}
	return p + ", " + t.Fail.Render(fmt.Sprintf("%d failed", failed))
}

// Width returns the printable width of s, ignoring escape sequences.
func Width(s string) int {
	return ansi.StringWidth(s)
}

// PadRight pads s with spaces to the given printable width.
func PadRight(s string, width int) string {
	if w := Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
