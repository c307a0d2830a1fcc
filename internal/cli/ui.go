package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorBlue   = lipgloss.Color("75")  // Light blue - commands
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
)

// printer writes result lines. Styles come from a renderer bound to the
// destination, so redirected output carries no escape codes.
type printer struct {
	w io.Writer

	value   lipgloss.Style
	number  lipgloss.Style
	success lipgloss.Style
	warning lipgloss.Style
	command lipgloss.Style
	label   lipgloss.Style
}

func newPrinter(w io.Writer) *printer {
	r := lipgloss.NewRenderer(w)
	return &printer{
		w:       w,
		value:   r.NewStyle().Foreground(colorWhite),
		number:  r.NewStyle().Foreground(colorCyan),
		success: r.NewStyle().Foreground(colorGreen),
		warning: r.NewStyle().Foreground(colorYellow),
		command: r.NewStyle().Foreground(colorBlue),
		label:   r.NewStyle().Foreground(colorGray),
	}
}

// created prints the per-file confirmation line.
func (p *printer) created(name string) {
	fmt.Fprintln(p.w, "Created "+p.value.Render(name))
}

// done prints a blank line and the run summary.
func (p *printer) done(msg string) {
	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, p.success.Render(msg))
}

// note prints a follow-up the user has to carry out by hand.
func (p *printer) note(msg, command string) {
	fmt.Fprintln(p.w, p.warning.Render("Note:")+" "+msg)
	fmt.Fprintln(p.w, "  "+p.command.Render(command))
}

// frame prints one icon container entry.
func (p *printer) frame(index, width, height, bpp, size int) {
	fmt.Fprintf(p.w, "  %s  %s  %s  %s\n",
		p.label.Render(fmt.Sprintf("#%d", index)),
		p.number.Render(fmt.Sprintf("%dx%d", width, height)),
		p.label.Render(fmt.Sprintf("%dbpp", bpp)),
		p.value.Render(fmt.Sprintf("%d bytes", size)))
}

// header prints a "name: detail" line.
func (p *printer) header(name, detail string) {
	fmt.Fprintln(p.w, p.value.Render(name)+": "+detail)
}
