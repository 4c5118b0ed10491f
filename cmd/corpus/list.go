package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/notargets/emucheck/registry"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	nameStyle = lipgloss.NewStyle().
			Width(20).
			Foreground(lipgloss.Color("#98FB98"))

	modeStyle = lipgloss.NewStyle().
			Width(8).
			Foreground(lipgloss.Color("#87CEEB"))

	disabledStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

func writeList(w io.Writer, reg *registry.Registry) error {
	if _, err := fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf(" %d cases ", reg.Len()))); err != nil {
		return err
	}
	for i, c := range reg.All() {
		data := c.Data()
		outputs := make([]string, 0, len(c.Outputs()))
		for _, idx := range c.Outputs() {
			outputs = append(outputs, fmt.Sprint(idx))
		}
		line := fmt.Sprintf("%3d %s%s%5d ULP  out=%-5s %-36s %s", i,
			nameStyle.Render(c.Name()),
			modeStyle.Render(c.Mode().String()),
			c.Tolerance(),
			strings.Join(outputs, ","),
			data.Config,
			filepath.Base(data.Source))
		if c.Disabled() {
			line = disabledStyle.Render(line + "  disabled: " + c.Reason())
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
