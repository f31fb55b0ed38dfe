// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	nameStyle = lipgloss.NewStyle().
			Width(24)

	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#90EE90"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD75F"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type renderOptions struct {
	missing    bool
	extensions bool
}

func render(reports []apiReport, o renderOptions) string {
	var b strings.Builder
	for i, r := range reports {
		if i > 0 {
			b.WriteByte('\n')
		}
		renderAPI(&b, r, o)
	}
	return b.String()
}

func renderAPI(b *strings.Builder, r apiReport, o renderOptions) {
	title := r.API.String()
	if r.Library != "" {
		title += " (" + r.Library + ")"
	}
	b.WriteString(titleStyle.Render(title) + "\n")
	if r.Version != "" {
		b.WriteString(nameStyle.Render("version") + r.Version + "\n")
	}
	for _, t := range r.Tiers {
		status := fmt.Sprintf("%d/%d", t.Resolved(), t.Total)
		switch {
		case len(t.Missing) == 0:
			status = okStyle.Render(status)
		case t.Optional || t.Resolved() > 0:
			status = warnStyle.Render(status)
		default:
			status = errorStyle.Render(status)
		}
		b.WriteString(nameStyle.Render(t.Name) + status + "\n")
		if o.missing {
			for _, name := range t.Missing {
				b.WriteString(dimStyle.Render("  - "+name) + "\n")
			}
		}
	}
	if r.Err != nil {
		b.WriteString(errorStyle.Render("error: "+r.Err.Error()) + "\n")
	}
	if o.extensions && len(r.Extensions) > 0 {
		b.WriteString(nameStyle.Render("extensions") + fmt.Sprint(len(r.Extensions)) + "\n")
		for _, ext := range r.Extensions {
			b.WriteString(dimStyle.Render("  "+ext) + "\n")
		}
	}
}
