package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/vikeypass/models"
)

const uiDivider = "──────────────────────────────────────────────────────"

const maxNameWidth = 48

func (m vaultModel) View() string {
	if m.mode == modeBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	var b strings.Builder
	if len(m.names) == 0 {
		b.WriteString("no accounts yet, press : and type add <name> <secret>")
	} else {
		for i, name := range m.names {
			line := "  " + fitText(name, maxNameWidth)
			if i == m.idx {
				line = selectedStyle.Render("> " + fitText(name, maxNameWidth))
			}
			b.WriteString(line)
			if i < len(m.names)-1 {
				b.WriteString("\n")
			}
		}
	}

	hotKeys := "j/k: move  y/c: copy  d: delete  :/i: command  v: version  q: quit"
	page := renderPage(fmt.Sprintf("vikeypass (%d)", len(m.names)), b.String(), hotKeys)

	switch m.mode {
	case modeCommand:
		page += "\n\n" + m.input.View()
	case modeConfirm:
		page += "\n\n" + renderConfirm(m.pendingDelete)
	}

	if m.status != "" {
		style := statusStyle
		if m.statusErr {
			style = errorStyle
		}
		page += "\n\n" + style.Render(m.status)
	}

	return appStyle.Render(page)
}

func renderConfirm(name string) string {
	content := "Delete \"" + name + "\"?\n\n"
	content += "y yes    n no"
	return overlayBoxStyle.Render(content)
}

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	var b strings.Builder

	b.WriteString("Application: vikeypass\n")
	b.WriteString("Version: ")
	b.WriteString(valueOrNA(info.BuildVersion()))
	b.WriteString("\n")
	b.WriteString("Date: ")
	b.WriteString(valueOrNA(info.BuildDate()))
	b.WriteString("\n")
	b.WriteString("Commit: ")
	b.WriteString(valueOrNA(info.BuildCommit()))

	return renderPage("ABOUT", b.String(), "esc: back")
}

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		lines := strings.Split(data, "\n")
		for _, line := range lines {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
	}

	return b.String()
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}

func fitText(v string, max int) string {
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}
