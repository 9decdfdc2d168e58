package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/tmux-typeahead/internal/complete"
	"github.com/atomicstack/tmux-typeahead/internal/format/table"
	"github.com/atomicstack/tmux-typeahead/internal/search"
	"github.com/charmbracelet/lipgloss"
)

const (
	headerTitle      = "tmux typeahead"
	footerHint       = "tab/↑↓ move · enter select · esc cancel"
	currentIndicator = "▌"
	matchIndicator   = " "
	// header, input, status and footer
	chromeLines = 4
)

type styledLine struct {
	text  string
	style *lipgloss.Style
	raw   bool // already styled; truncate only
}

// View implements tea.Model.
func (m *Model) View() string {
	st := m.session.State()
	lines := make([]styledLine, 0, 16)
	lines = append(lines, styledLine{text: m.header(), style: styles.Header})
	lines = append(lines, styledLine{text: m.input.View(), raw: true})
	lines = append(lines, m.statusLine(st))
	if inspecting, ok := st.(complete.Inspecting); ok {
		lines = append(lines, m.matchLines(inspecting)...)
	}
	lines = append(lines, styledLine{text: footerHint, style: styles.Footer})
	return m.render(lines)
}

func (m *Model) header() string {
	return fmt.Sprintf("%s · %s", headerTitle, m.source)
}

func (m *Model) statusLine(st complete.State) styledLine {
	if m.running {
		return styledLine{text: "switching…", style: styles.Pending}
	}
	if m.errMsg != "" {
		return styledLine{text: m.errMsg, style: styles.Error}
	}
	if m.infoMsg != "" {
		return styledLine{text: m.infoMsg, style: styles.Info}
	}
	switch s := st.(type) {
	case complete.Pending:
		return styledLine{text: "searching…", style: styles.Pending}
	case complete.Initial:
		if reason := s.Reason(); reason != nil {
			return styledLine{text: fmt.Sprintf("search failed: %v (enter to retry)", reason), style: styles.Error}
		}
	case complete.Inspecting:
		found := 0
		for i := 0; i < s.Len(); i++ {
			if !s.At(i).IsDefault {
				found++
			}
		}
		if found == 0 {
			if s.Query() == "" {
				return styledLine{text: "(no entries)", style: styles.Info}
			}
			return styledLine{text: fmt.Sprintf("No matches for %q", s.Query()), style: styles.Info}
		}
		noun := "matches"
		if found == 1 {
			noun = "match"
		}
		return styledLine{text: fmt.Sprintf("%d %s", found, noun), style: styles.Info}
	}
	return styledLine{}
}

func (m *Model) maxVisibleMatches() int {
	if m.height <= 0 {
		return 0
	}
	visible := m.height - chromeLines
	if visible < 1 {
		visible = 1
	}
	return visible
}

func (m *Model) matchLines(s complete.Inspecting) []styledLine {
	total := s.Len()
	if total == 0 {
		return nil
	}
	current := s.CurrentMatch()
	maxVisible := m.maxVisibleMatches()
	m.viewport.Follow(current.Index, total, maxVisible)
	start, end := m.viewport.Window(total, maxVisible)

	rows := make([][]string, 0, end-start)
	for i := start; i < end; i++ {
		match := s.At(i)
		indicator := matchIndicator
		if match.IsCurrent {
			indicator = currentIndicator
		}
		label, kind := describe(match)
		rows = append(rows, []string{indicator, label, kind})
	}
	formatted := table.Format(rows, []table.Alignment{table.AlignLeft, table.AlignLeft, table.AlignLeft})

	lines := make([]styledLine, 0, len(formatted))
	for i, text := range formatted {
		match := s.At(start + i)
		style := styles.Match
		switch {
		case match.IsCurrent:
			style = styles.CurrentMatch
		case match.IsDefault:
			style = styles.DefaultMatch
		}
		lines = append(lines, styledLine{text: text, style: style})
	}
	return lines
}

func describe(match complete.Match) (string, string) {
	candidate, ok := match.Value.(search.Candidate)
	if !ok {
		return fmt.Sprint(match.Value), ""
	}
	return candidate.Label, string(candidate.Kind)
}

func (m *Model) render(lines []styledLine) string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		text := line.text
		if m.width > 0 {
			text = table.Truncate(text, m.width)
		}
		if !line.raw && line.style != nil && text != "" {
			text = line.style.Render(text)
		}
		out = append(out, text)
	}
	return strings.Join(out, "\n")
}
