package views

import (
	"strings"
	"unicode/utf8"

	"github.com/a-h/templ"
)

const (
	ogLineWidth = 30
	ogMaxLines  = 4
	ogLineStart = 250
	ogLineStep  = 78
)

type ogLine struct {
	Y    int
	Text string
}

type ogData struct {
	Lines    []ogLine
	Subtitle string
}

// OGCard renders a 1200x630 SVG social preview card for title
func OGCard(title, subtitle string) templ.Component {
	lines := WrapTitle(title, ogLineWidth, ogMaxLines)
	data := ogData{
		Lines:    make([]ogLine, len(lines)),
		Subtitle: subtitle,
	}
	for i, line := range lines {
		data.Lines[i] = ogLine{Y: ogLineStart + i*ogLineStep, Text: line}
	}
	return component("og_card", data)
}

// WrapTitle splits title into at most maxLines lines of roughly width
// runes, breaking on spaces. Overflow is cut and marked with an ellipsis.
func WrapTitle(title string, width, maxLines int) []string {
	words := strings.Fields(title)
	var lines []string
	var current strings.Builder

	for _, word := range words {
		if current.Len() > 0 && utf8.RuneCountInString(current.String())+1+utf8.RuneCountInString(word) > width {
			lines = append(lines, current.String())
			current.Reset()
		}
		if current.Len() > 0 {
			current.WriteByte(' ')
		}
		current.WriteString(word)
	}
	if current.Len() > 0 {
		lines = append(lines, current.String())
	}

	for i, line := range lines {
		if utf8.RuneCountInString(line) > width {
			lines[i] = string([]rune(line)[:width-1]) + "…"
		}
	}
	if len(lines) > maxLines {
		lines = lines[:maxLines]
		last := []rune(lines[maxLines-1])
		if len(last) >= width {
			last = last[:width-1]
		}
		lines[maxLines-1] = string(last) + "…"
	}
	return lines
}
