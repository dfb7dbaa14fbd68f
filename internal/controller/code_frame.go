package controller

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"

	m "github.com/manbearwiz/betterer/internal/model"
)

const codeFrameContext = 2

type frameStyles struct {
	styled bool
	gutter lipgloss.Style
	marker lipgloss.Style
}

// newFrameStyles pins the colour profile instead of letting lipgloss probe
// the terminal, so styled alone decides whether escapes are written.
func newFrameStyles(styled bool) frameStyles {
	renderer := lipgloss.NewRenderer(io.Discard)
	renderer.SetColorProfile(termenv.Ascii)

	if styled {
		renderer.SetColorProfile(termenv.ANSI)
	}

	return frameStyles{
		styled: styled,
		gutter: renderer.NewStyle().Foreground(lipgloss.Color("8")),
		marker: renderer.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	}
}

// renderCodeFrame prints the lines around frame with a caret line under the
// issue. Line and column are zero based; the output is one based.
func renderCodeFrame(frame m.CodeFrame, source string, styles frameStyles) (string, error) {
	lines := strings.Split(strings.ReplaceAll(source, "\r\n", "\n"), "\n")

	target := int(frame.Line)
	if target >= len(lines) {
		return "", fmt.Errorf("line %d out of range (%d lines)", frame.Line+1, len(lines))
	}

	first := max(target-codeFrameContext, 0)
	last := min(target+codeFrameContext, len(lines)-1)
	width := len(fmt.Sprint(last + 1))

	style := func(s lipgloss.Style, text string) string {
		if !styles.styled {
			return text
		}

		return s.Render(text)
	}

	var b strings.Builder

	for i := first; i <= last; i++ {
		marker := "  "
		if i == target {
			marker = style(styles.marker, ">") + " "
		}

		gutter := style(styles.gutter, fmt.Sprintf("%*d |", width, i+1))
		fmt.Fprintf(&b, "%s%s %s\n", marker, gutter, lines[i])

		if i == target {
			padding, carets := caretLine(lines[i], frame.Column, frame.Length)
			empty := style(styles.gutter, fmt.Sprintf("%*s |", width, ""))
			fmt.Fprintf(&b, "  %s %s%s\n", empty, padding, style(styles.marker, carets))
		}
	}

	return b.String(), nil
}

// caretLine measures display widths so the carets line up under wide and
// tab characters.
func caretLine(line string, column, length uint) (string, string) {
	runes := []rune(line)
	start := min(int(column), len(runes))
	end := min(start+int(max(length, 1)), len(runes))

	var padding strings.Builder

	for _, r := range runes[:start] {
		if r == '\t' {
			padding.WriteRune('\t')
			continue
		}

		padding.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
	}

	carets := max(runewidth.StringWidth(string(runes[start:end])), 1)

	return padding.String(), strings.Repeat("^", carets)
}
