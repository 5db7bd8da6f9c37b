package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sohnryang/boj-submit/internal/judge"
)

var (
	green  = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	red    = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	blue   = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
	gray   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Tone picks which style a piece of output is rendered with.
type Tone int

const (
	ToneNone Tone = iota
	ToneGreen
	ToneRed
	ToneYellow
	ToneBlue
	ToneCyan
	ToneGray
)

// Colorize applies the tone's style to s. ToneNone returns s unchanged.
func Colorize(t Tone, s string) string {
	switch t {
	case ToneGreen:
		return green.Render(s)
	case ToneRed:
		return red.Render(s)
	case ToneYellow:
		return yellow.Render(s)
	case ToneBlue:
		return blue.Render(s)
	case ToneCyan:
		return cyan.Render(s)
	case ToneGray:
		return gray.Render(s)
	}
	return s
}

// RenderVerdict colors the verdict's short label by its status: green
// for accepted, yellow for anything still in progress (and partial
// scores), blue for runtime/compile errors, red for the rest.
func RenderVerdict(v judge.Verdict) string {
	return Colorize(verdictTone(v.Status), v.Label())
}

func verdictTone(s judge.Status) Tone {
	switch s {
	case judge.StatusAccepted:
		return ToneGreen
	case judge.StatusPending, judge.StatusPreparing, judge.StatusJudging,
		judge.StatusWaiting, judge.StatusPartial:
		return ToneYellow
	case judge.StatusRuntimeError, judge.StatusCompileError:
		return ToneBlue
	}
	return ToneRed
}

// ProgressLine overwrites a single terminal line in place, the way the
// verdict poller reports progress without scrolling.
type ProgressLine struct {
	w io.Writer
}

func NewProgressLine(w io.Writer) *ProgressLine {
	return &ProgressLine{w: w}
}

// Update redraws the line with s.
func (p *ProgressLine) Update(s string) {
	fmt.Fprint(p.w, "\r"+strings.Repeat(" ", 20)+"\r"+s)
}

// Close terminates the line so later output starts fresh.
func (p *ProgressLine) Close() {
	fmt.Fprintln(p.w)
}
