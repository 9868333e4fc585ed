package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mcoot/edgeguard/internal/api/response"
	"github.com/mcoot/edgeguard/internal/engine"
	"github.com/mcoot/edgeguard/internal/model"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case response.Health:
		o.printHealth(v)
	case response.SessionList:
		o.printSessionList(v)
	case response.Session:
		o.printSession(v)
	case response.TurnList:
		o.printTurnList(v)
	case LayoutView:
		o.printLayout(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

func (o *Output) printHealth(h response.Health) {
	fmt.Fprintf(o.w, "Status: %s\n", h.Status)
	if h.ActiveSession != nil {
		fmt.Fprintf(o.w, "Active session: %s\n", *h.ActiveSession)
	}
}

func (o *Output) printSessionList(l response.SessionList) {
	if len(l.Sessions) == 0 {
		fmt.Fprintln(o.w, "No sessions recorded")
		return
	}
	for _, s := range l.Sessions {
		fmt.Fprintf(o.w, "%s  %s  %-6s  %s\n", s.ID, s.StartedAt.Format("2006-01-02 15:04:05"), s.Layout, resultSummary(s.Result))
	}
}

func (o *Output) printSession(s response.Session) {
	fmt.Fprintf(o.w, "Session: %s\n", s.ID)
	fmt.Fprintf(o.w, "Started: %s\n", s.StartedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(o.w, "Layout: %s\n", s.Layout)
	fmt.Fprintf(o.w, "Config: %s\n", s.ConfigDigest)
	fmt.Fprintf(o.w, "Result: %s\n", resultSummary(s.Result))
	fmt.Fprintln(o.w, "Units:")
	for _, role := range model.RoleOrder {
		if kind, ok := s.Bindings[string(role)]; ok {
			fmt.Fprintf(o.w, "  %-14s %s\n", role, kind)
		}
	}
}

func resultSummary(r *response.SessionResult) string {
	if r == nil {
		return "in progress"
	}
	outcome := "lost"
	if r.Won {
		outcome = "won"
	}
	return fmt.Sprintf("%s on turn %d (%g vs %g)", outcome, r.Turn, r.SelfHealth, r.EnemyHealth)
}

func (o *Output) printTurnList(l response.TurnList) {
	fmt.Fprintf(o.w, "Session: %s (%d turns)\n", l.SessionID, len(l.Turns))
	for _, t := range l.Turns {
		rebuild := ""
		if t.RebuildSignaled {
			rebuild = " rebuild"
		}
		fmt.Fprintf(o.w, "  turn %3d  SP %5.1f  MP %5.1f  builds %2d  deploys %d%s\n",
			t.Turn, t.Structural, t.Mobile, len(t.Builds), len(t.Deploys), rebuild)
	}
}

func (o *Output) printLayout(l LayoutView) {
	primaryMark := 'T'
	if l.PrimaryRole == model.RoleGenerator {
		primaryMark = 'G'
	}

	marks := make(map[model.Coordinate]rune, len(l.Primary)+len(l.Walls)+1)
	for _, c := range l.Walls {
		marks[c] = 'W'
	}
	for _, c := range l.Primary {
		marks[c] = primaryMark
	}
	marks[l.Launch] = 'A'

	fmt.Fprintf(o.w, "Layout: %s (%c %s, W wall, A launch)\n", l.Name, primaryMark, l.PrimaryRole)
	for _, row := range RenderArena(marks) {
		fmt.Fprintln(o.w, row)
	}
}

// RenderArena draws the diamond top row first, one character per cell
// separated by spaces. Marked cells show their rune, other in-arena cells '.'.
func RenderArena(marks map[model.Coordinate]rune) []string {
	rows := make([]string, 0, engine.ArenaSize)
	for y := engine.ArenaSize - 1; y >= 0; y-- {
		var b strings.Builder
		for x := 0; x < engine.ArenaSize; x++ {
			c := model.At(x, y)
			switch {
			case !engine.InArena(c):
				b.WriteString("  ")
			case marks[c] != 0:
				b.WriteRune(marks[c])
				b.WriteByte(' ')
			default:
				b.WriteString(". ")
			}
		}
		rows = append(rows, strings.TrimRight(b.String(), " "))
	}
	return rows
}
