package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mcoot/blackjack-go/internal/api/response"
	"github.com/mcoot/blackjack-go/internal/model"
	"github.com/mcoot/blackjack-go/internal/render"
	"github.com/mcoot/blackjack-go/internal/services/router"
)

// Output handles formatting output based on the configured format
type Output struct {
	format  string
	verbose bool
	w       io.Writer
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(format string, verbose bool, w io.Writer) *Output {
	return &Output{format: format, verbose: verbose, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Fprintln(o.w, string(data))
	} else {
		fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case router.Response:
		o.printResponse(v)
	case *render.View:
		o.printView(v)
	case response.GameList:
		o.printGameList(v)
	case response.HistoryList:
		o.printHistoryList(v)
	case *model.GameSummary:
		o.printSummary(v)
	case response.Health:
		o.printHealth(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

func (o *Output) printResponse(r router.Response) {
	switch r.Kind {
	case router.KindRender:
		if r.View != nil {
			o.printView(r.View)
		}
	case router.KindForm:
		if r.Form != nil {
			fmt.Fprintf(o.w, "%s\n", r.Form.Title)
			fmt.Fprintf(o.w, "Bet between %d and %d (current %d)\n", r.Form.Min, r.Form.Max, r.Form.Current)
			fmt.Fprintf(o.w, "Submit with: bjgame act %s --input <amount>\n", r.Form.ActionID)
		}
	case router.KindNotice:
		fmt.Fprintln(o.w, r.Notice)
	default:
		fmt.Fprintln(o.w, "Acknowledged")
	}

	if o.verbose {
		for _, id := range r.Update.Subscribe {
			fmt.Fprintf(o.w, "+ %s\n", id)
		}
		for _, id := range r.Update.Unsubscribe {
			fmt.Fprintf(o.w, "- %s\n", id)
		}
	}
}

// printView adds the action identifiers, since a terminal has no buttons
func (o *Output) printView(v *render.View) {
	fmt.Fprint(o.w, render.Text(v))
	if len(v.Buttons) == 0 {
		return
	}
	fmt.Fprintln(o.w, "Actions:")
	for _, b := range v.Buttons {
		fmt.Fprintf(o.w, "  %-18s %s\n", b.Label, b.ActionID)
	}
}

func (o *Output) printGameList(l response.GameList) {
	if len(l.Games) == 0 {
		fmt.Fprintln(o.w, "No live games")
		return
	}
	for _, g := range l.Games {
		fmt.Fprintf(o.w, "%s  %-20s %-10s host %s, %d seated, round %d\n",
			g.GameID, g.Name, g.Phase, g.Host, len(g.Participants), g.Round)
	}
}

func (o *Output) printHistoryList(l response.HistoryList) {
	if len(l.Summaries) == 0 {
		fmt.Fprintln(o.w, "No finished games")
		return
	}
	for _, s := range l.Summaries {
		winner := "-"
		if len(s.Standings) > 0 {
			winner = s.Standings[0].Player.DisplayName
		}
		fmt.Fprintf(o.w, "%s  %s  %-20s %d rounds, winner %s\n",
			s.CompletedAt.Format("2006-01-02 15:04"), s.ID, s.Name, s.Rounds, winner)
	}
}

func (o *Output) printSummary(s *model.GameSummary) {
	fmt.Fprintf(o.w, "Game: %s (%s)\n", s.Name, s.GameID)
	fmt.Fprintf(o.w, "Host: %s\n", s.Host.DisplayName)
	fmt.Fprintf(o.w, "Decks: %d\n", s.Decks)
	fmt.Fprintf(o.w, "Rounds: %d\n", s.Rounds)
	if s.Forced {
		fmt.Fprintln(o.w, "Ended early")
	}
	fmt.Fprintf(o.w, "Completed: %s\n", s.CompletedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintln(o.w, "Standings:")
	for _, st := range s.Standings {
		fmt.Fprintf(o.w, "  %s\n", render.StandingLine{Rank: st.Rank, Name: st.Player.DisplayName, Currency: st.Currency})
	}
}

func (o *Output) printHealth(h response.Health) {
	fmt.Fprintf(o.w, "Status: %s\n", h.Status)
	fmt.Fprintf(o.w, "Live games: %d\n", h.LiveGames)
	fmt.Fprintf(o.w, "Watched games: %d\n", h.Watched)
}

// oneLine flattens event data for display
func oneLine(data string, limit int) string {
	data = strings.ReplaceAll(data, "\n", " ")
	if len(data) > limit {
		data = data[:limit] + "..."
	}
	return data
}

// Printf writes text output as is
func (o *Output) Printf(format string, args ...any) {
	fmt.Fprintf(o.w, format, args...)
}
