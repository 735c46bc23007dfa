package render

import (
	"fmt"

	"github.com/mcoot/blackjack-go/internal/model"
	"github.com/mcoot/blackjack-go/internal/services/shoe"
)

// Title heads every rendered game
const Title = "Blackjack"

// View is the display-ready form of a game snapshot. It only reads the
// snapshot; outcomes come from the settled fields and are never re-derived.
type View struct {
	Title        string            `json:"title"`
	GameID       model.GameID      `json:"game_id"`
	Version      uint64            `json:"version"`
	Name         string            `json:"name"`
	Host         string            `json:"host"`
	Phase        model.Phase       `json:"phase"`
	Round        int               `json:"round"`
	Shoe         ShoeLine          `json:"shoe"`
	Dealer       *DealerLine       `json:"dealer,omitempty"`
	Participants []ParticipantLine `json:"participants"`
	Status       string            `json:"status,omitempty"`
	Standings    []StandingLine    `json:"standings,omitempty"`
	Buttons      []Button          `json:"buttons"`
}

// ShoeLine reports how far through the shoe the game is
type ShoeLine struct {
	CardsLeft   int `json:"cards_left"`
	Capacity    int `json:"capacity"`
	ReshuffleAt int `json:"reshuffle_at_percent"`
}

func (s ShoeLine) String() string {
	return fmt.Sprintf("Cards left to deal: %d/%d (reshuffle at %d%%)", s.CardsLeft, s.Capacity, s.ReshuffleAt)
}

// CardView is one card as shown
type CardView struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
	Hidden bool   `json:"hidden,omitempty"`
}

// DealerLine is the dealer's hand as the table may see it
type DealerLine struct {
	Cards     []CardView      `json:"cards"`
	Value     int             `json:"value"`
	Hidden    bool            `json:"hidden"`
	HandState model.HandState `json:"hand_state,omitempty"`
}

// ParticipantLine is one roster entry as shown
type ParticipantLine struct {
	PlayerID     model.PlayerID         `json:"player_id"`
	Name         string                 `json:"name"`
	IsHost       bool                   `json:"is_host"`
	Currency     int                    `json:"currency"`
	Bet          int                    `json:"bet"`
	Cards        []CardView             `json:"cards,omitempty"`
	Value        int                    `json:"value"`
	HandState    model.HandState        `json:"hand_state,omitempty"`
	PlayingState model.PlayingState     `json:"playing_state"`
	Ready        bool                   `json:"ready"`
	Outcome      model.Outcome          `json:"outcome,omitempty"`
	Reason       model.SettlementReason `json:"reason,omitempty"`
	Delta        int                    `json:"delta"`
	Summary      string                 `json:"summary"`
}

// StandingLine is one entry of the final ranking
type StandingLine struct {
	Rank     int    `json:"rank"`
	Name     string `json:"name"`
	Currency int    `json:"currency"`
}

func (s StandingLine) String() string {
	return fmt.Sprintf("%d. %s: %d", s.Rank, s.Name, s.Currency)
}

// Button is an action a player can trigger from the display
type Button struct {
	ActionID model.ActionID `json:"action_id"`
	Label    string         `json:"label"`
	Style    string         `json:"style"`
}

var buttonLabels = map[model.Action]struct{ label, style string }{
	model.ActionJoin:       {"Join", "primary"},
	model.ActionLeave:      {"Leave", "danger"},
	model.ActionStart:      {"Start (host only)", "success"},
	model.ActionEnd:        {"End (host only)", "danger"},
	model.ActionBet:        {"Bet", "primary"},
	model.ActionHit:        {"Hit", "primary"},
	model.ActionStand:      {"Stand", "secondary"},
	model.ActionDoubleDown: {"Double down", "secondary"},
	model.ActionReadyUp:    {"Ready up", "success"},
}

// Build turns a snapshot into a View
func Build(snap model.Snapshot) *View {
	v := &View{
		Title:   Title,
		GameID:  snap.ID,
		Version: snap.Version,
		Name:    snap.Name,
		Host:    snap.Host.DisplayName,
		Phase:   snap.Phase,
		Round:   snap.Rounds,
		Shoe: ShoeLine{
			CardsLeft:   snap.CardsLeft,
			Capacity:    snap.ShoeSize,
			ReshuffleAt: int(shoe.ReshuffleThreshold * 100),
		},
		Dealer:  dealerLine(snap),
		Buttons: buttons(snap),
	}

	for _, p := range snap.Participants {
		v.Participants = append(v.Participants, participantLine(snap, p))
	}

	switch snap.Phase {
	case model.PhaseResults:
		v.Status = readyStatus(snap)
	case model.PhaseFinished:
		for i, p := range snap.Participants {
			v.Standings = append(v.Standings, StandingLine{
				Rank:     i + 1,
				Name:     p.Player.DisplayName,
				Currency: p.Currency,
			})
		}
	}
	return v
}

func dealerLine(snap model.Snapshot) *DealerLine {
	if len(snap.Dealer.Hand) == 0 {
		return nil
	}
	switch snap.Phase {
	case model.PhaseInGame:
		// hole card stays face down until the dealer plays
		up := snap.Dealer.Hand[1:]
		cards := []CardView{{Symbol: model.CardBack, Name: "Hidden", Hidden: true}}
		cards = append(cards, cardViews(up)...)
		return &DealerLine{Cards: cards, Value: model.HandValue(up), Hidden: true}
	case model.PhaseResults, model.PhaseFinished:
		return &DealerLine{
			Cards:     cardViews(snap.Dealer.Hand),
			Value:     snap.Dealer.Value,
			HandState: snap.Dealer.HandState,
		}
	default:
		return nil
	}
}

func cardViews(cards []model.Card) []CardView {
	out := make([]CardView, len(cards))
	for i, c := range cards {
		out[i] = CardView{Symbol: c.Symbol(), Name: c.String()}
	}
	return out
}

func participantLine(snap model.Snapshot, p model.ParticipantSnapshot) ParticipantLine {
	line := ParticipantLine{
		PlayerID:     p.Player.ID,
		Name:         p.Player.DisplayName,
		IsHost:       p.Player.ID == snap.Host.ID,
		Currency:     p.Currency,
		Bet:          p.Bet,
		Value:        p.Value,
		HandState:    p.HandState,
		PlayingState: p.PlayingState,
		Ready:        p.Ready,
		Outcome:      p.Outcome,
		Reason:       p.Reason,
		Delta:        p.Delta,
	}
	if len(p.Hand) > 0 && (snap.Phase == model.PhaseInGame || snap.Phase == model.PhaseResults) {
		line.Cards = cardViews(p.Hand)
	}
	line.Summary = summarize(snap.Phase, p)
	return line
}

func buttons(snap model.Snapshot) []Button {
	var out []Button
	for _, action := range model.ActionsFor(snap.Phase) {
		if action.IsFormSubmission() {
			continue
		}
		meta := buttonLabels[action]
		out = append(out, Button{
			ActionID: model.NewActionID(snap.Phase, action, snap.ID),
			Label:    meta.label,
			Style:    meta.style,
		})
	}
	return out
}

func readyStatus(snap model.Snapshot) string {
	if !snap.ActivePlayers {
		return "There are no active players left!"
	}
	return fmt.Sprintf("To start a new round, %d must still ready up", snap.PendingReady)
}
