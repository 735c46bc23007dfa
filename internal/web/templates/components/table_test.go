package components

import (
	"bytes"
	"context"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/mcoot/blackjack-go/internal/model"
	"github.com/mcoot/blackjack-go/internal/render"
	"github.com/mcoot/blackjack-go/internal/testutil"
	"github.com/stretchr/testify/suite"
)

type TableSuite struct {
	suite.Suite
	snap model.Snapshot
}

func TestTableSuite(t *testing.T) {
	suite.Run(t, new(TableSuite))
}

func (s *TableSuite) SetupTest() {
	alice := testutil.Player("alice")
	s.snap = model.Snapshot{
		ID:        "482913",
		Version:   7,
		Name:      "friday",
		Host:      alice,
		Decks:     6,
		Phase:     model.PhaseInGame,
		Rounds:    1,
		CardsLeft: 306,
		ShoeSize:  312,
		Dealer: model.DealerSnapshot{
			Hand:      testutil.Cards(model.RankAce, 6),
			Value:     17,
			HandState: model.HandStateUnfinished,
		},
		Participants: []model.ParticipantSnapshot{
			{
				Player: alice, Currency: 1000, Bet: 100,
				Hand: testutil.Cards(10, 9), Value: 19,
				HandState: model.HandStateUnfinished, PlayingState: model.PlayingStateHasBet,
			},
			{
				Player: testutil.Player("bob"), Currency: 1000,
				PlayingState: model.PlayingStateLeft,
			},
		},
		ActivePlayers: true,
	}
}

func (s *TableSuite) render() *goquery.Document {
	var buf bytes.Buffer
	s.Require().NoError(Table(render.Build(s.snap)).Render(context.Background(), &buf))
	doc, err := goquery.NewDocumentFromReader(&buf)
	s.Require().NoError(err)
	return doc
}

func (s *TableSuite) TestInGameFragment() {
	doc := s.render()

	section := doc.Find("section.game")
	s.Equal("game-482913", section.AttrOr("id", ""))
	s.Equal("in_game", section.AttrOr("data-phase", ""))
	s.Equal("7", section.AttrOr("data-version", ""))
	s.Equal("Blackjack: friday", doc.Find("h2.game-title").Text())
	s.Equal("true", doc.Find(".dealer").AttrOr("data-hidden", ""))
	s.Equal(1, doc.Find(".dealer .card.hidden").Length())
	s.Equal(2, doc.Find("li.participant").Length())
	s.Equal(2, doc.Find(`li[data-player="alice"] .card`).Length())
	s.Equal(5, doc.Find(".actions button").Length())
	s.Equal("inGame hit 482913", doc.Find(".actions button").First().AttrOr("data-action-id", ""))
	s.Contains(doc.Find("p.shoe").Text(), "306/312")
	s.Equal(0, doc.Find("ol.standings").Length())
}

func (s *TableSuite) TestEscapesPlayerNames() {
	s.snap.Participants[1].Player.DisplayName = "<b>bob</b>"
	doc := s.render()

	s.Equal("<b>bob</b>", doc.Find(`li[data-player="bob"] .name`).Text())
	s.Equal(0, doc.Find("li.participant b").Length())
}

func (s *TableSuite) TestFinishedStandings() {
	s.snap.Phase = model.PhaseFinished
	s.snap.Dealer = model.DealerSnapshot{}
	s.snap.Participants[1].Currency = 1200
	s.snap.Participants[0], s.snap.Participants[1] = s.snap.Participants[1], s.snap.Participants[0]
	doc := s.render()

	s.Equal("finished", doc.Find("section.game").AttrOr("data-phase", ""))
	s.Equal(0, doc.Find(".dealer").Length())
	items := doc.Find("ol.standings li")
	s.Equal(2, items.Length())
	s.Equal("1. bob: 1200", items.First().Text())
}
