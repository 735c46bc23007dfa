package cli

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/blackjack-go/internal/api"
	"github.com/mcoot/blackjack-go/internal/factory"
	"github.com/mcoot/blackjack-go/internal/model"
	"github.com/mcoot/blackjack-go/internal/services/router"
)

type CLISuite struct {
	suite.Suite
	app    *factory.TestApp
	server *httptest.Server
}

func TestCLISuite(t *testing.T) {
	suite.Run(t, new(CLISuite))
}

func (s *CLISuite) SetupTest() {
	s.app = factory.NewTestApp()
	s.server = httptest.NewServer(api.NewRouter(api.RouterConfig{
		Logger:      s.app.Logger,
		Storage:     s.app.Storage,
		Registry:    s.app.Registry,
		Router:      s.app.Router,
		History:     s.app.History,
		HubManager:  s.app.HubManager,
		Broadcaster: s.app.Broadcaster,
	}))
}

func (s *CLISuite) TearDownTest() {
	s.app.HubManager.CloseAll()
	s.server.Close()
}

func (s *CLISuite) run(player string, args ...string) (string, error) {
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--server", s.server.URL, "--player", player}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func (s *CLISuite) TestCreateAndGetGame() {
	s.app.MockRandom.QueueString("482913")

	out, err := s.run("alice", "game", "create", "--name", "friday", "--decks", "4")
	s.Require().NoError(err)
	s.Contains(out, "Blackjack: friday [482913]")
	s.Contains(out, "Actions:")
	s.Contains(out, string(model.NewActionID(model.PhaseReady, model.ActionJoin, "482913")))

	out, err = s.run("bob", "game", "get", "482913")
	s.Require().NoError(err)
	s.Contains(out, "alice (host)")

	out, err = s.run("bob", "game", "list")
	s.Require().NoError(err)
	s.Contains(out, "482913")
}

func (s *CLISuite) TestCreateRejectsDeckCount() {
	_, err := s.run("alice", "game", "create", "--decks", "12")
	s.Require().Error(err)
	s.Contains(err.Error(), router.DeckRangeMessage)
}

func (s *CLISuite) TestActAndBet() {
	s.app.MockRandom.QueueString("482913")
	_, err := s.run("alice", "game", "create")
	s.Require().NoError(err)

	out, err := s.run("bob", "act", string(model.NewActionID(model.PhaseReady, model.ActionJoin, "482913")))
	s.Require().NoError(err)
	s.Contains(out, "- bob")

	_, err = s.run("alice", "act", string(model.NewActionID(model.PhaseReady, model.ActionStart, "482913")))
	s.Require().NoError(err)

	out, err = s.run("bob", "act", string(model.NewActionID(model.PhaseBetting, model.ActionBet, "482913")))
	s.Require().NoError(err)
	s.Contains(out, "Place your bets")
	s.Contains(out, "Bet between 1 and 1000")

	_, err = s.run("bob", "bet", "482913", "0")
	s.Error(err)

	_, err = s.run("bob", "bet", "482913", "100")
	s.Require().NoError(err)
	out, err = s.run("alice", "bet", "482913", "50")
	s.Require().NoError(err)
	s.Contains(out, "Round 1")
}

func (s *CLISuite) TestBetOutsideBettingPhase() {
	s.app.MockRandom.QueueString("482913")
	_, err := s.run("alice", "game", "create")
	s.Require().NoError(err)

	out, err := s.run("alice", "bet", "482913", "50")
	s.Require().NoError(err)
	s.Contains(out, "not accepted")
}

func (s *CLISuite) TestStaleActionVerbose() {
	out, err := s.run("alice", "-v", "act", "inGame hit 000000")
	s.Require().NoError(err)
	s.Contains(out, "Acknowledged")
	s.Contains(out, "- inGame hit 000000")
}

func (s *CLISuite) TestHistory() {
	s.app.MockRandom.QueueString("482913")
	_, err := s.run("alice", "game", "create", "--name", "short")
	s.Require().NoError(err)
	_, err = s.run("alice", "act", string(model.NewActionID(model.PhaseReady, model.ActionEnd, "482913")))
	s.Require().NoError(err)

	out, err := s.run("alice", "history", "list")
	s.Require().NoError(err)
	s.Contains(out, "short")
	s.Contains(out, "winner alice")

	summaries, err := s.app.History.Recent(s.T().Context(), 1)
	s.Require().NoError(err)
	s.Require().Len(summaries, 1)

	out, err = s.run("alice", "history", "get", summaries[0].ID)
	s.Require().NoError(err)
	s.Contains(out, "Ended early")
	s.Contains(out, "1. alice: 1000")
}

func (s *CLISuite) TestHealthJSON() {
	out, err := s.run("", "-o", "json", "health")
	s.Require().NoError(err)

	var health map[string]any
	s.Require().NoError(json.Unmarshal([]byte(out), &health))
	s.Equal("ok", health["status"])
}

func (s *CLISuite) TestUnknownOutputFormat() {
	_, err := s.run("", "-o", "yaml", "health")
	s.Error(err)
}

func TestParseSSE(t *testing.T) {
	stream := "event: connected\ndata: {}\n\n: keepalive\n\nevent: game-fragment\ndata: <div>\ndata: </div>\n\n"

	var events []SSEEvent
	for evt := range parseSSE(strings.NewReader(stream)) {
		events = append(events, evt)
	}

	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[1].Event != "game-fragment" || events[1].Data != "<div>\n</div>" {
		t.Errorf("unexpected event %+v", events[1])
	}
}
