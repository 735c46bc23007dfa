package router

import (
	"context"
	"sync"
	"testing"

	"github.com/mcoot/blackjack-go/internal/dependencies/mocks"
	"github.com/mcoot/blackjack-go/internal/model"
	"github.com/mcoot/blackjack-go/internal/services/registry"
	"github.com/mcoot/blackjack-go/internal/testutil"
	"github.com/stretchr/testify/suite"
)

type fakeHistory struct {
	mu        sync.Mutex
	snapshots []model.Snapshot
}

func (h *fakeHistory) Record(_ context.Context, snap model.Snapshot) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.snapshots = append(h.snapshots, snap)
	return nil
}

type recordingPublisher struct {
	mu        sync.Mutex
	responses []Response
}

func (p *recordingPublisher) Publish(resp Response) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.responses = append(p.responses, resp)
}

type RouterSuite struct {
	suite.Suite
	random        *mocks.MockRandom
	subscriptions *Subscriptions
	registry      *registry.Registry
	history       *fakeHistory
	router        *Router
	ctx           context.Context
	alice         model.Player
	bob           model.Player
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterSuite))
}

func (s *RouterSuite) SetupTest() {
	s.random = mocks.NewMockRandom()
	s.subscriptions = NewSubscriptions()
	s.registry = registry.New(s.random, testutil.NopLogger(), s.subscriptions)
	s.history = &fakeHistory{}
	s.router = New(s.registry, s.subscriptions, s.history, testutil.NopLogger())
	s.ctx = context.Background()
	s.alice = testutil.Player("alice")
	s.bob = testutil.Player("bob")
}

func (s *RouterSuite) createGame() model.GameID {
	s.random.QueueString("482913")
	resp, err := s.router.CreateGame(s.ctx, "friday", "6", s.alice)
	s.Require().NoError(err)
	s.Require().Equal(KindRender, resp.Kind)
	return resp.GameID
}

func (s *RouterSuite) dispatch(phase model.Phase, action model.Action, id model.GameID, player model.Player, input string) Response {
	return s.router.Dispatch(s.ctx, Event{
		ActionID: string(model.NewActionID(phase, action, id)),
		Player:   player,
		Input:    input,
	})
}

func (s *RouterSuite) assertListeningFor(id model.GameID, phase model.Phase) {
	expected := model.ActionSetFor(phase, id)
	s.ElementsMatch(expected, s.subscriptions.ForGame(id))
}

func (s *RouterSuite) TestCreateGameSubscribesReadySet() {
	id := s.createGame()

	s.Equal(model.GameID("482913"), id)
	s.assertListeningFor(id, model.PhaseReady)
}

func (s *RouterSuite) TestCreateGameRejectsDeckCount() {
	for _, decks := range []string{"3", "11", "six", "", "-4"} {
		resp, err := s.router.CreateGame(s.ctx, "x", decks, s.alice)
		s.Require().NoError(err)
		s.Equal(KindNotice, resp.Kind)
		s.Equal(DeckRangeMessage, resp.Notice)
	}
	s.Equal(0, s.registry.Count())
	s.Equal(0, s.subscriptions.Len())
}

func (s *RouterSuite) TestResponseCarriesCombinedUpdate() {
	id := s.createGame()
	s.dispatch(model.PhaseReady, model.ActionJoin, id, s.bob, "")

	resp := s.dispatch(model.PhaseReady, model.ActionStart, id, s.alice, "")
	s.Equal(KindRender, resp.Kind)
	s.True(resp.PhaseChanged)
	s.Equal(model.PhaseBetting, resp.Phase)
	s.ElementsMatch(model.ActionSetFor(model.PhaseReady, id), resp.Update.Unsubscribe)
	s.ElementsMatch(model.ActionSetFor(model.PhaseBetting, id), resp.Update.Subscribe)
	s.Require().NotNil(resp.View)
	s.Equal(model.PhaseBetting, resp.View.Phase)
}

func (s *RouterSuite) TestStaleIdentifierIsAcknowledgedAndUnsubscribed() {
	id := s.createGame()
	s.dispatch(model.PhaseReady, model.ActionStart, id, s.alice, "")

	resp := s.dispatch(model.PhaseReady, model.ActionJoin, id, s.bob, "")
	s.Equal(KindAck, resp.Kind)
	s.Nil(resp.View)
	s.Empty(resp.Update.Subscribe)
	s.Equal([]model.ActionID{model.NewActionID(model.PhaseReady, model.ActionJoin, id)}, resp.Update.Unsubscribe)

	g, err := s.registry.Lookup(id)
	s.Require().NoError(err)
	s.False(g.HasParticipant(s.bob.ID))
}

func (s *RouterSuite) TestMalformedAndUnknownIdentifiers() {
	for _, raw := range []string{"", "garbage", "inGame hit", "results hit 482913", "inGame hit 999999"} {
		resp := s.router.Dispatch(s.ctx, Event{ActionID: raw, Player: s.alice})
		s.Equal(KindAck, resp.Kind, "id %q", raw)
		s.Equal([]model.ActionID{model.ActionID(raw)}, resp.Update.Unsubscribe)
	}
}

func (s *RouterSuite) TestBetFormAndNotice() {
	id := s.createGame()
	s.dispatch(model.PhaseReady, model.ActionStart, id, s.alice, "")

	resp := s.dispatch(model.PhaseBetting, model.ActionBet, id, s.alice, "")
	s.Equal(KindForm, resp.Kind)
	s.Require().NotNil(resp.Form)
	s.Equal(1000, resp.Form.Max)

	resp = s.dispatch(model.PhaseBetting, model.ActionBetSubmit, id, s.alice, "ten")
	s.Equal(KindNotice, resp.Kind)
	s.NotEmpty(resp.Notice)
	s.True(resp.Update.IsEmpty())
}

// Drives a game through every phase and checks the table never holds an
// identifier from a phase the game has left.
func (s *RouterSuite) TestSubscriptionsTrackEveryTransition() {
	id := s.createGame()
	s.dispatch(model.PhaseReady, model.ActionJoin, id, s.bob, "")
	s.assertListeningFor(id, model.PhaseReady)

	s.dispatch(model.PhaseReady, model.ActionStart, id, s.alice, "")
	s.assertListeningFor(id, model.PhaseBetting)

	s.dispatch(model.PhaseBetting, model.ActionBetSubmit, id, s.alice, "10")
	s.dispatch(model.PhaseBetting, model.ActionBetSubmit, id, s.bob, "10")
	s.assertListeningFor(id, model.PhaseInGame)

	// a replayed betting submission must not touch the running round
	resp := s.dispatch(model.PhaseBetting, model.ActionBetSubmit, id, s.bob, "500")
	s.Equal(KindAck, resp.Kind)
	view, err := s.router.View(id)
	s.Require().NoError(err)
	s.Equal(10, view.Participants[1].Bet)

	s.dispatch(model.PhaseInGame, model.ActionStand, id, s.alice, "")
	s.dispatch(model.PhaseInGame, model.ActionStand, id, s.bob, "")
	s.assertListeningFor(id, model.PhaseResults)

	s.Equal(KindAck, s.dispatch(model.PhaseInGame, model.ActionHit, id, s.alice, "").Kind)

	s.dispatch(model.PhaseResults, model.ActionReadyUp, id, s.alice, "")
	s.dispatch(model.PhaseResults, model.ActionReadyUp, id, s.bob, "")
	s.assertListeningFor(id, model.PhaseBetting)

	resp = s.dispatch(model.PhaseBetting, model.ActionEnd, id, s.alice, "")
	s.Equal(model.PhaseFinished, resp.Phase)
	s.Empty(s.subscriptions.ForGame(id))
	s.Equal(0, s.subscriptions.Len())
}

func (s *RouterSuite) TestFinishedGameIsRecordedAndRemoved() {
	id := s.createGame()
	s.dispatch(model.PhaseReady, model.ActionStart, id, s.alice, "")

	resp := s.dispatch(model.PhaseBetting, model.ActionLeave, id, s.alice, "")
	s.Equal(KindRender, resp.Kind)
	s.Equal(model.PhaseFinished, resp.Phase)
	s.Require().NotNil(resp.View)
	s.Len(resp.View.Standings, 1)

	s.Require().Len(s.history.snapshots, 1)
	s.Equal(id, s.history.snapshots[0].ID)
	s.True(s.history.snapshots[0].Forced)

	_, err := s.router.View(id)
	s.ErrorIs(err, model.ErrGameNotFound)
	s.Empty(s.router.Views())
}

func (s *RouterSuite) TestViewsListsLiveGames() {
	s.createGame()
	s.random.QueueString("100000")
	_, err := s.router.CreateGame(s.ctx, "second", "4", s.bob)
	s.Require().NoError(err)

	views := s.router.Views()
	s.Require().Len(views, 2)
	s.Equal(model.GameID("100000"), views[0].GameID)
	s.Equal(model.GameID("482913"), views[1].GameID)
}

func (s *RouterSuite) TestConcurrentDispatchKeepsTableConsistent() {
	id := s.createGame()
	players := []model.Player{s.alice}
	for _, name := range []string{"p2", "p3", "p4", "p5", "p6"} {
		p := testutil.Player(name)
		s.dispatch(model.PhaseReady, model.ActionJoin, id, p, "")
		players = append(players, p)
	}
	s.dispatch(model.PhaseReady, model.ActionStart, id, s.alice, "")

	var wg sync.WaitGroup
	for _, p := range players {
		wg.Add(1)
		go func(p model.Player) {
			defer wg.Done()
			s.dispatch(model.PhaseBetting, model.ActionBetSubmit, id, p, "10")
			s.dispatch(model.PhaseInGame, model.ActionHit, id, p, "")
			s.dispatch(model.PhaseInGame, model.ActionStand, id, p, "")
		}(p)
	}
	wg.Wait()

	g, err := s.registry.Lookup(id)
	s.Require().NoError(err)
	s.assertListeningFor(id, g.Phase())
}

func (s *RouterSuite) TestPublisherSeesRendersInCommitOrder() {
	publisher := &recordingPublisher{}
	s.router.SetPublisher(publisher)

	id := s.createGame()
	players := []model.Player{s.alice}
	for _, name := range []string{"p2", "p3", "p4", "p5", "p6"} {
		p := testutil.Player(name)
		s.dispatch(model.PhaseReady, model.ActionJoin, id, p, "")
		players = append(players, p)
	}
	s.dispatch(model.PhaseReady, model.ActionStart, id, s.alice, "")

	var wg sync.WaitGroup
	for _, p := range players {
		wg.Add(1)
		go func(p model.Player) {
			defer wg.Done()
			s.dispatch(model.PhaseBetting, model.ActionBetSubmit, id, p, "10")
		}(p)
	}
	wg.Wait()

	// private responses never reach the publisher
	s.dispatch(model.PhaseInGame, model.ActionBet, id, s.alice, "")

	publisher.mu.Lock()
	defer publisher.mu.Unlock()
	s.Require().NotEmpty(publisher.responses)
	for i, resp := range publisher.responses {
		s.Equal(KindRender, resp.Kind)
		if i > 0 {
			s.Greater(resp.View.Version, publisher.responses[i-1].View.Version, "publish %d out of order", i)
		}
	}
	last := publisher.responses[len(publisher.responses)-1]
	s.Equal(model.PhaseInGame, last.Phase)
	s.True(last.PhaseChanged)
	s.ElementsMatch(model.ActionSetFor(model.PhaseInGame, id), last.Update.Subscribe)
}
