package registry

import (
	"fmt"
	"sync"
	"testing"

	"github.com/mcoot/blackjack-go/internal/dependencies/mocks"
	"github.com/mcoot/blackjack-go/internal/dependencies/random"
	"github.com/mcoot/blackjack-go/internal/model"
	"github.com/mcoot/blackjack-go/internal/services/game"
	"github.com/mcoot/blackjack-go/internal/testutil"
	"github.com/stretchr/testify/suite"
)

type countingObserver struct {
	mu       sync.Mutex
	finished []model.GameID
}

func (o *countingObserver) PhaseChanged(id model.GameID, _, to model.Phase, _ model.ListeningUpdate) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if to == model.PhaseFinished {
		o.finished = append(o.finished, id)
	}
}

type recordingPublisher struct {
	mu      sync.Mutex
	renders []model.GameID
}

func (p *recordingPublisher) Rendered(id model.GameID, _ game.Result) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.renders = append(p.renders, id)
}

type RegistrySuite struct {
	suite.Suite
	random   *mocks.MockRandom
	observer *countingObserver
	registry *Registry
	host     model.Player
}

func TestRegistrySuite(t *testing.T) {
	suite.Run(t, new(RegistrySuite))
}

func (s *RegistrySuite) SetupTest() {
	s.random = mocks.NewMockRandom()
	s.observer = &countingObserver{}
	s.registry = New(s.random, testutil.NopLogger(), s.observer)
	s.host = testutil.Player("host")
}

func (s *RegistrySuite) TestCreateGame() {
	s.random.QueueString("482913")

	g, err := s.registry.CreateGame("  friday table ", 6, s.host)
	s.Require().NoError(err)

	s.Equal(model.GameID("482913"), g.ID())
	snap := g.Snapshot()
	s.Equal("friday table", snap.Name)
	s.Equal(model.PhaseRegistered, snap.Phase)
	s.Equal(6, snap.Decks)
	s.Require().Len(snap.Participants, 1)
	s.Equal(s.host, snap.Participants[0].Player)

	found, err := s.registry.Lookup("482913")
	s.Require().NoError(err)
	s.Same(g, found)
}

func (s *RegistrySuite) TestCreateGameDefaultsName() {
	g, err := s.registry.CreateGame("", 4, s.host)
	s.Require().NoError(err)
	s.Equal(DefaultName, g.Snapshot().Name)
}

func (s *RegistrySuite) TestCreateGameRejectsDeckCount() {
	for _, decks := range []int{-1, 0, 3, 11} {
		_, err := s.registry.CreateGame("x", decks, s.host)
		s.ErrorIs(err, model.ErrInvalidDeckCount, "decks %d", decks)
	}
	for _, decks := range []int{MinDecks, MaxDecks} {
		s.NoError(ValidateDecks(decks))
	}
	s.Equal(0, s.registry.Count())
}

func (s *RegistrySuite) TestCreateGameRetriesOnCollision() {
	s.random.QueueString("111111", "111111", "12", "222222")

	first, err := s.registry.CreateGame("a", 6, s.host)
	s.Require().NoError(err)
	second, err := s.registry.CreateGame("b", 6, s.host)
	s.Require().NoError(err)

	s.Equal(model.GameID("111111"), first.ID())
	s.Equal(model.GameID("222222"), second.ID())
	s.Equal([]model.GameID{"111111", "222222"}, s.registry.IDs())
}

func (s *RegistrySuite) TestCreateGameGivesUpAfterRepeatedCollisions() {
	s.random.QueueString("111111")
	_, err := s.registry.CreateGame("a", 6, s.host)
	s.Require().NoError(err)

	for range maxIDAttempts {
		s.random.QueueString("111111")
	}
	_, err = s.registry.CreateGame("b", 6, s.host)
	s.ErrorIs(err, model.ErrIDSpaceExhausted)
	s.Equal(1, s.registry.Count())
}

func (s *RegistrySuite) TestLookupMissing() {
	_, err := s.registry.Lookup("000000")
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *RegistrySuite) TestJoin() {
	g, err := s.registry.CreateGame("a", 6, s.host)
	s.Require().NoError(err)

	// not accepting until opened
	s.False(s.registry.Join(g.ID(), testutil.Player("p1")))

	g.Open()
	s.True(s.registry.Join(g.ID(), testutil.Player("p1")))
	s.False(s.registry.Join(g.ID(), testutil.Player("p1")))
	s.False(s.registry.Join("missing", testutil.Player("p2")))

	for i := 2; i <= 5; i++ {
		s.True(s.registry.Join(g.ID(), testutil.Player(fmt.Sprintf("p%d", i))))
	}
	s.False(s.registry.Join(g.ID(), testutil.Player("p6")))
	s.Len(g.Snapshot().Participants, game.MaxParticipants)
}

func (s *RegistrySuite) TestLeaveAndGetByIdentity() {
	a, _ := s.registry.CreateGame("a", 6, s.host)
	b, _ := s.registry.CreateGame("b", 6, testutil.Player("other"))
	a.Open()
	b.Open()
	s.True(s.registry.Join(b.ID(), s.host))

	games := s.registry.GetByIdentity(s.host.ID)
	s.Len(games, 2)

	s.True(s.registry.Leave(b.ID(), s.host))
	s.Len(s.registry.GetByIdentity(s.host.ID), 1)
	s.False(s.registry.Leave(b.ID(), s.host))
}

func (s *RegistrySuite) TestFinishedGameIsRemoved() {
	g, err := s.registry.CreateGame("a", 6, s.host)
	s.Require().NoError(err)
	g.Open()

	res := g.End(model.Interaction{
		Phase:  model.PhaseReady,
		Action: model.ActionEnd,
		GameID: g.ID(),
		Player: s.host,
	})
	s.Equal(model.PhaseFinished, res.To)

	_, err = s.registry.Lookup(g.ID())
	s.ErrorIs(err, model.ErrGameNotFound)
	s.Equal([]model.GameID{g.ID()}, s.observer.finished)
}

func (s *RegistrySuite) TestHostLeavingReadyRemovesGame() {
	g, _ := s.registry.CreateGame("a", 6, s.host)
	g.Open()

	s.True(s.registry.Leave(g.ID(), s.host))
	s.Equal(0, s.registry.Count())
}

func TestRegistryConcurrentLifecycle(t *testing.T) {
	r := New(random.New(), testutil.NopLogger())

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			host := testutil.Player(fmt.Sprintf("host-%d", i))
			g, err := r.CreateGame("table", 6, host)
			if err != nil {
				t.Errorf("create: %v", err)
				return
			}
			g.Open()
			for j := range 10 {
				r.Join(g.ID(), testutil.Player(fmt.Sprintf("p-%d", j%8)))
			}
			r.Leave(g.ID(), testutil.Player("p-1"))
			if i%2 == 0 {
				r.Leave(g.ID(), host)
			}
		}(i)
	}
	wg.Wait()

	if got := r.Count(); got != 10 {
		t.Fatalf("expected 10 live games, got %d", got)
	}
	for _, id := range r.IDs() {
		g, err := r.Lookup(id)
		if err != nil {
			t.Fatalf("lookup %s: %v", id, err)
		}
		snap := g.Snapshot()
		if len(snap.Participants) > game.MaxParticipants {
			t.Fatalf("game %s has %d participants", id, len(snap.Participants))
		}
		seen := make(map[model.PlayerID]bool)
		for _, p := range snap.Participants {
			if seen[p.Player.ID] {
				t.Fatalf("game %s seats %s twice", id, p.Player.ID)
			}
			seen[p.Player.ID] = true
		}
	}
}

func (s *RegistrySuite) TestPublishersHearRenders() {
	publisher := &recordingPublisher{}
	s.registry.AddPublisher(publisher)
	s.random.QueueString("482913")

	g, err := s.registry.CreateGame("", 4, s.host)
	s.Require().NoError(err)
	s.Empty(publisher.renders, "creating a game renders nothing")

	g.Open()
	s.Equal([]model.GameID{"482913"}, publisher.renders)
}
