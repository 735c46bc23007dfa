package sse

import (
	"strings"
	"testing"
	"time"

	"github.com/mcoot/blackjack-go/internal/model"
	"github.com/mcoot/blackjack-go/internal/render"
	"github.com/mcoot/blackjack-go/internal/services/router"
	"github.com/mcoot/blackjack-go/internal/testutil"
)

func finishedResponse() router.Response {
	snap := model.Snapshot{
		ID:      "482913",
		Version: 9,
		Name:    "friday",
		Host:    testutil.Player("alice"),
		Phase:   model.PhaseFinished,
		Participants: []model.ParticipantSnapshot{
			{Player: testutil.Player("alice"), Currency: 1000},
		},
	}
	return router.Response{
		Kind:         router.KindRender,
		GameID:       "482913",
		Phase:        model.PhaseFinished,
		PhaseChanged: true,
		View:         render.Build(snap),
		Update:       model.PhaseChangeUpdate("482913", model.PhaseReady, model.PhaseFinished),
	}
}

func TestBroadcasterPublishesFinishedGame(t *testing.T) {
	manager := NewHubManager(testutil.NopLogger())
	broadcaster := NewBroadcaster(manager, testutil.NopLogger())

	hub := manager.GetOrCreateHub("482913")
	client := NewClient(hub, "watcher")
	hub.Register(client)

	broadcaster.Publish(finishedResponse())

	expected := []model.EventType{
		model.EventGameUpdate,
		model.EventGameFragment,
		model.EventListeningUpdate,
		model.EventGameFinished,
	}
	for _, event := range expected {
		msg := receive(t, client)
		if !strings.HasPrefix(msg, "event: "+string(event)+"\n") {
			t.Errorf("expected %s event, got %q", event, msg)
		}
	}

	if manager.GetHub("482913") != nil {
		t.Error("expected hub removed after the game finished")
	}
}

func TestBroadcasterSkipsPrivateResponses(t *testing.T) {
	manager := NewHubManager(testutil.NopLogger())
	broadcaster := NewBroadcaster(manager, testutil.NopLogger())

	hub := manager.GetOrCreateHub("482913")
	client := NewClient(hub, "watcher")
	hub.Register(client)
	defer hub.Close()

	broadcaster.Publish(router.Response{Kind: router.KindNotice, GameID: "482913", Notice: "nope"})
	broadcaster.Publish(router.Response{Kind: router.KindAck, GameID: "482913"})
	hub.BroadcastEvent("marker", "x")

	if got := receive(t, client); got != "event: marker\ndata: x\n\n" {
		t.Errorf("expected only the marker, got %q", got)
	}
}

func TestBroadcasterWithoutWatchers(t *testing.T) {
	manager := NewHubManager(testutil.NopLogger())
	broadcaster := NewBroadcaster(manager, testutil.NopLogger())

	broadcaster.Publish(finishedResponse())
	if manager.HubCount() != 0 {
		t.Error("publishing must not create hubs")
	}

	version, events := broadcaster.InitialEvents(finishedResponse().View)
	if version != 9 {
		t.Errorf("InitialEvents version = %d, want 9", version)
	}
	if len(events) != 2 {
		t.Fatalf("expected view and fragment events, got %d", len(events))
	}
}

func TestBroadcasterStampsRenderVersion(t *testing.T) {
	manager := NewHubManager(testutil.NopLogger())
	broadcaster := NewBroadcaster(manager, testutil.NopLogger())

	hub := manager.GetOrCreateHub("482913")
	client := NewClient(hub, "watcher")
	hub.Register(client)

	broadcaster.Publish(finishedResponse())

	for i := 0; i < 4; i++ {
		select {
		case msg := <-client.send:
			want := uint64(9)
			if strings.HasPrefix(string(msg.data), "event: "+string(model.EventGameFinished)) {
				want = 0
			}
			if msg.version != want {
				t.Errorf("message %d version = %d, want %d", i, msg.version, want)
			}
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for message")
		}
	}
}
