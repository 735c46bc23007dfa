package e2e_test

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/blackjack-go/internal/api"
	"github.com/mcoot/blackjack-go/internal/api/response"
	"github.com/mcoot/blackjack-go/internal/factory"
	"github.com/mcoot/blackjack-go/internal/model"
	"github.com/mcoot/blackjack-go/internal/services/router"
)

// cliRunner manages CLI binary execution
type cliRunner struct {
	binaryPath string
	serverURL  string
}

func newCLIRunner(t *testing.T, serverURL string) *cliRunner {
	t.Helper()

	projectRoot := findProjectRoot(t)

	binaryPath := filepath.Join(projectRoot, "bin", "bjgame-test")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/bjgame")
	cmd.Dir = projectRoot
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "failed to build CLI: %s", string(output))

	return &cliRunner{
		binaryPath: binaryPath,
		serverURL:  serverURL,
	}
}

func (r *cliRunner) run(player string, args ...string) (string, error) {
	fullArgs := append([]string{
		"--server", r.serverURL,
		"--player", player,
		"--output", "json",
	}, args...)

	cmd := exec.Command(r.binaryPath, fullArgs...)
	output, err := cmd.CombinedOutput()
	return string(output), err
}

func (r *cliRunner) act(t *testing.T, player string, args ...string) router.Response {
	t.Helper()
	output, err := r.run(player, args...)
	require.NoError(t, err, "output: %s", output)

	var resp router.Response
	require.NoError(t, json.Unmarshal([]byte(output), &resp), "output: %s", output)
	return resp
}

func findProjectRoot(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	require.NoError(t, err)

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("could not find project root (go.mod)")
		}
		dir = parent
	}
}

// testServer manages a real HTTP server for e2e tests
type testServer struct {
	addr     string
	shutdown func()
}

func startTestServer(t *testing.T) *testServer {
	t.Helper()

	// Find a free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())

	// Real shuffles and ids; tests only assert on phases
	app, err := factory.New(factory.Config{})
	require.NoError(t, err)

	mux := http.NewServeMux()
	mux.Handle("/api/", api.NewRouter(api.RouterConfig{
		Logger:      app.Logger,
		Storage:     app.Storage,
		Registry:    app.Registry,
		Router:      app.Router,
		History:     app.History,
		HubManager:  app.HubManager,
		Broadcaster: app.Broadcaster,
	}))

	server := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			t.Logf("server error: %v", err)
		}
	}()

	serverURL := "http://" + addr
	waitForServer(t, serverURL+"/api/v1/health")

	return &testServer{
		addr: serverURL,
		shutdown: func() {
			app.HubManager.CloseAll()
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = server.Shutdown(ctx)
		},
	}
}

func waitForServer(t *testing.T, url string) {
	t.Helper()

	client := &http.Client{Timeout: 100 * time.Millisecond}
	deadline := time.Now().Add(5 * time.Second)

	for time.Now().Before(deadline) {
		resp, err := client.Get(url)
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(50 * time.Millisecond)
	}

	t.Fatal("server did not become ready in time")
}

func TestCLI_HealthCheck(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("", "health")
	require.NoError(t, err, "output: %s", output)

	var resp response.Health
	require.NoError(t, json.Unmarshal([]byte(output), &resp))
	assert.Equal(t, "ok", resp.Status)
}

func TestCLI_FullRound(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	created := cli.act(t, "alice", "game", "create", "--name", "e2e", "--decks", "4")
	require.Equal(t, router.KindRender, created.Kind)
	id := created.GameID
	require.Len(t, string(id), 6)

	actionID := func(phase model.Phase, action model.Action) string {
		return string(model.NewActionID(phase, action, id))
	}

	resp := cli.act(t, "bob", "act", actionID(model.PhaseReady, model.ActionJoin))
	require.Len(t, resp.View.Participants, 2)

	resp = cli.act(t, "alice", "act", actionID(model.PhaseReady, model.ActionStart))
	require.Equal(t, model.PhaseBetting, resp.Phase)

	cli.act(t, "alice", "bet", string(id), "100")
	resp = cli.act(t, "bob", "bet", string(id), "200")
	require.Equal(t, model.PhaseInGame, resp.Phase)
	require.NotNil(t, resp.View.Dealer)
	assert.True(t, resp.View.Dealer.Hidden)

	cli.act(t, "alice", "act", actionID(model.PhaseInGame, model.ActionStand))
	resp = cli.act(t, "bob", "act", actionID(model.PhaseInGame, model.ActionStand))
	require.Equal(t, model.PhaseResults, resp.Phase)
	for _, p := range resp.View.Participants {
		assert.NotEmpty(t, p.Outcome, p.Name)
	}

	resp = cli.act(t, "alice", "act", actionID(model.PhaseResults, model.ActionEnd))
	require.Equal(t, model.PhaseFinished, resp.Phase)

	output, err := cli.run("alice", "game", "get", string(id))
	assert.Error(t, err, "finished games leave the registry: %s", output)

	output, err = cli.run("alice", "history", "list")
	require.NoError(t, err, "output: %s", output)
	var history response.HistoryList
	require.NoError(t, json.Unmarshal([]byte(output), &history))
	require.Len(t, history.Summaries, 1)
	assert.Equal(t, id, history.Summaries[0].GameID)
	assert.Equal(t, 1, history.Summaries[0].Rounds)
}

func TestCLI_StaleAction(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	resp := cli.act(t, "alice", "act", "inGame hit 123456")
	assert.Equal(t, router.KindAck, resp.Kind)
	assert.Equal(t, []model.ActionID{"inGame hit 123456"}, resp.Update.Unsubscribe)
}
