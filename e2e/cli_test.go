package e2e_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oookbaaa/Bridge-front-sub000/internal/api"
	"github.com/oookbaaa/Bridge-front-sub000/internal/factory"
	"github.com/oookbaaa/Bridge-front-sub000/internal/model"
)

// cliRunner manages CLI binary execution
type cliRunner struct {
	binaryPath string
	serverURL  string
	tokenFile  string
}

func newCLIRunner(t *testing.T, serverURL string) *cliRunner {
	t.Helper()

	// Find project root (where go.mod is)
	projectRoot := findProjectRoot(t)

	// Build the CLI binary
	binaryPath := filepath.Join(projectRoot, "bin", "bridgectl-test")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/bridgectl")
	cmd.Dir = projectRoot
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "failed to build CLI: %s", string(output))

	// Create temp token file
	tokenFile := filepath.Join(t.TempDir(), "token")

	return &cliRunner{
		binaryPath: binaryPath,
		serverURL:  serverURL,
		tokenFile:  tokenFile,
	}
}

func (r *cliRunner) run(args ...string) (string, error) {
	fullArgs := append([]string{
		"--server", r.serverURL,
		"--token-file", r.tokenFile,
		"--output", "json",
	}, args...)

	cmd := exec.Command(r.binaryPath, fullArgs...)
	output, err := cmd.CombinedOutput()
	return string(output), err
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
	app      *factory.App
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

	// Create application with the embedded fake backend
	app, err := factory.New(factory.Config{FakeBackend: true})
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	router := api.NewRouter(api.RouterConfig{
		Logger:         logger,
		Storage:        app.Storage,
		SessionManager: app.SessionManager,
		Backend:        app.Backend,
	})

	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server
	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			t.Logf("server error: %v", err)
		}
	}()

	// Wait for server to be ready
	serverURL := "http://" + addr
	waitForServer(t, serverURL+"/api/v1/health")

	return &testServer{
		app:  app,
		addr: serverURL,
		shutdown: func() {
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

func (ts *testServer) seedPlayer(email, password string) {
	ts.app.Fake.SeedUser(model.User{
		FirstName: "Amine",
		LastName:  "Ben Salah",
		Email:     email,
		IsActive:  true,
	}, password, model.RolePlayer)
}

func (ts *testServer) seedAdmin() {
	ts.app.Fake.SeedUser(model.User{
		FirstName: "Leila",
		Email:     "admin@ftb.tn",
		IsActive:  true,
	}, "admin123", model.RoleAdmin)
}

// Response types for JSON parsing

type userResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	Email     string `json:"email"`
	IsActive  bool   `json:"isActive"`
	Role      struct {
		Title string `json:"title"`
	} `json:"role"`
}

type authResponse struct {
	SessionToken string       `json:"session_token"`
	User         userResponse `json:"user"`
}

type navigationResponse struct {
	RedirectTo string `json:"redirectTo"`
	Hard       bool   `json:"hard"`
}

type logoutResponse struct {
	Navigation navigationResponse `json:"navigation"`
}

type wizardResponse struct {
	CurrentStep    string   `json:"current_step"`
	CompletedSteps []string `json:"completed_steps"`
	Draft          struct {
		FirstName string `json:"firstName"`
		Email     string `json:"email"`
		City      string `json:"city"`
	} `json:"draft"`
}

type registerResponse struct {
	SessionToken string             `json:"session_token"`
	User         userResponse       `json:"user"`
	Navigation   navigationResponse `json:"navigation"`
}

type statsResponse struct {
	TotalUsers      int `json:"totalUsers"`
	PendingApproval int `json:"pendingApproval"`
}

type tournamentResponse struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

type healthResponse struct {
	Status string `json:"status"`
}

// Tests

func TestCLI_HealthCheck(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("health")
	require.NoError(t, err, "output: %s", output)

	var resp healthResponse
	require.NoError(t, json.Unmarshal([]byte(output), &resp))
	assert.Equal(t, "ok", resp.Status)
}

func TestCLI_AuthCommands(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()
	ts.seedPlayer("amine@example.tn", "secret1")

	cli := newCLIRunner(t, ts.addr)

	// Login saves the token to the token file
	output, err := cli.run("auth", "login", "--user", "amine@example.tn", "--pass", "secret1")
	require.NoError(t, err, "output: %s", output)

	var auth authResponse
	require.NoError(t, json.Unmarshal([]byte(output), &auth))
	assert.Equal(t, "amine@example.tn", auth.User.Email)
	assert.NotEmpty(t, auth.SessionToken)

	// Subsequent commands pick up the saved token
	output, err = cli.run("auth", "me")
	require.NoError(t, err, "output: %s", output)

	var me userResponse
	require.NoError(t, json.Unmarshal([]byte(output), &me))
	assert.Equal(t, "amine@example.tn", me.Email)

	// Logout clears the session and instructs a hard redirect
	output, err = cli.run("auth", "logout")
	require.NoError(t, err, "output: %s", output)

	var logout logoutResponse
	require.NoError(t, json.Unmarshal([]byte(output), &logout))
	assert.Equal(t, "/login", logout.Navigation.RedirectTo)
	assert.True(t, logout.Navigation.Hard)

	output, err = cli.run("auth", "me")
	assert.Error(t, err)
	assert.Contains(t, output, "UNAUTHORIZED")
}

func TestCLI_RegistrationWizard(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	// The first anonymous command adopts the issued visitor identity,
	// so the draft survives across invocations
	output, err := cli.run("register", "show")
	require.NoError(t, err, "output: %s", output)

	var state wizardResponse
	require.NoError(t, json.Unmarshal([]byte(output), &state))
	assert.Equal(t, "basic", state.CurrentStep)

	output, err = cli.run("register", "set",
		"--first-name", "Amine",
		"--last-name", "Ben Salah",
		"--email", "amine@example.tn",
		"--password", "secret1",
		"--password-confirm", "secret1",
	)
	require.NoError(t, err, "output: %s", output)

	output, err = cli.run("register", "next")
	require.NoError(t, err, "output: %s", output)
	require.NoError(t, json.Unmarshal([]byte(output), &state))
	assert.Equal(t, "details", state.CurrentStep)
	assert.Contains(t, state.CompletedSteps, "basic")
	assert.Equal(t, "Amine", state.Draft.FirstName)

	output, err = cli.run("register", "set",
		"--city", "Tunis",
		"--cin", "12345678",
		"--gender", "male",
		"--phone", "+21622345678",
		"--birth-date", "1990-04-12",
		"--address", "12 Avenue Habib Bourguiba",
	)
	require.NoError(t, err, "output: %s", output)

	output, err = cli.run("register", "next")
	require.NoError(t, err, "output: %s", output)
	require.NoError(t, json.Unmarshal([]byte(output), &state))
	assert.Equal(t, "optional", state.CurrentStep)

	output, err = cli.run("register", "set", "--club", "Club de Bridge de Tunis")
	require.NoError(t, err, "output: %s", output)

	output, err = cli.run("register", "submit")
	require.NoError(t, err, "output: %s", output)

	var reg registerResponse
	require.NoError(t, json.Unmarshal([]byte(output), &reg))
	assert.Equal(t, "Amine", reg.User.FirstName)
	assert.False(t, reg.User.IsActive)
	assert.Equal(t, "/dashboard", reg.Navigation.RedirectTo)

	// The visitor is now signed in
	output, err = cli.run("auth", "me")
	require.NoError(t, err, "output: %s", output)

	var me userResponse
	require.NoError(t, json.Unmarshal([]byte(output), &me))
	assert.Equal(t, "amine@example.tn", me.Email)
}

func TestCLI_WizardValidation(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	// Advancing an empty draft reports the missing fields
	output, err := cli.run("register", "next")
	assert.Error(t, err)
	assert.Contains(t, output, "VALIDATION_FAILED")
	assert.Contains(t, output, "firstName")

	// A forward jump past incomplete steps is refused
	output, err = cli.run("register", "jump", "optional")
	assert.Error(t, err)
	assert.Contains(t, output, "STEP_LOCKED")
}

func TestCLI_AdminCommands(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()
	ts.seedAdmin()
	ts.seedPlayer("amine@example.tn", "secret1")

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("auth", "login", "--user", "admin@ftb.tn", "--pass", "admin123")
	require.NoError(t, err, "output: %s", output)

	output, err = cli.run("admin", "users")
	require.NoError(t, err, "output: %s", output)

	var users []userResponse
	require.NoError(t, json.Unmarshal([]byte(output), &users))
	assert.Len(t, users, 2)

	output, err = cli.run("admin", "stats")
	require.NoError(t, err, "output: %s", output)

	var stats statsResponse
	require.NoError(t, json.Unmarshal([]byte(output), &stats))
	assert.Equal(t, 2, stats.TotalUsers)
	assert.Equal(t, 0, stats.PendingApproval)

	// Tournament management
	output, err = cli.run("tournament", "create",
		"--name", "Open de Tunis",
		"--location", "Tunis",
		"--start", "2026-03-14",
		"--end", "2026-03-16",
	)
	require.NoError(t, err, "output: %s", output)

	var tournament tournamentResponse
	require.NoError(t, json.Unmarshal([]byte(output), &tournament))
	require.NotZero(t, tournament.ID)
	assert.Equal(t, "upcoming", tournament.Status)

	output, err = cli.run("tournament", "list")
	require.NoError(t, err, "output: %s", output)

	var tournaments []tournamentResponse
	require.NoError(t, json.Unmarshal([]byte(output), &tournaments))
	assert.Len(t, tournaments, 1)
}

func TestCLI_ErrorHandling(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()
	ts.seedPlayer("amine@example.tn", "secret1")

	cli := newCLIRunner(t, ts.addr)

	// Admin commands without a session
	output, err := cli.run("admin", "users")
	assert.Error(t, err)
	assert.Contains(t, output, "UNAUTHORIZED")

	// Wrong credentials
	output, err = cli.run("auth", "login", "--user", "amine@example.tn", "--pass", "wrong")
	assert.Error(t, err)
	assert.Contains(t, strings.ToLower(output), "invalid credentials")

	// Admin commands as a regular player
	_, err = cli.run("auth", "login", "--user", "amine@example.tn", "--pass", "secret1")
	require.NoError(t, err)

	output, err = cli.run("admin", "users")
	assert.Error(t, err)
	assert.Contains(t, output, "ACCESS_DENIED")
}
