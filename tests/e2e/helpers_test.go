//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/Joseph-Edoh/Church-connect/internal/adapter/postgres/testhelper"
	"github.com/Joseph-Edoh/Church-connect/internal/app"
	"github.com/Joseph-Edoh/Church-connect/internal/config"
)

// testServer wraps the full-stack HTTP server for E2E tests.
type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	App    *app.App
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{ShutdownTimeout: time.Second},
		CORS: config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
			AllowedHeaders: "Authorization,Content-Type",
		},
		Storage: config.StorageConfig{Driver: config.DriverPostgres},
		Auth: config.AuthConfig{
			JWTSecret:      "test-secret-at-least-32-chars-long!!",
			JWTIssuer:      "test-issuer",
			AccessTokenTTL: 15 * time.Minute,
			BcryptCost:     4,
		},
		Metrics:  config.MetricsConfig{Enabled: true, Path: "/metrics"},
		Calendar: config.CalendarConfig{TimeZone: "UTC"},
	}
}

// setupTestServer bootstraps the application on a real PostgreSQL container
// (shared via testhelper). Every test registers its own churches, so tests
// never see each other's data.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, &slog.HandlerOptions{Level: slog.LevelWarn}))

	a, err := app.New(testConfig(), logger, app.NewPostgresStorage(pool))
	require.NoError(t, err)

	srv := httptest.NewServer(a.Handler)
	t.Cleanup(func() {
		srv.Close()
		a.Close()
	})

	return &testServer{URL: srv.URL, Client: srv.Client(), Pool: pool, App: a}
}

// restRequest sends a JSON request; body may be nil.
func restRequest(t *testing.T, ts *testServer, method, path, token string, body any) *http.Response {
	t.Helper()

	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, ts.URL+path, r)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	return resp
}

// call sends a request, checks the status and decodes the body into out
// (unless out is nil).
func call(t *testing.T, ts *testServer, method, path, token string, body any, wantStatus int, out any) {
	t.Helper()

	resp := restRequest(t, ts, method, path, token, body)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, wantStatus, resp.StatusCode, "%s %s: %s", method, path, raw)
	if out != nil {
		require.NoError(t, json.Unmarshal(raw, out), string(raw))
	}
}

type userJSON struct {
	ID              string   `json:"id"`
	ChurchID        string   `json:"churchId"`
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	Role            string   `json:"role"`
	UnitID          *string  `json:"unitId"`
	MemberOfUnitIDs []string `json:"memberOfUnitIds"`
}

type unitJSON struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	HeadID *string `json:"headId"`
	Head   *struct {
		Name string `json:"name"`
	} `json:"head"`
}

// church is a freshly registered church with a signed-in pastor.
type church struct {
	ID          string
	AdminEmail  string
	AdminToken  string
	AdminUserID string
}

const testPassword = "password123"

func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// registerChurch registers a church with a unique name and signs its
// pastor in through the admin portal.
func registerChurch(t *testing.T, ts *testServer) church {
	t.Helper()

	email := "pastor-" + uniqueSuffix() + "@example.com"
	var reg struct {
		Church struct {
			ID string `json:"id"`
		} `json:"church"`
		Pastor userJSON `json:"pastor"`
	}
	call(t, ts, http.MethodPost, "/churches", "", map[string]string{
		"name":       "Church " + uniqueSuffix(),
		"pastorName": "Pastor Test",
		"phone":      "555-0100",
		"email":      email,
		"password":   testPassword,
	}, http.StatusCreated, &reg)
	require.Equal(t, "Super Admin", reg.Pastor.Role)

	return church{
		ID:          reg.Church.ID,
		AdminEmail:  email,
		AdminToken:  login(t, ts, reg.Church.ID, email, "admin"),
		AdminUserID: reg.Pastor.ID,
	}
}

// login signs in and returns the access token.
func login(t *testing.T, ts *testServer, churchID, email, portal string) string {
	t.Helper()

	var resp struct {
		AccessToken string `json:"accessToken"`
	}
	call(t, ts, http.MethodPost, "/auth", "", map[string]string{
		"churchId": churchID,
		"email":    email,
		"password": testPassword,
		"portal":   portal,
	}, http.StatusOK, &resp)
	require.NotEmpty(t, resp.AccessToken)
	return resp.AccessToken
}

// createUser has the church admin create an account with role.
func createUser(t *testing.T, ts *testServer, c church, role string, memberOf ...string) userJSON {
	t.Helper()

	if memberOf == nil {
		memberOf = []string{}
	}
	var u userJSON
	call(t, ts, http.MethodPost, "/users", c.AdminToken, map[string]any{
		"name":            "User " + uniqueSuffix(),
		"phone":           "555-0101",
		"email":           "user-" + uniqueSuffix() + "@example.com",
		"password":        testPassword,
		"role":            role,
		"memberOfUnitIds": memberOf,
	}, http.StatusCreated, &u)
	return u
}

// createUnit has the church admin create a unit, optionally with a head.
func createUnit(t *testing.T, ts *testServer, c church, name string, headID *string) unitJSON {
	t.Helper()

	var u unitJSON
	call(t, ts, http.MethodPost, "/units", c.AdminToken, map[string]any{
		"name":   name,
		"headId": headID,
	}, http.StatusCreated, &u)
	return u
}
