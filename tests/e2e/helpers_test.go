//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/roommatch-backend/internal/adapter/postgres"
	"github.com/heartmarshall/roommatch-backend/internal/adapter/postgres/announcement"
	applicationrepo "github.com/heartmarshall/roommatch-backend/internal/adapter/postgres/application"
	connectionrepo "github.com/heartmarshall/roommatch-backend/internal/adapter/postgres/connection"
	"github.com/heartmarshall/roommatch-backend/internal/adapter/postgres/profile"
	"github.com/heartmarshall/roommatch-backend/internal/adapter/postgres/testhelper"
	authpkg "github.com/heartmarshall/roommatch-backend/internal/auth"
	"github.com/heartmarshall/roommatch-backend/internal/config"
	"github.com/heartmarshall/roommatch-backend/internal/domain"
	"github.com/heartmarshall/roommatch-backend/internal/service/application"
	"github.com/heartmarshall/roommatch-backend/internal/service/connection"
	"github.com/heartmarshall/roommatch-backend/internal/service/notification"
	"github.com/heartmarshall/roommatch-backend/internal/service/recommendation"
	"github.com/heartmarshall/roommatch-backend/internal/transport/middleware"
	"github.com/heartmarshall/roommatch-backend/internal/transport/rest"
)

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	Events *recordingPublisher
	Reco   *recommendation.Service
	jwt    *authpkg.JWTManager
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// recordingPublisher stands in for Redis and keeps every published event.
type recordingPublisher struct {
	mu     sync.Mutex
	events []domain.Notification
}

func (p *recordingPublisher) Publish(_ context.Context, n domain.Notification) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, n)
	return nil
}

// For returns the events addressed to recipient, oldest first.
func (p *recordingPublisher) For(recipient uuid.UUID) []domain.Notification {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []domain.Notification
	for _, n := range p.events {
		if n.RecipientID == recipient {
			out = append(out, n)
		}
	}
	return out
}

// ---------------------------------------------------------------------------
// setupTestServer bootstraps the full application stack backed by
// a real PostgreSQL container (shared via testhelper).
// ---------------------------------------------------------------------------

func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	// 1. Get pool from testcontainers-backed helper.
	pool := testhelper.SetupTestDB(t)

	// 2. Infrastructure.
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	txm := postgres.NewTxManager(pool)
	events := &recordingPublisher{}
	dispatcher := notification.NewDispatcher(logger, events, config.NotificationsConfig{
		Enabled:                 true,
		PublishTimeout:          time.Second,
		BreakerFailureThreshold: 5,
		BreakerOpenTimeout:      time.Second,
	})

	// 3. Repositories.
	profiles := profile.New(pool)
	announcements := announcement.New(pool)
	applications := applicationrepo.New(pool)
	requests := connectionrepo.New(pool)

	// 4. JWT manager with a test secret (>= 32 chars).
	jwtMgr := authpkg.NewJWTManager("test-secret-at-least-32-chars-long!!", "test-issuer", 15*time.Minute)

	// 5. Services.
	recoSvc := recommendation.NewService(logger, announcements, profiles, applications, dispatcher, config.RecommendationConfig{
		DefaultLimit:        10,
		MaxLimit:            50,
		MatchLookback:       time.Hour,
		LoaderWait:          time.Millisecond,
		LoaderBatchCapacity: 100,
	})
	connSvc := connection.NewService(logger, requests, profiles, dispatcher, txm)
	appSvc := application.NewService(logger, applications, announcements, profiles, dispatcher, txm)

	// 6. Router.
	router := rest.NewRouter(rest.RouterDeps{
		Logger: logger,
		CORS: config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,OPTIONS",
			AllowedHeaders: "Authorization,Content-Type",
			MaxAge:         86400,
		},
		RateLimit:       config.RateLimitConfig{Enabled: false},
		Auth:            middleware.Auth(jwtMgr),
		Health:          rest.NewHealthHandler("test-version", rest.Dependency{Name: "database", Pinger: pool}),
		Recommendations: rest.NewRecommendationHandler(recoSvc, logger),
		Connections:     rest.NewConnectionHandler(connSvc, logger),
		Applications:    rest.NewApplicationHandler(appSvc, logger),
	})

	// 7. httptest server.
	srv := httptest.NewServer(router)
	t.Cleanup(func() { srv.Close() })

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		Events: events,
		Reco:   recoSvc,
		jwt:    jwtMgr,
	}
}

// ---------------------------------------------------------------------------
// Request helpers
// ---------------------------------------------------------------------------

// tokenFor mints an access token for u.
func (ts *testServer) tokenFor(t *testing.T, u domain.User) string {
	t.Helper()
	token, err := ts.jwt.GenerateAccessToken(u.ID, u.Role)
	require.NoError(t, err)
	return token
}

// call sends a JSON request and returns status + decoded body.
func (ts *testServer) call(t *testing.T, method, path, token string, body any) (int, map[string]any) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		rdr = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, ts.URL+path, rdr)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var result map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return resp.StatusCode, result
}

// items extracts the "items" array from a list response.
func items(t *testing.T, body map[string]any) []map[string]any {
	t.Helper()
	raw, ok := body["items"].([]any)
	require.True(t, ok, "expected items array in %v", body)
	out := make([]map[string]any, 0, len(raw))
	for _, it := range raw {
		m, ok := it.(map[string]any)
		require.True(t, ok)
		out = append(out, m)
	}
	return out
}

// ---------------------------------------------------------------------------
// Profiles used across scenarios
// ---------------------------------------------------------------------------

func metuCS(age int) domain.AcademicProfile {
	return domain.AcademicProfile{
		Institute:      "METU",
		FieldOfStudy:   "Computer Science",
		EducationLevel: domain.EducationLevelBachelor,
		Age:            age,
	}
}

func bilkentLaw(age int) domain.AcademicProfile {
	return domain.AcademicProfile{
		Institute:      "Bilkent",
		FieldOfStudy:   "Law",
		EducationLevel: domain.EducationLevelPhD,
		Age:            age,
	}
}
