package web

import (
	"context"
	"io"
	"log"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/louisbranch/questboard/internal/platform/i18n/catalog"
	"github.com/louisbranch/questboard/internal/progress"
	"github.com/louisbranch/questboard/internal/progress/storage/memory"
	"github.com/louisbranch/questboard/internal/services/web/platform/httpx"
	"github.com/louisbranch/questboard/internal/services/web/platform/i18n"
)

func newTestServer(t *testing.T) (*Server, *memory.Store) {
	t.Helper()
	ctx := context.Background()
	store := memory.New()
	if err := progress.Seed(ctx, store, progress.DefaultCatalog()); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := store.PutDaily(ctx, progress.NewDailyFromIDs([]string{"1", "2", "3"})); err != nil {
		t.Fatalf("put daily: %v", err)
	}
	tracker, err := progress.NewTracker(store, progress.NewSelector(42))
	if err != nil {
		t.Fatalf("new tracker: %v", err)
	}
	server, err := NewServer(Config{
		HTTPAddr:  "127.0.0.1:0",
		Tracker:   tracker,
		Languages: i18n.NewResolver(catalog.Default(), catalog.BaseLocale),
		MCP: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusAccepted)
		}),
		Logger: log.New(io.Discard, "", 0),
	})
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	return server, store
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestNewServerValidatesConfig(t *testing.T) {
	t.Parallel()

	if _, err := NewServer(Config{}); err == nil {
		t.Fatalf("expected error for empty config")
	}
	if _, err := NewServer(Config{HTTPAddr: ":0"}); err == nil {
		t.Fatalf("expected error without tracker")
	}
}

func TestRoutesAcrossModules(t *testing.T) {
	t.Parallel()

	server, _ := newTestServer(t)
	h := server.Handler()

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/", http.StatusFound},
		{http.MethodGet, "/healthz", http.StatusOK},
		{http.MethodGet, "/goals", http.StatusOK},
		{http.MethodGet, "/goals?filter=favorites", http.StatusOK},
		{http.MethodGet, "/tasks", http.StatusOK},
		{http.MethodGet, "/api/goals", http.StatusOK},
		{http.MethodGet, "/api/daily", http.StatusOK},
		{http.MethodGet, "/static/app.css", http.StatusOK},
		{http.MethodPost, "/mcp", http.StatusAccepted},
		{http.MethodGet, "/missing", http.StatusNotFound},
	}
	for _, tc := range tests {
		rr := serve(h, httptest.NewRequest(tc.method, tc.path, nil))
		if rr.Code != tc.want {
			t.Fatalf("%s %s status = %d, want %d", tc.method, tc.path, rr.Code, tc.want)
		}
		if rr.Header().Get(httpx.RequestIDHeader) == "" {
			t.Fatalf("%s %s missing request id", tc.method, tc.path)
		}
	}
}

func TestCompleteTaskShowsToastAfterRedirect(t *testing.T) {
	t.Parallel()

	server, store := newTestServer(t)
	h := server.Handler()

	post := serve(h, httptest.NewRequest(http.MethodPost, "/tasks/0/complete", nil))
	if post.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", post.Code, http.StatusSeeOther)
	}

	follow := httptest.NewRequest(http.MethodGet, post.Header().Get("Location"), nil)
	for _, c := range post.Result().Cookies() {
		follow.AddCookie(c)
	}
	page := serve(h, follow)
	body := page.Body.String()
	if !strings.Contains(body, `role="status"`) || !strings.Contains(body, "Task completed") {
		t.Fatalf("board page missing completion toast: %s", body)
	}
	if !strings.Contains(body, `data-completed="true"`) {
		t.Fatalf("board page missing completed slot")
	}

	goal, err := store.GetGoal(context.Background(), "1")
	if err != nil {
		t.Fatalf("get goal: %v", err)
	}
	if goal.XP != 310 {
		t.Fatalf("goal 1 xp = %d, want 310", goal.XP)
	}
}

func TestLanguageQueryLocalizesPage(t *testing.T) {
	t.Parallel()

	server, _ := newTestServer(t)
	rr := serve(server.Handler(), httptest.NewRequest(http.MethodGet, "/goals?lang=pt-BR", nil))
	body := rr.Body.String()
	if !strings.Contains(body, `lang="pt-BR"`) || !strings.Contains(body, "Metas") {
		t.Fatalf("page not localized to pt-BR")
	}
}

func TestServeStopsOnCancel(t *testing.T) {
	t.Parallel()

	server, _ := newTestServer(t)
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- server.Serve(ctx, listener) }()

	url := "http://" + listener.Addr().String() + "/healthz"
	var resp *http.Response
	for range 50 {
		resp, err = http.Get(url)
		if err == nil {
			break
		}
		time.Sleep(20 * time.Millisecond)
	}
	if err != nil {
		t.Fatalf("get healthz: %v", err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("serve returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("serve did not stop")
	}
}
