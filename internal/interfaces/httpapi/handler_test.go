package httpapi

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/fantasy-golf/internal/domain/team"
	"github.com/riskibarqy/fantasy-golf/internal/domain/user"
	"github.com/riskibarqy/fantasy-golf/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/fantasy-golf/internal/platform/cache"
	"github.com/riskibarqy/fantasy-golf/internal/platform/id"
	"github.com/riskibarqy/fantasy-golf/internal/platform/logging"
	"github.com/riskibarqy/fantasy-golf/internal/platform/metrics"
	"github.com/riskibarqy/fantasy-golf/internal/usecase"
)

type staticVerifier map[string]user.Principal

func (v staticVerifier) VerifyAccessToken(_ context.Context, token string) (user.Principal, error) {
	p, ok := v[token]
	if !ok {
		return user.Principal{}, fmt.Errorf("%w: unknown token", usecase.ErrUnauthorized)
	}
	return p, nil
}

func newTestServer(t *testing.T) (*httptest.Server, *metrics.Metrics) {
	t.Helper()

	ds, err := memory.DefaultDataset()
	if err != nil {
		t.Fatalf("DefaultDataset: %v", err)
	}
	r := memory.NewRepositories(ds)
	repos := usecase.Repositories{
		Seasons:     r.Seasons,
		Tiers:       r.Tiers,
		Tours:       r.Tours,
		Tournaments: r.Tournaments,
		Members:     r.Members,
		TourCards:   r.TourCards,
		Golfers:     r.Golfers,
		Teams:       r.Teams,
	}

	logger := logging.NewNop()
	m := metrics.New()
	store := cache.NewStore(time.Minute)
	standingsSvc := usecase.NewStandingsService(repos, store, m, usecase.StandingsConfig{}, logger)
	memberSvc := usecase.NewMemberService(repos.Members, logger)
	handler := NewHandler(
		standingsSvc,
		usecase.NewLeaderboardService(repos, store, m, logger),
		usecase.NewResultsService(repos, usecase.ResultsConfig{Workers: 2}, m, logger),
		usecase.NewTeamService(repos, id.NewUUIDGenerator(), team.DefaultRules(), logger),
		usecase.NewTourCardService(repos, id.NewUUIDGenerator(), logger),
		memberSvc,
		usecase.NewExportService(standingsSvc),
		logger,
	)

	srv := httptest.NewServer(NewRouter(handler, RouterConfig{
		Verifier: staticVerifier{
			"admin-token": {UserID: "user-admin", Email: "commissioner@example.com"},
			"ava-token":   {UserID: "user-001", Email: "ava@example.com"},
			"gus-token":   {UserID: "user-007", Email: "gus@example.com"},
		},
		Admins:   memberSvc,
		Metrics:  m.Handler(),
		Observer: m,
		Logger:   logger,
	}))
	t.Cleanup(srv.Close)
	return srv, m
}

func doRequest(t *testing.T, srv *httptest.Server, method, path, token, body string) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, srv.URL+path, reader)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := srv.Client().Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp, raw
}

func decodeData(t *testing.T, raw []byte) map[string]any {
	t.Helper()

	var body struct {
		Data map[string]any `json:"data"`
	}
	if err := sonic.Unmarshal(raw, &body); err != nil {
		t.Fatalf("unmarshal %s: %v", raw, err)
	}
	return body.Data
}

func errorReason(t *testing.T, raw []byte) string {
	t.Helper()

	var body googleResponseEnvelope
	if err := sonic.Unmarshal(raw, &body); err != nil {
		t.Fatalf("unmarshal %s: %v", raw, err)
	}
	if body.Error == nil || len(body.Error.Errors) == 0 {
		t.Fatalf("expected error body, got %s", raw)
	}
	return body.Error.Errors[0].Reason
}

func TestHandler_SeasonStandings(t *testing.T) {
	t.Parallel()
	srv, _ := newTestServer(t)

	resp, raw := doRequest(t, srv, http.MethodGet, "/v1/seasons/2026/standings", "", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, raw)
	}

	data := decodeData(t, raw)
	tours, _ := data["tours"].([]any)
	if len(tours) != 2 {
		t.Fatalf("expected 2 tours, got %d", len(tours))
	}
	first, _ := tours[0].(map[string]any)
	rows, _ := first["rows"].([]any)
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows on the first tour, got %d", len(rows))
	}
	leader, _ := rows[0].(map[string]any)
	if leader["tourCardId"] != "card-001" || leader["position"] != "1" || leader["band"] != "gold" {
		t.Fatalf("unexpected leader row: %v", leader)
	}
	if data["lastTournamentId"] != "masters-2026" {
		t.Fatalf("unexpected last tournament: %v", data["lastTournamentId"])
	}
}

func TestHandler_PlayoffsAndUnknownSeason(t *testing.T) {
	t.Parallel()
	srv, _ := newTestServer(t)

	resp, raw := doRequest(t, srv, http.MethodGet, "/v1/seasons/2026/playoffs", "", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, raw)
	}
	data := decodeData(t, raw)
	gold, _ := data["gold"].([]any)
	silver, _ := data["silver"].([]any)
	bumped, _ := data["bumped"].([]any)
	if len(gold) != 4 || len(silver) != 1 || len(bumped) != 1 {
		t.Fatalf("unexpected bracket sizes gold=%d silver=%d bumped=%d", len(gold), len(silver), len(bumped))
	}
	top, _ := gold[0].(map[string]any)
	if top["tourCardId"] != "card-001" || top["startingStrokes"] != float64(-10) {
		t.Fatalf("unexpected gold leader: %v", top)
	}

	resp, raw = doRequest(t, srv, http.MethodGet, "/v1/seasons/1999/standings", "", "")
	if resp.StatusCode != http.StatusNotFound || errorReason(t, raw) != "notFound" {
		t.Fatalf("expected 404 notFound, got %d: %s", resp.StatusCode, raw)
	}
}

func TestHandler_LeaderboardByTour(t *testing.T) {
	t.Parallel()
	srv, _ := newTestServer(t)

	resp, raw := doRequest(t, srv, http.MethodGet, "/v1/tournaments/open-2026/leaderboard?tour_id=tour-dbyd-2026", "", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, raw)
	}
	data := decodeData(t, raw)
	tours, _ := data["tours"].([]any)
	if len(tours) != 1 {
		t.Fatalf("expected one tour, got %d", len(tours))
	}
	rows, _ := tours[0].(map[string]any)["rows"].([]any)
	first, _ := rows[0].(map[string]any)
	if first["teamId"] != "team-o-002" || first["points"] != float64(500) || first["earnings"] != float64(2500) {
		t.Fatalf("unexpected first row: %v", first)
	}
	golfers, _ := data["golfers"].([]any)
	if len(golfers) != 15 {
		t.Fatalf("expected the full field, got %d golfers", len(golfers))
	}

	resp, raw = doRequest(t, srv, http.MethodGet, "/v1/tournaments/open-2026/leaderboard?tour_id=nope", "", "")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown tour, got %d: %s", resp.StatusCode, raw)
	}
}

func TestHandler_LeaderboardDisplayStrings(t *testing.T) {
	t.Parallel()
	srv, _ := newTestServer(t)

	resp, raw := doRequest(t, srv, http.MethodGet, "/v1/tournaments/open-2026/leaderboard?tour_id=tour-ccg-2026", "", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, raw)
	}
	data := decodeData(t, raw)
	tours, _ := data["tours"].([]any)
	rows, _ := tours[0].(map[string]any)["rows"].([]any)
	byTeam := make(map[string]map[string]any, len(rows))
	for _, r := range rows {
		row, _ := r.(map[string]any)
		byTeam[row["teamId"].(string)] = row
	}

	cut := byTeam["team-o-006"]
	if cut == nil || cut["earningsDisplay"] != "-" || cut["pointsDisplay"] != "-" {
		t.Fatalf("expected dash displays for the cut team, got %v", cut)
	}
	if _, ok := cut["earnings"]; ok {
		t.Fatalf("expected no earnings value for the cut team, got %v", cut["earnings"])
	}
	paid := byTeam["team-o-004"]
	display, _ := paid["earningsDisplay"].(string)
	if !strings.HasPrefix(display, "$") {
		t.Fatalf("expected a money display for a paid team, got %v", paid)
	}

	golfers, _ := data["golfers"].([]any)
	for _, g := range golfers {
		row, _ := g.(map[string]any)
		if row["id"] == "open-11" && row["usage"] != "66.7%" {
			t.Fatalf("expected open-11 picked by 4 of 6 teams, got %v", row["usage"])
		}
	}
}

func TestHandler_AuthRequired(t *testing.T) {
	t.Parallel()
	srv, _ := newTestServer(t)

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header"},
		{name: "wrong scheme", header: "Basic abc"},
		{name: "unknown token", header: "Bearer nope"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req, _ := http.NewRequest(http.MethodGet, srv.URL+"/v1/members/me", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			resp, err := srv.Client().Do(req)
			if err != nil {
				t.Fatalf("request: %v", err)
			}
			resp.Body.Close()
			if resp.StatusCode != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", resp.StatusCode)
			}
		})
	}
}

func TestHandler_MemberProfile(t *testing.T) {
	t.Parallel()
	srv, _ := newTestServer(t)

	resp, raw := doRequest(t, srv, http.MethodGet, "/v1/members/me", "ava-token", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, raw)
	}
	if got := decodeData(t, raw)["accountDisplay"]; got != "$150" {
		t.Fatalf("unexpected account display %v", got)
	}

	resp, raw = doRequest(t, srv, http.MethodPut, "/v1/members/me", "ava-token", `{"firstName":"Avery","lastName":"Stone"}`)
	if resp.StatusCode != http.StatusOK || decodeData(t, raw)["firstName"] != "Avery" {
		t.Fatalf("unexpected profile update: %d %s", resp.StatusCode, raw)
	}

	resp, raw = doRequest(t, srv, http.MethodPut, "/v1/members/me", "ava-token", `{"nickname":"A"}`)
	if resp.StatusCode != http.StatusBadRequest || errorReason(t, raw) != "invalidInput" {
		t.Fatalf("expected unknown field rejection, got %d: %s", resp.StatusCode, raw)
	}
}

func TestHandler_JoinTour(t *testing.T) {
	t.Parallel()
	srv, _ := newTestServer(t)

	resp, raw := doRequest(t, srv, http.MethodPost, "/v1/tours/tour-ccg-2026/tour-cards", "gus-token", "")
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.StatusCode, raw)
	}
	if got := decodeData(t, raw)["balance"]; got != float64(200) {
		t.Fatalf("expected balance 200 after buy-in, got %v", got)
	}

	resp, raw = doRequest(t, srv, http.MethodPost, "/v1/tours/tour-dbyd-2026/tour-cards", "gus-token", "")
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409 for a second card, got %d: %s", resp.StatusCode, raw)
	}
}

func TestHandler_SaveTeamRejectsBadPayload(t *testing.T) {
	t.Parallel()
	srv, _ := newTestServer(t)

	resp, raw := doRequest(t, srv, http.MethodPut, "/v1/tournaments/tour-championship-2026/team", "ava-token", `{"golferIds":[]}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", resp.StatusCode, raw)
	}
}

func TestHandler_AdminRoutes(t *testing.T) {
	t.Parallel()
	srv, _ := newTestServer(t)

	resp, raw := doRequest(t, srv, http.MethodGet, "/v1/admin/members", "ava-token", "")
	if resp.StatusCode != http.StatusForbidden || errorReason(t, raw) != "forbidden" {
		t.Fatalf("expected 403 for regular member, got %d: %s", resp.StatusCode, raw)
	}

	resp, raw = doRequest(t, srv, http.MethodGet, "/v1/admin/members", "admin-token", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, raw)
	}
	var list struct {
		Data []memberDTO `json:"data"`
	}
	if err := sonic.Unmarshal(raw, &list); err != nil || len(list.Data) != 8 {
		t.Fatalf("expected 8 members, got %d (err=%v)", len(list.Data), err)
	}

	resp, raw = doRequest(t, srv, http.MethodPost, "/v1/admin/members/user-002/account", "admin-token", `{"amount":-25}`)
	if resp.StatusCode != http.StatusOK || decodeData(t, raw)["balance"] != float64(-25) {
		t.Fatalf("unexpected account adjustment: %d %s", resp.StatusCode, raw)
	}

	resp, raw = doRequest(t, srv, http.MethodPut, "/v1/admin/members/user-admin/role", "admin-token", `{"role":"regular"}`)
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("expected self-demotion conflict, got %d: %s", resp.StatusCode, raw)
	}

	resp, raw = doRequest(t, srv, http.MethodPost, "/v1/admin/tournaments/masters-2026/finalize", "admin-token", "")
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("expected finalized tournament conflict, got %d: %s", resp.StatusCode, raw)
	}
}

func TestHandler_ExportStandings(t *testing.T) {
	t.Parallel()
	srv, _ := newTestServer(t)

	resp, raw := doRequest(t, srv, http.MethodGet, "/v1/admin/seasons/2026/standings/export", "admin-token", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, raw)
	}
	if !strings.HasPrefix(resp.Header.Get("Content-Type"), "application/vnd.openxmlformats") {
		t.Fatalf("unexpected content type %q", resp.Header.Get("Content-Type"))
	}
	if !bytes.HasPrefix(raw, []byte("PK")) {
		t.Fatalf("expected a zip container body")
	}
}

func TestHandler_MetricsRecordRoutePattern(t *testing.T) {
	t.Parallel()
	srv, _ := newTestServer(t)

	doRequest(t, srv, http.MethodGet, "/v1/seasons/2026/standings", "", "")
	resp, raw := doRequest(t, srv, http.MethodGet, "/metrics", "", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	want := `fantasy_golf_http_requests_total{method="GET",route="GET /v1/seasons/{seasonID}/standings",status_code="200"} 1`
	if !strings.Contains(string(raw), want) {
		t.Fatalf("expected %q in metrics output", want)
	}
}
