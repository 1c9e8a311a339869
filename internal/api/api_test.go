package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/SpiritX-2025-CodeChefs/SpiritX-CodeChefs-02/internal/factory"
	"github.com/SpiritX-2025-CodeChefs/SpiritX-CodeChefs-02/internal/model"
	"github.com/SpiritX-2025-CodeChefs/SpiritX-CodeChefs-02/internal/services/catalog"
	"github.com/SpiritX-2025-CodeChefs/SpiritX-CodeChefs-02/internal/testutil"
)

type APISuite struct {
	suite.Suite
	app    *factory.TestApp
	server *httptest.Server
	ctx    context.Context

	userToken  string
	adminToken string
}

func TestAPISuite(t *testing.T) {
	suite.Run(t, new(APISuite))
}

func (s *APISuite) SetupTest() {
	s.app = factory.NewTestApp()
	s.ctx = context.Background()

	router := NewRouter(RouterConfig{
		Logger:             testutil.NopLogger(),
		Metrics:            s.app.MockMetrics,
		AuthService:        s.app.AuthService,
		CatalogService:     s.app.CatalogService,
		TeamManager:        s.app.TeamManager,
		LeaderboardService: s.app.LeaderboardService,
		SuggestService:     s.app.SuggestService,
	})
	s.server = httptest.NewServer(router)

	s.Require().NoError(s.app.AuthService.EnsureAdmin(s.ctx, "spiritx_admin", "SpiritX@2025"))
	_, err := s.app.AuthService.Register(s.ctx, "spiritfan", "Passw0rd")
	s.Require().NoError(err)

	s.userToken = s.login("spiritfan", "Passw0rd")
	s.adminToken = s.login("spiritx_admin", "SpiritX@2025")
}

func (s *APISuite) TearDownTest() {
	s.server.Close()
}

func (s *APISuite) login(username, password string) string {
	session, err := s.app.AuthService.Login(s.ctx, username, password)
	s.Require().NoError(err)
	return session.ID
}

// do performs a request against the test server and decodes the JSON body
// into result when it is non-nil.
func (s *APISuite) do(method, path, token string, body any, result any) *http.Response {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		s.Require().NoError(err)
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequest(method, s.server.URL+path, reqBody)
	s.Require().NoError(err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.server.Client().Do(req)
	s.Require().NoError(err)
	defer resp.Body.Close()

	if result != nil {
		s.Require().NoError(json.NewDecoder(resp.Body).Decode(result))
	}
	return resp
}

func (s *APISuite) errorCode(resp map[string]any) string {
	errObj, ok := resp["error"].(map[string]any)
	s.Require().True(ok, "expected an error envelope, got %v", resp)
	code, _ := errObj["code"].(string)
	return code
}

func (s *APISuite) createPlayer(name string, category model.Category, runs, wickets int) *model.Player {
	player, err := s.app.CatalogService.Create(s.ctx, catalog.CreateParams{
		Name:     name,
		Category: category,
		Runs:     runs,
		Wickets:  wickets,
	})
	s.Require().NoError(err)
	return player
}

func (s *APISuite) TestHealth() {
	resp := s.do(http.MethodGet, "/api/v1/health", "", nil, nil)
	s.Equal(http.StatusOK, resp.StatusCode)
}

func (s *APISuite) TestRegister() {
	var user map[string]any
	resp := s.do(http.MethodPost, "/api/v1/auth/register", "",
		map[string]string{"username": "newcomer1", "password": "Passw0rd"}, &user)

	s.Equal(http.StatusCreated, resp.StatusCode)
	s.Equal("newcomer1", user["username"])
	s.Equal("user", user["role"])
	s.NotContains(user, "password_hash")
}

func (s *APISuite) TestRegisterDuplicate() {
	var errResp map[string]any
	resp := s.do(http.MethodPost, "/api/v1/auth/register", "",
		map[string]string{"username": "spiritfan", "password": "Passw0rd"}, &errResp)

	s.Equal(http.StatusConflict, resp.StatusCode)
	s.Equal("USERNAME_EXISTS", s.errorCode(errResp))
}

func (s *APISuite) TestRegisterWeakPassword() {
	var errResp map[string]any
	resp := s.do(http.MethodPost, "/api/v1/auth/register", "",
		map[string]string{"username": "newcomer1", "password": "password"}, &errResp)

	s.Equal(http.StatusBadRequest, resp.StatusCode)
	s.Equal("INVALID_REQUEST", s.errorCode(errResp))
}

func (s *APISuite) TestLogin() {
	var auth map[string]any
	resp := s.do(http.MethodPost, "/api/v1/auth/login", "",
		map[string]string{"username": "spiritfan", "password": "Passw0rd"}, &auth)

	s.Equal(http.StatusOK, resp.StatusCode)
	s.NotEmpty(auth["session_token"])

	var sessionCookie *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == "session" {
			sessionCookie = c
		}
	}
	s.Require().NotNil(sessionCookie)
	s.True(sessionCookie.HttpOnly)
	s.Equal(auth["session_token"], sessionCookie.Value)
}

func (s *APISuite) TestLoginWrongPassword() {
	var errResp map[string]any
	resp := s.do(http.MethodPost, "/api/v1/auth/login", "",
		map[string]string{"username": "spiritfan", "password": "Wrong0ne"}, &errResp)

	s.Equal(http.StatusUnauthorized, resp.StatusCode)
	s.Equal("INVALID_CREDENTIALS", s.errorCode(errResp))
}

func (s *APISuite) TestUsernameAvailable() {
	var availability map[string]any
	resp := s.do(http.MethodGet, "/api/v1/auth/username-available?username=brandnew1", "", nil, &availability)
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Equal(true, availability["available"])

	resp = s.do(http.MethodGet, "/api/v1/auth/username-available?username=spiritfan", "", nil, &availability)
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Equal(false, availability["available"])
}

func (s *APISuite) TestGetMe() {
	var user map[string]any
	resp := s.do(http.MethodGet, "/api/v1/auth/me", s.userToken, nil, &user)

	s.Equal(http.StatusOK, resp.StatusCode)
	s.Equal("spiritfan", user["username"])
}

func (s *APISuite) TestUnauthenticatedRequestsRejected() {
	for _, path := range []string{
		"/api/v1/auth/me",
		"/api/v1/players",
		"/api/v1/team",
		"/api/v1/budget",
		"/api/v1/leaderboard",
	} {
		resp := s.do(http.MethodGet, path, "", nil, nil)
		s.Equal(http.StatusUnauthorized, resp.StatusCode, "path %s", path)
	}
}

func (s *APISuite) TestBadTokenRejected() {
	resp := s.do(http.MethodGet, "/api/v1/auth/me", "bogus-token", nil, nil)
	s.Equal(http.StatusUnauthorized, resp.StatusCode)
}

func (s *APISuite) TestPlayerListHidesValue() {
	s.createPlayer("Kavindu Perera", model.CategoryBatsman, 400, 0)

	var players []map[string]any
	resp := s.do(http.MethodGet, "/api/v1/players", s.userToken, nil, &players)

	s.Equal(http.StatusOK, resp.StatusCode)
	s.Require().Len(players, 1)
	s.Equal("Kavindu Perera", players[0]["name"])
	s.NotContains(players[0], "value")
	s.Contains(players[0], "budget_cost")
}

func (s *APISuite) TestAdminListIncludesValue() {
	s.createPlayer("Kavindu Perera", model.CategoryBatsman, 400, 0)

	var players []map[string]any
	resp := s.do(http.MethodGet, "/api/v1/admin/players", s.adminToken, nil, &players)

	s.Equal(http.StatusOK, resp.StatusCode)
	s.Require().Len(players, 1)
	s.Equal(float64(40), players[0]["value"])
}

func (s *APISuite) TestAdminRoutesForbiddenForUsers() {
	var errResp map[string]any
	resp := s.do(http.MethodGet, "/api/v1/admin/players", s.userToken, nil, &errResp)

	s.Equal(http.StatusForbidden, resp.StatusCode)
	s.Equal("FORBIDDEN", s.errorCode(errResp))
}

func (s *APISuite) TestAdminCreateUpdateDeletePlayer() {
	var created map[string]any
	resp := s.do(http.MethodPost, "/api/v1/admin/players", s.adminToken, map[string]any{
		"name":     "Sadeera Rajapaksa",
		"category": "Bowler",
		"runs":     50,
		"wickets":  12,
	}, &created)
	s.Equal(http.StatusCreated, resp.StatusCode)
	s.Equal(float64(65), created["value"])

	id := int(created["id"].(float64))

	var updated map[string]any
	resp = s.do(http.MethodPatch, fmt.Sprintf("/api/v1/admin/players/%d", id), s.adminToken,
		map[string]any{"wickets": 20}, &updated)
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Equal(float64(105), updated["value"])

	resp = s.do(http.MethodDelete, fmt.Sprintf("/api/v1/admin/players/%d", id), s.adminToken, nil, nil)
	s.Equal(http.StatusNoContent, resp.StatusCode)

	var errResp map[string]any
	resp = s.do(http.MethodGet, fmt.Sprintf("/api/v1/players/%d", id), s.userToken, nil, &errResp)
	s.Equal(http.StatusNotFound, resp.StatusCode)
	s.Equal("PLAYER_NOT_FOUND", s.errorCode(errResp))
}

func (s *APISuite) TestAdminCreateInvalidCategory() {
	var errResp map[string]any
	resp := s.do(http.MethodPost, "/api/v1/admin/players", s.adminToken, map[string]any{
		"name":     "Wrong Category",
		"category": "Wicketkeeper",
	}, &errResp)

	s.Equal(http.StatusBadRequest, resp.StatusCode)
	s.Equal("INVALID_REQUEST", s.errorCode(errResp))
}

func (s *APISuite) TestTeamAddAndRemove() {
	player := s.createPlayer("Pick Me", model.CategoryBatsman, 100, 0)

	var team map[string]any
	resp := s.do(http.MethodPost, "/api/v1/team/players", s.userToken,
		map[string]int{"player_id": int(player.ID)}, &team)
	s.Equal(http.StatusOK, resp.StatusCode)

	slots := team["slots"].([]any)
	s.Require().Len(slots, model.TeamSize)
	first := slots[0].(map[string]any)
	s.Require().NotNil(first["player"])
	s.Equal("Pick Me", first["player"].(map[string]any)["name"])
	s.NotContains(team, "total_points")

	// Adding again conflicts
	var errResp map[string]any
	resp = s.do(http.MethodPost, "/api/v1/team/players", s.userToken,
		map[string]int{"player_id": int(player.ID)}, &errResp)
	s.Equal(http.StatusConflict, resp.StatusCode)
	s.Equal("ALREADY_IN_TEAM", s.errorCode(errResp))

	resp = s.do(http.MethodDelete, fmt.Sprintf("/api/v1/team/players/%d", player.ID), s.userToken, nil, &team)
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Nil(team["slots"].([]any)[0].(map[string]any)["player"])
}

func (s *APISuite) TestTeamAddBeyondBudgetConflicts() {
	user, err := s.app.Storage.GetUserByUsername(s.ctx, "spiritfan")
	s.Require().NoError(err)
	user.TotalBudget = 10
	s.Require().NoError(s.app.Storage.SaveUser(s.ctx, user))

	player := s.createPlayer("Too Costly", model.CategoryBatsman, 1100, 0) // value 110, cost 15

	var errResp map[string]any
	resp := s.do(http.MethodPost, "/api/v1/team/players", s.userToken,
		map[string]int{"player_id": int(player.ID)}, &errResp)

	s.Equal(http.StatusConflict, resp.StatusCode)
	s.Equal("INSUFFICIENT_BUDGET", s.errorCode(errResp))
}

func (s *APISuite) TestTeamRemoveNotInTeam() {
	player := s.createPlayer("Never Picked", model.CategoryBowler, 0, 5)

	var errResp map[string]any
	resp := s.do(http.MethodDelete, fmt.Sprintf("/api/v1/team/players/%d", player.ID), s.userToken, nil, &errResp)
	s.Equal(http.StatusNotFound, resp.StatusCode)
	s.Equal("NOT_IN_TEAM", s.errorCode(errResp))
}

func (s *APISuite) TestBudget() {
	player := s.createPlayer("Costly", model.CategoryBatsman, 1100, 0) // value 110, cost 15
	s.do(http.MethodPost, "/api/v1/team/players", s.userToken,
		map[string]int{"player_id": int(player.ID)}, nil)

	var budget map[string]any
	resp := s.do(http.MethodGet, "/api/v1/budget", s.userToken, nil, &budget)
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Equal(float64(100), budget["total"])
	s.Equal(float64(15), budget["used"])
	s.Equal(float64(85), budget["remaining"])
}

func (s *APISuite) TestLeaderboard() {
	for i := 0; i < model.TeamSize; i++ {
		player := s.createPlayer(fmt.Sprintf("Player %d", i+1), model.CategoryBatsman, 100, 0)
		resp := s.do(http.MethodPost, "/api/v1/team/players", s.userToken,
			map[string]int{"player_id": int(player.ID)}, nil)
		s.Require().Equal(http.StatusOK, resp.StatusCode)
	}

	var board []map[string]any
	resp := s.do(http.MethodGet, "/api/v1/leaderboard", s.userToken, nil, &board)
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Require().Len(board, 1)
	s.Equal("spiritfan", board[0]["username"])
	s.Equal(float64(110), board[0]["total_value"])
	s.Equal(true, board[0]["is_self"])
}

func (s *APISuite) TestChatbot() {
	s.createPlayer("Suggested Batter", model.CategoryBatsman, 300, 0)

	var chat map[string]any
	resp := s.do(http.MethodPost, "/api/v1/chatbot", s.userToken,
		map[string]string{"query": "suggest a batter"}, &chat)
	s.Equal(http.StatusOK, resp.StatusCode)

	suggestion := chat["suggestion"].([]any)
	s.Require().Len(suggestion, 1)
	s.Equal("Suggested Batter", suggestion[0].(map[string]any)["name"])

	resp = s.do(http.MethodPost, "/api/v1/chatbot", s.userToken,
		map[string]string{"query": "hello there"}, &chat)
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Equal("Pick a balanced side and keep some budget spare.", chat["message"])
}

func (s *APISuite) TestChatbotEmptyQuery() {
	var errResp map[string]any
	resp := s.do(http.MethodPost, "/api/v1/chatbot", s.userToken,
		map[string]string{"query": "  "}, &errResp)
	s.Equal(http.StatusBadRequest, resp.StatusCode)
	s.Equal("INVALID_REQUEST", s.errorCode(errResp))
}

func (s *APISuite) TestLogoutInvalidatesSession() {
	resp := s.do(http.MethodPost, "/api/v1/auth/logout", s.userToken, nil, nil)
	s.Equal(http.StatusNoContent, resp.StatusCode)

	resp = s.do(http.MethodGet, "/api/v1/auth/me", s.userToken, nil, nil)
	s.Equal(http.StatusUnauthorized, resp.StatusCode)
}

func (s *APISuite) TestSessionCookieAuthenticates() {
	req, err := http.NewRequest(http.MethodGet, s.server.URL+"/api/v1/auth/me", nil)
	s.Require().NoError(err)
	req.AddCookie(&http.Cookie{Name: "session", Value: s.userToken})

	resp, err := s.server.Client().Do(req)
	s.Require().NoError(err)
	defer resp.Body.Close()
	s.Equal(http.StatusOK, resp.StatusCode)
}

func (s *APISuite) TestRequestsObserved() {
	s.do(http.MethodGet, "/api/v1/health", "", nil, nil)
	s.Positive(s.app.MockMetrics.HTTPRequests())
}
