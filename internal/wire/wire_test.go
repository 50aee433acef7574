package wire

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"movies-api/internal/data/repository"
	"movies-api/internal/dto/response"
	"movies-api/pkg/middleware"
	"movies-api/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type envelope struct {
	Status  bool              `json:"status"`
	Message string            `json:"message"`
	Data    json.RawMessage   `json:"data"`
	Errors  map[string]string `json:"errors"`
}

func testConfig() *utils.Config {
	return &utils.Config{
		App: utils.AppConfig{Name: "movies-api-test", Port: "0"},
		CORS: utils.CORSConfig{
			TrustedOrigins: []string{"http://trusted.test"},
		},
	}
}

func newTestServer(t *testing.T, config *utils.Config, opts ...repository.Option) *httptest.Server {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	log := zaptest.NewLogger(t)
	app := Wiring(ctx, repository.NewRepository(log, opts...), config, log)

	srv := httptest.NewServer(app.Router)
	t.Cleanup(srv.Close)
	return srv
}

func do(t *testing.T, srv *httptest.Server, method, path, body string) (*http.Response, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, srv.URL+path, reader)
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env envelope
	if strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(raw, &env), string(raw))
	}
	return resp, env
}

func moviesOf(t *testing.T, env envelope) []response.MovieResponse {
	t.Helper()
	var movies []response.MovieResponse
	require.NoError(t, json.Unmarshal(env.Data, &movies))
	return movies
}

func movieOf(t *testing.T, env envelope) response.MovieResponse {
	t.Helper()
	var movie response.MovieResponse
	require.NoError(t, json.Unmarshal(env.Data, &movie))
	return movie
}

func TestHome(t *testing.T) {
	srv := newTestServer(t, testConfig())

	resp, err := srv.Client().Get(srv.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Hello World", string(body))
	assert.NotEmpty(t, resp.Header.Get(middleware.RequestIDHeader))
}

func TestMovieLifecycle(t *testing.T) {
	srv := newTestServer(t, testConfig())

	resp, env := do(t, srv, http.MethodPost, "/movies/",
		`{"id":1,"title":"Avengers","overview":"Superheroes save the world from an alien threat","year":2012,"rating":8.0,"category":"Action"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Len(t, moviesOf(t, env), 1)

	resp, env = do(t, srv, http.MethodGet, "/movies/1", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, response.MovieResponse{
		ID:       1,
		Title:    "Avengers",
		Overview: "Superheroes save the world from an alien threat",
		Year:     2012,
		Rating:   8.0,
		Category: "Action",
	}, movieOf(t, env))

	resp, _ = do(t, srv, http.MethodPut, "/movies/1",
		`{"title":"Avengers 2","overview":"Superheroes save the world from an alien threat","year":2012,"rating":8.0,"category":"Action"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, env = do(t, srv, http.MethodGet, "/movies/1", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := movieOf(t, env)
	assert.Equal(t, 1, updated.ID)
	assert.Equal(t, "Avengers 2", updated.Title)

	resp, env = do(t, srv, http.MethodDelete, "/movies/1", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, moviesOf(t, env))

	resp, env = do(t, srv, http.MethodGet, "/movies/1", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.False(t, env.Status)
	assert.Nil(t, env.Data)
}

func TestMovieLifecycleWithDefaultConfig(t *testing.T) {
	config, err := utils.LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	srv := newTestServer(t, config)

	steps := []struct {
		method string
		path   string
		body   string
		want   int
	}{
		{http.MethodPost, "/movies/", `{"id":1,"title":"Avengers","overview":"Superheroes save the world from an alien threat","year":2012,"rating":8.0,"category":"Action"}`, http.StatusCreated},
		{http.MethodGet, "/movies/1", "", http.StatusOK},
		{http.MethodPut, "/movies/1", `{"title":"Avengers 2","overview":"Superheroes save the world from an alien threat","year":2012,"rating":8.0,"category":"Action"}`, http.StatusOK},
		{http.MethodGet, "/movies/1", "", http.StatusOK},
		{http.MethodDelete, "/movies/1", "", http.StatusOK},
		{http.MethodGet, "/movies/1", "", http.StatusNotFound},
		{http.MethodGet, "/movies/", "", http.StatusOK},
		{http.MethodGet, "/movies/?category=Action", "", http.StatusOK},
	}

	for _, step := range steps {
		resp, _ := do(t, srv, step.method, step.path, step.body)
		assert.Equal(t, step.want, resp.StatusCode, step.method+" "+step.path)
	}
}

func TestListWithAndWithoutTrailingSlash(t *testing.T) {
	srv := newTestServer(t, testConfig())

	for _, body := range []string{`{"id":1,"category":"Action"}`, `{"id":2,"category":"Drama"}`} {
		resp, _ := do(t, srv, http.MethodPost, "/movies", body)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	for _, path := range []string{"/movies", "/movies/"} {
		resp, env := do(t, srv, http.MethodGet, path, "")
		require.Equal(t, http.StatusOK, resp.StatusCode, path)
		assert.Len(t, moviesOf(t, env), 2, path)
	}

	resp, env := do(t, srv, http.MethodGet, "/movies/?category=Drama", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	movies := moviesOf(t, env)
	require.Len(t, movies, 1)
	assert.Equal(t, 2, movies[0].ID)
}

func TestDeleteConsecutiveDuplicates(t *testing.T) {
	srv := newTestServer(t, testConfig())

	for _, body := range []string{`{"id":5}`, `{"id":5}`, `{"id":8}`} {
		resp, _ := do(t, srv, http.MethodPost, "/movies/", body)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp, env := do(t, srv, http.MethodDelete, "/movies/5", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	movies := moviesOf(t, env)
	require.Len(t, movies, 1)
	assert.Equal(t, 8, movies[0].ID)
}

func TestUniqueIDs(t *testing.T) {
	srv := newTestServer(t, testConfig(), repository.WithUniqueIDs(true))

	resp, _ := do(t, srv, http.MethodPost, "/movies/", `{"id":3}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, env := do(t, srv, http.MethodPost, "/movies/", `{"id":3}`)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.False(t, env.Status)
}

func TestValidationErrorsReachClient(t *testing.T) {
	srv := newTestServer(t, testConfig())

	resp, env := do(t, srv, http.MethodPost, "/movies/", `{"title":"Tiny","rating":42}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, map[string]string{
		"title":  "Minimum length is 5",
		"rating": "Must be less than or equal to 10",
	}, env.Errors)

	resp, env = do(t, srv, http.MethodGet, "/movies/0", "")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, env.Errors, "id")

	resp, env = do(t, srv, http.MethodPost, "/movies/", `{"id":"one","title":null}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, map[string]string{
		"id":    "Must be an integer",
		"title": "Must not be null",
	}, env.Errors)

	resp, env = do(t, srv, http.MethodPost, "/movies/", `{"id":2} trailing`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid request body", env.Message)

	resp, env = do(t, srv, http.MethodGet, "/movies/", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, moviesOf(t, env))
}

func TestUnknownRouteAndMethod(t *testing.T) {
	srv := newTestServer(t, testConfig())

	resp, env := do(t, srv, http.MethodGet, "/series", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.False(t, env.Status)

	resp, env = do(t, srv, http.MethodPatch, "/movies/1", `{}`)
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	assert.False(t, env.Status)
}

func TestCORSPreflight(t *testing.T) {
	srv := newTestServer(t, testConfig())

	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/movies/", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://trusted.test")
	req.Header.Set("Access-Control-Request-Method", http.MethodPut)

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "http://trusted.test", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Contains(t, resp.Header.Get("Access-Control-Allow-Methods"), http.MethodPut)
}

func TestRateLimit(t *testing.T) {
	config := testConfig()
	config.Limiter = utils.LimiterConfig{Enabled: true, RPS: 0.001, Burst: 2}
	srv := newTestServer(t, config)

	for i := 0; i < 2; i++ {
		resp, _ := do(t, srv, http.MethodGet, "/movies/", "")
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	resp, env := do(t, srv, http.MethodGet, "/movies/", "")
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.False(t, env.Status)
}

func TestDebugVars(t *testing.T) {
	srv := newTestServer(t, testConfig())

	resp, err := srv.Client().Get(srv.URL + "/debug/vars")
	require.NoError(t, err)
	defer resp.Body.Close()

	var vars map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&vars))
	assert.Contains(t, vars, "total_requests_received")
	assert.Contains(t, vars, "total_responses_sent_by_status")
}
