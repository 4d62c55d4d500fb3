package wire

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cinevault/internal/data/memstore"
	"cinevault/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type envelope struct {
	StatusCode    int             `json:"statusCode"`
	IsSuccess     bool            `json:"isSuccess"`
	Message       string          `json:"message"`
	Data          json.RawMessage `json:"data"`
	Timestamp     string          `json:"timestamp"`
	CorrelationID string          `json:"correlationId"`
	Errors        []string        `json:"errors"`
}

type client struct {
	t      *testing.T
	router http.Handler
}

func newClient(t *testing.T) *client {
	t.Helper()
	config := &utils.Config{App: utils.AppConfig{Name: "cinevault", Env: "test"}}
	app := Wiring(memstore.New(zap.NewNop()).Repository(), config, zap.NewNop())
	return &client{t: t, router: app.Router}
}

func (c *client) do(method, path, body string, headers ...string) (*httptest.ResponseRecorder, envelope) {
	c.t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rec := httptest.NewRecorder()
	c.router.ServeHTTP(rec, req)

	var env envelope
	require.NoError(c.t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return rec, env
}

func (c *client) create(path, body string) int64 {
	c.t.Helper()
	rec, env := c.do(http.MethodPost, path, body)
	require.Equal(c.t, http.StatusCreated, rec.Code, env.Message)

	var created struct {
		ID int64 `json:"id"`
	}
	require.NoError(c.t, json.Unmarshal(env.Data, &created))
	return created.ID
}

func TestEnvelopeAndCorrelation(t *testing.T) {
	c := newClient(t)

	rec, env := c.do(http.MethodGet, "/api/movies", "", utils.CorrelationHeader, "req-123")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, http.StatusOK, env.StatusCode)
	assert.True(t, env.IsSuccess)
	assert.Equal(t, "req-123", env.CorrelationID)
	assert.Equal(t, "req-123", rec.Header().Get(utils.CorrelationHeader))
	assert.NotEmpty(t, env.Timestamp)
	assert.NotNil(t, env.Errors)

	_, env = c.do(http.MethodGet, "/api/movies", "")
	assert.Len(t, env.CorrelationID, 36, "generated ids are UUIDs")

	rec, env = c.do(http.MethodPost, "/api/movies",
		`{"data":{"title":"Heat"},"meta":{"correlationId":"from-meta"}}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "from-meta", env.CorrelationID)
	assert.Equal(t, "from-meta", rec.Header().Get(utils.CorrelationHeader))
}

func TestLikeFlowOverHTTP(t *testing.T) {
	c := newClient(t)

	userID := c.create("/api/users", `{"data":{"username":"alice","email":"alice@example.com","password":"secret123"}}`)
	movieID := c.create("/api/movies", `{"data":{"title":"Heat"}}`)
	reviewID := c.create("/api/reviews", jsonf(`{"data":{"movieId":%d,"userId":%d,"rating":9}}`, movieID, userID))

	like := jsonf(`{"data":{"userId":%d,"reviewId":%d}}`, userID, reviewID)

	rec, _ := c.do(http.MethodPost, "/api/likes", like)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec, env := c.do(http.MethodPost, "/api/likes", like)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "user has already liked this item", env.Message)

	rec, _ = c.do(http.MethodPost, "/api/likes", jsonf(`{"data":{"userId":%d,"reviewId":%d,"commentId":1}}`, userID, reviewID))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = c.do(http.MethodPost, "/api/likes", jsonf(`{"data":{"userId":999,"reviewId":%d}}`, reviewID))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, env = c.do(http.MethodGet, jsonf("/api/reviews/%d/likes", reviewID), "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, jsonf(`{"targetType":"review","targetId":%d,"count":1}`, reviewID), string(env.Data))

	rec, _ = c.do(http.MethodDelete, "/api/likes", like)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = c.do(http.MethodDelete, "/api/likes", like)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteGuardOverHTTP(t *testing.T) {
	c := newClient(t)

	userID := c.create("/api/users", `{"data":{"username":"alice","email":"alice@example.com","password":"secret123"}}`)
	free := c.create("/api/movies", `{"data":{"title":"Ronin"}}`)
	reviewed := c.create("/api/movies", `{"data":{"title":"Heat"}}`)
	c.create("/api/reviews", jsonf(`{"data":{"movieId":%d,"userId":%d,"rating":7}}`, reviewed, userID))

	rec, _ := c.do(http.MethodDelete, jsonf("/api/movies/%d", reviewed), "")
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec, env := c.do(http.MethodDelete, "/api/movies/batch", jsonf(`{"data":{"ids":[%d,%d]}}`, free, reviewed))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Deleted 1 movies. 1 movies were not deleted due to existing reviews.", env.Message)

	rec, env = c.do(http.MethodDelete, "/api/movies/batch", `{"data":{"ids":[]}}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "no movie ids provided", env.Message)

	rec, _ = c.do(http.MethodDelete, "/api/movies/batch", `{"data":{"ids":[404]}}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSearchMoviesOverHTTP(t *testing.T) {
	c := newClient(t)

	c.create("/api/movies", `{"data":{"title":"The Matrix","releaseDate":"1999-03-31","genre":"Sci-Fi"}}`)
	c.create("/api/movies", `{"data":{"title":"Matrix Reloaded","releaseDate":"2003-05-15","genre":"Sci-Fi"}}`)
	c.create("/api/movies", `{"data":{"title":"Amelie","releaseDate":"2001-04-25"}}`)

	rec, env := c.do(http.MethodGet, "/api/movies/search?title=matrix&orderBy=releaseDate", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Found 2 movies", env.Message)

	var page struct {
		Data []struct {
			Title         string  `json:"title"`
			AverageRating float64 `json:"averageRating"`
			ReviewCount   int64   `json:"reviewCount"`
		} `json:"data"`
		Pagination struct {
			Total      int64 `json:"total"`
			TotalPages int   `json:"totalPages"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &page))
	require.Len(t, page.Data, 2)
	assert.Equal(t, "The Matrix", page.Data[0].Title)
	assert.Equal(t, 1, page.Pagination.TotalPages)

	rec, env = c.do(http.MethodGet, "/api/movies/search?releaseYear=abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, []string{"releaseYear: must be an integer"}, env.Errors)
}

func TestPagesPastTheEndAreEmpty(t *testing.T) {
	c := newClient(t)
	c.create("/api/movies", `{"data":{"title":"Heat"}}`)
	c.create("/api/users", `{"data":{"username":"alice","email":"alice@example.com","password":"secret123"}}`)

	paths := []string{
		"/api/movies/search?page=9223372036854775807&pageSize=10",
		"/api/movies?page=1000000000000000001&pageSize=10",
		"/api/users/search?page=9223372036854775807&pageSize=100",
		"/api/reviews?page=9223372036854775807",
		"/api/comments?page=9223372036854775807",
	}

	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			rec, env := c.do(http.MethodGet, path, "")
			require.Equal(t, http.StatusOK, rec.Code, env.Message)

			var page struct {
				Data       []json.RawMessage `json:"data"`
				Pagination struct {
					Total int64 `json:"total"`
				} `json:"pagination"`
			}
			require.NoError(t, json.Unmarshal(env.Data, &page))
			assert.Empty(t, page.Data)
			assert.NotNil(t, page.Data)
		})
	}
}

func TestErrorMapping(t *testing.T) {
	c := newClient(t)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		want   int
	}{
		{"malformed body", http.MethodPost, "/api/movies", `{"data":`, http.StatusBadRequest},
		{"validation", http.MethodPost, "/api/movies", `{"data":{"title":""}}`, http.StatusBadRequest},
		{"bad id", http.MethodGet, "/api/movies/abc", "", http.StatusBadRequest},
		{"missing movie", http.MethodGet, "/api/movies/42", "", http.StatusNotFound},
		{"missing review stats", http.MethodGet, "/api/movies/42/review-stats", "", http.StatusNotFound},
		{"missing user", http.MethodGet, "/api/users/42", "", http.StatusNotFound},
		{"rating out of range", http.MethodPost, "/api/reviews", `{"data":{"movieId":1,"userId":1,"rating":11}}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := c.do(tt.method, tt.path, tt.body)
			assert.Equal(t, tt.want, rec.Code)
			assert.Equal(t, tt.want, env.StatusCode)
			assert.False(t, env.IsSuccess)
		})
	}

	_, env := c.do(http.MethodPost, "/api/movies", `{"data":{"title":""}}`)
	assert.Equal(t, "Validation failed", env.Message)
	assert.NotEmpty(t, env.Errors)
}

func TestAppInfo(t *testing.T) {
	c := newClient(t)

	rec, env := c.do(http.MethodGet, "/api/app-info", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var info map[string]string
	require.NoError(t, json.Unmarshal(env.Data, &info))
	assert.Equal(t, "test", info["environment"])
	assert.Equal(t, "v2", info["version"])
	assert.Equal(t, "OK", info["status"])

	rec, _ = c.do(http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}
