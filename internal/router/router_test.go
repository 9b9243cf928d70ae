package router

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"employee-management/internal/models"
	"employee-management/internal/store"
)

type envelope struct {
	Data      json.RawMessage `json:"data"`
	Message   string          `json:"message"`
	Success   bool            `json:"success"`
	Timestamp string          `json:"timestamp"`
}

func newTestServer(t *testing.T, seed bool) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st := store.NewEmployeeStore()
	if seed {
		st.Seed()
	}

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	r := gin.New()
	Setup(r, logger, st)
	return r
}

func do(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), "body: %s", rec.Body.String())
	return env
}

func TestHealth(t *testing.T) {
	r := newTestServer(t, false)

	rec := do(t, r, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestIndexIsPlainDocument(t *testing.T) {
	r := newTestServer(t, false)

	rec := do(t, r, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Equal(t, "Employee Management API", doc["name"])
	assert.Equal(t, "1.0.0", doc["version"])
	assert.Equal(t, "RESTful API for employee management", doc["description"])
	assert.NotContains(t, doc, "success")

	endpoints, ok := doc["endpoints"].(map[string]any)
	require.True(t, ok)
	assert.Len(t, endpoints, 8)
	assert.Contains(t, endpoints, "GET /api/employees/search")
}

func TestNoRoute(t *testing.T) {
	r := newTestServer(t, false)

	rec := do(t, r, http.MethodGet, "/api/nothing-here", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	env := decode(t, rec)
	assert.False(t, env.Success)
	assert.Equal(t, "Resource not found", env.Message)
	assert.NotEmpty(t, env.Timestamp)
}

func TestNoMethod(t *testing.T) {
	r := newTestServer(t, true)

	rec := do(t, r, http.MethodPatch, "/api/employees/1", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	env := decode(t, rec)
	assert.False(t, env.Success)
	assert.Equal(t, "Method not allowed", env.Message)
}

func TestMetricsExposition(t *testing.T) {
	r := newTestServer(t, true)

	do(t, r, http.MethodGet, "/api/employees", "")

	rec := do(t, r, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")
	assert.Contains(t, rec.Body.String(), `http_requests_total{method="GET",path="/api/employees",status="200"} 1`)
	assert.Contains(t, rec.Body.String(), "http_request_duration_seconds")
}

func TestRequestIDHeader(t *testing.T) {
	r := newTestServer(t, false)

	rec := do(t, r, http.MethodGet, "/health", "")
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-Id", "caller-supplied")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, "caller-supplied", rec.Header().Get("X-Request-Id"))
}

func TestCORSHeader(t *testing.T) {
	r := newTestServer(t, false)

	// A request from another host gets the allow-all header.
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "http://frontend.other.com")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	// An origin matching the request host is not cross-origin; the
	// middleware leaves the header unset.
	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "http://"+req.Host)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

// TestAPIFlow walks the whole surface the way a demo client would.
func TestAPIFlow(t *testing.T) {
	r := newTestServer(t, true)

	t.Run("list seeded employees", func(t *testing.T) {
		rec := do(t, r, http.MethodGet, "/api/employees", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Retrieved 3 employees", decode(t, rec).Message)
	})

	t.Run("get first employee", func(t *testing.T) {
		rec := do(t, r, http.MethodGet, "/api/employees/1", "")
		require.Equal(t, http.StatusOK, rec.Code)

		e := decodeEmployee(t, decode(t, rec))
		assert.Equal(t, "Sarah", e.FirstName)
	})

	t.Run("list IT department", func(t *testing.T) {
		rec := do(t, r, http.MethodGet, "/api/employees/department/IT", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Found 2 employees in IT", decode(t, rec).Message)
	})

	t.Run("statistics before changes", func(t *testing.T) {
		rec := do(t, r, http.MethodGet, "/api/statistics", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var stats models.Statistics
		require.NoError(t, json.Unmarshal(decode(t, rec).Data, &stats))
		assert.Equal(t, 3, stats.TotalEmployees)
	})

	var createdID int
	t.Run("create employee", func(t *testing.T) {
		body := `{"firstName":"David","lastName":"Kim","email":"david.kim@company.com","department":"Finance","salary":88000,"hireDate":"2023-01-10"}`
		rec := do(t, r, http.MethodPost, "/api/employees", body)
		require.Equal(t, http.StatusCreated, rec.Code)

		e := decodeEmployee(t, decode(t, rec))
		assert.Equal(t, 4, e.ID)
		createdID = e.ID
	})

	t.Run("update created employee", func(t *testing.T) {
		rec := do(t, r, http.MethodPut, "/api/employees/4", `{"salary":92000,"department":"IT"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		e := decodeEmployee(t, decode(t, rec))
		assert.Equal(t, createdID, e.ID)
		assert.Equal(t, 92000.0, e.Salary)
		assert.Equal(t, "IT", e.Department)
	})

	t.Run("delete created employee", func(t *testing.T) {
		rec := do(t, r, http.MethodDelete, "/api/employees/4", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Employee 4 deleted successfully", decode(t, rec).Message)
	})

	t.Run("deleted employee is gone", func(t *testing.T) {
		rec := do(t, r, http.MethodGet, "/api/employees/4", "")
		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Employee with ID 4 not found", decode(t, rec).Message)
	})

	t.Run("search by name", func(t *testing.T) {
		rec := do(t, r, http.MethodGet, "/api/employees/search?q=sarah", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Found 1 employees matching criteria", decode(t, rec).Message)
	})

	t.Run("search by salary band", func(t *testing.T) {
		rec := do(t, r, http.MethodGet, "/api/employees/search?minSalary=80000&maxSalary=100000", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Found 2 employees matching criteria", decode(t, rec).Message)
	})

	t.Run("filtered and sorted listing", func(t *testing.T) {
		rec := do(t, r, http.MethodGet, "/api/employees?department=IT&sort=salary&order=desc", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var list []models.Employee
		require.NoError(t, json.Unmarshal(decode(t, rec).Data, &list))
		require.Len(t, list, 2)
		assert.GreaterOrEqual(t, list[0].Salary, list[1].Salary)
	})

	t.Run("unknown id", func(t *testing.T) {
		rec := do(t, r, http.MethodGet, "/api/employees/9999", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("invalid creation payload", func(t *testing.T) {
		body := `{"firstName":"Bad","lastName":"Data","email":"bad@company.com","department":"InvalidDept","salary":-5000}`
		rec := do(t, r, http.MethodPost, "/api/employees", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Validation failed", decode(t, rec).Message)
	})
}

func decodeEmployee(t *testing.T, env envelope) models.Employee {
	t.Helper()
	var e models.Employee
	require.NoError(t, json.Unmarshal(env.Data, &e))
	return e
}
