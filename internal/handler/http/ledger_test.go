package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/hrconsole/attendance-backend-go/internal/domain/employee"
	"github.com/hrconsole/attendance-backend-go/internal/domain/ledger"
	"github.com/hrconsole/attendance-backend-go/internal/pkg/jwt"
	"github.com/hrconsole/attendance-backend-go/internal/repository/memory"
	ledgerservice "github.com/hrconsole/attendance-backend-go/internal/service/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testDirectory struct {
	employees []employee.Employee
}

func (d *testDirectory) ListByDepartment(_ context.Context, department string) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range d.employees {
		if e.Department == department {
			out = append(out, e)
		}
	}
	if out == nil {
		return nil, employee.ErrDepartmentUnknown
	}
	return out, nil
}

func (d *testDirectory) Departments(context.Context) ([]string, error) {
	return []string{"IT"}, nil
}

func (d *testDirectory) Designations(context.Context, string) ([]string, error) {
	return []string{"Developer"}, nil
}

// missingSource marks every entry MISSING so each one carries a
// pending correction request.
type missingSource struct{}

func (missingSource) Draw(string, time.Time) ledger.Status { return ledger.StatusMissing }

type testEnv struct {
	server *httptest.Server
	jwt    jwt.Service
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	directory := &testDirectory{employees: []employee.Employee{
		{ID: "EMP001", Name: "Aarav Reddy", Department: "IT", Designation: "Developer"},
		{ID: "EMP002", Name: "Priya Sharma", Department: "IT", Designation: "Developer"},
	}}

	jwtService := jwt.NewJWTService("test-secret")
	ledgerService := ledgerservice.NewLedgerService(memory.NewSessionStore(), directory, missingSource{}, 20)

	router := NewRouter(
		jwtService,
		NewLedgerHandler(ledgerService),
		NewEmployeeHandler(directory),
		"http://localhost:5173",
		"test",
	)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &testEnv{server: server, jwt: jwtService}
}

func (e *testEnv) token(t *testing.T, role string) string {
	t.Helper()
	token, _, err := e.jwt.GenerateAccessToken("op-1", role, time.Hour)
	require.NoError(t, err)
	return token
}

func (e *testEnv) do(t *testing.T, method, path, token string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, e.server.URL+path, reader)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := e.server.Client().Do(req)
	require.NoError(t, err)
	return resp
}

func decodeEnvelope(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()
	var envelope map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return envelope
}

func buildSessionID(t *testing.T, env *testEnv, token string) string {
	t.Helper()
	resp := env.do(t, http.MethodPost, "/api/v1/ledger/sessions", token, map[string]string{
		"department": "IT",
		"from_month": "2024-06",
		"to_month":   "2024-06",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	envelope := decodeEnvelope(t, resp)
	data := envelope["data"].(map[string]interface{})
	id, ok := data["id"].(string)
	require.True(t, ok)
	require.NotEmpty(t, id)
	return id
}

func TestAPI_RequiresToken(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	resp := env.do(t, http.MethodGet, "/api/v1/employees/departments", "", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAPI_RejectsGarbageToken(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	resp := env.do(t, http.MethodGet, "/api/v1/employees/departments", "not-a-jwt", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAPI_BuildSessionAndListEntries(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	token := env.token(t, "manager")

	sessionID := buildSessionID(t, env, token)

	resp := env.do(t, http.MethodGet, "/api/v1/ledger/sessions/"+sessionID+"/entries", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	envelope := decodeEnvelope(t, resp)
	data := envelope["data"].(map[string]interface{})
	assert.Equal(t, float64(2), data["total_count"])
	assert.Equal(t, "1-2 of 2", data["showing"])
	assert.Len(t, data["rows"].([]interface{}), 2)
	assert.Len(t, data["days"].([]interface{}), 25)
}

func TestAPI_BuildSession_ValidationError(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	token := env.token(t, "manager")

	resp := env.do(t, http.MethodPost, "/api/v1/ledger/sessions", token, map[string]string{
		"department": "IT",
		"from_month": "June 2024",
		"to_month":   "2024-06",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestAPI_ApproveFlow(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	token := env.token(t, "manager")
	sessionID := buildSessionID(t, env, token)

	decision := map[string]string{"employee_id": "EMP001", "date": "2024-06-03"}

	resp := env.do(t, http.MethodPost, "/api/v1/ledger/sessions/"+sessionID+"/requests/approve", token, decision)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	envelope := decodeEnvelope(t, resp)
	data := envelope["data"].(map[string]interface{})
	assert.Equal(t, "PRESENT", data["status"])
	assert.Equal(t, "MANUAL_CORRECTION", data["source"])

	// The same request cannot be decided twice.
	resp = env.do(t, http.MethodPost, "/api/v1/ledger/sessions/"+sessionID+"/requests/approve", token, decision)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestAPI_RejectFlow(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	token := env.token(t, "manager")
	sessionID := buildSessionID(t, env, token)

	resp := env.do(t, http.MethodPost, "/api/v1/ledger/sessions/"+sessionID+"/requests/reject", token, map[string]string{
		"employee_id": "EMP002",
		"date":        "2024-06-04",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	envelope := decodeEnvelope(t, resp)
	data := envelope["data"].(map[string]interface{})
	assert.Equal(t, "MISSING", data["status"])
	assert.Equal(t, "REJECTED", data["request_state"])
}

func TestAPI_ApproveForbiddenForViewer(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	manager := env.token(t, "manager")
	viewer := env.token(t, "viewer")
	sessionID := buildSessionID(t, env, manager)

	resp := env.do(t, http.MethodPost, "/api/v1/ledger/sessions/"+sessionID+"/requests/approve", viewer, map[string]string{
		"employee_id": "EMP001",
		"date":        "2024-06-03",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// Read access stays open to viewers.
	resp = env.do(t, http.MethodGet, "/api/v1/ledger/sessions/"+sessionID+"/requests", viewer, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	envelope := decodeEnvelope(t, resp)
	data := envelope["data"].(map[string]interface{})
	assert.Equal(t, float64(50), data["total_count"]) // 2 employees x 25 days
}

func TestAPI_Summary(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	token := env.token(t, "manager")
	sessionID := buildSessionID(t, env, token)

	resp := env.do(t, http.MethodGet, "/api/v1/ledger/sessions/"+sessionID+"/summary", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	envelope := decodeEnvelope(t, resp)
	data := envelope["data"].(map[string]interface{})
	assert.Equal(t, float64(50), data["total"])
	assert.Equal(t, float64(50), data["missing"])
	assert.Equal(t, float64(0), data["present"])
}

func TestAPI_Export(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	token := env.token(t, "manager")
	sessionID := buildSessionID(t, env, token)

	resp := env.do(t, http.MethodGet, "/api/v1/ledger/sessions/"+sessionID+"/export", token, nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, "text/csv", resp.Header.Get("Content-Type"))
	assert.Equal(t, `attachment; filename="IT_attendance_2024-06_to_2024-06.csv"`, resp.Header.Get("Content-Disposition"))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(body)), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "EmpID,Name,Designation,2024-06-01,2024-06-03"))
	assert.True(t, strings.HasPrefix(lines[1], "EMP001,Aarav Reddy,Developer,M,M"))
}

func TestAPI_Export_EmptyPage(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	token := env.token(t, "manager")
	sessionID := buildSessionID(t, env, token)

	resp := env.do(t, http.MethodGet, "/api/v1/ledger/sessions/"+sessionID+"/export?search=zzz", token, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAPI_PageOutOfRange(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	token := env.token(t, "manager")
	sessionID := buildSessionID(t, env, token)

	resp := env.do(t, http.MethodGet, "/api/v1/ledger/sessions/"+sessionID+"/entries?page=9", token, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAPI_SessionNotFound(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	token := env.token(t, "manager")

	resp := env.do(t, http.MethodGet, "/api/v1/ledger/sessions/nope/entries", token, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAPI_DeleteSession(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	token := env.token(t, "manager")
	sessionID := buildSessionID(t, env, token)

	resp := env.do(t, http.MethodDelete, "/api/v1/ledger/sessions/"+sessionID, token, nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = env.do(t, http.MethodGet, fmt.Sprintf("/api/v1/ledger/sessions/%s", sessionID), token, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAPI_EmployeeRoutes(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	token := env.token(t, "viewer")

	resp := env.do(t, http.MethodGet, "/api/v1/employees/departments", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	envelope := decodeEnvelope(t, resp)
	assert.Equal(t, []interface{}{"IT"}, envelope["data"])

	resp = env.do(t, http.MethodGet, "/api/v1/employees?department=IT", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	envelope = decodeEnvelope(t, resp)
	assert.Len(t, envelope["data"].([]interface{}), 2)

	// Missing the department query parameter is a caller error.
	resp = env.do(t, http.MethodGet, "/api/v1/employees", token, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
