package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hugh/taskhub/internal/api/dto"
	"github.com/hugh/taskhub/internal/auth"
	"github.com/hugh/taskhub/internal/tenancy"
	"github.com/hugh/taskhub/internal/testutil"
	"github.com/hugh/taskhub/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestRouter(t *testing.T) *Router {
	t.Helper()
	db := testutil.SetupTestDB(t)
	jwtService := testutil.CreateTestJWTService()
	logger := util.DiscardLogger()

	return NewRouter(RouterConfig{
		DB:             db,
		Logger:         logger,
		JWTService:     jwtService,
		AuthService:    auth.NewService(db, jwtService, auth.NewHasher(bcrypt.MinCost)),
		TenancyService: tenancy.NewService(tenancy.NewGormRepository(db), logger),
	})
}

func call(t *testing.T, router http.Handler, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, testutil.AuthenticatedRequest(t, method, path, body, token))
	return rr
}

func registerAndLogin(t *testing.T, router http.Handler, name, email string) string {
	t.Helper()
	creds := map[string]string{"name": name, "email": email, "password": "correct-horse"}
	testutil.AssertStatus(t, call(t, router, "POST", "/auth/register", creds, ""), http.StatusOK)

	rr := call(t, router, "POST", "/auth/login", creds, "")
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp dto.LoginResponse
	testutil.ParseJSONResponse(t, rr, &resp)
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestRouter_TenantLifecycle(t *testing.T) {
	router := newTestRouter(t)

	alice := registerAndLogin(t, router, "Alice", "alice@example.com")

	rr := call(t, router, "POST", "/tenant/", map[string]string{"name": "Acme"}, alice)
	testutil.AssertStatus(t, rr, http.StatusOK)
	var created dto.CreateTenantResponse
	testutil.ParseJSONResponse(t, rr, &created)
	require.NotEmpty(t, created.TenantID)

	rr = call(t, router, "GET", "/tenant/my", nil, alice)
	testutil.AssertStatus(t, rr, http.StatusOK)
	var mine dto.MyTenantsResponse
	testutil.ParseJSONResponse(t, rr, &mine)
	require.Len(t, mine.Tenants, 1)
	assert.Equal(t, created.TenantID, mine.Tenants[0].ID)
	assert.EqualValues(t, "ADMIN", mine.Tenants[0].Role)

	launch := map[string]string{"name": "Launch", "tenantId": created.TenantID}
	rr = call(t, router, "POST", "/project/", launch, alice)
	testutil.AssertStatus(t, rr, http.StatusCreated)

	bob := registerAndLogin(t, router, "Bob", "bob@example.com")

	rr = call(t, router, "POST", "/project/", launch, bob)
	testutil.AssertStatus(t, rr, http.StatusForbidden)

	rr = call(t, router, "POST", "/tenant/join", map[string]string{"tenantId": created.TenantID}, bob)
	testutil.AssertStatus(t, rr, http.StatusCreated)

	rr = call(t, router, "GET", "/project/list/"+created.TenantID, nil, bob)
	testutil.AssertStatus(t, rr, http.StatusOK)
	var projects []dto.ProjectDTO
	testutil.ParseJSONResponse(t, rr, &projects)
	require.Len(t, projects, 1)
	assert.Equal(t, "Launch", projects[0].Name)

	rr = call(t, router, "POST", "/project/", map[string]string{"name": "Sequel", "tenantId": created.TenantID}, bob)
	testutil.AssertStatus(t, rr, http.StatusForbidden)

	rr = call(t, router, "POST", "/task/", map[string]string{"projectId": projects[0].ID, "title": "Announce"}, bob)
	testutil.AssertStatus(t, rr, http.StatusCreated)
	var task dto.CreateTaskResponse
	testutil.ParseJSONResponse(t, rr, &task)

	rr = call(t, router, "PUT", "/task/"+task.Task.ID, map[string]string{"status": "done"}, alice)
	testutil.AssertStatus(t, rr, http.StatusOK)

	rr = call(t, router, "GET", "/task/"+projects[0].ID, nil, alice)
	testutil.AssertStatus(t, rr, http.StatusOK)
	var tasks []dto.TaskDTO
	testutil.ParseJSONResponse(t, rr, &tasks)
	require.Len(t, tasks, 1)
	assert.Equal(t, "done", tasks[0].Status)
}

func TestRouter_PublicAndProtected(t *testing.T) {
	router := newTestRouter(t)

	rr := call(t, router, "GET", "/", nil, "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Hello World", rr.Body.String())

	rr = call(t, router, "GET", "/health", nil, "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.NotEmpty(t, rr.Header().Get("X-Request-Id"))

	protected := []struct {
		method string
		path   string
	}{
		{"GET", "/auth/me"},
		{"GET", "/tenant/my"},
		{"POST", "/tenant/"},
		{"POST", "/tenant/join"},
		{"POST", "/project/"},
		{"GET", "/project/list/abc"},
		{"POST", "/task/"},
		{"GET", "/task/abc"},
		{"PUT", "/task/abc"},
	}
	for _, p := range protected {
		t.Run(p.method+" "+p.path, func(t *testing.T) {
			rr := call(t, router, p.method, p.path, nil, "")
			assert.Equal(t, http.StatusUnauthorized, rr.Code)

			rr = call(t, router, p.method, p.path, nil, "garbage")
			assert.Equal(t, http.StatusForbidden, rr.Code)
		})
	}
}

func TestRouter_CORS(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest("OPTIONS", "/tenant/my", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", "GET")
	req.Header.Set("Access-Control-Request-Headers", "Authorization")

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
}
