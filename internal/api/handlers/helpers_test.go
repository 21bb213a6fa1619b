package handlers_test

import (
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/hugh/taskhub/internal/api/handlers"
	"github.com/hugh/taskhub/internal/api/middleware"
	"github.com/hugh/taskhub/internal/tenancy"
	"github.com/hugh/taskhub/internal/testutil"
	"github.com/hugh/taskhub/pkg/util"
)

// setupTenancyRouter mounts the tenant, project and task handlers behind
// bearer auth.
func setupTenancyRouter(t *testing.T) (*chi.Mux, *testutil.TestSetup) {
	t.Helper()
	tc := testutil.NewTestContext(t)

	logger := util.DiscardLogger()
	svc := tenancy.NewService(tenancy.NewGormRepository(tc.DB), logger)
	tenants := handlers.NewTenantHandler(svc, logger)
	projects := handlers.NewProjectHandler(svc, logger)
	tasks := handlers.NewTaskHandler(svc, logger)

	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(tc.JWTService))

		r.Get("/tenant/my", tenants.My)
		r.Post("/tenant/", tenants.Create)
		r.Post("/tenant/join", tenants.Join)

		r.Post("/project/", projects.Create)
		r.Get("/project/list/{tenantId}", projects.List)

		r.Post("/task/", tasks.Create)
		r.Get("/task/{projectId}", tasks.List)
		r.Put("/task/{taskId}", tasks.Update)
	})

	return r, tc
}

func do(t *testing.T, router *chi.Mux, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := testutil.AuthenticatedRequest(t, method, path, body, token)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}
