package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/devpbeat/reservio/internal/domain"
	"github.com/devpbeat/reservio/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/ginext"
)

func tenantTestRouter(t *testing.T, tenants *mocks.MockTenantRepo) http.Handler {
	t.Helper()

	r := ginext.New("test")
	r.Use(ResolveTenant(tenants))
	r.GET("/ping", func(c *ginext.Context) {
		tenant, ok := TenantFrom(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, ginext.H{"error": "tenant not resolved"})
			return
		}
		c.JSON(http.StatusOK, ginext.H{"tenant": tenant.Slug})
	})
	return r
}

func TestResolveTenant_MissingHeader(t *testing.T) {
	r := tenantTestRouter(t, mocks.NewMockTenantRepo(t))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestResolveTenant_UnknownSlug(t *testing.T) {
	tenants := mocks.NewMockTenantRepo(t)
	tenants.EXPECT().GetBySlug(mock.Anything, "ghost").Return(nil, domain.ErrTenantNotFound)

	r := tenantTestRouter(t, tenants)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(TenantHeader, "ghost")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestResolveTenant_Success(t *testing.T) {
	tenants := mocks.NewMockTenantRepo(t)
	tenants.EXPECT().GetBySlug(mock.Anything, "demo").
		Return(&domain.Tenant{ID: "t1", Slug: "demo", IsActive: true}, nil)

	r := tenantTestRouter(t, tenants)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(TenantHeader, "demo")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"demo"`)
}
