package middleware

import (
	"context"
	"net/http"

	"github.com/devpbeat/reservio/internal/domain"
	"github.com/wb-go/wbf/ginext"
)

const (
	TenantHeader = "X-Tenant-Slug"

	// TenantKey is the context key the resolved tenant is stored under.
	TenantKey = "tenant"
)

type tenantResolver interface {
	GetBySlug(ctx context.Context, slug string) (*domain.Tenant, error)
}

// ResolveTenant loads the tenant named by the X-Tenant-Slug header and aborts
// with 404 when it is missing, unknown or inactive.
func ResolveTenant(tenants tenantResolver) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		slug := c.GetHeader(TenantHeader)
		if slug == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest,
				ginext.H{"error": "missing " + TenantHeader + " header"},
			)
			return
		}

		tenant, err := tenants.GetBySlug(c.Request.Context(), slug)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusNotFound,
				ginext.H{"error": domain.ErrTenantNotFound.Error()},
			)
			return
		}

		c.Set(TenantKey, tenant)
		c.Next()
	}
}

// TenantFrom returns the tenant stored by ResolveTenant.
func TenantFrom(c *ginext.Context) (*domain.Tenant, bool) {
	v, ok := c.Get(TenantKey)
	if !ok {
		return nil, false
	}
	t, ok := v.(*domain.Tenant)
	return t, ok
}
