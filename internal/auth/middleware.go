package auth

import (
	"net/http"
	"strings"

	"podcastflow-backend/internal/database/models"
	"podcastflow-backend/internal/tenant"

	"github.com/gin-gonic/gin"
)

// Context keys set by the middleware for downstream handlers
const (
	ContextKeyClaims = "auth_claims"
	ContextKeyTenant = "auth_tenant"
)

// cookieName is the fallback token location for browser clients
const cookieName = "auth_token"

// Middleware authenticates requests and resolves the caller's tenant
type Middleware struct {
	service  *Service
	resolver *tenant.Resolver
}

// NewMiddleware creates the auth middleware
func NewMiddleware(service *Service, resolver *tenant.Resolver) *Middleware {
	return &Middleware{service: service, resolver: resolver}
}

// RequireAuth rejects requests without a valid token. The token is read from
// the Authorization header, falling back to the auth cookie.
func (m *Middleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing credentials"})
			return
		}

		claims, err := m.service.Verify(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		tn, err := m.resolver.Resolve(claims.OrganizationID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "organization not found"})
			return
		}

		c.Set(ContextKeyClaims, claims)
		c.Set(ContextKeyTenant, *tn)
		c.Set("email", claims.Email)
		c.Set("organization_id", claims.OrganizationID.String())
		c.Next()
	}
}

// RequireRole rejects authenticated requests whose role is not in the allow
// list. Master accounts pass every role check.
func (m *Middleware) RequireRole(roles ...models.UserRole) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[string(r)] = true
	}
	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing credentials"})
			return
		}
		if claims.Role != string(models.UserRoleMaster) && !allowed[claims.Role] {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient role"})
			return
		}
		c.Next()
	}
}

// GetClaims returns the authenticated claims, or nil outside RequireAuth
func GetClaims(c *gin.Context) *Claims {
	v, ok := c.Get(ContextKeyClaims)
	if !ok {
		return nil
	}
	claims, _ := v.(*Claims)
	return claims
}

// GetTenant returns the resolved tenant for the authenticated request
func GetTenant(c *gin.Context) (tenant.Tenant, bool) {
	v, ok := c.Get(ContextKeyTenant)
	if !ok {
		return tenant.Tenant{}, false
	}
	tn, ok := v.(tenant.Tenant)
	return tn, ok
}

func extractToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	if cookie, err := c.Cookie(cookieName); err == nil {
		return cookie
	}
	return ""
}
