package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"pharmacy-shop/models"

	"github.com/gin-gonic/gin"
)

func authenticated(role models.Role) models.Session {
	return models.AuthenticatedSession(&models.User{ID: 1, Email: "user@example.com", Role: role}, "tok")
}

func TestRequireAuthenticated_Anonymous(t *testing.T) {
	decision := RequireAuthenticated(models.Anonymous())

	if decision.Allowed {
		t.Error("expected anonymous session to be denied")
	}
	if decision.RedirectTo != RedirectSignIn {
		t.Errorf("expected redirect to %q, got %q", RedirectSignIn, decision.RedirectTo)
	}
}

func TestRequireAuthenticated_SignedIn(t *testing.T) {
	decision := RequireAuthenticated(authenticated(models.RoleUser))

	if !decision.Allowed {
		t.Error("expected authenticated session to be allowed")
	}
}

func TestRequireRole_MatchingRole(t *testing.T) {
	decision := RequireRole(authenticated(models.RoleBranch), models.RoleBranch)

	if !decision.Allowed {
		t.Error("expected matching role to be allowed")
	}
}

func TestRequireRole_WrongRoleRedirectsHome(t *testing.T) {
	// An admin asking for the branch dashboard goes home, not to sign-in.
	decision := RequireRole(authenticated(models.RoleAdmin), models.RoleBranch)

	if decision.Allowed {
		t.Error("expected wrong role to be denied")
	}
	if decision.RedirectTo != RedirectHome {
		t.Errorf("expected redirect to %q, got %q", RedirectHome, decision.RedirectTo)
	}
}

func TestRequireRole_AnonymousRedirectsHome(t *testing.T) {
	decision := RequireRole(models.Anonymous(), models.RoleAdmin)

	if decision.Allowed {
		t.Error("expected anonymous session to be denied")
	}
	if decision.RedirectTo != RedirectHome {
		t.Errorf("expected redirect to %q, got %q", RedirectHome, decision.RedirectTo)
	}
}

func TestRoleMiddleware_WrongRoleForbidden(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/branch/dashboard",
		func(c *gin.Context) { c.Set(sessionKey, authenticated(models.RoleAdmin)) },
		RoleMiddleware(models.RoleBranch),
		func(c *gin.Context) { c.JSON(200, gin.H{"success": true}) },
	)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/branch/dashboard", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("expected status 403, got %d", w.Code)
	}
}

func TestRoleMiddleware_MatchingRolePasses(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/branch/dashboard",
		func(c *gin.Context) { c.Set(sessionKey, authenticated(models.RoleBranch)) },
		RoleMiddleware(models.RoleBranch),
		func(c *gin.Context) { c.JSON(200, gin.H{"success": true}) },
	)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/branch/dashboard", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}
}

func TestSessionFrom_MissingSessionIsAnonymous(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	if SessionFrom(c).Authenticated() {
		t.Error("expected anonymous session when none was attached")
	}
}
