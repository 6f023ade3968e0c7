package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"campus-market/internal/data/entity"
	"campus-market/pkg/jwtauth"
	"campus-market/pkg/utils"

	"go.uber.org/zap"
)

type fakeUserRepo struct {
	users map[int64]entity.User
}

func (f *fakeUserRepo) Create(context.Context, *entity.User) error { return nil }

func (f *fakeUserRepo) FindByID(_ context.Context, id int64) (*entity.User, error) {
	if user, ok := f.users[id]; ok {
		return &user, nil
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByEmail(context.Context, string) (*entity.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) UpdateProfile(context.Context, *entity.User) error { return nil }

func (f *fakeUserRepo) UpdateAvatar(context.Context, int64, string) error { return nil }

func testTokens() *jwtauth.TokenService {
	return jwtauth.NewTokenService(utils.JWTConfig{Secret: "test-secret", ExpiryHours: 24})
}

func okHandler(called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticateMissingHeader(t *testing.T) {
	var called bool
	handler := Authenticate(testTokens(), zap.NewNop())(okHandler(&called))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Missing authorization token") {
		t.Errorf("body = %s", rec.Body.String())
	}
	if called {
		t.Error("handler reached without a token")
	}
}

func TestAuthenticateBadFormat(t *testing.T) {
	var called bool
	handler := Authenticate(testTokens(), zap.NewNop())(okHandler(&called))

	for _, header := range []string{"token-only", "Basic abc", "Bearer a b"} {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("Authorization", header)
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("header %q: status = %d", header, rec.Code)
		}
	}
	if called {
		t.Error("handler reached with a malformed header")
	}
}

func TestAuthenticateInvalidToken(t *testing.T) {
	var called bool
	handler := Authenticate(testTokens(), zap.NewNop())(okHandler(&called))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Invalid token") {
		t.Errorf("body = %s", rec.Body.String())
	}
	if called {
		t.Error("handler reached with an invalid token")
	}
}

func TestAuthenticatePopulatesContext(t *testing.T) {
	tokens := testTokens()
	token, err := tokens.Issue(42, "somchai@go.buu.ac.th")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	var gotID int64
	var gotEmail string
	handler := Authenticate(tokens, zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, _ = utils.GetUserIDFromContext(r.Context())
		gotEmail, _ = utils.GetEmailFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if gotID != 42 || gotEmail != "somchai@go.buu.ac.th" {
		t.Errorf("claims in context = %d, %q", gotID, gotEmail)
	}
}

func authedRequest(userID int64) *http.Request {
	req := httptest.NewRequest("POST", "/product", nil)
	return req.WithContext(utils.SetUserContext(req.Context(), userID, "a@go.buu.ac.th"))
}

func TestRequireActive(t *testing.T) {
	repo := &fakeUserRepo{users: map[int64]entity.User{
		1: {ID: 1, Status: entity.StatusActive, Role: entity.RoleUser},
		2: {ID: 2, Status: entity.StatusInactive, Role: entity.RoleUser},
	}}

	var called bool
	handler := RequireActive(repo, zap.NewNop())(okHandler(&called))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, authedRequest(1))
	if rec.Code != http.StatusOK || !called {
		t.Errorf("active account: status = %d, called = %v", rec.Code, called)
	}

	for _, userID := range []int64{2, 99} { // deactivated and missing
		called = false
		rec = httptest.NewRecorder()
		handler.ServeHTTP(rec, authedRequest(userID))
		if rec.Code != http.StatusForbidden || called {
			t.Errorf("user %d: status = %d, called = %v", userID, rec.Code, called)
		}
	}
}

func TestRequireActiveWithoutClaims(t *testing.T) {
	repo := &fakeUserRepo{users: map[int64]entity.User{}}

	var called bool
	handler := RequireActive(repo, zap.NewNop())(okHandler(&called))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("POST", "/product", nil))

	if rec.Code != http.StatusUnauthorized || called {
		t.Errorf("status = %d, called = %v", rec.Code, called)
	}
}

func TestRequireRoleMismatch(t *testing.T) {
	repo := &fakeUserRepo{users: map[int64]entity.User{
		1: {ID: 1, Status: entity.StatusActive, Role: entity.RoleUser},
	}}

	var called bool
	handler := RequireRole(repo, entity.RoleAdmin, zap.NewNop())(okHandler(&called))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, authedRequest(1))

	if rec.Code != http.StatusForbidden || called {
		t.Errorf("status = %d, called = %v", rec.Code, called)
	}
	if !strings.Contains(rec.Body.String(), "Insufficient role") {
		t.Errorf("body = %s", rec.Body.String())
	}
}
