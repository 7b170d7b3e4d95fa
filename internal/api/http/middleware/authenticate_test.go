package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apicontext "github.com/bookline/catalog/internal/api/http/context"
	"github.com/bookline/catalog/internal/model"
	"github.com/bookline/catalog/internal/testutil"
)

type mockResolver struct {
	mock.Mock
}

func (m *mockResolver) ResolveIdentity(ctx context.Context, token string) (model.Account, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(model.Account), args.Error(1)
}

func setupAuthenticated(t *testing.T, resolver IdentityResolver) (*gin.Engine, *model.Account, *bool) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctxMgr := apicontext.NewManager()
	authenticate := NewAuthenticate(resolver, ctxMgr, testutil.MakeNoopLogger())

	var seen model.Account
	var reached bool

	engine := gin.New()
	engine.GET("/protected", authenticate.Handle, func(c *gin.Context) {
		seen, _ = ctxMgr.GetAccountFromContext(c.Request.Context())
		reached = true
		c.Status(http.StatusOK)
	})

	return engine, &seen, &reached
}

func TestAuthenticate_ValidToken(t *testing.T) {
	account := model.Account{ID: uuid.New(), Email: "reader@example.com"}

	resolver := new(mockResolver)
	resolver.On("ResolveIdentity", mock.Anything, "valid-token").Return(account, nil)

	engine, seen, reached := setupAuthenticated(t, resolver)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, *reached)
	assert.Equal(t, account, *seen)
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	resolver := new(mockResolver)

	engine, _, reached := setupAuthenticated(t, resolver)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, *reached)
	assert.JSONEq(t, `{"error":"could not validate credentials"}`, rec.Body.String())
	resolver.AssertNotCalled(t, "ResolveIdentity", mock.Anything, mock.Anything)
}

func TestAuthenticate_MalformedHeader(t *testing.T) {
	resolver := new(mockResolver)

	engine, _, reached := setupAuthenticated(t, resolver)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token abc")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, *reached)
}

func TestAuthenticate_ResolutionFails(t *testing.T) {
	resolver := new(mockResolver)
	resolver.On("ResolveIdentity", mock.Anything, "bad-token").
		Return(model.Account{}, model.ErrAuthenticationFailed)

	engine, _, reached := setupAuthenticated(t, resolver)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, *reached)
	assert.JSONEq(t, `{"error":"could not validate credentials"}`, rec.Body.String())
}
