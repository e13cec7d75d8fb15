package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	httpctx "github.com/markethub/catalog-server/internal/api/http/context"
	"github.com/markethub/catalog-server/internal/api/http/handler"
	"github.com/markethub/catalog-server/internal/api/http/middleware"
	"github.com/markethub/catalog-server/internal/mocks"
	"github.com/markethub/catalog-server/internal/model"
	"github.com/markethub/catalog-server/internal/testutil"
)

type routerMocks struct {
	auth     *mocks.AuthService
	users    *mocks.UserService
	products *mocks.ProductService
	resolver *mocks.SessionResolver
	pinger   *mocks.Pinger
}

func newTestRouter(t *testing.T) (http.Handler, routerMocks) {
	t.Helper()

	m := routerMocks{
		auth:     &mocks.AuthService{},
		users:    &mocks.UserService{},
		products: &mocks.ProductService{},
		resolver: &mocks.SessionResolver{},
		pinger:   &mocks.Pinger{},
	}

	log := testutil.MakeNoopLogger()
	ctxMgr := httpctx.NewManager()

	handlers := Handlers{
		Auth:    handler.NewAuth(m.auth, log),
		User:    handler.NewUser(m.users, ctxMgr, log),
		Product: handler.NewProduct(m.products, ctxMgr, log),
		Health:  handler.NewHealth(m.pinger),
	}

	engine := New(handlers, middleware.NewAuthenticate(m.resolver, ctxMgr, log), middleware.NewLogging(log), log)
	return engine, m
}

func TestRouter_PublicRoutes(t *testing.T) {
	engine, m := newTestRouter(t)

	m.pinger.On("Ping", mock.Anything).Return(nil)
	m.products.On("List", mock.Anything, mock.Anything).Return(model.ProductPage{}, nil)

	for _, path := range []string{"/health", "/api/products"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestRouter_UsersRequireAuthentication(t *testing.T) {
	engine, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_UserCreateRequiresAdmin(t *testing.T) {
	engine, m := newTestRouter(t)

	user := model.User{ID: uuid.New(), Role: model.RoleUser}
	m.resolver.On("Resolve", mock.Anything, "user-token").Return(user, true)

	body := `{"name":"N","email":"n@b.c","password":"password1","role":"USER"}`
	req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer user-token")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRouter_ProductCreateIsUserOnly(t *testing.T) {
	engine, m := newTestRouter(t)

	admin := model.User{ID: uuid.New(), Role: model.RoleAdmin}
	m.resolver.On("Resolve", mock.Anything, "admin-token").Return(admin, true)

	body := `{"name":"W","price":1,"quantity":1}`
	req := httptest.NewRequest(http.MethodPost, "/api/products", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer admin-token")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	// Products are created by their owners; admins manage, not own.
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRouter_PanicIsHidden(t *testing.T) {
	engine, m := newTestRouter(t)

	m.products.On("List", mock.Anything, mock.Anything).Panic("boom")

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"resource not found","status":404}`, rec.Body.String())
}

func TestRouter_HealthUnavailable(t *testing.T) {
	engine, m := newTestRouter(t)

	m.pinger.On("Ping", mock.Anything).Return(assert.AnError)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
