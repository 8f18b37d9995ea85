package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/mohamed-achich/api-gateway/internal/gateway/domain"
	gatewayhttp "github.com/mohamed-achich/api-gateway/internal/gateway/http"
	"github.com/mohamed-achich/api-gateway/internal/gateway/service"
	"github.com/mohamed-achich/api-gateway/pkg/httpx"
	"github.com/mohamed-achich/api-gateway/pkg/jwtx"
)

type fakeTokens struct {
	pair       domain.TokenPair
	refreshErr error
	logoutErr  error
	loggedOut  []string
}

func (f *fakeTokens) Login(context.Context, domain.Identity) (domain.TokenPair, error) {
	return f.pair, nil
}

func (f *fakeTokens) Refresh(context.Context, string) (domain.TokenPair, error) {
	if f.refreshErr != nil {
		return domain.TokenPair{}, f.refreshErr
	}
	return f.pair, nil
}

func (f *fakeTokens) Logout(_ context.Context, userID string) error {
	f.loggedOut = append(f.loggedOut, userID)
	return f.logoutErr
}

type fakeAccounts struct {
	identity    *domain.Identity
	validateErr error
	registerErr error
}

func (f *fakeAccounts) Validate(context.Context, string, string) (*domain.Identity, error) {
	return f.identity, f.validateErr
}

func (f *fakeAccounts) Register(_ context.Context, reg domain.Registration) (domain.Identity, error) {
	if f.registerErr != nil {
		return domain.Identity{}, f.registerErr
	}
	return domain.Identity{ID: "user-new", Username: reg.Username, Roles: []string{"user"}}, nil
}

type fakeProducts struct {
	products map[string]domain.Product
	err      error
}

func (f *fakeProducts) List(context.Context) ([]domain.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]domain.Product, 0, len(f.products))
	for _, p := range f.products {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProducts) Get(_ context.Context, id string) (domain.Product, error) {
	if f.err != nil {
		return domain.Product{}, f.err
	}
	p, ok := f.products[id]
	if !ok {
		return domain.Product{}, status.Error(codes.NotFound, "product not found")
	}
	return p, nil
}

func (f *fakeProducts) Create(_ context.Context, p domain.Product) (domain.Product, error) {
	if f.err != nil {
		return domain.Product{}, f.err
	}
	p.ID = "prod-1"
	return p, nil
}

func (f *fakeProducts) Update(_ context.Context, p domain.Product) (domain.Product, error) {
	return p, f.err
}

func (f *fakeProducts) Remove(context.Context, string) error {
	return f.err
}

type fakeOrders struct {
	orders map[string]domain.Order
	err    error
}

func (f *fakeOrders) ListByUser(_ context.Context, userID string) ([]domain.Order, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []domain.Order
	for _, o := range f.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOrders) Get(_ context.Context, id string) (domain.Order, error) {
	if f.err != nil {
		return domain.Order{}, f.err
	}
	o, ok := f.orders[id]
	if !ok {
		return domain.Order{}, status.Error(codes.NotFound, "order not found")
	}
	return o, nil
}

func (f *fakeOrders) Create(_ context.Context, userID string, items []domain.OrderItem) (domain.Order, error) {
	if f.err != nil {
		return domain.Order{}, f.err
	}
	return domain.Order{ID: "order-new", UserID: userID, Status: "pending", Items: items}, nil
}

func (f *fakeOrders) UpdateStatus(_ context.Context, id, s string) (domain.Order, error) {
	o := f.orders[id]
	o.Status = s
	return o, f.err
}

func (f *fakeOrders) Remove(context.Context, string) error {
	return f.err
}

type noRevocations struct{}

func (noRevocations) Contains(context.Context, string) (bool, error) { return false, nil }

type openCounter struct{}

func (openCounter) Increment(context.Context, string, time.Duration) (int64, error) { return 1, nil }

type env struct {
	issuer   *jwtx.Issuer
	tokens   *fakeTokens
	accounts *fakeAccounts
	products *fakeProducts
	orders   *fakeOrders
	ready    func(context.Context) error
}

func newEnv(t *testing.T) *env {
	t.Helper()

	issuer, err := jwtx.NewIssuer(jwtx.Config{
		Issuer:        "api-gateway",
		AccessSecret:  []byte("access-secret"),
		RefreshSecret: []byte("refresh-secret"),
		ServiceSecret: []byte("service-secret"),
	})
	require.NoError(t, err)

	identity := domain.Identity{ID: "user-1", Username: "alice", Roles: []string{"user"}}
	return &env{
		issuer:   issuer,
		tokens:   &fakeTokens{pair: domain.TokenPair{AccessToken: "at", RefreshToken: "rt"}},
		accounts: &fakeAccounts{identity: &identity},
		products: &fakeProducts{products: map[string]domain.Product{
			"p1": {ID: "p1", Name: "Widget", Price: 9.99, Quantity: 3},
		}},
		orders: &fakeOrders{orders: map[string]domain.Order{
			"o1": {ID: "o1", UserID: "user-1", Status: "pending", Total: 9.99},
			"o2": {ID: "o2", UserID: "user-2", Status: "pending", Total: 1.50},
		}},
	}
}

func (e *env) router(t *testing.T) http.Handler {
	t.Helper()

	return gatewayhttp.NewRouter(nil, gatewayhttp.Dependencies{
		Tokens:   e.tokens,
		Accounts: e.accounts,
		Products: e.products,
		Orders:   e.orders,
		Verifier: e.issuer,
		Revoked:  noRevocations{},
		Counter:  openCounter{},
		Ready:    e.ready,
	})
}

func (e *env) bearer(t *testing.T, userID string, roles ...string) string {
	t.Helper()

	token, err := e.issuer.IssueUser(jwtx.KindAccess, userID, "alice", roles)
	require.NoError(t, err)
	return "Bearer " + token
}

func do(h http.Handler, method, path, body, authz string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.RemoteAddr = "10.0.0.1:1234"
	if authz != "" {
		req.Header.Set("Authorization", authz)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func errBody(t *testing.T, rec *httptest.ResponseRecorder) httpx.ErrorResponse {
	t.Helper()

	var body httpx.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestRegisterEndpoint(t *testing.T) {
	t.Run("creates and auto-logs-in", func(t *testing.T) {
		e := newEnv(t)
		rec := do(e.router(t), http.MethodPost, "/auth/register",
			`{"username":"bob","email":"bob@example.com","password":"pw"}`, "")

		require.Equal(t, http.StatusCreated, rec.Code)

		var pair domain.TokenPair
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &pair))
		require.Equal(t, "at", pair.AccessToken)
	})

	t.Run("duplicate username maps to conflict", func(t *testing.T) {
		e := newEnv(t)
		e.accounts.registerErr = status.Error(codes.AlreadyExists, "Username taken")

		rec := do(e.router(t), http.MethodPost, "/auth/register",
			`{"username":"alice","email":"a@example.com","password":"pw"}`, "")

		require.Equal(t, http.StatusConflict, rec.Code)
		body := errBody(t, rec)
		require.Equal(t, "Username taken", body.Message)
		require.Equal(t, "/auth/register", body.Path)
	})

	t.Run("missing fields", func(t *testing.T) {
		e := newEnv(t)
		rec := do(e.router(t), http.MethodPost, "/auth/register", `{"username":"bob"}`, "")
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("invalid body", func(t *testing.T) {
		e := newEnv(t)
		rec := do(e.router(t), http.MethodPost, "/auth/register", `{`, "")
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestLoginEndpoint(t *testing.T) {
	t.Run("valid credentials", func(t *testing.T) {
		e := newEnv(t)
		rec := do(e.router(t), http.MethodPost, "/auth/login",
			`{"username":"alice","password":"pw"}`, "")

		require.Equal(t, http.StatusOK, rec.Code)

		var pair domain.TokenPair
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &pair))
		require.Equal(t, "rt", pair.RefreshToken)
	})

	t.Run("wrong credentials", func(t *testing.T) {
		e := newEnv(t)
		e.accounts.identity = nil

		rec := do(e.router(t), http.MethodPost, "/auth/login",
			`{"username":"alice","password":"wrong"}`, "")

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Equal(t, "invalid credentials", errBody(t, rec).Message)
	})

	t.Run("directory outage is 503 not 401", func(t *testing.T) {
		e := newEnv(t)
		e.accounts.identity = nil
		e.accounts.validateErr = service.ErrDirectoryUnavailable

		rec := do(e.router(t), http.MethodPost, "/auth/login",
			`{"username":"alice","password":"pw"}`, "")

		require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("missing fields", func(t *testing.T) {
		e := newEnv(t)
		rec := do(e.router(t), http.MethodPost, "/auth/login", `{"username":"alice"}`, "")
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRefreshEndpoint(t *testing.T) {
	t.Run("valid refresh", func(t *testing.T) {
		e := newEnv(t)
		rec := do(e.router(t), http.MethodPost, "/auth/refresh", `{"refresh_token":"rt"}`, "")
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("invalid refresh", func(t *testing.T) {
		e := newEnv(t)
		e.tokens.refreshErr = service.ErrInvalidRefresh

		rec := do(e.router(t), http.MethodPost, "/auth/refresh", `{"refresh_token":"stale"}`, "")

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Equal(t, "invalid refresh token", errBody(t, rec).Message)
	})

	t.Run("directory outage", func(t *testing.T) {
		e := newEnv(t)
		e.tokens.refreshErr = service.ErrDirectoryUnavailable

		rec := do(e.router(t), http.MethodPost, "/auth/refresh", `{"refresh_token":"rt"}`, "")
		require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("missing token", func(t *testing.T) {
		e := newEnv(t)
		rec := do(e.router(t), http.MethodPost, "/auth/refresh", `{}`, "")
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestLogoutEndpoint(t *testing.T) {
	t.Run("authenticated logout", func(t *testing.T) {
		e := newEnv(t)
		rec := do(e.router(t), http.MethodPost, "/auth/logout", "", e.bearer(t, "user-1"))

		require.Equal(t, http.StatusNoContent, rec.Code)
		require.Equal(t, []string{"user-1"}, e.tokens.loggedOut)
	})

	t.Run("requires a token", func(t *testing.T) {
		e := newEnv(t)
		rec := do(e.router(t), http.MethodPost, "/auth/logout", "", "")
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("store failure", func(t *testing.T) {
		e := newEnv(t)
		e.tokens.logoutErr = errors.New("redis down")

		rec := do(e.router(t), http.MethodPost, "/auth/logout", "", e.bearer(t, "user-1"))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestProductEndpoints(t *testing.T) {
	t.Run("list requires auth", func(t *testing.T) {
		e := newEnv(t)
		rec := do(e.router(t), http.MethodGet, "/products", "", "")
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("list", func(t *testing.T) {
		e := newEnv(t)
		rec := do(e.router(t), http.MethodGet, "/products", "", e.bearer(t, "user-1"))

		require.Equal(t, http.StatusOK, rec.Code)

		var products []domain.Product
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
		require.Len(t, products, 1)
	})

	t.Run("missing product translates to 404", func(t *testing.T) {
		e := newEnv(t)
		rec := do(e.router(t), http.MethodGet, "/products/nope", "", e.bearer(t, "user-1"))

		require.Equal(t, http.StatusNotFound, rec.Code)
		body := errBody(t, rec)
		require.Equal(t, "product not found", body.Message)
		require.Equal(t, "/products/nope", body.Path)
	})

	t.Run("backend outage translates to 503", func(t *testing.T) {
		e := newEnv(t)
		e.products.err = status.Error(codes.Unavailable, "connection refused")

		rec := do(e.router(t), http.MethodGet, "/products", "", e.bearer(t, "user-1"))
		require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("create", func(t *testing.T) {
		e := newEnv(t)
		rec := do(e.router(t), http.MethodPost, "/products",
			`{"name":"Gadget","price":19.99,"quantity":5}`, e.bearer(t, "user-1"))

		require.Equal(t, http.StatusCreated, rec.Code)

		var p domain.Product
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
		require.Equal(t, "prod-1", p.ID)
	})

	t.Run("create requires a name", func(t *testing.T) {
		e := newEnv(t)
		rec := do(e.router(t), http.MethodPost, "/products", `{"price":1}`, e.bearer(t, "user-1"))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("remove", func(t *testing.T) {
		e := newEnv(t)
		rec := do(e.router(t), http.MethodDelete, "/products/p1", "", e.bearer(t, "user-1"))
		require.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestOrderEndpoints(t *testing.T) {
	t.Run("list is scoped to the caller", func(t *testing.T) {
		e := newEnv(t)
		rec := do(e.router(t), http.MethodGet, "/orders", "", e.bearer(t, "user-1"))

		require.Equal(t, http.StatusOK, rec.Code)

		var orders []domain.Order
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &orders))
		require.Len(t, orders, 1)
		require.Equal(t, "o1", orders[0].ID)
	})

	t.Run("owner can fetch", func(t *testing.T) {
		e := newEnv(t)
		rec := do(e.router(t), http.MethodGet, "/orders/o1", "", e.bearer(t, "user-1"))
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("foreign order is forbidden", func(t *testing.T) {
		e := newEnv(t)
		rec := do(e.router(t), http.MethodGet, "/orders/o2", "", e.bearer(t, "user-1"))
		require.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("admin can fetch any order", func(t *testing.T) {
		e := newEnv(t)
		rec := do(e.router(t), http.MethodGet, "/orders/o2", "", e.bearer(t, "user-1", "admin"))
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("create stamps the caller", func(t *testing.T) {
		e := newEnv(t)
		rec := do(e.router(t), http.MethodPost, "/orders",
			`{"items":[{"product_id":"p1","quantity":2,"price":9.99}]}`, e.bearer(t, "user-1"))

		require.Equal(t, http.StatusCreated, rec.Code)

		var o domain.Order
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &o))
		require.Equal(t, "user-1", o.UserID)
	})

	t.Run("create rejects empty items", func(t *testing.T) {
		e := newEnv(t)
		rec := do(e.router(t), http.MethodPost, "/orders", `{"items":[]}`, e.bearer(t, "user-1"))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("owner can update status", func(t *testing.T) {
		e := newEnv(t)
		rec := do(e.router(t), http.MethodPut, "/orders/o1/status",
			`{"status":"shipped"}`, e.bearer(t, "user-1"))

		require.Equal(t, http.StatusOK, rec.Code)

		var o domain.Order
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &o))
		require.Equal(t, "shipped", o.Status)
	})

	t.Run("foreign status update is forbidden", func(t *testing.T) {
		e := newEnv(t)
		rec := do(e.router(t), http.MethodPut, "/orders/o2/status",
			`{"status":"shipped"}`, e.bearer(t, "user-1"))
		require.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestHealthEndpoints(t *testing.T) {
	t.Run("livez is unconditional", func(t *testing.T) {
		e := newEnv(t)
		rec := do(e.router(t), http.MethodGet, "/livez", "", "")
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("readyz passes when dependencies answer", func(t *testing.T) {
		e := newEnv(t)
		e.ready = func(context.Context) error { return nil }

		rec := do(e.router(t), http.MethodGet, "/readyz", "", "")
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("readyz fails closed", func(t *testing.T) {
		e := newEnv(t)
		e.ready = func(context.Context) error { return errors.New("redis down") }

		rec := do(e.router(t), http.MethodGet, "/readyz", "", "")
		require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}
