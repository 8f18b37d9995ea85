// Package http wires the gateway's external surface: auth endpoints, the
// authenticated catalog/order proxies, and health probes. Handlers stay thin;
// policy lives in the service layer and translation in pkg/grpcx.
package http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/mohamed-achich/api-gateway/internal/gateway/domain"
	"github.com/mohamed-achich/api-gateway/pkg/httpx"
	"github.com/mohamed-achich/api-gateway/pkg/slogx"
)

// TokenLifecycle is what the auth handlers need from the token service.
type TokenLifecycle interface {
	Login(ctx context.Context, identity domain.Identity) (domain.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (domain.TokenPair, error)
	Logout(ctx context.Context, userID string) error
}

// Accounts fronts the users directory.
type Accounts interface {
	Validate(ctx context.Context, username, password string) (*domain.Identity, error)
	Register(ctx context.Context, reg domain.Registration) (domain.Identity, error)
}

// ProductCatalog is the proxied products backend surface.
type ProductCatalog interface {
	List(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, id string) (domain.Product, error)
	Create(ctx context.Context, p domain.Product) (domain.Product, error)
	Update(ctx context.Context, p domain.Product) (domain.Product, error)
	Remove(ctx context.Context, id string) error
}

// OrderBook is the proxied orders backend surface.
type OrderBook interface {
	ListByUser(ctx context.Context, userID string) ([]domain.Order, error)
	Get(ctx context.Context, id string) (domain.Order, error)
	Create(ctx context.Context, userID string, items []domain.OrderItem) (domain.Order, error)
	UpdateStatus(ctx context.Context, id, status string) (domain.Order, error)
	Remove(ctx context.Context, id string) error
}

// Dependencies collects everything the router needs. All fields are required
// except Ready, which defaults to always-ready.
type Dependencies struct {
	Tokens   TokenLifecycle
	Accounts Accounts
	Products ProductCatalog
	Orders   OrderBook

	Verifier httpx.Verifier
	Revoked  httpx.Revocations
	Counter  httpx.Counter

	// Ready reports whether downstream dependencies are reachable.
	Ready func(ctx context.Context) error
}

// NewRouter builds the gateway's HTTP handler tree. A nil logger falls back
// to slog.Default.
func NewRouter(log *slog.Logger, deps Dependencies) http.Handler {
	if log == nil {
		log = slog.Default()
	}

	h := &handlers{
		tokens:   deps.Tokens,
		accounts: deps.Accounts,
		products: deps.Products,
		orders:   deps.Orders,
		ready:    deps.Ready,
	}

	authn := httpx.AuthnMiddleware(deps.Verifier, deps.Revoked)
	strict := httpx.RateLimitByIP(deps.Counter, httpx.StrictLimit)
	moderate := httpx.RateLimitByUser(deps.Counter, httpx.ModerateLimit)
	lenient := httpx.RateLimitByUser(deps.Counter, httpx.LenientLimit)

	mux := http.NewServeMux()

	mux.Handle("POST /auth/register", httpx.Chain(http.HandlerFunc(h.register), strict))
	mux.Handle("POST /auth/login", httpx.Chain(http.HandlerFunc(h.login), strict))
	mux.Handle("POST /auth/refresh", httpx.Chain(http.HandlerFunc(h.refresh), strict))
	mux.Handle("POST /auth/logout", httpx.Chain(http.HandlerFunc(h.logout), authn, moderate))

	mux.Handle("GET /products", httpx.Chain(http.HandlerFunc(h.listProducts), authn, lenient))
	mux.Handle("GET /products/{id}", httpx.Chain(http.HandlerFunc(h.getProduct), authn, lenient))
	mux.Handle("POST /products", httpx.Chain(http.HandlerFunc(h.createProduct), authn, moderate))
	mux.Handle("PUT /products/{id}", httpx.Chain(http.HandlerFunc(h.updateProduct), authn, moderate))
	mux.Handle("DELETE /products/{id}", httpx.Chain(http.HandlerFunc(h.removeProduct), authn, moderate))

	mux.Handle("GET /orders", httpx.Chain(http.HandlerFunc(h.listOrders), authn, lenient))
	mux.Handle("GET /orders/{id}", httpx.Chain(http.HandlerFunc(h.getOrder), authn, lenient))
	mux.Handle("POST /orders", httpx.Chain(http.HandlerFunc(h.createOrder), authn, moderate))
	mux.Handle("PUT /orders/{id}/status", httpx.Chain(http.HandlerFunc(h.updateOrderStatus), authn, moderate))
	mux.Handle("DELETE /orders/{id}", httpx.Chain(http.HandlerFunc(h.removeOrder), authn, moderate))

	mux.HandleFunc("GET /livez", h.livez)
	mux.HandleFunc("GET /readyz", h.readyz)

	return httpx.Chain(mux, slogx.HTTPMiddleware(log))
}

type handlers struct {
	tokens   TokenLifecycle
	accounts Accounts
	products ProductCatalog
	orders   OrderBook
	ready    func(ctx context.Context) error
}
