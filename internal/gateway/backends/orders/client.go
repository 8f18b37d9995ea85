// Package orders wraps the orders backend's gRPC surface.
package orders

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/connectivity"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/mohamed-achich/api-gateway/internal/gateway/domain"
	orderspb "github.com/mohamed-achich/api-gateway/internal/proto/orders"
	"github.com/mohamed-achich/api-gateway/pkg/grpcx"
)

// Client talks to the orders service.
type Client struct {
	conn *grpc.ClientConn
	rpc  orderspb.OrdersServiceClient
}

func Dial(addr string, src *grpcx.BearerSource) (*Client, error) {
	conn, err := grpc.NewClient(addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(grpcx.UnaryClientCredentials(src)),
	)
	if err != nil {
		return nil, fmt.Errorf("orders: dial %s: %w", addr, err)
	}

	return &Client{conn: conn, rpc: orderspb.NewOrdersServiceClient(conn)}, nil
}

func (c *Client) Close() error {
	return c.conn.Close()
}

func (c *Client) State() connectivity.State {
	return c.conn.GetState()
}

// ListByUser returns the orders belonging to one user. The gateway always
// scopes listing to the authenticated caller.
func (c *Client) ListByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	resp, err := c.rpc.FindAll(ctx, &orderspb.OrdersByUser{UserId: userID})
	if err != nil {
		return nil, fmt.Errorf("orders: list for %s: %w", userID, err)
	}

	out := make([]domain.Order, 0, len(resp.GetOrders()))
	for _, o := range resp.GetOrders() {
		out = append(out, toOrder(o))
	}
	return out, nil
}

func (c *Client) Get(ctx context.Context, id string) (domain.Order, error) {
	resp, err := c.rpc.FindOne(ctx, &orderspb.OrderById{Id: id})
	if err != nil {
		return domain.Order{}, fmt.Errorf("orders: get %s: %w", id, err)
	}
	return toOrder(resp), nil
}

func (c *Client) Create(ctx context.Context, userID string, items []domain.OrderItem) (domain.Order, error) {
	req := &orderspb.CreateOrderRequest{
		UserId: userID,
		Items:  make([]*orderspb.OrderItem, 0, len(items)),
	}
	for _, it := range items {
		req.Items = append(req.Items, &orderspb.OrderItem{
			ProductId: it.ProductID,
			Quantity:  it.Quantity,
			Price:     it.Price,
		})
	}

	resp, err := c.rpc.Create(ctx, req)
	if err != nil {
		return domain.Order{}, fmt.Errorf("orders: create: %w", err)
	}
	return toOrder(resp), nil
}

func (c *Client) UpdateStatus(ctx context.Context, id, status string) (domain.Order, error) {
	resp, err := c.rpc.UpdateStatus(ctx, &orderspb.UpdateOrderStatusRequest{Id: id, Status: status})
	if err != nil {
		return domain.Order{}, fmt.Errorf("orders: update status %s: %w", id, err)
	}
	return toOrder(resp), nil
}

func (c *Client) Remove(ctx context.Context, id string) error {
	if _, err := c.rpc.Remove(ctx, &orderspb.OrderById{Id: id}); err != nil {
		return fmt.Errorf("orders: remove %s: %w", id, err)
	}
	return nil
}

func toOrder(o *orderspb.Order) domain.Order {
	items := make([]domain.OrderItem, 0, len(o.GetItems()))
	for _, it := range o.GetItems() {
		items = append(items, domain.OrderItem{
			ProductID: it.GetProductId(),
			Quantity:  it.GetQuantity(),
			Price:     it.GetPrice(),
		})
	}

	return domain.Order{
		ID:     o.GetId(),
		UserID: o.GetUserId(),
		Status: o.GetStatus(),
		Total:  o.GetTotal(),
		Items:  items,
	}
}
