// Package products wraps the products backend's gRPC surface. The gateway
// proxies catalog operations as-is; backend errors are translated to the
// external error shape at the HTTP layer.
package products

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/connectivity"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/mohamed-achich/api-gateway/internal/gateway/domain"
	productspb "github.com/mohamed-achich/api-gateway/internal/proto/products"
	"github.com/mohamed-achich/api-gateway/pkg/grpcx"
)

// Client talks to the products catalog service.
type Client struct {
	conn *grpc.ClientConn
	rpc  productspb.ProductsServiceClient
}

func Dial(addr string, src *grpcx.BearerSource) (*Client, error) {
	conn, err := grpc.NewClient(addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(grpcx.UnaryClientCredentials(src)),
	)
	if err != nil {
		return nil, fmt.Errorf("products: dial %s: %w", addr, err)
	}

	return &Client{conn: conn, rpc: productspb.NewProductsServiceClient(conn)}, nil
}

func (c *Client) Close() error {
	return c.conn.Close()
}

func (c *Client) State() connectivity.State {
	return c.conn.GetState()
}

func (c *Client) List(ctx context.Context) ([]domain.Product, error) {
	resp, err := c.rpc.FindAll(ctx, &productspb.Empty{})
	if err != nil {
		return nil, fmt.Errorf("products: list: %w", err)
	}

	out := make([]domain.Product, 0, len(resp.GetProducts()))
	for _, p := range resp.GetProducts() {
		out = append(out, toProduct(p))
	}
	return out, nil
}

func (c *Client) Get(ctx context.Context, id string) (domain.Product, error) {
	resp, err := c.rpc.FindOne(ctx, &productspb.ProductById{Id: id})
	if err != nil {
		return domain.Product{}, fmt.Errorf("products: get %s: %w", id, err)
	}
	return toProduct(resp), nil
}

func (c *Client) Create(ctx context.Context, p domain.Product) (domain.Product, error) {
	resp, err := c.rpc.Create(ctx, &productspb.CreateProductRequest{
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Quantity:    p.Quantity,
	})
	if err != nil {
		return domain.Product{}, fmt.Errorf("products: create: %w", err)
	}
	return toProduct(resp), nil
}

func (c *Client) Update(ctx context.Context, p domain.Product) (domain.Product, error) {
	resp, err := c.rpc.Update(ctx, &productspb.UpdateProductRequest{
		Id:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Quantity:    p.Quantity,
	})
	if err != nil {
		return domain.Product{}, fmt.Errorf("products: update %s: %w", p.ID, err)
	}
	return toProduct(resp), nil
}

func (c *Client) Remove(ctx context.Context, id string) error {
	if _, err := c.rpc.Remove(ctx, &productspb.ProductById{Id: id}); err != nil {
		return fmt.Errorf("products: remove %s: %w", id, err)
	}
	return nil
}

func toProduct(p *productspb.Product) domain.Product {
	return domain.Product{
		ID:          p.GetId(),
		Name:        p.GetName(),
		Description: p.GetDescription(),
		Price:       p.GetPrice(),
		Quantity:    p.GetQuantity(),
	}
}
