package stripe

import (
	"context"

	"github.com/stripe/stripe-go/v82"
)

// api is the slice of the Stripe SDK the adapter calls.
type api interface {
	CreateCheckoutSession(ctx context.Context, params *stripe.CheckoutSessionCreateParams) (*stripe.CheckoutSession, error)
	RetrieveCheckoutSession(ctx context.Context, id string) (*stripe.CheckoutSession, error)
	CreateProduct(ctx context.Context, params *stripe.ProductCreateParams) (*stripe.Product, error)
	CreatePrice(ctx context.Context, params *stripe.PriceCreateParams) (*stripe.Price, error)
	UpdateSubscription(ctx context.Context, id string, params *stripe.SubscriptionUpdateParams) (*stripe.Subscription, error)
}

// sdkClient forwards to the v1 services of a stripe.Client.
type sdkClient struct {
	client *stripe.Client
}

func newSDKClient(secretKey string) *sdkClient {
	return &sdkClient{client: stripe.NewClient(secretKey, nil)}
}

func (c *sdkClient) CreateCheckoutSession(ctx context.Context, params *stripe.CheckoutSessionCreateParams) (*stripe.CheckoutSession, error) {
	return c.client.V1CheckoutSessions.Create(ctx, params)
}

func (c *sdkClient) RetrieveCheckoutSession(ctx context.Context, id string) (*stripe.CheckoutSession, error) {
	return c.client.V1CheckoutSessions.Retrieve(ctx, id, nil)
}

func (c *sdkClient) CreateProduct(ctx context.Context, params *stripe.ProductCreateParams) (*stripe.Product, error) {
	return c.client.V1Products.Create(ctx, params)
}

func (c *sdkClient) CreatePrice(ctx context.Context, params *stripe.PriceCreateParams) (*stripe.Price, error) {
	return c.client.V1Prices.Create(ctx, params)
}

func (c *sdkClient) UpdateSubscription(ctx context.Context, id string, params *stripe.SubscriptionUpdateParams) (*stripe.Subscription, error) {
	return c.client.V1Subscriptions.Update(ctx, id, params)
}
