package ports

import (
	"context"

	"roastline/pkg/domain"
)

// Backend is the contract for the remote data store. Every call is fallible:
// callers must never assume success and must keep the session navigable after
// any error.
type Backend interface {
	// ListRegions returns the available storefront regions.
	ListRegions(ctx context.Context) ([]domain.Region, error)

	// ListProducts returns in-stock products, ordered by category then name.
	// An empty regionID returns the full catalog.
	ListProducts(ctx context.Context, regionID string) ([]domain.Product, error)

	// ListSavedAddresses returns the most recent saved addresses (at most
	// three) for a user fingerprint.
	ListSavedAddresses(ctx context.Context, fingerprint string) ([]domain.SavedAddress, error)

	// CreateSavedAddress persists an address; the store assigns id and
	// creation timestamp on the returned value.
	CreateSavedAddress(ctx context.Context, addr domain.SavedAddress) (domain.SavedAddress, error)

	// DeleteSavedAddress removes a saved address by id.
	DeleteSavedAddress(ctx context.Context, id string) error

	// ListOrders returns past orders for a user, most recent first.
	ListOrders(ctx context.Context, userID string) ([]domain.Order, error)

	// ListSubscriptions returns subscriptions for a user, most recent first.
	ListSubscriptions(ctx context.Context, userID string) ([]domain.Subscription, error)

	// CreateOrder submits a new order; the store assigns its identity.
	CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error)

	// CreateSubscription starts a new subscription.
	CreateSubscription(ctx context.Context, sub domain.Subscription) (domain.Subscription, error)
}
