package state

import (
	"context"
	"errors"

	"github.com/getfolio/folio/pkg/api"
	"github.com/getfolio/folio/pkg/portfolio"
)

// Gateway is the set of network operations backing one synced resource.
// Operations a resource does not support stay nil; invoking them returns
// ErrUnsupported.
type Gateway[T portfolio.Entity, P any] struct {
	List   func(ctx context.Context) (*api.ListResponse[T], error)
	Get    func(ctx context.Context, id string) (*api.ItemResponse[T], error)
	Create func(ctx context.Context, draft P) (*api.ItemResponse[T], error)
	Update func(ctx context.Context, id string, draft P) (*api.ItemResponse[T], error)
	Delete func(ctx context.Context, id string) (string, error)
}

// ErrUnsupported is returned when a resource has no gateway for the
// requested operation.
var ErrUnsupported = errors.New("operation not supported for this resource")

// Resource couples a store with its gateway. Every operation runs the
// network call, then applies the matching merge policy; the caller gets the
// error back and can also observe the outcome through the store.
type Resource[T portfolio.Entity, P any] struct {
	store   *Store[T]
	gateway Gateway[T, P]
}

// NewResource creates a synced resource with a fresh empty store.
func NewResource[T portfolio.Entity, P any](gw Gateway[T, P]) *Resource[T, P] {
	return &Resource[T, P]{store: NewStore[T](), gateway: gw}
}

// Store exposes the underlying store for snapshots and subscriptions.
func (r *Resource[T, P]) Store() *Store[T] { return r.store }

// Refresh fetches the full list and replaces the cached one.
func (r *Resource[T, P]) Refresh(ctx context.Context) error {
	if r.gateway.List == nil {
		return ErrUnsupported
	}
	r.store.begin()
	resp, err := r.gateway.List(ctx)
	if err != nil {
		r.store.fail(api.ErrorMessage(err))
		return err
	}
	r.store.replaceAll(resp.Items, resp.Message)
	return nil
}

// Load fetches one entity into the single-entity projection. The cached
// list is not touched.
func (r *Resource[T, P]) Load(ctx context.Context, id string) error {
	if r.gateway.Get == nil {
		return ErrUnsupported
	}
	r.store.begin()
	resp, err := r.gateway.Get(ctx, id)
	if err != nil {
		r.store.fail(api.ErrorMessage(err))
		return err
	}
	r.store.setItem(resp.Item, resp.Message)
	return nil
}

// Create sends a new entity and appends the server's copy to the cached
// list, guarding against a duplicate identity already present.
func (r *Resource[T, P]) Create(ctx context.Context, draft P) error {
	if r.gateway.Create == nil {
		return ErrUnsupported
	}
	r.store.begin()
	resp, err := r.gateway.Create(ctx, draft)
	if err != nil {
		r.store.fail(api.ErrorMessage(err))
		return err
	}
	r.store.appendItem(resp.Item, resp.Message)
	return nil
}

// Update patches an entity and swaps the matching cached entry for the
// server's copy.
func (r *Resource[T, P]) Update(ctx context.Context, id string, draft P) error {
	if r.gateway.Update == nil {
		return ErrUnsupported
	}
	r.store.begin()
	resp, err := r.gateway.Update(ctx, id, draft)
	if err != nil {
		r.store.fail(api.ErrorMessage(err))
		return err
	}
	r.store.replaceItem(resp.Item, resp.Message)
	return nil
}

// Delete removes an entity; the id passed here, not the response, decides
// which cached entry goes.
func (r *Resource[T, P]) Delete(ctx context.Context, id string) error {
	if r.gateway.Delete == nil {
		return ErrUnsupported
	}
	r.store.begin()
	msg, err := r.gateway.Delete(ctx, id)
	if err != nil {
		r.store.fail(api.ErrorMessage(err))
		return err
	}
	r.store.removeItem(id, msg)
	return nil
}

// SingletonGateway backs a resource that is a single record rather than a
// list (about, contact).
type SingletonGateway[T portfolio.Entity, P any] struct {
	Get  func(ctx context.Context) (*api.ItemResponse[T], error)
	Save func(ctx context.Context, draft P) (*api.ItemResponse[T], error)
}

// Singleton couples a store with a singleton gateway. Only the
// single-entity projection of the store is used.
type Singleton[T portfolio.Entity, P any] struct {
	store   *Store[T]
	gateway SingletonGateway[T, P]
}

// NewSingleton creates a synced singleton resource with a fresh store.
func NewSingleton[T portfolio.Entity, P any](gw SingletonGateway[T, P]) *Singleton[T, P] {
	return &Singleton[T, P]{store: NewStore[T](), gateway: gw}
}

// Store exposes the underlying store.
func (s *Singleton[T, P]) Store() *Store[T] { return s.store }

// Refresh fetches the record.
func (s *Singleton[T, P]) Refresh(ctx context.Context) error {
	if s.gateway.Get == nil {
		return ErrUnsupported
	}
	s.store.begin()
	resp, err := s.gateway.Get(ctx)
	if err != nil {
		s.store.fail(api.ErrorMessage(err))
		return err
	}
	s.store.setItem(resp.Item, resp.Message)
	return nil
}

// Save creates or replaces the record and caches the server's copy.
func (s *Singleton[T, P]) Save(ctx context.Context, draft P) error {
	if s.gateway.Save == nil {
		return ErrUnsupported
	}
	s.store.begin()
	resp, err := s.gateway.Save(ctx, draft)
	if err != nil {
		s.store.fail(api.ErrorMessage(err))
		return err
	}
	s.store.setItem(resp.Item, resp.Message)
	return nil
}
