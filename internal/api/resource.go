// internal/api/resource.go
package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// Resource is a typed service over the platform's uniform collection shape:
// list and create on the collection path, get/update/delete on the item
// path. It satisfies store.Repository so controllers stay entity-agnostic.
type Resource[T any] struct {
	c *Client
	// collection keeps the API's exact path, trailing slash included where
	// the server mounts one.
	collection string
	item       string
}

func NewResource[T any](c *Client, collectionPath string) *Resource[T] {
	return &Resource[T]{
		c:          c,
		collection: collectionPath,
		item:       strings.TrimSuffix(collectionPath, "/"),
	}
}

// List fetches the full collection. Filters travel as flat query parameters;
// the server ignores unknown keys.
func (r *Resource[T]) List(ctx context.Context, filters map[string]string) ([]T, error) {
	query := url.Values{}
	for k, v := range filters {
		if v != "" {
			query.Set(k, v)
		}
	}

	var out []T
	if err := r.c.do(ctx, http.MethodGet, r.collection, query, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Resource[T]) Get(ctx context.Context, id int) (*T, error) {
	var out T
	if err := r.c.do(ctx, http.MethodGet, r.itemPath(id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *Resource[T]) Create(ctx context.Context, draft T) (*T, error) {
	var out T
	if err := r.c.do(ctx, http.MethodPost, r.collection, nil, draft, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *Resource[T]) Update(ctx context.Context, id int, draft T) (*T, error) {
	var out T
	if err := r.c.do(ctx, http.MethodPut, r.itemPath(id), nil, draft, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *Resource[T]) Delete(ctx context.Context, id int) error {
	return r.c.do(ctx, http.MethodDelete, r.itemPath(id), nil, nil, nil)
}

func (r *Resource[T]) itemPath(id int) string {
	return fmt.Sprintf("%s/%d", r.item, id)
}
