package services

import (
	"context"
	"errors"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/carlog/internal/client/client"
	"github.com/dmitrijs2005/carlog/internal/client/models"
)

var ErrMissingID = errors.New("id is required")

// resourcePath joins escaped segments under a collection, e.g.
// resourcePath("/cars", id) -> "/cars/<id>".
func resourcePath(collection string, ids ...string) (string, error) {
	var b strings.Builder
	b.WriteString(collection)
	for _, id := range ids {
		if strings.TrimSpace(id) == "" {
			return "", ErrMissingID
		}
		b.WriteByte('/')
		b.WriteString(url.PathEscape(id))
	}
	return b.String(), nil
}

// call performs one request and returns the envelope payload.
func call[T any](ctx context.Context, c client.Client, method, path string, in any) (T, error) {
	var env models.Envelope[T]
	if err := c.Do(ctx, method, path, in, &env); err != nil {
		var zero T
		return zero, err
	}
	return env.Data, nil
}
