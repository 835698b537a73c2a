package news

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Article is one upstream news item. Every field is optional upstream and
// stays nil when absent or null.
type Article struct {
	Title       *string
	Description *string
	Author      *string
	URL         *string
	URLToImage  *string
	PublishedAt *time.Time
}

type NewsClient interface {
	Fetch(ctx context.Context, keyword string, from time.Time) ([]Article, error)
	Name() string
}

// ErrMalformedResponse is returned when the body has no articles list.
var ErrMalformedResponse = errors.New("malformed response: articles missing")

// TransportError covers connection, TLS and body decoding failures.
type TransportError struct {
	Message string
}

func (e *TransportError) Error() string {
	return e.Message
}

// StatusError is returned for a non-2xx upstream response.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status code: %d", e.Code)
}
