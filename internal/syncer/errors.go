package syncer

import (
	"errors"
	"fmt"
)

// ErrNoArticlesFound is returned when upstream answered without any articles.
var ErrNoArticlesFound = errors.New("no articles found in response")

// UpstreamRequestFailedError covers every other failed sync: upstream status,
// transport and storage failures. Status is set only when upstream answered
// with a non-2xx code.
type UpstreamRequestFailedError struct {
	Status  int
	Message string
}

func (e *UpstreamRequestFailedError) Error() string {
	return fmt.Sprintf("news api request failed: %s", e.Message)
}
