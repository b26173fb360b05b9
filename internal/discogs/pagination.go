package discogs

import (
	"context"
	"iter"
	"net/url"
	"strconv"

	"github.com/benthev/vinylfinder/internal/discogs/dto"
)

// pageFetch retrieves one page of a collection resource and returns its
// items plus the server's pagination envelope. A nil error with zero
// items signals exhaustion.
type pageFetch[T any] func(ctx context.Context, query url.Values) ([]T, dto.Pagination, error)

// walkPages follows a paginated collection from page 1 upward and
// yields a single flattened, order-preserving sequence of items.
// Consumers observe no page boundaries.
//
// The walk stops when:
//   - the server returns zero items for a page,
//   - the server-reported current page reaches the reported total
//     (missing metadata decodes to zero and terminates after one page),
//   - a fetch fails, in which case the error is logged and the walk
//     ends silently with whatever was already yielded.
//
// The sequence is finite and not restartable; start a fresh walk to
// re-enumerate.
func walkPages[T any](ctx context.Context, perPage int, logf func(format string, args ...any), fetch pageFetch[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for page := 1; ; page++ {
			query := url.Values{}
			query.Set("per_page", strconv.Itoa(perPage))
			query.Set("page", strconv.Itoa(page))

			items, pagination, err := fetch(ctx, query)
			if err != nil {
				logf("Error: %v", err)
				return
			}
			if len(items) == 0 {
				return
			}

			for _, item := range items {
				if !yield(item) {
					return
				}
			}
			logf("  -> Page %d: %d items fetched", page, len(items))

			if pagination.Exhausted() {
				return
			}
		}
	}
}
