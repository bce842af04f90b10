package redis

import (
	"context"

	apperrors "github.com/kbukum/xduce/errors"
	"github.com/kbukum/xduce/xform"
)

// ListIterator pages through a Redis list with LRANGE. Items appended while
// it runs are picked up by later pages; it stops at the first short page.
type ListIterator struct {
	client *Client
	key    string
	size   int64
	offset int64
	page   []string
	pos    int
	done   bool
}

var _ xform.Iterator[string] = (*ListIterator)(nil)

// ListIterator returns an iterator over the list at key. A pageSize below 1
// uses the configured page size.
func (c *Client) ListIterator(key string, pageSize int) *ListIterator {
	if pageSize < 1 {
		pageSize = c.cfg.PageSize
	}
	return &ListIterator{client: c, key: key, size: int64(pageSize)}
}

// Next returns the next list item, fetching a new page when needed.
func (it *ListIterator) Next(ctx context.Context) (string, bool, error) {
	if it.pos >= len(it.page) {
		if it.done {
			return "", false, nil
		}
		if err := it.fetch(ctx); err != nil {
			return "", false, err
		}
		if len(it.page) == 0 {
			return "", false, nil
		}
	}
	item := it.page[it.pos]
	it.pos++
	return item, true, nil
}

func (it *ListIterator) fetch(ctx context.Context) error {
	page, err := it.client.rdb.LRange(ctx, it.key, it.offset, it.offset+it.size-1).Result()
	if err != nil {
		return apperrors.SourceFailed(listName(it.key), err).WithDetail("offset", it.offset)
	}
	it.page = page
	it.pos = 0
	it.offset += int64(len(page))
	it.done = int64(len(page)) < it.size
	return nil
}

// Close stops the iterator. The client stays open.
func (it *ListIterator) Close() error {
	it.done = true
	it.page = nil
	it.pos = 0
	return nil
}
