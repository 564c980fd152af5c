// Package sharepoint retrieves the items of a single SharePoint list over
// the REST API, following server-side pagination and stripping internal
// metadata fields before records reach the caller.
package sharepoint

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"

	"github.com/sicedia/sharepoint-2019-connect-api/pkg/client"
	"github.com/sicedia/sharepoint-2019-connect-api/pkg/logging"
)

var (
	spPagesFetchedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sp_pages_fetched_total",
		Help: "Total list pages fetched",
	})

	spItemsRetrievedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sp_items_retrieved_total",
		Help: "Total list items retrieved across pages",
	})
)

// ErrInvalidLimit is returned for item limits of zero or less, before any
// network call is made.
var ErrInvalidLimit = errors.New("limit must be greater than zero")

// List provides read access to the items of one SharePoint list, identified
// by its display title.
type List struct {
	client  *client.Client
	siteURL string
	title   string
	logger  zerolog.Logger
}

// NewList binds an authenticated session to a list.
func NewList(c *client.Client, siteURL, title string) *List {
	return &List{
		client:  c,
		siteURL: strings.TrimRight(siteURL, "/"),
		title:   title,
		logger:  logging.NewLogger("sharepoint"),
	}
}

// ItemsURL returns the collection endpoint for the list items. The display
// title is percent-encoded so names with spaces and reserved characters
// round-trip.
func (l *List) ItemsURL() string {
	return fmt.Sprintf("%s/_api/web/lists/GetByTitle('%s')/items", l.siteURL, url.PathEscape(l.title))
}

// ItemsURLWithLimit returns the collection endpoint capped to limit items
// via the $top parameter.
func (l *List) ItemsURLWithLimit(limit int) (string, error) {
	if limit <= 0 {
		return "", ErrInvalidLimit
	}
	return fmt.Sprintf("%s?$top=%d", l.ItemsURL(), limit), nil
}

// GetAllItems retrieves every item of the list, following continuation links
// until the server stops providing one.
func (l *List) GetAllItems(ctx context.Context) ([]Record, error) {
	return l.fetchItems(ctx, l.ItemsURL(), true)
}

// GetItemsWithLimit retrieves at most limit items. It never paginates: the
// caller asked for a bounded slice, so a single page is fetched even when
// the server advertises a continuation link.
func (l *List) GetItemsWithLimit(ctx context.Context, limit int) ([]Record, error) {
	u, err := l.ItemsURLWithLimit(limit)
	if err != nil {
		return nil, err
	}
	return l.fetchItems(ctx, u, false)
}

// fetchItems runs the fetch loop: request the current URL, accumulate the
// value collection, follow the continuation link until none remains. Any
// failed page aborts the whole fetch and the accumulator is discarded.
// Records are cleaned before they are appended.
func (l *List) fetchItems(ctx context.Context, u string, paginate bool) ([]Record, error) {
	var items []Record

	for u != "" {
		resp, err := l.client.Get(ctx, u)
		if err != nil {
			return nil, err
		}

		p := parsePage(resp.Body)
		spPagesFetchedTotal.Inc()
		spItemsRetrievedTotal.Add(float64(len(p.items)))
		l.logger.Debug().
			Int("items", len(p.items)).
			Bool("more", p.nextLink != "").
			Msg("Fetched page")

		for _, rec := range p.items {
			items = append(items, Clean(rec))
		}

		if !paginate {
			break
		}
		u = p.nextLink
	}

	return items, nil
}
