package discogs

import (
	"context"
	"fmt"
	"iter"
	"net/url"
	"os"

	"github.com/benthev/vinylfinder/internal/discogs/dto"
	internalhttp "github.com/benthev/vinylfinder/internal/http"
	"github.com/benthev/vinylfinder/internal/model"
)

const (
	// DefaultBaseURL is the production catalog API host.
	DefaultBaseURL = "https://api.discogs.com"

	// defaultInventoryPageSize is the API's maximum page size for
	// seller inventory listings.
	defaultInventoryPageSize = 100

	// defaultVersionsPageSize is the API's maximum page size for
	// master version lists.
	defaultVersionsPageSize = 500
)

// Config holds Client construction options. Zero values select the
// production defaults.
type Config struct {
	// BaseURL is the catalog API host. Tests point this at a local
	// fake server.
	BaseURL string

	// InventoryPageSize is the per_page value used when walking a
	// seller's inventory.
	InventoryPageSize int

	// VersionsPageSize is the per_page value used when walking a
	// master's version list.
	VersionsPageSize int

	// Logf receives side-channel diagnostics (fetch progress, walk
	// aborts). Defaults to writing the error stream.
	Logf func(format string, args ...any)
}

// Client provides typed access to the catalog API's three resource
// families: seller inventory, releases/masters by identifier, and a
// master's version list.
//
// All calls go through the rate-limited fetch client, so a full
// inventory scan proceeds at most one request per configured delay
// unit. Nothing is cached: repeated release or master identifiers are
// fetched again on every lookup.
//
// Example usage:
//
//	client := discogs.NewClient(fetchClient, discogs.Config{})
//
//	for listing := range client.SellerInventory(ctx, "woodstockmusicshop") {
//	    release, err := client.Release(ctx, listing.ReleaseID)
//	    ...
//	}
type Client struct {
	http              *internalhttp.Client
	baseURL           string
	inventoryPageSize int
	versionsPageSize  int
	logf              func(format string, args ...any)
}

// NewClient creates a Client over the given fetch client.
func NewClient(httpClient *internalhttp.Client, cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.InventoryPageSize == 0 {
		cfg.InventoryPageSize = defaultInventoryPageSize
	}
	if cfg.VersionsPageSize == 0 {
		cfg.VersionsPageSize = defaultVersionsPageSize
	}
	if cfg.Logf == nil {
		cfg.Logf = func(format string, args ...any) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}
	}
	return &Client{
		http:              httpClient,
		baseURL:           cfg.BaseURL,
		inventoryPageSize: cfg.InventoryPageSize,
		versionsPageSize:  cfg.VersionsPageSize,
		logf:              cfg.Logf,
	}
}

// SellerInventory walks a seller's for-sale inventory and yields
// listings lazily, page by page, in server order. Fetch failures end
// the sequence early after logging; they do not surface as errors.
func (c *Client) SellerInventory(ctx context.Context, username string) iter.Seq[model.Listing] {
	inventoryURL := fmt.Sprintf("%s/users/%s/inventory", c.baseURL, url.PathEscape(username))

	return walkPages(ctx, c.inventoryPageSize, c.logf, func(ctx context.Context, query url.Values) ([]model.Listing, dto.Pagination, error) {
		c.logf("Fetching page %s...", query.Get("page"))

		var page dto.InventoryPage
		resp, err := c.http.GetJSON(ctx, inventoryURL, query, &page)
		if err != nil {
			return nil, dto.Pagination{}, err
		}
		if !resp.OK() {
			return nil, dto.Pagination{}, fmt.Errorf("%d - %s", resp.StatusCode, resp.Body)
		}

		listings := make([]model.Listing, 0, len(page.Listings))
		for _, jl := range page.Listings {
			listings = append(listings, jl.ToListing())
		}
		return listings, page.Pagination, nil
	})
}

// Release fetches the full catalog record for one release. A non-200
// response is returned as an error: the lookup could not be completed
// and the enclosing item should be skipped.
func (c *Client) Release(ctx context.Context, id int64) (*model.Release, error) {
	var body dto.ReleaseResponse
	resp, err := c.http.GetJSON(ctx, fmt.Sprintf("%s/releases/%d", c.baseURL, id), nil, &body)
	if err != nil {
		return nil, err
	}
	if !resp.OK() {
		return nil, fmt.Errorf("release %d: HTTP %d", id, resp.StatusCode)
	}
	return body.ToRelease(), nil
}

// Master fetches the group record for a master release. Callers treat
// failures as best-effort: genre data falls back to the release's own
// genre list.
func (c *Client) Master(ctx context.Context, id int64) (*model.Master, error) {
	var body dto.MasterResponse
	resp, err := c.http.GetJSON(ctx, fmt.Sprintf("%s/masters/%d", c.baseURL, id), nil, &body)
	if err != nil {
		return nil, err
	}
	if !resp.OK() {
		return nil, fmt.Errorf("master %d: HTTP %d", id, resp.StatusCode)
	}
	return body.ToMaster(), nil
}

// MasterVersions fetches the complete list of sibling pressings under a
// master release, following pagination to the end. Failures mid-walk
// end the list early; callers get whatever pages arrived.
func (c *Client) MasterVersions(ctx context.Context, masterID int64) []model.Version {
	versionsURL := fmt.Sprintf("%s/masters/%d/versions", c.baseURL, masterID)

	var versions []model.Version
	for v := range walkPages(ctx, c.versionsPageSize, c.logf, func(ctx context.Context, query url.Values) ([]model.Version, dto.Pagination, error) {
		var page dto.VersionsPage
		resp, err := c.http.GetJSON(ctx, versionsURL, query, &page)
		if err != nil {
			return nil, dto.Pagination{}, err
		}
		if !resp.OK() {
			return nil, dto.Pagination{}, fmt.Errorf("versions of master %d: HTTP %d", masterID, resp.StatusCode)
		}

		items := make([]model.Version, 0, len(page.Versions))
		for _, jv := range page.Versions {
			items = append(items, jv.ToVersion())
		}
		return items, page.Pagination, nil
	}) {
		versions = append(versions, v)
	}
	return versions
}
