package finder

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/benthev/vinylfinder/internal/discogs"
	internalhttp "github.com/benthev/vinylfinder/internal/http"
	"github.com/benthev/vinylfinder/internal/model"
)

// fakeCatalog serves canned JSON per request path. Paginated resources
// get a single page with no pagination metadata, which terminates
// walks after one page.
type fakeCatalog struct {
	responses map[string]string
}

func (f *fakeCatalog) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := f.responses[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, body)
	})
}

// newTestScanner wires a Scanner against the fake server with rate
// limiting disabled, capturing all results.
func newTestScanner(t *testing.T, serverURL, genre string) (*Scanner, *[]Result) {
	t.Helper()

	fetcher := internalhttp.NewClient(internalhttp.Config{
		UserAgent:  "test",
		MaxRetries: 5,
	})
	client := discogs.NewClient(fetcher, discogs.Config{
		BaseURL: serverURL,
		Logf:    func(format string, args ...any) {},
	})

	var results []Result
	scanner := NewScanner(client, genre, nil, func(r Result) {
		results = append(results, r)
	})
	return scanner, &results
}

const sellerURL = "https://www.discogs.com/seller/testshop/profile"

func TestScan_ClassifiesInventory(t *testing.T) {
	// Listing A: vinyl, no master           -> pass "no master release"
	// Listing B: vinyl, master with a CD    -> fail "has non-vinyl"
	// Listing C: CD only                    -> silently skipped
	catalog := &fakeCatalog{responses: map[string]string{
		"/users/testshop/inventory": `{"listings": [
			{"id": 101, "price": {"value": 10, "currency": "USD"},
			 "release": {"id": 1, "description": "Album A", "artist": "Artist A"}},
			{"id": 102, "price": {"value": 20, "currency": "USD"},
			 "release": {"id": 2, "description": "Album B", "artist": "Artist B"}},
			{"id": 103, "price": {"value": 5, "currency": "USD"},
			 "release": {"id": 3, "description": "Album C", "artist": "Artist C"}}
		]}`,
		"/releases/1": `{"id": 1, "genres": ["Electronic"],
			"formats": [{"name": "Vinyl"}]}`,
		"/releases/2": `{"id": 2, "master_id": 10, "genres": ["Electronic"],
			"formats": [{"name": "Vinyl"}]}`,
		"/releases/3": `{"id": 3, "genres": ["Electronic"],
			"formats": [{"name": "CD"}]}`,
		"/masters/10": `{"id": 10, "genres": ["Electronic"]}`,
		"/masters/10/versions": `{"versions": [
			{"id": 21, "major_formats": ["Vinyl"]},
			{"id": 22, "major_formats": ["CD"]}
		]}`,
	}}
	server := httptest.NewServer(catalog.handler())
	defer server.Close()

	scanner, results := newTestScanner(t, server.URL, "")

	summary, err := scanner.Scan(context.Background(), sellerURL)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	want := Summary{Fetched: 3, Checked: 2, VinylOnly: 1}
	if summary != want {
		t.Errorf("summary = %+v, want %+v", summary, want)
	}

	if len(*results) != 2 {
		t.Fatalf("got %d results, want 2", len(*results))
	}

	a := (*results)[0]
	if a.Index != 1 || !a.VinylOnly || a.Status != "✓ VINYL-ONLY (no master release)" {
		t.Errorf("result A = %+v", a)
	}

	b := (*results)[1]
	if b.Index != 2 || b.VinylOnly || b.Status != "✗ has non-vinyl (2 versions)" {
		t.Errorf("result B = %+v", b)
	}
	if b.VersionCount != 2 {
		t.Errorf("result B version count = %d, want 2", b.VersionCount)
	}
}

func TestScan_PassesWhenAllVersionsAllowed(t *testing.T) {
	catalog := &fakeCatalog{responses: map[string]string{
		"/users/testshop/inventory": `{"listings": [
			{"id": 101, "release": {"id": 1, "description": "Album", "artist": "Artist"}}
		]}`,
		"/releases/1": `{"id": 1, "master_id": 10, "genres": ["Electronic"],
			"formats": [{"name": "Vinyl"}]}`,
		"/masters/10": `{"id": 10, "genres": ["Electronic"]}`,
		"/masters/10/versions": `{"versions": [
			{"id": 21, "major_formats": ["Vinyl"]},
			{"id": 22, "major_formats": ["Cassette"]},
			{"id": 23, "major_formats": ["vinyl"]}
		]}`,
	}}
	server := httptest.NewServer(catalog.handler())
	defer server.Close()

	scanner, results := newTestScanner(t, server.URL, "")

	summary, err := scanner.Scan(context.Background(), sellerURL)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if summary.VinylOnly != 1 {
		t.Errorf("vinyl-only = %d, want 1", summary.VinylOnly)
	}
	if got := (*results)[0].Status; got != "✓ VINYL-ONLY (3 versions, vinyl/cassette only)" {
		t.Errorf("status = %q", got)
	}
}

func TestScan_GenreFilterSkipsMismatches(t *testing.T) {
	// Vinyl release with no problematic versions, but master genres
	// say Rock: a Jazz filter must skip it entirely.
	catalog := &fakeCatalog{responses: map[string]string{
		"/users/testshop/inventory": `{"listings": [
			{"id": 101, "release": {"id": 1, "description": "Album", "artist": "Artist"}}
		]}`,
		"/releases/1": `{"id": 1, "master_id": 10, "genres": ["Jazz"],
			"formats": [{"name": "Vinyl"}]}`,
		"/masters/10":          `{"id": 10, "genres": ["Rock"]}`,
		"/masters/10/versions": `{"versions": [{"id": 21, "major_formats": ["Vinyl"]}]}`,
	}}
	server := httptest.NewServer(catalog.handler())
	defer server.Close()

	scanner, results := newTestScanner(t, server.URL, "Jazz")

	summary, err := scanner.Scan(context.Background(), sellerURL)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	want := Summary{Fetched: 1, Checked: 0, VinylOnly: 0}
	if summary != want {
		t.Errorf("summary = %+v, want %+v", summary, want)
	}
	if len(*results) != 0 {
		t.Errorf("got %d results, want 0", len(*results))
	}
}

func TestScan_GenreFilterExactMembership(t *testing.T) {
	// "Rock" must not match a genre list containing only "Rock and Roll".
	catalog := &fakeCatalog{responses: map[string]string{
		"/users/testshop/inventory": `{"listings": [
			{"id": 101, "release": {"id": 1, "description": "Album", "artist": "Artist"}}
		]}`,
		"/releases/1": `{"id": 1, "genres": ["Rock and Roll"],
			"formats": [{"name": "Vinyl"}]}`,
	}}
	server := httptest.NewServer(catalog.handler())
	defer server.Close()

	scanner, _ := newTestScanner(t, server.URL, "Rock")

	summary, err := scanner.Scan(context.Background(), sellerURL)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if summary.Checked != 0 {
		t.Errorf("checked = %d, want 0", summary.Checked)
	}
}

func TestScan_URLGenreOverridesConfigured(t *testing.T) {
	catalog := &fakeCatalog{responses: map[string]string{
		"/users/testshop/inventory": `{"listings": [
			{"id": 101, "release": {"id": 1, "description": "Album", "artist": "Artist"}}
		]}`,
		"/releases/1": `{"id": 1, "genres": ["Rock"],
			"formats": [{"name": "Vinyl"}]}`,
	}}
	server := httptest.NewServer(catalog.handler())
	defer server.Close()

	// Configured filter would reject Rock, but the URL says genre=Rock.
	scanner, results := newTestScanner(t, server.URL, "Jazz")

	summary, err := scanner.Scan(context.Background(), sellerURL+"?genre=Rock")
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if summary.Checked != 1 || len(*results) != 1 {
		t.Errorf("summary = %+v, results = %d", summary, len(*results))
	}
}

func TestScan_SkipsUnresolvableRelease(t *testing.T) {
	// Release 1 is not served: the lookup fails, the item is skipped
	// and never counted toward checked.
	catalog := &fakeCatalog{responses: map[string]string{
		"/users/testshop/inventory": `{"listings": [
			{"id": 101, "release": {"id": 1, "description": "Gone", "artist": "Artist"}},
			{"id": 102, "release": {"id": 2, "description": "Here", "artist": "Artist"}}
		]}`,
		"/releases/2": `{"id": 2, "genres": ["Electronic"],
			"formats": [{"name": "Vinyl"}]}`,
	}}
	server := httptest.NewServer(catalog.handler())
	defer server.Close()

	scanner, results := newTestScanner(t, server.URL, "")

	summary, err := scanner.Scan(context.Background(), sellerURL)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	want := Summary{Fetched: 2, Checked: 1, VinylOnly: 1}
	if summary != want {
		t.Errorf("summary = %+v, want %+v", summary, want)
	}
	if len(*results) != 1 || (*results)[0].Listing.Title != "Here" {
		t.Errorf("results = %+v", *results)
	}
}

func TestScan_MasterFailureFallsBackToReleaseGenres(t *testing.T) {
	// The master lookup 404s: the genre gate must use the release's
	// own genres, and the displayed genres become unknown.
	catalog := &fakeCatalog{responses: map[string]string{
		"/users/testshop/inventory": `{"listings": [
			{"id": 101, "release": {"id": 1, "description": "Album", "artist": "Artist"}}
		]}`,
		"/releases/1": `{"id": 1, "master_id": 10, "genres": ["Jazz"],
			"formats": [{"name": "Vinyl"}]}`,
		"/masters/10/versions": `{"versions": [{"id": 21, "major_formats": ["Vinyl"]}]}`,
	}}
	server := httptest.NewServer(catalog.handler())
	defer server.Close()

	scanner, results := newTestScanner(t, server.URL, "Jazz")

	summary, err := scanner.Scan(context.Background(), sellerURL)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if summary.Checked != 1 || summary.VinylOnly != 1 {
		t.Errorf("summary = %+v", summary)
	}

	r := (*results)[0]
	if r.Genres != nil {
		t.Errorf("Genres = %v, want nil (unknown)", r.Genres)
	}
	if !strings.Contains(r.Line(), "Unknown") {
		t.Errorf("Line() = %q, want Unknown genres", r.Line())
	}
}

func TestScan_InvalidSellerURLIsFatal(t *testing.T) {
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer server.Close()

	scanner, _ := newTestScanner(t, server.URL, "")

	_, err := scanner.Scan(context.Background(), "https://www.discogs.com/release/249504")
	if !errors.Is(err, discogs.ErrInvalidSellerURL) {
		t.Errorf("err = %v, want ErrInvalidSellerURL", err)
	}
	if requests != 0 {
		t.Errorf("issued %d requests before failing, want 0", requests)
	}
}

func TestResult_Line(t *testing.T) {
	r := Result{
		Index: 3,
		Listing: model.Listing{
			ReleaseID: 249504,
			Title:     "Some Album",
			Artist:    "Some Artist",
			Price:     model.Price{Value: 25, Currency: "USD"},
		},
		VinylOnly: true,
		Status:    "✓ VINYL-ONLY (12 versions, vinyl/cassette only)",
		Genres:    []string{"Electronic", "Rock"},
	}

	want := "[3] ✓ VINYL-ONLY (12 versions, vinyl/cassette only) | Electronic, Rock | Some Artist - Some Album | $25 USD | https://www.discogs.com/release/249504"
	if got := r.Line(); got != want {
		t.Errorf("Line() =\n%q, want\n%q", got, want)
	}
}

func TestSummary_String(t *testing.T) {
	s := Summary{Fetched: 120, Checked: 14, VinylOnly: 3}
	want := "Total: 120 fetched, 14 matched genre filter, 3 vinyl-only"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
