package model

import (
	"fmt"
	"strings"
)

// Release is the canonical catalog record for one specific pressing.
//
// A Release is fetched lazily, once per listing, and never cached across
// listings even when several listings reference the same release.
//
// Example:
//
//	release, err := client.Release(ctx, listing.ReleaseID)
//	if err != nil {
//	    // lookup failed, skip the item
//	}
//	if release.HasFormat("Vinyl") {
//	    // in scope for classification
//	}
type Release struct {
	// ID is the release identifier.
	ID int64

	// Title is the release title.
	Title string

	// Formats lists the format descriptors of this pressing.
	Formats []Format

	// Genres lists the release's own genre names. Used as the genre
	// source when the release has no master or the master lookup failed.
	Genres []string

	// Styles lists the release's style names (finer-grained than genres).
	Styles []string

	// MasterID identifies the master release grouping all pressings of
	// this work. Zero means the release has no master and is treated as
	// the sole pressing.
	MasterID int64
}

// Format is one format descriptor on a release, e.g.
// {Name: "Vinyl", Qty: "2", Descriptions: ["LP", "Album"]}.
type Format struct {
	Name         string
	Qty          string
	Descriptions []string
}

// HasFormat reports whether any of the release's format descriptors has
// the given name. The comparison is a case-insensitive exact match on the
// name, not a substring test: HasFormat("Vinyl") matches a format named
// "vinyl" but not one named "Vinyl Box Set".
func (r *Release) HasFormat(name string) bool {
	for _, f := range r.Formats {
		if strings.EqualFold(f.Name, name) {
			return true
		}
	}
	return false
}

// HasMaster reports whether the release belongs to a master release.
func (r *Release) HasMaster() bool {
	return r.MasterID != 0
}

// Master is the group record aggregating all pressings of a work.
type Master struct {
	// ID is the master release identifier.
	ID int64

	// Genres lists the master's genre names. Preferred over the
	// release's own genres for genre filtering when available.
	Genres []string

	// Styles lists the master's style names.
	Styles []string
}

// ContainsFold reports whether s case-insensitively equals one of the
// list entries. Membership is exact, not substring containment: a filter
// of "Rock" does not match a list containing only "Rock and Roll".
func ContainsFold(list []string, s string) bool {
	for _, entry := range list {
		if strings.EqualFold(entry, s) {
			return true
		}
	}
	return false
}

// ReleaseURL builds the public catalog page link for a release.
func ReleaseURL(id int64) string {
	return fmt.Sprintf("https://www.discogs.com/release/%d", id)
}
