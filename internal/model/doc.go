// Package model defines the core catalog entities used throughout
// vinylfinder.
//
// All entities are transient, in-memory and request-scoped: they are
// built from API responses, classified, and discarded. Nothing here is
// persisted or cached across listings.
//
// # Entities
//
//   - Listing: one entry in a seller's inventory, pointing at a Release
//   - Release: the canonical record for one specific pressing
//   - Master: the group record for all pressings of a work
//   - Version: one sibling pressing under a master's version list
//
// # Classification predicates
//
// The format-purity invariant lives here as small predicates:
//
//	release.HasFormat("Vinyl")          // format gate
//	model.HasNonVinylVersion(versions)  // sibling purity
//	model.ContainsFold(genres, "Jazz")  // genre membership
//
// A listing is "vinyl-only" when its release has a Vinyl format entry
// and none of its master's versions carry a major format outside
// {Vinyl, Cassette}. A release without a master has no siblings and
// passes the purity check vacuously.
package model
