// Package finder implements the classification pipeline that decides
// which of a seller's listings are vinyl-only.
//
// # Pipeline
//
// For every inventory listing, in order and short-circuiting:
//
//  1. Resolve the release record; a failed lookup skips the item
//     without counting it.
//  2. Require a format descriptor named "Vinyl" (case-insensitive
//     exact match); other physical formats are silently out of scope.
//  3. When a genre filter is active, require exact case-insensitive
//     membership in the effective genre list (the master's genres when
//     a master resolved, else the release's own).
//  4. Check sibling purity: no master passes outright; otherwise every
//     version under the master must stay within {Vinyl, Cassette}
//     major formats.
//
// Verdicts flow through the result callback as they are decided;
// diagnostics flow through the progress callback. The run always
// reaches its Summary: per-item failures degrade to skips, and only a
// malformed seller URL or a cancelled context aborts a scan.
//
// # Cost model
//
// The pipeline is strictly sequential. Each checked item costs up to
// three rate-limited fetch sequences (release, master, version pages),
// so scan time grows linearly with inventory size under the one
// request per second ceiling. Repeated release or master identifiers
// are deliberately re-fetched: no cross-item memoization.
package finder
