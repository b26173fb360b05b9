package model

// Version is one sibling pressing under a master release's version list.
type Version struct {
	// ID is the release identifier of this version.
	ID int64

	// Title is the version's title.
	Title string

	// Format is the granular format string, e.g. "LP, Album, RE".
	Format string

	// MajorFormats lists the coarse format categories of this version,
	// e.g. "Vinyl", "CD", "Cassette", "File".
	MajorFormats []string

	// Country is the release country.
	Country string

	// Label is the record label name.
	Label string

	// CatNo is the label's catalog number.
	CatNo string

	// Year is the release year, zero if unknown.
	Year int
}

// allowedMajorFormats are the major format categories that keep a
// release format-pure. Anything outside this set (CD, File, DVD, ...)
// means the work also exists in a disallowed format.
var allowedMajorFormats = []string{"Vinyl", "Cassette"}

// PureFormat reports whether every major format of this version is in
// the allowed vinyl/cassette set. A version with no major formats is
// vacuously pure.
func (v Version) PureFormat() bool {
	for _, f := range v.MajorFormats {
		if !ContainsFold(allowedMajorFormats, f) {
			return false
		}
	}
	return true
}

// HasNonVinylVersion reports whether any version in the list carries a
// major format outside the vinyl/cassette set. An empty list means there
// are no siblings to contaminate the verdict, so it returns false.
func HasNonVinylVersion(versions []Version) bool {
	for _, v := range versions {
		if !v.PureFormat() {
			return true
		}
	}
	return false
}
