package model

import "testing"

func TestRelease_HasFormat(t *testing.T) {
	tests := []struct {
		name    string
		formats []Format
		want    bool
	}{
		{
			name:    "exact match",
			formats: []Format{{Name: "Vinyl"}},
			want:    true,
		},
		{
			name:    "case insensitive match",
			formats: []Format{{Name: "vinyl"}},
			want:    true,
		},
		{
			name:    "second of several formats",
			formats: []Format{{Name: "CD"}, {Name: "Vinyl"}},
			want:    true,
		},
		{
			name:    "no vinyl format",
			formats: []Format{{Name: "CD"}},
			want:    false,
		},
		{
			name:    "substring does not match",
			formats: []Format{{Name: "Vinyl Box Set"}},
			want:    false,
		},
		{
			name:    "no formats at all",
			formats: nil,
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &Release{Formats: tt.formats}
			if got := r.HasFormat("Vinyl"); got != tt.want {
				t.Errorf("HasFormat(\"Vinyl\") = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHasNonVinylVersion(t *testing.T) {
	tests := []struct {
		name     string
		versions []Version
		want     bool
	}{
		{
			name:     "empty list has no siblings",
			versions: nil,
			want:     false,
		},
		{
			name: "all vinyl",
			versions: []Version{
				{MajorFormats: []string{"Vinyl"}},
				{MajorFormats: []string{"Vinyl"}},
			},
			want: false,
		},
		{
			name: "vinyl and cassette allowed",
			versions: []Version{
				{MajorFormats: []string{"Vinyl"}},
				{MajorFormats: []string{"Cassette"}},
			},
			want: false,
		},
		{
			name: "case insensitive allow list",
			versions: []Version{
				{MajorFormats: []string{"vinyl", "CASSETTE"}},
			},
			want: false,
		},
		{
			name: "one CD version contaminates",
			versions: []Version{
				{MajorFormats: []string{"Vinyl"}},
				{MajorFormats: []string{"CD"}},
			},
			want: true,
		},
		{
			name: "mixed formats on a single version",
			versions: []Version{
				{MajorFormats: []string{"Vinyl", "File"}},
			},
			want: true,
		},
		{
			name: "version with no major formats is pure",
			versions: []Version{
				{MajorFormats: nil},
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasNonVinylVersion(tt.versions); got != tt.want {
				t.Errorf("HasNonVinylVersion() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestContainsFold(t *testing.T) {
	tests := []struct {
		name string
		list []string
		s    string
		want bool
	}{
		{"exact", []string{"Rock", "Jazz"}, "Jazz", true},
		{"fold", []string{"Electronic"}, "electronic", true},
		{"not substring", []string{"Rock and Roll"}, "Rock", false},
		{"absent", []string{"Rock"}, "Jazz", false},
		{"empty list", nil, "Rock", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ContainsFold(tt.list, tt.s); got != tt.want {
				t.Errorf("ContainsFold(%v, %q) = %v, want %v", tt.list, tt.s, got, tt.want)
			}
		})
	}
}

func TestPrice_String(t *testing.T) {
	tests := []struct {
		name  string
		price Price
		want  string
	}{
		{"value and currency", Price{Value: 12.5, Currency: "USD"}, "12.5 USD"},
		{"whole value", Price{Value: 30, Currency: "EUR"}, "30 EUR"},
		{"missing entirely", Price{}, ""},
		{"currency only", Price{Currency: "USD"}, "0 USD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.price.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReleaseURL(t *testing.T) {
	if got, want := ReleaseURL(2034353), "https://www.discogs.com/release/2034353"; got != want {
		t.Errorf("ReleaseURL() = %q, want %q", got, want)
	}
}
