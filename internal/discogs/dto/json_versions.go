package dto

import "github.com/benthev/vinylfinder/internal/model"

// VersionsPage is one page of a master release's version list.
type VersionsPage struct {
	Pagination Pagination    `json:"pagination"`
	Versions   []JSONVersion `json:"versions"`
}

// JSONVersion is one sibling pressing as the API serializes it. The
// major_formats field carries the coarse categories ("Vinyl", "CD",
// "File") the purity check runs against; format is the granular string.
type JSONVersion struct {
	ID           int64    `json:"id"`
	Title        string   `json:"title"`
	Format       string   `json:"format"`
	MajorFormats []string `json:"major_formats"`
	Label        string   `json:"label"`
	Country      string   `json:"country"`
	CatNo        string   `json:"catno"`
	Year         int      `json:"year"`
}

// ToVersion converts the wire record to a model.Version.
func (jv *JSONVersion) ToVersion() model.Version {
	return model.Version{
		ID:           jv.ID,
		Title:        jv.Title,
		Format:       jv.Format,
		MajorFormats: jv.MajorFormats,
		Label:        jv.Label,
		Country:      jv.Country,
		CatNo:        jv.CatNo,
		Year:         jv.Year,
	}
}
