package dto

import "github.com/benthev/vinylfinder/internal/model"

// ReleaseResponse is the full catalog record for a single release.
// Only the fields the classifier needs are mapped; absent lists decode
// to nil and are treated as empty downstream.
type ReleaseResponse struct {
	ID       int64        `json:"id"`
	Title    string       `json:"title"`
	MasterID int64        `json:"master_id"`
	Genres   []string     `json:"genres"`
	Styles   []string     `json:"styles"`
	Formats  []JSONFormat `json:"formats"`
}

// JSONFormat is one format descriptor on a release.
type JSONFormat struct {
	Name         string   `json:"name"`
	Qty          string   `json:"qty"`
	Descriptions []string `json:"descriptions"`
}

// ToRelease converts the wire record to a model.Release.
func (rr *ReleaseResponse) ToRelease() *model.Release {
	release := &model.Release{
		ID:       rr.ID,
		Title:    rr.Title,
		MasterID: rr.MasterID,
		Genres:   rr.Genres,
		Styles:   rr.Styles,
	}
	for _, f := range rr.Formats {
		release.Formats = append(release.Formats, model.Format{
			Name:         f.Name,
			Qty:          f.Qty,
			Descriptions: f.Descriptions,
		})
	}
	return release
}
