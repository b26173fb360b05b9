package dto

import "github.com/benthev/vinylfinder/internal/model"

// MasterResponse is the group record for all pressings of a work.
type MasterResponse struct {
	ID     int64    `json:"id"`
	Title  string   `json:"title"`
	Genres []string `json:"genres"`
	Styles []string `json:"styles"`
}

// ToMaster converts the wire record to a model.Master.
func (mr *MasterResponse) ToMaster() *model.Master {
	return &model.Master{
		ID:     mr.ID,
		Genres: mr.Genres,
		Styles: mr.Styles,
	}
}
