package dto

import "github.com/benthev/vinylfinder/internal/model"

// InventoryPage is one page of a seller's inventory.
type InventoryPage struct {
	Pagination Pagination    `json:"pagination"`
	Listings   []JSONListing `json:"listings"`
}

// JSONListing is one inventory entry as the API serializes it.
type JSONListing struct {
	ID        int64              `json:"id"`
	Condition string             `json:"condition"`
	Price     JSONPrice          `json:"price"`
	Release   JSONListingRelease `json:"release"`
}

// JSONPrice is the asking price of a listing.
type JSONPrice struct {
	Value    float64 `json:"value"`
	Currency string  `json:"currency"`
}

// JSONListingRelease is the compact release stub embedded in an
// inventory listing. It carries display fields only; the full catalog
// record has to be fetched separately by ID.
type JSONListingRelease struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
	Artist      string `json:"artist"`
	Format      string `json:"format"`
}

// ToListing converts the wire listing to a model.Listing.
func (jl *JSONListing) ToListing() model.Listing {
	return model.Listing{
		ReleaseID: jl.Release.ID,
		Title:     jl.Release.Description,
		Artist:    jl.Release.Artist,
		Price: model.Price{
			Value:    jl.Price.Value,
			Currency: jl.Price.Currency,
		},
		Condition: jl.Condition,
		Format:    jl.Release.Format,
	}
}
