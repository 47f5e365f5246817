package dto

type CreateFavoriteRequest struct {
	Name        string   `json:"name" validate:"required"`
	LocationIDs []string `json:"locationIds" validate:"required"`
	WasteTypes  []string `json:"wasteTypes" validate:"required"`
}

type CreateFavoriteResponse struct {
	ID string `json:"id"`
}
