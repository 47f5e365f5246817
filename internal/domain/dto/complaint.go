package dto

type CreateComplaintRequest struct {
	LocationID *string `json:"locationId,omitempty"`
	Title      string  `json:"title" validate:"required"`
	Message    string  `json:"message" validate:"required"`
}

type CreateComplaintResponse struct {
	ID string `json:"id"`
}

type ReplyComplaintRequest struct {
	Reply string `json:"reply" validate:"required"`
}
