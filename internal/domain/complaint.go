package domain

import "time"

type Complaint struct {
	ID         string    `db:"id" json:"id"`
	LocationID *string   `db:"location_id" json:"location_id,omitempty"`
	CreatedBy  string    `db:"created_by" json:"created_by"`
	Title      string    `db:"title" json:"title"`
	Message    string    `db:"message" json:"message"`
	Reply      *string   `db:"reply" json:"reply,omitempty"`
	RepliedBy  *string   `db:"replied_by" json:"replied_by,omitempty"`
	Status     string    `db:"status" json:"status"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

const (
	ComplaintStatusOpen    = "open"
	ComplaintStatusReplied = "replied"
)
