package models

import "time"

// ImagePrefix is the data-URI marker every stored signature image must carry.
const ImagePrefix = "data:image/"

// SignatureDB represents a signature record in the database.
// The image is stored as a self-describing data URI, the same string the
// capture surface produced; no separate binary path exists.
type SignatureDB struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Image     string    `json:"signature_image" db:"signature_data"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
