package models

// Card is an informational card shown on the site, optionally carrying an
// uploaded image.
type Card struct {
	ID          string  `db:"id" json:"id"`
	Title       string  `db:"title" json:"title"`
	Description string  `db:"description" json:"description"`
	Image       *string `db:"image" json:"image"`
}

// CardForm is the multipart form payload for creating or updating a card.
// Image holds an already-stored path when the request carries no new file.
// It is excluded from binding because the same field name carries the
// uploaded file; the controller reads the text value explicitly.
type CardForm struct {
	Title       string `form:"title" binding:"required"`
	Description string `form:"description" binding:"required"`
	Image       string `form:"-"`
}
