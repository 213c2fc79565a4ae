package models

// Section is an editable page section.
type Section struct {
	ID      string `db:"id" json:"id"`
	Title   string `db:"title" json:"title"`
	Content string `db:"content" json:"content"`
}

// SectionRequest is the payload for creating a section.
type SectionRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// SectionUpdateRequest is the payload for updating a section's content.
type SectionUpdateRequest struct {
	Content string `json:"content" binding:"required"`
}
