package models

// Image is the metadata record for an uploaded image asset. The binary
// content lives on disk under UploadPath.
type Image struct {
	ID         string `db:"id" json:"id"`
	Filename   string `db:"filename" json:"filename"`
	Mimetype   string `db:"mimetype" json:"mimetype"`
	Size       int64  `db:"size" json:"size"`
	UploadPath string `db:"upload_path" json:"uploadPath"`
}
