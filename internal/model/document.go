package model

import "time"

// File types recorded on a Document.
const (
	FileTypePDF   = "pdf"
	FileTypeEmail = "email"
)

// Document is an uploaded file with its extracted text.
// It is a pure domain model with no database-specific tags and is never updated after creation.
type Document struct {
	ID          string     `json:"id"`
	CompanyID   string     `json:"company_id"`
	FileName    string     `json:"file_name"`
	Content     string     `json:"content"`
	FileType    string     `json:"file_type"`
	BlobURL     string     `json:"blob_url"`
	StorageKey  string     `json:"storage_key"`
	Size        int64      `json:"size"`
	ContentType string     `json:"content_type"`
	EmailMeta   *EmailMeta `json:"email_meta,omitempty"`
	UploadedAt  time.Time  `json:"uploaded_at"`
}

// EmailMeta holds the parsed headers of an uploaded email.
type EmailMeta struct {
	Subject string `json:"subject"`
	From    string `json:"from"`
	To      string `json:"to"`
	Date    string `json:"date"`
}
