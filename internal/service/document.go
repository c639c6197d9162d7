package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"riskmai/internal/extract"
	"riskmai/internal/model"
	"riskmai/internal/repository"
	"riskmai/internal/storage"
)

// UploadInput is an uploaded file already read into memory.
type UploadInput struct {
	CompanyID   string
	FileName    string
	ContentType string
	Data        []byte
}

// DocumentService defines the use cases for handling documents.
type DocumentService interface {
	// Upload validates the extension, extracts text, stores the raw bytes and saves the document.
	// Nothing is written when validation or extraction fails. The blob is removed if the DB save fails.
	Upload(ctx context.Context, in UploadInput) (*model.Document, error)

	// OpenFile streams the raw bytes of a company's document from object storage.
	// The caller must close the reader.
	OpenFile(ctx context.Context, companyID, documentID string) (io.ReadCloser, *model.Document, error)
}

type documentService struct {
	store     storage.Storage
	repo      repository.DocumentRepository
	companies repository.CompanyRepository
	extractor extract.Extractor
}

// NewDocumentService constructs a new DocumentService.
func NewDocumentService(store storage.Storage, repo repository.DocumentRepository, companies repository.CompanyRepository, extractor extract.Extractor) DocumentService {
	return &documentService{store: store, repo: repo, companies: companies, extractor: extractor}
}

func (s *documentService) Upload(ctx context.Context, in UploadInput) (*model.Document, error) {
	fileName := path.Base(filepath.ToSlash(strings.TrimSpace(in.FileName)))
	if fileName == "" || fileName == "." || fileName == "/" {
		return nil, validationError("file", "No selected file")
	}
	if !extract.Supported(fileName) {
		return nil, validationError("file", "Invalid file type, only PDF and EML files are accepted.")
	}
	if !validID(in.CompanyID) {
		return nil, &NotFoundError{Resource: "company", ID: in.CompanyID}
	}
	if _, err := s.companies.FindByID(ctx, in.CompanyID); err != nil {
		return nil, lookupError("company", in.CompanyID, "get company", err)
	}

	res, err := s.extractor.Extract(in.Data, filepath.Ext(fileName))
	if err != nil {
		if errors.Is(err, extract.ErrUnsupportedType) {
			return nil, validationError("file", err.Error())
		}
		return nil, err
	}

	docID := uuid.New().String()
	key := path.Join(in.CompanyID, docID, fileName)
	contentType := contentTypeFor(res.Kind, in.ContentType)

	objInfo, err := s.store.Put(ctx, key, bytes.NewReader(in.Data), storage.PutObjectOptions{
		Size:        int64(len(in.Data)),
		ContentType: contentType,
		Metadata: map[string]string{
			"original-filename": fileName,
			"company-id":        in.CompanyID,
		},
	})
	if err != nil {
		return nil, &StoreError{Op: "upload to storage", Err: err}
	}

	doc := &model.Document{
		ID:          docID,
		CompanyID:   in.CompanyID,
		FileName:    fileName,
		Content:     res.Text,
		FileType:    res.Kind,
		BlobURL:     objInfo.Location,
		StorageKey:  objInfo.Key,
		Size:        int64(len(in.Data)),
		ContentType: contentType,
		EmailMeta:   res.Email,
		UploadedAt:  time.Now().UTC(),
	}
	stored, err := s.repo.Create(ctx, doc)
	if err != nil {
		// Rollback: delete the object from storage
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			zap.L().Error("rollback delete failed",
				zap.String("storage_key", key),
				zap.Error(delErr),
			)
		}
		return nil, &StoreError{Op: "db save failed", Err: err}
	}
	return stored, nil
}

func (s *documentService) OpenFile(ctx context.Context, companyID, documentID string) (io.ReadCloser, *model.Document, error) {
	if !validID(companyID) || !validID(documentID) {
		return nil, nil, &NotFoundError{Resource: "document", ID: documentID}
	}
	doc, err := s.repo.FindByID(ctx, documentID)
	if err != nil {
		return nil, nil, lookupError("document", documentID, "get document", err)
	}
	if doc.CompanyID != companyID {
		return nil, nil, &NotFoundError{Resource: "document", ID: documentID}
	}
	rc, _, err := s.store.Get(ctx, doc.StorageKey)
	if err != nil {
		return nil, nil, &StoreError{Op: "read from storage", Err: err}
	}
	return rc, doc, nil
}

func contentTypeFor(kind, declared string) string {
	if declared != "" && declared != "application/octet-stream" {
		return declared
	}
	if kind == model.FileTypeEmail {
		return "message/rfc822"
	}
	return "application/pdf"
}
