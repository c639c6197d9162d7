package service

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"io"
	"strings"
	"testing"

	"riskmai/internal/extract"
	extractMocks "riskmai/internal/extract/mocks"
	"riskmai/internal/model"
	repoMocks "riskmai/internal/repository/mocks"
	"riskmai/internal/storage"
	storeMocks "riskmai/internal/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type documentMocks struct {
	store     *storeMocks.MockStorage
	repo      *repoMocks.MockDocumentRepository
	companies *repoMocks.MockCompanyRepository
	extractor *extractMocks.MockExtractor
}

func newDocumentMocks() documentMocks {
	return documentMocks{
		store:     new(storeMocks.MockStorage),
		repo:      new(repoMocks.MockDocumentRepository),
		companies: new(repoMocks.MockCompanyRepository),
		extractor: new(extractMocks.MockExtractor),
	}
}

func (m documentMocks) service() DocumentService {
	return NewDocumentService(m.store, m.repo, m.companies, m.extractor)
}

func (m documentMocks) assertExpectations(t *testing.T) {
	m.store.AssertExpectations(t)
	m.repo.AssertExpectations(t)
	m.companies.AssertExpectations(t)
	m.extractor.AssertExpectations(t)
}

func echoObject(_ context.Context, key string, _ io.Reader, opt storage.PutObjectOptions) storage.ObjectInfo {
	return storage.ObjectInfo{Key: key, Size: opt.Size, ContentType: opt.ContentType, Location: "http://minio:9000/docs/" + key}
}

func echoDocument(_ context.Context, d *model.Document) *model.Document { return d }

func TestDocumentService_Upload(t *testing.T) {
	ctx := context.Background()
	pdf := []byte("%PDF-1.4 fake")

	tests := []struct {
		name       string
		in         UploadInput
		setupMocks func(m documentMocks)
		check      func(t *testing.T, doc *model.Document)
		wantErr    any
		wantErrMsg string
	}{
		{
			name: "happy path pdf",
			in:   UploadInput{CompanyID: companyID, FileName: "contract.pdf", Data: pdf},
			setupMocks: func(m documentMocks) {
				m.companies.On("FindByID", ctx, companyID).Return(&model.Company{ID: companyID}, nil)
				m.extractor.On("Extract", pdf, ".pdf").Return(&extract.Result{Text: "Contract text", Kind: model.FileTypePDF}, nil)
				m.store.On("Put", ctx, mock.MatchedBy(func(key string) bool {
					return strings.HasPrefix(key, companyID+"/") && strings.HasSuffix(key, "/contract.pdf")
				}), mock.Anything, mock.MatchedBy(func(opt storage.PutObjectOptions) bool {
					return opt.Size == int64(len(pdf)) && opt.ContentType == "application/pdf" &&
						opt.Metadata["original-filename"] == "contract.pdf"
				})).Return(echoObject, nil)
				m.repo.On("Create", ctx, mock.Anything).Return(echoDocument, nil)
			},
			check: func(t *testing.T, doc *model.Document) {
				assert.Equal(t, "Contract text", doc.Content)
				assert.Equal(t, model.FileTypePDF, doc.FileType)
				assert.Equal(t, companyID, doc.CompanyID)
				assert.Contains(t, doc.StorageKey, doc.ID)
				assert.True(t, strings.HasPrefix(doc.BlobURL, "http://minio:9000/docs/"))
			},
		},
		{
			name: "email keeps header metadata",
			in:   UploadInput{CompanyID: companyID, FileName: "Notice.EML", Data: []byte("raw")},
			setupMocks: func(m documentMocks) {
				m.companies.On("FindByID", ctx, companyID).Return(&model.Company{ID: companyID}, nil)
				m.extractor.On("Extract", []byte("raw"), ".EML").Return(&extract.Result{
					Text:  "Subject: Notice\nFrom: a@b.c\nTo: d@e.f\nDate: x\n\nbody",
					Kind:  model.FileTypeEmail,
					Email: &model.EmailMeta{Subject: "Notice"},
				}, nil)
				m.store.On("Put", ctx, mock.Anything, mock.Anything, mock.MatchedBy(func(opt storage.PutObjectOptions) bool {
					return opt.ContentType == "message/rfc822"
				})).Return(echoObject, nil)
				m.repo.On("Create", ctx, mock.Anything).Return(echoDocument, nil)
			},
			check: func(t *testing.T, doc *model.Document) {
				assert.Equal(t, model.FileTypeEmail, doc.FileType)
				require.NotNil(t, doc.EmailMeta)
				assert.Equal(t, "Notice", doc.EmailMeta.Subject)
				assert.Contains(t, doc.Content, "Subject: Notice")
			},
		},
		{
			name:       "unsupported extension touches nothing",
			in:         UploadInput{CompanyID: companyID, FileName: "notes.txt", Data: []byte("hello")},
			setupMocks: func(m documentMocks) {},
			wantErr:    &ValidationError{},
		},
		{
			name:       "missing file name",
			in:         UploadInput{CompanyID: companyID, FileName: "  "},
			setupMocks: func(m documentMocks) {},
			wantErr:    &ValidationError{},
		},
		{
			name: "unknown company",
			in:   UploadInput{CompanyID: companyID, FileName: "a.pdf", Data: pdf},
			setupMocks: func(m documentMocks) {
				m.companies.On("FindByID", ctx, companyID).Return(nil, sql.ErrNoRows)
			},
			wantErr: &NotFoundError{},
		},
		{
			name: "extraction failure stores nothing",
			in:   UploadInput{CompanyID: companyID, FileName: "a.pdf", Data: pdf},
			setupMocks: func(m documentMocks) {
				m.companies.On("FindByID", ctx, companyID).Return(&model.Company{ID: companyID}, nil)
				m.extractor.On("Extract", pdf, ".pdf").Return(nil, &extract.ExtractionError{Message: "bad xref"})
			},
			wantErr: &extract.ExtractionError{},
		},
		{
			name: "storage error",
			in:   UploadInput{CompanyID: companyID, FileName: "a.pdf", Data: pdf},
			setupMocks: func(m documentMocks) {
				m.companies.On("FindByID", ctx, companyID).Return(&model.Company{ID: companyID}, nil)
				m.extractor.On("Extract", pdf, ".pdf").Return(&extract.Result{Kind: model.FileTypePDF}, nil)
				m.store.On("Put", ctx, mock.Anything, mock.Anything, mock.Anything).
					Return(storage.ObjectInfo{}, errors.New("storage fail"))
			},
			wantErrMsg: "upload to storage: storage fail",
		},
		{
			name: "repository error with successful rollback",
			in:   UploadInput{CompanyID: companyID, FileName: "a.pdf", Data: pdf},
			setupMocks: func(m documentMocks) {
				m.companies.On("FindByID", ctx, companyID).Return(&model.Company{ID: companyID}, nil)
				m.extractor.On("Extract", pdf, ".pdf").Return(&extract.Result{Kind: model.FileTypePDF}, nil)
				m.store.On("Put", ctx, mock.Anything, mock.Anything, mock.Anything).Return(echoObject, nil)
				m.repo.On("Create", ctx, mock.Anything).Return(nil, errors.New("db fail"))
				m.store.On("Delete", ctx, mock.MatchedBy(func(key string) bool {
					return strings.HasSuffix(key, "/a.pdf")
				})).Return(nil)
			},
			wantErrMsg: "db save failed: db fail",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newDocumentMocks()
			tt.setupMocks(m)

			doc, err := m.service().Upload(ctx, tt.in)

			switch want := tt.wantErr.(type) {
			case *ValidationError:
				assert.ErrorAs(t, err, &want)
				assert.Nil(t, doc)
				m.store.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
				m.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
				m.companies.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
				m.extractor.AssertNotCalled(t, "Extract", mock.Anything, mock.Anything)
			case *NotFoundError:
				assert.ErrorAs(t, err, &want)
			case *extract.ExtractionError:
				assert.ErrorAs(t, err, &want)
				m.store.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			default:
				if tt.wantErrMsg != "" {
					require.Error(t, err)
					assert.Contains(t, err.Error(), tt.wantErrMsg)
					var se *StoreError
					assert.ErrorAs(t, err, &se)
				} else {
					require.NoError(t, err)
					require.NotNil(t, doc)
					tt.check(t, doc)
				}
			}
			m.assertExpectations(t)
		})
	}
}

func TestDocumentService_Upload_RollbackFailureIsLogged(t *testing.T) {
	ctx := context.Background()
	core, logs := observer.New(zap.ErrorLevel)
	restore := zap.ReplaceGlobals(zap.New(core))
	defer restore()

	m := newDocumentMocks()
	m.companies.On("FindByID", ctx, companyID).Return(&model.Company{ID: companyID}, nil)
	m.extractor.On("Extract", mock.Anything, ".pdf").Return(&extract.Result{Kind: model.FileTypePDF}, nil)
	m.store.On("Put", ctx, mock.Anything, mock.Anything, mock.Anything).Return(echoObject, nil)
	m.repo.On("Create", ctx, mock.Anything).Return(nil, errors.New("db fail"))
	m.store.On("Delete", ctx, mock.Anything).Return(errors.New("delete fail"))

	_, err := m.service().Upload(ctx, UploadInput{CompanyID: companyID, FileName: "a.pdf", Data: []byte("x")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db save failed: db fail")

	entries := logs.FilterMessage("rollback delete failed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "delete fail", entries[0].ContextMap()["error"])
	m.assertExpectations(t)
}

func TestDocumentService_OpenFile(t *testing.T) {
	ctx := context.Background()
	const docID = "0b7e9a52-8d7f-4b8f-9c0c-5e2a7f1d3c44"

	t.Run("streams blob", func(t *testing.T) {
		m := newDocumentMocks()
		m.repo.On("FindByID", ctx, docID).Return(&model.Document{ID: docID, CompanyID: companyID, StorageKey: "k"}, nil)
		m.store.On("Get", ctx, "k").Return(io.NopCloser(bytes.NewReader([]byte("blob"))), storage.ObjectInfo{Key: "k"}, nil)

		rc, doc, err := m.service().OpenFile(ctx, companyID, docID)
		require.NoError(t, err)
		defer rc.Close()
		body, _ := io.ReadAll(rc)
		assert.Equal(t, "blob", string(body))
		assert.Equal(t, docID, doc.ID)
		m.assertExpectations(t)
	})

	t.Run("document of another company", func(t *testing.T) {
		m := newDocumentMocks()
		m.repo.On("FindByID", ctx, docID).Return(&model.Document{ID: docID, CompanyID: "other"}, nil)

		_, _, err := m.service().OpenFile(ctx, companyID, docID)
		var nf *NotFoundError
		assert.ErrorAs(t, err, &nf)
		m.store.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	})

	t.Run("missing document", func(t *testing.T) {
		m := newDocumentMocks()
		m.repo.On("FindByID", ctx, docID).Return(nil, sql.ErrNoRows)

		_, _, err := m.service().OpenFile(ctx, companyID, docID)
		var nf *NotFoundError
		assert.ErrorAs(t, err, &nf)
	})

	t.Run("storage error", func(t *testing.T) {
		m := newDocumentMocks()
		m.repo.On("FindByID", ctx, docID).Return(&model.Document{ID: docID, CompanyID: companyID, StorageKey: "k"}, nil)
		m.store.On("Get", ctx, "k").Return(nil, storage.ObjectInfo{}, errors.New("gone"))

		_, _, err := m.service().OpenFile(ctx, companyID, docID)
		var se *StoreError
		assert.ErrorAs(t, err, &se)
	})
}
