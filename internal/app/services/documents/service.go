// Package documents manages the knowledge-base document collection.
package documents

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/transformhub/dashboard/internal/ai"
	"github.com/transformhub/dashboard/internal/app/domain/document"
	"github.com/transformhub/dashboard/internal/app/domain/user"
	"github.com/transformhub/dashboard/internal/app/metrics"
	"github.com/transformhub/dashboard/internal/app/storage"
)

// placeholderContent stands in for real text extraction, which is not
// implemented for uploaded files.
const placeholderContent = "Extracted text content would go here"

// Service owns document uploads and search.
type Service struct {
	store     storage.DocumentStore
	generator ai.Generator
	log       *logrus.Logger
}

// New constructs the documents service.
func New(store storage.DocumentStore, generator ai.Generator, log *logrus.Logger) *Service {
	return &Service{store: store, generator: generator, log: log}
}

// Upload describes an uploaded file. Title and Category are optional form
// fields; the rest comes from the multipart header.
type Upload struct {
	Title    string
	Category string
	Filename string
	FileType string
	FileSize int64
}

// List returns every document.
func (s *Service) List(ctx context.Context) ([]document.Document, error) {
	return s.store.ListDocuments(ctx)
}

// Get returns a single document; storage.ErrNotFound when absent.
func (s *Service) Get(ctx context.Context, id string) (document.Document, error) {
	return s.store.GetDocument(ctx, id)
}

// Search returns all documents whose title, content or tags contain the
// query, case-insensitively.
func (s *Service) Search(ctx context.Context, query string) ([]document.Document, error) {
	return s.store.SearchDocuments(ctx, query)
}

// Create stores an uploaded file's metadata together with an AI analysis of
// its (stubbed) content. Analysis failure degrades to the fixed fallback
// text; the upload itself still succeeds.
func (s *Service) Create(ctx context.Context, up Upload) (document.Document, error) {
	title := up.Title
	if title == "" {
		title = up.Filename
	}

	start := time.Now()
	analysis, genErr := s.generator.AnalyzeDocument(ctx, placeholderContent, up.Filename)
	metrics.RecordGeneratorCall("analyze_document", time.Since(start), genErr)
	if genErr != nil {
		s.log.WithField("filename", up.Filename).WithError(genErr).Warn("document analysis failed")
		analysis = ai.FallbackDocumentAnalysis
	}

	doc := document.Document{
		Title:      title,
		Filename:   up.Filename,
		FileType:   up.FileType,
		FileSize:   up.FileSize,
		Content:    placeholderContent,
		AIAnalysis: analysis,
		Tags:       []string{},
		Category:   up.Category,
		UploadedBy: user.SystemID,
	}
	doc.ApplyDefaults()
	if err := doc.Validate(); err != nil {
		return document.Document{}, err
	}

	created, err := s.store.CreateDocument(ctx, doc)
	if err != nil {
		return document.Document{}, err
	}
	s.log.WithField("document_id", created.ID).Info("document uploaded")
	return created, nil
}
