package document

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go-rental/internal/config"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type DocumentService interface {
	StoreUploads(ctx context.Context, module, recordID string, files []*multipart.FileHeader, single bool) ([]Document, error)
	ListByRecord(ctx context.Context, module, recordID string) ([]Document, error)
	MapByRecords(ctx context.Context, module string, recordIDs []string) (map[string][]Document, error)
	RemoveByName(ctx context.Context, module, recordID, name string) error
	RemoveByURL(ctx context.Context, module, recordID, url string) error
	RemoveAll(ctx context.Context, module, recordID string) error
}

type DocumentServiceImpl struct {
	Repo      DocumentRepository
	UploadDir string
	Origin    string
	Logger    *zap.Logger
}

func NewDocumentService(repo DocumentRepository, cfg *config.Config, logger *zap.Logger) DocumentService {
	if _, err := os.Stat(cfg.FSPath); os.IsNotExist(err) {
		os.MkdirAll(cfg.FSPath, 0755)
	}
	return &DocumentServiceImpl{
		Repo:      repo,
		UploadDir: cfg.FSPath,
		Origin:    cfg.ServerOrigin,
		Logger:    logger,
	}
}

// StoreUploads writes the uploaded parts to disk and persists their metadata.
// In single mode the new file replaces whatever the record already had.
func (s *DocumentServiceImpl) StoreUploads(ctx context.Context, module, recordID string, files []*multipart.FileHeader, single bool) ([]Document, error) {
	if len(files) == 0 {
		return nil, nil
	}

	if single {
		files = files[:1]
		if err := s.RemoveAll(ctx, module, recordID); err != nil {
			return nil, fmt.Errorf("failed to replace existing document: %w", err)
		}
	}

	stored := make([]Document, 0, len(files))
	for _, fh := range files {
		originalName := filepath.Base(fh.Filename)
		uniqueName := fmt.Sprintf("%s_%s", uuid.New().String(), originalName)
		uniqueName = strings.ReplaceAll(uniqueName, " ", "_")
		dstPath := filepath.Join(s.UploadDir, uniqueName)

		if err := saveMultipartFile(fh, dstPath); err != nil {
			return stored, fmt.Errorf("error saving file to disk: %w", err)
		}

		mimeHint := fh.Header.Get("Content-Type")
		if mimeHint == "" {
			mimeHint = mimeFromExtension(originalName)
		}

		doc := Document{
			Name:      originalName,
			MimeHint:  mimeHint,
			Size:      fh.Size,
			Location:  dstPath,
			Module:    module,
			RecordID:  recordID,
			CreatedAt: time.Now(),
		}

		if err := s.Repo.Save(ctx, &doc); err != nil {
			os.Remove(dstPath)
			return stored, fmt.Errorf("error saving document metadata: %w", err)
		}

		s.decorate(&doc)
		stored = append(stored, doc)
	}

	s.Logger.Info("documents stored",
		zap.String("module", module),
		zap.String("record_id", recordID),
		zap.Int("count", len(stored)))

	return stored, nil
}

func (s *DocumentServiceImpl) ListByRecord(ctx context.Context, module, recordID string) ([]Document, error) {
	docs, err := s.Repo.FindByRecord(ctx, module, recordID)
	if err != nil {
		return nil, err
	}
	for i := range docs {
		s.decorate(&docs[i])
	}
	return docs, nil
}

// MapByRecords fetches the documents of many records in one query, grouped by
// record ID, so list endpoints avoid a query per row.
func (s *DocumentServiceImpl) MapByRecords(ctx context.Context, module string, recordIDs []string) (map[string][]Document, error) {
	if len(recordIDs) == 0 {
		return map[string][]Document{}, nil
	}

	docs, err := s.Repo.FindByRecords(ctx, module, recordIDs)
	if err != nil {
		return nil, err
	}

	out := make(map[string][]Document, len(recordIDs))
	for i := range docs {
		s.decorate(&docs[i])
		out[docs[i].RecordID] = append(out[docs[i].RecordID], docs[i])
	}
	return out, nil
}

func (s *DocumentServiceImpl) RemoveByName(ctx context.Context, module, recordID, name string) error {
	doc, err := s.Repo.FindByName(ctx, module, recordID, name)
	if err != nil {
		return fmt.Errorf("document not found: %w", err)
	}
	return s.remove(ctx, doc)
}

// RemoveByURL matches the document whose stored file name equals the last
// segment of the given URL. Some entity forms only hold the resolved URL.
func (s *DocumentServiceImpl) RemoveByURL(ctx context.Context, module, recordID, url string) error {
	target := lastSegment(url)
	if target == "" {
		return fmt.Errorf("cannot extract file name from url: %s", url)
	}

	docs, err := s.Repo.FindByRecord(ctx, module, recordID)
	if err != nil {
		return err
	}
	for i := range docs {
		if lastSegment(docs[i].Location) == target || docs[i].Name == target {
			return s.remove(ctx, &docs[i])
		}
	}
	return fmt.Errorf("document not found for url: %s", url)
}

func (s *DocumentServiceImpl) RemoveAll(ctx context.Context, module, recordID string) error {
	docs, err := s.Repo.DeleteByRecord(ctx, module, recordID)
	if err != nil {
		return err
	}
	for i := range docs {
		s.removeStoredFile(docs[i].Location)
	}
	return nil
}

// remove deletes metadata first so the record never references a file that is
// already gone; a leftover file on disk is the lesser inconsistency.
func (s *DocumentServiceImpl) remove(ctx context.Context, doc *Document) error {
	if err := s.Repo.Delete(ctx, doc.ID); err != nil {
		return err
	}
	s.removeStoredFile(doc.Location)
	return nil
}

func (s *DocumentServiceImpl) removeStoredFile(location string) {
	if location == "" || IsTransient(location) {
		return
	}
	if err := os.Remove(location); err != nil && !os.IsNotExist(err) {
		s.Logger.Warn("failed to delete stored file", zap.String("location", location), zap.Error(err))
	}
}

func (s *DocumentServiceImpl) decorate(doc *Document) {
	doc.Origin = OriginExisting
	if doc.MimeHint == "" {
		doc.MimeHint = mimeFromExtension(doc.Name)
	}
	doc.Kind = Classify(*doc)
	doc.URL = ResolveURL(*doc, s.Origin)
}

func saveMultipartFile(fh *multipart.FileHeader, dstPath string) error {
	src, err := fh.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.Create(dstPath)
	if err != nil {
		return err
	}
	defer dst.Close()

	_, err = io.Copy(dst, src)
	return err
}
