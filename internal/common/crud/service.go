package crud

import (
	"context"
	"errors"
	"mime/multipart"
	"time"

	common_models "go-rental/internal/common/models"
	"go-rental/internal/features/audit"
	"go-rental/internal/features/document"
	"go-rental/internal/rule"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

var ErrNotFound = errors.New("record not found")

// Service carries the behavior every entity panel shares: validation with
// derived fields, persistence, document coordination and audit logging.
type Service[T Entity] struct {
	Repo   *Repository[T]
	Docs   document.DocumentService
	Audit  audit.AuditService
	Schema Schema
	Logger *zap.Logger
}

func NewService[T Entity](repo *Repository[T], docs document.DocumentService, auditSvc audit.AuditService, schema Schema, logger *zap.Logger) *Service[T] {
	return &Service[T]{
		Repo:   repo,
		Docs:   docs,
		Audit:  auditSvc,
		Schema: schema,
		Logger: logger,
	}
}

func (s *Service[T]) List(ctx context.Context, limit, offset int64) ([]T, error) {
	items, err := s.Repo.FindAll(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.GetID().Hex())
	}

	docsByRecord, err := s.Docs.MapByRecords(ctx, s.Schema.Module, ids)
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		item.AttachDocuments(docsByRecord[item.GetID().Hex()])
	}

	return items, nil
}

func (s *Service[T]) Get(ctx context.Context, id primitive.ObjectID) (T, error) {
	entity, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		var zero T
		if errors.Is(err, mongo.ErrNoDocuments) {
			return zero, ErrNotFound
		}
		return zero, err
	}

	docs, err := s.Docs.ListByRecord(ctx, s.Schema.Module, id.Hex())
	if err != nil {
		var zero T
		return zero, err
	}
	entity.AttachDocuments(docs)

	return entity, nil
}

// Create validates, persists and stores any uploaded documents. A non-nil
// ValidationErrors return means nothing was persisted.
func (s *Service[T]) Create(ctx context.Context, entity T, files []*multipart.FileHeader) (rule.ValidationErrors, error) {
	now := time.Now()

	if errs := s.validate(entity, now); errs != nil {
		return errs, nil
	}

	entity.Stamp(time.Time{}, now)
	if err := s.Repo.Insert(ctx, entity); err != nil {
		return nil, err
	}

	docs, err := s.Docs.StoreUploads(ctx, s.Schema.Module, entity.GetID().Hex(), files, s.Schema.SingleDocument)
	if err != nil {
		s.Logger.Error("document upload failed after create",
			zap.String("module", s.Schema.Module),
			zap.String("record_id", entity.GetID().Hex()),
			zap.Error(err))
		return nil, err
	}
	entity.AttachDocuments(docs)

	_ = s.Audit.LogChange(ctx, common_models.AuditActionCreate, s.Schema.Module, entity.GetID().Hex(), map[string]common_models.Change{
		"record": {New: entity},
	})

	return nil, nil
}

func (s *Service[T]) Update(ctx context.Context, id primitive.ObjectID, entity T, files []*multipart.FileHeader) (rule.ValidationErrors, error) {
	existing, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	now := time.Now()
	if errs := s.validate(entity, now); errs != nil {
		return errs, nil
	}

	entity.Stamp(existing.GetCreatedAt(), now)
	if err := s.Repo.Replace(ctx, id, entity); err != nil {
		return nil, err
	}

	if _, err := s.Docs.StoreUploads(ctx, s.Schema.Module, id.Hex(), files, s.Schema.SingleDocument); err != nil {
		return nil, err
	}

	docs, err := s.Docs.ListByRecord(ctx, s.Schema.Module, id.Hex())
	if err != nil {
		return nil, err
	}
	entity.AttachDocuments(docs)

	_ = s.Audit.LogChange(ctx, common_models.AuditActionUpdate, s.Schema.Module, id.Hex(), map[string]common_models.Change{
		"record": {Old: existing, New: entity},
	})

	return nil, nil
}

// Delete removes the record and every stored document it owns.
func (s *Service[T]) Delete(ctx context.Context, id primitive.ObjectID) error {
	existing, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrNotFound
		}
		return err
	}

	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.Docs.RemoveAll(ctx, s.Schema.Module, id.Hex()); err != nil {
		s.Logger.Warn("failed to remove documents of deleted record",
			zap.String("module", s.Schema.Module),
			zap.String("record_id", id.Hex()),
			zap.Error(err))
	}

	_ = s.Audit.LogChange(ctx, common_models.AuditActionDelete, s.Schema.Module, id.Hex(), map[string]common_models.Change{
		"record": {Old: existing, New: "DELETED"},
	})

	return nil
}

// RemoveDocument deletes a single attachment identified the way this entity's
// delete endpoint expects, by name or by URL.
func (s *Service[T]) RemoveDocument(ctx context.Context, id primitive.ObjectID, identifier string) error {
	var err error
	switch s.Schema.DeleteDocBy {
	case DeleteDocByURL:
		err = s.Docs.RemoveByURL(ctx, s.Schema.Module, id.Hex(), identifier)
	default:
		err = s.Docs.RemoveByName(ctx, s.Schema.Module, id.Hex(), identifier)
	}
	if err != nil {
		return err
	}

	_ = s.Audit.LogChange(ctx, common_models.AuditActionDocument, s.Schema.Module, id.Hex(), map[string]common_models.Change{
		"document": {Old: identifier},
	})

	return nil
}

// validate merges tag validation with the entity's own cross-field and
// derived-field checks. Tag messages win on key collision.
func (s *Service[T]) validate(entity T, now time.Time) rule.ValidationErrors {
	errs := rule.ValidateStruct(entity)
	if errs == nil {
		errs = rule.ValidationErrors{}
	}
	for field, msg := range entity.Validate(now) {
		if _, taken := errs[field]; !taken {
			errs[field] = msg
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}
