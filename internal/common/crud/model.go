package crud

import (
	"time"

	"go-rental/internal/features/document"
	"go-rental/internal/rule"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Entity is implemented by every parent record type managed through the
// generic panel. Model provides everything except Validate.
type Entity interface {
	GetID() primitive.ObjectID
	SetID(id primitive.ObjectID)
	GetCreatedAt() time.Time
	Stamp(createdAt, now time.Time)
	AttachDocuments(docs []document.Document)
	// Validate recomputes derived fields and returns per-field errors,
	// nil when the record is valid.
	Validate(now time.Time) rule.ValidationErrors
}

// Model is embedded by every entity struct.
type Model struct {
	ID        primitive.ObjectID  `json:"id" bson:"_id,omitempty" form:"-"`
	CreatedAt time.Time           `json:"created_at" bson:"created_at" form:"-"`
	UpdatedAt time.Time           `json:"updated_at" bson:"updated_at" form:"-"`
	Documents []document.Document `json:"documents" bson:"-" form:"-"`
}

func (m *Model) GetID() primitive.ObjectID {
	return m.ID
}

func (m *Model) SetID(id primitive.ObjectID) {
	m.ID = id
}

func (m *Model) GetCreatedAt() time.Time {
	return m.CreatedAt
}

// Stamp sets the audit timestamps; a zero createdAt means the record is new.
func (m *Model) Stamp(createdAt, now time.Time) {
	if createdAt.IsZero() {
		createdAt = now
	}
	m.CreatedAt = createdAt
	m.UpdatedAt = now
}

func (m *Model) AttachDocuments(docs []document.Document) {
	if docs == nil {
		docs = []document.Document{}
	}
	m.Documents = docs
}

// Schema is the declarative per-entity configuration consumed by the generic
// repository, service and controller.
type Schema struct {
	Module         string // audit/document module name, e.g. "vehicles"
	Path           string // route prefix, e.g. "/api/vehicles"
	Collection     string
	SingleDocument bool   // a new attachment replaces instead of accumulating
	DeleteDocBy    string // payload key for document deletes: "name" or "url"
}

const (
	DeleteDocByName = "name"
	DeleteDocByURL  = "url"
)
