package document

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Origin distinguishes a newly chosen, unsaved document from one already
// persisted on the parent record.
type Origin string

const (
	OriginNew      Origin = "new"
	OriginExisting Origin = "existing"
)

// Document is one file attached to a parent record.
type Document struct {
	ID       primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name     string             `json:"name" bson:"name"`           // display file name, may be empty
	MimeHint string             `json:"mime_hint" bson:"mime_hint"` // browser-supplied or derived from extension
	Size     int64              `json:"size" bson:"size"`           // 0 when rebuilt from a bare path
	Location string             `json:"location" bson:"location"`   // transient token or server-relative path
	Origin   Origin             `json:"origin" bson:"-"`
	Module   string             `json:"module,omitempty" bson:"module,omitempty"`
	RecordID string             `json:"record_id,omitempty" bson:"record_id,omitempty"`

	// Derived for the console, never stored
	Kind Kind   `json:"kind,omitempty" bson:"-"`
	URL  string `json:"url,omitempty" bson:"-"`

	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// LocalFile is a file the user has chosen but not yet saved. Its location is
// a transient reference only valid for the current session.
type LocalFile struct {
	Name     string `json:"name"`
	MimeHint string `json:"mime_hint"`
	Size     int64  `json:"size"`
	Location string `json:"location"`
}

func fromLocal(f LocalFile) Document {
	return Document{
		Name:     f.Name,
		MimeHint: f.MimeHint,
		Size:     f.Size,
		Location: f.Location,
		Origin:   OriginNew,
	}
}
