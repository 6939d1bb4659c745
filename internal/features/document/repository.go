package document

import (
	"context"

	"go-rental/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type DocumentRepository interface {
	Save(ctx context.Context, doc *Document) error
	FindByRecord(ctx context.Context, module, recordID string) ([]Document, error)
	FindByRecords(ctx context.Context, module string, recordIDs []string) ([]Document, error)
	FindByName(ctx context.Context, module, recordID, name string) (*Document, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteByRecord(ctx context.Context, module, recordID string) ([]Document, error)
	EnsureIndexes(ctx context.Context) error
}

type DocumentRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewDocumentRepository(mongodb *database.MongodbDB) DocumentRepository {
	return &DocumentRepositoryImpl{
		Collection: mongodb.DB.Collection("documents"),
	}
}

func (r *DocumentRepositoryImpl) Save(ctx context.Context, doc *Document) error {
	if doc.ID.IsZero() {
		doc.ID = primitive.NewObjectID()
	}
	_, err := r.Collection.InsertOne(ctx, doc)
	return err
}

func (r *DocumentRepositoryImpl) FindByRecord(ctx context.Context, module, recordID string) ([]Document, error) {
	filter := bson.M{
		"module":    module,
		"record_id": recordID,
	}
	cursor, err := r.Collection.Find(ctx, filter, options.Find().SetSort(bson.M{"created_at": 1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []Document
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func (r *DocumentRepositoryImpl) FindByRecords(ctx context.Context, module string, recordIDs []string) ([]Document, error) {
	filter := bson.M{
		"module":    module,
		"record_id": bson.M{"$in": recordIDs},
	}
	cursor, err := r.Collection.Find(ctx, filter, options.Find().SetSort(bson.M{"created_at": 1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []Document
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func (r *DocumentRepositoryImpl) FindByName(ctx context.Context, module, recordID, name string) (*Document, error) {
	var doc Document
	err := r.Collection.FindOne(ctx, bson.M{
		"module":    module,
		"record_id": recordID,
		"name":      name,
	}).Decode(&doc)
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *DocumentRepositoryImpl) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.Collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// DeleteByRecord removes every document of one parent record and returns the
// removed metadata so the caller can clean up the stored files.
func (r *DocumentRepositoryImpl) DeleteByRecord(ctx context.Context, module, recordID string) ([]Document, error) {
	docs, err := r.FindByRecord(ctx, module, recordID)
	if err != nil {
		return nil, err
	}

	_, err = r.Collection.DeleteMany(ctx, bson.M{
		"module":    module,
		"record_id": recordID,
	})
	if err != nil {
		return nil, err
	}
	return docs, nil
}

func (r *DocumentRepositoryImpl) EnsureIndexes(ctx context.Context) error {
	_, err := r.Collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "module", Value: 1},
			{Key: "record_id", Value: 1},
		},
	})
	return err
}
