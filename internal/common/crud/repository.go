package crud

import (
	"context"

	"go-rental/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Repository is the shared Mongo persistence used by every entity collection.
type Repository[T Entity] struct {
	Collection *mongo.Collection
	newEntity  func() T
}

func NewRepository[T Entity](mongodb *database.MongodbDB, collection string, newEntity func() T) *Repository[T] {
	return &Repository[T]{
		Collection: mongodb.DB.Collection(collection),
		newEntity:  newEntity,
	}
}

func (r *Repository[T]) FindAll(ctx context.Context, limit, offset int64) ([]T, error) {
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	if limit > 0 {
		opts = opts.SetLimit(limit).SetSkip(offset)
	}

	cursor, err := r.Collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := []T{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *Repository[T]) FindByID(ctx context.Context, id primitive.ObjectID) (T, error) {
	entity := r.newEntity()
	err := r.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(entity)
	if err != nil {
		var zero T
		return zero, err
	}
	return entity, nil
}

func (r *Repository[T]) Insert(ctx context.Context, entity T) error {
	if entity.GetID().IsZero() {
		entity.SetID(primitive.NewObjectID())
	}
	_, err := r.Collection.InsertOne(ctx, entity)
	return err
}

func (r *Repository[T]) Replace(ctx context.Context, id primitive.ObjectID, entity T) error {
	entity.SetID(id)
	_, err := r.Collection.ReplaceOne(ctx, bson.M{"_id": id}, entity)
	return err
}

func (r *Repository[T]) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.Collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
