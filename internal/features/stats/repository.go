package stats

import (
	"context"

	"go-rental/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type StatsRepository interface {
	CountVehiclesByStatus(ctx context.Context) (map[string]int64, error)
	SumAmountBetween(ctx context.Context, collection, dateField, from, to string) (float64, error)
	CountTraitesDueBefore(ctx context.Context, cutoff string) (int64, error)
	CountExpiringBefore(ctx context.Context, collection, dateField, from, to string) (int64, error)
}

type StatsRepositoryImpl struct {
	DB *mongo.Database
}

func NewStatsRepository(mongodb *database.MongodbDB) StatsRepository {
	return &StatsRepositoryImpl{DB: mongodb.DB}
}

func (r *StatsRepositoryImpl) CountVehiclesByStatus(ctx context.Context) (map[string]int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":   "$status",
			"count": bson.M{"$sum": 1},
		}}},
	}

	cursor, err := r.DB.Collection("vehicles").Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Status string `bson:"_id"`
		Count  int64  `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	out := make(map[string]int64, len(rows))
	for _, row := range rows {
		out[row.Status] = row.Count
	}
	return out, nil
}

// SumAmountBetween totals the "amount"/"cost" style field of one collection
// over a date window. Dates are stored as 2006-01-02 strings, so the range
// compares lexicographically.
func (r *StatsRepositoryImpl) SumAmountBetween(ctx context.Context, collection, dateField, from, to string) (float64, error) {
	amountField := "$amount"
	if collection == "interventions" {
		amountField = "$cost"
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			dateField: bson.M{"$gte": from, "$lte": to},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": amountField},
		}}},
	}

	cursor, err := r.DB.Collection(collection).Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Total float64 `bson:"total"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].Total, nil
}

func (r *StatsRepositoryImpl) CountTraitesDueBefore(ctx context.Context, cutoff string) (int64, error) {
	return r.DB.Collection("traites").CountDocuments(ctx, bson.M{
		"paid":     false,
		"due_date": bson.M{"$lte": cutoff},
	})
}

func (r *StatsRepositoryImpl) CountExpiringBefore(ctx context.Context, collection, dateField, from, to string) (int64, error) {
	return r.DB.Collection(collection).CountDocuments(ctx, bson.M{
		dateField: bson.M{"$gte": from, "$lte": to},
	})
}
