package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tourism-booking/internal/data/entity"
	"tourism-booking/pkg/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type mongoStore struct {
	db  *mongo.Database
	log *zap.Logger
	now func() time.Time
}

// NewMongoStore keeps each collection as a MongoDB collection. Records get a
// uuid "id" and a "created_at" the way the hosted tables assign them.
func NewMongoStore(db *mongo.Database, log *zap.Logger) BookingStore {
	return &mongoStore{
		db:  db,
		log: log.With(zap.String("store", "mongo")),
		now: time.Now,
	}
}

func (s *mongoStore) Insert(ctx context.Context, collection string, record entity.Record) ([]entity.Record, error) {
	doc := bson.M(record.Clone())
	if _, ok := doc["id"]; !ok {
		doc["id"] = utils.GenerateUUIDString()
	}
	if _, ok := doc["created_at"]; !ok {
		doc["created_at"] = s.now().UTC()
	}

	coll := s.db.Collection(collection)
	res, err := coll.InsertOne(ctx, doc)
	if err != nil {
		s.log.Error("Failed to insert document",
			zap.Error(err),
			zap.String("collection", collection),
		)
		return nil, fmt.Errorf("insert into %s: %w", collection, err)
	}

	var stored bson.M
	if err := coll.FindOne(ctx, bson.M{"_id": res.InsertedID}).Decode(&stored); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return []entity.Record{}, nil
		}
		s.log.Error("Failed to read inserted document",
			zap.Error(err),
			zap.String("collection", collection),
		)
		return nil, fmt.Errorf("insert into %s: %w", collection, err)
	}

	return []entity.Record{toRecord(stored)}, nil
}

func (s *mongoStore) SelectAll(ctx context.Context, collection string) ([]entity.Record, error) {
	cursor, err := s.db.Collection(collection).Find(ctx, bson.M{})
	if err != nil {
		s.log.Error("Failed to find documents",
			zap.Error(err),
			zap.String("collection", collection),
		)
		return nil, fmt.Errorf("select from %s: %w", collection, err)
	}
	defer cursor.Close(ctx)

	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		s.log.Error("Failed to decode documents",
			zap.Error(err),
			zap.String("collection", collection),
		)
		return nil, fmt.Errorf("select from %s: %w", collection, err)
	}

	records := make([]entity.Record, 0, len(docs))
	for _, doc := range docs {
		records = append(records, toRecord(doc))
	}
	return records, nil
}

func (s *mongoStore) Ping(ctx context.Context) error {
	return s.db.Client().Ping(ctx, nil)
}

// toRecord drops the driver's internal _id; "id" is the public key.
func toRecord(doc bson.M) entity.Record {
	rec := entity.Record(doc)
	delete(rec, "_id")
	return rec
}
