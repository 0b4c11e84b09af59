package repository

import (
	"context"
	"fmt"
	"time"

	"dashbuilder/internal/builder/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoStore struct {
	DB     *mongo.Database
	Prefix string
}

// NewMongoStore stores collection c in the collection named prefix+c.
func NewMongoStore(db *mongo.Database, prefix string) *MongoStore {
	return &MongoStore{DB: db, Prefix: prefix}
}

func (r *MongoStore) collection(name string) (*mongo.Collection, error) {
	if err := checkCollection(name); err != nil {
		return nil, err
	}
	return r.DB.Collection(r.Prefix + name), nil
}

func (r *MongoStore) EnsureIndexes(ctx context.Context) error {
	for _, name := range model.Collections {
		coll, err := r.collection(name)
		if err != nil {
			return err
		}
		idxOwner := mongo.IndexModel{
			Keys: bson.D{
				{Key: OwnerField, Value: 1},
				{Key: "name", Value: 1},
			},
			Options: options.Index().SetName("owner_name"),
		}
		if _, err := coll.Indexes().CreateOne(ctx, idxOwner); err != nil {
			return fmt.Errorf("ensure indexes on %s: %w", name, err)
		}
	}
	return nil
}

func (r *MongoStore) Save(ctx context.Context, collection, ownerID string, doc model.Document, mode SaveMode) error {
	coll, err := r.collection(collection)
	if err != nil {
		return err
	}
	record, err := toRecord(doc, ownerID)
	if err != nil {
		return err
	}
	now := time.Now()
	record["updatedAt"] = now

	switch mode {
	case ModeCreate:
		record["createdAt"] = now
		if _, err := coll.InsertOne(ctx, record); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return ErrDuplicate
			}
			return err
		}
		return nil
	case ModeUpdate:
		filter := bson.M{"_id": doc.DocumentID(), OwnerField: ownerID}
		delete(record, "_id")
		update := bson.M{"$set": record}
		res, err := coll.UpdateOne(ctx, filter, update)
		if err != nil {
			return err
		}
		if res.MatchedCount == 0 {
			return ErrNotFound
		}
		return nil
	}
	return fmt.Errorf("invalid save mode %q", mode)
}

func (r *MongoStore) Delete(ctx context.Context, collection, ownerID, id string) error {
	coll, err := r.collection(collection)
	if err != nil {
		return err
	}
	res, err := coll.DeleteOne(ctx, bson.M{"_id": id, OwnerField: ownerID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoStore) List(ctx context.Context, collection, ownerID string, results any) error {
	coll, err := r.collection(collection)
	if err != nil {
		return err
	}
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := coll.Find(ctx, bson.M{OwnerField: ownerID}, opts)
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)
	return cursor.All(ctx, results)
}

// toRecord flattens doc into a bson.M keyed by its id and stamped with its
// owner. Entities nested in other documents (visualizations) carry their id
// under "id", so _id is always set explicitly.
func toRecord(doc model.Document, ownerID string) (bson.M, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal document %s: %w", doc.DocumentID(), err)
	}
	var record bson.M
	if err := bson.Unmarshal(raw, &record); err != nil {
		return nil, fmt.Errorf("unmarshal document %s: %w", doc.DocumentID(), err)
	}
	record["_id"] = doc.DocumentID()
	record[OwnerField] = ownerID
	return record, nil
}
