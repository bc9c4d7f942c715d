package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// MongoStore maps collections onto MongoDB collections. The driver's _id is never
// returned; documents are addressed by their "id" field, which carries a unique index.
type MongoStore struct {
	client  *mongo.Client
	db      *mongo.Database
	indexed sync.Map
}

func NewMongoStore(ctx context.Context, uri, dbName string) (*MongoStore, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("docstore: mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("docstore: mongo ping: %w", err)
	}
	return &MongoStore{client: client, db: client.Database(dbName)}, nil
}

func (s *MongoStore) Find(ctx context.Context, coll string, filter Filter, opts *FindOptions) ([]Document, error) {
	cursor, err := s.db.Collection(coll).Find(ctx, toBSON(filter), options.Find().SetProjection(bson.M{"_id": 0}))
	if err != nil {
		return nil, fmt.Errorf("docstore: find %s: %w", coll, err)
	}
	defer cursor.Close(ctx)

	var docs []Document
	for cursor.Next(ctx) {
		doc, err := fromRaw(cursor.Current)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("docstore: find %s: %w", coll, err)
	}
	// Sorting happens here so timestamps order chronologically on every backend.
	return applyFindOptions(docs, opts), nil
}

func (s *MongoStore) FindOne(ctx context.Context, coll string, filter Filter) (Document, error) {
	raw, err := s.db.Collection(coll).FindOne(ctx, toBSON(filter), options.FindOne().SetProjection(bson.M{"_id": 0})).Raw()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("docstore: find %s: %w", coll, err)
	}
	return fromRaw(raw)
}

func (s *MongoStore) InsertOne(ctx context.Context, coll string, doc Document) error {
	if _, err := keyOf(doc); err != nil {
		return err
	}
	if err := s.ensureIndex(ctx, coll); err != nil {
		return err
	}
	if _, err := s.db.Collection(coll).InsertOne(ctx, bson.M(cloneDoc(doc))); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateKey
		}
		return fmt.Errorf("docstore: insert %s: %w", coll, err)
	}
	return nil
}

func (s *MongoStore) UpdateOne(ctx context.Context, coll string, filter Filter, set Document, opts *UpdateOptions) (UpdateResult, error) {
	if err := s.ensureIndex(ctx, coll); err != nil {
		return UpdateResult{}, err
	}

	update := bson.M{}
	if len(set) > 0 {
		update["$set"] = bson.M(set)
	}
	upsert := opts != nil && opts.Upsert
	if upsert && len(opts.SetOnInsert) > 0 {
		onInsert := bson.M{}
		for k, v := range opts.SetOnInsert {
			// MongoDB rejects a path present in both $set and $setOnInsert.
			if _, dup := set[k]; !dup {
				onInsert[k] = v
			}
		}
		if len(onInsert) > 0 {
			update["$setOnInsert"] = onInsert
		}
	}
	if len(update) == 0 {
		n, err := s.Count(ctx, coll, filter)
		return UpdateResult{Matched: min(n, 1)}, err
	}

	res, err := s.db.Collection(coll).UpdateOne(ctx, toBSON(filter), update, options.UpdateOne().SetUpsert(upsert))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return UpdateResult{}, ErrDuplicateKey
		}
		return UpdateResult{}, fmt.Errorf("docstore: update %s: %w", coll, err)
	}
	return UpdateResult{Matched: res.MatchedCount, Upserted: res.UpsertedCount > 0}, nil
}

func (s *MongoStore) DeleteOne(ctx context.Context, coll string, filter Filter) (int64, error) {
	res, err := s.db.Collection(coll).DeleteOne(ctx, toBSON(filter))
	if err != nil {
		return 0, fmt.Errorf("docstore: delete %s: %w", coll, err)
	}
	return res.DeletedCount, nil
}

func (s *MongoStore) Count(ctx context.Context, coll string, filter Filter) (int64, error) {
	n, err := s.db.Collection(coll).CountDocuments(ctx, toBSON(filter))
	if err != nil {
		return 0, fmt.Errorf("docstore: count %s: %w", coll, err)
	}
	return n, nil
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (s *MongoStore) ensureIndex(ctx context.Context, coll string) error {
	if _, ok := s.indexed.Load(coll); ok {
		return nil
	}
	_, err := s.db.Collection(coll).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: KeyField, Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("docstore: index %s: %w", coll, err)
	}
	s.indexed.Store(coll, struct{}{})
	return nil
}

func toBSON(filter Filter) bson.M {
	out := bson.M{}
	for k, v := range filter {
		out[k] = normalize(v)
	}
	return out
}

// fromRaw goes through relaxed Extended JSON so stored values decode to the same kinds
// as every other backend.
func fromRaw(raw bson.Raw) (Document, error) {
	ext, err := bson.MarshalExtJSON(raw, false, false)
	if err != nil {
		return nil, fmt.Errorf("docstore: decode: %w", err)
	}
	var doc Document
	if err := json.Unmarshal(ext, &doc); err != nil {
		return nil, fmt.Errorf("docstore: decode: %w", err)
	}
	delete(doc, "_id")
	return doc, nil
}
