package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	// DBName is fixed; the deployment selects the server via MONGO_URI only.
	DBName = "test"

	Users    = "users"
	Messages = "messages"
)

// Store is the document-store façade the rest of the backend talks to.
// Each operation is a direct passthrough: no retries, no transactions,
// no caching. FindOneByField reports a miss as mongo.ErrNoDocuments.
type Store interface {
	FindAll(ctx context.Context, collection string) ([]bson.M, error)
	FindOneByField(ctx context.Context, collection, field string, value any) (bson.M, error)
	InsertOne(ctx context.Context, collection string, doc any) error
	DeleteOneByID(ctx context.Context, collection string, id primitive.ObjectID) error
	UpdateOneByID(ctx context.Context, collection string, id primitive.ObjectID, patch bson.M) error
}

// Mongo implements Store against a single MongoDB database.
type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect establishes and pings the MongoDB connection, returning a
// ready-to-use handle. The HTTP listener must not start before this
// returns.
func Connect(ctx context.Context, uri string) (*Mongo, error) {
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	log.Println("Connected to MongoDB successfully")
	return &Mongo{client: client, db: client.Database(DBName)}, nil
}

func (m *Mongo) Disconnect(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := m.client.Disconnect(ctx); err != nil {
		return err
	}

	log.Println("Disconnected from MongoDB")
	return nil
}

func (m *Mongo) FindAll(ctx context.Context, collection string) ([]bson.M, error) {
	cursor, err := m.db.Collection(collection).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	docs := []bson.M{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func (m *Mongo) FindOneByField(ctx context.Context, collection, field string, value any) (bson.M, error) {
	var doc bson.M
	if err := m.db.Collection(collection).FindOne(ctx, bson.M{field: value}).Decode(&doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (m *Mongo) InsertOne(ctx context.Context, collection string, doc any) error {
	_, err := m.db.Collection(collection).InsertOne(ctx, doc)
	return err
}

func (m *Mongo) DeleteOneByID(ctx context.Context, collection string, id primitive.ObjectID) error {
	_, err := m.db.Collection(collection).DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (m *Mongo) UpdateOneByID(ctx context.Context, collection string, id primitive.ObjectID, patch bson.M) error {
	_, err := m.db.Collection(collection).UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": patch})
	return err
}
