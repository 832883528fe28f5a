package identityRepo

import (
	"context"
	"fmt"
	"time"

	"freshfold/database"
	"freshfold/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoIdentityRepo implements IdentityRepository using MongoDB.
type MongoIdentityRepo struct {
	coll *mongo.Collection
}

// NewMongoIdentityRepo creates a new instance of IdentityRepository using MongoDB.
func NewMongoIdentityRepo() IdentityRepository {
	coll := database.MongoClient.Database(database.DatabaseName).Collection("identities")
	repo := &MongoIdentityRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create identity indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoIdentityRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new identity record.
func (r *MongoIdentityRepo) Create(identity *models.Identity) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, identity); err != nil {
		return fmt.Errorf("failed to create identity: %w", err)
	}
	return nil
}

// GetByEmail retrieves an identity by email. Returns (nil, nil) when absent.
func (r *MongoIdentityRepo) GetByEmail(email string) (*models.Identity, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var identity models.Identity
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&identity); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch identity for %s: %w", email, err)
	}
	return &identity, nil
}

// Delete removes an identity by email.
func (r *MongoIdentityRepo) Delete(email string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.DeleteOne(ctx, bson.M{"email": email}); err != nil {
		return fmt.Errorf("failed to delete identity for %s: %w", email, err)
	}
	return nil
}
