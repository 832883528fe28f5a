package customerRepo

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

// MongoCustomerRepo implements CustomerRepository using MongoDB.
type MongoCustomerRepo struct {
	coll *mongo.Collection
}

// NewMongoCustomerRepo creates a new instance of CustomerRepository using MongoDB.
func NewMongoCustomerRepo() CustomerRepository {
	coll := database.MongoClient.Database(database.DatabaseName).Collection("customers")
	repo := &MongoCustomerRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create customer indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in lookups.
func (r *MongoCustomerRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "external_id", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new mirrored customer record.
func (r *MongoCustomerRepo) Create(customer *models.Customer) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, customer); err != nil {
		return fmt.Errorf("failed to create customer mirror: %w", err)
	}
	return nil
}

// Update replaces the mirrored record identified by its local id.
func (r *MongoCustomerRepo) Update(customer *models.Customer) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	customer.UpdatedAt = time.Now()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": customer.ID}, customer)
	if err != nil {
		return fmt.Errorf("failed to update customer mirror %s: %w", customer.ID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("customer mirror %s not found", customer.ID)
	}
	return nil
}

// GetByEmail retrieves a mirrored customer by email. Returns (nil, nil) when absent.
func (r *MongoCustomerRepo) GetByEmail(email string) (*models.Customer, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var customer models.Customer
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&customer); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch customer with email %s: %w", email, err)
	}
	return &customer, nil
}

// GetByExternalID retrieves a mirrored customer by its external platform id.
func (r *MongoCustomerRepo) GetByExternalID(externalID string) (*models.Customer, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var customer models.Customer
	if err := r.coll.FindOne(ctx, bson.M{"external_id": externalID}).Decode(&customer); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch customer with external id %s: %w", externalID, err)
	}
	return &customer, nil
}

// Delete removes a mirrored customer by its local id.
func (r *MongoCustomerRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete customer mirror %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("customer mirror %s not found", id)
	}
	return nil
}
