package mongodb

import (
	"context"
	"time"

	apperrors "snapfeed/internal/shared/errors"
	"snapfeed/internal/social/domain/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoProfileRepository implements ProfileRepository using MongoDB.
type MongoProfileRepository struct {
	collection *mongo.Collection
}

// NewMongoProfileRepository creates a new MongoDB profile repository.
func NewMongoProfileRepository(db *mongo.Database, collectionName string) (*MongoProfileRepository, error) {
	repo := &MongoProfileRepository{
		collection: db.Collection(collectionName),
	}

	ctx := context.Background()

	accountIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "accountId", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := repo.collection.Indexes().CreateOne(ctx, accountIndex); err != nil {
		return nil, err
	}

	usernameIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "username", Value: 1}},
	}
	if _, err := repo.collection.Indexes().CreateOne(ctx, usernameIndex); err != nil {
		return nil, err
	}

	return repo, nil
}

// Create inserts a new profile document.
func (r *MongoProfileRepository) Create(ctx context.Context, profile *model.Profile) error {
	_, err := r.collection.InsertOne(ctx, profile)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.ErrConflict
		}
		return err
	}
	return nil
}

// GetByID retrieves a profile by document ID.
func (r *MongoProfileRepository) GetByID(ctx context.Context, id string) (*model.Profile, error) {
	var profile model.Profile
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&profile)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// GetByAccountID retrieves a profile by its identity account ID.
func (r *MongoProfileRepository) GetByAccountID(ctx context.Context, accountID string) (*model.Profile, error) {
	var profile model.Profile
	err := r.collection.FindOne(ctx, bson.M{"accountId": accountID}).Decode(&profile)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// List returns profiles, newest first.
func (r *MongoProfileRepository) List(ctx context.Context, limit int64) ([]*model.Profile, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var profiles []*model.Profile
	if err := cursor.All(ctx, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

// Search matches the term against name and username, case-insensitively.
func (r *MongoProfileRepository) Search(ctx context.Context, term string, limit int64) ([]*model.Profile, error) {
	pattern := primitive.Regex{Pattern: term, Options: "i"}
	filter := bson.M{"$or": []bson.M{
		{"name": pattern},
		{"username": pattern},
	}}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var profiles []*model.Profile
	if err := cursor.All(ctx, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

// UpdateFields applies a field-level update and returns the updated document.
func (r *MongoProfileRepository) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) (*model.Profile, error) {
	set := bson.M{"updated_at": time.Now()}
	for k, v := range fields {
		set[k] = v
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var profile model.Profile
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&profile)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// AddFollowing appends targetID to the profile's following list with an
// atomic set-add, so concurrent follows cannot lose updates.
func (r *MongoProfileRepository) AddFollowing(ctx context.Context, profileID, targetID string) error {
	return r.setOp(ctx, profileID, "$addToSet", "followingId", targetID)
}

// RemoveFollowing removes targetID from the profile's following list.
func (r *MongoProfileRepository) RemoveFollowing(ctx context.Context, profileID, targetID string) error {
	return r.setOp(ctx, profileID, "$pull", "followingId", targetID)
}

// AddFollower appends followerID to the profile's follower list.
func (r *MongoProfileRepository) AddFollower(ctx context.Context, profileID, followerID string) error {
	return r.setOp(ctx, profileID, "$addToSet", "followerId", followerID)
}

// RemoveFollower removes followerID from the profile's follower list.
func (r *MongoProfileRepository) RemoveFollower(ctx context.Context, profileID, followerID string) error {
	return r.setOp(ctx, profileID, "$pull", "followerId", followerID)
}

func (r *MongoProfileRepository) setOp(ctx context.Context, profileID, op, field, value string) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": profileID}, bson.M{
		op:     bson.M{field: value},
		"$set": bson.M{"updated_at": time.Now()},
	})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrProfileNotFound
	}
	return nil
}
