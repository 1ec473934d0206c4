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

// MongoPostRepository implements PostRepository using MongoDB.
type MongoPostRepository struct {
	collection *mongo.Collection
}

// NewMongoPostRepository creates a new MongoDB post repository.
func NewMongoPostRepository(db *mongo.Database, collectionName string) (*MongoPostRepository, error) {
	repo := &MongoPostRepository{
		collection: db.Collection(collectionName),
	}

	ctx := context.Background()

	creatorIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "creator", Value: 1}, {Key: "created_at", Value: -1}},
	}
	if _, err := repo.collection.Indexes().CreateOne(ctx, creatorIndex); err != nil {
		return nil, err
	}

	updatedIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "updated_at", Value: -1}},
	}
	if _, err := repo.collection.Indexes().CreateOne(ctx, updatedIndex); err != nil {
		return nil, err
	}

	return repo, nil
}

// Create inserts a new post document.
func (r *MongoPostRepository) Create(ctx context.Context, post *model.Post) error {
	_, err := r.collection.InsertOne(ctx, post)
	return err
}

// GetByID retrieves a post by ID.
func (r *MongoPostRepository) GetByID(ctx context.Context, id string) (*model.Post, error) {
	var post model.Post
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&post)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.ErrPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

// UpdateFields applies a field-level update and returns the updated document.
func (r *MongoPostRepository) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) (*model.Post, error) {
	set := bson.M{"updated_at": time.Now()}
	for k, v := range fields {
		set[k] = v
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var post model.Post
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&post)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.ErrPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

// Delete removes a post document.
func (r *MongoPostRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return apperrors.ErrPostNotFound
	}
	return nil
}

// AddLike adds userID to the likes set atomically and returns the updated
// post.
func (r *MongoPostRepository) AddLike(ctx context.Context, postID, userID string) (*model.Post, error) {
	return r.likeOp(ctx, postID, bson.M{"$addToSet": bson.M{"likes": userID}})
}

// RemoveLike removes userID from the likes set atomically.
func (r *MongoPostRepository) RemoveLike(ctx context.Context, postID, userID string) (*model.Post, error) {
	return r.likeOp(ctx, postID, bson.M{"$pull": bson.M{"likes": userID}})
}

func (r *MongoPostRepository) likeOp(ctx context.Context, postID string, update bson.M) (*model.Post, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var post model.Post
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": postID}, update, opts).Decode(&post)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.ErrPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

// ListRecent returns the newest posts, creation time descending.
func (r *MongoPostRepository) ListRecent(ctx context.Context, limit int64) ([]*model.Post, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}
	return r.find(ctx, bson.M{}, opts)
}

// ListByCreator returns every post by a creator, newest first.
func (r *MongoPostRepository) ListByCreator(ctx context.Context, creatorID string) ([]*model.Post, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	return r.find(ctx, bson.M{"creator": creatorID}, opts)
}

// Search matches the term against captions, case-insensitively.
func (r *MongoPostRepository) Search(ctx context.Context, term string, limit int64) ([]*model.Post, error) {
	filter := bson.M{"caption": primitive.Regex{Pattern: term, Options: "i"}}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}
	return r.find(ctx, filter, opts)
}

// ListAfter returns a page ordered by update time descending, starting
// after the cursor post when one is given.
func (r *MongoPostRepository) ListAfter(ctx context.Context, cursor string, limit int64) ([]*model.Post, error) {
	filter := bson.M{}
	if cursor != "" {
		var anchor model.Post
		err := r.collection.FindOne(ctx, bson.M{"_id": cursor}).Decode(&anchor)
		if err != nil {
			if err == mongo.ErrNoDocuments {
				return nil, apperrors.ErrPostNotFound
			}
			return nil, err
		}
		filter["updated_at"] = bson.M{"$lt": anchor.UpdatedAt}
	}

	opts := options.Find().SetSort(bson.D{{Key: "updated_at", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}
	return r.find(ctx, filter, opts)
}

func (r *MongoPostRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*model.Post, error) {
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var posts []*model.Post
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}
