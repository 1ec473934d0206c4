package mongodb

import (
	"context"
	"time"

	"snapfeed/internal/auth/domain/model"
	"snapfeed/internal/auth/usecase"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoAuthRepository implements the AuthRepository interface using MongoDB
type MongoAuthRepository struct {
	db                 *mongo.Database
	accountsCollection *mongo.Collection
	sessionsCollection *mongo.Collection
}

// NewMongoAuthRepository creates a new MongoDB auth repository
func NewMongoAuthRepository(db *mongo.Database) (*MongoAuthRepository, error) {
	repo := &MongoAuthRepository{
		db:                 db,
		accountsCollection: db.Collection("accounts"),
		sessionsCollection: db.Collection("sessions"),
	}

	ctx := context.Background()

	// Email index for accounts (unique)
	emailIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := repo.accountsCollection.Indexes().CreateOne(ctx, emailIndex); err != nil {
		return nil, err
	}

	// Token index for sessions
	tokenIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "token", Value: 1}},
	}
	if _, err := repo.sessionsCollection.Indexes().CreateOne(ctx, tokenIndex); err != nil {
		return nil, err
	}

	// TTL index so expired sessions are reaped by MongoDB
	expiresAtIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "expires_at", Value: 1}},
		Options: options.Index().SetExpireAfterSeconds(0),
	}
	if _, err := repo.sessionsCollection.Indexes().CreateOne(ctx, expiresAtIndex); err != nil {
		return nil, err
	}

	return repo, nil
}

// CreateAccount creates a new account in the database
func (r *MongoAuthRepository) CreateAccount(ctx context.Context, account *model.Account) error {
	now := time.Now()
	account.CreatedAt = now
	account.UpdatedAt = now

	if account.ID == "" {
		account.ID = primitive.NewObjectID().Hex()
	}

	doc := bson.M{
		"_id":           account.ID,
		"email":         account.Email,
		"name":          account.Name,
		"password_hash": account.PasswordHash,
		"created_at":    account.CreatedAt,
		"updated_at":    account.UpdatedAt,
	}

	_, err := r.accountsCollection.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return usecase.ErrEmailTaken
		}
		return err
	}

	return nil
}

// GetAccountByEmail retrieves an account by email
func (r *MongoAuthRepository) GetAccountByEmail(ctx context.Context, email string) (*model.Account, error) {
	var account model.Account
	err := r.accountsCollection.FindOne(ctx, bson.M{"email": email}).Decode(&account)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, usecase.ErrAccountNotFound
		}
		return nil, err
	}

	return &account, nil
}

// GetAccountByID retrieves an account by its ID
func (r *MongoAuthRepository) GetAccountByID(ctx context.Context, id string) (*model.Account, error) {
	var account model.Account
	err := r.accountsCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&account)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, usecase.ErrAccountNotFound
		}
		return nil, err
	}

	return &account, nil
}

// CreateSession creates a new session
func (r *MongoAuthRepository) CreateSession(ctx context.Context, session *model.Session) error {
	session.CreatedAt = time.Now()

	result, err := r.sessionsCollection.InsertOne(ctx, session)
	if err != nil {
		return err
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		session.ID = oid.Hex()
	}

	return nil
}

// GetSessionByToken retrieves a session by its token
func (r *MongoAuthRepository) GetSessionByToken(ctx context.Context, token string) (*model.Session, error) {
	var session model.Session
	err := r.sessionsCollection.FindOne(ctx, bson.M{"token": token}).Decode(&session)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, usecase.ErrSessionNotFound
		}
		return nil, err
	}

	return &session, nil
}

// DeleteSession deletes a session by ID
func (r *MongoAuthRepository) DeleteSession(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return usecase.ErrSessionNotFound
	}

	result, err := r.sessionsCollection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return usecase.ErrSessionNotFound
	}

	return nil
}

// DeleteAccountSessions deletes every session belonging to an account
func (r *MongoAuthRepository) DeleteAccountSessions(ctx context.Context, accountID string) error {
	_, err := r.sessionsCollection.DeleteMany(ctx, bson.M{"account_id": accountID})
	return err
}
