package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/winjhenshop/storefront-api/internal/core/domain"
)

const userCollection = "users"

type MongoUserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{coll: db.Collection(userCollection)}
}

type mongoUser struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Email         string             `bson:"email"`
	PasswordHash  string             `bson:"password_hash"`
	FirstName     string             `bson:"first_name"`
	LastName      string             `bson:"last_name"`
	Role          string             `bson:"role"`
	IsActive      bool               `bson:"is_active"`
	EmailVerified bool               `bson:"email_verified"`

	Phone   string `bson:"phone,omitempty"`
	Address string `bson:"address,omitempty"`
	City    string `bson:"city,omitempty"`
	State   string `bson:"state,omitempty"`
	ZipCode string `bson:"zip_code,omitempty"`
	Country string `bson:"country,omitempty"`

	ResetToken       string     `bson:"reset_token,omitempty"`
	ResetTokenExpiry *time.Time `bson:"reset_token_expiry,omitempty"`

	CreatedAt int64 `bson:"created_at"`
	UpdatedAt int64 `bson:"updated_at"`
}

// EnsureIndexes creates the unique email index. The index closes the race
// between the service-level duplicate check and the insert: a concurrent
// insert with the same email fails with a duplicate-key error.
func (r *MongoUserRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("ensure email index: %w", err)
	}
	return nil
}

func (r *MongoUserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	doc := toMongoUser(user)

	_, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	// fetch back to get ID
	created, err := r.FindByEmail(ctx, user.Email)
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *MongoUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var mu mongoUser
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&mu); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return fromMongoUser(&mu), nil
}

func (r *MongoUserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	var mu mongoUser
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mu); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return fromMongoUser(&mu), nil
}

func (r *MongoUserRepository) SetResetToken(ctx context.Context, userID, token string, expiry time.Time) error {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return domain.ErrUserNotFound
	}

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{
			"reset_token":        token,
			"reset_token_expiry": expiry,
			"updated_at":         time.Now().UTC().Unix(),
		}},
	)
	if err != nil {
		return fmt.Errorf("set reset token: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// RedeemResetToken swaps the password hash and clears the token fields in a
// single FindOneAndUpdate. The filter requires a live token, so an expired or
// already-redeemed token matches nothing.
func (r *MongoUserRepository) RedeemResetToken(ctx context.Context, token, newHash string, now time.Time) (*domain.User, error) {
	filter := bson.M{
		"reset_token":        token,
		"reset_token_expiry": bson.M{"$gt": now},
	}
	update := bson.M{
		"$set": bson.M{
			"password_hash": newHash,
			"updated_at":    now.UTC().Unix(),
		},
		"$unset": bson.M{
			"reset_token":        "",
			"reset_token_expiry": "",
		},
	}

	var mu mongoUser
	err := r.coll.FindOneAndUpdate(ctx, filter, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&mu)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrInvalidResetToken
		}
		return nil, fmt.Errorf("redeem reset token: %w", err)
	}
	return fromMongoUser(&mu), nil
}

func (r *MongoUserRepository) CountByRole(ctx context.Context) (map[domain.Role]int64, error) {
	cursor, err := r.coll.Aggregate(ctx, mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":   "$role",
			"count": bson.M{"$sum": 1},
		}}},
	})
	if err != nil {
		return nil, fmt.Errorf("count by role: %w", err)
	}
	defer cursor.Close(ctx)

	counts := make(map[domain.Role]int64)
	for cursor.Next(ctx) {
		var row struct {
			Role  string `bson:"_id"`
			Count int64  `bson:"count"`
		}
		if err := cursor.Decode(&row); err != nil {
			return nil, fmt.Errorf("decode role count: %w", err)
		}
		counts[domain.Role(row.Role)] = row.Count
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate role counts: %w", err)
	}
	return counts, nil
}

func toMongoUser(u *domain.User) mongoUser {
	return mongoUser{
		Email:            u.Email,
		PasswordHash:     u.PasswordHash,
		FirstName:        u.FirstName,
		LastName:         u.LastName,
		Role:             string(u.Role),
		IsActive:         u.IsActive,
		EmailVerified:    u.EmailVerified,
		Phone:            u.Phone,
		Address:          u.Address,
		City:             u.City,
		State:            u.State,
		ZipCode:          u.ZipCode,
		Country:          u.Country,
		ResetToken:       u.ResetToken,
		ResetTokenExpiry: u.ResetTokenExpiry,
		CreatedAt:        u.CreatedAt.Unix(),
		UpdatedAt:        u.UpdatedAt.Unix(),
	}
}

func fromMongoUser(mu *mongoUser) *domain.User {
	return &domain.User{
		ID:               mu.ID.Hex(),
		Email:            mu.Email,
		PasswordHash:     mu.PasswordHash,
		FirstName:        mu.FirstName,
		LastName:         mu.LastName,
		Role:             domain.Role(mu.Role),
		IsActive:         mu.IsActive,
		EmailVerified:    mu.EmailVerified,
		Phone:            mu.Phone,
		Address:          mu.Address,
		City:             mu.City,
		State:            mu.State,
		ZipCode:          mu.ZipCode,
		Country:          mu.Country,
		ResetToken:       mu.ResetToken,
		ResetTokenExpiry: mu.ResetTokenExpiry,
		CreatedAt:        unixToTime(mu.CreatedAt),
		UpdatedAt:        unixToTime(mu.UpdatedAt),
	}
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
