package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/winjhenshop/storefront-api/internal/core/domain"
)

const seedBcryptCost = 12

type seedAccount struct {
	email     string
	password  string
	firstName string
	lastName  string
	role      domain.Role
	phone     string
	address   string
	city      string
	state     string
	zipCode   string
}

var seedAccounts = []seedAccount{
	{"admin@winjhenshop.com", "admin123", "Admin", "User", domain.RoleAdmin,
		"+1234567890", "123 Admin Street", "Admin City", "AS", "12345"},
	{"employee@winjhenshop.com", "employee123", "John", "Employee", domain.RoleEmployee,
		"+1234567891", "456 Employee Ave", "Employee City", "ES", "54321"},
	{"reseller@winjhenshop.com", "reseller123", "Jane", "Reseller", domain.RoleResellerCustomer,
		"+1234567892", "789 Reseller Blvd", "Reseller City", "RS", "98765"},
	{"customer@winjhenshop.com", "customer123", "Bob", "Customer", domain.RoleRetailCustomer,
		"+1234567893", "321 Customer Way", "Customer City", "CS", "13579"},
}

// Seed populates the database with the default back-office accounts and a
// small demo catalog. It is a no-op when an admin account already exists.
func Seed(ctx context.Context, db *mongo.Database, log zerolog.Logger) error {
	users := NewUserRepository(db)

	var existing mongoUser
	err := users.coll.FindOne(ctx, bson.M{"role": string(domain.RoleAdmin)}).Decode(&existing)
	if err == nil {
		log.Info().Msg("admin account already exists, skipping seed")
		return nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return fmt.Errorf("seed admin lookup: %w", err)
	}

	now := time.Now().UTC()
	accountIDs := make(map[domain.Role]string, len(seedAccounts))

	for _, acc := range seedAccounts {
		hash, err := bcrypt.GenerateFromPassword([]byte(acc.password), seedBcryptCost)
		if err != nil {
			return fmt.Errorf("seed hash password: %w", err)
		}

		created, err := users.Create(ctx, &domain.User{
			Email:         acc.email,
			PasswordHash:  string(hash),
			FirstName:     acc.firstName,
			LastName:      acc.lastName,
			Role:          acc.role,
			IsActive:      true,
			EmailVerified: true,
			Phone:         acc.phone,
			Address:       acc.address,
			City:          acc.city,
			State:         acc.state,
			ZipCode:       acc.zipCode,
			Country:       "United States",
			CreatedAt:     now,
			UpdatedAt:     now,
		})
		if err != nil {
			if errors.Is(err, domain.ErrDuplicateEmail) {
				continue
			}
			return fmt.Errorf("seed account %s: %w", acc.email, err)
		}
		accountIDs[acc.role] = created.ID
		log.Info().Str("email", acc.email).Str("role", string(acc.role)).Msg("seeded account")
	}

	if err := seedProducts(ctx, db, now); err != nil {
		return err
	}
	if err := seedOrders(ctx, db, accountIDs, now); err != nil {
		return err
	}

	log.Info().Msg("database seeding completed")
	return nil
}

func seedProducts(ctx context.Context, db *mongo.Database, now time.Time) error {
	products := []*domain.Product{
		{
			Name: "Wireless Earbuds Pro", Category: "electronics",
			RetailPrice: 89.99, ResellerPrice: 54.00, Stock: 240, MinOrderQty: 10,
			Rating: 4.6, ReviewCount: 312, IsNew: true,
		},
		{
			Name: "Stainless Water Bottle 1L", Category: "home",
			RetailPrice: 24.99, ResellerPrice: 13.50, Stock: 580, MinOrderQty: 20,
			Rating: 4.8, ReviewCount: 1045,
		},
		{
			Name: "Cotton Crewneck Tee", Category: "apparel",
			RetailPrice: 19.99, ResellerPrice: 9.75, Stock: 1200, MinOrderQty: 50,
			Rating: 4.3, ReviewCount: 689, DiscountPct: 15,
		},
		{
			Name: "Desk LED Lamp", Category: "home",
			RetailPrice: 39.99, ResellerPrice: 22.00, Stock: 95, MinOrderQty: 10,
			Rating: 4.5, ReviewCount: 178,
		},
	}

	docs := make([]any, 0, len(products))
	for _, p := range products {
		p.ID = primitive.NewObjectID().Hex()
		p.CreatedAt = now
		docs = append(docs, p)
	}

	if _, err := db.Collection(productCollection).InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("seed products: %w", err)
	}
	return nil
}

func seedOrders(ctx context.Context, db *mongo.Database, accountIDs map[domain.Role]string, now time.Time) error {
	retailID := accountIDs[domain.RoleRetailCustomer]
	resellerID := accountIDs[domain.RoleResellerCustomer]
	if retailID == "" || resellerID == "" {
		return nil
	}

	orders := []*domain.Order{
		{
			OrderNumber: "ORD-1001", CustomerID: retailID,
			CustomerEmail: "customer@winjhenshop.com", CustomerRole: domain.RoleRetailCustomer,
			Status: domain.OrderDelivered, ItemCount: 2, Total: 114.98,
			CreatedAt: now.Add(-72 * time.Hour),
		},
		{
			OrderNumber: "ORD-1002", CustomerID: resellerID,
			CustomerEmail: "reseller@winjhenshop.com", CustomerRole: domain.RoleResellerCustomer,
			Status: domain.OrderPending, ItemCount: 60, Total: 585.00,
			CreatedAt: now.Add(-24 * time.Hour),
		},
		{
			OrderNumber: "ORD-1003", CustomerID: retailID,
			CustomerEmail: "customer@winjhenshop.com", CustomerRole: domain.RoleRetailCustomer,
			Status: domain.OrderProcessing, ItemCount: 1, Total: 39.99,
			CreatedAt: now.Add(-6 * time.Hour),
		},
	}

	docs := make([]any, 0, len(orders))
	for _, o := range orders {
		o.ID = primitive.NewObjectID().Hex()
		docs = append(docs, o)
	}

	if _, err := db.Collection(orderCollection).InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("seed orders: %w", err)
	}
	return nil
}
