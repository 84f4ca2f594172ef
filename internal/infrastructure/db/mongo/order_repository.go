package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/winjhenshop/storefront-api/internal/core/domain"
	"github.com/winjhenshop/storefront-api/internal/core/ports"
)

const orderCollection = "orders"

type OrderRepository struct {
	coll *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{coll: db.Collection(orderCollection)}
}

// List returns a page of orders matching the filter plus the total count.
func (r *OrderRepository) List(ctx context.Context, filter ports.ListOrdersFilter) ([]*domain.Order, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.CustomerID != "" {
		query["customer_id"] = filter.CustomerID
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count orders: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((filter.Page - 1) * filter.Limit)).
		SetLimit(int64(filter.Limit))

	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list orders: %w", err)
	}
	defer cursor.Close(ctx)

	var orders []*domain.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, 0, fmt.Errorf("decode orders: %w", err)
	}
	return orders, total, nil
}

// Stats aggregates order counts, revenue, and the pending-reseller queue in a
// single pipeline pass. A non-empty customerID scopes it to one customer.
func (r *OrderRepository) Stats(ctx context.Context, customerID string) (*ports.OrderStats, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	match := bson.M{}
	if customerID != "" {
		match["customer_id"] = customerID
	}

	cursor, err := r.coll.Aggregate(ctx, mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$group", Value: bson.M{
			"_id":     "$status",
			"count":   bson.M{"$sum": 1},
			"revenue": bson.M{"$sum": "$total"},
			"pending_reseller": bson.M{"$sum": bson.M{
				"$cond": bson.A{
					bson.M{"$and": bson.A{
						bson.M{"$eq": bson.A{"$status", string(domain.OrderPending)}},
						bson.M{"$eq": bson.A{"$customer_role", string(domain.RoleResellerCustomer)}},
					}},
					1, 0,
				},
			}},
		}}},
	})
	if err != nil {
		return nil, fmt.Errorf("aggregate order stats: %w", err)
	}
	defer cursor.Close(ctx)

	stats := &ports.OrderStats{ByStatus: make(map[domain.OrderStatus]int64)}
	for cursor.Next(ctx) {
		var row struct {
			Status          string  `bson:"_id"`
			Count           int64   `bson:"count"`
			Revenue         float64 `bson:"revenue"`
			PendingReseller int64   `bson:"pending_reseller"`
		}
		if err := cursor.Decode(&row); err != nil {
			return nil, fmt.Errorf("decode order stats: %w", err)
		}
		stats.ByStatus[domain.OrderStatus(row.Status)] = row.Count
		stats.Total += row.Count
		stats.Revenue += row.Revenue
		stats.PendingReseller += row.PendingReseller
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate order stats: %w", err)
	}
	return stats, nil
}

// EnsureIndexes creates the indexes backing order queries.
func (r *OrderRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "customer_id", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "order_number", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("ensure order indexes: %w", err)
	}
	return nil
}
