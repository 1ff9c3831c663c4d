package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/estately/apartments-api/internal/core/domain"
)

const apartmentsCollection = "apartments"

type MongoApartmentRepository struct {
	coll *mongo.Collection
}

func NewApartmentRepository(db *mongo.Database) *MongoApartmentRepository {
	return &MongoApartmentRepository{coll: db.Collection(apartmentsCollection)}
}

type mongoApartment struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Street       string             `bson:"street"`
	City         string             `bson:"city"`
	State        string             `bson:"state"`
	ListingPrice string             `bson:"listing_price"`
	AvatarBase   string             `bson:"avatar_base,omitempty"`
	UserID       string             `bson:"user_id"`
	CreatedAt    int64              `bson:"created_at"`
	UpdatedAt    int64              `bson:"updated_at"`
}

func (r *MongoApartmentRepository) Create(ctx context.Context, apartment *domain.Apartment) (*domain.Apartment, error) {
	doc := toDoc(apartment)

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert apartment: %w", err)
	}

	created := *apartment
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *MongoApartmentRepository) FindByID(ctx context.Context, id string) (*domain.Apartment, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrApartmentNotFound
	}

	var ma mongoApartment
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&ma); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrApartmentNotFound
		}
		return nil, fmt.Errorf("find apartment: %w", err)
	}
	return ma.toDomain(), nil
}

func (r *MongoApartmentRepository) List(ctx context.Context) ([]*domain.Apartment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list apartments: %w", err)
	}
	defer cur.Close(ctx)

	apartments := make([]*domain.Apartment, 0)
	for cur.Next(ctx) {
		var ma mongoApartment
		if err := cur.Decode(&ma); err != nil {
			return nil, fmt.Errorf("decode apartment: %w", err)
		}
		apartments = append(apartments, ma.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list apartments: %w", err)
	}
	return apartments, nil
}

func (r *MongoApartmentRepository) Update(ctx context.Context, apartment *domain.Apartment) (*domain.Apartment, error) {
	oid, err := primitive.ObjectIDFromHex(apartment.ID)
	if err != nil {
		return nil, domain.ErrApartmentNotFound
	}

	doc := toDoc(apartment)
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		return nil, fmt.Errorf("update apartment: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrApartmentNotFound
	}
	return apartment, nil
}

func (r *MongoApartmentRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrApartmentNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete apartment: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrApartmentNotFound
	}
	return nil
}

func toDoc(a *domain.Apartment) mongoApartment {
	return mongoApartment{
		Street:       a.Street,
		City:         a.City,
		State:        a.State,
		ListingPrice: a.ListingPrice,
		AvatarBase:   a.AvatarBase,
		UserID:       a.UserID,
		CreatedAt:    a.CreatedAt.Unix(),
		UpdatedAt:    a.UpdatedAt.Unix(),
	}
}

func (ma *mongoApartment) toDomain() *domain.Apartment {
	return &domain.Apartment{
		ID:           ma.ID.Hex(),
		Street:       ma.Street,
		City:         ma.City,
		State:        ma.State,
		ListingPrice: ma.ListingPrice,
		AvatarBase:   ma.AvatarBase,
		UserID:       ma.UserID,
		CreatedAt:    unixToTime(ma.CreatedAt),
		UpdatedAt:    unixToTime(ma.UpdatedAt),
	}
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
