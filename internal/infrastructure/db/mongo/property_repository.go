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

	"github.com/propchase/rental-api/internal/core/domain"
	"github.com/propchase/rental-api/internal/core/ports"
)

const propertiesCollection = "properties"

// PropertyRepository persists listings in MongoDB.
type PropertyRepository struct {
	coll *mongo.Collection
}

func NewPropertyRepository(db *mongo.Database) *PropertyRepository {
	return &PropertyRepository{coll: db.Collection(propertiesCollection)}
}

type mongoProperty struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	OwnerID     string             `bson:"owner_id"`
	Title       string             `bson:"title"`
	Address     string             `bson:"address"`
	Description string             `bson:"description"`
	ExtraInfo   string             `bson:"extra_info,omitempty"`
	Perks       []string           `bson:"perks"`
	Photos      []string           `bson:"photos"`
	CheckIn     string             `bson:"check_in"`
	CheckOut    string             `bson:"check_out"`
	MaxGuests   int                `bson:"max_guests"`
	Price       float64            `bson:"price"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func (mp *mongoProperty) toDomain() *domain.Property {
	return &domain.Property{
		ID:          mp.ID.Hex(),
		OwnerID:     mp.OwnerID,
		Title:       mp.Title,
		Address:     mp.Address,
		Description: mp.Description,
		ExtraInfo:   mp.ExtraInfo,
		Perks:       mp.Perks,
		Photos:      mp.Photos,
		CheckIn:     mp.CheckIn,
		CheckOut:    mp.CheckOut,
		MaxGuests:   mp.MaxGuests,
		Price:       mp.Price,
		CreatedAt:   mp.CreatedAt,
		UpdatedAt:   mp.UpdatedAt,
	}
}

// EnsureIndexes creates the owner lookup index.
func (r *PropertyRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "owner_id", Value: 1}},
	})
	return err
}

func (r *PropertyRepository) Create(ctx context.Context, p *domain.Property) (*domain.Property, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoProperty{
		OwnerID:     p.OwnerID,
		Title:       p.Title,
		Address:     p.Address,
		Description: p.Description,
		ExtraInfo:   p.ExtraInfo,
		Perks:       p.Perks,
		Photos:      p.Photos,
		CheckIn:     p.CheckIn,
		CheckOut:    p.CheckOut,
		MaxGuests:   p.MaxGuests,
		Price:       p.Price,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert property: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *PropertyRepository) FindByID(ctx context.Context, id string) (*domain.Property, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrPropertyNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mp mongoProperty
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mp); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPropertyNotFound
		}
		return nil, fmt.Errorf("find property: %w", err)
	}
	return mp.toDomain(), nil
}

func (r *PropertyRepository) FindByOwner(ctx context.Context, ownerID string) ([]*domain.Property, error) {
	return r.findMany(ctx, bson.M{"owner_id": ownerID})
}

func (r *PropertyRepository) FindAll(ctx context.Context) ([]*domain.Property, error) {
	return r.findMany(ctx, bson.M{})
}

func (r *PropertyRepository) FindByIDs(ctx context.Context, ids []string) (map[string]*domain.Property, error) {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if oid, err := primitive.ObjectIDFromHex(id); err == nil {
			oids = append(oids, oid)
		}
	}

	found, err := r.findMany(ctx, bson.M{"_id": bson.M{"$in": oids}})
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*domain.Property, len(found))
	for _, p := range found {
		byID[p.ID] = p
	}
	return byID, nil
}

func (r *PropertyRepository) findMany(ctx context.Context, filter bson.M) ([]*domain.Property, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	// Stable id-based ordering keeps listings deterministic.
	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find properties: %w", err)
	}
	defer cur.Close(ctx)

	var result []*domain.Property
	for cur.Next(ctx) {
		var mp mongoProperty
		if err := cur.Decode(&mp); err != nil {
			return nil, fmt.Errorf("decode property: %w", err)
		}
		result = append(result, mp.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate properties: %w", err)
	}
	return result, nil
}

func (r *PropertyRepository) Update(ctx context.Context, id string, fields ports.PropertyFields) (*domain.Property, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrPropertyNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	// owner_id is deliberately absent: ownership is immutable.
	set := bson.M{
		"title":       fields.Title,
		"address":     fields.Address,
		"description": fields.Description,
		"extra_info":  fields.ExtraInfo,
		"perks":       fields.Perks,
		"photos":      fields.Photos,
		"check_in":    fields.CheckIn,
		"check_out":   fields.CheckOut,
		"max_guests":  fields.MaxGuests,
		"price":       fields.Price,
		"updated_at":  time.Now().UTC(),
	}

	var mp mongoProperty
	err = r.coll.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&mp)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPropertyNotFound
		}
		return nil, fmt.Errorf("update property: %w", err)
	}
	return mp.toDomain(), nil
}
