package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/annelsopenclassrooms/Projet-12-Backend/internal/core/domain"
)

const clientCollection = "clients"

type MongoClientRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewClientRepository(db *mongo.Database) *MongoClientRepository {
	return &MongoClientRepository{db: db, coll: db.Collection(clientCollection)}
}

type clientDoc struct {
	ID          int64  `bson:"_id"`
	FirstName   string `bson:"first_name"`
	LastName    string `bson:"last_name"`
	Email       string `bson:"email"`
	Phone       string `bson:"phone,omitempty"`
	CompanyName string `bson:"company_name,omitempty"`
	OwnerID     int64  `bson:"owner_id"`
	CreatedAt   int64  `bson:"created_at"`
	UpdatedAt   int64  `bson:"updated_at"`
}

func (r *MongoClientRepository) FindByID(ctx context.Context, id int64) (*domain.Client, error) {
	return r.findOne(ctx, bson.M{"_id": id}, id)
}

func (r *MongoClientRepository) FindByEmail(ctx context.Context, email string) (*domain.Client, error) {
	return r.findOne(ctx, bson.M{"email": email}, 0)
}

func (r *MongoClientRepository) findOne(ctx context.Context, filter bson.M, id int64) (*domain.Client, error) {
	var doc clientDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, &domain.NotFoundError{Entity: domain.KindClient, ID: id}
		}
		return nil, fmt.Errorf("find client: %w", err)
	}
	return clientFromDoc(&doc), nil
}

func (r *MongoClientRepository) List(ctx context.Context) ([]domain.Client, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"_id": 1}))
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer cur.Close(ctx)

	var clients []domain.Client
	for cur.Next(ctx) {
		var doc clientDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode client: %w", err)
		}
		clients = append(clients, *clientFromDoc(&doc))
	}
	return clients, cur.Err()
}

func (r *MongoClientRepository) Insert(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	id, err := nextSequence(ctx, r.db, clientCollection)
	if err != nil {
		return nil, err
	}

	doc := clientToDoc(client)
	doc.ID = id
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, &domain.ConflictError{Field: "email", Value: client.Email}
		}
		return nil, fmt.Errorf("insert client: %w", err)
	}

	created := *client
	created.ID = id
	return &created, nil
}

func (r *MongoClientRepository) Update(ctx context.Context, client *domain.Client) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": client.ID}, clientToDoc(client))
	if err != nil {
		return fmt.Errorf("update client: %w", err)
	}
	if res.MatchedCount == 0 {
		return &domain.NotFoundError{Entity: domain.KindClient, ID: client.ID}
	}
	return nil
}

func clientToDoc(c *domain.Client) *clientDoc {
	return &clientDoc{
		ID:          c.ID,
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		Email:       c.Email,
		Phone:       c.Phone,
		CompanyName: c.CompanyName,
		OwnerID:     c.OwnerID,
		CreatedAt:   c.CreatedAt.Unix(),
		UpdatedAt:   c.UpdatedAt.Unix(),
	}
}

func clientFromDoc(d *clientDoc) *domain.Client {
	return &domain.Client{
		ID:          d.ID,
		FirstName:   d.FirstName,
		LastName:    d.LastName,
		Email:       d.Email,
		Phone:       d.Phone,
		CompanyName: d.CompanyName,
		OwnerID:     d.OwnerID,
		CreatedAt:   unixToTime(d.CreatedAt),
		UpdatedAt:   unixToTime(d.UpdatedAt),
	}
}
