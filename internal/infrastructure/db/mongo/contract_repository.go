package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/annelsopenclassrooms/Projet-12-Backend/internal/core/domain"
)

const contractCollection = "contracts"

type MongoContractRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewContractRepository(db *mongo.Database) *MongoContractRepository {
	return &MongoContractRepository{db: db, coll: db.Collection(contractCollection)}
}

type contractDoc struct {
	ID          int64   `bson:"_id"`
	ClientID    int64   `bson:"client_id"`
	OwnerID     int64   `bson:"owner_id"`
	TotalAmount float64 `bson:"total_amount"`
	AmountDue   float64 `bson:"amount_due"`
	IsSigned    bool    `bson:"is_signed"`
	CreatedAt   int64   `bson:"created_at"`
	UpdatedAt   int64   `bson:"updated_at"`
}

func (r *MongoContractRepository) FindByID(ctx context.Context, id int64) (*domain.Contract, error) {
	var doc contractDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, &domain.NotFoundError{Entity: domain.KindContract, ID: id}
		}
		return nil, fmt.Errorf("find contract: %w", err)
	}
	return contractFromDoc(&doc), nil
}

func (r *MongoContractRepository) List(ctx context.Context) ([]domain.Contract, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"_id": 1}))
	if err != nil {
		return nil, fmt.Errorf("list contracts: %w", err)
	}
	defer cur.Close(ctx)

	var contracts []domain.Contract
	for cur.Next(ctx) {
		var doc contractDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode contract: %w", err)
		}
		contracts = append(contracts, *contractFromDoc(&doc))
	}
	return contracts, cur.Err()
}

func (r *MongoContractRepository) Insert(ctx context.Context, contract *domain.Contract) (*domain.Contract, error) {
	id, err := nextSequence(ctx, r.db, contractCollection)
	if err != nil {
		return nil, err
	}

	doc := contractToDoc(contract)
	doc.ID = id
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert contract: %w", err)
	}

	created := *contract
	created.ID = id
	return &created, nil
}

func (r *MongoContractRepository) Update(ctx context.Context, contract *domain.Contract) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": contract.ID}, contractToDoc(contract))
	if err != nil {
		return fmt.Errorf("update contract: %w", err)
	}
	if res.MatchedCount == 0 {
		return &domain.NotFoundError{Entity: domain.KindContract, ID: contract.ID}
	}
	return nil
}

func contractToDoc(c *domain.Contract) *contractDoc {
	return &contractDoc{
		ID:          c.ID,
		ClientID:    c.ClientID,
		OwnerID:     c.OwnerID,
		TotalAmount: c.TotalAmount,
		AmountDue:   c.AmountDue,
		IsSigned:    c.IsSigned,
		CreatedAt:   c.CreatedAt.Unix(),
		UpdatedAt:   c.UpdatedAt.Unix(),
	}
}

func contractFromDoc(d *contractDoc) *domain.Contract {
	return &domain.Contract{
		ID:          d.ID,
		ClientID:    d.ClientID,
		OwnerID:     d.OwnerID,
		TotalAmount: d.TotalAmount,
		AmountDue:   d.AmountDue,
		IsSigned:    d.IsSigned,
		CreatedAt:   unixToTime(d.CreatedAt),
		UpdatedAt:   unixToTime(d.UpdatedAt),
	}
}
