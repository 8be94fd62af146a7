package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
)

// MongoUnitOfWork runs a function inside one MongoDB transaction. Collection
// operations pick up the session from the context they receive, so every
// repository call made with the callback's context participates in the same
// transaction; any error rolls the whole unit back.
type MongoUnitOfWork struct {
	client *mongo.Client
}

func NewUnitOfWork(client *mongo.Client) *MongoUnitOfWork {
	return &MongoUnitOfWork{client: client}
}

func (u *MongoUnitOfWork) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	session, err := u.client.StartSession()
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	return err
}
