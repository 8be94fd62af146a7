package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/annelsopenclassrooms/Projet-12-Backend/internal/core/domain"
)

const staffCollection = "staff_users"

type MongoStaffRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewStaffRepository(db *mongo.Database) *MongoStaffRepository {
	return &MongoStaffRepository{db: db, coll: db.Collection(staffCollection)}
}

type staffDoc struct {
	ID           int64  `bson:"_id"`
	Username     string `bson:"username"`
	FirstName    string `bson:"first_name"`
	LastName     string `bson:"last_name"`
	Email        string `bson:"email"`
	PasswordHash string `bson:"password_hash"`
	Role         string `bson:"role"`
	CreatedAt    int64  `bson:"created_at"`
	UpdatedAt    int64  `bson:"updated_at"`
}

func (r *MongoStaffRepository) FindByID(ctx context.Context, id int64) (*domain.StaffUser, error) {
	return r.findOne(ctx, bson.M{"_id": id}, id)
}

func (r *MongoStaffRepository) FindByLogin(ctx context.Context, login string) (*domain.StaffUser, error) {
	return r.findOne(ctx, bson.M{"$or": []bson.M{{"username": login}, {"email": login}}}, 0)
}

func (r *MongoStaffRepository) FindByUsername(ctx context.Context, username string) (*domain.StaffUser, error) {
	return r.findOne(ctx, bson.M{"username": username}, 0)
}

func (r *MongoStaffRepository) FindByEmail(ctx context.Context, email string) (*domain.StaffUser, error) {
	return r.findOne(ctx, bson.M{"email": email}, 0)
}

func (r *MongoStaffRepository) findOne(ctx context.Context, filter bson.M, id int64) (*domain.StaffUser, error) {
	var doc staffDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, &domain.NotFoundError{Entity: domain.KindStaff, ID: id}
		}
		return nil, fmt.Errorf("find staff user: %w", err)
	}
	return staffFromDoc(&doc), nil
}

func (r *MongoStaffRepository) List(ctx context.Context) ([]domain.StaffUser, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"_id": 1}))
	if err != nil {
		return nil, fmt.Errorf("list staff users: %w", err)
	}
	defer cur.Close(ctx)

	var users []domain.StaffUser
	for cur.Next(ctx) {
		var doc staffDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode staff user: %w", err)
		}
		users = append(users, *staffFromDoc(&doc))
	}
	return users, cur.Err()
}

func (r *MongoStaffRepository) Insert(ctx context.Context, user *domain.StaffUser) (*domain.StaffUser, error) {
	id, err := nextSequence(ctx, r.db, staffCollection)
	if err != nil {
		return nil, err
	}

	doc := staffToDoc(user)
	doc.ID = id
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, &domain.ConflictError{Field: "email", Value: user.Email}
		}
		return nil, fmt.Errorf("insert staff user: %w", err)
	}

	created := *user
	created.ID = id
	return &created, nil
}

func (r *MongoStaffRepository) Update(ctx context.Context, user *domain.StaffUser) error {
	doc := staffToDoc(user)
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": user.ID}, doc)
	if err != nil {
		return fmt.Errorf("update staff user: %w", err)
	}
	if res.MatchedCount == 0 {
		return &domain.NotFoundError{Entity: domain.KindStaff, ID: user.ID}
	}
	return nil
}

func (r *MongoStaffRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete staff user: %w", err)
	}
	if res.DeletedCount == 0 {
		return &domain.NotFoundError{Entity: domain.KindStaff, ID: id}
	}
	return nil
}

func staffToDoc(u *domain.StaffUser) *staffDoc {
	return &staffDoc{
		ID:           u.ID,
		Username:     u.Username,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         string(u.Role),
		CreatedAt:    u.CreatedAt.Unix(),
		UpdatedAt:    u.UpdatedAt.Unix(),
	}
}

func staffFromDoc(d *staffDoc) *domain.StaffUser {
	return &domain.StaffUser{
		ID:           d.ID,
		Username:     d.Username,
		FirstName:    d.FirstName,
		LastName:     d.LastName,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		Role:         domain.Role(d.Role),
		CreatedAt:    unixToTime(d.CreatedAt),
		UpdatedAt:    unixToTime(d.UpdatedAt),
	}
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
