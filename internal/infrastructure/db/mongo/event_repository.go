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

const eventCollection = "events"

type MongoEventRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewEventRepository(db *mongo.Database) *MongoEventRepository {
	return &MongoEventRepository{db: db, coll: db.Collection(eventCollection)}
}

type eventDoc struct {
	ID            int64     `bson:"_id"`
	Name          string    `bson:"name"`
	ContractID    int64     `bson:"contract_id"`
	ClientID      int64     `bson:"client_id"`
	AssigneeID    int64     `bson:"assignee_id,omitempty"`
	StartTime     time.Time `bson:"start_time"`
	EndTime       time.Time `bson:"end_time"`
	Location      string    `bson:"location,omitempty"`
	AttendeeCount int       `bson:"attendee_count,omitempty"`
	Notes         string    `bson:"notes,omitempty"`
	CreatedAt     int64     `bson:"created_at"`
	UpdatedAt     int64     `bson:"updated_at"`
}

func (r *MongoEventRepository) FindByID(ctx context.Context, id int64) (*domain.Event, error) {
	var doc eventDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, &domain.NotFoundError{Entity: domain.KindEvent, ID: id}
		}
		return nil, fmt.Errorf("find event: %w", err)
	}
	return eventFromDoc(&doc), nil
}

func (r *MongoEventRepository) List(ctx context.Context) ([]domain.Event, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"_id": 1}))
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer cur.Close(ctx)

	var events []domain.Event
	for cur.Next(ctx) {
		var doc eventDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode event: %w", err)
		}
		events = append(events, *eventFromDoc(&doc))
	}
	return events, cur.Err()
}

func (r *MongoEventRepository) Insert(ctx context.Context, event *domain.Event) (*domain.Event, error) {
	id, err := nextSequence(ctx, r.db, eventCollection)
	if err != nil {
		return nil, err
	}

	doc := eventToDoc(event)
	doc.ID = id
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert event: %w", err)
	}

	created := *event
	created.ID = id
	return &created, nil
}

func (r *MongoEventRepository) Update(ctx context.Context, event *domain.Event) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": event.ID}, eventToDoc(event))
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	if res.MatchedCount == 0 {
		return &domain.NotFoundError{Entity: domain.KindEvent, ID: event.ID}
	}
	return nil
}

func eventToDoc(e *domain.Event) *eventDoc {
	return &eventDoc{
		ID:            e.ID,
		Name:          e.Name,
		ContractID:    e.ContractID,
		ClientID:      e.ClientID,
		AssigneeID:    e.AssigneeID,
		StartTime:     e.StartTime,
		EndTime:       e.EndTime,
		Location:      e.Location,
		AttendeeCount: e.AttendeeCount,
		Notes:         e.Notes,
		CreatedAt:     e.CreatedAt.Unix(),
		UpdatedAt:     e.UpdatedAt.Unix(),
	}
}

func eventFromDoc(d *eventDoc) *domain.Event {
	return &domain.Event{
		ID:            d.ID,
		Name:          d.Name,
		ContractID:    d.ContractID,
		ClientID:      d.ClientID,
		AssigneeID:    d.AssigneeID,
		StartTime:     d.StartTime,
		EndTime:       d.EndTime,
		Location:      d.Location,
		AttendeeCount: d.AttendeeCount,
		Notes:         d.Notes,
		CreatedAt:     unixToTime(d.CreatedAt),
		UpdatedAt:     unixToTime(d.UpdatedAt),
	}
}
