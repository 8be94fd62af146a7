package ports

import (
	"context"
	"time"

	"github.com/annelsopenclassrooms/Projet-12-Backend/internal/core/domain"
)

// CreateEventInput carries all data needed to create an event. AssigneeID is
// optional (zero = unassigned); when set it must reference a support user.
type CreateEventInput struct {
	Name          string
	ContractID    int64
	ClientID      int64
	AssigneeID    int64
	StartTime     time.Time
	EndTime       time.Time
	Location      string
	AttendeeCount int
	Notes         string
}

// EventPatch is a sparse event update. Nil pointers mean "leave unchanged".
type EventPatch struct {
	Name          *string
	StartTime     *time.Time
	EndTime       *time.Time
	Location      *string
	AttendeeCount *int
	Notes         *string
	AssigneeID    *int64
}

// Fields lists the names of the fields the patch sets, in declaration order.
func (p EventPatch) Fields() []string {
	var fields []string
	if p.Name != nil {
		fields = append(fields, "name")
	}
	if p.StartTime != nil {
		fields = append(fields, "start_time")
	}
	if p.EndTime != nil {
		fields = append(fields, "end_time")
	}
	if p.Location != nil {
		fields = append(fields, "location")
	}
	if p.AttendeeCount != nil {
		fields = append(fields, "attendee_count")
	}
	if p.Notes != nil {
		fields = append(fields, "notes")
	}
	if p.AssigneeID != nil {
		fields = append(fields, "assignee_id")
	}
	return fields
}

// EventService defines use-case operations for events.
type EventService interface {
	Create(ctx context.Context, p *domain.Principal, in CreateEventInput) (*domain.Event, error)
	Update(ctx context.Context, p *domain.Principal, id int64, patch EventPatch) (*domain.Event, error)
	Get(ctx context.Context, id int64) (*domain.Event, error)
	List(ctx context.Context) ([]domain.Event, error)
}
