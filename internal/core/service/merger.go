package service

import (
	"context"
	"errors"

	"github.com/annelsopenclassrooms/Projet-12-Backend/internal/core/domain"
	"github.com/annelsopenclassrooms/Projet-12-Backend/internal/core/ports"
)

// This file is the update merger: all-or-nothing application of a sparse
// patch. Uniqueness is pre-checked before any field is copied, so a Conflict
// outcome leaves the loaded entity untouched. Field application itself runs
// inside the caller's transaction; a persistence failure rolls the whole
// unit back.

// checkUnique looks up the candidate value of a unique field and returns a
// Conflict when a different record already holds it. selfID 0 is used on
// create, where any hit is a collision.
func checkUnique(ctx context.Context, field, value string, selfID int64,
	find func(ctx context.Context, value string) (int64, error)) error {

	id, err := find(ctx, value)
	if err != nil {
		var nf *domain.NotFoundError
		if errors.As(err, &nf) {
			return nil
		}
		return err
	}
	if id != selfID {
		return &domain.ConflictError{Field: field, Value: value}
	}
	return nil
}

// applyClientPatch copies every set field onto the client. Field order is not
// significant; fields are independent.
func applyClientPatch(c *domain.Client, p ports.ClientPatch) {
	if p.FirstName != nil {
		c.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		c.LastName = *p.LastName
	}
	if p.Email != nil {
		c.Email = *p.Email
	}
	if p.Phone != nil {
		c.Phone = *p.Phone
	}
	if p.CompanyName != nil {
		c.CompanyName = *p.CompanyName
	}
	if p.OwnerID != nil {
		c.OwnerID = *p.OwnerID
	}
}

func applyContractPatch(c *domain.Contract, p ports.ContractPatch) {
	if p.TotalAmount != nil {
		c.TotalAmount = *p.TotalAmount
	}
	if p.AmountDue != nil {
		c.AmountDue = *p.AmountDue
	}
	if p.IsSigned != nil {
		c.IsSigned = *p.IsSigned
	}
	if p.OwnerID != nil {
		c.OwnerID = *p.OwnerID
	}
}

func applyEventPatch(e *domain.Event, p ports.EventPatch) {
	if p.Name != nil {
		e.Name = *p.Name
	}
	if p.StartTime != nil {
		e.StartTime = *p.StartTime
	}
	if p.EndTime != nil {
		e.EndTime = *p.EndTime
	}
	if p.Location != nil {
		e.Location = *p.Location
	}
	if p.AttendeeCount != nil {
		e.AttendeeCount = *p.AttendeeCount
	}
	if p.Notes != nil {
		e.Notes = *p.Notes
	}
	if p.AssigneeID != nil {
		e.AssigneeID = *p.AssigneeID
	}
}

// applyStaffPatch copies every set field except the password, which the
// staff service hashes before storing.
func applyStaffPatch(u *domain.StaffUser, p ports.StaffPatch) {
	if p.FirstName != nil {
		u.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		u.LastName = *p.LastName
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
}
