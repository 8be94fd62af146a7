package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/annelsopenclassrooms/Projet-12-Backend/internal/core/domain"
	"github.com/annelsopenclassrooms/Projet-12-Backend/internal/core/ports"
)

// TestRecordLifecycle walks the full back-office flow across roles: staff
// onboarding, client acquisition, contract signing and event delivery.
func TestRecordLifecycle(t *testing.T) {
	ctx := context.Background()
	log := zerolog.Nop()

	staffRepo := newStubStaffRepo()
	clientRepo := newStubClientRepo()
	contractRepo := newStubContractRepo()
	eventRepo := newStubEventRepo()
	uow := stubUnitOfWork{}
	denylist := &stubDenylist{}

	staffSvc := NewStaffService(staffRepo, denylist, uow, log)
	clientSvc := NewClientService(clientRepo, staffRepo, uow, log)
	contractSvc := NewContractService(contractRepo, clientRepo, staffRepo, uow, log)
	eventSvc := NewEventService(eventRepo, contractRepo, clientRepo, staffRepo, uow, log)

	mgmtUser := staffRepo.seed(&domain.StaffUser{Username: "mona", Role: domain.RoleManagement})
	mgmt := domain.PrincipalOf(mgmtUser)

	// Management onboards a sales rep and a support contact.
	salesUser, err := staffSvc.Create(ctx, mgmt, ports.CreateStaffInput{
		Username: "sam", Email: "sam@example.com", Password: "pw-sales", Role: domain.RoleSales,
	})
	if err != nil {
		t.Fatalf("create sales staff: %v", err)
	}
	supportUser, err := staffSvc.Create(ctx, mgmt, ports.CreateStaffInput{
		Username: "eve", Email: "eve@example.com", Password: "pw-support", Role: domain.RoleSupport,
	})
	if err != nil {
		t.Fatalf("create support staff: %v", err)
	}
	sales := domain.PrincipalOf(salesUser)
	support := domain.PrincipalOf(supportUser)

	// The sales rep signs up a client and becomes its owner.
	client, err := clientSvc.Create(ctx, sales, ports.CreateClientInput{
		FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com",
	})
	if err != nil {
		t.Fatalf("create client: %v", err)
	}
	if client.OwnerID != sales.ID {
		t.Fatalf("expected client owned by sales rep, got %d", client.OwnerID)
	}

	// An unsigned contract cannot host an event.
	contract, err := contractSvc.Create(ctx, sales, ports.CreateContractInput{
		ClientID: client.ID, TotalAmount: 10000, AmountDue: 10000,
	})
	if err != nil {
		t.Fatalf("create contract: %v", err)
	}

	start := time.Date(2026, 9, 12, 18, 0, 0, 0, time.UTC)
	eventIn := ports.CreateEventInput{
		Name:       "launch party",
		ContractID: contract.ID,
		ClientID:   client.ID,
		StartTime:  start,
		EndTime:    start.Add(6 * time.Hour),
		Location:   "Paris",
	}

	var ve *domain.ValidationError
	if _, err := eventSvc.Create(ctx, sales, eventIn); !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError for unsigned contract, got %v", err)
	}

	// The owner signs the contract; the event now goes through.
	if _, err := contractSvc.Update(ctx, sales, contract.ID, ports.ContractPatch{IsSigned: boolPtr(true)}); err != nil {
		t.Fatalf("sign contract: %v", err)
	}
	event, err := eventSvc.Create(ctx, sales, eventIn)
	if err != nil {
		t.Fatalf("create event after signing: %v", err)
	}

	// Support cannot touch the event until management assigns it.
	if _, err := eventSvc.Update(ctx, support, event.ID, ports.EventPatch{Notes: strPtr("chairs ordered")}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden before assignment, got %v", err)
	}

	if _, err := eventSvc.Update(ctx, mgmt, event.ID, ports.EventPatch{AssigneeID: int64Ptr(support.ID)}); err != nil {
		t.Fatalf("assign support contact: %v", err)
	}

	updated, err := eventSvc.Update(ctx, support, event.ID, ports.EventPatch{Notes: strPtr("chairs ordered")})
	if err != nil {
		t.Fatalf("support update after assignment: %v", err)
	}
	if updated.Notes != "chairs ordered" {
		t.Fatalf("notes not applied: %q", updated.Notes)
	}

	// Offboarding the support contact revokes its credentials.
	if err := staffSvc.Delete(ctx, mgmt, support.ID); err != nil {
		t.Fatalf("delete support staff: %v", err)
	}
	if !denylist.revoked[support.ID] {
		t.Fatalf("expected deleted staff user on the denylist")
	}
}
