package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/annelsopenclassrooms/Projet-12-Backend/internal/core/domain"
	"github.com/annelsopenclassrooms/Projet-12-Backend/internal/core/ports"
)

func newTestContractService(contracts *stubContractRepo, clients *stubClientRepo, staff *stubStaffRepo) *ContractService {
	return NewContractService(contracts, clients, staff, stubUnitOfWork{}, zerolog.Nop())
}

func TestContractService_Create_SalesBecomesOwner(t *testing.T) {
	clients := newStubClientRepo()
	client := clients.seed(&domain.Client{Email: "ada@example.com", OwnerID: 7})
	staff := newStubStaffRepo()
	staff.seed(&domain.StaffUser{ID: 7, Username: "sam", Role: domain.RoleSales})
	svc := newTestContractService(newStubContractRepo(), clients, staff)

	created, err := svc.Create(context.Background(), principal(7, domain.RoleSales), ports.CreateContractInput{
		ClientID:    client.ID,
		OwnerID:     99, // ignored for sales callers
		TotalAmount: 1000,
		AmountDue:   1000,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.OwnerID != 7 {
		t.Fatalf("expected sales caller as owner, got %d", created.OwnerID)
	}
	if created.IsSigned {
		t.Fatalf("expected unsigned contract")
	}
}

func TestContractService_Create_ManagementNamesOwner(t *testing.T) {
	clients := newStubClientRepo()
	client := clients.seed(&domain.Client{Email: "ada@example.com", OwnerID: 7})
	staff := newStubStaffRepo()
	owner := staff.seed(&domain.StaffUser{Username: "sam", Role: domain.RoleSales})
	svc := newTestContractService(newStubContractRepo(), clients, staff)

	created, err := svc.Create(context.Background(), principal(1, domain.RoleManagement), ports.CreateContractInput{
		ClientID:    client.ID,
		OwnerID:     owner.ID,
		TotalAmount: 500,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.OwnerID != owner.ID {
		t.Fatalf("expected named owner, got %d", created.OwnerID)
	}
}

func TestContractService_Create_OwnerMustBeSales(t *testing.T) {
	clients := newStubClientRepo()
	client := clients.seed(&domain.Client{Email: "ada@example.com", OwnerID: 7})
	staff := newStubStaffRepo()
	support := staff.seed(&domain.StaffUser{Username: "eve", Role: domain.RoleSupport})
	svc := newTestContractService(newStubContractRepo(), clients, staff)

	_, err := svc.Create(context.Background(), principal(1, domain.RoleManagement), ports.CreateContractInput{
		ClientID: client.ID,
		OwnerID:  support.ID,
	})
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestContractService_Create_UnknownClient(t *testing.T) {
	staff := newStubStaffRepo()
	staff.seed(&domain.StaffUser{ID: 7, Username: "sam", Role: domain.RoleSales})
	svc := newTestContractService(newStubContractRepo(), newStubClientRepo(), staff)

	_, err := svc.Create(context.Background(), principal(7, domain.RoleSales), ports.CreateContractInput{ClientID: 42})
	var nf *domain.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestContractService_Create_SupportForbidden(t *testing.T) {
	svc := newTestContractService(newStubContractRepo(), newStubClientRepo(), newStubStaffRepo())

	_, err := svc.Create(context.Background(), principal(5, domain.RoleSupport), ports.CreateContractInput{ClientID: 1})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestContractService_Update_Sign(t *testing.T) {
	contracts := newStubContractRepo()
	seeded := contracts.seed(&domain.Contract{ClientID: 1, OwnerID: 7, TotalAmount: 1000, AmountDue: 1000})
	svc := newTestContractService(contracts, newStubClientRepo(), newStubStaffRepo())

	updated, err := svc.Update(context.Background(), principal(7, domain.RoleSales), seeded.ID, ports.ContractPatch{
		IsSigned:  boolPtr(true),
		AmountDue: float64Ptr(500),
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if !updated.IsSigned {
		t.Fatalf("expected signed contract")
	}
	if updated.AmountDue != 500 {
		t.Fatalf("amount_due not applied: %f", updated.AmountDue)
	}
	if updated.TotalAmount != 1000 {
		t.Fatalf("unset field changed: %f", updated.TotalAmount)
	}
}

func TestContractService_Update_NotOwner(t *testing.T) {
	contracts := newStubContractRepo()
	seeded := contracts.seed(&domain.Contract{ClientID: 1, OwnerID: 9})
	svc := newTestContractService(contracts, newStubClientRepo(), newStubStaffRepo())

	_, err := svc.Update(context.Background(), principal(7, domain.RoleSales), seeded.ID, ports.ContractPatch{
		IsSigned: boolPtr(true),
	})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestContractService_Update_SalesCannotReassignOwner(t *testing.T) {
	contracts := newStubContractRepo()
	seeded := contracts.seed(&domain.Contract{ClientID: 1, OwnerID: 7})
	svc := newTestContractService(contracts, newStubClientRepo(), newStubStaffRepo())

	_, err := svc.Update(context.Background(), principal(7, domain.RoleSales), seeded.ID, ports.ContractPatch{
		OwnerID: int64Ptr(9),
	})
	var fe *domain.FieldNotAllowedError
	if !errors.As(err, &fe) || fe.Field != "owner_id" {
		t.Fatalf("expected owner_id rejection, got %v", err)
	}
}

func TestContractService_Update_ManagementAnyContract(t *testing.T) {
	contracts := newStubContractRepo()
	seeded := contracts.seed(&domain.Contract{ClientID: 1, OwnerID: 9})
	svc := newTestContractService(contracts, newStubClientRepo(), newStubStaffRepo())

	if _, err := svc.Update(context.Background(), principal(1, domain.RoleManagement), seeded.ID, ports.ContractPatch{
		TotalAmount: float64Ptr(2000),
	}); err != nil {
		t.Fatalf("management update failed: %v", err)
	}
}
