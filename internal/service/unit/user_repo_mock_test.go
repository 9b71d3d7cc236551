package unit

import (
	"context"
	"sync"

	"github.com/Joseph-Edoh/Church-connect/internal/domain"
	"github.com/google/uuid"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc              func(ctx context.Context, churchID uuid.UUID, id uuid.UUID) (*domain.User, error)
	SetRoleFunc              func(ctx context.Context, churchID uuid.UUID, id uuid.UUID, role domain.UserRole, unitID *uuid.UUID) (*domain.User, error)
	RemoveUnitMembershipFunc func(ctx context.Context, churchID uuid.UUID, unitID uuid.UUID) (int, error)

	calls struct {
		GetByID []struct {
			Ctx      context.Context
			ChurchID uuid.UUID
			ID       uuid.UUID
		}
		SetRole []struct {
			Ctx      context.Context
			ChurchID uuid.UUID
			ID       uuid.UUID
			Role     domain.UserRole
			UnitID   *uuid.UUID
		}
		RemoveUnitMembership []struct {
			Ctx      context.Context
			ChurchID uuid.UUID
			UnitID   uuid.UUID
		}
	}
	lockGetByID              sync.RWMutex
	lockSetRole              sync.RWMutex
	lockRemoveUnitMembership sync.RWMutex
}

func (mock *userRepoMock) GetByID(ctx context.Context, churchID uuid.UUID, id uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		ChurchID uuid.UUID
		ID       uuid.UUID
	}{Ctx: ctx, ChurchID: churchID, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, churchID, id)
}

func (mock *userRepoMock) GetByIDCalls() []struct {
	Ctx      context.Context
	ChurchID uuid.UUID
	ID       uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *userRepoMock) SetRole(ctx context.Context, churchID uuid.UUID, id uuid.UUID, role domain.UserRole, unitID *uuid.UUID) (*domain.User, error) {
	if mock.SetRoleFunc == nil {
		panic("userRepoMock.SetRoleFunc: method is nil but userRepo.SetRole was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		ChurchID uuid.UUID
		ID       uuid.UUID
		Role     domain.UserRole
		UnitID   *uuid.UUID
	}{Ctx: ctx, ChurchID: churchID, ID: id, Role: role, UnitID: unitID}
	mock.lockSetRole.Lock()
	mock.calls.SetRole = append(mock.calls.SetRole, callInfo)
	mock.lockSetRole.Unlock()
	return mock.SetRoleFunc(ctx, churchID, id, role, unitID)
}

func (mock *userRepoMock) SetRoleCalls() []struct {
	Ctx      context.Context
	ChurchID uuid.UUID
	ID       uuid.UUID
	Role     domain.UserRole
	UnitID   *uuid.UUID
} {
	mock.lockSetRole.RLock()
	calls := mock.calls.SetRole
	mock.lockSetRole.RUnlock()
	return calls
}

func (mock *userRepoMock) RemoveUnitMembership(ctx context.Context, churchID uuid.UUID, unitID uuid.UUID) (int, error) {
	if mock.RemoveUnitMembershipFunc == nil {
		panic("userRepoMock.RemoveUnitMembershipFunc: method is nil but userRepo.RemoveUnitMembership was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		ChurchID uuid.UUID
		UnitID   uuid.UUID
	}{Ctx: ctx, ChurchID: churchID, UnitID: unitID}
	mock.lockRemoveUnitMembership.Lock()
	mock.calls.RemoveUnitMembership = append(mock.calls.RemoveUnitMembership, callInfo)
	mock.lockRemoveUnitMembership.Unlock()
	return mock.RemoveUnitMembershipFunc(ctx, churchID, unitID)
}

func (mock *userRepoMock) RemoveUnitMembershipCalls() []struct {
	Ctx      context.Context
	ChurchID uuid.UUID
	UnitID   uuid.UUID
} {
	mock.lockRemoveUnitMembership.RLock()
	calls := mock.calls.RemoveUnitMembership
	mock.lockRemoveUnitMembership.RUnlock()
	return calls
}
