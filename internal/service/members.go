package service

import (
	"context"
	"fmt"

	pkgcrypto "github.com/gaoqi7/familyCalendar/internal/crypto"
	"github.com/gaoqi7/familyCalendar/internal/errs"
	"github.com/gaoqi7/familyCalendar/internal/model"
	"github.com/gaoqi7/familyCalendar/internal/repository"
)

// MemberService manages household members.
type MemberService interface {
	// Create stores a new member.
	Create(ctx context.Context, householdID int64, name string, avatarColor *string) (*model.Member, error)
	// Update patches name and avatar color; nil keeps the stored value.
	Update(ctx context.Context, householdID, id int64, name, avatarColor *string) (*model.Member, error)
	// SetAvatar stores the uploaded avatar path.
	SetAvatar(ctx context.Context, householdID, id int64, path string) (*model.Member, error)
	// List returns members newest first.
	List(ctx context.Context, householdID int64) ([]model.Member, error)
	// Delete removes a member after confirming the household password.
	Delete(ctx context.Context, householdID, id int64, password string) error
}

type MemberServiceImpl struct {
	members    repository.MemberRepository
	households repository.HouseholdRepository
}

// NewMemberService constructs MemberService.
func NewMemberService(members repository.MemberRepository, households repository.HouseholdRepository) *MemberServiceImpl {
	return &MemberServiceImpl{members: members, households: households}
}

// Create stores a new member.
func (s *MemberServiceImpl) Create(ctx context.Context, householdID int64, name string, avatarColor *string) (*model.Member, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name required", errs.ErrValidation)
	}
	m := &model.Member{HouseholdID: householdID, Name: name, AvatarColor: avatarColor}
	id, err := s.members.Insert(ctx, m)
	if err != nil {
		return nil, err
	}
	return s.members.GetByID(ctx, householdID, id)
}

// Update patches name and avatar color.
func (s *MemberServiceImpl) Update(ctx context.Context, householdID, id int64, name, avatarColor *string) (*model.Member, error) {
	if name == nil && avatarColor == nil {
		return nil, fmt.Errorf("%w: name or avatar color required", errs.ErrValidation)
	}
	return s.members.Update(ctx, householdID, id, name, avatarColor, nil)
}

// SetAvatar stores the uploaded avatar path.
func (s *MemberServiceImpl) SetAvatar(ctx context.Context, householdID, id int64, path string) (*model.Member, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: avatar path required", errs.ErrValidation)
	}
	return s.members.Update(ctx, householdID, id, nil, nil, &path)
}

// List returns members newest first.
func (s *MemberServiceImpl) List(ctx context.Context, householdID int64) ([]model.Member, error) {
	return s.members.ListByHousehold(ctx, householdID)
}

// Delete removes a member after re-checking the household password.
func (s *MemberServiceImpl) Delete(ctx context.Context, householdID, id int64, password string) error {
	h, err := s.households.GetByID(ctx, householdID)
	if err != nil {
		return err
	}
	if !pkgcrypto.VerifyPassword([]byte(password), h.SaltAuth, h.PwdHash) {
		return errs.ErrUnauthorized
	}
	return s.members.DeleteByID(ctx, householdID, id)
}
