package service

import (
	"context"
	"errors"
	"testing"

	"github.com/gaoqi7/familyCalendar/internal/errs"
	"github.com/gaoqi7/familyCalendar/internal/model"
	"github.com/gaoqi7/familyCalendar/internal/repository"
)

type fakeMemberRepo struct {
	insertIn *model.Member
	getOut   *model.Member

	updateInName   *string
	updateInColor  *string
	updateInAvatar *string

	deletedID int64
	deleteErr error
}

var _ repository.MemberRepository = (*fakeMemberRepo)(nil)

func (f *fakeMemberRepo) Insert(_ context.Context, m *model.Member) (int64, error) {
	cp := *m
	f.insertIn = &cp
	return 21, nil
}

func (f *fakeMemberRepo) GetByID(_ context.Context, _, id int64) (*model.Member, error) {
	if f.getOut == nil {
		return nil, errs.ErrNotFound
	}
	cp := *f.getOut
	cp.ID = id
	return &cp, nil
}

func (f *fakeMemberRepo) ListByHousehold(_ context.Context, _ int64) ([]model.Member, error) {
	return nil, nil
}

func (f *fakeMemberRepo) Update(_ context.Context, _, id int64, name, avatarColor, avatarPath *string) (*model.Member, error) {
	f.updateInName, f.updateInColor, f.updateInAvatar = name, avatarColor, avatarPath
	m := &model.Member{ID: id, Name: "x"}
	if name != nil {
		m.Name = *name
	}
	m.AvatarColor = avatarColor
	m.AvatarPath = avatarPath
	return m, nil
}

func (f *fakeMemberRepo) DeleteByID(_ context.Context, _, id int64) error {
	f.deletedID = id
	return f.deleteErr
}

func TestMemberService_Create_RequiresName(t *testing.T) {
	t.Parallel()
	repo := &fakeMemberRepo{}
	s := NewMemberService(repo, &fakeHouseholdRepo{})

	if _, err := s.Create(context.Background(), 7, "", nil); !errors.Is(err, errs.ErrValidation) {
		t.Fatalf("want validation error, got %v", err)
	}
	if repo.insertIn != nil {
		t.Fatalf("repo must not be called")
	}
}

func TestMemberService_Create_OK(t *testing.T) {
	t.Parallel()
	color := "#ff8800"
	repo := &fakeMemberRepo{getOut: &model.Member{HouseholdID: 7, Name: "Alex", AvatarColor: &color}}
	s := NewMemberService(repo, &fakeHouseholdRepo{})

	m, err := s.Create(context.Background(), 7, "Alex", &color)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if m.ID != 21 || repo.insertIn.HouseholdID != 7 {
		t.Fatalf("unexpected member: %+v", m)
	}
}

func TestMemberService_Update_RequiresAField(t *testing.T) {
	t.Parallel()
	s := NewMemberService(&fakeMemberRepo{}, &fakeHouseholdRepo{})
	if _, err := s.Update(context.Background(), 7, 21, nil, nil); !errors.Is(err, errs.ErrValidation) {
		t.Fatalf("want validation error, got %v", err)
	}
}

func TestMemberService_SetAvatar_PassesPathOnly(t *testing.T) {
	t.Parallel()
	repo := &fakeMemberRepo{}
	s := NewMemberService(repo, &fakeHouseholdRepo{})

	m, err := s.SetAvatar(context.Background(), 7, 21, "/uploads/a.png")
	if err != nil {
		t.Fatalf("set avatar: %v", err)
	}
	if repo.updateInName != nil || repo.updateInColor != nil {
		t.Fatalf("avatar update must not touch name or color")
	}
	if m.AvatarPath == nil || *m.AvatarPath != "/uploads/a.png" {
		t.Fatalf("path not stored")
	}
}

func TestMemberService_Delete_WrongPassword(t *testing.T) {
	t.Parallel()
	repo := &fakeMemberRepo{}
	hh := &fakeHouseholdRepo{byID: testHousehold(t, "hunter2")}
	s := NewMemberService(repo, hh)

	err := s.Delete(context.Background(), 7, 21, "wrong")
	if !errors.Is(err, errs.ErrUnauthorized) {
		t.Fatalf("want unauthorized, got %v", err)
	}
	if repo.deletedID != 0 {
		t.Fatalf("member must not be deleted on bad password")
	}
}

func TestMemberService_Delete_OK(t *testing.T) {
	t.Parallel()
	repo := &fakeMemberRepo{}
	hh := &fakeHouseholdRepo{byID: testHousehold(t, "hunter2")}
	s := NewMemberService(repo, hh)

	if err := s.Delete(context.Background(), 7, 21, "hunter2"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if repo.deletedID != 21 {
		t.Fatalf("wrong member deleted: %d", repo.deletedID)
	}
}
