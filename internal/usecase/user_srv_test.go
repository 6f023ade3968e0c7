package usecase

import (
	"context"
	"errors"
	"testing"

	"campus-market/internal/data/entity"
	"campus-market/internal/dto/request"
)

func seedUser(repo *fakeUserRepo, email string) int64 {
	user := &entity.User{Email: email}
	repo.Create(context.Background(), user)
	return user.ID
}

func TestUpdateProfileOverwritesEverything(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, &fakeStorage{}, nopLogger())

	id := seedUser(repo, "somchai@go.buu.ac.th")

	first, err := svc.UpdateProfile(context.Background(), id, &request.UpdateProfileRequest{
		Name:            "Somchai Jaidee",
		ContactFacebook: "somchai.fb",
		ContactLine:     "somchai-line",
	})
	if err != nil {
		t.Fatalf("first update: %v", err)
	}
	if first.User.Name != "Somchai Jaidee" {
		t.Errorf("name = %q", first.User.Name)
	}
	if first.User.ContactFacebook == nil || *first.User.ContactFacebook != "somchai.fb" {
		t.Errorf("facebook = %v", first.User.ContactFacebook)
	}

	// Omitted fields are cleared, not kept
	second, err := svc.UpdateProfile(context.Background(), id, &request.UpdateProfileRequest{
		Name: "Somchai",
	})
	if err != nil {
		t.Fatalf("second update: %v", err)
	}
	if second.User.ContactFacebook != nil {
		t.Errorf("facebook survived overwrite: %q", *second.User.ContactFacebook)
	}
	if second.User.ContactLine != nil {
		t.Errorf("line survived overwrite: %q", *second.User.ContactLine)
	}
	if second.User.LastName != nil {
		t.Errorf("last name = %q, want nil", *second.User.LastName)
	}
	if second.User.Name != "Somchai" {
		t.Errorf("name = %q", second.User.Name)
	}
}

func TestUpdateProfileUnknownUser(t *testing.T) {
	svc := NewUserService(newFakeUserRepo(), &fakeStorage{}, nopLogger())

	_, err := svc.UpdateProfile(context.Background(), 99, &request.UpdateProfileRequest{Name: "Ghost"})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestUploadAvatar(t *testing.T) {
	repo := newFakeUserRepo()
	storage := &fakeStorage{}
	svc := NewUserService(repo, storage, nopLogger())

	id := seedUser(repo, "somchai@go.buu.ac.th")

	resp, err := svc.UploadAvatar(context.Background(), id, imageFiles("me.png")[0])
	if err != nil {
		t.Fatalf("UploadAvatar: %v", err)
	}
	if resp.User.ProfileImage == nil || *resp.User.ProfileImage != "/uploads/me.png" {
		t.Errorf("profile image = %v", resp.User.ProfileImage)
	}
	if len(storage.saved) != 1 {
		t.Errorf("files stored = %d, want 1", len(storage.saved))
	}
}

func TestUploadAvatarRequiresFile(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, &fakeStorage{}, nopLogger())

	id := seedUser(repo, "somchai@go.buu.ac.th")

	_, err := svc.UploadAvatar(context.Background(), id, nil)
	if !errors.Is(err, ErrValidation) {
		t.Errorf("err = %v, want ErrValidation", err)
	}
}

func TestUploadAvatarUnknownUser(t *testing.T) {
	svc := NewUserService(newFakeUserRepo(), &fakeStorage{}, nopLogger())

	_, err := svc.UploadAvatar(context.Background(), 99, imageFiles("me.png")[0])
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}
