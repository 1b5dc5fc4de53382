package service

import (
	"Hearth/internal/api/dto"
	"Hearth/internal/model"
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// testPNG 生成一张可被解码的小图
func testPNG(t *testing.T) *bytes.Buffer {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 120, 120))
	for x := 0; x < 120; x++ {
		for y := 0; y < 120; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	buf := &bytes.Buffer{}
	require.NoError(t, png.Encode(buf, img))
	return buf
}

type profileFixture struct {
	svc        ProfileService
	profiles   *fakeProfileRepo
	categories *fakeCategoryRepo
	storage    *fakeStorage

	owner      primitive.ObjectID
	categoryID primitive.ObjectID
}

func newProfileFixture(t *testing.T) *profileFixture {
	t.Helper()

	f := &profileFixture{
		profiles:   newFakeProfileRepo(),
		categories: newFakeCategoryRepo(),
		storage:    &fakeStorage{},
		owner:      primitive.NewObjectID(),
	}

	category := &model.Category{User: primitive.NewObjectID(), Title: "general"}
	require.NoError(t, f.categories.Create(context.Background(), category))
	f.categoryID = category.ID

	gate := NewModerationGate(f.categories)
	f.svc = NewProfileService(f.profiles, f.categories, gate, f.storage)
	return f
}

func TestCreateProfileUniqueness(t *testing.T) {
	f := newProfileFixture(t)
	ctx := context.Background()
	req := &dto.CreateProfileDTO{Category: f.categoryID.Hex(), Nickname: "ghost"}

	_, err := f.svc.Create(ctx, f.owner, req, nil)
	require.NoError(t, err)

	// 同一用户同板块同昵称冲突
	_, err = f.svc.Create(ctx, f.owner, req, nil)
	assert.ErrorIs(t, err, ErrProfileExist)

	// 换个用户就不冲突
	_, err = f.svc.Create(ctx, primitive.NewObjectID(), req, nil)
	assert.NoError(t, err)
}

func TestCreateProfileUnknownCategory(t *testing.T) {
	f := newProfileFixture(t)

	_, err := f.svc.Create(context.Background(), f.owner, &dto.CreateProfileDTO{
		Category: primitive.NewObjectID().Hex(),
		Nickname: "ghost",
	}, nil)
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestCreateProfileWithImage(t *testing.T) {
	f := newProfileFixture(t)

	profile, err := f.svc.Create(context.Background(), f.owner, &dto.CreateProfileDTO{
		Category: f.categoryID.Hex(),
		Nickname: "ghost",
	}, &ImageUpload{Filename: "avatar.png", Reader: testPNG(t)})
	require.NoError(t, err)

	require.Len(t, f.storage.uploaded, 1)
	assert.Equal(t, f.storage.uploaded[0], profile.ProfileImage.Key)
	assert.True(t, strings.HasPrefix(profile.ProfileImage.Key, f.owner.Hex()+"/profile/"))
	assert.Equal(t, "https://storage.test/"+profile.ProfileImage.Key, profile.ProfileImage.URL)
}

func TestUpdateProfileSwapsImage(t *testing.T) {
	f := newProfileFixture(t)
	ctx := context.Background()

	profile, err := f.svc.Create(ctx, f.owner, &dto.CreateProfileDTO{
		Category: f.categoryID.Hex(),
		Nickname: "ghost",
	}, &ImageUpload{Filename: "old.png", Reader: testPNG(t)})
	require.NoError(t, err)
	oldKey := profile.ProfileImage.Key

	_, err = f.svc.Update(ctx, profile.ID, primitive.NewObjectID(), &dto.UpdateProfileDTO{Nickname: "ghost"}, nil)
	assert.ErrorIs(t, err, ErrUnauthorized)

	updated, err := f.svc.Update(ctx, profile.ID, f.owner, &dto.UpdateProfileDTO{Nickname: "phantom"},
		&ImageUpload{Filename: "new.png", Reader: testPNG(t)})
	require.NoError(t, err)

	assert.Equal(t, "phantom", updated.Nickname)
	assert.NotEqual(t, oldKey, updated.ProfileImage.Key)
	assert.Contains(t, f.storage.deleted, oldKey)
}

func TestUpdateProfileNicknameConflict(t *testing.T) {
	f := newProfileFixture(t)
	ctx := context.Background()

	first, err := f.svc.Create(ctx, f.owner, &dto.CreateProfileDTO{Category: f.categoryID.Hex(), Nickname: "ghost"}, nil)
	require.NoError(t, err)
	_, err = f.svc.Create(ctx, f.owner, &dto.CreateProfileDTO{Category: f.categoryID.Hex(), Nickname: "phantom"}, nil)
	require.NoError(t, err)

	_, err = f.svc.Update(ctx, first.ID, f.owner, &dto.UpdateProfileDTO{Nickname: "phantom"}, nil)
	assert.ErrorIs(t, err, ErrProfileExist)

	// 昵称不变不做冲突检查
	_, err = f.svc.Update(ctx, first.ID, f.owner, &dto.UpdateProfileDTO{Nickname: "ghost"}, nil)
	assert.NoError(t, err)
}

func TestDeleteProfileRemovesImage(t *testing.T) {
	f := newProfileFixture(t)
	ctx := context.Background()

	profile, err := f.svc.Create(ctx, f.owner, &dto.CreateProfileDTO{
		Category: f.categoryID.Hex(),
		Nickname: "ghost",
	}, &ImageUpload{Filename: "avatar.png", Reader: testPNG(t)})
	require.NoError(t, err)

	err = f.svc.Delete(ctx, profile.ID, primitive.NewObjectID())
	assert.ErrorIs(t, err, ErrUnauthorized)

	require.NoError(t, f.svc.Delete(ctx, profile.ID, f.owner))
	assert.Contains(t, f.storage.deleted, profile.ProfileImage.Key)

	_, err = f.svc.GetById(ctx, profile.ID)
	assert.ErrorIs(t, err, ErrProfileNotFound)
}
