package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/societyhub/society-api/internal/core/domain"
)

type stubAnnouncementRepo struct {
	items     []*domain.Announcement
	lastLimit int64
}

func (r *stubAnnouncementRepo) Create(_ context.Context, a *domain.Announcement) (*domain.Announcement, error) {
	stored := *a
	stored.ID = fmt.Sprintf("a-%d", len(r.items)+1)
	r.items = append(r.items, &stored)
	return &stored, nil
}

func (r *stubAnnouncementRepo) List(_ context.Context, limit int64) ([]*domain.Announcement, error) {
	r.lastLimit = limit
	out := make([]*domain.Announcement, 0, len(r.items))
	for i := len(r.items) - 1; i >= 0 && int64(len(out)) < limit; i-- {
		out = append(out, r.items[i])
	}
	return out, nil
}

func (r *stubAnnouncementRepo) Delete(_ context.Context, id string) error {
	for i, a := range r.items {
		if a.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrAnnouncementNotFound
}

func TestAnnouncementService_Create(t *testing.T) {
	repo := &stubAnnouncementRepo{}
	svc := NewAnnouncementService(repo, zerolog.Nop())
	ctx := context.Background()

	_, err := svc.Create(ctx, resident, "Water cut", "No water on Sunday")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = svc.Create(ctx, admin, "Water cut", "  ")
	assert.ErrorIs(t, err, domain.ErrValidation)

	a, err := svc.Create(ctx, admin, " Water cut ", "No water on Sunday")
	require.NoError(t, err)
	assert.Equal(t, "Water cut", a.Title)
	assert.Equal(t, admin.Email, a.Author)
	assert.False(t, a.CreatedAt.IsZero())
}

func TestAnnouncementService_ListNewestFirst(t *testing.T) {
	repo := &stubAnnouncementRepo{}
	svc := NewAnnouncementService(repo, zerolog.Nop())
	ctx := context.Background()
	for _, title := range []string{"first", "second", "third"} {
		_, err := svc.Create(ctx, admin, title, "body")
		require.NoError(t, err)
	}

	items, err := svc.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "third", items[0].Title)
	assert.Equal(t, "second", items[1].Title)
}

func TestAnnouncementService_ListClampsLimit(t *testing.T) {
	repo := &stubAnnouncementRepo{}
	svc := NewAnnouncementService(repo, zerolog.Nop())

	_, _ = svc.List(context.Background(), 0)
	assert.Equal(t, int64(defaultAnnouncementLimit), repo.lastLimit)

	_, _ = svc.List(context.Background(), 5000)
	assert.Equal(t, int64(maxAnnouncementLimit), repo.lastLimit)
}

func TestAnnouncementService_Delete(t *testing.T) {
	repo := &stubAnnouncementRepo{}
	svc := NewAnnouncementService(repo, zerolog.Nop())
	ctx := context.Background()
	a, err := svc.Create(ctx, admin, "t", "b")
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(ctx, worker, a.ID), domain.ErrForbidden)
	assert.NoError(t, svc.Delete(ctx, admin, a.ID))
	assert.ErrorIs(t, svc.Delete(ctx, admin, a.ID), domain.ErrAnnouncementNotFound)
}
