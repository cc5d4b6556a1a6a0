package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Astemirdum/shareit-service/server/internal/errs"
	"github.com/Astemirdum/shareit-service/server/internal/model"
)

func TestService_SearchItems_BlankText(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService(t)

	for _, text := range []string{"", "   ", "\t"} {
		got, err := svc.SearchItems(ctx, text, 0, 10)
		require.NoError(t, err)
		require.Equal(t, []model.Item{}, got)
	}
}

func TestService_SearchItems(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, repo := newTestService(t)

	repo.EXPECT().SearchItems(ctx, "drill", 0, 10).
		Return([]model.Item{{ID: 2, Name: "drill", Available: true}}, nil)

	got, err := svc.SearchItems(ctx, "drill", 0, 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "drill", got[0].Name)
}

func TestService_UpdateItem(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	name := "drill 2000"

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTestService(t)
		repo.EXPECT().GetItem(ctx, int64(2)).
			Return(model.Item{ID: 2, OwnerID: 1}, nil)
		repo.EXPECT().UpdateItem(ctx, int64(2), model.UpdateItemRequest{Name: name}).
			Return(model.Item{ID: 2, OwnerID: 1, Name: name}, nil)

		got, err := svc.UpdateItem(ctx, 2, 1, model.UpdateItemRequest{Name: name})
		require.NoError(t, err)
		require.Equal(t, name, got.Name)
	})

	t.Run("err. not the owner", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTestService(t)
		repo.EXPECT().GetItem(ctx, int64(2)).
			Return(model.Item{ID: 2, OwnerID: 1}, nil)

		_, err := svc.UpdateItem(ctx, 2, 5, model.UpdateItemRequest{Name: name})
		require.ErrorIs(t, err, errs.ErrForbidden)
	})
}

func TestService_CreateComment(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	req := model.CreateCommentRequest{Text: "works great"}

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTestService(t)
		repo.EXPECT().GetUser(ctx, int64(3)).
			Return(model.User{ID: 3, Name: "alice"}, nil)
		repo.EXPECT().GetItem(ctx, int64(2)).
			Return(model.Item{ID: 2, OwnerID: 1}, nil)
		repo.EXPECT().HasFinishedBooking(ctx, int64(3), int64(2), testNow).
			Return(true, nil)
		repo.EXPECT().CreateComment(ctx, int64(2), int64(3), req.Text, testNow).
			Return(model.Comment{ID: 1, Text: req.Text, ItemID: 2, Created: testNow}, nil)

		got, err := svc.CreateComment(ctx, 2, 3, req)
		require.NoError(t, err)
		require.Equal(t, "alice", got.AuthorName)
		require.Equal(t, req.Text, got.Text)
	})

	t.Run("err. rental not finished", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTestService(t)
		repo.EXPECT().GetUser(ctx, int64(3)).
			Return(model.User{ID: 3, Name: "alice"}, nil)
		repo.EXPECT().GetItem(ctx, int64(2)).
			Return(model.Item{ID: 2, OwnerID: 1}, nil)
		repo.EXPECT().HasFinishedBooking(ctx, int64(3), int64(2), testNow).
			Return(false, nil)

		_, err := svc.CreateComment(ctx, 2, 3, req)
		require.ErrorIs(t, err, errs.ErrValidation)
	})
}

func TestService_GetItem_Enrichment(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	item := model.Item{ID: 2, Name: "drill", OwnerID: 1, Available: true}

	t.Run("owner view has bookings", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTestService(t)
		repo.EXPECT().GetItem(ctx, int64(2)).Return(item, nil)
		repo.EXPECT().LastBookings(ctx, []int64{2}, testNow).
			Return([]model.BookingShort{{ID: 5, BookerID: 3, ItemID: 2}}, nil)
		repo.EXPECT().NextBookings(ctx, []int64{2}, testNow).
			Return([]model.BookingShort{{ID: 6, BookerID: 4, ItemID: 2}}, nil)
		repo.EXPECT().ListCommentsByItems(ctx, []int64{2}).
			Return([]model.Comment{{ID: 1, ItemID: 2, Text: "ok", Created: testNow.Add(-time.Hour)}}, nil)

		got, err := svc.GetItem(ctx, 2, 1)
		require.NoError(t, err)
		require.NotNil(t, got.LastBooking)
		require.EqualValues(t, 5, got.LastBooking.ID)
		require.NotNil(t, got.NextBooking)
		require.EqualValues(t, 6, got.NextBooking.ID)
		require.Len(t, got.Comments, 1)
	})

	t.Run("stranger view has no bookings", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTestService(t)
		repo.EXPECT().GetItem(ctx, int64(2)).Return(item, nil)
		repo.EXPECT().ListCommentsByItems(ctx, []int64{2}).
			Return([]model.Comment{}, nil)

		got, err := svc.GetItem(ctx, 2, 9)
		require.NoError(t, err)
		require.Nil(t, got.LastBooking)
		require.Nil(t, got.NextBooking)
		require.Equal(t, []model.Comment{}, got.Comments)
	})
}
