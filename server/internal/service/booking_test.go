package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Astemirdum/shareit-service/server/internal/errs"
	"github.com/Astemirdum/shareit-service/server/internal/model"
	repo_mocks "github.com/Astemirdum/shareit-service/server/internal/repository/mocks"
)

var testNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) (*Service, *repo_mocks.MockRepository) {
	t.Helper()
	c := gomock.NewController(t)
	t.Cleanup(c.Finish)
	repo := repo_mocks.NewMockRepository(c)
	svc := NewService(repo, nil, zap.NewExample().Named("test"))
	svc.now = func() time.Time { return testNow }
	return svc, repo
}

func TestService_CreateBooking(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	start, end := testNow.Add(24*time.Hour), testNow.Add(48*time.Hour)
	req := model.CreateBookingRequest{ItemID: 2, Start: start, End: end}

	var tests = []struct {
		name         string
		bookerID     int64
		req          model.CreateBookingRequest
		mockBehavior func(r *repo_mocks.MockRepository)
		want         model.Booking
		wantErr      error
	}{
		{
			name:     "ok",
			bookerID: 3,
			req:      req,
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().UserExists(ctx, int64(3)).Return(true, nil)
				r.EXPECT().GetItem(ctx, int64(2)).
					Return(model.Item{ID: 2, OwnerID: 1, Available: true}, nil)
				r.EXPECT().CreateBooking(ctx, int64(2), int64(3), start, end).
					Return(model.Booking{
						ID:     7,
						Start:  start,
						End:    end,
						Status: model.StatusWaiting,
						Item:   model.ItemShort{ID: 2, OwnerID: 1},
						Booker: model.UserShort{ID: 3},
					}, nil)
			},
			want: model.Booking{
				ID:     7,
				Start:  start,
				End:    end,
				Status: model.StatusWaiting,
				Item:   model.ItemShort{ID: 2, OwnerID: 1},
				Booker: model.UserShort{ID: 3},
			},
		},
		{
			name:     "err. unknown user",
			bookerID: 42,
			req:      req,
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().UserExists(ctx, int64(42)).Return(false, nil)
			},
			wantErr: errs.ErrNotFound,
		},
		{
			name:     "err. own item",
			bookerID: 1,
			req:      req,
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().UserExists(ctx, int64(1)).Return(true, nil)
				r.EXPECT().GetItem(ctx, int64(2)).
					Return(model.Item{ID: 2, OwnerID: 1, Available: true}, nil)
			},
			wantErr: errs.ErrForbidden,
		},
		{
			name:     "err. item unavailable",
			bookerID: 3,
			req:      req,
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().UserExists(ctx, int64(3)).Return(true, nil)
				r.EXPECT().GetItem(ctx, int64(2)).
					Return(model.Item{ID: 2, OwnerID: 1, Available: false}, nil)
			},
			wantErr: errs.ErrValidation,
		},
		{
			name:     "err. end before start",
			bookerID: 3,
			req:      model.CreateBookingRequest{ItemID: 2, Start: end, End: start},
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().UserExists(ctx, int64(3)).Return(true, nil)
				r.EXPECT().GetItem(ctx, int64(2)).
					Return(model.Item{ID: 2, OwnerID: 1, Available: true}, nil)
			},
			wantErr: errs.ErrValidation,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, repo := newTestService(t)
			tt.mockBehavior(repo)

			got, err := svc.CreateBooking(ctx, tt.bookerID, tt.req)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestService_ApproveBooking(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	waiting := model.Booking{
		ID:     7,
		Status: model.StatusWaiting,
		Item:   model.ItemShort{ID: 2, OwnerID: 1},
		Booker: model.UserShort{ID: 3},
	}

	var tests = []struct {
		name         string
		ownerID      int64
		decision     model.Decision
		mockBehavior func(r *repo_mocks.MockRepository)
		wantStatus   model.BookingStatus
		wantErr      error
	}{
		{
			name:     "ok. approved",
			ownerID:  1,
			decision: model.DecisionApproved,
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetBooking(ctx, int64(7)).Return(waiting, nil)
				r.EXPECT().SetBookingStatus(ctx, int64(7), model.StatusWaiting, model.StatusApproved).
					Return(true, nil)
			},
			wantStatus: model.StatusApproved,
		},
		{
			name:     "ok. rejected",
			ownerID:  1,
			decision: model.DecisionRejected,
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetBooking(ctx, int64(7)).Return(waiting, nil)
				r.EXPECT().SetBookingStatus(ctx, int64(7), model.StatusWaiting, model.StatusRejected).
					Return(true, nil)
			},
			wantStatus: model.StatusRejected,
		},
		{
			name:     "err. not the owner",
			ownerID:  3,
			decision: model.DecisionApproved,
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetBooking(ctx, int64(7)).Return(waiting, nil)
			},
			wantErr: errs.ErrForbidden,
		},
		{
			name:     "err. already decided",
			ownerID:  1,
			decision: model.DecisionApproved,
			mockBehavior: func(r *repo_mocks.MockRepository) {
				approved := waiting
				approved.Status = model.StatusApproved
				r.EXPECT().GetBooking(ctx, int64(7)).Return(approved, nil)
			},
			wantErr: errs.ErrValidation,
		},
		{
			name:     "err. lost decision race",
			ownerID:  1,
			decision: model.DecisionApproved,
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetBooking(ctx, int64(7)).Return(waiting, nil)
				r.EXPECT().SetBookingStatus(ctx, int64(7), model.StatusWaiting, model.StatusApproved).
					Return(false, nil)
			},
			wantErr: errs.ErrValidation,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, repo := newTestService(t)
			tt.mockBehavior(repo)

			got, err := svc.ApproveBooking(ctx, 7, tt.ownerID, tt.decision)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantStatus, got.Status)
		})
	}
}

func TestService_GetBooking(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	booking := model.Booking{
		ID:     7,
		Status: model.StatusWaiting,
		Item:   model.ItemShort{ID: 2, OwnerID: 1},
		Booker: model.UserShort{ID: 3},
	}

	var tests = []struct {
		name     string
		callerID int64
		wantErr  error
	}{
		{name: "ok. booker", callerID: 3},
		{name: "ok. owner", callerID: 1},
		{name: "err. stranger", callerID: 5, wantErr: errs.ErrForbidden},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, repo := newTestService(t)
			repo.EXPECT().GetBooking(ctx, int64(7)).Return(booking, nil)

			got, err := svc.GetBooking(ctx, 7, tt.callerID)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, booking, got)
		})
	}
}

func TestService_ListBookingsByBooker(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc, repo := newTestService(t)
	repo.EXPECT().UserExists(ctx, int64(3)).Return(true, nil)
	repo.EXPECT().
		ListBookingsByBooker(ctx, int64(3), model.StateFuture, testNow, 0, 10).
		Return([]model.Booking{{ID: 7}}, nil)

	got, err := svc.ListBookingsByBooker(ctx, 3, model.StateFuture, 0, 10)
	require.NoError(t, err)
	require.Len(t, got, 1)

	repo.EXPECT().UserExists(ctx, int64(42)).Return(false, nil)
	_, err = svc.ListBookingsByBooker(ctx, 42, model.StateAll, 0, 10)
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestService_CreateBooking_RepoError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, repo := newTestService(t)

	repo.EXPECT().UserExists(ctx, int64(3)).Return(true, nil)
	repo.EXPECT().GetItem(ctx, int64(2)).Return(model.Item{}, errors.Wrap(errs.ErrNotFound, "no rows"))

	_, err := svc.CreateBooking(ctx, 3, model.CreateBookingRequest{
		ItemID: 2,
		Start:  testNow.Add(time.Hour),
		End:    testNow.Add(2 * time.Hour),
	})
	require.ErrorIs(t, err, errs.ErrNotFound)
}
