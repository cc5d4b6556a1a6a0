package service

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/shareit-service/server/internal/errs"
	"github.com/Astemirdum/shareit-service/server/internal/model"
)

func (s *Service) CreateBooking(ctx context.Context, bookerID int64, req model.CreateBookingRequest) (model.Booking, error) {
	if err := s.requireUser(ctx, bookerID); err != nil {
		return model.Booking{}, err
	}
	item, err := s.repo.GetItem(ctx, req.ItemID)
	if err != nil {
		return model.Booking{}, errors.Wrapf(err, "item with id %d", req.ItemID)
	}
	if item.OwnerID == bookerID {
		return model.Booking{}, errors.Wrap(errs.ErrForbidden, "cannot book own item")
	}
	if !item.Available {
		return model.Booking{}, errors.Wrap(errs.ErrValidation, "item is not available")
	}
	if !req.End.After(req.Start) {
		return model.Booking{}, errors.Wrap(errs.ErrValidation, "booking end must be after start")
	}

	booking, err := s.repo.CreateBooking(ctx, req.ItemID, bookerID, req.Start, req.End)
	if err != nil {
		return model.Booking{}, err
	}
	s.publishBookingEvent(ctx, booking)

	return booking, nil
}

func (s *Service) ApproveBooking(ctx context.Context, bookingID, ownerID int64, decision model.Decision) (model.Booking, error) {
	booking, err := s.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return model.Booking{}, errors.Wrapf(err, "booking with id %d", bookingID)
	}
	if booking.Item.OwnerID != ownerID {
		return model.Booking{}, errors.Wrap(errs.ErrForbidden, "only the item owner can approve a booking")
	}
	if booking.Status != model.StatusWaiting {
		return model.Booking{}, errors.Wrap(errs.ErrValidation, "booking has already been approved or rejected")
	}
	ok, err := s.repo.SetBookingStatus(ctx, bookingID, model.StatusWaiting, decision.Status())
	if err != nil {
		return model.Booking{}, err
	}
	if !ok {
		// lost the race against a concurrent approval
		return model.Booking{}, errors.Wrap(errs.ErrValidation, "booking has already been approved or rejected")
	}
	booking.Status = decision.Status()
	s.publishBookingEvent(ctx, booking)

	return booking, nil
}

func (s *Service) GetBooking(ctx context.Context, bookingID, callerID int64) (model.Booking, error) {
	booking, err := s.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return model.Booking{}, errors.Wrapf(err, "booking with id %d", bookingID)
	}
	if booking.Booker.ID != callerID && booking.Item.OwnerID != callerID {
		return model.Booking{}, errors.Wrap(errs.ErrForbidden, "only the booker or the item owner can view a booking")
	}
	return booking, nil
}

func (s *Service) ListBookingsByBooker(ctx context.Context, bookerID int64, state model.BookingState, from, size int) ([]model.Booking, error) {
	if err := s.requireUser(ctx, bookerID); err != nil {
		return nil, err
	}
	return s.repo.ListBookingsByBooker(ctx, bookerID, state, s.now(), from, size)
}

func (s *Service) ListBookingsByOwner(ctx context.Context, ownerID int64, state model.BookingState, from, size int) ([]model.Booking, error) {
	if err := s.requireUser(ctx, ownerID); err != nil {
		return nil, err
	}
	return s.repo.ListBookingsByOwner(ctx, ownerID, state, s.now(), from, size)
}

func (s *Service) requireUser(ctx context.Context, userID int64) error {
	exists, err := s.repo.UserExists(ctx, userID)
	if err != nil {
		return err
	}
	if !exists {
		return errors.Wrapf(errs.ErrNotFound, "user with id %d", userID)
	}
	return nil
}

func (s *Service) publishBookingEvent(ctx context.Context, booking model.Booking) {
	if s.events == nil {
		return
	}
	ev := model.BookingEvent{
		BookingID: booking.ID,
		ItemID:    booking.Item.ID,
		BookerID:  booking.Booker.ID,
		Status:    booking.Status,
		At:        s.now(),
	}
	if err := s.events.PublishBookingEvent(ctx, ev); err != nil {
		s.log.Warn("publish booking event", zap.Int64("bookingID", booking.ID), zap.Error(err))
	}
}
