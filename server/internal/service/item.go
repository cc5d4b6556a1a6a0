package service

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/Astemirdum/shareit-service/server/internal/errs"
	"github.com/Astemirdum/shareit-service/server/internal/model"
)

func (s *Service) CreateItem(ctx context.Context, ownerID int64, req model.CreateItemRequest) (model.Item, error) {
	if err := s.requireUser(ctx, ownerID); err != nil {
		return model.Item{}, err
	}
	if req.RequestID != nil {
		if _, err := s.repo.GetRequest(ctx, *req.RequestID); err != nil {
			return model.Item{}, errors.Wrapf(err, "request with id %d", *req.RequestID)
		}
	}
	item := model.Item{
		Name:        req.Name,
		Description: req.Description,
		Available:   *req.Available,
		OwnerID:     ownerID,
		RequestID:   req.RequestID,
	}
	return s.repo.CreateItem(ctx, item)
}

func (s *Service) UpdateItem(ctx context.Context, itemID, callerID int64, req model.UpdateItemRequest) (model.Item, error) {
	item, err := s.repo.GetItem(ctx, itemID)
	if err != nil {
		return model.Item{}, errors.Wrapf(err, "item with id %d", itemID)
	}
	if item.OwnerID != callerID {
		return model.Item{}, errors.Wrap(errs.ErrForbidden, "only the owner can update an item")
	}
	return s.repo.UpdateItem(ctx, itemID, req)
}

func (s *Service) GetItem(ctx context.Context, itemID, callerID int64) (model.ItemDetails, error) {
	item, err := s.repo.GetItem(ctx, itemID)
	if err != nil {
		return model.ItemDetails{}, errors.Wrapf(err, "item with id %d", itemID)
	}
	details, err := s.enrichItems(ctx, []model.Item{item}, item.OwnerID == callerID)
	if err != nil {
		return model.ItemDetails{}, err
	}
	return details[0], nil
}

func (s *Service) ListItems(ctx context.Context, ownerID int64, from, size int) ([]model.ItemDetails, error) {
	if err := s.requireUser(ctx, ownerID); err != nil {
		return nil, err
	}
	items, err := s.repo.ListItemsByOwner(ctx, ownerID, from, size)
	if err != nil {
		return nil, err
	}
	return s.enrichItems(ctx, items, true)
}

// SearchItems returns available items matching the text in name or
// description. Blank text short-circuits to an empty result without
// touching storage.
func (s *Service) SearchItems(ctx context.Context, text string, from, size int) ([]model.Item, error) {
	if strings.TrimSpace(text) == "" {
		return []model.Item{}, nil
	}
	return s.repo.SearchItems(ctx, text, from, size)
}

func (s *Service) DeleteItem(ctx context.Context, itemID int64) error {
	return s.repo.DeleteItem(ctx, itemID)
}

func (s *Service) CreateComment(ctx context.Context, itemID, authorID int64, req model.CreateCommentRequest) (model.Comment, error) {
	author, err := s.repo.GetUser(ctx, authorID)
	if err != nil {
		return model.Comment{}, errors.Wrapf(err, "user with id %d", authorID)
	}
	if _, err := s.repo.GetItem(ctx, itemID); err != nil {
		return model.Comment{}, errors.Wrapf(err, "item with id %d", itemID)
	}
	rented, err := s.repo.HasFinishedBooking(ctx, authorID, itemID, s.now())
	if err != nil {
		return model.Comment{}, err
	}
	if !rented {
		return model.Comment{}, errors.Wrap(errs.ErrValidation,
			"item has not been rented by the user or the rental has not yet been completed")
	}
	comment, err := s.repo.CreateComment(ctx, itemID, authorID, req.Text, s.now())
	if err != nil {
		return model.Comment{}, err
	}
	comment.AuthorName = author.Name

	return comment, nil
}

// enrichItems loads comments (always) and last/next approved booking
// summaries (owner view only) for the given items concurrently.
func (s *Service) enrichItems(ctx context.Context, items []model.Item, withBookings bool) ([]model.ItemDetails, error) {
	ids := make([]int64, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}

	var (
		last     []model.BookingShort
		next     []model.BookingShort
		comments []model.Comment
	)
	g, gCtx := errgroup.WithContext(ctx)
	if withBookings {
		now := s.now()
		g.Go(func() error {
			var err error
			last, err = s.repo.LastBookings(gCtx, ids, now)
			return err
		})
		g.Go(func() error {
			var err error
			next, err = s.repo.NextBookings(gCtx, ids, now)
			return err
		})
	}
	g.Go(func() error {
		var err error
		comments, err = s.repo.ListCommentsByItems(gCtx, ids)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	lastByItem := make(map[int64]model.BookingShort, len(last))
	for _, b := range last {
		lastByItem[b.ItemID] = b
	}
	nextByItem := make(map[int64]model.BookingShort, len(next))
	for _, b := range next {
		nextByItem[b.ItemID] = b
	}
	commentsByItem := make(map[int64][]model.Comment, len(items))
	for _, c := range comments {
		commentsByItem[c.ItemID] = append(commentsByItem[c.ItemID], c)
	}

	details := make([]model.ItemDetails, 0, len(items))
	for _, item := range items {
		d := model.ItemDetails{Item: item, Comments: []model.Comment{}}
		if cs, ok := commentsByItem[item.ID]; ok {
			d.Comments = cs
		}
		if b, ok := lastByItem[item.ID]; ok {
			b := b
			d.LastBooking = &b
		}
		if b, ok := nextByItem[item.ID]; ok {
			b := b
			d.NextBooking = &b
		}
		details = append(details, d)
	}
	return details, nil
}
