package service

import (
	"context"

	"github.com/pkg/errors"

	"github.com/Astemirdum/shareit-service/server/internal/model"
)

func (s *Service) CreateRequest(ctx context.Context, requesterID int64, req model.NewItemRequest) (model.ItemRequest, error) {
	if err := s.requireUser(ctx, requesterID); err != nil {
		return model.ItemRequest{}, err
	}
	return s.repo.CreateRequest(ctx, requesterID, req.Description, s.now())
}

func (s *Service) GetRequest(ctx context.Context, requestID, callerID int64) (model.ItemRequestDetails, error) {
	if err := s.requireUser(ctx, callerID); err != nil {
		return model.ItemRequestDetails{}, err
	}
	request, err := s.repo.GetRequest(ctx, requestID)
	if err != nil {
		return model.ItemRequestDetails{}, errors.Wrapf(err, "request with id %d", requestID)
	}
	details, err := s.withItems(ctx, []model.ItemRequest{request})
	if err != nil {
		return model.ItemRequestDetails{}, err
	}
	return details[0], nil
}

// ListOwnRequests returns the caller's requests, newest first.
func (s *Service) ListOwnRequests(ctx context.Context, callerID int64, from, size int) ([]model.ItemRequestDetails, error) {
	if err := s.requireUser(ctx, callerID); err != nil {
		return nil, err
	}
	requests, err := s.repo.ListRequestsByRequester(ctx, callerID, from, size)
	if err != nil {
		return nil, err
	}
	return s.withItems(ctx, requests)
}

// ListOtherRequests returns all requests except the caller's, newest first.
func (s *Service) ListOtherRequests(ctx context.Context, callerID int64, from, size int) ([]model.ItemRequestDetails, error) {
	if err := s.requireUser(ctx, callerID); err != nil {
		return nil, err
	}
	requests, err := s.repo.ListRequestsExcept(ctx, callerID, from, size)
	if err != nil {
		return nil, err
	}
	return s.withItems(ctx, requests)
}

// withItems attaches to each request the items created to fulfill it.
func (s *Service) withItems(ctx context.Context, requests []model.ItemRequest) ([]model.ItemRequestDetails, error) {
	ids := make([]int64, 0, len(requests))
	for _, req := range requests {
		ids = append(ids, req.ID)
	}
	items, err := s.repo.ListItemsByRequests(ctx, ids)
	if err != nil {
		return nil, err
	}
	itemsByRequest := make(map[int64][]model.Item, len(requests))
	for _, item := range items {
		if item.RequestID == nil {
			continue
		}
		itemsByRequest[*item.RequestID] = append(itemsByRequest[*item.RequestID], item)
	}

	details := make([]model.ItemRequestDetails, 0, len(requests))
	for _, req := range requests {
		d := model.ItemRequestDetails{ItemRequest: req, Items: []model.Item{}}
		if its, ok := itemsByRequest[req.ID]; ok {
			d.Items = its
		}
		details = append(details, d)
	}
	return details, nil
}
