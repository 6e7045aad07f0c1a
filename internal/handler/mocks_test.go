package handler

import (
	"context"

	"school_portal/internal/model"

	"github.com/stretchr/testify/mock"
)

type mockMessageService struct {
	mock.Mock
}

func (m *mockMessageService) ListMessages(ctx context.Context, limit int) ([]model.Message, error) {
	args := m.Called(ctx, limit)
	msgs, _ := args.Get(0).([]model.Message)
	return msgs, args.Error(1)
}

func (m *mockMessageService) CreateMessage(ctx context.Context, req model.CreateMessageRequest) (*model.CreateMessageResult, error) {
	args := m.Called(ctx, req)
	res, _ := args.Get(0).(*model.CreateMessageResult)
	return res, args.Error(1)
}

func (m *mockMessageService) UpdateMessage(ctx context.Context, req model.UpdateMessageRequest) error {
	return m.Called(ctx, req).Error(0)
}

func (m *mockMessageService) DeleteMessage(ctx context.Context, messageID, userID int64) error {
	return m.Called(ctx, messageID, userID).Error(0)
}

type mockContactService struct {
	mock.Mock
}

func (m *mockContactService) ListContacts(ctx context.Context) ([]model.Contact, error) {
	args := m.Called(ctx)
	contacts, _ := args.Get(0).([]model.Contact)
	return contacts, args.Error(1)
}

func (m *mockContactService) CreateContact(ctx context.Context, req model.CreateContactRequest) (*model.Contact, error) {
	args := m.Called(ctx, req)
	c, _ := args.Get(0).(*model.Contact)
	return c, args.Error(1)
}

func (m *mockContactService) UpdateContact(ctx context.Context, req model.UpdateContactRequest) error {
	return m.Called(ctx, req).Error(0)
}

func (m *mockContactService) DeleteContact(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockNewsService struct {
	mock.Mock
}

func (m *mockNewsService) ListNews(ctx context.Context) ([]model.News, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.News)
	return items, args.Error(1)
}

func (m *mockNewsService) CreateNews(ctx context.Context, req model.CreateNewsRequest) (*model.News, error) {
	args := m.Called(ctx, req)
	n, _ := args.Get(0).(*model.News)
	return n, args.Error(1)
}

func (m *mockNewsService) UpdateNews(ctx context.Context, req model.UpdateNewsRequest) error {
	return m.Called(ctx, req).Error(0)
}

func (m *mockNewsService) DeleteNews(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockLikeService struct {
	mock.Mock
}

func (m *mockLikeService) GetLikes(ctx context.Context, subject string, userID *int64) (*model.LikeStatus, error) {
	args := m.Called(ctx, subject, userID)
	st, _ := args.Get(0).(*model.LikeStatus)
	return st, args.Error(1)
}

func (m *mockLikeService) ToggleLike(ctx context.Context, req model.ToggleLikeRequest) (int64, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(int64), args.Error(1)
}
