package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"school_portal/internal/model"
	"school_portal/internal/repository"

	"github.com/stretchr/testify/mock"
)

type mockMessageRepo struct {
	mock.Mock
}

func (m *mockMessageRepo) FindRecent(ctx context.Context, limit int) ([]model.Message, error) {
	args := m.Called(ctx, limit)
	msgs, _ := args.Get(0).([]model.Message)
	return msgs, args.Error(1)
}

func (m *mockMessageRepo) FindByID(ctx context.Context, id int64) (*model.Message, error) {
	args := m.Called(ctx, id)
	msg, _ := args.Get(0).(*model.Message)
	return msg, args.Error(1)
}

func (m *mockMessageRepo) Create(ctx context.Context, msg *model.Message) error {
	return m.Called(ctx, msg).Error(0)
}

func (m *mockMessageRepo) UpdateText(ctx context.Context, id int64, text string) error {
	return m.Called(ctx, id, text).Error(0)
}

func (m *mockMessageRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockMessageRepo) GrantAdmin(ctx context.Context, userID int64, username string) error {
	return m.Called(ctx, userID, username).Error(0)
}

type mockContactRepo struct {
	mock.Mock
}

func (m *mockContactRepo) FindAll(ctx context.Context) ([]model.Contact, error) {
	args := m.Called(ctx)
	contacts, _ := args.Get(0).([]model.Contact)
	return contacts, args.Error(1)
}

func (m *mockContactRepo) Create(ctx context.Context, c *model.Contact) error {
	return m.Called(ctx, c).Error(0)
}

func (m *mockContactRepo) Update(ctx context.Context, c *model.Contact) error {
	return m.Called(ctx, c).Error(0)
}

func (m *mockContactRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockNewsRepo struct {
	mock.Mock
}

func (m *mockNewsRepo) FindAll(ctx context.Context) ([]model.News, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.News)
	return items, args.Error(1)
}

func (m *mockNewsRepo) Create(ctx context.Context, n *model.News) error {
	return m.Called(ctx, n).Error(0)
}

func (m *mockNewsRepo) Update(ctx context.Context, n *model.News) error {
	return m.Called(ctx, n).Error(0)
}

func (m *mockNewsRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// memMessageRepo is an in-memory MessageRepository for behavioural tests.
type memMessageRepo struct {
	mu       sync.Mutex
	nextID   int64
	messages map[int64]model.Message
	admins   map[int64]string
}

func newMemMessageRepo() *memMessageRepo {
	return &memMessageRepo{messages: map[int64]model.Message{}, admins: map[int64]string{}}
}

func (r *memMessageRepo) FindRecent(_ context.Context, limit int) ([]model.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Message, 0, len(r.messages))
	for _, m := range r.messages {
		_, m.IsAdmin = r.admins[m.UserID]
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *memMessageRepo) FindByID(_ context.Context, id int64) (*model.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.messages[id]
	if !ok {
		return nil, nil
	}
	return &m, nil
}

func (r *memMessageRepo) Create(_ context.Context, m *model.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	m.ID = r.nextID
	m.CreatedAt = time.Now()
	_, m.IsAdmin = r.admins[m.UserID]
	r.messages[m.ID] = *m
	return nil
}

func (r *memMessageRepo) UpdateText(_ context.Context, id int64, text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.messages[id]
	if !ok {
		return repository.ErrNoRowsAffected
	}
	m.Message = text
	r.messages[id] = m
	return nil
}

func (r *memMessageRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.messages[id]; !ok {
		return repository.ErrNoRowsAffected
	}
	delete(r.messages, id)
	return nil
}

func (r *memMessageRepo) GrantAdmin(_ context.Context, userID int64, username string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.admins[userID]; !ok {
		r.admins[userID] = username
	}
	return nil
}

type likeKey struct {
	userID  int64
	subject string
}

// memLikeRepo is an in-memory LikeRepository with set semantics.
type memLikeRepo struct {
	mu    sync.Mutex
	likes map[likeKey]struct{}
}

func newMemLikeRepo() *memLikeRepo {
	return &memLikeRepo{likes: map[likeKey]struct{}{}}
}

func (r *memLikeRepo) countLocked(subject string) int64 {
	var n int64
	for k := range r.likes {
		if k.subject == subject {
			n++
		}
	}
	return n
}

func (r *memLikeRepo) Count(_ context.Context, subject string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.countLocked(subject), nil
}

func (r *memLikeRepo) HasLiked(_ context.Context, subject string, userID int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.likes[likeKey{userID, subject}]
	return ok, nil
}

func (r *memLikeRepo) Like(_ context.Context, userID int64, subject string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.likes[likeKey{userID, subject}] = struct{}{}
	return r.countLocked(subject), nil
}

func (r *memLikeRepo) Unlike(_ context.Context, userID int64, subject string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.likes, likeKey{userID, subject})
	return r.countLocked(subject), nil
}
