package service

import (
	"context"
	"sort"
	"sync"

	"gorm.io/gorm"

	"rental/internal/model"
)

// memoryUsers is an in-memory user directory with the same contract as the
// GORM repository, including the unique email index.
type memoryUsers struct {
	mu     sync.Mutex
	nextID uint
	rows   map[uint]model.User
}

func newMemoryUsers() *memoryUsers {
	return &memoryUsers{nextID: 1, rows: map[uint]model.User{}}
}

func (r *memoryUsers) Create(_ context.Context, fields model.UserFields, passwordHash string) (uint, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.rows {
		if u.Email == fields.Email {
			return 0, gorm.ErrDuplicatedKey
		}
	}
	id := r.nextID
	r.nextID++
	r.rows[id] = model.User{
		ID:           id,
		Name:         fields.Name,
		Email:        fields.Email,
		Phone:        fields.Phone,
		Role:         fields.Role,
		PasswordHash: passwordHash,
	}
	return id, nil
}

func (r *memoryUsers) FindByID(_ context.Context, id uint) (*model.PublicUser, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	p := u.Public()
	return &p, nil
}

func (r *memoryUsers) FindByEmail(_ context.Context, email string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.rows {
		if u.Email == email {
			found := u
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memoryUsers) List(_ context.Context) ([]model.PublicUser, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.PublicUser, 0, len(r.rows))
	for _, u := range r.rows {
		out = append(out, u.Public())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memoryUsers) Update(_ context.Context, id uint, update model.UserUpdate) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.rows[id]
	if !ok {
		return 0, nil
	}
	u.Name = update.Fields.Name
	u.Email = update.Fields.Email
	u.Phone = update.Fields.Phone
	u.Role = update.Fields.Role
	if hash, ok := update.Credential.Hash(); ok {
		u.PasswordHash = hash
	}
	r.rows[id] = u
	return 1, nil
}

func (r *memoryUsers) Delete(_ context.Context, id uint) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[id]; !ok {
		return 0, nil
	}
	delete(r.rows, id)
	return 1, nil
}

func (r *memoryUsers) hashOf(id uint) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rows[id].PasswordHash
}
