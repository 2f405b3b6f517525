// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-session-keeper/models"
)

// memoryUserRepository keeps accounts in process memory. Used when the
// server runs without a database.
type memoryUserRepository struct {
	mu     sync.RWMutex
	nextID int64
	users  map[string]models.User
}

func NewMemoryUserRepository() UserRepository {
	return &memoryUserRepository{users: make(map[string]models.User)}
}

func (r *memoryUserRepository) CreateUser(_ context.Context, user models.User) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.Login]; ok {
		return models.User{}, ErrLoginAlreadyExists
	}

	r.nextID++
	created := models.User{
		UserID:       r.nextID,
		Login:        user.Login,
		PasswordHash: user.PasswordHash,
		CreatedAt:    time.Now(),
	}
	r.users[user.Login] = created

	return created, nil
}

func (r *memoryUserRepository) FindUserByLogin(_ context.Context, login string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[login]
	if !ok {
		return models.User{}, ErrNoUserWasFound
	}
	return user, nil
}

type memorySessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]models.Session
}

func NewMemorySessionRepository() SessionRepository {
	return &memorySessionRepository{sessions: make(map[string]models.Session)}
}

func (r *memorySessionRepository) SaveSession(_ context.Context, session models.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[session.TokenID] = session
	return nil
}

func (r *memorySessionRepository) FindSession(_ context.Context, tokenID string) (models.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[tokenID]
	if !ok {
		return models.Session{}, ErrSessionNotFound
	}
	return session, nil
}

func (r *memorySessionRepository) DeleteSession(_ context.Context, tokenID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[tokenID]; !ok {
		return ErrSessionNotFound
	}
	delete(r.sessions, tokenID)
	return nil
}

func (r *memorySessionRepository) DeleteExpiredSessions(_ context.Context, now time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var removed int64
	for id, session := range r.sessions {
		if session.Expired(now) {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed, nil
}
