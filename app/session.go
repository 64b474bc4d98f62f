package main

import "errors"

// Keys the session is persisted under in browser local storage.
const (
	sessionTokenKey = "auth_token"
	sessionUserKey  = "user"
)

var errNoSession = errors.New("no session")

// keyValue is the slice of go-app's BrowserStorage the session store
// needs; tests substitute an in-memory map.
type keyValue interface {
	Set(k string, v any) error
	Get(k string, v any) error
	Del(k string)
}

// sessionStore persists the token and cached user profile together.
// Token and user are always written and cleared as a pair; storage
// holding only one of them is treated as no session.
type sessionStore struct {
	storage keyValue
}

func (s sessionStore) save(token string, user User) error {
	if err := s.storage.Set(sessionTokenKey, token); err != nil {
		return err
	}
	if err := s.storage.Set(sessionUserKey, user); err != nil {
		s.storage.Del(sessionTokenKey)
		return err
	}
	return nil
}

func (s sessionStore) load() (string, User, error) {
	var token string
	if err := s.storage.Get(sessionTokenKey, &token); err != nil || token == "" {
		return "", User{}, errNoSession
	}

	var user User
	if err := s.storage.Get(sessionUserKey, &user); err != nil || user.ID == 0 || user.Email == "" {
		return "", User{}, errNoSession
	}

	return token, user, nil
}

func (s sessionStore) clear() {
	s.storage.Del(sessionTokenKey)
	s.storage.Del(sessionUserKey)
}
