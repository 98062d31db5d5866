//go:generate go run go.uber.org/mock/mockgen -source=session.go -destination=../mocks/mock_session_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	"fmt"
	"mongolshop/domain"

	"github.com/dgraph-io/badger/v4"
)

// keyCurrentUser holds the JSON-encoded identity of the logged-in user.
// Absence of the key is the valid "no user" state.
const keyCurrentUser = "current-user"

type ISessionRepository interface {
	Save(user domain.User) error
	Current() (domain.User, bool, error)
	Clear() error
}

type SessionRepository struct {
	db *badger.DB
}

func NewSessionRepository(db *badger.DB) ISessionRepository {
	return &SessionRepository{db: db}
}

func (s SessionRepository) Save(user domain.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyCurrentUser), data)
	})
}

// Current returns the persisted identity, or ok=false when nobody is
// logged in.
func (s SessionRepository) Current() (domain.User, bool, error) {
	var user domain.User
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyCurrentUser))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &user)
		})
	})
	switch {
	case err == nil:
		return user, true, nil
	case err == badger.ErrKeyNotFound:
		return domain.User{}, false, nil
	default:
		return domain.User{}, false, fmt.Errorf("load user: %w", err)
	}
}

// Clear removes the current-user slot unconditionally; clearing an
// already absent slot is a no-op.
func (s SessionRepository) Clear() error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(keyCurrentUser))
	})
}
