package messaging

import (
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// HandoffStore keeps a finished questionnaire's message for the few seconds
// between submission and the redirect page. Entries are read once.
type HandoffStore struct {
	cache *expirable.LRU[string, string]
}

func NewHandoffStore(capacity int, ttl time.Duration) *HandoffStore {
	return &HandoffStore{cache: expirable.NewLRU[string, string](capacity, nil, ttl)}
}

// Put stores message and returns the token to fetch it with.
func (s *HandoffStore) Put(message string) string {
	token := uuid.NewString()
	s.cache.Add(token, message)
	return token
}

// Take returns the message for token and forgets it. Unknown or expired
// tokens report false.
func (s *HandoffStore) Take(token string) (string, bool) {
	message, ok := s.cache.Get(token)
	if !ok {
		return "", false
	}
	// Concurrent takers may all see the entry; only the one that removes it wins.
	if !s.cache.Remove(token) {
		return "", false
	}
	return message, true
}

func (s *HandoffStore) Len() int {
	return s.cache.Len()
}
