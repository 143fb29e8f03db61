package chat

import "sync"

// Store holds conversation history in process memory, keyed by a
// client-supplied chat identifier. State does not survive a restart.
//
// The lock protects map and slice integrity only. Two in-flight requests for
// the same chat identifier can still interleave their turns; ordering across
// concurrent requests to one chat is not a guarantee this store makes.
type Store struct {
	mu           sync.RWMutex
	chats        map[string][]Message
	systemPrompt string
}

// NewStore creates an empty store. Every new conversation is seeded with
// systemPrompt as its first message.
func NewStore(systemPrompt string) *Store {
	return &Store{
		chats:        make(map[string][]Message),
		systemPrompt: systemPrompt,
	}
}

// GetOrCreate returns a copy of the history for id, initializing a new
// conversation holding only the system prompt if id has not been seen.
func (s *Store) GetOrCreate(id string) []Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	history, ok := s.chats[id]
	if !ok {
		history = []Message{{Role: RoleSystem, Content: s.systemPrompt}}
		s.chats[id] = history
	}

	out := make([]Message, len(history))
	copy(out, history)
	return out
}

// Replace overwrites the history for id with a copy of msgs.
func (s *Store) Replace(id string, msgs []Message) {
	stored := make([]Message, len(msgs))
	copy(stored, msgs)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.chats[id] = stored
}

// Delete removes the conversation for id and reports whether it existed.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.chats[id]
	delete(s.chats, id)
	return ok
}

// ListIDs returns a snapshot of all known chat identifiers. Order is not
// meaningful. The result is never nil so it serializes as a JSON array.
func (s *Store) ListIDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.chats))
	for id := range s.chats {
		ids = append(ids, id)
	}
	return ids
}

// Len returns the number of known conversations.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.chats)
}
