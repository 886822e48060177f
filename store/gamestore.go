package store

import (
	"errors"
	"fmt"
	"sync"

	"github.com/minaorangina/deal/engine"
)

var (
	ErrUnknownGameID = errors.New("unknown game ID")
	ErrDuplicateID   = errors.New("game ID already in use")
)

// GameStore keeps track of running games
type GameStore interface {
	FindGame(gameID string) (engine.GameEngine, error)
	AddGame(game engine.GameEngine) error
	RemoveGame(gameID string) error
	GameIDs() []string
}

// InMemoryGameStore maps game id to game engine
type InMemoryGameStore struct {
	mu    sync.RWMutex
	Games map[string]engine.GameEngine
}

// NewInMemoryGameStore constructs an InMemoryGameStore
func NewInMemoryGameStore() *InMemoryGameStore {
	return &InMemoryGameStore{
		Games: map[string]engine.GameEngine{},
	}
}

func (s *InMemoryGameStore) FindGame(gameID string) (engine.GameEngine, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	game, ok := s.Games[gameID]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownGameID, gameID)
	}
	return game, nil
}

func (s *InMemoryGameStore) AddGame(game engine.GameEngine) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.Games[game.ID()]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateID, game.ID())
	}

	s.Games[game.ID()] = game
	return nil
}

func (s *InMemoryGameStore) RemoveGame(gameID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.Games[gameID]; !exists {
		return fmt.Errorf("%w: %q", ErrUnknownGameID, gameID)
	}

	delete(s.Games, gameID)
	return nil
}

// GameIDs lists the games in the store, in no particular order
func (s *InMemoryGameStore) GameIDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.Games))
	for id := range s.Games {
		ids = append(ids, id)
	}
	return ids
}
