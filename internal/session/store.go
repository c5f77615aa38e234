package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"shopkart/internal/filter"
)

// ErrNotFound indica que la sesión no existe o expiró
var ErrNotFound = errors.New("session not found")

const defaultTTL = 24 * time.Hour

// Store guarda el estado de filtros de cada sesión de navegación en Redis.
// El estado es copy-on-write: se lee, se transforma y se reescribe completo.
type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb, ttl: defaultTTL}
}

func sessionKey(id string) string {
	return "session:" + id
}

// Create persiste el estado inicial y retorna el id de la nueva sesión
func (s *Store) Create(ctx context.Context, state filter.State) (string, error) {
	id := uuid.NewString()
	if err := s.Save(ctx, id, state); err != nil {
		return "", err
	}
	return id, nil
}

// Get recupera el estado de una sesión
func (s *Store) Get(ctx context.Context, id string) (filter.State, error) {
	data, err := s.rdb.Get(ctx, sessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return filter.State{}, ErrNotFound
		}
		return filter.State{}, err
	}

	var state filter.State
	if err := json.Unmarshal(data, &state); err != nil {
		return filter.State{}, err
	}
	return state, nil
}

// Save reescribe el estado completo de la sesión y renueva su TTL
func (s *Store) Save(ctx context.Context, id string, state filter.State) error {
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, sessionKey(id), data, s.ttl).Err()
}

// Delete descarta la sesión
func (s *Store) Delete(ctx context.Context, id string) error {
	return s.rdb.Del(ctx, sessionKey(id)).Err()
}
