package live

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"election_dashboard/internal/election"
	"election_dashboard/internal/models"
)

var (
	ErrUnknownParty  = errors.New("unknown party")
	ErrNegativeSeats = errors.New("seats must not be negative")
)

// Board хранит объявленные за ночь места в памяти процесса.
type Board struct {
	mu          sync.RWMutex
	seats       map[string]int
	lastUpdated time.Time
	now         func() time.Time
}

func NewBoard() *Board {
	return newBoard(time.Now)
}

func newBoard(now func() time.Time) *Board {
	b := &Board{now: now}
	b.reset()
	return b
}

// Snapshot возвращает копию текущих мест.
func (b *Board) Snapshot() models.LiveResults {
	b.mu.RLock()
	defer b.mu.RUnlock()

	seats := make(map[string]int, len(b.seats))
	for party, n := range b.seats {
		seats[party] = n
	}
	return models.LiveResults{Seats: seats, LastUpdated: b.lastUpdated}
}

// Update выставляет абсолютные значения мест для перечисленных партий.
// Если хоть одно значение некорректно, табло не меняется.
func (b *Board) Update(changes map[string]int) (models.LiveResults, error) {
	parties := make([]string, 0, len(changes))
	for party := range changes {
		parties = append(parties, party)
	}
	sort.Strings(parties)

	for _, party := range parties {
		if !election.IsLiveParty(party) {
			return models.LiveResults{}, fmt.Errorf("%w: %s", ErrUnknownParty, party)
		}
		if changes[party] < 0 {
			return models.LiveResults{}, fmt.Errorf("%w: %s=%d", ErrNegativeSeats, party, changes[party])
		}
	}

	b.mu.Lock()
	for party, n := range changes {
		b.seats[party] = n
	}
	b.lastUpdated = b.now().UTC()
	b.mu.Unlock()

	return b.Snapshot(), nil
}

// Reset обнуляет все партии.
func (b *Board) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.reset()
}

func (b *Board) reset() {
	b.seats = make(map[string]int)
	for _, party := range election.LiveParties() {
		b.seats[party] = 0
	}
	b.lastUpdated = b.now().UTC()
}
