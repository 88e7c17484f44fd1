package cleanup

import (
	"context"
	"log"
	"time"

	"batepapo/database"
	"batepapo/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	// interval is longer than the staleness threshold, so a participant
	// can be stale for a few seconds before a tick picks them up. That
	// matches the original room behavior and is not worth tightening.
	interval  = 15 * time.Second
	threshold = 10 * time.Second
)

// Sweeper evicts participants whose last heartbeat is older than the
// staleness threshold and records a departure notice for each.
type Sweeper struct {
	store database.Store
}

func New(store database.Store) *Sweeper {
	return &Sweeper{store: store}
}

// Run ticks until ctx is cancelled. A failed tick is logged, never fatal.
func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep(ctx)
		}
	}
}

// Sweep runs one eviction pass. Evictions are strictly sequential so
// departure messages land in a deterministic order; a failure on one
// participant does not stop the rest.
func (s *Sweeper) Sweep(ctx context.Context) {
	now := time.Now()

	participants, err := s.store.FindAll(ctx, database.Users)
	if err != nil {
		log.Printf("sweep: list participants: %v", err)
		return
	}

	for _, p := range participants {
		if now.UnixMilli()-lastStatus(p) <= threshold.Milliseconds() {
			continue
		}

		name, _ := p["name"].(string)
		id, ok := p["_id"].(primitive.ObjectID)
		if !ok {
			log.Printf("sweep: participant %q has no object id", name)
			continue
		}

		if err := s.store.DeleteOneByID(ctx, database.Users, id); err != nil {
			log.Printf("sweep: evict %q: %v", name, err)
			continue
		}

		departure := models.Message{
			ID:   primitive.NewObjectID(),
			From: name,
			To:   models.Broadcast,
			Text: models.DepartureText,
			Type: models.TypeStatus,
			Time: now.Format(models.TimeLayout),
		}
		if err := s.store.InsertOne(ctx, database.Messages, departure); err != nil {
			log.Printf("sweep: record departure of %q: %v", name, err)
		}
	}
}

// lastStatus tolerates the numeric widths the driver may hand back.
func lastStatus(p bson.M) int64 {
	switch v := p["lastStatus"].(type) {
	case int64:
		return v
	case int32:
		return int64(v)
	case float64:
		return int64(v)
	default:
		return 0
	}
}
