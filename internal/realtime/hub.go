package realtime

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"

	domain "github.com/agenasports/pitch-scheduler/internal/domain/schedule"
	"github.com/agenasports/pitch-scheduler/internal/models"
)

// Canal de notificação: o payload não importa, toda mensagem significa
// "releia o conjunto completo".
const channelName = "reservations.changed"

// Hub distributes full reservation snapshots. Every change notification
// replaces the in-memory set; subscribers re-derive their views from
// scratch, holding no state between pushes.
type Hub struct {
	repo domain.Repository
	rdb  *redis.Client

	mu       sync.Mutex
	latest   []models.Reservation
	subs     map[int]chan []models.Reservation
	nextID   int
	haveSnap bool
}

func NewHub(repo domain.Repository, rdb *redis.Client) *Hub {
	return &Hub{
		repo: repo,
		rdb:  rdb,
		subs: make(map[int]chan []models.Reservation),
	}
}

// Subscribe returns a snapshot channel and a cancel func. The latest
// snapshot, when one exists, is delivered immediately. Slow consumers only
// ever see the most recent set: stale snapshots are replaced, not queued.
func (h *Hub) Subscribe() (<-chan []models.Reservation, func()) {
	ch := make(chan []models.Reservation, 1)

	h.mu.Lock()
	id := h.nextID
	h.nextID++
	h.subs[id] = ch
	if h.haveSnap {
		ch <- h.latest
	}
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		if sub, ok := h.subs[id]; ok {
			delete(h.subs, id)
			close(sub)
		}
		h.mu.Unlock()
	}
	return ch, cancel
}

// Notify publishes a change notification. Transport errors are logged and
// swallowed: a failed notify never fails the mutation that triggered it.
func (h *Hub) Notify(ctx context.Context) {
	if err := h.rdb.Publish(ctx, channelName, "1").Err(); err != nil {
		log.Printf("realtime: publish failed: %v", err)
	}
}

// Snapshot returns the last known reservation set, refreshing from storage
// when none was loaded yet.
func (h *Hub) Snapshot(ctx context.Context) ([]models.Reservation, error) {
	h.mu.Lock()
	if h.haveSnap {
		snap := h.latest
		h.mu.Unlock()
		return snap, nil
	}
	h.mu.Unlock()

	all, err := h.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	h.store(all)
	return all, nil
}

// Run listens for change notifications until ctx is cancelled. It never
// returns an error: broken transports are retried with backoff and logged.
func (h *Hub) Run(ctx context.Context) {
	backoff := time.Second

	for {
		if ctx.Err() != nil {
			return
		}

		h.refresh(ctx)

		pubsub := h.rdb.Subscribe(ctx, channelName)
		_, err := pubsub.Receive(ctx)
		if err != nil {
			_ = pubsub.Close()
			if ctx.Err() != nil {
				return
			}
			log.Printf("realtime: subscribe failed: %v; retrying in %s", err, backoff)
			time.Sleep(backoff)
			if backoff < 30*time.Second {
				backoff *= 2
			}
			continue
		}
		backoff = time.Second

		h.consume(ctx, pubsub)
		_ = pubsub.Close()
	}
}

func (h *Hub) consume(ctx context.Context, pubsub *redis.PubSub) {
	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-ch:
			if !ok {
				return
			}
			h.refresh(ctx)
		}
	}
}

func (h *Hub) refresh(ctx context.Context) {
	all, err := h.repo.ListAll(ctx)
	if err != nil {
		log.Printf("realtime: snapshot read failed: %v", err)
		return
	}
	h.store(all)
}

func (h *Hub) store(all []models.Reservation) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.latest = all
	h.haveSnap = true

	for _, sub := range h.subs {
		select {
		case sub <- all:
		default:
			// descarta o snapshot antigo e entrega o mais novo
			select {
			case <-sub:
			default:
			}
			sub <- all
		}
	}
}
