package wallet

import (
	"sync"

	"github.com/vahanchain/vahanchain/internal/flow"
)

// subscriberBuffer bounds the statuses queued for one subscriber.
const subscriberBuffer = 8

// broadcaster fans status changes out to subscribers in publish order. When a
// subscriber's queue is full the oldest pending status is dropped, so publish
// never blocks and the latest status is always delivered.
type broadcaster struct {
	mu     sync.Mutex
	subs   map[int]chan flow.Signals
	nextID int
}

func (b *broadcaster) subscribe() (<-chan flow.Signals, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.subs == nil {
		b.subs = make(map[int]chan flow.Signals)
	}
	id := b.nextID
	b.nextID++
	ch := make(chan flow.Signals, subscriberBuffer)
	b.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			if _, ok := b.subs[id]; ok {
				delete(b.subs, id)
				close(ch)
			}
		})
	}
}

func (b *broadcaster) publish(sig flow.Signals) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, ch := range b.subs {
		for {
			select {
			case ch <- sig:
			default:
				select {
				case <-ch:
				default:
				}
				continue
			}
			break
		}
	}
}

func (b *broadcaster) closeAll() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for id, ch := range b.subs {
		close(ch)
		delete(b.subs, id)
	}
}
