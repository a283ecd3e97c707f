package web

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// flashWindow is how long an action message stays visible.
const flashWindow = 5 * time.Second

type Flash struct {
	Kind string // "success" or "error"
	Text string
}

// Flashes holds one pending action message per session. Messages expire
// on their own after the display window, read or not.
type Flashes struct {
	store *cache.Cache
}

func NewFlashes() *Flashes {
	return &Flashes{store: cache.New(flashWindow, time.Minute)}
}

func (f *Flashes) Success(sessionID, text string) {
	f.store.SetDefault(sessionID, Flash{Kind: "success", Text: text})
}

func (f *Flashes) Error(sessionID, text string) {
	f.store.SetDefault(sessionID, Flash{Kind: "error", Text: text})
}

// Pop returns and removes the session's pending message.
func (f *Flashes) Pop(sessionID string) (Flash, bool) {
	cached, found := f.store.Get(sessionID)

	if !found {
		return Flash{}, false
	}

	f.store.Delete(sessionID)

	return cached.(Flash), true
}
