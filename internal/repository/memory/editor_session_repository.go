package memory

import (
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/YoussefAz2/elenashop-sub001/pkg/editor"
)

// EditorSessionRepository keeps live editing sessions in process. Every
// access refreshes the TTL, so only idle sessions expire.
type EditorSessionRepository struct {
	cache *cache.Cache
	ttl   time.Duration
}

func NewEditorSessionRepository(ttl time.Duration) *EditorSessionRepository {
	if ttl <= 0 {
		ttl = 2 * time.Hour
	}
	// Purge expired sessions every 10 minutes.
	c := cache.New(ttl, 10*time.Minute)
	return &EditorSessionRepository{
		cache: c,
		ttl:   ttl,
	}
}

// Key identifies the session of one editor on one store.
func Key(storeID, userID string) string {
	return storeID + ":" + userID
}

func (r *EditorSessionRepository) Save(key string, session *editor.Session) {
	r.cache.Set(key, session, cache.DefaultExpiration)
}

func (r *EditorSessionRepository) Get(key string) (*editor.Session, bool) {
	x, found := r.cache.Get(key)
	if !found {
		return nil, false
	}
	session := x.(*editor.Session)
	r.cache.Set(key, session, cache.DefaultExpiration)
	return session, true
}

func (r *EditorSessionRepository) Delete(key string) {
	r.cache.Delete(key)
}

// OnEvicted registers f for sessions removed by expiry or Delete.
func (r *EditorSessionRepository) OnEvicted(f func(key string, session *editor.Session)) {
	r.cache.OnEvicted(func(key string, v interface{}) {
		if s, ok := v.(*editor.Session); ok {
			f(key, s)
		}
	})
}

func (r *EditorSessionRepository) Count() int {
	return r.cache.ItemCount()
}
