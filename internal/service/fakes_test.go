package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/YoussefAz2/elenashop-sub001/internal/entity"
	"github.com/YoussefAz2/elenashop-sub001/internal/repository/contract"
	"github.com/YoussefAz2/elenashop-sub001/internal/repository/specification"
	"github.com/YoussefAz2/elenashop-sub001/internal/repository/unitofwork"
	"github.com/YoussefAz2/elenashop-sub001/pkg/events"
)

var errSaveFailed = errors.New("save failed")

// memoryThemeRepository keeps themes in a map and understands the
// ByStoreID specification only.
type memoryThemeRepository struct {
	mu       sync.Mutex
	themes   map[uuid.UUID]*entity.StoreTheme
	failSave bool
}

func newMemoryThemeRepository() *memoryThemeRepository {
	return &memoryThemeRepository{themes: make(map[uuid.UUID]*entity.StoreTheme)}
}

func copyTheme(t *entity.StoreTheme) *entity.StoreTheme {
	out := *t
	out.Config = t.Config.Clone()
	return &out
}

func (r *memoryThemeRepository) Save(_ context.Context, theme *entity.StoreTheme) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failSave {
		return errSaveFailed
	}
	now := time.Now()
	stored, ok := r.themes[theme.StoreId]
	if !ok {
		stored = &entity.StoreTheme{Id: uuid.New(), StoreId: theme.StoreId, CreatedAt: now}
	}
	stored.Config = theme.Config.Clone()
	stored.Revision++
	stored.UpdatedBy = theme.UpdatedBy
	stored.UpdatedAt = &now
	r.themes[theme.StoreId] = stored

	*theme = *copyTheme(stored)
	return nil
}

func (r *memoryThemeRepository) FindOne(_ context.Context, specs ...specification.Specification) (*entity.StoreTheme, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range specs {
		if by, ok := s.(specification.ByStoreID); ok {
			if t, ok := r.themes[by.StoreID]; ok {
				return copyTheme(t), nil
			}
		}
	}
	return nil, nil
}

func (r *memoryThemeRepository) FindAll(_ context.Context, _ ...specification.Specification) ([]*entity.StoreTheme, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.StoreTheme, 0, len(r.themes))
	for _, t := range r.themes {
		out = append(out, copyTheme(t))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UpdatedAt.After(*out[j].UpdatedAt) })
	return out, nil
}

func (r *memoryThemeRepository) Count(_ context.Context, _ ...specification.Specification) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.themes)), nil
}

type memoryUnitOfWork struct {
	repo *memoryThemeRepository
	log  *uowLog
}

type uowLog struct {
	mu                         sync.Mutex
	begins, commits, rollbacks int
}

func (u *memoryUnitOfWork) Begin(context.Context) error {
	u.log.mu.Lock()
	defer u.log.mu.Unlock()
	u.log.begins++
	return nil
}

func (u *memoryUnitOfWork) Commit() error {
	u.log.mu.Lock()
	defer u.log.mu.Unlock()
	u.log.commits++
	return nil
}

func (u *memoryUnitOfWork) Rollback() error {
	u.log.mu.Lock()
	defer u.log.mu.Unlock()
	u.log.rollbacks++
	return nil
}

func (u *memoryUnitOfWork) StoreThemeRepository() contract.StoreThemeRepository {
	return u.repo
}

type memoryFactory struct {
	repo *memoryThemeRepository
	log  *uowLog
}

func newMemoryFactory() *memoryFactory {
	return &memoryFactory{repo: newMemoryThemeRepository(), log: &uowLog{}}
}

func (f *memoryFactory) NewUnitOfWork(context.Context) unitofwork.UnitOfWork {
	return &memoryUnitOfWork{repo: f.repo, log: f.log}
}

// recordingBus captures published events.
type recordingBus struct {
	mu     sync.Mutex
	events []events.Event
}

func (b *recordingBus) Publish(_ context.Context, e events.Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, e)
	return nil
}

func (b *recordingBus) codes() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, 0, len(b.events))
	for _, e := range b.events {
		out = append(out, e.EventType())
	}
	return out
}

func (b *recordingBus) last() events.Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.events) == 0 {
		return nil
	}
	return b.events[len(b.events)-1]
}

// recordingPublisher captures queued payloads.
type recordingPublisher struct {
	mu       sync.Mutex
	payloads [][]byte
}

func (p *recordingPublisher) Publish(_ context.Context, payload []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.payloads = append(p.payloads, payload)
	return nil
}

type sentFrame struct {
	StoreId uuid.UUID
	UserId  *uuid.UUID
	Role    string
	Frame   []byte
}

// recordingDelivery captures socket frames.
type recordingDelivery struct {
	mu     sync.Mutex
	frames []sentFrame
}

func (d *recordingDelivery) SendToUser(storeId, userId uuid.UUID, role string, frame []byte) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.frames = append(d.frames, sentFrame{StoreId: storeId, UserId: &userId, Role: role, Frame: frame})
}

func (d *recordingDelivery) SendToStore(storeId uuid.UUID, role string, frame []byte) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.frames = append(d.frames, sentFrame{StoreId: storeId, Role: role, Frame: frame})
}

func (d *recordingDelivery) sent() []sentFrame {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]sentFrame(nil), d.frames...)
}
