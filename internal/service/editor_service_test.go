package service

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YoussefAz2/elenashop-sub001/internal/config"
	"github.com/YoussefAz2/elenashop-sub001/internal/dto"
	"github.com/YoussefAz2/elenashop-sub001/internal/pkg/logger"
	"github.com/YoussefAz2/elenashop-sub001/internal/repository/memory"
	"github.com/YoussefAz2/elenashop-sub001/pkg/binding"
	"github.com/YoussefAz2/elenashop-sub001/pkg/bridge"
	"github.com/YoussefAz2/elenashop-sub001/pkg/clock"
	"github.com/YoussefAz2/elenashop-sub001/pkg/editor"
	"github.com/YoussefAz2/elenashop-sub001/pkg/element"
	"github.com/YoussefAz2/elenashop-sub001/pkg/override"
	"github.com/YoussefAz2/elenashop-sub001/pkg/selection"
	"github.com/YoussefAz2/elenashop-sub001/pkg/theme"
)

// stubThemes serves stored documents and records queued saves.
type stubThemes struct {
	IThemeService

	mu     sync.Mutex
	stored map[uuid.UUID]theme.Config
	saves  []dto.SaveThemeMessage
}

func (s *stubThemes) Get(_ context.Context, storeId uuid.UUID) (*dto.ThemeResponse, error) {
	cfg, ok := s.stored[storeId]
	if !ok {
		cfg = theme.Config{}
	}
	return &dto.ThemeResponse{StoreId: storeId, Config: theme.Resolve(cfg)}, nil
}

func (s *stubThemes) SaveOverrides(_ context.Context, msg *dto.SaveThemeMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saves = append(s.saves, *msg)
	return nil
}

func (s *stubThemes) queued() []dto.SaveThemeMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]dto.SaveThemeMessage(nil), s.saves...)
}

type editorFixture struct {
	svc      IEditorService
	themes   *stubThemes
	delivery *recordingDelivery
	sessions *memory.EditorSessionRepository
	clock    *clock.FakeClock
	store    uuid.UUID
	user     uuid.UUID
}

func newEditorFixture(t *testing.T) *editorFixture {
	t.Helper()
	f := &editorFixture{
		themes:   &stubThemes{stored: map[uuid.UUID]theme.Config{}},
		delivery: &recordingDelivery{},
		sessions: memory.NewEditorSessionRepository(time.Hour),
		clock:    clock.Fake(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)),
		store:    uuid.New(),
		user:     uuid.New(),
	}
	f.svc = NewEditorService(f.sessions, f.themes, f.delivery, config.EditorConfig{
		HistoryLimit: 50,
		LongPress:    500 * time.Millisecond,
	}, f.clock, logger.NewNopLogger())
	return f
}

func (f *editorFixture) open(t *testing.T, preview bool) *dto.SessionResponse {
	t.Helper()
	res, err := f.svc.Open(context.Background(), f.store, f.user, &dto.OpenSessionRequest{Preview: preview})
	require.NoError(t, err)
	return res
}

func frameTypes(frames []sentFrame) []string {
	out := make([]string, 0, len(frames))
	for _, f := range frames {
		var decoded dto.SocketFrame
		if err := json.Unmarshal(f.Frame, &decoded); err == nil {
			out = append(out, decoded.Type)
		}
	}
	return out
}

func TestEditorService_RequiresOpenSession(t *testing.T) {
	f := newEditorFixture(t)

	_, err := f.svc.Get(f.store, f.user)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = f.svc.Undo(f.store, f.user)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.ErrorIs(t, f.svc.Close(f.store, f.user), ErrSessionNotFound)
}

func TestEditorService_OpenSeedsStoredOverrides(t *testing.T) {
	f := newEditorFixture(t)
	f.themes.stored[f.store] = theme.Config{
		theme.KeyElementOverrides: map[string]interface{}{
			"hero-title": map[string]interface{}{"color": "#FF0000"},
		},
	}

	res := f.open(t, false)
	assert.Equal(t, override.Map{"hero-title": {Color: "#FF0000"}}, res.Overrides)
	assert.False(t, res.CanUndo)
	assert.Equal(t, selection.ModeEditing, res.Mode)
	assert.Equal(t, f.clock.Now(), res.CreatedAt)
	assert.Empty(t, f.themes.queued())
}

func TestEditorService_OverrideChangesQueueOrderedSaves(t *testing.T) {
	f := newEditorFixture(t)
	f.open(t, false)

	_, err := f.svc.SetOverride(f.store, f.user, &dto.SetOverrideRequest{ElementId: "cta", Style: override.StyleOverride{Color: "#111"}})
	require.NoError(t, err)
	_, err = f.svc.CopyStyle(f.store, f.user, "cta")
	require.NoError(t, err)
	_, err = f.svc.PasteStyle(f.store, f.user, "hero-title")
	require.NoError(t, err)
	res, err := f.svc.Undo(f.store, f.user)
	require.NoError(t, err)

	saves := f.themes.queued()
	require.Len(t, saves, 3)
	for i, s := range saves {
		assert.EqualValues(t, i+1, s.Sequence)
		assert.Equal(t, SessionKey(f.store, f.user), s.SessionKey)
		assert.Equal(t, saves[0].Generation, s.Generation)
		assert.Equal(t, f.store, s.StoreId)
	}
	assert.Equal(t, override.Map{"cta": {Color: "#111"}}, saves[2].Overrides)
	assert.True(t, res.CanRedo)

	for _, sent := range f.delivery.sent() {
		assert.Equal(t, dto.RoleHost, sent.Role)
		require.NotNil(t, sent.UserId)
		assert.Equal(t, f.user, *sent.UserId)
	}
	assert.Equal(t, []string{dto.FrameState, dto.FrameState, dto.FrameState, dto.FrameState}, frameTypes(f.delivery.sent()))
}

func TestEditorService_SelectPushesSelectionAndOpen(t *testing.T) {
	f := newEditorFixture(t)
	f.open(t, false)

	d := element.NewDescriptor("cta", "button", "Buy now")
	res, err := f.svc.Select(f.store, f.user, d)
	require.NoError(t, err)
	require.NotNil(t, res.Selection.Selected)
	assert.Equal(t, "cta", res.Selection.Selected.ID)
	assert.Equal(t, selection.PhaseSelected, res.Phase)

	assert.Equal(t, []string{dto.FrameSelection, dto.FrameOpen, dto.FrameState}, frameTypes(f.delivery.sent()))

	res, err = f.svc.CloseSelection(f.store, f.user)
	require.NoError(t, err)
	assert.Nil(t, res.Selection.Selected)
}

func TestEditorService_HandleBridge(t *testing.T) {
	f := newEditorFixture(t)
	f.open(t, false)
	msg := bridge.NewEditSection(element.NewDescriptor("hero-title", "heading", "Hero"))

	require.NoError(t, f.svc.HandleBridge(bridge.Envelope{Origin: "https://shop.example", Target: SessionKey(f.store, f.user), Message: msg}))
	res, err := f.svc.Get(f.store, f.user)
	require.NoError(t, err)
	require.NotNil(t, res.Selection.Selected)
	assert.Equal(t, "hero-title", res.Selection.Selected.ID)

	assert.ErrorIs(t, f.svc.HandleBridge(bridge.Envelope{Target: "garbage", Message: msg}), ErrInvalidTarget)
	assert.ErrorIs(t, f.svc.HandleBridge(bridge.Envelope{Target: SessionKey(uuid.New(), f.user), Message: msg}), ErrSessionNotFound)
	assert.NoError(t, f.svc.HandleBridge(bridge.Envelope{Target: SessionKey(f.store, f.user), Message: bridge.Message{Type: "OTHER"}}))
}

func TestEditorService_PointerGatedByMode(t *testing.T) {
	ev := binding.PointerEvent{Event: binding.EventClick, Element: element.NewDescriptor("cta", "button", "")}

	t.Run("editing", func(t *testing.T) {
		f := newEditorFixture(t)
		f.open(t, false)
		taken, err := f.svc.HandlePointer(f.store, f.user, ev)
		require.NoError(t, err)
		assert.True(t, taken)
	})

	t.Run("preview", func(t *testing.T) {
		f := newEditorFixture(t)
		f.open(t, true)
		taken, err := f.svc.HandlePointer(f.store, f.user, ev)
		require.NoError(t, err)
		assert.False(t, taken)
	})
}

func TestEditorService_PreviewSessionRejectsSelection(t *testing.T) {
	f := newEditorFixture(t)
	f.open(t, true)
	d := element.NewDescriptor("cta", "button", "")

	_, err := f.svc.Select(f.store, f.user, d)
	assert.ErrorIs(t, err, ErrNotInteractive)
	_, err = f.svc.Hover(f.store, f.user, d)
	assert.ErrorIs(t, err, ErrNotInteractive)
	require.NoError(t, f.svc.HandleBridge(bridge.Envelope{Target: SessionKey(f.store, f.user), Message: bridge.NewEditSection(d)}))

	res, err := f.svc.Get(f.store, f.user)
	require.NoError(t, err)
	assert.Equal(t, selection.PhaseIdle, res.Phase)
	assert.Empty(t, f.delivery.sent())
}

func TestEditorService_Bind(t *testing.T) {
	f := newEditorFixture(t)
	f.open(t, false)
	_, err := f.svc.SetOverride(f.store, f.user, &dto.SetOverrideRequest{ElementId: "cta", Style: override.StyleOverride{Color: "#111"}})
	require.NoError(t, err)

	res, err := f.svc.Bind(context.Background(), f.store, f.user, &dto.BindElementsRequest{Elements: []editor.Element{
		{Descriptor: element.NewDescriptor("cta", "button", "")},
	}})
	require.NoError(t, err)
	require.Len(t, res.Elements, 1)
	assert.Equal(t, "#111", res.Elements[0].Style["color"])
	assert.True(t, res.Elements[0].Indicator.Customized)
}

func TestEditorService_CloseAndReopen(t *testing.T) {
	f := newEditorFixture(t)
	f.open(t, false)
	_, err := f.svc.SetOverride(f.store, f.user, &dto.SetOverrideRequest{ElementId: "cta", Style: override.StyleOverride{Color: "#111"}})
	require.NoError(t, err)

	require.NoError(t, f.svc.Close(f.store, f.user))
	_, err = f.svc.Get(f.store, f.user)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	// Nothing was persisted by the stub, so a fresh session starts clean.
	res := f.open(t, false)
	assert.Empty(t, res.Overrides)
}
