package service

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"

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

// SocketDelivery pushes frames to connected editor sockets.
type SocketDelivery interface {
	SendToUser(storeId, userId uuid.UUID, role string, frame []byte)
	SendToStore(storeId uuid.UUID, role string, frame []byte)
}

type IEditorService interface {
	Open(ctx context.Context, storeId, userId uuid.UUID, req *dto.OpenSessionRequest) (*dto.SessionResponse, error)
	Get(storeId, userId uuid.UUID) (*dto.SessionResponse, error)
	Close(storeId, userId uuid.UUID) error

	SetOverride(storeId, userId uuid.UUID, req *dto.SetOverrideRequest) (*dto.SessionResponse, error)
	ResetOverride(storeId, userId uuid.UUID, elementId string) (*dto.SessionResponse, error)
	CopyStyle(storeId, userId uuid.UUID, elementId string) (*dto.SessionResponse, error)
	PasteStyle(storeId, userId uuid.UUID, elementId string) (*dto.SessionResponse, error)
	Undo(storeId, userId uuid.UUID) (*dto.SessionResponse, error)
	Redo(storeId, userId uuid.UUID) (*dto.SessionResponse, error)

	Select(storeId, userId uuid.UUID, d element.Descriptor) (*dto.SessionResponse, error)
	CloseSelection(storeId, userId uuid.UUID) (*dto.SessionResponse, error)
	Hover(storeId, userId uuid.UUID, d element.Descriptor) (*dto.SessionResponse, error)
	Unhover(storeId, userId uuid.UUID, elementId string) (*dto.SessionResponse, error)

	Bind(ctx context.Context, storeId, userId uuid.UUID, req *dto.BindElementsRequest) (*dto.BindElementsResponse, error)
	HandlePointer(storeId, userId uuid.UUID, ev binding.PointerEvent) (bool, error)
	HandleBridge(env bridge.Envelope) error
}

type editorService struct {
	// generations numbers opened sessions so saves from a reopened
	// session order after those of the one it replaced.
	generations uint64

	sessions *memory.EditorSessionRepository
	themes   IThemeService
	delivery SocketDelivery
	cfg      config.EditorConfig
	clock    clock.Clock
	logger   logger.ILogger
}

func NewEditorService(
	sessions *memory.EditorSessionRepository,
	themes IThemeService,
	delivery SocketDelivery,
	cfg config.EditorConfig,
	c clock.Clock,
	log logger.ILogger,
) IEditorService {
	if c == nil {
		c = clock.Real()
	}
	return &editorService{
		sessions: sessions,
		themes:   themes,
		delivery: delivery,
		cfg:      cfg,
		clock:    c,
		logger:   log,
	}
}

// SessionKey names the session of userId on storeId. It is also the
// bridge target used by that editor's previews.
func SessionKey(storeId, userId uuid.UUID) string {
	return memory.Key(storeId.String(), userId.String())
}

func parseSessionKey(key string) (storeId, userId uuid.UUID, err error) {
	parts := strings.SplitN(key, ":", 2)
	if len(parts) != 2 {
		return uuid.Nil, uuid.Nil, fmt.Errorf("%w: %q", ErrInvalidTarget, key)
	}
	if storeId, err = uuid.Parse(parts[0]); err != nil {
		return uuid.Nil, uuid.Nil, fmt.Errorf("%w: %q", ErrInvalidTarget, key)
	}
	if userId, err = uuid.Parse(parts[1]); err != nil {
		return uuid.Nil, uuid.Nil, fmt.Errorf("%w: %q", ErrInvalidTarget, key)
	}
	return storeId, userId, nil
}

// Open starts a fresh session seeded with the persisted overrides,
// replacing any session the user already had on the store.
func (s *editorService) Open(ctx context.Context, storeId, userId uuid.UUID, req *dto.OpenSessionRequest) (*dto.SessionResponse, error) {
	current, err := s.themes.Get(ctx, storeId)
	if err != nil {
		return nil, err
	}
	initial := override.Decode(current.Config.Object(theme.KeyElementOverrides))

	key := SessionKey(storeId, userId)
	mode := selection.ModeEditing
	if req.Preview {
		mode = selection.ModePreview
	}

	generation := atomic.AddUint64(&s.generations, 1)
	var sequence uint64
	session := editor.New(editor.Options{
		StoreID:      storeId.String(),
		Mode:         mode,
		Initial:      initial,
		HistoryLimit: s.cfg.HistoryLimit,
		Notifier: override.NotifierFunc(func(m override.Map) {
			msg := &dto.SaveThemeMessage{
				StoreId:     storeId,
				UserId:      userId,
				SessionKey:  key,
				Generation:  generation,
				Sequence:    atomic.AddUint64(&sequence, 1),
				Overrides:   m,
				RequestedAt: s.clock.Now(),
			}
			if err := s.themes.SaveOverrides(context.Background(), msg); err != nil {
				s.logger.Error("EDITOR", "Failed to queue override save", map[string]interface{}{
					"store_id": storeId.String(),
					"error":    err.Error(),
				})
			}
		}),
		OnSelection: func(st selection.State) {
			s.delivery.SendToUser(storeId, userId, dto.RoleHost, dto.NewSocketFrame(dto.FrameSelection, st))
		},
		Opener: binding.OpenerFunc(func(d element.Descriptor) {
			s.delivery.SendToUser(storeId, userId, dto.RoleHost, dto.NewSocketFrame(dto.FrameOpen, d))
		}),
		Clock:     s.clock,
		LongPress: s.cfg.LongPress,
	})
	s.sessions.Save(key, session)

	s.logger.Info("EDITOR", "Session opened", map[string]interface{}{
		"store_id":  storeId.String(),
		"user_id":   userId.String(),
		"preview":   req.Preview,
		"overrides": len(initial),
	})
	return s.respond(storeId, userId, session, false), nil
}

func (s *editorService) session(storeId, userId uuid.UUID) (*editor.Session, error) {
	session, ok := s.sessions.Get(SessionKey(storeId, userId))
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// respond builds the response and, when push is set, mirrors the state
// to the user's host sockets.
func (s *editorService) respond(storeId, userId uuid.UUID, session *editor.Session, push bool) *dto.SessionResponse {
	res := &dto.SessionResponse{Snapshot: session.Snapshot(), CreatedAt: session.CreatedAt()}
	if push {
		s.delivery.SendToUser(storeId, userId, dto.RoleHost, dto.NewSocketFrame(dto.FrameState, res))
	}
	return res
}

func (s *editorService) Get(storeId, userId uuid.UUID) (*dto.SessionResponse, error) {
	session, err := s.session(storeId, userId)
	if err != nil {
		return nil, err
	}
	return s.respond(storeId, userId, session, false), nil
}

func (s *editorService) Close(storeId, userId uuid.UUID) error {
	if _, err := s.session(storeId, userId); err != nil {
		return err
	}
	s.sessions.Delete(SessionKey(storeId, userId))
	s.logger.Info("EDITOR", "Session closed", map[string]interface{}{
		"store_id": storeId.String(),
		"user_id":  userId.String(),
	})
	return nil
}

// apply runs op on the session and pushes the resulting state.
func (s *editorService) apply(storeId, userId uuid.UUID, op func(*editor.Session)) (*dto.SessionResponse, error) {
	session, err := s.session(storeId, userId)
	if err != nil {
		return nil, err
	}
	op(session)
	return s.respond(storeId, userId, session, true), nil
}

// interact runs a selection op, which only an interactive session
// accepts.
func (s *editorService) interact(storeId, userId uuid.UUID, op func(*editor.Session) bool) (*dto.SessionResponse, error) {
	session, err := s.session(storeId, userId)
	if err != nil {
		return nil, err
	}
	if !op(session) {
		return nil, ErrNotInteractive
	}
	return s.respond(storeId, userId, session, true), nil
}

func (s *editorService) SetOverride(storeId, userId uuid.UUID, req *dto.SetOverrideRequest) (*dto.SessionResponse, error) {
	return s.apply(storeId, userId, func(e *editor.Session) { e.SetOverride(req.ElementId, req.Style) })
}

func (s *editorService) ResetOverride(storeId, userId uuid.UUID, elementId string) (*dto.SessionResponse, error) {
	return s.apply(storeId, userId, func(e *editor.Session) { e.ResetOverride(elementId) })
}

func (s *editorService) CopyStyle(storeId, userId uuid.UUID, elementId string) (*dto.SessionResponse, error) {
	return s.apply(storeId, userId, func(e *editor.Session) { e.CopyStyle(elementId) })
}

func (s *editorService) PasteStyle(storeId, userId uuid.UUID, elementId string) (*dto.SessionResponse, error) {
	return s.apply(storeId, userId, func(e *editor.Session) { e.PasteStyle(elementId) })
}

func (s *editorService) Undo(storeId, userId uuid.UUID) (*dto.SessionResponse, error) {
	return s.apply(storeId, userId, func(e *editor.Session) { e.Undo() })
}

func (s *editorService) Redo(storeId, userId uuid.UUID) (*dto.SessionResponse, error) {
	return s.apply(storeId, userId, func(e *editor.Session) { e.Redo() })
}

func (s *editorService) Select(storeId, userId uuid.UUID, d element.Descriptor) (*dto.SessionResponse, error) {
	return s.interact(storeId, userId, func(e *editor.Session) bool { return e.Select(d) })
}

func (s *editorService) CloseSelection(storeId, userId uuid.UUID) (*dto.SessionResponse, error) {
	return s.apply(storeId, userId, func(e *editor.Session) { e.CloseSelection() })
}

func (s *editorService) Hover(storeId, userId uuid.UUID, d element.Descriptor) (*dto.SessionResponse, error) {
	return s.interact(storeId, userId, func(e *editor.Session) bool { return e.Hover(d) })
}

func (s *editorService) Unhover(storeId, userId uuid.UUID, elementId string) (*dto.SessionResponse, error) {
	return s.apply(storeId, userId, func(e *editor.Session) { e.Unhover(elementId) })
}

func (s *editorService) Bind(ctx context.Context, storeId, userId uuid.UUID, req *dto.BindElementsRequest) (*dto.BindElementsResponse, error) {
	session, err := s.session(storeId, userId)
	if err != nil {
		return nil, err
	}
	current, err := s.themes.Get(ctx, storeId)
	if err != nil {
		return nil, err
	}
	return &dto.BindElementsResponse{Elements: session.Bind(current.Config, req.Elements)}, nil
}

// HandlePointer routes an input event from the host surface. It reports
// whether the event was taken; events on a non-interactive session are
// not.
func (s *editorService) HandlePointer(storeId, userId uuid.UUID, ev binding.PointerEvent) (bool, error) {
	session, err := s.session(storeId, userId)
	if err != nil {
		return false, err
	}
	return session.Dispatch(ev), nil
}

// HandleBridge applies a preview message to the session it targets.
func (s *editorService) HandleBridge(env bridge.Envelope) error {
	storeId, userId, err := parseSessionKey(env.Target)
	if err != nil {
		return err
	}
	session, err := s.session(storeId, userId)
	if err != nil {
		return err
	}
	if !session.HandleBridge(env.Message) {
		return nil
	}
	s.logger.Debug("EDITOR", "Preview selected element", map[string]interface{}{
		"store_id":   storeId.String(),
		"section_id": env.Message.SectionID,
		"origin":     env.Origin,
	})
	s.respond(storeId, userId, session, true)
	return nil
}
