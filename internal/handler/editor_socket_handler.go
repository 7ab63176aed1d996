package handler

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"

	"github.com/YoussefAz2/elenashop-sub001/internal/config"
	"github.com/YoussefAz2/elenashop-sub001/internal/dto"
	"github.com/YoussefAz2/elenashop-sub001/internal/pkg/logger"
	"github.com/YoussefAz2/elenashop-sub001/internal/pkg/serverutils"
	"github.com/YoussefAz2/elenashop-sub001/internal/service"
	internalWS "github.com/YoussefAz2/elenashop-sub001/internal/websocket"
	"github.com/YoussefAz2/elenashop-sub001/pkg/binding"
	"github.com/YoussefAz2/elenashop-sub001/pkg/bridge"
	"github.com/YoussefAz2/elenashop-sub001/pkg/clock"
	"github.com/YoussefAz2/elenashop-sub001/pkg/element"
)

// EditorSocketHandler serves the editor websocket. Hosts (the editor
// UI) receive session state and send pointer events; previews (the
// storefront frame) send their layout and gestures and receive local
// feedback.
type EditorSocketHandler struct {
	editorService service.IEditorService
	channel       *bridge.Channel
	hub           *internalWS.Hub
	cfg           config.EditorConfig
	clock         clock.Clock
	logger        logger.ILogger
}

func NewEditorSocketHandler(
	editorService service.IEditorService,
	channel *bridge.Channel,
	hub *internalWS.Hub,
	cfg config.EditorConfig,
	c clock.Clock,
	log logger.ILogger,
) *EditorSocketHandler {
	if c == nil {
		c = clock.Real()
	}
	return &EditorSocketHandler{
		editorService: editorService,
		channel:       channel,
		hub:           hub,
		cfg:           cfg,
		clock:         c,
		logger:        log,
	}
}

func (h *EditorSocketHandler) RegisterRoutes(r fiber.Router) {
	r.Get("/editor/v1/:storeId/ws", serverutils.JwtQueryMiddleware, h.ServeWs)
}

// ServeWs upgrades the request. Previews must come from an allowed
// origin.
func (h *EditorSocketHandler) ServeWs(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}

	storeId, err := uuid.Parse(c.Params("storeId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid store id")
	}
	rawUserId, _ := c.Locals(serverutils.UserIDKey).(string)
	userId, err := uuid.Parse(rawUserId)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid user id")
	}

	role := c.Query("role", dto.RoleHost)
	origin := c.Get(fiber.HeaderOrigin)
	switch role {
	case dto.RoleHost:
	case dto.RolePreview:
		if !h.channel.Allowed(origin) {
			h.logger.Warn("EDITOR_WS", "Preview origin rejected", map[string]interface{}{"origin": origin})
			return fiber.NewError(fiber.StatusForbidden, "Origin not allowed")
		}
	default:
		return fiber.NewError(fiber.StatusBadRequest, "Unknown role")
	}

	return websocket.New(func(conn *websocket.Conn) {
		client := internalWS.NewClient(h.hub, conn, storeId, userId, role)
		if role == dto.RolePreview {
			preview := h.newPreview(origin, service.SessionKey(storeId, userId), client.Push, func(outline []element.Descriptor) {
				h.hub.SendToUser(storeId, userId, dto.RoleHost, dto.NewSocketFrame(dto.FrameOutline, outline))
			})
			client.OnMessage = func(_ *internalWS.Client, data []byte) { preview.handle(data) }
			defer preview.close()
		} else {
			client.OnMessage = func(_ *internalWS.Client, data []byte) {
				h.handleHostFrame(storeId, userId, client.Push, data)
			}
		}

		h.logger.Info("EDITOR_WS", "Socket opened", map[string]interface{}{
			"store_id": storeId.String(),
			"user_id":  userId.String(),
			"role":     role,
		})
		internalWS.Serve(client)
		h.logger.Info("EDITOR_WS", "Socket closed", map[string]interface{}{
			"store_id": storeId.String(),
			"role":     role,
		})
	})(c)
}

type pushFunc func(frame []byte) bool

func pushError(push pushFunc, message string) {
	push(dto.NewSocketFrame(dto.FrameError, dto.ErrorFrame{Message: message}))
}

func (h *EditorSocketHandler) handleHostFrame(storeId, userId uuid.UUID, push pushFunc, data []byte) {
	var frame dto.SocketFrame
	if err := json.Unmarshal(data, &frame); err != nil {
		pushError(push, "malformed frame")
		return
	}
	if frame.Type != dto.FramePointer {
		pushError(push, "unsupported frame type: "+frame.Type)
		return
	}

	var ev binding.PointerEvent
	if err := json.Unmarshal(frame.Data, &ev); err != nil {
		pushError(push, "malformed pointer event")
		return
	}
	if err := serverutils.ValidateRequest(&ev); err != nil {
		pushError(push, err.Error())
		return
	}
	if _, err := h.editorService.HandlePointer(storeId, userId, ev); err != nil {
		pushError(push, err.Error())
	}
}

// previewConn is the state of one preview socket. onOutline receives
// the editable elements of every accepted layout.
type previewConn struct {
	surface   *bridge.Surface
	push      pushFunc
	onOutline func([]element.Descriptor)
	logger    logger.ILogger
}

func (h *EditorSocketHandler) newPreview(origin, target string, push pushFunc, onOutline func([]element.Descriptor)) *previewConn {
	if onOutline == nil {
		onOutline = func([]element.Descriptor) {}
	}
	p := &previewConn{push: push, onOutline: onOutline, logger: h.logger}
	p.surface = bridge.NewSurface(
		h.channel.Poster(origin, target),
		func(fb bridge.Feedback) { push(dto.NewSocketFrame(dto.FrameFeedback, fb)) },
		h.clock,
		h.cfg.LongPress,
	)
	return p
}

// close drops the layout, disarming a pending long press.
func (p *previewConn) close() {
	p.surface.SetLayout(nil)
}

func (p *previewConn) handle(data []byte) {
	var frame dto.SocketFrame
	if err := json.Unmarshal(data, &frame); err != nil {
		pushError(p.push, "malformed frame")
		return
	}

	switch frame.Type {
	case dto.FrameLayout:
		var layout dto.LayoutFrame
		if err := json.Unmarshal(frame.Data, &layout); err != nil {
			pushError(p.push, "malformed layout")
			return
		}
		if err := serverutils.ValidateRequest(&layout); err != nil {
			pushError(p.push, err.Error())
			return
		}
		registry, err := element.NewRegistry(layout.Nodes)
		if err != nil {
			pushError(p.push, err.Error())
			return
		}
		p.surface.SetLayout(registry)
		p.onOutline(registry.Editables())

	case dto.FrameGesture:
		var g bridge.Gesture
		if err := json.Unmarshal(frame.Data, &g); err != nil {
			pushError(p.push, "malformed gesture")
			return
		}
		if err := serverutils.ValidateRequest(&g); err != nil {
			pushError(p.push, err.Error())
			return
		}
		p.surface.Handle(g)

	default:
		pushError(p.push, "unsupported frame type: "+frame.Type)
	}
}
