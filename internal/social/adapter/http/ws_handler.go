package http

import (
	"context"
	"time"

	"snapfeed/internal/shared/logger"
	"snapfeed/internal/social/domain/model"
	"snapfeed/internal/social/domain/repository"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// WebSocketHandler streams a user's activity events over a WebSocket
// connection.
type WebSocketHandler struct {
	activity repository.ActivityStore
	log      logger.Logger
}

// NewWebSocketHandler creates a new WebSocketHandler.
func NewWebSocketHandler(activity repository.ActivityStore, log logger.Logger) *WebSocketHandler {
	return &WebSocketHandler{
		activity: activity,
		log:      log.WithComponent("activity_ws"),
	}
}

// RegisterRoutes registers the WebSocket endpoint. The auth middleware runs
// before the upgrade, so the user ID is available as a local.
func (h *WebSocketHandler) RegisterRoutes(router fiber.Router, userIDFromCtx func(*fiber.Ctx) (string, error)) {
	wsGroup := router.Group("/ws")

	wsGroup.Use("/activity", func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}
		userID, err := userIDFromCtx(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Authentication required"})
		}
		c.Locals("user_id", userID)
		c.Locals("last_id", c.Query("lastId"))
		return c.Next()
	})

	wsGroup.Get("/activity", websocket.New(h.handleActivityStream))
}

func (h *WebSocketHandler) handleActivityStream(conn *websocket.Conn) {
	userID, _ := conn.Locals("user_id").(string)
	lastID, _ := conn.Locals("last_id").(string)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	h.log.Info("Activity stream opened", zap.String("userID", userID))
	defer h.log.Info("Activity stream closed", zap.String("userID", userID))

	events := make(chan *model.ActivityEvent, 16)

	go func() {
		defer close(events)
		err := h.activity.Subscribe(ctx, userID, lastID, func(event *model.ActivityEvent) {
			select {
			case events <- event:
			case <-ctx.Done():
			}
		})
		if err != nil && ctx.Err() == nil {
			h.log.Error("Activity subscription failed",
				zap.String("userID", userID),
				zap.Error(err))
		}
	}()

	// Writer: forward events until the subscription or connection dies.
	go func() {
		for event := range events {
			if err := conn.WriteJSON(event); err != nil {
				cancel()
				return
			}
		}
		cancel()
	}()

	// Reader: detect disconnects.
	for {
		select {
		case <-ctx.Done():
			return
		default:
			conn.SetReadDeadline(time.Now().Add(60 * time.Second))
			if _, _, err := conn.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
					h.log.Error("WebSocket error",
						zap.String("userID", userID),
						zap.Error(err))
				}
				return
			}
		}
	}
}
