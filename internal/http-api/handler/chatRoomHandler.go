package handler

import (
	"errors"
	"net/http"
	"strconv"

	"swappochat/internal/http-api/dto"
	"swappochat/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type ChatRoomHandler struct {
	roomService service.ChatRoomService
}

func NewChatRoomHandler(roomService service.ChatRoomService) *ChatRoomHandler {
	return &ChatRoomHandler{
		roomService: roomService,
	}
}

// RegisterRoutes registers chat-room routes
func (h *ChatRoomHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rooms := rg.Group("/chat-rooms")
	{
		rooms.POST("", h.Create)
		rooms.GET("", h.ListForUser)
		rooms.GET("/:id", h.GetByID)
		rooms.GET("/trade-offer/:trade_offer_id", h.GetByTradeOffer)
		rooms.PATCH("/:id/deactivate", h.Deactivate)
	}
}

// Create opens a chat room for an accepted trade offer
// POST /api/v1/chat-rooms
func (h *ChatRoomHandler) Create(c *gin.Context) {
	var req dto.CreateChatRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	room, err := h.roomService.CreateRoom(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrRoomExists) || errors.Is(err, service.ErrSameParticipant) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, room)
}

// ListForUser returns the user's conversations with last message preview and
// unread count
// GET /api/v1/chat-rooms?user_id=&active_only=&skip=&limit=
func (h *ChatRoomHandler) ListForUser(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}

	activeOnly, err := strconv.ParseBool(c.DefaultQuery("active_only", "true"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid active_only"})
		return
	}

	skip, limit, err := parsePagination(c, 50, 100)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rooms, err := h.roomService.ListRoomsForUser(c.Request.Context(), userID, activeOnly, skip, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, rooms)
}

// GetByID returns a chat room
// GET /api/v1/chat-rooms/:id
func (h *ChatRoomHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid chat room id"})
		return
	}

	room, err := h.roomService.GetRoom(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrRoomNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, room)
}

// GetByTradeOffer returns the chat room bound to a trade offer
// GET /api/v1/chat-rooms/trade-offer/:trade_offer_id
func (h *ChatRoomHandler) GetByTradeOffer(c *gin.Context) {
	tradeOfferID, err := strconv.ParseInt(c.Param("trade_offer_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid trade offer id"})
		return
	}

	room, err := h.roomService.GetRoomByTradeOffer(c.Request.Context(), tradeOfferID)
	if err != nil {
		if errors.Is(err, service.ErrRoomNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, room)
}

// Deactivate soft-deletes a chat room when the trade completes or is
// cancelled
// PATCH /api/v1/chat-rooms/:id/deactivate
func (h *ChatRoomHandler) Deactivate(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid chat room id"})
		return
	}

	room, err := h.roomService.Deactivate(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrRoomNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, room)
}

// parsePagination reads skip/limit query params, clamping limit to
// [1, maxLimit].
func parsePagination(c *gin.Context, defaultLimit, maxLimit int) (int, int, error) {
	skip, err := strconv.Atoi(c.DefaultQuery("skip", "0"))
	if err != nil || skip < 0 {
		return 0, 0, errors.New("skip must be a non-negative integer")
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if err != nil || limit < 1 {
		return 0, 0, errors.New("limit must be a positive integer")
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	return skip, limit, nil
}
