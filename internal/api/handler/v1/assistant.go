package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/clubverd/pos-api/internal/api/handler/v1/request"
	"github.com/clubverd/pos-api/internal/api/handler/v1/response"
	"github.com/clubverd/pos-api/internal/domain"
	"github.com/clubverd/pos-api/internal/service"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Adjust this for production!
	},
}

type AssistantService interface {
	Ask(ctx context.Context, prompt string) (string, error)
}

type AssistantHandler struct {
	svc AssistantService
}

func NewAssistantHandler(svc AssistantService) *AssistantHandler {
	return &AssistantHandler{
		svc: svc,
	}
}

// HandleChat godoc
// @Summary      Ask the budtender assistant a question
// @Description  The assistant answers with the live catalog as context, so
// @Description  it can recommend only products actually in stock.
// @Tags         assistant
// @Produce      json
// @Param        request   body      request.AssistantChatRequest true "request body"
// @Success      200  {object}  response.AssistantChatResponse
// @Failure      400  {object}  response.Err
// @Failure      502  {object}  response.Err
// @Security     BearerAuth
// @Router       /assistant/chat [post]
func (h *AssistantHandler) HandleChat(ctx *gin.Context) {
	if _, _, ok := requireCapability(ctx, domain.CapUsePOS); !ok {
		return
	}

	req := request.AssistantChatRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	reply, err := h.svc.Ask(ctx.Request.Context(), req.Message)
	if err != nil {
		if errors.Is(err, service.ErrAssistantUnavailable) {
			response.RenderErr(ctx, response.ErrBadGateway(service.ErrAssistantUnavailable))

			return
		}

		err = fmt.Errorf("v1.HandleChat -> h.svc.Ask -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.AssistantChatResponse{Reply: reply})
}

// HandleWebSocket godoc
// @Summary      Chat with the budtender assistant over a WebSocket
// @Description  Each text frame is a question; the next frame back is the
// @Description  assistant's answer.
// @Tags         assistant
// @Success      101  "switching protocols"
// @Failure      403  {object}  response.Err
// @Security     BearerAuth
// @Router       /assistant/ws [get]
func (h *AssistantHandler) HandleWebSocket(ctx *gin.Context) {
	if _, _, ok := requireCapability(ctx, domain.CapUsePOS); !ok {
		return
	}

	conn, err := upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}
	defer conn.Close()

	for {
		msgType, message, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				zap.L().Warn("assistant websocket closed unexpectedly", zap.Error(err))
			}

			return
		}

		if msgType != websocket.TextMessage || len(message) == 0 {
			continue
		}

		reply, err := h.svc.Ask(ctx.Request.Context(), string(message))
		if err != nil {
			reply = service.ErrAssistantUnavailable.Error()
		}

		if err := conn.WriteMessage(websocket.TextMessage, []byte(reply)); err != nil {
			zap.L().Warn("assistant websocket write failed", zap.Error(err))

			return
		}
	}
}
