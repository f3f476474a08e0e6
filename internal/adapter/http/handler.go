package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"phoenixcore/internal/app/command"
	"phoenixcore/internal/app/guide"
	"phoenixcore/internal/app/ports"
	"phoenixcore/internal/app/replay"
	"phoenixcore/internal/app/status"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

const sessionIDHeader = "X-Session-ID"

var ErrMissingSessionIDHeader = errors.New("missing x-session-id header")

type Handler struct {
	CommandUC *command.UseCase
	StatusUC  status.UseCase
	ReplayUC  replay.UseCase
	GuideUC   guide.UseCase
	KPI       kpiSnapshotProvider
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	s.Use(corsMiddleware())

	session := s.Group("/api/session")
	session.POST("/command", h.command)
	session.POST("/status", h.status)
	session.GET("/replay", h.replay)

	s.GET("/api/guide", h.guide)
	s.GET("/ops/kpi", h.kpi)
}

type commandRequest struct {
	PlayerName     string `json:"player_name,omitempty"`
	Command        string `json:"command"`
	IdempotencyKey string `json:"idempotency_key,omitempty"`
}

func (h Handler) command(c context.Context, ctx *app.RequestContext) {
	sessionID, err := requireSessionID(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}

	var body commandRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	resp, err := h.CommandUC.Execute(c, command.Request{
		SessionID:      sessionID,
		PlayerName:     body.PlayerName,
		Command:        body.Command,
		IdempotencyKey: body.IdempotencyKey,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) status(c context.Context, ctx *app.RequestContext) {
	sessionID, err := requireSessionID(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}

	resp, err := h.StatusUC.Execute(c, status.Request{SessionID: sessionID})
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) replay(c context.Context, ctx *app.RequestContext) {
	sessionID, err := requireSessionID(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}

	limit, _ := strconv.Atoi(string(ctx.Query("limit")))
	occurredFrom, _ := strconv.ParseInt(string(ctx.Query("occurred_from")), 10, 64)
	occurredTo, _ := strconv.ParseInt(string(ctx.Query("occurred_to")), 10, 64)
	resp, err := h.ReplayUC.Execute(c, replay.Request{
		SessionID:    sessionID,
		Limit:        limit,
		OccurredFrom: occurredFrom,
		OccurredTo:   occurredTo,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) guide(c context.Context, ctx *app.RequestContext) {
	b, err := h.GuideUC.Manual(c)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.Data(http.StatusOK, "text/plain; charset=utf-8", b)
}

type kpiSnapshotProvider interface {
	SnapshotAny() any
}

func (h Handler) kpi(_ context.Context, ctx *app.RequestContext) {
	if h.KPI == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "kpi provider not configured")
		return
	}
	ctx.JSON(consts.StatusOK, h.KPI.SnapshotAny())
}

func requireSessionID(ctx *app.RequestContext) (string, error) {
	sessionID := strings.TrimSpace(string(ctx.GetHeader(sessionIDHeader)))
	if sessionID == "" {
		return "", ErrMissingSessionIDHeader
	}
	return sessionID, nil
}

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

func writeError(ctx *app.RequestContext, err error) {
	switch {
	case errors.Is(err, ErrMissingSessionIDHeader):
		writeErrorBody(ctx, consts.StatusBadRequest, "missing_session_id", err.Error())
	case errors.Is(err, command.ErrInvalidRequest),
		errors.Is(err, status.ErrInvalidRequest),
		errors.Is(err, replay.ErrInvalidRequest):
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, ports.ErrConflict):
		writeErrorBody(ctx, consts.StatusConflict, "conflict", err.Error())
	default:
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", "internal error")
	}
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
