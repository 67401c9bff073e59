package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/isbleu/concept/internal/service"
	"github.com/isbleu/concept/utils"
)

const (
	msgNotFound         = "概念不存在"
	msgBadBody          = "请求体格式错误"
	msgRouteNotFound    = "接口不存在"
	msgResolverDisabled = "未设置 GLM_API_KEY 环境变量"
	msgNoStocksResolved = "AI 搜索未返回有效股票数据"
)

type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("failed to encode response", slog.String("err", err.Error()))
	}
}

func respondData(w http.ResponseWriter, data any, message string) {
	respondJSON(w, http.StatusOK, envelope{Success: true, Data: data, Message: message})
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, envelope{Success: false, Error: msg})
}

// respondServiceError maps service errors onto status codes.
func respondServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	var inputErr *service.InputError

	switch {
	case errors.As(err, &inputErr):
		respondError(w, http.StatusBadRequest, inputErr.Msg)
	case errors.Is(err, service.ErrNotFound):
		respondError(w, http.StatusNotFound, msgNotFound)
	case errors.Is(err, service.ErrResolverDisabled):
		respondError(w, http.StatusServiceUnavailable, msgResolverDisabled)
	case errors.Is(err, service.ErrNoStocksResolved):
		respondError(w, http.StatusUnprocessableEntity, msgNoStocksResolved)
	default:
		slog.Error(
			"request failed",
			slog.String("rqID", utils.GetRequestIDFromCtx(r.Context())),
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
		respondError(w, http.StatusInternalServerError, err.Error())
	}
}
