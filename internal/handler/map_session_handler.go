package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/effluxation/fend-neighborhood-map/internal/application"
	"github.com/effluxation/fend-neighborhood-map/internal/domain/model"
	"github.com/effluxation/fend-neighborhood-map/internal/usecase"
)

// MapSessionHandler は地図セッションAPIのハンドラー
type MapSessionHandler struct {
	sessionUseCase usecase.MapSessionUseCase
}

// NewMapSessionHandler は新しいMapSessionHandlerインスタンスを作成
func NewMapSessionHandler(sessionUseCase usecase.MapSessionUseCase) *MapSessionHandler {
	return &MapSessionHandler{
		sessionUseCase: sessionUseCase,
	}
}

// CreateSession POST /api/sessions - 地図セッションの作成
func (h *MapSessionHandler) CreateSession(c *gin.Context) {
	view, err := h.sessionUseCase.CreateSession(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

// GetSession GET /api/sessions/:id - ビュー状態の取得
func (h *MapSessionHandler) GetSession(c *gin.Context) {
	view, err := h.sessionUseCase.GetViewState(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// PutQuery PUT /api/sessions/:id/query - 検索語の変更
func (h *MapSessionHandler) PutQuery(c *gin.Context) {
	var req model.QueryRequest

	// リクエストボディのバインド
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "Invalid JSON format: " + err.Error(),
		})
		return
	}

	view, err := h.sessionUseCase.ChangeQuery(c.Request.Context(), c.Param("id"), req.Query)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// ClickMarker POST /api/sessions/:id/markers/:markerId/click - 地図上のマーカーのクリック
func (h *MapSessionHandler) ClickMarker(c *gin.Context) {
	markerID, ok := parseMarkerID(c)
	if !ok {
		return
	}

	view, err := h.sessionUseCase.ClickMarker(c.Request.Context(), c.Param("id"), markerID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// ClickListItem POST /api/sessions/:id/list/:markerId/click - 一覧の項目のクリック
func (h *MapSessionHandler) ClickListItem(c *gin.Context) {
	markerID, ok := parseMarkerID(c)
	if !ok {
		return
	}

	view, err := h.sessionUseCase.ClickListItem(c.Request.Context(), c.Param("id"), markerID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// ClosePanel POST /api/sessions/:id/panel/close - パネルを閉じる
func (h *MapSessionHandler) ClosePanel(c *gin.Context) {
	view, err := h.sessionUseCase.ClosePanel(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// Reset POST /api/sessions/:id/reset - 全体表示に戻す
func (h *MapSessionHandler) Reset(c *gin.Context) {
	view, err := h.sessionUseCase.Reset(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// GetPoints GET /api/points - 博物館一覧の取得
func (h *MapSessionHandler) GetPoints(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"points": h.sessionUseCase.Points(),
	})
}

// parseMarkerID はパスパラメータのマーカーIDを解析する
func parseMarkerID(c *gin.Context) (int, bool) {
	markerID, err := strconv.Atoi(c.Param("markerId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_parameter",
			"message": "markerId must be an integer",
		})
		return 0, false
	}
	return markerID, true
}

// respondError はエラーの種類に応じたステータスでレスポンスを返す
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, application.ErrInvalidSessionID):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_parameter",
			"message": err.Error(),
		})
	case errors.Is(err, application.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "session_not_found",
			"message": err.Error(),
		})
	case errors.Is(err, usecase.ErrMarkerNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "marker_not_found",
			"message": err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": err.Error(),
		})
	}
}
