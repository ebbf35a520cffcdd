package handler

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/effluxation/fend-neighborhood-map/internal/usecase"
)

const (
	writeWait  = 10 * time.Second
	pingPeriod = 30 * time.Second
)

// PanelStreamHandler はパネル更新をWebSocketで配信するハンドラー
type PanelStreamHandler struct {
	sessionUseCase usecase.MapSessionUseCase
	upgrader       websocket.Upgrader
}

// NewPanelStreamHandler は新しいPanelStreamHandlerインスタンスを作成
func NewPanelStreamHandler(sessionUseCase usecase.MapSessionUseCase) *PanelStreamHandler {
	return &PanelStreamHandler{
		sessionUseCase: sessionUseCase,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// Stream GET /api/sessions/:id/events - パネル更新の購読
func (h *PanelStreamHandler) Stream(c *gin.Context) {
	session, err := h.sessionUseCase.Session(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	// ハンドシェイク完了前に購読して更新の取りこぼしを防ぐ
	events, cancel := session.Subscribe()
	defer cancel()

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("⚠️ WebSocketのアップグレードに失敗: %v", err)
		return
	}
	defer conn.Close()

	// 接続直後に現在のパネルを送る
	if panel := session.Panel(); panel != nil {
		conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(panel); err != nil {
			return
		}
	}

	// クライアントからの切断を検知する
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-closed:
			return
		case panel, ok := <-events:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, "session expired"))
				return
			}
			if err := conn.WriteJSON(panel); err != nil {
				log.Printf("⚠️ パネル更新の送信に失敗 (session %s): %v", session.ID, err)
				return
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
