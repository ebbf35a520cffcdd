package application

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/effluxation/fend-neighborhood-map/internal/domain/service"
)

// SessionStore 地図セッションのメモリ上の保管庫（永続化はしない）
type SessionStore interface {
	// Create 新しいセッションIDを発行し、factory で作成したセッションを登録する
	Create(factory func(id string) (*service.MapSession, error)) (*service.MapSession, error)

	// Get セッションを取得する
	Get(id string) (*service.MapSession, error)

	// Sweep 一定時間操作のないセッションを破棄する
	Sweep(now time.Time) int

	// Run ctx が終了するまで定期的に Sweep を実行する
	Run(ctx context.Context, interval time.Duration) error
}

// ErrInvalidSessionID セッションIDの形式が不正
var ErrInvalidSessionID = errors.New("無効なセッションIDです")

// ErrSessionNotFound セッションが存在しない（期限切れを含む）
var ErrSessionNotFound = errors.New("セッションが見つかりません")

// sessionStoreImpl SessionStoreの実装
type sessionStoreImpl struct {
	mu       sync.RWMutex
	sessions map[string]*service.MapSession
	ttl      time.Duration
}

// NewSessionStore SessionStoreの新しいインスタンスを作成
func NewSessionStore(ttl time.Duration) SessionStore {
	return &sessionStoreImpl{
		sessions: make(map[string]*service.MapSession),
		ttl:      ttl,
	}
}

// Create セッションを作成して登録する
func (s *sessionStoreImpl) Create(factory func(id string) (*service.MapSession, error)) (*service.MapSession, error) {
	id := uuid.New().String()

	session, err := factory(id)
	if err != nil {
		return nil, fmt.Errorf("セッションの作成に失敗: %w", err)
	}

	s.mu.Lock()
	s.sessions[id] = session
	count := len(s.sessions)
	s.mu.Unlock()

	log.Printf("🗺️ セッション作成: %s (現在 %d 件)", id, count)
	return session, nil
}

// Get セッションを取得する
func (s *sessionStoreImpl) Get(id string) (*service.MapSession, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidSessionID, id)
	}

	s.mu.RLock()
	session, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return session, nil
}

// Sweep TTLを超えて操作されていないセッションを破棄する
func (s *sessionStoreImpl) Sweep(now time.Time) int {
	if s.ttl <= 0 {
		return 0
	}

	s.mu.Lock()
	var expired []*service.MapSession
	for id, session := range s.sessions {
		if now.Sub(session.IdleSince()) > s.ttl {
			expired = append(expired, session)
			delete(s.sessions, id)
		}
	}
	s.mu.Unlock()

	for _, session := range expired {
		session.Close()
	}
	if len(expired) > 0 {
		log.Printf("🧹 期限切れセッションを %d 件破棄しました", len(expired))
	}
	return len(expired)
}

// Run ctx が終了するまで定期的に Sweep を実行する
func (s *sessionStoreImpl) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			s.Sweep(now)
		}
	}
}
