package service

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/effluxation/fend-neighborhood-map/internal/domain/helper"
	"github.com/effluxation/fend-neighborhood-map/internal/domain/model"
	"github.com/effluxation/fend-neighborhood-map/internal/domain/repository"
)

// dropDuration 初期配置のDROPアニメーションが終わるまでの時間
const dropDuration = 700 * time.Millisecond

// MapSession 1つの地図画面（ブラウザのタブ）に対応するセッション
// マーカー一覧・検索語・パネルは全てこのセッションが所有し、ロックで直列化する
type MapSession struct {
	ID      string
	Options model.MapOptions

	mu       sync.Mutex
	surface  MapSurface
	registry *MarkerRegistry
	filter   *FilterController
	lookup   *DetailLookup
	bounce   *BounceAnimator

	subMu       sync.Mutex
	subscribers map[chan *model.PanelState]struct{}

	lastActive time.Time
}

// SessionDeps セッションの作成に必要な依存
type SessionDeps struct {
	Points    []model.Point
	Surface   MapSurface
	Directory repository.BusinessDirectoryRepository
	Scheduler Scheduler
	Options   model.MapOptions
}

// NewMapSession はマーカーを初期化して新しいセッションを作成する
func NewMapSession(id string, deps SessionDeps) (*MapSession, error) {
	if deps.Scheduler == nil {
		deps.Scheduler = NewRealScheduler()
	}

	s := &MapSession{
		ID:          id,
		Options:     deps.Options,
		surface:     deps.Surface,
		subscribers: make(map[chan *model.PanelState]struct{}),
		lastActive:  time.Now(),
	}

	registry, err := InitializeMarkers(deps.Points, deps.Surface, deps.Options.MarkerIcon, s.onMarkerClick)
	if err != nil {
		return nil, err
	}
	s.registry = registry
	s.filter = NewFilterController(registry, deps.Surface)
	s.lookup = NewDetailLookup(&s.mu, deps.Surface, deps.Directory, NewPanelRenderer(), s.broadcast)
	s.bounce = NewBounceAnimator(&s.mu, registry, deps.Surface, deps.Scheduler, model.BounceDuration)

	deps.Scheduler.AfterFunc(dropDuration, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.registry.SettleDrop(s.surface)
	})

	return s, nil
}

// onMarkerClick は地図上のマーカーに登録されるクリックハンドラ（ロック保持中に呼ばれる）
func (s *MapSession) onMarkerClick(marker *model.Marker) {
	s.lookup.Select(context.Background(), marker)
	s.bounce.Toggle(marker)
}

// SetQuery は検索語を更新する
func (s *MapSession) SetQuery(q string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	s.filter.SetQuery(q)
}

// ClickMarker は地図上のマーカーのクリックを処理する
func (s *MapSession) ClickMarker(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	return s.registry.Click(id)
}

// ClickListItem は一覧の項目のクリックを処理する
func (s *MapSession) ClickListItem(ctx context.Context, id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	marker, ok := s.registry.Get(id)
	if !ok {
		return false
	}
	s.lookup.Select(ctx, marker)
	s.bounce.Toggle(marker)
	return true
}

// ClosePanel はパネルの閉じるボタンを処理する（選択も解除する）
func (s *MapSession) ClosePanel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	s.lookup.Deselect()
}

// Reset は検索語を消して全体表示に戻し、選択を解除してパネルを閉じる
func (s *MapSession) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	s.filter.SetQuery("")
	s.registry.Frame(s.surface, model.ResetFitBoundsPadding)
	s.lookup.Deselect()
}

// ViewState はUIが描画するための現在の状態を返す
func (s *MapSession) ViewState() *model.ViewState {
	s.mu.Lock()
	defer s.mu.Unlock()

	view := &model.ViewState{
		SessionID: s.ID,
		Query:     s.filter.Query(),
		Visible:   helper.ToViews(s.filter.VisibleList()),
		Markers:   helper.ToViews(s.registry.Markers()),
		Panel:     s.lookup.Panel(),
		Map:       s.Options,
	}
	if selected := s.lookup.Selected(); selected != nil {
		id := selected.ID
		view.SelectedID = &id
	}
	if reporter, ok := s.surface.(CameraReporter); ok {
		view.Camera = reporter.Camera()
		view.PanelOpen = reporter.PanelOpen()
	}
	return view
}

// Panel は現在のパネル状態を返す
func (s *MapSession) Panel() *model.PanelState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lookup.Panel()
}

// Subscribe はパネル更新の通知を受け取るチャネルを登録する
func (s *MapSession) Subscribe() (<-chan *model.PanelState, func()) {
	ch := make(chan *model.PanelState, 8)
	s.subMu.Lock()
	s.subscribers[ch] = struct{}{}
	s.subMu.Unlock()

	return ch, func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		if _, ok := s.subscribers[ch]; ok {
			delete(s.subscribers, ch)
			close(ch)
		}
	}
}

// broadcast は購読者にパネル更新を通知する
// 受信が詰まっている購読者は最も古い通知を捨てて最新の状態を受け取る
func (s *MapSession) broadcast(state *model.PanelState) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	for ch := range s.subscribers {
		select {
		case ch <- state:
			continue
		default:
		}

		select {
		case <-ch:
		default:
		}
		select {
		case ch <- state:
			log.Printf("⚠️ 購読者の受信が詰まっているため古いパネル更新を破棄 (session %s)", s.ID)
		default:
			log.Printf("❌ パネル更新を送信できませんでした (session %s, kind %s)", s.ID, state.Kind)
		}
	}
}

// Wait は実行中の付加情報取得が完了するまで待つ
func (s *MapSession) Wait() {
	s.lookup.Wait()
}

// Close は全ての購読を終了する
func (s *MapSession) Close() {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	for ch := range s.subscribers {
		delete(s.subscribers, ch)
		close(ch)
	}
}

// IdleSince は最後に操作された時刻を返す
func (s *MapSession) IdleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActive
}

func (s *MapSession) touch() {
	s.lastActive = time.Now()
}
