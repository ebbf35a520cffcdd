package service

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/effluxation/fend-neighborhood-map/internal/domain/model"
	"github.com/effluxation/fend-neighborhood-map/internal/domain/repository"
)

// DetailLookup 選択されたマーカーの付加情報を取得し、共有パネルに表示する
//
// 取得は別goroutineで行い、完了時にセッションのロックを取得してパネルを書き換える。
// 先に選択したマーカーの応答が後から届いた場合もそのまま上書きする（取り消しはしない）。
type DetailLookup struct {
	mu        sync.Locker
	surface   MapSurface
	directory repository.BusinessDirectoryRepository
	renderer  *PanelRenderer
	publish   func(*model.PanelState)

	selected *model.Marker
	panel    *model.PanelState
	inFlight sync.WaitGroup
}

// NewDetailLookup は新しいDetailLookupを作成する
// publish はパネルが更新されるたびにロック保持中に呼ばれる（nil可）
func NewDetailLookup(mu sync.Locker, surface MapSurface, directory repository.BusinessDirectoryRepository, renderer *PanelRenderer, publish func(*model.PanelState)) *DetailLookup {
	return &DetailLookup{
		mu:        mu,
		surface:   surface,
		directory: directory,
		renderer:  renderer,
		publish:   publish,
	}
}

// Select はマーカーを中心に移動してパネルを開き、付加情報の取得を開始する
// 既に選択中のマーカーであれば何もしない
func (d *DetailLookup) Select(ctx context.Context, marker *model.Marker) bool {
	if d.selected == marker {
		return false
	}
	d.selected = marker

	d.surface.PanTo(marker.Position)
	d.surface.PanBy(0, model.SelectPanOffsetY)

	d.setPanel(d.renderer.Loading(marker))
	d.surface.OpenPanel(marker)

	// リクエストのコンテキストが終了しても取得は続ける
	fetchCtx := context.WithoutCancel(ctx)
	d.inFlight.Add(1)
	go d.fetch(fetchCtx, marker)

	return true
}

func (d *DetailLookup) fetch(ctx context.Context, marker *model.Marker) {
	defer d.inFlight.Done()

	business, err := d.directory.SearchBusiness(ctx, model.BusinessQuery{
		Term:     marker.Title,
		Location: marker.Position,
	})

	d.mu.Lock()
	defer d.mu.Unlock()
	d.setPanel(d.resolve(marker, business, err))
}

// resolve は取得結果をパネルの状態に変換する
func (d *DetailLookup) resolve(marker *model.Marker, business *model.Business, err error) *model.PanelState {
	switch {
	case err == nil && business != nil:
		return d.renderer.Found(marker, business)
	case err == nil, errors.Is(err, repository.ErrNoMatch):
		return d.renderer.NotFound(marker)
	default:
		log.Printf("❌ %s の付加情報の取得に失敗: %v", marker.Title, err)
		return d.renderer.Error(marker)
	}
}

// Deselect は選択を解除してパネルを閉じる
func (d *DetailLookup) Deselect() {
	d.selected = nil
	d.surface.ClosePanel()
}

// Selected は選択中のマーカーを返す
func (d *DetailLookup) Selected() *model.Marker {
	return d.selected
}

// Panel は現在のパネル状態を返す
func (d *DetailLookup) Panel() *model.PanelState {
	return d.panel
}

// Wait は実行中の取得が全て完了するまで待つ
// ロックを保持したまま呼んではならない
func (d *DetailLookup) Wait() {
	d.inFlight.Wait()
}

func (d *DetailLookup) setPanel(state *model.PanelState) {
	d.panel = state
	d.surface.SetPanelContent(state)
	if d.publish != nil {
		d.publish(state)
	}
}
