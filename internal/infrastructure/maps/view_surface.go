package maps

import (
	"sync"

	"github.com/effluxation/fend-neighborhood-map/internal/domain/helper"
	"github.com/effluxation/fend-neighborhood-map/internal/domain/model"
)

// ViewSurface 地図プロバイダへの操作をビュー状態として記録するサーフェス
// ブラウザ側はこの状態をGoogle Mapsに反映する
type ViewSurface struct {
	mu sync.Mutex

	camera    model.Camera
	panelOpen bool
	anchorID  int
	content   *model.PanelState

	attachments map[int]int
	detachments map[int]int
	animations  map[int]model.Animation
}

// NewViewSurface は初期中心座標を持つ新しいViewSurfaceを作成する
func NewViewSurface(options model.MapOptions) *ViewSurface {
	return &ViewSurface{
		camera:      model.Camera{Center: options.Center},
		anchorID:    -1,
		attachments: make(map[int]int),
		detachments: make(map[int]int),
		animations:  make(map[int]model.Animation),
	}
}

// SetOnMap はマーカーを地図に追加・削除する
func (v *ViewSurface) SetOnMap(marker *model.Marker, onMap bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if onMap {
		v.attachments[marker.ID]++
	} else {
		v.detachments[marker.ID]++
	}
}

// SetAnimation はマーカーのアニメーションを設定する
func (v *ViewSurface) SetAnimation(marker *model.Marker, animation model.Animation) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.animations[marker.ID] = animation
}

// PanTo は地図の中心を移動する
func (v *ViewSurface) PanTo(position model.LatLng) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.camera = model.Camera{Center: position}
}

// PanBy は地図をピクセル単位でずらす
func (v *ViewSurface) PanBy(x, y int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.camera.OffsetX += x
	v.camera.OffsetY += y
}

// FitBounds は範囲全体が収まるように地図を合わせる
func (v *ViewSurface) FitBounds(bounds model.Bounds, padding int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	fit := bounds
	v.camera = model.Camera{
		Center:  helper.BoundsCenter(bounds),
		Fit:     &fit,
		Padding: padding,
	}
}

// OpenPanel はマーカーを起点にパネル（InfoWindow）を開く
func (v *ViewSurface) OpenPanel(anchor *model.Marker) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.panelOpen = true
	v.anchorID = anchor.ID
}

// SetPanelContent はパネルの内容を差し替える
func (v *ViewSurface) SetPanelContent(state *model.PanelState) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.content = state
}

// ClosePanel はパネルを閉じる
func (v *ViewSurface) ClosePanel() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.panelOpen = false
	v.anchorID = -1
}

// Camera は現在の視点を返す
func (v *ViewSurface) Camera() model.Camera {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.camera
}

// PanelOpen はパネルが開いているかを返す
func (v *ViewSurface) PanelOpen() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.panelOpen
}

// Anchor はパネルの起点マーカーのIDを返す（閉じている場合は -1）
func (v *ViewSurface) Anchor() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.anchorID
}

// Content は最後に設定されたパネル内容を返す
func (v *ViewSurface) Content() *model.PanelState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.content
}

// Attachments はマーカーが地図に追加された回数を返す
func (v *ViewSurface) Attachments(markerID int) int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.attachments[markerID]
}

// Detachments はマーカーが地図から削除された回数を返す
func (v *ViewSurface) Detachments(markerID int) int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.detachments[markerID]
}

// Animation は最後に設定されたアニメーションを返す
func (v *ViewSurface) Animation(markerID int) model.Animation {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.animations[markerID]
}
