package service

import (
	"errors"

	"github.com/paulmach/orb"

	"github.com/effluxation/fend-neighborhood-map/internal/domain/helper"
	"github.com/effluxation/fend-neighborhood-map/internal/domain/model"
)

// ErrNoPoints 博物館が1件も渡されなかった（地図を初期化できない）
var ErrNoPoints = errors.New("地図に表示する博物館が指定されていません")

// MarkerRegistry 初期化時に配置したマーカーの一覧
// 初期化後にメンバーが増減することはない
type MarkerRegistry struct {
	markers       []*model.Marker
	clickHandlers []func()
	bound         orb.Bound
}

// InitializeMarkers は博物館ごとにマーカーを作成し、クリックハンドラを登録して全体が収まるよう地図をフィットさせる
func InitializeMarkers(points []model.Point, surface MapSurface, icon string, onClick func(*model.Marker)) (*MarkerRegistry, error) {
	if len(points) == 0 {
		return nil, ErrNoPoints
	}

	r := &MarkerRegistry{
		markers:       make([]*model.Marker, 0, len(points)),
		clickHandlers: make([]func(), 0, len(points)),
	}

	locations := make([]model.LatLng, 0, len(points))
	for i, p := range points {
		marker := &model.Marker{
			ID:        i,
			Title:     p.Title,
			Position:  p.Location,
			OnMap:     true,
			Animation: model.AnimationDrop,
			Icon:      icon,
		}
		surface.SetOnMap(marker, true)
		surface.SetAnimation(marker, model.AnimationDrop)

		r.markers = append(r.markers, marker)
		r.clickHandlers = append(r.clickHandlers, func() {
			if onClick != nil {
				onClick(marker)
			}
		})
		locations = append(locations, p.Location)
	}

	r.bound = helper.BoundOf(locations)
	r.Frame(surface, model.FitBoundsPadding)

	return r, nil
}

// Frame は全マーカーが収まるよう地図をフィットさせ、少し上にずらす
func (r *MarkerRegistry) Frame(surface MapSurface, padding int) {
	surface.FitBounds(helper.ToBounds(r.bound), padding)
	surface.PanBy(0, model.FramePanOffsetY)
}

// Markers は全マーカーを初期化順で返す
func (r *MarkerRegistry) Markers() []*model.Marker {
	return r.markers
}

// Get はIDでマーカーを取得する
func (r *MarkerRegistry) Get(id int) (*model.Marker, bool) {
	if id < 0 || id >= len(r.markers) {
		return nil, false
	}
	return r.markers[id], true
}

// Click はマーカーに登録されたクリックハンドラを実行する
func (r *MarkerRegistry) Click(id int) bool {
	if id < 0 || id >= len(r.clickHandlers) {
		return false
	}
	r.clickHandlers[id]()
	return true
}

// Bounds は全マーカーを含む範囲を返す
func (r *MarkerRegistry) Bounds() model.Bounds {
	return helper.ToBounds(r.bound)
}

// SettleDrop は初期配置のDROPアニメーションを終了させる
func (r *MarkerRegistry) SettleDrop(surface MapSurface) {
	for _, m := range r.markers {
		if m.Animation == model.AnimationDrop {
			m.Animation = model.AnimationNone
			surface.SetAnimation(m, model.AnimationNone)
		}
	}
}
