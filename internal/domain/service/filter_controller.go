package service

import (
	"github.com/effluxation/fend-neighborhood-map/internal/domain/helper"
	"github.com/effluxation/fend-neighborhood-map/internal/domain/model"
)

// FilterController 検索語から表示するマーカーと一覧の並び順を導出する
//
// SetQuery は入力のたびに同期的に全マーカーを走査する（O(n)）。
// マーカー数が数十件程度であることを前提にしている。
type FilterController struct {
	registry *MarkerRegistry
	surface  MapSurface
	query    string
	visible  []*model.Marker
}

// NewFilterController は全マーカーをタイトル順に並べた状態で作成する
func NewFilterController(registry *MarkerRegistry, surface MapSurface) *FilterController {
	c := &FilterController{
		registry: registry,
		surface:  surface,
	}
	c.visible = c.sorted(registry.Markers())
	return c
}

// SetQuery は検索語を更新し、地図上の表示と一覧を同期させる
func (c *FilterController) SetQuery(q string) []*model.Marker {
	c.query = q

	visible := make([]*model.Marker, 0, len(c.registry.Markers()))
	for _, marker := range c.registry.Markers() {
		match := helper.TitleMatches(marker.Title, q)
		// 表示状態が変わる場合のみ地図に反映する（再設定によるちらつき防止）
		if marker.OnMap != match {
			marker.OnMap = match
			c.surface.SetOnMap(marker, match)
		}
		if match {
			visible = append(visible, marker)
		}
	}

	c.visible = c.sorted(visible)
	return c.visible
}

// Query は現在の検索語を返す
func (c *FilterController) Query() string {
	return c.query
}

// VisibleList は現在の一覧（タイトル順）を返す
func (c *FilterController) VisibleList() []*model.Marker {
	return c.visible
}

func (c *FilterController) sorted(markers []*model.Marker) []*model.Marker {
	out := make([]*model.Marker, len(markers))
	copy(out, markers)
	helper.SortByTitle(out)
	return out
}
