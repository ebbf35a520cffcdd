package helper

import (
	"sort"
	"strings"

	"github.com/effluxation/fend-neighborhood-map/internal/domain/model"
)

// TitleMatches はタイトルが検索語を大文字小文字を区別せずに含むかチェックする
// 空の検索語は全てにマッチする
func TitleMatches(title, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToUpper(title), strings.ToUpper(query))
}

// SortByTitle はタイトルの辞書順（バイト順）でマーカースライスをソートする
// 同じタイトル同士の順序は保証しない
func SortByTitle(markers []*model.Marker) {
	sort.Slice(markers, func(i, j int) bool {
		return markers[i].Title < markers[j].Title
	})
}

// FilterByTitle は検索語にマッチするマーカーのみを抽出する
func FilterByTitle(markers []*model.Marker, query string) []*model.Marker {
	filtered := make([]*model.Marker, 0, len(markers))
	for _, m := range markers {
		if TitleMatches(m.Title, query) {
			filtered = append(filtered, m)
		}
	}
	return filtered
}

// ToViews はマーカースライスをUI用のスナップショットに変換する
func ToViews(markers []*model.Marker) []model.MarkerView {
	views := make([]model.MarkerView, len(markers))
	for i, m := range markers {
		views[i] = m.ToView()
	}
	return views
}
