package model

// Animation マーカーのアニメーション状態
type Animation string

const (
	AnimationNone   Animation = ""
	AnimationBounce Animation = "BOUNCE"
	AnimationDrop   Animation = "DROP"
)

// Marker 地図上に配置された博物館マーカー
// 初期化後はメンバーが増減せず、表示状態とアニメーションのみ変化する
type Marker struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Position  LatLng    `json:"position"`
	OnMap     bool      `json:"on_map"`
	Animation Animation `json:"animation"`
	Icon      string    `json:"icon"`
}

// IsBouncing バウンス中かどうか
func (m *Marker) IsBouncing() bool {
	return m.Animation == AnimationBounce
}

// MarkerView UIへ返すマーカーのスナップショット
type MarkerView struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Position  LatLng    `json:"position"`
	OnMap     bool      `json:"on_map"`
	Animation Animation `json:"animation,omitempty"`
	Icon      string    `json:"icon,omitempty"`
}

// ToView Marker を MarkerView に変換
func (m *Marker) ToView() MarkerView {
	return MarkerView{
		ID:        m.ID,
		Title:     m.Title,
		Position:  m.Position,
		OnMap:     m.OnMap,
		Animation: m.Animation,
		Icon:      m.Icon,
	}
}
