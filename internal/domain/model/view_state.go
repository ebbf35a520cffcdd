package model

// MapOptions 地図の初期設定
type MapOptions struct {
	Center        LatLng `json:"center"`
	Zoom          int    `json:"zoom"`
	PanelMaxWidth int    `json:"panel_max_width"`
	MarkerIcon    string `json:"marker_icon"`
}

// Bounds 地図の表示範囲
type Bounds struct {
	SouthWest LatLng `json:"south_west"`
	NorthEast LatLng `json:"north_east"`
}

// Camera 地図の視点（パン・フィット操作の結果）
type Camera struct {
	Center  LatLng  `json:"center"`
	OffsetX int     `json:"offset_x"`
	OffsetY int     `json:"offset_y"`
	Fit     *Bounds `json:"fit,omitempty"`
	Padding int     `json:"padding"`
}

// ViewState UIバインディング層が描画するセッションの状態
type ViewState struct {
	SessionID  string       `json:"session_id"`
	Query      string       `json:"query"`
	Visible    []MarkerView `json:"visible"`
	Markers    []MarkerView `json:"markers"`
	Camera     Camera       `json:"camera"`
	Panel      *PanelState  `json:"panel,omitempty"`
	PanelOpen  bool         `json:"panel_open"`
	SelectedID *int         `json:"selected_id,omitempty"`
	Map        MapOptions   `json:"map"`
}

// QueryRequest PUT /api/sessions/:id/query のリクエスト
type QueryRequest struct {
	Query string `json:"query"`
}
