package model

// PanelKind 詳細パネルの表示状態
type PanelKind string

const (
	PanelLoading  PanelKind = "loading"
	PanelFound    PanelKind = "found"
	PanelNotFound PanelKind = "not_found"
	PanelError    PanelKind = "error"
)

// PanelContent Found状態で描画する項目
type PanelContent struct {
	ImageURL     string   `json:"image_url"`
	RatingImage  string   `json:"rating_image"`
	RatingImage2 string   `json:"rating_image_2x"`
	URL          string   `json:"url"`
	ReviewCount  int      `json:"review_count"`
	ReviewLabel  string   `json:"review_label"`
	AddressLines []string `json:"address_lines"`
	Status       string   `json:"status"`
	Phone        string   `json:"phone"`
}

// PanelState 共有詳細パネル（InfoWindow）の状態
type PanelState struct {
	Kind     PanelKind     `json:"kind"`
	MarkerID int           `json:"marker_id"`
	Title    string        `json:"title"`
	Business *Business     `json:"business,omitempty"`
	Content  *PanelContent `json:"content,omitempty"`
	Message  string        `json:"message,omitempty"`
	HTML     string        `json:"html"`
}
