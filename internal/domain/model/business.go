package model

// Business ビジネスディレクトリ（Yelp）から取得した博物館の付加情報
type Business struct {
	Name           string   `json:"name"`
	ImageURL       string   `json:"image_url"`
	URL            string   `json:"url"`
	Rating         float64  `json:"rating"`
	ReviewCount    int      `json:"review_count"`
	DisplayAddress []string `json:"display_address"`
	IsClosed       bool     `json:"is_closed"`
	DisplayPhone   string   `json:"display_phone"`
}

// BusinessQuery ディレクトリ検索のキー
type BusinessQuery struct {
	Term     string // 博物館名（空白は検索時に + に置換）
	Location LatLng
}
