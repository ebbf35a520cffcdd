package model

// LatLng 緯度経度を表す基本的な型
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Point 地図に表示する博物館（マーカーの元データ）
type Point struct {
	Title    string `json:"title"`
	Location LatLng `json:"location"`
}

// Geometry PostGIS GEOMETRY型に対応する構造体
type Geometry struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"` // [longitude, latitude]
}

// ToLatLng GeoJSON の Point を LatLng に変換
func (g *Geometry) ToLatLng() LatLng {
	if g != nil && len(g.Coordinates) >= 2 {
		return LatLng{
			Lat: g.Coordinates[1], // latitude
			Lng: g.Coordinates[0], // longitude
		}
	}
	return LatLng{}
}

// FirestorePoint Firestoreのmuseumsコレクションのドキュメント
type FirestorePoint struct {
	Title     string  `firestore:"title"`
	Latitude  float64 `firestore:"latitude"`
	Longitude float64 `firestore:"longitude"`
}

// ToPoint Firestoreドキュメントを Point に変換
func (fp *FirestorePoint) ToPoint() Point {
	return Point{
		Title:    fp.Title,
		Location: LatLng{Lat: fp.Latitude, Lng: fp.Longitude},
	}
}
