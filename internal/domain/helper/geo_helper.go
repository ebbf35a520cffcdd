package helper

import (
	"github.com/paulmach/orb"

	"github.com/effluxation/fend-neighborhood-map/internal/domain/model"
)

// ToPoint LatLng を orb.Point（経度, 緯度）に変換
func ToPoint(l model.LatLng) orb.Point {
	return orb.Point{l.Lng, l.Lat}
}

// FromPoint orb.Point を LatLng に変換
func FromPoint(p orb.Point) model.LatLng {
	return model.LatLng{Lat: p.Lat(), Lng: p.Lon()}
}

// BoundOf は全地点を含む最小の境界ボックスを作成する
func BoundOf(locations []model.LatLng) orb.Bound {
	if len(locations) == 0 {
		return orb.Bound{}
	}
	first := ToPoint(locations[0])
	bound := orb.Bound{Min: first, Max: first}
	for _, l := range locations[1:] {
		bound = bound.Extend(ToPoint(l))
	}
	return bound
}

// ToBounds orb.Bound を地図の表示範囲に変換
func ToBounds(b orb.Bound) model.Bounds {
	return model.Bounds{
		SouthWest: FromPoint(b.Min),
		NorthEast: FromPoint(b.Max),
	}
}

// BoundsCenter は表示範囲の中心を返す
func BoundsCenter(b model.Bounds) model.LatLng {
	bound := orb.Bound{Min: ToPoint(b.SouthWest), Max: ToPoint(b.NorthEast)}
	return FromPoint(bound.Center())
}
