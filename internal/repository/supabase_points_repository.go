package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/effluxation/fend-neighborhood-map/internal/domain/model"
	"github.com/effluxation/fend-neighborhood-map/internal/domain/repository"
	"github.com/effluxation/fend-neighborhood-map/internal/infrastructure/database"
)

type SupabasePointsRepository struct {
	client *database.SupabaseClient
}

func NewSupabasePointsRepository(client *database.SupabaseClient) repository.PointsRepository {
	return &SupabasePointsRepository{
		client: client,
	}
}

// supabaseMuseum PostgRESTが返すmuseumsの1件
type supabaseMuseum struct {
	Title    string          `json:"title"`
	Location *model.Geometry `json:"location"`
}

func (r *SupabasePointsRepository) ListPoints(ctx context.Context) ([]model.Point, error) {
	data, _, err := r.client.GetClient().From("museums").Select("title,location", "exact", false).Execute()
	if err != nil {
		return nil, fmt.Errorf("博物館データの取得失敗: %w", err)
	}
	return decodeSupabaseMuseums(data)
}

// decodeSupabaseMuseums は座標を持たない行を除いてmodel.Pointに変換する
func decodeSupabaseMuseums(data []byte) ([]model.Point, error) {
	var museums []supabaseMuseum
	if err := json.Unmarshal(data, &museums); err != nil {
		return nil, fmt.Errorf("博物館データのJSONアンマーシャル失敗: %w", err)
	}

	points := make([]model.Point, 0, len(museums))
	for _, m := range museums {
		if m.Location == nil || len(m.Location.Coordinates) < 2 {
			log.Printf("⚠️ 座標のない博物館をスキップ: %s", m.Title)
			continue
		}
		points = append(points, model.Point{
			Title:    m.Title,
			Location: m.Location.ToLatLng(),
		})
	}
	return points, nil
}
