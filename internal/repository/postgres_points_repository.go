package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/effluxation/fend-neighborhood-map/internal/domain/model"
	"github.com/effluxation/fend-neighborhood-map/internal/domain/repository"
	"github.com/effluxation/fend-neighborhood-map/internal/infrastructure/database"
)

type PostgresPointsRepository struct {
	client *database.PostgreSQLClient
}

func NewPostgresPointsRepository(client *database.PostgreSQLClient) repository.PointsRepository {
	return &PostgresPointsRepository{
		client: client,
	}
}

// museumRow museumsテーブルの1行
type museumRow struct {
	Title    string
	Location string
}

// ToPoint locationのGeoJSONを解析してmodel.Pointに変換
func (mr *museumRow) ToPoint() (model.Point, error) {
	var geometry model.Geometry
	if err := json.Unmarshal([]byte(mr.Location), &geometry); err != nil {
		return model.Point{}, fmt.Errorf("location GeoJSONパースエラー (%s): %w", mr.Title, err)
	}
	if len(geometry.Coordinates) < 2 {
		return model.Point{}, fmt.Errorf("location の座標が不足しています (%s)", mr.Title)
	}
	return model.Point{
		Title:    mr.Title,
		Location: geometry.ToLatLng(),
	}, nil
}

func (r *PostgresPointsRepository) ListPoints(ctx context.Context) ([]model.Point, error) {
	query := `SELECT title, ST_AsGeoJSON(location) FROM museums ORDER BY id`

	rows, err := r.client.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("博物館データの取得失敗: %w", err)
	}
	defer rows.Close()

	var points []model.Point
	for rows.Next() {
		var row museumRow
		if err := rows.Scan(&row.Title, &row.Location); err != nil {
			return nil, fmt.Errorf("博物館データのスキャン失敗: %w", err)
		}
		point, err := row.ToPoint()
		if err != nil {
			return nil, err
		}
		points = append(points, point)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("博物館データの読み込み中にエラー: %w", err)
	}

	return points, nil
}
