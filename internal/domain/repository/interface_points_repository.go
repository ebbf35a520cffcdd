package repository

import (
	"context"

	"github.com/effluxation/fend-neighborhood-map/internal/domain/model"
)

// PointsRepository 地図に配置する博物館データの取得元
type PointsRepository interface {
	ListPoints(ctx context.Context) ([]model.Point, error)
}
