package repository

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/effluxation/fend-neighborhood-map/internal/domain/model"
	"github.com/effluxation/fend-neighborhood-map/internal/domain/repository"
)

//go:embed data/museums.json
var museumsJSON []byte

// StaticPointsRepository 静的なJSONに定義された博物館一覧
type StaticPointsRepository struct {
	raw []byte
}

// NewStaticPointsRepository は組み込みの東京の博物館一覧を返すリポジトリを作成
func NewStaticPointsRepository() repository.PointsRepository {
	return &StaticPointsRepository{raw: museumsJSON}
}

// NewFilePointsRepository は指定されたJSONファイルの博物館一覧を返すリポジトリを作成
func NewFilePointsRepository(path string) (repository.PointsRepository, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("博物館データファイルの読み込みに失敗: %w", err)
	}
	return &StaticPointsRepository{raw: raw}, nil
}

func (r *StaticPointsRepository) ListPoints(ctx context.Context) ([]model.Point, error) {
	var points []model.Point
	if err := json.Unmarshal(r.raw, &points); err != nil {
		return nil, fmt.Errorf("博物館データのJSONアンマーシャル失敗: %w", err)
	}
	return points, nil
}
