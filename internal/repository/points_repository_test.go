package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/effluxation/fend-neighborhood-map/internal/config"
	"github.com/effluxation/fend-neighborhood-map/internal/domain/model"
)

func TestStaticPointsRepository_ListPoints(t *testing.T) {
	points, err := NewStaticPointsRepository().ListPoints(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, points)

	for _, p := range points {
		assert.NotEmpty(t, p.Title)
		// 東京周辺に収まっていること
		assert.InDelta(t, 35.68, p.Location.Lat, 0.2, p.Title)
		assert.InDelta(t, 139.70, p.Location.Lng, 0.2, p.Title)
	}
	assert.Equal(t, "Tokyo National Museum", points[0].Title)
}

func TestFilePointsRepository(t *testing.T) {
	dir := t.TempDir()

	t.Run("正常なファイル", func(t *testing.T) {
		path := filepath.Join(dir, "points.json")
		require.NoError(t, os.WriteFile(path, []byte(`[{"title":"Ueno Zoo","location":{"lat":35.716357,"lng":139.771385}}]`), 0o644))

		repo, err := NewFilePointsRepository(path)
		require.NoError(t, err)
		points, err := repo.ListPoints(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []model.Point{{Title: "Ueno Zoo", Location: model.LatLng{Lat: 35.716357, Lng: 139.771385}}}, points)
	})

	t.Run("不正なJSON", func(t *testing.T) {
		path := filepath.Join(dir, "broken.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"title":`), 0o644))

		repo, err := NewFilePointsRepository(path)
		require.NoError(t, err)
		_, err = repo.ListPoints(context.Background())
		assert.Error(t, err)
	})

	t.Run("存在しないファイル", func(t *testing.T) {
		_, err := NewFilePointsRepository(filepath.Join(dir, "missing.json"))
		assert.Error(t, err)
	})
}

func TestMuseumRow_ToPoint(t *testing.T) {
	row := museumRow{Title: "Edo-Tokyo Museum", Location: `{"type":"Point","coordinates":[139.795656,35.696719]}`}
	point, err := row.ToPoint()
	require.NoError(t, err)
	assert.Equal(t, model.LatLng{Lat: 35.696719, Lng: 139.795656}, point.Location)

	_, err = (&museumRow{Title: "x", Location: `{"type":"Point","coordinates":[]}`}).ToPoint()
	assert.Error(t, err)

	_, err = (&museumRow{Title: "x", Location: `not json`}).ToPoint()
	assert.Error(t, err)
}

func TestDecodeSupabaseMuseums(t *testing.T) {
	data := []byte(`[
		{"title":"Nezu Museum","location":{"type":"Point","coordinates":[139.717292,35.662297]}},
		{"title":"No Location","location":null}
	]`)

	points, err := decodeSupabaseMuseums(data)
	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.Equal(t, "Nezu Museum", points[0].Title)
	assert.Equal(t, 35.662297, points[0].Location.Lat)

	_, err = decodeSupabaseMuseums([]byte(`{}`))
	assert.Error(t, err)
}

func TestNewPointsRepository(t *testing.T) {
	ctx := context.Background()

	repo, cleanup, err := NewPointsRepository(ctx, &config.Config{PointsSource: model.PointsSourceStatic})
	require.NoError(t, err)
	defer cleanup()
	assert.IsType(t, &StaticPointsRepository{}, repo)

	_, cleanup, err = NewPointsRepository(ctx, &config.Config{PointsSource: model.PointsSourceSupabase})
	defer cleanup()
	assert.Error(t, err)

	_, cleanup, err = NewPointsRepository(ctx, &config.Config{PointsSource: model.PointsSourcePostgres})
	defer cleanup()
	assert.Error(t, err)

	_, cleanup, err = NewPointsRepository(ctx, &config.Config{PointsSource: "mysql"})
	defer cleanup()
	assert.Error(t, err)
}
