package repository

import (
	"context"
	"fmt"
	"log"

	"github.com/effluxation/fend-neighborhood-map/internal/config"
	"github.com/effluxation/fend-neighborhood-map/internal/domain/model"
	"github.com/effluxation/fend-neighborhood-map/internal/domain/repository"
	"github.com/effluxation/fend-neighborhood-map/internal/infrastructure/database"
	"github.com/effluxation/fend-neighborhood-map/internal/infrastructure/firestore"
)

// NewPointsRepository は設定に応じた博物館データの取得元を作成する
// 戻り値の cleanup は接続を閉じるために呼び出し側で必ず実行する
func NewPointsRepository(ctx context.Context, cfg *config.Config) (repository.PointsRepository, func(), error) {
	noop := func() {}

	switch cfg.PointsSource {
	case model.PointsSourceStatic:
		if cfg.PointsFile != "" {
			log.Printf("📄 博物館データをファイルから読み込みます: %s", cfg.PointsFile)
			repo, err := NewFilePointsRepository(cfg.PointsFile)
			return repo, noop, err
		}
		return NewStaticPointsRepository(), noop, nil

	case model.PointsSourcePostgres:
		connStr, err := database.PostgresConnString(cfg.DatabaseURL, cfg.SupabaseURL, cfg.SupabaseDBPassword)
		if err != nil {
			return nil, noop, err
		}
		client, err := database.NewPostgreSQLClient(ctx, connStr)
		if err != nil {
			return nil, noop, err
		}
		log.Printf("✅ PostgreSQL接続完了")
		return NewPostgresPointsRepository(client), func() { client.Close() }, nil

	case model.PointsSourceSupabase:
		client, err := database.NewSupabaseClient(cfg.SupabaseURL, cfg.SupabaseAnonKey)
		if err != nil {
			return nil, noop, err
		}
		log.Printf("✅ Supabaseクライアント初期化完了")
		return NewSupabasePointsRepository(client), noop, nil

	case model.PointsSourceFirestore:
		client, err := firestore.NewFirestoreClient(ctx, cfg.FirestoreProjectID, cfg.CredentialsFile)
		if err != nil {
			return nil, noop, err
		}
		return NewFirestorePointsRepository(client.GetClient()), func() { client.Close() }, nil
	}

	return nil, noop, fmt.Errorf("未対応の博物館データ取得元: %s", cfg.PointsSource)
}
