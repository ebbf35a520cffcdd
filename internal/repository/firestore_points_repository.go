package repository

import (
	"context"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"

	"github.com/effluxation/fend-neighborhood-map/internal/domain/model"
	"github.com/effluxation/fend-neighborhood-map/internal/domain/repository"
)

// FirestorePointsRepository Firestoreのmuseumsコレクションを使用したリポジトリ
type FirestorePointsRepository struct {
	client *firestore.Client
}

// NewFirestorePointsRepository 新しいFirestorePointsRepositoryインスタンスを作成
func NewFirestorePointsRepository(client *firestore.Client) repository.PointsRepository {
	return &FirestorePointsRepository{
		client: client,
	}
}

// ListPoints はmuseumsコレクションの全ドキュメントをタイトル順に取得する
func (r *FirestorePointsRepository) ListPoints(ctx context.Context) ([]model.Point, error) {
	docs, err := r.client.Collection("museums").OrderBy("title", firestore.Asc).Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("博物館データの取得に失敗しました: %w", err)
	}

	points := make([]model.Point, 0, len(docs))
	for _, doc := range docs {
		var fp model.FirestorePoint
		if err := doc.DataTo(&fp); err != nil {
			log.Printf("❌ Failed to parse museum %s: %v", doc.Ref.ID, err)
			return nil, fmt.Errorf("博物館データの解析に失敗しました: %w", err)
		}
		points = append(points, fp.ToPoint())
	}

	log.Printf("✅ Museums loaded from Firestore: %d", len(points))
	return points, nil
}
