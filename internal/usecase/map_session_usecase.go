package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/effluxation/fend-neighborhood-map/internal/application"
	"github.com/effluxation/fend-neighborhood-map/internal/domain/model"
	"github.com/effluxation/fend-neighborhood-map/internal/domain/repository"
	"github.com/effluxation/fend-neighborhood-map/internal/domain/service"
	"github.com/effluxation/fend-neighborhood-map/internal/infrastructure/maps"
)

// ErrMarkerNotFound 指定されたマーカーが存在しない
var ErrMarkerNotFound = errors.New("マーカーが見つかりません")

// MapSessionUseCase UIバインディング層から呼ばれる地図セッションの操作
type MapSessionUseCase interface {
	// CreateSession は地図の初期化（マーカー配置）を行い、新しいセッションを返す
	CreateSession(ctx context.Context) (*model.ViewState, error)

	// GetViewState は現在のビュー状態を返す
	GetViewState(ctx context.Context, sessionID string) (*model.ViewState, error)

	// ChangeQuery は検索語の変更を反映する
	ChangeQuery(ctx context.Context, sessionID, query string) (*model.ViewState, error)

	// ClickMarker は地図上のマーカーのクリックを処理する
	ClickMarker(ctx context.Context, sessionID string, markerID int) (*model.ViewState, error)

	// ClickListItem は一覧の項目のクリックを処理する
	ClickListItem(ctx context.Context, sessionID string, markerID int) (*model.ViewState, error)

	// ClosePanel はパネルを閉じて選択を解除する
	ClosePanel(ctx context.Context, sessionID string) (*model.ViewState, error)

	// Reset は検索語と選択を解除して全体表示に戻す
	Reset(ctx context.Context, sessionID string) (*model.ViewState, error)

	// Session はパネル更新の購読などに使うセッション本体を返す
	Session(ctx context.Context, sessionID string) (*service.MapSession, error)

	// Points は地図に配置する博物館の一覧を返す
	Points() []model.Point
}

// mapSessionUseCaseImpl はMapSessionUseCaseの実装
type mapSessionUseCaseImpl struct {
	store     application.SessionStore
	points    []model.Point
	directory repository.BusinessDirectoryRepository
	options   model.MapOptions
}

// NewMapSessionUseCase は新しいMapSessionUseCaseインスタンスを作成
// 博物館が1件もない場合は地図を初期化できないためエラーを返す
func NewMapSessionUseCase(
	store application.SessionStore,
	points []model.Point,
	directory repository.BusinessDirectoryRepository,
	options model.MapOptions,
) (MapSessionUseCase, error) {
	if len(points) == 0 {
		return nil, service.ErrNoPoints
	}
	return &mapSessionUseCaseImpl{
		store:     store,
		points:    points,
		directory: directory,
		options:   options,
	}, nil
}

// CreateSession は新しいセッションを作成する
func (u *mapSessionUseCaseImpl) CreateSession(ctx context.Context) (*model.ViewState, error) {
	session, err := u.store.Create(func(id string) (*service.MapSession, error) {
		return service.NewMapSession(id, service.SessionDeps{
			Points:    u.points,
			Surface:   maps.NewViewSurface(u.options),
			Directory: u.directory,
			Options:   u.options,
		})
	})
	if err != nil {
		return nil, err
	}
	return session.ViewState(), nil
}

// GetViewState は現在のビュー状態を返す
func (u *mapSessionUseCaseImpl) GetViewState(ctx context.Context, sessionID string) (*model.ViewState, error) {
	session, err := u.store.Get(sessionID)
	if err != nil {
		return nil, err
	}
	return session.ViewState(), nil
}

// ChangeQuery は検索語の変更を反映する
func (u *mapSessionUseCaseImpl) ChangeQuery(ctx context.Context, sessionID, query string) (*model.ViewState, error) {
	session, err := u.store.Get(sessionID)
	if err != nil {
		return nil, err
	}
	session.SetQuery(query)
	return session.ViewState(), nil
}

// ClickMarker は地図上のマーカーのクリックを処理する
func (u *mapSessionUseCaseImpl) ClickMarker(ctx context.Context, sessionID string, markerID int) (*model.ViewState, error) {
	session, err := u.store.Get(sessionID)
	if err != nil {
		return nil, err
	}
	if !session.ClickMarker(markerID) {
		return nil, fmt.Errorf("%w: %d", ErrMarkerNotFound, markerID)
	}
	return session.ViewState(), nil
}

// ClickListItem は一覧の項目のクリックを処理する
func (u *mapSessionUseCaseImpl) ClickListItem(ctx context.Context, sessionID string, markerID int) (*model.ViewState, error) {
	session, err := u.store.Get(sessionID)
	if err != nil {
		return nil, err
	}
	if !session.ClickListItem(ctx, markerID) {
		return nil, fmt.Errorf("%w: %d", ErrMarkerNotFound, markerID)
	}
	return session.ViewState(), nil
}

// ClosePanel はパネルを閉じて選択を解除する
func (u *mapSessionUseCaseImpl) ClosePanel(ctx context.Context, sessionID string) (*model.ViewState, error) {
	session, err := u.store.Get(sessionID)
	if err != nil {
		return nil, err
	}
	session.ClosePanel()
	return session.ViewState(), nil
}

// Reset は検索語と選択を解除して全体表示に戻す
func (u *mapSessionUseCaseImpl) Reset(ctx context.Context, sessionID string) (*model.ViewState, error) {
	session, err := u.store.Get(sessionID)
	if err != nil {
		return nil, err
	}
	session.Reset()
	return session.ViewState(), nil
}

// Session はセッション本体を返す
func (u *mapSessionUseCaseImpl) Session(ctx context.Context, sessionID string) (*service.MapSession, error) {
	return u.store.Get(sessionID)
}

// Points は地図に配置する博物館の一覧を返す
func (u *mapSessionUseCaseImpl) Points() []model.Point {
	return u.points
}
