package service

import (
	"time"

	"github.com/effluxation/fend-neighborhood-map/internal/domain/model"
)

// MapSurface 地図プロバイダに対する操作（描画そのものはプロバイダ側の責務）
// 呼び出しは全てセッションのロックを保持した状態で行われる
type MapSurface interface {
	SetOnMap(marker *model.Marker, onMap bool)
	SetAnimation(marker *model.Marker, animation model.Animation)
	PanTo(position model.LatLng)
	PanBy(x, y int)
	FitBounds(bounds model.Bounds, padding int)
	OpenPanel(anchor *model.Marker)
	SetPanelContent(state *model.PanelState)
	ClosePanel()
}

// CameraReporter ビュー状態の組み立てに使うカメラ情報を返せるサーフェス
type CameraReporter interface {
	Camera() model.Camera
	PanelOpen() bool
}

// Timer 停止可能なタイマー
type Timer interface {
	Stop() bool
}

// Scheduler 一定時間後に処理を実行する
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type realScheduler struct{}

func (realScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// NewRealScheduler は time.AfterFunc を使うスケジューラを返す
func NewRealScheduler() Scheduler {
	return realScheduler{}
}
