package model

import "time"

const (
	// BounceDuration バウンスアニメーションを自動停止するまでの時間
	BounceDuration = 1500 * time.Millisecond

	// SelectPanOffsetY パネル表示用に地図を上へずらす量（px）
	SelectPanOffsetY = -200

	// FramePanOffsetY 全体表示時に地図を上へずらす量（px）
	FramePanOffsetY = -100

	// FitBoundsPadding 初期表示時のパディング
	FitBoundsPadding = -50

	// ResetFitBoundsPadding リセット時のパディング（初期表示と異なり詰めない）
	ResetFitBoundsPadding = 0

	// RedundantCountry 住所末尾から取り除く国名（全地点が日本のため）
	RedundantCountry = "Japan"
)

// PointsSource マーカー元データの取得先
const (
	PointsSourceStatic    = "static"
	PointsSourcePostgres  = "postgres"
	PointsSourceSupabase  = "supabase"
	PointsSourceFirestore = "firestore"
)
