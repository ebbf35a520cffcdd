package service

import (
	"sync"
	"time"

	"github.com/effluxation/fend-neighborhood-map/internal/domain/model"
)

// BounceAnimator マーカーのバウンスアニメーションを切り替える
// 同時にバウンスするマーカーは最大1つ
type BounceAnimator struct {
	mu        sync.Locker
	registry  *MarkerRegistry
	surface   MapSurface
	scheduler Scheduler
	duration  time.Duration
}

// NewBounceAnimator は新しいBounceAnimatorを作成する
// mu はタイマー発火時に取得するセッションのロック
func NewBounceAnimator(mu sync.Locker, registry *MarkerRegistry, surface MapSurface, scheduler Scheduler, duration time.Duration) *BounceAnimator {
	return &BounceAnimator{
		mu:        mu,
		registry:  registry,
		surface:   surface,
		scheduler: scheduler,
		duration:  duration,
	}
}

// Toggle はバウンス中なら停止し、そうでなければ他のマーカーを止めて一定時間バウンスさせる
func (b *BounceAnimator) Toggle(marker *model.Marker) {
	if marker.IsBouncing() {
		b.set(marker, model.AnimationNone)
		return
	}

	for _, other := range b.registry.Markers() {
		if other.IsBouncing() {
			b.set(other, model.AnimationNone)
		}
	}
	b.set(marker, model.AnimationBounce)

	// その後の操作に関係なく一定時間後に停止する
	b.scheduler.AfterFunc(b.duration, func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if marker.IsBouncing() {
			b.set(marker, model.AnimationNone)
		}
	})
}

// Bouncing は現在バウンス中のマーカーを返す
func (b *BounceAnimator) Bouncing() *model.Marker {
	for _, m := range b.registry.Markers() {
		if m.IsBouncing() {
			return m
		}
	}
	return nil
}

func (b *BounceAnimator) set(marker *model.Marker, animation model.Animation) {
	marker.Animation = animation
	b.surface.SetAnimation(marker, animation)
}
