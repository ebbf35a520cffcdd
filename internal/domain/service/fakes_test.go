package service

import (
	"context"
	"sync"
	"time"

	"github.com/effluxation/fend-neighborhood-map/internal/domain/model"
)

// fakeDirectory 呼び出し回数を記録するディレクトリのスタブ
type fakeDirectory struct {
	mu       sync.Mutex
	calls    []model.BusinessQuery
	business *model.Business
	err      error
}

func (f *fakeDirectory) SearchBusiness(ctx context.Context, query model.BusinessQuery) (*model.Business, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, query)
	return f.business, f.err
}

func (f *fakeDirectory) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

// gatedDirectory タイトルごとのゲートが開くまで応答を返さないディレクトリ
type gatedDirectory struct {
	gates map[string]chan struct{}
}

func newGatedDirectory(titles ...string) *gatedDirectory {
	d := &gatedDirectory{gates: make(map[string]chan struct{})}
	for _, title := range titles {
		d.gates[title] = make(chan struct{})
	}
	return d
}

func (d *gatedDirectory) SearchBusiness(ctx context.Context, query model.BusinessQuery) (*model.Business, error) {
	<-d.gates[query.Term]
	return &model.Business{Name: query.Term, Rating: 4, ReviewCount: 2}, nil
}

// release は指定したタイトルの応答を返させる
func (d *gatedDirectory) release(title string) {
	close(d.gates[title])
}

type fakeTimer struct {
	d       time.Duration
	f       func()
	stopped bool
}

func (t *fakeTimer) Stop() bool {
	was := !t.stopped
	t.stopped = true
	return was
}

// fakeScheduler テストから任意のタイミングでタイマーを発火させるスケジューラ
type fakeScheduler struct {
	mu     sync.Mutex
	timers []*fakeTimer
}

func (s *fakeScheduler) AfterFunc(d time.Duration, f func()) Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &fakeTimer{d: d, f: f}
	s.timers = append(s.timers, t)
	return t
}

// FireAll は登録済みの全タイマーを発火させる
func (s *fakeScheduler) FireAll() {
	s.mu.Lock()
	pending := s.timers
	s.timers = nil
	s.mu.Unlock()

	for _, t := range pending {
		if !t.stopped {
			t.stopped = true
			t.f()
		}
	}
}

func (s *fakeScheduler) pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

func museumPoints() []model.Point {
	return []model.Point{
		{Title: "Tokyo National Museum", Location: model.LatLng{Lat: 35.718837, Lng: 139.776474}},
		{Title: "Ueno Zoo", Location: model.LatLng{Lat: 35.716357, Lng: 139.771385}},
		{Title: "Edo Museum", Location: model.LatLng{Lat: 35.696719, Lng: 139.795656}},
	}
}
