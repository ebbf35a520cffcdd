package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/effluxation/fend-neighborhood-map/internal/domain/model"
	"github.com/effluxation/fend-neighborhood-map/internal/domain/repository"
	"github.com/effluxation/fend-neighborhood-map/internal/infrastructure/maps"
)

func newTestSession(t *testing.T, directory repository.BusinessDirectoryRepository) (*MapSession, *maps.ViewSurface, *fakeScheduler) {
	t.Helper()
	options := model.MapOptions{
		Center:        model.LatLng{Lat: 35.6895, Lng: 139.6917},
		Zoom:          12,
		PanelMaxWidth: 250,
		MarkerIcon:    "img/temple-2.png",
	}
	surface := maps.NewViewSurface(options)
	scheduler := &fakeScheduler{}
	session, err := NewMapSession("session-1", SessionDeps{
		Points:    museumPoints(),
		Surface:   surface,
		Directory: directory,
		Scheduler: scheduler,
		Options:   options,
	})
	require.NoError(t, err)
	return session, surface, scheduler
}

func TestNewMapSession_NoPoints(t *testing.T) {
	_, err := NewMapSession("empty", SessionDeps{
		Surface:   maps.NewViewSurface(model.MapOptions{}),
		Directory: &fakeDirectory{},
		Scheduler: &fakeScheduler{},
	})
	assert.ErrorIs(t, err, ErrNoPoints)
}

func TestMapSession_InitialViewState(t *testing.T) {
	session, _, scheduler := newTestSession(t, &fakeDirectory{})

	view := session.ViewState()
	assert.Equal(t, "session-1", view.SessionID)
	assert.Equal(t, "", view.Query)
	require.Len(t, view.Visible, 3)
	assert.Equal(t, "Edo Museum", view.Visible[0].Title)
	assert.Len(t, view.Markers, 3)
	assert.Nil(t, view.Panel)
	assert.False(t, view.PanelOpen)
	assert.Nil(t, view.SelectedID)
	assert.Equal(t, 12, view.Map.Zoom)
	assert.NotNil(t, view.Camera.Fit)
	assert.Equal(t, model.AnimationDrop, view.Markers[0].Animation)

	scheduler.FireAll()
	assert.Equal(t, model.AnimationNone, session.ViewState().Markers[0].Animation)
}

func TestMapSession_QueryScenario(t *testing.T) {
	session, _, _ := newTestSession(t, &fakeDirectory{})

	session.SetQuery("Mus")
	view := session.ViewState()

	assert.Equal(t, "Mus", view.Query)
	require.Len(t, view.Visible, 2)
	assert.Equal(t, "Edo Museum", view.Visible[0].Title)
	assert.Equal(t, "Tokyo National Museum", view.Visible[1].Title)
	for _, m := range view.Markers {
		assert.Equal(t, m.Title != "Ueno Zoo", m.OnMap, m.Title)
	}
}

func TestMapSession_ListClickSelectsAndBounces(t *testing.T) {
	directory := &fakeDirectory{err: repository.ErrNoMatch}
	session, _, _ := newTestSession(t, directory)

	require.True(t, session.ClickListItem(context.Background(), 2))
	session.Wait()

	view := session.ViewState()
	require.NotNil(t, view.SelectedID)
	assert.Equal(t, 2, *view.SelectedID)
	assert.True(t, view.PanelOpen)
	require.NotNil(t, view.Panel)
	assert.Equal(t, model.PanelNotFound, view.Panel.Kind)
	assert.Equal(t, "Edo Museum", view.Panel.Title)
	assert.Equal(t, model.AnimationBounce, view.Markers[2].Animation)

	assert.False(t, session.ClickListItem(context.Background(), 99))
}

func TestMapSession_MarkerClickUsesRegisteredHandler(t *testing.T) {
	directory := &fakeDirectory{err: repository.ErrNoMatch}
	session, _, _ := newTestSession(t, directory)

	require.True(t, session.ClickMarker(0))
	require.True(t, session.ClickMarker(0))
	session.Wait()

	// 同じマーカーへの2回目のクリックは取得せず、バウンスだけ止める
	assert.Equal(t, 1, directory.callCount())
	view := session.ViewState()
	assert.Equal(t, model.AnimationNone, view.Markers[0].Animation)
	assert.False(t, session.ClickMarker(-1))
}

func TestMapSession_Reset(t *testing.T) {
	session, surface, _ := newTestSession(t, &fakeDirectory{err: repository.ErrNoMatch})

	assert.Equal(t, model.FitBoundsPadding, session.ViewState().Camera.Padding)

	session.SetQuery("zoo")
	session.ClickListItem(context.Background(), 1)
	session.Wait()

	session.Reset()
	view := session.ViewState()
	assert.Equal(t, "", view.Query)
	assert.Len(t, view.Visible, 3)
	assert.Nil(t, view.SelectedID)
	assert.False(t, view.PanelOpen)
	require.NotNil(t, view.Camera.Fit)
	assert.Equal(t, model.ResetFitBoundsPadding, view.Camera.Padding)
	assert.Equal(t, model.FramePanOffsetY, view.Camera.OffsetY)
	assert.Equal(t, -1, surface.Anchor())
}

func TestMapSession_ClosePanelClearsSelection(t *testing.T) {
	directory := &fakeDirectory{err: repository.ErrNoMatch}
	session, _, _ := newTestSession(t, directory)

	session.ClickListItem(context.Background(), 1)
	session.Wait()
	session.ClosePanel()
	assert.Nil(t, session.ViewState().SelectedID)

	session.ClickListItem(context.Background(), 1)
	session.Wait()
	assert.Equal(t, 2, directory.callCount())
}

func TestMapSession_Subscribe(t *testing.T) {
	session, _, _ := newTestSession(t, &fakeDirectory{business: &model.Business{Name: "Edo-Tokyo Museum", Rating: 4}})

	events, cancel := session.Subscribe()
	defer cancel()

	session.ClickListItem(context.Background(), 2)
	session.Wait()

	first := <-events
	second := <-events
	assert.Equal(t, model.PanelLoading, first.Kind)
	assert.Equal(t, model.PanelFound, second.Kind)
	assert.Equal(t, "Edo-Tokyo Museum", second.Business.Name)

	cancel()
	_, ok := <-events
	assert.False(t, ok)
}

func TestMapSession_SubscribeKeepsLatestWhenFull(t *testing.T) {
	session, _, _ := newTestSession(t, &fakeDirectory{err: repository.ErrNoMatch})

	events, cancel := session.Subscribe()
	defer cancel()

	// 受信せずにバッファ(8)を超える更新を発生させる
	for i := 0; i < 6; i++ {
		session.ClickListItem(context.Background(), i%2)
		session.Wait()
	}

	var last *model.PanelState
	received := 0
	for drained := false; !drained; {
		select {
		case state := <-events:
			last = state
			received++
		default:
			drained = true
		}
	}

	assert.Equal(t, 8, received)
	require.NotNil(t, last)
	assert.Equal(t, session.Panel(), last)
	assert.Equal(t, model.PanelNotFound, last.Kind)
	assert.Equal(t, 1, last.MarkerID)
}
