package service

import (
	"bytes"
	"html/template"
	"log"

	"github.com/effluxation/fend-neighborhood-map/internal/domain/helper"
	"github.com/effluxation/fend-neighborhood-map/internal/domain/model"
)

const (
	notFoundMessage = "This museum's information is not found in Yelp's business directory. Try a different museum location."
	errorMessage    = "Unable to retrieve this museum's Yelp data due to a connection error. Please try again later."
	spinnerCircles  = 12
)

var panelTemplates = template.Must(template.New("panel").Parse(`
{{define "title"}}<div class="title"><strong>{{.Title}}</strong></div>{{end}}

{{define "loading"}}{{template "title" .}}<div class="sk-circle">{{range .Circles}}<div class="sk-circle{{.}} sk-child"></div>{{end}}</div>{{end}}

{{define "found"}}{{template "title" .}}<img class="yelp-img" src="{{.Content.ImageURL}}" alt="{{.Title}}">
<div class="yelp-container"><img class="yelp-rating" src="{{.Content.RatingImage}}" srcset="{{.Content.RatingImage2}} 2x">
<a target="_blank" href="{{.Content.URL}}"><img class="yelp-logo" src="img/yelp_trademark_rgb_outline.png" srcset="img/yelp_trademark_rgb_outline_2x.png 2x" alt="Yelp Logo"></a>
<a class="yelp-reviews" href="{{.Content.URL}}" target="_blank">Based on <strong>{{.Content.ReviewCount}}</strong> {{.Content.ReviewLabel}}</a>
<p><address>{{range $i, $line := .Content.AddressLines}}{{if $i}}<br>{{end}}{{$line}}{{end}}</address></p>
<p class="yelp-info">Currently <strong>{{.Content.Status}}</strong><br>Phone: {{.Content.Phone}}</p></div>{{end}}

{{define "message"}}{{template "title" .}}<p>{{.Message}}</p>{{end}}
`))

// PanelRenderer 詳細パネルの各状態をHTMLに変換する
type PanelRenderer struct{}

// NewPanelRenderer は新しいPanelRendererを作成する
func NewPanelRenderer() *PanelRenderer {
	return &PanelRenderer{}
}

// Loading は読み込み中（スピナー表示）の状態を作成する
func (r *PanelRenderer) Loading(marker *model.Marker) *model.PanelState {
	state := r.base(model.PanelLoading, marker)
	circles := make([]int, spinnerCircles)
	for i := range circles {
		circles[i] = i + 1
	}
	state.HTML = r.execute("loading", struct {
		Title   string
		Circles []int
	}{marker.Title, circles}, marker.Title)
	return state
}

// Found は取得したビジネス情報を表示する状態を作成する
func (r *PanelRenderer) Found(marker *model.Marker, business *model.Business) *model.PanelState {
	state := r.base(model.PanelFound, marker)
	state.Business = business
	state.Content = helper.BuildPanelContent(business)
	state.HTML = r.execute("found", state, marker.Title)
	return state
}

// NotFound はディレクトリに該当がない状態を作成する
func (r *PanelRenderer) NotFound(marker *model.Marker) *model.PanelState {
	state := r.base(model.PanelNotFound, marker)
	state.Message = notFoundMessage
	state.HTML = r.execute("message", state, marker.Title)
	return state
}

// Error は接続エラーで取得できなかった状態を作成する
func (r *PanelRenderer) Error(marker *model.Marker) *model.PanelState {
	state := r.base(model.PanelError, marker)
	state.Message = errorMessage
	state.HTML = r.execute("message", state, marker.Title)
	return state
}

func (r *PanelRenderer) base(kind model.PanelKind, marker *model.Marker) *model.PanelState {
	return &model.PanelState{
		Kind:     kind,
		MarkerID: marker.ID,
		Title:    marker.Title,
	}
}

func (r *PanelRenderer) execute(name string, data any, title string) string {
	var buf bytes.Buffer
	if err := panelTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		log.Printf("⚠️ パネルの描画に失敗 (%s): %v", name, err)
		return template.HTMLEscapeString(title)
	}
	return buf.String()
}
