package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/effluxation/fend-neighborhood-map/internal/domain/model"
)

func TestRatingImage(t *testing.T) {
	tests := []struct {
		name   string
		rating float64
		want   string
		want2x string
	}{
		{"整数の評価", 4.0, "img/yelp_stars_reg/regular_4.png", "img/yelp_stars_reg/regular_4@2x.png"},
		{"半星あり", 3.5, "img/yelp_stars_reg/regular_3_half.png", "img/yelp_stars_reg/regular_3_half@2x.png"},
		{"0.5以外の小数は無視", 4.3, "img/yelp_stars_reg/regular_4.png", "img/yelp_stars_reg/regular_4@2x.png"},
		{"評価なし", 0, "img/yelp_stars_reg/regular_0.png", "img/yelp_stars_reg/regular_0@2x.png"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, got2x := RatingImage(tt.rating)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want2x, got2x)
		})
	}
}

func TestReviewLabel(t *testing.T) {
	assert.Equal(t, "review", ReviewLabel(1))
	assert.Equal(t, "reviews", ReviewLabel(2))
	assert.Equal(t, "review", ReviewLabel(0))
}

func TestFormatAddress(t *testing.T) {
	t.Run("末尾のJapanを除去", func(t *testing.T) {
		lines := []string{"13-9 Uenokoen", "Taito-ku, 東京都 110-8712", "Japan"}
		assert.Equal(t, []string{"13-9 Uenokoen", "Taito-ku, 東京都 110-8712"}, FormatAddress(lines))
		assert.Equal(t, "13-9 Uenokoen<br>Taito-ku, 東京都 110-8712", JoinAddress(lines))
		assert.Len(t, lines, 3, "入力スライスは変更しない")
	})

	t.Run("Japanで終わらない住所はそのまま", func(t *testing.T) {
		lines := []string{"Japan Street 1", "Tokyo"}
		assert.Equal(t, lines, FormatAddress(lines))
		assert.Equal(t, "Japan Street 1<br>Tokyo", JoinAddress(lines))
	})

	t.Run("空の住所", func(t *testing.T) {
		assert.Empty(t, FormatAddress(nil))
	})
}

func TestSearchTerm(t *testing.T) {
	assert.Equal(t, "Tokyo+National+Museum", SearchTerm("Tokyo National Museum"))
	assert.Equal(t, "Edo+Museum", SearchTerm("Edo  \tMuseum"))
	assert.Equal(t, "Zoo", SearchTerm("Zoo"))
}

func TestOpenStatus(t *testing.T) {
	assert.Equal(t, "CLOSED", OpenStatus(true))
	assert.Equal(t, "OPEN", OpenStatus(false))
}

func TestBuildPanelContent(t *testing.T) {
	content := BuildPanelContent(&model.Business{
		ImageURL:       "https://example.com/a.jpg",
		URL:            "https://www.yelp.com/biz/a",
		Rating:         4.5,
		ReviewCount:    2,
		DisplayAddress: []string{"Ueno Park", "Japan"},
		DisplayPhone:   "+81 3-3822-1111",
	})

	assert.Equal(t, "img/yelp_stars_reg/regular_4_half.png", content.RatingImage)
	assert.Equal(t, "reviews", content.ReviewLabel)
	assert.Equal(t, []string{"Ueno Park"}, content.AddressLines)
	assert.Equal(t, "OPEN", content.Status)
	assert.Equal(t, "+81 3-3822-1111", content.Phone)
}
