package helper

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/effluxation/fend-neighborhood-map/internal/domain/model"
)

const ratingImageDir = "img/yelp_stars_reg"

var whitespaceRun = regexp.MustCompile(`\s+`)

// SearchTerm はタイトルの空白の連続を + に置換した検索語を返す
func SearchTerm(title string) string {
	return whitespaceRun.ReplaceAllString(title, "+")
}

// RatingImage は評価値から星画像のパス（1x, 2x）を返す
// 整数部が星の数、小数部がちょうど0.5の場合のみ半星を付ける
func RatingImage(rating float64) (string, string) {
	whole := math.Floor(rating)
	suffix := ""
	if rating-whole == 0.5 {
		suffix = "_half"
	}
	name := fmt.Sprintf("%s/regular_%d%s", ratingImageDir, int(whole), suffix)
	return name + ".png", name + "@2x.png"
}

// ReviewLabel はレビュー件数に応じて単数形・複数形を返す
func ReviewLabel(count int) string {
	if count > 1 {
		return "reviews"
	}
	return "review"
}

// FormatAddress は住所行の末尾が国名（Japan）の場合に取り除く
func FormatAddress(lines []string) []string {
	if len(lines) > 0 && lines[len(lines)-1] == model.RedundantCountry {
		lines = lines[:len(lines)-1]
	}
	out := make([]string, len(lines))
	copy(out, lines)
	return out
}

// JoinAddress は住所行を改行タグで連結する
func JoinAddress(lines []string) string {
	return strings.Join(FormatAddress(lines), "<br>")
}

// OpenStatus は営業状態の表示文字列を返す
func OpenStatus(isClosed bool) string {
	if isClosed {
		return "CLOSED"
	}
	return "OPEN"
}

// BuildPanelContent はビジネス情報からパネルの表示項目を組み立てる
func BuildPanelContent(b *model.Business) *model.PanelContent {
	img, img2x := RatingImage(b.Rating)
	return &model.PanelContent{
		ImageURL:     b.ImageURL,
		RatingImage:  img,
		RatingImage2: img2x,
		URL:          b.URL,
		ReviewCount:  b.ReviewCount,
		ReviewLabel:  ReviewLabel(b.ReviewCount),
		AddressLines: FormatAddress(b.DisplayAddress),
		Status:       OpenStatus(b.IsClosed),
		Phone:        b.DisplayPhone,
	}
}
