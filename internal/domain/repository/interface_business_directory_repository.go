package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/effluxation/fend-neighborhood-map/internal/domain/model"
)

// BusinessDirectoryRepository 外部ビジネスディレクトリの検索
type BusinessDirectoryRepository interface {
	// SearchBusiness は検索結果の先頭1件を返す。該当なしの場合は ErrNoMatch を返す
	SearchBusiness(ctx context.Context, query model.BusinessQuery) (*model.Business, error)
}

// ErrNoMatch ディレクトリに到達できたが該当するビジネスがない
var ErrNoMatch = errors.New("ビジネスディレクトリに該当する結果がありません")

// LookupErrorKind 検索失敗の種類
type LookupErrorKind string

const (
	// NetworkError リレーまたは上流APIに到達できない
	NetworkError LookupErrorKind = "network_error"
	// UpstreamRejection 上流APIが非成功ステータスを返した
	UpstreamRejection LookupErrorKind = "upstream_rejection"
	// DecodeError レスポンスのJSONを解釈できない
	DecodeError LookupErrorKind = "decode_error"
)

// LookupError ディレクトリ検索の失敗
type LookupError struct {
	Kind       LookupErrorKind
	StatusCode int
	Err        error
}

func (e *LookupError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s (status %d): %v", e.Kind, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *LookupError) Unwrap() error {
	return e.Err
}
