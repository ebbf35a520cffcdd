package yelp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/effluxation/fend-neighborhood-map/internal/domain/helper"
	"github.com/effluxation/fend-neighborhood-map/internal/domain/model"
	"github.com/effluxation/fend-neighborhood-map/internal/domain/repository"
)

// DefaultBaseURL Yelp Fusion API のベースURL
const DefaultBaseURL = "https://api.yelp.com/v3"

// maxConcurrentRequests プロセス全体での同時リクエスト数の上限
const maxConcurrentRequests = 8

// Client はYelp Fusion APIを使用したビジネス検索の実装
type Client struct {
	apiKey     string
	baseURL    string
	relayURL   string
	httpClient *http.Client
	sem        *semaphore.Weighted
}

// Option Clientの設定
type Option func(*Client)

// WithBaseURL はAPIのベースURLを差し替える
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

// WithRelay はCORSリレーを経由して上流APIにアクセスする
// リレーURLは上流URLの前に連結される（例: https://relay.example.com/）
func WithRelay(relayURL string) Option {
	return func(c *Client) {
		c.relayURL = relayURL
	}
}

// WithTimeout はリクエストのタイムアウトを設定する（0はタイムアウトなし）
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithHTTPClient はHTTPクライアントを差し替える
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient は新しいクライアントを生成する
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:     apiKey,
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{},
		sem:        semaphore.NewWeighted(maxConcurrentRequests),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ repository.BusinessDirectoryRepository = (*Client)(nil)

// SearchBusiness はYelpのビジネス検索APIを呼び出して先頭の1件を返す
func (c *Client) SearchBusiness(ctx context.Context, query model.BusinessQuery) (*model.Business, error) {
	if err := c.sem.Acquire(ctx, 1); err != nil {
		return nil, &repository.LookupError{Kind: repository.NetworkError, Err: err}
	}
	defer c.sem.Release(1)

	// 1. リクエストURLを構築
	reqURL := c.buildURL(query)

	// 2. HTTPリクエストを作成・実行
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("リクエストの作成に失敗: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")
	if c.relayURL != "" {
		// cors-anywhere 系のリレーはこのヘッダーを要求する
		req.Header.Set("X-Requested-With", "XMLHttpRequest")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &repository.LookupError{Kind: repository.NetworkError, Err: fmt.Errorf("APIリクエストに失敗: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &repository.LookupError{
			Kind:       repository.UpstreamRejection,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("APIからエラーステータスが返されました: %s", resp.Status),
		}
	}

	// 3. JSONレスポンスをパース
	var apiResp searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, &repository.LookupError{Kind: repository.DecodeError, Err: fmt.Errorf("JSONのパースに失敗: %w", err)}
	}

	if len(apiResp.Businesses) == 0 {
		return nil, repository.ErrNoMatch
	}

	// 4. 先頭の1件のみドメインモデルに変換して返す
	return apiResp.Businesses[0].toModel(), nil
}

func (c *Client) buildURL(query model.BusinessQuery) string {
	// 空白は + に置換済みのため、各語のみエスケープする
	words := strings.Split(helper.SearchTerm(query.Term), "+")
	for i, w := range words {
		words[i] = url.QueryEscape(w)
	}

	params := []string{
		"term=" + strings.Join(words, "+"),
		"latitude=" + strconv.FormatFloat(query.Location.Lat, 'f', -1, 64),
		"longitude=" + strconv.FormatFloat(query.Location.Lng, 'f', -1, 64),
	}

	return fmt.Sprintf("%s%s/businesses/search?%s", c.relayURL, c.baseURL, strings.Join(params, "&"))
}

// --- Yelp APIのレスポンスをパースするための構造体 ---

type searchResponse struct {
	Businesses []business `json:"businesses"`
	Total      int        `json:"total"`
}

type business struct {
	Name         string   `json:"name"`
	ImageURL     string   `json:"image_url"`
	URL          string   `json:"url"`
	Rating       float64  `json:"rating"`
	ReviewCount  int      `json:"review_count"`
	IsClosed     bool     `json:"is_closed"`
	DisplayPhone string   `json:"display_phone"`
	Location     location `json:"location"`
}

type location struct {
	DisplayAddress []string `json:"display_address"`
}

func (b business) toModel() *model.Business {
	return &model.Business{
		Name:           b.Name,
		ImageURL:       b.ImageURL,
		URL:            b.URL,
		Rating:         b.Rating,
		ReviewCount:    b.ReviewCount,
		DisplayAddress: b.Location.DisplayAddress,
		IsClosed:       b.IsClosed,
		DisplayPhone:   b.DisplayPhone,
	}
}
