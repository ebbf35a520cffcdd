package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/effluxation/fend-neighborhood-map/internal/application"
	"github.com/effluxation/fend-neighborhood-map/internal/config"
	"github.com/effluxation/fend-neighborhood-map/internal/handler"
	"github.com/effluxation/fend-neighborhood-map/internal/infrastructure/yelp"
	"github.com/effluxation/fend-neighborhood-map/internal/repository"
	"github.com/effluxation/fend-neighborhood-map/internal/usecase"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ 設定の読み込みに失敗: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 博物館データの読み込み
	pointsRepo, cleanup, err := repository.NewPointsRepository(ctx, cfg)
	if err != nil {
		log.Fatalf("❌ 博物館データ取得元の初期化に失敗: %v", err)
	}
	defer cleanup()

	points, err := pointsRepo.ListPoints(ctx)
	if err != nil {
		log.Fatalf("❌ 博物館データの取得に失敗: %v", err)
	}
	log.Printf("📍 博物館データ読み込み完了: %d 件 (source: %s)", len(points), cfg.PointsSource)

	// Yelp ビジネスディレクトリ
	if cfg.YelpAPIKey == "" {
		log.Printf("⚠️ YELP_API_KEY が設定されていません。詳細情報の取得は失敗します")
	}
	opts := []yelp.Option{yelp.WithBaseURL(cfg.YelpBaseURL), yelp.WithTimeout(cfg.DirectoryTimeout)}
	if cfg.CORSRelayURL != "" {
		log.Printf("🔁 CORSリレー経由でYelpに接続します: %s", cfg.CORSRelayURL)
		opts = append(opts, yelp.WithRelay(cfg.CORSRelayURL))
	}
	directory := yelp.NewClient(cfg.YelpAPIKey, opts...)

	store := application.NewSessionStore(cfg.SessionTTL)
	sessionUseCase, err := usecase.NewMapSessionUseCase(store, points, directory, cfg.Map)
	if err != nil {
		log.Fatalf("❌ 地図の初期化に失敗: %v", err)
	}

	router := handler.NewRouter(
		handler.NewMapSessionHandler(sessionUseCase),
		handler.NewPanelStreamHandler(sessionUseCase),
	)
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("🚀 サーバー起動: :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		return store.Run(gctx, time.Minute)
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Printf("🛑 サーバーを停止します")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("❌ サーバーエラー: %v", err)
	}
	log.Printf("✅ サーバー停止完了")
}
