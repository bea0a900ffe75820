// internal/pkg/bootstrap/app.go
package bootstrap

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"algashop/internal/pkg/tracing"
)

type AppCtx struct {
	Mux *http.ServeMux
}

// AppInfo 包含启动一个服务所需的全部信息。
type AppInfo struct {
	ServiceName      string
	Port             int
	JaegerEndpoint   string
	RegisterHandlers func(appCtx AppCtx)       // 每个服务注册自己的 HTTP 路由（健康检查、指标等）
	Run              func(ctx context.Context) // 后台工作，ctx 取消后应尽快返回
	OnShutdown       func(ctx context.Context) // 关停时的额外清理，在 tracer 关闭前执行
}

// StartService 封装通用的启动和优雅关停逻辑。
func StartService(info AppInfo) {
	// 1. 日志初始化
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.With().Str("service", info.ServiceName).Logger()

	// 2. Tracer
	tp, err := tracing.InitTracerProvider(info.ServiceName, info.JaegerEndpoint)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize tracer provider")
	}

	// 3. 根上下文，收到退出信号后取消
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 4. HTTP Server（健康检查与指标）
	mux := http.NewServeMux()
	if info.RegisterHandlers != nil {
		info.RegisterHandlers(AppCtx{Mux: mux})
	}
	server := &http.Server{Addr: ":" + strconv.Itoa(info.Port), Handler: mux}

	// 5. HTTP Server 与后台工作都挂在同一个 errgroup 上，任意一个失败都会触发关停
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Int("port", info.Port).Msg("http server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	if info.Run != nil {
		g.Go(func() error {
			info.Run(gctx)
			return nil
		})
	}

	// 阻塞主 goroutine，直到收到退出信号或某个任务出错
	<-gctx.Done()
	log.Info().Msg("shutting down")

	// 关停流程使用带超时的新上下文
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if info.OnShutdown != nil {
		info.OnShutdown(shutdownCtx)
	}

	// 关闭 Tracer Provider，确保缓冲的 trace 都被导出
	if err := tp.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("error shutting down tracer provider")
	}

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("error shutting down http server")
	}

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("service exited with error")
	}

	log.Info().Msg("service gracefully shut down")
	os.Exit(0)
}
