package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	"github.com/murkotick/storefront-cart-service/internal/app/cart"
	"github.com/murkotick/storefront-cart-service/internal/app/cart/contracts"
	"github.com/murkotick/storefront-cart-service/internal/app/cart/repo"
	"github.com/murkotick/storefront-cart-service/internal/pkg/blobstore"
	"github.com/murkotick/storefront-cart-service/internal/pkg/clock"
	committer "github.com/murkotick/storefront-cart-service/internal/pkg/committer"
	"github.com/murkotick/storefront-cart-service/internal/pkg/config"
	"github.com/murkotick/storefront-cart-service/internal/pkg/logging"
	"github.com/murkotick/storefront-cart-service/internal/pkg/telemetry"
	grpccart "github.com/murkotick/storefront-cart-service/internal/transport/grpc/cart"
	httpcart "github.com/murkotick/storefront-cart-service/internal/transport/http/cart"
)

const serviceName = "cartservice"

var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.New("info", "json").Fatal(err)
	}
	log := logging.New(cfg.LogLevel, cfg.LogFormat)

	// Handle SIGINT/SIGTERM.
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	shutdownTracer, err := telemetry.InitTracer(ctx, serviceName, version, cfg.OTLPEndpoint)
	if err != nil {
		log.Fatalf("init tracer: %v", err)
	}
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			log.WithError(err).Warn("tracer shutdown")
		}
	}()

	storage, err := openStore(ctx, cfg, log)
	if err != nil {
		log.Fatalf("open %s store: %v", cfg.CartStore, err)
	}
	defer storage.close()

	publishers := repo.Publishers{repo.NewLogPublisher(log)}
	if storage.outbox != nil {
		publishers = append(publishers, storage.outbox)
	}
	clk := clock.RealClock{}
	api := cart.NewAPI(repo.NewTableRepo(storage.store, log), publishers, clk, log)

	// gRPC server
	grpcSrv := grpc.NewServer(grpc.StatsHandler(otelgrpc.NewServerHandler()))
	grpccart.Register(grpcSrv, grpccart.NewHandler(api))
	healthSvc := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcSrv, healthSvc)
	healthSvc.SetServingStatus(grpccart.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	// HTTP server
	httpSrv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           httpcart.Router(api, log),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	if cfg.GRPCAddr != "" {
		lis, err := net.Listen("tcp", cfg.GRPCAddr)
		if err != nil {
			log.Fatalf("listen %s: %v", cfg.GRPCAddr, err)
		}
		g.Go(func() error {
			log.Infof("gRPC server listening on %s", cfg.GRPCAddr)
			return grpcSrv.Serve(lis)
		})
	}
	if cfg.HTTPAddr != "" {
		g.Go(func() error {
			log.Infof("HTTP server listening on %s", cfg.HTTPAddr)
			if err := httpSrv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
	}
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutdown signal received")
		healthSvc.Shutdown()
		return shutdown(cfg.ShutdownTimeout, grpcSrv, httpSrv)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		log.WithError(err).Error("server exited")
	}
	log.Info("server stopped")
}

func shutdown(timeout time.Duration, grpcSrv *grpc.Server, httpSrv *http.Server) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	stopped := make(chan struct{})
	go func() {
		grpcSrv.GracefulStop()
		close(stopped)
	}()

	err := httpSrv.Shutdown(ctx)

	select {
	case <-stopped:
	case <-ctx.Done():
		grpcSrv.Stop()
	}
	return err
}

type backend struct {
	store  contracts.Store
	outbox contracts.EventPublisher
	close  func()
}

// openStore builds the configured store backend. The Spanner backend also
// records cart events in its outbox table.
func openStore(ctx context.Context, cfg *config.Config, log logrus.FieldLogger) (*backend, error) {
	switch cfg.CartStore {
	case config.StoreFile:
		return &backend{store: blobstore.NewFile(cfg.CartFilePath), close: func() {}}, nil

	case config.StoreRedis:
		r := blobstore.NewRedis(cfg.RedisAddr, cfg.CartStorageKey, log)
		if err := r.Initialize(ctx, 5); err != nil {
			_ = r.Close()
			return nil, err
		}
		return &backend{store: r, close: func() { _ = r.Close() }}, nil

	case config.StoreSpanner:
		client, err := spanner.NewClient(ctx, cfg.SpannerDatabase)
		if err != nil {
			return nil, err
		}
		clk := clock.RealClock{}
		return &backend{
			store:  blobstore.NewSpanner(client, committer.NewAdapter(client, "cart_table"), clk, cfg.CartStorageKey),
			outbox: repo.NewOutboxPublisher(committer.NewAdapter(client, "cart_outbox"), clk, log),
			close:  client.Close,
		}, nil
	}

	log.Warn("using in-memory cart store; carts are lost on restart")
	return &backend{store: blobstore.NewMemory(), close: func() {}}, nil
}
