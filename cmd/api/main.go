//	@title			Snapshelf
//	@version		1.0
//	@description	Photo upload and gallery service.
//
//	@host		localhost:8080
//	@BasePath	/

package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"golang.org/x/sync/errgroup"

	"github.com/snapshelf/service/internal/config"
	"github.com/snapshelf/service/internal/db"
	"github.com/snapshelf/service/internal/docstore"
	appMiddleware "github.com/snapshelf/service/internal/middleware"
	"github.com/snapshelf/service/internal/photo"
	"github.com/snapshelf/service/internal/response"
	"github.com/snapshelf/service/internal/storage"
	"github.com/snapshelf/service/internal/web"

	_ "github.com/snapshelf/service/docs/swagger"
)

// stores bundles the backends selected by configuration.
type stores struct {
	objects storage.Storage
	docs    photo.DocumentStore
	// blobs serves objects over HTTP when the object store cannot do so itself.
	blobs   http.Handler
	closers []func()
}

func (s *stores) close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
}

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, err := openStores(ctx, cfg)
	if err != nil {
		log.Fatalf("store init failed: %v", err)
	}
	defer st.close()

	pages, err := web.New()
	if err != nil {
		log.Fatalf("template init failed: %v", err)
	}

	// Wire dependencies: stores → service → handler
	resolver := storage.NewPublicURLResolver(cfg.ServingURLBase)
	photoSvc := photo.NewService(st.objects, st.docs, resolver, cfg.PhotoBucket)
	photoHandler := photo.NewHandler(photoSvc, pages, cfg.MaxUploadBytes)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      newRouter(photoHandler, st.blobs),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("server listening on :%s (env=%s, objects=%s, documents=%s)",
			cfg.Port, cfg.AppEnv, cfg.ObjectStore, cfg.DocumentStore)
		log.Printf("swagger UI at http://localhost:%s/swagger/", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Println("shutting down gracefully...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("forced shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Printf("server stopped with error: %v", err)
		return
	}
	log.Println("server stopped")
}

// newRouter mounts the photo pages, health check, API docs, and (when
// present) the blob handler.
func newRouter(h *photo.Handler, blobs http.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(appMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		response.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	r.Get("/", h.Home)
	r.Get("/home", h.Home)
	r.Post("/upload", h.Upload)
	r.Get("/show", h.Show)
	r.Get("/delete", h.Delete)
	r.Post("/delete", h.Delete)

	if blobs != nil {
		r.Handle("/blobs/*", http.StripPrefix("/blobs", blobs))
	}

	return r
}

// openStores connects the object store and document store named in cfg.
func openStores(ctx context.Context, cfg *config.Config) (*stores, error) {
	st := &stores{}

	switch cfg.ObjectStore {
	case config.BackendMinio:
		s, err := storage.NewMinioStorage(ctx, cfg.StorageEndpoint, cfg.StorageAccessKey,
			cfg.StorageSecretKey, cfg.PhotoBucket, cfg.StorageUseSSL)
		if err != nil {
			return nil, fmt.Errorf("minio: %w", err)
		}
		st.objects = s
	case config.BackendGCS:
		s, err := storage.NewGCSStorage(ctx)
		if err != nil {
			return nil, fmt.Errorf("gcs: %w", err)
		}
		st.objects = s
		st.closers = append(st.closers, func() { _ = s.Close() })
	default:
		s := storage.NewMemoryStorage()
		st.objects = s
		st.blobs = s
	}

	switch cfg.DocumentStore {
	case config.BackendPostgres:
		pool, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			st.close()
			return nil, fmt.Errorf("database connection failed: %w", err)
		}
		st.closers = append(st.closers, pool.Close)
		if err := db.Migrate(cfg.DatabaseURL); err != nil {
			st.close()
			return nil, fmt.Errorf("database migration failed: %w", err)
		}
		st.docs = docstore.NewPostgres(pool)
	case config.BackendFirestore:
		client, err := docstore.NewFirestoreClient(ctx, cfg.GCPProjectID)
		if err != nil {
			st.close()
			return nil, err
		}
		fs := docstore.NewFirestore(client, cfg.FirestoreCollection)
		st.closers = append(st.closers, func() { _ = fs.Close() })
		st.docs = fs
	default:
		st.docs = docstore.NewMemory()
	}

	return st, nil
}
