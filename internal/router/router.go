package router

import (
	"net/http"
	"strings"

	_ "pet-adoption/docs"
	"pet-adoption/internal/adapters/storage"
	"pet-adoption/internal/domain/adoptions"
	"pet-adoption/internal/domain/pets"
	"pet-adoption/internal/domain/reviews"
	"pet-adoption/internal/middleware"
	"pet-adoption/internal/platform/logger"
	"pet-adoption/internal/ports/media"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Opcional: si viene, usa SQL (sqlite/postgres). Si no, in-memory.
	DB *sqlx.DB

	// Opcional: repos ya construidos (tienen prioridad sobre DB).
	Repos *storage.Repos

	// Destino de las imágenes subidas. nil = uploads rechazados.
	Images media.ImageSaver

	// Si viene, sirve los archivos locales en ImagesURLPrefix/*.
	ImagesDir       string
	ImagesURLPrefix string

	Logger         logger.Logger
	MaxUploadBytes int64
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.EchoRequestID)
	r.Use(middleware.RequestLogging(log))
	r.Use(middleware.Recover(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	if opts.ImagesDir != "" {
		prefix := "/" + strings.Trim(opts.ImagesURLPrefix, "/")
		if prefix == "/" {
			prefix = "/images"
		}
		fs := http.StripPrefix(prefix+"/", http.FileServer(http.Dir(opts.ImagesDir)))
		r.Get(prefix+"/*", fs.ServeHTTP)
	}

	var repos storage.Repos
	if opts.Repos != nil {
		repos = *opts.Repos
	} else {
		repos = storage.New(opts.DB)
	}

	// Services por módulo
	petsSvc := pets.NewService(repos.Pets, opts.Images)
	reviewsSvc := reviews.NewService(repos.Reviews, opts.Images)
	adoptionsSvc := adoptions.NewService(repos.Adoptions)

	// Rutas por módulo
	pets.RegisterRoutes(r, petsSvc, pets.HandlerOptions{Logger: log, MaxUploadBytes: opts.MaxUploadBytes})
	reviews.RegisterRoutes(r, reviewsSvc, log, opts.MaxUploadBytes)
	adoptions.RegisterRoutes(r, adoptionsSvc, log)

	return r
}
