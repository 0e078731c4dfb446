package serverapp

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/Janiciete/to-do-list/internal/config"
	"github.com/Janiciete/to-do-list/internal/httpmw"
	"github.com/Janiciete/to-do-list/internal/storage"
	"github.com/Janiciete/to-do-list/internal/task"
	"github.com/Janiciete/to-do-list/internal/tasktype"
	staticfiles "github.com/Janiciete/to-do-list/static"
)

type Options struct {
	Config    *config.Config
	StaticDir string
	Logger    *log.Logger
}

// NewHandler wires storage, stores and HTTP routes. The returned close
// func releases the storage backend and is safe to call once.
func NewHandler(opts Options) (http.Handler, func() error, error) {
	if opts.Config == nil {
		return nil, nil, errors.New("config is required")
	}
	if strings.TrimSpace(opts.StaticDir) == "" {
		opts.StaticDir = "static"
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	cfg := opts.Config

	kv, closeKV, err := openKV(cfg)
	if err != nil {
		return nil, nil, err
	}

	registry := tasktype.NewRegistry(kv, opts.Logger)
	store := task.NewStore(kv, opts.Logger)

	taskHandler := task.NewHandler(store, registry)
	taskHandler.SetUrgentWindow(time.Duration(cfg.Tasks.UrgentWindowHours) * time.Hour)
	typeHandler := tasktype.NewHandler(registry)

	mux := http.NewServeMux()

	staticHandler := http.FileServer(http.FS(staticfiles.EmbeddedFS()))
	index := staticfiles.Index()
	if cfg.Server.DevStatic {
		staticHandler = http.FileServer(http.Dir(opts.StaticDir))
	}
	mux.Handle("/static/", http.StripPrefix("/static/", staticHandler))

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		if cfg.Server.DevStatic {
			http.ServeFile(w, r, filepath.Join(opts.StaticDir, "index.html"))
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(index)
	})

	mux.HandleFunc("/api/tasks", taskHandler.TasksRoot)
	mux.HandleFunc("/api/tasks/grouped", taskHandler.TasksGrouped)
	mux.HandleFunc("/api/tasks/", taskHandler.TasksSub)
	mux.HandleFunc("/api/calendar", taskHandler.Calendar)
	mux.HandleFunc("/api/tasktypes", typeHandler.Root)

	mux.HandleFunc("/api/config", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(cfg); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	})

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"ok":      true,
			"service": "to-do-list",
			"time":    time.Now().UTC().Format(time.RFC3339),
		})
	})

	mux.HandleFunc("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		if _, _, err := kv.Get(task.StorageKey); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]any{
				"ok":    false,
				"error": "task storage unavailable",
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"ok":      true,
			"service": "to-do-list",
			"time":    time.Now().UTC().Format(time.RFC3339),
		})
	})

	handler := httpmw.Chain(
		mux,
		httpmw.WithAccessLog(opts.Logger),
		httpmw.WithRequestID,
		httpmw.WithRecover(opts.Logger),
	)
	return handler, closeKV, nil
}

func openKV(cfg *config.Config) (storage.KV, func() error, error) {
	noop := func() error { return nil }
	switch cfg.Storage.Backend {
	case config.BackendSQLite:
		kv, err := storage.NewSQLiteKV(cfg.Storage.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return kv, kv.Close, nil
	case config.BackendFile, "":
		kv, err := storage.NewFileKV(cfg.Storage.DataDir)
		if err != nil {
			return nil, nil, err
		}
		return kv, noop, nil
	default:
		return nil, nil, errors.New("unknown storage backend: " + cfg.Storage.Backend)
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
