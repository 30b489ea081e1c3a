package main

import (
	"net/http"

	"github.com/gorilla/mux"
)

const intPattern = "[-+]?[0-9]+"

func setupRouter(cfg Config) *mux.Router {
	images := newImageController(cfg.ImageDir, exampleIDs)

	r := mux.NewRouter().UseEncodedPath()
	r.HandleFunc("/", handleIndex).Methods("GET", "HEAD")
	r.HandleFunc("/images", requireHost(images.handleList)).Methods("GET", "HEAD")
	r.HandleFunc("/images/{id}", requireHost(images.handleDetail)).Methods("GET", "HEAD")
	r.HandleFunc("/images/{id}/raw", requireHost(images.handleRaw)).Methods("GET", "HEAD")
	r.HandleFunc("/example/adder", handleAdder).
		Queries("a", "{a:"+intPattern+"}", "b", "{b:"+intPattern+"}").
		Methods("GET", "HEAD")
	return r
}

// setupHandler оборачивает маршрутизатор в журнал и, если задано, ограничение частоты
func setupHandler(cfg Config) http.Handler {
	var h http.Handler = setupRouter(cfg)
	if cfg.RateLimit > 0 {
		h = newIPRateLimiter(cfg.RateLimit, cfg.RateBurst).Middleware(h)
	}
	return loggingMiddleware(h)
}
