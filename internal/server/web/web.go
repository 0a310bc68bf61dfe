// Package web отдает встроенную страницу просмотра визиток.
package web

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static/*
var staticFiles embed.FS

// Register добавляет в mux GET / (index.html) и GET /static/* (ресурсы)
func Register(mux *http.ServeMux) {
	assets, err := fs.Sub(staticFiles, "static")
	if err != nil {
		// static/ встроен при сборке
		panic(err)
	}

	mux.HandleFunc("GET /{$}", serveIndex)
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(assets)))
}

// serveIndex отдает встроенный index.html
func serveIndex(w http.ResponseWriter, r *http.Request) {
	data, err := staticFiles.ReadFile("static/index.html")
	if err != nil {
		http.Error(w, "index.html not found", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	_, _ = w.Write(data)
}
