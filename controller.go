package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"strconv"

	"github.com/gorilla/mux"
)

// imageController обслуживает маршруты /images
type imageController struct {
	dir string   // Каталог с файлами изображений
	ids []string // Идентификаторы для списка
}

func newImageController(dir string, ids []string) *imageController {
	return &imageController{dir: dir, ids: ids}
}

// hostHandlerFunc обработчик, которому нужен хост запроса
type hostHandlerFunc func(w http.ResponseWriter, r *http.Request, host string)

// requireHost пропускает запрос дальше только при непустом Host.
// Без него запрос заканчивается так же, как если бы маршрут не совпал.
func requireHost(next hostHandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Host == "" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		next(w, r, r.Host)
	}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		WriteJSONError(w, http.StatusInternalServerError, "Error encoding response")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(bytes.TrimRight(buf.Bytes(), "\n"))
}

// imageID декодирует сегмент {id}; маршрутизатор сравнивает закодированный путь
func imageID(r *http.Request) (string, bool) {
	id, err := url.PathUnescape(mux.Vars(r)["id"])
	return id, err == nil
}

// handleIndex перенаправляет на список изображений
func handleIndex(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/images", http.StatusSeeOther)
}

// handleList отдает фиксированный список изображений
func (c *imageController) handleList(w http.ResponseWriter, r *http.Request, host string) {
	log.Println("[end]")
	writeJSON(w, NewWebImageList(c.ids, host).Response())
}

// handleDetail отдает описание одного изображения.
// Наличие файла не проверяется.
func (c *imageController) handleDetail(w http.ResponseWriter, r *http.Request, host string) {
	id, ok := imageID(r)
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	writeJSON(w, NewWebImage(id, host).Response())
}

// handleRaw отдает байты файла изображения.
// Любая ошибка открытия превращается в 404 с пустым телом.
func (c *imageController) handleRaw(w http.ResponseWriter, r *http.Request, host string) {
	id, ok := imageID(r)
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	path := NewWebImage(id, host).RawPath(c.dir)

	f, err := os.Open(path)
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || info.IsDir() {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	http.ServeContent(w, r, path, info.ModTime(), f)
}

// handleAdder складывает a и b
func handleAdder(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	a, errA := strconv.ParseInt(vars["a"], 10, 32)
	b, errB := strconv.ParseInt(vars["b"], 10, 32)
	if errA != nil || errB != nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintf(w, "%d + %d = %d", a, b, a+b)
}
