package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
)

// StaticHandler отдает файлы из базовой директории без преобразований
type StaticHandler struct {
	StaticDir string
	IndexFile string
	root      http.FileSystem
}

// NewStaticHandler создает обработчик статических файлов.
// http.Dir очищает путь и не позволяет выйти за пределы staticDir.
func NewStaticHandler(staticDir, indexFile string) *StaticHandler {
	return &StaticHandler{
		StaticDir: staticDir,
		IndexFile: indexFile,
		root:      http.Dir(staticDir),
	}
}

// IndexHandler отдает документ по умолчанию для "/"
func (h *StaticHandler) IndexHandler(w http.ResponseWriter, r *http.Request) {
	h.serveFile(w, r, h.IndexFile)
}

// FileHandler отдает файл по относительному пути из URL
func (h *StaticHandler) FileHandler(w http.ResponseWriter, r *http.Request) {
	name, ok := mux.Vars(r)["path"]
	if !ok {
		name = strings.TrimPrefix(r.URL.Path, "/")
	}
	h.serveFile(w, r, name)
}

func (h *StaticHandler) serveFile(w http.ResponseWriter, r *http.Request, name string) {
	f, err := h.root.Open("/" + name)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		log.Printf("StaticHandler: ошибка чтения %s: %v", name, err)
		http.NotFound(w, r)
		return
	}
	if info.IsDir() {
		http.NotFound(w, r)
		return
	}

	// Тип содержимого определяется по расширению, затем по первым байтам
	http.ServeContent(w, r, info.Name(), info.ModTime(), f)
}
