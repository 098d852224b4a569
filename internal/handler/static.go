package handler

import (
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
)

// StaticSite serves a built single-page app: files under assets/ as-is and
// index.html for every other path so client-side routing can take over.
type StaticSite struct {
	Dir string
}

// DetectStaticSite reports the site under dir, or nil when dir/assets is
// missing. Checked once at startup.
func DetectStaticSite(dir string) *StaticSite {
	if dir == "" {
		return nil
	}
	info, err := os.Stat(filepath.Join(dir, "assets"))
	if err != nil || !info.IsDir() {
		return nil
	}
	return &StaticSite{Dir: dir}
}

// Mount registers the asset file server and the index fallback on r.
func (s *StaticSite) Mount(r chi.Router) {
	assets := http.StripPrefix("/assets/", http.FileServer(http.Dir(filepath.Join(s.Dir, "assets"))))
	r.Handle("/assets/*", assets)
	r.Get("/*", s.Index)
}

// Index writes index.html for any path, /index.html included. ServeFile
// would redirect that one to "/".
func (s *StaticSite) Index(w http.ResponseWriter, r *http.Request) {
	f, err := os.Open(filepath.Join(s.Dir, "index.html"))
	if err != nil {
		log.Println("❌ Error opening index.html:", err)
		http.NotFound(w, r)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	http.ServeContent(w, r, "index.html", info.ModTime(), f)
}

// LogMode prints which mode the service runs in.
func LogMode(site *StaticSite, dir string) {
	if site == nil {
		log.Printf("⚠️ Static directory %s not found - API only mode", dir)
		return
	}
	log.Println("Serving static frontend from", site.Dir)
}
