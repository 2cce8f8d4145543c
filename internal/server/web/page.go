package web

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/dmitrijs2005/registre/internal/server/models"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.New("").
	Funcs(template.FuncMap{
		"roleOrMember": roleOrMember,
		"frDate":       frDate,
	}).ParseFS(templateFS, "templates/*.html"))

const (
	alertSaveFailed = "Erreur lors de l'enregistrement"
	msgNamesMissing = "Veuillez saisir un prénom et un nom."
)

type pageData struct {
	Records   []models.Record
	FirstName string
	LastName  string
	Error     string
	Alert     string
}

func (p pageData) Count() int { return len(p.Records) }

func roleOrMember(role string) string {
	if role == "" {
		return "Membre"
	}
	return role
}

// frDate renders a date the way fr-FR locales do (dd/mm/yyyy).
func frDate(t time.Time) string {
	return t.Format("02/01/2006")
}

func (s *HTTPServer) renderPage(w http.ResponseWriter, r *http.Request, status int, data pageData) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, "index", data); err != nil {
		requestLogger(r, s.logger).Error(r.Context(), "template execution failed", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
