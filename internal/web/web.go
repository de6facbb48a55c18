// Package web отдает серверные HTML страницы: витрину платформы и дашборд.
package web

import (
	"context"
	"embed"
	"html/template"
	"net/http"

	"github.com/washify/marketplace-service/internal/service/stats"
)

//go:embed templates/*.html
var templatesFS embed.FS

// StatsService интерфейс сервиса статистики
type StatsService interface {
	Overview(ctx context.Context) (*stats.Overview, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Error(format string, v ...interface{})
}

// Handler обработчик HTML страниц
type Handler struct {
	stats     StatsService
	logger    Logger
	templates *template.Template
}

// NewHandler парсит встроенные шаблоны и создает обработчик
func NewHandler(statsService StatsService, logger Logger) (*Handler, error) {
	templates, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Handler{
		stats:     statsService,
		logger:    logger,
		templates: templates,
	}, nil
}

type pageData struct {
	Overview *stats.Overview
}

// Landing GET / витрина платформы с публичной статистикой
func (h *Handler) Landing(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "landing.html")
}

// Dashboard GET /dashboard сводка по платформе
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "dashboard.html")
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, name string) {
	overview, err := h.stats.Overview(r.Context())
	if err != nil {
		h.logger.Error("web: failed to load overview for %s: %v", name, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.templates.ExecuteTemplate(w, name, pageData{Overview: overview}); err != nil {
		h.logger.Error("web: failed to render %s: %v", name, err)
	}
}
