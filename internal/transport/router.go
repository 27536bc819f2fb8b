package transport

import (
	"net/http"

	"docmeister/internal/service"
	"docmeister/pkg/appError"
)

type Handler struct {
	authService service.AuthService
	docService  service.DocService
}

func NewHandler(authService service.AuthService, docService service.DocService) *Handler {
	return &Handler{
		authService: authService,
		docService:  docService,
	}
}

func (h *Handler) InitRouter() *http.ServeMux {
	mux := http.NewServeMux()

	authHandler := NewAuthHandler(h.authService)

	mux.HandleFunc("/api/signup", authHandler.Signup)
	mux.HandleFunc("/api/login", authHandler.Login)
	mux.HandleFunc("/api/refresh", authHandler.Refresh)

	docHandler := NewDocHandler(h.docService)
	protect := requireIdentity(h.authService)

	mux.HandleFunc("/api/upload", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, appError.MethodNotAllowed())
			return
		}
		protect(docHandler.Upload)(w, r)
	})
	mux.HandleFunc("/api/list", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, appError.MethodNotAllowed())
			return
		}
		protect(docHandler.List)(w, r)
	})
	mux.HandleFunc("/api/update/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			writeError(w, appError.MethodNotAllowed())
			return
		}
		protect(docHandler.Update)(w, r)
	})
	mux.HandleFunc("/api/delete/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			writeError(w, appError.MethodNotAllowed())
			return
		}
		protect(docHandler.Delete)(w, r)
	})

	return mux
}
