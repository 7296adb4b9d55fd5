package handler

import (
	"net/http"

	"daybook/internal/service"
)

// RegisterRoutes sets up all HTTP routes on the given mux.
func RegisterRoutes(mux *http.ServeMux, auth *service.AuthService, journal *service.JournalService, cookieSecure bool) {
	authHandler := NewAuthHandler(auth, cookieSecure)
	journalHandler := NewJournalHandler(journal)

	mux.HandleFunc("GET /healthz", HandleHealthz)

	mux.HandleFunc("POST /api/auth/register", authHandler.HandleRegister)
	mux.HandleFunc("POST /api/auth/login", authHandler.HandleLogin)
	mux.HandleFunc("POST /api/auth/logout", authHandler.HandleLogout)
	mux.Handle("GET /api/auth/me", OptionalAuth(auth, http.HandlerFunc(authHandler.HandleMe)))

	mux.Handle("GET /api/journal/entries", RequireAuth(auth, http.HandlerFunc(journalHandler.HandleList)))
	mux.Handle("POST /api/journal/entries", RequireAuth(auth, http.HandlerFunc(journalHandler.HandleCreate)))
	mux.Handle("GET /api/journal/entries/{id}", RequireAuth(auth, http.HandlerFunc(journalHandler.HandleGet)))
	mux.Handle("PUT /api/journal/entries/{id}", RequireAuth(auth, http.HandlerFunc(journalHandler.HandleUpdate)))
	mux.Handle("DELETE /api/journal/entries/{id}", RequireAuth(auth, http.HandlerFunc(journalHandler.HandleDelete)))
	mux.Handle("GET /api/journal/moods", RequireAuth(auth, http.HandlerFunc(journalHandler.HandleMoods)))
	mux.Handle("GET /api/journal/saving", RequireAuth(auth, http.HandlerFunc(journalHandler.HandleSaving)))
}
