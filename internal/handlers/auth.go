package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/emilianoibarrat-bit/Fintal-Movil-3/internal/middleware"
	"github.com/emilianoibarrat-bit/Fintal-Movil-3/internal/models"
	"github.com/emilianoibarrat-bit/Fintal-Movil-3/internal/store"
)

type AuthHandler struct {
	repo *store.Repository
	log  *log.Logger
}

func NewAuthHandler(repo *store.Repository, log *log.Logger) *AuthHandler {
	return &AuthHandler{repo: repo, log: log}
}

type credentials struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates the demo session. Any credentials are accepted;
// the display name falls back to the email local part.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var creds credentials
	if !decodeJSON(w, r, &creds) {
		return
	}
	creds.Email = strings.TrimSpace(strings.ToLower(creds.Email))
	if creds.Email == "" {
		writeError(w, http.StatusBadRequest, "El correo no puede estar vacío")
		return
	}

	name := strings.TrimSpace(creds.Name)
	if name == "" {
		name = emailLocalPart(creds.Email)
	}
	h.completeAuth(w, fmt.Sprintf("¡Bienvenido, %s!", name), models.ProfileChanges{
		DisplayName: &name,
		Handle:      handleFromEmail(creds.Email),
	})
	h.log.Printf("login: %s", creds.Email)
}

// Signup registers the demo session with an explicit name.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var creds credentials
	if !decodeJSON(w, r, &creds) {
		return
	}
	creds.Email = strings.TrimSpace(strings.ToLower(creds.Email))
	name := strings.TrimSpace(creds.Name)
	if creds.Email == "" || name == "" {
		writeError(w, http.StatusBadRequest, "Nombre y correo no pueden estar vacíos")
		return
	}

	h.completeAuth(w, fmt.Sprintf("¡Bienvenido, %s!", name), models.ProfileChanges{
		DisplayName: &name,
		Handle:      handleFromEmail(creds.Email),
	})
	h.log.Printf("signup: %s", creds.Email)
}

// FaceID simulates the biometric login with a fixed verified identity.
func (h *AuthHandler) FaceID(w http.ResponseWriter, r *http.Request) {
	name := "Inversor Pro"
	handle := "@biometric_user"
	avatar := "https://i.pravatar.cc/150?u=faceid_verified"
	h.completeAuth(w, "¡Acceso concedido vía Face ID!", models.ProfileChanges{
		DisplayName: &name,
		Handle:      &handle,
		AvatarURL:   &avatar,
	})
	h.log.Printf("biometric login")
}

// completeAuth runs the shared tail of every auth flow: merge the
// profile, force the community landing view, issue the session cookie
// and greet the user.
func (h *AuthHandler) completeAuth(w http.ResponseWriter, greeting string, changes models.ProfileChanges) {
	profile := h.repo.Authenticate(changes)

	sessionID, expires := h.repo.CreateSession()
	http.SetCookie(w, &http.Cookie{
		Name:    middleware.SessionCookie,
		Value:   sessionID,
		Path:    "/",
		Expires: expires,
	})

	h.repo.Notifier().Notify(greeting, models.NotifySuccess)
	writeSuccess(w, map[string]any{
		"profile": profile,
		"view":    h.repo.CurrentView(),
	})
}

func emailLocalPart(email string) string {
	if i := strings.Index(email, "@"); i >= 0 {
		return email[:i]
	}
	return email
}

func handleFromEmail(email string) *string {
	handle := "@" + strings.ToLower(emailLocalPart(email))
	return &handle
}
