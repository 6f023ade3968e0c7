package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"campus-market/internal/dto/request"
	"campus-market/internal/dto/response"
	"campus-market/internal/usecase"
	"campus-market/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log.With(zap.String("handler", "auth")),
	}
}

// UniversityAuth handles POST /auth/university
func (h *AuthHandler) UniversityAuth(w http.ResponseWriter, r *http.Request) {
	var req request.UniversityAuthRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	resp, err := h.service.UniversityAuth(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "university auth")
		return
	}

	utils.ResponseOK(w, resp)
}

// Register handles POST /register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	resp, err := h.service.Register(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "register")
		return
	}

	utils.ResponseOK(w, resp)
}

// Login handles POST /login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	resp, err := h.service.Login(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "login")
		return
	}

	utils.ResponseOK(w, resp)
}

// Me handles GET /me. The bearer token is optional: no token or a bad one
// reports logged-out with 200.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	token := ""
	if auth := r.Header.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		token = strings.TrimPrefix(auth, "Bearer ")
	}

	resp, err := h.service.Me(r.Context(), token)
	if err != nil {
		handleServiceError(w, h.log, err, "introspect session")
		return
	}

	utils.ResponseOK(w, resp)
}

// Logout handles POST /logout. Tokens are stateless, so there is no
// server-side session to invalidate.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	utils.ResponseOK(w, response.SuccessResponse{Success: true})
}
