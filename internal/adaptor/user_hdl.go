package adaptor

import (
	"encoding/json"
	"net/http"

	"campus-market/internal/dto/request"
	"campus-market/internal/usecase"
	"campus-market/pkg/utils"

	"go.uber.org/zap"
)

const maxUploadMemory = 32 << 20 // 32 MB

type UserHandler struct {
	service usecase.UserService
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log.With(zap.String("handler", "user")),
	}
}

// UpdateMe handles PUT /me
func (h *UserHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	resp, err := h.service.UpdateProfile(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update profile")
		return
	}

	utils.ResponseOK(w, resp)
}

// UploadAvatar handles POST /me/avatar with file field "avatar"
func (h *UserHandler) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		utils.ResponseBadRequest(w, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("avatar")
	if err != nil {
		utils.ResponseBadRequest(w, "An avatar file is required")
		return
	}
	file.Close()

	resp, err := h.service.UploadAvatar(r.Context(), userID, header)
	if err != nil {
		handleServiceError(w, h.log, err, "upload avatar")
		return
	}

	utils.ResponseOK(w, resp)
}
