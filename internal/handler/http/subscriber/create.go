// Package subscriber provides the HTTP surface for recipient management:
// user registration, category subscriptions, and channel preferences.
package subscriber

import (
	"encoding/json"
	"errors"
	"net/http"

	"notify-hub/internal/domain/entity"
	"notify-hub/internal/handler/http/respond"
	subUC "notify-hub/internal/usecase/subscriber"
)

type CreateHandler struct{ Svc *subUC.Service }

// ServeHTTP ユーザー登録
// @Summary      ユーザー登録
// @Description  通知の受信者を登録します。メールアドレスは一意である必要があります。
// @Tags         users
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body createRequest true "ユーザー情報"
// @Success      201 {object} DTO "登録されたユーザー"
// @Failure      400 {string} string "Bad request - invalid input"
// @Failure      409 {string} string "Conflict - email already exists"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /users [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	user, err := h.Svc.Create(r.Context(), subUC.CreateInput{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		code := http.StatusInternalServerError
		switch {
		case errors.Is(err, subUC.ErrEmailTaken):
			code = http.StatusConflict
		case entity.IsValidation(err):
			code = http.StatusBadRequest
		}
		respond.SafeError(w, code, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toDTO(user))
}

type createRequest struct {
	Name  string `json:"name" example:"Alice"`
	Email string `json:"email" example:"alice@example.com"`
	Phone string `json:"phone,omitempty" example:"+81-90-1234-5678"`
}
