// Package catalog exposes the read-only category and channel catalogs.
package catalog

import (
	"net/http"

	"notify-hub/internal/handler/http/respond"
	catUC "notify-hub/internal/usecase/catalog"
)

// CategoryDTO represents a topic category in API responses.
type CategoryDTO struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

// ChannelDTO represents a delivery channel in API responses.
type ChannelDTO struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

type CategoriesHandler struct{ Svc *catUC.Service }

// ServeHTTP カテゴリ一覧取得
// @Summary      カテゴリ一覧取得
// @Description  購読可能な通知カテゴリの一覧を返します
// @Tags         catalog
// @Security     BearerAuth
// @Produce      json
// @Success      200 {array} CategoryDTO "カテゴリ一覧"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /categories [get]
func (h CategoriesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Svc.ListCategories(r.Context())
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	out := make([]CategoryDTO, 0, len(categories))
	for _, c := range categories {
		out = append(out, CategoryDTO{ID: c.ID, Name: c.Name, Active: c.Active})
	}
	respond.JSON(w, http.StatusOK, out)
}

type ChannelsHandler struct{ Svc *catUC.Service }

// ServeHTTP チャネル一覧取得
// @Summary      チャネル一覧取得
// @Description  利用可能な配信チャネル（SMS / Email / Push）の一覧を返します
// @Tags         catalog
// @Security     BearerAuth
// @Produce      json
// @Success      200 {array} ChannelDTO "チャネル一覧"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /channels [get]
func (h ChannelsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	channels, err := h.Svc.ListChannels(r.Context())
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	out := make([]ChannelDTO, 0, len(channels))
	for _, c := range channels {
		out = append(out, ChannelDTO{ID: c.ID, Name: c.Name, Active: c.Active})
	}
	respond.JSON(w, http.StatusOK, out)
}
