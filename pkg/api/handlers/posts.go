package handlers

import (
	"net/http"
	"net/url"

	"postsdb/pkg/httpx"
	"postsdb/pkg/logger"
	"postsdb/pkg/store"
	"postsdb/pkg/utils"
	"postsdb/pkg/validation"
)

// Posts holds the per-action handlers. Each handler is stateless per
// request: it runs its validators in order, touches the shared store once,
// and performs exactly one response write. The first failing validator
// short-circuits before any store access.
type Posts struct {
	store *store.Store
}

// NewPosts returns handlers bound to the given store.
func NewPosts(st *store.Store) *Posts {
	return &Posts{store: st}
}

// List handles posts.list: all visible posts, most recent first.
func (p *Posts) List(w httpx.ResponseWriter, _ url.Values) {
	_ = utils.JSONWrite(w, http.StatusOK, p.store.ListActive())
}

// GetByID handles posts.getById: a single visible post.
func (p *Posts) GetByID(w httpx.ResponseWriter, q url.Values) {
	id, err := validation.RequireID(q)
	if err != nil {
		utils.WriteErr(w, err)
		return
	}
	post, err := p.store.Get(id)
	if err != nil {
		utils.WriteErr(w, err)
		return
	}
	_ = utils.JSONWrite(w, http.StatusOK, post)
}

// Create handles posts.create: allocates the next id and inserts the post
// at the front of the order. A rejected request allocates nothing.
func (p *Posts) Create(w httpx.ResponseWriter, q url.Values) {
	content, err := validation.RequireContent(q)
	if err != nil {
		utils.WriteErr(w, err)
		return
	}
	post := p.store.Create(content)
	logger.Info("post_created", "id", post.ID)
	_ = utils.JSONWrite(w, http.StatusOK, post)
}

// Edit handles posts.edit: replaces the content of a visible post in place.
// The id is validated before the content; both before any store access.
func (p *Posts) Edit(w httpx.ResponseWriter, q url.Values) {
	id, err := validation.RequireID(q)
	if err != nil {
		utils.WriteErr(w, err)
		return
	}
	content, err := validation.RequireContent(q)
	if err != nil {
		utils.WriteErr(w, err)
		return
	}
	post, err := p.store.Edit(id, content)
	if err != nil {
		utils.WriteErr(w, err)
		return
	}
	logger.Info("post_edited", "id", post.ID)
	_ = utils.JSONWrite(w, http.StatusOK, post)
}

// Delete handles posts.delete: soft-deletes a visible post and returns it
// with removed=true. Deleting the same id again is not-found.
func (p *Posts) Delete(w httpx.ResponseWriter, q url.Values) {
	id, err := validation.RequireID(q)
	if err != nil {
		utils.WriteErr(w, err)
		return
	}
	post, err := p.store.Delete(id)
	if err != nil {
		utils.WriteErr(w, err)
		return
	}
	logger.Info("post_deleted", "id", post.ID)
	_ = utils.JSONWrite(w, http.StatusOK, post)
}
