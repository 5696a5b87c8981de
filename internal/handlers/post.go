package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/sy4k1/gla-it-project/internal/services"
)

type PostHandler struct {
	content  *services.ContentService
	sessions *services.SessionService
	graph    *services.GraphService
}

func NewPostHandler(content *services.ContentService, sessions *services.SessionService, graph *services.GraphService) *PostHandler {
	return &PostHandler{content: content, sessions: sessions, graph: graph}
}

// Query lists posts for a filter token. publish and like filters select by
// the given email; the rest need no authentication at all.
func (h *PostHandler) Query(c *gin.Context) {
	var req struct {
		Type  *string `json:"type"`
		Email *string `json:"email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFailed(c, "Invalid JSON!")
		return
	}

	if req.Type == nil {
		respondFailed(c, "Invalid type!")
		return
	}

	queryType := *req.Type
	email := ""
	if queryType == "publish" || queryType == "like" {
		if req.Email == nil {
			respondFailed(c, "Invalid email address!")
			return
		}
		email = *req.Email
	}

	posts, err := h.content.QueryPosts(queryType, email)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondSuccess(c, postListData(posts))
}

func (h *PostHandler) Publish(c *gin.Context) {
	var req struct {
		AccessToken *string `json:"access_token"`
		Title       *string `json:"title"`
		Content     *string `json:"content"`
		Channel     *string `json:"channel"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFailed(c, "Invalid JSON!")
		return
	}

	var missing []string
	if req.AccessToken == nil {
		missing = append(missing, "access_token")
	}
	if req.Title == nil {
		missing = append(missing, "title")
	}
	if req.Content == nil {
		missing = append(missing, "content")
	}
	if req.Channel == nil {
		missing = append(missing, "channel")
	}
	if len(missing) > 0 {
		respondMissingFields(c, missing)
		return
	}

	session, err := h.sessions.Resolve(c.Request.Context(), *req.AccessToken)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if _, err := h.content.CreatePost(session.Account, *req.Title, *req.Content, *req.Channel); err != nil {
		respondServiceError(c, err)
		return
	}

	respondSuccess(c, nil)
}

func (h *PostHandler) QueryComments(c *gin.Context) {
	var req struct {
		ID *uint `json:"id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFailed(c, "Invalid JSON!")
		return
	}

	if req.ID == nil {
		respondFailed(c, "Invalid ID!")
		return
	}

	views, err := h.content.QueryComments(*req.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondSuccess(c, commentListData(views))
}

func (h *PostHandler) QueryLikeStatus(c *gin.Context) {
	var req struct {
		AccessToken *string `json:"access_token"`
		ID          *uint   `json:"id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFailed(c, "Invalid JSON!")
		return
	}

	var missing []string
	if req.AccessToken == nil {
		missing = append(missing, "access_token")
	}
	if req.ID == nil {
		missing = append(missing, "id")
	}
	if len(missing) > 0 {
		respondMissingFields(c, missing)
		return
	}

	email, err := h.sessions.ResolveEmail(c.Request.Context(), *req.AccessToken)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	liked, err := h.graph.LikeStatus(email, *req.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondSuccess(c, liked)
}

// Like toggles the caller's like on a post and returns the new state.
func (h *PostHandler) Like(c *gin.Context) {
	var req struct {
		AccessToken *string `json:"access_token"`
		ID          *uint   `json:"id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFailed(c, "Invalid JSON!")
		return
	}

	var missing []string
	if req.AccessToken == nil {
		missing = append(missing, "access_token")
	}
	if req.ID == nil {
		missing = append(missing, "id")
	}
	if len(missing) > 0 {
		respondMissingFields(c, missing)
		return
	}

	session, err := h.sessions.Resolve(c.Request.Context(), *req.AccessToken)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	liked, err := h.graph.LikeToggle(session.Account, *req.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondSuccess(c, liked)
}

// Comment adds a comment and answers with a one-element comment array, the
// same shape query_comments uses.
func (h *PostHandler) Comment(c *gin.Context) {
	var req struct {
		AccessToken *string `json:"access_token"`
		ID          *uint   `json:"id"`
		Comment     *string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFailed(c, "Invalid JSON!")
		return
	}

	var missing []string
	if req.AccessToken == nil {
		missing = append(missing, "access_token")
	}
	if req.ID == nil {
		missing = append(missing, "id")
	}
	if req.Comment == nil {
		missing = append(missing, "comment")
	}
	if len(missing) > 0 {
		respondMissingFields(c, missing)
		return
	}

	session, err := h.sessions.Resolve(c.Request.Context(), *req.AccessToken)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	view, err := h.content.AddComment(session.Account, *req.ID, *req.Comment)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondSuccess(c, []gin.H{commentData(view)})
}

// Delete removes an owned post and everything attached to it. A non-owner
// gets the same "Invalid ID!" a missing post would.
func (h *PostHandler) Delete(c *gin.Context) {
	var req struct {
		AccessToken *string `json:"access_token"`
		ID          *uint   `json:"id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFailed(c, "Invalid JSON!")
		return
	}

	var missing []string
	if req.AccessToken == nil {
		missing = append(missing, "access_token")
	}
	if req.ID == nil {
		missing = append(missing, "id")
	}
	if len(missing) > 0 {
		respondMissingFields(c, missing)
		return
	}

	email, err := h.sessions.ResolveEmail(c.Request.Context(), *req.AccessToken)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if err := h.content.DeletePost(email, *req.ID); err != nil {
		respondServiceError(c, err)
		return
	}

	respondSuccess(c, true)
}
