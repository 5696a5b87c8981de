package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/sy4k1/gla-it-project/internal/logger"
	"github.com/sy4k1/gla-it-project/internal/mailer"
	"github.com/sy4k1/gla-it-project/internal/models"
	"github.com/sy4k1/gla-it-project/internal/services"
)

type AccountHandler struct {
	credentials   *services.CredentialService
	sessions      *services.SessionService
	graph         *services.GraphService
	notifications *services.NotificationService
	mailer        mailer.Mailer
}

func NewAccountHandler(
	credentials *services.CredentialService,
	sessions *services.SessionService,
	graph *services.GraphService,
	notifications *services.NotificationService,
	m mailer.Mailer,
) *AccountHandler {
	return &AccountHandler{
		credentials:   credentials,
		sessions:      sessions,
		graph:         graph,
		notifications: notifications,
		mailer:        m,
	}
}

// Query returns a profile either for the caller (by token) or for another
// account (by id). The token wins when both are present.
func (h *AccountHandler) Query(c *gin.Context) {
	var req struct {
		AccessToken *string `json:"access_token"`
		ID          *uint   `json:"id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFailed(c, "Invalid JSON!")
		return
	}

	if req.AccessToken == nil && req.ID == nil {
		respondFailed(c, "Access token and ID are missing!")
		return
	}

	if req.AccessToken == nil {
		account, err := h.credentials.GetAccount(*req.ID)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		h.respondProfile(c, account, nil)
		return
	}

	session, err := h.sessions.Resolve(c.Request.Context(), *req.AccessToken)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	h.respondProfile(c, session.Account, nil)
}

func (h *AccountHandler) Login(c *gin.Context) {
	var req struct {
		Email    *string `json:"email"`
		Password *string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFailed(c, "Invalid JSON!")
		return
	}

	var missing []string
	if req.Email == nil {
		missing = append(missing, "email")
	}
	if req.Password == nil {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		respondMissingFields(c, missing)
		return
	}

	account, err := h.credentials.Authenticate(*req.Email, *req.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	token, err := h.credentials.IssueToken(c.Request.Context(), account.Email)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	h.respondProfile(c, account, token)
}

func (h *AccountHandler) Logout(c *gin.Context) {
	var req struct {
		AccessToken *string `json:"access_token"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFailed(c, "Invalid JSON!")
		return
	}

	if req.AccessToken == nil {
		respondFailed(c, "Access token is missing!")
		return
	}

	if err := h.credentials.RevokeToken(c.Request.Context(), *req.AccessToken); err != nil {
		respondServiceError(c, err)
		return
	}

	respondSuccess(c, nil)
}

// Signup validates the passcode, creates the account, issues a token and
// only then discards the passcode row.
func (h *AccountHandler) Signup(c *gin.Context) {
	var req struct {
		Name     *string `json:"name"`
		Email    *string `json:"email"`
		Password *string `json:"password"`
		Passcode *string `json:"passcode"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFailed(c, "Invalid JSON!")
		return
	}

	var missing []string
	if req.Name == nil {
		missing = append(missing, "name")
	}
	if req.Email == nil {
		missing = append(missing, "email")
	}
	if req.Password == nil {
		missing = append(missing, "password")
	}
	if req.Passcode == nil {
		missing = append(missing, "passcode")
	}
	if len(missing) > 0 {
		respondMissingFields(c, missing)
		return
	}

	passcode, err := h.credentials.ConsumePasscode(*req.Email, *req.Passcode)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	account, err := h.credentials.CreateAccount(*req.Name, *req.Email, *req.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	token, err := h.credentials.IssueToken(c.Request.Context(), account.Email)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if err := h.credentials.DiscardPasscode(passcode); err != nil {
		logger.Log.Warnw("failed to discard consumed passcode", "email", account.Email, "error", err)
	}

	respondSuccess(c, accountData(account, 0, 0, 0, token))
}

// SendPasscode issues a passcode, hands it to the mailer fire-and-forget,
// and returns it in the envelope.
func (h *AccountHandler) SendPasscode(c *gin.Context) {
	var req struct {
		Email *string `json:"email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFailed(c, "Invalid JSON!")
		return
	}

	if req.Email == nil {
		respondFailed(c, "Email address is missing!")
		return
	}

	code, err := h.credentials.IssuePasscode(*req.Email)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	email := *req.Email
	go func() {
		if err := h.mailer.SendPasscode(email, code); err != nil {
			logger.Log.Errorw("passcode delivery failed", "email", email, "error", err)
		}
	}()

	respondSuccess(c, code)
}

func (h *AccountHandler) QueryFollowStatus(c *gin.Context) {
	var req struct {
		AccessToken *string `json:"access_token"`
		Email       *string `json:"email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFailed(c, "Invalid JSON!")
		return
	}

	if req.AccessToken == nil || req.Email == nil {
		respondFailed(c, "Access token or email address is missing!")
		return
	}

	email, err := h.sessions.ResolveEmail(c.Request.Context(), *req.AccessToken)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	status, err := h.graph.FollowStatus(email, *req.Email)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondSuccess(c, status)
}

// Follow toggles the follow edge towards the target email and returns the
// new state.
func (h *AccountHandler) Follow(c *gin.Context) {
	var req struct {
		AccessToken *string `json:"access_token"`
		Email       *string `json:"email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFailed(c, "Invalid JSON!")
		return
	}

	if req.AccessToken == nil || req.Email == nil {
		respondFailed(c, "Access token or ID is missing!")
		return
	}

	session, err := h.sessions.Resolve(c.Request.Context(), *req.AccessToken)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	following, err := h.graph.FollowToggle(session.Account, *req.Email)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondSuccess(c, following)
}

func (h *AccountHandler) QueryNotification(c *gin.Context) {
	var req struct {
		AccessToken *string `json:"access_token"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFailed(c, "Invalid JSON!")
		return
	}

	if req.AccessToken == nil {
		respondFailed(c, "Access token is missing!")
		return
	}

	session, err := h.sessions.Resolve(c.Request.Context(), *req.AccessToken)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	summary, err := h.notifications.Unread(session.Account.Email)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondSuccess(c, gin.H{
		"comments":  commentListData(summary.Comments),
		"likes":     likeListData(summary.Likes),
		"followers": followerListData(summary.Followers),
	})
}

// ReadNotification marks one notification row read. Any authenticated
// caller may mark any id; re-marking a read row succeeds.
func (h *AccountHandler) ReadNotification(c *gin.Context) {
	var req struct {
		AccessToken *string `json:"access_token"`
		ID          *uint   `json:"id"`
		Type        *string `json:"type"`
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
	if req.Type == nil {
		missing = append(missing, "type")
	}
	if len(missing) > 0 {
		respondMissingFields(c, missing)
		return
	}

	if _, err := h.sessions.ResolveEmail(c.Request.Context(), *req.AccessToken); err != nil {
		respondServiceError(c, err)
		return
	}

	if err := h.notifications.MarkRead(*req.Type, *req.ID); err != nil {
		if errors.Is(err, services.ErrNotificationNotFound) {
			respondReadNotFound(c, *req.Type)
			return
		}
		respondServiceError(c, err)
		return
	}

	respondSuccess(c, true)
}

func respondReadNotFound(c *gin.Context, kind string) {
	switch kind {
	case services.ReadKindComments:
		respondFailed(c, "Comment does not exist!")
	case services.ReadKindLikes:
		respondFailed(c, "Like record does not exist!")
	default:
		respondFailed(c, "Follower record does not exist!")
	}
}

// respondProfile attaches follower and received-like counts to the profile
// payload. The following count is always 0; nothing computes it.
func (h *AccountHandler) respondProfile(c *gin.Context, account *models.Account, token interface{}) {
	followers, likes, err := h.graph.ProfileCounts(account.Email)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondSuccess(c, accountData(account, followers, 0, likes, token))
}
