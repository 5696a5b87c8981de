package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sy4k1/gla-it-project/internal/handlers"
)

func APIEndpoints(r *gin.Engine, accountH *handlers.AccountHandler, postH *handlers.PostHandler) {
	// Account endpoints
	account := r.Group("/api/account")
	{
		account.POST("/query", accountH.Query)
		account.POST("/login", accountH.Login)
		account.POST("/logout", accountH.Logout)
		account.POST("/signup", accountH.Signup)
		account.POST("/send_passcode", accountH.SendPasscode)
		account.POST("/query_follow_status", accountH.QueryFollowStatus)
		account.POST("/follow", accountH.Follow)
		account.POST("/query_notification", accountH.QueryNotification)
		account.POST("/read_notification", accountH.ReadNotification)
	}

	// Post endpoints
	post := r.Group("/api/post")
	{
		post.POST("/query", postH.Query)
		post.POST("/publish", postH.Publish)
		post.POST("/query_comments", postH.QueryComments)
		post.POST("/query_like_status", postH.QueryLikeStatus)
		post.POST("/like", postH.Like)
		post.POST("/comment", postH.Comment)
		post.POST("/delete", postH.Delete)
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
