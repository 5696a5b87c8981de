package handlers_test

import (
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sy4k1/gla-it-project/internal/models"
)

func TestAccountQuery(t *testing.T) {
	r, db := newTestServer(t)
	account := seedHTTPAccount(t, db, "alice", "alice@example.com")

	envelope := postJSON(t, r, "/api/account/query", gin.H{"id": account.ID})
	require.EqualValues(t, 1, envelope["code"])
	data := envelope["data"].(map[string]interface{})
	assert.EqualValues(t, account.ID, data["id"])
	assert.Equal(t, "alice", data["name"])
	assert.Nil(t, data["access_token"])
	assert.EqualValues(t, 0, data["followers"])

	envelope = postJSON(t, r, "/api/account/query", gin.H{})
	assert.EqualValues(t, 0, envelope["code"])
	assert.Equal(t, "Access token and ID are missing!", envelope["message"])

	envelope = postJSON(t, r, "/api/account/query", gin.H{"id": 999})
	assert.EqualValues(t, 0, envelope["code"])
	assert.Equal(t, "Account does not exist!", envelope["message"])
}

func TestLoginAndLogout(t *testing.T) {
	r, db := newTestServer(t)
	seedHTTPAccount(t, db, "alice", "alice@example.com")

	envelope := postJSON(t, r, "/api/account/login", gin.H{"email": "alice@example.com", "password": "wrong"})
	assert.EqualValues(t, 0, envelope["code"])
	assert.Equal(t, "Account does not exist!", envelope["message"])

	envelope = postJSON(t, r, "/api/account/login", gin.H{"email": "alice@example.com"})
	assert.EqualValues(t, 0, envelope["code"])
	assert.Equal(t, "Missing fields: password!", envelope["message"])

	token := loginFor(t, r, "alice@example.com")
	assert.Len(t, token, 32)

	envelope = postJSON(t, r, "/api/account/logout", gin.H{"access_token": token})
	assert.EqualValues(t, 1, envelope["code"])

	envelope = postJSON(t, r, "/api/account/logout", gin.H{"access_token": token})
	assert.EqualValues(t, 0, envelope["code"])
	assert.Equal(t, "Invalid access token!", envelope["message"])
}

func TestSignupFlow(t *testing.T) {
	r, db := newTestServer(t)

	envelope := postJSON(t, r, "/api/account/send_passcode", gin.H{"email": "new@example.com"})
	require.EqualValues(t, 1, envelope["code"])
	code := envelope["data"].(string)
	require.Len(t, code, 6)

	envelope = postJSON(t, r, "/api/account/signup", gin.H{
		"name":     "newbie",
		"email":    "new@example.com",
		"password": "admin123",
		"passcode": code,
	})
	require.EqualValues(t, 1, envelope["code"])
	data := envelope["data"].(map[string]interface{})
	assert.Equal(t, "newbie", data["name"])
	assert.NotEmpty(t, data["access_token"])

	// exactly one token and no passcode left for the email
	var n int64
	require.NoError(t, db.Model(&models.AccessToken{}).Where("account_email = ?", "new@example.com").Count(&n).Error)
	assert.EqualValues(t, 1, n)
	require.NoError(t, db.Model(&models.Passcode{}).Where("account_email = ?", "new@example.com").Count(&n).Error)
	assert.EqualValues(t, 0, n)

	// the consumed passcode cannot be replayed
	envelope = postJSON(t, r, "/api/account/signup", gin.H{
		"name":     "imposter",
		"email":    "new@example.com",
		"password": "admin123",
		"passcode": code,
	})
	assert.EqualValues(t, 0, envelope["code"])
	assert.Equal(t, "Invalid passcode!", envelope["message"])
}

func TestSignupExpiredPasscode(t *testing.T) {
	r, db := newTestServer(t)

	envelope := postJSON(t, r, "/api/account/send_passcode", gin.H{"email": "late@example.com"})
	require.EqualValues(t, 1, envelope["code"])
	code := envelope["data"].(string)

	stale := time.Now().Add(-11 * time.Minute)
	require.NoError(t, db.Model(&models.Passcode{}).
		Where("account_email = ?", "late@example.com").
		Update("created_at", stale).Error)

	envelope = postJSON(t, r, "/api/account/signup", gin.H{
		"name":     "late",
		"email":    "late@example.com",
		"password": "admin123",
		"passcode": code,
	})
	assert.EqualValues(t, 0, envelope["code"])
	assert.Equal(t, "Expired passcode!", envelope["message"])

	var n int64
	require.NoError(t, db.Model(&models.Passcode{}).Where("account_email = ?", "late@example.com").Count(&n).Error)
	assert.EqualValues(t, 0, n)
}

func TestSignupMissingFields(t *testing.T) {
	r, _ := newTestServer(t)

	envelope := postJSON(t, r, "/api/account/signup", gin.H{"email": "x@example.com"})
	assert.EqualValues(t, 0, envelope["code"])
	assert.Equal(t, "Missing fields: name, password, passcode!", envelope["message"])
}

func TestFollowEndpoints(t *testing.T) {
	r, db := newTestServer(t)
	seedHTTPAccount(t, db, "alice", "a@x")
	seedHTTPAccount(t, db, "bob", "b@x")
	token := loginFor(t, r, "a@x")

	envelope := postJSON(t, r, "/api/account/query_follow_status", gin.H{"access_token": token, "email": "b@x"})
	require.EqualValues(t, 1, envelope["code"])
	assert.Equal(t, false, envelope["data"])

	envelope = postJSON(t, r, "/api/account/follow", gin.H{"access_token": token, "email": "b@x"})
	require.EqualValues(t, 1, envelope["code"])
	assert.Equal(t, true, envelope["data"])

	envelope = postJSON(t, r, "/api/account/query_follow_status", gin.H{"access_token": token, "email": "b@x"})
	assert.Equal(t, true, envelope["data"])

	envelope = postJSON(t, r, "/api/account/follow", gin.H{"access_token": token, "email": "b@x"})
	assert.Equal(t, false, envelope["data"])

	envelope = postJSON(t, r, "/api/account/follow", gin.H{"access_token": token, "email": "nobody@x"})
	assert.EqualValues(t, 0, envelope["code"])
	assert.Equal(t, "Account does not exist!", envelope["message"])

	envelope = postJSON(t, r, "/api/account/follow", gin.H{"access_token": token})
	assert.Equal(t, "Access token or ID is missing!", envelope["message"])
}

func TestNotificationEndpoints(t *testing.T) {
	r, db := newTestServer(t)
	seedHTTPAccount(t, db, "alice", "a@x")
	seedHTTPAccount(t, db, "bob", "b@x")

	aliceToken := loginFor(t, r, "a@x")
	bobToken := loginFor(t, r, "b@x")

	envelope := postJSON(t, r, "/api/post/publish", gin.H{
		"access_token": aliceToken,
		"title":        "dumplings",
		"content":      "steamed",
		"channel":      "Chinese_Cuisine",
	})
	require.EqualValues(t, 1, envelope["code"])

	envelope = postJSON(t, r, "/api/post/query", gin.H{"type": "publish", "email": "a@x"})
	posts := envelope["data"].([]interface{})
	require.Len(t, posts, 1)
	postID := posts[0].(map[string]interface{})["id"]

	envelope = postJSON(t, r, "/api/post/comment", gin.H{"access_token": bobToken, "id": postID, "comment": "tasty"})
	require.EqualValues(t, 1, envelope["code"])

	envelope = postJSON(t, r, "/api/account/query_notification", gin.H{"access_token": aliceToken})
	require.EqualValues(t, 1, envelope["code"])
	data := envelope["data"].(map[string]interface{})
	comments := data["comments"].([]interface{})
	require.Len(t, comments, 1)
	comment := comments[0].(map[string]interface{})
	assert.Equal(t, "dumplings", comment["post_title"])
	assert.Equal(t, "b@x", comment["commentator_email"])
	assert.Empty(t, data["likes"])
	assert.Empty(t, data["followers"])

	envelope = postJSON(t, r, "/api/account/read_notification", gin.H{
		"access_token": aliceToken,
		"id":           comment["id"],
		"type":         "comments",
	})
	require.EqualValues(t, 1, envelope["code"])
	assert.Equal(t, true, envelope["data"])

	envelope = postJSON(t, r, "/api/account/query_notification", gin.H{"access_token": aliceToken})
	data = envelope["data"].(map[string]interface{})
	assert.Empty(t, data["comments"])

	// idempotent: reading the same id again still succeeds
	envelope = postJSON(t, r, "/api/account/read_notification", gin.H{
		"access_token": aliceToken,
		"id":           comment["id"],
		"type":         "comments",
	})
	assert.EqualValues(t, 1, envelope["code"])

	envelope = postJSON(t, r, "/api/account/read_notification", gin.H{
		"access_token": aliceToken,
		"id":           1,
		"type":         "mentions",
	})
	assert.EqualValues(t, 0, envelope["code"])
	assert.Equal(t, "Invalid type!", envelope["message"])

	envelope = postJSON(t, r, "/api/account/read_notification", gin.H{
		"access_token": aliceToken,
		"id":           9999,
		"type":         "followers",
	})
	assert.EqualValues(t, 0, envelope["code"])
	assert.Equal(t, "Follower record does not exist!", envelope["message"])
}
