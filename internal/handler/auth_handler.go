package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/sekolahku/internal/service"
)

const sessionUserKey = "user_id"

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login verifies credentials, opens a session for browser clients and issues
// a bearer token for API clients. A failed login leaves any existing session
// untouched.
func (a *API) Login(c *gin.Context) {
	var req loginRequest
	if !bindJSON(c, &req, "Email dan password wajib diisi") {
		return
	}

	user, err := a.auth.Authenticate(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			respondError(c, http.StatusUnauthorized, "Email atau password salah")
			return
		}
		respondError(c, http.StatusInternalServerError, "Login gagal")
		return
	}

	session := sessions.Default(c)
	session.Set(sessionUserKey, user.ID)
	if err := session.Save(); err != nil {
		respondError(c, http.StatusInternalServerError, "Gagal menyimpan sesi")
		return
	}

	token, err := a.auth.IssueToken(user)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Gagal membuat token")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":  gin.H{"id": user.ID, "email": user.Email},
		"token": token,
	})
}

// Logout clears the session. It succeeds even when no session existed.
func (a *API) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	_ = session.Save()
	c.JSON(http.StatusOK, gin.H{"message": "Berhasil keluar"})
}

// Me reports the authenticated user; the admin SPA's route guard polls this
// to decide between the dashboard and the login page.
func (a *API) Me(c *gin.Context) {
	userID := currentUserID(c, a.auth)
	if userID == 0 {
		respondError(c, http.StatusUnauthorized, "Belum masuk")
		return
	}

	user, err := a.auth.GetUser(userID)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Sesi tidak berlaku")
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": gin.H{"id": user.ID, "email": user.Email}})
}

// AuthRequired guards admin routes. A valid session cookie or bearer token
// passes; everything else gets 401 and no mutation runs.
func (a *API) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID := currentUserID(c, a.auth); userID != 0 {
			c.Set("auth_user_id", userID)
			c.Next()
			return
		}
		respondError(c, http.StatusUnauthorized, "Harus masuk terlebih dahulu")
		c.Abort()
	}
}

func currentUserID(c *gin.Context, auth *service.AuthService) uint {
	session := sessions.Default(c)
	if raw := session.Get(sessionUserKey); raw != nil {
		if id, ok := raw.(uint); ok && id != 0 {
			return id
		}
	}

	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		if id, err := auth.ParseToken(token); err == nil {
			return id
		}
	}

	return 0
}
