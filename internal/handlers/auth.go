package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/dojo-secrets/dojosecrets/internal/auth"
	"github.com/dojo-secrets/dojosecrets/internal/middleware"
	"github.com/dojo-secrets/dojosecrets/internal/models"
	"github.com/dojo-secrets/dojosecrets/internal/store"
	"github.com/dojo-secrets/dojosecrets/internal/utils"
	"github.com/gin-gonic/gin"
)

const invalidCredentials = "User credentials not found or invalid!"

// Home lands anonymous visitors on the index page; authenticated visitors get
// a single redirect to the feed.
func (h *Handler) Home(ctx *gin.Context) {
	sess, err := utils.GetCurrentSession(ctx)

	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if sess.Authenticated {
		ctx.Redirect(http.StatusFound, "/secrets")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"page":  "index",
		"flash": h.Sessions.ConsumeFlash(sess.Token),
	})
}

func (h *Handler) RegisterUser(ctx *gin.Context) {
	sess, err := utils.GetCurrentSession(ctx)

	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	email := strings.ToLower(strings.TrimSpace(ctx.PostForm("email")))
	password := ctx.PostForm("password")
	confirm := ctx.PostForm("password_confirm")

	// Checked before any store access.
	if password == "" || password != confirm {
		h.Sessions.AddFlash(sess.Token, RegistrationErrors, "Passwords do not match!")
		ctx.Redirect(http.StatusFound, "/")
		return
	}

	// Every failing field flashes its message, not just the first. The raw
	// password goes through the length check before it is hashed.
	messages := models.ValidateEmail(email)
	messages = append(messages, models.ValidatePassword(password)...)

	if len(messages) > 0 {
		h.Sessions.AddFlash(sess.Token, RegistrationErrors, messages...)
		ctx.Redirect(http.StatusFound, "/")
		return
	}

	passwordHash, err := auth.HashPassword(password)

	if err != nil {
		log.Printf("Failed to hash password: %v", err)
		h.Sessions.AddFlash(sess.Token, RegistrationErrors, "Error processing registration.")
		ctx.Redirect(http.StatusFound, "/")
		return
	}

	user, err := h.Users.Register(email, passwordHash)

	if err != nil {
		var validation store.ValidationErrors

		switch {
		case errors.As(err, &validation):
			h.Sessions.AddFlash(sess.Token, RegistrationErrors, validation...)
		case errors.Is(err, store.ErrDuplicateEmail):
			h.Sessions.AddFlash(sess.Token, RegistrationErrors, store.ErrDuplicateEmail.Error())
		default:
			log.Printf("Failed to create user: %v", err)
			h.Sessions.AddFlash(sess.Token, RegistrationErrors, "Error processing registration.")
		}

		ctx.Redirect(http.StatusFound, "/")
		return
	}

	h.Sessions.Login(sess.Token, strconv.FormatUint(uint64(user.ID), 10))
	ctx.Redirect(http.StatusFound, "/secrets")
}

func (h *Handler) LoginUser(ctx *gin.Context) {
	sess, err := utils.GetCurrentSession(ctx)

	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	email := strings.ToLower(strings.TrimSpace(ctx.PostForm("email")))
	password := ctx.PostForm("password")

	user, err := h.Users.FindByEmail(email)

	if err != nil {
		// Unknown email and wrong password read identically to the caller,
		// so accounts cannot be enumerated.
		if !errors.Is(err, store.ErrNotFound) {
			log.Printf("Database error when fetching user: %v", err)
		}

		h.Sessions.AddFlash(sess.Token, LoginErrors, invalidCredentials)
		ctx.Redirect(http.StatusFound, "/")
		return
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		h.Sessions.AddFlash(sess.Token, LoginErrors, invalidCredentials)
		ctx.Redirect(http.StatusFound, "/")
		return
	}

	h.Sessions.Login(sess.Token, strconv.FormatUint(uint64(user.ID), 10))
	ctx.Redirect(http.StatusFound, "/secrets")
}

// LogoutUser destroys the server-side session record, not just the cookie.
func (h *Handler) LogoutUser(ctx *gin.Context) {
	if sess, err := utils.GetCurrentSession(ctx); err == nil {
		h.Sessions.Logout(sess.Token)
	}

	http.SetCookie(ctx.Writer, &http.Cookie{
		Name:     middleware.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	ctx.Redirect(http.StatusFound, "/")
}
