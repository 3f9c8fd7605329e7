package middleware

import (
	"net/http"

	"github.com/dojo-secrets/dojosecrets/internal/session"
	"github.com/gin-gonic/gin"
)

const (
	CookieName        = "session_token"
	ContextSessionKey = "session"
)

// CurrentSession is the per-request view of the visitor's session record.
type CurrentSession struct {
	Token         string
	UserID        string
	Authenticated bool
}

// SessionMiddleware resolves the cookie token against the session store.
// Unknown or expired tokens get a fresh anonymous session, so every request
// downstream carries a live token it can flash messages onto.
func SessionMiddleware(sessions *session.Store) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token, err := ctx.Cookie(CookieName)

		if err != nil || !sessions.Valid(token) {
			token = sessions.Create()

			http.SetCookie(ctx.Writer, &http.Cookie{
				Name:     CookieName,
				Value:    token,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		userID, authenticated := sessions.CurrentUserID(token)

		ctx.Set(ContextSessionKey, CurrentSession{
			Token:         token,
			UserID:        userID,
			Authenticated: authenticated,
		})

		ctx.Next()
	}
}
