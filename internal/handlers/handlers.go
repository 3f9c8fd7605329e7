package handlers

import (
	"github.com/dojo-secrets/dojosecrets/internal/session"
	"github.com/dojo-secrets/dojosecrets/internal/store"
)

// Flash categories, keyed the way the views consume them.
const (
	LoginErrors        = "login_errors"
	RegistrationErrors = "registration_errors"
	SecretErrors       = "secret_errors"
)

type Handler struct {
	Users    *store.UserStore
	Secrets  *store.SecretStore
	Sessions *session.Store
}

func New(users *store.UserStore, secrets *store.SecretStore, sessions *session.Store) *Handler {
	return &Handler{
		Users:    users,
		Secrets:  secrets,
		Sessions: sessions,
	}
}
