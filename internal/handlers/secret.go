package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/dojo-secrets/dojosecrets/internal/models"
	"github.com/dojo-secrets/dojosecrets/internal/store"
	"github.com/dojo-secrets/dojosecrets/internal/utils"
	"github.com/gin-gonic/gin"
)

type CommentResponse struct {
	ID       uint   `json:"id"`
	SecretID uint   `json:"secret_id"`
	Content  string `json:"content"`
}

type SecretResponse struct {
	ID       uint              `json:"id"`
	AuthorID string            `json:"author_id"`
	Content  string            `json:"content"`
	Comments []CommentResponse `json:"comments"`
}

func toSecretResponse(secret models.Secret) SecretResponse {
	comments := make([]CommentResponse, 0, len(secret.Comments))

	for _, comment := range secret.Comments {
		comments = append(comments, CommentResponse{
			ID:       comment.ID,
			SecretID: comment.SecretID,
			Content:  comment.Content,
		})
	}

	return SecretResponse{
		ID:       secret.ID,
		AuthorID: secret.AuthorID,
		Content:  secret.Content,
		Comments: comments,
	}
}

func (h *Handler) ListSecrets(ctx *gin.Context) {
	sess, err := utils.GetCurrentSession(ctx)

	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if !sess.Authenticated {
		h.Sessions.AddFlash(sess.Token, LoginErrors, "Session has expired.")
		ctx.Redirect(http.StatusFound, "/")
		return
	}

	secrets, err := h.Secrets.ListAll()

	if err != nil {
		log.Printf("Failed to list secrets: %v", err)
		ctx.Redirect(http.StatusFound, "/")
		return
	}

	response := make([]SecretResponse, 0, len(secrets))

	for _, secret := range secrets {
		response = append(response, toSecretResponse(secret))
	}

	ctx.JSON(http.StatusOK, gin.H{
		"secrets": response,
		"flash":   h.Sessions.ConsumeFlash(sess.Token),
	})
}

func (h *Handler) ShowSecret(ctx *gin.Context) {
	sess, err := utils.GetCurrentSession(ctx)

	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	id, err := utils.GetSecretID(ctx)

	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Secret not found"})
		return
	}

	secret, err := h.Secrets.GetByID(id)

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Secret not found"})
			return
		}

		log.Printf("Failed to fetch secret %d: %v", id, err)
		ctx.Redirect(http.StatusFound, "/secrets")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"secret": toSecretResponse(*secret),
		"flash":  h.Sessions.ConsumeFlash(sess.Token),
	})
}

func (h *Handler) CreateSecret(ctx *gin.Context) {
	sess, err := utils.GetCurrentSession(ctx)

	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if !sess.Authenticated {
		h.Sessions.AddFlash(sess.Token, LoginErrors, "Session has expired.")
		ctx.Redirect(http.StatusFound, "/")
		return
	}

	_, err = h.Secrets.Create(sess.UserID, ctx.PostForm("secret_content"))

	if err != nil {
		var validation store.ValidationErrors

		if errors.As(err, &validation) {
			h.Sessions.AddFlash(sess.Token, SecretErrors, validation...)
		} else {
			log.Printf("Failed to create secret: %v", err)
			h.Sessions.AddFlash(sess.Token, SecretErrors, "Error creating secret!")
		}
	}

	// The request completes with a redirect whether or not creation succeeded.
	ctx.Redirect(http.StatusFound, "/secrets")
}

// AddComment has no authentication gate: any visitor may comment, matching
// the reference behavior this service reproduces.
func (h *Handler) AddComment(ctx *gin.Context) {
	sess, err := utils.GetCurrentSession(ctx)

	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	id, err := utils.GetSecretID(ctx)

	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Secret not found"})
		return
	}

	_, err = h.Secrets.AppendComment(id, ctx.PostForm("comment_content"))

	if err != nil {
		var validation store.ValidationErrors

		switch {
		case errors.As(err, &validation):
			h.Sessions.AddFlash(sess.Token, SecretErrors, validation...)
			ctx.Redirect(http.StatusFound, fmt.Sprintf("/secrets/%d", id))
		case errors.Is(err, store.ErrNotFound):
			h.Sessions.AddFlash(sess.Token, SecretErrors, "Secret not found.")
			ctx.Redirect(http.StatusFound, "/secrets")
		default:
			log.Printf("Failed to add comment to secret %d: %v", id, err)
			h.Sessions.AddFlash(sess.Token, SecretErrors, "Error adding comment!")
			ctx.Redirect(http.StatusFound, "/secrets")
		}
		return
	}

	ctx.Redirect(http.StatusFound, fmt.Sprintf("/secrets/%d", id))
}

// DeleteSecret likewise carries no ownership check; deletion cascades over
// the secret's whole comment sequence.
func (h *Handler) DeleteSecret(ctx *gin.Context) {
	sess, err := utils.GetCurrentSession(ctx)

	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	id, err := utils.GetSecretID(ctx)

	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Secret not found"})
		return
	}

	if err := h.Secrets.DeleteByID(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Printf("Secret %d already gone", id)
		} else {
			log.Printf("Failed to delete secret %d: %v", id, err)
			h.Sessions.AddFlash(sess.Token, SecretErrors, "Error deleting secret!")
		}
	}

	ctx.Redirect(http.StatusFound, "/secrets")
}
