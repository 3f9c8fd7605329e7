package utils

import (
	"errors"
	"strconv"

	"github.com/dojo-secrets/dojosecrets/internal/middleware"
	"github.com/gin-gonic/gin"
)

func GetCurrentSession(ctx *gin.Context) (middleware.CurrentSession, error) {
	value, exists := ctx.Get(middleware.ContextSessionKey)

	if !exists {
		return middleware.CurrentSession{}, errors.New("No session in context")
	}

	current, ok := value.(middleware.CurrentSession)

	if !ok {
		return middleware.CurrentSession{}, errors.New("Invalid session type in context")
	}

	return current, nil
}

func GetSecretID(ctx *gin.Context) (uint, error) {
	idStr := ctx.Param("id")

	if idStr == "" {
		return 0, errors.New("Secret ID not found")
	}

	id, err := strconv.ParseUint(idStr, 10, 32)

	if err != nil {
		return 0, errors.New("Invalid Secret ID")
	}

	return uint(id), nil
}
