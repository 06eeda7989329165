package auth

import (
	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

type middlewareLogger interface {
	Warn(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type TokenParser interface {
	Parse(tokenString string) (entities.Actor, error)
}
