package handler

import (
	"errors"

	"campushire/internal/delivery/http/middleware"
	"campushire/internal/domain/actor"
	"campushire/internal/domain/application"
	"campushire/internal/domain/listing"
	"campushire/internal/pkg/response"
	"campushire/internal/repository"
	"campushire/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

// mapDomainError translates usecase and domain sentinels into the HTTP
// taxonomy. Anything unmapped is a 500 and keeps its cause for the log.
func mapDomainError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput),
		errors.Is(err, application.ErrMissingInterviewDate),
		errors.Is(err, application.ErrInterviewInPast),
		errors.Is(err, listing.ErrInvalidSortKey):
		return middleware.NewAppError(fiber.StatusBadRequest, err.Error(), nil, err)

	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)

	case errors.Is(err, usecase.ErrForbidden),
		errors.Is(err, application.ErrUnauthorizedActor):
		return middleware.NewAppError(fiber.StatusForbidden, "Forbidden", nil, err)

	case errors.Is(err, usecase.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Not found", nil, err)

	case errors.Is(err, application.ErrInvalidTransition),
		errors.Is(err, usecase.ErrStaleTransition),
		errors.Is(err, repository.ErrDuplicateApplication),
		errors.Is(err, repository.ErrAlreadySaved):
		return middleware.NewAppError(fiber.StatusConflict, err.Error(), nil, err)

	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

func requestActor(c fiber.Ctx) (actor.Actor, error) {
	by, ok := middleware.ActorFromCtx(c)
	if !ok {
		return actor.Actor{}, middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	return by, nil
}

func pathID(c fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, middleware.NewAppError(fiber.StatusBadRequest, "Invalid id", nil, err)
	}
	return id, nil
}

// addRoute registers a route with its guards ahead of the handler.
// Fiber v3 runs the listed handlers in argument order, so the
// middleware must be passed before the handler to gate it.
func addRoute(add func(string, any, ...any) fiber.Router, path string, h fiber.Handler, mw []fiber.Handler) {
	if len(mw) == 0 {
		add(path, h)
		return
	}
	rest := make([]any, 0, len(mw))
	for _, m := range mw[1:] {
		rest = append(rest, m)
	}
	add(path, mw[0], append(rest, h)...)
}
