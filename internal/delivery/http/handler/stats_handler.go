package handler

import (
	"errors"
	"strconv"
	"time"

	"campushire/internal/delivery/http/dto"
	"campushire/internal/delivery/http/middleware"
	"campushire/internal/domain/actor"
	"campushire/internal/pkg/response"
	"campushire/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type StatsHandler struct {
	stats usecase.StatsUsecase
}

func NewStatsHandler(stats usecase.StatsUsecase) *StatsHandler {
	return &StatsHandler{stats: stats}
}

func (h *StatsHandler) RegisterRoutes(r fiber.Router, mw ...fiber.Handler) {
	if r == nil {
		return
	}

	addRoute(r.Get, "/company", h.CompanySummary, mw)
	addRoute(r.Get, "/student", h.StudentSummary, mw)
}

func (h *StatsHandler) CompanySummary(c fiber.Ctx) error {
	return h.summary(c, actor.RoleCompany)
}

func (h *StatsHandler) StudentSummary(c fiber.Ctx) error {
	return h.summary(c, actor.RoleStudent)
}

func (h *StatsHandler) summary(c fiber.Ctx, role actor.Role) error {
	by, err := requestActor(c)
	if err != nil {
		return err
	}
	if by.Role != role {
		return middleware.NewAppError(fiber.StatusForbidden, "Forbidden", nil, nil)
	}

	period, err := parsePeriodDays(c.Query("period_days"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid period_days", nil, err)
	}

	sum, err := h.stats.Summary(c.Context(), by, period)
	if err != nil {
		return mapDomainError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromSummary(sum))
}

// parsePeriodDays returns zero for an absent value, letting the usecase
// apply its default window.
func parsePeriodDays(s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	days, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if days <= 0 {
		return 0, errors.New("period_days must be positive")
	}
	return time.Duration(days) * 24 * time.Hour, nil
}
