package api

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"scheduler-simulator/config"
	"scheduler-simulator/internal/core"
	"scheduler-simulator/internal/report"
	"scheduler-simulator/internal/requests"
	"scheduler-simulator/internal/responses"
	"scheduler-simulator/internal/schedulers"
)

type SchedulerHandler interface {
	Schedule(ctx *fiber.Ctx) error
	FirstComeFirstServe(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	Priority(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
	Health(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config}
}

// Schedule honours the algorithm selector in the request body.
func (s *SchedulerHandlerImpl) Schedule(ctx *fiber.Ctx) error {
	return s.schedule(ctx, "")
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.FirstComeFirstServe)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.RoundRobin)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.ShortestJobFirst)
}

func (s *SchedulerHandlerImpl) Priority(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.Priority)
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	return s.schedule(ctx, "all")
}

func (s *SchedulerHandlerImpl) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{
		"status":          "running",
		"default_quantum": s.config.RoundRobinTimeQuantum,
		"algorithms":      schedulers.All,
	})
}

// schedule runs the request through the report builder. A non-empty
// algorithm overrides the selector sent in the body.
func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, algorithm schedulers.Algorithm) error {
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request format",
		})
	}
	if algorithm != "" {
		request.Algorithm = string(algorithm)
	}

	processes, err := request.ToProcesses(s.config.MaxProcesses)
	if err != nil {
		return s.fail(ctx, err)
	}
	algorithms, err := request.Algorithms()
	if err != nil {
		return s.fail(ctx, err)
	}

	builder := report.NewBuilder(request.TimeQuantum(s.config.RoundRobinTimeQuantum), s.config.Policy())
	comparison, err := builder.Build(processes, algorithms...)
	if err != nil {
		return s.fail(ctx, err)
	}

	slog.Info("schedule request served",
		"id", comparison.ID,
		"processes", len(processes),
		"algorithms", len(algorithms),
		"recommendation", comparison.Recommendation.Algorithm)
	return ctx.JSON(responses.NewComparisonResponse(comparison, request.WithTimeline()))
}

func (s *SchedulerHandlerImpl) fail(ctx *fiber.Ctx, err error) error {
	if errors.Is(err, core.ErrInvalidInput) {
		slog.Debug("rejected schedule request", "err", err)
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	slog.Error("can not process schedule request", "err", err)
	return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "can not process request"})
}
