package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/procsim/procsim/sim"
)

// ScheduleRequest is the JSON body for the schedule and compare endpoints.
// Quantum 0 means unspecified (Round Robin falls back to the default).
type ScheduleRequest struct {
	Algorithm string         `json:"algorithm"`
	Quantum   int64          `json:"quantum"`
	Processes []ProcessInput `json:"processes"`
}

// ProcessInput is one process record in a ScheduleRequest.
type ProcessInput struct {
	PID         int   `json:"pid"`
	ArrivalTime int64 `json:"arrival_time"`
	BurstTime   int64 `json:"burst_time"`
	Priority    int   `json:"priority"`
}

// SchedulerHandler exposes the simulation facade over HTTP.
type SchedulerHandler interface {
	Schedule(ctx *fiber.Ctx) error
	Compare(ctx *fiber.Ctx) error
	Algorithms(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct{}

func NewSchedulerHandlerImpl() *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{}
}

// Schedule runs the requested algorithm over the posted process set and
// returns the full result (per-process details, timeline, summary).
func (h *SchedulerHandlerImpl) Schedule(ctx *fiber.Ctx) error {
	var req ScheduleRequest
	if err := ctx.BodyParser(&req); err != nil {
		return badRequest(ctx, "invalid request format")
	}
	if req.Algorithm == "" {
		return badRequest(ctx, "algorithm is required")
	}
	res, err := runOne(req.Algorithm, req.Quantum, req.Processes)
	if err != nil {
		return ctx.Status(errorStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(res)
}

// Compare runs every algorithm over the posted process set and returns one
// result per algorithm.
func (h *SchedulerHandlerImpl) Compare(ctx *fiber.Ctx) error {
	var req ScheduleRequest
	if err := ctx.BodyParser(&req); err != nil {
		return badRequest(ctx, "invalid request format")
	}
	results := make([]*sim.Result, 0, len(sim.Algorithms()))
	for _, algorithm := range sim.Algorithms() {
		res, err := runOne(algorithm, req.Quantum, req.Processes)
		if err != nil {
			return ctx.Status(errorStatus(err)).JSON(fiber.Map{"error": err.Error()})
		}
		results = append(results, res)
	}
	return ctx.JSON(results)
}

// Algorithms lists the recognized algorithm names.
func (h *SchedulerHandlerImpl) Algorithms(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{"algorithms": sim.Algorithms()})
}

// runOne maps one request onto a fresh simulator run. Configuration errors
// and invariant violations come back as plain errors for the handler to
// surface; every run gets fresh records so handlers never share state.
func runOne(algorithm string, quantum int64, inputs []ProcessInput) (*sim.Result, error) {
	s, err := sim.NewSimulator(algorithm, quantum)
	if err != nil {
		return nil, err
	}
	procs := make([]*sim.Process, 0, len(inputs))
	for _, in := range inputs {
		procs = append(procs, sim.NewProcess(in.PID, in.ArrivalTime, in.BurstTime, in.Priority))
	}
	if err := s.AddProcesses(procs); err != nil {
		return nil, err
	}
	return s.Run(), nil
}

func badRequest(ctx *fiber.Ctx, msg string) error {
	return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}

// errorStatus picks the HTTP status for a facade error.
// Currently every surfaced error is a caller mistake; kept separate so a
// future internal failure mode can map to 500 without touching handlers.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, sim.ErrUnknownAlgorithm),
		errors.Is(err, sim.ErrInvalidQuantum),
		errors.Is(err, sim.ErrInvalidProcess):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}
