// Package web provides HTTP handlers and REST API endpoints for blueprints and contracts.
package web

import (
	"context"
	"net/http"
	"time"

	"github.com/dukex/contractflow/pkg/dashboard"
	"github.com/dukex/contractflow/pkg/models"
	"github.com/dukex/contractflow/pkg/services"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
)

type APIHandlers struct {
	session   *services.Session
	validator *validator.Validate
}

func NewAPIHandlers(session *services.Session, validator *validator.Validate) *APIHandlers {
	return &APIHandlers{
		session:   session,
		validator: validator,
	}
}

// Register mounts the blueprint and contract endpoints on router.
func (h *APIHandlers) Register(router fiber.Router) {
	b := router.Group("/blueprints")
	b.Get("/", h.GetBlueprints)
	b.Post("/", h.CreateBlueprint)
	b.Get("/:id", h.GetBlueprint)
	b.Post("/:id/fields", h.AddBlueprintField)

	c := router.Group("/contracts")
	c.Get("/", h.GetContracts)
	c.Post("/", h.GenerateContract)
	c.Get("/:id", h.GetContract)
	c.Get("/:id/schema", h.GetContractSchema)
	c.Put("/:id/fields", h.SetContractField)
	c.Post("/:id/advance", h.AdvanceContract)
	c.Post("/:id/revoke", h.RevokeContract)

	router.Get("/health", h.HealthCheck)
}

func (h *APIHandlers) HealthCheck(c fiber.Ctx) error {
	sessionCheck, ok := h.session.HealthCheck()

	status := "unhealthy"
	message := "Contractflow API is unhealthy"
	httpStatus := http.StatusInternalServerError

	if ok {
		status = "healthy"
		message = "Contractflow API is healthy"
		httpStatus = http.StatusOK
	}

	return c.Status(httpStatus).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"checkers": fiber.Map{
			"session": sessionCheck,
		},
		"timestamp": time.Now().UTC(),
	})
}

func (h *APIHandlers) GetBlueprints(c fiber.Ctx) error {
	blueprints := h.session.Blueprints.ListBlueprints(c.Context())

	return c.JSON(BlueprintListResponse{
		Blueprints: blueprints,
		TotalCount: len(blueprints),
	})
}

func (h *APIHandlers) GetBlueprint(c fiber.Ctx) error {
	blueprint, err := h.session.Blueprints.GetBlueprint(c.Context(), c.Params("id"))
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(blueprint)
}

func (h *APIHandlers) CreateBlueprint(c fiber.Ctx) error {
	var req CreateBlueprintRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "Invalid JSON format")
	}

	if err := h.validator.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}

	created, err := h.session.Blueprints.CreateBlueprint(c.Context(), req.Name)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *APIHandlers) AddBlueprintField(c fiber.Ctx) error {
	var req AddFieldRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "Invalid JSON format")
	}

	if err := h.validator.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}

	updated, err := h.session.Blueprints.AddField(c.Context(), c.Params("id"), req.Label, req.Type)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(updated)
}

func (h *APIHandlers) GetContracts(c fiber.Ctx) error {
	filter, err := services.ParseStatusFilter(c.Query("status"))
	if err != nil {
		return handleServiceError(c, err)
	}

	contracts, err := h.session.Contracts.ListContracts(c.Context(), filter)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(ContractListResponse{
		Contracts:  dashboard.Views(contracts),
		Status:     filter,
		TotalCount: len(contracts),
	})
}

func (h *APIHandlers) GetContract(c fiber.Ctx) error {
	contract, err := h.session.Contracts.GetContract(c.Context(), c.Params("id"))
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(dashboard.NewContractView(contract))
}

func (h *APIHandlers) GetContractSchema(c fiber.Ctx) error {
	schema, err := h.session.Contracts.ContractSchema(c.Context(), c.Params("id"))
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(schema, "application/schema+json")
}

func (h *APIHandlers) GenerateContract(c fiber.Ctx) error {
	var req GenerateContractRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "Invalid JSON format")
	}

	if err := h.validator.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}

	created, err := h.session.Contracts.GenerateContract(c.Context(), req.BlueprintID)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dashboard.NewContractView(created))
}

func (h *APIHandlers) SetContractField(c fiber.Ctx) error {
	var req SetFieldValueRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "Invalid JSON format")
	}

	if err := h.validator.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}

	updated, err := h.session.Contracts.SetFieldValue(c.Context(), c.Params("id"), req.Label, req.Value)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(dashboard.NewContractView(updated))
}

func (h *APIHandlers) AdvanceContract(c fiber.Ctx) error {
	return h.transition(c, h.session.Contracts.AdvanceStatus)
}

func (h *APIHandlers) RevokeContract(c fiber.Ctx) error {
	return h.transition(c, h.session.Contracts.Revoke)
}

func (h *APIHandlers) transition(
	c fiber.Ctx,
	apply func(ctx context.Context, id string) (*models.Contract, error),
) error {
	updated, err := apply(c.Context(), c.Params("id"))
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(dashboard.NewContractView(updated))
}
