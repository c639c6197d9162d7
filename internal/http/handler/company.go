package handler

import (
	"github.com/gofiber/fiber/v2"

	"riskmai/internal/service"
)

type createCompanyBody struct {
	Name    string `json:"name"`
	Context string `json:"context"`
}

type addContextBody struct {
	Context string `json:"context"`
}

// CreateCompany registers a company.
//
// @Summary Create company
// @Tags companies
// @Accept json
// @Produce json
// @Param body body createCompanyBody true "Company"
// @Success 201 {object} map[string]string
// @Failure 400 {object} errorPayload
// @Router /companies [post]
func CreateCompany(svc service.CompanyService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body createCompanyBody
		if err := decodeJSON(c, &body); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_JSON", "request body must be a JSON object")
		}
		company, err := svc.Create(c.UserContext(), body.Name, body.Context)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message":    "Company added successfully",
			"company_id": company.ID,
		})
	}
}

// AddContext appends a context note to a company.
//
// @Summary Add company context
// @Tags companies
// @Accept json
// @Produce json
// @Param id path string true "Company ID"
// @Param body body addContextBody true "Context"
// @Success 201 {object} map[string]string
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /companies/{id}/context [post]
func AddContext(svc service.CompanyService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body addContextBody
		if err := decodeJSON(c, &body); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_JSON", "request body must be a JSON object")
		}
		id := c.Params("id")
		if err := svc.AddContext(c.UserContext(), id, body.Context); err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message":    "Context added successfully",
			"company_id": id,
		})
	}
}

// GetCompany returns a company with its context and documents.
//
// @Summary Get company
// @Tags companies
// @Produce json
// @Param id path string true "Company ID"
// @Success 200 {object} model.Company
// @Failure 404 {object} errorPayload
// @Router /companies/{id} [get]
func GetCompany(svc service.CompanyService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		company, err := svc.Get(c.UserContext(), c.Params("id"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(company)
	}
}

// ListCompanies returns every company as an id/name pair.
//
// @Summary List companies
// @Tags companies
// @Produce json
// @Success 200 {array} model.CompanySummary
// @Router /companies [get]
func ListCompanies(svc service.CompanyService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.List(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(items)
	}
}
