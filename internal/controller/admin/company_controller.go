package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/lms/internal/controller"
	"github.com/lshigami/lms/internal/dto"
	"github.com/lshigami/lms/internal/service"
)

type CompanyController struct {
	companyService service.CompanyService
}

func NewCompanyController(companyService service.CompanyService) *CompanyController {
	return &CompanyController{companyService: companyService}
}

// Create godoc
// @Summary (Admin) Create a company
// @Tags Admin - Companies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param company body dto.CompanyRequest true "Company"
// @Success 201 {object} model.Company
// @Failure 400 {object} dto.ErrorResponse
// @Router /companies [post]
func (c *CompanyController) Create(ctx *gin.Context) {
	var req dto.CompanyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, err)
		return
	}
	company, err := c.companyService.Create(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, company)
}

// FindAll godoc
// @Summary List companies
// @Tags Admin - Companies
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Company
// @Router /companies [get]
func (c *CompanyController) FindAll(ctx *gin.Context) {
	companies, err := c.companyService.FindAll(ctx.Request.Context())
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, companies)
}

// FindByID godoc
// @Summary Get a company
// @Tags Admin - Companies
// @Produce json
// @Security BearerAuth
// @Param id path int true "Company ID"
// @Success 200 {object} model.Company
// @Failure 404 {object} dto.ErrorResponse
// @Router /companies/{id} [get]
func (c *CompanyController) FindByID(ctx *gin.Context) {
	id, ok := controller.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	company, err := c.companyService.FindByID(ctx.Request.Context(), id)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, company)
}

// Update godoc
// @Summary (Admin) Update a company
// @Tags Admin - Companies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Company ID"
// @Param company body dto.CompanyRequest true "Company"
// @Success 200 {object} model.Company
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /companies/{id} [put]
func (c *CompanyController) Update(ctx *gin.Context) {
	id, ok := controller.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.CompanyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, err)
		return
	}
	company, err := c.companyService.Update(ctx.Request.Context(), id, req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, company)
}

// Delete godoc
// @Summary (Admin) Delete a company
// @Tags Admin - Companies
// @Produce json
// @Security BearerAuth
// @Param id path int true "Company ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /companies/{id} [delete]
func (c *CompanyController) Delete(ctx *gin.Context) {
	id, ok := controller.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.companyService.Delete(ctx.Request.Context(), id); err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Company deleted"})
}
