package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/lms/internal/controller"
	"github.com/lshigami/lms/internal/dto"
	"github.com/lshigami/lms/internal/service"
)

type RoleController struct {
	roleService service.RoleService
}

func NewRoleController(roleService service.RoleService) *RoleController {
	return &RoleController{roleService: roleService}
}

// Create godoc
// @Summary (Admin) Create a role
// @Tags Admin - Roles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param role body dto.RoleRequest true "Role"
// @Success 201 {object} model.Role
// @Failure 400 {object} dto.ErrorResponse
// @Router /roles [post]
func (c *RoleController) Create(ctx *gin.Context) {
	var req dto.RoleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, err)
		return
	}
	role, err := c.roleService.Create(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, role)
}

// FindAll godoc
// @Summary List roles
// @Tags Admin - Roles
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Role
// @Router /roles [get]
func (c *RoleController) FindAll(ctx *gin.Context) {
	roles, err := c.roleService.FindAll(ctx.Request.Context())
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, roles)
}

// FindByID godoc
// @Summary Get a role
// @Tags Admin - Roles
// @Produce json
// @Security BearerAuth
// @Param id path int true "Role ID"
// @Success 200 {object} model.Role
// @Failure 404 {object} dto.ErrorResponse
// @Router /roles/{id} [get]
func (c *RoleController) FindByID(ctx *gin.Context) {
	id, ok := controller.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	role, err := c.roleService.FindByID(ctx.Request.Context(), id)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, role)
}

// Update godoc
// @Summary (Admin) Rename a role
// @Tags Admin - Roles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Role ID"
// @Param role body dto.RoleRequest true "Role"
// @Success 200 {object} model.Role
// @Failure 404 {object} dto.ErrorResponse
// @Router /roles/{id} [put]
func (c *RoleController) Update(ctx *gin.Context) {
	id, ok := controller.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.RoleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, err)
		return
	}
	role, err := c.roleService.Update(ctx.Request.Context(), id, req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, role)
}

// Delete godoc
// @Summary (Admin) Delete a role
// @Description The built-in admin, faculty and student roles cannot be deleted.
// @Tags Admin - Roles
// @Produce json
// @Security BearerAuth
// @Param id path int true "Role ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /roles/{id} [delete]
func (c *RoleController) Delete(ctx *gin.Context) {
	id, ok := controller.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.roleService.Delete(ctx.Request.Context(), id); err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Role deleted"})
}
