package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/omniport/acadsync/internal/app/models/dto"
	"github.com/omniport/acadsync/internal/app/services"
	"github.com/omniport/acadsync/internal/middleware"
)

// DirectoryController handles read-only directory endpoints
type DirectoryController struct {
	directoryService *services.DirectoryService
}

// NewDirectoryController creates a new DirectoryController
func NewDirectoryController(directoryService *services.DirectoryService) *DirectoryController {
	return &DirectoryController{
		directoryService: directoryService,
	}
}

// ListPersons retrieves imported persons with their usernames
func (c *DirectoryController) ListPersons(ctx *gin.Context) {
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(ctx.DefaultQuery("offset", "0"))

	persons, err := c.directoryService.ListPersons(ctx, limit, offset)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      persons,
		Timestamp: time.Now(),
	})
}

// ListDepartments retrieves all departments
func (c *DirectoryController) ListDepartments(ctx *gin.Context) {
	departments, err := c.directoryService.ListDepartments(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      departments,
		Timestamp: time.Now(),
	})
}

// ListCentres retrieves all centres
func (c *DirectoryController) ListCentres(ctx *gin.Context) {
	centres, err := c.directoryService.ListCentres(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      centres,
		Timestamp: time.Now(),
	})
}
