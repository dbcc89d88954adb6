package controllers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/omniport/acadsync/internal/acad"
	"github.com/omniport/acadsync/internal/app/models"
	"github.com/omniport/acadsync/internal/app/models/dto"
	"github.com/omniport/acadsync/internal/app/services"
	"github.com/omniport/acadsync/internal/middleware"
)

// SyncController handles ACAD pull and single-record import endpoints
type SyncController struct {
	syncService   *services.SyncService
	importService *services.ImportService
}

// NewSyncController creates a new SyncController
func NewSyncController(syncService *services.SyncService, importService *services.ImportService) *SyncController {
	return &SyncController{
		syncService:   syncService,
		importService: importService,
	}
}

// RunSync pulls and imports the full record set of a kind
func (c *SyncController) RunSync(ctx *gin.Context) {
	kind := ctx.Param("kind")

	var (
		batch *models.SyncBatch
		err   error
	)
	switch kind {
	case models.SyncKindStudents:
		batch, err = c.syncService.RunStudentSync(ctx)
	case models.SyncKindFaculty:
		batch, err = c.syncService.RunFacultySync(ctx)
	default:
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid sync kind")
		errorDetail = errorDetail.WithDetails("Kind must be 'students' or 'faculty'")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      batchResponse(batch),
		Timestamp: time.Now(),
	})
}

// GetBatch retrieves a single batch report
func (c *SyncController) GetBatch(ctx *gin.Context) {
	batch, err := c.syncService.GetBatch(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      batchResponse(batch),
		Timestamp: time.Now(),
	})
}

// ListBatches retrieves recent batch reports
func (c *SyncController) ListBatches(ctx *gin.Context) {
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))

	batches, err := c.syncService.ListBatches(ctx, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	responses := make([]*dto.SyncBatchResponse, 0, len(batches))
	for _, batch := range batches {
		responses = append(responses, batchResponse(batch))
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      responses,
		Timestamp: time.Now(),
	})
}

// ImportStudent imports a single raw student record
func (c *SyncController) ImportStudent(ctx *gin.Context) {
	c.importOne(ctx, c.importService.ImportStudentRecord)
}

// ImportFaculty imports a single raw faculty record
func (c *SyncController) ImportFaculty(ctx *gin.Context) {
	c.importOne(ctx, c.importService.ImportFacultyRecord)
}

func (c *SyncController) importOne(ctx *gin.Context, importRecord func(context.Context, acad.Record) (*services.ImportResult, error)) {
	var req dto.ImportRecordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid record data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	result, err := importRecord(ctx, req.Record)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data: dto.ImportRecordResponse{
			Username:        result.Username,
			PersonID:        result.PersonID,
			ProfileFailures: result.ProfileFailures,
		},
		Timestamp: time.Now(),
	})
}

func batchResponse(batch *models.SyncBatch) *dto.SyncBatchResponse {
	return &dto.SyncBatchResponse{
		ID:              batch.ID,
		Kind:            batch.Kind,
		StartedAt:       batch.StartedAt,
		FinishedAt:      batch.FinishedAt,
		Total:           batch.Total,
		Imported:        batch.Imported,
		Failed:          batch.Failed,
		ProfileFailures: batch.ProfileFailures,
	}
}
