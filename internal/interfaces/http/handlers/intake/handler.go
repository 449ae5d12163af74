package intake

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"intake/internal/application/intake/usecases"
	"intake/internal/shared/constants"
	"intake/internal/shared/logger"
	"intake/internal/shared/utils"
)

type Handler struct {
	createIntakeUC usecases.CreateIntakeExecutor
	getIntakeUC    usecases.GetIntakeExecutor
	listIntakesUC  usecases.ListIntakesExecutor
	updateIntakeUC usecases.UpdateIntakeExecutor
	getStatsUC     usecases.GetIntakeStatsExecutor
	logger         logger.Interface
}

func NewHandler(
	createIntakeUC usecases.CreateIntakeExecutor,
	getIntakeUC usecases.GetIntakeExecutor,
	listIntakesUC usecases.ListIntakesExecutor,
	updateIntakeUC usecases.UpdateIntakeExecutor,
	getStatsUC usecases.GetIntakeStatsExecutor,
	logger logger.Interface,
) *Handler {
	return &Handler{
		createIntakeUC: createIntakeUC,
		getIntakeUC:    getIntakeUC,
		listIntakesUC:  listIntakesUC,
		updateIntakeUC: updateIntakeUC,
		getStatsUC:     getStatsUC,
		logger:         logger,
	}
}

// CreateIntake handles POST /api/intakes
//
// @Summary Submit an intake
// @Description Public endpoint. The category is assigned by keyword classification.
// @Tags Intakes
// @Accept json
// @Produce json
// @Param request body CreateIntakeRequest true "Intake submission"
// @Success 201 {object} utils.APIResponse{data=dto.IntakeDTO}
// @Failure 400 {object} utils.APIResponse
// @Failure 429 {object} utils.APIResponse
// @Router /api/intakes [post]
func (h *Handler) CreateIntake(c *gin.Context) {
	var req CreateIntakeRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for create intake", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createIntakeUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Intake submitted successfully")
}

// GetIntake handles GET /api/intakes/:id
//
// @Summary Get an intake
// @Tags Intakes
// @Produce json
// @Security BasicAuth
// @Param id path int true "Intake ID"
// @Success 200 {object} utils.APIResponse{data=dto.IntakeDTO}
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/intakes/{id} [get]
func (h *Handler) GetIntake(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getIntakeUC.Execute(c.Request.Context(), usecases.GetIntakeQuery{ID: id})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListIntakes handles GET /api/intakes
//
// @Summary List intakes
// @Description Unpaginated. sort is a field name, prefixed with - for descending order.
// @Tags Intakes
// @Produce json
// @Security BasicAuth
// @Param status query string false "Status filter" Enums(new, in_review, resolved)
// @Param category query string false "Category filter" Enums(billing, technical_support, new_matter_project, other)
// @Param sort query string false "Sort expression" default(-created_at)
// @Success 200 {object} utils.APIResponse{data=utils.ListResponse{items=[]dto.IntakeDTO}}
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /api/intakes [get]
func (h *Handler) ListIntakes(c *gin.Context) {
	var req ListIntakesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.ValidationErrorFrom(err))
		return
	}

	result, err := h.listIntakesUC.Execute(c.Request.Context(), req.ToQuery())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Items, result.Total)
}

// UpdateIntake handles PATCH /api/intakes/:id
//
// @Summary Update an intake
// @Description Changes status and/or internal notes. At least one field is required.
// @Tags Intakes
// @Accept json
// @Produce json
// @Security BasicAuth
// @Param id path int true "Intake ID"
// @Param request body UpdateIntakeRequest true "Fields to change"
// @Success 200 {object} utils.APIResponse{data=dto.IntakeDTO}
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/intakes/{id} [patch]
func (h *Handler) UpdateIntake(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateIntakeRequest
	if err := utils.BindJSONStrict(c, &req); err != nil {
		h.logger.Warnw("invalid request body for update intake", "intake_id", id, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateIntakeUC.Execute(c.Request.Context(), req.ToCommand(id, c.GetString(constants.ContextKeyUsername)))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Intake updated successfully", result)
}

// GetStats handles GET /api/intakes/stats
//
// @Summary Intake statistics
// @Tags Intakes
// @Produce json
// @Security BasicAuth
// @Success 200 {object} utils.APIResponse{data=dto.StatsDTO}
// @Failure 401 {object} utils.APIResponse
// @Router /api/intakes/stats [get]
func (h *Handler) GetStats(c *gin.Context) {
	result, err := h.getStatsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
