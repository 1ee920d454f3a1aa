package controller

import (
	"errors"

	"finlearn_backend/internal/finmath"
	"finlearn_backend/internal/service"
	"finlearn_backend/internal/util"
	"finlearn_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

type CalculatorController struct {
	CurriculumService *service.CurriculumService
}

func NewCalculatorController(curriculumService *service.CurriculumService) *CalculatorController {
	return &CalculatorController{CurriculumService: curriculumService}
}

// swagger:model CalculatorRequest
type CalculatorRequest struct {
	Inputs []float64 `json:"inputs" binding:"required"`
}

// Evaluate godoc
// @Summary Run a lesson calculator formula
// @Tags calculators
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param formula path string true "formula id"
// @Param body body CalculatorRequest true "inputs in declared order"
// @Success 200 {object} object "success and result rows"
// @Failure 400 {object} object
// @Failure 404 {object} object
// @Router /calculators/{formula} [post]
func (c *CalculatorController) Evaluate(ctx *gin.Context) {
	var req CalculatorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	formula := ctx.Param("formula")
	rows, err := c.CurriculumService.Evaluate(formula, req.Inputs)
	if err != nil {
		switch {
		case errors.Is(err, finmath.ErrUnknownFormula):
			util.NotFound(ctx, "unknown formula")
		case errors.Is(err, finmath.ErrBadArity),
			errors.Is(err, finmath.ErrPaymentTooLow),
			errors.Is(err, finmath.ErrInvalidCompounding),
			errors.Is(err, finmath.ErrInvalidTenure),
			errors.Is(err, finmath.ErrNegativeInput):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	monitoring.CalculatorEvaluations.WithLabelValues(formula).Inc()

	util.Success(ctx, gin.H{"results": rows})
}

// GetRegimes godoc
// @Summary Active tax regime tables
// @Tags calculators
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} object "success and regimes"
// @Router /tax/regimes [get]
func (c *CalculatorController) GetRegimes(ctx *gin.Context) {
	util.Success(ctx, gin.H{"regimes": c.CurriculumService.Regimes()})
}

// swagger:model TaxCompareRequest
type TaxCompareRequest struct {
	GrossIncome float64 `json:"grossIncome" binding:"required"`
	Section80C  float64 `json:"section80C"`
	Section80D  float64 `json:"section80D"`
	NPS         float64 `json:"nps"`
}

// CompareTax godoc
// @Summary Compare tax owed under every regime
// @Tags calculators
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body TaxCompareRequest true "income and declared deductions"
// @Success 200 {object} object "success and comparison"
// @Failure 400 {object} object
// @Router /tax/compare [post]
func (c *CalculatorController) CompareTax(ctx *gin.Context) {
	var req TaxCompareRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	cmp := c.CurriculumService.CompareTax(req.GrossIncome, finmath.Deductions{
		Section80C: req.Section80C,
		Section80D: req.Section80D,
		NPS:        req.NPS,
	})

	util.Success(ctx, gin.H{"comparison": cmp})
}
