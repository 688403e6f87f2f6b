package handler

import (
	"context"
	"log/slog"

	"github.com/cloudwego/hertz/pkg/app"

	"github.com/lvyanru/soda-apiserver/internal/domain"
	"github.com/lvyanru/soda-apiserver/internal/handler/dto"
	"github.com/lvyanru/soda-apiserver/internal/usecase"
)

// ValidationHandler handles validation scan requests
type ValidationHandler struct {
	usecase usecase.ValidationUsecase
	logger  *slog.Logger
}

// NewValidationHandler creates a new validation handler
func NewValidationHandler(uc usecase.ValidationUsecase, logger *slog.Logger) *ValidationHandler {
	return &ValidationHandler{
		usecase: uc,
		logger:  logger,
	}
}

// Validate runs SodaCL data quality checks against Snowflake data
//
//	@Summary		Run a validation scan
//	@Description	Accepts either a table name or a custom SQL query plus SodaCL validation rules, executes the checks against Snowflake and returns the detailed results including the data quality score, individual check outcomes and sample failed rows
//	@Tags			Validation
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ValidationRequest	true	"Validation request"
//	@Success		200		{object}	dto.ValidationResponse	"Validation completed"
//	@Failure		400		{object}	map[string]string		"Invalid request"
//	@Failure		408		{object}	map[string]string		"Scan deadline exceeded"
//	@Failure		502		{object}	map[string]string		"Scan engine failure"
//	@Router			/validate [post]
func (h *ValidationHandler) Validate(ctx context.Context, c *app.RequestContext) {
	var req dto.ValidationRequest
	if err := c.BindAndValidate(&req); err != nil {
		h.logger.Error("invalid request", "error", err)
		ErrorResponse(c, domain.NewInvalidInputError(err.Error()))
		return
	}

	report, err := h.usecase.Validate(ctx, req.ToDomainRequest())
	if err != nil {
		h.logger.Error("validation failed", "error", err)
		ErrorResponse(c, err)
		return
	}

	SuccessResponse(c, dto.ToValidationResponse(report))
}

// ruleExamples are canned SodaCL snippets returned by the examples endpoint
var ruleExamples = map[string]string{
	"basic_validations": `  - row_count > 0
  - missing_count(email) = 0
  - duplicate_count(customer_id) = 0
  - invalid_percent(phone) < 5%`,

	"advanced_validations": `  - row_count between 1000 and 10000
  - freshness(created_date) < 1d
  - avg(order_amount) > 100
  - stddev(price) < 50`,

	"custom_metrics": `  - conversion_rate >= 0.15:
      conversion_rate query: |
        SELECT COUNT(CASE WHEN status = 'completed' THEN 1 END) * 1.0 / COUNT(*)
        FROM sales_data
  - failed rows:
      fail query: |
        SELECT * FROM orders
        WHERE ship_date < order_date`,
}

// RuleExamples returns example validation rules
//
//	@Summary		Validation rule examples
//	@Description	Returns example SodaCL validation rules for common data quality checks
//	@Tags			Validation
//	@Produce		json
//	@Success		200	{object}	map[string]string
//	@Router			/validation-rules-examples [get]
func (h *ValidationHandler) RuleExamples(ctx context.Context, c *app.RequestContext) {
	SuccessResponse(c, ruleExamples)
}
