package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/pthm/uxtone/internal/engine"
	"github.com/pthm/uxtone/internal/rules"
)

// ToneController handles the analyze and apply API endpoints
type ToneController struct {
	engine *engine.Engine
	tracer trace.Tracer
}

// NewToneController creates a new tone controller
func NewToneController(e *engine.Engine) *ToneController {
	return &ToneController{
		engine: e,
		tracer: otel.Tracer("tone-controller"),
	}
}

// RegisterRoutes registers all tone routes
func (c *ToneController) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/analyze", c.Analyze)
	router.POST("/apply", c.Apply)
	router.POST("/cancel", c.Cancel)
	router.GET("/rules", c.ListRules)
}

// Analyze handles POST /analyze
func (c *ToneController) Analyze(ctx *gin.Context) {
	reqCtx, span := c.tracer.Start(ctx.Request.Context(), "tone.analyze")
	defer span.End()

	var request engine.AnalyzeRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "details": err.Error()})
		return
	}
	span.SetAttributes(attribute.Int("items", len(request.Items)))

	response, err := c.engine.Analyze(reqCtx, request)
	if err != nil {
		fail(ctx, span, err)
		return
	}

	span.SetAttributes(
		attribute.Int("applicable_rules", len(response.Profile.ApplicableRules)),
		attribute.Int("suggestions", len(response.Suggestions)),
	)
	ctx.JSON(http.StatusOK, response)
}

// Apply handles POST /apply
func (c *ToneController) Apply(ctx *gin.Context) {
	reqCtx, span := c.tracer.Start(ctx.Request.Context(), "tone.apply")
	defer span.End()

	var request engine.ApplyRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "details": err.Error()})
		return
	}
	span.SetAttributes(
		attribute.Int("items", len(request.Items)),
		attribute.StringSlice("selected_patterns", request.SelectedPatterns),
	)

	response, err := c.engine.Apply(reqCtx, request)
	if err != nil {
		fail(ctx, span, err)
		return
	}

	span.SetAttributes(
		attribute.Int("converted", response.ConvertedCount),
		attribute.Bool("no_applicable_rules", response.NoApplicableRules),
	)
	ctx.JSON(http.StatusOK, response)
}

// Cancel handles POST /cancel
func (c *ToneController) Cancel(ctx *gin.Context) {
	reqCtx, span := c.tracer.Start(ctx.Request.Context(), "tone.cancel")
	defer span.End()

	c.engine.Cancel(reqCtx)
	ctx.Status(http.StatusNoContent)
}

// ListRules handles GET /rules, optionally filtered by ?category=
func (c *ToneController) ListRules(ctx *gin.Context) {
	table := c.engine.Rules()
	ruleSet := table.Rules()

	if category := ctx.Query("category"); category != "" {
		cat := rules.Category(category)
		if !cat.IsValid() {
			ctx.JSON(http.StatusBadRequest, gin.H{
				"error":   "Invalid category",
				"details": fmt.Sprintf("unknown category %q", category),
			})
			return
		}
		ruleSet = table.ByCategory(cat)
	}

	ctx.JSON(http.StatusOK, gin.H{
		"table": table.Name(),
		"rules": ruleSet,
		"count": len(ruleSet),
	})
}

// fail maps engine errors to responses
func fail(ctx *gin.Context, span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())

	switch {
	case errors.Is(err, engine.ErrEmptyInput):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Empty input", "details": err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Request failed", "details": err.Error()})
	}
}
