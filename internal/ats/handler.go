package ats

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"ats-backend/internal/oracle"
	"ats-backend/internal/shared/metrics"
	"ats-backend/internal/shared/server/respond"
)

const maxResumeBytes = 5 << 20

// Handler exposes the evaluation pipeline over HTTP.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches the ATS route to the router.
func (h *Handler) RegisterRoutes(r gin.IRoutes) {
	r.POST("/ats", h.evaluate)
}

func (h *Handler) evaluate(c *gin.Context) {
	file, err := c.FormFile("resume")
	jobDescription := strings.TrimSpace(c.PostForm("jobDescription"))
	if err != nil || file == nil || jobDescription == "" {
		respond.Fail(c, http.StatusBadRequest, "Resume and job description are required.")
		return
	}
	if file.Size > maxResumeBytes {
		respond.Fail(c, http.StatusBadRequest, "Resume file exceeds the size limit.")
		return
	}

	src, err := file.Open()
	if err != nil {
		respond.FailDetail(c, http.StatusInternalServerError, "Failed to read resume file.", err.Error())
		return
	}
	defer src.Close()
	data, err := io.ReadAll(src)
	if err != nil {
		respond.FailDetail(c, http.StatusInternalServerError, "Failed to read resume file.", err.Error())
		return
	}

	doc := Document{
		Data:     data,
		MIMEType: file.Header.Get("Content-Type"),
		FileName: file.Filename,
	}

	metrics.IncEvaluationStarted()
	ctx := c.Request.Context()
	resume, err := h.Svc.Extract(ctx, doc)
	if err != nil {
		h.failPipeline(c, err)
		return
	}

	if h.Svc.Mode == ModeHeuristic {
		review, err := h.Svc.Review(ctx, resume, jobDescription)
		if err != nil {
			h.failPipeline(c, err)
			return
		}
		score := any("N/A")
		if review.Score != nil {
			score = *review.Score
		}
		metrics.IncEvaluationCompleted()
		respond.OK(c, gin.H{"score": score, "analysis": review.Analysis})
		return
	}

	result, err := h.Svc.Score(ctx, resume, jobDescription)
	if err != nil {
		h.failPipeline(c, err)
		return
	}
	metrics.IncEvaluationCompleted()
	respond.OK(c, result)
}

func (h *Handler) failPipeline(c *gin.Context, err error) {
	metrics.IncEvaluationFailed()
	var parseErr *ParseError
	switch {
	case errors.As(err, &parseErr):
		respond.FailRaw(c, http.StatusInternalServerError, "Invalid response from the evaluation service.", parseErr.Raw)
	case errors.Is(err, ErrEmptyResume):
		respond.FailDetail(c, http.StatusInternalServerError, "Resume evaluation failed.", "no resume text was extracted")
	case errors.Is(err, oracle.ErrUnavailable), errors.Is(err, oracle.ErrRejected):
		respond.FailDetail(c, http.StatusInternalServerError, "Evaluation service is unavailable.", err.Error())
	default:
		respond.FailDetail(c, http.StatusInternalServerError, "Internal server error.", err.Error())
	}
}
