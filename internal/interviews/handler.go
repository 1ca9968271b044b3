package interviews

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"ats-backend/internal/ats"
	"ats-backend/internal/auth"
	"ats-backend/internal/oracle"
	"ats-backend/internal/shared/server/respond"
)

const maxResumeBytes = 5 << 20

// Handler exposes the interview-generation variant over HTTP.
type Handler struct {
	Svc  *Service
	Auth auth.Resolver
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, resolver auth.Resolver) *Handler {
	return &Handler{Svc: svc, Auth: resolver}
}

// RegisterRoutes attaches the resume routes to the router.
func (h *Handler) RegisterRoutes(r gin.IRoutes) {
	r.POST("/resume", h.create)
	r.GET("/resume", h.health)
}

func (h *Handler) create(c *gin.Context) {
	file, err := c.FormFile("resume")
	if err != nil || file == nil {
		respond.FailEnvelope(c, http.StatusBadRequest, "No file uploaded")
		return
	}
	if file.Size > maxResumeBytes {
		respond.FailEnvelope(c, http.StatusBadRequest, "Resume file exceeds the size limit.")
		return
	}

	user, err := h.Auth.CurrentUser(c.Request)
	if err != nil || user == nil {
		respond.FailEnvelope(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	src, err := file.Open()
	if err != nil {
		respond.FailEnvelope(c, http.StatusInternalServerError, "Failed to read resume file.")
		return
	}
	defer src.Close()
	data, err := io.ReadAll(src)
	if err != nil {
		respond.FailEnvelope(c, http.StatusInternalServerError, "Failed to read resume file.")
		return
	}

	doc := ats.Document{
		Data:     data,
		MIMEType: file.Header.Get("Content-Type"),
		FileName: file.Filename,
	}

	record, err := h.Svc.CreateFromResume(c.Request.Context(), doc, user.ID)
	if err != nil {
		h.failCreate(c, err)
		return
	}

	respond.Success(c, gin.H{"interview": record})
}

func (h *Handler) health(c *gin.Context) {
	respond.Success(c, gin.H{"data": "Resume API is working!"})
}

func (h *Handler) failCreate(c *gin.Context, err error) {
	var parseErr *ats.ParseError
	switch {
	case errors.As(err, &parseErr):
		respond.FailEnvelope(c, http.StatusInternalServerError, "Invalid response from the generation service.")
	case errors.Is(err, ErrPersistence):
		respond.FailEnvelope(c, http.StatusInternalServerError, "Failed to save the interview.")
	case errors.Is(err, oracle.ErrUnavailable), errors.Is(err, oracle.ErrRejected):
		respond.FailEnvelope(c, http.StatusInternalServerError, "Generation service is unavailable.")
	default:
		respond.FailEnvelope(c, http.StatusInternalServerError, "An unexpected error occurred.")
	}
}
