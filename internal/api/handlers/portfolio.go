package handlers

import (
	"net/http"

	"github.com/Jnyanu18/portfolio/internal/store"
	"github.com/Jnyanu18/portfolio/internal/utils"

	"github.com/gin-gonic/gin"
)

// PortfolioHandler serves the read-only portfolio content endpoints
type PortfolioHandler struct {
	store *store.Store
}

func NewPortfolioHandler(store *store.Store) *PortfolioHandler {
	return &PortfolioHandler{store: store}
}

// GetDocument returns the full portfolio document
func (h *PortfolioHandler) GetDocument(c *gin.Context) {
	doc, err := h.store.Document(c.Request.Context())
	if err != nil {
		utils.HandleAPIError(c, err, http.StatusInternalServerError, "Failed to fetch portfolio")
		return
	}
	utils.HandleData(c, doc)
}

// GetProjects returns all projects
func (h *PortfolioHandler) GetProjects(c *gin.Context) {
	projects, err := h.store.Projects(c.Request.Context())
	if err != nil {
		utils.HandleAPIError(c, err, http.StatusInternalServerError, "Failed to fetch projects")
		return
	}
	utils.HandleData(c, projects)
}

// GetFeaturedProjects returns featured projects only
func (h *PortfolioHandler) GetFeaturedProjects(c *gin.Context) {
	projects, err := h.store.FeaturedProjects(c.Request.Context())
	if err != nil {
		utils.HandleAPIError(c, err, http.StatusInternalServerError, "Failed to fetch featured projects")
		return
	}
	utils.HandleData(c, projects)
}

// GetSkills returns all skills grouped by category
func (h *PortfolioHandler) GetSkills(c *gin.Context) {
	skills, err := h.store.Skills(c.Request.Context())
	if err != nil {
		utils.HandleAPIError(c, err, http.StatusInternalServerError, "Failed to fetch skills")
		return
	}
	utils.HandleData(c, skills)
}

// GetContactInfo returns the owner's contact information
func (h *PortfolioHandler) GetContactInfo(c *gin.Context) {
	info, err := h.store.ContactInfo(c.Request.Context())
	if err != nil {
		utils.HandleAPIError(c, err, http.StatusInternalServerError, "Failed to fetch contact information")
		return
	}
	utils.HandleData(c, info)
}
