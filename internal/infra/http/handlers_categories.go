package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) handleSearchCategories(c *gin.Context) {
	sec := securityContext(c)
	page := parsePage(c)
	search := c.Query("search")
	strict := c.Query("strict") == "true"

	items, total, err := s.categorySvc.Find(c.Request.Context(), sec, search, strict, page)
	if err != nil {
		writeError(c, err)
		return
	}
	responses := make([]categoryResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, toCategoryResponse(item))
	}
	c.JSON(http.StatusOK, pageResponse{Items: responses, Total: total, Page: page.Page, Size: page.Size})
}

func (s *Server) handleGetCategory(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	category, err := s.categorySvc.Get(c.Request.Context(), securityContext(c), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCategoryResponse(*category))
}

func (s *Server) handleCreateCategory(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeErrorCode(c, http.StatusBadRequest, "INVALID_ARGUMENT", "invalid category payload")
		return
	}
	id, err := s.categorySvc.Create(c.Request.Context(), securityContext(c), req.Name)
	if err != nil {
		writeError(c, err)
		return
	}
	c.Header("Location", c.Request.URL.Path+"/"+id.String())
	c.JSON(http.StatusCreated, createdResponse{ID: id.String()})
}

func (s *Server) handleUpdateCategory(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeErrorCode(c, http.StatusBadRequest, "INVALID_ARGUMENT", "invalid category payload")
		return
	}
	if err := s.categorySvc.Update(c.Request.Context(), securityContext(c), id, req.Name); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handleDeleteCategory(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	if err := s.categorySvc.Delete(c.Request.Context(), securityContext(c), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
