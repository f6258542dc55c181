package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) handleSearchProducts(c *gin.Context) {
	sec := securityContext(c)
	page := parsePage(c)
	search := c.Query("search")
	strict := c.Query("strict") == "true"
	categoryID, ok := parseUUIDQuery(c, "category_id")
	if !ok {
		return
	}

	items, total, err := s.productSvc.Find(c.Request.Context(), sec, search, strict, categoryID, page)
	if err != nil {
		writeError(c, err)
		return
	}
	responses := make([]productResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, toProductResponse(item))
	}
	c.JSON(http.StatusOK, pageResponse{Items: responses, Total: total, Page: page.Page, Size: page.Size})
}

func (s *Server) handleGetProduct(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	product, err := s.productSvc.Get(c.Request.Context(), securityContext(c), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProductResponse(*product))
}

func (s *Server) handleCreateProduct(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeErrorCode(c, http.StatusBadRequest, "INVALID_ARGUMENT", "invalid product payload")
		return
	}
	id, err := s.productSvc.Create(c.Request.Context(), securityContext(c), req.Name, req.CategoryID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.Header("Location", c.Request.URL.Path+"/"+id.String())
	c.JSON(http.StatusCreated, createdResponse{ID: id.String()})
}

func (s *Server) handleUpdateProduct(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeErrorCode(c, http.StatusBadRequest, "INVALID_ARGUMENT", "invalid product payload")
		return
	}
	if err := s.productSvc.Update(c.Request.Context(), securityContext(c), id, req.Name, req.CategoryID); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handleDeleteProduct(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	if err := s.productSvc.Delete(c.Request.Context(), securityContext(c), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
