package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) handleSearchUsers(c *gin.Context) {
	sec := securityContext(c)
	page := parsePage(c)
	search := c.Query("search")
	strict := c.Query("strict") == "true"

	items, total, err := s.userSvc.Find(c.Request.Context(), sec, search, strict, page)
	if err != nil {
		writeError(c, err)
		return
	}
	responses := make([]userResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, toUserResponse(item))
	}
	c.JSON(http.StatusOK, pageResponse{Items: responses, Total: total, Page: page.Page, Size: page.Size})
}

func (s *Server) handleGetUser(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	user, err := s.userSvc.Get(c.Request.Context(), securityContext(c), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toUserResponse(*user))
}

func (s *Server) handleCreateUser(c *gin.Context) {
	var req userCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeErrorCode(c, http.StatusBadRequest, "INVALID_ARGUMENT", "invalid user payload")
		return
	}
	id, err := s.userSvc.Create(c.Request.Context(), securityContext(c), req.Email, req.Password, req.RoleID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.Header("Location", c.Request.URL.Path+"/"+id.String())
	c.JSON(http.StatusCreated, createdResponse{ID: id.String()})
}

func (s *Server) handleUpdateUser(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req userUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeErrorCode(c, http.StatusBadRequest, "INVALID_ARGUMENT", "invalid user payload")
		return
	}
	if err := s.userSvc.Update(c.Request.Context(), securityContext(c), id, req.Email, req.Password, req.RoleID); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handleDeleteUser(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	if err := s.userSvc.Delete(c.Request.Context(), securityContext(c), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
