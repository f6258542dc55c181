package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) handleSearchRoles(c *gin.Context) {
	sec := securityContext(c)
	page := parsePage(c)

	items, total, err := s.roleSvc.Find(c.Request.Context(), sec, page)
	if err != nil {
		writeError(c, err)
		return
	}
	responses := make([]roleResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, toRoleResponse(item))
	}
	c.JSON(http.StatusOK, pageResponse{Items: responses, Total: total, Page: page.Page, Size: page.Size})
}

func (s *Server) handleGetRole(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	role, err := s.roleSvc.Get(c.Request.Context(), securityContext(c), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toRoleResponse(*role))
}
