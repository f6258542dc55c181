package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"blueprint/internal/domain"
)

type categoryRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

type categoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type productRequest struct {
	Name       string     `json:"name" binding:"required,max=100"`
	CategoryID *uuid.UUID `json:"category_id"`
}

type productResponse struct {
	ID       string            `json:"id"`
	Name     string            `json:"name"`
	Category *categoryResponse `json:"category,omitempty"`
}

type userCreateRequest struct {
	Email    string    `json:"email" binding:"required,email,max=100"`
	Password string    `json:"password" binding:"required,max=72"`
	RoleID   uuid.UUID `json:"role_id" binding:"required"`
}

type userUpdateRequest struct {
	Email    string     `json:"email" binding:"required,email,max=100"`
	Password string     `json:"password" binding:"omitempty,max=72"`
	RoleID   *uuid.UUID `json:"role_id"`
}

type userResponse struct {
	ID    string       `json:"id"`
	Email string       `json:"email"`
	Role  roleResponse `json:"role"`
}

type roleResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Authorities []string `json:"authorities"`
}

type createdResponse struct {
	ID string `json:"id"`
}

type pageResponse struct {
	Items any   `json:"items"`
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Size  int   `json:"size"`
}

func toCategoryResponse(category domain.Category) categoryResponse {
	return categoryResponse{ID: category.ID.String(), Name: category.Name}
}

func toProductResponse(product domain.Product) productResponse {
	resp := productResponse{ID: product.ID.String(), Name: product.Name}
	if product.Category != nil {
		category := toCategoryResponse(*product.Category)
		resp.Category = &category
	}
	return resp
}

func toRoleResponse(role domain.UserRole) roleResponse {
	authorities := make([]string, 0, len(role.Authorities))
	for _, a := range role.Authorities {
		authorities = append(authorities, a.String())
	}
	return roleResponse{ID: role.ID.String(), Name: role.Name, Authorities: authorities}
}

func toUserResponse(user domain.User) userResponse {
	return userResponse{
		ID:    user.ID.String(),
		Email: user.Email,
		Role:  toRoleResponse(user.Role),
	}
}

func parsePage(c *gin.Context) domain.PageRequest {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", strconv.Itoa(domain.DefaultPageSize)))
	return domain.PageRequest{Page: page, Size: size}.Normalize()
}

func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	value := strings.TrimSpace(c.Param(name))
	parsed, err := uuid.Parse(value)
	if err != nil {
		writeErrorCode(c, http.StatusBadRequest, "INVALID_ARGUMENT", name+" must be a UUID")
		return uuid.Nil, false
	}
	return parsed, true
}

func parseUUIDQuery(c *gin.Context, name string) (*uuid.UUID, bool) {
	value := strings.TrimSpace(c.Query(name))
	if value == "" {
		return nil, true
	}
	parsed, err := uuid.Parse(value)
	if err != nil {
		writeErrorCode(c, http.StatusBadRequest, "INVALID_ARGUMENT", name+" must be a UUID")
		return nil, false
	}
	return &parsed, true
}
