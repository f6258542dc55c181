package http

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"blueprint/internal/domain"
)

const securityContextKey = "security_context"

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
}

// handleLogin is the authentication gate. It validates submitted
// credentials and mints a token on success. Unknown username and wrong
// password produce the same response so usernames cannot be probed.
func (s *Server) handleLogin(c *gin.Context) {
	if !s.allowLoginAttempt(c) {
		writeErrorCode(c, http.StatusTooManyRequests, "RATE_LIMITED", "too many login attempts")
		return
	}

	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeErrorCode(c, http.StatusBadRequest, "INVALID_ARGUMENT", "login request not processable")
		return
	}

	if s.cfg.LoginRateLimitByUser && !s.allowKey(c, "login:user:"+req.Username) {
		writeErrorCode(c, http.StatusTooManyRequests, "RATE_LIMITED", "too many login attempts")
		return
	}

	user, err := s.users.GetByEmail(c.Request.Context(), req.Username)
	if err != nil || !s.hasher.Verify(req.Password, user.PasswordHash) {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	token, err := s.codec.Issue(user.Email, user.Role.ID.String())
	if err != nil {
		log.Printf("login failed, could not issue token: %v", err)
		writeErrorCode(c, http.StatusInternalServerError, "INTERNAL", "internal error")
		return
	}

	log.Printf("successfully authenticated user: %s", user.Email)
	c.JSON(http.StatusOK, loginResponse{AccessToken: token})
}

// authorizationGate runs on every request except login. It never aborts
// the request: any failure leaves the request anonymous and the chain
// continues, with denial decided later by the operation's rule.
func (s *Server) authorizationGate() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := c.Get(securityContextKey); ok {
			c.Next()
			return
		}

		token := extractBearerToken(c.GetHeader("Authorization"))
		if token == "" {
			c.Next()
			return
		}

		claims, err := s.codec.Verify(token)
		if err != nil {
			log.Printf("authorization failed, token issue: %v", err)
			c.Next()
			return
		}

		// Re-resolve the principal on every request. The role claim in
		// the token is never used here, so authority changes and user
		// deletion take effect immediately.
		user, err := s.users.GetByEmail(c.Request.Context(), claims.Subject)
		if err != nil {
			log.Printf("authorization failed, subject issue: %v", err)
			c.Next()
			return
		}

		sec := domain.NewSecurityContext(*user, c.ClientIP())
		c.Set(securityContextKey, sec)
		log.Printf("successfully authorized user: %s", claims.Subject)
		c.Next()
	}
}

// securityContext returns the established context or nil for anonymous.
func securityContext(c *gin.Context) *domain.SecurityContext {
	raw, ok := c.Get(securityContextKey)
	if !ok {
		return nil
	}
	sec, ok := raw.(*domain.SecurityContext)
	if !ok {
		return nil
	}
	return sec
}

func extractBearerToken(header string) string {
	header = strings.TrimSpace(header)
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// allowLoginAttempt consults the limiter before credentials are read.
// A limiter failure fails open: throttling is a hardening measure, not
// part of the authentication decision.
func (s *Server) allowLoginAttempt(c *gin.Context) bool {
	return s.allowKey(c, "login:"+c.ClientIP())
}

func (s *Server) allowKey(c *gin.Context, key string) bool {
	if s.limiter == nil || s.loginRateLimit <= 0 {
		return true
	}
	decision, err := s.limiter.Allow(c.Request.Context(), key, s.loginRateLimit, s.loginRateWindow)
	if err != nil {
		log.Printf("login rate limiter unavailable: %v", err)
		return true
	}
	return decision.Allowed
}
