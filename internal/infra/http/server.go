package http

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"blueprint/internal/config"
	"blueprint/internal/domain"
	jwtauth "blueprint/internal/infra/auth/jwt"
	"blueprint/internal/infra/auth/password"
	"blueprint/internal/infra/auth/rbac"
	"blueprint/internal/infra/db"
	"blueprint/internal/infra/ratelimit"
	"blueprint/internal/usecase"
)

type Server struct {
	cfg config.Config
	r   *gin.Engine

	codec  *jwtauth.Codec
	hasher usecase.PasswordHasher
	users  usecase.UserRepository

	categorySvc *usecase.CategoryService
	productSvc  *usecase.ProductService
	userSvc     *usecase.UserService
	roleSvc     *usecase.RoleService

	limiter         domain.RateLimiter
	loginRateLimit  int
	loginRateWindow time.Duration
}

// ServerDeps is the seam used by tests to swap the persistence and
// crypto backends for in-memory fakes.
type ServerDeps struct {
	Users      usecase.UserRepository
	Roles      usecase.UserRoleRepository
	Categories usecase.CategoryRepository
	Products   usecase.ProductRepository
	Hasher     usecase.PasswordHasher
	Limiter    domain.RateLimiter
}

func NewServer(cfg config.Config, store *db.Store) (*Server, error) {
	deps := ServerDeps{
		Users:      db.NewUserRepository(store.DB),
		Roles:      db.NewUserRoleRepository(store.DB),
		Categories: db.NewCategoryRepository(store.DB),
		Products:   db.NewProductRepository(store.DB),
		Hasher:     password.NewBcryptHasher(cfg.BcryptCost),
	}
	if cfg.LoginRateLimit > 0 {
		deps.Limiter = newLimiter(cfg)
	}
	return NewServerWithDeps(cfg, deps)
}

func NewServerWithDeps(cfg config.Config, deps ServerDeps) (*Server, error) {
	codec, err := jwtauth.NewCodec(cfg)
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Recovery())

	authz := rbac.NewEvaluator()
	s := &Server{
		cfg:             cfg,
		r:               r,
		codec:           codec,
		hasher:          deps.Hasher,
		users:           deps.Users,
		categorySvc:     usecase.NewCategoryService(deps.Categories, authz),
		productSvc:      usecase.NewProductService(deps.Products, deps.Categories, authz),
		userSvc:         usecase.NewUserService(deps.Users, deps.Roles, deps.Hasher, authz),
		roleSvc:         usecase.NewRoleService(deps.Roles, authz),
		limiter:         deps.Limiter,
		loginRateLimit:  cfg.LoginRateLimit,
		loginRateWindow: time.Duration(cfg.LoginRateWindowSecs) * time.Second,
	}
	s.routes()
	return s, nil
}

func (s *Server) Run() error {
	addr := s.cfg.HTTPAddr
	if addr == "" {
		addr = ":8080"
	}
	log.Printf("blueprintd listening on %s", addr)
	return s.r.Run(addr)
}

// Handler exposes the engine for httptest servers.
func (s *Server) Handler() *gin.Engine {
	return s.r
}

func (s *Server) routes() {
	s.r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// The login path is the only one that creates tokens; the gate on
	// everything else is the only consumer.
	s.r.POST("/login", s.handleLogin)

	protected := s.r.Group("/")
	protected.Use(s.authorizationGate())
	{
		protected.GET("/category", s.handleSearchCategories)
		protected.GET("/category/:id", s.handleGetCategory)
		protected.POST("/category", s.handleCreateCategory)
		protected.PUT("/category/:id", s.handleUpdateCategory)
		protected.DELETE("/category/:id", s.handleDeleteCategory)

		protected.GET("/product", s.handleSearchProducts)
		protected.GET("/product/:id", s.handleGetProduct)
		protected.POST("/product", s.handleCreateProduct)
		protected.PUT("/product/:id", s.handleUpdateProduct)
		protected.DELETE("/product/:id", s.handleDeleteProduct)

		protected.GET("/user", s.handleSearchUsers)
		protected.GET("/user/:id", s.handleGetUser)
		protected.POST("/user", s.handleCreateUser)
		protected.PUT("/user/:id", s.handleUpdateUser)
		protected.DELETE("/user/:id", s.handleDeleteUser)

		protected.GET("/userrole", s.handleSearchRoles)
		protected.GET("/userrole/:id", s.handleGetRole)
	}
}

func newLimiter(cfg config.Config) domain.RateLimiter {
	if cfg.RedisAddr != "" {
		limiter, err := ratelimit.NewRedisLimiter(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, nil)
		if err == nil {
			return limiter
		}
		log.Printf("redis limiter unavailable, falling back to memory: %v", err)
	}
	return ratelimit.NewMemoryLimiter(ratelimit.MemoryLimiterConfig{})
}
