package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yonchee/conduit-api/internal/auth"
	"github.com/yonchee/conduit-api/internal/database"
	"github.com/yonchee/conduit-api/internal/dto"
	"github.com/yonchee/conduit-api/internal/middleware"
	"github.com/yonchee/conduit-api/internal/models"
	"github.com/yonchee/conduit-api/internal/repository"
	"github.com/yonchee/conduit-api/internal/services"
)

type handlerTestEnv struct {
	db             *gorm.DB
	router         *gin.Engine
	codec          *auth.TokenCodec
	userService    *services.UserService
	articleService *services.ArticleService
}

func setupHandlerTestEnv(t *testing.T) handlerTestEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Article{},
		&models.Comment{},
	)
	require.NoError(t, err)

	database.SetDB(db)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	codec := auth.NewTokenCodec("test-secret")
	userRepo := repository.NewUserRepository(db)
	articleRepo := repository.NewArticleRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	userService := services.NewUserService(userRepo, codec)
	articleService := services.NewArticleService(articleRepo, commentRepo)

	authHandler := NewAuthHandler(userService)
	articleHandler := NewArticleHandler(articleService)
	commentHandler := NewCommentHandler(articleService)

	requireAuth := middleware.RequireAuth(codec)

	r := gin.New()
	api := r.Group("/api")
	{
		api.POST("/users", authHandler.Signup)
		api.POST("/users/login", authHandler.Login)
		api.GET("/user", requireAuth, authHandler.GetCurrentUser)
		api.PUT("/user", requireAuth, authHandler.UpdateUser)
		api.GET("/profiles/:username", authHandler.GetProfile)

		articles := api.Group("/articles")
		{
			articles.POST("", requireAuth, articleHandler.CreateArticle)
			articles.GET("/:slug", articleHandler.GetArticle)
			articles.PUT("/:slug", requireAuth, articleHandler.UpdateArticle)
			articles.DELETE("/:slug", requireAuth, articleHandler.DeleteArticle)
			articles.POST("/:slug/comments", requireAuth, commentHandler.AddComment)
			articles.GET("/:slug/comments", commentHandler.GetComments)
			articles.DELETE("/:slug/comments/:id", requireAuth, commentHandler.DeleteComment)
		}
	}

	return handlerTestEnv{
		db:             db,
		router:         r,
		codec:          codec,
		userService:    userService,
		articleService: articleService,
	}
}

func (env handlerTestEnv) request(t *testing.T, method, path, token string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func (env handlerTestEnv) signupAndLogin(t *testing.T, email, username string) (uint64, string) {
	t.Helper()

	user, token, err := env.userService.Signup(services.SignupInput{
		Email:    email,
		Username: username,
		Password: "supersecret",
	})
	require.NoError(t, err)
	return user.ID, token
}

func TestAuthHandler_Signup(t *testing.T) {
	env := setupHandlerTestEnv(t)

	w := env.request(t, http.MethodPost, "/api/users", "", map[string]interface{}{
		"user": map[string]string{
			"email":    "new@example.com",
			"username": "newuser",
			"password": "supersecret",
		},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var response dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, "newuser", response.User.Username)
	require.NotEmpty(t, response.User.Token)

	// The issued token is immediately usable on a protected route.
	claims, err := env.codec.Verify(response.User.Token)
	require.NoError(t, err)
	require.Equal(t, "new@example.com", claims.Email)
}

func TestAuthHandler_Signup_Conflict(t *testing.T) {
	env := setupHandlerTestEnv(t)
	env.signupAndLogin(t, "taken@example.com", "taken")

	w := env.request(t, http.MethodPost, "/api/users", "", map[string]interface{}{
		"user": map[string]string{
			"email":    "taken@example.com",
			"username": "fresh",
			"password": "supersecret",
		},
	})
	require.Equal(t, http.StatusConflict, w.Code)
}

func TestAuthHandler_Login(t *testing.T) {
	env := setupHandlerTestEnv(t)
	env.signupAndLogin(t, "login@example.com", "login")

	w := env.request(t, http.MethodPost, "/api/users/login", "", map[string]interface{}{
		"user": map[string]string{
			"email":    "login@example.com",
			"password": "supersecret",
		},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var response dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, "login", response.User.Username)
	require.NotEmpty(t, response.User.Token)
}

func TestAuthHandler_Login_BadCredentials(t *testing.T) {
	env := setupHandlerTestEnv(t)
	env.signupAndLogin(t, "known@example.com", "known")

	wrongPassword := env.request(t, http.MethodPost, "/api/users/login", "", map[string]interface{}{
		"user": map[string]string{"email": "known@example.com", "password": "wrong"},
	})
	unknownEmail := env.request(t, http.MethodPost, "/api/users/login", "", map[string]interface{}{
		"user": map[string]string{"email": "nobody@example.com", "password": "supersecret"},
	})

	// Both failure modes are the same status and body shape.
	require.Equal(t, http.StatusForbidden, wrongPassword.Code)
	require.Equal(t, http.StatusForbidden, unknownEmail.Code)
	require.JSONEq(t, wrongPassword.Body.String(), unknownEmail.Body.String())
}

func TestAuthHandler_GetCurrentUser(t *testing.T) {
	env := setupHandlerTestEnv(t)
	_, token := env.signupAndLogin(t, "me@example.com", "me")

	w := env.request(t, http.MethodGet, "/api/user", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var response dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, "me@example.com", response.User.Email)
}

func TestAuthHandler_ProtectedRouteRejections(t *testing.T) {
	env := setupHandlerTestEnv(t)

	missing := env.request(t, http.MethodGet, "/api/user", "", nil)
	require.Equal(t, http.StatusUnauthorized, missing.Code)

	invalid := env.request(t, http.MethodGet, "/api/user", "not-a-token", nil)
	require.Equal(t, http.StatusUnauthorized, invalid.Code)
}

func TestAuthHandler_UpdateUser(t *testing.T) {
	env := setupHandlerTestEnv(t)
	_, token := env.signupAndLogin(t, "update@example.com", "update")

	w := env.request(t, http.MethodPut, "/api/user", token, map[string]interface{}{
		"user": map[string]string{"bio": "about me"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var response dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.NotNil(t, response.User.Bio)
	require.Equal(t, "about me", *response.User.Bio)
	require.Equal(t, "update@example.com", response.User.Email)
}

func TestAuthHandler_GetProfile(t *testing.T) {
	env := setupHandlerTestEnv(t)
	env.signupAndLogin(t, "profile@example.com", "profileuser")

	w := env.request(t, http.MethodGet, "/api/profiles/profileuser", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var response dto.ProfileResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, "profileuser", response.Profile.Username)
	require.False(t, response.Profile.Following)

	missing := env.request(t, http.MethodGet, "/api/profiles/nobody", "", nil)
	require.Equal(t, http.StatusNotFound, missing.Code)
}
