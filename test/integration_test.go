package tests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"artmarket-api/config"
	"artmarket-api/handlers"
	"artmarket-api/helper"
	"artmarket-api/identity"
	"artmarket-api/middleware"
	"artmarket-api/models"
	"artmarket-api/repositories"
	"artmarket-api/services"
)

type IntegrationTestSuite struct {
	suite.Suite
	db       *gorm.DB
	router   *gin.Engine
	provider *identity.Static
}

func (suite *IntegrationTestSuite) SetupSuite() {
	db, err := gorm.Open(sqlite.Open("file:integration?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		suite.T().Fatal("Failed to open test database:", err)
	}
	suite.db = db

	if err := config.Migrate(db); err != nil {
		suite.T().Fatal("Failed to migrate test database:", err)
	}

	suite.setupRouter()
}

func (suite *IntegrationTestSuite) setupRouter() {
	gin.SetMode(gin.TestMode)

	httpHelper, err := helper.NewHTTPHelper()
	if err != nil {
		suite.T().Fatal("Failed to initialize validator:", err)
	}
	middleware.HTTPHelper = httpHelper

	suite.provider = identity.NewStatic(nil)

	// Initialize repositories
	sequenceRepo := repositories.NewSequenceRepository(suite.db)
	artistRepo := repositories.NewArtistRepository(suite.db)
	artRepo := repositories.NewArtRepository(suite.db)
	blogRepo := repositories.NewBlogRepository(suite.db)
	commentRepo := repositories.NewCommentRepository(suite.db)
	homeConfigRepo := repositories.NewHomeConfigRepository(suite.db)
	profileRepo := repositories.NewUserProfileRepository(suite.db)

	// Initialize services
	artistService := services.NewArtistService(artistRepo, artRepo, sequenceRepo, suite.provider)
	artService := services.NewArtService(artRepo, artistRepo, sequenceRepo)
	blogService := services.NewBlogService(blogRepo, sequenceRepo)
	commentService := services.NewCommentService(commentRepo, artRepo, sequenceRepo, suite.provider)
	homepageService := services.NewHomepageService(homeConfigRepo)
	adminService := services.NewAdminService(artistRepo, blogRepo, artRepo)
	userService := services.NewUserService(profileRepo, artistRepo)

	// Initialize handlers
	artistHandler := handlers.NewArtistHandler(artistService, httpHelper)
	artHandler := handlers.NewArtHandler(artService, httpHelper)
	blogHandler := handlers.NewBlogHandler(blogService, httpHelper)
	commentHandler := handlers.NewCommentHandler(commentService, httpHelper)
	homepageHandler := handlers.NewHomepageHandler(homepageService, httpHelper)
	adminHandler := handlers.NewAdminHandler(adminService, httpHelper)
	userHandler := handlers.NewUserHandler(userService, httpHelper)

	router := gin.New()
	router.Use(middleware.SanitizeInput())

	api := router.Group("/api")
	{
		arts := api.Group("/arts")
		{
			arts.GET("", artHandler.List)
			arts.GET("/:id", artHandler.Get)
			arts.POST("/:id/view", artHandler.IncrementView)
			arts.GET("/:id/comments", commentHandler.ListForArt)
			arts.POST("/:id/comments", commentHandler.Create)

			protected := arts.Group("")
			protected.Use(middleware.AuthMiddleware())
			{
				protected.POST("", artHandler.Create)
				protected.PUT("/:id", artHandler.Update)
				protected.DELETE("/:id", artHandler.Delete)
				protected.POST("/:id/like", artHandler.ToggleLike)
				protected.DELETE("/:id/comments/:commentId", commentHandler.Delete)
			}

			admin := arts.Group("/admin")
			admin.Use(middleware.AuthMiddleware(), middleware.RequireRole(identity.RoleAdmin))
			{
				admin.GET("", artHandler.ListForAdmin)
				admin.PUT("/:id/ban", artHandler.Ban)
				admin.PUT("/:id/unban", artHandler.Unban)
			}
		}

		artists := api.Group("/artists")
		{
			artists.GET("", artistHandler.ListApproved)
			artists.GET("/:id", artistHandler.Get)
			artists.POST("/apply", middleware.AuthMiddleware(), artistHandler.Apply)

			admin := artists.Group("/admin")
			admin.Use(middleware.AuthMiddleware(), middleware.RequireRole(identity.RoleAdmin))
			{
				admin.GET("", artistHandler.ListForAdmin)
				admin.PUT("/:id/approve", artistHandler.Approve)
				admin.PUT("/:id/reject", artistHandler.Reject)
			}
		}

		blogs := api.Group("/blogs")
		{
			blogs.GET("", blogHandler.ListApproved)
			blogs.GET("/:id", blogHandler.Get)
			blogs.POST("", middleware.AuthMiddleware(), blogHandler.Create)

			admin := blogs.Group("/admin")
			admin.Use(middleware.AuthMiddleware(), middleware.RequireRole(identity.RoleAdmin))
			{
				admin.GET("", blogHandler.ListForAdmin)
				admin.PUT("/:id/approve", blogHandler.Approve)
				admin.PUT("/:id/reject", blogHandler.Reject)
			}
		}

		api.GET("/homepage", homepageHandler.Get)
		api.PUT("/homepage",
			middleware.AuthMiddleware(), middleware.RequireRole(identity.RoleAdmin),
			homepageHandler.Set)

		api.GET("/admin/overview",
			middleware.AuthMiddleware(), middleware.RequireRole(identity.RoleAdmin),
			adminHandler.Overview)

		users := api.Group("/users")
		users.Use(middleware.AuthMiddleware())
		{
			users.GET("/me", userHandler.GetMe)
			users.PUT("/me", userHandler.UpsertMe)
		}
	}

	suite.router = router
}

func (suite *IntegrationTestSuite) SetupTest() {
	for _, table := range []string{
		"comments", "art_likes", "arts", "blogs",
		"artists", "user_profiles", "home_configs", "counters",
	} {
		suite.db.Exec("DELETE FROM " + table)
	}
}

func (suite *IntegrationTestSuite) signToken(identityID, role string) string {
	claims := middleware.Claims{
		IdentityID: identityID,
		Username:   identityID,
		Role:       role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identityID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(config.JWTSecret)
	suite.NoError(err)
	return token
}

func (suite *IntegrationTestSuite) do(method, path, token string, payload interface{}) *httptest.ResponseRecorder {
	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		suite.NoError(err)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *IntegrationTestSuite) applyAndApproveArtist(identityID, name string) models.Artist {
	w := suite.do("POST", "/api/artists/apply", suite.signToken(identityID, identity.RoleUser), models.ApplyArtistRequest{
		Name:      name,
		Bio:       "painter",
		Country:   "Japan",
		City:      "Osaka",
		Website:   "example.com",
		Instagram: "instagram.com/" + identityID,
		Facebook:  "facebook.com/" + identityID,
	})
	suite.Equal(http.StatusOK, w.Code)

	var artist models.Artist
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &artist))

	admin := suite.signToken("admin-1", identity.RoleAdmin)
	w = suite.do("PUT", fmt.Sprintf("/api/artists/admin/%d/approve", artist.ID), admin, nil)
	suite.Equal(http.StatusOK, w.Code)

	suite.NoError(json.Unmarshal(w.Body.Bytes(), &artist))
	return artist
}

func (suite *IntegrationTestSuite) createArt(identityID, title string) models.Art {
	w := suite.do("POST", "/api/arts", suite.signToken(identityID, identity.RoleArtist), models.CreateArtRequest{
		Title:        title,
		Description:  "oil on canvas",
		Category:     "Painting",
		Price:        250,
		Images:       []string{"https://example.com/a.jpg"},
		Availability: "For Sale",
	})
	suite.Equal(http.StatusCreated, w.Code)

	var art models.Art
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &art))
	return art
}

func (suite *IntegrationTestSuite) TestArtistApplicationLifecycle() {
	artist := suite.applyAndApproveArtist("mika-id", "Mika")

	suite.Equal(string(models.StatusApproved), string(artist.Status))
	suite.Equal(identity.RoleArtist, suite.provider.Role("mika-id"))

	// Approved artist is publicly listed.
	w := suite.do("GET", "/api/artists", "", nil)
	suite.Equal(http.StatusOK, w.Code)

	var artists []models.Artist
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &artists))
	suite.Len(artists, 1)
	suite.Equal("Mika", artists[0].Name)
	suite.Equal("https://example.com", artists[0].Website)
}

func (suite *IntegrationTestSuite) TestArtistRejectionWithReason() {
	w := suite.do("POST", "/api/artists/apply", suite.signToken("ren-id", identity.RoleUser), models.ApplyArtistRequest{
		Name:      "Ren",
		Bio:       "sculptor",
		Country:   "France",
		City:      "Lyon",
		Website:   "ren.example.com",
		Instagram: "instagram.com/ren",
		Facebook:  "facebook.com/ren",
	})
	suite.Equal(http.StatusOK, w.Code)

	var artist models.Artist
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &artist))

	admin := suite.signToken("admin-1", identity.RoleAdmin)
	w = suite.do("PUT", fmt.Sprintf("/api/artists/admin/%d/reject", artist.ID), admin, models.RejectRequest{Reason: "Incomplete portfolio"})
	suite.Equal(http.StatusOK, w.Code)

	suite.NoError(json.Unmarshal(w.Body.Bytes(), &artist))
	suite.Equal(string(models.StatusRejected), string(artist.Status))
	suite.Equal("Incomplete portfolio", artist.RejectionReason)

	// Rejected applications never show up publicly.
	w = suite.do("GET", "/api/artists", "", nil)
	suite.Equal(http.StatusOK, w.Code)
	var artists []models.Artist
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &artists))
	suite.Empty(artists)
}

func (suite *IntegrationTestSuite) TestArtCreateRequiresApprovedArtist() {
	w := suite.do("POST", "/api/arts", suite.signToken("stranger", identity.RoleUser), models.CreateArtRequest{
		Title:        "Dawn",
		Description:  "oil on canvas",
		Category:     "Painting",
		Price:        250,
		Images:       []string{"https://example.com/a.jpg"},
		Availability: "For Sale",
	})
	suite.Equal(http.StatusBadRequest, w.Code)

	var resp map[string]interface{}
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("VALIDATION_ERROR", resp["code"])
}

func (suite *IntegrationTestSuite) TestLikeToggleFlow() {
	suite.applyAndApproveArtist("mika-id", "Mika")
	art := suite.createArt("mika-id", "Dawn")

	fan := suite.signToken("fan-1", identity.RoleUser)

	w := suite.do("POST", fmt.Sprintf("/api/arts/%d/like", art.ID), fan, nil)
	suite.Equal(http.StatusOK, w.Code)

	var result models.ToggleLikeResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &result))
	suite.Equal(1, result.Likes)
	suite.True(result.Liked)

	w = suite.do("POST", fmt.Sprintf("/api/arts/%d/like", art.ID), fan, nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &result))
	suite.Zero(result.Likes)
	suite.False(result.Liked)
}

func (suite *IntegrationTestSuite) TestViewCountPropagation() {
	artist := suite.applyAndApproveArtist("mika-id", "Mika")
	art := suite.createArt("mika-id", "Dawn")

	w := suite.do("POST", fmt.Sprintf("/api/arts/%d/view", art.ID), "", nil)
	suite.Equal(http.StatusNoContent, w.Code)
	w = suite.do("POST", fmt.Sprintf("/api/arts/%d/view", art.ID), "", nil)
	suite.Equal(http.StatusNoContent, w.Code)

	w = suite.do("GET", fmt.Sprintf("/api/artists/%d", artist.ID), "", nil)
	suite.Equal(http.StatusOK, w.Code)

	var got models.Artist
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Equal(2, got.TotalViews)
}

func (suite *IntegrationTestSuite) TestCommentLifecycle() {
	suite.applyAndApproveArtist("mika-id", "Mika")
	art := suite.createArt("mika-id", "Dawn")

	w := suite.do("POST", fmt.Sprintf("/api/arts/%d/comments", art.ID), "", models.CreateCommentRequest{
		Body:              "Wonderful piece",
		AuthorID:          "fan-1",
		AuthorUsername:    "fan",
		AuthorDisplayName: "Fan One",
		AuthorImage:       "https://example.com/avatar.jpg",
		AuthorRole:        models.AuthorRoleUser,
	})
	suite.Equal(http.StatusCreated, w.Code)

	var comment models.Comment
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &comment))

	// Stranger cannot delete.
	w = suite.do("DELETE", fmt.Sprintf("/api/arts/%d/comments/%d", art.ID, comment.ID),
		suite.signToken("fan-2", identity.RoleUser), nil)
	suite.Equal(http.StatusForbidden, w.Code)

	// Owner can.
	w = suite.do("DELETE", fmt.Sprintf("/api/arts/%d/comments/%d", art.ID, comment.ID),
		suite.signToken("fan-1", identity.RoleUser), nil)
	suite.Equal(http.StatusOK, w.Code)

	w = suite.do("GET", fmt.Sprintf("/api/arts/%d", art.ID), "", nil)
	suite.Equal(http.StatusOK, w.Code)
	var got models.Art
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Zero(got.Comments)
}

func (suite *IntegrationTestSuite) TestCommentBodyIsSanitized() {
	suite.applyAndApproveArtist("mika-id", "Mika")
	art := suite.createArt("mika-id", "Dawn")

	w := suite.do("POST", fmt.Sprintf("/api/arts/%d/comments", art.ID), "", models.CreateCommentRequest{
		Body:              `great <script>alert("x")</script>work`,
		AuthorID:          "fan-1",
		AuthorUsername:    "fan",
		AuthorDisplayName: "Fan One",
		AuthorImage:       "https://example.com/avatar.jpg",
		AuthorRole:        models.AuthorRoleUser,
	})
	suite.Equal(http.StatusCreated, w.Code)

	var comment models.Comment
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &comment))
	suite.NotContains(comment.Body, "<script>")
	suite.Contains(comment.Body, "great")
}

func (suite *IntegrationTestSuite) TestAdminRoutesRejectNonAdmins() {
	user := suite.signToken("fan-1", identity.RoleUser)

	w := suite.do("GET", "/api/arts/admin", user, nil)
	suite.Equal(http.StatusForbidden, w.Code)

	w = suite.do("GET", "/api/admin/overview", user, nil)
	suite.Equal(http.StatusForbidden, w.Code)

	w = suite.do("GET", "/api/admin/overview", "", nil)
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *IntegrationTestSuite) TestBanHidesArtFromPublicList() {
	suite.applyAndApproveArtist("mika-id", "Mika")
	art := suite.createArt("mika-id", "Dawn")

	admin := suite.signToken("admin-1", identity.RoleAdmin)
	w := suite.do("PUT", fmt.Sprintf("/api/arts/admin/%d/ban", art.ID), admin, nil)
	suite.Equal(http.StatusOK, w.Code)

	w = suite.do("GET", "/api/arts", "", nil)
	suite.Equal(http.StatusOK, w.Code)
	var arts []models.Art
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &arts))
	suite.Empty(arts)

	w = suite.do("PUT", fmt.Sprintf("/api/arts/admin/%d/unban", art.ID), admin, nil)
	suite.Equal(http.StatusOK, w.Code)

	w = suite.do("GET", "/api/arts", "", nil)
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &arts))
	suite.Len(arts, 1)
}

func (suite *IntegrationTestSuite) TestHomepageCuration() {
	admin := suite.signToken("admin-1", identity.RoleAdmin)

	w := suite.do("PUT", "/api/homepage", admin, models.UpdateHomepageRequest{
		FeaturedArtIDs:    []string{"a", "a", "b", "c", "d", "e", "f", "g", "h", "i"},
		FeaturedArtistIDs: []string{"x", "y", "x"},
	})
	suite.Equal(http.StatusOK, w.Code)

	w = suite.do("GET", "/api/homepage", "", nil)
	suite.Equal(http.StatusOK, w.Code)

	var homeConfig models.HomeConfig
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &homeConfig))
	suite.Len(homeConfig.FeaturedArtIDs, 8)
	suite.Equal([]string{"x", "y"}, homeConfig.FeaturedArtistIDs)
}

func (suite *IntegrationTestSuite) TestBlogModerationFlow() {
	author := suite.signToken("mika-id", identity.RoleArtist)

	w := suite.do("POST", "/api/blogs", author, models.CreateBlogRequest{
		Title:       "Studio Diary",
		Subtitle:    "a short note",
		ArtistName:  "Mika",
		Description: "process writeup",
		Image:       "https://example.com/cover.jpg",
	})
	suite.Equal(http.StatusCreated, w.Code)

	var blog models.Blog
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &blog))

	// Pending posts are not public.
	w = suite.do("GET", "/api/blogs", "", nil)
	suite.Equal(http.StatusOK, w.Code)
	var blogs []models.Blog
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &blogs))
	suite.Empty(blogs)

	admin := suite.signToken("admin-1", identity.RoleAdmin)
	w = suite.do("PUT", fmt.Sprintf("/api/blogs/admin/%d/approve", blog.ID), admin, nil)
	suite.Equal(http.StatusOK, w.Code)

	w = suite.do("GET", "/api/blogs", "", nil)
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &blogs))
	suite.Len(blogs, 1)
	suite.NotNil(blogs[0].ApprovedAt)
}

func (suite *IntegrationTestSuite) TestUserProfileRoundTrip() {
	token := suite.signToken("fan-1", identity.RoleUser)

	// No profile yet: empty object, not an error.
	w := suite.do("GET", "/api/users/me", token, nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq("{}", w.Body.String())

	w = suite.do("PUT", "/api/users/me", token, models.UpsertProfileRequest{
		DisplayName: "Fan One",
		Bio:         "collector",
		Country:     "Japan",
		City:        "Kyoto",
		Website:     "example.com",
		Instagram:   "instagram.com/fan",
		Facebook:    "facebook.com/fan",
	})
	suite.Equal(http.StatusOK, w.Code)

	var profile models.UserProfile
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &profile))
	suite.Equal("https://example.com", profile.Website)

	w = suite.do("GET", "/api/users/me", token, nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &profile))
	suite.Equal("Fan One", profile.DisplayName)
}

func (suite *IntegrationTestSuite) TestAdminOverview() {
	suite.applyAndApproveArtist("mika-id", "Mika")
	suite.createArt("mika-id", "Dawn")

	admin := suite.signToken("admin-1", identity.RoleAdmin)
	w := suite.do("GET", "/api/admin/overview", admin, nil)
	suite.Equal(http.StatusOK, w.Code)

	var overview models.OverviewResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &overview))
	suite.Equal(int64(0), overview.PendingArtists)
	suite.Equal(int64(1), overview.TotalArtists)
	suite.Equal(int64(1), overview.TotalArtworks)
}

func (suite *IntegrationTestSuite) TestValidationErrorsListFields() {
	suite.applyAndApproveArtist("mika-id", "Mika")

	w := suite.do("POST", "/api/arts", suite.signToken("mika-id", identity.RoleArtist), map[string]interface{}{
		"title":       "",
		"description": "oil on canvas",
		"category":    "Painting",
		"price":       -5,
		"images":      []string{"https://example.com/a.jpg"},
	})
	suite.Equal(http.StatusBadRequest, w.Code)

	var resp struct {
		Code   string              `json:"code"`
		Fields map[string][]string `json:"fields"`
	}
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("VALIDATION_ERROR", resp.Code)
	suite.Contains(resp.Fields, "title")
	suite.Contains(resp.Fields, "price")
	suite.Contains(resp.Fields, "availability")
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationTestSuite))
}
