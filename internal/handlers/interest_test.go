package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/greapevine/collaborator-finder/internal/constants"
	"github.com/greapevine/collaborator-finder/internal/database"
	"github.com/greapevine/collaborator-finder/internal/middleware"
	"github.com/greapevine/collaborator-finder/internal/models"
	"github.com/greapevine/collaborator-finder/internal/repository"
	"github.com/greapevine/collaborator-finder/internal/services"
)

// InterestHandlerTestSuite defines the test suite for InterestHandler
type InterestHandlerTestSuite struct {
	suite.Suite
	db              *gorm.DB
	handler         *InterestHandler
	interestService *services.InterestService
	projectService  *services.ProjectService
	skillService    *services.SkillService
}

// SetupTest runs before each test
func (suite *InterestHandlerTestSuite) SetupTest() {
	var err error

	dsn := fmt.Sprintf("file:handlers_test_%d?mode=memory&cache=shared&_busy_timeout=10000",
		atomic.AddInt64(&handlerTestDBCounter, 1))
	suite.db, err = gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)

	err = suite.db.AutoMigrate(
		&models.User{},
		&models.Skill{},
		&models.UserSkill{},
		&models.Project{},
		&models.ProjectContributor{},
		&models.ProjectInterest{},
	)
	suite.Require().NoError(err)
	suite.Require().NoError(database.SeedSkills(suite.db))

	database.SetDB(suite.db)

	projectRepo := repository.NewProjectRepository(suite.db)
	suite.interestService = services.NewInterestService(
		repository.NewInterestRepository(suite.db), projectRepo)
	suite.projectService = services.NewProjectService(
		projectRepo, repository.NewUserRepository(suite.db))
	suite.skillService = services.NewSkillService(repository.NewSkillRepository(suite.db))
	suite.handler = NewInterestHandler(suite.interestService)

	gin.SetMode(gin.TestMode)
}

// TearDownTest runs after each test
func (suite *InterestHandlerTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *InterestHandlerTestSuite) createTestUser(username string) *models.User {
	user := &models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "hashedpassword",
		FirstName:    "Hidden",
		LastName:     "Profile",
		Country:      "Nowhere",
	}
	suite.db.Create(user)
	return user
}

func (suite *InterestHandlerTestSuite) createTestProject(ownerID uint64, maxCollaborators int) *models.Project {
	project, err := suite.projectService.CreateProject(services.CreateProjectInput{
		Name:                 "Interest Project",
		OwnerID:              ownerID,
		MaximumCollaborators: maxCollaborators,
	})
	suite.Require().NoError(err)
	return project
}

func (suite *InterestHandlerTestSuite) newRouter(userID uint64) *gin.Engine {
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(constants.ContextKeyUserID, userID)
		c.Next()
	})

	r.POST("/api/projects/:id/interest", suite.handler.ExpressInterest)
	r.GET("/api/projects/:id/interests/pending", middleware.RequireProjectOwner(), suite.handler.ListPendingInterests)
	r.POST("/api/projects/:id/interests/:interest_id/accept", middleware.RequireProjectOwner(), suite.handler.AcceptInterest)
	r.POST("/api/projects/:id/interests/:interest_id/decline", middleware.RequireProjectOwner(), suite.handler.DeclineInterest)
	return r
}

func (suite *InterestHandlerTestSuite) serve(r *gin.Engine, method, url string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func (suite *InterestHandlerTestSuite) TestExpressInterest() {
	owner := suite.createTestUser("owner")
	applicant := suite.createTestUser("applicant")
	project := suite.createTestProject(owner.ID, 3)

	r := suite.newRouter(applicant.ID)
	w := suite.serve(r, http.MethodPost, fmt.Sprintf("/api/projects/%d/interest", project.ID))

	suite.Equal(http.StatusCreated, w.Code)

	var response struct {
		Message    string `json:"message"`
		InterestID uint64 `json:"interest_id"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.NotZero(response.InterestID)

	// Duplicate expression conflicts
	w = suite.serve(r, http.MethodPost, fmt.Sprintf("/api/projects/%d/interest", project.ID))
	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *InterestHandlerTestSuite) TestExpressInterest_OwnProject() {
	owner := suite.createTestUser("owner")
	project := suite.createTestProject(owner.ID, 3)

	r := suite.newRouter(owner.ID)
	w := suite.serve(r, http.MethodPost, fmt.Sprintf("/api/projects/%d/interest", project.ID))

	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *InterestHandlerTestSuite) TestExpressInterest_FullProject() {
	owner := suite.createTestUser("owner")
	applicant := suite.createTestUser("applicant")
	project := suite.createTestProject(owner.ID, 1)

	r := suite.newRouter(applicant.ID)
	w := suite.serve(r, http.MethodPost, fmt.Sprintf("/api/projects/%d/interest", project.ID))

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *InterestHandlerTestSuite) TestListPendingInterests_PrivacyShape() {
	owner := suite.createTestUser("owner")
	applicant := suite.createTestUser("applicant")
	project := suite.createTestProject(owner.ID, 3)

	_, err := suite.skillService.AddSkill(services.AddSkillInput{
		UserID:    applicant.ID,
		SkillName: "go",
		Level:     models.SkillLevelExperienced,
	})
	suite.Require().NoError(err)

	_, err = suite.interestService.ExpressInterest(applicant.ID, project.ID)
	suite.Require().NoError(err)

	r := suite.newRouter(owner.ID)
	w := suite.serve(r, http.MethodGet, fmt.Sprintf("/api/projects/%d/interests/pending", project.ID))

	suite.Equal(http.StatusOK, w.Code)

	var response struct {
		Interests []map[string]json.RawMessage `json:"interests"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Require().Len(response.Interests, 1)

	var applicantView map[string]json.RawMessage
	suite.Require().NoError(json.Unmarshal(response.Interests[0]["applicant"], &applicantView))

	// Owners see username, email and skills of an applicant; nothing else
	// about the profile leaks through this endpoint.
	suite.Len(applicantView, 3)
	suite.Contains(applicantView, "username")
	suite.Contains(applicantView, "email")
	suite.Contains(applicantView, "skills")
	suite.NotContains(w.Body.String(), "first_name")
	suite.NotContains(w.Body.String(), "country")
}

func (suite *InterestHandlerTestSuite) TestListPendingInterests_NotOwner() {
	owner := suite.createTestUser("owner")
	applicant := suite.createTestUser("applicant")
	project := suite.createTestProject(owner.ID, 3)

	r := suite.newRouter(applicant.ID)
	w := suite.serve(r, http.MethodGet, fmt.Sprintf("/api/projects/%d/interests/pending", project.ID))

	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *InterestHandlerTestSuite) TestAcceptInterest() {
	owner := suite.createTestUser("owner")
	applicant := suite.createTestUser("applicant")
	project := suite.createTestProject(owner.ID, 3)

	interest, err := suite.interestService.ExpressInterest(applicant.ID, project.ID)
	suite.Require().NoError(err)

	r := suite.newRouter(owner.ID)
	w := suite.serve(r, http.MethodPost,
		fmt.Sprintf("/api/projects/%d/interests/%d/accept", project.ID, interest.ID))

	suite.Equal(http.StatusOK, w.Code)

	var count int64
	suite.db.Model(&models.ProjectContributor{}).
		Where("project_id = ?", project.ID).Count(&count)
	suite.EqualValues(2, count)

	// Accepting again conflicts, the interest is no longer pending
	w = suite.serve(r, http.MethodPost,
		fmt.Sprintf("/api/projects/%d/interests/%d/accept", project.ID, interest.ID))
	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *InterestHandlerTestSuite) TestAcceptInterest_NoSeat() {
	owner := suite.createTestUser("owner")
	first := suite.createTestUser("first")
	second := suite.createTestUser("second")
	project := suite.createTestProject(owner.ID, 2)

	firstInterest, err := suite.interestService.ExpressInterest(first.ID, project.ID)
	suite.Require().NoError(err)
	secondInterest, err := suite.interestService.ExpressInterest(second.ID, project.ID)
	suite.Require().NoError(err)

	r := suite.newRouter(owner.ID)
	w := suite.serve(r, http.MethodPost,
		fmt.Sprintf("/api/projects/%d/interests/%d/accept", project.ID, firstInterest.ID))
	suite.Equal(http.StatusOK, w.Code)

	w = suite.serve(r, http.MethodPost,
		fmt.Sprintf("/api/projects/%d/interests/%d/accept", project.ID, secondInterest.ID))
	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *InterestHandlerTestSuite) TestDeclineInterest() {
	owner := suite.createTestUser("owner")
	applicant := suite.createTestUser("applicant")
	project := suite.createTestProject(owner.ID, 3)

	interest, err := suite.interestService.ExpressInterest(applicant.ID, project.ID)
	suite.Require().NoError(err)

	r := suite.newRouter(owner.ID)
	w := suite.serve(r, http.MethodPost,
		fmt.Sprintf("/api/projects/%d/interests/%d/decline", project.ID, interest.ID))

	suite.Equal(http.StatusOK, w.Code)

	var count int64
	suite.db.Model(&models.ProjectContributor{}).
		Where("project_id = ?", project.ID).Count(&count)
	suite.EqualValues(1, count)
}

func (suite *InterestHandlerTestSuite) TestInterestIDValidation() {
	owner := suite.createTestUser("owner")
	project := suite.createTestProject(owner.ID, 3)

	r := suite.newRouter(owner.ID)

	w := suite.serve(r, http.MethodPost,
		fmt.Sprintf("/api/projects/%d/interests/oops/accept", project.ID))
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.serve(r, http.MethodPost,
		fmt.Sprintf("/api/projects/%d/interests/9999/accept", project.ID))
	suite.Equal(http.StatusNotFound, w.Code)
}

func TestInterestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(InterestHandlerTestSuite))
}
