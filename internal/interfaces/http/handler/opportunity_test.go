package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	listingapp "github.com/volhub/backend/internal/application/listing"
	"github.com/volhub/backend/internal/domain/identity"
	"github.com/volhub/backend/internal/domain/listing"
	"github.com/volhub/backend/internal/domain/shared"
	"github.com/volhub/backend/internal/interfaces/http/dto"
	"github.com/volhub/backend/internal/interfaces/http/middleware"
)

// MockOpportunityRepository is a mock implementation of listing.OpportunityRepository
type MockOpportunityRepository struct {
	mock.Mock
}

func (m *MockOpportunityRepository) Create(ctx context.Context, opportunity *listing.Opportunity) error {
	args := m.Called(ctx, opportunity)
	return args.Error(0)
}

func (m *MockOpportunityRepository) Update(ctx context.Context, opportunity *listing.Opportunity) error {
	args := m.Called(ctx, opportunity)
	return args.Error(0)
}

func (m *MockOpportunityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOpportunityRepository) FindByID(ctx context.Context, id uuid.UUID) (*listing.OpportunityDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*listing.OpportunityDetail), args.Error(1)
}

func (m *MockOpportunityRepository) FindAll(ctx context.Context, filter listing.Filter) ([]listing.OpportunityDetail, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]listing.OpportunityDetail), args.Error(1)
}

func (m *MockOpportunityRepository) FindByOrganization(ctx context.Context, organizationID uuid.UUID) ([]*listing.Opportunity, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*listing.Opportunity), args.Error(1)
}

func (m *MockOpportunityRepository) Search(ctx context.Context, query string) ([]listing.OpportunityDetail, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]listing.OpportunityDetail), args.Error(1)
}

// principalStub injects a fixed principal, standing in for the Basic auth middleware
func principalStub(principal *identity.Principal) gin.HandlerFunc {
	return func(c *gin.Context) {
		if principal == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponse(dto.ErrCodeUnauthorized, "Invalid credentials"))
			return
		}
		c.Set(middleware.PrincipalKey, principal)
		c.Next()
	}
}

func setupOpportunityRouter(repo *MockOpportunityRepository, principal *identity.Principal) *gin.Engine {
	service := listingapp.NewOpportunityService(repo)
	h := NewOpportunityHandler(service, principalStub(principal))

	router := gin.New()
	api := router.Group("/api")
	h.RegisterRoutes(api)
	return router
}

func newOpenDetail(orgID uuid.UUID, title string) listing.OpportunityDetail {
	opportunity, _ := listing.NewOpportunity(orgID, title, "desc")
	return listing.OpportunityDetail{
		Opportunity:      *opportunity,
		OrganizationName: "Helping Hands",
	}
}

func TestOpportunityHandler_Create(t *testing.T) {
	t.Run("organization creates an opportunity", func(t *testing.T) {
		repo := new(MockOpportunityRepository)
		orgID := uuid.New()
		router := setupOpportunityRouter(repo, &identity.Principal{ID: orgID, Kind: identity.ActorOrganization})

		repo.On("Create", mock.Anything, mock.AnythingOfType("*listing.Opportunity")).Return(nil)

		w := performJSON(router, http.MethodPost, "/api/opportunities", gin.H{
			"title":       "Beach Cleanup",
			"description": "Help clean the shoreline",
		})

		assert.Equal(t, http.StatusCreated, w.Code)

		var resp dto.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		data := resp.Data.(map[string]interface{})
		assert.Equal(t, orgID.String(), data["organization_id"])
		assert.Equal(t, "open", data["status"])
	})

	t.Run("volunteer cannot create", func(t *testing.T) {
		repo := new(MockOpportunityRepository)
		router := setupOpportunityRouter(repo, &identity.Principal{ID: uuid.New(), Kind: identity.ActorVolunteer})

		w := performJSON(router, http.MethodPost, "/api/opportunities", gin.H{
			"title":       "Beach Cleanup",
			"description": "Help clean the shoreline",
		})

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "Only organizations can create opportunities")
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("unauthenticated request is rejected", func(t *testing.T) {
		repo := new(MockOpportunityRepository)
		router := setupOpportunityRouter(repo, nil)

		w := performJSON(router, http.MethodPost, "/api/opportunities", gin.H{
			"title":       "Beach Cleanup",
			"description": "Help clean the shoreline",
		})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestOpportunityHandler_List(t *testing.T) {
	t.Run("status defaults to open", func(t *testing.T) {
		repo := new(MockOpportunityRepository)
		router := setupOpportunityRouter(repo, nil)

		details := []listing.OpportunityDetail{newOpenDetail(uuid.New(), "Beach Cleanup")}
		repo.On("FindAll", mock.Anything, listing.Filter{Status: "open"}).Return(details, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/opportunities", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Beach Cleanup")
		assert.Contains(t, w.Body.String(), "Helping Hands")
		repo.AssertExpectations(t)
	})

	t.Run("filters pass through", func(t *testing.T) {
		repo := new(MockOpportunityRepository)
		router := setupOpportunityRouter(repo, nil)

		repo.On("FindAll", mock.Anything, listing.Filter{
			Status:   "closed",
			Location: "Austin",
			Skill:    "lifting",
		}).Return([]listing.OpportunityDetail{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/opportunities?status=closed&location=Austin&skills=lifting", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		repo.AssertExpectations(t)
	})
}

func TestOpportunityHandler_Search(t *testing.T) {
	t.Run("empty query yields 400 with the original message", func(t *testing.T) {
		repo := new(MockOpportunityRepository)
		router := setupOpportunityRouter(repo, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/search", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Search query is required")
	})

	t.Run("matches pass through", func(t *testing.T) {
		repo := new(MockOpportunityRepository)
		router := setupOpportunityRouter(repo, nil)

		details := []listing.OpportunityDetail{newOpenDetail(uuid.New(), "Beach Cleanup")}
		repo.On("Search", mock.Anything, "cleanup").Return(details, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/search?query=cleanup", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Beach Cleanup")
	})
}

func TestOpportunityHandler_Update(t *testing.T) {
	t.Run("non-owning organization is forbidden", func(t *testing.T) {
		repo := new(MockOpportunityRepository)
		router := setupOpportunityRouter(repo, &identity.Principal{ID: uuid.New(), Kind: identity.ActorOrganization})

		detail := newOpenDetail(uuid.New(), "Beach Cleanup")
		repo.On("FindByID", mock.Anything, detail.ID).Return(&detail, nil)

		w := performJSON(router, http.MethodPut, "/api/opportunities/"+detail.ID.String(), gin.H{
			"title":       "Beach Cleanup",
			"description": "Updated",
		})

		assert.Equal(t, http.StatusForbidden, w.Code)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("unknown opportunity yields 404", func(t *testing.T) {
		repo := new(MockOpportunityRepository)
		router := setupOpportunityRouter(repo, &identity.Principal{ID: uuid.New(), Kind: identity.ActorOrganization})

		id := uuid.New()
		repo.On("FindByID", mock.Anything, id).Return(nil, shared.ErrNotFound)

		w := performJSON(router, http.MethodPut, "/api/opportunities/"+id.String(), gin.H{
			"title":       "Beach Cleanup",
			"description": "Updated",
		})

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Opportunity not found")
	})
}

func TestOpportunityHandler_Delete(t *testing.T) {
	t.Run("owner deletes the opportunity", func(t *testing.T) {
		repo := new(MockOpportunityRepository)
		orgID := uuid.New()
		router := setupOpportunityRouter(repo, &identity.Principal{ID: orgID, Kind: identity.ActorOrganization})

		detail := newOpenDetail(orgID, "Beach Cleanup")
		repo.On("FindByID", mock.Anything, detail.ID).Return(&detail, nil)
		repo.On("Delete", mock.Anything, detail.ID).Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/api/opportunities/"+detail.ID.String(), nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		repo.AssertExpectations(t)
	})
}
