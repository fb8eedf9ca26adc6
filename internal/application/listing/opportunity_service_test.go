package listing

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/volhub/backend/internal/domain/identity"
	"github.com/volhub/backend/internal/domain/listing"
	"github.com/volhub/backend/internal/domain/shared"
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

func orgPrincipal(id uuid.UUID) *identity.Principal {
	return &identity.Principal{ID: id, Kind: identity.ActorOrganization, Name: "Helping Hands", Email: "contact@helpinghands.org"}
}

func volunteerPrincipal() *identity.Principal {
	return &identity.Principal{ID: uuid.New(), Kind: identity.ActorVolunteer, Name: "Jane Doe", Email: "jane@example.com"}
}

func newDetail(t *testing.T, orgID uuid.UUID) *listing.OpportunityDetail {
	o, err := listing.NewOpportunity(orgID, "Beach Cleanup", "Help clean the shoreline")
	require.NoError(t, err)
	return &listing.OpportunityDetail{
		Opportunity:      *o,
		OrganizationName: "Helping Hands",
	}
}

func TestOpportunityService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("organization creates opportunity it owns", func(t *testing.T) {
		repo := new(MockOpportunityRepository)
		service := NewOpportunityService(repo)
		orgID := uuid.New()

		repo.On("Create", ctx, mock.AnythingOfType("*listing.Opportunity")).Return(nil)

		resp, err := service.Create(ctx, CreateOpportunityRequest{
			Title:       "Beach Cleanup",
			Description: "Help clean the shoreline",
			Location:    "Shoreline Park",
			EventDate:   "2026-10-12",
			EventTime:   "09:30",
		}, orgPrincipal(orgID))

		require.NoError(t, err)
		assert.Equal(t, orgID, resp.OrganizationID)
		assert.Equal(t, "open", resp.Status)
		repo.AssertExpectations(t)
	})

	t.Run("volunteer principal is forbidden", func(t *testing.T) {
		repo := new(MockOpportunityRepository)
		service := NewOpportunityService(repo)

		resp, err := service.Create(ctx, CreateOpportunityRequest{
			Title:       "Beach Cleanup",
			Description: "desc",
		}, volunteerPrincipal())

		assert.Nil(t, resp)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "FORBIDDEN", domainErr.Code)
		repo.AssertNotCalled(t, "Create")
	})

	t.Run("missing title rejected before store", func(t *testing.T) {
		repo := new(MockOpportunityRepository)
		service := NewOpportunityService(repo)

		resp, err := service.Create(ctx, CreateOpportunityRequest{Description: "desc"}, orgPrincipal(uuid.New()))

		assert.Nil(t, resp)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "Title, description, and organization are required", domainErr.Message)
		repo.AssertNotCalled(t, "Create")
	})
}

func TestOpportunityService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("status defaults to open", func(t *testing.T) {
		repo := new(MockOpportunityRepository)
		service := NewOpportunityService(repo)

		repo.On("FindAll", ctx, listing.Filter{Status: "open", Location: "Austin"}).
			Return([]listing.OpportunityDetail{*newDetail(t, uuid.New())}, nil)

		resp, err := service.List(ctx, ListFilter{Location: "Austin"})

		require.NoError(t, err)
		require.Len(t, resp, 1)
		assert.Equal(t, "Helping Hands", resp[0].OrganizationName)
		repo.AssertExpectations(t)
	})

	t.Run("explicit status passes through", func(t *testing.T) {
		repo := new(MockOpportunityRepository)
		service := NewOpportunityService(repo)

		repo.On("FindAll", ctx, listing.Filter{Status: "closed"}).
			Return([]listing.OpportunityDetail{}, nil)

		resp, err := service.List(ctx, ListFilter{Status: "closed"})

		require.NoError(t, err)
		assert.Empty(t, resp)
	})
}

func TestOpportunityService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("absent opportunity yields not found message", func(t *testing.T) {
		repo := new(MockOpportunityRepository)
		service := NewOpportunityService(repo)
		id := uuid.New()

		repo.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)

		resp, err := service.Get(ctx, id)

		assert.Nil(t, resp)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "Opportunity not found", domainErr.Message)
	})

	t.Run("returns joined organization fields", func(t *testing.T) {
		repo := new(MockOpportunityRepository)
		service := NewOpportunityService(repo)
		detail := newDetail(t, uuid.New())
		detail.OrganizationEmail = "contact@helpinghands.org"

		repo.On("FindByID", ctx, detail.ID).Return(detail, nil)

		resp, err := service.Get(ctx, detail.ID)

		require.NoError(t, err)
		assert.Equal(t, "contact@helpinghands.org", resp.OrganizationEmail)
	})
}

func TestOpportunityService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("owner performs full overwrite", func(t *testing.T) {
		repo := new(MockOpportunityRepository)
		service := NewOpportunityService(repo)
		orgID := uuid.New()
		detail := newDetail(t, orgID)

		repo.On("FindByID", ctx, detail.ID).Return(detail, nil)
		repo.On("Update", ctx, mock.AnythingOfType("*listing.Opportunity")).Return(nil)

		resp, err := service.Update(ctx, detail.ID, UpdateOpportunityRequest{
			Title:       "River Cleanup",
			Description: "New description",
			Status:      "closed",
		}, orgPrincipal(orgID))

		require.NoError(t, err)
		assert.Equal(t, "River Cleanup", resp.Title)
		assert.Equal(t, "closed", resp.Status)
		repo.AssertExpectations(t)
	})

	t.Run("non-owner organization is forbidden", func(t *testing.T) {
		repo := new(MockOpportunityRepository)
		service := NewOpportunityService(repo)
		detail := newDetail(t, uuid.New())

		repo.On("FindByID", ctx, detail.ID).Return(detail, nil)

		resp, err := service.Update(ctx, detail.ID, UpdateOpportunityRequest{
			Title:       "River Cleanup",
			Description: "desc",
		}, orgPrincipal(uuid.New()))

		assert.Nil(t, resp)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "FORBIDDEN", domainErr.Code)
		repo.AssertNotCalled(t, "Update")
	})

	t.Run("volunteer is forbidden even for existing opportunity", func(t *testing.T) {
		repo := new(MockOpportunityRepository)
		service := NewOpportunityService(repo)
		detail := newDetail(t, uuid.New())

		repo.On("FindByID", ctx, detail.ID).Return(detail, nil)

		_, err := service.Update(ctx, detail.ID, UpdateOpportunityRequest{
			Title:       "x",
			Description: "y",
		}, volunteerPrincipal())

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "FORBIDDEN", domainErr.Code)
	})

	t.Run("absent opportunity yields not found before ownership check", func(t *testing.T) {
		repo := new(MockOpportunityRepository)
		service := NewOpportunityService(repo)
		id := uuid.New()

		repo.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)

		_, err := service.Update(ctx, id, UpdateOpportunityRequest{Title: "x", Description: "y"}, orgPrincipal(uuid.New()))

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "NOT_FOUND", domainErr.Code)
	})
}

func TestOpportunityService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("owner deletes", func(t *testing.T) {
		repo := new(MockOpportunityRepository)
		service := NewOpportunityService(repo)
		orgID := uuid.New()
		detail := newDetail(t, orgID)

		repo.On("FindByID", ctx, detail.ID).Return(detail, nil)
		repo.On("Delete", ctx, detail.ID).Return(nil)

		require.NoError(t, service.Delete(ctx, detail.ID, orgPrincipal(orgID)))
		repo.AssertExpectations(t)
	})

	t.Run("non-owner cannot delete", func(t *testing.T) {
		repo := new(MockOpportunityRepository)
		service := NewOpportunityService(repo)
		detail := newDetail(t, uuid.New())

		repo.On("FindByID", ctx, detail.ID).Return(detail, nil)

		err := service.Delete(ctx, detail.ID, orgPrincipal(uuid.New()))

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "FORBIDDEN", domainErr.Code)
		repo.AssertNotCalled(t, "Delete")
	})
}

func TestOpportunityService_Search(t *testing.T) {
	ctx := context.Background()

	t.Run("requires a query", func(t *testing.T) {
		repo := new(MockOpportunityRepository)
		service := NewOpportunityService(repo)

		resp, err := service.Search(ctx, "   ")

		assert.Nil(t, resp)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "Search query is required", domainErr.Message)
		repo.AssertNotCalled(t, "Search")
	})

	t.Run("passes query to the store", func(t *testing.T) {
		repo := new(MockOpportunityRepository)
		service := NewOpportunityService(repo)

		repo.On("Search", ctx, "cleanup").
			Return([]listing.OpportunityDetail{*newDetail(t, uuid.New())}, nil)

		resp, err := service.Search(ctx, "cleanup")

		require.NoError(t, err)
		assert.Len(t, resp, 1)
	})
}
