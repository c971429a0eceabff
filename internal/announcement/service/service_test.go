package service_test

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"charity/internal/announcement/models"
	"charity/internal/announcement/service"
	"charity/internal/announcement/service/mocks"
	"charity/internal/announcement/store"
	"charity/internal/cache"
	rmodels "charity/internal/request/models"
	dErrors "charity/pkg/domain-errors"
	"charity/pkg/requestcontext"
)

var fixedNow = time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)

type ServiceSuite struct {
	suite.Suite
	ctx      context.Context
	store    *store.InMemoryStore
	requests *mocks.MockRequests
	service  *service.Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.ctx = requestcontext.WithTime(context.Background(), fixedNow)
	s.store = store.NewInMemory()
	s.requests = mocks.NewMockRequests(gomock.NewController(s.T()))
	s.service = service.NewService(s.store, s.requests,
		service.WithCache(cache.New(cache.NewMemoryBackend(), time.Hour)),
	)
}

func (s *ServiceSuite) requireCode(err error, code dErrors.Code) {
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, code), "got %v", err)
}

func (s *ServiceSuite) TestRecord() {
	s.Require().NoError(s.service.Record(s.ctx, models.Job{
		Kind: models.KindStageChanged, RequestID: 3, BeneficiaryID: 7, CharityID: 2, Stage: "in_progress",
	}))
	s.Require().NoError(s.service.Record(s.ctx, models.Job{
		Kind: models.KindRequestDeleted, RequestID: 4, BeneficiaryID: 7,
	}))

	onRequests, err := s.service.UnseenOnRequests(s.ctx, 7)
	s.Require().NoError(err)
	s.Require().Len(onRequests, 1)
	s.Equal("Request Moved to In Progress", onRequests[0].Title)
	s.Require().NotNil(onRequests[0].CharityID)
	s.Equal(int64(2), *onRequests[0].CharityID)

	direct, err := s.service.Unseen(s.ctx, 7)
	s.Require().NoError(err)
	s.Require().Len(direct, 1)
	s.Equal("The request #4 has been deleted.", direct[0].Description)
	s.Nil(direct[0].CharityID)

	s.Error(s.service.Record(s.ctx, models.Job{Kind: "request_archived", RequestID: 1, BeneficiaryID: 7}))
}

func (s *ServiceSuite) TestUnseenWindow() {
	old := requestcontext.WithTime(context.Background(), fixedNow.Add(-31*24*time.Hour))
	s.Require().NoError(s.service.Record(old, models.Job{Kind: models.KindRequestDeleted, RequestID: 1, BeneficiaryID: 7}))
	s.Require().NoError(s.service.Record(s.ctx, models.Job{Kind: models.KindRequestDeleted, RequestID: 2, BeneficiaryID: 7}))

	direct, err := s.service.Unseen(s.ctx, 7)
	s.Require().NoError(err)
	s.Require().Len(direct, 1)
	s.Contains(direct[0].Description, "#2")

	all, err := s.service.ListToBeneficiary(s.ctx, 7)
	s.Require().NoError(err)
	s.Len(all, 2)
}

func (s *ServiceSuite) TestOpenMarksSeen() {
	s.Require().NoError(s.service.Record(s.ctx, models.Job{Kind: models.KindRequestDeleted, RequestID: 2, BeneficiaryID: 7}))
	direct, err := s.service.Unseen(s.ctx, 7)
	s.Require().NoError(err)
	s.Require().Len(direct, 1)
	id := direct[0].ID

	s.Run("another beneficiary", func() {
		_, err := s.service.Open(s.ctx, rmodels.BeneficiaryActor(8), id)
		s.requireCode(err, dErrors.CodeForbidden)
	})

	s.Run("staff reading it leaves it unseen", func() {
		staff := rmodels.CharityActor(0)
		staff.BeneficiaryID = 7
		a, err := s.service.Open(s.ctx, staff, id)
		s.Require().NoError(err)
		s.False(a.Seen)

		direct, err := s.service.Unseen(s.ctx, 7)
		s.Require().NoError(err)
		s.Len(direct, 1)
	})

	a, err := s.service.Open(s.ctx, rmodels.BeneficiaryActor(7), id)
	s.Require().NoError(err)
	s.True(a.Seen)

	direct, err = s.service.Unseen(s.ctx, 7)
	s.Require().NoError(err)
	s.Empty(direct, "cached list is invalidated once seen")

	_, err = s.service.Open(s.ctx, rmodels.BeneficiaryActor(7), 999)
	s.requireCode(err, dErrors.CodeNotFound)
}

func (s *ServiceSuite) TestOpenOnRequest() {
	s.Require().NoError(s.service.Record(s.ctx, models.Job{Kind: models.KindRequestCreated, RequestID: 3, BeneficiaryID: 7}))
	list, err := s.service.UnseenOnRequests(s.ctx, 7)
	s.Require().NoError(err)
	s.Require().Len(list, 1)

	_, err = s.service.OpenOnRequest(s.ctx, rmodels.BeneficiaryActor(8), list[0].ID)
	s.requireCode(err, dErrors.CodeForbidden)

	s.Run("charity reads without marking seen", func() {
		charity := rmodels.CharityActor(2)
		charity.BeneficiaryID = 7
		s.requests.EXPECT().Get(gomock.Any(), charity, int64(3)).Return(&rmodels.Detail{}, nil)
		a, err := s.service.OpenOnRequest(s.ctx, charity, list[0].ID)
		s.Require().NoError(err)
		s.False(a.Seen)

		other := rmodels.CharityActor(5)
		other.BeneficiaryID = 7
		s.requests.EXPECT().Get(gomock.Any(), other, int64(3)).
			Return(nil, dErrors.New(dErrors.CodeNotFound, "request not found"))
		_, err = s.service.OpenOnRequest(s.ctx, other, list[0].ID)
		s.requireCode(err, dErrors.CodeNotFound)

		unseen, err := s.service.UnseenOnRequests(s.ctx, 7)
		s.Require().NoError(err)
		s.Len(unseen, 1)
	})

	a, err := s.service.OpenOnRequest(s.ctx, rmodels.BeneficiaryActor(7), list[0].ID)
	s.Require().NoError(err)
	s.True(a.Seen)

	list, err = s.service.UnseenOnRequests(s.ctx, 7)
	s.Require().NoError(err)
	s.Empty(list)
}

func (s *ServiceSuite) TestCharitySideFollowsRequestScope() {
	charity := rmodels.CharityActor(2)
	other := rmodels.CharityActor(5)
	detail := &rmodels.Detail{Request: rmodels.Request{ID: 3, BeneficiaryID: 7, CharityID: 2}}
	s.requests.EXPECT().Get(gomock.Any(), charity, int64(3)).Return(detail, nil).AnyTimes()
	s.requests.EXPECT().Get(gomock.Any(), other, int64(3)).
		Return(nil, dErrors.New(dErrors.CodeNotFound, "request not found")).AnyTimes()

	created, err := s.service.CreateForRequest(s.ctx, charity, 3, &models.AnnouncementRequest{Title: "visit", Description: "on monday"})
	s.Require().NoError(err)
	s.Equal(int64(7), created.BeneficiaryID)
	s.Require().NotNil(created.CharityID)

	_, err = s.service.GetForRequest(s.ctx, other, created.ID)
	s.requireCode(err, dErrors.CodeNotFound)

	updated, err := s.service.UpdateForRequest(s.ctx, charity, created.ID, &models.AnnouncementRequest{Title: "visit moved"})
	s.Require().NoError(err)
	s.Equal("visit moved", updated.Title)

	list, err := s.service.ListForRequest(s.ctx, charity, 3)
	s.Require().NoError(err)
	s.Len(list, 1)

	s.requireCode(s.service.DeleteForRequest(s.ctx, other, created.ID), dErrors.CodeNotFound)
	s.Require().NoError(s.service.DeleteForRequest(s.ctx, charity, created.ID))

	list, err = s.service.UnseenOnRequests(s.ctx, 7)
	s.Require().NoError(err)
	s.Empty(list)
}

func (s *ServiceSuite) TestStaffAnnouncementHasNoCharity() {
	a, err := s.service.CreateToBeneficiary(s.ctx, rmodels.CharityActor(0), 7, &models.AnnouncementRequest{Title: "hello"})
	s.Require().NoError(err)
	s.Nil(a.CharityID)

	direct, err := s.service.Unseen(s.ctx, 7)
	s.Require().NoError(err)
	s.Len(direct, 1)
}
