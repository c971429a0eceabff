package handler_test

//go:generate mockgen -source=handler.go -destination=mocks/service_mock.go -package=mocks

import (
	"log/slog"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"charity/internal/request/handler"
	"charity/internal/request/handler/mocks"
	"charity/internal/request/models"
	dErrors "charity/pkg/domain-errors"
	"charity/pkg/pagination"
	"charity/pkg/testutil"
)

type HandlerSuite struct {
	suite.Suite
	service *mocks.MockService
	router  chi.Router
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func (s *HandlerSuite) SetupTest() {
	s.service = mocks.NewMockService(gomock.NewController(s.T()))
	logger := slog.New(slog.DiscardHandler)

	s.router = chi.NewRouter()
	handler.NewBeneficiaryHandler(s.service, logger).Register(s.router)
	handler.NewLookupHandler(s.service, logger).Register(s.router)
	s.router.Route("/charity-platform", func(r chi.Router) {
		handler.NewCharityHandler(s.service, logger).Register(r)
	})
}

func (s *HandlerSuite) TestBeneficiaryCreate() {
	t := s.T()

	s.Run("beneficiary acts for itself", func() {
		s.service.EXPECT().Create(gomock.Any(), models.BeneficiaryActor(5), int64(5), gomock.Any()).
			DoAndReturn(func(_ any, _ models.Actor, _ int64, req *models.CreateRequest) (*models.Request, error) {
				s.Equal("rent", req.Title)
				return &models.Request{ID: 11, BeneficiaryID: 5, Stage: models.StageSubmitted}, nil
			})
		body := map[string]any{"charity": 1, "layer1": 2, "layer2": 4, "title": "rent", "duration": "one_time"}
		req := testutil.AsBeneficiary(testutil.NewJSONRequest(t, http.MethodPost, "/beneficiary/5/requests/", body), 5)
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatus(t, rr, http.StatusCreated)
		testutil.AssertJSONContains(t, rr, "processing_stage", "submitted")
	})

	s.Run("invalid duration never reaches the service", func() {
		body := map[string]any{"charity": 1, "layer1": 2, "layer2": 4, "duration": "weekly"}
		req := testutil.AsBeneficiary(testutil.NewJSONRequest(t, http.MethodPost, "/beneficiary/5/requests/", body), 5)
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatus(t, rr, http.StatusBadRequest)
	})

	s.Run("another beneficiary is forbidden", func() {
		req := testutil.AsBeneficiary(testutil.NewRequest(t, http.MethodGet, "/beneficiary/5/requests/"), 6)
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatus(t, rr, http.StatusForbidden)
	})
}

func (s *HandlerSuite) TestBeneficiaryList() {
	t := s.T()
	s.service.EXPECT().ListForBeneficiary(gomock.Any(), models.BeneficiaryActor(5),
		models.ListQuery{Group: "initial", Ordering: "-effective_date"},
		pagination.Params{Page: 2, PageSize: pagination.DefaultPageSize},
	).Return(pagination.NewPage(pagination.Params{Page: 2, PageSize: 10}, 11, []models.Request{{ID: 1}}), nil)

	req := testutil.AsBeneficiary(testutil.NewRequest(t, http.MethodGet, "/beneficiary/5/requests/?group=initial&ordering=-effective_date&page=2"), 5)
	rr := testutil.DoRequest(s.router, req)
	testutil.AssertStatusOK(t, rr)
	testutil.AssertJSONContains(t, rr, "count", float64(11))
}

func (s *HandlerSuite) TestCharityOnBeneficiaryRoutes() {
	t := s.T()
	bound := models.CharityActor(3)
	bound.BeneficiaryID = 5

	s.Run("list is narrowed to the calling charity", func() {
		s.service.EXPECT().ListForBeneficiary(gomock.Any(), bound, models.ListQuery{}, gomock.Any()).
			Return(pagination.NewPage[models.Request](pagination.Params{Page: 1, PageSize: 10}, 0, nil), nil)
		req := testutil.AsCharity(testutil.NewRequest(t, http.MethodGet, "/beneficiary/5/requests/"), 3)
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatusOK(t, rr)
		testutil.AssertPageCount(t, rr, 0, 0)
	})

	s.Run("detail carries the path beneficiary", func() {
		s.service.EXPECT().Get(gomock.Any(), bound, int64(9)).
			Return(nil, dErrors.New(dErrors.CodeNotFound, "request not found"))
		req := testutil.AsCharity(testutil.NewRequest(t, http.MethodGet, "/beneficiary/5/requests/9/"), 3)
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatusAndError(t, rr, http.StatusNotFound, "not_found")
	})
}

func (s *HandlerSuite) TestGuardErrorsPassThrough() {
	t := s.T()
	s.service.EXPECT().Delete(gomock.Any(), models.BeneficiaryActor(5), int64(9)).
		Return(dErrors.New(dErrors.CodeForbidden, "You can only update or delete a request in the 'submitted' stage."))

	req := testutil.AsBeneficiary(testutil.NewRequest(t, http.MethodDelete, "/beneficiary/5/requests/9/"), 5)
	rr := testutil.DoRequest(s.router, req)
	testutil.AssertStatus(t, rr, http.StatusForbidden)
}

func (s *HandlerSuite) TestCharityScope() {
	t := s.T()

	s.Run("charity lists its own requests", func() {
		s.service.EXPECT().List(gomock.Any(), models.CharityActor(3), models.ListQuery{Search: "rent"}, gomock.Any()).
			Return(pagination.NewPage[models.Request](pagination.Params{Page: 1, PageSize: 10}, 0, nil), nil)
		req := testutil.AsCharity(testutil.NewRequest(t, http.MethodGet, "/charity-platform/requests/?search=rent"), 3)
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatusOK(t, rr)
	})

	s.Run("staff see every request", func() {
		s.service.EXPECT().ListOldOnetime(gomock.Any(), models.CharityActor(0), gomock.Any()).
			Return(pagination.NewPage[models.Request](pagination.Params{Page: 1, PageSize: 10}, 0, nil), nil)
		req := testutil.AsStaff(testutil.NewRequest(t, http.MethodGet, "/charity-platform/requests/old/onetime/"))
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatusOK(t, rr)
	})

	s.Run("beneficiary cannot use charity routes", func() {
		req := testutil.AsBeneficiary(testutil.NewRequest(t, http.MethodGet, "/charity-platform/requests/new/"), 5)
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatus(t, rr, http.StatusForbidden)
	})
}

func (s *HandlerSuite) TestChangeStage() {
	t := s.T()

	s.Run("valid stage", func() {
		s.service.EXPECT().ChangeStage(gomock.Any(), models.CharityActor(3), int64(9), models.StageApproved).
			Return(&models.Request{ID: 9, Stage: models.StageApproved}, nil)
		req := testutil.AsCharity(testutil.NewJSONRequest(t, http.MethodPatch, "/charity-platform/requests/9/stage/", map[string]string{"stage": "approved"}), 3)
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatusOK(t, rr)
		testutil.AssertJSONContains(t, rr, "processing_stage", "approved")
	})

	s.Run("unknown stage", func() {
		req := testutil.AsCharity(testutil.NewJSONRequest(t, http.MethodPatch, "/charity-platform/requests/9/stage/", map[string]string{"stage": "archived"}), 3)
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatus(t, rr, http.StatusBadRequest)
	})

	s.Run("child stage", func() {
		s.service.EXPECT().ChangeChildStage(gomock.Any(), models.CharityActor(3), int64(9), int64(4), models.StageCompleted).
			Return(&models.Child{ID: 4, RequestID: 9, Stage: models.StageCompleted}, nil)
		req := testutil.AsCharity(testutil.NewJSONRequest(t, http.MethodPatch, "/charity-platform/requests/9/children/4/stage/", map[string]string{"stage": "completed"}), 3)
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatusOK(t, rr)
	})
}

func (s *HandlerSuite) TestRecurringCreate() {
	t := s.T()

	s.Run("limit out of range", func() {
		req := testutil.AsBeneficiary(testutil.NewJSONRequest(t, http.MethodPost, "/beneficiary/5/requests/9/recurring/", map[string]int{"recurring_limit": 13}), 5)
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatus(t, rr, http.StatusBadRequest)
	})

	s.Run("created", func() {
		s.service.EXPECT().CreateRecurring(gomock.Any(), models.BeneficiaryActor(5), int64(9), &models.RecurringRequest{Limit: 3}).
			Return(&models.Recurring{ID: 1, RequestID: 9, Limit: 3}, nil)
		req := testutil.AsBeneficiary(testutil.NewJSONRequest(t, http.MethodPost, "/beneficiary/5/requests/9/recurring/", map[string]int{"recurring_limit": 3}), 5)
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatus(t, rr, http.StatusCreated)
	})
}

func (s *HandlerSuite) TestLookups() {
	t := s.T()

	s.Run("layer2 filtered by layer1", func() {
		s.service.EXPECT().Layer2s(gomock.Any(), int64(2)).Return([]models.Layer2{{ID: 4, Name: "rent", Layer1ID: 2}}, nil)
		req := testutil.AsBeneficiary(testutil.NewRequest(t, http.MethodGet, "/lookups/request-type-layer2/?layer1=2"), 5)
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatusOK(t, rr)
	})

	s.Run("stages are humanized", func() {
		req := testutil.AsBeneficiary(testutil.NewRequest(t, http.MethodGet, "/lookups/processing-stages/"), 5)
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatusOK(t, rr)
		choices := testutil.UnmarshalResponse[[]models.Choice](t, rr)
		s.Equal("Under Evaluation", (*choices)[2].Title)
	})

	s.Run("only staff add layer2 types", func() {
		req := testutil.AsCharity(testutil.NewJSONRequest(t, http.MethodPost, "/lookups/request-type-layer2/", map[string]any{"name": "fuel", "layer1": 2}), 3)
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatus(t, rr, http.StatusForbidden)
	})
}
