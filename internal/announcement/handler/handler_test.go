package handler_test

//go:generate mockgen -source=handler.go -destination=mocks/handler_mock.go -package=mocks

import (
	"log/slog"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"charity/internal/announcement/handler"
	"charity/internal/announcement/handler/mocks"
	"charity/internal/announcement/models"
	rmodels "charity/internal/request/models"
	dErrors "charity/pkg/domain-errors"
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
	h := handler.New(s.service, slog.New(slog.DiscardHandler))

	s.router = chi.NewRouter()
	s.router.Route("/beneficiary-platform", h.RegisterBeneficiary)
	s.router.Route("/charity-platform", h.RegisterCharity)
}

func (s *HandlerSuite) TestBeneficiaryAnnouncements() {
	t := s.T()

	s.Run("unseen list", func() {
		s.service.EXPECT().Unseen(gomock.Any(), int64(4)).
			Return([]models.ToBeneficiary{{ID: 1, BeneficiaryID: 4, Title: "delete"}}, nil)
		req := testutil.AsBeneficiary(testutil.NewRequest(t, http.MethodGet, "/beneficiary-platform/beneficiary/4/announcements/"), 4)
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatusOK(t, rr)
		out := testutil.UnmarshalResponse[[]models.ToBeneficiary](t, rr)
		s.Len(*out, 1)
	})

	s.Run("opening marks seen", func() {
		s.service.EXPECT().Open(gomock.Any(), rmodels.BeneficiaryActor(4), int64(9)).
			Return(&models.ToBeneficiary{ID: 9, BeneficiaryID: 4, Seen: true}, nil)
		req := testutil.AsBeneficiary(testutil.NewRequest(t, http.MethodGet, "/beneficiary-platform/beneficiary/4/announcements/9/"), 4)
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatusOK(t, rr)
		testutil.AssertJSONContains(t, rr, "seen", true)
	})

	s.Run("someone else's announcement", func() {
		s.service.EXPECT().OpenOnRequest(gomock.Any(), rmodels.BeneficiaryActor(4), int64(3)).
			Return(nil, dErrors.New(dErrors.CodeForbidden, "You do not have permission to perform this action."))
		req := testutil.AsBeneficiary(testutil.NewRequest(t, http.MethodGet, "/beneficiary-platform/beneficiary/4/request-announcements/3/"), 4)
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatusAndError(t, rr, http.StatusForbidden, "forbidden")
	})

	s.Run("charity reads as itself", func() {
		viewer := rmodels.CharityActor(2)
		viewer.BeneficiaryID = 4
		s.service.EXPECT().Open(gomock.Any(), viewer, int64(9)).
			Return(&models.ToBeneficiary{ID: 9, BeneficiaryID: 4}, nil)
		req := testutil.AsCharity(testutil.NewRequest(t, http.MethodGet, "/beneficiary-platform/beneficiary/4/announcements/9/"), 2)
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatusOK(t, rr)
		testutil.AssertJSONContains(t, rr, "seen", false)
	})

	s.Run("another beneficiary never reaches the service", func() {
		req := testutil.AsBeneficiary(testutil.NewRequest(t, http.MethodGet, "/beneficiary-platform/beneficiary/4/request-announcements/"), 5)
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatus(t, rr, http.StatusForbidden)
	})
}

func (s *HandlerSuite) TestCharityRequestAnnouncements() {
	t := s.T()

	s.Run("charity writes for its request", func() {
		s.service.EXPECT().CreateForRequest(gomock.Any(), rmodels.CharityActor(2), int64(8), &models.AnnouncementRequest{Title: "Docs needed", Description: "bring id"}).
			Return(&models.ForRequest{ID: 5, RequestID: 8, Title: "Docs needed"}, nil)
		body := map[string]any{"title": "  Docs needed ", "description": "bring id"}
		req := testutil.AsCharity(testutil.NewJSONRequest(t, http.MethodPost, "/charity-platform/requests/8/announcements/", body), 2)
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatus(t, rr, http.StatusCreated)
		testutil.AssertJSONContains(t, rr, "beneficiary_request", float64(8))
	})

	s.Run("missing title", func() {
		req := testutil.AsCharity(testutil.NewJSONRequest(t, http.MethodPost, "/charity-platform/requests/8/announcements/", map[string]any{"title": " "}), 2)
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatus(t, rr, http.StatusBadRequest)
	})

	s.Run("staff act for every charity", func() {
		s.service.EXPECT().GetForRequest(gomock.Any(), rmodels.CharityActor(0), int64(5)).
			Return(&models.ForRequest{ID: 5}, nil)
		req := testutil.AsStaff(testutil.NewRequest(t, http.MethodGet, "/charity-platform/request-announcements/5/"))
		testutil.AssertStatusOK(t, testutil.DoRequest(s.router, req))
	})

	s.Run("delete", func() {
		s.service.EXPECT().DeleteForRequest(gomock.Any(), rmodels.CharityActor(2), int64(5)).Return(nil)
		req := testutil.AsCharity(testutil.NewRequest(t, http.MethodDelete, "/charity-platform/request-announcements/5/"), 2)
		testutil.AssertStatus(t, testutil.DoRequest(s.router, req), http.StatusNoContent)
	})

	s.Run("out of scope request", func() {
		s.service.EXPECT().ListForRequest(gomock.Any(), rmodels.CharityActor(2), int64(30)).
			Return(nil, dErrors.New(dErrors.CodeNotFound, "Not found."))
		req := testutil.AsCharity(testutil.NewRequest(t, http.MethodGet, "/charity-platform/requests/30/announcements/"), 2)
		testutil.AssertStatus(t, testutil.DoRequest(s.router, req), http.StatusNotFound)
	})

	s.Run("beneficiaries cannot write", func() {
		req := testutil.AsBeneficiary(testutil.NewJSONRequest(t, http.MethodPut, "/charity-platform/request-announcements/5/", map[string]any{"title": "x"}), 4)
		testutil.AssertStatus(t, testutil.DoRequest(s.router, req), http.StatusForbidden)
	})
}

func (s *HandlerSuite) TestCharityBeneficiaryAnnouncements() {
	t := s.T()
	s.service.EXPECT().CreateToBeneficiary(gomock.Any(), rmodels.CharityActor(2), int64(4), gomock.Any()).
		Return(&models.ToBeneficiary{ID: 3, BeneficiaryID: 4, Title: "Welcome"}, nil)
	req := testutil.AsCharity(testutil.NewJSONRequest(t, http.MethodPost, "/charity-platform/beneficiaries/4/announcements/", map[string]any{"title": "Welcome"}), 2)
	rr := testutil.DoRequest(s.router, req)
	testutil.AssertStatus(t, rr, http.StatusCreated)
	testutil.AssertJSONContains(t, rr, "beneficiary", float64(4))

	s.service.EXPECT().ListToBeneficiary(gomock.Any(), int64(4)).Return([]models.ToBeneficiary{}, nil)
	req = testutil.AsCharity(testutil.NewRequest(t, http.MethodGet, "/charity-platform/beneficiaries/4/announcements/"), 2)
	testutil.AssertStatusOK(t, testutil.DoRequest(s.router, req))
}
