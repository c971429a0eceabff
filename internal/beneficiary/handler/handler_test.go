package handler_test

//go:generate mockgen -source=handler.go -destination=mocks/service_mock.go -package=mocks

import (
	"log/slog"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"charity/internal/beneficiary/handler"
	"charity/internal/beneficiary/handler/mocks"
	"charity/internal/beneficiary/models"
	dErrors "charity/pkg/domain-errors"
	"charity/pkg/pagination"
	"charity/pkg/testutil"
)

type HandlerSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	service *mocks.MockService
	router  chi.Router
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func (s *HandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.service = mocks.NewMockService(s.ctrl)
	logger := slog.New(slog.DiscardHandler)

	s.router = chi.NewRouter()
	handler.NewBeneficiaryHandler(s.service, logger).Register(s.router)
	handler.NewCharityHandler(s.service, logger).Register(s.router)
}

func (s *HandlerSuite) TestBeneficiaryAccess() {
	t := s.T()

	s.Run("owner reads profile", func() {
		s.service.EXPECT().Profile(gomock.Any(), int64(5)).Return(&models.Profile{
			Registration:   models.Registration{ID: 5, BeneficiaryID: "B-5"},
			AdditionalInfo: []models.AdditionalInfo{},
		}, nil)
		req := testutil.AsBeneficiary(testutil.NewRequest(t, http.MethodGet, "/beneficiary/5/information/"), 5)
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatusOK(t, rr)
		testutil.AssertJSONContains(t, rr, "beneficiary_id", "B-5")
	})

	s.Run("another beneficiary is forbidden", func() {
		req := testutil.AsBeneficiary(testutil.NewRequest(t, http.MethodGet, "/beneficiary/5/information/"), 6)
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatus(t, rr, http.StatusForbidden)
	})

	s.Run("charity may act for a beneficiary", func() {
		s.service.EXPECT().Address(gomock.Any(), int64(5)).Return(&models.Address{ID: 1, BeneficiaryID: 5}, nil)
		req := testutil.AsCharity(testutil.NewRequest(t, http.MethodGet, "/beneficiary/5/address/"), 2)
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatusOK(t, rr)
	})
}

func (s *HandlerSuite) TestCreateInformation() {
	t := s.T()

	s.Run("invalid gender never reaches the service", func() {
		body := map[string]any{"first_name": "علی", "gender": "other"}
		req := testutil.AsBeneficiary(testutil.NewJSONRequest(t, http.MethodPost, "/beneficiary/5/user-information/", body), 5)
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatus(t, rr, http.StatusBadRequest)
	})

	s.Run("created", func() {
		s.service.EXPECT().
			CreateInformation(gomock.Any(), int64(5), gomock.Any()).
			DoAndReturn(func(_ any, id int64, req *models.InformationRequest) (*models.Information, error) {
				s.Equal("علی", req.FirstName)
				return &models.Information{ID: 9, BeneficiaryID: id, FirstName: req.FirstName}, nil
			})
		body := map[string]any{"first_name": " علی ", "gender": "male", "birth_date": "1990-01-02"}
		req := testutil.AsBeneficiary(testutil.NewJSONRequest(t, http.MethodPost, "/beneficiary/5/user-information/", body), 5)
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatus(t, rr, http.StatusCreated)
	})

	s.Run("duplicate is a validation error", func() {
		s.service.EXPECT().CreateInformation(gomock.Any(), int64(5), gomock.Any()).
			Return(nil, dErrors.New(dErrors.CodeValidation, "Beneficiary information already exists"))
		body := map[string]any{"first_name": "علی"}
		req := testutil.AsBeneficiary(testutil.NewJSONRequest(t, http.MethodPost, "/beneficiary/5/user-information/", body), 5)
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatus(t, rr, http.StatusBadRequest)
	})
}

func (s *HandlerSuite) TestAdditionalInfoGuard() {
	t := s.T()

	s.Run("beneficiary edit of a charity entry", func() {
		s.service.EXPECT().UpdateAdditionalInfo(gomock.Any(), int64(5), int64(3), gomock.Any(), false).
			Return(nil, dErrors.New(dErrors.CodeForbidden, "You do not have permission to modify information added by a charity."))
		body := map[string]any{"title": "x"}
		req := testutil.AsBeneficiary(testutil.NewJSONRequest(t, http.MethodPut, "/beneficiary/5/additional-info/3/", body), 5)
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatus(t, rr, http.StatusForbidden)
	})

	s.Run("charity creates as charity", func() {
		s.service.EXPECT().CreateAdditionalInfo(gomock.Any(), int64(5), gomock.Any(), true).
			Return(&models.AdditionalInfo{ID: 4, BeneficiaryID: 5, Title: "visit", IsCreatedByCharity: true}, nil)
		body := map[string]any{"title": "visit"}
		req := testutil.AsCharity(testutil.NewJSONRequest(t, http.MethodPost, "/beneficiaries/5/additional-info/", body), 2)
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatus(t, rr, http.StatusCreated)
		testutil.AssertJSONContains(t, rr, "is_created_by_charity", true)
	})

	s.Run("missing title", func() {
		req := testutil.AsCharity(testutil.NewJSONRequest(t, http.MethodPost, "/beneficiaries/5/additional-info/", map[string]any{}), 2)
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatus(t, rr, http.StatusBadRequest)
	})

	s.Run("charity delete", func() {
		s.service.EXPECT().DeleteAdditionalInfo(gomock.Any(), int64(5), int64(4), true).Return(nil)
		req := testutil.AsCharity(testutil.NewRequest(t, http.MethodDelete, "/beneficiaries/5/additional-info/4/"), 2)
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatus(t, rr, http.StatusNoContent)
	})
}

func (s *HandlerSuite) TestCharityList() {
	t := s.T()

	s.service.EXPECT().
		List(gomock.Any(), "علی", pagination.Params{Page: 2, PageSize: 5}).
		Return(pagination.NewPage(pagination.Params{Page: 2, PageSize: 5}, 6, []models.Summary{{ID: 6}}), nil)

	req := testutil.AsCharity(testutil.NewRequest(t, http.MethodGet, "/beneficiaries/?search=%D8%B9%D9%84%DB%8C&page=2&page_size=5"), 2)
	rr := testutil.DoRequest(s.router, req)
	testutil.AssertStatusOK(t, rr)
	got := testutil.UnmarshalResponse[pagination.Page[models.Summary]](t, rr)
	s.Equal(6, got.Count)
	s.Equal(2, got.Page)
	s.Len(got.Results, 1)
}

func (s *HandlerSuite) TestCharityDetailNotFound() {
	t := s.T()
	s.service.EXPECT().Detail(gomock.Any(), int64(77)).Return(nil, dErrors.New(dErrors.CodeNotFound, "beneficiary not found"))

	req := testutil.AsStaff(testutil.NewRequest(t, http.MethodGet, "/beneficiaries/77/"))
	rr := testutil.DoRequest(s.router, req)
	testutil.AssertStatus(t, rr, http.StatusNotFound)
}
