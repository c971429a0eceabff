package handler_test

//go:generate mockgen -source=handler.go -destination=mocks/handler_mock.go -package=mocks

import (
	"log/slog"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"charity/internal/auth/handler"
	"charity/internal/auth/handler/mocks"
	"charity/internal/auth/models"
	bmodels "charity/internal/beneficiary/models"
	dErrors "charity/pkg/domain-errors"
	"charity/pkg/testutil"
)

type HandlerSuite struct {
	suite.Suite
	service       *mocks.MockService
	registrations *mocks.MockRegistrationInfo
	router        chi.Router
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func passThrough(next http.Handler) http.Handler { return next }

func (s *HandlerSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.service = mocks.NewMockService(ctrl)
	s.registrations = mocks.NewMockRegistrationInfo(ctrl)
	s.router = chi.NewRouter()
	handler.New(s.service, s.registrations, slog.New(slog.DiscardHandler)).Register(s.router, passThrough)
}

func (s *HandlerSuite) TestRegisterCharity() {
	t := s.T()

	t.Run("Given a valid charity registration", func(t *testing.T) {
		body := map[string]string{"username": "mehr", "password": "s3cret-pass", "password2": "s3cret-pass"}
		s.service.EXPECT().RegisterCharity(gomock.Any(), &models.RegisterCharityRequest{Username: "mehr", Password: "s3cret-pass", Password2: "s3cret-pass"}).
			Return(&models.Registered{User: models.RegisteredUser{ID: 1, Username: "mehr"}, Message: "User created successfully."}, nil)

		t.Run("When it is posted", func(t *testing.T) {
			rr := testutil.DoRequest(s.router, testutil.NewJSONRequest(t, http.MethodPost, "/charity/register/", body))

			t.Run("Then the account is created", func(t *testing.T) {
				testutil.AssertStatus(t, rr, http.StatusCreated)
				testutil.AssertJSONContains(t, rr, "message", "User created successfully.")
			})
		})
	})

	t.Run("Given mismatched passwords", func(t *testing.T) {
		body := map[string]string{"username": "mehr", "password": "s3cret-pass", "password2": "different"}
		rr := testutil.DoRequest(s.router, testutil.NewJSONRequest(t, http.MethodPost, "/charity/register/", body))
		t.Run("Then the request is rejected before the service", func(t *testing.T) {
			testutil.AssertStatus(t, rr, http.StatusBadRequest)
		})
	})
}

func (s *HandlerSuite) TestLogin() {
	t := s.T()

	s.Run("charity", func() {
		s.service.EXPECT().LoginCharity(gomock.Any(), gomock.Any()).
			Return(&models.TokenResult{AccessToken: "tok", TokenType: "Bearer", ExpiresIn: 60, UserID: 1, CharityID: 4}, nil)
		body := map[string]string{"username": "mehr", "password": "s3cret-pass"}
		rr := testutil.DoRequest(s.router, testutil.NewJSONRequest(t, http.MethodPost, "/charity/login/", body))
		testutil.AssertStatusOK(t, rr)
		got := testutil.UnmarshalResponse[models.TokenResult](t, rr)
		s.Equal("tok", got.AccessToken)
		s.Equal(int64(4), got.CharityID)
	})

	s.Run("bad credentials", func() {
		s.service.EXPECT().LoginBeneficiary(gomock.Any(), gomock.Any()).
			Return(nil, dErrors.New(dErrors.CodeUnauthorized, "Unable to log in with provided credentials."))
		body := map[string]string{"username": "0012345678", "password": "x"}
		rr := testutil.DoRequest(s.router, testutil.NewJSONRequest(t, http.MethodPost, "/beneficiary/login/", body))
		testutil.AssertStatus(t, rr, http.StatusUnauthorized)
	})

	s.Run("missing fields", func() {
		rr := testutil.DoRequest(s.router, testutil.NewJSONRequest(t, http.MethodPost, "/beneficiary/login/", map[string]string{}))
		testutil.AssertStatus(t, rr, http.StatusBadRequest)
	})
}

func (s *HandlerSuite) TestBeneficiaryPassword() {
	t := s.T()
	body := map[string]string{"old_password": "B-1", "new_password": "brand-new-pass"}

	s.Run("owner", func() {
		s.service.EXPECT().ChangePassword(gomock.Any(), int64(1005), gomock.Any()).Return(nil)
		req := testutil.AsBeneficiary(testutil.NewJSONRequest(t, http.MethodPatch, "/beneficiary/5/password/", body), 5)
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatusOK(t, rr)
	})

	s.Run("another beneficiary", func() {
		req := testutil.AsBeneficiary(testutil.NewJSONRequest(t, http.MethodPatch, "/beneficiary/5/password/", body), 6)
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatus(t, rr, http.StatusForbidden)
	})

	s.Run("charity", func() {
		req := testutil.AsCharity(testutil.NewJSONRequest(t, http.MethodPatch, "/beneficiary/5/password/", body), 2)
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatus(t, rr, http.StatusForbidden)
	})
}

func (s *HandlerSuite) TestCharityUsername() {
	t := s.T()
	s.service.EXPECT().ChangeUsername(gomock.Any(), int64(102), &models.ChangeUsernameRequest{Username: "mehr-2"}).
		Return(&models.User{ID: 102, Username: "mehr-2"}, nil)

	req := testutil.AsCharity(testutil.NewJSONRequest(t, http.MethodPatch, "/charity/username/", map[string]string{"username": " mehr-2 "}), 2)
	rr := testutil.DoRequest(s.router, req)
	testutil.AssertStatusOK(t, rr)
	testutil.AssertJSONContains(t, rr, "username", "mehr-2")
}

func (s *HandlerSuite) TestRegisterInfo() {
	t := s.T()
	phone := "09121234567"

	s.Run("staff updates contact details", func() {
		s.registrations.EXPECT().UpdateRegistration(gomock.Any(), int64(5), &bmodels.UpdateRegistrationRequest{PhoneNumber: &phone}).
			Return(&bmodels.Registration{ID: 5, PhoneNumber: &phone}, nil)
		req := testutil.AsStaff(testutil.NewJSONRequest(t, http.MethodPut, "/beneficiary/5/register-info/", map[string]string{"phone_number": phone}))
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatusOK(t, rr)
		testutil.AssertJSONContains(t, rr, "phone_number", phone)
	})

	s.Run("invalid phone", func() {
		req := testutil.AsBeneficiary(testutil.NewJSONRequest(t, http.MethodPut, "/beneficiary/5/register-info/", map[string]string{"phone_number": "0912"}), 5)
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatus(t, rr, http.StatusBadRequest)
	})
}
