package charity

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"charity/pkg/testutil"
)

type HandlerSuite struct {
	suite.Suite
	store   *InMemoryStore
	service *Service
	router  chi.Router
	charity *Charity
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func (s *HandlerSuite) SetupTest() {
	s.store = NewInMemory()
	s.service = NewService(s.store, nil)
	c, err := s.service.CreateForUser(context.Background(), 7, "mehr")
	s.Require().NoError(err)
	s.charity = c

	s.router = chi.NewRouter()
	NewHandler(s.service, slog.New(slog.DiscardHandler)).Register(s.router)
}

func (s *HandlerSuite) TestProfile() {
	t := s.T()
	s.Run("get own profile", func() {
		req := testutil.AsCharity(testutil.NewRequest(t, http.MethodGet, "/profile/"), s.charity.ID)
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatusOK(t, rr)
		testutil.AssertJSONContains(t, rr, "name", "mehr")
	})

	s.Run("patch profile", func() {
		body := map[string]string{"phone": "09121234567", "email": "info@mehr.org"}
		req := testutil.AsCharity(testutil.NewJSONRequest(t, http.MethodPatch, "/profile/", body), s.charity.ID)
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatusOK(t, rr)
		got := testutil.UnmarshalResponse[Charity](t, rr)
		s.Equal("09121234567", got.Phone)
		s.Equal("info@mehr.org", got.Email)
		s.Equal("mehr", got.Name)
	})

	s.Run("invalid phone", func() {
		body := map[string]string{"phone": "12345"}
		req := testutil.AsCharity(testutil.NewJSONRequest(t, http.MethodPatch, "/profile/", body), s.charity.ID)
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatus(t, rr, http.StatusBadRequest)
	})

	s.Run("staff has no profile", func() {
		req := testutil.AsStaff(testutil.NewRequest(t, http.MethodGet, "/profile/"))
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatus(t, rr, http.StatusForbidden)
	})
}

func (s *HandlerSuite) TestWorkfields() {
	t := s.T()
	body := map[string]string{"title": "food", "description": "monthly food baskets"}
	req := testutil.AsCharity(testutil.NewJSONRequest(t, http.MethodPost, "/workfields/", body), s.charity.ID)
	rr := testutil.DoRequest(s.router, req)
	testutil.AssertStatus(t, rr, http.StatusCreated)
	created := testutil.UnmarshalResponse[Workfield](t, rr)

	other, err := s.service.CreateForUser(context.Background(), 8, "other")
	require.NoError(t, err)

	s.Run("other charity cannot delete", func() {
		req := testutil.AsCharity(testutil.NewRequest(t, http.MethodDelete, "/workfields/"+strconv.FormatInt(created.ID, 10)+"/"), other.ID)
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatus(t, rr, http.StatusNotFound)
	})

	s.Run("owner lists and deletes", func() {
		req := testutil.AsCharity(testutil.NewRequest(t, http.MethodGet, "/workfields/"), s.charity.ID)
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatusOK(t, rr)
		list := testutil.UnmarshalResponse[[]Workfield](t, rr)
		s.Len(*list, 1)

		req = testutil.AsCharity(testutil.NewRequest(t, http.MethodDelete, "/workfields/"+strconv.FormatInt(created.ID, 10)+"/"), s.charity.ID)
		rr = testutil.DoRequest(s.router, req)
		testutil.AssertStatus(t, rr, http.StatusNoContent)
	})

	s.Run("blank title rejected", func() {
		req := testutil.AsCharity(testutil.NewJSONRequest(t, http.MethodPost, "/workfields/", map[string]string{"title": " "}), s.charity.ID)
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatus(t, rr, http.StatusBadRequest)
	})
}
