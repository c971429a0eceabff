package service_test

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"charity/internal/beneficiary/models"
	"charity/internal/beneficiary/service"
	"charity/internal/beneficiary/service/mocks"
	"charity/internal/beneficiary/store"
	"charity/internal/cache"
	"charity/internal/location"
	"charity/internal/search"
	"charity/pkg/calendar"
	dErrors "charity/pkg/domain-errors"
	"charity/pkg/pagination"
	"charity/pkg/requestcontext"
)

var fixedNow = time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)

type ServiceSuite struct {
	suite.Suite
	ctx       context.Context
	store     *store.InMemoryStore
	locations *location.Service
	filter    *mocks.MockIDFilter
	service   *service.Service
	nextUser  int64

	tehran, fars       *location.Province
	tehranCity, shiraz *location.City
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.ctx = requestcontext.WithTime(context.Background(), fixedNow)
	s.nextUser = 0
	s.store = store.NewInMemory()

	locStore := location.NewInMemory()
	var err error
	s.tehran, _, err = locStore.EnsureProvince(s.ctx, "تهران")
	s.Require().NoError(err)
	s.fars, _, err = locStore.EnsureProvince(s.ctx, "فارس")
	s.Require().NoError(err)
	s.tehranCity, _, err = locStore.EnsureCity(s.ctx, s.tehran.ID, "تهران")
	s.Require().NoError(err)
	s.shiraz, _, err = locStore.EnsureCity(s.ctx, s.fars.ID, "شیراز")
	s.Require().NoError(err)
	s.locations = location.NewService(locStore, nil)

	s.filter = mocks.NewMockIDFilter(gomock.NewController(s.T()))
	s.service = service.NewService(s.store, s.locations,
		service.WithCache(cache.New(cache.NewMemoryBackend(), time.Hour)),
		service.WithSearch(s.filter),
	)
}

func (s *ServiceSuite) register(identification, code string) int64 {
	s.nextUser++
	id, err := s.service.Register(s.ctx, s.nextUser, identification, code)
	s.Require().NoError(err)
	return id
}

func ptr[T any](v T) *T { return &v }

func (s *ServiceSuite) requireCode(err error, code dErrors.Code) {
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, code), "got %v", err)
}

func (s *ServiceSuite) TestRegister() {
	s.register("0012345678", "B-1")

	s.Run("identification number taken", func() {
		_, err := s.service.Register(s.ctx, 90, "0012345678", "B-2")
		s.requireCode(err, dErrors.CodeValidation)
		s.Contains(err.Error(), "This beneficiary already exists")
	})

	s.Run("beneficiary id taken", func() {
		_, err := s.service.Register(s.ctx, 91, "0099999999", "B-1")
		s.requireCode(err, dErrors.CodeValidation)
		s.Contains(err.Error(), "this beneficiary id already exists")
	})

	s.Run("lookup by user", func() {
		_, err := s.service.IDForUser(s.ctx, 424242)
		s.requireCode(err, dErrors.CodeNotFound)
	})
}

func (s *ServiceSuite) TestUpdateRegistration() {
	first := s.register("0012345678", "B-1")
	second := s.register("0087654321", "B-2")

	reg, err := s.service.UpdateRegistration(s.ctx, first, &models.UpdateRegistrationRequest{PhoneNumber: ptr("09121234567")})
	s.Require().NoError(err)
	s.Equal("09121234567", *reg.PhoneNumber)
	s.Nil(reg.Email)

	s.Run("phone belongs to another beneficiary", func() {
		_, err := s.service.UpdateRegistration(s.ctx, second, &models.UpdateRegistrationRequest{PhoneNumber: ptr("09121234567")})
		s.requireCode(err, dErrors.CodeValidation)
	})

	s.Run("clearing the only contact", func() {
		_, err := s.service.UpdateRegistration(s.ctx, first, &models.UpdateRegistrationRequest{PhoneNumber: ptr("")})
		s.requireCode(err, dErrors.CodeValidation)
	})

	s.Run("same values on self are fine", func() {
		_, err := s.service.UpdateRegistration(s.ctx, first, &models.UpdateRegistrationRequest{
			PhoneNumber: ptr("09121234567"),
			Email:       ptr("a@example.com"),
		})
		s.NoError(err)
	})

	s.Run("unknown beneficiary", func() {
		_, err := s.service.UpdateRegistration(s.ctx, 9999, &models.UpdateRegistrationRequest{Email: ptr("x@example.com")})
		s.requireCode(err, dErrors.CodeNotFound)
	})
}

func (s *ServiceSuite) TestInformation() {
	id := s.register("0012345678", "B-1")
	birth := calendar.NewDate(time.Date(1990, 1, 2, 0, 0, 0, 0, time.UTC))
	req := &models.InformationRequest{FirstName: "علی", LastName: "رضایی", Gender: models.GenderMale, BirthDate: &birth}

	info, err := s.service.CreateInformation(s.ctx, id, req)
	s.Require().NoError(err)
	s.Equal("علی رضایی", info.FullName())

	s.Run("second create is rejected", func() {
		_, err := s.service.CreateInformation(s.ctx, id, req)
		s.requireCode(err, dErrors.CodeValidation)
		s.Contains(err.Error(), "Beneficiary information already exists")
	})

	s.Run("future birth date", func() {
		future := calendar.NewDate(fixedNow.AddDate(0, 0, 1))
		_, err := s.service.UpdateInformation(s.ctx, id, &models.InformationRequest{BirthDate: &future})
		s.requireCode(err, dErrors.CodeValidation)
	})

	s.Run("delete then get", func() {
		s.Require().NoError(s.service.DeleteInformation(s.ctx, id))
		_, err := s.service.Information(s.ctx, id)
		s.requireCode(err, dErrors.CodeNotFound)
	})

	s.Run("save creates then updates", func() {
		created, err := s.service.SaveInformation(s.ctx, id, &models.InformationRequest{FirstName: "مریم"})
		s.Require().NoError(err)
		updated, err := s.service.SaveInformation(s.ctx, id, &models.InformationRequest{FirstName: "زهرا"})
		s.Require().NoError(err)
		s.Equal(created.ID, updated.ID)
		s.Equal("زهرا", updated.FirstName)
	})
}

func (s *ServiceSuite) TestAddress() {
	id := s.register("0012345678", "B-1")

	s.Run("city outside province", func() {
		_, err := s.service.CreateAddress(s.ctx, id, &models.AddressRequest{ProvinceID: &s.tehran.ID, CityID: &s.shiraz.ID})
		s.requireCode(err, dErrors.CodeValidation)
		s.Contains(err.Error(), "city does not belong to province")
	})

	_, err := s.service.CreateAddress(s.ctx, id, &models.AddressRequest{
		ProvinceID: &s.fars.ID,
		CityID:     &s.shiraz.ID,
		Street:     "زند",
		PostalCode: "7134567890",
	})
	s.Require().NoError(err)

	s.Run("second create is rejected", func() {
		_, err := s.service.CreateAddress(s.ctx, id, &models.AddressRequest{Street: "x"})
		s.requireCode(err, dErrors.CodeValidation)
		s.Contains(err.Error(), "Beneficiary address already exists")
	})

	s.Run("detail resolves names", func() {
		d, err := s.service.Detail(s.ctx, id)
		s.Require().NoError(err)
		s.Require().NotNil(d.Address)
		s.Equal("فارس", d.Address.ProvinceName)
		s.Equal("شیراز", d.Address.CityName)
	})
}

func (s *ServiceSuite) TestAdditionalInfoOwnership() {
	id := s.register("0012345678", "B-1")

	own, err := s.service.CreateAdditionalInfo(s.ctx, id, &models.AdditionalInfoRequest{Title: "rent contract"}, false)
	s.Require().NoError(err)
	byCharity, err := s.service.CreateAdditionalInfo(s.ctx, id, &models.AdditionalInfoRequest{Title: "home visit"}, true)
	s.Require().NoError(err)
	s.True(byCharity.IsCreatedByCharity)

	s.Run("beneficiary cannot edit charity entries", func() {
		_, err := s.service.UpdateAdditionalInfo(s.ctx, id, byCharity.ID, &models.AdditionalInfoRequest{Title: "edited"}, false)
		s.requireCode(err, dErrors.CodeForbidden)
		s.requireCode(s.service.DeleteAdditionalInfo(s.ctx, id, byCharity.ID, false), dErrors.CodeForbidden)
	})

	s.Run("charity can edit any entry", func() {
		a, err := s.service.UpdateAdditionalInfo(s.ctx, id, own.ID, &models.AdditionalInfoRequest{Title: "lease"}, true)
		s.Require().NoError(err)
		s.Equal("lease", a.Title)
	})

	s.Run("profile hides charity entries", func() {
		p, err := s.service.Profile(s.ctx, id)
		s.Require().NoError(err)
		s.Require().Len(p.AdditionalInfo, 1)
		s.Equal(own.ID, p.AdditionalInfo[0].ID)
	})

	s.Run("detail lists every title", func() {
		d, err := s.service.Detail(s.ctx, id)
		s.Require().NoError(err)
		s.ElementsMatch([]string{"lease", "home visit"}, d.AdditionalInfoList)
	})

	s.Run("entry of another beneficiary", func() {
		other := s.register("0087654321", "B-2")
		_, err := s.service.AdditionalInfoEntry(s.ctx, other, own.ID)
		s.requireCode(err, dErrors.CodeNotFound)
	})
}

func (s *ServiceSuite) TestDetailIsInvalidatedOnChange() {
	id := s.register("0012345678", "B-1")

	before, err := s.service.Detail(s.ctx, id)
	s.Require().NoError(err)
	s.Nil(before.Information)

	_, err = s.service.CreateInformation(s.ctx, id, &models.InformationRequest{FirstName: "علی"})
	s.Require().NoError(err)

	after, err := s.service.Detail(s.ctx, id)
	s.Require().NoError(err)
	s.Require().NotNil(after.Information)
	s.Equal("علی", after.Information.FirstName)
}

func (s *ServiceSuite) TestList() {
	first := s.register("0012345678", "B-1")
	second := s.register("0087654321", "B-2")
	page := pagination.Params{Page: 1, PageSize: 10}

	s.Run("search narrows the list", func() {
		s.filter.EXPECT().IDs(gomock.Any(), search.IndexBeneficiaries, "B-2").Return([]int64{second}, true)
		got, err := s.service.List(s.ctx, "B-2", page)
		s.Require().NoError(err)
		s.Equal(1, got.Count)
		s.Equal(second, got.Results[0].ID)
	})

	s.Run("search without hits returns nothing", func() {
		s.filter.EXPECT().IDs(gomock.Any(), search.IndexBeneficiaries, "nobody").Return([]int64{}, true)
		got, err := s.service.List(s.ctx, "nobody", page)
		s.Require().NoError(err)
		s.Equal(0, got.Count)
		s.Empty(got.Results)
	})

	s.Run("search outage falls back to the full list", func() {
		s.filter.EXPECT().IDs(gomock.Any(), search.IndexBeneficiaries, "down").Return(nil, false)
		got, err := s.service.List(s.ctx, "down", page)
		s.Require().NoError(err)
		s.Equal(2, got.Count)
	})

	s.Run("no query lists all, paged", func() {
		got, err := s.service.List(s.ctx, "", pagination.Params{Page: 2, PageSize: 1})
		s.Require().NoError(err)
		s.Equal(2, got.Count)
		s.Require().Len(got.Results, 1)
		s.Equal(second, got.Results[0].ID)
		s.NotEqual(first, got.Results[0].ID)
	})
}

func (s *ServiceSuite) TestBeneficiaryDocuments() {
	id := s.register("0012345678", "B-1")
	_, err := s.service.CreateInformation(s.ctx, id, &models.InformationRequest{FirstName: "علی", LastName: "رضایی"})
	s.Require().NoError(err)
	_, err = s.service.CreateAddress(s.ctx, id, &models.AddressRequest{ProvinceID: &s.tehran.ID, CityID: &s.tehranCity.ID})
	s.Require().NoError(err)
	_, err = s.service.CreateAdditionalInfo(s.ctx, id, &models.AdditionalInfoRequest{Title: "disability"}, true)
	s.Require().NoError(err)
	s.register("0087654321", "B-2")

	docs, err := s.service.BeneficiaryDocuments(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(docs, 2)
	s.Equal(search.BeneficiaryDocument{
		ID:                   id,
		FullName:             "علی رضایی",
		FirstName:            "علی",
		LastName:             "رضایی",
		IdentificationNumber: "0012345678",
		BeneficiaryID:        "B-1",
		Province:             "تهران",
		City:                 "تهران",
		Tags:                 []string{"disability"},
	}, docs[0])
	s.Empty(docs[1].Tags)
}
