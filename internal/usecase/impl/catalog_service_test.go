package impl

import (
	"context"
	"testing"

	"parfum/internal/domain/entity"
	domainerrors "parfum/internal/domain/errors"
	"parfum/internal/domain/repository"
	mockRepo "parfum/internal/mocks/repository"
	"parfum/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestCatalogService(t *testing.T) (usecase.CatalogUsecase, *mockRepo.MockPerfumeRepository) {
	perfumeRepo := mockRepo.NewMockPerfumeRepository(t)

	service := NewCatalogService(CatalogServiceParams{
		PerfumeRepo: perfumeRepo,
		Logger:      discardLogger(),
	})

	return service, perfumeRepo
}

func validPerfumeInput() *usecase.PerfumeInput {
	return &usecase.PerfumeInput{
		Name:            "No. 5",
		Brand:           "Chanel",
		Price:           120,
		Stock:           10,
		Size:            50,
		Gender:          "FEMALE",
		Season:          "ALL_SEASONS",
		Occasion:        "EVENING",
		Intensity:       "STRONG",
		FragranceFamily: "FLORAL",
		TopNotes:        []string{"aldehydes", "ylang-ylang"},
		MiddleNotes:     []string{"jasmine", "rose"},
		BaseNotes:       []string{"sandalwood", "vanilla"},
		Longevity:       8,
		Sillage:         4,
	}
}

func TestCatalogService_ListPerfumes_Defaults(t *testing.T) {
	service, perfumeRepo := createTestCatalogService(t)
	ctx := context.Background()

	perfumeRepo.On("List", ctx, mock.MatchedBy(func(f repository.CatalogFilter) bool {
		return f.Page == 1 && f.PageSize == 12 && f.SortColumn == "created_at" && f.SortDesc
	})).Return([]*entity.Perfume{{Name: "No. 5"}}, int64(25), nil)

	page, err := service.ListPerfumes(ctx, &usecase.CatalogQuery{})

	require.NoError(t, err)
	assert.Equal(t, int64(25), page.Total)
	assert.Equal(t, 3, page.TotalPages)
}

func TestCatalogService_ListPerfumes_SortAliases(t *testing.T) {
	service, perfumeRepo := createTestCatalogService(t)
	ctx := context.Background()

	perfumeRepo.On("List", ctx, mock.MatchedBy(func(f repository.CatalogFilter) bool {
		return f.SortColumn == "average_rating" && !f.SortDesc
	})).Return(nil, int64(0), nil)

	_, err := service.ListPerfumes(ctx, &usecase.CatalogQuery{
		SortBy:    "rating",
		SortOrder: "asc",
	})

	require.NoError(t, err)
}

func TestCatalogService_ListPerfumes_Validation(t *testing.T) {
	service, _ := createTestCatalogService(t)
	ctx := context.Background()

	cases := []struct {
		name  string
		query usecase.CatalogQuery
	}{
		{"bad gender", usecase.CatalogQuery{Gender: "ROBOT"}},
		{"bad season", usecase.CatalogQuery{Season: "MONSOON"}},
		{"bad occasion", usecase.CatalogQuery{Occasion: "MOON_LANDING"}},
		{"bad intensity", usecase.CatalogQuery{Intensity: "NUCLEAR"}},
		{"bad family", usecase.CatalogQuery{FragranceFamily: "METALLIC"}},
		{"non-numeric minPrice", usecase.CatalogQuery{MinPrice: "cheap"}},
		{"non-numeric maxPrice", usecase.CatalogQuery{MaxPrice: "expensive"}},
		{"non-numeric minRating", usecase.CatalogQuery{MinRating: "good"}},
		{"unknown sortBy", usecase.CatalogQuery{SortBy: "stock"}},
		{"unknown sortOrder", usecase.CatalogQuery{SortOrder: "random"}},
		{"zero page", usecase.CatalogQuery{Page: "0"}},
		{"negative pageSize", usecase.CatalogQuery{PageSize: "-3"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := service.ListPerfumes(ctx, &tc.query)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
		})
	}
}

func TestCatalogService_GetPerfume_NotFound(t *testing.T) {
	service, perfumeRepo := createTestCatalogService(t)
	ctx := context.Background()
	id := uuid.New()

	perfumeRepo.On("FindByID", ctx, id).Return(nil, repository.ErrPerfumeNotFound)

	_, err := service.GetPerfume(ctx, id)

	require.ErrorIs(t, err, domainerrors.ErrPerfumeNotFound)
}

func TestCatalogService_SimilarPerfumes(t *testing.T) {
	service, perfumeRepo := createTestCatalogService(t)
	ctx := context.Background()
	id := uuid.New()

	base := &entity.Perfume{ID: id, Brand: "Chanel", FragranceFamily: entity.FamilyFloral}
	perfumeRepo.On("FindByID", ctx, id).Return(base, nil)
	perfumeRepo.On("FindSimilar", ctx, base, 6).
		Return([]*entity.Perfume{{Name: "No. 19"}}, nil)

	similar, err := service.SimilarPerfumes(ctx, id, 0)

	require.NoError(t, err)
	require.Len(t, similar, 1)
	assert.Equal(t, "No. 19", similar[0].Name)
}

func TestCatalogService_CreatePerfume_FieldValidation(t *testing.T) {
	service, _ := createTestCatalogService(t)
	ctx := context.Background()

	mutate := []struct {
		name string
		fn   func(*usecase.PerfumeInput)
	}{
		{"negative price", func(in *usecase.PerfumeInput) { in.Price = -1 }},
		{"negative stock", func(in *usecase.PerfumeInput) { in.Stock = -1 }},
		{"zero size", func(in *usecase.PerfumeInput) { in.Size = 0 }},
		{"longevity too high", func(in *usecase.PerfumeInput) { in.Longevity = 13 }},
		{"sillage too low", func(in *usecase.PerfumeInput) { in.Sillage = 0 }},
		{"blank name", func(in *usecase.PerfumeInput) { in.Name = " " }},
		{"bad enum", func(in *usecase.PerfumeInput) { in.Gender = "OTHERWISE" }},
	}

	for _, tc := range mutate {
		t.Run(tc.name, func(t *testing.T) {
			input := validPerfumeInput()
			tc.fn(input)

			_, err := service.CreatePerfume(ctx, input)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
		})
	}
}

func TestCatalogService_CreatePerfume_Success(t *testing.T) {
	service, perfumeRepo := createTestCatalogService(t)
	ctx := context.Background()

	perfumeRepo.On("Create", ctx, mock.MatchedBy(func(p *entity.Perfume) bool {
		return p.Name == "No. 5" && p.FragranceFamily == entity.FamilyFloral
	})).Return(nil)

	perfume, err := service.CreatePerfume(ctx, validPerfumeInput())

	require.NoError(t, err)
	assert.Equal(t, "Chanel", perfume.Brand)
}

func TestCatalogService_UpdatePerfume_NotFound(t *testing.T) {
	service, perfumeRepo := createTestCatalogService(t)
	ctx := context.Background()
	id := uuid.New()

	perfumeRepo.On("Update", ctx, mock.Anything).Return(repository.ErrPerfumeNotFound)

	_, err := service.UpdatePerfume(ctx, id, validPerfumeInput())

	require.ErrorIs(t, err, domainerrors.ErrPerfumeNotFound)
}

func TestCatalogService_CheckStock(t *testing.T) {
	service, perfumeRepo := createTestCatalogService(t)
	ctx := context.Background()
	id := uuid.New()

	perfumeRepo.On("FindByID", ctx, id).Return(&entity.Perfume{ID: id, Stock: 4}, nil)

	available, err := service.CheckStock(ctx, id, 4)
	require.NoError(t, err)
	assert.True(t, available)

	available, err = service.CheckStock(ctx, id, 5)
	require.NoError(t, err)
	assert.False(t, available)
}
