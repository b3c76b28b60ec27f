package resolving

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	serpapidomain "github.com/vfg2006/rank-tracker-api/infrastructure/integrator/serpapi/domain"
	serpapimocks "github.com/vfg2006/rank-tracker-api/infrastructure/integrator/serpapi/mocks"
	"github.com/vfg2006/rank-tracker-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func organicPage(count int, offset int) *serpapidomain.OrganicPage {
	page := &serpapidomain.OrganicPage{}
	for i := 0; i < count; i++ {
		page.Results = append(page.Results, serpapidomain.OrganicResult{
			Link:     fmt.Sprintf("https://other%d.com", offset+i),
			Position: i + 1,
		})
	}
	return page
}

func TestResolveRankOrganicEarlyExit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := serpapimocks.NewMockSearchIntegrator(ctrl)
	service := NewService(provider)

	query := domain.RankQuery{
		Keyword:        "pizza madrid",
		FilteredDomain: "joes-pizza.es",
		Device:         domain.DeviceDesktop,
	}

	// Primeira página sem o domínio alvo
	provider.EXPECT().
		FetchOrganicPage(gomock.Any(), query, 0).
		Return(organicPage(10, 0), nil)

	// Segunda página com o alvo na quarta posição; nenhuma página além
	// desta deve ser buscada
	secondPage := organicPage(10, 10)
	secondPage.Results[3] = serpapidomain.OrganicResult{
		Link:     "https://www.joes-pizza.es/carta",
		Position: 4,
	}
	provider.EXPECT().
		FetchOrganicPage(gomock.Any(), query, 10).
		Return(secondPage, nil)

	resolution, err := service.ResolveRank(context.Background(), query)

	assert.NoError(t, err)
	assert.Equal(t, 14, resolution.Position)
	assert.Equal(t, "joes-pizza.es", resolution.MatchedDomain)
}

func TestResolveRankOrganicPositionFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := serpapimocks.NewMockSearchIntegrator(ctrl)
	service := NewService(provider)

	query := domain.RankQuery{
		Keyword:        "pizza",
		FilteredDomain: "joes-pizza.es",
		Device:         domain.DeviceMobile,
	}

	// Provedor sem o campo position: vale a ordem do array
	page := &serpapidomain.OrganicPage{
		Results: []serpapidomain.OrganicResult{
			{Link: "https://other.com"},
			{Link: ""},
			{Link: "https://joes-pizza.es"},
		},
	}
	provider.EXPECT().
		FetchOrganicPage(gomock.Any(), query, 0).
		Return(page, nil)

	resolution, err := service.ResolveRank(context.Background(), query)

	assert.NoError(t, err)
	assert.Equal(t, 3, resolution.Position)
}

func TestResolveRankOrganicNotFoundOnProviderExhaustion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := serpapimocks.NewMockSearchIntegrator(ctrl)
	service := NewService(provider)

	query := domain.RankQuery{
		Keyword:        "pizza",
		FilteredDomain: "joes-pizza.es",
	}

	provider.EXPECT().
		FetchOrganicPage(gomock.Any(), query, 0).
		Return(organicPage(10, 0), nil)
	provider.EXPECT().
		FetchOrganicPage(gomock.Any(), query, 10).
		Return(&serpapidomain.OrganicPage{}, nil)

	resolution, err := service.ResolveRank(context.Background(), query)

	assert.NoError(t, err)
	assert.False(t, resolution.Found())
	assert.Equal(t, 0, resolution.Position)
}

func TestResolveRankOrganicStopsAtDepthCeiling(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := serpapimocks.NewMockSearchIntegrator(ctrl)
	service := NewService(provider)

	query := domain.RankQuery{
		Keyword:        "pizza",
		FilteredDomain: "joes-pizza.es",
	}

	// Dez páginas cheias sem o alvo: a varredura para no teto de 100
	// resultados
	for start := 0; start < 100; start += 10 {
		provider.EXPECT().
			FetchOrganicPage(gomock.Any(), query, start).
			Return(organicPage(10, start), nil)
	}

	resolution, err := service.ResolveRank(context.Background(), query)

	assert.NoError(t, err)
	assert.False(t, resolution.Found())
}

func TestResolveRankInvalidLocationIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := serpapimocks.NewMockSearchIntegrator(ctrl)
	service := NewService(provider)

	query := domain.RankQuery{
		Keyword:        "pizza",
		FilteredDomain: "joes-pizza.es",
		Location:       "Cidade Inexistente",
	}

	provider.EXPECT().
		FetchOrganicPage(gomock.Any(), query, 0).
		Return(nil, &serpapidomain.ProviderError{
			StatusCode: http.StatusBadRequest,
			Message:    "Unsupported location - see the locations API",
		})

	resolution, err := service.ResolveRank(context.Background(), query)

	// Localização inválida encerra a consulta como "não encontrado"
	assert.NoError(t, err)
	assert.False(t, resolution.Found())
}

func TestResolveRankTimeoutIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := serpapimocks.NewMockSearchIntegrator(ctrl)
	service := NewService(provider)

	query := domain.RankQuery{
		Keyword:        "pizza",
		FilteredDomain: "joes-pizza.es",
	}

	provider.EXPECT().
		FetchOrganicPage(gomock.Any(), query, 0).
		Return(nil, context.DeadlineExceeded)

	resolution, err := service.ResolveRank(context.Background(), query)

	assert.NoError(t, err)
	assert.False(t, resolution.Found())
}

func TestResolveRankProviderErrorPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := serpapimocks.NewMockSearchIntegrator(ctrl)
	service := NewService(provider)

	query := domain.RankQuery{
		Keyword:        "pizza",
		FilteredDomain: "joes-pizza.es",
	}

	providerErr := &serpapidomain.ProviderError{
		StatusCode: http.StatusTooManyRequests,
		Message:    "rate limit exceeded",
	}
	provider.EXPECT().
		FetchOrganicPage(gomock.Any(), query, 0).
		Return(nil, providerErr)

	resolution, err := service.ResolveRank(context.Background(), query)

	assert.Nil(t, resolution)
	assert.ErrorIs(t, err, providerErr)
}

func TestResolveRankLocal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := serpapimocks.NewMockSearchIntegrator(ctrl)
	service := NewService(provider)

	query := domain.RankQuery{
		Keyword:        "pizza cerca de mi",
		FilteredDomain: "joes-pizza.es",
		Device:         domain.DeviceGoogleLocal,
	}

	rating := 4.6
	reviews := 132

	firstPage := &serpapidomain.LocalPage{}
	for i := 0; i < 20; i++ {
		firstPage.Results = append(firstPage.Results, serpapidomain.LocalResult{
			Position: i + 1,
			Title:    fmt.Sprintf("Restaurante %d", i),
		})
	}

	secondPage := &serpapidomain.LocalPage{
		Results: []serpapidomain.LocalResult{
			// Listagem sem position não tem rank atribuível
			{Position: 0, Website: "https://joes-pizza.es"},
			{Position: 1, Title: "Outro Restaurante"},
			{
				Position: 3,
				Website:  "https://www.joes-pizza.es",
				Rating:   &rating,
				Reviews:  &reviews,
			},
		},
	}

	provider.EXPECT().
		FetchLocalPage(gomock.Any(), query, 0).
		Return(firstPage, nil)
	provider.EXPECT().
		FetchLocalPage(gomock.Any(), query, 20).
		Return(secondPage, nil)

	resolution, err := service.ResolveRank(context.Background(), query)

	assert.NoError(t, err)
	assert.Equal(t, 23, resolution.Position)
	assert.Equal(t, "joes-pizza.es", resolution.MatchedDomain)
	assert.Equal(t, rating, *resolution.Rating)
	assert.Equal(t, reviews, *resolution.Reviews)
}
