package tracking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	serpapidomain "github.com/vfg2006/rank-tracker-api/infrastructure/integrator/serpapi/domain"
	serpapimocks "github.com/vfg2006/rank-tracker-api/infrastructure/integrator/serpapi/mocks"
	repositorymocks "github.com/vfg2006/rank-tracker-api/infrastructure/repository/mocks"
	"github.com/vfg2006/rank-tracker-api/internal/domain"
	resolvingmocks "github.com/vfg2006/rank-tracker-api/internal/usecases/resolving/mocks"
	"go.uber.org/mock/gomock"
)

type serviceMocks struct {
	resolver     *resolvingmocks.MockResolver
	provider     *serpapimocks.MockSearchIntegrator
	snapshotRepo *repositorymocks.MockSnapshotRepository
	userRepo     *repositorymocks.MockUserRepository
}

func newServiceWithMocks(ctrl *gomock.Controller) (Tracker, *serviceMocks) {
	mocks := &serviceMocks{
		resolver:     resolvingmocks.NewMockResolver(ctrl),
		provider:     serpapimocks.NewMockSearchIntegrator(ctrl),
		snapshotRepo: repositorymocks.NewMockSnapshotRepository(ctrl),
		userRepo:     repositorymocks.NewMockUserRepository(ctrl),
	}

	service := NewService(mocks.resolver, mocks.provider, mocks.snapshotRepo, mocks.userRepo)

	return service, mocks
}

func TestSplitKeywords(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected []string
	}{
		{
			name:     "separadas por vírgula",
			raw:      "pizza madrid, pizzeria cerca",
			expected: []string{"pizza madrid", "pizzeria cerca"},
		},
		{
			name:     "separadas por quebra de linha",
			raw:      "pizza madrid\npizzeria cerca",
			expected: []string{"pizza madrid", "pizzeria cerca"},
		},
		{
			name:     "separadores misturados e entradas vazias",
			raw:      " pizza madrid ,\n\n, pizzeria cerca ,",
			expected: []string{"pizza madrid", "pizzeria cerca"},
		},
		{
			name:     "apenas espaços",
			raw:      "  \n , ",
			expected: []string{},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, SplitKeywords(test.raw))
		})
	}
}

func TestPerformSearch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mocks := newServiceWithMocks(ctrl)
	ctx := context.Background()

	request := domain.SearchRequest{
		Keywords: "pizza madrid, pizzeria cerca",
		Domain:   "https://www.joes-pizza.es/",
		Location: "Madrid,Spain",
	}

	// Duas palavras-chave debitadas de uma vez, antes das consultas
	mocks.userRepo.EXPECT().
		ConsumeKeywordQuota(ctx, 42, 2).
		Return(48, nil)

	snapshot := &domain.RankSnapshot{Position: 7}

	for _, keyword := range []string{"pizza madrid", "pizzeria cerca"} {
		expectedQuery := domain.RankQuery{
			UserID:         42,
			Keyword:        keyword,
			FilteredDomain: "joes-pizza.es",
			Device:         domain.DeviceDesktop,
			SearchEngine:   domain.SearchEngineGoogle,
			Location:       "Madrid,Spain",
		}

		mocks.resolver.EXPECT().
			ResolveRank(ctx, expectedQuery).
			Return(&domain.RankResolution{Position: 7, MatchedDomain: "joes-pizza.es"}, nil)
		mocks.snapshotRepo.EXPECT().
			UpsertResolved(ctx, expectedQuery, gomock.Any(), gomock.Any()).
			Return(snapshot, nil)
	}

	response, err := service.PerformSearch(ctx, 42, request)

	assert.NoError(t, err)
	assert.Equal(t, 2, response.KeywordsUsed)
	assert.Len(t, response.Results, 2)
	assert.Equal(t, 7, response.Results[0].Position)
	assert.Equal(t, domain.DeviceDesktop, response.Results[0].Device)
}

func TestPerformSearchKeepsNotFoundEntries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mocks := newServiceWithMocks(ctrl)
	ctx := context.Background()

	request := domain.SearchRequest{
		Keywords: "pizza madrid",
		Domain:   "joes-pizza.es",
		Devices:  []domain.Device{domain.DeviceMobile},
	}

	mocks.userRepo.EXPECT().
		ConsumeKeywordQuota(ctx, 42, 1).
		Return(49, nil)

	// Domínio não encontrado: nada é persistido, mas a resposta traz a
	// entrada com posição zero
	mocks.resolver.EXPECT().
		ResolveRank(ctx, gomock.Any()).
		Return(&domain.RankResolution{}, nil)

	response, err := service.PerformSearch(ctx, 42, request)

	assert.NoError(t, err)
	assert.Len(t, response.Results, 1)
	assert.Equal(t, 0, response.Results[0].Position)
	assert.Equal(t, domain.DeviceMobile, response.Results[0].Device)
}

func TestPerformSearchLocalDeviceForcesLocalEngine(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mocks := newServiceWithMocks(ctrl)
	ctx := context.Background()

	request := domain.SearchRequest{
		Keywords:     "pizza madrid",
		Domain:       "joes-pizza.es",
		Devices:      []domain.Device{domain.DeviceGoogleLocal},
		SearchEngine: domain.SearchEngineGoogle,
	}

	mocks.userRepo.EXPECT().
		ConsumeKeywordQuota(ctx, 42, 1).
		Return(49, nil)

	mocks.resolver.EXPECT().
		ResolveRank(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, query domain.RankQuery) (*domain.RankResolution, error) {
			assert.Equal(t, domain.SearchEngineGoogleLocal, query.SearchEngine)
			return &domain.RankResolution{}, nil
		})

	_, err := service.PerformSearch(ctx, 42, request)

	assert.NoError(t, err)
}

func TestPerformSearchWithoutKeywords(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _ := newServiceWithMocks(ctrl)

	response, err := service.PerformSearch(context.Background(), 42, domain.SearchRequest{
		Keywords: " \n, ",
		Domain:   "joes-pizza.es",
	})

	assert.Nil(t, response)
	assert.ErrorIs(t, err, ErrNoKeywords)
}

func TestPerformSearchWithInvalidDomain(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _ := newServiceWithMocks(ctrl)

	// A validação do domínio acontece antes do débito de cota
	response, err := service.PerformSearch(context.Background(), 42, domain.SearchRequest{
		Keywords: "pizza madrid",
		Domain:   "https://joes pizza.es",
	})

	assert.Nil(t, response)
	assert.ErrorIs(t, err, ErrInvalidDomain)
}

func TestPerformSearchWithoutQuota(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mocks := newServiceWithMocks(ctrl)
	ctx := context.Background()

	mocks.userRepo.EXPECT().
		ConsumeKeywordQuota(ctx, 42, 1).
		Return(0, domain.ErrInsufficientQuota)

	response, err := service.PerformSearch(ctx, 42, domain.SearchRequest{
		Keywords: "pizza madrid",
		Domain:   "joes-pizza.es",
	})

	assert.Nil(t, response)
	assert.ErrorIs(t, err, domain.ErrInsufficientQuota)
}

func aiPageWithDomains(links ...string) *serpapidomain.AIPage {
	page := &serpapidomain.AIPage{}
	block := serpapidomain.TextBlock{Snippet: "Os melhores lugares da cidade."}
	for _, link := range links {
		block.SnippetLinks = append(block.SnippetLinks, serpapidomain.SnippetLink{Link: link})
	}
	page.TextBlocks = append(page.TextBlocks, block)
	return page
}

func TestPerformAISearchDomainCited(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mocks := newServiceWithMocks(ctrl)
	ctx := context.Background()

	request := domain.AISearchRequest{
		Keywords: "melhor pizza de madrid",
		Domain:   "www.joes-pizza.es",
		Business: "Joe's Pizza",
	}

	mocks.userRepo.EXPECT().
		ConsumeKeywordQuota(ctx, 42, 1).
		Return(49, nil)
	mocks.provider.EXPECT().
		FetchAIPage(ctx, "melhor pizza de madrid").
		Return(aiPageWithDomains("https://outro.com", "https://joes-pizza.es/carta"), nil)

	// A consulta de IA é persistida com engine google_ai e device mobile
	mocks.snapshotRepo.EXPECT().
		UpsertResolved(ctx, gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, query domain.RankQuery, resolution *domain.RankResolution, _ domain.BaselineRoller) (*domain.RankSnapshot, error) {
			assert.Equal(t, domain.SearchEngineGoogleAI, query.SearchEngine)
			assert.Equal(t, domain.DeviceMobile, query.Device)
			assert.Equal(t, 2, resolution.Position)
			return &domain.RankSnapshot{Position: resolution.Position}, nil
		})

	result, err := service.PerformAISearch(ctx, 42, request)

	assert.NoError(t, err)
	assert.Equal(t, 2, *result.DomainPosition)
	assert.Equal(t, 2, *result.FinalPosition)
}

func TestPerformAISearchBusinessMentionFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mocks := newServiceWithMocks(ctrl)
	ctx := context.Background()

	request := domain.AISearchRequest{
		Keywords: "melhor pizza de madrid",
		Domain:   "joes-pizza.es",
		Business: "Joe's Pizza",
	}

	page := &serpapidomain.AIPage{
		TextBlocks: []serpapidomain.TextBlock{
			{Snippet: "Muitos recomendam o Joe's Pizza no centro da cidade."},
		},
	}

	mocks.userRepo.EXPECT().
		ConsumeKeywordQuota(ctx, 42, 1).
		Return(49, nil)
	mocks.provider.EXPECT().
		FetchAIPage(ctx, "melhor pizza de madrid").
		Return(page, nil)
	mocks.snapshotRepo.EXPECT().
		UpsertResolved(ctx, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&domain.RankSnapshot{Position: 1}, nil)

	result, err := service.PerformAISearch(ctx, 42, request)

	assert.NoError(t, err)
	assert.Nil(t, result.DomainPosition)
	assert.Equal(t, 1, *result.BusinessPosition)
	assert.Equal(t, 1, *result.FinalPosition)
}

func TestPerformAISearchNotMentioned(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mocks := newServiceWithMocks(ctrl)
	ctx := context.Background()

	request := domain.AISearchRequest{
		Keywords: "melhor pizza de madrid",
		Domain:   "joes-pizza.es",
		Business: "Joe's Pizza",
	}

	mocks.userRepo.EXPECT().
		ConsumeKeywordQuota(ctx, 42, 1).
		Return(49, nil)
	// Nem domínio nem negócio aparecem: nada é persistido
	mocks.provider.EXPECT().
		FetchAIPage(ctx, "melhor pizza de madrid").
		Return(aiPageWithDomains("https://outro.com"), nil)

	result, err := service.PerformAISearch(ctx, 42, request)

	assert.NoError(t, err)
	assert.Nil(t, result.FinalPosition)
}

func TestResolveAndStoreNotFoundSkipsPersistence(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mocks := newServiceWithMocks(ctrl)
	ctx := context.Background()

	query := domain.RankQuery{
		UserID:         42,
		Keyword:        "pizza madrid",
		FilteredDomain: "joes-pizza.es",
		Device:         domain.DeviceDesktop,
	}

	mocks.resolver.EXPECT().
		ResolveRank(ctx, query).
		Return(&domain.RankResolution{}, nil)

	snapshot, err := service.ResolveAndStore(ctx, query)

	assert.NoError(t, err)
	assert.Nil(t, snapshot)
}
