package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/rank-tracker-api/internal/domain"
	"github.com/vfg2006/rank-tracker-api/internal/usecases/tracking"
	"github.com/vfg2006/rank-tracker-api/pkg/apiErrors"
	"github.com/vfg2006/rank-tracker-api/pkg/middleware"
)

// PerformSearch executa a busca interativa de posições para o usuário logado
func PerformSearch(service tracking.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - PerformSearch")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var req domain.SearchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		response, err := service.PerformSearch(r.Context(), userClaims.UserID, req)
		if err != nil {
			handleSearchError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	}
}

// PerformAISearch analisa a resposta do modo IA do Google para o domínio e
// negócio informados
func PerformAISearch(service tracking.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - PerformAISearch")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var req domain.AISearchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		result, err := service.PerformAISearch(r.Context(), userClaims.UserID, req)
		if err != nil {
			handleSearchError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(result)
	}
}

// handleSearchError traduz os erros da busca para respostas padronizadas
func handleSearchError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, tracking.ErrNoKeywords):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nenhuma palavra-chave informada", nil)

	case errors.Is(err, tracking.ErrInvalidDomain):
		apiErrors.WriteError(w, apiErrors.ErrInvalidDomain, "Domínio inválido", nil)

	case errors.Is(err, domain.ErrInsufficientQuota):
		apiErrors.WriteError(w, apiErrors.ErrQuotaExceeded, "Cota de palavras-chave esgotada", nil)

	default:
		logrus.WithError(err).Error("Erro ao realizar busca")
		apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao realizar busca", nil)
	}
}
