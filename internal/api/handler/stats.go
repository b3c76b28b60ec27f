package handler

import (
	"database/sql"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/rank-tracker-api/internal/domain"
	"github.com/vfg2006/rank-tracker-api/internal/usecases/reporting"
	"github.com/vfg2006/rank-tracker-api/pkg/apiErrors"
	"github.com/vfg2006/rank-tracker-api/pkg/middleware"
)

// GetStats retorna o resumo do painel com contadores e tendências
func GetStats(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		stats, err := service.GetStats(
			r.Context(),
			userClaims.UserID,
			r.URL.Query().Get("domain"),
			r.URL.Query().Get("keyword"),
		)
		if err != nil {
			logrus.WithError(err).Error("Erro ao montar estatísticas")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao montar estatísticas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(stats)
	}
}

// GetDetailedStats retorna as linhas detalhadas do painel
func GetDetailedStats(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		rows, err := service.GetDetailedStats(
			r.Context(),
			userClaims.UserID,
			r.URL.Query().Get("domain"),
			r.URL.Query().Get("keyword"),
		)
		if err != nil {
			logrus.WithError(err).Error("Erro ao montar estatísticas detalhadas")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao montar estatísticas detalhadas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(rows)
	}
}

// GetHistoryOptions retorna os valores distintos para os filtros do painel
func GetHistoryOptions(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		options, err := service.GetHistoryOptions(r.Context(), userClaims.UserID)
		if err != nil {
			logrus.WithError(err).Error("Erro ao listar opções de filtro")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao listar opções de filtro", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(options)
	}
}

// DeleteSnapshot remove um snapshot do histórico do usuário logado
func DeleteSnapshot(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		snapshotID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if snapshotID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do snapshot não fornecido", nil)
			return
		}

		err := service.DeleteSnapshot(r.Context(), userClaims.UserID, snapshotID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Snapshot não encontrado", nil)
				return
			}

			logrus.WithError(err).Error("Erro ao remover snapshot")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao remover snapshot", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
