package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creative-sync-api/internal/domain"
	"github.com/vfg2006/creative-sync-api/internal/usecases/syncing"
	"github.com/vfg2006/creative-sync-api/pkg/apiErrors"
	"github.com/vfg2006/creative-sync-api/pkg/middleware"
)

// SyncRequestBody é o corpo aceito pelo disparador de sincronização.
// user_id chega como número ou string numérica dependendo do cliente.
type SyncRequestBody struct {
	UserID      json.Number `json:"user_id"`
	AdAccountID string      `json:"ad_account_id"`
	AccessToken string      `json:"access_token"`
	DatePreset  string      `json:"date_preset"`
}

type SyncResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// RunSync dispara uma sincronização síncrona de criativos para a conta informada
func RunSync(service syncing.Syncer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := logrus.WithField("correlation_id", middleware.CorrelationID(r.Context()))

		var body SyncRequestBody
		decoder := json.NewDecoder(r.Body)
		decoder.UseNumber()
		if err := decoder.Decode(&body); err != nil {
			logger.WithError(err).Warn("sync: corpo da requisição inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "O corpo da requisição deve ser JSON", nil)
			return
		}

		missing := make([]string, 0, 3)
		if body.UserID.String() == "" {
			missing = append(missing, "user_id")
		}
		if body.AdAccountID == "" {
			missing = append(missing, "ad_account_id")
		}
		if body.AccessToken == "" {
			missing = append(missing, "access_token")
		}
		if len(missing) > 0 {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Campos obrigatórios ausentes", missing)
			return
		}

		userID, err := body.UserID.Int64()
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "user_id deve ser um inteiro", nil)
			return
		}

		logger.WithFields(logrus.Fields{
			"user_id":    userID,
			"account_id": body.AdAccountID,
		}).Info("sync: sincronização disparada via API")

		summary, err := service.SyncCreativeData(r.Context(), domain.SyncRequest{
			UserID:      userID,
			AdAccountID: body.AdAccountID,
			AccessToken: body.AccessToken,
			DatePreset:  body.DatePreset,
		})
		if err != nil {
			logger.WithError(err).Error("sync: sincronização falhou")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, err.Error(), nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(SyncResponse{
			Status:  "success",
			Message: summary.Message(),
		})
	})
}
