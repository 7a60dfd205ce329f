package controllers

import (
	"net/http"

	"github.com/storecraft/backoffice-backend/api/responses"
	"github.com/storecraft/backoffice-backend/api/validators"
	merchantsvc "github.com/storecraft/backoffice-backend/internal/merchants"
	"github.com/storecraft/backoffice-backend/pkg/logger"
)

func AdminListMerchants(svc merchantsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := svc.ListMerchants(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, rows)
	}
}

// AdminSetMerchantStatus enables or disables a merchant.
func AdminSetMerchantStatus(svc merchantsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		merchantID, err := validators.UUIDParam(r, "merchantId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var payload setStatusRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := svc.SetStatus(r.Context(), merchantID, payload.Status); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": payload.Status})
	}
}
