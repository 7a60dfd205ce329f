package controllers

import (
	"net/http"

	"github.com/storecraft/backoffice-backend/api/responses"
	"github.com/storecraft/backoffice-backend/api/validators"
	itemsvc "github.com/storecraft/backoffice-backend/internal/items"
	"github.com/storecraft/backoffice-backend/pkg/logger"
)

type createItemRequest struct {
	Name           string `json:"name" validate:"required"`
	Description    string `json:"description"`
	UnitPriceCents int64  `json:"unit_price_cents" validate:"min=0"`
}

type updateItemRequest struct {
	Name           *string `json:"name,omitempty"`
	Description    *string `json:"description,omitempty"`
	UnitPriceCents *int64  `json:"unit_price_cents,omitempty" validate:"omitempty,min=0"`
	Status         *string `json:"status,omitempty"`
}

func ListItems(svc itemsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		merchantID, err := validators.UUIDParam(r, "merchantId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		rows, err := svc.ListItems(r.Context(), merchantID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, rows)
	}
}

func CreateItem(svc itemsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		merchantID, err := validators.UUIDParam(r, "merchantId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var payload createItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		created, err := svc.CreateItem(r.Context(), merchantID, itemsvc.CreateItemInput{
			Name:           payload.Name,
			Description:    payload.Description,
			UnitPriceCents: payload.UnitPriceCents,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, created)
	}
}

func UpdateItem(svc itemsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		merchantID, err := validators.UUIDParam(r, "merchantId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		itemID, err := validators.UUIDParam(r, "itemId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var payload updateItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		updated, err := svc.UpdateItem(r.Context(), merchantID, itemID, itemsvc.UpdateItemInput{
			Name:           payload.Name,
			Description:    payload.Description,
			UnitPriceCents: payload.UnitPriceCents,
			Status:         payload.Status,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, updated)
	}
}
