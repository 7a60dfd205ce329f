package controllers

import (
	"net/http"

	"github.com/storecraft/backoffice-backend/api/responses"
	"github.com/storecraft/backoffice-backend/api/validators"
	discountsvc "github.com/storecraft/backoffice-backend/internal/discounts"
	"github.com/storecraft/backoffice-backend/pkg/logger"
)

type createDiscountRequest struct {
	Name            string `json:"name" validate:"required"`
	Threshold       int    `json:"threshold" validate:"required,gt=0"`
	PercentDiscount int    `json:"percent_discount" validate:"required,gt=0,lte=100"`
}

type createHolidayDiscountRequest struct {
	Holiday         string `json:"holiday" validate:"required"`
	Name            string `json:"name"`
	Threshold       int    `json:"threshold" validate:"required,gt=0"`
	PercentDiscount int    `json:"percent_discount" validate:"required,gt=0,lte=100"`
}

func ListDiscounts(svc discountsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		merchantID, err := validators.UUIDParam(r, "merchantId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		rows, err := svc.ListDiscounts(r.Context(), merchantID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, rows)
	}
}

func GetDiscount(svc discountsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		merchantID, err := validators.UUIDParam(r, "merchantId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		discountID, err := validators.UUIDParam(r, "discountId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		discount, err := svc.GetDiscount(r.Context(), merchantID, discountID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, discount)
	}
}

func CreateDiscount(svc discountsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		merchantID, err := validators.UUIDParam(r, "merchantId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var payload createDiscountRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		created, err := svc.CreateDiscount(r.Context(), merchantID, discountsvc.CreateDiscountInput{
			Name:            payload.Name,
			Threshold:       payload.Threshold,
			PercentDiscount: payload.PercentDiscount,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, created)
	}
}

func CreateHolidayDiscount(svc discountsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		merchantID, err := validators.UUIDParam(r, "merchantId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var payload createHolidayDiscountRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		created, err := svc.CreateHolidayDiscount(r.Context(), merchantID, discountsvc.HolidayDiscountInput{
			HolidayName:     payload.Holiday,
			Name:            payload.Name,
			Threshold:       payload.Threshold,
			PercentDiscount: payload.PercentDiscount,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, created)
	}
}

func DeleteDiscount(svc discountsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		merchantID, err := validators.UUIDParam(r, "merchantId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		discountID, err := validators.UUIDParam(r, "discountId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := svc.DeleteDiscount(r.Context(), merchantID, discountID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}

type updateDiscountRequest struct {
	Name            *string `json:"name,omitempty"`
	Threshold       *int    `json:"threshold,omitempty" validate:"omitempty,gt=0"`
	PercentDiscount *int    `json:"percent_discount,omitempty" validate:"omitempty,gt=0,lte=100"`
}

func UpdateDiscount(svc discountsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		merchantID, err := validators.UUIDParam(r, "merchantId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		discountID, err := validators.UUIDParam(r, "discountId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var payload updateDiscountRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		updated, err := svc.UpdateDiscount(r.Context(), merchantID, discountID, discountsvc.UpdateDiscountInput{
			Name:            payload.Name,
			Threshold:       payload.Threshold,
			PercentDiscount: payload.PercentDiscount,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, updated)
	}
}
