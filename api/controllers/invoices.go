package controllers

import (
	"net/http"

	"github.com/storecraft/backoffice-backend/api/responses"
	"github.com/storecraft/backoffice-backend/api/validators"
	billingsvc "github.com/storecraft/backoffice-backend/internal/billing"
	invoicesvc "github.com/storecraft/backoffice-backend/internal/invoices"
	"github.com/storecraft/backoffice-backend/pkg/logger"
)

type setStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// SetLineItemStatus lets the warehouse advance a line item through
// packaged/pending/shipped.
func SetLineItemStatus(svc invoicesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lineItemID, err := validators.UUIDParam(r, "lineItemId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var payload setStatusRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := svc.SetLineItemStatus(r.Context(), lineItemID, payload.Status); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": payload.Status})
	}
}

// ResolveLineItemDiscount returns the best applicable discount for a line
// item, or null when none applies.
func ResolveLineItemDiscount(svc billingsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lineItemID, err := validators.UUIDParam(r, "lineItemId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		discount, err := svc.ResolveDiscount(r.Context(), lineItemID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"discount": discount})
	}
}

// InvoiceSummary returns the computed revenue and discount roll-up. With a
// merchant_id query parameter the response narrows to that merchant's slice.
func InvoiceSummary(svc billingsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		invoiceID, err := validators.UUIDParam(r, "invoiceId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		merchantID, scoped, err := validators.OptionalUUIDQuery(r, "merchant_id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if scoped {
			revenue, err := svc.MerchantRevenue(r.Context(), invoiceID, merchantID)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
			discount, err := svc.MerchantDiscount(r.Context(), invoiceID, merchantID)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
			responses.WriteSuccess(w, billingsvc.MerchantSummary{
				MerchantID: merchantID,
				Revenue:    revenue,
				Discount:   discount,
			})
			return
		}

		summary, err := svc.InvoiceSummary(r.Context(), invoiceID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, summary)
	}
}

// AdminIncompleteInvoices lists invoices that still have unshipped line
// items, oldest first.
func AdminIncompleteInvoices(svc invoicesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := svc.IncompleteInvoices(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, rows)
	}
}

func AdminSetInvoiceStatus(svc invoicesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		invoiceID, err := validators.UUIDParam(r, "invoiceId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var payload setStatusRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := svc.SetInvoiceStatus(r.Context(), invoiceID, payload.Status); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": payload.Status})
	}
}
