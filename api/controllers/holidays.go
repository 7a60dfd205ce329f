package controllers

import (
	"net/http"

	"github.com/storecraft/backoffice-backend/api/responses"
	holidaysvc "github.com/storecraft/backoffice-backend/internal/holidays"
	"github.com/storecraft/backoffice-backend/pkg/logger"
)

// ListHolidays returns the cached upcoming public holidays.
func ListHolidays(svc holidaysvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := svc.Upcoming(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, entries)
	}
}
