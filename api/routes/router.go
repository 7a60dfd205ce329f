package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/storecraft/backoffice-backend/api/controllers"
	"github.com/storecraft/backoffice-backend/api/middleware"
	billingsvc "github.com/storecraft/backoffice-backend/internal/billing"
	discountsvc "github.com/storecraft/backoffice-backend/internal/discounts"
	holidaysvc "github.com/storecraft/backoffice-backend/internal/holidays"
	invoicesvc "github.com/storecraft/backoffice-backend/internal/invoices"
	itemsvc "github.com/storecraft/backoffice-backend/internal/items"
	merchantsvc "github.com/storecraft/backoffice-backend/internal/merchants"
	"github.com/storecraft/backoffice-backend/pkg/config"
	"github.com/storecraft/backoffice-backend/pkg/db"
	"github.com/storecraft/backoffice-backend/pkg/logger"
	"github.com/storecraft/backoffice-backend/pkg/metrics"
	"github.com/storecraft/backoffice-backend/pkg/redis"
)

// Deps carries everything the router wires into controllers.
type Deps struct {
	Config *config.Config
	Logger *logger.Logger

	DB    db.Pinger
	Redis redis.Pinger

	Registry *prometheus.Registry

	Billing   billingsvc.Service
	Discounts discountsvc.Service
	Holidays  holidaysvc.Service
	Invoices  invoicesvc.Service
	Items     itemsvc.Service
	Merchants merchantsvc.Service
}

// NewRouter assembles the HTTP surface. Authentication is left to the
// gateway in front of this service; admin routes live under their own
// prefix so the gateway can gate them separately.
func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()

	registry := d.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	requestMetrics := metrics.NewRequestMetrics(registry)

	r.Use(
		middleware.Recoverer(d.Logger),
		middleware.RequestID(d.Logger),
		middleware.Logging(d.Logger),
		middleware.Metrics(requestMetrics),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(d.Config))
		r.Get("/ready", controllers.HealthReady(d.Config, d.Logger, d.DB, d.Redis))
	})

	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/merchants/{merchantId}", func(r chi.Router) {
			r.Route("/discounts", func(r chi.Router) {
				r.Get("/", controllers.ListDiscounts(d.Discounts, d.Logger))
				r.Post("/", controllers.CreateDiscount(d.Discounts, d.Logger))
				r.Get("/{discountId}", controllers.GetDiscount(d.Discounts, d.Logger))
				r.Patch("/{discountId}", controllers.UpdateDiscount(d.Discounts, d.Logger))
				r.Delete("/{discountId}", controllers.DeleteDiscount(d.Discounts, d.Logger))
			})
			r.Post("/holiday-discounts", controllers.CreateHolidayDiscount(d.Discounts, d.Logger))

			r.Route("/items", func(r chi.Router) {
				r.Get("/", controllers.ListItems(d.Items, d.Logger))
				r.Post("/", controllers.CreateItem(d.Items, d.Logger))
				r.Patch("/{itemId}", controllers.UpdateItem(d.Items, d.Logger))
			})
		})

		r.Route("/line-items/{lineItemId}", func(r chi.Router) {
			r.Post("/status", controllers.SetLineItemStatus(d.Invoices, d.Logger))
			r.Get("/discount", controllers.ResolveLineItemDiscount(d.Billing, d.Logger))
		})

		r.Get("/invoices/{invoiceId}/summary", controllers.InvoiceSummary(d.Billing, d.Logger))
		r.Get("/holidays", controllers.ListHolidays(d.Holidays, d.Logger))
	})

	r.Route("/api/admin/v1", func(r chi.Router) {
		r.Get("/merchants", controllers.AdminListMerchants(d.Merchants, d.Logger))
		r.Post("/merchants/{merchantId}/status", controllers.AdminSetMerchantStatus(d.Merchants, d.Logger))
		r.Get("/invoices/incomplete", controllers.AdminIncompleteInvoices(d.Invoices, d.Logger))
		r.Post("/invoices/{invoiceId}/status", controllers.AdminSetInvoiceStatus(d.Invoices, d.Logger))
	})

	return r
}
