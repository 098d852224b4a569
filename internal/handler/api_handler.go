// internal/handler/api_handler.go
package handler

import (
	"encoding/json"
	"log"
	"net/http"

	appErrors "github.com/unclebandit/crm-viewer/internal/errors"
	"github.com/unclebandit/crm-viewer/internal/model"
	"github.com/unclebandit/crm-viewer/internal/service"
)

const AppName = "crm-app"

// APIHandler holds the dependencies for the JSON API
type APIHandler struct {
	Service *service.DashboardService
}

// NewAPIHandler creates a new APIHandler with the given service
func NewAPIHandler(svc *service.DashboardService) *APIHandler {
	return &APIHandler{Service: svc}
}

// Health is the liveness probe; it never touches the database
func (h *APIHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
		"app":    AppName,
	})
}

// Ready is the readiness probe
func (h *APIHandler) Ready(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.Ready(r.Context()); err != nil {
		log.Println("❌ Readiness check failed:", appErrors.Describe(err))
		writeDetail(w, http.StatusServiceUnavailable, "Database connection failed: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"status":   "ready",
		"database": "connected",
	})
}

// ListCustomers returns every customer with ISO-8601 timestamps
func (h *APIHandler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.Service.ListCustomers(r.Context())
	if err != nil {
		log.Println("❌ Error fetching customers:", appErrors.Describe(err))
		writeDetail(w, http.StatusInternalServerError, err.Error())
		return
	}

	rows := make([]customerJSON, len(customers))
	for i, c := range customers {
		rows[i] = newCustomerJSON(c)
	}

	log.Printf("Retrieved %d customers", len(rows))
	writeJSON(w, http.StatusOK, customersResponse{Total: len(rows), Customers: rows})
}

// ListInteractions returns interactions newest first with customer names
func (h *APIHandler) ListInteractions(w http.ResponseWriter, r *http.Request) {
	interactions, err := h.Service.ListInteractions(r.Context())
	if err != nil {
		log.Println("❌ Error fetching interactions:", appErrors.Describe(err))
		writeDetail(w, http.StatusInternalServerError, err.Error())
		return
	}

	rows := make([]interactionJSON, len(interactions))
	for i, in := range interactions {
		rows[i] = newInteractionJSON(in)
	}

	log.Printf("Retrieved %d interactions", len(rows))
	writeJSON(w, http.StatusOK, interactionsResponse{Total: len(rows), Interactions: rows})
}

func (h *APIHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Service.GetStats(r.Context())
	if err != nil {
		log.Println("❌ Error fetching stats:", appErrors.Describe(err))
		writeDetail(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

type customersResponse struct {
	Total     int            `json:"total"`
	Customers []customerJSON `json:"customers"`
}

type interactionsResponse struct {
	Total        int               `json:"total"`
	Interactions []interactionJSON `json:"interactions"`
}

type customerJSON struct {
	ID        int            `json:"id"`
	Name      string         `json:"name"`
	Email     *string        `json:"email"`
	Phone     *string        `json:"phone"`
	Address   *string        `json:"address"`
	Company   *string        `json:"company"`
	Notes     *string        `json:"notes"`
	CreatedAt *model.ISOTime `json:"created_at"`
}

func newCustomerJSON(c model.Customer) customerJSON {
	return customerJSON{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		Company:   c.Company,
		Notes:     c.Notes,
		CreatedAt: model.ISO(c.CreatedAt),
	}
}

type interactionJSON struct {
	ID              int            `json:"id"`
	CustomerName    string         `json:"customer_name"`
	InteractionType string         `json:"interaction_type"`
	Subject         string         `json:"subject"`
	Description     *string        `json:"description"`
	CreatedBy       *string        `json:"created_by"`
	CreatedAt       *model.ISOTime `json:"created_at"`
}

func newInteractionJSON(i model.Interaction) interactionJSON {
	return interactionJSON{
		ID:              i.ID,
		CustomerName:    i.CustomerName,
		InteractionType: i.InteractionType,
		Subject:         i.Subject,
		Description:     i.Description,
		CreatedBy:       i.CreatedBy,
		CreatedAt:       model.ISO(i.CreatedAt),
	}
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

// writeDetail is the error envelope the frontend expects: {"detail": "..."}
func writeDetail(w http.ResponseWriter, code int, detail string) {
	writeJSON(w, code, map[string]string{"detail": detail})
}
