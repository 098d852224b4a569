// internal/controller/viewer_controller.go
package controller

import (
	"bytes"
	"embed"
	"encoding/json"
	"html/template"
	"log"
	"net/http"

	appErrors "github.com/unclebandit/crm-viewer/internal/errors"
	"github.com/unclebandit/crm-viewer/internal/model"
	"github.com/unclebandit/crm-viewer/internal/service"
)

const AppName = "customer-viewer"

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplate = template.Must(
	template.New("index.html").Funcs(template.FuncMap{
		"datetime": formatDateTime,
		"text":     derefString,
	}).ParseFS(templateFS, "templates/index.html"),
)

// ViewerController serves the HTML dashboard and its JSON mirrors.
type ViewerController struct {
	Service *service.DashboardService
}

func (c *ViewerController) Index(w http.ResponseWriter, r *http.Request) {
	overview, err := c.Service.Overview(r.Context())
	if err != nil {
		log.Println("❌ Error loading dashboard:", appErrors.Describe(err))
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("Error connecting to database: " + err.Error()))
		return
	}

	// Render into a buffer so a template failure can still become a clean 500.
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, overview); err != nil {
		log.Println("❌ Error rendering dashboard:", err)
		http.Error(w, "failed to render page: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	buf.WriteTo(w)
}

func (c *ViewerController) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
		"app":    AppName,
	})
}

func (c *ViewerController) Ready(w http.ResponseWriter, r *http.Request) {
	if err := c.Service.Ready(r.Context()); err != nil {
		log.Println("⚠️ Readiness check failed:", appErrors.Describe(err))
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "not ready",
			"error":  err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"status":   "ready",
		"database": "connected",
	})
}

func (c *ViewerController) ListCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := c.Service.ListCustomers(r.Context())
	if err != nil {
		log.Println("❌ Error fetching customers:", appErrors.Describe(err))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	rows := make([]customerJSON, len(customers))
	for i, cu := range customers {
		rows[i] = newCustomerJSON(cu)
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"total":     len(rows),
		"customers": rows,
	})
}

func (c *ViewerController) ListInteractions(w http.ResponseWriter, r *http.Request) {
	interactions, err := c.Service.ListInteractions(r.Context())
	if err != nil {
		log.Println("❌ Error fetching interactions:", appErrors.Describe(err))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	rows := make([]interactionJSON, len(interactions))
	for i, in := range interactions {
		rows[i] = newInteractionJSON(in)
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"total":        len(rows),
		"interactions": rows,
	})
}

// customerJSON is model.Customer with timestamps as HTTP dates.
type customerJSON struct {
	ID        int             `json:"id"`
	Name      string          `json:"name"`
	Email     *string         `json:"email"`
	Phone     *string         `json:"phone"`
	Address   *string         `json:"address"`
	Company   *string         `json:"company"`
	Notes     *string         `json:"notes"`
	CreatedAt *model.HTTPDate `json:"created_at"`
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
		CreatedAt: model.HTTP(c.CreatedAt),
	}
}

type interactionJSON struct {
	ID              int             `json:"id"`
	CustomerName    string          `json:"customer_name"`
	InteractionType string          `json:"interaction_type"`
	Subject         string          `json:"subject"`
	Description     *string         `json:"description"`
	CreatedBy       *string         `json:"created_by"`
	CreatedAt       *model.HTTPDate `json:"created_at"`
}

func newInteractionJSON(i model.Interaction) interactionJSON {
	return interactionJSON{
		ID:              i.ID,
		CustomerName:    i.CustomerName,
		InteractionType: i.InteractionType,
		Subject:         i.Subject,
		Description:     i.Description,
		CreatedBy:       i.CreatedBy,
		CreatedAt:       model.HTTP(i.CreatedAt),
	}
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func formatDateTime(ts *model.Timestamp) string {
	if ts == nil {
		return ""
	}
	return ts.Time.Format("2006-01-02 15:04:05")
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
