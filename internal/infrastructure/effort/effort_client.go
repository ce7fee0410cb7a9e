package effort

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"hsj_mel/internal/domain/entities"
	"hsj_mel/internal/usecase/interfaces"
)

var (
	ErrMissingEffortBaseURL  = errors.New("missing EFFORT_API_URL")
	ErrEffortNotConfigured   = errors.New("effort client not configured")
	ErrEffortUpstreamFailure = errors.New("effort upstream request failed")
)

const (
	defaultPageSize       = 100
	defaultRequestTimeout = 30 * time.Second
)

// Client talks to the Effort maintenance/inventory API.
//
// Effort exposes three read endpoints the engine consumes:
//   - GET /equipamentos?pagina=N&itensPorPagina=M   (paginated inventory)
//   - GET /os/analitica                             (complete analytic OS feed)
//   - GET /os/resumida                              (summarized OS feed)
//
// All upstream payloads are normalized here, at the boundary: field-name
// drift (Status vs SituacaoDaOS, numeric vs numeric-string IDs) never
// leaks past this package.

type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	pageSize   int
	mockMode   bool
}

var _ interfaces.IEquipmentProvider = (*Client)(nil)

// NewClient creates an Effort client. EFFORT_MOCK enables a local dataset
// for development without upstream access.
func NewClient(baseURL, token string) (*Client, error) {
	if isEffortMockEnabled() {
		log.Printf("[effort][client] mock mode enabled")
		return &Client{mockMode: true, pageSize: defaultPageSize}, nil
	}

	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		log.Printf("[effort][client] missing EFFORT_API_URL")
		return nil, ErrMissingEffortBaseURL
	}

	log.Printf("[effort][client] initialized base_url=%s", baseURL)
	return &Client{
		httpClient: &http.Client{Timeout: defaultRequestTimeout},
		baseURL:    baseURL,
		token:      strings.TrimSpace(token),
		pageSize:   defaultPageSize,
	}, nil
}

type equipmentWire struct {
	ID           json.Number `json:"equipamentoId"`
	Tag          string      `json:"tag"`
	Name         string      `json:"equipamento"`
	Model        string      `json:"modelo"`
	Manufacturer string      `json:"fabricante"`
	Sector       string      `json:"setor"`
	Status       string      `json:"situacao"`
}

type equipmentPageWire struct {
	Items      []equipmentWire `json:"equipamentos"`
	Page       int             `json:"pagina"`
	TotalPages int             `json:"totalPaginas"`
}

type serviceOrderWire struct {
	ID json.Number `json:"osId"`
	// The analytic feed reports the status as SituacaoDaOS; older payloads
	// used Status. Both are captured and resolved in normalization.
	SituacaoDaOS string      `json:"situacaoDaOS"`
	Status       string      `json:"status"`
	Tag          string      `json:"tag"`
	EquipmentID  json.Number `json:"equipamentoId"`
}

type serviceOrderFeedWire struct {
	Orders []serviceOrderWire `json:"ordens"`
}

// ListEquipment materializes the full inventory, following upstream
// pagination until the last page.
func (c *Client) ListEquipment(ctx context.Context) ([]entities.EquipmentRecord, error) {
	if c != nil && c.mockMode {
		return mockEquipment(), nil
	}
	if c == nil || c.httpClient == nil {
		return nil, ErrEffortNotConfigured
	}

	records := make([]entities.EquipmentRecord, 0, c.pageSize)
	for page := 1; ; page++ {
		var body equipmentPageWire
		endpoint := fmt.Sprintf("/equipamentos?pagina=%d&itensPorPagina=%d", page, c.pageSize)
		if err := c.getJSON(ctx, endpoint, &body); err != nil {
			return nil, err
		}
		for _, w := range body.Items {
			records = append(records, normalizeEquipment(w))
		}
		if body.TotalPages == 0 || page >= body.TotalPages {
			break
		}
	}
	log.Printf("[effort][client] equipment listed count=%d", len(records))
	return records, nil
}

// ListServiceOrdersAnalytic fetches the complete analytic feed, which
// carries the tag/equipment-id identity fields.
func (c *Client) ListServiceOrdersAnalytic(ctx context.Context) ([]entities.ServiceOrder, error) {
	if c != nil && c.mockMode {
		return mockServiceOrders(), nil
	}
	if c == nil || c.httpClient == nil {
		return nil, ErrEffortNotConfigured
	}

	var body serviceOrderFeedWire
	if err := c.getJSON(ctx, "/os/analitica", &body); err != nil {
		return nil, err
	}

	orders := make([]entities.ServiceOrder, 0, len(body.Orders))
	for _, w := range body.Orders {
		orders = append(orders, normalizeServiceOrder(w, entities.ServiceOrderSourceAnalytic))
	}
	log.Printf("[effort][client] analytic OS feed listed count=%d", len(orders))
	return orders, nil
}

// ListServiceOrdersSummarized fetches the degraded feed. Identity fields
// are dropped even if the payload happens to carry them: an order from this
// feed must never be linkable to a specific unit.
func (c *Client) ListServiceOrdersSummarized(ctx context.Context) ([]entities.ServiceOrder, error) {
	if c != nil && c.mockMode {
		return nil, nil
	}
	if c == nil || c.httpClient == nil {
		return nil, ErrEffortNotConfigured
	}

	var body serviceOrderFeedWire
	if err := c.getJSON(ctx, "/os/resumida", &body); err != nil {
		return nil, err
	}

	orders := make([]entities.ServiceOrder, 0, len(body.Orders))
	for _, w := range body.Orders {
		o := normalizeServiceOrder(w, entities.ServiceOrderSourceSummarized)
		o.Tag = ""
		o.EquipmentID = nil
		orders = append(orders, o)
	}
	log.Printf("[effort][client] summarized OS feed listed count=%d", len(orders))
	return orders, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out any) error {
	u, err := url.Parse(c.baseURL + endpoint)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("[effort][client] request failed endpoint=%s err=%v", endpoint, err)
		return fmt.Errorf("%w: %v", ErrEffortUpstreamFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		log.Printf("[effort][client] unexpected status endpoint=%s status=%d body=%s", endpoint, resp.StatusCode, string(snippet))
		return fmt.Errorf("%w: status %d", ErrEffortUpstreamFailure, resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func normalizeEquipment(w equipmentWire) entities.EquipmentRecord {
	id, _ := coerceID(w.ID)
	return entities.EquipmentRecord{
		ID:           id,
		Tag:          strings.TrimSpace(w.Tag),
		Name:         strings.TrimSpace(w.Name),
		Model:        strings.TrimSpace(w.Model),
		Manufacturer: strings.TrimSpace(w.Manufacturer),
		Sector:       strings.TrimSpace(w.Sector),
		Status:       strings.TrimSpace(w.Status),
	}
}

func normalizeServiceOrder(w serviceOrderWire, source entities.ServiceOrderSource) entities.ServiceOrder {
	status := strings.TrimSpace(w.SituacaoDaOS)
	if status == "" {
		status = strings.TrimSpace(w.Status)
	}

	o := entities.ServiceOrder{
		ID:     w.ID.String(),
		Status: status,
		Tag:    strings.TrimSpace(w.Tag),
		Source: source,
	}
	if id, ok := coerceID(w.EquipmentID); ok {
		o.EquipmentID = &id
	}
	return o
}

// coerceID accepts the numeric and numeric-string spellings upstream mixes.
func coerceID(n json.Number) (int, bool) {
	s := strings.TrimSpace(n.String())
	if s == "" {
		return 0, false
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return v, true
}

func isEffortMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("EFFORT_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

// mockEquipment mirrors a tiny slice of the production inventory so the
// API can run end to end without upstream credentials.
func mockEquipment() []entities.EquipmentRecord {
	return []entities.EquipmentRecord{
		{ID: 1, Tag: "HSJ-001", Name: "Monitor Multiparâmetro", Model: "Efficia CM12", Manufacturer: "Philips", Sector: "UTI 1", Status: "ativo"},
		{ID: 2, Tag: "HSJ-002", Name: "Monitor Multiparâmetro", Model: "Efficia CM12", Manufacturer: "Philips", Sector: "UTI 1", Status: "ativo"},
		{ID: 3, Tag: "HSJ-010", Name: "Ventilador Pulmonar", Model: "Servo-i", Manufacturer: "Maquet", Sector: "UTI 1", Status: "ativo"},
		{ID: 4, Tag: "HSJ-020", Name: "Desfibrilador", Model: "HeartStart XL", Manufacturer: "Philips", Sector: "CC - Centro Cirurgico", Status: "ativo"},
		{ID: 5, Tag: "", Name: "Bomba de Infusão", Model: "Plum A+", Manufacturer: "Hospira", Sector: "UTI 2", Status: "emprestado"},
	}
}

func mockServiceOrders() []entities.ServiceOrder {
	eqID := 3
	return []entities.ServiceOrder{
		{ID: "9001", Status: "aberta", Tag: "HSJ-001", Source: entities.ServiceOrderSourceAnalytic},
		{ID: "9002", Status: "concluida", Tag: "HSJ-002", Source: entities.ServiceOrderSourceAnalytic},
		{ID: "9003", Status: "em_andamento", EquipmentID: &eqID, Source: entities.ServiceOrderSourceAnalytic},
	}
}
