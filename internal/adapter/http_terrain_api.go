package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	m "github.com/mouse-blink/parcel/internal/model"
)

// maxResponseBytes bounds how much of a response body is read.
const maxResponseBytes = 8 << 20

// HTTPOptions configures an HTTPTerrainAPI.
type HTTPOptions struct {
	// BaseURL is the API root, e.g. http://localhost:8000/core/api.
	BaseURL string
	// Cookie is a raw Cookie header sent with every request.
	Cookie string
	// CSRFCookieName names the cookie holding the CSRF token.
	CSRFCookieName string
	// Timeout bounds each request. Zero disables the limit.
	Timeout time.Duration
	Client  *http.Client
	Logger  *slog.Logger
}

// HTTPTerrainAPI implements TerrainAPI over JSON/HTTP.
type HTTPTerrainAPI struct {
	baseURL   string
	cookies   []*http.Cookie
	csrfToken string
	timeout   time.Duration
	client    *http.Client
	logger    *slog.Logger
}

// NewHTTPTerrainAPI builds a client from options.
func NewHTTPTerrainAPI(opts HTTPOptions) (*HTTPTerrainAPI, error) {
	base := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if base == "" {
		return nil, fmt.Errorf("base url is required")
	}

	cookies, err := ParseCookieHeader(opts.Cookie)
	if err != nil {
		return nil, err
	}

	client := opts.Client
	if client == nil {
		client = &http.Client{}
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	api := &HTTPTerrainAPI{
		baseURL:   base,
		cookies:   cookies,
		csrfToken: CSRFToken(cookies, opts.CSRFCookieName),
		timeout:   opts.Timeout,
		client:    client,
		logger:    logger,
	}

	if api.csrfToken == "" {
		logger.Warn("no csrf token found in cookies; mutating requests may be rejected")
	}

	return api, nil
}

// geometryString is a geometry carried as a JSON string holding GeoJSON.
// Decoding also tolerates an embedded geometry object.
type geometryString struct {
	geom m.Geometry
}

func (g geometryString) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.geom.String())
}

func (g *geometryString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		g.geom = m.Geometry{}
		return nil
	}

	if data[0] == '"' {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}

		if strings.TrimSpace(raw) == "" {
			g.geom = m.Geometry{}
			return nil
		}

		data = []byte(raw)
	}

	geom, err := m.ParseGeometry(data)
	if err != nil {
		return err
	}

	g.geom = geom

	return nil
}

type terrainWire struct {
	ID       int64          `json:"id,omitempty"`
	Project  int64          `json:"project"`
	Name     string         `json:"name"`
	Geometry geometryString `json:"geometry"`
}

func (w terrainWire) record() m.TerrainRecord {
	return m.TerrainRecord{
		ID:        w.ID,
		ProjectID: w.Project,
		Name:      w.Name,
		Geometry:  w.Geometry.geom,
	}
}

type subdivideWire struct {
	Geometry geometryString `json:"geometry"`
	LotCount int            `json:"lotCount"`
	Method   string         `json:"method"`
}

type subdivideResponse struct {
	Features []struct {
		Geometry   geometryString `json:"geometry"`
		Properties struct {
			AreaSquareMeters *float64 `json:"areaSquareMeters"`
		} `json:"properties"`
	} `json:"features"`
}

type lotWire struct {
	Terrain          int64          `json:"terrain"`
	Number           string         `json:"number"`
	Geometry         geometryString `json:"geometry"`
	AreaSquareMeters float64        `json:"areaSquareMeters"`
}

type idResponse struct {
	ID int64 `json:"id"`
}

// CreateTerrain posts a new terrain.
func (a *HTTPTerrainAPI) CreateTerrain(ctx context.Context, req CreateTerrainRequest) (m.TerrainRecord, error) {
	body := terrainWire{
		Project:  req.ProjectID,
		Name:     req.Name,
		Geometry: geometryString{geom: req.Geometry},
	}

	var resp terrainWire
	if err := a.do(ctx, http.MethodPost, "/terrains/", body, &resp); err != nil {
		return m.TerrainRecord{}, err
	}

	if resp.ID == 0 {
		return m.TerrainRecord{}, fmt.Errorf("create terrain: response carries no id")
	}

	record := resp.record()
	if record.Name == "" {
		record.Name = req.Name
	}

	if record.Geometry.IsZero() {
		record.Geometry = req.Geometry
	}

	if record.ProjectID == 0 {
		record.ProjectID = req.ProjectID
	}

	return record, nil
}

// GetTerrain fetches a terrain by id. A 404 yields ErrNotFound.
func (a *HTTPTerrainAPI) GetTerrain(ctx context.Context, id int64) (m.TerrainRecord, error) {
	var resp terrainWire
	if err := a.do(ctx, http.MethodGet, fmt.Sprintf("/terrains/%d/", id), nil, &resp); err != nil {
		return m.TerrainRecord{}, err
	}

	if resp.Geometry.geom.IsZero() {
		return m.TerrainRecord{}, fmt.Errorf("terrain %d has no geometry", id)
	}

	record := resp.record()
	if record.ID == 0 {
		record.ID = id
	}

	return record, nil
}

// Subdivide asks the backend to split a terrain into lots.
func (a *HTTPTerrainAPI) Subdivide(ctx context.Context, terrainID int64, req SubdivideRequest) (m.LotCollection, error) {
	body := subdivideWire{
		Geometry: geometryString{geom: req.Geometry},
		LotCount: req.LotCount,
		Method:   req.Method,
	}

	var resp subdivideResponse
	if err := a.do(ctx, http.MethodPost, fmt.Sprintf("/terrains/%d/subdivide/", terrainID), body, &resp); err != nil {
		return nil, err
	}

	lots := make(m.LotCollection, 0, len(resp.Features))

	for i, feature := range resp.Features {
		geom := feature.Geometry.geom
		if geom.IsZero() {
			return nil, fmt.Errorf("lot %d has no geometry", i+1)
		}

		area := geom.Area()
		if feature.Properties.AreaSquareMeters != nil {
			area = *feature.Properties.AreaSquareMeters
		}

		lots = append(lots, m.Lot{Geometry: geom, AreaSquareMeters: area})
	}

	return lots, nil
}

// CreateLot persists one subdivided lot and returns its id.
func (a *HTTPTerrainAPI) CreateLot(ctx context.Context, req CreateLotRequest) (int64, error) {
	body := lotWire{
		Terrain:          req.TerrainID,
		Number:           req.Number,
		Geometry:         geometryString{geom: req.Geometry},
		AreaSquareMeters: req.AreaSquareMeters,
	}

	var resp idResponse
	if err := a.do(ctx, http.MethodPost, "/lots/", body, &resp); err != nil {
		return 0, err
	}

	return resp.ID, nil
}

func (a *HTTPTerrainAPI) do(ctx context.Context, method, path string, body, out any) error {
	if a.timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	var reader io.Reader

	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}

		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for _, c := range a.cookies {
		req.AddCookie(c)
	}

	if method != http.MethodGet && a.csrfToken != "" {
		req.Header.Set(csrfHeader, a.csrfToken)
	}

	log := a.logger.With("request_id", requestID, "method", method, "path", path)
	log.Debug("backend request")

	resp, err := a.client.Do(req)
	if err != nil {
		return a.transportError(log, method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return a.transportError(log, method, path, err)
	}

	log.Debug("backend response", "status", resp.StatusCode)

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%s %s: %w", method, path, ErrNotFound)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: extractMessage(data)}
		log.Debug("backend rejected request", "status", resp.StatusCode, "message", apiErr.Message)

		return apiErr
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}

	return nil
}

func (a *HTTPTerrainAPI) transportError(log *slog.Logger, method, path string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		log.Debug("backend request timed out", "timeout", a.timeout)
		return fmt.Errorf("%s %s: %w", method, path, ErrTimeout)
	}

	log.Debug("backend request failed", "error", err)

	return fmt.Errorf("%s %s: %w", method, path, err)
}

// extractMessage pulls a human readable message out of an error body:
// detail, error, project, then every field error sorted by field name.
func extractMessage(body []byte) string {
	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}

	for _, key := range []string{"detail", "error", "project"} {
		if msg := messageOf(payload[key]); msg != "" {
			return msg
		}
	}

	fields := make([]string, 0, len(payload))
	for field := range payload {
		fields = append(fields, field)
	}

	sort.Strings(fields)

	parts := make([]string, 0, len(fields))

	for _, field := range fields {
		if msg := messageOf(payload[field]); msg != "" {
			parts = append(parts, field+": "+msg)
		}
	}

	return strings.Join(parts, "; ")
}

func messageOf(v any) string {
	switch value := v.(type) {
	case string:
		return strings.TrimSpace(value)
	case []any:
		parts := make([]string, 0, len(value))

		for _, item := range value {
			if msg := messageOf(item); msg != "" {
				parts = append(parts, msg)
			}
		}

		return strings.Join(parts, ", ")
	case map[string]any:
		return extractMessageFromMap(value)
	default:
		return ""
	}
}

func extractMessageFromMap(value map[string]any) string {
	data, err := json.Marshal(value)
	if err != nil {
		return ""
	}

	return extractMessage(data)
}
