// Package hotelapi adaptador REST de la API de gestión hotelera (hoteles, habitaciones,
// huéspedes, reservas y pagos). Implementa los puertos de domain/repository.
package hotelapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jhoicas/hotel-dashboard-api/pkg/config"
	"github.com/jhoicas/hotel-dashboard-api/pkg/logger"
)

const (
	maxResponseBytes = 8 << 20 // tope de lectura por respuesta
	maxErrorBody     = 512     // bytes del cuerpo incluidos en el error
)

// Client cliente HTTP de la API de gestión.
// Usa net/http de la librería estándar; no hay SDK para esta API.
type Client struct {
	baseURL    string
	token      string
	loc        *time.Location
	httpClient *http.Client
	log        *logger.Logger
}

// ClientOption configura el Client.
type ClientOption func(*Client)

// WithHTTPClient reemplaza el *http.Client (tests).
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithLocation zona en la que se interpretan las fechas sin offset (YYYY-MM-DD).
func WithLocation(loc *time.Location) ClientOption {
	return func(c *Client) {
		if loc != nil {
			c.loc = loc
		}
	}
}

// WithLogger inyecta el logger.
func WithLogger(l *logger.Logger) ClientOption {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}

// NewClient construye el cliente a partir de la configuración.
func NewClient(cfg config.HotelAPIConfig, opts ...ClientOption) *Client {
	timeout := cfg.Timeout()
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	c := &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		token:      cfg.Token,
		loc:        time.Local,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ── Token del llamador ────────────────────────────────────────────────────────

type bearerKey struct{}

// WithBearerToken adjunta al contexto el token del usuario; tiene prioridad sobre el token de servicio.
func WithBearerToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, bearerKey{}, token)
}

func (c *Client) bearer(ctx context.Context) string {
	if t, ok := ctx.Value(bearerKey{}).(string); ok && t != "" {
		return t
	}
	return c.token
}

// ── Transporte ────────────────────────────────────────────────────────────────

// getRaw hace GET {base}/{path}?query y devuelve el cuerpo si la respuesta es 2xx.
func (c *Client) getRaw(ctx context.Context, path string, query url.Values) ([]byte, error) {
	endpoint := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("hotelapi: crear request %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")
	if token := c.bearer(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("hotelapi: GET %s: %w", path, ctx.Err())
		}
		return nil, fmt.Errorf("hotelapi: GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("hotelapi: leer respuesta %s: %w", path, err)
	}

	c.log.Debug().
		Str("path", path).
		Int("status", resp.StatusCode).
		Int("bytes", len(body)).
		Dur("elapsed", time.Since(start)).
		Msg("hotelapi: GET")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Path: path, StatusCode: resp.StatusCode, Body: truncate(string(body), maxErrorBody)}
	}
	return body, nil
}

// StatusError respuesta no 2xx de la API de gestión.
type StatusError struct {
	Path       string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("hotelapi: GET %s: HTTP %d: %s", e.Path, e.StatusCode, e.Body)
}

// truncate recorta a n bytes como máximo sin partir un carácter multibyte.
func truncate(s string, n int) string {
	s = strings.ToValidUTF8(strings.TrimSpace(s), "\uFFFD")
	if len(s) <= n {
		return s
	}
	cut := n
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "…"
}

// list hace el GET y decodifica la colección (arreglo o sobre {"data": [...]}).
func list[T any](ctx context.Context, c *Client, path string, query url.Values) ([]T, error) {
	raw, err := c.getRaw(ctx, path, query)
	if err != nil {
		return nil, err
	}
	rows, err := decodeList[T](raw)
	if err != nil {
		var syntax *json.SyntaxError
		if errors.As(err, &syntax) {
			return nil, fmt.Errorf("hotelapi: %s: JSON inválido en offset %d: %w", path, syntax.Offset, err)
		}
		return nil, fmt.Errorf("hotelapi: %s: decodificar: %w", path, err)
	}
	return rows, nil
}

func hotelQuery(hotelID string) url.Values {
	q := url.Values{}
	if hotelID != "" {
		q.Set("hotelId", hotelID)
	}
	return q
}
