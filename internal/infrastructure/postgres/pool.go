package postgres

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"time"

	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/hotel-dashboard-api/pkg/config"
)

var errNoIPv4 = errors.New("postgres: el host no tiene dirección IPv4")

// NewPool crea el pool contra la réplica de lectura (DATA_SOURCE=postgres) y verifica la conexión.
func NewPool(ctx context.Context, cfg config.DBConfig) (*pgxpool.Pool, error) {
	poolConfig, err := buildPoolConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("crear pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping DB: %w", err)
	}
	return pool, nil
}

// buildPoolConfig arma la configuración del pool sin abrir conexiones.
// El host se fija en IPv4 cuando se puede resolver (contenedores sin IPv6).
func buildPoolConfig(ctx context.Context, cfg config.DBConfig) (*pgxpool.Config, error) {
	res := ipv4Resolver{fallbackDNS: cfg.FallbackDNS}

	dsn, err := res.pinDSN(ctx, cfg)
	if err != nil {
		return nil, err
	}
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse DSN: %w", err)
	}

	poolConfig.ConnConfig.DialFunc = res.dial
	poolConfig.MaxConns = cfg.MaxConns
	poolConfig.MinConns = cfg.MinConns
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = time.Minute

	// NUMERIC -> shopspring/decimal en todas las conexiones del pool
	poolConfig.AfterConnect = func(_ context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}
	return poolConfig, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Resolución IPv4
// ──────────────────────────────────────────────────────────────────────────────

// ipv4Resolver busca la IPv4 de un host con el resolver del sistema y, si se configuró
// DB_FALLBACK_DNS, con ese servidor como segundo intento.
type ipv4Resolver struct {
	fallbackDNS string
}

// pinDSN devuelve el DSN con el host reemplazado por su IPv4; si no hay IPv4 deja el host original.
func (r ipv4Resolver) pinDSN(ctx context.Context, cfg config.DBConfig) (string, error) {
	if cfg.DatabaseURL == "" {
		if ip, err := r.lookup(ctx, cfg.Host); err == nil {
			cfg.Host = ip
		} else if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		return cfg.DSN(), nil
	}

	u, err := url.Parse(cfg.DatabaseURL)
	if err != nil || u.Hostname() == "" {
		// pgxpool.ParseConfig reporta el error de formato
		return cfg.DatabaseURL, nil
	}
	ip, err := r.lookup(ctx, u.Hostname())
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		return cfg.DatabaseURL, nil
	}
	port := u.Port()
	if port == "" {
		port = "5432"
	}
	u.Host = net.JoinHostPort(ip, port)
	return u.String(), nil
}

// dial es el DialFunc del pool: tcp4 contra la IPv4 del host, o dial normal si no la hay.
func (r ipv4Resolver) dial(ctx context.Context, network, addr string) (net.Conn, error) {
	var d net.Dialer
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return nil, err
	}
	ip, err := r.lookup(ctx, host)
	if err != nil {
		return d.DialContext(ctx, network, addr)
	}
	return d.DialContext(ctx, "tcp4", net.JoinHostPort(ip, port))
}

func (r ipv4Resolver) lookup(ctx context.Context, host string) (string, error) {
	if ip := net.ParseIP(host); ip != nil {
		if ip.To4() != nil {
			return host, nil
		}
		return "", errNoIPv4
	}

	ip, err := firstIPv4(ctx, net.DefaultResolver, host)
	if err == nil || r.fallbackDNS == "" || ctx.Err() != nil {
		return ip, err
	}

	fallback := &net.Resolver{
		PreferGo: true,
		Dial: func(ctx context.Context, _, _ string) (net.Conn, error) {
			var d net.Dialer
			return d.DialContext(ctx, "udp", r.fallbackDNS)
		},
	}
	return firstIPv4(ctx, fallback, host)
}

func firstIPv4(ctx context.Context, res *net.Resolver, host string) (string, error) {
	ips, err := res.LookupIP(ctx, "ip4", host)
	if err != nil {
		return "", err
	}
	for _, ip := range ips {
		if ip.To4() != nil {
			return ip.String(), nil
		}
	}
	return "", errNoIPv4
}
