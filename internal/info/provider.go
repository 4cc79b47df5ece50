// Package info computes the service, host and runtime facts served by the API.
package info

import (
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v4/host"
)

const (
	StatusHealthy = "healthy"
	timezoneUTC   = "UTC"

	// ISO-8601 with microseconds and an explicit +00:00 offset.
	timestampLayout = "2006-01-02T15:04:05.000000-07:00"
)

// Endpoints lists the public routes advertised in the info payload.
var Endpoints = []Endpoint{
	{Path: "/", Method: "GET", Description: "Service information"},
	{Path: "/health", Method: "GET", Description: "Health check"},
}

// Provider assembles info and health payloads relative to a fixed start time.
// It holds no mutable state and is safe for concurrent use.
type Provider struct {
	startedAt time.Time
	now       func() time.Time
	hostname  func() (string, error)
	hostInfo  func() (*host.InfoStat, error)
}

type Option func(*Provider)

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(p *Provider) { p.now = now }
}

// WithHostInfo replaces the gopsutil host query.
func WithHostInfo(fn func() (*host.InfoStat, error)) Option {
	return func(p *Provider) { p.hostInfo = fn }
}

// WithHostname replaces os.Hostname.
func WithHostname(fn func() (string, error)) Option {
	return func(p *Provider) { p.hostname = fn }
}

// NewProvider returns a Provider measuring uptime from startedAt.
func NewProvider(startedAt time.Time, opts ...Option) *Provider {
	p := &Provider{
		startedAt: startedAt.UTC(),
		now:       time.Now,
		hostname:  os.Hostname,
		hostInfo:  host.Info,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Provider) StartedAt() time.Time {
	return p.startedAt
}

// ComputeUptime returns whole seconds since start and an "H hours, M minutes"
// rendering truncated from that count.
func (p *Provider) ComputeUptime() Uptime {
	return uptimeAt(p.startedAt, p.now().UTC())
}

func uptimeAt(start, now time.Time) Uptime {
	seconds := int64(now.Sub(start) / time.Second)
	if seconds < 0 {
		seconds = 0
	}
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	return Uptime{
		Seconds: seconds,
		Human:   fmt.Sprintf("%d hours, %d minutes", hours, minutes),
	}
}

// ComputeSystemFacts queries the host. Each field degrades independently: a
// failed lookup leaves that field empty instead of failing the whole call.
func (p *Provider) ComputeSystemFacts() SystemFacts {
	facts := SystemFacts{
		Platform:       platformName(runtime.GOOS),
		Architecture:   runtime.GOARCH,
		CPUCount:       runtime.NumCPU(),
		RuntimeVersion: runtime.Version(),
	}

	if name, err := p.hostname(); err == nil {
		facts.Hostname = name
	}

	stat, err := p.hostInfo()
	if err != nil || stat == nil {
		return facts
	}
	if facts.Hostname == "" {
		facts.Hostname = stat.Hostname
	}
	if stat.OS != "" {
		facts.Platform = platformName(stat.OS)
	}
	if stat.KernelVersion != "" {
		facts.PlatformVersion = stat.KernelVersion
	} else {
		facts.PlatformVersion = stat.PlatformVersion
	}
	if stat.KernelArch != "" {
		facts.Architecture = stat.KernelArch
	}
	return facts
}

// AssembleInfoResponse builds the payload for GET /.
func (p *Provider) AssembleInfoResponse(req RequestContext) InfoResponse {
	uptime := p.ComputeUptime()
	endpoints := make([]Endpoint, len(Endpoints))
	copy(endpoints, Endpoints)

	return InfoResponse{
		Service: Identity,
		System:  p.ComputeSystemFacts(),
		Runtime: RuntimeInfo{
			UptimeSeconds: uptime.Seconds,
			UptimeHuman:   uptime.Human,
			CurrentTime:   FormatTimestamp(p.now()),
			Timezone:      timezoneUTC,
		},
		Request:   req,
		Endpoints: endpoints,
	}
}

// AssembleHealthResponse builds the payload for GET /health.
func (p *Provider) AssembleHealthResponse() HealthResponse {
	now := p.now()
	return HealthResponse{
		Status:        StatusHealthy,
		Timestamp:     FormatTimestamp(now),
		UptimeSeconds: uptimeAt(p.startedAt, now.UTC()).Seconds,
	}
}

func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

// platformName renders GOOS-style names the way uname does ("linux" -> "Linux").
func platformName(goos string) string {
	if goos == "" {
		return ""
	}
	return strings.ToUpper(goos[:1]) + goos[1:]
}
