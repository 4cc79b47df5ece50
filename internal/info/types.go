package info

// ServiceIdentity is compiled into the binary and never changes at runtime.
type ServiceIdentity struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Description string `json:"description"`
	Framework   string `json:"framework"`
}

var Identity = ServiceIdentity{
	Name:        "devops-info-service",
	Version:     "1.0.0",
	Description: "DevOps course info service",
	Framework:   "go-chi/chi",
}

type Uptime struct {
	Seconds int64
	Human   string
}

// SystemFacts is a best-effort snapshot of the host. Fields the platform does
// not report are left at their zero value.
type SystemFacts struct {
	Hostname        string `json:"hostname"`
	Platform        string `json:"platform"`
	PlatformVersion string `json:"platform_version"`
	Architecture    string `json:"architecture"`
	CPUCount        int    `json:"cpu_count"`
	RuntimeVersion  string `json:"runtime_version"`
}

type RuntimeInfo struct {
	UptimeSeconds int64  `json:"uptime_seconds"`
	UptimeHuman   string `json:"uptime_human"`
	CurrentTime   string `json:"current_time"`
	Timezone      string `json:"timezone"`
}

// RequestContext describes the inbound request being answered. UserAgent is
// nil when the client sent no User-Agent header.
type RequestContext struct {
	ClientIP  string  `json:"client_ip"`
	UserAgent *string `json:"user_agent"`
	Method    string  `json:"method"`
	Path      string  `json:"path"`
}

type Endpoint struct {
	Path        string `json:"path"`
	Method      string `json:"method"`
	Description string `json:"description"`
}

type InfoResponse struct {
	Service   ServiceIdentity `json:"service"`
	System    SystemFacts     `json:"system"`
	Runtime   RuntimeInfo     `json:"runtime"`
	Request   RequestContext  `json:"request"`
	Endpoints []Endpoint      `json:"endpoints"`
}

type HealthResponse struct {
	Status        string `json:"status"`
	Timestamp     string `json:"timestamp"`
	UptimeSeconds int64  `json:"uptime_seconds"`
}
