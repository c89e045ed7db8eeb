package telemetry

import (
	"context"
	"net"
	"os"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.37.0"
)

// buildResource builds the OpenTelemetry Resource describing this run:
// service name/version plus the best-effort host IP, merged over the
// SDK's default process/runtime attributes.
func buildResource(ctx context.Context, cfg *Config) (*resource.Resource, error) {
	attrs := []attribute.KeyValue{
		semconv.ServiceName(cfg.ServiceName),
		semconv.ServiceVersion(cfg.ServiceVersion),
	}
	if hostIP := getHostIP(); hostIP != "" {
		attrs = append(attrs, semconv.HostName(hostIP))
	}
	for k, v := range cfg.ResourceAttrs {
		attrs = append(attrs, attribute.String(k, v))
	}

	return resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(semconv.SchemaURL, attrs...),
	)
}

// getHostIP resolves the local hostname to its first non-loopback IPv4
// address, returning "" if the host can't be resolved at all — a single
// batch-job process has no need for the interface-enumeration fallback
// a long-lived server's telemetry might want.
func getHostIP() string {
	hostname, err := os.Hostname()
	if err != nil {
		return ""
	}
	addrs, err := net.LookupIP(hostname)
	if err != nil {
		return ""
	}
	for _, addr := range addrs {
		if ipv4 := addr.To4(); ipv4 != nil && !ipv4.IsLoopback() {
			return ipv4.String()
		}
	}
	return ""
}
