package constants

import "time"

// Component names for structured logging.
const (
	ComponentElevator   = "elevator"
	ComponentDispatcher = "dispatcher"
	ComponentEngine     = "engine"
	ComponentHTTPServer = "http-server"
	ComponentIngest     = "ingest"
)

// Defaults for the simulator's configuration, used when the
// corresponding environment variable / flag is unset.
const (
	DefaultNumberOfFloors        = 10
	DefaultNumberOfElevators     = 1
	DefaultMaxCapacityOfElevator = 5
	DefaultLogLevel              = "INFO"
	DefaultHTTPPort              = 6660
	DefaultMetricsPath           = "/metrics"
	DefaultHealthPath            = "/health"
	DefaultWebSocketPath         = "/ws/ticks"
	DefaultElevatorNamePrefix    = "Elevator"
)

// Timeouts for the optional HTTP observation server.
const (
	DefaultServerReadTimeout  = 10 * time.Second
	DefaultServerWriteTimeout = 10 * time.Second
	DefaultShutdownTimeout    = 5 * time.Second
)

// MetricsNamespace is shared by every Prometheus collector.
const MetricsNamespace = "elevator_sim"

// ElevatorNameLabel is the Prometheus label key for an elevator name.
const ElevatorNameLabel = "elevator"
