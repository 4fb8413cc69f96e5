package metrics

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Command metric names
const (
	MetricNameCommandsProcessed = "commands_processed_total"
	MetricNameCommandDuration   = "command_duration_seconds"
)

// Board metric names
const (
	MetricNameBoardRefreshes     = "board_refreshes_total"
	MetricNameBoardRefreshErrors = "board_refresh_errors_total"
	MetricNameBoardRefreshTime   = "board_refresh_duration_seconds"
	MetricNameBoardPages         = "board_pages"
)

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Command metric help text
const (
	HelpTextCommandsProcessed = "Total number of slash commands processed"
	HelpTextCommandDuration   = "Slash command handling latency in seconds"
)

// Board metric help text
const (
	HelpTextBoardRefreshes     = "Total number of board refreshes performed"
	HelpTextBoardRefreshErrors = "Total number of failed board refreshes"
	HelpTextBoardRefreshTime   = "Board refresh latency in seconds"
	HelpTextBoardPages         = "Number of message pages the board currently occupies"
)

// Common label names used across metrics
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelCommand = "command"
	LabelBoard   = "board"
)

// Status label values
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s to capture various latency
// patterns: fast (1-10ms), normal (10-100ms), slow (100ms-1s), very slow (1-10s)
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// BoardLatencyBuckets covers board refreshes, which make several REST calls
// per refresh and regularly hit Discord rate limits.
var BoardLatencyBuckets = []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30}
