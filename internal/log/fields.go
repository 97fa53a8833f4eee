package log

// Common field names for structured logging
const (
	FieldComponent  = "component"
	FieldRequestID  = "request_id"
	FieldMethod     = "method"
	FieldPath       = "path"
	FieldQuery      = "query"
	FieldStatusCode = "status_code"
	FieldDuration   = "duration_ms"
	FieldError      = "error"
	FieldOperation  = "operation"
	FieldYear       = "year"
	FieldMonth      = "month"
	FieldDate       = "date"
	FieldRecordID   = "record_id"
	FieldFoodCount  = "food_count"
	FieldCalories   = "total_calories"
	FieldTarget     = "target_calories"
	FieldSlot       = "slot"
	FieldFood       = "food"
	FieldRecords    = "records"
	FieldDropped    = "dropped_segments"
	FieldBackend    = "backend"
	FieldCacheHit   = "cache_hit"
	FieldDBPath     = "db_path"
	FieldTool       = "tool"
	FieldListenAddr = "addr"
	FieldBlobBytes  = "blob_bytes"
	FieldReplaced   = "replaced"
)

// Components defines standard component names
const (
	ComponentApp      = "app"
	ComponentHTTP     = "http"
	ComponentStore    = "store"
	ComponentStorage  = "storage"
	ComponentTracker  = "tracker"
	ComponentCalendar = "calendar"
	ComponentCache    = "cache"
	ComponentMCP      = "mcp"
	ComponentBackend  = "backend"
	ComponentTUI      = "tui"
)

// Operations defines standard operation names
const (
	OpLoad     = "load"
	OpSave     = "save"
	OpAddFood  = "add_food"
	OpReset    = "reset"
	OpMonth    = "month"
	OpDay      = "day"
	OpMigrate  = "migrate"
	OpStartup  = "startup"
	OpShutdown = "shutdown"
)

// LogFields provides a builder pattern for structured log fields
type LogFields map[string]any

// NewFields creates a new LogFields instance
func NewFields() LogFields {
	return make(LogFields)
}

// WithComponent adds component field
func (f LogFields) WithComponent(component string) LogFields {
	f[FieldComponent] = component
	return f
}

// WithError adds error field
func (f LogFields) WithError(err error) LogFields {
	if err != nil {
		f[FieldError] = err.Error()
	}
	return f
}

// WithOperation adds operation field
func (f LogFields) WithOperation(op string) LogFields {
	f[FieldOperation] = op
	return f
}

// WithRecord adds the fields describing a saved day.
func (f LogFields) WithRecord(id, date string, foodCount, totalCalories int) LogFields {
	f[FieldRecordID] = id
	f[FieldDate] = date
	f[FieldFoodCount] = foodCount
	f[FieldCalories] = totalCalories
	return f
}

// WithMonth adds year and month fields.
func (f LogFields) WithMonth(year, month int) LogFields {
	f[FieldYear] = year
	f[FieldMonth] = month
	return f
}

// WithHTTPRequest adds HTTP request fields
func (f LogFields) WithHTTPRequest(method, path, query string) LogFields {
	f[FieldMethod] = method
	f[FieldPath] = path
	f[FieldQuery] = query
	return f
}

// WithHTTPResponse adds HTTP response fields
func (f LogFields) WithHTTPResponse(statusCode int, durationMs int64) LogFields {
	f[FieldStatusCode] = statusCode
	f[FieldDuration] = durationMs
	return f
}

// ToSlice converts LogFields to a slice for slog
func (f LogFields) ToSlice() []any {
	slice := make([]any, 0, len(f)*2)
	for k, v := range f {
		slice = append(slice, k, v)
	}
	return slice
}
