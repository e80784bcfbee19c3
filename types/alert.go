package types

// AlertSource is a single citation backing a shortage alert. The shape is
// closed on purpose: title and uri, nothing probed at render time.
type AlertSource struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

// ShortageAlert summarizes regional blood-supply shortages. Absent until the
// first successful fetch for the session's current region.
type ShortageAlert struct {
	Summary string        `json:"summary"`
	Sources []AlertSource `json:"sources"`
}

// AlertState is the tri-state of the shortage-alert lookup. A failed fetch is
// fail-open: it means "unknown", never "region is safe".
type AlertState string

const (
	AlertIdle    AlertState = "idle"
	AlertLoading AlertState = "loading"
	AlertReady   AlertState = "ready"
	AlertFailed  AlertState = "failed"
)
