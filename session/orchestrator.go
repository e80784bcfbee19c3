package session

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"go-lifelink/assistant"
	"go-lifelink/catalog"
	"go-lifelink/geoprobe"
	"go-lifelink/mapsync"
	"go-lifelink/types"
)

const chatFallback = "Sorry, I couldn't get a response right now. Please try again."

var (
	ErrEmptyMessage = errors.New("session: empty chat message")
	ErrChatBusy     = errors.New("session: a chat request is already in flight")
)

// Deps are the asynchronous collaborators an orchestrator coordinates.
type Deps struct {
	Searcher  catalog.Searcher
	Locator   geoprobe.Locator
	Responder assistant.Responder
	Renderer  mapsync.Renderer
}

type Config struct {
	// DefaultLocation is the camera position used until (and unless) the
	// device location arrives.
	DefaultLocation types.Coordinate

	// CollaboratorTimeout bounds every collaborator call so a stuck network
	// call can never leave a loading flag lit forever.
	CollaboratorTimeout time.Duration
}

func (c *Config) applyDefaults() {
	if c.DefaultLocation == (types.Coordinate{}) {
		c.DefaultLocation = types.Coordinate{Lat: 28.6139, Long: 77.2090}
	}
	if c.CollaboratorTimeout <= 0 {
		c.CollaboratorTimeout = 15 * time.Second
	}
}

// Orchestrator owns all mutable state for one dashboard session: the active
// result set, the user location, the chat log, the shortage alert, and the
// map engine. Collaborator results are committed under the mutex and gated by
// monotonic request tokens, so a slow response that was superseded is computed
// but never applied.
type Orchestrator struct {
	id   string
	cfg  Config
	deps Deps

	mu sync.Mutex

	engine *mapsync.Engine

	selectedType types.BloodType
	sortKey      types.SortKey

	userLocation   *types.Coordinate
	fallbackOrigin *types.Coordinate
	locateIssued   bool

	searchSeq    uint64
	appliedReq   types.SearchRequest
	results      []types.Center
	searching    bool
	searchFailed bool

	alertSeq   uint64
	alert      *types.ShortageAlert
	alertState types.AlertState

	chatLog     []types.ChatMessage
	chatPending bool
	chatVisible bool

	role string

	lastActive time.Time
	closed     bool
}

func New(id string, cfg Config, deps Deps) *Orchestrator {
	cfg.applyDefaults()
	return &Orchestrator{
		id:           id,
		cfg:          cfg,
		deps:         deps,
		engine:       mapsync.NewEngine(deps.Renderer),
		selectedType: types.OPositive,
		sortKey:      types.SortByDistance,
		alertState:   types.AlertIdle,
		lastActive:   time.Now(),
	}
}

func (o *Orchestrator) ID() string { return o.id }

// Start brings the map up at the default (or already-known) location and
// fires the one-shot geolocation probe. The rest of the dashboard never waits
// on the probe; the location swaps in whenever it arrives.
func (o *Orchestrator) Start() error {
	o.mu.Lock()
	initial := o.cfg.DefaultLocation
	if o.userLocation != nil {
		initial = *o.userLocation
	}
	o.mu.Unlock()

	if err := o.engine.Init(initial); err != nil {
		return err
	}
	o.probeLocation()
	return nil
}

// probeLocation requests the device position exactly once per session.
// Failure is logged and degrades to the default camera; there is no retry.
func (o *Orchestrator) probeLocation() {
	o.mu.Lock()
	if o.locateIssued || o.deps.Locator == nil {
		o.mu.Unlock()
		return
	}
	o.locateIssued = true
	o.mu.Unlock()

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), o.cfg.CollaboratorTimeout)
		defer cancel()

		coord, err := o.deps.Locator.CurrentPosition(ctx)
		if err != nil {
			log.Printf("Session %s: geolocation unavailable: %v", o.id, err)
			return
		}
		o.commitLocation(coord)
	}()
}

func (o *Orchestrator) commitLocation(coord types.Coordinate) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.closed {
		return
	}
	o.userLocation = &coord
	o.reconcileLocked()
}

// SelectBloodType updates the filter for the next search. It never touches
// the committed result set: displayed unit counts always belong to the blood
// type the applied request was issued with.
func (o *Orchestrator) SelectBloodType(bt types.BloodType) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.selectedType = bt
	o.touchLocked()
}

func (o *Orchestrator) SelectSortKey(sk types.SortKey) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.sortKey = sk
	o.touchLocked()
}

// SetFallbackOrigin supplies a search origin for sessions without a device
// fix, typically geocoded from a region the user typed.
func (o *Orchestrator) SetFallbackOrigin(coord types.Coordinate) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.fallbackOrigin = &coord
	o.touchLocked()
}

// TriggerSearch issues a search for the currently selected filters, captured
// at this instant. Returns the request token; only the newest token's
// response will ever be committed (last-request-wins, not last-to-resolve).
func (o *Orchestrator) TriggerSearch() uint64 {
	o.mu.Lock()
	o.searchSeq++
	seq := o.searchSeq
	req := types.SearchRequest{
		BloodType: o.selectedType,
		SortKey:   o.sortKey,
		Origin:    o.searchOriginLocked(),
	}
	o.searching = true
	o.searchFailed = false
	o.touchLocked()
	o.mu.Unlock()

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), o.cfg.CollaboratorTimeout)
		defer cancel()

		results, err := o.deps.Searcher.Search(ctx, req)
		o.commitSearch(seq, req, results, err)
	}()
	return seq
}

func (o *Orchestrator) searchOriginLocked() types.Coordinate {
	if o.userLocation != nil {
		return *o.userLocation
	}
	if o.fallbackOrigin != nil {
		return *o.fallbackOrigin
	}
	return o.cfg.DefaultLocation
}

// commitSearch applies a search response if and only if its token is still
// the newest issued. A stale response clears nothing and lights nothing; it
// is simply dropped.
func (o *Orchestrator) commitSearch(seq uint64, req types.SearchRequest, results []types.Center, err error) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.closed || seq != o.searchSeq {
		log.Printf("Session %s: dropping stale search response (token %d, latest %d)", o.id, seq, o.searchSeq)
		return false
	}

	o.searching = false
	if err != nil {
		log.Printf("Session %s: search failed: %v", o.id, err)
		o.results = nil
		o.appliedReq = types.SearchRequest{}
		o.searchFailed = true
	} else {
		o.results = results
		o.appliedReq = req
		o.searchFailed = false
	}
	o.reconcileLocked()
	return true
}

// RefreshAlert starts an independent shortage lookup for the region. It races
// nothing: search and alert resolve in any order, and only the most recent
// alert invocation's result is kept.
func (o *Orchestrator) RefreshAlert(region string) uint64 {
	o.mu.Lock()
	o.alertSeq++
	seq := o.alertSeq
	o.alertState = types.AlertLoading
	o.touchLocked()
	o.mu.Unlock()

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), o.cfg.CollaboratorTimeout)
		defer cancel()

		alert, err := o.deps.Responder.ShortageSummary(ctx, region)
		o.commitAlert(seq, alert, err)
	}()
	return seq
}

// commitAlert is fail-open: a failed fetch means "no alert known", never
// "region is safe", and never blocks the search pipeline.
func (o *Orchestrator) commitAlert(seq uint64, alert types.ShortageAlert, err error) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.closed || seq != o.alertSeq {
		return false
	}

	if err != nil {
		log.Printf("Session %s: shortage alert unavailable: %v", o.id, err)
		o.alert = nil
		o.alertState = types.AlertFailed
		return true
	}
	o.alert = &alert
	o.alertState = types.AlertReady
	return true
}

// SubmitChat appends the user's message and asks the responder for a reply.
// Empty or whitespace-only input is a no-op. At most one assistant call may
// be outstanding; a submission while one is pending is rejected with
// ErrChatBusy so two in-flight replies can never race to append.
func (o *Orchestrator) SubmitChat(input string) error {
	text := strings.TrimSpace(input)
	if text == "" {
		return ErrEmptyMessage
	}

	o.mu.Lock()
	if o.chatPending {
		o.mu.Unlock()
		return ErrChatBusy
	}
	o.chatPending = true
	// Prior context only; the responder receives the new input separately.
	history := append([]types.ChatMessage(nil), o.chatLog...)
	o.chatLog = append(o.chatLog, types.ChatMessage{
		Speaker:   types.SpeakerUser,
		Text:      text,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
	o.touchLocked()
	o.mu.Unlock()

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), o.cfg.CollaboratorTimeout)
		defer cancel()

		reply, err := o.deps.Responder.ChatReply(ctx, text, history)
		o.commitChat(reply, err)
	}()
	return nil
}

func (o *Orchestrator) commitChat(reply string, err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.closed {
		return
	}

	if err != nil {
		log.Printf("Session %s: chat request failed: %v", o.id, err)
	}
	if err != nil || strings.TrimSpace(reply) == "" {
		reply = chatFallback
	}
	o.chatLog = append(o.chatLog, types.ChatMessage{
		Speaker:   types.SpeakerAssistant,
		Text:      reply,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
	o.chatPending = false
}

func (o *Orchestrator) ToggleChat() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.chatVisible = !o.chatVisible
	o.touchLocked()
	return o.chatVisible
}

func (o *Orchestrator) SelectRole(role string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.role = role
	o.touchLocked()
}

// reconcileLocked pushes the latest committed state into the map engine. The
// blood type comes from the applied request, not the live filter, so marker
// popups can never show counts for a type the result set wasn't built for.
func (o *Orchestrator) reconcileLocked() {
	if o.engine.State() != mapsync.Ready {
		return
	}
	bt := o.appliedReq.BloodType
	if bt == "" {
		bt = o.selectedType
	}
	if err := o.engine.Reconcile(o.userLocation, o.results, bt); err != nil {
		log.Printf("Session %s: map reconcile failed: %v", o.id, err)
	}
}

func (o *Orchestrator) touchLocked() {
	o.lastActive = time.Now()
}

// IdleSince reports the time of the last user-issued command.
func (o *Orchestrator) IdleSince() time.Time {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.lastActive
}

// Close tears the session down: the map is released and no collaborator
// result will be committed afterwards. The engine is only ever touched under
// the mutex, so the teardown happens inside the locked section too; a
// concurrent Snapshot sees the map either fully live or fully gone.
func (o *Orchestrator) Close() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.closed = true
	o.engine.Teardown()
}

// Snapshot is the read-only state the presentational layer renders from.
type Snapshot struct {
	ID                string               `json:"id"`
	SelectedBloodType types.BloodType      `json:"selectedBloodType"`
	SortKey           types.SortKey        `json:"sortKey"`
	UserLocation      *types.Coordinate    `json:"userLocation,omitempty"`
	Results           []types.Center       `json:"results"`
	ResultBloodType   types.BloodType      `json:"resultBloodType,omitempty"`
	Searching         bool                 `json:"searching"`
	SearchFailed      bool                 `json:"searchFailed"`
	Alert             *types.ShortageAlert `json:"alert,omitempty"`
	AlertState        types.AlertState     `json:"alertState"`
	ChatLog           []types.ChatMessage  `json:"chatLog"`
	ChatPending       bool                 `json:"chatPending"`
	ChatVisible       bool                 `json:"chatVisible"`
	Role              string               `json:"role,omitempty"`
	MapReady          bool                 `json:"mapReady"`
}

func (o *Orchestrator) Snapshot() Snapshot {
	o.mu.Lock()
	defer o.mu.Unlock()

	snap := Snapshot{
		ID:                o.id,
		SelectedBloodType: o.selectedType,
		SortKey:           o.sortKey,
		Results:           append([]types.Center(nil), o.results...),
		ResultBloodType:   o.appliedReq.BloodType,
		Searching:         o.searching,
		SearchFailed:      o.searchFailed,
		AlertState:        o.alertState,
		ChatLog:           append([]types.ChatMessage(nil), o.chatLog...),
		ChatPending:       o.chatPending,
		ChatVisible:       o.chatVisible,
		Role:              o.role,
		MapReady:          o.engine.State() == mapsync.Ready,
	}
	if o.userLocation != nil {
		loc := *o.userLocation
		snap.UserLocation = &loc
	}
	if o.alert != nil {
		alert := *o.alert
		snap.Alert = &alert
	}
	return snap
}
