package appstate

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

type View string

const (
	ViewHome      View = "home"
	ViewPlantInfo View = "plant-info"
	ViewCalendar  View = "calendar"
	ViewFeatures  View = "features"
	ViewSettings  View = "settings"
	ViewAddPlant  View = "add-plant"
	ViewResearch  View = "research"
	ViewSprinkler View = "sprinkler"
	ViewGallery   View = "gallery"
	ViewTestPanel View = "test-panel"
)

var views = map[View]bool{
	ViewHome: true, ViewPlantInfo: true, ViewCalendar: true, ViewFeatures: true, ViewSettings: true,
	ViewAddPlant: true, ViewResearch: true, ViewSprinkler: true, ViewGallery: true, ViewTestPanel: true,
}

func KnownView(v View) bool { return views[v] }

var (
	ErrUnknownAction = errors.New("unknown action")
	ErrInvalidAction = errors.New("invalid action")
)

// State is one immutable snapshot of the client's view state.
type State struct {
	View            View   `json:"view"`
	SelectedPlantID string `json:"selected_plant_id,omitempty"`
	SearchQuery     string `json:"search_query"`
	FarmingMonth    string `json:"farming_month,omitempty"`
	EditMode        bool   `json:"edit_mode"`
	TestMode        bool   `json:"test_mode"`
	Theme           string `json:"theme"`
}

func Initial() State { return State{View: ViewHome, Theme: "light"} }

type ActionType string

const (
	Navigate       ActionType = "navigate"
	SelectPlant    ActionType = "select_plant"
	PlanFarming    ActionType = "plan_farming"
	ToggleEditMode ActionType = "toggle_edit_mode"
	ToggleTestMode ActionType = "toggle_test_mode"
	SetTheme       ActionType = "set_theme"
	SetSearch      ActionType = "set_search"
	ClearSelection ActionType = "clear_selection"
)

// Action carries the payload fields used by its Type; the rest are ignored.
type Action struct {
	Type    ActionType `json:"type"`
	View    View       `json:"view,omitempty"`
	PlantID string     `json:"plant_id,omitempty"`
	Month   string     `json:"month,omitempty"`
	Theme   string     `json:"theme,omitempty"`
	Query   string     `json:"query,omitempty"`
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidAction, fmt.Sprintf(format, args...))
}

// Reduce returns the state that results from applying a to s. s is never
// modified; on error the returned state is s.
func Reduce(s State, a Action) (State, error) {
	next := s
	switch a.Type {
	case Navigate:
		if !KnownView(a.View) {
			return s, invalid("view %q", a.View)
		}
		if a.View == ViewTestPanel && !s.TestMode {
			return s, invalid("test panel requires test mode")
		}
		if (a.View == ViewPlantInfo || a.View == ViewCalendar) && s.SelectedPlantID == "" {
			return s, invalid("%s requires a selected plant", a.View)
		}
		next.View = a.View
	case SelectPlant:
		if s.EditMode {
			return s, nil
		}
		if strings.TrimSpace(a.PlantID) == "" {
			return s, invalid("plant_id is required")
		}
		next.SelectedPlantID = a.PlantID
		next.FarmingMonth = ""
		next.View = ViewPlantInfo
	case PlanFarming:
		if s.SelectedPlantID == "" {
			return s, invalid("no plant selected")
		}
		if strings.TrimSpace(a.Month) == "" {
			return s, invalid("month is required")
		}
		next.FarmingMonth = a.Month
		next.View = ViewCalendar
	case ToggleEditMode:
		next.EditMode = !s.EditMode
	case ToggleTestMode:
		next.TestMode = !s.TestMode
		if !next.TestMode && s.View == ViewTestPanel {
			next.View = ViewHome
		}
	case SetTheme:
		if a.Theme != "light" && a.Theme != "dark" {
			return s, invalid("theme %q", a.Theme)
		}
		next.Theme = a.Theme
	case SetSearch:
		next.SearchQuery = a.Query
	case ClearSelection:
		next.SelectedPlantID = ""
		next.FarmingMonth = ""
		if s.View == ViewPlantInfo || s.View == ViewCalendar {
			next.View = ViewHome
		}
	default:
		return s, fmt.Errorf("%w: %q", ErrUnknownAction, a.Type)
	}
	return next, nil
}

// Store serializes dispatches against the current snapshot.
type Store struct {
	mu       sync.Mutex
	state    State
	onChange func(prev, next State)
}

// NewStore starts from initial. onChange, if set, runs after every dispatch
// that changed the state.
func NewStore(initial State, onChange func(prev, next State)) *Store {
	return &Store{state: initial, onChange: onChange}
}

func (st *Store) State() State {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.state
}

func (st *Store) Dispatch(a Action) (State, error) {
	st.mu.Lock()
	prev := st.state
	next, err := Reduce(prev, a)
	if err != nil {
		st.mu.Unlock()
		return prev, err
	}
	st.state = next
	st.mu.Unlock()

	if st.onChange != nil && next != prev {
		st.onChange(prev, next)
	}
	return next, nil
}
