package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/invopop/jsonschema"

	"dining-agent/models"
)

// ToolKind is the closed set of tools the model may call
type ToolKind int

const (
	ToolUnknown ToolKind = iota
	ToolSearchRestaurants
	ToolMakeReservation
)

func (k ToolKind) String() string {
	switch k {
	case ToolSearchRestaurants:
		return "search_restaurants"
	case ToolMakeReservation:
		return "make_reservation"
	default:
		return "unknown"
	}
}

// ParseToolKind maps a tool name sent by the model to its kind
func ParseToolKind(name string) ToolKind {
	switch name {
	case ToolSearchRestaurants.String():
		return ToolSearchRestaurants
	case ToolMakeReservation.String():
		return ToolMakeReservation
	default:
		return ToolUnknown
	}
}

// SearchArgs are the arguments of search_restaurants
type SearchArgs struct {
	Cuisine   string  `json:"cuisine,omitempty" jsonschema:"description=Cuisine type such as Italian or Thai"`
	Location  string  `json:"location,omitempty" jsonschema:"description=City or area"`
	MinRating float64 `json:"min_rating,omitempty" jsonschema:"description=Minimum rating from 0 to 5" validate:"omitempty,gte=0,lte=5"`
	MaxPrice  string  `json:"max_price,omitempty" jsonschema:"enum=Cheap,enum=Moderate,enum=Expensive,enum=Luxury"`
	PartySize float64 `json:"party_size,omitempty" jsonschema:"description=Number of guests" validate:"omitempty,gt=0,lte=10000"`
	Query     string  `json:"query,omitempty" jsonschema:"description=Free text matched against names and vibes"`
}

// ReservationArgs are the arguments of make_reservation
type ReservationArgs struct {
	RestaurantID float64 `json:"restaurant_id" jsonschema:"description=Restaurant id from search results" validate:"required,gt=0,lte=2147483647"`
	PartySize    float64 `json:"party_size" jsonschema:"description=Number of guests" validate:"required,gt=0,lte=10000"`
	Time         string  `json:"time" jsonschema:"description=Requested time such as 8pm tonight" validate:"required"`
}

// ToolSpec describes one tool offered to the model
type ToolSpec struct {
	Kind        ToolKind
	Name        string
	Description string
	Parameters  map[string]any
}

// ToolError is the payload returned to the model when a tool cannot complete
type ToolError struct {
	Error string `json:"error"`
}

// ToolRegistry declares the tools and executes the calls the model makes
type ToolRegistry struct {
	specs    []ToolSpec
	validate *validator.Validate
	logger   *slog.Logger
}

// NewToolRegistry builds the registry with schemas reflected from the argument types
func NewToolRegistry(logger *slog.Logger) *ToolRegistry {
	return &ToolRegistry{
		specs: []ToolSpec{
			{
				Kind:        ToolSearchRestaurants,
				Name:        ToolSearchRestaurants.String(),
				Description: "Find restaurants based on cuisine, location, rating, price, etc.",
				Parameters:  reflectParameters(&SearchArgs{}),
			},
			{
				Kind:        ToolMakeReservation,
				Name:        ToolMakeReservation.String(),
				Description: "Book a table.",
				Parameters:  reflectParameters(&ReservationArgs{}),
			},
		},
		validate: validator.New(),
		logger:   logger.With(slog.String("component", "tools")),
	}
}

// Specs returns the declared tools
func (r *ToolRegistry) Specs() []ToolSpec {
	return r.specs
}

// reflectParameters turns an argument struct into a JSON schema object
func reflectParameters(v any) map[string]any {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	raw, err := json.Marshal(reflector.Reflect(v))
	if err != nil {
		panic(fmt.Sprintf("reflect tool schema: %v", err))
	}
	var schema map[string]any
	if err := json.Unmarshal(raw, &schema); err != nil {
		panic(fmt.Sprintf("decode tool schema: %v", err))
	}
	delete(schema, "$schema")
	delete(schema, "$id")
	return schema
}

// Dispatch executes a tool call against the session state and returns the
// payload handed back to the model. Tool failures are payloads, not errors.
func (r *ToolRegistry) Dispatch(state *AppState, name string, arguments map[string]any) any {
	kind := ParseToolKind(name)
	logger := r.logger.With(slog.String("tool", name))
	logger.Info("Executing function", slog.Any("arguments", arguments))

	var (
		result any
		err    error
	)
	switch kind {
	case ToolSearchRestaurants:
		result, err = r.executeSearch(state, arguments)
	case ToolMakeReservation:
		result, err = r.executeReservation(state, arguments)
	default:
		err = fmt.Errorf("%w: %s", models.ErrUnknownTool, name)
	}

	toolInvocations.WithLabelValues(kind.String(), outcome(err)).Inc()
	if err != nil {
		logger.Warn("Function failed", slog.Any("error", err))
		return toolErrorPayload(err)
	}
	return result
}

func (r *ToolRegistry) executeSearch(state *AppState, arguments map[string]any) (any, error) {
	var args SearchArgs
	if err := r.decode(arguments, &args); err != nil {
		return nil, err
	}
	return SearchVenues(state.Catalog(), models.SearchCriteria{
		Cuisine:   args.Cuisine,
		Location:  args.Location,
		MinRating: args.MinRating,
		MaxPrice:  args.MaxPrice,
		PartySize: partySizeFromNumber(args.PartySize),
		Query:     args.Query,
	}), nil
}

func (r *ToolRegistry) executeReservation(state *AppState, arguments map[string]any) (any, error) {
	var args ReservationArgs
	if err := r.decode(arguments, &args); err != nil {
		return nil, err
	}
	if args.RestaurantID != math.Trunc(args.RestaurantID) {
		return nil, fmt.Errorf("%w: restaurant_id must be a whole number", models.ErrInvalidArguments)
	}
	if args.PartySize != math.Trunc(args.PartySize) {
		return nil, fmt.Errorf("%w: party_size must be a whole number", models.ErrInvalidArguments)
	}
	return MakeReservation(state, models.ReservationRequest{
		RestaurantID: int(args.RestaurantID),
		PartySize:    int(args.PartySize),
		Time:         args.Time,
	})
}

// decode converts loosely typed arguments into a validated argument struct
func (r *ToolRegistry) decode(arguments map[string]any, dst any) error {
	raw, err := json.Marshal(arguments)
	if err != nil {
		return fmt.Errorf("%w: %v", models.ErrInvalidArguments, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%w: %v", models.ErrInvalidArguments, err)
	}
	if err := r.validate.Struct(dst); err != nil {
		return fmt.Errorf("%w: %v", models.ErrInvalidArguments, err)
	}
	return nil
}

// toolErrorPayload maps tool failures to the messages the model sees
func toolErrorPayload(err error) ToolError {
	switch {
	case errors.Is(err, models.ErrVenueNotFound):
		return ToolError{Error: "Restaurant ID not found."}
	case errors.Is(err, models.ErrCapacityExceeded):
		return ToolError{Error: "Capacity exceeded."}
	case errors.Is(err, models.ErrUnknownTool):
		return ToolError{Error: "Unknown tool"}
	case errors.Is(err, models.ErrInvalidArguments):
		return ToolError{Error: "Invalid arguments: " + invalidDetail(err)}
	default:
		return ToolError{Error: err.Error()}
	}
}

func invalidDetail(err error) string {
	return strings.TrimPrefix(err.Error(), models.ErrInvalidArguments.Error()+": ")
}
