package engine

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/piwi3910/garageplan/internal/model"
)

// ErrInvalidGeometry is returned by Optimize when the garage has no usable
// floor. It is a caller error; the optimizer does not try to recover.
var ErrInvalidGeometry = errors.New("invalid garage geometry")

// Optimizer runs the greedy layout pipeline: constraints, demands,
// placement, overhead platforms, score.
type Optimizer struct {
	Settings model.LayoutSettings

	constraints *ConstraintGenerator
	planner     *DemandPlanner
	strategies  map[model.ZoneType]PlacementStrategy
	logger      *log.Logger
}

type Option func(*Optimizer)

// WithLogger routes placement decisions to logger.
func WithLogger(logger *log.Logger) Option {
	return func(o *Optimizer) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func New(settings model.LayoutSettings, opts ...Option) *Optimizer {
	o := &Optimizer{
		Settings:    settings,
		constraints: NewConstraintGenerator(settings),
		planner:     NewDemandPlanner(settings),
		strategies:  defaultStrategies(settings),
		logger:      log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// RegisterStrategy installs or replaces the strategy for a zone type.
// It must not be called while Optimize is running.
func (o *Optimizer) RegisterStrategy(t model.ZoneType, s PlacementStrategy) {
	o.strategies[t] = s
}

// Constraints exposes the generator used by this optimizer.
func (o *Optimizer) Constraints() *ConstraintGenerator {
	return o.constraints
}

// Planner exposes the demand planner used by this optimizer.
func (o *Optimizer) Planner() *DemandPlanner {
	return o.planner
}

// Optimize builds a layout for space and profile. Placement problems are
// reported as warnings in the result; the only error is invalid geometry.
func (o *Optimizer) Optimize(space model.GarageSpace, profile model.UsageProfile) (model.LayoutRecommendation, error) {
	if err := ValidateSpace(space); err != nil {
		return model.LayoutRecommendation{}, err
	}

	layout := NewLayout(space, o.constraints.Generate(space))
	demands := o.planner.Plan(profile)
	o.logger.Debug("planned layout",
		"constraints", len(layout.Constraints),
		"demands", len(demands),
		"width", space.Width,
		"depth", space.Depth)

	o.place(layout, demands)
	o.addOverhead(layout, profile)

	rec := layout.Recommendation()
	rec.Score = Score(rec, profile)
	o.logger.Info("layout complete", "zones", len(rec.Zones), "warnings", len(rec.Warnings), "score", rec.Score)
	return rec, nil
}

// ValidateSpace rejects a garage whose width or depth is missing, zero,
// negative or not a finite number, and a negative ceiling height.
func ValidateSpace(space model.GarageSpace) error {
	if !positiveFinite(space.Width) {
		return fmt.Errorf("%w: width must be a positive number of inches, got %v", ErrInvalidGeometry, space.Width)
	}
	if !positiveFinite(space.Depth) {
		return fmt.Errorf("%w: depth must be a positive number of inches, got %v", ErrInvalidGeometry, space.Depth)
	}
	if math.IsNaN(space.CeilingHeight) || space.CeilingHeight < 0 {
		return fmt.Errorf("%w: ceiling height must not be negative, got %v", ErrInvalidGeometry, space.CeilingHeight)
	}
	return nil
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

// SpaceIssues lists non-fatal problems with the garage description, such as
// features that sit past the end of their wall or carry an unknown type.
// The optimizer runs regardless; these are hints for the user.
func SpaceIssues(space model.GarageSpace) []string {
	var issues []string
	for _, wall := range model.Walls {
		length := space.Width
		if wall == model.WallEast || wall == model.WallWest {
			length = space.Depth
		}
		for _, f := range space.Features(wall) {
			if f.Position-f.Width/2 < 0 || f.Position+f.Width/2 > length {
				issues = append(issues, fmt.Sprintf("%s on %s wall extends past the wall (%s wide at %s)",
					f.Name, wall, model.FeetInches(f.Width), model.FeetInches(f.Position)))
			}
			if !f.Type.IsKnown() && !f.Type.IsGarageDoor() {
				issues = append(issues, fmt.Sprintf("%s on %s wall has unknown type %q, using the default clearance",
					f.Name, wall, f.Type))
			}
		}
	}
	if n := len(space.Floor); n > 0 {
		issues = append(issues, fmt.Sprintf("%d floor feature(s) are not considered during placement", n))
	}
	return issues
}
