package boarding

import (
	"fmt"
	"strings"
	"sync"

	"github.com/limaJavier/boarding/pkg/layout"
	"github.com/samber/lo"
)

// StrategyId names a boarding policy
type StrategyId string

const (
	BackToFront StrategyId = "back-to-front"
	OutsideIn   StrategyId = "outside-in"
	Hybrid      StrategyId = "hybrid"
	Random      StrategyId = "random"
)

// Strategy partitions the seats of a grid into boarding groups.
// Implementations are stateless between calls and safe to use concurrently on a read-only grid
type Strategy interface {
	Id() StrategyId
	Assign(grid *layout.SeatGrid) (*Assignment, error)
}

var strategies = map[StrategyId]func(Options) Strategy{
	BackToFront: func(options Options) Strategy { return NewBackToFrontStrategy(options.ZoneCount) },
	OutsideIn:   func(_ Options) Strategy { return NewOutsideInStrategy() },
	Hybrid:      func(options Options) Strategy { return NewHybridStrategy(options.SectionCount) },
	Random:      func(options Options) Strategy { return NewRandomStrategy(options.Seed) },
}

var strategyTitles = map[StrategyId]string{
	BackToFront: "Back-to-Front Boarding Strategy",
	OutsideIn:   "Outside-In (Window-Middle-Aisle) Boarding Strategy",
	Hybrid:      "Hybrid Boarding Strategy",
	Random:      "Random Boarding (Baseline)",
}

// ListStrategies returns every available strategy in presentation order
func ListStrategies() []StrategyId {
	return []StrategyId{BackToFront, OutsideIn, Hybrid, Random}
}

// Title returns the display title of the strategy
func (id StrategyId) Title() string {
	if title, ok := strategyTitles[id]; ok {
		return title
	}
	return string(id)
}

// ParseStrategyId accepts ids case-insensitively, with '_' or ' ' in place of '-'
func ParseStrategyId(name string) (StrategyId, error) {
	normalized := strings.NewReplacer("_", "-", " ", "-").Replace(strings.ToLower(strings.TrimSpace(name)))
	id := StrategyId(normalized)
	if _, ok := strategies[id]; !ok {
		return "", fmt.Errorf("%w: %q (valid strategies are %v)", ErrUnknownStrategy, name, ListStrategies())
	}
	return id, nil
}

// NewStrategy builds the strategy identified by id, configured with options
func NewStrategy(id StrategyId, options Options) (Strategy, error) {
	constructor, ok := strategies[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q (valid strategies are %v)", ErrUnknownStrategy, id, ListStrategies())
	}
	return constructor(options), nil
}

// Assign computes the assignment of a grid under the strategy identified by id
func Assign(id StrategyId, grid *layout.SeatGrid, options Options) (*Assignment, error) {
	strategy, err := NewStrategy(id, options)
	if err != nil {
		return nil, err
	}
	return strategy.Assign(grid)
}

// AssignAll runs every strategy concurrently over the same grid; results follow ListStrategies() order
func AssignAll(grid *layout.SeatGrid, options Options) ([]*Assignment, error) {
	ids := ListStrategies()
	assignments := make([]*Assignment, len(ids))
	errs := make([]error, len(ids))

	var wg sync.WaitGroup
	for i, id := range ids {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assignments[i], errs[i] = Assign(id, grid, options)
		}()
	}
	wg.Wait()

	if err, ok := lo.Find(errs, func(err error) bool { return err != nil }); ok {
		return nil, err
	}
	return assignments, nil
}
