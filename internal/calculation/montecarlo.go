package calculation

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"runtime"
	"slices"

	"github.com/shopspring/decimal"
	"github.com/wealthpro/wealth-analytics/internal/domain"
	dec "github.com/wealthpro/wealth-analytics/pkg/decimal"
	"golang.org/x/sync/errgroup"
)

// DefaultSimulations is the number of paths in every Monte Carlo run.
const DefaultSimulations = 50

var two = decimal.NewFromInt(2)

// NormalSource draws standard normal variates. *rand.Rand satisfies it.
type NormalSource interface {
	NormFloat64() float64
}

// NewRandSource returns a math/rand generator seeded with seed.
func NewRandSource(seed int64) NormalSource {
	return rand.New(rand.NewSource(seed))
}

// MonteCarloSimulator runs independent contribution paths with normally
// distributed monthly returns.
type MonteCarloSimulator struct {
	NumSimulations int
	Workers        int
	Seed           int64

	// NewSource builds the generator for one simulation. Each simulation gets
	// its own generator, so sources need not be safe for concurrent use.
	NewSource func(seed int64) NormalSource
	Logger    Logger
}

// NewMonteCarloSimulator creates a simulator with the default simulation
// count. A zero seed is replaced by a fresh one at run time.
func NewMonteCarloSimulator(seed int64) *MonteCarloSimulator {
	return &MonteCarloSimulator{
		NumSimulations: DefaultSimulations,
		Workers:        runtime.GOMAXPROCS(0),
		Seed:           seed,
		NewSource:      NewRandSource,
		Logger:         NopLogger{},
	}
}

// RunMonteCarlo runs DefaultSimulations paths seeded from in.Seed.
func RunMonteCarlo(ctx context.Context, in domain.MonteCarloInput) (*domain.MonteCarloResult, error) {
	return NewMonteCarloSimulator(in.Seed).Run(ctx, in)
}

// Run executes the simulation. Identical inputs and seed give identical
// results regardless of Workers.
func (mcs *MonteCarloSimulator) Run(ctx context.Context, in domain.MonteCarloInput) (*domain.MonteCarloResult, error) {
	if err := validateMonteCarlo(in); err != nil {
		return nil, err
	}

	n := mcs.NumSimulations
	if n <= 0 {
		n = DefaultSimulations
	}
	workers := mcs.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	newSource := mcs.NewSource
	if newSource == nil {
		newSource = NewRandSource
	}
	logger := mcs.Logger
	if logger == nil {
		logger = NopLogger{}
	}
	seed := mcs.Seed
	if seed == 0 {
		seed = seedFunc()
	}

	months := dec.Months(in.Years)
	mean := dec.MonthlyRate(in.AverageReturn)
	stdDev := monthlyStdDev(in.Volatility)
	seeds := simulationSeeds(seed, n)

	logger.Debugf("monte carlo: %d simulations x %d months, seed=%d, workers=%d", n, months, seed, workers)

	paths := make([]domain.SimulationPath, n)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range n {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			paths[i] = simulatePath(i, newSource(seeds[i]), in.MonthlyContribution, mean, stdDev, months)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("monte carlo aborted: %w", err)
	}

	terminals := make([]decimal.Decimal, n)
	for i, p := range paths {
		terminals[i] = p.Terminal
	}
	slices.SortFunc(terminals, func(a, b decimal.Decimal) int { return a.Cmp(b) })

	for _, t := range []decimal.Decimal{terminals[0], terminals[n-1]} {
		if err := requireRepresentable("terminal value", t); err != nil {
			return nil, err
		}
	}

	median := medianOfSorted(terminals)
	return &domain.MonteCarloResult{
		Paths: paths,
		Summary: domain.TerminalSummary{
			Min:    terminals[0],
			Median: median,
			Max:    terminals[n-1],
		},
		Percentiles: domain.PercentileRanges{
			P10: percentileOfSorted(terminals, 10),
			P25: percentileOfSorted(terminals, 25),
			P50: median,
			P75: percentileOfSorted(terminals, 75),
			P90: percentileOfSorted(terminals, 90),
		},
		ApproximateAveragePath: ApproximateAveragePath(in.MonthlyContribution, mean, months),
		NumSimulations:         n,
		Months:                 months,
		Seed:                   seed,
	}, nil
}

// simulatePath draws one return per month; the contribution lands at the
// start of the month and the whole balance earns that month's return.
func simulatePath(index int, src NormalSource, contribution, mean, stdDev decimal.Decimal, months int) domain.SimulationPath {
	values := make([]decimal.Decimal, months+1)
	values[0] = decimal.Zero
	value := decimal.Zero
	for m := 1; m <= months; m++ {
		r := mean.Add(decimal.NewFromFloat(src.NormFloat64()).Mul(stdDev))
		value = value.Add(contribution).Mul(one.Add(r)).Round(valuePlaces)
		values[m] = value
	}
	return domain.SimulationPath{Index: index, Values: values, Terminal: value}
}

// ApproximateAveragePath returns contribution*m*(1+mean)^m for m = 0..months.
// It is an indicative overlay, not the mean of simulated paths: it ignores
// that later contributions compound for fewer months.
func ApproximateAveragePath(contribution, monthlyMean decimal.Decimal, months int) []decimal.Decimal {
	path := make([]decimal.Decimal, months+1)
	growth := one.Add(monthlyMean)
	factor := one
	for m := 0; m <= months; m++ {
		if m > 0 {
			factor = factor.Mul(growth).Round(deflatorPlaces)
		}
		path[m] = contribution.Mul(decimal.NewFromInt(int64(m))).Mul(factor).Round(valuePlaces)
	}
	return path
}

// monthlyStdDev converts annual volatility in percent to a monthly standard
// deviation fraction: vol / (100 * sqrt(12)).
func monthlyStdDev(volatilityPct decimal.Decimal) decimal.Decimal {
	if volatilityPct.IsZero() {
		return decimal.Zero
	}
	return decimal.NewFromFloat(volatilityPct.InexactFloat64() / (100 * math.Sqrt(12)))
}

// simulationSeeds derives one seed per simulation from the run seed before
// any goroutine starts.
func simulationSeeds(seed int64, n int) []int64 {
	master := rand.New(rand.NewSource(seed))
	seeds := make([]int64, n)
	for i := range seeds {
		seeds[i] = master.Int63()
	}
	return seeds
}

func medianOfSorted(sorted []decimal.Decimal) decimal.Decimal {
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return sorted[n/2-1].Add(sorted[n/2]).Div(two)
}

// percentileOfSorted interpolates linearly between closest ranks.
func percentileOfSorted(sorted []decimal.Decimal, pct int) decimal.Decimal {
	pos := pct * (len(sorted) - 1)
	lo := pos / 100
	if lo >= len(sorted)-1 {
		return sorted[len(sorted)-1]
	}
	frac := decimal.NewFromInt(int64(pos % 100)).Div(decimal.NewFromInt(100))
	return sorted[lo].Add(sorted[lo+1].Sub(sorted[lo]).Mul(frac))
}

func validateMonteCarlo(in domain.MonteCarloInput) error {
	if err := requireYears("years", in.Years); err != nil {
		return err
	}
	if err := requireAmount("monthly_contribution", in.MonthlyContribution); err != nil {
		return err
	}
	if err := requireRate("average_return", in.AverageReturn); err != nil {
		return err
	}
	return requireVolatility("volatility", in.Volatility)
}
