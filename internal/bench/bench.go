// Package bench fills independent kit maps from a pool of workers and checks
// that every map ends up holding exactly the keys that were not deleted.
package bench

import (
	"context"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/panjf2000/ants/v2"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/llxisdsh/kit"
)

// releaseTimeout bounds how long Run waits for the pool to drain.
const releaseTimeout = 5 * time.Second

// checkInterval is how many operations a worker performs between
// cancellation checks.
const checkInterval = 1024

// Result describes the map filled by one worker.
type Result struct {
	Worker    int
	Inserted  int
	Deleted   int
	Remaining int
	Elapsed   time.Duration
	Stats     *kit.MapStats
}

// Report collects the results of every worker, ordered by worker.
type Report struct {
	Results []Result
	Elapsed time.Duration
}

// Growths sums the table growths over all workers.
func (r *Report) Growths() uint32 {
	var n uint32
	for _, res := range r.Results {
		if res.Stats != nil {
			n += res.Stats.TotalGrowths
		}
	}
	return n
}

// Log writes one line per worker and a summary.
func (r *Report) Log(logger *zap.Logger) {
	for _, res := range r.Results {
		logger.Info("worker done",
			zap.Int("worker", res.Worker),
			zap.Int("inserted", res.Inserted),
			zap.Int("deleted", res.Deleted),
			zap.Int("remaining", res.Remaining),
			zap.Int("capacity", res.Stats.Capacity),
			zap.Int("max-chain", res.Stats.MaxChain),
			zap.Uint32("growths", res.Stats.TotalGrowths),
			zap.Duration("elapsed", res.Elapsed),
		)
	}
	logger.Info("bench done",
		zap.Int("workers", len(r.Results)),
		zap.Uint32("growths", r.Growths()),
		zap.Duration("elapsed", r.Elapsed),
	)
}

// Run fills cfg.Workers maps concurrently. Each map is owned by exactly one
// worker. Worker failures and pool teardown failures are combined into the
// returned error.
func Run(ctx context.Context, cfg *Config, logger *zap.Logger) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	pool, err := ants.NewPool(cfg.Workers, ants.WithPanicHandler(func(v interface{}) {
		panic(v)
	}))
	if err != nil {
		return nil, errors.Wrap(err, "create worker pool")
	}

	start := time.Now()
	report := &Report{Results: make([]Result, cfg.Workers)}
	errs := make([]error, cfg.Workers)
	var wg sync.WaitGroup
	for i := range cfg.Workers {
		wg.Add(1)
		if err = pool.Submit(func() {
			defer wg.Done()
			report.Results[i], errs[i] = fill(ctx, cfg, i, logger.With(zap.Int("worker", i)))
		}); err != nil {
			wg.Done()
			errs[i] = errors.Wrapf(err, "submit worker %d", i)
		}
	}
	wg.Wait()
	report.Elapsed = time.Since(start)

	err = multierr.Combine(errs...)
	err = multierr.Append(err, pool.ReleaseTimeout(releaseTimeout))
	if err != nil {
		return nil, err
	}
	return report, nil
}

func newMap(cfg *Config, logger *zap.Logger) *kit.Map[kit.Str, int] {
	keys := kit.StrStrategy()
	if cfg.FoldCase {
		keys = kit.StrFoldStrategy()
	}
	return kit.NewMapWithStrategies(cfg.InitialCapacity, keys, kit.ValueStrategy[int](),
		kit.WithLoadFactor(cfg.LoadFactor),
		kit.WithLogger(logger),
	)
}

func key(worker, i int) kit.Str {
	return kit.StrFormat("Key %d-%d", worker, i)
}

func fill(ctx context.Context, cfg *Config, worker int, logger *zap.Logger) (Result, error) {
	res := Result{Worker: worker}
	start := time.Now()
	m := newMap(cfg, logger)
	defer m.Destroy()

	for i := 0; i < cfg.Keys; i++ {
		if i%checkInterval == 0 {
			if err := ctx.Err(); err != nil {
				return res, errors.Wrapf(err, "worker %d", worker)
			}
		}
		m.Insert(key(worker, i), i)
		res.Inserted++
	}

	deletes := int(float64(cfg.Keys) * cfg.DeleteRatio)
	for i := 0; i < deletes; i++ {
		if i%checkInterval == 0 {
			if err := ctx.Err(); err != nil {
				return res, errors.Wrapf(err, "worker %d", worker)
			}
		}
		if !m.Delete(key(worker, i), false) {
			return res, errors.Newf("worker %d: key %d vanished before deletion", worker, i)
		}
		res.Deleted++
	}

	if err := verify(m, worker, deletes, cfg.Keys); err != nil {
		return res, err
	}
	res.Remaining = m.Len()
	res.Stats = m.Stats()
	res.Elapsed = time.Since(start)
	return res, nil
}

// verify checks that m holds exactly the values [from, to), each under its
// own key, by walking a splice of the map.
func verify(m *kit.Map[kit.Str, int], worker, from, to int) error {
	if m.Len() != to-from {
		return errors.Newf("worker %d: %d entries, expected %d", worker, m.Len(), to-from)
	}
	s := m.Splice()
	defer s.Free()
	seen := make([]bool, to-from)
	for i := 0; i < s.Len(); i++ {
		v := s.Value(i)
		if v < from || v >= to {
			return errors.Newf("worker %d: unexpected value %d", worker, v)
		}
		if seen[v-from] {
			return errors.Newf("worker %d: value %d seen twice", worker, v)
		}
		seen[v-from] = true
		if !s.Key(i).Equals(key(worker, v).String()) {
			return errors.Newf("worker %d: value %d stored under %s", worker, v, s.Key(i))
		}
	}
	return nil
}
