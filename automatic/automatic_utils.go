// Autoplay orchestration: fan N random rounds across worker goroutines,
// stream per-round CSV lines to an optional log file, and summarize scores.
package automatic

import (
	"context"
	"errors"
	"expvar"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"
)

var (
	AutoplayCounter *expvar.Int
	IsPlaying       *expvar.Int
)

func init() {
	AutoplayCounter = expvar.NewInt("autoplayCounter")
	IsPlaying = expvar.NewInt("autoplayIsPlaying")
}

// Summary aggregates the outcomes of an autoplay batch.
type Summary struct {
	Scores  []int
	Elapsed time.Duration
}

func (s *Summary) scoresAsFloats() []float64 {
	return lo.Map(s.Scores, func(score int, _ int) float64 {
		return float64(score)
	})
}

func (s *Summary) Mean() float64 {
	return stat.Mean(s.scoresAsFloats(), nil)
}

func (s *Summary) Stdev() float64 {
	if len(s.Scores) < 2 {
		return 0
	}
	return stat.StdDev(s.scoresAsFloats(), nil)
}

// Wins counts perfect games (a single peg left).
func (s *Summary) Wins() int {
	return lo.Count(s.Scores, 1)
}

// Report renders the batch as a short text block with a score histogram.
func (s *Summary) Report() string {
	if len(s.Scores) == 0 {
		return "no games played\n"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "played %d games in %v\n", len(s.Scores), s.Elapsed.Round(time.Millisecond))
	fmt.Fprintf(&sb, "score mean %.2f, stdev %.2f, min %d, max %d, perfect games %d\n",
		s.Mean(), s.Stdev(), lo.Min(s.Scores), lo.Max(s.Scores), s.Wins())
	hist := histogram.Hist(lo.Max(s.Scores)-lo.Min(s.Scores)+1, s.scoresAsFloats())
	if err := histogram.Fprint(&sb, hist, histogram.Linear(40)); err != nil {
		log.Error().Err(err).Msg("rendering histogram")
	}
	return sb.String()
}

// StartAutoplayGames plays numGames random rounds on boards of the given
// rows across the given number of worker threads, blocking until the batch
// finishes or ctx is cancelled (cancellation stops feeding new rounds; the
// summary covers whatever completed). When outputFilename is non-empty, one
// CSV line per round is written there.
func StartAutoplayGames(ctx context.Context, rows, numGames, threads int,
	outputFilename string) (*Summary, error) {

	if numGames < 1 {
		return nil, errors.New("need at least one game")
	}
	if threads < 1 {
		threads = 1
	}
	if IsPlaying.Value() > 0 {
		return nil, errors.New("games are already being played, please wait till complete")
	}
	IsPlaying.Add(1)
	defer IsPlaying.Add(-1)

	log.Debug().Int("games", numGames).Int("threads", threads).Int("rows", rows).
		Msg("starting autoplay")
	started := time.Now()
	AutoplayCounter.Set(0)

	logChan := make(chan string, 100)
	var writer errgroup.Group
	if outputFilename != "" {
		logfile, err := os.Create(outputFilename)
		if err != nil {
			return nil, err
		}
		writer.Go(func() error {
			logfile.WriteString("gameID,hole,moves,score\n")
			for msg := range logChan {
				logfile.WriteString(msg)
			}
			return logfile.Close()
		})
	} else {
		writer.Go(func() error {
			for range logChan {
			}
			return nil
		})
	}

	jobs := make(chan struct{}, 100)
	results := make(chan Result, numGames)
	workers, wctx := errgroup.WithContext(ctx)
	for i := 0; i < threads; i++ {
		workers.Go(func() error {
			r := NewGameRunner(rows, logChan)
			for range jobs {
				res, err := r.PlayRound()
				if err != nil {
					return err
				}
				AutoplayCounter.Add(1)
				results <- res
			}
			return nil
		})
	}

	go func() {
		defer close(jobs)
		for i := 0; i < numGames; i++ {
			select {
			case jobs <- struct{}{}:
			case <-wctx.Done():
				log.Info().Msg("autoplay cancelled, not queueing further games")
				return
			}
		}
	}()

	err := workers.Wait()
	close(logChan)
	close(results)
	if werr := writer.Wait(); werr != nil && err == nil {
		err = werr
	}
	if err != nil {
		return nil, err
	}

	summary := &Summary{Elapsed: time.Since(started)}
	for res := range results {
		summary.Scores = append(summary.Scores, res.Score)
	}
	log.Debug().Int("finished", len(summary.Scores)).Msg("autoplay done")
	return summary, nil
}
