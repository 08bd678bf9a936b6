package main

import (
	"fmt"
	"math"
	"math/rand"
	"os"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// crossEntropy implements the noisy cross entropy method to optimize
// weights over the board features, with self-play lines cleared as the
// fitness signal. The paper "Building Controllers for Tetris" was the
// primary source, with these modifications:
// 1) L1 regularization puts downward pressure on weights, suppressing
//    features that do not contribute to improvement.
// 2) Variance is updated by adding the noise factor multiplied by the
//    absolute value of the mean, so the noise matches the scale of the
//    weight.
// 3) Noise decreases logarithmically with the number of iterations.
//
// The trained weights feed the strategy scoring layer only; the fixed
// planning formula in evaluate is never touched.
type crossEntropy struct {
	means, variances, bestStratSingle, bestStratMean     strategy
	population, iterations, cutoff, numOfGames           int
	rho, noise, bestResultSingle, bestResultMean, lambda float64
	base                                                 searchConfig
}

func newCrossEntropy(s strategy, numOfGames int, base searchConfig) *crossEntropy {
	return &crossEntropy{
		means:      s,
		variances:  initVariances(len(s), 10),
		population: 100,
		noise:      0.03,
		rho:        0.1,                    // Top percent of population to consider
		lambda:     0.04 / float64(len(s)), // L1 regularization constant
		numOfGames: numOfGames,
		base:       base,
	}
}

func (ce *crossEntropy) run() {
	ce.cutoff = int(ce.rho * float64(ce.population))
	for {
		ce.iterations++
		strats := make([]strategy, ce.population)
		for i := 0; i < ce.population; i++ {
			strats[i] = ce.getStrat()
		}
		results := ce.testStrategies(strats)
		sort.Sort(sort.Reverse(results))
		ce.updateMeansAndVariances(results)
		ce.logData(results)
	}
}

// testStrategies plays out a batch of strategies in parallel and returns
// their strategy-result pairs.
func (ce *crossEntropy) testStrategies(strats []strategy) ceResultList {
	jobs := make(chan int, len(strats))
	resultChan := make(chan ceResult, len(strats))
	results := make(ceResultList, len(strats))
	for i := 0; i < len(strats); i++ {
		jobs <- i
	}
	close(jobs)
	for i := 0; i < runtime.NumCPU(); i++ {
		go ceWorker(jobs, resultChan, strats, ce.numOfGames, ce.lambda, ce.base)
	}
	for i := 0; i < len(strats); i++ {
		results[i] = <-resultChan
	}
	return results
}

// ceWorker shares a pool of jobs with the other workers, playing each
// strategy's games to completion.
func ceWorker(jobs <-chan int, results chan<- ceResult, strats []strategy, numOfGames int, lambda float64, base searchConfig) {
	for i := range jobs {
		var total float64
		for j := 0; j < numOfGames; j++ {
			cfg := searchConfig{corrected: base.corrected, scorer: strats[i].score}
			_, lines := newAgent(int64(j), cfg, 0).run()
			total += float64(lines)
		}
		average := total / float64(numOfGames)
		results <- ceResult{
			strategy: strats[i],
			score:    average - l1Regularization(average, lambda, strats[i]),
			lines:    average,
		}
	}
}

// l1Regularization penalizes weight magnitude that doesn't buy better
// scores, helping identify values that aren't useful.
func l1Regularization(lines, lambda float64, strat strategy) float64 {
	var penalty float64
	for i := 0; i < len(strat); i++ {
		penalty += math.Abs(strat[i])
	}
	return lambda * lines * penalty
}

func (ce *crossEntropy) getStrat() strategy {
	noise := ce.noise * 1 / (math.Log10(1 + float64(ce.iterations)))
	candidate := make(strategy, len(ce.means))
	for i := 0; i < len(ce.means); i++ {
		variance := math.Abs(ce.means[i])*noise + ce.variances[i]
		candidate[i] = rand.NormFloat64()*math.Sqrt(variance) + ce.means[i]
	}
	return candidate
}

func (ce *crossEntropy) updateMeansAndVariances(results ceResultList) {
	weights := make([][]float64, len(ce.means))
	var meanLines float64
	for i := 0; i < len(ce.means); i++ {
		weights[i] = make([]float64, ce.cutoff)
		for j := 0; j < ce.cutoff; j++ {
			weights[i][j] = results[j].strategy[i]
		}
	}
	for j := 0; j < ce.cutoff; j++ {
		meanLines += results[j].lines
	}
	meanLines /= float64(ce.cutoff)
	for i := 0; i < len(ce.means); i++ {
		ce.means[i] = getMean(weights[i])
		ce.variances[i] = getVariance(weights[i], ce.means[i])
	}
	if meanLines > ce.bestResultMean {
		ce.bestResultMean = meanLines
		ce.bestStratMean = ce.means
	}
}

func (ce *crossEntropy) logData(results ceResultList) {
	var sb strings.Builder
	for i := 0; i < len(results); i++ {
		if results[i].lines > ce.bestResultSingle {
			ce.bestResultSingle = results[i].lines
			ce.bestStratSingle = results[i].strategy
			stars := strings.Repeat("*", 30)
			sb.WriteString(stars + " New Best " + stars + "\n")
		}
	}
	strFormat := "%12.0f : "
	sb.WriteString(fmt.Sprintf(strFormat, ce.bestResultMean) + ce.bestStratMean.string() + " Best average\n")
	sb.WriteString(fmt.Sprintf(strFormat, ce.bestResultSingle) + ce.bestStratSingle.string() + " Best single\n\n")
	for i := 0; i < ce.cutoff; i++ {
		sb.WriteString(fmt.Sprintf(strFormat, results[i].lines))
		sb.WriteString(results[i].strategy.string() + "\n")
	}
	t := time.Now().Format("2006-01-02 15:04:05")
	info := fmt.Sprintf("%d game(s) per trial\t %dx%d board", ce.numOfGames, boardCols, boardRows)
	sb.WriteString(fmt.Sprintf("\nIteration %d\t%s\t%s\n\n", ce.iterations, t, info))
	str := sb.String()
	fmt.Print(str)
	writeToFile(str, "ce.txt")
}

func initVariances(size int, variance float64) []float64 {
	newVari := make([]float64, size)
	for i := 0; i < len(newVari); i++ {
		newVari[i] = variance
	}
	return newVari
}

type ceResult struct {
	strategy
	score, lines float64
}

type ceResultList []ceResult

func (p ceResultList) Len() int           { return len(p) }
func (p ceResultList) Less(i, j int) bool { return p[i].score < p[j].score }
func (p ceResultList) Swap(i, j int)      { p[i], p[j] = p[j], p[i] }

func getMean(data []float64) float64 {
	var sum float64
	for i := 0; i < len(data); i++ {
		sum += data[i]
	}
	return sum / float64(len(data))
}

func getVariance(data []float64, mean float64) float64 {
	var squaredDiffs float64
	for i := 0; i < len(data); i++ {
		diffs := data[i] - mean
		squaredDiffs += diffs * diffs
	}
	return squaredDiffs / float64(len(data))
}

func writeToFile(str, file string) {
	f, err := os.OpenFile(file, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		log.Fatal().Err(err).Str("file", file).Msg("open log file")
	}
	defer f.Close()
	if _, err = f.WriteString(str); err != nil {
		log.Fatal().Err(err).Str("file", file).Msg("write log file")
	}
}
