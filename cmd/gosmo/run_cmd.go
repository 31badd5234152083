package main

import (
	"context"
	"fmt"
	"time"

	"github.com/briandowns/spinner"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/osmo-tool/gosmo/endcondition"
	"github.com/osmo-tool/gosmo/engine"
	"github.com/osmo-tool/gosmo/errorstrategy"
	"github.com/osmo-tool/gosmo/internal/reporting"
	"github.com/osmo-tool/gosmo/selection"
	"github.com/osmo-tool/gosmo/step"
)

var (
	runSeed      int64
	runAlgorithm string
	runLength    int
	runCoverage  float64
	runQuiet     bool
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Generate and execute a test suite against the toy calculator model",
		RunE:  runRun,
	}
	cmd.Flags().Int64Var(&runSeed, "seed", 0, "seed for the selection algorithm's random source (default: derived from the current time)")
	cmd.Flags().StringVar(&runAlgorithm, "algorithm", "random", "selection algorithm: random, weighted, balancing, weighted-balancing")
	cmd.Flags().IntVar(&runLength, "length", 20, "number of steps per test")
	cmd.Flags().Float64Var(&runCoverage, "coverage", 0, "if > 0, additionally require this step-coverage percentage before a test ends")
	cmd.Flags().BoolVar(&runQuiet, "quiet", false, "suppress the progress spinner")
	return cmd
}

func resolveAlgorithm(name string) (selection.Algorithm, error) {
	switch name {
	case "random":
		return selection.Random{}, nil
	case "weighted":
		return selection.Weighted{}, nil
	case "balancing":
		return selection.Balancing{}, nil
	case "weighted-balancing":
		return selection.WeightedBalancing{}, nil
	default:
		return nil, fmt.Errorf("unknown algorithm %q", name)
	}
}

func runRun(cmd *cobra.Command, args []string) error {
	alg, err := resolveAlgorithm(runAlgorithm)
	if err != nil {
		return err
	}

	model := &calculatorModel{}
	catalogue, err := step.Introspect(model)
	if err != nil {
		return err
	}

	testEnd, err := endcondition.NewLength(runLength)
	if err != nil {
		return err
	}
	var testEndCondition = endcondition.EndCondition(testEnd)
	if runCoverage > 0 {
		cov, err := endcondition.NewStepCoverage(runCoverage, catalogue.Names())
		if err != nil {
			return err
		}
		testEndCondition = endcondition.NewAnd(testEnd, cov)
	}

	suiteEnd, err := endcondition.NewLength(1)
	if err != nil {
		return err
	}

	var seed *int64
	if cmd.Flags().Changed("seed") {
		seed = &runSeed
	}
	cfg := engine.Config{
		Seed:               seed,
		Algorithm:          alg,
		TestEndCondition:   testEndCondition,
		SuiteEndCondition:  suiteEnd,
		TestErrorStrategy:  errorstrategy.AlwaysRaise{},
		SuiteErrorStrategy: errorstrategy.AlwaysRaise{},
	}

	var s *spinner.Spinner
	if !runQuiet {
		s = spinner.New(spinner.CharSets[14], 100*time.Millisecond)
		s.Suffix = " generating test suite..."
		s.Start()
	}

	h, runErr := engine.Run(context.Background(), cfg, model)

	if s != nil {
		if runErr != nil {
			s.FinalMSG = text.FgRed.Sprint("suite ended with an error") + "\n"
		}
		s.Stop()
	}

	fmt.Printf("seed: %d\n", h.Seed())
	fmt.Println(reporting.Summary(h, catalogue.Names()))
	return runErr
}
