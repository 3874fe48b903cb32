// Command fcs is the personal finance calculator suite.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/fincalc/fincalc/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion. Complete() exits when invoked by the shell.
	completion().Complete("fcs")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	planFlags := map[string]complete.Predictor{
		"initial":   predict.Something,
		"monthly":   predict.Something,
		"return":    predict.Something,
		"years":     predict.Something,
		"inflation": predict.Something,
	}
	simulateFlags := map[string]complete.Predictor{
		"volatility": predict.Something,
		"paths":      predict.Something,
	}
	for k, v := range planFlags {
		simulateFlags[k] = v
	}
	debtFlags := map[string]complete.Predictor{
		"extra": predict.Something,
	}

	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"debts-file":        predict.Files("*.jsonl"),
			"transactions-file": predict.Files("*.csv"),
			"currency":          predict.Set{"USD", "EUR", "GBP", "CHF", "JPY"},
		},
		Sub: map[string]*complete.Command{
			"project":  {Flags: planFlags},
			"simulate": {Flags: simulateFlags},
			"payoff": {Flags: map[string]complete.Predictor{
				"strategy": predict.Set{"avalanche", "snowball"},
				"extra":    predict.Something,
			}},
			"compare": {Flags: debtFlags},
			"detect": {Flags: map[string]complete.Predictor{
				"min-confidence": predict.Something,
				"from":           predict.Something,
				"to":             predict.Something,
			}},
			"forecast": {Flags: map[string]complete.Predictor{
				"months": predict.Something,
				"from":   predict.Something,
				"to":     predict.Something,
			}},
			"allocate": {Flags: map[string]complete.Predictor{
				"birthdate":       predict.Something,
				"withdrawal-date": predict.Something,
				"withdrawal":      predict.Something,
				"portfolio":       predict.Something,
			}},
			"topic":  {Args: predict.Set{"strategies", "simulation", "allocation", "recurring", "*"}},
			"assist": {},
		},
	}
}
