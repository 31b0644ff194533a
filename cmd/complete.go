package cmd

import (
	"github.com/etnz/shortpos/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// issuerOrders are the values of the -sort flags.
var issuerOrders = predict.Set{"appearance", "name", "total"}

// Completion returns the shell completion of the command line.
//
// builtins are the extra subcommands registered by the main package, like "help".
func Completion(builtins ...string) *complete.Command {
	topics, _ := docs.GetAllTopics()
	csvFiles := predict.Files("*.csv")

	flags := map[string]map[string]complete.Predictor{
		"issuers": {"sort": issuerOrders},
		"report":  {"sort": issuerOrders, "raw": predict.Nothing},
		"export":  {"o": csvFiles},
	}
	args := map[string]complete.Predictor{
		"topic": predict.Set(append([]string{"readme"}, topics...)),
	}

	sub := make(map[string]*complete.Command)
	for _, c := range Commands() {
		sub[c.Name()] = &complete.Command{Flags: flags[c.Name()], Args: args[c.Name()]}
	}
	for _, name := range builtins {
		sub[name] = &complete.Command{}
	}

	return &complete.Command{
		Sub: sub,
		Flags: map[string]complete.Predictor{
			"endpoint": predict.Something,
			"csv-file": csvFiles,
			"v":        predict.Nothing,
		},
	}
}
