package cmd

import (
	"github.com/etnz/expense"
	"github.com/etnz/expense/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion returns the shell completion tree of the application.
func Completion() *complete.Command {
	formats := make(predict.Set, 0, len(expense.ExportFormats))
	for _, f := range expense.ExportFormats {
		formats = append(formats, string(f))
	}
	topics, _ := docs.GetAllTopics()

	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"store":    predict.Files("*.json"),
			"currency": predict.Something,
			"v":        predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"add": {Flags: map[string]complete.Predictor{
				"description": predict.Something,
				"amount":      predict.Something,
			}},
			"delete": {Flags: map[string]complete.Predictor{
				"id": predict.Something,
			}},
			"update": {Flags: map[string]complete.Predictor{
				"id":          predict.Something,
				"description": predict.Something,
				"amount":      predict.Something,
				"date":        predict.Something,
			}},
			"list": {},
			"summary": {Flags: map[string]complete.Predictor{
				"month": predict.Set{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11", "12"},
			}},
			"report": {Flags: map[string]complete.Predictor{
				"year": predict.Something,
				"raw":  predict.Nothing,
			}},
			"export": {Flags: map[string]complete.Predictor{
				"filename": predict.Files("*"),
				"format":   formats,
			}},
			"query": {Flags: map[string]complete.Predictor{
				"path": predict.Something,
			}},
			"topic": {Args: predict.Set(topics)},
		},
	}
}
