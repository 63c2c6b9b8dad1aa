package expense

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/PaesslerAG/gval"
	"github.com/PaesslerAG/jsonpath"
)

// queryLanguage is JSONPath with the full gval operators, so filters can
// compare and combine values.
var queryLanguage = gval.Full(jsonpath.Language())

// Query evaluates a JSONPath expression against the store document of the
// ledger, e.g. "$[*].description" or "$[?(@.amount > 10)].id".
//
// The document is the JSON array written by EncodeLedger, numbers are float64.
func Query(l *Ledger, path string) (any, error) {
	var buf bytes.Buffer
	if err := EncodeLedger(&buf, l); err != nil {
		return nil, err
	}
	var doc any
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		return nil, fmt.Errorf("cannot decode store document: %w", err)
	}
	eval, err := queryLanguage.NewEvaluable(path)
	if err != nil {
		return nil, fmt.Errorf("invalid query %q: %w", path, err)
	}
	v, err := eval(context.Background(), doc)
	if err != nil {
		return nil, fmt.Errorf("cannot evaluate query %q: %w", path, err)
	}
	return v, nil
}
