package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chinmay1088/insight/api"
	"github.com/chinmay1088/insight/config"
	"github.com/fatih/color"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// satoshisPerCoin is the exponent between satoshis and whole coins
const satoshisPerCoin = 8

// writeValue renders a decoded document as indented JSON or YAML
func writeValue(w io.Writer, v api.Value, format string) error {
	switch strings.ToLower(format) {
	case config.OutputYAML:
		out, err := yaml.Marshal(toYAML(v))
		if err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		_, err = w.Write(out)
		return err
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		return nil
	}
}

// toYAML converts json.Number leaves into ints or floats so yaml.v3 emits
// plain numbers instead of quoted strings.
func toYAML(v api.Value) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, item := range t {
			out[k] = toYAML(item)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = toYAML(item)
		}
		return out
	case json.Number:
		if n, err := t.Int64(); err == nil {
			return n
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return t.String()
	default:
		return v
	}
}

// printValue writes v to the command output in the configured format
func printValue(w io.Writer, v api.Value) error {
	return writeValue(w, v, appConfig.Output)
}

// formatCoins converts satoshis to a fixed 8 decimal coin amount
func formatCoins(satoshis int64, symbol string) string {
	return decimal.NewFromInt(satoshis).Shift(-satoshisPerCoin).StringFixed(satoshisPerCoin) + " " + symbol
}

// fiatValue multiplies a satoshi amount by a coin price in fiat
func fiatValue(satoshis int64, rate api.Value) (decimal.Decimal, error) {
	var price decimal.Decimal
	var err error
	switch r := rate.(type) {
	case json.Number:
		price, err = decimal.NewFromString(r.String())
	case string:
		price, err = decimal.NewFromString(r)
	case float64:
		price = decimal.NewFromFloat(r)
	default:
		err = fmt.Errorf("unexpected rate of type %T", rate)
	}
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse exchange rate: %w", err)
	}

	return decimal.NewFromInt(satoshis).Shift(-satoshisPerCoin).Mul(price), nil
}

// describeError adds the server body to a failed call
func describeError(err error) string {
	var callErr *api.BlockchainCallError
	if errors.As(err, &callErr) {
		return fmt.Sprintf("%s %s", color.RedString("HTTP %d", callErr.StatusCode), strings.TrimSpace(string(callErr.Body)))
	}
	if errors.Is(err, api.ErrInvalidArgument) {
		return color.YellowString("%s", err.Error())
	}
	return err.Error()
}
