package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/goccy/go-yaml"
)

func checkFormat(format string) error {
	switch format {
	case "text", "json", "yaml":
		return nil
	default:
		return fmt.Errorf("unknown output format %q (want text, json or yaml)", format)
	}
}

// render writes data in the requested format.
func render(w io.Writer, format string, data map[string]interface{}) error {
	switch format {
	case "json":
		out, err := sonic.ConfigStd.MarshalIndent(data, "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		_, err = fmt.Fprintln(w, string(out))
		return err
	case "yaml":
		out, err := yaml.Marshal(data)
		if err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		_, err = w.Write(out)
		return err
	default:
		return renderText(w, data)
	}
}

// renderText prints one "key: value" line per field in key order. Lists are
// printed one item per line.
func renderText(w io.Writer, data map[string]interface{}) error {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		switch v := data[k].(type) {
		case []string:
			fmt.Fprintf(&b, "%s:\n", k)
			for _, item := range v {
				fmt.Fprintf(&b, "  %s\n", item)
			}
		case []interface{}:
			fmt.Fprintf(&b, "%s:\n", k)
			for _, item := range v {
				fmt.Fprintf(&b, "  %v\n", textItem(item))
			}
		case float64:
			fmt.Fprintf(&b, "%s: %s\n", k, formatFloat(v))
		default:
			fmt.Fprintf(&b, "%s: %v\n", k, v)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func textItem(item interface{}) string {
	m, ok := item.(map[string]interface{})
	if !ok {
		return fmt.Sprint(item)
	}
	return fmt.Sprintf("%-20v %v", m["id"], m["description"])
}

func formatFloat(f float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.9f", f), "0"), ".")
}
