package output

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/MdSufiyan005/INHACK/cli/pkg/config"
	"github.com/fatih/color"
	json2 "github.com/json-iterator/go"
)

// OutputFormat represents the output format type
type OutputFormat string

const (
	FormatJSON  OutputFormat = "json"
	FormatTable OutputFormat = "table"
	FormatText  OutputFormat = "text"
)

// GetOutputFormat returns the configured output format
func GetOutputFormat() OutputFormat {
	format := config.GetString("output.format")
	switch format {
	case "json":
		return FormatJSON
	case "table":
		return FormatTable
	default:
		return FormatText
	}
}

// ValidateOutputFormat checks if format is valid
func ValidateOutputFormat(format string) bool {
	return format == "json" || format == "table" || format == "text"
}

// PrintSuccess prints a success message
func PrintSuccess(msg string, args ...interface{}) {
	colored := color.New(color.FgGreen)
	colored.Printf(msg+"\n", args...)
}

// PrintError prints an error message
func PrintError(msg string, args ...interface{}) {
	colored := color.New(color.FgRed)
	colored.Printf("Error: "+msg+"\n", args...)
}

// PrintInfo prints an info message
func PrintInfo(msg string, args ...interface{}) {
	colored := color.New(color.FgCyan)
	colored.Printf(msg+"\n", args...)
}

// PrintWarning prints a warning message
func PrintWarning(msg string, args ...interface{}) {
	colored := color.New(color.FgYellow)
	colored.Printf("Warning: "+msg+"\n", args...)
}

// Print writes a rendered view to stdout, or the backing records as
// pretty-printed JSON when --output json is configured. Views are
// rendered upstream so dormant sections can retain them; the table and
// text formats share the rendered form.
func Print(view string, data interface{}) error {
	if GetOutputFormat() == FormatJSON {
		return printJSON(data)
	}
	fmt.Print(view)
	return nil
}

func printJSON(data interface{}) error {
	jsonStr, err := FormatAsPrettyJSON(data)
	if err != nil {
		return err
	}
	fmt.Println(jsonStr)
	return nil
}

// Table renders headers and rows through a tabwriter and returns the
// result, so callers can retain rendered views rather than writing
// straight to stdout.
func Table(headers []string, rows [][]string) string {
	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, strings.Join(headers, "\t"))
	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}

	w.Flush()
	return sb.String()
}

// FormatAsPrettyJSON converts data to pretty JSON string
func FormatAsPrettyJSON(data interface{}) (string, error) {
	marshaler := json2.ConfigDefault
	jsonData, err := marshaler.Marshal(data)
	if err != nil {
		return "", err
	}

	// Unmarshal and remarshal for pretty printing
	var obj interface{}
	if err := json.Unmarshal(jsonData, &obj); err != nil {
		return "", err
	}

	prettyJSON, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		return "", err
	}

	return string(prettyJSON), nil
}
