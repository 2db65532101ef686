package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/binstream/binstream-go"
	"github.com/spf13/cobra"
)

// nolint: gochecknoglobals
var (
	outputFormat string
	valueType    string
	byteOrder    string
	startOffset  int64
	valueCount   int

	rootCmd = &cobra.Command{
		Use:  "binstream [path]",
		Args: cobra.ExactArgs(1),
		Example: formatExamples([][]string{
			{"Dump a file as little-endian uint32 values.", "binstream -t u32 path/to/data.bin"},
			{"Dump eight big-endian float64 values starting at byte 64.", "binstream -t f64 --order be --offset 64 -n 8 path/to/data.bin"},
		}),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var printer Printer

			writer := bufio.NewWriter(os.Stdout)
			defer writer.Flush()

			switch outputFormat {
			case "json":
				printer = NewJSONPrinter(writer)
			case "spew":
				printer = NewSpewPrinter(writer)
			default:
				// nolint: goerr113
				return fmt.Errorf("unsupported format %q", outputFormat)
			}

			if byteOrder != "le" && byteOrder != "be" {
				// nolint: goerr113
				return fmt.Errorf("unsupported byte order %q", byteOrder)
			}

			return printValues(args[0], printer, dumpOptions{
				Type:      valueType,
				BigEndian: byteOrder == "be",
				Offset:    startOffset,
				Count:     valueCount,
			})
		},
	}
)

type dumpOptions struct {
	Type      string
	BigEndian bool
	Offset    int64
	Count     int
}

func formatExamples(examples [][]string) string {
	lines := make([]string, len(examples))
	indent := "  "

	for i, v := range examples {
		lines[i] = indent + "# " + v[0] + "\n" + indent + v[1]
	}

	return strings.Join(lines, "\n\n")
}

func main() {
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "json", "output format (json or spew)")
	rootCmd.PersistentFlags().StringVarP(&valueType, "type", "t", "u8", "value type (u8, i8, u16, i16, u32, i32, u64, i64, f32, f64)")
	rootCmd.PersistentFlags().StringVar(&byteOrder, "order", "le", "byte order (le or be)")
	rootCmd.PersistentFlags().Int64Var(&startOffset, "offset", 0, "byte offset to start decoding at")
	rootCmd.PersistentFlags().IntVarP(&valueCount, "count", "n", 0, "number of values to decode (0 = until the end of the file)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func printValues(path string, printer Printer, opts dumpOptions) error {
	reader, err := binstream.NewFileReader(path)

	if err != nil {
		return err
	}

	defer reader.Close()

	reader.Seek(opts.Offset)

	if err := printer.Start(); err != nil {
		return err
	}

	for i := 0; opts.Count == 0 || i < opts.Count; i++ {
		offset := reader.Tell()
		value, err := readValue(reader, opts.Type, opts.BigEndian)

		if err != nil {
			var oob binstream.OutOfBoundsError

			// Without an explicit count, decode until the extent runs out.
			if opts.Count == 0 && errors.As(err, &oob) {
				break
			}

			return err
		}

		if err := printer.Value(offset, value); err != nil {
			return err
		}
	}

	return printer.End()
}

func readValue(r *binstream.Reader, valueType string, bigEndian bool) (interface{}, error) {
	switch valueType {
	case "u8":
		return scalarValue[uint8](r, bigEndian)
	case "i8":
		return scalarValue[int8](r, bigEndian)
	case "u16":
		return scalarValue[uint16](r, bigEndian)
	case "i16":
		return scalarValue[int16](r, bigEndian)
	case "u32":
		return scalarValue[uint32](r, bigEndian)
	case "i32":
		return scalarValue[int32](r, bigEndian)
	case "u64":
		return scalarValue[uint64](r, bigEndian)
	case "i64":
		return scalarValue[int64](r, bigEndian)
	case "f32":
		return scalarValue[float32](r, bigEndian)
	case "f64":
		return scalarValue[float64](r, bigEndian)
	}

	// nolint: goerr113
	return nil, fmt.Errorf("unsupported type %q", valueType)
}

func scalarValue[T binstream.Scalar](r *binstream.Reader, bigEndian bool) (interface{}, error) {
	if bigEndian {
		return binstream.ReadBE[T](r)
	}

	return binstream.Read[T](r)
}
