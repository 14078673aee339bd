package bitmap

import (
	_ "embed"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"
)

type namedColor struct {
	Name string `csv:"name"`
	// Hex is the color in web notation, e.g. "#ff8000".
	Hex string `csv:"hex"`
}

// https://www.w3.org/TR/css-color-3/#html4
//
//go:embed color_names.csv
var colorNamesRawCSV string
var namedColors map[string]Color

// GetPredefinedColor returns a color from the built-in name table, e.g.
// "crimson". Names are case-insensitive.
func GetPredefinedColor(name string) (Color, error) {
	color, ok := namedColors[strings.ToLower(name)]
	if ok {
		return color, nil
	}

	err := fmt.Errorf("no predefined color exists with name %q", name)
	return Color{}, err
}

// PredefinedColorNames returns the names of all built-in colors in
// alphabetical order.
func PredefinedColorNames() []string {
	names := make([]string, 0, len(namedColors))
	for name := range namedColors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	var rows []*namedColor
	if err := gocsv.UnmarshalString(colorNamesRawCSV, &rows); err != nil {
		panic(fmt.Errorf("failed to decode the color name table: %w", err))
	}

	namedColors = make(map[string]Color)

	for i, row := range rows {
		name := strings.ToLower(row.Name)

		_, exists := namedColors[name]
		if exists {
			message := fmt.Errorf(
				"duplicate definition for color %q found on row %d", name, i+1)
			panic(message)
		}

		packed, err := strconv.ParseUint(strings.TrimPrefix(row.Hex, "#"), 16, 32)
		if err != nil {
			message := fmt.Errorf(
				"bad value %q for color %q on row %d: %w", row.Hex, name, i+1, err)
			panic(message)
		}
		namedColors[name] = RGB(uint32(packed))
	}
}
