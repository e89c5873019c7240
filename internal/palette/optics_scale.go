package palette

import "strings"

// StopName identifies one of the 19 fixed Optics stops.
type StopName string

const (
	PlusMax    StopName = "plus-max"
	PlusEight  StopName = "plus-eight"
	PlusSeven  StopName = "plus-seven"
	PlusSix    StopName = "plus-six"
	PlusFive   StopName = "plus-five"
	PlusFour   StopName = "plus-four"
	PlusThree  StopName = "plus-three"
	PlusTwo    StopName = "plus-two"
	PlusOne    StopName = "plus-one"
	Base       StopName = "base"
	MinusOne   StopName = "minus-one"
	MinusTwo   StopName = "minus-two"
	MinusThree StopName = "minus-three"
	MinusFour  StopName = "minus-four"
	MinusFive  StopName = "minus-five"
	MinusSix   StopName = "minus-six"
	MinusSeven StopName = "minus-seven"
	MinusEight StopName = "minus-eight"
	MinusMax   StopName = "minus-max"
)

// ModeLightness holds the lightness percentages used for one colour mode.
type ModeLightness struct {
	Background float64
	On         float64
	OnAlt      float64
}

// ScaleEntry is one row of the Optics scale.
type ScaleEntry struct {
	Name  StopName
	Light ModeLightness
	Dark  ModeLightness
}

// OpticsScale is the fixed Optics scale, lightest stop first.
// The values are hand tuned and do not follow a formula.
var OpticsScale = [...]ScaleEntry{
	{Name: PlusMax, Light: ModeLightness{100, 0, 20}, Dark: ModeLightness{12, 100, 78}},
	{Name: PlusEight, Light: ModeLightness{98, 4, 24}, Dark: ModeLightness{14, 88, 70}},
	{Name: PlusSeven, Light: ModeLightness{96, 8, 28}, Dark: ModeLightness{16, 80, 64}},
	{Name: PlusSix, Light: ModeLightness{94, 16, 26}, Dark: ModeLightness{20, 72, 96}},
	{Name: PlusFive, Light: ModeLightness{90, 20, 40}, Dark: ModeLightness{24, 72, 86}},
	{Name: PlusFour, Light: ModeLightness{84, 24, 4}, Dark: ModeLightness{26, 80, 92}},
	{Name: PlusThree, Light: ModeLightness{70, 20, 10}, Dark: ModeLightness{29, 78, 98}},
	{Name: PlusTwo, Light: ModeLightness{64, 16, 6}, Dark: ModeLightness{32, 80, 92}},
	{Name: PlusOne, Light: ModeLightness{45, 100, 95}, Dark: ModeLightness{35, 80, 98}},
	{Name: Base, Light: ModeLightness{40, 100, 88}, Dark: ModeLightness{38, 100, 84}},
	{Name: MinusOne, Light: ModeLightness{36, 94, 82}, Dark: ModeLightness{40, 98, 90}},
	{Name: MinusTwo, Light: ModeLightness{32, 90, 78}, Dark: ModeLightness{45, 98, 92}},
	{Name: MinusThree, Light: ModeLightness{28, 86, 74}, Dark: ModeLightness{48, 98, 96}},
	{Name: MinusFour, Light: ModeLightness{24, 84, 72}, Dark: ModeLightness{52, 2, 2}},
	{Name: MinusFive, Light: ModeLightness{20, 88, 78}, Dark: ModeLightness{64, 2, 20}},
	{Name: MinusSix, Light: ModeLightness{16, 94, 82}, Dark: ModeLightness{72, 8, 26}},
	{Name: MinusSeven, Light: ModeLightness{8, 96, 84}, Dark: ModeLightness{80, 8, 34}},
	{Name: MinusEight, Light: ModeLightness{4, 98, 86}, Dark: ModeLightness{88, 4, 38}},
	{Name: MinusMax, Light: ModeLightness{0, 100, 88}, Dark: ModeLightness{100, 0, 38}},
}

// StopNames returns the Optics stop names in canonical order.
func StopNames() []StopName {
	names := make([]StopName, len(OpticsScale))
	for i, e := range OpticsScale {
		names[i] = e.Name
	}
	return names
}

// Group splits a stop name into its group ("plus", "minus" or "base") and
// level within the group (e.g., "max", "one"). Base has an empty level.
func (n StopName) Group() (group, level string) {
	for _, prefix := range []string{"plus", "minus"} {
		if level, ok := strings.CutPrefix(string(n), prefix+"-"); ok {
			return prefix, level
		}
	}
	return string(n), ""
}
