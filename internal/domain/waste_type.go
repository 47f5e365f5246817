package domain

import "strings"

// WasteType is one of the eight tracked waste categories. The set is closed;
// anything else coming from the data side is dropped during normalization.
type WasteType string

const (
	WasteTypeBio       WasteType = "BIO"
	WasteTypeCardboard WasteType = "CARDBOARD"
	WasteTypeGlass     WasteType = "GLASS"
	WasteTypeMetal     WasteType = "METAL"
	WasteTypePlastic   WasteType = "PLASTIC"
	WasteTypePaper     WasteType = "PAPER"
	WasteTypeMixed     WasteType = "MIXED"
	WasteTypeHazardous WasteType = "HAZARDOUS"
)

type WasteTypeDef struct {
	Type  WasteType `json:"type"`
	Label string    `json:"label"`
	Short string    `json:"short"`
}

// WasteTypes is in the display order the app uses, not alphabetical.
var WasteTypes = []WasteTypeDef{
	{Type: WasteTypeBio, Label: "Bio-waste", Short: "Bio"},
	{Type: WasteTypeMixed, Label: "Mixed waste", Short: "Mix"},
	{Type: WasteTypeHazardous, Label: "Hazardous waste", Short: "Haz"},
	{Type: WasteTypeMetal, Label: "Metal", Short: "Metal"},
	{Type: WasteTypeGlass, Label: "Glass", Short: "Glass"},
	{Type: WasteTypePaper, Label: "Paper", Short: "Paper"},
	{Type: WasteTypePlastic, Label: "Plastic", Short: "Plastic"},
	{Type: WasteTypeCardboard, Label: "Cardboard packaging", Short: "Card"},
}

var allowedWasteTypes = func() map[WasteType]struct{} {
	m := make(map[WasteType]struct{}, len(WasteTypes))
	for _, def := range WasteTypes {
		m[def.Type] = struct{}{}
	}
	return m
}()

func AllWasteTypes() []WasteType {
	out := make([]WasteType, len(WasteTypes))
	for i, def := range WasteTypes {
		out[i] = def.Type
	}
	return out
}

func (t WasteType) Valid() bool {
	_, ok := allowedWasteTypes[t]
	return ok
}

func (t WasteType) Label() string {
	for _, def := range WasteTypes {
		if def.Type == t {
			return def.Label
		}
	}
	return string(t)
}

// NormalizeWasteTypes uppercases the input and keeps only recognized types.
// Unknown values are dropped silently so schema drift on the data side does not
// break existing clients.
func NormalizeWasteTypes(input []string) []WasteType {
	out := make([]WasteType, 0, len(input))
	for _, raw := range input {
		wt := WasteType(strings.ToUpper(strings.TrimSpace(raw)))
		if wt.Valid() {
			out = append(out, wt)
		}
	}
	return out
}
