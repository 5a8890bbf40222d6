// Package enums maps caller supplied tokens onto the document engine's
// symbolic enum members. Lookup is total: unknown tokens resolve to the
// category default.
package enums

type Category string

const (
	ShapeType          Category = "ShapeType"
	ChartType          Category = "ChartType"
	SmartArtLayoutType Category = "SmartArtLayoutType"
	TextAlignmentType  Category = "TextAlignmentType"
	TextAutofitType    Category = "TextAutofitType"
	VerticalTextType   Category = "VerticalTextType"
)

// Member is one value of a category, named as the engine names it.
type Member struct {
	Category Category
	Name     string
}

func (m Member) String() string {
	return string(m.Category) + "." + m.Name
}

type table struct {
	def     string
	names   []string
	members map[string]struct{}
}

var tables = map[Category]*table{}

func register(category Category, def string, names []string) {
	t := &table{def: def, names: names, members: make(map[string]struct{}, len(names))}
	for _, name := range names {
		t.members[name] = struct{}{}
	}
	if _, ok := t.members[def]; !ok {
		panic("enums: default " + def + " is not a member of " + string(category))
	}
	tables[category] = t
}

func init() {
	register(ShapeType, "Rectangle", shapeTypes)
	register(ChartType, "Pie", chartTypes)
	register(SmartArtLayoutType, "Gear", smartArtLayouts)
	register(TextAlignmentType, "Left", textAlignments)
	register(TextAutofitType, "Shape", textAutofits)
	register(VerticalTextType, "Vertical270", verticalTexts)
}

// Lookup matches token exactly (case-sensitive) against the category's
// members and falls back to the default.
func Lookup(category Category, token string) Member {
	t, ok := tables[category]
	if !ok {
		return Member{Category: category}
	}
	if _, ok := t.members[token]; ok {
		return Member{Category: category, Name: token}
	}
	return Member{Category: category, Name: t.def}
}

// Known reports whether token names a member of the category.
func Known(category Category, token string) bool {
	t, ok := tables[category]
	if !ok {
		return false
	}
	_, ok = t.members[token]
	return ok
}

func Default(category Category) Member {
	t, ok := tables[category]
	if !ok {
		return Member{Category: category}
	}
	return Member{Category: category, Name: t.def}
}

// Names lists the members in declaration order.
func Names(category Category) []string {
	t, ok := tables[category]
	if !ok {
		return nil
	}
	return append([]string(nil), t.names...)
}

func Categories() []Category {
	return []Category{ShapeType, ChartType, SmartArtLayoutType, TextAlignmentType, TextAutofitType, VerticalTextType}
}
