package encounter

import "github.com/nathoo/gridquest/types"

// Tag is the closed set of enter-result values a cell may carry.
type Tag int

const (
	TagNone Tag = iota
	TagPhaser
	TagRandomMove
	TagWin
	TagLose
	TagUnknown
)

var tagNames = map[string]Tag{
	"":           TagNone,
	"phaser":     TagPhaser,
	"randomMove": TagRandomMove,
	"win":        TagWin,
	"lose":       TagLose,
}

// ParseTag maps a cell's enter-result field to a Tag.
func ParseTag(s string) Tag {
	if t, ok := tagNames[s]; ok {
		return t
	}
	return TagUnknown
}

// Special is the closed set of entity names the encounter engine reacts to.
type Special int

const (
	Other Special = iota
	Spock
	Khan
	Klingon
)

// ParseSpecial maps a cell name to a Special. Matching is exact.
func ParseSpecial(name string) Special {
	switch name {
	case "spock":
		return Spock
	case "khan":
		return Khan
	case "klingon":
		return Klingon
	default:
		return Other
	}
}

// Kind is the encounter state a cell resolves to.
type Kind int

const (
	Empty Kind = iota
	Item
	Teleport
	Victory
	Defeat
	Hostile
)

func (k Kind) String() string {
	switch k {
	case Item:
		return "item"
	case Teleport:
		return "teleport"
	case Victory:
		return "victory"
	case Defeat:
		return "defeat"
	case Hostile:
		return "hostile"
	default:
		return "empty"
	}
}

// Classify resolves a cell to its encounter kind. Enter-result tags are
// checked before names: phaser, randomMove, spock, khan, klingon.
func Classify(cell *types.Cell) Kind {
	if cell == nil {
		return Empty
	}
	switch ParseTag(cell.EnterResult) {
	case TagPhaser:
		return Item
	case TagRandomMove:
		return Teleport
	}
	switch ParseSpecial(cell.Name) {
	case Spock:
		return Victory
	case Khan:
		return Defeat
	case Klingon:
		return Hostile
	}
	return Empty
}
