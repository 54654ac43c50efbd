package ant

import (
	"image/color"

	"gridgames/pkg/core"
	"gridgames/pkg/palette"
)

// ColorID indexes the color table. Untouched marks cells the agent has never
// painted.
type ColorID int

// Untouched is the sentinel color id of a fresh cell.
const Untouched ColorID = -1

// Entry is the display color and turn rule bound to a color id.
type Entry struct {
	Display color.RGBA
	Turn    core.Turn
}

// Table maps color ids, the Untouched sentinel included, to entries.
type Table struct {
	// entries[0] is the sentinel; entries[id+1] holds id.
	entries []Entry
}

// BuildTable assigns a random color and turn rule to every id from 0 up to the
// largest id in sequence. The sentinel gets the dark fill and untouched.
func BuildTable(rng *core.RNG, sequence []ColorID, untouched core.Turn) *Table {
	hi := ColorID(0)
	for _, id := range sequence {
		if id > hi {
			hi = id
		}
	}
	t := &Table{entries: make([]Entry, int(hi)+2)}
	t.entries[0] = Entry{Display: palette.Dark, Turn: untouched}
	for id := ColorID(0); id <= hi; id++ {
		t.entries[id+1] = Entry{Display: palette.Random(rng), Turn: core.Turn(rng.IntN(core.NumTurns))}
	}
	return t
}

// NewTable builds a table from explicit turn rules, one per id starting at 0,
// with random display colors.
func NewTable(rng *core.RNG, turns []core.Turn, untouched core.Turn) *Table {
	t := &Table{entries: make([]Entry, len(turns)+1)}
	t.entries[0] = Entry{Display: palette.Dark, Turn: untouched}
	for i, turn := range turns {
		t.entries[i+1] = Entry{Display: palette.Random(rng), Turn: turn}
	}
	return t
}

// Entry returns the entry for id.
func (t *Table) Entry(id ColorID) (Entry, bool) {
	i := int(id) + 1
	if i < 0 || i >= len(t.entries) {
		return Entry{}, false
	}
	return t.entries[i], true
}

// Len returns the number of ids in the table, not counting the sentinel.
func (t *Table) Len() int { return len(t.entries) - 1 }

// Untouched returns the sentinel's turn rule.
func (t *Table) Untouched() core.Turn { return t.entries[0].Turn }

func (t *Table) setUntouched(turn core.Turn) { t.entries[0].Turn = turn }

func (t *Table) setDisplay(id ColorID, c color.RGBA) { t.entries[int(id)+1].Display = c }

// recolor re-rolls every display color except the sentinel's.
func (t *Table) recolor(rng *core.RNG) {
	for i := 1; i < len(t.entries); i++ {
		t.entries[i].Display = palette.Random(rng)
	}
}

// GenerateSequence draws a sequence length from r, then fills it with ids in
// [0, length) taken as a draw from 0..9 modulo the length.
func GenerateSequence(rng *core.RNG, r core.IntRange) []ColorID {
	n := rng.Between(r.Min, r.Max)
	seq := make([]ColorID, n)
	for i := range seq {
		seq[i] = ColorID(rng.IntN(MaxSequenceLength) % n)
	}
	return seq
}
