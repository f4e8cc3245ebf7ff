package naming

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dlclark/regexp2"
	"github.com/golang/glog"
)

// Capture names a grammar may use.
const (
	FieldSeriesName   = "series_name"
	FieldSeasonNum    = "season_num"
	FieldEpNum        = "ep_num"
	FieldExtraEpNum   = "extra_ep_num"
	FieldAirDate      = "air_date"
	FieldSeriesNum    = "series_num"
	FieldExtraInfo    = "extra_info"
	FieldReleaseGroup = "release_group"

	FieldEpAbNum      = "ep_ab_num"
	FieldExtraAbEpNum = "extra_ab_ep_num"
	FieldVersion      = "version"
	FieldCRC          = "crc"
	FieldCodec        = "codec"
)

// StandardFields is the capture vocabulary of the standard grammars.
var StandardFields = []string{
	FieldSeriesName,
	FieldSeasonNum,
	FieldEpNum,
	FieldExtraEpNum,
	FieldAirDate,
	FieldSeriesNum,
	FieldExtraInfo,
	FieldReleaseGroup,
}

// AnimeFields extends StandardFields with absolute numbering and the bits
// fansub groups like to put in their names.
var AnimeFields = append(StandardFields[:len(StandardFields):len(StandardFields)],
	FieldEpAbNum,
	FieldExtraAbEpNum,
	FieldVersion,
	FieldCRC,
	FieldCodec,
)

// AllRegexes is every grammar, standard first.
var AllRegexes = append(StandardRegexes[:len(StandardRegexes):len(StandardRegexes)], AnimeRegexes...)

// DefaultMatchTimeout bounds a single grammar's attempt on a single name.
const DefaultMatchTimeout = 250 * time.Millisecond

// Prebuilt tables. Compiled once at package init.
var (
	StandardTable = MustTable("standard", StandardFields, StandardRegexes)
	AnimeTable    = MustTable("anime", AnimeFields, AnimeRegexes)
	AllTable      = MustTable("all", AnimeFields, AllRegexes)
)

// TestString is a sample name embedded next to the grammar it exercises.
type TestString struct {
	String      string
	ShouldMatch bool
	MatchGroups map[string]string
}

// NameRegex is one named grammar.  The Pattern must be anchored to the whole
// name (^...$).  Only NameRegexes obtained from a Table are compiled.
type NameRegex struct {
	Name        string
	Pattern     string
	TestStrings []TestString

	re     *regexp2.Regexp
	fields []string
}

// Fields returns the capture names the compiled grammar declares.
func (nr *NameRegex) Fields() []string {
	return nr.fields
}

// Match tries the grammar against the whole of name.
func (nr *NameRegex) Match(name string) (MatchResult, bool) {
	res, ok, err := nr.match(name)
	if err != nil {
		glog.Warningf("grammar %s on %q: %v", nr.Name, name, err)
		return MatchResult{}, false
	}
	return res, ok
}

func (nr *NameRegex) match(name string) (MatchResult, bool, error) {
	if nr.re == nil {
		return MatchResult{}, false, fmt.Errorf("grammar %s is not compiled", nr.Name)
	}
	m, err := nr.re.FindStringMatch(name)
	if err != nil {
		return MatchResult{}, false, err
	}
	// $ also matches before a trailing newline, which isn't the whole name.
	if m == nil || m.Index != 0 || m.Length != utf8.RuneCountInString(name) {
		return MatchResult{}, false, nil
	}

	res := MatchResult{
		PatternName: nr.Name,
		Fields:      map[string]string{},
		Captures:    map[string][]string{},
	}
	for _, f := range nr.fields {
		g := m.GroupByName(f)
		if g == nil || len(g.Captures) == 0 {
			continue
		}
		for _, c := range g.Captures {
			if s := c.String(); s != "" {
				res.Captures[f] = append(res.Captures[f], s)
			}
		}
		if s := g.String(); s != "" {
			res.Fields[f] = s
		}
	}
	return res, true, nil
}

// MatchResult is what a grammar extracted from a name.  Fields holds the last
// value of each non-empty capture, Captures every value of a repeated one.
type MatchResult struct {
	PatternName string
	Fields      map[string]string
	Captures    map[string][]string
}

// Get returns the captured value of field, if any.
func (r MatchResult) Get(field string) (string, bool) {
	v, ok := r.Fields[field]
	return v, ok
}

// All returns every value a repeated capture took, in order.
func (r MatchResult) All(field string) []string {
	return r.Captures[field]
}

// Table is an ordered, compiled set of grammars.  Safe for concurrent use.
type Table struct {
	name         string
	matchTimeout time.Duration
	entries      []*NameRegex
	byName       map[string]*NameRegex
}

// TableOption customizes NewTable.
type TableOption func(*Table)

// WithMatchTimeout sets how long one grammar may spend on one name.
func WithMatchTimeout(d time.Duration) TableOption {
	return func(t *Table) {
		t.matchTimeout = d
	}
}

// NewTable compiles entries, in order, into a Table.  Every named capture must
// come from vocabulary.
func NewTable(name string, vocabulary []string, entries []NameRegex, opts ...TableOption) (*Table, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("table %s has no grammars", name)
	}
	t := &Table{
		name:         name,
		matchTimeout: DefaultMatchTimeout,
		byName:       make(map[string]*NameRegex, len(entries)),
	}
	for _, o := range opts {
		o(t)
	}
	if t.matchTimeout <= 0 {
		return nil, fmt.Errorf("table %s: match timeout must be positive, got %s", name, t.matchTimeout)
	}

	known := make(map[string]bool, len(vocabulary))
	for _, v := range vocabulary {
		known[v] = true
	}

	for _, e := range entries {
		if e.Name == "" {
			return nil, fmt.Errorf("table %s: grammar with empty name", name)
		}
		if _, dup := t.byName[e.Name]; dup {
			return nil, fmt.Errorf("table %s: duplicate grammar name %s", name, e.Name)
		}
		if !strings.HasPrefix(e.Pattern, "^") || !strings.HasSuffix(e.Pattern, "$") || strings.HasSuffix(e.Pattern, `\$`) {
			return nil, fmt.Errorf("table %s: grammar %s is not anchored to the whole name", name, e.Name)
		}
		// ECMAScript keeps \d, \w and \s to ASCII.
		re, err := regexp2.Compile(e.Pattern, regexp2.IgnoreCase|regexp2.ECMAScript)
		if err != nil {
			return nil, fmt.Errorf("table %s: compiling grammar %s: %w", name, e.Name, err)
		}
		re.MatchTimeout = t.matchTimeout

		nr := &NameRegex{
			Name:        e.Name,
			Pattern:     e.Pattern,
			TestStrings: e.TestStrings,
			re:          re,
		}
		for _, g := range re.GetGroupNames() {
			if _, err := strconv.Atoi(g); err == nil {
				continue
			}
			if !known[g] {
				return nil, fmt.Errorf("table %s: grammar %s captures unknown field %q", name, e.Name, g)
			}
			nr.fields = append(nr.fields, g)
		}
		t.entries = append(t.entries, nr)
		t.byName[nr.Name] = nr
	}
	return t, nil
}

// MustTable is NewTable for tables known at build time.
func MustTable(name string, vocabulary []string, entries []NameRegex, opts ...TableOption) *Table {
	t, err := NewTable(name, vocabulary, entries, opts...)
	if err != nil {
		glog.Fatalf("Error building naming table: %v", err)
	}
	return t
}

// Name of the table.
func (t *Table) Name() string { return t.name }

// Len is the number of grammars.
func (t *Table) Len() int { return len(t.entries) }

// MatchTimeout is the per grammar, per name match budget.
func (t *Table) MatchTimeout() time.Duration { return t.matchTimeout }

// Names lists the grammar names in match order.
func (t *Table) Names() []string {
	names := make([]string, len(t.entries))
	for i, e := range t.entries {
		names[i] = e.Name
	}
	return names
}

// Lookup returns the compiled grammar called grammarName.
func (t *Table) Lookup(grammarName string) (*NameRegex, bool) {
	nr, ok := t.byName[grammarName]
	return nr, ok
}

// Match returns the result of the first grammar, in table order, that matches
// the whole of name.
func (t *Table) Match(name string) (MatchResult, bool) {
	for _, nr := range t.entries {
		if res, ok := t.try(nr, name); ok {
			return res, true
		}
	}
	glog.V(2).Infof("%q matched nothing in %s", name, t.name)
	return MatchResult{}, false
}

// MatchAll returns the result of every grammar that matches name, in table
// order.
func (t *Table) MatchAll(name string) []MatchResult {
	var results []MatchResult
	for _, nr := range t.entries {
		if res, ok := t.try(nr, name); ok {
			results = append(results, res)
		}
	}
	return results
}

func (t *Table) try(nr *NameRegex, name string) (MatchResult, bool) {
	glog.V(3).Infof("trying %s/%s on %q", t.name, nr.Name, name)
	res, ok, err := nr.match(name)
	if err != nil {
		glog.Warningf("grammar %s/%s gave up on %q: %v", t.name, nr.Name, name, err)
		return MatchResult{}, false
	}
	if ok {
		glog.V(2).Infof("%q matched %s/%s: %v", name, t.name, nr.Name, res.Fields)
	}
	return res, ok
}

// Match matches name against StandardTable.
func Match(name string) (MatchResult, bool) {
	return StandardTable.Match(name)
}
