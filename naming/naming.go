package naming

import (
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/dlclark/regexp2"
	"github.com/golang/glog"
	"github.com/hobeone/tvnames/quality"
	"golang.org/x/text/unicode/norm"
)

// ErrNoMatch is returned when no grammar in the parser's table matches.
var ErrNoMatch = errors.New("no naming grammar matched")

// maxEpisodeSpan caps how far a first..last episode pair is expanded.
const maxEpisodeSpan = 100

var (
	mediaExtensions = []string{
		"avi", "mkv", "mpg", "mpeg", "wmv",
		"ogm", "mp4", "iso", "img", "divx",
		"m2ts", "m4v", "ts", "flv", "f4v",
		"mov", "rmvb", "vob", "dvr-ms", "wtv",
		"ogv", "3gp", "webm",
	}

	sampleRegex   = regexp.MustCompile(`(?i)(^|[\W_])(sample\d*)[\W_]`)
	extrasRegex   = regexp.MustCompile(`(?i)extras?$`)
	ordinalRegex  = regexp.MustCompile(`(?i)(\d)(st|nd|rd|th)\b`)
	dateSeparator = regexp.MustCompile(`[. _-]+`)
	dateNumber    = regexp.MustCompile(`^[0-9]{1,4}$`)
	dateYear      = regexp.MustCompile(`^[0-9]{4}$`)

	animeGrammars = map[string]bool{}
)

func init() {
	for _, r := range AnimeRegexes {
		animeGrammars[r.Name] = true
	}
}

// IsMediaExtension checks if the given string matches a known Media file
// extension.
func IsMediaExtension(extension string) bool {
	return isMediaExtension(extension, nil)
}

func isMediaExtension(extension string, extra []string) bool {
	extension = strings.TrimLeft(extension, ".")
	extension = strings.ToLower(extension)
	for _, ext := range mediaExtensions {
		if ext == extension {
			return true
		}
	}
	for _, ext := range extra {
		if strings.ToLower(strings.TrimLeft(ext, ".")) == extension {
			return true
		}
	}
	return false
}

func stripExtension(fname string) string {
	extension := filepath.Ext(fname)
	return fname[0 : len(fname)-len(extension)]
}

// IsMediaFile checks if the given string is a media file
func IsMediaFile(filename string) bool {
	return isMediaFile(filename, nil, true)
}

func isMediaFile(filename string, extra []string, ignoreSamples bool) bool {
	// ignore samples
	if ignoreSamples && sampleRegex.MatchString(filename) {
		return false
	}
	// ignore Mac resource fork files
	if strings.HasPrefix(filename, "._") {
		return false
	}

	extension := filepath.Ext(filename)
	name := stripExtension(filename)

	if extrasRegex.MatchString(name) {
		return false
	}

	return isMediaExtension(extension, extra)
}

/*
*
* Name Parser
 */

// ParseResult is the typed form of a match.
type ParseResult struct {
	OriginalName           string
	SeriesName             string
	Show                   string
	SeriesNumber           int64
	SeasonNumber           int64
	EpisodeNumbers         []int64
	ExtraInfo              string
	ReleaseGroup           string
	AirDate                time.Time
	AbsoluteEpisodeNumbers []int64
	Quality                quality.Quality
	Version                string
	CRC                    string
	Anime                  bool
	RegexUsed              string
}

// NameParser turns release and file names into ParseResults using a Table.
type NameParser struct {
	Table           *Table
	MediaExtensions []string // on top of the builtin list
	IgnoreSamples   bool
}

// NewNameParser returns a parser over table, or StandardTable if nil.
func NewNameParser(table *Table) *NameParser {
	if table == nil {
		table = StandardTable
	}
	return &NameParser{
		Table:         table,
		IgnoreSamples: true,
	}
}

// IsMediaFile is the package level IsMediaFile with the parser's extra
// extensions and sample handling.
func (np *NameParser) IsMediaFile(filename string) bool {
	return isMediaFile(filename, np.MediaExtensions, np.IgnoreSamples)
}

// ParseString parses a single name.  The first grammar, in table order, whose
// captures convert cleanly wins.
func (np *NameParser) ParseString(name string) (ParseResult, error) {
	var lastErr error
	for _, m := range np.Table.MatchAll(name) {
		pr, err := toParseResult(name, m)
		if err != nil {
			glog.Errorf("Error converting %s match of %s: %v", m.PatternName, name, err)
			lastErr = err
			continue
		}
		return pr, nil
	}
	if lastErr != nil {
		return ParseResult{}, fmt.Errorf("%w: %s: %v", ErrNoMatch, name, lastErr)
	}
	return ParseResult{}, fmt.Errorf("%w: %s", ErrNoMatch, name)
}

func toParseResult(name string, m MatchResult) (ParseResult, error) {
	pr := ParseResult{
		OriginalName: name,
		RegexUsed:    m.PatternName,
		Anime:        animeGrammars[m.PatternName],
	}

	if v, ok := m.Get(FieldSeriesName); ok {
		pr.SeriesName = v
		pr.Show = CleanSeriesName(v)
	}
	if v, ok := m.Get(FieldSeriesNum); ok {
		n, err := parseNumber(v)
		if err != nil {
			return pr, err
		}
		pr.SeriesNumber = n
	}
	if v, ok := m.Get(FieldSeasonNum); ok {
		n, err := parseNumber(v)
		if err != nil {
			return pr, err
		}
		pr.SeasonNumber = n
	}
	if v, ok := m.Get(FieldEpNum); ok {
		eps, err := episodeNumbers(v, m.All(FieldExtraEpNum))
		if err != nil {
			return pr, err
		}
		pr.EpisodeNumbers = eps
	}
	if v, ok := m.Get(FieldEpAbNum); ok {
		eps, err := episodeNumbers(v, m.All(FieldExtraAbEpNum))
		if err != nil {
			return pr, err
		}
		pr.AbsoluteEpisodeNumbers = eps
	}
	if v, ok := m.Get(FieldAirDate); ok {
		d, err := ParseAirDate(v)
		if err != nil {
			return pr, err
		}
		pr.AirDate = d
	}
	pr.ExtraInfo = m.Fields[FieldExtraInfo]
	pr.ReleaseGroup = m.Fields[FieldReleaseGroup]
	pr.Version = m.Fields[FieldVersion]
	pr.CRC = m.Fields[FieldCRC]
	pr.Quality = quality.QualityFromName(name, pr.Anime)
	return pr, nil
}

// episodeNumbers turns a first episode and any further ones into a list.  A
// first..last pair within maxEpisodeSpan is filled in, so 1x02-04 is 2, 3, 4.
func episodeNumbers(first string, extra []string) ([]int64, error) {
	ep, err := parseNumber(first)
	if err != nil {
		return nil, err
	}
	nums := []int64{ep}
	for _, e := range extra {
		n, err := parseNumber(e)
		if err != nil {
			return nil, err
		}
		nums = append(nums, n)
	}
	last := nums[len(nums)-1]
	if len(nums) == 1 || last <= ep || last-ep > maxEpisodeSpan {
		return nums, nil
	}
	span := make([]int64, 0, last-ep+1)
	for i := ep; i <= last; i++ {
		span = append(span, i)
	}
	return span, nil
}

func parseNumber(s string) (int64, error) {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, nil
	}
	return RomanToInt(s)
}

var romanValues = map[rune]int64{
	'I': 1, 'V': 5, 'X': 10, 'L': 50, 'C': 100, 'D': 500, 'M': 1000,
}

// RomanToInt converts a roman numeral (any case) to an integer.
func RomanToInt(s string) (int64, error) {
	if s == "" {
		return 0, fmt.Errorf("empty roman numeral")
	}
	var total, prev int64
	runes := []rune(strings.ToUpper(s))
	for i := len(runes) - 1; i >= 0; i-- {
		v, ok := romanValues[runes[i]]
		if !ok {
			return 0, fmt.Errorf("%q is not a number", s)
		}
		if v < prev {
			total -= v
		} else {
			total += v
			prev = v
		}
	}
	return total, nil
}

// ParseAirDate reads the dates scene releases use: 2010.11.23, 2010-11-23,
// 23 November 2010, 23rd Nov 2010, 11.23.2010 and so on. The year has to
// come first or last. Month first wins when day and month are ambiguous.
func ParseAirDate(s string) (time.Time, error) {
	clean := ordinalRegex.ReplaceAllString(strings.TrimSpace(s), "$1")
	parts := dateSeparator.Split(clean, -1)
	if len(parts) != 3 || !(dateYear.MatchString(parts[0]) || dateYear.MatchString(parts[2])) {
		return time.Time{}, fmt.Errorf("couldn't parse %q as a date", s)
	}

	// dateparse wants 2010/11/23 or 23 Nov 2010, not underscores or 23-11-2010
	sep := " "
	if dateNumber.MatchString(parts[0]) && dateNumber.MatchString(parts[1]) && dateNumber.MatchString(parts[2]) {
		sep = "/"
	}
	d, err := dateparse.ParseIn(strings.Join(parts, sep), time.UTC, dateparse.RetryAmbiguousDateWithSwap(true))
	if err != nil {
		return time.Time{}, fmt.Errorf("couldn't parse %q as a date: %w", s, err)
	}
	// the day/month swap retry parses in time.Local
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC), nil
}

var seriesNameCleaners = []struct {
	re   *regexp2.Regexp
	repl string
}{
	{regexp2.MustCompile(`(\D)\.(?!\s)(\D)`, regexp2.None), "$1 $2"},
	{regexp2.MustCompile(`(\d)\.(\d{4})`, regexp2.None), "$1 $2"},
	{regexp2.MustCompile(`(\D)\.(?!\s)`, regexp2.None), "$1 "},
	{regexp2.MustCompile(`\.(?!\s)(\D)`, regexp2.None), " $1"},
	{regexp2.MustCompile(`_`, regexp2.None), " "},
	{regexp2.MustCompile(`-$`, regexp2.None), ""},
	{regexp2.MustCompile(`^\[.*?\]`, regexp2.None), ""},
}

// CleanSeriesName turns a captured series name into something readable:
// Show.Name.2010 becomes Show Name 2010.
func CleanSeriesName(name string) string {
	clean := norm.NFKC.String(name)
	for _, c := range seriesNameCleaners {
		out, err := c.re.Replace(clean, c.repl, -1, -1)
		if err != nil {
			glog.Warningf("cleaning series name %q: %v", name, err)
			continue
		}
		clean = out
	}
	return strings.Join(strings.Fields(clean), " ")
}

// Parse tries to extract show and episode information from a file path.
func (np *NameParser) Parse(name string) ParseResult {
	dirName, fileName := filepath.Split(name)
	fileName = stripExtension(fileName)
	dirNameBase := filepath.Base(dirName)

	fileNameResult, _ := np.ParseString(fileName)
	dirNameResult, _ := np.ParseString(dirNameBase)
	finalRes, _ := np.ParseString(name)

	combineResults(&finalRes, &fileNameResult, &dirNameResult, "AirDate")
	combineResults(&finalRes, &fileNameResult, &dirNameResult, "AbsoluteEpisodeNumbers")
	combineResults(&finalRes, &fileNameResult, &dirNameResult, "SeasonNumber")
	combineResults(&finalRes, &fileNameResult, &dirNameResult, "EpisodeNumbers")
	combineResults(&finalRes, &fileNameResult, &dirNameResult, "SeriesNumber")
	combineResults(&finalRes, &fileNameResult, &dirNameResult, "Quality")
	combineResults(&finalRes, &fileNameResult, &dirNameResult, "CRC")
	combineResults(&finalRes, &fileNameResult, &dirNameResult, "RegexUsed")
	combineResults(&finalRes, &fileNameResult, &dirNameResult, "Anime")
	combineResults(&finalRes, &dirNameResult, &fileNameResult, "SeriesName")
	combineResults(&finalRes, &dirNameResult, &fileNameResult, "Show")
	combineResults(&finalRes, &dirNameResult, &fileNameResult, "ExtraInfo")
	combineResults(&finalRes, &dirNameResult, &fileNameResult, "ReleaseGroup")
	combineResults(&finalRes, &dirNameResult, &fileNameResult, "Version")
	finalRes.OriginalName = name
	return finalRes
}

// From src/pkg/encoding/json.
func isEmptyValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return v.Len() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Interface, reflect.Ptr:
		return v.IsNil()
	case reflect.Struct:
		return v.IsZero()
	}
	return false
}

// combineResults sets field on finalRes from preferred, falling back to
// other.  finalRes keeps its own value when both are empty.
func combineResults(finalRes, preferred, other *ParseResult, field string) error {
	r := reflect.Indirect(reflect.ValueOf(finalRes)).FieldByName(field)
	pVal := reflect.Indirect(reflect.ValueOf(preferred)).FieldByName(field)
	oVal := reflect.Indirect(reflect.ValueOf(other)).FieldByName(field)

	if !r.IsValid() || !pVal.IsValid() || !oVal.IsValid() {
		return fmt.Errorf("Invalid field name given: %s", field)
	}

	if r.CanSet() {
		if !isEmptyValue(pVal) {
			r.Set(pVal)
		} else if !isEmptyValue(oVal) {
			r.Set(oVal)
		}
	}

	return nil
}
