package naming

import (
	"strings"
	"testing"
	"time"

	"github.com/davecgh/go-spew/spew"
	. "github.com/onsi/gomega"
)

func TestRegexSamples(t *testing.T) {
	RegisterTestingT(t)

	for _, table := range []*Table{StandardTable, AnimeTable} {
		for _, grammar := range table.Names() {
			nr, ok := table.Lookup(grammar)
			Expect(ok).To(BeTrue())
			Expect(nr.TestStrings).ToNot(BeEmpty(), "%s has no samples", grammar)
			for _, ts := range nr.TestStrings {
				res, matched := nr.Match(ts.String)
				Expect(matched).To(Equal(ts.ShouldMatch), "%s on %q: %s", grammar, ts.String, spew.Sdump(res))
				if ts.ShouldMatch {
					Expect(res.PatternName).To(Equal(grammar))
					Expect(res.Fields).To(Equal(ts.MatchGroups), "%s on %q", grammar, ts.String)
				}
			}
		}
	}
}

func TestStandardTableOrder(t *testing.T) {
	RegisterTestingT(t)

	Expect(StandardTable.Names()).To(Equal([]string{
		"standard_repeat",
		"fov_repeat",
		"standard",
		"fov",
		"scene_date_format",
		"scene_sports_format",
		"stupid",
		"verbose",
		"season_only",
		"no_season_multi_ep",
		"no_season_general",
		"no_season",
		"bare",
	}))
	Expect(AllTable.Len()).To(Equal(StandardTable.Len() + AnimeTable.Len()))
	Expect(AllTable.Names()[:StandardTable.Len()]).To(Equal(StandardTable.Names()))
}

func TestMatch(t *testing.T) {
	RegisterTestingT(t)

	tests := []struct {
		name    string
		grammar string
		fields  map[string]string
	}{
		{
			"Show.Name.S01E02.Source.Quality.Etc-Group",
			"standard",
			map[string]string{
				"series_name":   "Show.Name",
				"season_num":    "01",
				"ep_num":        "02",
				"extra_info":    "Source.Quality.Etc",
				"release_group": "Group",
			},
		},
		{
			"Show_Name.1x02.Source_Quality_Etc-Group",
			"fov",
			map[string]string{
				"series_name":   "Show_Name",
				"season_num":    "1",
				"ep_num":        "02",
				"extra_info":    "Source_Quality_Etc",
				"release_group": "Group",
			},
		},
		{
			"Show.Name.2010.11.23.Source.Quality.Etc-Group",
			"scene_date_format",
			map[string]string{
				"series_name":   "Show.Name",
				"air_date":      "2010.11.23",
				"extra_info":    "Source.Quality.Etc",
				"release_group": "Group",
			},
		},
		{
			"Show.Name.S01E02.S01E03.Source.Quality.Etc-Group",
			"standard_repeat",
			map[string]string{
				"series_name":   "Show.Name",
				"season_num":    "01",
				"ep_num":        "02",
				"extra_ep_num":  "03",
				"extra_info":    "Source.Quality.Etc",
				"release_group": "Group",
			},
		},
		{
			"Show.Name.1x02.1x03.Source.Quality.Etc-Group",
			"fov_repeat",
			map[string]string{
				"series_name":   "Show.Name",
				"season_num":    "1",
				"ep_num":        "02",
				"extra_ep_num":  "03",
				"extra_info":    "Source.Quality.Etc",
				"release_group": "Group",
			},
		},
		{
			"tpz-abc102",
			"stupid",
			map[string]string{
				"release_group": "tpz",
				"season_num":    "1",
				"ep_num":        "02",
			},
		},
		{
			"Show Name Season 1 Episode 2 Ep Name",
			"verbose",
			map[string]string{
				"series_name": "Show Name",
				"season_num":  "1",
				"ep_num":      "2",
				"extra_info":  "Ep Name",
			},
		},
		{
			"Show.Name.S02",
			"season_only",
			map[string]string{
				"series_name": "Show.Name",
				"season_num":  "02",
			},
		},
		{
			"Show.Name.S01.Source.Quality.Etc-Group",
			"season_only",
			map[string]string{
				"series_name":   "Show.Name",
				"season_num":    "01",
				"extra_info":    "Source.Quality.Etc",
				"release_group": "Group",
			},
		},
		{
			"Show.Name.Part.1.and.Part.2.Blah-Group",
			"no_season_general",
			map[string]string{
				"series_name":   "Show.Name",
				"ep_num":        "1",
				"extra_ep_num":  "2",
				"extra_info":    "Blah",
				"release_group": "Group",
			},
		},
		{
			"Show.Name.102.Source.Quality.Etc-Group",
			"bare",
			map[string]string{
				"series_name":   "Show.Name",
				"season_num":    "1",
				"ep_num":        "02",
				"extra_info":    "Source.Quality.Etc",
				"release_group": "Group",
			},
		},
	}
	for _, test := range tests {
		res, ok := Match(test.name)
		Expect(ok).To(BeTrue(), "expected %q to match", test.name)
		Expect(res.PatternName).To(Equal(test.grammar), "%q: %s", test.name, spew.Sdump(res))
		Expect(res.Fields).To(Equal(test.fields), "%q", test.name)
	}
}

func TestMatchNothing(t *testing.T) {
	RegisterTestingT(t)

	for _, name := range []string{"", "not_a_valid_name_at_all", "Show.Name.S01E02\n"} {
		res, ok := Match(name)
		Expect(ok).To(BeFalse(), "%q: %s", name, spew.Sdump(res))
		Expect(AllTable.MatchAll(name)).To(BeEmpty())
	}
}

func TestMatchASCIIDigitsOnly(t *testing.T) {
	RegisterTestingT(t)

	for _, name := range []string{
		"Show.Name.S١٢E٠٣.x264-GRP",
		"Show.Name.S١٢E٠٣.Source-Group",
		"Show.Name.S１２E０３.Source-Group",
	} {
		res, ok := Match(name)
		Expect(ok).To(BeFalse(), "%q: %s", name, spew.Sdump(res))
		Expect(AllTable.MatchAll(name)).To(BeEmpty(), "%q", name)
	}

	res, ok := Match("Shōgun.S01E02.Source.Quality.Etc-Group")
	Expect(ok).To(BeTrue())
	Expect(res.PatternName).To(Equal("standard"))
	Expect(res.Fields).To(HaveKeyWithValue(FieldSeriesName, "Shōgun"))
	Expect(res.Fields).To(HaveKeyWithValue(FieldSeasonNum, "01"))
}

func TestMatchIsCaseInsensitive(t *testing.T) {
	RegisterTestingT(t)

	res, ok := Match("SHOW.NAME.S01E02.SOURCE.QUALITY.ETC-GROUP")
	Expect(ok).To(BeTrue())
	Expect(res.PatternName).To(Equal("standard"))
	Expect(res.Fields).To(Equal(map[string]string{
		"series_name":   "SHOW.NAME",
		"season_num":    "01",
		"ep_num":        "02",
		"extra_info":    "SOURCE.QUALITY.ETC",
		"release_group": "GROUP",
	}))

	lower, ok := Match("show.name.s01e02.source.quality.etc-group")
	Expect(ok).To(BeTrue())
	Expect(lower.PatternName).To(Equal(res.PatternName))
}

func TestRepeatedCaptures(t *testing.T) {
	RegisterTestingT(t)

	res, ok := Match("Show Name - S01E02 - S01E03 - S01E04 - Ep Name")
	Expect(ok).To(BeTrue())
	Expect(res.PatternName).To(Equal("standard_repeat"))

	last, ok := res.Get(FieldExtraEpNum)
	Expect(ok).To(BeTrue())
	Expect(last).To(Equal("04"))
	Expect(res.All(FieldExtraEpNum)).To(Equal([]string{"03", "04"}))
	Expect(res.All(FieldEpNum)).To(Equal([]string{"02"}))

	res, ok = Match("Show Name - 1x02-03-04 - My Ep Name")
	Expect(ok).To(BeTrue())
	Expect(res.PatternName).To(Equal("fov"))
	Expect(res.All(FieldExtraEpNum)).To(Equal([]string{"03", "04"}))
}

func TestRepeatRequiresSameSeason(t *testing.T) {
	RegisterTestingT(t)

	res, ok := Match("Show.Name.S01E02.S02E03.Source-Group")
	Expect(ok).To(BeTrue())
	Expect(res.PatternName).ToNot(Equal("standard_repeat"))

	res, ok = Match("Show.Name.1x02.2x03.Source-Group")
	Expect(ok).To(BeTrue())
	Expect(res.PatternName).ToNot(Equal("fov_repeat"))
}

func TestWebIsNotAReleaseGroup(t *testing.T) {
	RegisterTestingT(t)

	res, ok := Match("Show.Name.S01E02.1080p.WEB-DL")
	Expect(ok).To(BeTrue())
	Expect(res.PatternName).To(Equal("standard"))
	_, hasGroup := res.Get(FieldReleaseGroup)
	Expect(hasGroup).To(BeFalse())
	Expect(res.Fields[FieldExtraInfo]).To(Equal("1080p.WEB-DL"))
}

func TestAbsentFieldsAreOmitted(t *testing.T) {
	RegisterTestingT(t)

	res, ok := Match("Show Name - S01E02 - My Ep Name")
	Expect(ok).To(BeTrue())
	Expect(res.Fields).ToNot(HaveKey(FieldReleaseGroup))
	Expect(res.Fields).ToNot(HaveKey(FieldExtraEpNum))
	Expect(res.Captures).ToNot(HaveKey(FieldExtraEpNum))
	for k, v := range res.Fields {
		Expect(v).ToNot(BeEmpty(), "field %s", k)
	}
}

func TestFirstMatchWins(t *testing.T) {
	RegisterTestingT(t)

	// scene_sports_format would take this too, but scene_date_format is tried
	// first.
	name := "NFL.2010.11.23.Source.Quality.Etc-Group"
	sports, ok := StandardTable.Lookup("scene_sports_format")
	Expect(ok).To(BeTrue())
	_, ok = sports.Match(name)
	Expect(ok).To(BeTrue())

	res, ok := Match(name)
	Expect(ok).To(BeTrue())
	Expect(res.PatternName).To(Equal("scene_date_format"))

	all := StandardTable.MatchAll(name)
	Expect(all[0].PatternName).To(Equal("scene_date_format"))
	names := []string{}
	for _, r := range all {
		names = append(names, r.PatternName)
	}
	Expect(names).To(Equal([]string{"scene_date_format", "scene_sports_format", "bare"}))

	_, ok = sports.Match("Show.Name.2010.11.23.Source.Quality.Etc-Group")
	Expect(ok).To(BeFalse())
}

func TestAnimeAfterStandard(t *testing.T) {
	RegisterTestingT(t)

	res, ok := AllTable.Match("[SGKK] Bleach 312v1 [720p/MKV]")
	Expect(ok).To(BeTrue())
	Expect(res.PatternName).To(Equal("anime_standard"))
	Expect(res.Fields).To(Equal(map[string]string{
		"release_group": "SGKK",
		"series_name":   "Bleach",
		"ep_ab_num":     "312",
		"version":       "1",
	}))

	_, ok = StandardTable.Match("[Group Name] Show Name - 13")
	Expect(ok).To(BeFalse())
	res, ok = AllTable.Match("[Group Name] Show Name - 13")
	Expect(ok).To(BeTrue())
	Expect(res.PatternName).To(Equal("anime_standard"))
}

func TestNewTableErrors(t *testing.T) {
	RegisterTestingT(t)

	good := NameRegex{Name: "good", Pattern: `^(?<series_name>.+)$`}
	tests := map[string][]NameRegex{
		"no grammars":    nil,
		"compiling":      {{Name: "broken", Pattern: `^(?<series_name>.+$`}},
		"duplicate":      {good, good},
		"not anchored":   {{Name: "loose", Pattern: `(?<series_name>.+)`}},
		"unknown field":  {{Name: "odd", Pattern: `^(?<episode>\d+)$`}},
		"empty name":     {{Name: "", Pattern: `^(?<series_name>.+)$`}},
		"escaped dollar": {{Name: "cash", Pattern: `^(?<series_name>.+)\$`}},
	}
	for desc, entries := range tests {
		_, err := NewTable("test", StandardFields, entries)
		Expect(err).To(HaveOccurred(), desc)
	}

	_, err := NewTable("test", StandardFields, []NameRegex{good}, WithMatchTimeout(0))
	Expect(err).To(HaveOccurred())

	table, err := NewTable("test", StandardFields, []NameRegex{good}, WithMatchTimeout(time.Second))
	Expect(err).ToNot(HaveOccurred())
	Expect(table.MatchTimeout()).To(Equal(time.Second))
	nr, ok := table.Lookup("good")
	Expect(ok).To(BeTrue())
	Expect(nr.Fields()).To(Equal([]string{FieldSeriesName}))
	_, ok = table.Lookup("bad")
	Expect(ok).To(BeFalse())
}

func TestUncompiledNameRegexNeverMatches(t *testing.T) {
	RegisterTestingT(t)

	_, ok := StandardRegexes[0].Match("Show.Name.S01E02.S01E03.Source.Quality.Etc-Group")
	Expect(ok).To(BeFalse())
}

func TestMatchTimeoutSkipsGrammar(t *testing.T) {
	RegisterTestingT(t)

	table, err := NewTable("slow", StandardFields, []NameRegex{
		{Name: "catastrophic", Pattern: `^(?<series_name>(a+)+)$`},
		{Name: "anything", Pattern: `^(?<extra_info>.*)$`},
	}, WithMatchTimeout(10*time.Millisecond))
	Expect(err).ToNot(HaveOccurred())

	name := strings.Repeat("a", 40) + "!"
	res, ok := table.Match(name)
	Expect(ok).To(BeTrue())
	Expect(res.PatternName).To(Equal("anything"))
}
