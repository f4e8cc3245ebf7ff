package naming

// StandardRegexes is the ordered list of naming conventions tried against a
// release or file name. Earlier entries win: the multi-episode forms with a
// repeated season marker come before their single episode counterparts, and
// the loose catch-alls come last.
//
// Lifted from SickRage.
var StandardRegexes = []NameRegex{
	{
		Name: "standard_repeat",
		TestStrings: []TestString{
			{
				String:      "Show.Name.S01E02.S01E03.Source.Quality.Etc-Group",
				ShouldMatch: true,
				MatchGroups: map[string]string{
					"series_name":   "Show.Name",
					"season_num":    "01",
					"ep_num":        "02",
					"extra_ep_num":  "03",
					"extra_info":    "Source.Quality.Etc",
					"release_group": "Group",
				},
			},
			{
				String:      "Show Name - S01E02 - S01E03 - S01E04 - Ep Name",
				ShouldMatch: true,
				MatchGroups: map[string]string{
					"series_name":  "Show Name",
					"season_num":   "01",
					"ep_num":       "02",
					"extra_ep_num": "04",
					"extra_info":   "Ep Name",
				},
			},
			{
				// the repeated season has to be the same season
				String:      "Show.Name.S01E02.S02E03.Source.Quality.Etc-Group",
				ShouldMatch: false,
			},
		},
		Pattern: `^(?<series_name>.+?)[. _-]+` + //  Show_Name and separator
			`s(?<season_num>\d+)[. _-]*` + //  S01 and optional separator
			`e(?<ep_num>\d+)` + //  E02 and separator
			`([. _-]+s\k<season_num>[. _-]*` + //  S01 and optional separator
			`e(?<extra_ep_num>\d+))+` + //  E03/etc and separator
			`[. _-]*((?<extra_info>.+?)` + //  Source_Quality_Etc-
			`((?<![. _-])(?<!WEB)` + //  Make sure this is really the release group
			`-(?<release_group>[^- ]+([. _-]\[.*\])?))?)?$`, //  Group
	},
	{
		Name: "fov_repeat",
		TestStrings: []TestString{
			{
				String:      "Show.Name.1x02.1x03.Source.Quality.Etc-Group",
				ShouldMatch: true,
				MatchGroups: map[string]string{
					"series_name":   "Show.Name",
					"season_num":    "1",
					"ep_num":        "02",
					"extra_ep_num":  "03",
					"extra_info":    "Source.Quality.Etc",
					"release_group": "Group",
				},
			},
			{
				String:      "Show Name - 1x02 - 1x03 - 1x04 - Ep Name",
				ShouldMatch: true,
				MatchGroups: map[string]string{
					"series_name":  "Show Name",
					"season_num":   "1",
					"ep_num":       "02",
					"extra_ep_num": "04",
					"extra_info":   "Ep Name",
				},
			},
			{
				String:      "Show.Name.1x02.2x03.Source.Quality.Etc-Group",
				ShouldMatch: false,
			},
		},
		Pattern: `^(?<series_name>.+?)[. _-]+` + //  Show_Name and separator
			`(?<season_num>\d+)x` + //  1x
			`(?<ep_num>\d+)` + //  02 and separator
			`([. _-]+\k<season_num>x` + //  1x
			`(?<extra_ep_num>\d+))+` + //  03/etc and separator
			`[. _-]*((?<extra_info>.+?)` + //  Source_Quality_Etc-
			`((?<![. _-])(?<!WEB)` + //  Make sure this is really the release group
			`-(?<release_group>[^- ]+([. _-]\[.*\])?))?)?$`, //  Group
	},
	{
		Name: "standard",
		TestStrings: []TestString{
			{
				String:      "Show.Name.S01E02.Source.Quality.Etc-Group",
				ShouldMatch: true,
				MatchGroups: map[string]string{
					"series_name":   "Show.Name",
					"season_num":    "01",
					"ep_num":        "02",
					"extra_info":    "Source.Quality.Etc",
					"release_group": "Group",
				},
			},
			{
				String:      "Show Name - S01E02 - My Ep Name",
				ShouldMatch: true,
				MatchGroups: map[string]string{
					"series_name": "Show Name",
					"season_num":  "01",
					"ep_num":      "02",
					"extra_info":  "My Ep Name",
				},
			},
			{
				String:      "Show.Name.S01.E03.My.Ep.Name",
				ShouldMatch: true,
				MatchGroups: map[string]string{
					"series_name": "Show.Name",
					"season_num":  "01",
					"ep_num":      "03",
					"extra_info":  "My.Ep.Name",
				},
			},
			{
				String:      "Show.Name.S01E02E03.Source.Quality.Etc-Group",
				ShouldMatch: true,
				MatchGroups: map[string]string{
					"series_name":   "Show.Name",
					"season_num":    "01",
					"ep_num":        "02",
					"extra_ep_num":  "03",
					"extra_info":    "Source.Quality.Etc",
					"release_group": "Group",
				},
			},
			{
				String:      "Show Name - S01E02-03 - My Ep Name",
				ShouldMatch: true,
				MatchGroups: map[string]string{
					"series_name":  "Show Name",
					"season_num":   "01",
					"ep_num":       "02",
					"extra_ep_num": "03",
					"extra_info":   "My Ep Name",
				},
			},
			{
				String:      "Show.Name.S01.E02.E03",
				ShouldMatch: true,
				MatchGroups: map[string]string{
					"series_name":  "Show.Name",
					"season_num":   "01",
					"ep_num":       "02",
					"extra_ep_num": "03",
				},
			},
			{
				String:      "Show.Name.S01E02.720p.WEB-DL.x264-Group",
				ShouldMatch: true,
				MatchGroups: map[string]string{
					"series_name":   "Show.Name",
					"season_num":    "01",
					"ep_num":        "02",
					"extra_info":    "720p.WEB-DL.x264",
					"release_group": "Group",
				},
			},
			{
				String:      "Show.Name.S01E02.1080p.WEB-DL",
				ShouldMatch: true,
				MatchGroups: map[string]string{
					"series_name": "Show.Name",
					"season_num":  "01",
					"ep_num":      "02",
					"extra_info":  "1080p.WEB-DL",
				},
			},
			{
				String:      "Show.Name.S01E02.HDTV.x264-LOL[ettv]",
				ShouldMatch: true,
				MatchGroups: map[string]string{
					"series_name":   "Show.Name",
					"season_num":    "01",
					"ep_num":        "02",
					"extra_info":    "HDTV.x264",
					"release_group": "LOL[ettv]",
				},
			},
		},
		Pattern: `^((?<series_name>.+?)[. _-]+)?` + //  Show_Name and separator
			`(\()?s(?<season_num>\d+)[. _-]*` + //  S01 and optional separator
			`e(?<ep_num>\d+)(\))?` + //  E02 and separator
			`(([. _-]*e|-)` + //  linking e/- char
			`(?<extra_ep_num>(?!(1080|720|480)[pi])\d+)(\))?)*` + //  additional E03/etc
			`[. _-]*((?<extra_info>.+?)` + //  Source_Quality_Etc-
			`((?<![. _-])(?<!WEB)` + //  Make sure this is really the release group
			`-(?<release_group>[^- ]+([. _-]\[.*\])?))?)?$`, //  Group
	},
	{
		Name: "fov",
		TestStrings: []TestString{
			{
				String:      "Show_Name.1x02.Source_Quality_Etc-Group",
				ShouldMatch: true,
				MatchGroups: map[string]string{
					"series_name":   "Show_Name",
					"season_num":    "1",
					"ep_num":        "02",
					"extra_info":    "Source_Quality_Etc",
					"release_group": "Group",
				},
			},
			{
				String:      "Show Name - 1x02 - My Ep Name",
				ShouldMatch: true,
				MatchGroups: map[string]string{
					"series_name": "Show Name",
					"season_num":  "1",
					"ep_num":      "02",
					"extra_info":  "My Ep Name",
				},
			},
			{
				String:      "Show_Name.1x02x03x04.Source_Quality_Etc-Group",
				ShouldMatch: true,
				MatchGroups: map[string]string{
					"series_name":   "Show_Name",
					"season_num":    "1",
					"ep_num":        "02",
					"extra_ep_num":  "04",
					"extra_info":    "Source_Quality_Etc",
					"release_group": "Group",
				},
			},
			{
				String:      "Show Name - 1x02-03-04 - My Ep Name",
				ShouldMatch: true,
				MatchGroups: map[string]string{
					"series_name":  "Show Name",
					"season_num":   "1",
					"ep_num":       "02",
					"extra_ep_num": "04",
					"extra_info":   "My Ep Name",
				},
			},
			{
				String:      "Show.Name.2x05.720p.HDTV.x264-Group",
				ShouldMatch: true,
				MatchGroups: map[string]string{
					"series_name":   "Show.Name",
					"season_num":    "2",
					"ep_num":        "05",
					"extra_info":    "720p.HDTV.x264",
					"release_group": "Group",
				},
			},
		},
		Pattern: `^((?<series_name>.+?)[\[. _-]+)?` + //  Show_Name and separator
			`(?<season_num>\d+)x` + //  1x
			`(?<ep_num>\d+)` + //  02 and separator
			`(([. _-]*x|-)` + //  linking x/- char
			`(?<extra_ep_num>` +
			`(?!(1080|720|480)[pi])(?!(?<=x)264)` + //  ignore obviously wrong multi-eps
			`\d+))*` + //  additional x03/etc
			`[\]. _-]*((?<extra_info>.+?)` + //  Source_Quality_Etc-
			`((?<![. _-])(?<!WEB)` + //  Make sure this is really the release group
			`-(?<release_group>[^- ]+([. _-]\[.*\])?))?)?$`, //  Group
	},
	{
		Name: "scene_date_format",
		TestStrings: []TestString{
			{
				String:      "Show.Name.2010.11.23.Source.Quality.Etc-Group",
				ShouldMatch: true,
				MatchGroups: map[string]string{
					"series_name":   "Show.Name",
					"air_date":      "2010.11.23",
					"extra_info":    "Source.Quality.Etc",
					"release_group": "Group",
				},
			},
			{
				String:      "Show Name - 2010-11-23 - Ep Name",
				ShouldMatch: true,
				MatchGroups: map[string]string{
					"series_name": "Show Name",
					"air_date":    "2010-11-23",
					"extra_info":  "Ep Name",
				},
			},
			{
				String:      "Show Name - 23 November 2010 - Ep Name",
				ShouldMatch: true,
				MatchGroups: map[string]string{
					"series_name": "Show Name",
					"air_date":    "23 November 2010",
					"extra_info":  "Ep Name",
				},
			},
		},
		Pattern: `^((?<series_name>.+?)[. _-]+)?` + //  Show_Name and separator
			`(?<air_date>(\d+[. _-]\d+[. _-]\d+)|(\d+\w+[. _-]\w+[. _-]\d+))` +
			`[. _-]*((?<extra_info>.+?)` + //  Source_Quality_Etc-
			`((?<![. _-])(?<!WEB)` + //  Make sure this is really the release group
			`-(?<release_group>[^- ]+([. _-]\[.*\])?))?)?$`, //  Group
	},
	{
		// Every name this matches also matches scene_date_format, which is
		// tried first; it only wins when tried on its own.
		Name: "scene_sports_format",
		TestStrings: []TestString{
			{
				String:      "NFL.2010.11.23.Source.Quality.Etc-Group",
				ShouldMatch: true,
				MatchGroups: map[string]string{
					"series_name":   "NFL",
					"air_date":      "2010.11.23",
					"extra_info":    "Source.Quality.Etc",
					"release_group": "Group",
				},
			},
			{
				String:      "UFC.100.2010.11.23.HDTV-Grp",
				ShouldMatch: true,
				MatchGroups: map[string]string{
					"series_name":   "UFC",
					"series_num":    "100",
					"air_date":      "2010.11.23",
					"extra_info":    "HDTV",
					"release_group": "Grp",
				},
			},
			{
				String:      "NBA 23 Nov 2010 HDTV-Grp",
				ShouldMatch: true,
				MatchGroups: map[string]string{
					"series_name":   "NBA",
					"air_date":      "23 Nov 2010",
					"extra_info":    "HDTV",
					"release_group": "Grp",
				},
			},
			{
				String:      "Show.Name.2010.11.23.Source.Quality.Etc-Group",
				ShouldMatch: false,
			},
		},
		Pattern: `^(?<series_name>.*?(UEFA|MLB|ESPN|WWE|MMA|UFC|TNA|EPL|NASCAR|NBA|NFL|NHL|NRL|PGA|SUPER LEAGUE|FORMULA|FIFA|NETBALL|MOTOGP).*?)[. _-]+` +
			`((?<series_num>\d{1,3})[. _-]+)?` +
			`(?<air_date>(\d+[. _-]\d+[. _-]\d+)|(\d+\w+[. _-]\w+[. _-]\d+))[. _-]+` +
			`((?<extra_info>.+?)((?<![. _-])` +
			`(?<!WEB)-(?<release_group>[^- ]+([. _-]\[.*\])?))?)?$`,
	},
	{
		Name: "stupid",
		TestStrings: []TestString{
			{
				String:      "tpz-abc102",
				ShouldMatch: true,
				MatchGroups: map[string]string{
					"release_group": "tpz",
					"season_num":    "1",
					"ep_num":        "02",
				},
			},
		},
		Pattern: `^(?<release_group>.+?)-\w+?[\. ]?` + //  tpz-abc
			`(?!264)` + //  don't count x264
			`(?<season_num>\d{1,2})` + //  1
			`(?<ep_num>\d{2})$`, //  02
	},
	{
		Name: "verbose",
		TestStrings: []TestString{
			{
				String:      "Show Name Season 1 Episode 2 Ep Name",
				ShouldMatch: true,
				MatchGroups: map[string]string{
					"series_name": "Show Name",
					"season_num":  "1",
					"ep_num":      "2",
					"extra_info":  "Ep Name",
				},
			},
		},
		Pattern: `^(?<series_name>.+?)[. _-]+` + //  Show Name and separator
			`season[. _-]+` + //  season and separator
			`(?<season_num>\d+)[. _-]+` + //  1
			`episode[. _-]+` + //  episode and separator
			`(?<ep_num>\d+)[. _-]+` + //  02 and separator
			`(?<extra_info>.+)$`, //  Source_Quality_Etc-
	},
	{
		Name: "season_only",
		TestStrings: []TestString{
			{
				String:      "Show.Name.S01.Source.Quality.Etc-Group",
				ShouldMatch: true,
				MatchGroups: map[string]string{
					"series_name":   "Show.Name",
					"season_num":    "01",
					"extra_info":    "Source.Quality.Etc",
					"release_group": "Group",
				},
			},
			{
				String:      "Show.Name.Season.2.Complete-Group",
				ShouldMatch: true,
				MatchGroups: map[string]string{
					"series_name":   "Show.Name",
					"season_num":    "2",
					"extra_info":    "Complete",
					"release_group": "Group",
				},
			},
		},
		Pattern: `^((?<series_name>.+?)[. _-]+)?` + //  Show_Name and separator
			`s(eason[. _-])?` + //  S01/Season 01
			`(?<season_num>\d+)[. _-]*` + //  S01 and optional separator
			`[. _-]*((?<extra_info>.+?)` + //  Source_Quality_Etc-
			`((?<![. _-])(?<!WEB)` + //  Make sure this is really the release group
			`-(?<release_group>[^- ]+([. _-]\[.*\])?))?)?$`, //  Group
	},
	{
		Name: "no_season_multi_ep",
		TestStrings: []TestString{
			{
				String:      "Show.Name.E02-03",
				ShouldMatch: true,
				MatchGroups: map[string]string{
					"series_name":  "Show.Name",
					"ep_num":       "02",
					"extra_ep_num": "03",
				},
			},
			{
				// a year is not a second episode
				String:      "Show.Name.E02.2010",
				ShouldMatch: false,
			},
			{
				String:      "Show.Name.Episode.5.and.6.Src-Grp",
				ShouldMatch: true,
				MatchGroups: map[string]string{
					"series_name":   "Show.Name",
					"ep_num":        "5",
					"extra_ep_num":  "6",
					"extra_info":    "Src",
					"release_group": "Grp",
				},
			},
			{
				String:      "Show.Name.Part.1.to.3.Src-Grp",
				ShouldMatch: true,
				MatchGroups: map[string]string{
					"series_name":   "Show.Name",
					"ep_num":        "1",
					"extra_ep_num":  "3",
					"extra_info":    "Src",
					"release_group": "Grp",
				},
			},
		},
		Pattern: `^((?<series_name>.+?)[. _-]+)?` + //  Show_Name and separator
			`(e(p(isode)?)?|part|pt)[. _-]?` + //  e, ep, episode, or part
			`(?<ep_num>(\d+|[ivx]+))` + //  first ep num
			`((([. _-]+(and|&|to)[. _-]+)|-)` + //  and/&/to joiner
			`(?<extra_ep_num>(?!(1080|720|480)[pi])(\d+|[ivx]+))([. _-]|$))` + //  second ep num
			`([. _-]*(?<extra_info>.+?)` + //  Source_Quality_Etc-
			`((?<![. _-])(?<!WEB)` + //  Make sure this is really the release group
			`-(?<release_group>[^- ]+([. _-]\[.*\])?))?)?$`, //  Group
	},
	{
		Name: "no_season_general",
		TestStrings: []TestString{
			{
				String:      "Show.Name.E23.Test",
				ShouldMatch: true,
				MatchGroups: map[string]string{
					"series_name": "Show.Name",
					"ep_num":      "23",
					"extra_info":  "Test",
				},
			},
			{
				String:      "Show.Name.Part.3.Source.Quality.Etc-Group",
				ShouldMatch: true,
				MatchGroups: map[string]string{
					"series_name":   "Show.Name",
					"ep_num":        "3",
					"extra_info":    "Source.Quality.Etc",
					"release_group": "Group",
				},
			},
			{
				String:      "Show.Name.Part.1.and.Part.2.Blah-Group",
				ShouldMatch: true,
				MatchGroups: map[string]string{
					"series_name":   "Show.Name",
					"ep_num":        "1",
					"extra_ep_num":  "2",
					"extra_info":    "Blah",
					"release_group": "Group",
				},
			},
			{
				String:      "Show.Name.E02.2010",
				ShouldMatch: true,
				MatchGroups: map[string]string{
					"series_name": "Show.Name",
					"ep_num":      "02",
					"extra_info":  "2010",
				},
			},
			{
				String:      "Show.Name.Part.II.Source-Group",
				ShouldMatch: true,
				MatchGroups: map[string]string{
					"series_name":   "Show.Name",
					"ep_num":        "II",
					"extra_info":    "Source",
					"release_group": "Group",
				},
			},
		},
		Pattern: `^((?<series_name>.+?)[. _-]+)?` + //  Show_Name and separator
			`(e(p(isode)?)?|part|pt)[. _-]?` + //  e, ep, episode, or part
			`(?<ep_num>(\d+|([ivx]+(?=[. _-]))))` + //  first ep num
			`([. _-]+((and|&|to)[. _-]+)?` + //  and/&/to joiner
			`((e(p(isode)?)?|part|pt)[. _-]?)` + //  e, ep, episode, or part
			`(?<extra_ep_num>(?!(1080|720|480)[pi])` +
			`(\d+|([ivx]+(?=[. _-]))))[. _-])*` + //  second ep num
			`([. _-]*(?<extra_info>.+?)` + //  Source_Quality_Etc-
			`((?<![. _-])(?<!WEB)` + //  Make sure this is really the release group
			`-(?<release_group>[^- ]+([. _-]\[.*\])?))?)?$`, //  Group
	},
	{
		Name: "no_season",
		TestStrings: []TestString{
			{
				String:      "Show Name - 01 - Ep Name",
				ShouldMatch: true,
				MatchGroups: map[string]string{
					"series_name": "Show Name",
					"ep_num":      "01",
					"extra_info":  "Ep Name",
				},
			},
			{
				String:      "01 - Ep Name",
				ShouldMatch: true,
				MatchGroups: map[string]string{
					"ep_num":     "01",
					"extra_info": "Ep Name",
				},
			},
			{
				String:      "Show.Name.03of10.Src-Grp",
				ShouldMatch: true,
				MatchGroups: map[string]string{
					"series_name":   "Show.Name",
					"ep_num":        "03",
					"extra_info":    "Src",
					"release_group": "Grp",
				},
			},
			{
				// left for bare
				String:      "Show.Name.102.Source.Quality.Etc-Group",
				ShouldMatch: false,
			},
			{
				// a lone dot is not enough to end the episode number
				String:      "Show.Name.03.Src-Grp",
				ShouldMatch: false,
			},
		},
		Pattern: `^((?<series_name>.+?)(?:[. _-]{2,}|[. _]))?` + //  Show_Name and separator
			`(?<ep_num>\d{1,3})` + //  02
			`(?:-(?<extra_ep_num>\d{1,3}))*` + //  -03-04-05 etc
			`(?:\s?of\s?\d{1,3}[. _-]+|[. _-]{2,})` + //  "of" joiner and series total ep, or a spaced separator
			`((?<extra_info>.+?)` + //  Source_Quality_Etc-
			`((?<![. _-])(?<!WEB)` + //  Make sure this is really the release group
			`-(?<release_group>[^- ]+([. _-]\[.*\])?))?)?$`, //  Group
	},
	{
		Name: "bare",
		TestStrings: []TestString{
			{
				String:      "Show.Name.102.Source.Quality.Etc-Group",
				ShouldMatch: true,
				MatchGroups: map[string]string{
					"series_name":   "Show.Name",
					"season_num":    "1",
					"ep_num":        "02",
					"extra_info":    "Source.Quality.Etc",
					"release_group": "Group",
				},
			},
		},
		Pattern: `^(?<series_name>.+?)[. _-]+` + //  Show_Name and separator
			`(?<season_num>\d{1,2})` + //  1
			`(?<ep_num>\d{2})` + //  02 and separator
			`([. _-]+(?<extra_info>(?!\d{3}[. _-]+)[^-]+)` + //  Source_Quality_Etc-
			`(-(?<release_group>[^- ]+([. _-]\[.*\])?))?)?$`, //  Group
	},
}

// AnimeRegexes are the anime naming conventions: absolute episode numbers,
// bracketed release groups, CRC tags.
//
// Also from SickRage.
var AnimeRegexes = []NameRegex{
	{
		Name: "anime_ultimate",
		TestStrings: []TestString{
			{
				String:      "[Chihiro] Show Name - 03 [720p][B8C3B1CB].mkv",
				ShouldMatch: true,
				MatchGroups: map[string]string{
					"release_group": "Chihiro",
					"series_name":   "Show Name",
					"ep_ab_num":     "03",
					"extra_info":    "720p",
					"crc":           "B8C3B1CB",
				},
			},
		},
		Pattern: `^(?:\[(?<release_group>.+?)\][ ._-]*)` +
			`(?<series_name>.+?)[ ._-]+` +
			`(?<ep_ab_num>((?!(1080|720|480)[pi])|(?![hx].?264))\d{1,3})` +
			`(-(?<extra_ab_ep_num>((?!(1080|720|480)[pi])|(?![hx].?264))\d{1,3}))?[ ._-]+?` +
			`(?:v(?<version>[0-9]))?` +
			`(?:[\w\.]*)` +
			`(?:(?:(?:[\[\(])(?<extra_info>\d{3,4}[xp]?\d{0,4}[\.\w\s-]*)(?:[\]\)]))|(?:\d{3,4}[xp]))` +
			`(?:[ ._]?\[(?<crc>\w+)\])?` +
			`.*?$`,
	},
	{
		Name: "anime_standard",
		TestStrings: []TestString{
			{
				String:      "[Group Name] Show Name.13-14",
				ShouldMatch: true,
				MatchGroups: map[string]string{
					"release_group":   "Group Name",
					"series_name":     "Show Name",
					"ep_ab_num":       "13",
					"extra_ab_ep_num": "14",
				},
			},
			{
				String:      "[Group Name] Show Name - 13-14",
				ShouldMatch: true,
				MatchGroups: map[string]string{
					"release_group":   "Group Name",
					"series_name":     "Show Name",
					"ep_ab_num":       "13",
					"extra_ab_ep_num": "14",
				},
			},
			{
				String:      "Show Name - 13-14",
				ShouldMatch: true,
				MatchGroups: map[string]string{
					"series_name":     "Show Name",
					"ep_ab_num":       "13",
					"extra_ab_ep_num": "14",
				},
			},
			{
				String:      "[Group Name] Show Name.13",
				ShouldMatch: true,
				MatchGroups: map[string]string{
					"release_group": "Group Name",
					"series_name":   "Show Name",
					"ep_ab_num":     "13",
				},
			},
			{
				String:      "[Group Name] Show Name - 13",
				ShouldMatch: true,
				MatchGroups: map[string]string{
					"release_group": "Group Name",
					"series_name":   "Show Name",
					"ep_ab_num":     "13",
				},
			},
			{
				String:      "Show Name 13",
				ShouldMatch: true,
				MatchGroups: map[string]string{
					"series_name": "Show Name",
					"ep_ab_num":   "13",
				},
			},
		},
		Pattern: `^(\[(?<release_group>.+?)\][ ._-]*)?` + //  Release Group and separator
			`(?<series_name>.+?)[ ._-]+` + //  Show_Name and separator
			`(?<ep_ab_num>((?!(1080|720|480)[pi])|(?![hx].?264))\d{1,3})` + //  E01
			`(-(?<extra_ab_ep_num>((?!(1080|720|480)[pi])|(?![hx].?264))\d{1,3}))?` + //  E02
			`(v(?<version>[0-9]))?` + //  version
			`([ ._-]+\[(?<extra_info>\d{3,4}[xp]?\d{0,4}[\.\w\s-]*)\])?` + //  Source_Quality_Etc-
			`(\[(?<crc>\w{8})\])?` + //  CRC
			`.*?$`, //  Separator and EOL
	},
	{
		Name: "anime_standard_round",
		TestStrings: []TestString{
			{
				String:      "[Stratos-Subs]_Infinite_Stratos_-_12_(1280x720_H.264_AAC)_[379759DB]",
				ShouldMatch: true,
				MatchGroups: map[string]string{
					"release_group": "Stratos-Subs",
					"series_name":   "Infinite_Stratos",
					"ep_ab_num":     "12",
					"extra_info":    "1280x720_H.264_AAC",
				},
			},
			{
				String:      "[ShinBunBu-Subs] Bleach - 02-03 (CX 1280x720 x264 AAC)",
				ShouldMatch: true,
				MatchGroups: map[string]string{
					"release_group":   "ShinBunBu-Subs",
					"series_name":     "Bleach",
					"ep_ab_num":       "02",
					"extra_ab_ep_num": "03",
					"extra_info":      "CX 1280x720 x264 AAC",
				},
			},
		},
		Pattern: `^(\[(?<release_group>.+?)\][ ._-]*)?` + //  Release Group and separator
			`(?<series_name>.+?)[ ._-]+` + //  Show_Name and separator
			`(?<ep_ab_num>((?!(1080|720|480)[pi])|(?![hx].?264))\d{1,3})` + //  E01
			`(-(?<extra_ab_ep_num>((?!(1080|720|480)[pi])|(?![hx].?264))\d{1,3}))?` + //  E02
			`(v(?<version>[0-9]))?` + //  version
			`[ ._-]+\((?<extra_info>(CX[ ._-]?)?\d{3,4}[xp]?\d{0,4}[\.\w\s-]*)\)` + //  Source_Quality_Etc-
			`(\[(?<crc>\w{8})\])?` + //  CRC
			`.*?$`, //  Separator and EOL
	},
	{
		Name: "anime_slash",
		TestStrings: []TestString{
			{
				String:      "[SGKK] Bleach 312v1 [720p/MKV]",
				ShouldMatch: true,
				MatchGroups: map[string]string{
					"release_group": "SGKK",
					"series_name":   "Bleach",
					"ep_ab_num":     "312",
					"version":       "1",
					"extra_info":    "720p",
				},
			},
		},
		Pattern: `^(\[(?<release_group>.+?)\][ ._-]*)?` + //  Release Group and separator
			`(?<series_name>.+?)[ ._-]+` + //  Show_Name and separator
			`(?<ep_ab_num>((?!(1080|720|480)[pi])|(?![hx].?264))\d{1,3})` + //  E01
			`(-(?<extra_ab_ep_num>((?!(1080|720|480)[pi])|(?![hx].?264))\d{1,3}))?` + //  E02
			`(v(?<version>[0-9]))?` + //  version
			`[ ._-]+\[(?<extra_info>\d{3,4}p)` + //  Source_Quality_Etc-
			`(\[(?<crc>\w{8})\])?` + //  CRC
			`.*?$`, //  Separator and EOL
	},
	{
		Name: "anime_standard_codec",
		TestStrings: []TestString{
			{
				String:      "[Ayako]_Infinite_Stratos_-_IS_-_07_[H264][720p][EB7838FC]",
				ShouldMatch: true,
				MatchGroups: map[string]string{
					"release_group": "Ayako",
					"series_name":   "Infinite_Stratos",
					"ep_ab_num":     "07",
					"extra_info":    "720p",
					"crc":           "EB7838FC",
				},
			},
			{
				String:      "[Ayako] Infinite Stratos - IS - 07v2 [H264][720p][44419534]",
				ShouldMatch: true,
				MatchGroups: map[string]string{
					"release_group": "Ayako",
					"series_name":   "Infinite Stratos",
					"ep_ab_num":     "07",
					"version":       "2",
					"extra_info":    "720p",
					"crc":           "44419534",
				},
			},
			{
				String:      "[Ayako-Shikkaku] Oniichan no Koto Nanka Zenzen Suki Janain Dakara ne - 10 [LQ][h264][720p] [8853B21C]",
				ShouldMatch: true,
				MatchGroups: map[string]string{
					"release_group": "Ayako-Shikkaku",
					"series_name":   "Oniichan no Koto Nanka Zenzen Suki Janain Dakara ne",
					"ep_ab_num":     "10",
					"extra_info":    "720p",
				},
			},
		},
		Pattern: `^(\[(?<release_group>.+?)\][ ._-]*)?` + //  Release Group and separator
			`(?<series_name>.+?)[ ._]*` + //  Show_Name and separator
			`([ ._-]+-[ ._-]+[A-Z]+[ ._-]+)?[ ._-]+` + //  funny stuff, this is sooo nuts ! this will kick me in the butt one day
			`(?<ep_ab_num>((?!(1080|720|480)[pi])|(?![hx].?264))\d{1,3})` + //  E01
			`(-(?<extra_ab_ep_num>((?!(1080|720|480)[pi])|(?![hx].?264))\d{1,3}))?` + //  E02
			`(v(?<version>[0-9]))?` + //  version
			`([ ._-](\[\w{1,2}\])?\[[a-z][.]?\w{2,4}\])?` + // codec
			`[ ._-]*\[(?<extra_info>(\d{3,4}[xp]?\d{0,4})?[\.\w\s-]*)\]` + //  Source_Quality_Etc-
			`(\[(?<crc>\w{8})\])?` +
			`.*?$`, //  Separator and EOL
	},
	{
		Name: "anime_codec_crc",
		TestStrings: []TestString{
			{
				String:      "Show Name 07 [XviD]",
				ShouldMatch: true,
				MatchGroups: map[string]string{
					"series_name": "Show Name",
					"ep_ab_num":   "07",
					"codec":       "XviD",
				},
			},
		},
		Pattern: `^(?:\[(?<release_group>.*?)\][ ._-]*)?` +
			`(?:(?<series_name>.*?)[ ._-]*)?` +
			`(?:(?<ep_ab_num>(((?!(1080|720|480)[pi])|(?![hx].?264))\d{1,3}))[ ._-]*).+?` +
			`(?:\[(?<codec>.*?)\][ ._-]*)` +
			`(?:\[(?<crc>\w{8})\])?` +
			`.*?$`,
	},
	{
		Name: "anime_and_normal",
		TestStrings: []TestString{
			{
				String:      "Bleach - s16e03-04 - 313-314",
				ShouldMatch: true,
				MatchGroups: map[string]string{
					"series_name":     "Bleach",
					"season_num":      "16",
					"ep_num":          "03",
					"extra_ep_num":    "04",
					"ep_ab_num":       "313",
					"extra_ab_ep_num": "314",
				},
			},
			{
				String:      "Bleach.s16e03-04.313-314",
				ShouldMatch: true,
				MatchGroups: map[string]string{
					"series_name":     "Bleach",
					"season_num":      "16",
					"ep_num":          "03",
					"extra_ep_num":    "04",
					"ep_ab_num":       "313",
					"extra_ab_ep_num": "314",
				},
			},
			{
				String:      "Bleach s16e03e04 313-314",
				ShouldMatch: true,
				MatchGroups: map[string]string{
					"series_name":     "Bleach",
					"season_num":      "16",
					"ep_num":          "03",
					"extra_ep_num":    "04",
					"ep_ab_num":       "313",
					"extra_ab_ep_num": "314",
				},
			},
		},
		Pattern: `^(?<series_name>.+?)[ ._-]+` + //  start of string and series name and non optinal separator
			`[sS](?<season_num>\d+)[. _-]*` + //  S01 and optional separator
			`[eE](?<ep_num>\d+)` + //  epipisode E02
			`(([. _-]*e|-)` + //  linking e/- char
			`(?<extra_ep_num>\d+))*` + //  additional E03/etc
			`([ ._-]{2,}|[ ._]+)` + //  if "-" is used to separate at least something else has to be there(->{2,}) "s16e03-04-313-314" would make sens any way
			`((?<ep_ab_num>((?!(1080|720|480)[pi])|(?![hx].?264))\d{1,3}))?` + //  absolute number
			`(-(?<extra_ab_ep_num>((?!(1080|720|480)[pi])|(?![hx].?264))\d{1,3}))?` + //  "-" as separator and anditional absolute number, all optinal
			`(v(?<version>[0-9]))?` + //  the version e.g. "v2"
			`.*?$`,
	},
	{
		Name: "anime_and_normal_x",
		TestStrings: []TestString{
			{
				String:      "Bleach - s16x03-04 - 313-314",
				ShouldMatch: true,
				MatchGroups: map[string]string{
					"series_name":     "Bleach",
					"season_num":      "16",
					"ep_num":          "03",
					"extra_ep_num":    "04",
					"ep_ab_num":       "313",
					"extra_ab_ep_num": "314",
				},
			},
			{
				String:      "Bleach.s16x03-04.313-314",
				ShouldMatch: true,
				MatchGroups: map[string]string{
					"series_name":     "Bleach",
					"season_num":      "16",
					"ep_num":          "03",
					"extra_ep_num":    "04",
					"ep_ab_num":       "313",
					"extra_ab_ep_num": "314",
				},
			},
			{
				String:      "Bleach s16x03e04 313-314",
				ShouldMatch: true,
				MatchGroups: map[string]string{
					"series_name":     "Bleach",
					"season_num":      "16",
					"ep_num":          "03",
					"extra_ep_num":    "04",
					"ep_ab_num":       "313",
					"extra_ab_ep_num": "314",
				},
			},
		},
		Pattern: `^(?<series_name>.+?)[ ._-]+` + //  start of string and series name and non optinal separator
			`[sS](?<season_num>\d+)[. _-]*` + //  S01 and optional separator
			`[xX](?<ep_num>\d+)` + //  epipisode E02
			`(([. _-]*e|-)` + //  linking e/- char
			`(?<extra_ep_num>\d+))*` + //  additional E03/etc
			`([ ._-]{2,}|[ ._]+)` + //  if "-" is used to separate at least something else has to be there(->{2,}) "s16e03-04-313-314" would make sens any way
			`((?<ep_ab_num>((?!(1080|720|480)[pi])|(?![hx].?264))\d{1,3}))?` + //  absolute number
			`(-(?<extra_ab_ep_num>((?!(1080|720|480)[pi])|(?![hx].?264))\d{1,3}))?` + //  "-" as separator and anditional absolute number, all optinal
			`(v(?<version>[0-9]))?` + //  the version e.g. "v2"
			`.*?$`,
	},
	{
		Name: "anime_and_normal_reverse",
		TestStrings: []TestString{
			{
				String:      "Bleach - 313-314 - s16e03-04",
				ShouldMatch: true,
				MatchGroups: map[string]string{
					"series_name":     "Bleach",
					"ep_ab_num":       "313",
					"extra_ab_ep_num": "314",
					"season_num":      "16",
					"ep_num":          "03",
					"extra_ep_num":    "04",
				},
			},
		},
		Pattern: `^(?<series_name>.+?)[ ._-]+` + //  start of string and series name and non optinal separator
			`(?<ep_ab_num>((?!(1080|720|480)[pi])|(?![hx].?264))\d{1,3})` + //  absolute number
			`(-(?<extra_ab_ep_num>((?!(1080|720|480)[pi])|(?![hx].?264))\d{1,3}))?` + //  "-" as separator and anditional absolute number, all optinal
			`(v(?<version>[0-9]))?` + //  the version e.g. "v2"
			`([ ._-]{2,}|[ ._]+)` + //  if "-" is used to separate at least something else has to be there(->{2,}) "s16e03-04-313-314" would make sens any way
			`[sS](?<season_num>\d+)[. _-]*` + //  S01 and optional separator
			`[eE](?<ep_num>\d+)` + //  epipisode E02
			`(([. _-]*e|-)` + //  linking e/- char
			`(?<extra_ep_num>\d+))*` + //  additional E03/etc
			`.*?$`,
	},
	{
		Name: "anime_and_normal_front",
		TestStrings: []TestString{
			{
				String:      "165.Naruto Shippuuden.s08e014",
				ShouldMatch: true,
				MatchGroups: map[string]string{
					"ep_ab_num":   "165",
					"series_name": "Naruto Shippuuden",
					"season_num":  "08",
					"ep_num":      "014",
				},
			},
		},
		Pattern: `^(?<ep_ab_num>((?!(1080|720|480)[pi])|(?![hx].?264))\d{1,3})` + //  start of string and absolute number
			`(-(?<extra_ab_ep_num>((?!(1080|720|480)[pi])|(?![hx].?264))\d{1,3}))?` + //  "-" as separator and anditional absolute number, all optinal
			`(v(?<version>[0-9]))?[ ._-]+` + //  the version e.g. "v2"
			`(?<series_name>.+?)[ ._-]+` +
			`[sS](?<season_num>\d+)[. _-]*` + //  S01 and optional separator
			`[eE](?<ep_num>\d+)` +
			`(([. _-]*e|-)` + //  linking e/- char
			`(?<extra_ep_num>\d+))*` + //  additional E03/etc
			`.*?$`,
	},
	{
		Name: "anime_ep_name",
		TestStrings: []TestString{
			{
				String:      "[TzaTziki] One Piece - 279 - The Great Cannon [Hi10p][B8F26C98].mkv",
				ShouldMatch: true,
				MatchGroups: map[string]string{
					"release_group": "TzaTziki",
					"series_name":   "One Piece",
					"ep_ab_num":     "279",
					"extra_info":    "Hi10p",
					"crc":           "B8F26C98",
				},
			},
			{
				String:      "[Group] Show Name 05v2 [BD]",
				ShouldMatch: true,
				MatchGroups: map[string]string{
					"release_group": "Group",
					"series_name":   "Show Name",
					"ep_ab_num":     "05",
					"version":       "2",
					"extra_info":    "BD",
				},
			},
		},
		Pattern: `^(?:\[(?<release_group>.+?)\][ ._-]*)` +
			`(?<series_name>.+?)[ ._-]+` +
			`(?<ep_ab_num>((?!(1080|720|480)[pi])|(?![hx].?264))\d{1,3})` +
			`(-(?<extra_ab_ep_num>((?!(1080|720|480)[pi])|(?![hx].?264))\d{1,3}))?[ ._-]*?` +
			`(?:v(?<version>[0-9])[ ._-]+?)?` +
			`(?:.+?[ ._-]+?)?` +
			`\[(?<extra_info>\w+)\][ ._-]?` +
			`(?:\[(?<crc>\w{8})\])?` +
			`.*?$`,
	},
	{
		Name: "anime_bare",
		TestStrings: []TestString{
			{
				String:      "One Piece - 102",
				ShouldMatch: true,
				MatchGroups: map[string]string{
					"series_name": "One Piece",
					"ep_ab_num":   "102",
				},
			},
			{
				String:      "[ACX]_Wolf's_Spirit_001.mkv",
				ShouldMatch: true,
				MatchGroups: map[string]string{
					"release_group": "ACX",
					"series_name":   "Wolf's_Spirit",
					"ep_ab_num":     "001",
				},
			},
		},
		Pattern: `^(\[(?<release_group>.+?)\][ ._-]*)?` +
			`(?<series_name>.+?)[ ._-]+` + //  Show_Name and separator
			`(?<ep_ab_num>((?!(1080|720|480)[pi])|(?![hx].?264))\d{1,3})` + //  E01
			`(-(?<extra_ab_ep_num>((?!(1080|720|480)[pi])|(?![hx].?264))\d{1,3}))?` + //  E02
			`(v(?<version>[0-9]))?` + //  v2
			`.*?$`, //  Separator and EOL
	},
}
