package quality

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"sync"
)

type Quality int64

// Episode Quality Enum
const (
	UNKNOWN      Quality = 0
	SDTV         Quality = 10
	SDDVD        Quality = 100
	HDTV         Quality = 200
	RAWHDTV      Quality = 300
	FULLHDTV     Quality = 400
	HDWEBDL      Quality = 500
	FULLHDWEBDL  Quality = 600
	HDBLURAY     Quality = 700
	FULLHDBLURAY Quality = 800
)

var ALL_HD_QUALITIES = []Quality{
	HDTV,
	RAWHDTV,
	FULLHDTV,
	HDWEBDL,
	FULLHDWEBDL,
	HDBLURAY,
	FULLHDBLURAY,
}

var qualities = map[string]Quality{
	"Unknown":      UNKNOWN,
	"SD TV":        SDTV,
	"SD DVD":       SDDVD,
	"HD TV":        HDTV,
	"RawHD TV":     RAWHDTV,
	"1080p HD TV":  FULLHDTV,
	"720p WEB-DL":  HDWEBDL,
	"1080p WEB-DL": FULLHDWEBDL,
	"720p BluRay":  HDBLURAY,
	"1080p BluRay": FULLHDBLURAY,
}

// Exact labels are looked for best first, so "1080p HD TV" is never taken
// for "HD TV".
var exactOrder = []Quality{
	FULLHDBLURAY,
	HDBLURAY,
	FULLHDWEBDL,
	HDWEBDL,
	FULLHDTV,
	RAWHDTV,
	HDTV,
	SDDVD,
	SDTV,
}

var exactRegexes = func() map[Quality]*regexp.Regexp {
	m := make(map[Quality]*regexp.Regexp, len(exactOrder))
	for _, q := range exactOrder {
		regexStr := strings.Replace(regexp.QuoteMeta(q.String()), " ", `\W`, -1)
		regexStr = `\W` + regexStr + `($|[\W])` // Either non-word or end of line
		m[q] = regexp.MustCompile(regexStr)
	}
	return m
}()

func (q Quality) MarshalJSON() ([]byte, error) {
	return json.Marshal(q.String())
}

// UnmarshalText reads a quality label such as "720p WEB-DL".
func (q *Quality) UnmarshalText(text []byte) error {
	v, err := QualityFromString(string(text))
	if err != nil {
		return err
	}
	*q = v
	return nil
}

// String() function will return the english quality name
func (quality Quality) String() string {
	for k, v := range qualities {
		if v == quality {
			return k
		}
	}
	return ""
}

func QualityFromString(s string) (Quality, error) {
	if val, ok := qualities[s]; ok {
		return val, nil
	}

	return UNKNOWN, fmt.Errorf("Unknown Quality String: %s", s)
}

func QualityFromInt(i int64) (Quality, error) {
	for _, q := range qualities {
		if i == int64(q) {
			return q, nil
		}
	}
	return UNKNOWN, fmt.Errorf("'%d' doesn't map to a known Quality", i)
}

// QualityFromName guesses the quality of a release from its name.
func QualityFromName(name string, anime bool) Quality {
	// Search for exact match in a file string:
	for _, qual := range exactOrder {
		if exactRegexes[qual].MatchString(name) {
			return qual
		}
	}
	if anime {
		return guessAnimeQualityFromName(name)
	}
	return guessQualityFromName(name)
}

// regexCache holds the heuristic patterns, compiled on first use.
type regexCache struct {
	mu    sync.RWMutex
	cache map[string]*regexp.Regexp
}

var heuristics = &regexCache{cache: map[string]*regexp.Regexp{}}

func (rc *regexCache) get(pattern string) *regexp.Regexp {
	rc.mu.RLock()
	re, ok := rc.cache[pattern]
	rc.mu.RUnlock()
	if ok {
		return re
	}

	rc.mu.Lock()
	defer rc.mu.Unlock()
	if re, ok := rc.cache[pattern]; ok {
		return re
	}
	re = regexp.MustCompile(`(?i)` + pattern)
	rc.cache[pattern] = re
	return re
}

func checkName(name string, regexStrings ...string) bool {
	for _, regexStr := range regexStrings {
		if heuristics.get(regexStr).MatchString(name) {
			return true
		}
	}
	return false
}

func checkNameAll(name string, regexStrings ...string) bool {
	for _, regexStr := range regexStrings {
		if !heuristics.get(regexStr).MatchString(name) {
			return false
		}
	}
	return true
}

func guessAnimeQualityFromName(name string) Quality {
	dvd := checkName(name, "dvd", "dvdrip")
	bluray := checkName(name, "bluray", "blu-ray", "BD")
	sdOptions := checkName(name, "360p", "480p", "848x480", "XviD")
	hdOptions := checkName(name, "720p", "1280x720", "960x720")
	fullHD := checkName(name, "1080p", "1920x1080")
	switch {
	case sdOptions && !bluray && !dvd:
		return SDTV
	case dvd:
		return SDDVD
	case hdOptions && !bluray && !fullHD:
		return HDTV
	case fullHD && !bluray && !hdOptions:
		return FULLHDTV
	case bluray && hdOptions && !fullHD:
		return HDBLURAY
	case bluray && fullHD && !hdOptions:
		return FULLHDBLURAY
	}
	return UNKNOWN
}

// Copied from Sickbeard/Rage
func guessQualityFromName(name string) Quality {
	if checkNameAll(name, "(pdtv|hdtv|dsr|tvrip).(xvid|x264|h.?264)") && !checkNameAll(name, "(720|1080)[pi]") && !checkName(name, "hr.ws.pdtv.x264") {
		return SDTV
	} else if checkNameAll(name, "web.dl|webrip", "xvid|x264|h.?264") && !checkNameAll(name, "(720|1080)[pi]") {
		return SDTV
	} else if checkName(name, "(dvdrip|b[r|d]rip)(.ws)?.(xvid|divx|x264)") && !checkNameAll(name, "(720|1080)[pi]") {
		return SDDVD
	} else if (checkNameAll(name, "720p", "hdtv", "[hx]264") || checkName(name, "hr.ws.pdtv.x264")) && !checkNameAll(name, "(1080)[pi]") {
		return HDTV
	} else if checkNameAll(name, "720p|1080i", "hdtv", "mpeg-?2") || checkNameAll(name, "1080[pi].hdtv", "h.?264") {
		return RAWHDTV
	} else if checkNameAll(name, "1080p", "hdtv", "x264") {
		return FULLHDTV
	} else if checkNameAll(name, "720p", "web.dl|webrip") || checkNameAll(name, "720p", "itunes", "h.?264") {
		return HDWEBDL
	} else if checkNameAll(name, "1080p", "web.dl|webrip") || checkNameAll(name, "1080p", "itunes", "h.?264") {
		return FULLHDWEBDL
	} else if checkNameAll(name, "720p", "bluray|hddvd|b[r|d]rip", "x264") {
		return HDBLURAY
	} else if checkNameAll(name, "1080p", "bluray|hddvd|b[r|d]rip", "x264") {
		return FULLHDBLURAY
	}
	return UNKNOWN
}
