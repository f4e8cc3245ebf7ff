package quality

import (
	"strconv"
	"strings"

	"github.com/golang/glog"
)

// QualityGroup represents a group of acceptable qualities.
type QualityGroup struct {
	Name      string    `json:"name"`
	Qualities []Quality `json:"qualities"`
}

// Includes returns true if the given Quality is included in the QualityGroup
func (qg QualityGroup) Includes(qual Quality) bool {
	for _, q := range qg.Qualities {
		if q == qual {
			return true
		}
	}
	return false
}

// String serializes the group's qualities to a CSV of ints.  Unknown values
// are dropped.
func (qg QualityGroup) String() string {
	strs := []string{}
	for _, value := range qg.Qualities {
		if value.String() == "" {
			glog.Warningf("Unknown Quality: '%v'", int64(value))
			continue
		}
		strs = append(strs, strconv.FormatInt(int64(value), 10))
	}
	return strings.Join(strs, ",")
}

// ParseQualityGroup is the inverse of QualityGroup.String.
func ParseQualityGroup(name, csv string) QualityGroup {
	qg := QualityGroup{Name: name, Qualities: []Quality{}}
	for _, s := range strings.Split(csv, ",") {
		i, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		if err != nil {
			continue
		}
		qual, err := QualityFromInt(i)
		if err != nil {
			glog.Warningf("Unknown Quality: '%v'", i)
			continue
		}
		qg.Qualities = append(qg.Qualities, qual)
	}
	return qg
}

var DefaultQualityGroup = QualityGroup{
	Name:      "DEFAULT_BUILTIN",
	Qualities: ALL_HD_QUALITIES,
}
