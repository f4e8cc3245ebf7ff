package config

import (
	"os/user"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/hobeone/tvnames/quality"
)

func TestReadConfigFailsOnNonExistingPath(t *testing.T) {
	c := NewConfig()
	path := "/does/not/exist"
	err := c.ReadConfig(path)
	if err == nil {
		t.Errorf("Expected PathError on non existing path: %s", path)
	}
}

func TestReadConfigFailsOnBadFormat(t *testing.T) {
	c := NewConfig()
	path := "testdata/bad_config.toml"
	err := c.ReadConfig(path)

	if err == nil {
		t.Fatal("Expected error on bad format config: ", path)
	}
	if !strings.Contains(err.Error(), "line 3") {
		t.Errorf("Expected error to point at line 3, got: %s", err)
	}
}

func TestReadConfigFailsOnUnknownKey(t *testing.T) {
	c := NewConfig()
	err := c.ReadConfig("testdata/unknown_key.toml")
	if err == nil {
		t.Fatal("Expected error on unknown config key")
	}
	if !strings.Contains(err.Error(), "database") {
		t.Errorf("Expected error to name the unknown key, got: %s", err)
	}
}

func TestReadConfigFailsOnUnknownQuality(t *testing.T) {
	c := NewConfig()
	if err := c.ReadConfig("testdata/bad_quality.toml"); err == nil {
		t.Fatal("Expected error on unknown quality label")
	}
}

func TestDefaultsGetOverridden(t *testing.T) {
	c := NewConfig()
	if c.Naming.Anime {
		t.Fatal("Expected Anime to be false")
	}
	if !c.Naming.IgnoreSamples {
		t.Fatal("Expected IgnoreSamples to default to true")
	}
	path := "testdata/test_config.toml"
	err := c.ReadConfig(path)
	if err != nil {
		t.Fatalf("Expected no errors when parsing: %s, got %s", path, err)
	}
	if !c.Naming.Anime {
		t.Fatal("Expected c.Naming.Anime to be true")
	}
	if c.Naming.MatchTimeout.Duration != 2*time.Second {
		t.Fatalf("Expected match timeout of 2s, got %s", c.Naming.MatchTimeout)
	}
	if c.Naming.IgnoreSamples {
		t.Fatal("Expected c.Naming.IgnoreSamples to be false")
	}
	wanted := c.WantedQualities()
	if !wanted.Includes(quality.HDWEBDL) || wanted.Includes(quality.HDTV) {
		t.Fatalf("Unexpected wanted qualities: %v", wanted.Qualities)
	}
}

func TestNameParserFromConfig(t *testing.T) {
	c := NewTestConfig()
	if err := c.ReadConfig("testdata/test_config.toml"); err != nil {
		t.Fatalf("Error reading config: %s", err)
	}
	np, err := c.NameParser()
	if err != nil {
		t.Fatalf("Error building parser: %s", err)
	}
	if np.Table.Name() != "all" {
		t.Errorf("Expected the anime grammars to be enabled, got table %s", np.Table.Name())
	}
	if np.Table.MatchTimeout() != 2*time.Second {
		t.Errorf("Expected match timeout of 2s, got %s", np.Table.MatchTimeout())
	}
	if !np.IsMediaFile("Show.S01E02.strm") {
		t.Error("Expected configured extension to count as media")
	}
	if !np.IsMediaFile("show.sample.mkv") {
		t.Error("Expected samples to be kept when ignore_samples is false")
	}

	r, err := np.ParseString("[Group Name] Show Name - 13")
	if err != nil {
		t.Fatalf("Error parsing anime name: %s", err)
	}
	if !r.Anime || len(r.AbsoluteEpisodeNumbers) != 1 || r.AbsoluteEpisodeNumbers[0] != 13 {
		t.Errorf("Unexpected anime parse: %+v", r)
	}
}

func TestDefaultNameParser(t *testing.T) {
	np, err := NewConfig().NameParser()
	if err != nil {
		t.Fatalf("Error building parser: %s", err)
	}
	if np.Table.Name() != "standard" {
		t.Errorf("Expected the standard table, got %s", np.Table.Name())
	}
	if np.IsMediaFile("show.sample.mkv") {
		t.Error("Expected samples to be ignored by default")
	}
}

func TestReplaceTildeInPath(t *testing.T) {
	usr, err := user.Current()
	if err != nil {
		t.Skipf("No current user: %s", err)
	}

	if got := replaceTildeInPath("~/tvnames.toml"); got != filepath.Join(usr.HomeDir, "tvnames.toml") {
		t.Errorf("Expected ~/ to expand to the home directory, got %s", got)
	}
	if got := replaceTildeInPath("~"); got != filepath.Clean(usr.HomeDir) {
		t.Errorf("Expected ~ to expand to the home directory, got %s", got)
	}
	for _, path := range []string{"/data/a~b/config.toml", "backup~/config.toml", "~other/config.toml"} {
		if got := replaceTildeInPath(path); got != path {
			t.Errorf("Expected %s to be left alone, got %s", path, got)
		}
	}
}
