package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"
)

const (
	testDataDir    = "testdata/data"
	testCollection = "testdata/collection.toml"
)

var publishedID = regexp.MustCompile(`Published as (\S+)`)

type CLITestSuite struct {
	suite.Suite
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

func TestCLISuite(t *testing.T) {
	suite.Run(t, new(CLITestSuite))
}

func (s *CLITestSuite) SetupTest() {
	s.stdout = &bytes.Buffer{}
	s.stderr = &bytes.Buffer{}
}

func (s *CLITestSuite) run(args ...string) int {
	s.stdout.Reset()
	s.stderr.Reset()
	return execute(context.Background(), args, s.stdout, s.stderr)
}

func (s *CLITestSuite) lines() []string {
	return strings.Split(strings.TrimRight(s.stdout.String(), "\n"), "\n")
}

func (s *CLITestSuite) TestRank() {
	code := s.run("rank", "--data-dir", testDataDir, "--collection", testCollection, "--no-color")
	s.Require().Equal(0, code, s.stderr.String())

	lines := s.lines()
	s.Require().Len(lines, 4)
	s.Contains(lines[1], "Pikachu")
	s.True(strings.HasSuffix(lines[1], "100.00%"))
	s.Contains(lines[2], "Mewtwo")
	s.True(strings.HasSuffix(lines[2], "46.00%"))
	// fully owned, but the table still offers rarities the expansion lacks
	s.Contains(lines[3], "Mythical Island")
	s.Contains(lines[3], "3/3")
	s.True(strings.HasSuffix(lines[3], "38.89%"))
}

func (s *CLITestSuite) TestRankVerbose() {
	code := s.run("rank", "--data-dir", testDataDir, "-c", testCollection, "-v", "--workers", "1")
	s.Require().Equal(0, code, s.stderr.String())

	s.Contains(s.stdout.String(), "FourDiamonds")
	s.Contains(s.stdout.String(), "slots 1-3")
}

func (s *CLITestSuite) TestRankLowestTierPolicyAndRescaledRates() {
	code := s.run("rank", "--data-dir", testDataDir, "-c", testCollection, "--no-color",
		"--policy", "lowest-tier", "--rescale-rates")
	s.Require().Equal(0, code, s.stderr.String())

	lines := s.lines()
	s.Require().Len(lines, 4)
	s.Contains(lines[2], "Mewtwo")
	s.True(strings.HasSuffix(lines[2], "25.54%"))
	s.Contains(lines[3], "Mythical Island")
	s.True(strings.HasSuffix(lines[3], "0.00%"))
}

func (s *CLITestSuite) TestRankErrors() {
	testCases := []struct {
		name     string
		args     []string
		exitCode int
		stderr   string
	}{
		{
			name:     "missing collection file",
			args:     []string{"rank", "--data-dir", testDataDir, "-c", "testdata/missing.toml"},
			exitCode: 2,
			stderr:   "CONFIG_NOT_FOUND",
		},
		{
			name:     "missing data directory",
			args:     []string{"rank", "--data-dir", "testdata/nowhere", "-c", testCollection},
			exitCode: 2,
			stderr:   "CONFIG_NOT_FOUND",
		},
		{
			name:     "unknown policy",
			args:     []string{"rank", "--data-dir", testDataDir, "-c", testCollection, "--policy", "average"},
			exitCode: 64,
			stderr:   "policy",
		},
		{
			name:     "unknown flag",
			args:     []string{"rank", "--colour"},
			exitCode: 64,
			stderr:   "invalid flags",
		},
		{
			name:     "publish without redis",
			args:     []string{"rank", "--data-dir", testDataDir, "-c", testCollection, "--publish", "--redis-addr", ""},
			exitCode: 64,
			stderr:   "--publish requires",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			code := s.run(tc.args...)
			s.Equal(tc.exitCode, code, s.stderr.String())
			s.Contains(s.stderr.String(), tc.stderr)
			s.True(strings.HasPrefix(s.stderr.String(), "Error: ") || strings.Contains(s.stderr.String(), "\nError: "))
		})
	}

	s.Run("collection flag is required", func() {
		s.NotEqual(0, s.run("rank", "--data-dir", testDataDir))
		s.Contains(s.stderr.String(), "collection")
	})
}

func (s *CLITestSuite) TestValidate() {
	s.Run("test data", func() {
		code := s.run("validate", "--data-dir", testDataDir, "--no-color")
		s.Require().Equal(0, code, s.stderr.String())
		s.Contains(s.stdout.String(), "genetic_apex, mythical_island")
		s.Contains(s.stdout.String(), "All offering rate tables are valid.")
	})

	s.Run("broken table", func() {
		dir := s.T().TempDir()
		s.copyData(dir)
		broken := "[standard.fourth_card]\n\"♢♢\" = 0.5\n\n[standard.fifth_card]\n\"♢♢\" = 1.0\n"
		s.Require().NoError(os.WriteFile(filepath.Join(dir, "offering_rates.toml"), []byte(broken), 0o600))

		code := s.run("validate", "--data-dir", dir, "--no-color")
		s.Equal(2, code)
		s.Contains(s.stdout.String(), "0.50000 !")
		s.Contains(s.stderr.String(), "failed validation")
	})
}

func (s *CLITestSuite) TestPacks() {
	code := s.run("packs", "--data-dir", testDataDir)
	s.Require().Equal(0, code, s.stderr.String())

	text := s.stdout.String()
	s.Contains(text, "genetic_apex")
	s.Contains(text, "Mewtwo")
	s.Contains(text, "Pikachu")
	s.Contains(text, "(whole expansion)")
}

func (s *CLITestSuite) TestPublishAndHistory() {
	mr := miniredis.RunT(s.T())

	code := s.run("rank", "--data-dir", testDataDir, "-c", testCollection, "--publish", "--redis-addr", mr.Addr())
	s.Require().Equal(0, code, s.stderr.String())

	match := publishedID.FindStringSubmatch(s.stdout.String())
	s.Require().Len(match, 2)
	id := match[1]
	s.True(strings.HasPrefix(id, snapshotIDPrefix+"_"))

	code = s.run("history", "--redis-addr", mr.Addr())
	s.Require().Equal(0, code, s.stderr.String())
	s.Contains(s.stdout.String(), id)
	s.Contains(s.stdout.String(), "genetic_apex/Pikachu (100.00%)")

	code = s.run("history", "--redis-addr", mr.Addr(), "--id", id, "--top", "2")
	s.Require().Equal(0, code, s.stderr.String())
	lines := s.lines()
	s.Contains(lines[0], id)
	s.Len(lines, 5)
	s.NotContains(s.stdout.String(), "mythical_island")
}

func (s *CLITestSuite) TestHistoryErrors() {
	s.Run("no redis configured", func() {
		s.Equal(1, s.run("history", "--redis-addr", ""))
		s.Contains(s.stderr.String(), "UNAVAILABLE")
	})

	s.Run("unknown ranking", func() {
		mr := miniredis.RunT(s.T())
		s.Equal(1, s.run("history", "--redis-addr", mr.Addr(), "--id", "rank_missing"))
		s.Contains(s.stderr.String(), "NOT_FOUND")
	})
}

func (s *CLITestSuite) copyData(dir string) {
	s.Require().NoError(os.CopyFS(dir, os.DirFS(testDataDir)))
}
