package catalog_test

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/pack-odds/internal/entities"
	"github.com/KirkDiggler/pack-odds/internal/errors"
	"github.com/KirkDiggler/pack-odds/internal/repositories/catalog"
)

const testExpansionsTOML = `
[genetic_apex]
name = "Genetic Apex"
packs = ["Mewtwo", "Charizard", "Pikachu"]
offering_rate_table = "standard"

[mythical_island]
name = "Mythical Island"
offering_rate_table = "standard"
`

const testGeneticApexCSV = `name,number,rarity,packs
Bulbasaur,1,♢,Mewtwo
Charmander,33,♢,Charizard
Snorlax,98,♢♢,Mewtwo|Charizard|Pikachu
Mewtwo ex,129,♢♢♢♢,Mewtwo
Mew,283,☆,
`

const testMythicalIslandCSV = `name,number,rarity,packs
Exeggcute,1,♢,
Mew ex,32,♢♢♢♢,
`

type FileCatalogTestSuite struct {
	suite.Suite
	ctx  context.Context
	fsys fstest.MapFS
}

func TestFileCatalogSuite(t *testing.T) {
	suite.Run(t, new(FileCatalogTestSuite))
}

func (s *FileCatalogTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.fsys = fstest.MapFS{
		"expansions.toml":           {Data: []byte(testExpansionsTOML)},
		"cards/genetic_apex.csv":    {Data: []byte(testGeneticApexCSV)},
		"cards/mythical_island.csv": {Data: []byte(testMythicalIslandCSV)},
	}
}

func (s *FileCatalogTestSuite) list() (*catalog.ListExpansionsOutput, error) {
	repo, err := catalog.NewFile(&catalog.FileConfig{FS: s.fsys})
	s.Require().NoError(err)
	return repo.ListExpansions(s.ctx, catalog.ListExpansionsInput{})
}

func (s *FileCatalogTestSuite) TestNewFile() {
	testCases := []struct {
		name    string
		config  *catalog.FileConfig
		wantErr bool
		errMsg  string
	}{
		{
			name:   "success with valid config",
			config: &catalog.FileConfig{FS: s.fsys},
		},
		{
			name:    "error with nil config",
			config:  nil,
			wantErr: true,
			errMsg:  "config cannot be nil",
		},
		{
			name:    "error with nil filesystem",
			config:  &catalog.FileConfig{},
			wantErr: true,
			errMsg:  "filesystem cannot be nil",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			repo, err := catalog.NewFile(tc.config)

			if tc.wantErr {
				s.Error(err)
				s.Contains(err.Error(), tc.errMsg)
				s.Nil(repo)
			} else {
				s.NoError(err)
				s.NotNil(repo)
			}
		})
	}
}

func (s *FileCatalogTestSuite) TestListExpansions() {
	out, err := s.list()
	s.Require().NoError(err)
	s.Require().Len(out.Expansions, 2)

	ga := out.Expansions["genetic_apex"]
	s.Require().NotNil(ga)
	s.Equal("Genetic Apex", ga.Name)
	s.Equal([]string{"Mewtwo", "Charizard", "Pikachu"}, ga.PackNames)
	s.Equal("standard", ga.OfferingRateTable)
	s.Len(ga.Cards, 5)

	snorlax := ga.Cards[98]
	s.Require().NotNil(snorlax)
	s.Equal("Snorlax", snorlax.Name)
	s.Equal(entities.TwoDiamonds, snorlax.Rarity)
	s.Equal([]string{"Charizard", "Mewtwo", "Pikachu"}, snorlax.PackNames())

	s.Empty(ga.Cards[283].Packs, "packless card")

	mi := out.Expansions["mythical_island"]
	s.Require().NotNil(mi)
	s.False(mi.HasPacks())
	s.Len(mi.CardsIn(""), 2)
}

func (s *FileCatalogTestSuite) TestPacksColumnIsOptional() {
	s.fsys["cards/mythical_island.csv"] = &fstest.MapFile{Data: []byte("number,name,rarity\n1,Exeggcute,♢\n")}

	out, err := s.list()
	s.Require().NoError(err)
	s.Equal("Exeggcute", out.Expansions["mythical_island"].Cards[1].Name)
}

func (s *FileCatalogTestSuite) TestMissingExpansionsFile() {
	delete(s.fsys, "expansions.toml")

	out, err := s.list()
	s.Nil(out)
	s.True(errors.IsConfigNotFound(err))
	s.Equal("expansions.toml", errors.GetMeta(err)["path"])
}

func (s *FileCatalogTestSuite) TestMissingCardsFile() {
	delete(s.fsys, "cards/mythical_island.csv")

	out, err := s.list()
	s.Nil(out)
	s.True(errors.IsConfigNotFound(err))
	s.Contains(err.Error(), "Mythical Island")
	s.Equal("mythical_island", errors.GetMeta(err)["expansion_id"])
	s.Equal("cards/mythical_island.csv", errors.GetMeta(err)["path"])
}

func (s *FileCatalogTestSuite) TestMalformedInput() {
	testCases := []struct {
		name  string
		file  string
		data  string
		check func(error) bool
		want  string
	}{
		{
			name:  "bad toml",
			file:  "expansions.toml",
			data:  "[genetic_apex\nname = ",
			check: errors.IsConfigParse,
			want:  "expansions.toml",
		},
		{
			name:  "unknown expansion field",
			file:  "expansions.toml",
			data:  "[a]\nname = \"A\"\noffering_rate_table = \"standard\"\nsecret = 1\n",
			check: errors.IsConfigParse,
		},
		{
			name:  "wrong field type",
			file:  "expansions.toml",
			data:  "[a]\nname = 3\noffering_rate_table = \"standard\"\n",
			check: errors.IsConfigParse,
		},
		{
			name:  "missing table name",
			file:  "expansions.toml",
			data:  "[genetic_apex]\nname = \"Genetic Apex\"\n",
			check: errors.IsConfigParse,
			want:  "offering_rate_table",
		},
		{
			name:  "unknown rarity",
			file:  "cards/genetic_apex.csv",
			data:  "name,number,rarity,packs\nBulbasaur,1,?,Mewtwo\n",
			check: errors.IsUnknownRarity,
			want:  `"?"`,
		},
		{
			name:  "bad number",
			file:  "cards/genetic_apex.csv",
			data:  "name,number,rarity,packs\nBulbasaur,one,♢,Mewtwo\n",
			check: errors.IsConfigParse,
			want:  "line 2",
		},
		{
			name:  "non-positive number",
			file:  "cards/genetic_apex.csv",
			data:  "name,number,rarity,packs\nBulbasaur,0,♢,Mewtwo\n",
			check: errors.IsConfigParse,
		},
		{
			name:  "duplicate number",
			file:  "cards/genetic_apex.csv",
			data:  "name,number,rarity,packs\nBulbasaur,1,♢,Mewtwo\nIvysaur,1,♢♢,Mewtwo\n",
			check: errors.IsConfigParse,
			want:  "duplicate card number 1",
		},
		{
			name:  "missing column",
			file:  "cards/genetic_apex.csv",
			data:  "name,number\nBulbasaur,1\n",
			check: errors.IsConfigParse,
			want:  `"rarity"`,
		},
		{
			name:  "ragged row",
			file:  "cards/genetic_apex.csv",
			data:  "name,number,rarity,packs\nBulbasaur,1,♢\n",
			check: errors.IsConfigParse,
		},
		{
			name:  "empty cards file",
			file:  "cards/genetic_apex.csv",
			data:  "",
			check: errors.IsConfigParse,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest()
			s.fsys[tc.file] = &fstest.MapFile{Data: []byte(tc.data)}

			out, err := s.list()
			s.Nil(out, "loading must be all-or-nothing")
			s.Require().Error(err)
			s.True(tc.check(err), "unexpected error: %v", err)
			if tc.want != "" {
				s.Contains(err.Error(), tc.want)
			}
		})
	}
}

func (s *FileCatalogTestSuite) TestUnknownRarityKeepsLiteral() {
	s.fsys["cards/genetic_apex.csv"] = &fstest.MapFile{Data: []byte("name,number,rarity,packs\nBulbasaur,1,?,Mewtwo\n")}

	_, err := s.list()
	meta := errors.GetMeta(err)
	s.Equal("?", meta["literal"])
	s.Equal(2, meta["line"])
	s.Equal("cards/genetic_apex.csv", meta["path"])
}
