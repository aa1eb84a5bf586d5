package offeringrates_test

import (
	"context"
	"os"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/pack-odds/internal/entities"
	"github.com/KirkDiggler/pack-odds/internal/errors"
	offeringrates "github.com/KirkDiggler/pack-odds/internal/repositories/offering_rates"
)

const testRatesTOML = `
[standard.fourth_card]
"♢♢" = 0.9
"♢♢♢" = 0.1

[standard.fifth_card]
"♢♢" = 0.6
"♢♢♢" = 0.4

[sparse]
fourth_card = { "♕" = 1.0 }
`

type FileOfferingRatesTestSuite struct {
	suite.Suite
	ctx context.Context
}

func TestFileOfferingRatesSuite(t *testing.T) {
	suite.Run(t, new(FileOfferingRatesTestSuite))
}

func (s *FileOfferingRatesTestSuite) SetupTest() {
	s.ctx = context.Background()
}

func (s *FileOfferingRatesTestSuite) list(data string) (*offeringrates.ListTablesOutput, error) {
	fsys := fstest.MapFS{}
	if data != "" {
		fsys[offeringrates.RatesFile] = &fstest.MapFile{Data: []byte(data)}
	}
	repo, err := offeringrates.NewFile(&offeringrates.FileConfig{FS: fsys})
	s.Require().NoError(err)
	return repo.ListTables(s.ctx, offeringrates.ListTablesInput{})
}

func (s *FileOfferingRatesTestSuite) TestNewFileValidation() {
	_, err := offeringrates.NewFile(nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = offeringrates.NewFile(&offeringrates.FileConfig{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *FileOfferingRatesTestSuite) TestListTables() {
	out, err := s.list(testRatesTOML)
	s.Require().NoError(err)
	s.Require().Len(out.Tables, 2)

	standard := out.Tables["standard"]
	s.Require().NotNil(standard)
	s.Equal("standard", standard.Name)
	s.Equal(0.9, standard.FourthCardRate(entities.TwoDiamonds))
	s.Equal(0.4, standard.FifthCardRate(entities.ThreeDiamonds))
	s.Zero(standard.FourthCardRate(entities.Crown))

	sparse := out.Tables["sparse"]
	s.Require().NotNil(sparse)
	s.Equal(1.0, sparse.FourthCardRate(entities.Crown))
	s.Zero(sparse.FifthCardTotal())
}

func (s *FileOfferingRatesTestSuite) TestMissingFile() {
	out, err := s.list("")
	s.Nil(out)
	s.True(errors.IsConfigNotFound(err))
	s.Equal(offeringrates.RatesFile, errors.GetMeta(err)["path"])
}

func (s *FileOfferingRatesTestSuite) TestMalformed() {
	testCases := []struct {
		name  string
		data  string
		check func(error) bool
	}{
		{"bad toml", "[standard.fourth_card\n", errors.IsConfigParse},
		{"wrong value type", "[standard.fourth_card]\n\"♢♢\" = \"lots\"\n", errors.IsConfigParse},
		{"unknown slot", "[standard.sixth_card]\n\"♢♢\" = 0.5\n", errors.IsConfigParse},
		{"unknown rarity", "[standard.fourth_card]\n\"?\" = 0.5\n", errors.IsUnknownRarity},
		{"rate above one", "[standard.fourth_card]\n\"♢♢\" = 1.5\n", errors.IsConfigParse},
		{"negative rate", "[standard.fifth_card]\n\"♢♢\" = -0.1\n", errors.IsConfigParse},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			out, err := s.list(tc.data)
			s.Nil(out)
			s.Require().Error(err)
			s.True(tc.check(err), "unexpected error: %v", err)
		})
	}
}

// TestShippedTablesSumToOne checks the real tables under data/
func (s *FileOfferingRatesTestSuite) TestShippedTablesSumToOne() {
	repo, err := offeringrates.NewFile(&offeringrates.FileConfig{FS: os.DirFS("../../../data")})
	s.Require().NoError(err)

	out, err := repo.ListTables(s.ctx, offeringrates.ListTablesInput{})
	s.Require().NoError(err)
	s.Require().NotEmpty(out.Tables)

	for name, table := range out.Tables {
		s.InDelta(1.0, table.FourthCardTotal(), 1e-9, "table %s fourth card", name)
		s.InDelta(1.0, table.FifthCardTotal(), 1e-9, "table %s fifth card", name)
	}
}
