package export

import (
	"testing"
	"time"

	"insurance_portal/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestGroupCensus(t *testing.T) {
	birth := time.Date(1985, 3, 9, 0, 0, 0, 0, time.UTC)
	premium := 42.5
	p := entities.GroupPolicy{
		PolicyNumber: "GRP-20250101-ABCD1234",
		Classes: []entities.PolicyClass{
			{
				ClassName: "Executives",
				Members: []entities.GroupMember{
					{FirstName: "Ana", LastName: "Lima", Email: "ana@acme.test", Birthdate: &birth, SourceApplicantID: 5},
					{FirstName: "Bo", LastName: "Chen", SourceApplicantID: 6},
				},
				Coverages: []entities.ClassCoverage{{ProductType: "Life", Details: "2x salary", Premium: &premium}},
			},
			{ClassName: "Staff", Members: []entities.GroupMember{{FirstName: "Cy", LastName: "Diaz", SourceApplicantID: 7}}},
		},
	}

	buf, err := GroupCensus(p)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetMembers, SheetCoverages}, f.GetSheetList())

	rows, err := f.GetRows(SheetMembers)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, "Class", rows[0][0])
	assert.Equal(t, []string{"Executives", "Ana", "", "Lima", "ana@acme.test", "", "1985-03-09", "5"}, rows[1])
	assert.Equal(t, "Staff", rows[3][0])

	coverages, err := f.GetRows(SheetCoverages)
	require.NoError(t, err)
	require.Len(t, coverages, 2)
	assert.Equal(t, []string{"Executives", "Life", "2x salary", "$42.50"}, coverages[1])

	assert.Equal(t, "census-GRP-20250101-ABCD1234.xlsx", CensusFileName(p))
}
