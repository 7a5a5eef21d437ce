package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPANCandidates_OrderOfAppearance(t *testing.T) {
	text := "noise FGHIJ5678K more noise ABCPE1234F trailing"

	assert.Equal(t, []string{"FGHIJ5678K", "ABCPE1234F"}, PANCandidates(text))
}

func TestPANCandidates_CaseNormalized(t *testing.T) {
	assert.Equal(t, []string{"ABCDE1234F"}, PANCandidates("pan: abcde1234f"))
}

func TestPANCandidates_EmbeddedInNoise(t *testing.T) {
	assert.Equal(t, []string{"ABCDE1234F"}, PANCandidates("XQABCDE1234FZZ"))
}

func TestPANCandidates_None(t *testing.T) {
	assert.Empty(t, PANCandidates("INCOME TAX DEPARTMENT\nRAHUL GUPTA"))
}

func TestValidPANFormat(t *testing.T) {
	assert.True(t, ValidPANFormat("ABCPE1234F"))
	assert.True(t, ValidPANFormat("abcpe1234f"))
	assert.False(t, ValidPANFormat("ABCPE1234"))
	assert.False(t, ValidPANFormat("ABCPE12345"))
	assert.False(t, ValidPANFormat("XABCPE1234F"))
	assert.False(t, ValidPANFormat("ABC1E1234F"))
	assert.False(t, ValidPANFormat(""))
}

func TestValidHolderCode(t *testing.T) {
	assert.True(t, ValidHolderCode("ABCPE1234F"))
	assert.True(t, ValidHolderCode("ABCCE1234F"))
	assert.True(t, ValidHolderCode("abche1234f"))
	assert.False(t, ValidHolderCode("ABCDE1234F"))
	assert.False(t, ValidHolderCode("ABCZE1234F"))
	assert.False(t, ValidHolderCode("not a pan"))
}

func TestHolderCategory(t *testing.T) {
	category, ok := HolderCategory("ABCPE1234F")
	require.True(t, ok)
	assert.Equal(t, "individual", category)

	category, ok = HolderCategory("ABCTE1234F")
	require.True(t, ok)
	assert.Equal(t, "trust", category)

	_, ok = HolderCategory("ABCDE1234F")
	assert.False(t, ok)

	_, ok = HolderCategory("garbage")
	assert.False(t, ok)
}

func TestFields_PANPrefersValidHolderCode(t *testing.T) {
	// ABCDE1234F appears first but carries the unknown code D; the scan
	// must prefer the later candidate with a real holder-type code.
	transcript := `ABCDE1234F
ABCPE1234F`

	result, err := Fields(transcript)
	require.NoError(t, err)

	require.NotNil(t, result.PANNumber)
	assert.Equal(t, "ABCPE1234F", *result.PANNumber)
}

func TestFields_PANFirstValidCodeWins(t *testing.T) {
	transcript := `ABCPE1234F
XYZCA9876B`

	result, err := Fields(transcript)
	require.NoError(t, err)

	require.NotNil(t, result.PANNumber)
	assert.Equal(t, "ABCPE1234F", *result.PANNumber)
}

func TestFields_PANFallsBackToFirstCandidate(t *testing.T) {
	transcript := `ABCDE1234F
ABCZE5678K`

	result, err := Fields(transcript)
	require.NoError(t, err)

	require.NotNil(t, result.PANNumber)
	assert.Equal(t, "ABCDE1234F", *result.PANNumber)
}

func TestFields_PANAbsent(t *testing.T) {
	transcript := `INCOME TAX DEPARTMENT
RAHUL GUPTA
SURESH GUPTA`

	result, err := Fields(transcript)
	require.NoError(t, err)

	assert.Nil(t, result.PANNumber)
}
