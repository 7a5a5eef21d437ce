package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PunitTak2005/pan-card-ocr-extraction/dto"
)

func TestFields_StandardCardLayout(t *testing.T) {
	transcript := `GOVT OF INDIA
INCOME TAX DEPARTMENT
RAHUL GUPTA
SURESH GUPTA
01/01/1990
ABCDE1234F`

	result, err := Fields(transcript)
	require.NoError(t, err)

	require.NotNil(t, result.Name)
	assert.Equal(t, "RAHUL GUPTA", *result.Name)
	require.NotNil(t, result.FatherName)
	assert.Equal(t, "SURESH GUPTA", *result.FatherName)
	require.NotNil(t, result.PANNumber)
	assert.Equal(t, "ABCDE1234F", *result.PANNumber)
	assert.Equal(t, transcript, result.RawText)
}

func TestFields_NoAnchorFallsBackToNameHeuristic(t *testing.T) {
	transcript := `PERMANENT ACCOUNT NUMBER CARD
RAHUL GUPTA
SURESH GUPTA
ABCDE1234F`

	result, err := Fields(transcript)
	require.NoError(t, err)

	require.NotNil(t, result.Name)
	assert.Equal(t, "RAHUL GUPTA", *result.Name)
	require.NotNil(t, result.FatherName)
	assert.Equal(t, "SURESH GUPTA", *result.FatherName)
	require.NotNil(t, result.PANNumber)
	assert.Equal(t, "ABCDE1234F", *result.PANNumber)
}

func TestFields_LayoutValueOutranksHeuristic(t *testing.T) {
	// AMIT VERMA would be the heuristic's first pick, but the layout layer
	// runs first and its proposal must survive the merge untouched.
	transcript := `AMIT VERMA
INCOME TAX DEPARTMENT
RAHUL GUPTA
SURESH GUPTA`

	result, err := Fields(transcript)
	require.NoError(t, err)

	require.NotNil(t, result.Name)
	assert.Equal(t, "RAHUL GUPTA", *result.Name)
	require.NotNil(t, result.FatherName)
	assert.Equal(t, "SURESH GUPTA", *result.FatherName)
}

func TestFields_AnchorOnLastLine(t *testing.T) {
	transcript := `XX
INCOME TAX DEPARTMENT`

	result, err := Fields(transcript)
	require.NoError(t, err)

	assert.Nil(t, result.Name)
	assert.Nil(t, result.FatherName)
	assert.Nil(t, result.PANNumber)
}

func TestFields_AnchorWithSingleFollowingLine(t *testing.T) {
	transcript := `INCOME TAX DEPARTMENT
RAHUL GUPTA`

	result, err := Fields(transcript)
	require.NoError(t, err)

	require.NotNil(t, result.Name)
	assert.Equal(t, "RAHUL GUPTA", *result.Name)
	assert.Nil(t, result.FatherName)
}

func TestFields_EmptyTranscript(t *testing.T) {
	result, err := Fields("")
	require.NoError(t, err)

	assert.Nil(t, result.Name)
	assert.Nil(t, result.FatherName)
	assert.Nil(t, result.PANNumber)
	assert.Equal(t, "", result.RawText)
}

func TestFields_WhitespaceOnlyTranscript(t *testing.T) {
	result, err := Fields("  \n\t\n   \r\n")
	require.NoError(t, err)

	assert.Nil(t, result.Name)
	assert.Nil(t, result.FatherName)
	assert.Nil(t, result.PANNumber)
}

func TestFields_RawTextPreservedVerbatim(t *testing.T) {
	transcript := "  INCOME TAX DEPARTMENT  \r\n\r\nRahul Gupta \nSuresh Gupta\n\n"

	result, err := Fields(transcript)
	require.NoError(t, err)

	assert.Equal(t, transcript, result.RawText)
	require.NotNil(t, result.Name)
	assert.Equal(t, "Rahul Gupta", *result.Name)
	require.NotNil(t, result.FatherName)
	assert.Equal(t, "Suresh Gupta", *result.FatherName)
}

func TestFields_Idempotent(t *testing.T) {
	transcript := `INCOME TAX DEPARTMENT
RAHUL GUPTA
SURESH GUPTA
ABCPE1234F`

	first, err := Fields(transcript)
	require.NoError(t, err)
	second, err := Fields(transcript)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestFields_MalformedTranscript(t *testing.T) {
	result, err := Fields("INCOME TAX\xff\xfe DEPARTMENT")

	assert.ErrorIs(t, err, ErrMalformedTranscript)
	assert.Equal(t, dto.ExtractionResult{}, result)
}

func TestFields_ControlCharactersTolerated(t *testing.T) {
	result, err := Fields("INCOME TAX DEPARTMENT\nRAHUL\x07 GUPTA\nSURESH GUPTA")
	require.NoError(t, err)

	require.NotNil(t, result.Name)
	assert.Equal(t, "RAHUL\x07 GUPTA", *result.Name)
}

func TestFieldsWithSeed_SeedOutranksEveryLayer(t *testing.T) {
	seeded := "ABCPE1234F"
	transcript := `INCOME TAX DEPARTMENT
RAHUL GUPTA
SURESH GUPTA
FGHPJ5678K`

	result, err := FieldsWithSeed(transcript, dto.ExtractionResult{PANNumber: &seeded})
	require.NoError(t, err)

	require.NotNil(t, result.PANNumber)
	assert.Equal(t, "ABCPE1234F", *result.PANNumber)
	require.NotNil(t, result.Name)
	assert.Equal(t, "RAHUL GUPTA", *result.Name)
}

func TestFieldsWithSeed_EmptySeedMatchesFields(t *testing.T) {
	transcript := `INCOME TAX DEPARTMENT
RAHUL GUPTA
SURESH GUPTA
ABCPE1234F`

	plain, err := Fields(transcript)
	require.NoError(t, err)
	seeded, err := FieldsWithSeed(transcript, dto.ExtractionResult{})
	require.NoError(t, err)

	assert.Equal(t, plain, seeded)
}

func TestFieldsWithSeed_SeedRawTextIgnored(t *testing.T) {
	result, err := FieldsWithSeed("ABCDE1234F", dto.ExtractionResult{RawText: "stale"})
	require.NoError(t, err)

	assert.Equal(t, "ABCDE1234F", result.RawText)
}
