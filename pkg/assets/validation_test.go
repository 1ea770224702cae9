package assets

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAssetInput_Validate_OK(t *testing.T) {
	require.NoError(t, AssetInput{Name: "Laptop", Description: "Dev box", Type: "T"}.Validate())
}

func TestAssetInput_Validate_MinimumLengthIsInclusive(t *testing.T) {
	require.NoError(t, AssetInput{Name: "abc", Description: "xyz", Type: "T"}.Validate())
}

func TestAssetInput_Validate_ShortFields(t *testing.T) {
	err := AssetInput{Name: "ab", Description: "x", Type: "T"}.Validate()

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	require.ElementsMatch(t, []FieldError{
		{Field: "name", Message: "Asset name should be atleast 3 characters."},
		{Field: "description", Message: "Asset description should be atleast 3 characters."},
	}, ve.Fields)
}

func TestAssetInput_Validate_EmptyFields(t *testing.T) {
	err := AssetInput{}.Validate()

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	require.Len(t, ve.Fields, 3)
	for _, f := range ve.Fields {
		require.Equal(t, "must not be empty", f.Message)
	}
}

func TestAssetInput_Validate_MaxLengths(t *testing.T) {
	err := AssetInput{
		Name:        strings.Repeat("n", 257),
		Description: strings.Repeat("d", 1025),
		Type:        strings.Repeat("t", 33),
	}.Validate()

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	require.ElementsMatch(t, []string{"name: size must be at most 256", "description: size must be at most 1024", "type: size must be at most 32"},
		[]string{ve.Fields[0].String(), ve.Fields[1].String(), ve.Fields[2].String()})
}

func TestAssetInput_Validate_CountsCharactersNotBytes(t *testing.T) {
	require.NoError(t, AssetInput{Name: "日本語", Description: "説明文", Type: "T"}.Validate())
}
