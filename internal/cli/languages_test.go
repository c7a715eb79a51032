package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLanguagesText(t *testing.T) {
	out, _, err := execute(t, "languages")
	require.NoError(t, err)
	assert.Equal(t, "EN\t14 rules\nSAT\t9 rules\n", out)
}

func TestLanguagesWithCodeShowsPatterns(t *testing.T) {
	out, _, err := execute(t, "--languages", toyLanguages(t), "languages", "TOY")
	require.NoError(t, err)
	newGoldie(t).Assert(t, "languages_toy", []byte(out))
}

func TestLanguagesJSON(t *testing.T) {
	out, _, err := execute(t, "--languages", toyLanguages(t), "--format", "json", "languages")
	require.NoError(t, err)

	var resp struct {
		Status string          `json:"status"`
		Data   LanguagesResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	require.Len(t, resp.Data.Languages, 3)
	assert.Equal(t, "TOY", resp.Data.Languages[2].Code)
	assert.Equal(t, []string{`\s+`}, resp.Data.Languages[2].Rules)
}

func TestLanguagesUnknownCode(t *testing.T) {
	out, _, err := execute(t, "languages", "XX")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, `unknown language "XX"`)
}

func TestLanguagesMissingSource(t *testing.T) {
	out, _, err := execute(t, "--languages", "does-not-exist.yaml", "languages")
	require.Error(t, err)
	assert.Contains(t, out, "Error ["+ErrCodeLoadFailed+"]")
}
