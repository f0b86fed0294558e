package uninews_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/uninews"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := uninews.Errorf(uninews.EEXTRACT, "no usable content in %q", "page")

	assert.Equal(t, uninews.EEXTRACT, uninews.ErrorCode(err))
	assert.Equal(t, "no usable content in \"page\"", uninews.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, uninews.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, uninews.EINTERNAL, uninews.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, uninews.ErrorMessage(nil))
}

func TestErrorMessage_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Internal error.", uninews.ErrorMessage(errors.New("boom")))
}

func TestNormalizeLanguage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "english", uninews.NormalizeLanguage(""))
	assert.Equal(t, "english", uninews.NormalizeLanguage("   "))
	assert.Equal(t, "spanish", uninews.NormalizeLanguage("spanish"))
}

func TestPost_OK(t *testing.T) {
	t.Parallel()

	assert.True(t, (&uninews.Post{Title: "T"}).OK())
	assert.False(t, (&uninews.Post{Error: "failed to fetch"}).OK())
}

func TestUserPrompt(t *testing.T) {
	t.Parallel()

	extract := &uninews.ExtractResult{
		Title:       "Breaking News",
		ContentHTML: "<p>Hello</p>",
	}

	prompt := uninews.UserPrompt(extract, "french")

	assert.Contains(t, prompt, "<title>Breaking News</title>")
	assert.Contains(t, prompt, "<content><p>Hello</p></content>")
	assert.Contains(t, prompt, "french")
}

func TestUserPrompt_OmitsEmptyTitle(t *testing.T) {
	t.Parallel()

	extract := &uninews.ExtractResult{ContentHTML: "<p>Hello</p>"}

	prompt := uninews.UserPrompt(extract, "")

	assert.NotContains(t, prompt, "<title>")
	assert.Contains(t, prompt, "english")
}

func TestSystemPrompt_DefaultsLanguage(t *testing.T) {
	t.Parallel()

	assert.Contains(t, uninews.SystemPrompt(""), "in english")
	assert.Contains(t, uninews.SystemPrompt("japanese"), "in japanese")
}
