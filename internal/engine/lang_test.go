package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLang(t *testing.T) {
	tests := []struct {
		in      string
		want    Lang
		wantErr error
	}{
		{in: "en", want: LangEN},
		{in: "FR", want: LangFR},
		{in: " de ", want: Lang("de")},
		{in: "xx", want: Lang("xx")},
		{in: "eng", wantErr: ErrInvalidLang},
		{in: "e1", wantErr: ErrInvalidLang},
		{in: "", wantErr: ErrInvalidLang},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLang(tt.in)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildParser_UnsupportedLang(t *testing.T) {
	_, err := BuildParser(Lang("xx"))
	require.ErrorIs(t, err, ErrUnsupportedLang)

	_, err = BuildRawParser(Lang("xx"))
	require.ErrorIs(t, err, ErrUnsupportedLang)
}

func TestSupportedLangs(t *testing.T) {
	assert.Equal(t, []Lang{LangEN, LangFR}, SupportedLangs())

	for _, lang := range SupportedLangs() {
		_, err := BuildRawParser(lang)
		assert.NoError(t, err, "lexicon for %s should load", lang)
	}
}

func TestLang_Tag(t *testing.T) {
	assert.Equal(t, "fr", LangFR.Tag().String())
	assert.Equal(t, "und", Lang("!!").Tag().String())
}
