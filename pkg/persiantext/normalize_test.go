package persiantext_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tamirban/tamirban-api/pkg/persiantext"
)

func TestFold_ArabicVariantsMatchPersian(t *testing.T) {
	// Arabic yeh/kaf spellings must fold to the Persian forms.
	assert.Equal(t, persiantext.Fold("علی"), persiantext.Fold("علي"))
	assert.Equal(t, persiantext.Fold("کیان"), persiantext.Fold("كيان"))
}

func TestFold_DigitsToASCII(t *testing.T) {
	assert.Equal(t, "0912", persiantext.Fold("۰۹۱۲"))
	assert.Equal(t, "0912", persiantext.Fold("٠٩١٢"))
}

func TestFold_RemovesZWNJ(t *testing.T) {
	// "می‌خواهم" written with a half-space equals the joined spelling after folding.
	assert.Equal(t, persiantext.Fold("می‌خواهم"), persiantext.Fold("میخواهم"))
}

func TestFold_LowercasesLatin(t *testing.T) {
	assert.Equal(t, "tamirban", persiantext.Fold("TamirBan"))
}

func TestContains(t *testing.T) {
	assert.True(t, persiantext.Contains("تعمیرگاه علی آقا", "علي"))
	assert.True(t, persiantext.Contains("Tehran Repair Center", "repair"))
	assert.False(t, persiantext.Contains("تعمیرگاه مرکزی", "علی"))
}
